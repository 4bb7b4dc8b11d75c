package rtc

// Event handler interfaces. The engine invokes them on its own goroutines,
// possibly several at once, and never waits for the host.

type EngineEventHandler interface {
	OnWarning(code int)
	OnError(code int)
	OnSysStats(stats SysStats)
	OnConnectionStateChanged(state int)
	OnNetworkTypeChanged(networkType int)
	OnUserStartVideoCapture(roomID, uid string)
	OnUserStopVideoCapture(roomID, uid string)
	OnLocalAudioStateChanged(state, errCode int)
	OnRemoteAudioStateChanged(key RemoteStreamKey, state, reason int)
	OnLocalVideoStateChanged(idx StreamIndex, state, errCode int)
	OnFirstLocalVideoFrameCaptured(idx StreamIndex, info VideoFrameInfo)
	OnFirstRemoteVideoFrameDecoded(key RemoteStreamKey, info VideoFrameInfo)
	OnLocalVideoSizeChanged(idx StreamIndex, info VideoFrameInfo)
	OnAudioRouteChanged(route int)
	OnLoginResult(uid string, errCode, elapsed int)
	OnLogout(reason int)
	OnRecordingStateUpdate(idx StreamIndex, state, errCode int, info RecordingInfo)
	OnRecordingProgressUpdate(idx StreamIndex, progress RecordingProgress, info RecordingInfo)
	OnLocalAudioPropertiesReport(infos []LocalAudioPropertiesInfo)
	OnRemoteAudioPropertiesReport(infos []RemoteAudioPropertiesInfo, totalRemoteVolume int)
	OnActiveSpeaker(roomID, uid string)
	OnStreamSyncInfoReceived(key RemoteStreamKey, data []byte)
	OnEchoTestResult(result int)
	OnCloudProxyConnected(interval int)
	OnNetworkDetectionResult(linkType, quality, rtt int, lostRate float64, bitrate, jitter int)
	OnSimulcastSubscribeFallback(event RemoteStreamSwitch)
	OnPerformanceAlarms(mode int, roomID string, reason int, data SourceWantedData)
	OnStreamMixingEvent(eventType int, taskID string, errCode int, mixType MixType)
	OnPushPublicStreamResult(roomID, streamID string, errCode int)
	OnFaceDetectResult(result FaceDetectionResult)
	OnAudioMixingStateChanged(mixID int, state AudioMixingState, errCode int)
	OnAudioMixingPlayingProgress(mixID int, progress int64)
	OnASRSuccess(message string)
	OnASRError(code int, message string)
	OnTakeLocalSnapshotResult(idx StreamIndex, shot Snapshot)
	OnTakeRemoteSnapshotResult(key RemoteStreamKey, shot Snapshot)
}

type RoomEventHandler interface {
	OnRoomStateChanged(roomID, uid string, state int, extraInfo string)
	OnStreamStateChanged(roomID, uid string, state int, extraInfo string)
	OnLeaveRoom(stats RoomStats)
	OnRoomStats(stats RoomStats)
	OnTokenWillExpire()
	OnUserJoined(user UserInfo, elapsed int)
	OnUserLeave(uid string, reason int)
	OnUserPublishStream(uid string, t MediaStreamType)
	OnUserUnpublishStream(uid string, t MediaStreamType, reason int)
	OnUserPublishScreen(uid string, t MediaStreamType)
	OnUserUnpublishScreen(uid string, t MediaStreamType, reason int)
	OnLocalStreamStats(stats LocalStreamStats)
	OnRemoteStreamStats(stats RemoteStreamStats)
	OnStreamSubscribed(state int, uid string, info SubscribeConfig)
	OnStreamPublishSuccess(uid string, isScreen bool)
	OnRoomMessageReceived(uid, message string)
	OnRoomBinaryMessageReceived(uid string, message []byte)
	OnUserMessageReceived(uid, message string)
	OnUserBinaryMessageReceived(uid string, message []byte)
	OnUserMessageSendResult(msgID int64, errCode int)
	OnRoomMessageSendResult(msgID int64, errCode int)
	OnForwardStreamEvent(infos []ForwardStreamEventInfo)
	OnForwardStreamStateChanged(infos []ForwardStreamStateInfo)
	OnNetworkQuality(local NetworkQualityStats, remote []NetworkQualityStats)
	OnSetRoomExtraInfoResult(taskID int64, errCode int)
	OnRoomExtraInfoUpdate(key, value, lastUpdateUID string, updateTimeMs int64)
	OnUserVisibilityChanged(visible bool, errCode int)
	OnSubtitleStateChanged(state, errCode int, message string)
	OnSubtitleMessageReceived(messages []SubtitleMessage)
	OnAVSyncStateChange(state int)
}

type RangeAudioObserver interface {
	OnRangeAudioInfo(infos []RangeAudioInfo)
}

type MediaPlayerEventHandler interface {
	OnMediaPlayerStateChanged(playerID int, state PlayerState, errCode int)
	OnMediaPlayerPlayingProgress(playerID int, progress int64)
}

type AudioEffectPlayerEventHandler interface {
	OnAudioEffectPlayerStateChanged(effectID int, state PlayerState, errCode int)
}

type KTVManagerEventHandler interface {
	OnMusicListResult(musics []MusicInfo, total, errCode int)
	OnSearchMusicResult(musics []MusicInfo, total, errCode int)
	OnHotMusicResult(hot []HotMusicInfo, errCode int)
	OnMusicDetailResult(music *MusicInfo, errCode int)
	OnDownloadSuccess(downloadID int, result DownloadResult)
	OnDownloadFailed(downloadID, errCode int)
	OnDownloadMusicProgress(downloadID, progress int)
	OnClearCacheResult(errCode int)
}

type SingScoringEventHandler interface {
	// OnCurrentScoringInfo reports progress; info is nil when the engine
	// has nothing to report yet.
	OnCurrentScoringInfo(info *SingScoringRealtimeInfo)
}

type KTVPlayerEventHandler interface {
	OnPlayProgress(musicID string, progress int64)
	OnPlayStateChanged(musicID string, state PlayerState, errCode int)
}
