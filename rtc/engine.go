package rtc

import "image"

// EngineConfig carries the parameters an engine is created with.
type EngineConfig struct {
	AppID      string
	Parameters map[string]any
}

// Factory creates engines and answers engine-independent queries.
type Factory interface {
	SDKVersion() string
	ErrorDescription(code int) string
	CreateEngine(cfg EngineConfig, h EngineEventHandler) (Engine, error)
}

// Engine is the native engine singleton. Every method may be called from
// any goroutine; event handlers fire on engine-owned goroutines.
type Engine interface {
	Destroy()

	StartAudioCapture() error
	StopAudioCapture() error
	SetAudioScenario(s AudioScenario) error
	SetAudioProfile(p AudioProfile) error
	SetCaptureVolume(idx StreamIndex, volume int) error
	SetPlaybackVolume(volume int) error
	SetLocalVoiceReverbParam(cfg VoiceReverbConfig) error
	SetLocalVoiceEqualization(cfg VoiceEqualizationConfig) error
	EnableAudioPropertiesReport(cfg AudioPropertiesConfig) error
	SetRemoteAudioPlaybackVolume(roomID, uid string, volume int) error

	SetMaxVideoEncoderConfig(cfg VideoEncoderConfig) error
	SetVideoEncoderConfig(cfgs []VideoEncoderConfig) error
	SetScreenVideoEncoderConfig(cfg ScreenVideoEncoderConfig) error
	SetVideoCaptureConfig(cfg VideoCaptureConfig) error
	StartVideoCapture() error
	StopVideoCapture() error
	SwitchCamera(id CameraID) error
	SetCameraTorch(s TorchState) error
	SetVideoWatermark(idx StreamIndex, imagePath string, cfg WatermarkConfig) error
	ClearVideoWatermark(idx StreamIndex) error
	SetBackgroundSticker(modelPath string, src VirtualBackgroundSource) error

	StartLiveTranscoding(taskID string, t LiveTranscoding) error
	UpdateLiveTranscoding(taskID string, t LiveTranscoding) error
	StopLiveTranscoding(taskID string) error
	StartPushPublicStream(streamID string, p PublicStreaming) error
	StopPushPublicStream(streamID string) error
	StartPushSingleStreamToCDN(taskID string, p PushSingleStreamParam) error
	StopPushStreamToCDN(taskID string) error

	SetPublishFallbackOption(o PublishFallbackOption) error
	SetSubscribeFallbackOption(o SubscribeFallbackOption) error
	SetRemoteUserPriority(roomID, uid string, p RemoteUserPriority) error
	SetBusinessID(id string) error
	Feedback(options []ProblemFeedbackOption, info *ProblemFeedbackInfo) error
	SetRuntimeParameters(params map[string]any) error

	CreateRoom(roomID string) (Room, error)
	CreateMediaPlayer(playerID int) (MediaPlayer, error)
	CreateAudioEffectPlayer() (AudioEffectPlayer, error)
	KTVManager() (KTVManager, error)
	AudioMixingManager() AudioMixingManager
	VideoEffect() VideoEffect
	// SingScoringManager fails when the engine build has no scoring
	// support.
	SingScoringManager() (SingScoringManager, error)

	StartASR(cfg ASRConfig) error
	StopASR() error
	StartFileRecording(idx StreamIndex, cfg RecordingConfig, t RecordingType) error
	StopFileRecording(idx StreamIndex) error
	StartAudioRecording(cfg AudioRecordingConfig) error
	StopAudioRecording() error

	Login(token, uid string) error
	Logout() error
	SendStreamSyncInfo(data []byte, cfg StreamSyncInfoConfig) (int, error)

	StartCloudProxy(list []CloudProxyInfo) error
	StopCloudProxy() error
	SetLocalProxy(list []LocalProxyConfiguration) error
	SetCellularEnhancement(cfg MediaTypeEnhancementConfig) error
	StartEchoTest(cfg EchoTestConfig, playDelay int) error
	StopEchoTest() error
	StartNetworkDetection(uplink bool, uplinkKbps int, downlink bool, downlinkKbps int) error
	StopNetworkDetection() error

	// TakeLocalSnapshot and TakeRemoteSnapshot return a task id; the frame
	// arrives later through OnTakeLocalSnapshotResult / OnTakeRemoteSnapshotResult.
	TakeLocalSnapshot(idx StreamIndex) (int64, error)
	TakeRemoteSnapshot(key RemoteStreamKey) (int64, error)
}

// Room is one joined (or joinable) room.
type Room interface {
	SetEventHandler(h RoomEventHandler)
	Destroy()

	JoinRoom(token string, user UserInfo, cfg RoomConfig) error
	LeaveRoom() error
	UpdateToken(token string) error
	SetUserVisibility(visible bool) error
	SetMultiDeviceAVSync(audioUserID string) error
	SetRemoteVideoConfig(uid string, cfg RemoteVideoConfig) error

	PublishStream(t MediaStreamType) error
	UnpublishStream(t MediaStreamType) error
	PublishScreen(t MediaStreamType) error
	UnpublishScreen(t MediaStreamType) error
	SubscribeStream(uid string, t MediaStreamType) error
	UnsubscribeStream(uid string, t MediaStreamType) error
	SubscribeScreen(uid string, t MediaStreamType) error
	UnsubscribeScreen(uid string, t MediaStreamType) error
	PauseAllSubscribedStream(t PauseResumeMediaType) error
	ResumeAllSubscribedStream(t PauseResumeMediaType) error

	SendUserMessage(uid, message string, cfg MessageConfig) (int64, error)
	SendUserBinaryMessage(uid string, message []byte, cfg MessageConfig) (int64, error)
	SendRoomMessage(message string) (int64, error)
	SendRoomBinaryMessage(message []byte) (int64, error)

	StartForwardStreamToRooms(targets []ForwardStreamInfo) (int, error)
	UpdateForwardStreamToRooms(targets []ForwardStreamInfo) (int, error)
	StopForwardStreamToRooms() error
	PauseForwardStreamToAllRooms() error
	ResumeForwardStreamToAllRooms() error

	SetRoomExtraInfo(key, value string) (int64, error)
	StartSubtitle(cfg SubtitleConfig) error
	StopSubtitle() error

	SpatialAudio() SpatialAudio
	RangeAudio() RangeAudio
}

type SpatialAudio interface {
	EnableSpatialAudio(enable bool) error
	UpdatePosition(pos Position) error
	UpdateSelfOrientation(o HumanOrientation) error
	DisableRemoteOrientation() error
}

type RangeAudio interface {
	EnableRangeAudio(enable bool) error
	UpdateReceiveRange(r ReceiveRange) error
	UpdatePosition(pos Position) error
	// SetObserver installs o; nil removes the current observer.
	SetObserver(o RangeAudioObserver)
}

type MediaPlayer interface {
	SetEventHandler(h MediaPlayerEventHandler)
	Destroy()

	Open(filePath string, cfg MediaPlayerConfig) error
	Start() error
	Stop() error
	Pause() error
	Resume() error
	SetVolume(volume int, t AudioMixingType) error
	Volume(t AudioMixingType) (int, error)
	TotalDuration() (int, error)
	PlaybackDuration() (int, error)
	Position() (int, error)
	SetPosition(pos int) error
	SetAudioPitch(pitch int) error
	SetPlaybackSpeed(speed int) error
	SetProgressInterval(interval int64) error
	SetLoudness(loudness float32) error
	AudioTrackCount() (int, error)
	SelectAudioTrack(index int) error
}

type AudioEffectPlayer interface {
	SetEventHandler(h AudioEffectPlayerEventHandler)
	Destroy()

	Start(effectID int, filePath string, cfg AudioEffectPlayerConfig) error
	Stop(effectID int) error
	StopAll() error
	Preload(effectID int, filePath string) error
	Unload(effectID int) error
	UnloadAll() error
	Pause(effectID int) error
	PauseAll() error
	Resume(effectID int) error
	ResumeAll() error
	SetPosition(effectID, pos int) error
	Position(effectID int) (int, error)
	SetVolume(effectID, volume int) error
	SetVolumeAll(volume int) error
	Volume(effectID int) (int, error)
	Duration(effectID int) (int, error)
}

type KTVManager interface {
	SetEventHandler(h KTVManagerEventHandler)
	Destroy()

	MusicList(page, pageSize int, filters []MusicFilterType) error
	SearchMusic(keyword string, page, pageSize int, filters []MusicFilterType) error
	HotMusic(hotTypes []MusicHotType, filters []MusicFilterType) error
	MusicDetail(musicID string) error
	// Download operations return a download id; progress and the outcome
	// are reported through KTVManagerEventHandler.
	DownloadMusic(musicID string) (int, error)
	DownloadLyric(musicID string, t LyricType) (int, error)
	DownloadMidi(musicID string) (int, error)
	CancelDownload(downloadID int) error
	ClearCache() error
	SetMaxCacheSize(maxMB int) error
	CreateKTVPlayer() (KTVPlayer, error)
}

type KTVPlayer interface {
	SetEventHandler(h KTVPlayerEventHandler)
	Destroy()

	PlayMusic(musicID string, track AudioTrackType, play AudioPlayType) error
	PauseMusic(musicID string) error
	ResumeMusic(musicID string) error
	StopMusic(musicID string) error
	SeekMusic(musicID string, position int) error
	SetMusicVolume(musicID string, volume int) error
	SwitchAudioTrackType(musicID string) error
	SetMusicPitch(musicID string, pitch int) error
}

// Snapshot is a captured frame. Image is nil when capture failed.
type Snapshot struct {
	TaskID    int64
	Image     image.Image
	ErrorCode int
}
