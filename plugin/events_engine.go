package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

// engineEvents forwards engine callbacks to the engine channel. It holds
// only the instance key; the emitter drops whatever arrives after the
// engine is destroyed.
type engineEvents struct {
	key         registry.Key
	emitter     *bridge.Emitter
	completions *bridge.Completions
	switches    *bridge.Switches
}

var _ rtc.EngineEventHandler = (*engineEvents)(nil)

func (h *engineEvents) emit(method string, payload *codec.Map) {
	h.emitter.Emit(h.key, method, payload)
}

func (h *engineEvents) OnWarning(code int) {
	h.emit("onWarning", codec.NewMap().Set("warn", code))
}

func (h *engineEvents) OnError(code int) {
	h.emit("onError", codec.NewMap().Set("err", code))
}

func (h *engineEvents) OnSysStats(stats rtc.SysStats) {
	if !h.switches.Enabled(bridge.SwitchSysStats) {
		return
	}
	h.emit("onSysStats", codec.NewMap().Set("stats", stats))
}

func (h *engineEvents) OnConnectionStateChanged(state int) {
	h.emit("onConnectionStateChanged", codec.NewMap().Set("state", state))
}

func (h *engineEvents) OnNetworkTypeChanged(networkType int) {
	h.emit("onNetworkTypeChanged", codec.NewMap().Set("type", networkType))
}

func (h *engineEvents) OnUserStartVideoCapture(roomID, uid string) {
	h.emit("onUserStartVideoCapture", codec.NewMap().
		Set("roomId", roomID).
		Set("uid", uid))
}

func (h *engineEvents) OnUserStopVideoCapture(roomID, uid string) {
	h.emit("onUserStopVideoCapture", codec.NewMap().
		Set("roomId", roomID).
		Set("uid", uid))
}

func (h *engineEvents) OnLocalAudioStateChanged(state, errCode int) {
	h.emit("onLocalAudioStateChanged", codec.NewMap().
		Set("state", state).
		Set("error", errCode))
}

func (h *engineEvents) OnRemoteAudioStateChanged(key rtc.RemoteStreamKey, state, reason int) {
	h.emit("onRemoteAudioStateChanged", codec.NewMap().
		Set("key", key).
		Set("state", state).
		Set("reason", reason))
}

func (h *engineEvents) OnLocalVideoStateChanged(idx rtc.StreamIndex, state, errCode int) {
	h.emit("onLocalVideoStateChanged", codec.NewMap().
		Set("streamIndex", int64(idx)).
		Set("state", state).
		Set("error", errCode))
}

func (h *engineEvents) OnFirstLocalVideoFrameCaptured(idx rtc.StreamIndex, info rtc.VideoFrameInfo) {
	h.emit("onFirstLocalVideoFrameCaptured", codec.NewMap().
		Set("streamIndex", int64(idx)).
		Set("frameInfo", info))
}

func (h *engineEvents) OnFirstRemoteVideoFrameDecoded(key rtc.RemoteStreamKey, info rtc.VideoFrameInfo) {
	h.emit("onFirstRemoteVideoFrameDecoded", codec.NewMap().
		Set("remoteStreamKey", key).
		Set("frameInfo", info))
}

func (h *engineEvents) OnLocalVideoSizeChanged(idx rtc.StreamIndex, info rtc.VideoFrameInfo) {
	h.emit("onLocalVideoSizeChanged", codec.NewMap().
		Set("streamIndex", int64(idx)).
		Set("frameInfo", info))
}

func (h *engineEvents) OnAudioRouteChanged(route int) {
	h.emit("onAudioRouteChanged", codec.NewMap().Set("route", route))
}

func (h *engineEvents) OnLoginResult(uid string, errCode, elapsed int) {
	h.emit("onLoginResult", codec.NewMap().
		Set("uid", uid).
		Set("errorCode", errCode).
		Set("elapsed", elapsed))
}

func (h *engineEvents) OnLogout(reason int) {
	h.emit("onLogout", codec.NewMap().Set("reason", reason))
}

func (h *engineEvents) OnRecordingStateUpdate(idx rtc.StreamIndex, state, errCode int, info rtc.RecordingInfo) {
	h.emit("onRecordingStateUpdate", codec.NewMap().
		Set("type", int64(idx)).
		Set("state", state).
		Set("errorCode", errCode).
		Set("info", info))
}

func (h *engineEvents) OnRecordingProgressUpdate(idx rtc.StreamIndex, progress rtc.RecordingProgress, info rtc.RecordingInfo) {
	h.emit("onRecordingProgressUpdate", codec.NewMap().
		Set("type", int64(idx)).
		Set("progress", progress).
		Set("info", info))
}

func (h *engineEvents) OnLocalAudioPropertiesReport(infos []rtc.LocalAudioPropertiesInfo) {
	h.emit("onLocalAudioPropertiesReport", codec.NewMap().
		Set("audioPropertiesInfos", codec.EncodeList(infos)))
}

func (h *engineEvents) OnRemoteAudioPropertiesReport(infos []rtc.RemoteAudioPropertiesInfo, totalRemoteVolume int) {
	h.emit("onRemoteAudioPropertiesReport", codec.NewMap().
		Set("audioPropertiesInfos", codec.EncodeList(infos)).
		Set("totalRemoteVolume", totalRemoteVolume))
}

func (h *engineEvents) OnActiveSpeaker(roomID, uid string) {
	h.emit("onActiveSpeaker", codec.NewMap().
		Set("roomId", roomID).
		Set("uid", uid))
}

func (h *engineEvents) OnStreamSyncInfoReceived(key rtc.RemoteStreamKey, data []byte) {
	h.emit("onStreamSyncInfoReceived", codec.NewMap().
		Set("streamKey", key).
		Set("data", data))
}

func (h *engineEvents) OnEchoTestResult(result int) {
	h.emit("onEchoTestResult", codec.NewMap().Set("result", result))
}

func (h *engineEvents) OnCloudProxyConnected(interval int) {
	h.emit("onCloudProxyConnected", codec.NewMap().Set("interval", interval))
}

func (h *engineEvents) OnNetworkDetectionResult(linkType, quality, rtt int, lostRate float64, bitrate, jitter int) {
	h.emit("onNetworkDetectionResult", codec.NewMap().
		Set("type", linkType).
		Set("quality", quality).
		Set("rtt", rtt).
		Set("lostRate", lostRate).
		Set("bitrate", bitrate).
		Set("jitter", jitter))
}

func (h *engineEvents) OnSimulcastSubscribeFallback(event rtc.RemoteStreamSwitch) {
	h.emit("onSimulcastSubscribeFallback", codec.NewMap().Set("event", event))
}

func (h *engineEvents) OnPerformanceAlarms(mode int, roomID string, reason int, data rtc.SourceWantedData) {
	h.emit("onPerformanceAlarms", codec.NewMap().
		Set("mode", mode).
		Set("roomId", roomID).
		Set("reason", reason).
		Set("data", data))
}

func (h *engineEvents) OnStreamMixingEvent(eventType int, taskID string, errCode int, mixType rtc.MixType) {
	h.emit("onStreamMixingEvent", codec.NewMap().
		Set("eventType", eventType).
		Set("taskId", taskID).
		Set("error", errCode).
		Set("mixType", int64(mixType)))
}

func (h *engineEvents) OnPushPublicStreamResult(roomID, streamID string, errCode int) {
	h.emit("onPushPublicStreamResult", codec.NewMap().
		Set("roomId", roomID).
		Set("publicStreamId", streamID).
		Set("errorCode", errCode))
}

func (h *engineEvents) OnFaceDetectResult(result rtc.FaceDetectionResult) {
	h.emit("onFaceDetectResult", codec.NewMap().Set("result", result))
}

func (h *engineEvents) OnAudioMixingStateChanged(mixID int, state rtc.AudioMixingState, errCode int) {
	h.emit("onAudioMixingStateChanged", codec.NewMap().
		Set("mixId", mixID).
		Set("state", int64(state)).
		Set("error", errCode))
}

func (h *engineEvents) OnAudioMixingPlayingProgress(mixID int, progress int64) {
	h.emit("onAudioMixingPlayingProgress", codec.NewMap().
		Set("mixId", mixID).
		Set("progress", progress))
}

func (h *engineEvents) OnASRSuccess(message string) {
	h.emit("onASRSuccess", codec.NewMap().Set("message", message))
}

func (h *engineEvents) OnASRError(code int, message string) {
	h.emit("onASRError", codec.NewMap().
		Set("errorCode", code).
		Set("errorMessage", message))
}

func (h *engineEvents) OnTakeLocalSnapshotResult(idx rtc.StreamIndex, shot rtc.Snapshot) {
	h.completions.Complete(h.key, "onTakeLocalSnapshotResult", shot.TaskID, finishSnapshot(shot))
}

func (h *engineEvents) OnTakeRemoteSnapshotResult(key rtc.RemoteStreamKey, shot rtc.Snapshot) {
	h.completions.Complete(h.key, "onTakeRemoteSnapshotResult", shot.TaskID, finishSnapshot(shot))
}
