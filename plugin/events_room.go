package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

// roomEvents forwards room callbacks to room#id. Stats callbacks are gated
// by the room's switches.
type roomEvents struct {
	key      registry.Key
	emitter  *bridge.Emitter
	switches *bridge.Switches
}

var _ rtc.RoomEventHandler = (*roomEvents)(nil)

func (h *roomEvents) emit(method string, payload *codec.Map) {
	h.emitter.Emit(h.key, method, payload)
}

func (h *roomEvents) OnRoomStateChanged(roomID, uid string, state int, extraInfo string) {
	h.emit("onRoomStateChanged", codec.NewMap().
		Set("roomId", roomID).
		Set("uid", uid).
		Set("state", state).
		Set("extraInfo", extraInfo))
}

func (h *roomEvents) OnStreamStateChanged(roomID, uid string, state int, extraInfo string) {
	h.emit("onStreamStateChanged", codec.NewMap().
		Set("roomId", roomID).
		Set("uid", uid).
		Set("state", state).
		Set("extraInfo", extraInfo))
}

func (h *roomEvents) OnLeaveRoom(stats rtc.RoomStats) {
	h.emit("onLeaveRoom", codec.NewMap().Set("stats", stats))
}

func (h *roomEvents) OnRoomStats(stats rtc.RoomStats) {
	if !h.switches.Enabled(bridge.SwitchRoomStats) {
		return
	}
	h.emit("onRoomStats", codec.NewMap().Set("stats", stats))
}

func (h *roomEvents) OnTokenWillExpire() {
	h.emit("onTokenWillExpire", nil)
}

func (h *roomEvents) OnUserJoined(user rtc.UserInfo, elapsed int) {
	h.emit("onUserJoined", codec.NewMap().
		Set("userInfo", user).
		Set("elapsed", elapsed))
}

func (h *roomEvents) OnUserLeave(uid string, reason int) {
	h.emit("onUserLeave", codec.NewMap().
		Set("uid", uid).
		Set("reason", reason))
}

func (h *roomEvents) OnUserPublishStream(uid string, t rtc.MediaStreamType) {
	h.emit("onUserPublishStream", codec.NewMap().
		Set("uid", uid).
		Set("type", int64(t)))
}

func (h *roomEvents) OnUserUnpublishStream(uid string, t rtc.MediaStreamType, reason int) {
	h.emit("onUserUnpublishStream", codec.NewMap().
		Set("uid", uid).
		Set("type", int64(t)).
		Set("reason", reason))
}

func (h *roomEvents) OnUserPublishScreen(uid string, t rtc.MediaStreamType) {
	h.emit("onUserPublishScreen", codec.NewMap().
		Set("uid", uid).
		Set("type", int64(t)))
}

func (h *roomEvents) OnUserUnpublishScreen(uid string, t rtc.MediaStreamType, reason int) {
	h.emit("onUserUnpublishScreen", codec.NewMap().
		Set("uid", uid).
		Set("type", int64(t)).
		Set("reason", reason))
}

func (h *roomEvents) OnLocalStreamStats(stats rtc.LocalStreamStats) {
	if !h.switches.Enabled(bridge.SwitchLocalStreamStats) {
		return
	}
	h.emit("onLocalStreamStats", codec.NewMap().Set("stats", stats))
}

func (h *roomEvents) OnRemoteStreamStats(stats rtc.RemoteStreamStats) {
	if !h.switches.Enabled(bridge.SwitchRemoteStreamStats) {
		return
	}
	h.emit("onRemoteStreamStats", codec.NewMap().Set("stats", stats))
}

func (h *roomEvents) OnStreamSubscribed(state int, uid string, info rtc.SubscribeConfig) {
	h.emit("onStreamSubscribed", codec.NewMap().
		Set("stateCode", state).
		Set("userId", uid).
		Set("info", info))
}

func (h *roomEvents) OnStreamPublishSuccess(uid string, isScreen bool) {
	h.emit("onStreamPublishSuccess", codec.NewMap().
		Set("uid", uid).
		Set("isScreen", isScreen))
}

func (h *roomEvents) OnRoomMessageReceived(uid, message string) {
	h.emit("onRoomMessageReceived", codec.NewMap().
		Set("uid", uid).
		Set("message", message))
}

func (h *roomEvents) OnRoomBinaryMessageReceived(uid string, message []byte) {
	h.emit("onRoomBinaryMessageReceived", codec.NewMap().
		Set("uid", uid).
		Set("message", message))
}

func (h *roomEvents) OnUserMessageReceived(uid, message string) {
	h.emit("onUserMessageReceived", codec.NewMap().
		Set("uid", uid).
		Set("message", message))
}

func (h *roomEvents) OnUserBinaryMessageReceived(uid string, message []byte) {
	h.emit("onUserBinaryMessageReceived", codec.NewMap().
		Set("uid", uid).
		Set("message", message))
}

func (h *roomEvents) OnUserMessageSendResult(msgID int64, errCode int) {
	h.emit("onUserMessageSendResult", codec.NewMap().
		Set("msgid", msgID).
		Set("error", errCode))
}

func (h *roomEvents) OnRoomMessageSendResult(msgID int64, errCode int) {
	h.emit("onRoomMessageSendResult", codec.NewMap().
		Set("msgid", msgID).
		Set("error", errCode))
}

func (h *roomEvents) OnForwardStreamEvent(infos []rtc.ForwardStreamEventInfo) {
	h.emit("onForwardStreamEvent", codec.NewMap().
		Set("eventInfos", codec.EncodeList(infos)))
}

func (h *roomEvents) OnForwardStreamStateChanged(infos []rtc.ForwardStreamStateInfo) {
	h.emit("onForwardStreamStateChanged", codec.NewMap().
		Set("stateInfos", codec.EncodeList(infos)))
}

func (h *roomEvents) OnNetworkQuality(local rtc.NetworkQualityStats, remote []rtc.NetworkQualityStats) {
	if !h.switches.Enabled(bridge.SwitchNetworkQualityStats) {
		return
	}
	h.emit("onNetworkQuality", codec.NewMap().
		Set("localQuality", local).
		Set("remoteQualities", codec.EncodeList(remote)))
}

func (h *roomEvents) OnSetRoomExtraInfoResult(taskID int64, errCode int) {
	h.emit("onSetRoomExtraInfoResult", codec.NewMap().
		Set("taskId", taskID).
		Set("error", errCode))
}

func (h *roomEvents) OnRoomExtraInfoUpdate(key, value, lastUpdateUID string, updateTimeMs int64) {
	h.emit("onRoomExtraInfoUpdate", codec.NewMap().
		Set("key", key).
		Set("value", value).
		Set("lastUpdateUserId", lastUpdateUID).
		Set("lastUpdateTimeMs", updateTimeMs))
}

func (h *roomEvents) OnUserVisibilityChanged(visible bool, errCode int) {
	h.emit("onUserVisibilityChanged", codec.NewMap().
		Set("currentUserVisibility", visible).
		Set("errorCode", errCode))
}

func (h *roomEvents) OnSubtitleStateChanged(state, errCode int, message string) {
	h.emit("onSubtitleStateChanged", codec.NewMap().
		Set("state", state).
		Set("errorCode", errCode).
		Set("errorMessage", message))
}

func (h *roomEvents) OnSubtitleMessageReceived(messages []rtc.SubtitleMessage) {
	h.emit("onSubtitleMessageReceived", codec.NewMap().
		Set("subtitles", codec.EncodeList(messages)))
}

func (h *roomEvents) OnAVSyncStateChange(state int) {
	h.emit("onAVSyncStateChange", codec.NewMap().Set("state", state))
}

// rangeAudioEvents delivers range audio updates on the room's range_audio
// facet channel.
type rangeAudioEvents struct {
	key     registry.Key
	emitter *bridge.Emitter
}

func (h *rangeAudioEvents) OnRangeAudioInfo(infos []rtc.RangeAudioInfo) {
	h.emitter.EmitOn(h.key, bridge.ChannelRangeAudio, "onRangeAudioInfo", codec.NewMap().
		Set("rangeAudioInfo", codec.EncodeList(infos)))
}
