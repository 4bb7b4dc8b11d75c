package simengine

import (
	"sync"

	"github.com/wippyai/rtc-bridge/rtc"
)

// Room is a simulated rtc.Room. Its callbacks share the engine's callback
// thread.
type Room struct {
	engine *Engine
	id     string

	mu        sync.Mutex
	handler   rtc.RoomEventHandler
	observer  rtc.RangeAudioObserver
	destroyed bool
	joined    bool
	uid       string
	nextMsg   int64
	nextTask  int64
	forwards  map[string]bool
	spatial   spatialState
	rangeA    rangeState
}

type spatialState struct {
	enabled     bool
	position    rtc.Position
	orientation rtc.HumanOrientation
}

type rangeState struct {
	enabled  bool
	receive  rtc.ReceiveRange
	position rtc.Position
}

var _ rtc.Room = (*Room)(nil)

func newRoom(e *Engine, id string) *Room {
	return &Room{engine: e, id: id, forwards: make(map[string]bool)}
}

// ID returns the room id.
func (r *Room) ID() string { return r.id }

// Joined reports whether JoinRoom succeeded and LeaveRoom has not been called.
func (r *Room) Joined() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.joined
}

func (r *Room) SetEventHandler(h rtc.RoomEventHandler) {
	r.mu.Lock()
	r.handler = h
	r.mu.Unlock()
}

func (r *Room) emit(fn func(h rtc.RoomEventHandler)) {
	r.engine.cb.post(func() {
		r.mu.Lock()
		h := r.handler
		r.mu.Unlock()
		if h != nil {
			fn(h)
		}
	})
}

func (r *Room) record(op string) error {
	r.mu.Lock()
	dead := r.destroyed
	r.mu.Unlock()
	if dead {
		return fail(op, CodeDestroyed)
	}
	return r.engine.record("room." + op)
}

func (r *Room) requireJoined(op string) error {
	if err := r.record(op); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.joined {
		return fail(op, CodeNotJoined)
	}
	return nil
}

func (r *Room) Destroy() {
	r.mu.Lock()
	if r.destroyed {
		r.mu.Unlock()
		return
	}
	r.destroyed = true
	r.joined = false
	r.handler = nil
	r.observer = nil
	r.mu.Unlock()
	r.engine.dropRoom(r.id)
	_ = r.engine.record("room.destroy")
}

// Tick fires the periodic room callbacks: room stats, local and remote
// stream stats and network quality.
func (r *Room) Tick() {
	r.mu.Lock()
	joined, uid := r.joined, r.uid
	r.mu.Unlock()
	if !joined {
		return
	}
	r.emit(func(h rtc.RoomEventHandler) {
		h.OnRoomStats(rtc.RoomStats{Duration: 10, UserCount: 2, TxKBitrate: 900, RxKBitrate: 850, RTT: 40})
		h.OnLocalStreamStats(rtc.LocalStreamStats{
			AudioStats: rtc.LocalAudioStats{SentKBitrate: 32, RecordSampleRate: 48000, NumChannels: 1},
			VideoStats: rtc.LocalVideoStats{SentKBitrate: 850, SentFrameRate: 15, CodecType: rtc.VideoCodecH264},
		})
		h.OnRemoteStreamStats(rtc.RemoteStreamStats{
			UID:        "remote",
			AudioStats: rtc.RemoteAudioStats{ReceivedKBitrate: 30, Quality: rtc.NetworkQualityGood},
			VideoStats: rtc.RemoteVideoStats{Width: 640, Height: 360, CodecType: rtc.VideoCodecH264},
		})
		h.OnNetworkQuality(
			rtc.NetworkQualityStats{UID: uid, TxQuality: rtc.NetworkQualityExcellent, RxQuality: rtc.NetworkQualityGood},
			[]rtc.NetworkQualityStats{{UID: "remote", TxQuality: rtc.NetworkQualityGood, RxQuality: rtc.NetworkQualityGood}},
		)
	})
}

func (r *Room) JoinRoom(token string, user rtc.UserInfo, cfg rtc.RoomConfig) error {
	if token == "" || user.UID == "" {
		return fail("joinRoom", CodeInvalidArgument)
	}
	if err := r.record("joinRoom"); err != nil {
		return err
	}
	r.mu.Lock()
	if r.joined {
		r.mu.Unlock()
		return fail("joinRoom", CodeInvalidState)
	}
	state := 0
	if token == "expired" {
		state = CodeTokenExpired
	} else {
		r.joined = true
		r.uid = user.UID
	}
	r.mu.Unlock()

	r.emit(func(h rtc.RoomEventHandler) {
		h.OnRoomStateChanged(r.id, user.UID, state, `{"join_type":0,"elapsed":120}`)
		if state == 0 && cfg.IsAutoPublish {
			h.OnStreamPublishSuccess(user.UID, false)
		}
	})
	return nil
}

func (r *Room) LeaveRoom() error {
	if err := r.record("leaveRoom"); err != nil {
		return err
	}
	r.mu.Lock()
	was := r.joined
	r.joined = false
	r.mu.Unlock()
	if was {
		r.emit(func(h rtc.RoomEventHandler) { h.OnLeaveRoom(rtc.RoomStats{Duration: 10}) })
	}
	return nil
}

func (r *Room) UpdateToken(token string) error {
	if token == "" {
		return fail("updateToken", CodeInvalidArgument)
	}
	return r.record("updateToken")
}

func (r *Room) SetUserVisibility(visible bool) error {
	if err := r.requireJoined("setUserVisibility"); err != nil {
		return err
	}
	r.emit(func(h rtc.RoomEventHandler) { h.OnUserVisibilityChanged(visible, 0) })
	return nil
}

func (r *Room) SetMultiDeviceAVSync(audioUserID string) error {
	if err := r.requireJoined("setMultiDeviceAVSync"); err != nil {
		return err
	}
	state := 1
	if audioUserID == "" {
		state = 0
	}
	r.emit(func(h rtc.RoomEventHandler) { h.OnAVSyncStateChange(state) })
	return nil
}

func (r *Room) SetRemoteVideoConfig(uid string, cfg rtc.RemoteVideoConfig) error {
	return r.record("setRemoteVideoConfig")
}

func (r *Room) publish(op string, t rtc.MediaStreamType, screen bool) error {
	if !t.Valid() {
		return fail(op, CodeInvalidArgument)
	}
	if err := r.requireJoined(op); err != nil {
		return err
	}
	r.mu.Lock()
	uid := r.uid
	r.mu.Unlock()
	r.emit(func(h rtc.RoomEventHandler) { h.OnStreamPublishSuccess(uid, screen) })
	return nil
}

func (r *Room) PublishStream(t rtc.MediaStreamType) error {
	return r.publish("publishStream", t, false)
}

func (r *Room) UnpublishStream(t rtc.MediaStreamType) error {
	return r.requireJoined("unpublishStream")
}

func (r *Room) PublishScreen(t rtc.MediaStreamType) error {
	return r.publish("publishScreen", t, true)
}

func (r *Room) UnpublishScreen(t rtc.MediaStreamType) error {
	return r.requireJoined("unpublishScreen")
}

func (r *Room) subscribe(op, uid string, t rtc.MediaStreamType, screen, on bool) error {
	if uid == "" || !t.Valid() {
		return fail(op, CodeInvalidArgument)
	}
	if err := r.requireJoined(op); err != nil {
		return err
	}
	state := 0
	if !on {
		state = 1
	}
	info := rtc.SubscribeConfig{
		IsScreen: screen,
		SubAudio: on && t != rtc.MediaStreamTypeVideo,
		SubVideo: on && t != rtc.MediaStreamTypeAudio,
	}
	r.emit(func(h rtc.RoomEventHandler) { h.OnStreamSubscribed(state, uid, info) })
	return nil
}

func (r *Room) SubscribeStream(uid string, t rtc.MediaStreamType) error {
	return r.subscribe("subscribeStream", uid, t, false, true)
}

func (r *Room) UnsubscribeStream(uid string, t rtc.MediaStreamType) error {
	return r.subscribe("unsubscribeStream", uid, t, false, false)
}

func (r *Room) SubscribeScreen(uid string, t rtc.MediaStreamType) error {
	return r.subscribe("subscribeScreen", uid, t, true, true)
}

func (r *Room) UnsubscribeScreen(uid string, t rtc.MediaStreamType) error {
	return r.subscribe("unsubscribeScreen", uid, t, true, false)
}

func (r *Room) PauseAllSubscribedStream(t rtc.PauseResumeMediaType) error {
	return r.requireJoined("pauseAllSubscribedStream")
}

func (r *Room) ResumeAllSubscribedStream(t rtc.PauseResumeMediaType) error {
	return r.requireJoined("resumeAllSubscribedStream")
}

func (r *Room) message(op string, user bool) (int64, error) {
	if err := r.requireJoined(op); err != nil {
		return 0, err
	}
	r.mu.Lock()
	r.nextMsg++
	id := r.nextMsg
	r.mu.Unlock()
	r.emit(func(h rtc.RoomEventHandler) {
		if user {
			h.OnUserMessageSendResult(id, 0)
		} else {
			h.OnRoomMessageSendResult(id, 0)
		}
	})
	return id, nil
}

func (r *Room) SendUserMessage(uid, message string, cfg rtc.MessageConfig) (int64, error) {
	if uid == "" {
		return 0, fail("sendUserMessage", CodeInvalidArgument)
	}
	return r.message("sendUserMessage", true)
}

func (r *Room) SendUserBinaryMessage(uid string, message []byte, cfg rtc.MessageConfig) (int64, error) {
	if uid == "" {
		return 0, fail("sendUserBinaryMessage", CodeInvalidArgument)
	}
	return r.message("sendUserBinaryMessage", true)
}

func (r *Room) SendRoomMessage(message string) (int64, error) {
	return r.message("sendRoomMessage", false)
}

func (r *Room) SendRoomBinaryMessage(message []byte) (int64, error) {
	return r.message("sendRoomBinaryMessage", false)
}

// DeliverRoomMessage simulates a message from uid arriving in the room.
func (r *Room) DeliverRoomMessage(uid, message string) {
	r.emit(func(h rtc.RoomEventHandler) { h.OnRoomMessageReceived(uid, message) })
}

func (r *Room) forward(op string, targets []rtc.ForwardStreamInfo) (int, error) {
	if len(targets) == 0 {
		return 0, fail(op, CodeInvalidArgument)
	}
	if err := r.requireJoined(op); err != nil {
		return 0, err
	}
	states := make([]rtc.ForwardStreamStateInfo, 0, len(targets))
	r.mu.Lock()
	for _, t := range targets {
		r.forwards[t.RoomID] = true
		states = append(states, rtc.ForwardStreamStateInfo{RoomID: t.RoomID, State: rtc.ForwardStreamStateSuccess})
	}
	r.mu.Unlock()
	r.emit(func(h rtc.RoomEventHandler) { h.OnForwardStreamStateChanged(states) })
	return 0, nil
}

func (r *Room) StartForwardStreamToRooms(targets []rtc.ForwardStreamInfo) (int, error) {
	return r.forward("startForwardStreamToRooms", targets)
}

func (r *Room) UpdateForwardStreamToRooms(targets []rtc.ForwardStreamInfo) (int, error) {
	return r.forward("updateForwardStreamToRooms", targets)
}

func (r *Room) StopForwardStreamToRooms() error {
	if err := r.record("stopForwardStreamToRooms"); err != nil {
		return err
	}
	r.mu.Lock()
	states := make([]rtc.ForwardStreamStateInfo, 0, len(r.forwards))
	for id := range r.forwards {
		states = append(states, rtc.ForwardStreamStateInfo{RoomID: id, State: rtc.ForwardStreamStateIdle})
	}
	r.forwards = make(map[string]bool)
	r.mu.Unlock()
	if len(states) > 0 {
		r.emit(func(h rtc.RoomEventHandler) { h.OnForwardStreamStateChanged(states) })
	}
	return nil
}

func (r *Room) PauseForwardStreamToAllRooms() error {
	return r.record("pauseForwardStreamToAllRooms")
}

func (r *Room) ResumeForwardStreamToAllRooms() error {
	return r.record("resumeForwardStreamToAllRooms")
}

func (r *Room) SetRoomExtraInfo(key, value string) (int64, error) {
	if key == "" {
		return 0, fail("setRoomExtraInfo", CodeInvalidArgument)
	}
	if err := r.requireJoined("setRoomExtraInfo"); err != nil {
		return 0, err
	}
	r.mu.Lock()
	r.nextTask++
	id := r.nextTask
	uid := r.uid
	r.mu.Unlock()
	r.emit(func(h rtc.RoomEventHandler) {
		h.OnSetRoomExtraInfoResult(id, 0)
		h.OnRoomExtraInfoUpdate(key, value, uid, 1700000000000)
	})
	return id, nil
}

func (r *Room) StartSubtitle(cfg rtc.SubtitleConfig) error {
	if err := r.requireJoined("startSubtitle"); err != nil {
		return err
	}
	r.emit(func(h rtc.RoomEventHandler) { h.OnSubtitleStateChanged(1, 0, "") })
	return nil
}

func (r *Room) StopSubtitle() error {
	if err := r.record("stopSubtitle"); err != nil {
		return err
	}
	r.emit(func(h rtc.RoomEventHandler) { h.OnSubtitleStateChanged(0, 0, "") })
	return nil
}

func (r *Room) SpatialAudio() rtc.SpatialAudio { return (*spatialAudio)(r) }

func (r *Room) RangeAudio() rtc.RangeAudio { return (*rangeAudio)(r) }

type spatialAudio Room

func (s *spatialAudio) room() *Room { return (*Room)(s) }

func (s *spatialAudio) EnableSpatialAudio(enable bool) error {
	r := s.room()
	if err := r.record("spatialAudio.enableSpatialAudio"); err != nil {
		return err
	}
	r.mu.Lock()
	r.spatial.enabled = enable
	r.mu.Unlock()
	return nil
}

func (s *spatialAudio) UpdatePosition(pos rtc.Position) error {
	r := s.room()
	if err := r.record("spatialAudio.updatePosition"); err != nil {
		return err
	}
	r.mu.Lock()
	r.spatial.position = pos
	r.mu.Unlock()
	return nil
}

func (s *spatialAudio) UpdateSelfOrientation(o rtc.HumanOrientation) error {
	r := s.room()
	if err := r.record("spatialAudio.updateSelfOrientation"); err != nil {
		return err
	}
	r.mu.Lock()
	r.spatial.orientation = o
	r.mu.Unlock()
	return nil
}

func (s *spatialAudio) DisableRemoteOrientation() error {
	return s.room().record("spatialAudio.disableRemoteOrientation")
}

type rangeAudio Room

func (a *rangeAudio) room() *Room { return (*Room)(a) }

func (a *rangeAudio) EnableRangeAudio(enable bool) error {
	r := a.room()
	if err := r.record("rangeAudio.enableRangeAudio"); err != nil {
		return err
	}
	r.mu.Lock()
	r.rangeA.enabled = enable
	r.mu.Unlock()
	return nil
}

func (a *rangeAudio) UpdateReceiveRange(rr rtc.ReceiveRange) error {
	if rr.Min < 0 || rr.Max < rr.Min {
		return fail("rangeAudio.updateReceiveRange", CodeInvalidArgument)
	}
	r := a.room()
	if err := r.record("rangeAudio.updateReceiveRange"); err != nil {
		return err
	}
	r.mu.Lock()
	r.rangeA.receive = rr
	r.mu.Unlock()
	return nil
}

// UpdatePosition stores the position and, with range audio enabled, reports
// attenuation for a remote participant through the observer.
func (a *rangeAudio) UpdatePosition(pos rtc.Position) error {
	r := a.room()
	if err := r.record("rangeAudio.updatePosition"); err != nil {
		return err
	}
	r.mu.Lock()
	r.rangeA.position = pos
	enabled, rr := r.rangeA.enabled, r.rangeA.receive
	r.mu.Unlock()
	if !enabled {
		return nil
	}
	factor := 100
	if d := int(pos.X); rr.Max > 0 && d > rr.Min {
		factor = 0
		if d < rr.Max {
			factor = 100 * (rr.Max - d) / (rr.Max - rr.Min)
		}
	}
	r.engine.cb.post(func() {
		r.mu.Lock()
		o := r.observer
		r.mu.Unlock()
		if o != nil {
			o.OnRangeAudioInfo([]rtc.RangeAudioInfo{{UID: "remote", Factor: factor}})
		}
	})
	return nil
}

func (a *rangeAudio) SetObserver(o rtc.RangeAudioObserver) {
	r := a.room()
	r.mu.Lock()
	r.observer = o
	r.mu.Unlock()
}
