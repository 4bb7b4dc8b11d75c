package simengine

import (
	"image"
	"image/color"
	"sync"

	"github.com/wippyai/rtc-bridge/rtc"
)

// Engine is a simulated rtc.Engine. Calls are recorded and answered with
// plausible callbacks on a dedicated callback goroutine.
type Engine struct {
	factory *Factory
	cfg     rtc.EngineConfig
	handler rtc.EngineEventHandler
	cb      *callbacks

	mu        sync.Mutex
	destroyed bool
	calls     []string
	nextTask  int64
	rooms     map[string]*Room
	ktv       *KTVManager
	scoring   *SingScoring
	mixer     *AudioMixer
	effects   *VideoEffects
	loggedIn  string

	audioCapture bool
	videoCapture bool
	params       map[string]any
}

var _ rtc.Engine = (*Engine)(nil)

func newEngine(f *Factory, cfg rtc.EngineConfig, h rtc.EngineEventHandler) *Engine {
	params := make(map[string]any, len(cfg.Parameters))
	for k, v := range cfg.Parameters {
		params[k] = v
	}
	e := &Engine{
		factory: f,
		cfg:     cfg,
		handler: h,
		cb:      newCallbacks(),
		rooms:   make(map[string]*Room),
		params:  params,
	}
	e.mixer = newAudioMixer(e)
	e.effects = &VideoEffects{engine: e}
	return e
}

// Calls returns the operations invoked so far, in order.
func (e *Engine) Calls() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.calls...)
}

// Flush waits until every callback triggered so far has been delivered.
func (e *Engine) Flush() {
	e.cb.flush()
}

// Parameter returns a runtime parameter set at creation or through
// SetRuntimeParameters.
func (e *Engine) Parameter(key string) (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.params[key]
	return v, ok
}

// Tick fires the periodic engine statistics callback.
func (e *Engine) Tick() {
	e.emit(func(h rtc.EngineEventHandler) {
		h.OnSysStats(rtc.SysStats{CPUCores: 8, CPUAppUsage: 0.12, CPUTotalUsage: 0.4, MemoryUsage: 180})
	})
}

func (e *Engine) record(op string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return fail(op, CodeDestroyed)
	}
	e.calls = append(e.calls, op)
	return nil
}

func (e *Engine) emit(fn func(h rtc.EngineEventHandler)) {
	if e.handler == nil {
		return
	}
	e.cb.post(func() { fn(e.handler) })
}

func (e *Engine) task() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextTask++
	return e.nextTask
}

func (e *Engine) Destroy() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true
	e.calls = append(e.calls, "destroy")
	e.mu.Unlock()
	e.cb.stop()
}

func (e *Engine) StartAudioCapture() error {
	if err := e.record("startAudioCapture"); err != nil {
		return err
	}
	e.mu.Lock()
	e.audioCapture = true
	e.mu.Unlock()
	e.emit(func(h rtc.EngineEventHandler) { h.OnLocalAudioStateChanged(1, 0) })
	return nil
}

func (e *Engine) StopAudioCapture() error {
	if err := e.record("stopAudioCapture"); err != nil {
		return err
	}
	e.mu.Lock()
	e.audioCapture = false
	e.mu.Unlock()
	e.emit(func(h rtc.EngineEventHandler) { h.OnLocalAudioStateChanged(0, 0) })
	return nil
}

func (e *Engine) SetAudioScenario(s rtc.AudioScenario) error {
	return e.record("setAudioScenario")
}

func (e *Engine) SetAudioProfile(p rtc.AudioProfile) error {
	return e.record("setAudioProfile")
}

func (e *Engine) SetCaptureVolume(idx rtc.StreamIndex, volume int) error {
	if volume < 0 || volume > 400 {
		return fail("setCaptureVolume", CodeInvalidArgument)
	}
	return e.record("setCaptureVolume")
}

func (e *Engine) SetPlaybackVolume(volume int) error {
	if volume < 0 || volume > 400 {
		return fail("setPlaybackVolume", CodeInvalidArgument)
	}
	return e.record("setPlaybackVolume")
}

func (e *Engine) SetLocalVoiceReverbParam(cfg rtc.VoiceReverbConfig) error {
	return e.record("setLocalVoiceReverbParam")
}

func (e *Engine) SetLocalVoiceEqualization(cfg rtc.VoiceEqualizationConfig) error {
	return e.record("setLocalVoiceEqualization")
}

func (e *Engine) EnableAudioPropertiesReport(cfg rtc.AudioPropertiesConfig) error {
	if err := e.record("enableAudioPropertiesReport"); err != nil {
		return err
	}
	if cfg.Interval <= 0 {
		return nil
	}
	info := rtc.AudioPropertiesInfo{LinearVolume: 40, NonlinearVolume: 20, Spectrum: []float64{}}
	e.emit(func(h rtc.EngineEventHandler) {
		h.OnLocalAudioPropertiesReport([]rtc.LocalAudioPropertiesInfo{
			{StreamIndex: rtc.StreamIndexMain, AudioPropertiesInfo: info},
		})
	})
	return nil
}

func (e *Engine) SetRemoteAudioPlaybackVolume(roomID, uid string, volume int) error {
	return e.record("setRemoteAudioPlaybackVolume")
}

func (e *Engine) SetMaxVideoEncoderConfig(cfg rtc.VideoEncoderConfig) error {
	return e.record("setMaxVideoEncoderConfig")
}

func (e *Engine) SetVideoEncoderConfig(cfgs []rtc.VideoEncoderConfig) error {
	if len(cfgs) == 0 {
		return fail("setVideoEncoderConfig", CodeInvalidArgument)
	}
	return e.record("setVideoEncoderConfig")
}

func (e *Engine) SetScreenVideoEncoderConfig(cfg rtc.ScreenVideoEncoderConfig) error {
	return e.record("setScreenVideoEncoderConfig")
}

func (e *Engine) SetVideoCaptureConfig(cfg rtc.VideoCaptureConfig) error {
	return e.record("setVideoCaptureConfig")
}

func (e *Engine) StartVideoCapture() error {
	if err := e.record("startVideoCapture"); err != nil {
		return err
	}
	e.mu.Lock()
	e.videoCapture = true
	e.mu.Unlock()
	e.emit(func(h rtc.EngineEventHandler) {
		h.OnLocalVideoStateChanged(rtc.StreamIndexMain, 1, 0)
		h.OnFirstLocalVideoFrameCaptured(rtc.StreamIndexMain, rtc.VideoFrameInfo{Width: 1280, Height: 720})
	})
	return nil
}

func (e *Engine) StopVideoCapture() error {
	if err := e.record("stopVideoCapture"); err != nil {
		return err
	}
	e.mu.Lock()
	e.videoCapture = false
	e.mu.Unlock()
	e.emit(func(h rtc.EngineEventHandler) { h.OnLocalVideoStateChanged(rtc.StreamIndexMain, 0, 0) })
	return nil
}

func (e *Engine) SwitchCamera(id rtc.CameraID) error { return e.record("switchCamera") }

func (e *Engine) SetCameraTorch(s rtc.TorchState) error { return e.record("setCameraTorch") }

func (e *Engine) SetVideoWatermark(idx rtc.StreamIndex, imagePath string, cfg rtc.WatermarkConfig) error {
	if imagePath == "" {
		return fail("setVideoWatermark", CodeInvalidArgument)
	}
	return e.record("setVideoWatermark")
}

func (e *Engine) ClearVideoWatermark(idx rtc.StreamIndex) error {
	return e.record("clearVideoWatermark")
}

func (e *Engine) SetBackgroundSticker(modelPath string, src rtc.VirtualBackgroundSource) error {
	return e.record("setBackgroundSticker")
}

func (e *Engine) StartLiveTranscoding(taskID string, t rtc.LiveTranscoding) error {
	if err := e.record("startLiveTranscoding"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnStreamMixingEvent(1, taskID, 0, t.MixType) })
	return nil
}

func (e *Engine) UpdateLiveTranscoding(taskID string, t rtc.LiveTranscoding) error {
	if err := e.record("updateLiveTranscoding"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnStreamMixingEvent(4, taskID, 0, t.MixType) })
	return nil
}

func (e *Engine) StopLiveTranscoding(taskID string) error {
	if err := e.record("stopLiveTranscoding"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnStreamMixingEvent(6, taskID, 0, rtc.MixTypeServer) })
	return nil
}

func (e *Engine) StartPushPublicStream(streamID string, p rtc.PublicStreaming) error {
	if err := e.record("startPushPublicStream"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnPushPublicStreamResult(p.RoomID, streamID, 0) })
	return nil
}

func (e *Engine) StopPushPublicStream(streamID string) error {
	return e.record("stopPushPublicStream")
}

func (e *Engine) StartPushSingleStreamToCDN(taskID string, p rtc.PushSingleStreamParam) error {
	if err := e.record("startPushSingleStreamToCDN"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnStreamMixingEvent(1, taskID, 0, rtc.MixTypeServer) })
	return nil
}

func (e *Engine) StopPushStreamToCDN(taskID string) error {
	return e.record("stopPushStreamToCDN")
}

func (e *Engine) SetPublishFallbackOption(o rtc.PublishFallbackOption) error {
	return e.record("setPublishFallbackOption")
}

func (e *Engine) SetSubscribeFallbackOption(o rtc.SubscribeFallbackOption) error {
	return e.record("setSubscribeFallbackOption")
}

func (e *Engine) SetRemoteUserPriority(roomID, uid string, p rtc.RemoteUserPriority) error {
	return e.record("setRemoteUserPriority")
}

func (e *Engine) SetBusinessID(id string) error {
	if len(id) > 24 {
		return fail("setBusinessId", CodeInvalidArgument)
	}
	return e.record("setBusinessId")
}

func (e *Engine) Feedback(options []rtc.ProblemFeedbackOption, info *rtc.ProblemFeedbackInfo) error {
	return e.record("feedback")
}

func (e *Engine) SetRuntimeParameters(params map[string]any) error {
	if err := e.record("setRuntimeParameters"); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range params {
		e.params[k] = v
	}
	return nil
}

func (e *Engine) CreateRoom(roomID string) (rtc.Room, error) {
	if roomID == "" {
		return nil, fail("createRTCRoom", CodeInvalidArgument)
	}
	if err := e.record("createRTCRoom"); err != nil {
		return nil, err
	}
	r := newRoom(e, roomID)
	e.mu.Lock()
	e.rooms[roomID] = r
	e.mu.Unlock()
	return r, nil
}

func (e *Engine) dropRoom(roomID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.rooms, roomID)
}

func (e *Engine) CreateMediaPlayer(playerID int) (rtc.MediaPlayer, error) {
	if playerID < 0 {
		return nil, fail("getMediaPlayer", CodeInvalidArgument)
	}
	if err := e.record("getMediaPlayer"); err != nil {
		return nil, err
	}
	return &MediaPlayer{engine: e, id: playerID, volume: 100}, nil
}

func (e *Engine) CreateAudioEffectPlayer() (rtc.AudioEffectPlayer, error) {
	if err := e.record("getAudioEffectPlayer"); err != nil {
		return nil, err
	}
	return &AudioEffectPlayer{engine: e, effects: make(map[int]*effect)}, nil
}

func (e *Engine) KTVManager() (rtc.KTVManager, error) {
	if err := e.record("getKTVManager"); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ktv == nil || e.ktv.isDestroyed() {
		e.ktv = newKTVManager(e)
	}
	return e.ktv, nil
}

func (e *Engine) AudioMixingManager() rtc.AudioMixingManager { return e.mixer }

// Mixer returns the concrete mixer for inspection in tests.
func (e *Engine) Mixer() *AudioMixer { return e.mixer }

func (e *Engine) VideoEffect() rtc.VideoEffect { return e.effects }

// Effects returns the concrete video effect pipeline for inspection.
func (e *Engine) Effects() *VideoEffects { return e.effects }

func (e *Engine) SingScoringManager() (rtc.SingScoringManager, error) {
	if e.factory.NoSingScoring {
		return nil, fail("getSingScoringManager", CodeInvalidState)
	}
	if err := e.record("getSingScoringManager"); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.scoring == nil || e.scoring.isDestroyed() {
		e.scoring = &SingScoring{engine: e}
	}
	return e.scoring, nil
}

func (e *Engine) StartASR(cfg rtc.ASRConfig) error {
	if err := e.record("startASR"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnASRSuccess("") })
	return nil
}

func (e *Engine) StopASR() error { return e.record("stopASR") }

func (e *Engine) StartFileRecording(idx rtc.StreamIndex, cfg rtc.RecordingConfig, t rtc.RecordingType) error {
	if err := e.record("startFileRecording"); err != nil {
		return err
	}
	ext := ".flv"
	if cfg.RecordingFileType == rtc.RecordingFileTypeMP4 {
		ext = ".mp4"
	}
	info := rtc.RecordingInfo{FilePath: cfg.DirPath + "/record" + ext, VideoCodecType: rtc.VideoCodecH264, Width: 1280, Height: 720}
	e.emit(func(h rtc.EngineEventHandler) {
		h.OnRecordingStateUpdate(idx, 1, 0, info)
		h.OnRecordingProgressUpdate(idx, rtc.RecordingProgress{Duration: 1000, FileSize: 64 << 10}, info)
	})
	return nil
}

func (e *Engine) StopFileRecording(idx rtc.StreamIndex) error {
	if err := e.record("stopFileRecording"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnRecordingStateUpdate(idx, 0, 0, rtc.RecordingInfo{}) })
	return nil
}

func (e *Engine) StartAudioRecording(cfg rtc.AudioRecordingConfig) error {
	if cfg.AbsoluteFileName == "" {
		return fail("startAudioRecording", CodeInvalidArgument)
	}
	return e.record("startAudioRecording")
}

func (e *Engine) StopAudioRecording() error { return e.record("stopAudioRecording") }

func (e *Engine) Login(token, uid string) error {
	if err := e.record("login"); err != nil {
		return err
	}
	code := 0
	if token == "expired" {
		code = CodeTokenExpired
	} else {
		e.mu.Lock()
		e.loggedIn = uid
		e.mu.Unlock()
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnLoginResult(uid, code, 12) })
	return nil
}

func (e *Engine) Logout() error {
	if err := e.record("logout"); err != nil {
		return err
	}
	e.mu.Lock()
	e.loggedIn = ""
	e.mu.Unlock()
	e.emit(func(h rtc.EngineEventHandler) { h.OnLogout(0) })
	return nil
}

func (e *Engine) SendStreamSyncInfo(data []byte, cfg rtc.StreamSyncInfoConfig) (int, error) {
	if len(data) == 0 || len(data) > 255 {
		return 0, fail("sendStreamSyncInfo", CodeInvalidArgument)
	}
	if err := e.record("sendStreamSyncInfo"); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (e *Engine) StartCloudProxy(list []rtc.CloudProxyInfo) error {
	if len(list) == 0 {
		return fail("startCloudProxy", CodeInvalidArgument)
	}
	if err := e.record("startCloudProxy"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnCloudProxyConnected(35) })
	return nil
}

func (e *Engine) StopCloudProxy() error { return e.record("stopCloudProxy") }

func (e *Engine) SetLocalProxy(list []rtc.LocalProxyConfiguration) error {
	return e.record("setLocalProxy")
}

func (e *Engine) SetCellularEnhancement(cfg rtc.MediaTypeEnhancementConfig) error {
	return e.record("setCellularEnhancement")
}

func (e *Engine) StartEchoTest(cfg rtc.EchoTestConfig, playDelay int) error {
	if err := e.record("startEchoTest"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) { h.OnEchoTestResult(0) })
	return nil
}

func (e *Engine) StopEchoTest() error { return e.record("stopEchoTest") }

func (e *Engine) StartNetworkDetection(uplink bool, uplinkKbps int, downlink bool, downlinkKbps int) error {
	if !uplink && !downlink {
		return fail("startNetworkDetection", CodeInvalidArgument)
	}
	if err := e.record("startNetworkDetection"); err != nil {
		return err
	}
	e.emit(func(h rtc.EngineEventHandler) {
		if uplink {
			h.OnNetworkDetectionResult(0, int(rtc.NetworkQualityExcellent), 30, 0, uplinkKbps, 2)
		}
		if downlink {
			h.OnNetworkDetectionResult(1, int(rtc.NetworkQualityGood), 32, 0.01, downlinkKbps, 3)
		}
	})
	return nil
}

func (e *Engine) StopNetworkDetection() error { return e.record("stopNetworkDetection") }

func (e *Engine) TakeLocalSnapshot(idx rtc.StreamIndex) (int64, error) {
	if err := e.record("takeLocalSnapshot"); err != nil {
		return 0, err
	}
	id := e.task()
	shot := e.snapshot(id)
	e.emit(func(h rtc.EngineEventHandler) { h.OnTakeLocalSnapshotResult(idx, shot) })
	return id, nil
}

func (e *Engine) TakeRemoteSnapshot(key rtc.RemoteStreamKey) (int64, error) {
	if err := e.record("takeRemoteSnapshot"); err != nil {
		return 0, err
	}
	id := e.task()
	shot := e.snapshot(id)
	e.emit(func(h rtc.EngineEventHandler) { h.OnTakeRemoteSnapshotResult(key, shot) })
	return id, nil
}

func (e *Engine) snapshot(taskID int64) rtc.Snapshot {
	w, h := e.factory.SnapshotSize[0], e.factory.SnapshotSize[1]
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return rtc.Snapshot{TaskID: taskID, Image: img}
}

// RemoteUserJoins simulates a remote participant arriving in roomID and
// publishing their main stream.
func (e *Engine) RemoteUserJoins(roomID, uid string) {
	e.mu.Lock()
	r := e.rooms[roomID]
	e.mu.Unlock()
	if r == nil {
		return
	}
	r.emit(func(h rtc.RoomEventHandler) {
		h.OnUserJoined(rtc.UserInfo{UID: uid}, 0)
		h.OnUserPublishStream(uid, rtc.MediaStreamTypeBoth)
	})
	key := rtc.RemoteStreamKey{RoomID: roomID, UID: uid, StreamIndex: rtc.StreamIndexMain}
	e.emit(func(h rtc.EngineEventHandler) {
		h.OnFirstRemoteVideoFrameDecoded(key, rtc.VideoFrameInfo{Width: 640, Height: 360})
		h.OnActiveSpeaker(roomID, uid)
	})
}
