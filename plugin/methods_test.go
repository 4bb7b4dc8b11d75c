package plugin

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/rtc"
	"github.com/wippyai/rtc-bridge/rtc/simengine"
)

func TestEngine_Methods(t *testing.T) {
	f := newFixture(t, Config{}, nil)

	encoder := codec.NewMap().
		Set("width", 640).
		Set("height", 360).
		Set("frameRate", 15).
		Set("maxBitrate", -1).
		Set("minBitrate", 0).
		Set("encoderPreference", 1)

	tests := []struct {
		method string
		args   *codec.Map
		op     string
	}{
		{"startAudioCapture", nil, "startAudioCapture"},
		{"setAudioScenario", codec.NewMap().Set("audioScenario", 0), "setAudioScenario"},
		{"setCaptureVolume", codec.NewMap().Set("index", 0).Set("volume", 100), "setCaptureVolume"},
		{"setRemoteAudioPlaybackVolume", codec.NewMap().Set("roomId", "r").Set("uid", "u").Set("volume", 80), "setRemoteAudioPlaybackVolume"},
		{"setVideoEncoderConfig", codec.NewMap().Set("channelSolutions", []any{encoder}), "setVideoEncoderConfig"},
		{"switchCamera", codec.NewMap().Set("cameraId", 1), "switchCamera"},
		{"setBusinessId", codec.NewMap().Set("businessId", "b-1"), "setBusinessId"},
		{"setRuntimeParameters", codec.NewMap().Set("params", map[string]any{"k": "v"}), "setRuntimeParameters"},
		{"login", codec.NewMap().Set("token", "t").Set("uid", "u1"), "login"},
		{"startNetworkDetection", codec.NewMap().
			Set("isTestUplink", true).
			Set("expectedUplinkBitrate", 500).
			Set("isTestDownlink", false).
			Set("expectedDownlinkBitrate", 0), "startNetworkDetection"},
		{"stopNetworkDetection", nil, "stopNetworkDetection"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			f.mustCall(t, "engine", tt.method, tt.args)
			calls := f.engine.Calls()
			if len(calls) == 0 || calls[len(calls)-1] != tt.op {
				t.Errorf("last native call = %v, want %s", calls, tt.op)
			}
		})
	}

	if v, ok := f.engine.Parameter("k"); !ok || v != "v" {
		t.Errorf("runtime parameter = %v, %v", v, ok)
	}
	f.settle(t)
	if evs := f.events("engine", "onLoginResult"); len(evs) != 1 {
		t.Errorf("login results = %d", len(evs))
	}
	if evs := f.events("engine", "onNetworkDetectionResult"); len(evs) != 1 {
		t.Errorf("detection results = %d", len(evs))
	}
}

func TestEngine_LiveTranscoding(t *testing.T) {
	f := newFixture(t, Config{}, nil)

	transcoding, err := codec.Encode(rtc.LiveTranscoding{
		URL:    "rtmp://example.invalid/live",
		RoomID: "r7",
		UID:    "u1",
		Video:  rtc.LiveVideoConfig{Codec: rtc.TranscodingVideoH264, FPS: 15, Width: 640, Height: 360},
		Audio:  rtc.LiveAudioConfig{Codec: rtc.TranscodingAudioAAC, AACProfile: rtc.AACProfileLC, SampleRate: 48000, Channels: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	f.mustCall(t, "engine", "startLiveTranscoding", codec.NewMap().
		Set("taskId", "task-1").
		Set("transcoding", transcoding))
	f.settle(t)

	evs := f.events("engine", "onStreamMixingEvent")
	if len(evs) != 1 {
		t.Fatalf("mixing events = %d", len(evs))
	}
	p := codec.NewReader(evs[0].Payload)
	if p.String("taskId") != "task-1" || p.Int("eventType") != 1 {
		t.Errorf("payload = %v", evs[0].Payload.Plain())
	}

	transcoding.Set("video", codec.NewMap().Set("codec", "VP9"))
	r := f.call(t, "engine", "updateLiveTranscoding", codec.NewMap().
		Set("taskId", "task-1").
		Set("transcoding", transcoding))
	wantKind(t, r, errors.KindInvalidEnum)
}

func readImage(t *testing.T, path string, decode func(f *os.File) (image.Config, error)) image.Config {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	defer file.Close()
	cfg, err := decode(file)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg
}

func TestSnapshot_WritesFile(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "out.png")
	task := f.mustCall(t, "engine", "takeLocalSnapshot", codec.NewMap().
		Set("streamIndex", 0).
		Set("filePath", pngPath))

	jpgPath := filepath.Join(dir, "remote.jpg")
	f.mustCall(t, "engine", "takeRemoteSnapshot", codec.NewMap().
		Set("streamKey", rtc.RemoteStreamKey{RoomID: "r7", UID: "u2"}).
		Set("filePath", jpgPath))
	f.settle(t)

	evs := f.events("engine", "onTakeLocalSnapshotResult")
	if len(evs) != 1 {
		t.Fatalf("local results = %d", len(evs))
	}
	p := codec.NewReader(evs[0].Payload)
	if p.Int64("taskId") != task.(int64) || p.String("path") != pngPath {
		t.Errorf("payload = %v", evs[0].Payload.Plain())
	}
	if !p.Bool("success") || p.Int("error") != 0 || p.Int("width") != 64 || p.Int("height") != 36 {
		t.Errorf("payload = %v", evs[0].Payload.Plain())
	}
	cfg := readImage(t, pngPath, func(f *os.File) (image.Config, error) { return png.DecodeConfig(f) })
	if cfg.Width != 64 || cfg.Height != 36 {
		t.Errorf("png size = %dx%d", cfg.Width, cfg.Height)
	}

	remote := f.events("engine", "onTakeRemoteSnapshotResult")
	if len(remote) != 1 {
		t.Fatalf("remote results = %d", len(remote))
	}
	rp := codec.NewReader(remote[0].Payload)
	if !rp.Bool("success") || rp.Map("streamKey").String("uid") != "u2" {
		t.Errorf("payload = %v", remote[0].Payload.Plain())
	}
	readImage(t, jpgPath, func(f *os.File) (image.Config, error) { return jpeg.DecodeConfig(f) })

	if f.ctrl.sess.completions.Pending() != 0 {
		t.Errorf("pending completions = %d", f.ctrl.sess.completions.Pending())
	}
}

func TestSnapshot_WriteFailure(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	path := filepath.Join(t.TempDir(), "missing", "out.jpg")

	f.mustCall(t, "engine", "takeLocalSnapshot", codec.NewMap().
		Set("streamIndex", 0).
		Set("filePath", path))
	f.settle(t)

	evs := f.events("engine", "onTakeLocalSnapshotResult")
	if len(evs) != 1 {
		t.Fatalf("results = %d", len(evs))
	}
	p := codec.NewReader(evs[0].Payload)
	if p.Bool("success") || p.Int("error") != rtc.SnapshotWriteFailed {
		t.Errorf("payload = %v", evs[0].Payload.Plain())
	}
}

func TestSnapshot_CompletionIsOneShot(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	s := f.ctrl.sess
	path := filepath.Join(t.TempDir(), "out.png")

	s.completions.Register(42, codec.NewMap().Set("path", path))
	proxy := &engineEvents{key: engineKey, emitter: s.emitter, completions: s.completions}
	shot := rtc.Snapshot{TaskID: 42, Image: image.NewRGBA(image.Rect(0, 0, 4, 4))}

	proxy.OnTakeLocalSnapshotResult(rtc.StreamIndexMain, shot)
	proxy.OnTakeLocalSnapshotResult(rtc.StreamIndexMain, shot)
	proxy.OnTakeLocalSnapshotResult(rtc.StreamIndexMain, rtc.Snapshot{TaskID: 43})
	f.settle(t)

	evs := f.events("engine", "onTakeLocalSnapshotResult")
	if len(evs) != 1 {
		t.Fatalf("delivered %d completions, want 1", len(evs))
	}
	p := codec.NewReader(evs[0].Payload)
	if p.String("path") != path || !p.Bool("success") {
		t.Errorf("payload = %v", evs[0].Payload.Plain())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot file: %v", err)
	}
}

func TestSnapshot_NilImage(t *testing.T) {
	if code := writeSnapshot(filepath.Join(t.TempDir(), "x.png"), nil); code != rtc.SnapshotInvalidFormat {
		t.Errorf("code = %d", code)
	}
}

func TestRangeAudio_Facet(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	f.createRoom(t, 7, "r7")

	f.mustCall(t, "range_audio#7", "registerRangeAudioObserver", codec.NewMap().Set("observer", true))
	f.mustCall(t, "range_audio#7", "enableRangeAudio", codec.NewMap().Set("enable", true))
	f.mustCall(t, "range_audio#7", "updateReceiveRange", codec.NewMap().
		Set("range", codec.NewMap().Set("min", 0).Set("max", 100)))
	f.mustCall(t, "range_audio#7", "updatePosition", codec.NewMap().
		Set("pos", rtc.Position{X: 50}))
	f.settle(t)

	evs := f.events("range_audio#7", "onRangeAudioInfo")
	if len(evs) != 1 {
		t.Fatalf("range events = %d", len(evs))
	}
	infos := codec.NewReader(evs[0].Payload).List("rangeAudioInfo")
	if len(infos) != 1 {
		t.Fatalf("infos = %v", infos)
	}
	if got := codec.NewReader(infos[0].(*codec.Map)).Int("factor"); got != 50 {
		t.Errorf("factor = %d", got)
	}

	f.mustCall(t, "range_audio#7", "registerRangeAudioObserver", codec.NewMap().Set("observer", false))
	f.mustCall(t, "range_audio#7", "updatePosition", codec.NewMap().Set("pos", rtc.Position{X: 10}))
	f.settle(t)
	if len(f.events("range_audio#7", "onRangeAudioInfo")) != 1 {
		t.Error("event delivered after the observer was removed")
	}

	f.mustCall(t, "spatial_audio#7", "enableSpatialAudio", codec.NewMap().Set("enable", true))
	wantKind(t, f.call(t, "spatial_audio#7", "updatePosition", codec.NewMap().Set("pos", "here")),
		errors.KindTypeMismatch)
}

func TestMediaPlayer_Channel(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	f.mustCall(t, "engine", "getMediaPlayer", codec.NewMap().Set("playerId", 1))

	wantKind(t, f.call(t, "media_player#1", "getTotalDuration", nil), errors.KindNative)

	f.mustCall(t, "media_player#1", "open", codec.NewMap().
		Set("filePath", "/music/a.mp3").
		Set("config", rtc.MediaPlayerConfig{PlayCount: 1, AutoPlay: true}))
	if d := f.mustCall(t, "media_player#1", "getTotalDuration", nil); d != int64(180000) {
		t.Errorf("duration = %v", d)
	}
	f.mustCall(t, "media_player#1", "setVolume", codec.NewMap().Set("volume", 50).Set("type", 0))
	if v := f.mustCall(t, "media_player#1", "getVolume", codec.NewMap().Set("type", 0)); v != int64(50) {
		t.Errorf("volume = %v", v)
	}
	f.settle(t)

	evs := f.events("media_player#1", "onMediaPlayerStateChanged")
	if len(evs) == 0 {
		t.Fatal("no state events")
	}
	last := codec.NewReader(evs[len(evs)-1].Payload)
	if rtc.PlayerState(last.Int("state")) != rtc.PlayerStatePlaying || last.Int("playerId") != 1 {
		t.Errorf("last state = %v", evs[len(evs)-1].Payload.Plain())
	}

	f.mustCall(t, "engine", "destroyMediaPlayer", codec.NewMap().Set("playerId", 1))
	if f.mem.Bound("media_player#1") {
		t.Error("player channel still bound")
	}
}

func TestAudioEffectPlayer_Channel(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	f.mustCall(t, "engine", "getAudioEffectPlayer", nil)

	f.mustCall(t, "audio_effect_player#0", "start", codec.NewMap().
		Set("effectId", 3).
		Set("filePath", "/fx/clap.wav").
		Set("config", rtc.AudioEffectPlayerConfig{PlayCount: 1}))
	f.mustCall(t, "audio_effect_player#0", "setVolume", codec.NewMap().Set("effectId", 3).Set("volume", 70))
	if v := f.mustCall(t, "audio_effect_player#0", "getVolume", codec.NewMap().Set("effectId", 3)); v != int64(70) {
		t.Errorf("volume = %v", v)
	}
	f.mustCall(t, "audio_effect_player#0", "pauseAll", nil)
	f.settle(t)

	evs := f.events("audio_effect_player#0", "onAudioEffectPlayerStateChanged")
	if len(evs) < 2 {
		t.Fatalf("state events = %d", len(evs))
	}
	if id := codec.NewReader(evs[0].Payload).Int("effectId"); id != 3 {
		t.Errorf("effectId = %d", id)
	}

	wantKind(t, f.call(t, "engine", "getAudioEffectPlayer", codec.NewMap().Set("playerId", "")),
		errors.KindInvalidInput)
}

func TestKTV_Channels(t *testing.T) {
	f := newFixture(t, Config{}, nil)
	f.mustCall(t, "engine", "getKTVManager", nil)

	id := f.mustCall(t, "ktv_manager", "downloadMusic", codec.NewMap().Set("musicId", "m-1001"))
	f.mustCall(t, "ktv_manager", "searchMusic", codec.NewMap().
		Set("keyWord", "lumen").
		Set("pageNum", 1).
		Set("pageSize", 10).
		Set("filters", []int{int(rtc.MusicFilterWithoutLyric)}))
	f.mustCall(t, "ktv_manager", "getMusicDetail", codec.NewMap().Set("musicId", "nope"))
	f.settle(t)

	if n := len(f.events("ktv_manager", "onDownloadMusicProgress")); n != 3 {
		t.Errorf("progress events = %d", n)
	}
	done := f.events("ktv_manager", "onDownloadSuccess")
	if len(done) != 1 {
		t.Fatalf("success events = %d", len(done))
	}
	if got, _ := done[0].Payload.Get("downloadId"); got != id {
		t.Errorf("downloadId = %v, want %v", got, id)
	}

	search := f.events("ktv_manager", "onSearchMusicResult")
	if len(search) != 1 || codec.NewReader(search[0].Payload).Int("totalSize") != 1 {
		t.Errorf("search = %v", search)
	}

	detail := f.events("ktv_manager", "onMusicDetailResult")
	if len(detail) != 1 {
		t.Fatalf("detail events = %d", len(detail))
	}
	dp := codec.NewReader(detail[0].Payload)
	if dp.Has("music") || dp.Int("errorCode") != simengine.CodeMusicNotFound {
		t.Errorf("detail = %v", detail[0].Payload.Plain())
	}

	f.mustCall(t, "ktv_manager", "getKTVPlayer", nil)
	f.mustCall(t, "ktv_player#0", "playMusic", codec.NewMap().
		Set("musicId", "m-1001").
		Set("trackType", int(rtc.AudioTrackAccompany)).
		Set("playType", int(rtc.AudioPlayLocal)))
	f.mustCall(t, "ktv_player#0", "pauseMusic", codec.NewMap().Set("musicId", "m-1001"))
	f.settle(t)
	if len(f.events("ktv_player#0", "onPlayProgress")) != 1 {
		t.Error("no play progress")
	}

	f.mustCall(t, "ktv_manager", "destroyKTVPlayer", nil)
	if f.mem.Bound("ktv_player#0") {
		t.Error("ktv player still bound")
	}
}
