package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/rtc"
)

type mixingMethod = func(m rtc.AudioMixingManager, a *codec.Reader) (any, error)

// audioMixingTable serves the engine's audio mixing facet. Mix state and
// progress are published on the engine channel.
func audioMixingTable() bridge.Table {
	t := bridge.Table{
		"stopAllAudioMixing":   mixingSimple(rtc.AudioMixingManager.StopAllAudioMixing),
		"pauseAllAudioMixing":  mixingSimple(rtc.AudioMixingManager.PauseAllAudioMixing),
		"resumeAllAudioMixing": mixingSimple(rtc.AudioMixingManager.ResumeAllAudioMixing),
		"stopAudioMixing":      perMix(rtc.AudioMixingManager.StopAudioMixing),
		"pauseAudioMixing":     perMix(rtc.AudioMixingManager.PauseAudioMixing),
		"resumeAudioMixing":    perMix(rtc.AudioMixingManager.ResumeAudioMixing),
		"unloadAudioMixing":    perMix(rtc.AudioMixingManager.UnloadAudioMixing),

		"getAudioMixingDuration":         mixValue(rtc.AudioMixingManager.AudioMixingDuration),
		"getAudioMixingCurrentPosition":  mixValue(rtc.AudioMixingManager.AudioMixingCurrentPosition),
		"getAudioMixingPlaybackDuration": mixValue(rtc.AudioMixingManager.AudioMixingPlaybackDuration),
		"getAudioTrackCount":             mixValue(rtc.AudioMixingManager.AudioTrackCount),
	}
	for name, fn := range mixingMethods() {
		t[name] = mixing(fn)
	}
	return t
}

// mixing resolves the engine's mixing manager for a facet call.
func mixing(fn mixingMethod) bridge.Method {
	return bridge.Native(func(e rtc.Engine, a *codec.Reader) (any, error) {
		return fn(e.AudioMixingManager(), a)
	})
}

func mixingSimple(fn func(rtc.AudioMixingManager) error) bridge.Method {
	return mixing(func(m rtc.AudioMixingManager, _ *codec.Reader) (any, error) {
		return nil, fn(m)
	})
}

func perMix(fn func(rtc.AudioMixingManager, int) error) bridge.Method {
	return mixing(func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
		id := a.Int("mixId")
		return run(a, func() error { return fn(m, id) })
	})
}

func mixValue(fn func(rtc.AudioMixingManager, int) (int, error)) bridge.Method {
	return mixing(func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
		id := a.Int("mixId")
		return value(a, func() (int, error) { return fn(m, id) })
	})
}

func mixingMethods() map[string]mixingMethod {
	return map[string]mixingMethod{
		"startAudioMixing": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, path := a.Int("mixId"), a.String("filePath")
			cfg := codec.Read[rtc.AudioMixingConfig](a, "config")
			return run(a, func() error { return m.StartAudioMixing(id, path, cfg) })
		},
		"preloadAudioMixing": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, path := a.Int("mixId"), a.String("filePath")
			return run(a, func() error { return m.PreloadAudioMixing(id, path) })
		},
		"setAudioMixingVolume": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, volume := a.Int("mixId"), a.Int("volume")
			t := codec.Enum[rtc.AudioMixingType](a, "type")
			return run(a, func() error { return m.SetAudioMixingVolume(id, volume, t) })
		},
		"setAllAudioMixingVolume": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			volume := a.Int("volume")
			t := codec.Enum[rtc.AudioMixingType](a, "type")
			return run(a, func() error { return m.SetAllAudioMixingVolume(volume, t) })
		},
		"setAudioMixingPosition": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, pos := a.Int("mixId"), a.Int("position")
			return run(a, func() error { return m.SetAudioMixingPosition(id, pos) })
		},
		"setAudioMixingDualMonoMode": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id := a.Int("mixId")
			mode := codec.Enum[rtc.AudioMixingDualMonoMode](a, "mode")
			return run(a, func() error { return m.SetAudioMixingDualMonoMode(id, mode) })
		},
		"setAudioMixingPitch": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, pitch := a.Int("mixId"), a.Int("pitch")
			return run(a, func() error { return m.SetAudioMixingPitch(id, pitch) })
		},
		"setAudioMixingPlaybackSpeed": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, speed := a.Int("mixId"), a.Int("speed")
			return run(a, func() error { return m.SetAudioMixingPlaybackSpeed(id, speed) })
		},
		"setAudioMixingLoudness": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, loudness := a.Int("mixId"), a.Float32("loudness")
			return run(a, func() error { return m.SetAudioMixingLoudness(id, loudness) })
		},
		"setAudioMixingProgressInterval": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, interval := a.Int("mixId"), a.Int64("interval")
			return run(a, func() error { return m.SetAudioMixingProgressInterval(id, interval) })
		},
		"selectAudioTrack": func(m rtc.AudioMixingManager, a *codec.Reader) (any, error) {
			id, index := a.Int("mixId"), a.Int("audioTrackIndex")
			return run(a, func() error { return m.SelectAudioTrack(id, index) })
		},
	}
}
