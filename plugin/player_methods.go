package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/rtc"
)

type mediaPlayerMethod = func(p rtc.MediaPlayer, a *codec.Reader) (any, error)

func (s *session) mediaPlayerTable() bridge.Table {
	t := bridge.Table{
		"start":   simple(rtc.MediaPlayer.Start),
		"stop":    simple(rtc.MediaPlayer.Stop),
		"pause":   simple(rtc.MediaPlayer.Pause),
		"resume":  simple(rtc.MediaPlayer.Resume),
		"destroy": s.destroySelf,

		"getTotalDuration":    getter(rtc.MediaPlayer.TotalDuration),
		"getPlaybackDuration": getter(rtc.MediaPlayer.PlaybackDuration),
		"getPosition":         getter(rtc.MediaPlayer.Position),
		"getAudioTrackCount":  getter(rtc.MediaPlayer.AudioTrackCount),
	}
	for name, fn := range mediaPlayerMethods() {
		t[name] = bridge.Native(fn)
	}
	return t
}

// getter adapts an argument-less native query.
func getter[T any](fn func(T) (int, error)) bridge.Method {
	return bridge.Native(func(n T, _ *codec.Reader) (any, error) {
		v, err := fn(n)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}

func mediaPlayerMethods() map[string]mediaPlayerMethod {
	return map[string]mediaPlayerMethod{
		"open": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			path := a.String("filePath")
			cfg := codec.Read[rtc.MediaPlayerConfig](a, "config")
			return run(a, func() error { return p.Open(path, cfg) })
		},
		"setVolume": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			volume := a.Int("volume")
			t := codec.Enum[rtc.AudioMixingType](a, "type")
			return run(a, func() error { return p.SetVolume(volume, t) })
		},
		"getVolume": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			t := codec.Enum[rtc.AudioMixingType](a, "type")
			return value(a, func() (int, error) { return p.Volume(t) })
		},
		"setPosition": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			pos := a.Int("position")
			return run(a, func() error { return p.SetPosition(pos) })
		},
		"setAudioPitch": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			pitch := a.Int("pitch")
			return run(a, func() error { return p.SetAudioPitch(pitch) })
		},
		"setPlaybackSpeed": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			speed := a.Int("speed")
			return run(a, func() error { return p.SetPlaybackSpeed(speed) })
		},
		"setProgressInterval": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			interval := a.Int64("interval")
			return run(a, func() error { return p.SetProgressInterval(interval) })
		},
		"setLoudness": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			loudness := a.Float32("loudness")
			return run(a, func() error { return p.SetLoudness(loudness) })
		},
		"selectAudioTrack": func(p rtc.MediaPlayer, a *codec.Reader) (any, error) {
			index := a.Int("index")
			return run(a, func() error { return p.SelectAudioTrack(index) })
		},
	}
}

type audioEffectMethod = func(p rtc.AudioEffectPlayer, a *codec.Reader) (any, error)

func (s *session) audioEffectPlayerTable() bridge.Table {
	t := bridge.Table{
		"stopAll":   simple(rtc.AudioEffectPlayer.StopAll),
		"unloadAll": simple(rtc.AudioEffectPlayer.UnloadAll),
		"pauseAll":  simple(rtc.AudioEffectPlayer.PauseAll),
		"resumeAll": simple(rtc.AudioEffectPlayer.ResumeAll),
		"destroy":   s.destroySelf,

		"stop":        perEffect(rtc.AudioEffectPlayer.Stop),
		"unload":      perEffect(rtc.AudioEffectPlayer.Unload),
		"pause":       perEffect(rtc.AudioEffectPlayer.Pause),
		"resume":      perEffect(rtc.AudioEffectPlayer.Resume),
		"getPosition": effectQuery(rtc.AudioEffectPlayer.Position),
		"getVolume":   effectQuery(rtc.AudioEffectPlayer.Volume),
		"getDuration": effectQuery(rtc.AudioEffectPlayer.Duration),
	}
	for name, fn := range audioEffectMethods() {
		t[name] = bridge.Native(fn)
	}
	return t
}

func perEffect(fn func(rtc.AudioEffectPlayer, int) error) bridge.Method {
	return bridge.Native(func(p rtc.AudioEffectPlayer, a *codec.Reader) (any, error) {
		id := a.Int("effectId")
		return run(a, func() error { return fn(p, id) })
	})
}

func effectQuery(fn func(rtc.AudioEffectPlayer, int) (int, error)) bridge.Method {
	return bridge.Native(func(p rtc.AudioEffectPlayer, a *codec.Reader) (any, error) {
		id := a.Int("effectId")
		return value(a, func() (int, error) { return fn(p, id) })
	})
}

func audioEffectMethods() map[string]audioEffectMethod {
	return map[string]audioEffectMethod{
		"start": func(p rtc.AudioEffectPlayer, a *codec.Reader) (any, error) {
			id, path := a.Int("effectId"), a.String("filePath")
			cfg := codec.Read[rtc.AudioEffectPlayerConfig](a, "config")
			return run(a, func() error { return p.Start(id, path, cfg) })
		},
		"preload": func(p rtc.AudioEffectPlayer, a *codec.Reader) (any, error) {
			id, path := a.Int("effectId"), a.String("filePath")
			return run(a, func() error { return p.Preload(id, path) })
		},
		"setPosition": func(p rtc.AudioEffectPlayer, a *codec.Reader) (any, error) {
			id, pos := a.Int("effectId"), a.Int("position")
			return run(a, func() error { return p.SetPosition(id, pos) })
		},
		"setVolume": func(p rtc.AudioEffectPlayer, a *codec.Reader) (any, error) {
			id, volume := a.Int("effectId"), a.Int("volume")
			return run(a, func() error { return p.SetVolume(id, volume) })
		},
		"setVolumeAll": func(p rtc.AudioEffectPlayer, a *codec.Reader) (any, error) {
			volume := a.Int("volume")
			return run(a, func() error { return p.SetVolumeAll(volume) })
		},
	}
}
