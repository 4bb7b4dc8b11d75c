package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

type ktvMethod = func(m rtc.KTVManager, a *codec.Reader) (any, error)

// ktvManagerTable serves catalogue queries and downloads. Query results
// arrive as events; downloads answer with their download id.
func (s *session) ktvManagerTable() bridge.Table {
	t := bridge.Table{
		"clearCache": simple(rtc.KTVManager.ClearCache),
		"destroy":    s.destroySelf,
	}
	for name, fn := range ktvQueryMethods() {
		t[name] = bridge.Native(fn)
	}
	for name, fn := range ktvDownloadMethods() {
		t[name] = bridge.Native(fn)
	}
	for name, fn := range s.ktvPlayerObjectMethods() {
		t[name] = bridge.Native(fn)
	}
	return t
}

func ktvQueryMethods() map[string]ktvMethod {
	return map[string]ktvMethod{
		"getMusicList": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			page, size := a.Int("pageNum"), a.Int("pageSize")
			filters := codec.Enums[rtc.MusicFilterType](a, "filters")
			return run(a, func() error { return m.MusicList(page, size, filters) })
		},
		"searchMusic": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			keyword := a.String("keyWord")
			page, size := a.Int("pageNum"), a.Int("pageSize")
			filters := codec.Enums[rtc.MusicFilterType](a, "filters")
			return run(a, func() error { return m.SearchMusic(keyword, page, size, filters) })
		},
		"getHotMusic": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			hot := codec.Enums[rtc.MusicHotType](a, "hotTypes")
			filters := codec.Enums[rtc.MusicFilterType](a, "filters")
			return run(a, func() error { return m.HotMusic(hot, filters) })
		},
		"getMusicDetail": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			id := a.String("musicId")
			return run(a, func() error { return m.MusicDetail(id) })
		},
	}
}

func ktvDownloadMethods() map[string]ktvMethod {
	return map[string]ktvMethod{
		"downloadMusic": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			id := a.String("musicId")
			return value(a, func() (int, error) { return m.DownloadMusic(id) })
		},
		"downloadLyric": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			id := a.String("musicId")
			t := codec.Enum[rtc.LyricType](a, "lyricType")
			return value(a, func() (int, error) { return m.DownloadLyric(id, t) })
		},
		"downloadMidi": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			id := a.String("musicId")
			return value(a, func() (int, error) { return m.DownloadMidi(id) })
		},
		"cancelDownload": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			id := a.Int("downloadId")
			return run(a, func() error { return m.CancelDownload(id) })
		},
		"setMaxCacheSize": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			size := a.Int("maxCacheSizeMB")
			return run(a, func() error { return m.SetMaxCacheSize(size) })
		},
	}
}

func (s *session) ktvPlayerObjectMethods() map[string]ktvMethod {
	return map[string]ktvMethod{
		"getKTVPlayer": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			id := instanceID(a, "playerId", "0")
			return value(a, func() (bool, error) {
				_, err := s.reg.Create(registry.KindKTVPlayer, id, func(key registry.Key) (any, error) {
					p, err := m.CreateKTVPlayer()
					if err != nil {
						return nil, err
					}
					p.SetEventHandler(&ktvPlayerEvents{key: key, emitter: s.emitter})
					return p, nil
				})
				return err == nil, err
			})
		},
		"destroyKTVPlayer": func(m rtc.KTVManager, a *codec.Reader) (any, error) {
			id := instanceID(a, "playerId", "0")
			return run(a, func() error {
				s.reg.Destroy(registry.KindKTVPlayer, id)
				return nil
			})
		},
	}
}

type ktvPlayerMethod = func(p rtc.KTVPlayer, a *codec.Reader) (any, error)

func (s *session) ktvPlayerTable() bridge.Table {
	t := bridge.Table{
		"pauseMusic":           perMusic(rtc.KTVPlayer.PauseMusic),
		"resumeMusic":          perMusic(rtc.KTVPlayer.ResumeMusic),
		"stopMusic":            perMusic(rtc.KTVPlayer.StopMusic),
		"switchAudioTrackType": perMusic(rtc.KTVPlayer.SwitchAudioTrackType),
		"destroy":              s.destroySelf,
	}
	for name, fn := range ktvPlayerMethods() {
		t[name] = bridge.Native(fn)
	}
	return t
}

func perMusic(fn func(rtc.KTVPlayer, string) error) bridge.Method {
	return bridge.Native(func(p rtc.KTVPlayer, a *codec.Reader) (any, error) {
		id := a.String("musicId")
		return run(a, func() error { return fn(p, id) })
	})
}

func ktvPlayerMethods() map[string]ktvPlayerMethod {
	return map[string]ktvPlayerMethod{
		"playMusic": func(p rtc.KTVPlayer, a *codec.Reader) (any, error) {
			id := a.String("musicId")
			track := codec.Enum[rtc.AudioTrackType](a, "trackType")
			play := codec.Enum[rtc.AudioPlayType](a, "playType")
			return run(a, func() error { return p.PlayMusic(id, track, play) })
		},
		"seekMusic": func(p rtc.KTVPlayer, a *codec.Reader) (any, error) {
			id, pos := a.String("musicId"), a.Int("position")
			return run(a, func() error { return p.SeekMusic(id, pos) })
		},
		"setMusicVolume": func(p rtc.KTVPlayer, a *codec.Reader) (any, error) {
			id, volume := a.String("musicId"), a.Int("volume")
			return run(a, func() error { return p.SetMusicVolume(id, volume) })
		},
		"setMusicPitch": func(p rtc.KTVPlayer, a *codec.Reader) (any, error) {
			id, pitch := a.String("musicId"), a.Int("pitch")
			return run(a, func() error { return p.SetMusicPitch(id, pitch) })
		},
	}
}
