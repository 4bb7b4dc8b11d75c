package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

var singScoringKey = registry.Key{Kind: registry.KindSingScoring}

type scoringMethod = func(m rtc.SingScoringManager, a *codec.Reader) (any, error)

// singScoringTable serves the scoring manager created by
// getSingScoringManager. Realtime scores are published on its channel.
func (s *session) singScoringTable() bridge.Table {
	t := bridge.Table{
		"stopSingScoring":      simple(rtc.SingScoringManager.StopSingScoring),
		"getLastSentenceScore": scoreValue(rtc.SingScoringManager.LastSentenceScore),
		"getTotalScore":        scoreValue(rtc.SingScoringManager.TotalScore),
		"getAverageScore":      scoreValue(rtc.SingScoringManager.AverageScore),
		"destroy":              s.destroySelf,
	}
	for name, fn := range s.scoringMethods() {
		t[name] = bridge.Native(fn)
	}
	return t
}

func scoreValue(fn func(rtc.SingScoringManager) (int, error)) bridge.Method {
	return bridge.Native(func(m rtc.SingScoringManager, _ *codec.Reader) (any, error) {
		return fn(m)
	})
}

func (s *session) scoringMethods() map[string]scoringMethod {
	return map[string]scoringMethod{
		"initSingScoring": func(m rtc.SingScoringManager, a *codec.Reader) (any, error) {
			key, token := a.String("singScoringAppKey"), a.String("singScoringToken")
			withHandler := a.Bool("handler")
			return run(a, func() error {
				var h rtc.SingScoringEventHandler
				if withHandler {
					h = &singScoringEvents{key: singScoringKey, emitter: s.emitter}
				}
				return m.InitSingScoring(key, token, h)
			})
		},
		"setSingScoringConfig": func(m rtc.SingScoringManager, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.SingScoringConfig](a, "config")
			return run(a, func() error { return m.SetSingScoringConfig(cfg) })
		},
		"getStandardPitchInfo": func(m rtc.SingScoringManager, a *codec.Reader) (any, error) {
			path := a.String("midiFilepath")
			if err := a.Err(); err != nil {
				return nil, err
			}
			infos, err := m.StandardPitchInfo(path)
			if err != nil || len(infos) == 0 {
				return nil, err
			}
			return codec.EncodeList(infos), nil
		},
		"startSingScoring": func(m rtc.SingScoringManager, a *codec.Reader) (any, error) {
			pos, interval := a.Int("position"), a.Int("scoringInfoInterval")
			return run(a, func() error { return m.StartSingScoring(pos, interval) })
		},
	}
}

// getSingScoringManager creates the scoring manager on first use. Later
// calls answer true without touching the native manager.
func (s *session) getSingScoringManager(e rtc.Engine, a *codec.Reader) (any, error) {
	if _, ok := s.reg.Get(singScoringKey); ok {
		return true, nil
	}
	_, err := s.reg.Create(registry.KindSingScoring, "", func(registry.Key) (any, error) {
		return e.SingScoringManager()
	})
	return err == nil, err
}

type singScoringEvents struct {
	key     registry.Key
	emitter *bridge.Emitter
}

var _ rtc.SingScoringEventHandler = (*singScoringEvents)(nil)

func (h *singScoringEvents) OnCurrentScoringInfo(info *rtc.SingScoringRealtimeInfo) {
	var v any = codec.Absent
	if info != nil {
		v = *info
	}
	h.emitter.Emit(h.key, "onCurrentScoringInfo", codec.NewMap().Set("info", v))
}
