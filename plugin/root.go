package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

// rootTable serves the plugin channel, which exists while attached even
// when no engine does.
func (s *session) rootTable() bridge.Table {
	return bridge.Table{
		"getSDKVersion": func(req *bridge.Request) (any, error) {
			return s.factory.SDKVersion(), nil
		},
		"getErrorDescription": func(req *bridge.Request) (any, error) {
			code := req.Args.Int("code")
			return value(req.Args, func() (string, error) {
				return s.factory.ErrorDescription(code), nil
			})
		},
		"createRTCVideo": func(req *bridge.Request) (any, error) {
			a := req.Args
			cfg := rtc.EngineConfig{
				AppID:      a.String("appId"),
				Parameters: a.OptPlain("parameters"),
			}
			return value(a, func() (bool, error) {
				_, err := s.createEngine(cfg)
				return err == nil, err
			})
		},
		"destroyRTCVideo": func(req *bridge.Request) (any, error) {
			s.reg.DestroyAll()
			return nil, nil
		},
		"eventHandlerSwitches": func(req *bridge.Request) (any, error) {
			return s.applySwitches(engineKey, req.Args)
		},
	}
}

// applySwitches updates the event gates of the instance under key.
func (s *session) applySwitches(key registry.Key, a *codec.Reader) (any, error) {
	sw := s.switchesFor(key)
	if sw == nil {
		return nil, errors.InstanceNotFound(errors.PhaseCall, string(key.Kind), key.ID)
	}
	sw.Apply(a)
	return nil, a.Err()
}
