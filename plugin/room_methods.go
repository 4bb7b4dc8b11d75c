package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/rtc"
)

type roomMethod = func(r rtc.Room, a *codec.Reader) (any, error)

// defaultRoomConfig applies when joinRoom omits roomConfig.
var defaultRoomConfig = rtc.RoomConfig{
	Profile:              rtc.RoomProfileCommunication,
	IsAutoPublish:        true,
	IsAutoSubscribeAudio: true,
	IsAutoSubscribeVideo: true,
}

func (s *session) roomTable() bridge.Table {
	t := bridge.Table{
		"leaveRoom":                     simple(rtc.Room.LeaveRoom),
		"stopForwardStreamToRooms":      simple(rtc.Room.StopForwardStreamToRooms),
		"pauseForwardStreamToAllRooms":  simple(rtc.Room.PauseForwardStreamToAllRooms),
		"resumeForwardStreamToAllRooms": simple(rtc.Room.ResumeForwardStreamToAllRooms),
		"stopSubtitle":                  simple(rtc.Room.StopSubtitle),

		"eventHandlerSwitches": func(req *bridge.Request) (any, error) {
			return s.applySwitches(req.Instance.Key(), req.Args)
		},
		"destroy":        s.destroySelf,
		"destroyRTCRoom": s.destroySelf,
	}
	for name, fn := range roomMethods() {
		t[name] = bridge.Native(fn)
	}
	for name, fn := range roomStreamMethods() {
		t[name] = bridge.Native(fn)
	}
	return t
}

// destroySelf destroys the instance the call was addressed to. The native
// destructor waits for the running call to release it.
func (s *session) destroySelf(req *bridge.Request) (any, error) {
	s.reg.Destroy(req.Instance.Kind, req.Instance.ID)
	return nil, nil
}

// readUser accepts a full userInfo record or, for short calls, a bare
// userId (or uid).
func readUser(a *codec.Reader) rtc.UserInfo {
	switch {
	case a.Has("userInfo"):
		return codec.Read[rtc.UserInfo](a, "userInfo")
	case a.Has("userId"):
		return rtc.UserInfo{UID: a.String("userId")}
	default:
		return rtc.UserInfo{UID: a.String("uid")}
	}
}

func roomMethods() map[string]roomMethod {
	return map[string]roomMethod{
		"joinRoom": func(r rtc.Room, a *codec.Reader) (any, error) {
			token := a.String("token")
			user := readUser(a)
			cfg := defaultRoomConfig
			if opt := codec.ReadOpt[rtc.RoomConfig](a, "roomConfig"); opt != nil {
				cfg = *opt
			}
			return run(a, func() error { return r.JoinRoom(token, user, cfg) })
		},
		"updateToken": func(r rtc.Room, a *codec.Reader) (any, error) {
			token := a.String("token")
			return run(a, func() error { return r.UpdateToken(token) })
		},
		"setUserVisibility": func(r rtc.Room, a *codec.Reader) (any, error) {
			enable := a.Bool("enable")
			return run(a, func() error { return r.SetUserVisibility(enable) })
		},
		"setMultiDeviceAVSync": func(r rtc.Room, a *codec.Reader) (any, error) {
			uid := a.String("audioUid")
			return run(a, func() error { return r.SetMultiDeviceAVSync(uid) })
		},
		"setRemoteVideoConfig": func(r rtc.Room, a *codec.Reader) (any, error) {
			uid := a.String("uid")
			cfg := codec.Read[rtc.RemoteVideoConfig](a, "videoConfig")
			return run(a, func() error { return r.SetRemoteVideoConfig(uid, cfg) })
		},
		"sendUserMessage": func(r rtc.Room, a *codec.Reader) (any, error) {
			uid, msg := a.String("uid"), a.String("message")
			cfg := codec.Enum[rtc.MessageConfig](a, "config")
			return value(a, func() (int64, error) { return r.SendUserMessage(uid, msg, cfg) })
		},
		"sendUserBinaryMessage": func(r rtc.Room, a *codec.Reader) (any, error) {
			uid, msg := a.String("uid"), a.Bytes("message")
			cfg := codec.Enum[rtc.MessageConfig](a, "config")
			return value(a, func() (int64, error) { return r.SendUserBinaryMessage(uid, msg, cfg) })
		},
		"sendRoomMessage": func(r rtc.Room, a *codec.Reader) (any, error) {
			msg := a.String("message")
			return value(a, func() (int64, error) { return r.SendRoomMessage(msg) })
		},
		"sendRoomBinaryMessage": func(r rtc.Room, a *codec.Reader) (any, error) {
			msg := a.Bytes("message")
			return value(a, func() (int64, error) { return r.SendRoomBinaryMessage(msg) })
		},
		"startForwardStreamToRooms": func(r rtc.Room, a *codec.Reader) (any, error) {
			infos := codec.ReadList[rtc.ForwardStreamInfo](a, "forwardStreamInfos")
			return value(a, func() (int, error) { return r.StartForwardStreamToRooms(infos) })
		},
		"updateForwardStreamToRooms": func(r rtc.Room, a *codec.Reader) (any, error) {
			infos := codec.ReadList[rtc.ForwardStreamInfo](a, "forwardStreamInfos")
			return value(a, func() (int, error) { return r.UpdateForwardStreamToRooms(infos) })
		},
		"setRoomExtraInfo": func(r rtc.Room, a *codec.Reader) (any, error) {
			key, val := a.String("key"), a.String("value")
			return value(a, func() (int64, error) { return r.SetRoomExtraInfo(key, val) })
		},
		"startSubtitle": func(r rtc.Room, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.SubtitleConfig](a, "subtitleConfig")
			return run(a, func() error { return r.StartSubtitle(cfg) })
		},
	}
}

func roomStreamMethods() map[string]roomMethod {
	typed := func(fn func(rtc.Room, rtc.MediaStreamType) error) roomMethod {
		return func(r rtc.Room, a *codec.Reader) (any, error) {
			t := codec.Enum[rtc.MediaStreamType](a, "type")
			return run(a, func() error { return fn(r, t) })
		}
	}
	remote := func(fn func(rtc.Room, string, rtc.MediaStreamType) error) roomMethod {
		return func(r rtc.Room, a *codec.Reader) (any, error) {
			uid := a.String("uid")
			t := codec.Enum[rtc.MediaStreamType](a, "type")
			return run(a, func() error { return fn(r, uid, t) })
		}
	}
	all := func(fn func(rtc.Room, rtc.PauseResumeMediaType) error) roomMethod {
		return func(r rtc.Room, a *codec.Reader) (any, error) {
			t := codec.Enum[rtc.PauseResumeMediaType](a, "mediaType")
			return run(a, func() error { return fn(r, t) })
		}
	}
	return map[string]roomMethod{
		"publishStream":             typed(rtc.Room.PublishStream),
		"unpublishStream":           typed(rtc.Room.UnpublishStream),
		"publishScreen":             typed(rtc.Room.PublishScreen),
		"unpublishScreen":           typed(rtc.Room.UnpublishScreen),
		"subscribeStream":           remote(rtc.Room.SubscribeStream),
		"unsubscribeStream":         remote(rtc.Room.UnsubscribeStream),
		"subscribeScreen":           remote(rtc.Room.SubscribeScreen),
		"unsubscribeScreen":         remote(rtc.Room.UnsubscribeScreen),
		"pauseAllSubscribedStream":  all(rtc.Room.PauseAllSubscribedStream),
		"resumeAllSubscribedStream": all(rtc.Room.ResumeAllSubscribedStream),
	}
}

// spatial adapts a method on the spatial audio facet of a room.
func spatial(fn func(sa rtc.SpatialAudio, a *codec.Reader) (any, error)) bridge.Method {
	return bridge.Native(func(r rtc.Room, a *codec.Reader) (any, error) {
		return fn(r.SpatialAudio(), a)
	})
}

func spatialAudioTable() bridge.Table {
	return bridge.Table{
		"enableSpatialAudio": spatial(func(sa rtc.SpatialAudio, a *codec.Reader) (any, error) {
			enable := a.Bool("enable")
			return run(a, func() error { return sa.EnableSpatialAudio(enable) })
		}),
		"updatePosition": spatial(func(sa rtc.SpatialAudio, a *codec.Reader) (any, error) {
			pos := codec.Read[rtc.Position](a, "pos")
			return run(a, func() error { return sa.UpdatePosition(pos) })
		}),
		"updateSelfOrientation": spatial(func(sa rtc.SpatialAudio, a *codec.Reader) (any, error) {
			o := codec.Read[rtc.HumanOrientation](a, "orientation")
			return run(a, func() error { return sa.UpdateSelfOrientation(o) })
		}),
		"disableRemoteOrientation": spatial(func(sa rtc.SpatialAudio, _ *codec.Reader) (any, error) {
			return nil, sa.DisableRemoteOrientation()
		}),
	}
}

func ranged(fn func(ra rtc.RangeAudio, a *codec.Reader) (any, error)) bridge.Method {
	return bridge.Native(func(r rtc.Room, a *codec.Reader) (any, error) {
		return fn(r.RangeAudio(), a)
	})
}

func (s *session) rangeAudioTable() bridge.Table {
	return bridge.Table{
		"enableRangeAudio": ranged(func(ra rtc.RangeAudio, a *codec.Reader) (any, error) {
			enable := a.Bool("enable")
			return run(a, func() error { return ra.EnableRangeAudio(enable) })
		}),
		"updateReceiveRange": ranged(func(ra rtc.RangeAudio, a *codec.Reader) (any, error) {
			rng := codec.Read[rtc.ReceiveRange](a, "range")
			return run(a, func() error { return ra.UpdateReceiveRange(rng) })
		}),
		"updatePosition": ranged(func(ra rtc.RangeAudio, a *codec.Reader) (any, error) {
			pos := codec.Read[rtc.Position](a, "pos")
			return run(a, func() error { return ra.UpdatePosition(pos) })
		}),
		// registerRangeAudioObserver installs or clears the observer that
		// feeds onRangeAudioInfo to the room's range_audio channel.
		"registerRangeAudioObserver": func(req *bridge.Request) (any, error) {
			key := req.Instance.Key()
			return ranged(func(ra rtc.RangeAudio, a *codec.Reader) (any, error) {
				register := a.Bool("observer")
				return run(a, func() error {
					if !register {
						ra.SetObserver(nil)
						return nil
					}
					ra.SetObserver(&rangeAudioEvents{key: key, emitter: s.emitter})
					return nil
				})
			})(req)
		},
	}
}
