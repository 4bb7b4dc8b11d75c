package plugin

import (
	"strconv"

	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

type engineMethod = func(e rtc.Engine, a *codec.Reader) (any, error)

func (s *session) engineTable() bridge.Table {
	t := bridge.Table{
		"startAudioCapture":    simple(rtc.Engine.StartAudioCapture),
		"stopAudioCapture":     simple(rtc.Engine.StopAudioCapture),
		"startVideoCapture":    simple(rtc.Engine.StartVideoCapture),
		"stopVideoCapture":     simple(rtc.Engine.StopVideoCapture),
		"stopASR":              simple(rtc.Engine.StopASR),
		"stopAudioRecording":   simple(rtc.Engine.StopAudioRecording),
		"logout":               simple(rtc.Engine.Logout),
		"stopCloudProxy":       simple(rtc.Engine.StopCloudProxy),
		"stopEchoTest":         simple(rtc.Engine.StopEchoTest),
		"stopNetworkDetection": simple(rtc.Engine.StopNetworkDetection),
	}
	for name, fn := range engineAudioMethods() {
		t[name] = bridge.Native(fn)
	}
	for name, fn := range engineVideoMethods() {
		t[name] = bridge.Native(fn)
	}
	for name, fn := range engineStreamingMethods() {
		t[name] = bridge.Native(fn)
	}
	for name, fn := range engineMiscMethods() {
		t[name] = bridge.Native(fn)
	}
	for name, fn := range s.engineObjectMethods() {
		t[name] = bridge.Native(fn)
	}
	for name, fn := range s.engineCaptureMethods() {
		t[name] = bridge.Native(fn)
	}
	return t
}

func engineAudioMethods() map[string]engineMethod {
	return map[string]engineMethod{
		"setAudioScenario": func(e rtc.Engine, a *codec.Reader) (any, error) {
			v := codec.Enum[rtc.AudioScenario](a, "audioScenario")
			return run(a, func() error { return e.SetAudioScenario(v) })
		},
		"setAudioProfile": func(e rtc.Engine, a *codec.Reader) (any, error) {
			v := codec.Enum[rtc.AudioProfile](a, "audioProfile")
			return run(a, func() error { return e.SetAudioProfile(v) })
		},
		"setCaptureVolume": func(e rtc.Engine, a *codec.Reader) (any, error) {
			idx := codec.Enum[rtc.StreamIndex](a, "index")
			volume := a.Int("volume")
			return run(a, func() error { return e.SetCaptureVolume(idx, volume) })
		},
		"setPlaybackVolume": func(e rtc.Engine, a *codec.Reader) (any, error) {
			volume := a.Int("volume")
			return run(a, func() error { return e.SetPlaybackVolume(volume) })
		},
		"setLocalVoiceReverbParam": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.VoiceReverbConfig](a, "config")
			return run(a, func() error { return e.SetLocalVoiceReverbParam(cfg) })
		},
		"setLocalVoiceEqualization": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.VoiceEqualizationConfig](a, "config")
			return run(a, func() error { return e.SetLocalVoiceEqualization(cfg) })
		},
		"enableAudioPropertiesReport": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.AudioPropertiesConfig](a, "config")
			return run(a, func() error { return e.EnableAudioPropertiesReport(cfg) })
		},
		"setRemoteAudioPlaybackVolume": func(e rtc.Engine, a *codec.Reader) (any, error) {
			roomID, uid, volume := a.String("roomId"), a.String("uid"), a.Int("volume")
			return run(a, func() error { return e.SetRemoteAudioPlaybackVolume(roomID, uid, volume) })
		},
	}
}

func engineVideoMethods() map[string]engineMethod {
	return map[string]engineMethod{
		"setMaxVideoEncoderConfig": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.VideoEncoderConfig](a, "maxSolution")
			return run(a, func() error { return e.SetMaxVideoEncoderConfig(cfg) })
		},
		"setVideoEncoderConfig": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfgs := codec.ReadList[rtc.VideoEncoderConfig](a, "channelSolutions")
			return run(a, func() error { return e.SetVideoEncoderConfig(cfgs) })
		},
		"setScreenVideoEncoderConfig": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.ScreenVideoEncoderConfig](a, "screenSolution")
			return run(a, func() error { return e.SetScreenVideoEncoderConfig(cfg) })
		},
		"setVideoCaptureConfig": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.VideoCaptureConfig](a, "config")
			return run(a, func() error { return e.SetVideoCaptureConfig(cfg) })
		},
		"switchCamera": func(e rtc.Engine, a *codec.Reader) (any, error) {
			id := codec.Enum[rtc.CameraID](a, "cameraId")
			return run(a, func() error { return e.SwitchCamera(id) })
		},
		"setCameraTorch": func(e rtc.Engine, a *codec.Reader) (any, error) {
			state := codec.Enum[rtc.TorchState](a, "torchState")
			return run(a, func() error { return e.SetCameraTorch(state) })
		},
		"setVideoWatermark": func(e rtc.Engine, a *codec.Reader) (any, error) {
			idx := codec.Enum[rtc.StreamIndex](a, "streamIndex")
			path := a.String("imagePath")
			cfg := codec.Read[rtc.WatermarkConfig](a, "watermarkConfig")
			return run(a, func() error { return e.SetVideoWatermark(idx, path, cfg) })
		},
		"clearVideoWatermark": func(e rtc.Engine, a *codec.Reader) (any, error) {
			idx := codec.Enum[rtc.StreamIndex](a, "streamIndex")
			return run(a, func() error { return e.ClearVideoWatermark(idx) })
		},
		"setBackgroundSticker": func(e rtc.Engine, a *codec.Reader) (any, error) {
			model := a.String("modelPath")
			src := codec.Read[rtc.VirtualBackgroundSource](a, "source")
			return run(a, func() error { return e.SetBackgroundSticker(model, src) })
		},
	}
}

// Streaming operations acknowledge at once; the outcome arrives as
// onStreamMixingEvent or onPushPublicStreamResult.
func engineStreamingMethods() map[string]engineMethod {
	return map[string]engineMethod{
		"startLiveTranscoding": func(e rtc.Engine, a *codec.Reader) (any, error) {
			task := a.String("taskId")
			t := codec.Read[rtc.LiveTranscoding](a, "transcoding")
			return run(a, func() error { return e.StartLiveTranscoding(task, t) })
		},
		"updateLiveTranscoding": func(e rtc.Engine, a *codec.Reader) (any, error) {
			task := a.String("taskId")
			t := codec.Read[rtc.LiveTranscoding](a, "transcoding")
			return run(a, func() error { return e.UpdateLiveTranscoding(task, t) })
		},
		"stopLiveTranscoding": func(e rtc.Engine, a *codec.Reader) (any, error) {
			task := a.String("taskId")
			return run(a, func() error { return e.StopLiveTranscoding(task) })
		},
		"startPushPublicStream": func(e rtc.Engine, a *codec.Reader) (any, error) {
			id := a.String("publicStreamId")
			p := codec.Read[rtc.PublicStreaming](a, "publicStreamParam")
			return run(a, func() error { return e.StartPushPublicStream(id, p) })
		},
		"stopPushPublicStream": func(e rtc.Engine, a *codec.Reader) (any, error) {
			id := a.String("publicStreamId")
			return run(a, func() error { return e.StopPushPublicStream(id) })
		},
		"startPushSingleStreamToCDN": func(e rtc.Engine, a *codec.Reader) (any, error) {
			task := a.String("taskId")
			p := codec.Read[rtc.PushSingleStreamParam](a, "param")
			return run(a, func() error { return e.StartPushSingleStreamToCDN(task, p) })
		},
		"stopPushStreamToCDN": func(e rtc.Engine, a *codec.Reader) (any, error) {
			task := a.String("taskId")
			return run(a, func() error { return e.StopPushStreamToCDN(task) })
		},
	}
}

func engineMiscMethods() map[string]engineMethod {
	return map[string]engineMethod{
		"setPublishFallbackOption": func(e rtc.Engine, a *codec.Reader) (any, error) {
			o := codec.Enum[rtc.PublishFallbackOption](a, "option")
			return run(a, func() error { return e.SetPublishFallbackOption(o) })
		},
		"setSubscribeFallbackOption": func(e rtc.Engine, a *codec.Reader) (any, error) {
			o := codec.Enum[rtc.SubscribeFallbackOption](a, "option")
			return run(a, func() error { return e.SetSubscribeFallbackOption(o) })
		},
		"setRemoteUserPriority": func(e rtc.Engine, a *codec.Reader) (any, error) {
			roomID, uid := a.String("roomId"), a.String("uid")
			p := codec.Enum[rtc.RemoteUserPriority](a, "priority")
			return run(a, func() error { return e.SetRemoteUserPriority(roomID, uid, p) })
		},
		"setBusinessId": func(e rtc.Engine, a *codec.Reader) (any, error) {
			id := a.String("businessId")
			return run(a, func() error { return e.SetBusinessID(id) })
		},
		"feedback": func(e rtc.Engine, a *codec.Reader) (any, error) {
			types := codec.Enums[rtc.ProblemFeedbackOption](a, "types")
			info := codec.ReadOpt[rtc.ProblemFeedbackInfo](a, "info")
			return run(a, func() error { return e.Feedback(types, info) })
		},
		"setRuntimeParameters": func(e rtc.Engine, a *codec.Reader) (any, error) {
			params := a.Plain("params")
			return run(a, func() error { return e.SetRuntimeParameters(params) })
		},
		"startASR": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.ASRConfig](a, "asrConfig")
			return run(a, func() error { return e.StartASR(cfg) })
		},
		"startFileRecording": func(e rtc.Engine, a *codec.Reader) (any, error) {
			idx := codec.Enum[rtc.StreamIndex](a, "streamIndex")
			cfg := codec.Read[rtc.RecordingConfig](a, "config")
			t := codec.Enum[rtc.RecordingType](a, "recordingType")
			return run(a, func() error { return e.StartFileRecording(idx, cfg, t) })
		},
		"stopFileRecording": func(e rtc.Engine, a *codec.Reader) (any, error) {
			idx := codec.Enum[rtc.StreamIndex](a, "streamIndex")
			return run(a, func() error { return e.StopFileRecording(idx) })
		},
		"startAudioRecording": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.AudioRecordingConfig](a, "config")
			return run(a, func() error { return e.StartAudioRecording(cfg) })
		},
		"login": func(e rtc.Engine, a *codec.Reader) (any, error) {
			token, uid := a.String("token"), a.String("uid")
			return run(a, func() error { return e.Login(token, uid) })
		},
		"sendStreamSyncInfo": func(e rtc.Engine, a *codec.Reader) (any, error) {
			data := a.Bytes("data")
			cfg := codec.Read[rtc.StreamSyncInfoConfig](a, "config")
			return value(a, func() (int, error) { return e.SendStreamSyncInfo(data, cfg) })
		},
		"startCloudProxy": func(e rtc.Engine, a *codec.Reader) (any, error) {
			list := codec.ReadList[rtc.CloudProxyInfo](a, "cloudProxiesInfo")
			return run(a, func() error { return e.StartCloudProxy(list) })
		},
		"setLocalProxy": func(e rtc.Engine, a *codec.Reader) (any, error) {
			list := codec.ReadList[rtc.LocalProxyConfiguration](a, "configurations")
			return run(a, func() error { return e.SetLocalProxy(list) })
		},
		"setCellularEnhancement": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.MediaTypeEnhancementConfig](a, "config")
			return run(a, func() error { return e.SetCellularEnhancement(cfg) })
		},
		"startEchoTest": func(e rtc.Engine, a *codec.Reader) (any, error) {
			cfg := codec.Read[rtc.EchoTestConfig](a, "config")
			delay := a.Int("delayTime")
			return run(a, func() error { return e.StartEchoTest(cfg, delay) })
		},
		"startNetworkDetection": func(e rtc.Engine, a *codec.Reader) (any, error) {
			up, upKbps := a.Bool("isTestUplink"), a.Int("expectedUplinkBitrate")
			down, downKbps := a.Bool("isTestDownlink"), a.Int("expectedDownlinkBitrate")
			return run(a, func() error { return e.StartNetworkDetection(up, upKbps, down, downKbps) })
		},
	}
}

// engineObjectMethods create and destroy the objects the engine owns. Each
// created object gets its own channel, bound when the registry reports it.
func (s *session) engineObjectMethods() map[string]engineMethod {
	return map[string]engineMethod{
		"createRTCRoom": func(e rtc.Engine, a *codec.Reader) (any, error) {
			id := requireID(a, "roomInsId")
			roomID := a.String("roomId")
			return value(a, func() (bool, error) {
				_, err := s.reg.Create(registry.KindRoom, id, func(key registry.Key) (any, error) {
					room, err := e.CreateRoom(roomID)
					if err != nil {
						return nil, err
					}
					room.SetEventHandler(&roomEvents{
						key:      key,
						emitter:  s.emitter,
						switches: s.newSwitches(key, bridge.RoomSwitches...),
					})
					return room, nil
				})
				return err == nil, err
			})
		},
		"destroyRTCRoom": func(e rtc.Engine, a *codec.Reader) (any, error) {
			id := requireID(a, "insId")
			return run(a, func() error {
				s.reg.Destroy(registry.KindRoom, id)
				return nil
			})
		},
		"getMediaPlayer": func(e rtc.Engine, a *codec.Reader) (any, error) {
			playerID := a.Int("playerId")
			return value(a, func() (bool, error) {
				id := strconv.Itoa(playerID)
				_, err := s.reg.Create(registry.KindMediaPlayer, id, func(key registry.Key) (any, error) {
					p, err := e.CreateMediaPlayer(playerID)
					if err != nil {
						return nil, err
					}
					p.SetEventHandler(&mediaPlayerEvents{key: key, emitter: s.emitter})
					return p, nil
				})
				return err == nil, err
			})
		},
		"destroyMediaPlayer": func(e rtc.Engine, a *codec.Reader) (any, error) {
			playerID := a.Int("playerId")
			return run(a, func() error {
				s.reg.Destroy(registry.KindMediaPlayer, strconv.Itoa(playerID))
				return nil
			})
		},
		"getAudioEffectPlayer": func(e rtc.Engine, a *codec.Reader) (any, error) {
			id := instanceID(a, "playerId", "0")
			return value(a, func() (bool, error) {
				_, err := s.reg.Create(registry.KindAudioEffectPlayer, id, func(key registry.Key) (any, error) {
					p, err := e.CreateAudioEffectPlayer()
					if err != nil {
						return nil, err
					}
					p.SetEventHandler(&audioEffectPlayerEvents{key: key, emitter: s.emitter})
					return p, nil
				})
				return err == nil, err
			})
		},
		"destroyAudioEffectPlayer": func(e rtc.Engine, a *codec.Reader) (any, error) {
			id := instanceID(a, "playerId", "0")
			return run(a, func() error {
				s.reg.Destroy(registry.KindAudioEffectPlayer, id)
				return nil
			})
		},
		"getKTVManager": func(e rtc.Engine, a *codec.Reader) (any, error) {
			_, err := s.reg.Create(registry.KindKTVManager, "", func(key registry.Key) (any, error) {
				m, err := e.KTVManager()
				if err != nil {
					return nil, err
				}
				m.SetEventHandler(&ktvManagerEvents{key: key, emitter: s.emitter})
				return m, nil
			})
			return err == nil, err
		},
		"getSingScoringManager": s.getSingScoringManager,
	}
}

// engineCaptureMethods start snapshots. The task id is answered at once and
// the target path is kept until the matching onTake*SnapshotResult arrives.
func (s *session) engineCaptureMethods() map[string]engineMethod {
	return map[string]engineMethod{
		"takeLocalSnapshot": func(e rtc.Engine, a *codec.Reader) (any, error) {
			idx := codec.Enum[rtc.StreamIndex](a, "streamIndex")
			path := a.String("filePath")
			return value(a, func() (int64, error) {
				task, err := e.TakeLocalSnapshot(idx)
				if err != nil {
					return 0, err
				}
				s.completions.Register(task, codec.NewMap().
					Set("path", path).
					Set("streamIndex", int64(idx)))
				return task, nil
			})
		},
		"takeRemoteSnapshot": func(e rtc.Engine, a *codec.Reader) (any, error) {
			key := codec.Read[rtc.RemoteStreamKey](a, "streamKey")
			path := a.String("filePath")
			return value(a, func() (int64, error) {
				task, err := e.TakeRemoteSnapshot(key)
				if err != nil {
					return 0, err
				}
				s.completions.Register(task, codec.NewMap().
					Set("path", path).
					Set("streamKey", key))
				return task, nil
			})
		},
	}
}
