package codec

import (
	"reflect"
	"strings"
	"testing"

	"github.com/wippyai/rtc-bridge/errors"
	"github.com/wippyai/rtc-bridge/rtc"
)

func strPtr(s string) *string { return &s }

var (
	sampleKey      = rtc.RemoteStreamKey{RoomID: "room-1", UID: "alice", StreamIndex: rtc.StreamIndexScreen}
	sampleAudio    = rtc.AudioPropertiesInfo{LinearVolume: 120, NonlinearVolume: 60, VAD: 1, Spectrum: []float64{0.5, 1.25, -3}}
	sampleMusic    = rtc.MusicInfo{MusicID: "m1", MusicName: "Song", Singer: "S", VendorID: "v", VendorName: "V", UpdateTimestamp: 1700000000, PosterURL: "https://p", LyricTypes: []rtc.LyricType{rtc.LyricTypeKRC, rtc.LyricTypeLRC}, Duration: 200, EnableScore: true, ClimaxStartTime: 30, ClimaxEndTime: 60}
	samplePos      = rtc.Position{X: 1.5, Y: -2, Z: 0.25}
	sampleOrient   = rtc.HumanOrientation{Forward: rtc.Orientation{X: 1}, Right: rtc.Orientation{Y: 1}, Up: rtc.Orientation{Z: 1}}
	sampleLocalA   = rtc.LocalAudioStats{AudioLossRate: 0.125, SentKBitrate: 64, RecordSampleRate: 48000, StatsInterval: 2000, RTT: 40, NumChannels: 2, SentSampleRate: 48000}
	sampleLocalV   = rtc.LocalVideoStats{SentKBitrate: 800, InputFrameRate: 30, SentFrameRate: 30, EncoderOutputFrameRate: 30, RenderOutputFrameRate: 29, StatsInterval: 2000, VideoLossRate: 0.5, RTT: 35, EncodedBitrate: 780, EncodedFrameWidth: 1280, EncodedFrameHeight: 720, EncodedFrameCount: 900, CodecType: rtc.VideoCodecH264, IsScreen: false}
	sampleRemoteA  = rtc.RemoteAudioStats{AudioLossRate: 0.25, ReceivedKBitrate: 32, StallCount: 1, StallDuration: 120, E2EDelay: 180, PlayoutSampleRate: 48000, StatsInterval: 2000, RTT: 50, TotalRTT: 90, Quality: rtc.NetworkQualityGood, JitterBufferDelay: 20, NumChannels: 1, ReceivedSampleRate: 48000, FrozenRate: 2, ConcealedSamples: 10, ConcealmentEvent: 3, DecSampleRate: 48000, DecDuration: 2000}
	sampleRemoteV  = rtc.RemoteVideoStats{Width: 640, Height: 360, VideoLossRate: 0.75, ReceivedKBitrate: 500, DecoderOutputFrameRate: 15, RenderOutputFrameRate: 15, StallCount: 2, StallDuration: 300, E2EDelay: 220, IsScreen: true, StatsInterval: 2000, RTT: 60, FrozenRate: 4, VideoIndex: 1, CodecType: rtc.VideoCodecByteVC1}
	sampleRecInfo  = rtc.RecordingInfo{FilePath: "/tmp/r.mp4", VideoCodecType: rtc.VideoCodecH264, Width: 1280, Height: 720}
	sampleNetwork  = rtc.NetworkQualityStats{UID: "bob", FractionLost: 0.5, RTT: 80, TotalBandwidth: 3000, TxQuality: rtc.NetworkQualityPoor, RxQuality: rtc.NetworkQualityExcellent}
	sampleRect     = rtc.Rectangle{X: 10, Y: 20, Width: 100, Height: 120}
	sampleExpr     = rtc.ExpressionDetectInfo{Age: 30, BoyProb: 0.5, Attractive: 0.75, HappyScore: 0.25, SadScore: 0.125, SurpriseScore: 0, Arousal: 1, Valence: -1}
	sampleCrop     = rtc.SourceCrop{LocationX: 0.1, LocationY: 0.2, WidthProportion: 0.5, HeightProportion: 0.5}
	samplePSRegion = rtc.PublicStreamRegion{UID: "u", RoomID: "r", X: 0, Y: 0.5, W: 1, H: 0.5, ZOrder: 1, Alpha: 1, StreamType: rtc.StreamIndexMain, MediaType: rtc.ContentControlVideoOnly, RenderMode: rtc.RenderModeFit, SourceCrop: sampleCrop}
	samplePSLayout = rtc.PublicStreamLayout{InterpolationMode: rtc.InterpolationBackground, LayoutMode: rtc.LayoutModeCustom, BackgroundColor: "#000000", BackgroundImage: "", Regions: []rtc.PublicStreamRegion{samplePSRegion}}
	sampleEncoder  = rtc.VideoEncoderConfig{Width: 1280, Height: 720, FrameRate: 30, MaxBitrate: 1500, MinBitrate: 300, EncoderPreference: rtc.EncoderPreferenceBalance}
	sampleWMPos    = rtc.WatermarkPosition{X: 0.1, Y: 0.1, Width: 0.25, Height: 0.125}
	sampleLiveA    = rtc.LiveAudioConfig{Codec: rtc.TranscodingAudioAAC, AACProfile: rtc.AACProfileHEv1, SampleRate: 44100, Channels: 2, KBitrate: 64}
	sampleLiveV    = rtc.LiveVideoConfig{Codec: rtc.TranscodingVideoByteVC1, FPS: 15, GOP: 4, BFrame: true, KBitrate: 500, Width: 360, Height: 640}
	sampleImage    = rtc.LiveRegion{UID: "logo", RoomID: "r", X: 0.8, Y: 0, W: 0.2, H: 0.1, ZOrder: 9, Alpha: 0.5, ContentControl: rtc.ContentControlDefault, RenderMode: rtc.RenderModeHidden, Type: rtc.RegionTypeImage, Data: []byte{0x89, 0x50, 0x4e, 0x47}, DataParam: &rtc.RegionDataParam{ImageWidth: 64, ImageHeight: 32}}
	sampleVideoReg = rtc.LiveRegion{UID: "alice", RoomID: "r", W: 1, H: 1, Alpha: 1, ContentControl: rtc.ContentControlAudioOnly, RenderMode: rtc.RenderModeFill, LocalUser: true, IsScreen: false, CornerRadius: 0.1, ApplySpatialAudio: true, Type: rtc.RegionTypeVideo}
	sampleLayout   = rtc.LiveLayout{AppData: "{}", BackgroundColor: "#FFFFFF", Regions: []rtc.LiveRegion{sampleVideoReg, sampleImage}}
	sampleSpatial  = rtc.LiveSpatialConfig{EnableSpatialRender: true, Position: samplePos, Orientation: sampleOrient}
)

// samples holds one fully populated value per registered record.
var samples = []rtc.Record{
	sampleKey,
	rtc.VideoFrameInfo{Width: 1280, Height: 720, Rotation: rtc.VideoRotation90},
	sampleLocalA,
	sampleLocalV,
	rtc.LocalStreamStats{AudioStats: sampleLocalA, VideoStats: sampleLocalV, IsScreen: true},
	sampleRemoteA,
	sampleRemoteV,
	rtc.RemoteStreamStats{UID: "bob", AudioStats: sampleRemoteA, VideoStats: sampleRemoteV, IsScreen: false},
	rtc.SourceWantedData{Width: 640, Height: 480, FrameRate: 15},
	sampleRecInfo,
	rtc.RecordingProgress{Duration: 5000, FileSize: 1 << 20},
	rtc.SysStats{CPUCores: 8, CPUAppUsage: 0.25, CPUTotalUsage: 0.5, MemoryUsage: 512, FullMemory: 16 << 30, TotalMemoryUsage: 8 << 30, FreeMemory: 4 << 30, MemoryRatio: 0.1, TotalMemoryRatio: 0.5},
	rtc.RoomStats{Duration: 60, TxBytes: 1000, RxBytes: 2000, TxKBitrate: 100, RxKBitrate: 200, TxAudioKBitrate: 32, RxAudioKBitrate: 64, TxVideoKBitrate: 68, RxVideoKBitrate: 136, TxScreenKBitrate: 1, RxScreenKBitrate: 2, UserCount: 3, CPUAppUsage: 0.125, CPUTotalUsage: 0.375, TxLostRate: 0.5, RxLostRate: 0.25, RTT: 42, TxJitter: 5, RxJitter: 6, TxCellularKBitrate: 7, RxCellularKBitrate: 8},
	sampleNetwork,
	rtc.VideoStreamDescription{Width: 640, Height: 360, FrameRate: 15, MaxKbps: 500, EncoderPreference: rtc.EncoderPreferenceMaintainQuality},
	rtc.Stream{UID: "bob", IsScreen: false, HasVideo: true, HasAudio: true, VideoStreamDescriptions: []rtc.VideoStreamDescription{{Width: 320, Height: 180, FrameRate: 15, MaxKbps: 200}}},
	rtc.RemoteStreamSwitch{UID: "bob", IsScreen: true, BeforeVideoIndex: 0, AfterVideoIndex: 1, BeforeEnable: true, AfterEnable: false, Reason: 2},
	sampleAudio,
	rtc.LocalAudioPropertiesInfo{StreamIndex: rtc.StreamIndexMain, AudioPropertiesInfo: sampleAudio},
	rtc.RemoteAudioPropertiesInfo{StreamKey: sampleKey, AudioPropertiesInfo: sampleAudio},
	rtc.SubscribeConfig{IsScreen: false, SubVideo: true, SubAudio: true, VideoIndex: 1, SubWidth: 640, SubHeight: 360, SubVideoIndex: 1, SVCLayer: 2, FrameRate: 15},
	rtc.AudioVolumeInfo{UID: "bob", LinearVolume: 100, NonlinearVolume: 50},
	rtc.ForwardStreamEventInfo{RoomID: "dst", Event: rtc.ForwardStreamEventInterrupt},
	rtc.ForwardStreamStateInfo{RoomID: "dst", State: rtc.ForwardStreamStateFailure, Error: 1202},
	rtc.UserInfo{UID: "alice", MetaData: strPtr(`{"role":"host"}`)},
	rtc.RangeAudioInfo{UID: "bob", Factor: 80},
	sampleRect,
	sampleExpr,
	rtc.FaceDetectionResult{DetectResult: 0, ImageWidth: 640, ImageHeight: 480, Faces: []rtc.Rectangle{sampleRect}, Expressions: []rtc.ExpressionDetectInfo{sampleExpr}, FrameTimeUs: 123456789},
	rtc.SubtitleMessage{UserID: "bob", Text: "hello", Language: "en", Mode: rtc.SubtitleModeTranslation, Sequence: 4, Definite: rtc.SubtitleFinal},
	sampleMusic,
	rtc.HotMusicInfo{HotType: rtc.MusicHotTypeProject, HotName: "Top", Musics: []rtc.MusicInfo{sampleMusic}},
	rtc.DownloadResult{FilePath: "/cache/m1.mp3", MusicID: "m1", FileType: rtc.DownloadFileMusic},

	rtc.RemoteVideoConfig{Width: 640, Height: 360, FrameRate: 15},
	rtc.RoomConfig{Profile: rtc.RoomProfileKTV, IsAutoPublish: true, IsAutoSubscribeAudio: true, IsAutoSubscribeVideo: false, RemoteVideoConfig: rtc.RemoteVideoConfig{Width: 320, Height: 180, FrameRate: 15}},
	rtc.ForwardStreamInfo{RoomID: "dst", Token: "tok"},
	sampleCrop,
	samplePSRegion,
	samplePSLayout,
	rtc.PublicStreamVideoConfig{Width: 1280, Height: 720, FPS: 30, KBitrate: 2000},
	rtc.PublicStreamAudioConfig{KBitrate: 64, SampleRate: 48000, Channels: 2},
	rtc.PublicStreaming{RoomID: "r", Video: rtc.PublicStreamVideoConfig{Width: 1, Height: 2, FPS: 3, KBitrate: 4}, Audio: rtc.PublicStreamAudioConfig{KBitrate: 5, SampleRate: 6, Channels: 7}, Layout: samplePSLayout},
	sampleEncoder,
	rtc.ScreenVideoEncoderConfig(sampleEncoder),
	rtc.VideoCaptureConfig{Width: 1920, Height: 1080, FrameRate: 30, CapturePreference: rtc.CapturePreferenceManual},
	rtc.VirtualBackgroundSource{SourceType: rtc.VirtualBackgroundImage, SourceColor: 0xFF00FF00, SourcePath: "/bg.png"},
	sampleWMPos,
	rtc.WatermarkConfig{VisibleInPreview: true, PositionInLandscapeMode: sampleWMPos, PositionInPortraitMode: rtc.WatermarkPosition{X: 0.5}},
	sampleLiveA,
	sampleLiveV,
	rtc.RegionDataParam{ImageWidth: 64, ImageHeight: 32},
	sampleImage,
	sampleLayout,
	sampleSpatial,
	rtc.LiveTranscoding{URL: "rtmp://cdn/live", RoomID: "r", UID: "alice", MixType: rtc.MixTypeServer, Video: sampleLiveV, Audio: sampleLiveA, Layout: sampleLayout, SpatialConfig: sampleSpatial},
	rtc.PushSingleStreamParam{RoomID: "r", UID: "bob", URL: "rtmp://cdn/bob", IsScreen: true},
	rtc.RecordingConfig{DirPath: "/rec", RecordingFileType: rtc.RecordingFileTypeMP4},
	rtc.AudioRecordingConfig{AbsoluteFileName: "/rec/a.aac", SampleRate: 48000, Channel: 2, FrameSource: rtc.AudioFrameSourceMixed, Quality: rtc.AudioQualityHigh},
	rtc.ASRConfig{UID: "alice", AccessToken: "at", SecretKey: "sk", AuthorizationType: rtc.ASRAuthorizationSignature, Cluster: "c", AppID: "app"},
	rtc.ProblemFeedbackRoomInfo{RoomID: "r", UID: "alice"},
	rtc.ProblemFeedbackInfo{ProblemDesc: "echo", RoomInfo: []rtc.ProblemFeedbackRoomInfo{{RoomID: "r", UID: "alice"}}},
	rtc.AudioPropertiesConfig{Interval: 300, EnableSpectrum: true, EnableVAD: true, LocalMainReportMode: rtc.AudioReportModeReset, Smooth: 0.5, AudioReportMode: rtc.AudioPropertiesModeAudioMixing},
	rtc.StreamSyncInfoConfig{StreamIndex: rtc.StreamIndexMain, RepeatCount: 3},
	rtc.MediaPlayerConfig{Type: rtc.AudioMixingPlayoutAndPublish, PlayCount: 2, StartPos: 1000, AutoPlay: true, CallbackOnProgressInterval: 500, SyncProgressToRecordFrame: true},
	rtc.AudioEffectPlayerConfig{Type: rtc.AudioMixingPublish, PlayCount: 1, StartPos: 10, Pitch: -2},
	samplePos,
	rtc.Orientation{X: 0, Y: 0, Z: -1},
	sampleOrient,
	rtc.ReceiveRange{Min: 10, Max: 100},
	rtc.EchoTestConfig{UID: "alice", RoomID: "echo", Token: strPtr("t"), EnableAudio: true, EnableVideo: true, AudioReportInterval: 1000},
	rtc.CloudProxyInfo{CloudProxyIP: "10.0.0.1", CloudProxyPort: 8443},
	rtc.LocalProxyConfiguration{LocalProxyType: rtc.LocalProxyHTTPTunnel, LocalProxyIP: "127.0.0.1", LocalProxyPort: 3128, LocalProxyUsername: "u", LocalProxyPassword: "p"},
	rtc.MediaTypeEnhancementConfig{EnhanceSignaling: true, EnhanceAudio: false, EnhanceVideo: true, EnhanceScreenAudio: false, EnhanceScreenVideo: true},
	rtc.SubtitleConfig{Mode: rtc.SubtitleModeRecognition, TargetLanguage: "en"},
	rtc.VoiceReverbConfig{RoomSize: 50, DecayTime: 1.5, Damping: 0.25, WetGain: -3, DryGain: 0, PreDelay: 20},
	rtc.VoiceEqualizationConfig{Frequency: 1000, Gain: 6},
	rtc.AudioMixingConfig{Type: rtc.AudioMixingPlayoutAndPublish, PlayCount: -1, Position: 1500, CallbackOnProgressInterval: 250, SyncProgressToRecordFrame: true},
	rtc.SingScoringConfig{SampleRate: rtc.AudioSampleRate44100, LyricsFilepath: "/tmp/song.krc", MidiFilepath: "/tmp/song.mid"},
	rtc.StandardPitchInfo{StartTime: 1200, Duration: 300, Pitch: 62},
	rtc.SingScoringRealtimeInfo{CurrentPosition: 4000, UserPitch: 60, StandardPitch: 62, SentenceIndex: 3, SentenceScore: 88, TotalScore: 260, AverageScore: 86},
}

func TestSamplesCoverEverySchema(t *testing.T) {
	covered := make(map[string]bool)
	for _, s := range samples {
		covered[s.RecordName()] = true
	}
	for _, name := range Names() {
		if !covered[name] {
			t.Errorf("no sample for %s", name)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, sample := range samples {
		t.Run(sample.RecordName(), func(t *testing.T) {
			first, err := Encode(sample)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			r := NewReader(first)
			decoded := schemas[sample.RecordName()].decode(r)
			if err := r.Err(); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(decoded, sample) {
				t.Errorf("decoded value differs:\n got  %+v\n want %+v", decoded, sample)
			}

			second, err := Encode(decoded)
			if err != nil {
				t.Fatalf("re-Encode: %v", err)
			}
			if !first.Equal(second) {
				t.Errorf("encode(decode(encode(x))) != encode(x)")
			}
			if strings.Join(first.Keys(), ",") != strings.Join(second.Keys(), ",") {
				t.Errorf("key order changed: %v vs %v", first.Keys(), second.Keys())
			}
		})
	}
}

func TestEncode_EnumsUseTags(t *testing.T) {
	m, err := Encode(rtc.VideoFrameInfo{Width: 1, Height: 1, Rotation: rtc.VideoRotation270})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get("rotation"); v != int64(270) {
		t.Errorf("rotation = %v", v)
	}

	m, _ = Encode(rtc.LiveAudioConfig{Codec: rtc.TranscodingAudioAAC, AACProfile: rtc.AACProfileHEv2})
	if v, _ := m.Get("aacProfile"); v != "HEv2" {
		t.Errorf("aacProfile = %v", v)
	}

	m, _ = Encode(rtc.RoomConfig{Profile: rtc.RoomProfileMeeting})
	if v, _ := m.Get("profile"); v != int64(16) {
		t.Errorf("profile = %v, want stable tag 16", v)
	}
}

func TestEncode_OptionalAbsentNotOmitted(t *testing.T) {
	m, err := Encode(rtc.UserInfo{UID: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	v, ok := m.Get("metaData")
	if !ok {
		t.Fatal("unset optional key omitted")
	}
	if !IsAbsent(v) {
		t.Errorf("metaData = %v, want Absent", v)
	}

	back, err := Decode[rtc.UserInfo](m)
	if err != nil {
		t.Fatal(err)
	}
	if back.MetaData != nil {
		t.Error("absent decoded as set")
	}

	empty := ""
	m, _ = Encode(rtc.UserInfo{UID: "alice", MetaData: &empty})
	back, _ = Decode[rtc.UserInfo](m)
	if back.MetaData == nil || *back.MetaData != "" {
		t.Error("present empty string must stay distinct from absent")
	}
}

func TestDecode_MissingRequiredField(t *testing.T) {
	m := NewMap().Set("roomId", "r").Set("uid", "u")

	_, err := Decode[rtc.RemoteStreamKey](m)
	if !errors.IsDecode(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if !strings.Contains(err.Error(), "streamIndex") {
		t.Errorf("error should name the key: %v", err)
	}
}

func TestDecode_NestedPath(t *testing.T) {
	cfg, _ := Encode(rtc.RoomConfig{Profile: rtc.RoomProfileChat})
	rv, _ := cfg.Get("remoteVideoConfig")
	rv.(*Map).Set("width", "wide")

	_, err := Decode[rtc.RoomConfig](cfg)
	if err == nil || !strings.Contains(err.Error(), "remoteVideoConfig.width") {
		t.Fatalf("expected nested path in error, got %v", err)
	}
}

func TestDecode_IgnoresUnknownKeys(t *testing.T) {
	m, _ := Encode(sampleKey)
	m.Set("extra", "ignored")

	got, err := Decode[rtc.RemoteStreamKey](m)
	if err != nil {
		t.Fatal(err)
	}
	if got != sampleKey {
		t.Errorf("got %+v", got)
	}
}

func TestEncode_RejectsPointer(t *testing.T) {
	if _, err := Encode(&sampleKey); err == nil {
		t.Error("expected error for pointer record")
	}
	if _, err := Encode(nil); err == nil {
		t.Error("expected error for nil record")
	}
}

func TestReadHelpers(t *testing.T) {
	args := NewMap().
		Set("key", sampleKey).
		Set("targets", []any{NewMap().Set("roomId", "a").Set("token", "t1"), NewMap().Set("roomId", "b").Set("token", "t2")}).
		Set("info", Absent)

	r := NewReader(args)
	key := Read[rtc.RemoteStreamKey](r, "key")
	targets := ReadList[rtc.ForwardStreamInfo](r, "targets")
	info := ReadOpt[rtc.ProblemFeedbackInfo](r, "info")
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}

	if key != sampleKey {
		t.Errorf("key = %+v", key)
	}
	if len(targets) != 2 || targets[1].RoomID != "b" {
		t.Errorf("targets = %+v", targets)
	}
	if info != nil {
		t.Errorf("info = %+v", info)
	}

	list := EncodeList(targets)
	if len(list) != 2 {
		t.Fatalf("EncodeList len = %d", len(list))
	}
	if m, ok := list[0].(*Map); !ok || m.Len() != 2 {
		t.Errorf("EncodeList[0] = %#v", list[0])
	}
}
