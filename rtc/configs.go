package rtc

// Configuration records sent by the host to parameterise native calls.

type RemoteVideoConfig struct {
	Width     int
	Height    int
	FrameRate int
}

type RoomConfig struct {
	Profile              RoomProfile
	IsAutoPublish        bool
	IsAutoSubscribeAudio bool
	IsAutoSubscribeVideo bool
	RemoteVideoConfig    RemoteVideoConfig
}

type ForwardStreamInfo struct {
	RoomID string
	Token  string
}

type SourceCrop struct {
	LocationX        float64
	LocationY        float64
	WidthProportion  float64
	HeightProportion float64
}

type PublicStreamRegion struct {
	UID        string
	RoomID     string
	X          float64
	Y          float64
	W          float64
	H          float64
	ZOrder     int
	Alpha      float64
	StreamType StreamIndex
	MediaType  ContentControl
	RenderMode RenderMode
	SourceCrop SourceCrop
}

type PublicStreamLayout struct {
	InterpolationMode InterpolationMode
	LayoutMode        LayoutMode
	BackgroundColor   string
	BackgroundImage   string
	Regions           []PublicStreamRegion
}

type PublicStreamVideoConfig struct {
	Width    int
	Height   int
	FPS      int
	KBitrate int
}

type PublicStreamAudioConfig struct {
	KBitrate   int
	SampleRate int
	Channels   int
}

// PublicStreaming configures a public stream push.
type PublicStreaming struct {
	RoomID string
	Video  PublicStreamVideoConfig
	Audio  PublicStreamAudioConfig
	Layout PublicStreamLayout
}

type VideoEncoderConfig struct {
	Width             int
	Height            int
	FrameRate         int
	MaxBitrate        int
	MinBitrate        int
	EncoderPreference VideoEncoderPreference
}

type ScreenVideoEncoderConfig struct {
	Width             int
	Height            int
	FrameRate         int
	MaxBitrate        int
	MinBitrate        int
	EncoderPreference VideoEncoderPreference
}

type VideoCaptureConfig struct {
	Width             int
	Height            int
	FrameRate         int
	CapturePreference CapturePreference
}

type VirtualBackgroundSource struct {
	SourceType  VirtualBackgroundSourceType
	SourceColor int64
	SourcePath  string
}

type WatermarkPosition struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

type WatermarkConfig struct {
	VisibleInPreview        bool
	PositionInLandscapeMode WatermarkPosition
	PositionInPortraitMode  WatermarkPosition
}

type LiveAudioConfig struct {
	Codec      TranscodingAudioCodec
	AACProfile AACProfile
	SampleRate int
	Channels   int
	KBitrate   int
}

type LiveVideoConfig struct {
	Codec    TranscodingVideoCodec
	FPS      int
	GOP      int
	BFrame   bool
	KBitrate int
	Width    int
	Height   int
}

// RegionDataParam sizes an image region's raw data.
type RegionDataParam struct {
	ImageWidth  int
	ImageHeight int
}

// LiveRegion is one tile of a transcoded layout. Data and DataParam are
// set only for image regions.
type LiveRegion struct {
	UID               string
	RoomID            string
	X                 float64
	Y                 float64
	W                 float64
	H                 float64
	ZOrder            int
	Alpha             float64
	ContentControl    ContentControl
	RenderMode        RenderMode
	LocalUser         bool
	IsScreen          bool
	CornerRadius      float64
	ApplySpatialAudio bool
	Type              RegionType
	Data              []byte
	DataParam         *RegionDataParam
}

type LiveLayout struct {
	AppData         string
	BackgroundColor string
	Regions         []LiveRegion
}

type LiveSpatialConfig struct {
	EnableSpatialRender bool
	Position            Position
	Orientation         HumanOrientation
}

// LiveTranscoding configures a CDN push of a mixed stream.
type LiveTranscoding struct {
	URL           string
	RoomID        string
	UID           string
	MixType       MixType
	Video         LiveVideoConfig
	Audio         LiveAudioConfig
	Layout        LiveLayout
	SpatialConfig LiveSpatialConfig
}

type PushSingleStreamParam struct {
	RoomID   string
	UID      string
	URL      string
	IsScreen bool
}

type RecordingConfig struct {
	DirPath           string
	RecordingFileType RecordingFileType
}

type AudioRecordingConfig struct {
	AbsoluteFileName string
	SampleRate       int
	Channel          int
	FrameSource      AudioFrameSource
	Quality          AudioQuality
}

type ASRConfig struct {
	UID               string
	AccessToken       string
	SecretKey         string
	AuthorizationType ASRAuthorizationType
	Cluster           string
	AppID             string
}

type ProblemFeedbackRoomInfo struct {
	RoomID string
	UID    string
}

type ProblemFeedbackInfo struct {
	ProblemDesc string
	RoomInfo    []ProblemFeedbackRoomInfo
}

type AudioPropertiesConfig struct {
	Interval            int
	EnableSpectrum      bool
	EnableVAD           bool
	LocalMainReportMode AudioReportMode
	Smooth              float32
	AudioReportMode     AudioPropertiesMode
}

type StreamSyncInfoConfig struct {
	StreamIndex StreamIndex
	RepeatCount int
}

type MediaPlayerConfig struct {
	Type                       AudioMixingType
	PlayCount                  int
	StartPos                   int64
	AutoPlay                   bool
	CallbackOnProgressInterval int64
	SyncProgressToRecordFrame  bool
}

type AudioEffectPlayerConfig struct {
	Type      AudioMixingType
	PlayCount int
	StartPos  int
	Pitch     int
}

type Position struct {
	X float32
	Y float32
	Z float32
}

type Orientation struct {
	X float32
	Y float32
	Z float32
}

type HumanOrientation struct {
	Forward Orientation
	Right   Orientation
	Up      Orientation
}

type ReceiveRange struct {
	Min int
	Max int
}

// EchoTestConfig starts a loopback call test. Token is nil when the room
// does not require one.
type EchoTestConfig struct {
	UID                 string
	RoomID              string
	Token               *string
	EnableAudio         bool
	EnableVideo         bool
	AudioReportInterval int
}

type CloudProxyInfo struct {
	CloudProxyIP   string
	CloudProxyPort int
}

type LocalProxyConfiguration struct {
	LocalProxyType     LocalProxyType
	LocalProxyIP       string
	LocalProxyPort     int
	LocalProxyUsername string
	LocalProxyPassword string
}

type MediaTypeEnhancementConfig struct {
	EnhanceSignaling   bool
	EnhanceAudio       bool
	EnhanceVideo       bool
	EnhanceScreenAudio bool
	EnhanceScreenVideo bool
}

type SubtitleConfig struct {
	Mode           SubtitleMode
	TargetLanguage string
}

type VoiceReverbConfig struct {
	RoomSize  float32
	DecayTime float32
	Damping   float32
	WetGain   float32
	DryGain   float32
	PreDelay  float32
}

type VoiceEqualizationConfig struct {
	Frequency int
	Gain      int
}

func (RemoteVideoConfig) RecordName() string          { return "RemoteVideoConfig" }
func (RoomConfig) RecordName() string                 { return "RoomConfig" }
func (ForwardStreamInfo) RecordName() string          { return "ForwardStreamInfo" }
func (SourceCrop) RecordName() string                 { return "SourceCrop" }
func (PublicStreamRegion) RecordName() string         { return "PublicStreamRegion" }
func (PublicStreamLayout) RecordName() string         { return "PublicStreamLayout" }
func (PublicStreamVideoConfig) RecordName() string    { return "PublicStreamVideoConfig" }
func (PublicStreamAudioConfig) RecordName() string    { return "PublicStreamAudioConfig" }
func (PublicStreaming) RecordName() string            { return "PublicStreaming" }
func (VideoEncoderConfig) RecordName() string         { return "VideoEncoderConfig" }
func (ScreenVideoEncoderConfig) RecordName() string   { return "ScreenVideoEncoderConfig" }
func (VideoCaptureConfig) RecordName() string         { return "VideoCaptureConfig" }
func (VirtualBackgroundSource) RecordName() string    { return "VirtualBackgroundSource" }
func (WatermarkPosition) RecordName() string          { return "WatermarkPosition" }
func (WatermarkConfig) RecordName() string            { return "WatermarkConfig" }
func (LiveAudioConfig) RecordName() string            { return "LiveAudioConfig" }
func (LiveVideoConfig) RecordName() string            { return "LiveVideoConfig" }
func (RegionDataParam) RecordName() string            { return "RegionDataParam" }
func (LiveRegion) RecordName() string                 { return "LiveRegion" }
func (LiveLayout) RecordName() string                 { return "LiveLayout" }
func (LiveSpatialConfig) RecordName() string          { return "LiveSpatialConfig" }
func (LiveTranscoding) RecordName() string            { return "LiveTranscoding" }
func (PushSingleStreamParam) RecordName() string      { return "PushSingleStreamParam" }
func (RecordingConfig) RecordName() string            { return "RecordingConfig" }
func (AudioRecordingConfig) RecordName() string       { return "AudioRecordingConfig" }
func (ASRConfig) RecordName() string                  { return "ASRConfig" }
func (ProblemFeedbackRoomInfo) RecordName() string    { return "ProblemFeedbackRoomInfo" }
func (ProblemFeedbackInfo) RecordName() string        { return "ProblemFeedbackInfo" }
func (AudioPropertiesConfig) RecordName() string      { return "AudioPropertiesConfig" }
func (StreamSyncInfoConfig) RecordName() string       { return "StreamSyncInfoConfig" }
func (MediaPlayerConfig) RecordName() string          { return "MediaPlayerConfig" }
func (AudioEffectPlayerConfig) RecordName() string    { return "AudioEffectPlayerConfig" }
func (Position) RecordName() string                   { return "Position" }
func (Orientation) RecordName() string                { return "Orientation" }
func (HumanOrientation) RecordName() string           { return "HumanOrientation" }
func (ReceiveRange) RecordName() string               { return "ReceiveRange" }
func (EchoTestConfig) RecordName() string             { return "EchoTestConfig" }
func (CloudProxyInfo) RecordName() string             { return "CloudProxyInfo" }
func (LocalProxyConfiguration) RecordName() string    { return "LocalProxyConfiguration" }
func (MediaTypeEnhancementConfig) RecordName() string { return "MediaTypeEnhancementConfig" }
func (SubtitleConfig) RecordName() string             { return "SubtitleConfig" }
func (VoiceReverbConfig) RecordName() string          { return "VoiceReverbConfig" }
func (VoiceEqualizationConfig) RecordName() string    { return "VoiceEqualizationConfig" }
