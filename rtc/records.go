package rtc

// Record is a value object with a fixed field schema. RecordName is the
// stable tag the codec uses to select its schema.
type Record interface {
	RecordName() string
}

// RemoteStreamKey identifies a remote user's stream within a room.
type RemoteStreamKey struct {
	RoomID      string
	UID         string
	StreamIndex StreamIndex
}

type VideoFrameInfo struct {
	Width    int
	Height   int
	Rotation VideoRotation
}

type LocalAudioStats struct {
	AudioLossRate    float32
	SentKBitrate     float32
	RecordSampleRate int
	StatsInterval    int
	RTT              int
	NumChannels      int
	SentSampleRate   int
}

type LocalVideoStats struct {
	SentKBitrate           float32
	InputFrameRate         int
	SentFrameRate          int
	EncoderOutputFrameRate int
	RenderOutputFrameRate  int
	StatsInterval          int
	VideoLossRate          float32
	RTT                    int
	EncodedBitrate         int
	EncodedFrameWidth      int
	EncodedFrameHeight     int
	EncodedFrameCount      int
	CodecType              VideoCodecType
	IsScreen               bool
}

type LocalStreamStats struct {
	AudioStats LocalAudioStats
	VideoStats LocalVideoStats
	IsScreen   bool
}

type RemoteAudioStats struct {
	AudioLossRate      float32
	ReceivedKBitrate   float32
	StallCount         int
	StallDuration      int
	E2EDelay           int64
	PlayoutSampleRate  int
	StatsInterval      int
	RTT                int
	TotalRTT           int
	Quality            NetworkQuality
	JitterBufferDelay  int
	NumChannels        int
	ReceivedSampleRate int
	FrozenRate         int
	ConcealedSamples   int
	ConcealmentEvent   int
	DecSampleRate      int
	DecDuration        int
}

type RemoteVideoStats struct {
	Width                  int
	Height                 int
	VideoLossRate          float32
	ReceivedKBitrate       float32
	DecoderOutputFrameRate int
	RenderOutputFrameRate  int
	StallCount             int
	StallDuration          int
	E2EDelay               int64
	IsScreen               bool
	StatsInterval          int
	RTT                    int
	FrozenRate             int
	VideoIndex             int
	CodecType              VideoCodecType
}

type RemoteStreamStats struct {
	UID        string
	AudioStats RemoteAudioStats
	VideoStats RemoteVideoStats
	IsScreen   bool
}

// SourceWantedData is the encoder's requested capture format.
type SourceWantedData struct {
	Width     int
	Height    int
	FrameRate int
}

type RecordingInfo struct {
	FilePath       string
	VideoCodecType VideoCodecType
	Width          int
	Height         int
}

type RecordingProgress struct {
	Duration int64
	FileSize int64
}

type SysStats struct {
	CPUCores         int
	CPUAppUsage      float64
	CPUTotalUsage    float64
	MemoryUsage      float64
	FullMemory       int64
	TotalMemoryUsage int64
	FreeMemory       int64
	MemoryRatio      float64
	TotalMemoryRatio float64
}

type RoomStats struct {
	Duration           int
	TxBytes            int64
	RxBytes            int64
	TxKBitrate         int
	RxKBitrate         int
	TxAudioKBitrate    int
	RxAudioKBitrate    int
	TxVideoKBitrate    int
	RxVideoKBitrate    int
	TxScreenKBitrate   int
	RxScreenKBitrate   int
	UserCount          int
	CPUAppUsage        float64
	CPUTotalUsage      float64
	TxLostRate         float32
	RxLostRate         float32
	RTT                int
	TxJitter           int
	RxJitter           int
	TxCellularKBitrate int
	RxCellularKBitrate int
}

type VideoStreamDescription struct {
	Width             int
	Height            int
	FrameRate         int
	MaxKbps           int
	EncoderPreference VideoEncoderPreference
}

// Stream describes a remote user's published stream.
type Stream struct {
	UID                     string
	IsScreen                bool
	HasVideo                bool
	HasAudio                bool
	VideoStreamDescriptions []VideoStreamDescription
}

type RemoteStreamSwitch struct {
	UID              string
	IsScreen         bool
	BeforeVideoIndex int
	AfterVideoIndex  int
	BeforeEnable     bool
	AfterEnable      bool
	Reason           int
}

type AudioPropertiesInfo struct {
	LinearVolume    int
	NonlinearVolume int
	VAD             int
	Spectrum        []float64
}

type LocalAudioPropertiesInfo struct {
	StreamIndex         StreamIndex
	AudioPropertiesInfo AudioPropertiesInfo
}

type RemoteAudioPropertiesInfo struct {
	StreamKey           RemoteStreamKey
	AudioPropertiesInfo AudioPropertiesInfo
}

type SubscribeConfig struct {
	IsScreen      bool
	SubVideo      bool
	SubAudio      bool
	VideoIndex    int
	SubWidth      int
	SubHeight     int
	SubVideoIndex int
	SVCLayer      int
	FrameRate     int
}

type AudioVolumeInfo struct {
	UID             string
	LinearVolume    int
	NonlinearVolume int
}

type NetworkQualityStats struct {
	UID            string
	FractionLost   float64
	RTT            int
	TotalBandwidth int
	TxQuality      NetworkQuality
	RxQuality      NetworkQuality
}

type ForwardStreamEventInfo struct {
	RoomID string
	Event  ForwardStreamEvent
}

type ForwardStreamStateInfo struct {
	RoomID string
	State  ForwardStreamState
	Error  int
}

// UserInfo identifies a room participant. MetaData is nil when unset.
type UserInfo struct {
	UID      string
	MetaData *string
}

type RangeAudioInfo struct {
	UID    string
	Factor int
}

type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

type ExpressionDetectInfo struct {
	Age           int
	BoyProb       float32
	Attractive    float32
	HappyScore    float32
	SadScore      float32
	SurpriseScore float32
	Arousal       float32
	Valence       float32
}

type FaceDetectionResult struct {
	DetectResult int
	ImageWidth   int
	ImageHeight  int
	Faces        []Rectangle
	Expressions  []ExpressionDetectInfo
	FrameTimeUs  int64
}

type SubtitleMessage struct {
	UserID   string
	Text     string
	Language string
	Mode     SubtitleMode
	Sequence int
	Definite SubtitleDefinite
}

func (RemoteStreamKey) RecordName() string           { return "RemoteStreamKey" }
func (VideoFrameInfo) RecordName() string            { return "VideoFrameInfo" }
func (LocalAudioStats) RecordName() string           { return "LocalAudioStats" }
func (LocalVideoStats) RecordName() string           { return "LocalVideoStats" }
func (LocalStreamStats) RecordName() string          { return "LocalStreamStats" }
func (RemoteAudioStats) RecordName() string          { return "RemoteAudioStats" }
func (RemoteVideoStats) RecordName() string          { return "RemoteVideoStats" }
func (RemoteStreamStats) RecordName() string         { return "RemoteStreamStats" }
func (SourceWantedData) RecordName() string          { return "SourceWantedData" }
func (RecordingInfo) RecordName() string             { return "RecordingInfo" }
func (RecordingProgress) RecordName() string         { return "RecordingProgress" }
func (SysStats) RecordName() string                  { return "SysStats" }
func (RoomStats) RecordName() string                 { return "RoomStats" }
func (VideoStreamDescription) RecordName() string    { return "VideoStreamDescription" }
func (Stream) RecordName() string                    { return "Stream" }
func (RemoteStreamSwitch) RecordName() string        { return "RemoteStreamSwitch" }
func (AudioPropertiesInfo) RecordName() string       { return "AudioPropertiesInfo" }
func (LocalAudioPropertiesInfo) RecordName() string  { return "LocalAudioPropertiesInfo" }
func (RemoteAudioPropertiesInfo) RecordName() string { return "RemoteAudioPropertiesInfo" }
func (SubscribeConfig) RecordName() string           { return "SubscribeConfig" }
func (AudioVolumeInfo) RecordName() string           { return "AudioVolumeInfo" }
func (NetworkQualityStats) RecordName() string       { return "NetworkQualityStats" }
func (ForwardStreamEventInfo) RecordName() string    { return "ForwardStreamEventInfo" }
func (ForwardStreamStateInfo) RecordName() string    { return "ForwardStreamStateInfo" }
func (UserInfo) RecordName() string                  { return "UserInfo" }
func (RangeAudioInfo) RecordName() string            { return "RangeAudioInfo" }
func (Rectangle) RecordName() string                 { return "Rectangle" }
func (ExpressionDetectInfo) RecordName() string      { return "ExpressionDetectInfo" }
func (FaceDetectionResult) RecordName() string       { return "FaceDetectionResult" }
func (SubtitleMessage) RecordName() string           { return "SubtitleMessage" }
