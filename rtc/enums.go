package rtc

// Enumerations carry explicit stable tags. Values travel to the host as
// these tags, never as declaration order, so new members must take a new
// tag and existing tags must never be renumbered.

// StreamIndex selects the main camera stream or the screen share stream.
type StreamIndex int

const (
	StreamIndexMain   StreamIndex = 0
	StreamIndexScreen StreamIndex = 1
)

func (v StreamIndex) Valid() bool { return v == StreamIndexMain || v == StreamIndexScreen }

// MediaStreamType selects audio, video or both.
type MediaStreamType int

const (
	MediaStreamTypeAudio MediaStreamType = 1
	MediaStreamTypeVideo MediaStreamType = 2
	MediaStreamTypeBoth  MediaStreamType = 3
)

func (v MediaStreamType) Valid() bool { return v >= MediaStreamTypeAudio && v <= MediaStreamTypeBoth }

// RoomProfile is the room scenario.
type RoomProfile int

const (
	RoomProfileCommunication      RoomProfile = 0
	RoomProfileLiveBroadcasting   RoomProfile = 1
	RoomProfileGame               RoomProfile = 2
	RoomProfileCloudGame          RoomProfile = 3
	RoomProfileLowLatency         RoomProfile = 4
	RoomProfileChat               RoomProfile = 5
	RoomProfileChatRoom           RoomProfile = 6
	RoomProfileInteractivePodcast RoomProfile = 10
	RoomProfileKTV                RoomProfile = 11
	RoomProfileChorus             RoomProfile = 12
	RoomProfileMeeting            RoomProfile = 16
	RoomProfileClassroom          RoomProfile = 18
)

func (v RoomProfile) Valid() bool {
	switch v {
	case RoomProfileCommunication, RoomProfileLiveBroadcasting, RoomProfileGame,
		RoomProfileCloudGame, RoomProfileLowLatency, RoomProfileChat, RoomProfileChatRoom,
		RoomProfileInteractivePodcast, RoomProfileKTV, RoomProfileChorus,
		RoomProfileMeeting, RoomProfileClassroom:
		return true
	}
	return false
}

// VideoEncoderPreference trades frame rate against quality under pressure.
type VideoEncoderPreference int

const (
	EncoderPreferenceDisabled          VideoEncoderPreference = 0
	EncoderPreferenceMaintainFramerate VideoEncoderPreference = 1
	EncoderPreferenceMaintainQuality   VideoEncoderPreference = 2
	EncoderPreferenceBalance           VideoEncoderPreference = 3
)

func (v VideoEncoderPreference) Valid() bool {
	return v >= EncoderPreferenceDisabled && v <= EncoderPreferenceBalance
}

// CapturePreference controls how capture parameters are chosen.
type CapturePreference int

const (
	CapturePreferenceAuto            CapturePreference = 0
	CapturePreferenceManual          CapturePreference = 1
	CapturePreferenceAutoPerformance CapturePreference = 2
)

func (v CapturePreference) Valid() bool {
	return v >= CapturePreferenceAuto && v <= CapturePreferenceAutoPerformance
}

// AudioScenario tunes the audio device for a use case.
type AudioScenario int

const (
	AudioScenarioMusic                    AudioScenario = 0
	AudioScenarioHighQualityCommunication AudioScenario = 1
	AudioScenarioCommunication            AudioScenario = 2
	AudioScenarioMedia                    AudioScenario = 3
	AudioScenarioGameStreaming            AudioScenario = 4
	AudioScenarioHighQualityChat          AudioScenario = 5
)

func (v AudioScenario) Valid() bool {
	return v >= AudioScenarioMusic && v <= AudioScenarioHighQualityChat
}

// AudioProfile selects the audio encoding quality tier.
type AudioProfile int

const (
	AudioProfileDefault        AudioProfile = 0
	AudioProfileFluent         AudioProfile = 1
	AudioProfileStandard       AudioProfile = 2
	AudioProfileHD             AudioProfile = 3
	AudioProfileStandardStereo AudioProfile = 4
	AudioProfileHDMono         AudioProfile = 5
)

func (v AudioProfile) Valid() bool { return v >= AudioProfileDefault && v <= AudioProfileHDMono }

type TorchState int

const (
	TorchStateOff TorchState = 0
	TorchStateOn  TorchState = 1
)

func (v TorchState) Valid() bool { return v == TorchStateOff || v == TorchStateOn }

type CameraID int

const (
	CameraFront    CameraID = 0
	CameraBack     CameraID = 1
	CameraExternal CameraID = 2
)

func (v CameraID) Valid() bool { return v >= CameraFront && v <= CameraExternal }

type PublishFallbackOption int

const (
	PublishFallbackDisabled                PublishFallbackOption = 0
	PublishFallbackSimulcastSmallVideoOnly PublishFallbackOption = 1
)

func (v PublishFallbackOption) Valid() bool {
	return v == PublishFallbackDisabled || v == PublishFallbackSimulcastSmallVideoOnly
}

type SubscribeFallbackOption int

const (
	SubscribeFallbackDisabled       SubscribeFallbackOption = 0
	SubscribeFallbackVideoStreamLow SubscribeFallbackOption = 1
	SubscribeFallbackAudioOnly      SubscribeFallbackOption = 2
)

func (v SubscribeFallbackOption) Valid() bool {
	return v >= SubscribeFallbackDisabled && v <= SubscribeFallbackAudioOnly
}

type RemoteUserPriority int

const (
	RemoteUserPriorityLow    RemoteUserPriority = 0
	RemoteUserPriorityMedium RemoteUserPriority = 100
	RemoteUserPriorityHigh   RemoteUserPriority = 200
)

func (v RemoteUserPriority) Valid() bool {
	return v == RemoteUserPriorityLow || v == RemoteUserPriorityMedium || v == RemoteUserPriorityHigh
}

// PauseResumeMediaType selects which subscribed media a pause applies to.
type PauseResumeMediaType int

const (
	PauseResumeAudio         PauseResumeMediaType = 0
	PauseResumeVideo         PauseResumeMediaType = 1
	PauseResumeAudioAndVideo PauseResumeMediaType = 2
)

func (v PauseResumeMediaType) Valid() bool { return v >= PauseResumeAudio && v <= PauseResumeAudioAndVideo }

// MessageConfig selects delivery guarantees for user messages.
type MessageConfig int

const (
	MessageReliableOrdered     MessageConfig = 0
	MessageUnreliableOrdered   MessageConfig = 1
	MessageUnreliableUnordered MessageConfig = 2
)

func (v MessageConfig) Valid() bool { return v >= MessageReliableOrdered && v <= MessageUnreliableUnordered }

type RecordingFileType int

const (
	RecordingFileTypeFLV RecordingFileType = 0
	RecordingFileTypeMP4 RecordingFileType = 1
)

func (v RecordingFileType) Valid() bool { return v == RecordingFileTypeFLV || v == RecordingFileTypeMP4 }

type RecordingType int

const (
	RecordingTypeAudioOnly     RecordingType = 0
	RecordingTypeVideoOnly     RecordingType = 1
	RecordingTypeVideoAndAudio RecordingType = 2
)

func (v RecordingType) Valid() bool { return v >= RecordingTypeAudioOnly && v <= RecordingTypeVideoAndAudio }

type AudioFrameSource int

const (
	AudioFrameSourceMicrophone AudioFrameSource = 0
	AudioFrameSourcePlayback   AudioFrameSource = 1
	AudioFrameSourceMixed      AudioFrameSource = 2
)

func (v AudioFrameSource) Valid() bool { return v >= AudioFrameSourceMicrophone && v <= AudioFrameSourceMixed }

type AudioQuality int

const (
	AudioQualityLow       AudioQuality = 0
	AudioQualityMedium    AudioQuality = 1
	AudioQualityHigh      AudioQuality = 2
	AudioQualityUltraHigh AudioQuality = 3
)

func (v AudioQuality) Valid() bool { return v >= AudioQualityLow && v <= AudioQualityUltraHigh }

type ASRAuthorizationType int

const (
	ASRAuthorizationToken     ASRAuthorizationType = 0
	ASRAuthorizationSignature ASRAuthorizationType = 1
)

func (v ASRAuthorizationType) Valid() bool {
	return v == ASRAuthorizationToken || v == ASRAuthorizationSignature
}

type AudioReportMode int

const (
	AudioReportModeNormal     AudioReportMode = 0
	AudioReportModeDisconnect AudioReportMode = 1
	AudioReportModeReset      AudioReportMode = 2
)

func (v AudioReportMode) Valid() bool { return v >= AudioReportModeNormal && v <= AudioReportModeReset }

type AudioPropertiesMode int

const (
	AudioPropertiesModeMicrophone  AudioPropertiesMode = 0
	AudioPropertiesModeAudioMixing AudioPropertiesMode = 1
)

func (v AudioPropertiesMode) Valid() bool {
	return v == AudioPropertiesModeMicrophone || v == AudioPropertiesModeAudioMixing
}

// AudioMixingType selects where mixed audio is heard.
type AudioMixingType int

const (
	AudioMixingPlayout           AudioMixingType = 0
	AudioMixingPublish           AudioMixingType = 1
	AudioMixingPlayoutAndPublish AudioMixingType = 2
)

func (v AudioMixingType) Valid() bool { return v >= AudioMixingPlayout && v <= AudioMixingPlayoutAndPublish }

// ProblemFeedbackOption is a single feedback category bit.
type ProblemFeedbackOption int64

const (
	FeedbackNone          ProblemFeedbackOption = 0
	FeedbackLowResolution ProblemFeedbackOption = 1 << 0
	FeedbackVideoDelay    ProblemFeedbackOption = 1 << 1
	FeedbackAudioDelay    ProblemFeedbackOption = 1 << 2
	FeedbackAudioLagging  ProblemFeedbackOption = 1 << 3
	FeedbackVideoLagging  ProblemFeedbackOption = 1 << 4
	FeedbackDisconnected  ProblemFeedbackOption = 1 << 5
	FeedbackNoVideo       ProblemFeedbackOption = 1 << 6
	FeedbackNoAudio       ProblemFeedbackOption = 1 << 7
	FeedbackEchoNoise     ProblemFeedbackOption = 1 << 8
	FeedbackOtherMessage  ProblemFeedbackOption = 1 << 9
)

func (v ProblemFeedbackOption) Valid() bool {
	return v == FeedbackNone || (v > 0 && v <= FeedbackOtherMessage && v&(v-1) == 0)
}

type VirtualBackgroundSourceType int

const (
	VirtualBackgroundColor VirtualBackgroundSourceType = 0
	VirtualBackgroundImage VirtualBackgroundSourceType = 1
)

func (v VirtualBackgroundSourceType) Valid() bool {
	return v == VirtualBackgroundColor || v == VirtualBackgroundImage
}

type LocalProxyType int

const (
	LocalProxySocks5     LocalProxyType = 1
	LocalProxyHTTPTunnel LocalProxyType = 2
)

func (v LocalProxyType) Valid() bool { return v == LocalProxySocks5 || v == LocalProxyHTTPTunnel }

type SubtitleMode int

const (
	SubtitleModeRecognition SubtitleMode = 0
	SubtitleModeTranslation SubtitleMode = 1
)

func (v SubtitleMode) Valid() bool { return v == SubtitleModeRecognition || v == SubtitleModeTranslation }

type RenderMode int

const (
	RenderModeHidden RenderMode = 1
	RenderModeFit    RenderMode = 2
	RenderModeFill   RenderMode = 3
)

func (v RenderMode) Valid() bool { return v >= RenderModeHidden && v <= RenderModeFill }

// MixType selects server or client side stream mixing.
type MixType int

const (
	MixTypeServer MixType = 0
	MixTypeClient MixType = 1
)

func (v MixType) Valid() bool { return v == MixTypeServer || v == MixTypeClient }

// RegionType says whether a transcoding region shows a stream or an image.
type RegionType int

const (
	RegionTypeVideo RegionType = 0
	RegionTypeImage RegionType = 1
)

func (v RegionType) Valid() bool { return v == RegionTypeVideo || v == RegionTypeImage }

type ContentControl int

const (
	ContentControlDefault   ContentControl = 0
	ContentControlAudioOnly ContentControl = 1
	ContentControlVideoOnly ContentControl = 2
)

func (v ContentControl) Valid() bool { return v >= ContentControlDefault && v <= ContentControlVideoOnly }

type InterpolationMode int

const (
	InterpolationLastFrame  InterpolationMode = 0
	InterpolationBackground InterpolationMode = 1
)

func (v InterpolationMode) Valid() bool {
	return v == InterpolationLastFrame || v == InterpolationBackground
}

type LayoutMode int

const (
	LayoutModeAuto   LayoutMode = 0
	LayoutModeCustom LayoutMode = 2
)

func (v LayoutMode) Valid() bool { return v == LayoutModeAuto || v == LayoutModeCustom }

// TranscodingVideoCodec is a string-tagged codec name.
type TranscodingVideoCodec string

const (
	TranscodingVideoH264    TranscodingVideoCodec = "H264"
	TranscodingVideoByteVC1 TranscodingVideoCodec = "ByteVC1"
)

func (v TranscodingVideoCodec) Valid() bool {
	return v == TranscodingVideoH264 || v == TranscodingVideoByteVC1
}

// TranscodingAudioCodec is a string-tagged codec name.
type TranscodingAudioCodec string

const TranscodingAudioAAC TranscodingAudioCodec = "AAC"

func (v TranscodingAudioCodec) Valid() bool { return v == TranscodingAudioAAC }

// AACProfile is a string-tagged AAC profile.
type AACProfile string

const (
	AACProfileLC   AACProfile = "LC"
	AACProfileHEv1 AACProfile = "HEv1"
	AACProfileHEv2 AACProfile = "HEv2"
)

func (v AACProfile) Valid() bool { return v == AACProfileLC || v == AACProfileHEv1 || v == AACProfileHEv2 }

type VideoCodecType int

const (
	VideoCodecUnknown VideoCodecType = 0
	VideoCodecH264    VideoCodecType = 1
	VideoCodecByteVC1 VideoCodecType = 2
)

func (v VideoCodecType) Valid() bool { return v >= VideoCodecUnknown && v <= VideoCodecByteVC1 }

type VideoRotation int

const (
	VideoRotation0   VideoRotation = 0
	VideoRotation90  VideoRotation = 90
	VideoRotation180 VideoRotation = 180
	VideoRotation270 VideoRotation = 270
)

func (v VideoRotation) Valid() bool {
	return v == VideoRotation0 || v == VideoRotation90 || v == VideoRotation180 || v == VideoRotation270
}

type NetworkQuality int

const (
	NetworkQualityUnknown   NetworkQuality = 0
	NetworkQualityExcellent NetworkQuality = 1
	NetworkQualityGood      NetworkQuality = 2
	NetworkQualityPoor      NetworkQuality = 3
	NetworkQualityBad       NetworkQuality = 4
	NetworkQualityVeryBad   NetworkQuality = 5
	NetworkQualityDown      NetworkQuality = 6
)

func (v NetworkQuality) Valid() bool { return v >= NetworkQualityUnknown && v <= NetworkQualityDown }

type ForwardStreamEvent int

const (
	ForwardStreamEventDisconnected   ForwardStreamEvent = 0
	ForwardStreamEventConnected      ForwardStreamEvent = 1
	ForwardStreamEventInterrupt      ForwardStreamEvent = 2
	ForwardStreamEventDstRoomUpdated ForwardStreamEvent = 3
	ForwardStreamEventUnexpectedCall ForwardStreamEvent = 4
)

func (v ForwardStreamEvent) Valid() bool {
	return v >= ForwardStreamEventDisconnected && v <= ForwardStreamEventUnexpectedCall
}

type ForwardStreamState int

const (
	ForwardStreamStateIdle    ForwardStreamState = 0
	ForwardStreamStateSuccess ForwardStreamState = 1
	ForwardStreamStateFailure ForwardStreamState = 2
)

func (v ForwardStreamState) Valid() bool {
	return v >= ForwardStreamStateIdle && v <= ForwardStreamStateFailure
}

// SubtitleDefinite marks whether a subtitle line is final.
type SubtitleDefinite int

const (
	SubtitleInterim SubtitleDefinite = 0
	SubtitleFinal   SubtitleDefinite = 1
)

func (v SubtitleDefinite) Valid() bool { return v == SubtitleInterim || v == SubtitleFinal }

// MusicFilterType filters catalogue results.
type MusicFilterType int

const (
	MusicFilterNone                 MusicFilterType = 0
	MusicFilterWithoutLyric         MusicFilterType = 1
	MusicFilterUnsupportedScore     MusicFilterType = 2
	MusicFilterUnsupportedAccompany MusicFilterType = 4
	MusicFilterUnsupportedClimax    MusicFilterType = 8
)

func (v MusicFilterType) Valid() bool {
	switch v {
	case MusicFilterNone, MusicFilterWithoutLyric, MusicFilterUnsupportedScore,
		MusicFilterUnsupportedAccompany, MusicFilterUnsupportedClimax:
		return true
	}
	return false
}

type MusicHotType int

const (
	MusicHotTypeVendor  MusicHotType = 1
	MusicHotTypeProject MusicHotType = 2
)

func (v MusicHotType) Valid() bool { return v == MusicHotTypeVendor || v == MusicHotTypeProject }

type LyricType int

const (
	LyricTypeKRC LyricType = 0
	LyricTypeLRC LyricType = 1
)

func (v LyricType) Valid() bool { return v == LyricTypeKRC || v == LyricTypeLRC }

type DownloadFileType int

const (
	DownloadFileMusic DownloadFileType = 1
	DownloadFileKRC   DownloadFileType = 2
	DownloadFileLRC   DownloadFileType = 3
	DownloadFileMIDI  DownloadFileType = 4
)

func (v DownloadFileType) Valid() bool { return v >= DownloadFileMusic && v <= DownloadFileMIDI }

type AudioTrackType int

const (
	AudioTrackOriginal  AudioTrackType = 1
	AudioTrackAccompany AudioTrackType = 2
)

func (v AudioTrackType) Valid() bool { return v == AudioTrackOriginal || v == AudioTrackAccompany }

type AudioPlayType int

const (
	AudioPlayLocal          AudioPlayType = 0
	AudioPlayRemote         AudioPlayType = 1
	AudioPlayLocalAndRemote AudioPlayType = 2
)

func (v AudioPlayType) Valid() bool { return v >= AudioPlayLocal && v <= AudioPlayLocalAndRemote }

// PlayerState is reported by media, effect and karaoke players.
type PlayerState int

const (
	PlayerStateIdle      PlayerState = 0
	PlayerStatePreloaded PlayerState = 1
	PlayerStateOpened    PlayerState = 2
	PlayerStatePlaying   PlayerState = 3
	PlayerStatePaused    PlayerState = 4
	PlayerStateStopped   PlayerState = 5
	PlayerStateFailed    PlayerState = 6
	PlayerStateFinished  PlayerState = 7
)

func (v PlayerState) Valid() bool { return v >= PlayerStateIdle && v <= PlayerStateFinished }
