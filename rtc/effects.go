package rtc

// AudioMixingDualMonoMode picks the channel played from a dual mono file.
type AudioMixingDualMonoMode int

const (
	DualMonoAuto AudioMixingDualMonoMode = 0
	DualMonoL    AudioMixingDualMonoMode = 1
	DualMonoR    AudioMixingDualMonoMode = 2
	DualMonoMix  AudioMixingDualMonoMode = 3
)

func (v AudioMixingDualMonoMode) Valid() bool { return v >= DualMonoAuto && v <= DualMonoMix }

// AudioMixingState is reported through OnAudioMixingStateChanged.
type AudioMixingState int

const (
	AudioMixingStatePreloaded AudioMixingState = 0
	AudioMixingStatePlaying   AudioMixingState = 1
	AudioMixingStatePaused    AudioMixingState = 2
	AudioMixingStateStopped   AudioMixingState = 3
	AudioMixingStateFailed    AudioMixingState = 4
	AudioMixingStateFinished  AudioMixingState = 5
)

func (v AudioMixingState) Valid() bool {
	return v >= AudioMixingStatePreloaded && v <= AudioMixingStateFinished
}

// AudioSampleRate is a sample rate in Hz. Auto lets the engine choose.
type AudioSampleRate int

const (
	AudioSampleRateAuto  AudioSampleRate = -1
	AudioSampleRate8000  AudioSampleRate = 8000
	AudioSampleRate16000 AudioSampleRate = 16000
	AudioSampleRate32000 AudioSampleRate = 32000
	AudioSampleRate44100 AudioSampleRate = 44100
	AudioSampleRate48000 AudioSampleRate = 48000
)

func (v AudioSampleRate) Valid() bool {
	switch v {
	case AudioSampleRateAuto, AudioSampleRate8000, AudioSampleRate16000,
		AudioSampleRate32000, AudioSampleRate44100, AudioSampleRate48000:
		return true
	}
	return false
}

// AudioMixingConfig starts a mix.
type AudioMixingConfig struct {
	Type                       AudioMixingType
	PlayCount                  int
	Position                   int
	CallbackOnProgressInterval int64
	SyncProgressToRecordFrame  bool
}

// SingScoringConfig points scoring at the lyrics and MIDI of a song.
type SingScoringConfig struct {
	SampleRate     AudioSampleRate
	LyricsFilepath string
	MidiFilepath   string
}

// StandardPitchInfo is one note of a song's reference pitch line.
type StandardPitchInfo struct {
	StartTime int
	Duration  int
	Pitch     int
}

// SingScoringRealtimeInfo is reported while scoring runs.
type SingScoringRealtimeInfo struct {
	CurrentPosition int
	UserPitch       int
	StandardPitch   int
	SentenceIndex   int
	SentenceScore   int
	TotalScore      int
	AverageScore    int
}

func (AudioMixingConfig) RecordName() string       { return "AudioMixingConfig" }
func (SingScoringConfig) RecordName() string       { return "SingScoringConfig" }
func (StandardPitchInfo) RecordName() string       { return "StandardPitchInfo" }
func (SingScoringRealtimeInfo) RecordName() string { return "SingScoringRealtimeInfo" }

// AudioMixingManager mixes local files into captured audio. Mixes are
// addressed by a host-chosen id. State changes and progress are reported
// through the engine's event handler.
type AudioMixingManager interface {
	StartAudioMixing(mixID int, filePath string, cfg AudioMixingConfig) error
	StopAudioMixing(mixID int) error
	StopAllAudioMixing() error
	PauseAudioMixing(mixID int) error
	PauseAllAudioMixing() error
	ResumeAudioMixing(mixID int) error
	ResumeAllAudioMixing() error
	PreloadAudioMixing(mixID int, filePath string) error
	UnloadAudioMixing(mixID int) error
	SetAudioMixingVolume(mixID, volume int, t AudioMixingType) error
	SetAllAudioMixingVolume(volume int, t AudioMixingType) error
	AudioMixingDuration(mixID int) (int, error)
	AudioMixingCurrentPosition(mixID int) (int, error)
	AudioMixingPlaybackDuration(mixID int) (int, error)
	SetAudioMixingPosition(mixID, position int) error
	SetAudioMixingDualMonoMode(mixID int, mode AudioMixingDualMonoMode) error
	SetAudioMixingPitch(mixID, pitch int) error
	SetAudioMixingPlaybackSpeed(mixID, speed int) error
	SetAudioMixingLoudness(mixID int, loudness float32) error
	SetAudioMixingProgressInterval(mixID int, interval int64) error
	AudioTrackCount(mixID int) (int, error)
	SelectAudioTrack(mixID, index int) error
}

// VideoEffect drives the beauty, filter, virtual background and face
// detection pipeline. Face detection results arrive through
// EngineEventHandler.OnFaceDetectResult.
type VideoEffect interface {
	InitCVResource(licenseFile, modelPath string) error
	EnableVideoEffect() error
	DisableVideoEffect() error
	SetEffectNodes(nodes []string) error
	UpdateEffectNode(node, key string, value float32) error
	SetColorFilter(resFile string) error
	SetColorFilterIntensity(intensity float32) error
	EnableVirtualBackground(modelPath string, src VirtualBackgroundSource) error
	DisableVirtualBackground() error
	EnableFaceDetection(intervalMs int, modelPath string) error
	DisableFaceDetection() error
}

// SingScoringManager scores karaoke singing against a reference pitch
// line.
type SingScoringManager interface {
	Destroy()

	// InitSingScoring authenticates scoring. A nil handler disables
	// realtime reports.
	InitSingScoring(appKey, token string, h SingScoringEventHandler) error
	SetSingScoringConfig(cfg SingScoringConfig) error
	StandardPitchInfo(midiFilepath string) ([]StandardPitchInfo, error)
	StartSingScoring(position, scoringInfoInterval int) error
	StopSingScoring() error
	LastSentenceScore() (int, error)
	TotalScore() (int, error)
	AverageScore() (int, error)
}
