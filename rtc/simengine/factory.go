package simengine

import (
	"fmt"

	"github.com/wippyai/rtc-bridge/rtc"
)

// DefaultVersion is the SDK version the simulation reports.
const DefaultVersion = "3.58.1-sim"

// Factory creates simulated engines.
type Factory struct {
	Version string
	// SnapshotSize is the width and height of captured frames.
	SnapshotSize [2]int
	// CacheDir is where simulated karaoke downloads are reported to land.
	CacheDir string
	// NoSingScoring simulates an engine build without scoring support.
	NoSingScoring bool
}

// NewFactory returns a factory with default settings.
func NewFactory() *Factory {
	return &Factory{
		Version:      DefaultVersion,
		SnapshotSize: [2]int{64, 36},
		CacheDir:     "/tmp/rtc-ktv",
	}
}

func (f *Factory) SDKVersion() string {
	return f.Version
}

func (f *Factory) ErrorDescription(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return fmt.Sprintf("unknown error %d", code)
}

func (f *Factory) CreateEngine(cfg rtc.EngineConfig, h rtc.EngineEventHandler) (rtc.Engine, error) {
	if cfg.AppID == "" {
		return nil, fail("createRTCVideo", CodeInvalidArgument)
	}
	return newEngine(f, cfg, h), nil
}
