package simengine

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/wippyai/rtc-bridge/rtc"
)

// standardPitch is the reference line reported for every .mid file.
var standardPitch = []rtc.StandardPitchInfo{
	{StartTime: 0, Duration: 400, Pitch: 60},
	{StartTime: 400, Duration: 400, Pitch: 62},
	{StartTime: 800, Duration: 800, Pitch: 64},
}

// Simulated scores once scoring has started.
const (
	simSentenceScore = 82
	simTotalScore    = 246
	simAverageScore  = 82
)

// SingScoring is a simulated rtc.SingScoringManager.
type SingScoring struct {
	engine *Engine

	mu         sync.Mutex
	handler    rtc.SingScoringEventHandler
	destroyed  bool
	configured bool
	started    bool
}

var _ rtc.SingScoringManager = (*SingScoring)(nil)

func (m *SingScoring) isDestroyed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

func (m *SingScoring) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed = true
	m.handler = nil
}

func (m *SingScoring) emit(fn func(h rtc.SingScoringEventHandler)) {
	m.engine.cb.post(func() {
		m.mu.Lock()
		h := m.handler
		m.mu.Unlock()
		if h != nil {
			fn(h)
		}
	})
}

func (m *SingScoring) check(op string) error {
	if m.isDestroyed() {
		return fail(op, CodeDestroyed)
	}
	return m.engine.record("scoring." + op)
}

func (m *SingScoring) InitSingScoring(appKey, token string, h rtc.SingScoringEventHandler) error {
	if appKey == "" || token == "" {
		return fail("initSingScoring", CodeInvalidArgument)
	}
	if err := m.check("initSingScoring"); err != nil {
		return err
	}
	m.mu.Lock()
	m.handler = h
	m.mu.Unlock()
	return nil
}

func (m *SingScoring) SetSingScoringConfig(cfg rtc.SingScoringConfig) error {
	if cfg.MidiFilepath == "" {
		return fail("setSingScoringConfig", CodeInvalidArgument)
	}
	if err := m.check("setSingScoringConfig"); err != nil {
		return err
	}
	m.mu.Lock()
	m.configured = true
	m.mu.Unlock()
	return nil
}

// StandardPitchInfo returns the reference line for .mid files and nothing
// for anything else.
func (m *SingScoring) StandardPitchInfo(midiFilepath string) ([]rtc.StandardPitchInfo, error) {
	if err := m.check("getStandardPitchInfo"); err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(midiFilepath), ".mid") {
		return nil, nil
	}
	return append([]rtc.StandardPitchInfo(nil), standardPitch...), nil
}

func (m *SingScoring) StartSingScoring(position, scoringInfoInterval int) error {
	if position < 0 || scoringInfoInterval < 0 {
		return fail("startSingScoring", CodeInvalidArgument)
	}
	if err := m.check("startSingScoring"); err != nil {
		return err
	}
	m.mu.Lock()
	if !m.configured {
		m.mu.Unlock()
		return fail("startSingScoring", CodeInvalidState)
	}
	m.started = true
	m.mu.Unlock()

	info := &rtc.SingScoringRealtimeInfo{
		CurrentPosition: position,
		UserPitch:       61,
		StandardPitch:   62,
		SentenceScore:   simSentenceScore,
		TotalScore:      simTotalScore,
		AverageScore:    simAverageScore,
	}
	m.emit(func(h rtc.SingScoringEventHandler) { h.OnCurrentScoringInfo(info) })
	return nil
}

func (m *SingScoring) StopSingScoring() error {
	if err := m.check("stopSingScoring"); err != nil {
		return err
	}
	m.mu.Lock()
	m.started = false
	m.mu.Unlock()
	return nil
}

func (m *SingScoring) score(op string, v int) (int, error) {
	if err := m.check(op); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.configured {
		return 0, fail(op, CodeInvalidState)
	}
	return v, nil
}

func (m *SingScoring) LastSentenceScore() (int, error) {
	return m.score("getLastSentenceScore", simSentenceScore)
}

func (m *SingScoring) TotalScore() (int, error) {
	return m.score("getTotalScore", simTotalScore)
}

func (m *SingScoring) AverageScore() (int, error) {
	return m.score("getAverageScore", simAverageScore)
}
