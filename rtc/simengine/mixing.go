package simengine

import (
	"sync"

	"github.com/wippyai/rtc-bridge/rtc"
)

// mixTrackCount is the number of audio tracks every mixed file reports.
const mixTrackCount = 2

type mix struct {
	path     string
	state    rtc.AudioMixingState
	position int
	volume   int
	track    int
}

// AudioMixer is a simulated rtc.AudioMixingManager owned by the engine.
// Mixes are kept in memory and report simulatedDuration.
type AudioMixer struct {
	engine *Engine

	mu    sync.Mutex
	mixes map[int]*mix
}

var _ rtc.AudioMixingManager = (*AudioMixer)(nil)

func newAudioMixer(e *Engine) *AudioMixer {
	return &AudioMixer{engine: e, mixes: make(map[int]*mix)}
}

// State returns the state of the mix under id.
func (m *AudioMixer) State(id int) (rtc.AudioMixingState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	x, ok := m.mixes[id]
	if !ok {
		return 0, false
	}
	return x.state, true
}

func (m *AudioMixer) report(id int, state rtc.AudioMixingState) {
	m.engine.emit(func(h rtc.EngineEventHandler) { h.OnAudioMixingStateChanged(id, state, 0) })
}

// with runs fn on the mix under id. Unknown mixes fail with an invalid
// state code.
func (m *AudioMixer) with(op string, id int, fn func(x *mix) error) error {
	if err := m.engine.record("mixing." + op); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	x, ok := m.mixes[id]
	if !ok {
		return fail(op, CodeInvalidState)
	}
	return fn(x)
}

func (m *AudioMixer) StartAudioMixing(id int, filePath string, cfg rtc.AudioMixingConfig) error {
	if filePath == "" || cfg.Position < 0 || cfg.Position > simulatedDuration {
		return fail("startAudioMixing", CodeInvalidArgument)
	}
	if err := m.engine.record("mixing.startAudioMixing"); err != nil {
		return err
	}
	m.mu.Lock()
	m.mixes[id] = &mix{path: filePath, state: rtc.AudioMixingStatePlaying, position: cfg.Position, volume: 100}
	m.mu.Unlock()
	m.report(id, rtc.AudioMixingStatePlaying)
	if cfg.CallbackOnProgressInterval > 0 {
		pos := int64(cfg.Position)
		m.engine.emit(func(h rtc.EngineEventHandler) { h.OnAudioMixingPlayingProgress(id, pos) })
	}
	return nil
}

func (m *AudioMixer) StopAudioMixing(id int) error {
	err := m.with("stopAudioMixing", id, func(*mix) error {
		delete(m.mixes, id)
		return nil
	})
	if err == nil {
		m.report(id, rtc.AudioMixingStateStopped)
	}
	return err
}

func (m *AudioMixer) StopAllAudioMixing() error {
	if err := m.engine.record("mixing.stopAllAudioMixing"); err != nil {
		return err
	}
	m.mu.Lock()
	ids := make([]int, 0, len(m.mixes))
	for id := range m.mixes {
		ids = append(ids, id)
	}
	m.mixes = make(map[int]*mix)
	m.mu.Unlock()
	for _, id := range ids {
		m.report(id, rtc.AudioMixingStateStopped)
	}
	return nil
}

func (m *AudioMixer) setState(op string, id int, next, from rtc.AudioMixingState) error {
	err := m.with(op, id, func(x *mix) error {
		if x.state != from {
			return fail(op, CodeInvalidState)
		}
		x.state = next
		return nil
	})
	if err == nil {
		m.report(id, next)
	}
	return err
}

func (m *AudioMixer) PauseAudioMixing(id int) error {
	return m.setState("pauseAudioMixing", id, rtc.AudioMixingStatePaused, rtc.AudioMixingStatePlaying)
}

func (m *AudioMixer) ResumeAudioMixing(id int) error {
	return m.setState("resumeAudioMixing", id, rtc.AudioMixingStatePlaying, rtc.AudioMixingStatePaused)
}

func (m *AudioMixer) setAll(op string, next, from rtc.AudioMixingState) error {
	if err := m.engine.record("mixing." + op); err != nil {
		return err
	}
	var changed []int
	m.mu.Lock()
	for id, x := range m.mixes {
		if x.state == from {
			x.state = next
			changed = append(changed, id)
		}
	}
	m.mu.Unlock()
	for _, id := range changed {
		m.report(id, next)
	}
	return nil
}

func (m *AudioMixer) PauseAllAudioMixing() error {
	return m.setAll("pauseAllAudioMixing", rtc.AudioMixingStatePaused, rtc.AudioMixingStatePlaying)
}

func (m *AudioMixer) ResumeAllAudioMixing() error {
	return m.setAll("resumeAllAudioMixing", rtc.AudioMixingStatePlaying, rtc.AudioMixingStatePaused)
}

func (m *AudioMixer) PreloadAudioMixing(id int, filePath string) error {
	if filePath == "" {
		return fail("preloadAudioMixing", CodeInvalidArgument)
	}
	if err := m.engine.record("mixing.preloadAudioMixing"); err != nil {
		return err
	}
	m.mu.Lock()
	m.mixes[id] = &mix{path: filePath, state: rtc.AudioMixingStatePreloaded, volume: 100}
	m.mu.Unlock()
	m.report(id, rtc.AudioMixingStatePreloaded)
	return nil
}

func (m *AudioMixer) UnloadAudioMixing(id int) error {
	return m.with("unloadAudioMixing", id, func(x *mix) error {
		if x.state != rtc.AudioMixingStatePreloaded {
			return fail("unloadAudioMixing", CodeInvalidState)
		}
		delete(m.mixes, id)
		return nil
	})
}

func validVolume(v int) bool { return v >= 0 && v <= 400 }

func (m *AudioMixer) SetAudioMixingVolume(id, volume int, t rtc.AudioMixingType) error {
	if !validVolume(volume) {
		return fail("setAudioMixingVolume", CodeInvalidArgument)
	}
	return m.with("setAudioMixingVolume", id, func(x *mix) error {
		x.volume = volume
		return nil
	})
}

func (m *AudioMixer) SetAllAudioMixingVolume(volume int, t rtc.AudioMixingType) error {
	if !validVolume(volume) {
		return fail("setAllAudioMixingVolume", CodeInvalidArgument)
	}
	if err := m.engine.record("mixing.setAllAudioMixingVolume"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.mixes {
		x.volume = volume
	}
	return nil
}

func (m *AudioMixer) AudioMixingDuration(id int) (int, error) {
	err := m.with("getAudioMixingDuration", id, func(*mix) error { return nil })
	if err != nil {
		return 0, err
	}
	return simulatedDuration, nil
}

func (m *AudioMixer) AudioMixingCurrentPosition(id int) (int, error) {
	var pos int
	err := m.with("getAudioMixingCurrentPosition", id, func(x *mix) error {
		pos = x.position
		return nil
	})
	return pos, err
}

func (m *AudioMixer) AudioMixingPlaybackDuration(id int) (int, error) {
	return m.AudioMixingCurrentPosition(id)
}

func (m *AudioMixer) SetAudioMixingPosition(id, position int) error {
	if position < 0 || position > simulatedDuration {
		return fail("setAudioMixingPosition", CodeInvalidArgument)
	}
	return m.with("setAudioMixingPosition", id, func(x *mix) error {
		x.position = position
		return nil
	})
}

func (m *AudioMixer) SetAudioMixingDualMonoMode(id int, mode rtc.AudioMixingDualMonoMode) error {
	return m.with("setAudioMixingDualMonoMode", id, func(*mix) error { return nil })
}

func (m *AudioMixer) SetAudioMixingPitch(id, pitch int) error {
	if pitch < -12 || pitch > 12 {
		return fail("setAudioMixingPitch", CodeInvalidArgument)
	}
	return m.with("setAudioMixingPitch", id, func(*mix) error { return nil })
}

func (m *AudioMixer) SetAudioMixingPlaybackSpeed(id, speed int) error {
	if speed < 50 || speed > 200 {
		return fail("setAudioMixingPlaybackSpeed", CodeInvalidArgument)
	}
	return m.with("setAudioMixingPlaybackSpeed", id, func(*mix) error { return nil })
}

func (m *AudioMixer) SetAudioMixingLoudness(id int, loudness float32) error {
	return m.with("setAudioMixingLoudness", id, func(*mix) error { return nil })
}

func (m *AudioMixer) SetAudioMixingProgressInterval(id int, interval int64) error {
	if interval < 0 {
		return fail("setAudioMixingProgressInterval", CodeInvalidArgument)
	}
	return m.with("setAudioMixingProgressInterval", id, func(*mix) error { return nil })
}

func (m *AudioMixer) AudioTrackCount(id int) (int, error) {
	err := m.with("getAudioTrackCount", id, func(*mix) error { return nil })
	if err != nil {
		return 0, err
	}
	return mixTrackCount, nil
}

func (m *AudioMixer) SelectAudioTrack(id, index int) error {
	if index < 0 || index >= mixTrackCount {
		return fail("selectAudioTrack", CodeInvalidArgument)
	}
	return m.with("selectAudioTrack", id, func(x *mix) error {
		x.track = index
		return nil
	})
}
