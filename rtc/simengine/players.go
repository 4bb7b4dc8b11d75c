package simengine

import (
	"sync"

	"github.com/wippyai/rtc-bridge/rtc"
)

// simulatedDuration is the length, in milliseconds, of every opened file.
const simulatedDuration = 180000

// MediaPlayer is a simulated rtc.MediaPlayer.
type MediaPlayer struct {
	engine *Engine
	id     int

	mu        sync.Mutex
	handler   rtc.MediaPlayerEventHandler
	destroyed bool
	file      string
	state     rtc.PlayerState
	position  int
	volume    int
	interval  int64
	track     int
}

var _ rtc.MediaPlayer = (*MediaPlayer)(nil)

func (p *MediaPlayer) SetEventHandler(h rtc.MediaPlayerEventHandler) {
	p.mu.Lock()
	p.handler = h
	p.mu.Unlock()
}

func (p *MediaPlayer) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.destroyed = true
	p.handler = nil
}

func (p *MediaPlayer) emit(fn func(h rtc.MediaPlayerEventHandler)) {
	p.engine.cb.post(func() {
		p.mu.Lock()
		h := p.handler
		p.mu.Unlock()
		if h != nil {
			fn(h)
		}
	})
}

// transition moves the player to next and reports it. ok lists the states
// the transition is allowed from; an empty list allows any.
func (p *MediaPlayer) transition(op string, next rtc.PlayerState, ok ...rtc.PlayerState) error {
	p.mu.Lock()
	if p.destroyed {
		p.mu.Unlock()
		return fail(op, CodeDestroyed)
	}
	if len(ok) > 0 && !stateIn(p.state, ok) {
		p.mu.Unlock()
		return fail(op, CodeInvalidState)
	}
	p.state = next
	p.mu.Unlock()
	id := p.id
	p.emit(func(h rtc.MediaPlayerEventHandler) { h.OnMediaPlayerStateChanged(id, next, 0) })
	return nil
}

func stateIn(s rtc.PlayerState, list []rtc.PlayerState) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (p *MediaPlayer) check(op string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return fail(op, CodeDestroyed)
	}
	return nil
}

func (p *MediaPlayer) Open(filePath string, cfg rtc.MediaPlayerConfig) error {
	if filePath == "" {
		return fail("open", CodeInvalidArgument)
	}
	p.mu.Lock()
	p.file = filePath
	p.position = int(cfg.StartPos)
	p.interval = cfg.CallbackOnProgressInterval
	p.mu.Unlock()
	if err := p.transition("open", rtc.PlayerStateOpened); err != nil {
		return err
	}
	if cfg.AutoPlay {
		return p.Start()
	}
	return nil
}

func (p *MediaPlayer) Start() error {
	if err := p.transition("start", rtc.PlayerStatePlaying, rtc.PlayerStateOpened, rtc.PlayerStatePaused, rtc.PlayerStateStopped); err != nil {
		return err
	}
	p.mu.Lock()
	interval, pos, id := p.interval, p.position, p.id
	p.mu.Unlock()
	if interval > 0 {
		p.emit(func(h rtc.MediaPlayerEventHandler) { h.OnMediaPlayerPlayingProgress(id, int64(pos)) })
	}
	return nil
}

func (p *MediaPlayer) Stop() error {
	p.mu.Lock()
	p.position = 0
	p.mu.Unlock()
	return p.transition("stop", rtc.PlayerStateStopped)
}

func (p *MediaPlayer) Pause() error {
	return p.transition("pause", rtc.PlayerStatePaused, rtc.PlayerStatePlaying)
}

func (p *MediaPlayer) Resume() error {
	return p.transition("resume", rtc.PlayerStatePlaying, rtc.PlayerStatePaused)
}

func (p *MediaPlayer) SetVolume(volume int, t rtc.AudioMixingType) error {
	if volume < 0 || volume > 400 {
		return fail("setVolume", CodeInvalidArgument)
	}
	if err := p.check("setVolume"); err != nil {
		return err
	}
	p.mu.Lock()
	p.volume = volume
	p.mu.Unlock()
	return nil
}

func (p *MediaPlayer) Volume(t rtc.AudioMixingType) (int, error) {
	if err := p.check("getVolume"); err != nil {
		return 0, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume, nil
}

func (p *MediaPlayer) opened(op string) error {
	if err := p.check(op); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.file == "" {
		return fail(op, CodeInvalidState)
	}
	return nil
}

func (p *MediaPlayer) TotalDuration() (int, error) {
	if err := p.opened("getTotalDuration"); err != nil {
		return 0, err
	}
	return simulatedDuration, nil
}

func (p *MediaPlayer) PlaybackDuration() (int, error) {
	if err := p.opened("getPlaybackDuration"); err != nil {
		return 0, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position, nil
}

func (p *MediaPlayer) Position() (int, error) {
	if err := p.opened("getPosition"); err != nil {
		return 0, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position, nil
}

func (p *MediaPlayer) SetPosition(pos int) error {
	if pos < 0 || pos > simulatedDuration {
		return fail("setPosition", CodeInvalidArgument)
	}
	if err := p.opened("setPosition"); err != nil {
		return err
	}
	p.mu.Lock()
	p.position = pos
	p.mu.Unlock()
	return nil
}

func (p *MediaPlayer) SetAudioPitch(pitch int) error {
	if pitch < -12 || pitch > 12 {
		return fail("setAudioPitch", CodeInvalidArgument)
	}
	return p.check("setAudioPitch")
}

func (p *MediaPlayer) SetPlaybackSpeed(speed int) error {
	if speed < 50 || speed > 200 {
		return fail("setPlaybackSpeed", CodeInvalidArgument)
	}
	return p.check("setPlaybackSpeed")
}

func (p *MediaPlayer) SetProgressInterval(interval int64) error {
	if err := p.check("setProgressInterval"); err != nil {
		return err
	}
	p.mu.Lock()
	p.interval = interval
	p.mu.Unlock()
	return nil
}

func (p *MediaPlayer) SetLoudness(loudness float32) error {
	return p.check("setLoudness")
}

func (p *MediaPlayer) AudioTrackCount() (int, error) {
	if err := p.opened("getAudioTrackCount"); err != nil {
		return 0, err
	}
	return 2, nil
}

func (p *MediaPlayer) SelectAudioTrack(index int) error {
	if index < 0 || index > 1 {
		return fail("selectAudioTrack", CodeInvalidArgument)
	}
	if err := p.opened("selectAudioTrack"); err != nil {
		return err
	}
	p.mu.Lock()
	p.track = index
	p.mu.Unlock()
	return nil
}

// Finish simulates reaching the end of the opened file.
func (p *MediaPlayer) Finish() {
	_ = p.transition("finish", rtc.PlayerStateFinished, rtc.PlayerStatePlaying)
}

type effect struct {
	file     string
	state    rtc.PlayerState
	position int
	volume   int
}

// AudioEffectPlayer is a simulated rtc.AudioEffectPlayer.
type AudioEffectPlayer struct {
	engine *Engine

	mu        sync.Mutex
	handler   rtc.AudioEffectPlayerEventHandler
	destroyed bool
	effects   map[int]*effect
}

var _ rtc.AudioEffectPlayer = (*AudioEffectPlayer)(nil)

func (p *AudioEffectPlayer) SetEventHandler(h rtc.AudioEffectPlayerEventHandler) {
	p.mu.Lock()
	p.handler = h
	p.mu.Unlock()
}

func (p *AudioEffectPlayer) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.destroyed = true
	p.handler = nil
	p.effects = map[int]*effect{}
}

func (p *AudioEffectPlayer) emit(effectID int, state rtc.PlayerState) {
	p.engine.cb.post(func() {
		p.mu.Lock()
		h := p.handler
		p.mu.Unlock()
		if h != nil {
			h.OnAudioEffectPlayerStateChanged(effectID, state, 0)
		}
	})
}

// update applies fn to the selected effects under the lock and reports every
// state change. A negative id selects all effects.
func (p *AudioEffectPlayer) update(op string, id int, fn func(e *effect) (rtc.PlayerState, bool)) error {
	p.mu.Lock()
	if p.destroyed {
		p.mu.Unlock()
		return fail(op, CodeDestroyed)
	}
	type change struct {
		id    int
		state rtc.PlayerState
	}
	var changes []change
	if id >= 0 {
		e, ok := p.effects[id]
		if !ok {
			p.mu.Unlock()
			return fail(op, CodeInvalidState)
		}
		if s, changed := fn(e); changed {
			changes = append(changes, change{id, s})
		}
	} else {
		for eid, e := range p.effects {
			if s, changed := fn(e); changed {
				changes = append(changes, change{eid, s})
			}
		}
	}
	p.mu.Unlock()
	for _, c := range changes {
		p.emit(c.id, c.state)
	}
	return nil
}

func setState(next rtc.PlayerState, from ...rtc.PlayerState) func(e *effect) (rtc.PlayerState, bool) {
	return func(e *effect) (rtc.PlayerState, bool) {
		if len(from) > 0 && !stateIn(e.state, from) {
			return e.state, false
		}
		e.state = next
		return next, true
	}
}

func (p *AudioEffectPlayer) Start(effectID int, filePath string, cfg rtc.AudioEffectPlayerConfig) error {
	if effectID < 0 || filePath == "" {
		return fail("start", CodeInvalidArgument)
	}
	p.mu.Lock()
	if p.destroyed {
		p.mu.Unlock()
		return fail("start", CodeDestroyed)
	}
	e, ok := p.effects[effectID]
	if !ok {
		e = &effect{volume: 100}
		p.effects[effectID] = e
	}
	e.file = filePath
	e.position = cfg.StartPos
	e.state = rtc.PlayerStatePlaying
	p.mu.Unlock()
	p.emit(effectID, rtc.PlayerStatePlaying)
	return nil
}

func (p *AudioEffectPlayer) Stop(effectID int) error {
	return p.update("stop", effectID, setState(rtc.PlayerStateStopped))
}

func (p *AudioEffectPlayer) StopAll() error {
	return p.update("stopAll", -1, setState(rtc.PlayerStateStopped))
}

func (p *AudioEffectPlayer) Preload(effectID int, filePath string) error {
	if effectID < 0 || filePath == "" {
		return fail("preload", CodeInvalidArgument)
	}
	p.mu.Lock()
	if p.destroyed {
		p.mu.Unlock()
		return fail("preload", CodeDestroyed)
	}
	p.effects[effectID] = &effect{file: filePath, state: rtc.PlayerStatePreloaded, volume: 100}
	p.mu.Unlock()
	p.emit(effectID, rtc.PlayerStatePreloaded)
	return nil
}

func (p *AudioEffectPlayer) Unload(effectID int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return fail("unload", CodeDestroyed)
	}
	delete(p.effects, effectID)
	return nil
}

func (p *AudioEffectPlayer) UnloadAll() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return fail("unloadAll", CodeDestroyed)
	}
	p.effects = make(map[int]*effect)
	return nil
}

func (p *AudioEffectPlayer) Pause(effectID int) error {
	return p.update("pause", effectID, setState(rtc.PlayerStatePaused, rtc.PlayerStatePlaying))
}

func (p *AudioEffectPlayer) PauseAll() error {
	return p.update("pauseAll", -1, setState(rtc.PlayerStatePaused, rtc.PlayerStatePlaying))
}

func (p *AudioEffectPlayer) Resume(effectID int) error {
	return p.update("resume", effectID, setState(rtc.PlayerStatePlaying, rtc.PlayerStatePaused))
}

func (p *AudioEffectPlayer) ResumeAll() error {
	return p.update("resumeAll", -1, setState(rtc.PlayerStatePlaying, rtc.PlayerStatePaused))
}

func (p *AudioEffectPlayer) SetPosition(effectID, pos int) error {
	if pos < 0 || pos > simulatedDuration {
		return fail("setPosition", CodeInvalidArgument)
	}
	return p.update("setPosition", effectID, func(e *effect) (rtc.PlayerState, bool) {
		e.position = pos
		return e.state, false
	})
}

func (p *AudioEffectPlayer) Position(effectID int) (int, error) {
	var pos int
	err := p.update("getPosition", effectID, func(e *effect) (rtc.PlayerState, bool) {
		pos = e.position
		return e.state, false
	})
	return pos, err
}

func (p *AudioEffectPlayer) SetVolume(effectID, volume int) error {
	if volume < 0 || volume > 400 {
		return fail("setVolume", CodeInvalidArgument)
	}
	return p.update("setVolume", effectID, func(e *effect) (rtc.PlayerState, bool) {
		e.volume = volume
		return e.state, false
	})
}

func (p *AudioEffectPlayer) SetVolumeAll(volume int) error {
	if volume < 0 || volume > 400 {
		return fail("setVolumeAll", CodeInvalidArgument)
	}
	return p.update("setVolumeAll", -1, func(e *effect) (rtc.PlayerState, bool) {
		e.volume = volume
		return e.state, false
	})
}

func (p *AudioEffectPlayer) Volume(effectID int) (int, error) {
	var v int
	err := p.update("getVolume", effectID, func(e *effect) (rtc.PlayerState, bool) {
		v = e.volume
		return e.state, false
	})
	return v, err
}

func (p *AudioEffectPlayer) Duration(effectID int) (int, error) {
	err := p.update("getDuration", effectID, func(e *effect) (rtc.PlayerState, bool) {
		return e.state, false
	})
	if err != nil {
		return 0, err
	}
	return simulatedDuration, nil
}
