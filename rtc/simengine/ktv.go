package simengine

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/wippyai/rtc-bridge/rtc"
)

var catalogue = []rtc.MusicInfo{
	{MusicID: "m-1001", MusicName: "Night Train", Singer: "Lumen", VendorID: "v1", VendorName: "sim", PosterURL: "https://example.invalid/1.jpg", LyricTypes: []rtc.LyricType{rtc.LyricTypeKRC, rtc.LyricTypeLRC}, Duration: 214, EnableScore: true, ClimaxStartTime: 60000, ClimaxEndTime: 95000},
	{MusicID: "m-1002", MusicName: "Paper Moon", Singer: "Aster", VendorID: "v1", VendorName: "sim", LyricTypes: []rtc.LyricType{rtc.LyricTypeLRC}, Duration: 188},
	{MusicID: "m-1003", MusicName: "Harbor Lights", Singer: "Lumen", VendorID: "v2", VendorName: "sim", LyricTypes: []rtc.LyricType{}, Duration: 240, EnableScore: true},
	{MusicID: "m-1004", MusicName: "Slow Orbit", Singer: "Kite", VendorID: "v2", VendorName: "sim", LyricTypes: []rtc.LyricType{rtc.LyricTypeKRC}, Duration: 201, ClimaxStartTime: 45000, ClimaxEndTime: 80000},
}

func lookupMusic(id string) (rtc.MusicInfo, bool) {
	for _, m := range catalogue {
		if m.MusicID == id {
			return m, true
		}
	}
	return rtc.MusicInfo{}, false
}

func matches(m rtc.MusicInfo, filters []rtc.MusicFilterType) bool {
	for _, f := range filters {
		switch f {
		case rtc.MusicFilterWithoutLyric:
			if len(m.LyricTypes) == 0 {
				return false
			}
		case rtc.MusicFilterUnsupportedScore:
			if !m.EnableScore {
				return false
			}
		case rtc.MusicFilterUnsupportedClimax:
			if m.ClimaxEndTime == 0 {
				return false
			}
		}
	}
	return true
}

func page(list []rtc.MusicInfo, pageNum, size int) []rtc.MusicInfo {
	start := (pageNum - 1) * size
	if start >= len(list) {
		return []rtc.MusicInfo{}
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// KTVManager is a simulated rtc.KTVManager backed by a small fixed
// catalogue.
type KTVManager struct {
	engine *Engine

	mu           sync.Mutex
	handler      rtc.KTVManagerEventHandler
	destroyed    bool
	nextDownload int
	cancelled    map[int]bool
	maxCacheMB   int
}

var _ rtc.KTVManager = (*KTVManager)(nil)

func newKTVManager(e *Engine) *KTVManager {
	return &KTVManager{engine: e, cancelled: make(map[int]bool)}
}

func (m *KTVManager) isDestroyed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.destroyed
}

func (m *KTVManager) SetEventHandler(h rtc.KTVManagerEventHandler) {
	m.mu.Lock()
	m.handler = h
	m.mu.Unlock()
}

func (m *KTVManager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destroyed = true
	m.handler = nil
}

func (m *KTVManager) emit(fn func(h rtc.KTVManagerEventHandler)) {
	m.engine.cb.post(func() {
		m.mu.Lock()
		h := m.handler
		m.mu.Unlock()
		if h != nil {
			fn(h)
		}
	})
}

func (m *KTVManager) check(op string) error {
	if m.isDestroyed() {
		return fail(op, CodeDestroyed)
	}
	return m.engine.record("ktv." + op)
}

func (m *KTVManager) MusicList(pageNum, pageSize int, filters []rtc.MusicFilterType) error {
	if pageNum < 1 || pageSize < 1 {
		return fail("getMusicList", CodeInvalidArgument)
	}
	if err := m.check("getMusicList"); err != nil {
		return err
	}
	var all []rtc.MusicInfo
	for _, song := range catalogue {
		if matches(song, filters) {
			all = append(all, song)
		}
	}
	result := page(all, pageNum, pageSize)
	m.emit(func(h rtc.KTVManagerEventHandler) { h.OnMusicListResult(result, len(all), 0) })
	return nil
}

func (m *KTVManager) SearchMusic(keyword string, pageNum, pageSize int, filters []rtc.MusicFilterType) error {
	if keyword == "" || pageNum < 1 || pageSize < 1 {
		return fail("searchMusic", CodeInvalidArgument)
	}
	if err := m.check("searchMusic"); err != nil {
		return err
	}
	kw := strings.ToLower(keyword)
	var all []rtc.MusicInfo
	for _, song := range catalogue {
		hit := strings.Contains(strings.ToLower(song.MusicName), kw) || strings.Contains(strings.ToLower(song.Singer), kw)
		if hit && matches(song, filters) {
			all = append(all, song)
		}
	}
	result := page(all, pageNum, pageSize)
	m.emit(func(h rtc.KTVManagerEventHandler) { h.OnSearchMusicResult(result, len(all), 0) })
	return nil
}

func (m *KTVManager) HotMusic(hotTypes []rtc.MusicHotType, filters []rtc.MusicFilterType) error {
	if len(hotTypes) == 0 {
		return fail("getHotMusic", CodeInvalidArgument)
	}
	if err := m.check("getHotMusic"); err != nil {
		return err
	}
	var musics []rtc.MusicInfo
	for _, song := range catalogue {
		if matches(song, filters) {
			musics = append(musics, song)
		}
	}
	hot := make([]rtc.HotMusicInfo, 0, len(hotTypes))
	for _, t := range hotTypes {
		name := "vendor"
		if t == rtc.MusicHotTypeProject {
			name = "project"
		}
		hot = append(hot, rtc.HotMusicInfo{HotType: t, HotName: name, Musics: musics})
	}
	m.emit(func(h rtc.KTVManagerEventHandler) { h.OnHotMusicResult(hot, 0) })
	return nil
}

func (m *KTVManager) MusicDetail(musicID string) error {
	if err := m.check("getMusicDetail"); err != nil {
		return err
	}
	song, ok := lookupMusic(musicID)
	m.emit(func(h rtc.KTVManagerEventHandler) {
		if !ok {
			h.OnMusicDetailResult(nil, CodeMusicNotFound)
			return
		}
		h.OnMusicDetailResult(&song, 0)
	})
	return nil
}

func (m *KTVManager) download(op, musicID string, ft rtc.DownloadFileType, ext string) (int, error) {
	if musicID == "" {
		return 0, fail(op, CodeInvalidArgument)
	}
	if err := m.check(op); err != nil {
		return 0, err
	}
	m.mu.Lock()
	m.nextDownload++
	id := m.nextDownload
	m.mu.Unlock()

	_, found := lookupMusic(musicID)
	path := filepath.Join(m.engine.factory.CacheDir, musicID+ext)
	m.emit(func(h rtc.KTVManagerEventHandler) {
		if !found {
			h.OnDownloadFailed(id, CodeDownloadFailed)
			return
		}
		for _, p := range []int{25, 50, 100} {
			if m.cancelledID(id) {
				return
			}
			if ft == rtc.DownloadFileMusic {
				h.OnDownloadMusicProgress(id, p)
			}
		}
		h.OnDownloadSuccess(id, rtc.DownloadResult{FilePath: path, MusicID: musicID, FileType: ft})
	})
	return id, nil
}

func (m *KTVManager) cancelledID(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancelled[id]
}

func (m *KTVManager) DownloadMusic(musicID string) (int, error) {
	return m.download("downloadMusic", musicID, rtc.DownloadFileMusic, ".mp3")
}

func (m *KTVManager) DownloadLyric(musicID string, t rtc.LyricType) (int, error) {
	if t == rtc.LyricTypeLRC {
		return m.download("downloadLyric", musicID, rtc.DownloadFileLRC, ".lrc")
	}
	return m.download("downloadLyric", musicID, rtc.DownloadFileKRC, ".krc")
}

func (m *KTVManager) DownloadMidi(musicID string) (int, error) {
	return m.download("downloadMidi", musicID, rtc.DownloadFileMIDI, ".mid")
}

func (m *KTVManager) CancelDownload(downloadID int) error {
	if err := m.check("cancelDownload"); err != nil {
		return err
	}
	m.mu.Lock()
	m.cancelled[downloadID] = true
	m.mu.Unlock()
	return nil
}

func (m *KTVManager) ClearCache() error {
	if err := m.check("clearCache"); err != nil {
		return err
	}
	m.emit(func(h rtc.KTVManagerEventHandler) { h.OnClearCacheResult(0) })
	return nil
}

func (m *KTVManager) SetMaxCacheSize(maxMB int) error {
	if maxMB <= 0 {
		return fail("setMaxCacheSize", CodeInvalidArgument)
	}
	if err := m.check("setMaxCacheSize"); err != nil {
		return err
	}
	m.mu.Lock()
	m.maxCacheMB = maxMB
	m.mu.Unlock()
	return nil
}

func (m *KTVManager) CreateKTVPlayer() (rtc.KTVPlayer, error) {
	if err := m.check("getKTVPlayer"); err != nil {
		return nil, err
	}
	return &KTVPlayer{engine: m.engine, states: make(map[string]rtc.PlayerState)}, nil
}

// KTVPlayer is a simulated rtc.KTVPlayer.
type KTVPlayer struct {
	engine *Engine

	mu        sync.Mutex
	handler   rtc.KTVPlayerEventHandler
	destroyed bool
	states    map[string]rtc.PlayerState
}

var _ rtc.KTVPlayer = (*KTVPlayer)(nil)

func (p *KTVPlayer) SetEventHandler(h rtc.KTVPlayerEventHandler) {
	p.mu.Lock()
	p.handler = h
	p.mu.Unlock()
}

func (p *KTVPlayer) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.destroyed = true
	p.handler = nil
}

func (p *KTVPlayer) emit(fn func(h rtc.KTVPlayerEventHandler)) {
	p.engine.cb.post(func() {
		p.mu.Lock()
		h := p.handler
		p.mu.Unlock()
		if h != nil {
			fn(h)
		}
	})
}

func (p *KTVPlayer) move(op, musicID string, next rtc.PlayerState, from ...rtc.PlayerState) error {
	p.mu.Lock()
	if p.destroyed {
		p.mu.Unlock()
		return fail(op, CodeDestroyed)
	}
	cur, known := p.states[musicID]
	if len(from) > 0 && (!known || !stateIn(cur, from)) {
		p.mu.Unlock()
		return fail(op, CodeInvalidState)
	}
	p.states[musicID] = next
	p.mu.Unlock()
	p.emit(func(h rtc.KTVPlayerEventHandler) { h.OnPlayStateChanged(musicID, next, 0) })
	return nil
}

func (p *KTVPlayer) PlayMusic(musicID string, track rtc.AudioTrackType, play rtc.AudioPlayType) error {
	if _, ok := lookupMusic(musicID); !ok {
		p.emit(func(h rtc.KTVPlayerEventHandler) { h.OnPlayStateChanged(musicID, rtc.PlayerStateFailed, CodeMusicNotFound) })
		return nil
	}
	if err := p.move("playMusic", musicID, rtc.PlayerStatePlaying); err != nil {
		return err
	}
	p.emit(func(h rtc.KTVPlayerEventHandler) { h.OnPlayProgress(musicID, 0) })
	return nil
}

func (p *KTVPlayer) PauseMusic(musicID string) error {
	return p.move("pauseMusic", musicID, rtc.PlayerStatePaused, rtc.PlayerStatePlaying)
}

func (p *KTVPlayer) ResumeMusic(musicID string) error {
	return p.move("resumeMusic", musicID, rtc.PlayerStatePlaying, rtc.PlayerStatePaused)
}

func (p *KTVPlayer) StopMusic(musicID string) error {
	return p.move("stopMusic", musicID, rtc.PlayerStateStopped, rtc.PlayerStatePlaying, rtc.PlayerStatePaused)
}

func (p *KTVPlayer) playing(op, musicID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.destroyed {
		return fail(op, CodeDestroyed)
	}
	if s, ok := p.states[musicID]; !ok || (s != rtc.PlayerStatePlaying && s != rtc.PlayerStatePaused) {
		return fail(op, CodeInvalidState)
	}
	return nil
}

func (p *KTVPlayer) SeekMusic(musicID string, position int) error {
	if position < 0 {
		return fail("seekMusic", CodeInvalidArgument)
	}
	if err := p.playing("seekMusic", musicID); err != nil {
		return err
	}
	p.emit(func(h rtc.KTVPlayerEventHandler) { h.OnPlayProgress(musicID, int64(position)) })
	return nil
}

func (p *KTVPlayer) SetMusicVolume(musicID string, volume int) error {
	if volume < 0 || volume > 400 {
		return fail("setMusicVolume", CodeInvalidArgument)
	}
	return p.playing("setMusicVolume", musicID)
}

func (p *KTVPlayer) SwitchAudioTrackType(musicID string) error {
	return p.playing("switchAudioTrackType", musicID)
}

func (p *KTVPlayer) SetMusicPitch(musicID string, pitch int) error {
	if pitch < -12 || pitch > 12 {
		return fail("setMusicPitch", CodeInvalidArgument)
	}
	return p.playing("setMusicPitch", musicID)
}
