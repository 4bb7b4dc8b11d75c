package plugin

import (
	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/registry"
	"github.com/wippyai/rtc-bridge/rtc"
)

type mediaPlayerEvents struct {
	key     registry.Key
	emitter *bridge.Emitter
}

func (h *mediaPlayerEvents) OnMediaPlayerStateChanged(playerID int, state rtc.PlayerState, errCode int) {
	h.emitter.Emit(h.key, "onMediaPlayerStateChanged", codec.NewMap().
		Set("playerId", playerID).
		Set("state", int64(state)).
		Set("error", errCode))
}

func (h *mediaPlayerEvents) OnMediaPlayerPlayingProgress(playerID int, progress int64) {
	h.emitter.Emit(h.key, "onMediaPlayerPlayingProgress", codec.NewMap().
		Set("playerId", playerID).
		Set("progress", progress))
}

type audioEffectPlayerEvents struct {
	key     registry.Key
	emitter *bridge.Emitter
}

func (h *audioEffectPlayerEvents) OnAudioEffectPlayerStateChanged(effectID int, state rtc.PlayerState, errCode int) {
	h.emitter.Emit(h.key, "onAudioEffectPlayerStateChanged", codec.NewMap().
		Set("effectId", effectID).
		Set("state", int64(state)).
		Set("error", errCode))
}

type ktvManagerEvents struct {
	key     registry.Key
	emitter *bridge.Emitter
}

var _ rtc.KTVManagerEventHandler = (*ktvManagerEvents)(nil)

func (h *ktvManagerEvents) OnMusicListResult(musics []rtc.MusicInfo, total, errCode int) {
	h.emitter.Emit(h.key, "onMusicListResult", codec.NewMap().
		Set("musics", codec.EncodeList(musics)).
		Set("totalSize", total).
		Set("errorCode", errCode))
}

func (h *ktvManagerEvents) OnSearchMusicResult(musics []rtc.MusicInfo, total, errCode int) {
	h.emitter.Emit(h.key, "onSearchMusicResult", codec.NewMap().
		Set("musics", codec.EncodeList(musics)).
		Set("totalSize", total).
		Set("errorCode", errCode))
}

func (h *ktvManagerEvents) OnHotMusicResult(hot []rtc.HotMusicInfo, errCode int) {
	h.emitter.Emit(h.key, "onHotMusicResult", codec.NewMap().
		Set("hotMusics", codec.EncodeList(hot)).
		Set("errorCode", errCode))
}

func (h *ktvManagerEvents) OnMusicDetailResult(music *rtc.MusicInfo, errCode int) {
	var detail any = codec.Absent
	if music != nil {
		detail = *music
	}
	h.emitter.Emit(h.key, "onMusicDetailResult", codec.NewMap().
		Set("music", detail).
		Set("errorCode", errCode))
}

func (h *ktvManagerEvents) OnDownloadSuccess(downloadID int, result rtc.DownloadResult) {
	h.emitter.Emit(h.key, "onDownloadSuccess", codec.NewMap().
		Set("downloadId", downloadID).
		Set("result", result))
}

func (h *ktvManagerEvents) OnDownloadFailed(downloadID, errCode int) {
	h.emitter.Emit(h.key, "onDownloadFailed", codec.NewMap().
		Set("downloadId", downloadID).
		Set("errorCode", errCode))
}

func (h *ktvManagerEvents) OnDownloadMusicProgress(downloadID, progress int) {
	h.emitter.Emit(h.key, "onDownloadMusicProgress", codec.NewMap().
		Set("downloadId", downloadID).
		Set("downloadProgress", progress))
}

func (h *ktvManagerEvents) OnClearCacheResult(errCode int) {
	h.emitter.Emit(h.key, "onClearCacheResult", codec.NewMap().Set("errorCode", errCode))
}

type ktvPlayerEvents struct {
	key     registry.Key
	emitter *bridge.Emitter
}

func (h *ktvPlayerEvents) OnPlayProgress(musicID string, progress int64) {
	h.emitter.Emit(h.key, "onPlayProgress", codec.NewMap().
		Set("musicId", musicID).
		Set("progress", progress))
}

func (h *ktvPlayerEvents) OnPlayStateChanged(musicID string, state rtc.PlayerState, errCode int) {
	h.emitter.Emit(h.key, "onPlayStateChanged", codec.NewMap().
		Set("musicId", musicID).
		Set("playState", int64(state)).
		Set("errorCode", errCode))
}
