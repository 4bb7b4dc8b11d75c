package plugin

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/rtc-bridge/bridge"
	"github.com/wippyai/rtc-bridge/codec"
	"github.com/wippyai/rtc-bridge/rtc"
)

const jpegQuality = 90

// finishSnapshot writes the captured frame to the path registered with the
// request. It runs off the loop and only for a live engine. The payload error is 0 on success, the native code when capture
// failed, or one of the rtc.Snapshot* codes when the frame could not be
// stored.
func finishSnapshot(shot rtc.Snapshot) bridge.Finisher {
	return func(meta *codec.Map) (*codec.Map, bool) {
		var width, height int
		if shot.Image != nil {
			b := shot.Image.Bounds()
			width, height = b.Dx(), b.Dy()
		}

		code := shot.ErrorCode
		if code == 0 {
			path, _ := meta.Get("path")
			p, _ := path.(string)
			code = writeSnapshot(p, shot.Image)
		}

		payload := codec.NewMap().
			Set("taskId", shot.TaskID).
			Set("error", code).
			Set("width", width).
			Set("height", height)
		return payload, code == 0
	}
}

// writeSnapshot encodes img as PNG when path ends in .png and as JPEG
// otherwise.
func writeSnapshot(path string, img image.Image) int {
	if img == nil {
		return rtc.SnapshotInvalidFormat
	}

	f, err := os.Create(path)
	if err != nil {
		Logger().Warn("snapshot create failed", zap.String("path", path), zap.Error(err))
		return rtc.SnapshotWriteFailed
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		Logger().Warn("snapshot write failed", zap.String("path", path), zap.Error(err))
		_ = os.Remove(path)
		return rtc.SnapshotWriteFailed
	}
	return 0
}
