package codec

import "github.com/wippyai/rtc-bridge/rtc"

func init() {
	register(encodePosition, decodePosition)
	register(encodeOrientation, decodeOrientation)
	register(encodeHumanOrientation, decodeHumanOrientation)
	register(encodeReceiveRange, decodeReceiveRange)
	register(encodeLiveAudioConfig, decodeLiveAudioConfig)
	register(encodeLiveVideoConfig, decodeLiveVideoConfig)
	register(encodeRegionDataParam, decodeRegionDataParam)
	register(encodeLiveRegion, decodeLiveRegion)
	register(encodeLiveLayout, decodeLiveLayout)
	register(encodeLiveSpatialConfig, decodeLiveSpatialConfig)
	register(encodeLiveTranscoding, decodeLiveTranscoding)
}

func encodePosition(v rtc.Position) *Map {
	return NewMap().
		Set("x", v.X).
		Set("y", v.Y).
		Set("z", v.Z)
}

func decodePosition(r *Reader) rtc.Position {
	return rtc.Position{
		X: r.Float32("x"),
		Y: r.Float32("y"),
		Z: r.Float32("z"),
	}
}

func encodeOrientation(v rtc.Orientation) *Map {
	return NewMap().
		Set("x", v.X).
		Set("y", v.Y).
		Set("z", v.Z)
}

func decodeOrientation(r *Reader) rtc.Orientation {
	return rtc.Orientation{
		X: r.Float32("x"),
		Y: r.Float32("y"),
		Z: r.Float32("z"),
	}
}

func encodeHumanOrientation(v rtc.HumanOrientation) *Map {
	return NewMap().
		Set("forward", encodeOrientation(v.Forward)).
		Set("right", encodeOrientation(v.Right)).
		Set("up", encodeOrientation(v.Up))
}

func decodeHumanOrientation(r *Reader) rtc.HumanOrientation {
	return rtc.HumanOrientation{
		Forward: decodeOrientation(r.Map("forward")),
		Right:   decodeOrientation(r.Map("right")),
		Up:      decodeOrientation(r.Map("up")),
	}
}

func encodeReceiveRange(v rtc.ReceiveRange) *Map {
	return NewMap().
		Set("min", v.Min).
		Set("max", v.Max)
}

func decodeReceiveRange(r *Reader) rtc.ReceiveRange {
	return rtc.ReceiveRange{
		Min: r.Int("min"),
		Max: r.Int("max"),
	}
}

func encodeLiveAudioConfig(v rtc.LiveAudioConfig) *Map {
	return NewMap().
		Set("codec", string(v.Codec)).
		Set("aacProfile", string(v.AACProfile)).
		Set("sampleRate", v.SampleRate).
		Set("channels", v.Channels).
		Set("kBitrate", v.KBitrate)
}

func decodeLiveAudioConfig(r *Reader) rtc.LiveAudioConfig {
	return rtc.LiveAudioConfig{
		Codec:      StringEnum[rtc.TranscodingAudioCodec](r, "codec"),
		AACProfile: StringEnum[rtc.AACProfile](r, "aacProfile"),
		SampleRate: r.Int("sampleRate"),
		Channels:   r.Int("channels"),
		KBitrate:   r.Int("kBitrate"),
	}
}

func encodeLiveVideoConfig(v rtc.LiveVideoConfig) *Map {
	return NewMap().
		Set("codec", string(v.Codec)).
		Set("fps", v.FPS).
		Set("gop", v.GOP).
		Set("bFrame", v.BFrame).
		Set("kBitrate", v.KBitrate).
		Set("width", v.Width).
		Set("height", v.Height)
}

func decodeLiveVideoConfig(r *Reader) rtc.LiveVideoConfig {
	return rtc.LiveVideoConfig{
		Codec:    StringEnum[rtc.TranscodingVideoCodec](r, "codec"),
		FPS:      r.Int("fps"),
		GOP:      r.Int("gop"),
		BFrame:   r.Bool("bFrame"),
		KBitrate: r.Int("kBitrate"),
		Width:    r.Int("width"),
		Height:   r.Int("height"),
	}
}

func encodeRegionDataParam(v rtc.RegionDataParam) *Map {
	return NewMap().
		Set("imageWidth", v.ImageWidth).
		Set("imageHeight", v.ImageHeight)
}

func decodeRegionDataParam(r *Reader) rtc.RegionDataParam {
	return rtc.RegionDataParam{
		ImageWidth:  r.Int("imageWidth"),
		ImageHeight: r.Int("imageHeight"),
	}
}

func encodeLiveRegion(v rtc.LiveRegion) *Map {
	var dataParam any = Absent
	if v.DataParam != nil {
		dataParam = encodeRegionDataParam(*v.DataParam)
	}
	return NewMap().
		Set("uid", v.UID).
		Set("roomId", v.RoomID).
		Set("x", v.X).
		Set("y", v.Y).
		Set("w", v.W).
		Set("h", v.H).
		Set("zorder", v.ZOrder).
		Set("alpha", v.Alpha).
		Set("contentControl", int64(v.ContentControl)).
		Set("renderMode", int64(v.RenderMode)).
		Set("localUser", v.LocalUser).
		Set("isScreen", v.IsScreen).
		Set("cornerRadius", v.CornerRadius).
		Set("applySpatialAudio", v.ApplySpatialAudio).
		Set("type", int64(v.Type)).
		Set("data", optBytes(v.Data)).
		Set("dataParam", dataParam)
}

func decodeLiveRegion(r *Reader) rtc.LiveRegion {
	region := rtc.LiveRegion{
		UID:               r.String("uid"),
		RoomID:            r.String("roomId"),
		X:                 r.Float64("x"),
		Y:                 r.Float64("y"),
		W:                 r.Float64("w"),
		H:                 r.Float64("h"),
		ZOrder:            r.Int("zorder"),
		Alpha:             r.Float64("alpha"),
		ContentControl:    Enum[rtc.ContentControl](r, "contentControl"),
		RenderMode:        Enum[rtc.RenderMode](r, "renderMode"),
		LocalUser:         r.Bool("localUser"),
		IsScreen:          r.Bool("isScreen"),
		CornerRadius:      r.Float64("cornerRadius"),
		ApplySpatialAudio: r.Bool("applySpatialAudio"),
		Type:              Enum[rtc.RegionType](r, "type"),
		Data:              r.OptBytes("data"),
	}
	if sub := r.OptMap("dataParam"); sub != nil {
		p := decodeRegionDataParam(sub)
		region.DataParam = &p
	}
	return region
}

func encodeLiveLayout(v rtc.LiveLayout) *Map {
	return NewMap().
		Set("appData", v.AppData).
		Set("backgroundColor", v.BackgroundColor).
		Set("regions", listOf(v.Regions, encodeLiveRegion))
}

func decodeLiveLayout(r *Reader) rtc.LiveLayout {
	return rtc.LiveLayout{
		AppData:         r.String("appData"),
		BackgroundColor: r.String("backgroundColor"),
		Regions:         readListOf(r, "regions", decodeLiveRegion),
	}
}

func encodeLiveSpatialConfig(v rtc.LiveSpatialConfig) *Map {
	return NewMap().
		Set("enableSpatialRender", v.EnableSpatialRender).
		Set("position", encodePosition(v.Position)).
		Set("orientation", encodeHumanOrientation(v.Orientation))
}

func decodeLiveSpatialConfig(r *Reader) rtc.LiveSpatialConfig {
	return rtc.LiveSpatialConfig{
		EnableSpatialRender: r.Bool("enableSpatialRender"),
		Position:            decodePosition(r.Map("position")),
		Orientation:         decodeHumanOrientation(r.Map("orientation")),
	}
}

func encodeLiveTranscoding(v rtc.LiveTranscoding) *Map {
	return NewMap().
		Set("url", v.URL).
		Set("roomId", v.RoomID).
		Set("uid", v.UID).
		Set("mixType", int64(v.MixType)).
		Set("video", encodeLiveVideoConfig(v.Video)).
		Set("audio", encodeLiveAudioConfig(v.Audio)).
		Set("layout", encodeLiveLayout(v.Layout)).
		Set("spatialConfig", encodeLiveSpatialConfig(v.SpatialConfig))
}

func decodeLiveTranscoding(r *Reader) rtc.LiveTranscoding {
	return rtc.LiveTranscoding{
		URL:           r.String("url"),
		RoomID:        r.String("roomId"),
		UID:           r.String("uid"),
		MixType:       Enum[rtc.MixType](r, "mixType"),
		Video:         decodeLiveVideoConfig(r.Map("video")),
		Audio:         decodeLiveAudioConfig(r.Map("audio")),
		Layout:        decodeLiveLayout(r.Map("layout")),
		SpatialConfig: decodeLiveSpatialConfig(r.Map("spatialConfig")),
	}
}
