package codec

import "github.com/wippyai/rtc-bridge/rtc"

func init() {
	register(encodeVideoStreamDescription, decodeVideoStreamDescription)
	register(encodeStream, decodeStream)
	register(encodeRemoteStreamSwitch, decodeRemoteStreamSwitch)
	register(encodeAudioPropertiesInfo, decodeAudioPropertiesInfo)
	register(encodeLocalAudioPropertiesInfo, decodeLocalAudioPropertiesInfo)
	register(encodeRemoteAudioPropertiesInfo, decodeRemoteAudioPropertiesInfo)
	register(encodeSubscribeConfig, decodeSubscribeConfig)
	register(encodeAudioVolumeInfo, decodeAudioVolumeInfo)
	register(encodeForwardStreamEventInfo, decodeForwardStreamEventInfo)
	register(encodeForwardStreamStateInfo, decodeForwardStreamStateInfo)
	register(encodeUserInfo, decodeUserInfo)
	register(encodeRangeAudioInfo, decodeRangeAudioInfo)
	register(encodeRectangle, decodeRectangle)
	register(encodeExpressionDetectInfo, decodeExpressionDetectInfo)
	register(encodeFaceDetectionResult, decodeFaceDetectionResult)
	register(encodeSubtitleMessage, decodeSubtitleMessage)
	register(encodeMusicInfo, decodeMusicInfo)
	register(encodeHotMusicInfo, decodeHotMusicInfo)
	register(encodeDownloadResult, decodeDownloadResult)
}

func encodeVideoStreamDescription(v rtc.VideoStreamDescription) *Map {
	return NewMap().
		Set("width", v.Width).
		Set("height", v.Height).
		Set("frameRate", v.FrameRate).
		Set("maxKbps", v.MaxKbps).
		Set("encoderPreference", int64(v.EncoderPreference))
}

func decodeVideoStreamDescription(r *Reader) rtc.VideoStreamDescription {
	return rtc.VideoStreamDescription{
		Width:             r.Int("width"),
		Height:            r.Int("height"),
		FrameRate:         r.Int("frameRate"),
		MaxKbps:           r.Int("maxKbps"),
		EncoderPreference: Enum[rtc.VideoEncoderPreference](r, "encoderPreference"),
	}
}

func encodeStream(v rtc.Stream) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("isScreen", v.IsScreen).
		Set("hasVideo", v.HasVideo).
		Set("hasAudio", v.HasAudio).
		Set("videoStreamDescriptions", listOf(v.VideoStreamDescriptions, encodeVideoStreamDescription))
}

func decodeStream(r *Reader) rtc.Stream {
	return rtc.Stream{
		UID:                     r.String("uid"),
		IsScreen:                r.Bool("isScreen"),
		HasVideo:                r.Bool("hasVideo"),
		HasAudio:                r.Bool("hasAudio"),
		VideoStreamDescriptions: readListOf(r, "videoStreamDescriptions", decodeVideoStreamDescription),
	}
}

func encodeRemoteStreamSwitch(v rtc.RemoteStreamSwitch) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("isScreen", v.IsScreen).
		Set("beforeVideoIndex", v.BeforeVideoIndex).
		Set("afterVideoIndex", v.AfterVideoIndex).
		Set("beforeEnable", v.BeforeEnable).
		Set("afterEnable", v.AfterEnable).
		Set("reason", v.Reason)
}

func decodeRemoteStreamSwitch(r *Reader) rtc.RemoteStreamSwitch {
	return rtc.RemoteStreamSwitch{
		UID:              r.String("uid"),
		IsScreen:         r.Bool("isScreen"),
		BeforeVideoIndex: r.Int("beforeVideoIndex"),
		AfterVideoIndex:  r.Int("afterVideoIndex"),
		BeforeEnable:     r.Bool("beforeEnable"),
		AfterEnable:      r.Bool("afterEnable"),
		Reason:           r.Int("reason"),
	}
}

func encodeAudioPropertiesInfo(v rtc.AudioPropertiesInfo) *Map {
	return NewMap().
		Set("linearVolume", v.LinearVolume).
		Set("nonlinearVolume", v.NonlinearVolume).
		Set("vad", v.VAD).
		Set("spectrum", floatList(v.Spectrum))
}

func decodeAudioPropertiesInfo(r *Reader) rtc.AudioPropertiesInfo {
	return rtc.AudioPropertiesInfo{
		LinearVolume:    r.Int("linearVolume"),
		NonlinearVolume: r.Int("nonlinearVolume"),
		VAD:             r.Int("vad"),
		Spectrum:        r.Float64s("spectrum"),
	}
}

func encodeLocalAudioPropertiesInfo(v rtc.LocalAudioPropertiesInfo) *Map {
	return NewMap().
		Set("streamIndex", int64(v.StreamIndex)).
		Set("audioPropertiesInfo", encodeAudioPropertiesInfo(v.AudioPropertiesInfo))
}

func decodeLocalAudioPropertiesInfo(r *Reader) rtc.LocalAudioPropertiesInfo {
	return rtc.LocalAudioPropertiesInfo{
		StreamIndex:         Enum[rtc.StreamIndex](r, "streamIndex"),
		AudioPropertiesInfo: decodeAudioPropertiesInfo(r.Map("audioPropertiesInfo")),
	}
}

func encodeRemoteAudioPropertiesInfo(v rtc.RemoteAudioPropertiesInfo) *Map {
	return NewMap().
		Set("streamKey", encodeRemoteStreamKey(v.StreamKey)).
		Set("audioPropertiesInfo", encodeAudioPropertiesInfo(v.AudioPropertiesInfo))
}

func decodeRemoteAudioPropertiesInfo(r *Reader) rtc.RemoteAudioPropertiesInfo {
	return rtc.RemoteAudioPropertiesInfo{
		StreamKey:           decodeRemoteStreamKey(r.Map("streamKey")),
		AudioPropertiesInfo: decodeAudioPropertiesInfo(r.Map("audioPropertiesInfo")),
	}
}

func encodeSubscribeConfig(v rtc.SubscribeConfig) *Map {
	return NewMap().
		Set("isScreen", v.IsScreen).
		Set("subVideo", v.SubVideo).
		Set("subAudio", v.SubAudio).
		Set("videoIndex", v.VideoIndex).
		Set("subWidth", v.SubWidth).
		Set("subHeight", v.SubHeight).
		Set("subVideoIndex", v.SubVideoIndex).
		Set("svcLayer", v.SVCLayer).
		Set("frameRate", v.FrameRate)
}

func decodeSubscribeConfig(r *Reader) rtc.SubscribeConfig {
	return rtc.SubscribeConfig{
		IsScreen:      r.Bool("isScreen"),
		SubVideo:      r.Bool("subVideo"),
		SubAudio:      r.Bool("subAudio"),
		VideoIndex:    r.Int("videoIndex"),
		SubWidth:      r.Int("subWidth"),
		SubHeight:     r.Int("subHeight"),
		SubVideoIndex: r.Int("subVideoIndex"),
		SVCLayer:      r.Int("svcLayer"),
		FrameRate:     r.Int("frameRate"),
	}
}

func encodeAudioVolumeInfo(v rtc.AudioVolumeInfo) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("linearVolume", v.LinearVolume).
		Set("nonlinearVolume", v.NonlinearVolume)
}

func decodeAudioVolumeInfo(r *Reader) rtc.AudioVolumeInfo {
	return rtc.AudioVolumeInfo{
		UID:             r.String("uid"),
		LinearVolume:    r.Int("linearVolume"),
		NonlinearVolume: r.Int("nonlinearVolume"),
	}
}

func encodeForwardStreamEventInfo(v rtc.ForwardStreamEventInfo) *Map {
	return NewMap().
		Set("roomId", v.RoomID).
		Set("event", int64(v.Event))
}

func decodeForwardStreamEventInfo(r *Reader) rtc.ForwardStreamEventInfo {
	return rtc.ForwardStreamEventInfo{
		RoomID: r.String("roomId"),
		Event:  Enum[rtc.ForwardStreamEvent](r, "event"),
	}
}

func encodeForwardStreamStateInfo(v rtc.ForwardStreamStateInfo) *Map {
	return NewMap().
		Set("roomId", v.RoomID).
		Set("state", int64(v.State)).
		Set("error", v.Error)
}

func decodeForwardStreamStateInfo(r *Reader) rtc.ForwardStreamStateInfo {
	return rtc.ForwardStreamStateInfo{
		RoomID: r.String("roomId"),
		State:  Enum[rtc.ForwardStreamState](r, "state"),
		Error:  r.Int("error"),
	}
}

func encodeUserInfo(v rtc.UserInfo) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("metaData", optString(v.MetaData))
}

func decodeUserInfo(r *Reader) rtc.UserInfo {
	return rtc.UserInfo{
		UID:      r.String("uid"),
		MetaData: r.OptString("metaData"),
	}
}

func encodeRangeAudioInfo(v rtc.RangeAudioInfo) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("factor", v.Factor)
}

func decodeRangeAudioInfo(r *Reader) rtc.RangeAudioInfo {
	return rtc.RangeAudioInfo{
		UID:    r.String("uid"),
		Factor: r.Int("factor"),
	}
}

func encodeRectangle(v rtc.Rectangle) *Map {
	return NewMap().
		Set("x", v.X).
		Set("y", v.Y).
		Set("width", v.Width).
		Set("height", v.Height)
}

func decodeRectangle(r *Reader) rtc.Rectangle {
	return rtc.Rectangle{
		X:      r.Int("x"),
		Y:      r.Int("y"),
		Width:  r.Int("width"),
		Height: r.Int("height"),
	}
}

func encodeExpressionDetectInfo(v rtc.ExpressionDetectInfo) *Map {
	return NewMap().
		Set("age", v.Age).
		Set("boyProb", v.BoyProb).
		Set("attractive", v.Attractive).
		Set("happyScore", v.HappyScore).
		Set("sadScore", v.SadScore).
		Set("surpriseScore", v.SurpriseScore).
		Set("arousal", v.Arousal).
		Set("valence", v.Valence)
}

func decodeExpressionDetectInfo(r *Reader) rtc.ExpressionDetectInfo {
	return rtc.ExpressionDetectInfo{
		Age:           r.Int("age"),
		BoyProb:       r.Float32("boyProb"),
		Attractive:    r.Float32("attractive"),
		HappyScore:    r.Float32("happyScore"),
		SadScore:      r.Float32("sadScore"),
		SurpriseScore: r.Float32("surpriseScore"),
		Arousal:       r.Float32("arousal"),
		Valence:       r.Float32("valence"),
	}
}

func encodeFaceDetectionResult(v rtc.FaceDetectionResult) *Map {
	return NewMap().
		Set("detectResult", v.DetectResult).
		Set("imageWidth", v.ImageWidth).
		Set("imageHeight", v.ImageHeight).
		Set("faces", listOf(v.Faces, encodeRectangle)).
		Set("expressions", listOf(v.Expressions, encodeExpressionDetectInfo)).
		Set("frameTimestampUs", v.FrameTimeUs)
}

func decodeFaceDetectionResult(r *Reader) rtc.FaceDetectionResult {
	return rtc.FaceDetectionResult{
		DetectResult: r.Int("detectResult"),
		ImageWidth:   r.Int("imageWidth"),
		ImageHeight:  r.Int("imageHeight"),
		Faces:        readListOf(r, "faces", decodeRectangle),
		Expressions:  readListOf(r, "expressions", decodeExpressionDetectInfo),
		FrameTimeUs:  r.Int64("frameTimestampUs"),
	}
}

func encodeSubtitleMessage(v rtc.SubtitleMessage) *Map {
	return NewMap().
		Set("userId", v.UserID).
		Set("text", v.Text).
		Set("language", v.Language).
		Set("mode", int64(v.Mode)).
		Set("sequence", v.Sequence).
		Set("definite", int64(v.Definite))
}

func decodeSubtitleMessage(r *Reader) rtc.SubtitleMessage {
	return rtc.SubtitleMessage{
		UserID:   r.String("userId"),
		Text:     r.String("text"),
		Language: r.String("language"),
		Mode:     Enum[rtc.SubtitleMode](r, "mode"),
		Sequence: r.Int("sequence"),
		Definite: Enum[rtc.SubtitleDefinite](r, "definite"),
	}
}

func encodeMusicInfo(v rtc.MusicInfo) *Map {
	return NewMap().
		Set("musicId", v.MusicID).
		Set("musicName", v.MusicName).
		Set("singer", v.Singer).
		Set("vendorId", v.VendorID).
		Set("vendorName", v.VendorName).
		Set("updateTimestamp", v.UpdateTimestamp).
		Set("posterUrl", v.PosterURL).
		Set("lyricTypes", enumList(v.LyricTypes)).
		Set("duration", v.Duration).
		Set("enableScore", v.EnableScore).
		Set("climaxStartTime", v.ClimaxStartTime).
		Set("climaxEndTime", v.ClimaxEndTime)
}

func decodeMusicInfo(r *Reader) rtc.MusicInfo {
	return rtc.MusicInfo{
		MusicID:         r.String("musicId"),
		MusicName:       r.String("musicName"),
		Singer:          r.String("singer"),
		VendorID:        r.String("vendorId"),
		VendorName:      r.String("vendorName"),
		UpdateTimestamp: r.Int64("updateTimestamp"),
		PosterURL:       r.String("posterUrl"),
		LyricTypes:      Enums[rtc.LyricType](r, "lyricTypes"),
		Duration:        r.Int("duration"),
		EnableScore:     r.Bool("enableScore"),
		ClimaxStartTime: r.Int("climaxStartTime"),
		ClimaxEndTime:   r.Int("climaxEndTime"),
	}
}

func encodeHotMusicInfo(v rtc.HotMusicInfo) *Map {
	return NewMap().
		Set("hotType", int64(v.HotType)).
		Set("hotName", v.HotName).
		Set("musics", listOf(v.Musics, encodeMusicInfo))
}

func decodeHotMusicInfo(r *Reader) rtc.HotMusicInfo {
	return rtc.HotMusicInfo{
		HotType: Enum[rtc.MusicHotType](r, "hotType"),
		HotName: r.String("hotName"),
		Musics:  readListOf(r, "musics", decodeMusicInfo),
	}
}

func encodeDownloadResult(v rtc.DownloadResult) *Map {
	return NewMap().
		Set("filePath", v.FilePath).
		Set("musicId", v.MusicID).
		Set("fileType", int64(v.FileType))
}

func decodeDownloadResult(r *Reader) rtc.DownloadResult {
	return rtc.DownloadResult{
		FilePath: r.String("filePath"),
		MusicID:  r.String("musicId"),
		FileType: Enum[rtc.DownloadFileType](r, "fileType"),
	}
}
