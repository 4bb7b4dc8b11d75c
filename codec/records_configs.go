package codec

import "github.com/wippyai/rtc-bridge/rtc"

func init() {
	register(encodeRemoteVideoConfig, decodeRemoteVideoConfig)
	register(encodeRoomConfig, decodeRoomConfig)
	register(encodeForwardStreamInfo, decodeForwardStreamInfo)
	register(encodeSourceCrop, decodeSourceCrop)
	register(encodePublicStreamRegion, decodePublicStreamRegion)
	register(encodePublicStreamLayout, decodePublicStreamLayout)
	register(encodePublicStreamVideoConfig, decodePublicStreamVideoConfig)
	register(encodePublicStreamAudioConfig, decodePublicStreamAudioConfig)
	register(encodePublicStreaming, decodePublicStreaming)
	register(encodeVideoEncoderConfig, decodeVideoEncoderConfig)
	register(encodeScreenVideoEncoderConfig, decodeScreenVideoEncoderConfig)
	register(encodeVideoCaptureConfig, decodeVideoCaptureConfig)
	register(encodeVirtualBackgroundSource, decodeVirtualBackgroundSource)
	register(encodeWatermarkPosition, decodeWatermarkPosition)
	register(encodeWatermarkConfig, decodeWatermarkConfig)
	register(encodePushSingleStreamParam, decodePushSingleStreamParam)
	register(encodeRecordingConfig, decodeRecordingConfig)
	register(encodeAudioRecordingConfig, decodeAudioRecordingConfig)
	register(encodeASRConfig, decodeASRConfig)
	register(encodeProblemFeedbackRoomInfo, decodeProblemFeedbackRoomInfo)
	register(encodeProblemFeedbackInfo, decodeProblemFeedbackInfo)
	register(encodeAudioPropertiesConfig, decodeAudioPropertiesConfig)
	register(encodeStreamSyncInfoConfig, decodeStreamSyncInfoConfig)
	register(encodeMediaPlayerConfig, decodeMediaPlayerConfig)
	register(encodeAudioEffectPlayerConfig, decodeAudioEffectPlayerConfig)
	register(encodeEchoTestConfig, decodeEchoTestConfig)
	register(encodeCloudProxyInfo, decodeCloudProxyInfo)
	register(encodeLocalProxyConfiguration, decodeLocalProxyConfiguration)
	register(encodeMediaTypeEnhancementConfig, decodeMediaTypeEnhancementConfig)
	register(encodeSubtitleConfig, decodeSubtitleConfig)
	register(encodeVoiceReverbConfig, decodeVoiceReverbConfig)
	register(encodeVoiceEqualizationConfig, decodeVoiceEqualizationConfig)
}

func encodeRemoteVideoConfig(v rtc.RemoteVideoConfig) *Map {
	return NewMap().
		Set("width", v.Width).
		Set("height", v.Height).
		Set("frameRate", v.FrameRate)
}

func decodeRemoteVideoConfig(r *Reader) rtc.RemoteVideoConfig {
	return rtc.RemoteVideoConfig{
		Width:     r.Int("width"),
		Height:    r.Int("height"),
		FrameRate: r.Int("frameRate"),
	}
}

func encodeRoomConfig(v rtc.RoomConfig) *Map {
	return NewMap().
		Set("profile", int64(v.Profile)).
		Set("isAutoPublish", v.IsAutoPublish).
		Set("isAutoSubscribeAudio", v.IsAutoSubscribeAudio).
		Set("isAutoSubscribeVideo", v.IsAutoSubscribeVideo).
		Set("remoteVideoConfig", encodeRemoteVideoConfig(v.RemoteVideoConfig))
}

func decodeRoomConfig(r *Reader) rtc.RoomConfig {
	return rtc.RoomConfig{
		Profile:              Enum[rtc.RoomProfile](r, "profile"),
		IsAutoPublish:        r.Bool("isAutoPublish"),
		IsAutoSubscribeAudio: r.Bool("isAutoSubscribeAudio"),
		IsAutoSubscribeVideo: r.Bool("isAutoSubscribeVideo"),
		RemoteVideoConfig:    decodeRemoteVideoConfig(r.Map("remoteVideoConfig")),
	}
}

func encodeForwardStreamInfo(v rtc.ForwardStreamInfo) *Map {
	return NewMap().
		Set("roomId", v.RoomID).
		Set("token", v.Token)
}

func decodeForwardStreamInfo(r *Reader) rtc.ForwardStreamInfo {
	return rtc.ForwardStreamInfo{
		RoomID: r.String("roomId"),
		Token:  r.String("token"),
	}
}

func encodeSourceCrop(v rtc.SourceCrop) *Map {
	return NewMap().
		Set("locationX", v.LocationX).
		Set("locationY", v.LocationY).
		Set("widthProportion", v.WidthProportion).
		Set("heightProportion", v.HeightProportion)
}

func decodeSourceCrop(r *Reader) rtc.SourceCrop {
	return rtc.SourceCrop{
		LocationX:        r.Float64("locationX"),
		LocationY:        r.Float64("locationY"),
		WidthProportion:  r.Float64("widthProportion"),
		HeightProportion: r.Float64("heightProportion"),
	}
}

func encodePublicStreamRegion(v rtc.PublicStreamRegion) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("roomId", v.RoomID).
		Set("x", v.X).
		Set("y", v.Y).
		Set("w", v.W).
		Set("h", v.H).
		Set("zorder", v.ZOrder).
		Set("alpha", v.Alpha).
		Set("streamType", int64(v.StreamType)).
		Set("mediaType", int64(v.MediaType)).
		Set("renderMode", int64(v.RenderMode)).
		Set("sourceCrop", encodeSourceCrop(v.SourceCrop))
}

func decodePublicStreamRegion(r *Reader) rtc.PublicStreamRegion {
	return rtc.PublicStreamRegion{
		UID:        r.String("uid"),
		RoomID:     r.String("roomId"),
		X:          r.Float64("x"),
		Y:          r.Float64("y"),
		W:          r.Float64("w"),
		H:          r.Float64("h"),
		ZOrder:     r.Int("zorder"),
		Alpha:      r.Float64("alpha"),
		StreamType: Enum[rtc.StreamIndex](r, "streamType"),
		MediaType:  Enum[rtc.ContentControl](r, "mediaType"),
		RenderMode: Enum[rtc.RenderMode](r, "renderMode"),
		SourceCrop: decodeSourceCrop(r.Map("sourceCrop")),
	}
}

func encodePublicStreamLayout(v rtc.PublicStreamLayout) *Map {
	return NewMap().
		Set("interpolationMode", int64(v.InterpolationMode)).
		Set("layoutMode", int64(v.LayoutMode)).
		Set("backgroundColor", v.BackgroundColor).
		Set("backgroundImage", v.BackgroundImage).
		Set("regions", listOf(v.Regions, encodePublicStreamRegion))
}

func decodePublicStreamLayout(r *Reader) rtc.PublicStreamLayout {
	return rtc.PublicStreamLayout{
		InterpolationMode: Enum[rtc.InterpolationMode](r, "interpolationMode"),
		LayoutMode:        Enum[rtc.LayoutMode](r, "layoutMode"),
		BackgroundColor:   r.String("backgroundColor"),
		BackgroundImage:   r.String("backgroundImage"),
		Regions:           readListOf(r, "regions", decodePublicStreamRegion),
	}
}

func encodePublicStreamVideoConfig(v rtc.PublicStreamVideoConfig) *Map {
	return NewMap().
		Set("width", v.Width).
		Set("height", v.Height).
		Set("fps", v.FPS).
		Set("kBitrate", v.KBitrate)
}

func decodePublicStreamVideoConfig(r *Reader) rtc.PublicStreamVideoConfig {
	return rtc.PublicStreamVideoConfig{
		Width:    r.Int("width"),
		Height:   r.Int("height"),
		FPS:      r.Int("fps"),
		KBitrate: r.Int("kBitrate"),
	}
}

func encodePublicStreamAudioConfig(v rtc.PublicStreamAudioConfig) *Map {
	return NewMap().
		Set("kBitrate", v.KBitrate).
		Set("sampleRate", v.SampleRate).
		Set("channels", v.Channels)
}

func decodePublicStreamAudioConfig(r *Reader) rtc.PublicStreamAudioConfig {
	return rtc.PublicStreamAudioConfig{
		KBitrate:   r.Int("kBitrate"),
		SampleRate: r.Int("sampleRate"),
		Channels:   r.Int("channels"),
	}
}

func encodePublicStreaming(v rtc.PublicStreaming) *Map {
	return NewMap().
		Set("roomId", v.RoomID).
		Set("video", encodePublicStreamVideoConfig(v.Video)).
		Set("audio", encodePublicStreamAudioConfig(v.Audio)).
		Set("layout", encodePublicStreamLayout(v.Layout))
}

func decodePublicStreaming(r *Reader) rtc.PublicStreaming {
	return rtc.PublicStreaming{
		RoomID: r.String("roomId"),
		Video:  decodePublicStreamVideoConfig(r.Map("video")),
		Audio:  decodePublicStreamAudioConfig(r.Map("audio")),
		Layout: decodePublicStreamLayout(r.Map("layout")),
	}
}

func encodeVideoEncoderConfig(v rtc.VideoEncoderConfig) *Map {
	return NewMap().
		Set("width", v.Width).
		Set("height", v.Height).
		Set("frameRate", v.FrameRate).
		Set("maxBitrate", v.MaxBitrate).
		Set("minBitrate", v.MinBitrate).
		Set("encoderPreference", int64(v.EncoderPreference))
}

func decodeVideoEncoderConfig(r *Reader) rtc.VideoEncoderConfig {
	return rtc.VideoEncoderConfig{
		Width:             r.Int("width"),
		Height:            r.Int("height"),
		FrameRate:         r.Int("frameRate"),
		MaxBitrate:        r.Int("maxBitrate"),
		MinBitrate:        r.Int("minBitrate"),
		EncoderPreference: Enum[rtc.VideoEncoderPreference](r, "encoderPreference"),
	}
}

func encodeScreenVideoEncoderConfig(v rtc.ScreenVideoEncoderConfig) *Map {
	return encodeVideoEncoderConfig(rtc.VideoEncoderConfig(v))
}

func decodeScreenVideoEncoderConfig(r *Reader) rtc.ScreenVideoEncoderConfig {
	return rtc.ScreenVideoEncoderConfig(decodeVideoEncoderConfig(r))
}

func encodeVideoCaptureConfig(v rtc.VideoCaptureConfig) *Map {
	return NewMap().
		Set("width", v.Width).
		Set("height", v.Height).
		Set("frameRate", v.FrameRate).
		Set("capturePreference", int64(v.CapturePreference))
}

func decodeVideoCaptureConfig(r *Reader) rtc.VideoCaptureConfig {
	return rtc.VideoCaptureConfig{
		Width:             r.Int("width"),
		Height:            r.Int("height"),
		FrameRate:         r.Int("frameRate"),
		CapturePreference: Enum[rtc.CapturePreference](r, "capturePreference"),
	}
}

func encodeVirtualBackgroundSource(v rtc.VirtualBackgroundSource) *Map {
	return NewMap().
		Set("sourceType", int64(v.SourceType)).
		Set("sourceColor", v.SourceColor).
		Set("sourcePath", v.SourcePath)
}

func decodeVirtualBackgroundSource(r *Reader) rtc.VirtualBackgroundSource {
	return rtc.VirtualBackgroundSource{
		SourceType:  Enum[rtc.VirtualBackgroundSourceType](r, "sourceType"),
		SourceColor: r.Int64("sourceColor"),
		SourcePath:  r.String("sourcePath"),
	}
}

func encodeWatermarkPosition(v rtc.WatermarkPosition) *Map {
	return NewMap().
		Set("x", v.X).
		Set("y", v.Y).
		Set("width", v.Width).
		Set("height", v.Height)
}

func decodeWatermarkPosition(r *Reader) rtc.WatermarkPosition {
	return rtc.WatermarkPosition{
		X:      r.Float32("x"),
		Y:      r.Float32("y"),
		Width:  r.Float32("width"),
		Height: r.Float32("height"),
	}
}

func encodeWatermarkConfig(v rtc.WatermarkConfig) *Map {
	return NewMap().
		Set("visibleInPreview", v.VisibleInPreview).
		Set("positionInLandscapeMode", encodeWatermarkPosition(v.PositionInLandscapeMode)).
		Set("positionInPortraitMode", encodeWatermarkPosition(v.PositionInPortraitMode))
}

func decodeWatermarkConfig(r *Reader) rtc.WatermarkConfig {
	return rtc.WatermarkConfig{
		VisibleInPreview:        r.Bool("visibleInPreview"),
		PositionInLandscapeMode: decodeWatermarkPosition(r.Map("positionInLandscapeMode")),
		PositionInPortraitMode:  decodeWatermarkPosition(r.Map("positionInPortraitMode")),
	}
}

func encodePushSingleStreamParam(v rtc.PushSingleStreamParam) *Map {
	return NewMap().
		Set("roomId", v.RoomID).
		Set("uid", v.UID).
		Set("url", v.URL).
		Set("isScreen", v.IsScreen)
}

func decodePushSingleStreamParam(r *Reader) rtc.PushSingleStreamParam {
	return rtc.PushSingleStreamParam{
		RoomID:   r.String("roomId"),
		UID:      r.String("uid"),
		URL:      r.String("url"),
		IsScreen: r.Bool("isScreen"),
	}
}

func encodeRecordingConfig(v rtc.RecordingConfig) *Map {
	return NewMap().
		Set("dirPath", v.DirPath).
		Set("recordingFileType", int64(v.RecordingFileType))
}

func decodeRecordingConfig(r *Reader) rtc.RecordingConfig {
	return rtc.RecordingConfig{
		DirPath:           r.String("dirPath"),
		RecordingFileType: Enum[rtc.RecordingFileType](r, "recordingFileType"),
	}
}

func encodeAudioRecordingConfig(v rtc.AudioRecordingConfig) *Map {
	return NewMap().
		Set("absoluteFileName", v.AbsoluteFileName).
		Set("sampleRate", v.SampleRate).
		Set("channel", v.Channel).
		Set("frameSource", int64(v.FrameSource)).
		Set("quality", int64(v.Quality))
}

func decodeAudioRecordingConfig(r *Reader) rtc.AudioRecordingConfig {
	return rtc.AudioRecordingConfig{
		AbsoluteFileName: r.String("absoluteFileName"),
		SampleRate:       r.Int("sampleRate"),
		Channel:          r.Int("channel"),
		FrameSource:      Enum[rtc.AudioFrameSource](r, "frameSource"),
		Quality:          Enum[rtc.AudioQuality](r, "quality"),
	}
}

func encodeASRConfig(v rtc.ASRConfig) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("accessToken", v.AccessToken).
		Set("secretKey", v.SecretKey).
		Set("authorizationType", int64(v.AuthorizationType)).
		Set("cluster", v.Cluster).
		Set("appId", v.AppID)
}

func decodeASRConfig(r *Reader) rtc.ASRConfig {
	return rtc.ASRConfig{
		UID:               r.String("uid"),
		AccessToken:       r.String("accessToken"),
		SecretKey:         r.String("secretKey"),
		AuthorizationType: Enum[rtc.ASRAuthorizationType](r, "authorizationType"),
		Cluster:           r.String("cluster"),
		AppID:             r.String("appId"),
	}
}

func encodeProblemFeedbackRoomInfo(v rtc.ProblemFeedbackRoomInfo) *Map {
	return NewMap().
		Set("roomId", v.RoomID).
		Set("uid", v.UID)
}

func decodeProblemFeedbackRoomInfo(r *Reader) rtc.ProblemFeedbackRoomInfo {
	return rtc.ProblemFeedbackRoomInfo{
		RoomID: r.String("roomId"),
		UID:    r.String("uid"),
	}
}

func encodeProblemFeedbackInfo(v rtc.ProblemFeedbackInfo) *Map {
	return NewMap().
		Set("problemDesc", v.ProblemDesc).
		Set("roomInfo", listOf(v.RoomInfo, encodeProblemFeedbackRoomInfo))
}

func decodeProblemFeedbackInfo(r *Reader) rtc.ProblemFeedbackInfo {
	return rtc.ProblemFeedbackInfo{
		ProblemDesc: r.String("problemDesc"),
		RoomInfo:    readListOf(r, "roomInfo", decodeProblemFeedbackRoomInfo),
	}
}

func encodeAudioPropertiesConfig(v rtc.AudioPropertiesConfig) *Map {
	return NewMap().
		Set("interval", v.Interval).
		Set("enableSpectrum", v.EnableSpectrum).
		Set("enableVad", v.EnableVAD).
		Set("localMainReportMode", int64(v.LocalMainReportMode)).
		Set("smooth", v.Smooth).
		Set("audioReportMode", int64(v.AudioReportMode))
}

func decodeAudioPropertiesConfig(r *Reader) rtc.AudioPropertiesConfig {
	return rtc.AudioPropertiesConfig{
		Interval:            r.Int("interval"),
		EnableSpectrum:      r.Bool("enableSpectrum"),
		EnableVAD:           r.Bool("enableVad"),
		LocalMainReportMode: Enum[rtc.AudioReportMode](r, "localMainReportMode"),
		Smooth:              r.Float32("smooth"),
		AudioReportMode:     Enum[rtc.AudioPropertiesMode](r, "audioReportMode"),
	}
}

func encodeStreamSyncInfoConfig(v rtc.StreamSyncInfoConfig) *Map {
	return NewMap().
		Set("streamIndex", int64(v.StreamIndex)).
		Set("repeatCount", v.RepeatCount)
}

func decodeStreamSyncInfoConfig(r *Reader) rtc.StreamSyncInfoConfig {
	return rtc.StreamSyncInfoConfig{
		StreamIndex: Enum[rtc.StreamIndex](r, "streamIndex"),
		RepeatCount: r.Int("repeatCount"),
	}
}

func encodeMediaPlayerConfig(v rtc.MediaPlayerConfig) *Map {
	return NewMap().
		Set("type", int64(v.Type)).
		Set("playCount", v.PlayCount).
		Set("startPos", v.StartPos).
		Set("autoPlay", v.AutoPlay).
		Set("callbackOnProgressInterval", v.CallbackOnProgressInterval).
		Set("syncProgressToRecordFrame", v.SyncProgressToRecordFrame)
}

func decodeMediaPlayerConfig(r *Reader) rtc.MediaPlayerConfig {
	return rtc.MediaPlayerConfig{
		Type:                       Enum[rtc.AudioMixingType](r, "type"),
		PlayCount:                  r.Int("playCount"),
		StartPos:                   r.Int64("startPos"),
		AutoPlay:                   r.Bool("autoPlay"),
		CallbackOnProgressInterval: r.Int64("callbackOnProgressInterval"),
		SyncProgressToRecordFrame:  r.Bool("syncProgressToRecordFrame"),
	}
}

func encodeAudioEffectPlayerConfig(v rtc.AudioEffectPlayerConfig) *Map {
	return NewMap().
		Set("type", int64(v.Type)).
		Set("playCount", v.PlayCount).
		Set("startPos", v.StartPos).
		Set("pitch", v.Pitch)
}

func decodeAudioEffectPlayerConfig(r *Reader) rtc.AudioEffectPlayerConfig {
	return rtc.AudioEffectPlayerConfig{
		Type:      Enum[rtc.AudioMixingType](r, "type"),
		PlayCount: r.Int("playCount"),
		StartPos:  r.Int("startPos"),
		Pitch:     r.Int("pitch"),
	}
}

func encodeEchoTestConfig(v rtc.EchoTestConfig) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("roomId", v.RoomID).
		Set("token", optString(v.Token)).
		Set("enableAudio", v.EnableAudio).
		Set("enableVideo", v.EnableVideo).
		Set("audioReportInterval", v.AudioReportInterval)
}

func decodeEchoTestConfig(r *Reader) rtc.EchoTestConfig {
	return rtc.EchoTestConfig{
		UID:                 r.String("uid"),
		RoomID:              r.String("roomId"),
		Token:               r.OptString("token"),
		EnableAudio:         r.Bool("enableAudio"),
		EnableVideo:         r.Bool("enableVideo"),
		AudioReportInterval: r.Int("audioReportInterval"),
	}
}

func encodeCloudProxyInfo(v rtc.CloudProxyInfo) *Map {
	return NewMap().
		Set("cloudProxyIp", v.CloudProxyIP).
		Set("cloudProxyPort", v.CloudProxyPort)
}

func decodeCloudProxyInfo(r *Reader) rtc.CloudProxyInfo {
	return rtc.CloudProxyInfo{
		CloudProxyIP:   r.String("cloudProxyIp"),
		CloudProxyPort: r.Int("cloudProxyPort"),
	}
}

func encodeLocalProxyConfiguration(v rtc.LocalProxyConfiguration) *Map {
	return NewMap().
		Set("localProxyType", int64(v.LocalProxyType)).
		Set("localProxyIp", v.LocalProxyIP).
		Set("localProxyPort", v.LocalProxyPort).
		Set("localProxyUsername", v.LocalProxyUsername).
		Set("localProxyPassword", v.LocalProxyPassword)
}

func decodeLocalProxyConfiguration(r *Reader) rtc.LocalProxyConfiguration {
	return rtc.LocalProxyConfiguration{
		LocalProxyType:     Enum[rtc.LocalProxyType](r, "localProxyType"),
		LocalProxyIP:       r.String("localProxyIp"),
		LocalProxyPort:     r.Int("localProxyPort"),
		LocalProxyUsername: r.String("localProxyUsername"),
		LocalProxyPassword: r.String("localProxyPassword"),
	}
}

func encodeMediaTypeEnhancementConfig(v rtc.MediaTypeEnhancementConfig) *Map {
	return NewMap().
		Set("enhanceSignaling", v.EnhanceSignaling).
		Set("enhanceAudio", v.EnhanceAudio).
		Set("enhanceVideo", v.EnhanceVideo).
		Set("enhanceScreenAudio", v.EnhanceScreenAudio).
		Set("enhanceScreenVideo", v.EnhanceScreenVideo)
}

func decodeMediaTypeEnhancementConfig(r *Reader) rtc.MediaTypeEnhancementConfig {
	return rtc.MediaTypeEnhancementConfig{
		EnhanceSignaling:   r.Bool("enhanceSignaling"),
		EnhanceAudio:       r.Bool("enhanceAudio"),
		EnhanceVideo:       r.Bool("enhanceVideo"),
		EnhanceScreenAudio: r.Bool("enhanceScreenAudio"),
		EnhanceScreenVideo: r.Bool("enhanceScreenVideo"),
	}
}

func encodeSubtitleConfig(v rtc.SubtitleConfig) *Map {
	return NewMap().
		Set("mode", int64(v.Mode)).
		Set("targetLanguage", v.TargetLanguage)
}

func decodeSubtitleConfig(r *Reader) rtc.SubtitleConfig {
	return rtc.SubtitleConfig{
		Mode:           Enum[rtc.SubtitleMode](r, "mode"),
		TargetLanguage: r.String("targetLanguage"),
	}
}

func encodeVoiceReverbConfig(v rtc.VoiceReverbConfig) *Map {
	return NewMap().
		Set("roomSize", v.RoomSize).
		Set("decayTime", v.DecayTime).
		Set("damping", v.Damping).
		Set("wetGain", v.WetGain).
		Set("dryGain", v.DryGain).
		Set("preDelay", v.PreDelay)
}

func decodeVoiceReverbConfig(r *Reader) rtc.VoiceReverbConfig {
	return rtc.VoiceReverbConfig{
		RoomSize:  r.Float32("roomSize"),
		DecayTime: r.Float32("decayTime"),
		Damping:   r.Float32("damping"),
		WetGain:   r.Float32("wetGain"),
		DryGain:   r.Float32("dryGain"),
		PreDelay:  r.Float32("preDelay"),
	}
}

func encodeVoiceEqualizationConfig(v rtc.VoiceEqualizationConfig) *Map {
	return NewMap().
		Set("frequency", v.Frequency).
		Set("gain", v.Gain)
}

func decodeVoiceEqualizationConfig(r *Reader) rtc.VoiceEqualizationConfig {
	return rtc.VoiceEqualizationConfig{
		Frequency: r.Int("frequency"),
		Gain:      r.Int("gain"),
	}
}
