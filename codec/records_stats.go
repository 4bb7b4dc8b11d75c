package codec

import "github.com/wippyai/rtc-bridge/rtc"

func init() {
	register(encodeRemoteStreamKey, decodeRemoteStreamKey)
	register(encodeVideoFrameInfo, decodeVideoFrameInfo)
	register(encodeLocalAudioStats, decodeLocalAudioStats)
	register(encodeLocalVideoStats, decodeLocalVideoStats)
	register(encodeLocalStreamStats, decodeLocalStreamStats)
	register(encodeRemoteAudioStats, decodeRemoteAudioStats)
	register(encodeRemoteVideoStats, decodeRemoteVideoStats)
	register(encodeRemoteStreamStats, decodeRemoteStreamStats)
	register(encodeSourceWantedData, decodeSourceWantedData)
	register(encodeRecordingInfo, decodeRecordingInfo)
	register(encodeRecordingProgress, decodeRecordingProgress)
	register(encodeSysStats, decodeSysStats)
	register(encodeRoomStats, decodeRoomStats)
	register(encodeNetworkQualityStats, decodeNetworkQualityStats)
}

func encodeRemoteStreamKey(v rtc.RemoteStreamKey) *Map {
	return NewMap().
		Set("roomId", v.RoomID).
		Set("uid", v.UID).
		Set("streamIndex", int64(v.StreamIndex))
}

func decodeRemoteStreamKey(r *Reader) rtc.RemoteStreamKey {
	return rtc.RemoteStreamKey{
		RoomID:      r.String("roomId"),
		UID:         r.String("uid"),
		StreamIndex: Enum[rtc.StreamIndex](r, "streamIndex"),
	}
}

func encodeVideoFrameInfo(v rtc.VideoFrameInfo) *Map {
	return NewMap().
		Set("width", v.Width).
		Set("height", v.Height).
		Set("rotation", int64(v.Rotation))
}

func decodeVideoFrameInfo(r *Reader) rtc.VideoFrameInfo {
	return rtc.VideoFrameInfo{
		Width:    r.Int("width"),
		Height:   r.Int("height"),
		Rotation: Enum[rtc.VideoRotation](r, "rotation"),
	}
}

func encodeLocalAudioStats(v rtc.LocalAudioStats) *Map {
	return NewMap().
		Set("audioLossRate", v.AudioLossRate).
		Set("sentKBitrate", v.SentKBitrate).
		Set("recordSampleRate", v.RecordSampleRate).
		Set("statsInterval", v.StatsInterval).
		Set("rtt", v.RTT).
		Set("numChannels", v.NumChannels).
		Set("sentSampleRate", v.SentSampleRate)
}

func decodeLocalAudioStats(r *Reader) rtc.LocalAudioStats {
	return rtc.LocalAudioStats{
		AudioLossRate:    r.Float32("audioLossRate"),
		SentKBitrate:     r.Float32("sentKBitrate"),
		RecordSampleRate: r.Int("recordSampleRate"),
		StatsInterval:    r.Int("statsInterval"),
		RTT:              r.Int("rtt"),
		NumChannels:      r.Int("numChannels"),
		SentSampleRate:   r.Int("sentSampleRate"),
	}
}

func encodeLocalVideoStats(v rtc.LocalVideoStats) *Map {
	return NewMap().
		Set("sentKBitrate", v.SentKBitrate).
		Set("inputFrameRate", v.InputFrameRate).
		Set("sentFrameRate", v.SentFrameRate).
		Set("encoderOutputFrameRate", v.EncoderOutputFrameRate).
		Set("renderOutputFrameRate", v.RenderOutputFrameRate).
		Set("statsInterval", v.StatsInterval).
		Set("videoLossRate", v.VideoLossRate).
		Set("rtt", v.RTT).
		Set("encodedBitrate", v.EncodedBitrate).
		Set("encodedFrameWidth", v.EncodedFrameWidth).
		Set("encodedFrameHeight", v.EncodedFrameHeight).
		Set("encodedFrameCount", v.EncodedFrameCount).
		Set("codecType", int64(v.CodecType)).
		Set("isScreen", v.IsScreen)
}

func decodeLocalVideoStats(r *Reader) rtc.LocalVideoStats {
	return rtc.LocalVideoStats{
		SentKBitrate:           r.Float32("sentKBitrate"),
		InputFrameRate:         r.Int("inputFrameRate"),
		SentFrameRate:          r.Int("sentFrameRate"),
		EncoderOutputFrameRate: r.Int("encoderOutputFrameRate"),
		RenderOutputFrameRate:  r.Int("renderOutputFrameRate"),
		StatsInterval:          r.Int("statsInterval"),
		VideoLossRate:          r.Float32("videoLossRate"),
		RTT:                    r.Int("rtt"),
		EncodedBitrate:         r.Int("encodedBitrate"),
		EncodedFrameWidth:      r.Int("encodedFrameWidth"),
		EncodedFrameHeight:     r.Int("encodedFrameHeight"),
		EncodedFrameCount:      r.Int("encodedFrameCount"),
		CodecType:              Enum[rtc.VideoCodecType](r, "codecType"),
		IsScreen:               r.Bool("isScreen"),
	}
}

func encodeLocalStreamStats(v rtc.LocalStreamStats) *Map {
	return NewMap().
		Set("audioStats", encodeLocalAudioStats(v.AudioStats)).
		Set("videoStats", encodeLocalVideoStats(v.VideoStats)).
		Set("isScreen", v.IsScreen)
}

func decodeLocalStreamStats(r *Reader) rtc.LocalStreamStats {
	return rtc.LocalStreamStats{
		AudioStats: decodeLocalAudioStats(r.Map("audioStats")),
		VideoStats: decodeLocalVideoStats(r.Map("videoStats")),
		IsScreen:   r.Bool("isScreen"),
	}
}

func encodeRemoteAudioStats(v rtc.RemoteAudioStats) *Map {
	return NewMap().
		Set("audioLossRate", v.AudioLossRate).
		Set("receivedKBitrate", v.ReceivedKBitrate).
		Set("stallCount", v.StallCount).
		Set("stallDuration", v.StallDuration).
		Set("e2eDelay", v.E2EDelay).
		Set("playoutSampleRate", v.PlayoutSampleRate).
		Set("statsInterval", v.StatsInterval).
		Set("rtt", v.RTT).
		Set("totalRtt", v.TotalRTT).
		Set("quality", int64(v.Quality)).
		Set("jitterBufferDelay", v.JitterBufferDelay).
		Set("numChannels", v.NumChannels).
		Set("receivedSampleRate", v.ReceivedSampleRate).
		Set("frozenRate", v.FrozenRate).
		Set("concealedSamples", v.ConcealedSamples).
		Set("concealmentEvent", v.ConcealmentEvent).
		Set("decSampleRate", v.DecSampleRate).
		Set("decDuration", v.DecDuration)
}

func decodeRemoteAudioStats(r *Reader) rtc.RemoteAudioStats {
	return rtc.RemoteAudioStats{
		AudioLossRate:      r.Float32("audioLossRate"),
		ReceivedKBitrate:   r.Float32("receivedKBitrate"),
		StallCount:         r.Int("stallCount"),
		StallDuration:      r.Int("stallDuration"),
		E2EDelay:           r.Int64("e2eDelay"),
		PlayoutSampleRate:  r.Int("playoutSampleRate"),
		StatsInterval:      r.Int("statsInterval"),
		RTT:                r.Int("rtt"),
		TotalRTT:           r.Int("totalRtt"),
		Quality:            Enum[rtc.NetworkQuality](r, "quality"),
		JitterBufferDelay:  r.Int("jitterBufferDelay"),
		NumChannels:        r.Int("numChannels"),
		ReceivedSampleRate: r.Int("receivedSampleRate"),
		FrozenRate:         r.Int("frozenRate"),
		ConcealedSamples:   r.Int("concealedSamples"),
		ConcealmentEvent:   r.Int("concealmentEvent"),
		DecSampleRate:      r.Int("decSampleRate"),
		DecDuration:        r.Int("decDuration"),
	}
}

func encodeRemoteVideoStats(v rtc.RemoteVideoStats) *Map {
	return NewMap().
		Set("width", v.Width).
		Set("height", v.Height).
		Set("videoLossRate", v.VideoLossRate).
		Set("receivedKBitrate", v.ReceivedKBitrate).
		Set("decoderOutputFrameRate", v.DecoderOutputFrameRate).
		Set("renderOutputFrameRate", v.RenderOutputFrameRate).
		Set("stallCount", v.StallCount).
		Set("stallDuration", v.StallDuration).
		Set("e2eDelay", v.E2EDelay).
		Set("isScreen", v.IsScreen).
		Set("statsInterval", v.StatsInterval).
		Set("rtt", v.RTT).
		Set("frozenRate", v.FrozenRate).
		Set("videoIndex", v.VideoIndex).
		Set("codecType", int64(v.CodecType))
}

func decodeRemoteVideoStats(r *Reader) rtc.RemoteVideoStats {
	return rtc.RemoteVideoStats{
		Width:                  r.Int("width"),
		Height:                 r.Int("height"),
		VideoLossRate:          r.Float32("videoLossRate"),
		ReceivedKBitrate:       r.Float32("receivedKBitrate"),
		DecoderOutputFrameRate: r.Int("decoderOutputFrameRate"),
		RenderOutputFrameRate:  r.Int("renderOutputFrameRate"),
		StallCount:             r.Int("stallCount"),
		StallDuration:          r.Int("stallDuration"),
		E2EDelay:               r.Int64("e2eDelay"),
		IsScreen:               r.Bool("isScreen"),
		StatsInterval:          r.Int("statsInterval"),
		RTT:                    r.Int("rtt"),
		FrozenRate:             r.Int("frozenRate"),
		VideoIndex:             r.Int("videoIndex"),
		CodecType:              Enum[rtc.VideoCodecType](r, "codecType"),
	}
}

func encodeRemoteStreamStats(v rtc.RemoteStreamStats) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("audioStats", encodeRemoteAudioStats(v.AudioStats)).
		Set("videoStats", encodeRemoteVideoStats(v.VideoStats)).
		Set("isScreen", v.IsScreen)
}

func decodeRemoteStreamStats(r *Reader) rtc.RemoteStreamStats {
	return rtc.RemoteStreamStats{
		UID:        r.String("uid"),
		AudioStats: decodeRemoteAudioStats(r.Map("audioStats")),
		VideoStats: decodeRemoteVideoStats(r.Map("videoStats")),
		IsScreen:   r.Bool("isScreen"),
	}
}

func encodeSourceWantedData(v rtc.SourceWantedData) *Map {
	return NewMap().
		Set("width", v.Width).
		Set("height", v.Height).
		Set("frameRate", v.FrameRate)
}

func decodeSourceWantedData(r *Reader) rtc.SourceWantedData {
	return rtc.SourceWantedData{
		Width:     r.Int("width"),
		Height:    r.Int("height"),
		FrameRate: r.Int("frameRate"),
	}
}

func encodeRecordingInfo(v rtc.RecordingInfo) *Map {
	return NewMap().
		Set("filePath", v.FilePath).
		Set("videoCodecType", int64(v.VideoCodecType)).
		Set("width", v.Width).
		Set("height", v.Height)
}

func decodeRecordingInfo(r *Reader) rtc.RecordingInfo {
	return rtc.RecordingInfo{
		FilePath:       r.String("filePath"),
		VideoCodecType: Enum[rtc.VideoCodecType](r, "videoCodecType"),
		Width:          r.Int("width"),
		Height:         r.Int("height"),
	}
}

func encodeRecordingProgress(v rtc.RecordingProgress) *Map {
	return NewMap().
		Set("duration", v.Duration).
		Set("fileSize", v.FileSize)
}

func decodeRecordingProgress(r *Reader) rtc.RecordingProgress {
	return rtc.RecordingProgress{
		Duration: r.Int64("duration"),
		FileSize: r.Int64("fileSize"),
	}
}

func encodeSysStats(v rtc.SysStats) *Map {
	return NewMap().
		Set("cpuCores", v.CPUCores).
		Set("cpuAppUsage", v.CPUAppUsage).
		Set("cpuTotalUsage", v.CPUTotalUsage).
		Set("memoryUsage", v.MemoryUsage).
		Set("fullMemory", v.FullMemory).
		Set("totalMemoryUsage", v.TotalMemoryUsage).
		Set("freeMemory", v.FreeMemory).
		Set("memoryRatio", v.MemoryRatio).
		Set("totalMemoryRatio", v.TotalMemoryRatio)
}

func decodeSysStats(r *Reader) rtc.SysStats {
	return rtc.SysStats{
		CPUCores:         r.Int("cpuCores"),
		CPUAppUsage:      r.Float64("cpuAppUsage"),
		CPUTotalUsage:    r.Float64("cpuTotalUsage"),
		MemoryUsage:      r.Float64("memoryUsage"),
		FullMemory:       r.Int64("fullMemory"),
		TotalMemoryUsage: r.Int64("totalMemoryUsage"),
		FreeMemory:       r.Int64("freeMemory"),
		MemoryRatio:      r.Float64("memoryRatio"),
		TotalMemoryRatio: r.Float64("totalMemoryRatio"),
	}
}

func encodeRoomStats(v rtc.RoomStats) *Map {
	return NewMap().
		Set("duration", v.Duration).
		Set("txBytes", v.TxBytes).
		Set("rxBytes", v.RxBytes).
		Set("txKBitrate", v.TxKBitrate).
		Set("rxKBitrate", v.RxKBitrate).
		Set("txAudioKBitrate", v.TxAudioKBitrate).
		Set("rxAudioKBitrate", v.RxAudioKBitrate).
		Set("txVideoKBitrate", v.TxVideoKBitrate).
		Set("rxVideoKBitrate", v.RxVideoKBitrate).
		Set("txScreenKBitrate", v.TxScreenKBitrate).
		Set("rxScreenKBitrate", v.RxScreenKBitrate).
		Set("userCount", v.UserCount).
		Set("cpuAppUsage", v.CPUAppUsage).
		Set("cpuTotalUsage", v.CPUTotalUsage).
		Set("txLostrate", v.TxLostRate).
		Set("rxLostrate", v.RxLostRate).
		Set("rtt", v.RTT).
		Set("txJitter", v.TxJitter).
		Set("rxJitter", v.RxJitter).
		Set("txCellularKBitrate", v.TxCellularKBitrate).
		Set("rxCellularKBitrate", v.RxCellularKBitrate)
}

func decodeRoomStats(r *Reader) rtc.RoomStats {
	return rtc.RoomStats{
		Duration:           r.Int("duration"),
		TxBytes:            r.Int64("txBytes"),
		RxBytes:            r.Int64("rxBytes"),
		TxKBitrate:         r.Int("txKBitrate"),
		RxKBitrate:         r.Int("rxKBitrate"),
		TxAudioKBitrate:    r.Int("txAudioKBitrate"),
		RxAudioKBitrate:    r.Int("rxAudioKBitrate"),
		TxVideoKBitrate:    r.Int("txVideoKBitrate"),
		RxVideoKBitrate:    r.Int("rxVideoKBitrate"),
		TxScreenKBitrate:   r.Int("txScreenKBitrate"),
		RxScreenKBitrate:   r.Int("rxScreenKBitrate"),
		UserCount:          r.Int("userCount"),
		CPUAppUsage:        r.Float64("cpuAppUsage"),
		CPUTotalUsage:      r.Float64("cpuTotalUsage"),
		TxLostRate:         r.Float32("txLostrate"),
		RxLostRate:         r.Float32("rxLostrate"),
		RTT:                r.Int("rtt"),
		TxJitter:           r.Int("txJitter"),
		RxJitter:           r.Int("rxJitter"),
		TxCellularKBitrate: r.Int("txCellularKBitrate"),
		RxCellularKBitrate: r.Int("rxCellularKBitrate"),
	}
}

func encodeNetworkQualityStats(v rtc.NetworkQualityStats) *Map {
	return NewMap().
		Set("uid", v.UID).
		Set("fractionLost", v.FractionLost).
		Set("rtt", v.RTT).
		Set("totalBandwidth", v.TotalBandwidth).
		Set("txQuality", int64(v.TxQuality)).
		Set("rxQuality", int64(v.RxQuality))
}

func decodeNetworkQualityStats(r *Reader) rtc.NetworkQualityStats {
	return rtc.NetworkQualityStats{
		UID:            r.String("uid"),
		FractionLost:   r.Float64("fractionLost"),
		RTT:            r.Int("rtt"),
		TotalBandwidth: r.Int("totalBandwidth"),
		TxQuality:      Enum[rtc.NetworkQuality](r, "txQuality"),
		RxQuality:      Enum[rtc.NetworkQuality](r, "rxQuality"),
	}
}
