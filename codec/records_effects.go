package codec

import "github.com/wippyai/rtc-bridge/rtc"

func init() {
	register(encodeAudioMixingConfig, decodeAudioMixingConfig)
	register(encodeSingScoringConfig, decodeSingScoringConfig)
	register(encodeStandardPitchInfo, decodeStandardPitchInfo)
	register(encodeSingScoringRealtimeInfo, decodeSingScoringRealtimeInfo)
}

func encodeAudioMixingConfig(v rtc.AudioMixingConfig) *Map {
	return NewMap().
		Set("type", int64(v.Type)).
		Set("playCount", v.PlayCount).
		Set("position", v.Position).
		Set("callbackOnProgressInterval", v.CallbackOnProgressInterval).
		Set("syncProgressToRecordFrame", v.SyncProgressToRecordFrame)
}

func decodeAudioMixingConfig(r *Reader) rtc.AudioMixingConfig {
	return rtc.AudioMixingConfig{
		Type:                       Enum[rtc.AudioMixingType](r, "type"),
		PlayCount:                  r.Int("playCount"),
		Position:                   r.Int("position"),
		CallbackOnProgressInterval: r.Int64("callbackOnProgressInterval"),
		SyncProgressToRecordFrame:  r.Bool("syncProgressToRecordFrame"),
	}
}

func encodeSingScoringConfig(v rtc.SingScoringConfig) *Map {
	return NewMap().
		Set("sampleRate", int64(v.SampleRate)).
		Set("lyricsFilepath", v.LyricsFilepath).
		Set("midiFilepath", v.MidiFilepath)
}

func decodeSingScoringConfig(r *Reader) rtc.SingScoringConfig {
	return rtc.SingScoringConfig{
		SampleRate:     Enum[rtc.AudioSampleRate](r, "sampleRate"),
		LyricsFilepath: r.String("lyricsFilepath"),
		MidiFilepath:   r.String("midiFilepath"),
	}
}

func encodeStandardPitchInfo(v rtc.StandardPitchInfo) *Map {
	return NewMap().
		Set("startTime", v.StartTime).
		Set("duration", v.Duration).
		Set("pitch", v.Pitch)
}

func decodeStandardPitchInfo(r *Reader) rtc.StandardPitchInfo {
	return rtc.StandardPitchInfo{
		StartTime: r.Int("startTime"),
		Duration:  r.Int("duration"),
		Pitch:     r.Int("pitch"),
	}
}

func encodeSingScoringRealtimeInfo(v rtc.SingScoringRealtimeInfo) *Map {
	return NewMap().
		Set("currentPosition", v.CurrentPosition).
		Set("userPitch", v.UserPitch).
		Set("standardPitch", v.StandardPitch).
		Set("sentenceIndex", v.SentenceIndex).
		Set("sentenceScore", v.SentenceScore).
		Set("totalScore", v.TotalScore).
		Set("averageScore", v.AverageScore)
}

func decodeSingScoringRealtimeInfo(r *Reader) rtc.SingScoringRealtimeInfo {
	return rtc.SingScoringRealtimeInfo{
		CurrentPosition: r.Int("currentPosition"),
		UserPitch:       r.Int("userPitch"),
		StandardPitch:   r.Int("standardPitch"),
		SentenceIndex:   r.Int("sentenceIndex"),
		SentenceScore:   r.Int("sentenceScore"),
		TotalScore:      r.Int("totalScore"),
		AverageScore:    r.Int("averageScore"),
	}
}
