package rtc

// MusicInfo is a karaoke catalogue entry.
type MusicInfo struct {
	MusicID         string
	MusicName       string
	Singer          string
	VendorID        string
	VendorName      string
	UpdateTimestamp int64
	PosterURL       string
	LyricTypes      []LyricType
	Duration        int
	EnableScore     bool
	ClimaxStartTime int
	ClimaxEndTime   int
}

// HotMusicInfo groups a hot list.
type HotMusicInfo struct {
	HotType MusicHotType
	HotName string
	Musics  []MusicInfo
}

// DownloadResult reports a finished karaoke download.
type DownloadResult struct {
	FilePath string
	MusicID  string
	FileType DownloadFileType
}

func (MusicInfo) RecordName() string      { return "MusicInfo" }
func (HotMusicInfo) RecordName() string   { return "HotMusicInfo" }
func (DownloadResult) RecordName() string { return "DownloadResult" }
