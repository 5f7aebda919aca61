package downloader

const FolderMimeType = "application/vnd.google-apps.folder"

// FileMeta is the provider reported metadata of a remote file.
type FileMeta struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
	SHA256   string `json:"sha256_checksum"`
}

func (f *FileMeta) IsFolder() bool {
	return f.MimeType == FolderMimeType
}

type Status int

const (
	StatusPending Status = iota
	StatusDownloading
	StatusDownloaded
	StatusAlreadyPresent
	StatusCorrupted
	StatusFailed
	StatusChecked
	StatusAlreadyChecked
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusDownloading:
		return "downloading"
	case StatusDownloaded:
		return "downloaded"
	case StatusAlreadyPresent:
		return "already present"
	case StatusCorrupted:
		return "corrupted"
	case StatusFailed:
		return "failed"
	case StatusChecked:
		return "checked"
	case StatusAlreadyChecked:
		return "already checked"
	default:
		return "unknown"
	}
}

type Options struct {
	// SavePath is the directory the download lands in. Defaults to the
	// current directory; the file keeps its provider reported name.
	SavePath string

	// Check verifies the sha256 of files before and after transfer.
	Check bool

	// Overwrite replaces an existing file that fails verification.
	Overwrite bool

	// Force re-downloads regardless of existing file state.
	Force bool

	// Retry is the number of retries in case of error. Non-zero implies
	// Check.
	Retry int
}

func (o Options) withDefaults() Options {
	if o.SavePath == "" {
		o.SavePath = "."
	}
	if o.Retry < 0 {
		o.Retry = 0
	}
	if o.Retry > 0 {
		o.Check = true
	}
	return o
}
