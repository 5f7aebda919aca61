package types

type DownloadRequest struct {
	FileId    string `json:"file_id"`
	SavePath  string `json:"save_path"`
	Check     bool   `json:"check"`
	Overwrite bool   `json:"overwrite"`
	Force     bool   `json:"force"`
	Retry     int    `json:"retry"`
}
