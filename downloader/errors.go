package downloader

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("file not found")
var ErrPermissionDenied = errors.New("permission denied")
var ErrChecksumMismatch = errors.New("checksum mismatch")
var ErrFileExists = errors.New("file exists and is corrupt, overwrite not permitted")

// Retriable reports whether a failed attempt may be tried again. Bad file
// ids, denied access and existing-file conflicts never resolve on retry,
// neither does a cancelled context.
func Retriable(err error) bool {
	if errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrFileExists) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
