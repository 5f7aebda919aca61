package downloader

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// checksumVerifier hashes the bytes written through it and compares the
// digest against the provider reported value.
type checksumVerifier struct {
	hash     hash.Hash
	expected string
}

func newChecksumVerifier(expected string) *checksumVerifier {
	return &checksumVerifier{
		hash:     sha256.New(),
		expected: expected,
	}
}

func (v *checksumVerifier) Write(p []byte) (int, error) {
	return v.hash.Write(p)
}

func (v *checksumVerifier) Verify() error {
	actual := hex.EncodeToString(v.hash.Sum(nil))
	if actual != v.expected {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, v.expected, actual)
	}
	return nil
}

// hashLocalFile computes the sha256 hex digest of a file on disk.
func hashLocalFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
