package downloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestChecksumVerifier(t *testing.T) {
	data := []byte("some file content")

	v := newChecksumVerifier(digest(data))
	if _, err := v.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := v.Verify(); err != nil {
		t.Errorf("expected matching digest, got %v", err)
	}

	v = newChecksumVerifier(digest([]byte("other content")))
	if _, err := v.Write(data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	err := v.Verify()
	if !errors.Is(err, ErrChecksumMismatch) {
		t.Errorf("expected ErrChecksumMismatch, got %v", err)
	}
}

func TestHashLocalFile(t *testing.T) {
	data := []byte("hash me")
	path := filepath.Join(t.TempDir(), "f.bin")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := hashLocalFile(path)
	if err != nil {
		t.Fatalf("hashLocalFile: %v", err)
	}
	if want := digest(data); got != want {
		t.Errorf("digest mismatch: got %s, want %s", got, want)
	}

	if _, err = hashLocalFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
