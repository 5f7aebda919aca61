package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
		{1099511627776, "1.00 TB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.size); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func TestFormatProgress(t *testing.T) {
	cases := []struct {
		completed int64
		total     int64
		want      string
	}{
		{0, 100, "0.00%"},
		{50, 100, "50.00%"},
		{100, 100, "100.00%"},
		{0, 0, "100.00%"},
	}
	for _, c := range cases {
		if got := FormatProgress(c.completed, c.total); got != c.want {
			t.Errorf("FormatProgress(%d, %d) = %q, want %q", c.completed, c.total, got, c.want)
		}
	}
}

func TestGetPathSize(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.bin"), make([]byte, 100), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b.bin"), make([]byte, 50), 0644); err != nil {
		t.Fatal(err)
	}

	size, err := GetPathSize(dir)
	if err != nil {
		t.Fatalf("GetPathSize: %v", err)
	}
	if size != 150 {
		t.Errorf("expected 150, got %d", size)
	}

	size, err = GetPathSize(filepath.Join(dir, "a.bin"))
	if err != nil {
		t.Fatalf("GetPathSize: %v", err)
	}
	if size != 100 {
		t.Errorf("expected 100, got %d", size)
	}
}
