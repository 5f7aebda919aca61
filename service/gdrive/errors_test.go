package gdrive

import (
	"errors"
	"testing"

	"google.golang.org/api/googleapi"

	"github.com/jaskaranSM/drivedl/downloader"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		want      error
		retriable bool
	}{
		{"not found", &googleapi.Error{Code: 404}, downloader.ErrNotFound, false},
		{"forbidden", &googleapi.Error{Code: 403}, downloader.ErrPermissionDenied, false},
		{"unauthorized", &googleapi.Error{Code: 401}, downloader.ErrPermissionDenied, false},
		{"rate limited", &googleapi.Error{Code: 429}, nil, true},
		{"server error", &googleapi.Error{Code: 500}, nil, true},
		{"transport error", errors.New("connection reset"), nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := mapError(c.err)
			if c.want != nil && !errors.Is(got, c.want) {
				t.Errorf("expected %v, got %v", c.want, got)
			}
			if retriable := downloader.Retriable(got); retriable != c.retriable {
				t.Errorf("Retriable = %v, want %v", retriable, c.retriable)
			}
		})
	}
}

func TestMapErrorKeepsOriginal(t *testing.T) {
	orig := errors.New("plain failure")
	if got := mapError(orig); got != orig {
		t.Errorf("expected original error back, got %v", got)
	}
}
