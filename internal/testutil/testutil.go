// Package testutil provides shared test helpers for data directories and services.
package testutil

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/starford/moodsense/internal/sentiment"
	"github.com/starford/moodsense/internal/storage"
)

// TestData creates a temporary data directory with a storage provider.
func TestData(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteFile writes content into the data directory or fails the test.
func WriteFile(t *testing.T, store storage.Provider, path, content string) {
	t.Helper()
	if err := store.Write(path, []byte(content)); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// FixedScorer returns a scorer that always reports polarity p.
func FixedScorer(p float64) sentiment.Scorer {
	return sentiment.Func(func(string) float64 { return p })
}

// Clock returns a time source frozen at the given RFC 3339 timestamp.
func Clock(t *testing.T, ts string) func() time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t.Fatalf("parse clock %q: %v", ts, err)
	}
	return func() time.Time { return at }
}

// Logger returns a logger that only emits errors to stderr.
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
