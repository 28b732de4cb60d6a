package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ngocvu0811/study-flow/internal/logger"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"lecture.mp4", true},
		{"LECTURE.MP3", true},
		{"notes/recording.m4a", true},
		{"summary.md", false},
		{"video.mp4.part", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := isMediaFile(tt.path); got != tt.want {
			t.Errorf("isMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

// Cancelling the context must not abandon files that are still being
// processed: Start only returns once every handler goroutine has finished.
func TestStartWaitsForInFlightHandlers(t *testing.T) {
	dir := t.TempDir()

	var startedOnce sync.Once
	started := make(chan struct{})
	release := make(chan struct{})
	handler := func(ctx context.Context, path string) error {
		startedOnce.Do(func() { close(started) })
		<-release
		return nil
	}

	w, err := New(dir, handler, logger.New("error"), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Start(ctx)
	}()

	if err := os.WriteFile(filepath.Join(dir, "lecture.mp3"), []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("handler was never invoked for the new media file")
	}

	cancel()

	select {
	case <-done:
		t.Fatal("Start returned while a handler was still running")
	case <-time.After(200 * time.Millisecond):
	}

	close(release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after the handler finished")
	}
}
