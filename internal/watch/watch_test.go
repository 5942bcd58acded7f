package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsNewFile(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 1)

	w := New(dir, func(path string) error {
		seen <- path
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register the directory before the
	// file shows up.
	time.Sleep(50 * time.Millisecond)

	target := filepath.Join(dir, "new.log")
	if err := os.WriteFile(target, []byte("line\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case path := <-seen:
		if path != target {
			t.Fatalf("reported path = %q, want %q", path, target)
		}
	case <-time.After(1500 * time.Millisecond):
		t.Fatalf("timed out waiting for new-file notification")
	}

	cancel()
	<-done
}

func TestWatcherIgnoresNestedDirectoryCreation(t *testing.T) {
	dir := t.TempDir()
	calls := make(chan string, 1)

	w := New(dir, func(path string) error {
		calls <- path
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	select {
	case path := <-calls:
		t.Fatalf("expected directory creation to be ignored, got callback for %q", path)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	<-done
}
