package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewWatcher_RequiresPath(t *testing.T) {
	if _, err := NewWatcher("", nil); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	configPath := writeConfig(t, "telemetry:\n  logging:\n    level: \"info\"\n")

	w, err := NewWatcher(configPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	w.debounce = 10 * time.Millisecond

	var reloads atomic.Int32
	w.reload = func(path string) error {
		if path != w.path {
			t.Errorf("expected reload of %q, got %q", w.path, path)
		}
		reloads.Add(1)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Unrelated files in the same directory are ignored.
	other := filepath.Join(filepath.Dir(configPath), "other.yaml")
	if err := os.WriteFile(other, []byte("x: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write other file: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for reloads.Load() == 0 && time.Now().Before(deadline) {
		if err := os.WriteFile(configPath, []byte("telemetry:\n  logging:\n    level: \"debug\"\n"), 0644); err != nil {
			t.Fatalf("failed to rewrite config file: %v", err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
	if reloads.Load() == 0 {
		t.Error("expected at least one reload after the config file changed")
	}
}
