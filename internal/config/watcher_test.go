package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestNewWatcher_InitialLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "leader: jarvis\n")

	w, err := NewWatcher(path, nil, WithInterval(time.Hour))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	if got := w.Current().Leader; got != "jarvis" {
		t.Errorf("Leader = %q, want jarvis", got)
	}
}

func TestNewWatcher_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := NewWatcher(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	if err == nil {
		t.Fatal("NewWatcher on missing file succeeded, want error")
	}
}

func TestWatcher_PublishesChange(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "leader: jarvis\n")

	var (
		mu      sync.Mutex
		changes []string
	)
	onChange := func(old, new *Snapshot) {
		mu.Lock()
		changes = append(changes, old.Leader+"->"+new.Leader)
		mu.Unlock()
	}

	w, err := NewWatcher(path, onChange, WithInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	// Ensure the mtime moves even on coarse-grained filesystems.
	time.Sleep(20 * time.Millisecond)
	writeConfig(t, path, "leader: computer\n")

	deadline := time.After(5 * time.Second)
	for w.Current().Leader != "computer" {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		case <-time.After(5 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(changes) != 1 || changes[0] != "jarvis->computer" {
		t.Errorf("changes = %v, want [jarvis->computer]", changes)
	}
}

func TestWatcher_RejectsInvalidReload(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "leader: jarvis\n")

	w, err := NewWatcher(path, func(old, new *Snapshot) {
		t.Error("onChange called for an invalid reload")
	}, WithInterval(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	time.Sleep(20 * time.Millisecond)
	writeConfig(t, path, "leader: two words\n")

	// Give the watcher several polling cycles to (wrongly) pick it up.
	time.Sleep(100 * time.Millisecond)

	if got := w.Current().Leader; got != "jarvis" {
		t.Errorf("Leader = %q, want previous snapshot to stay current", got)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "leader: jarvis\n")

	w, err := NewWatcher(path, nil, WithInterval(time.Hour))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Stop()
	w.Stop()
}
