package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatcher_RevalidatesOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger = zap.NewNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "water.json")
	if err := os.WriteFile(path, []byte(moleculeJSON), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	hits := make(chan string, 8)
	w, err := newWatcher([]string{path}, 50*time.Millisecond, func(p string) { hits <- p })
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.start(ctx)

	// Let the OS watch settle before touching the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte(moleculeJSON), 0o644); err != nil {
		t.Fatalf("rewrite payload: %v", err)
	}

	select {
	case got := <-hits:
		if got != path {
			t.Fatalf("watcher fired for %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never fired after a write")
	}

	cancel()
	w.stop()
}

func TestWatcher_IgnoresUntrackedFiles(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger = zap.NewNop()

	dir := t.TempDir()
	tracked := filepath.Join(dir, "tracked.json")
	if err := os.WriteFile(tracked, []byte(moleculeJSON), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	hits := make(chan string, 8)
	w, err := newWatcher([]string{tracked}, 50*time.Millisecond, func(p string) { hits <- p })
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.start(ctx)

	time.Sleep(100 * time.Millisecond)
	neighbor := filepath.Join(dir, "neighbor.json")
	if err := os.WriteFile(neighbor, []byte(moleculeJSON), 0o644); err != nil {
		t.Fatalf("write neighbor: %v", err)
	}

	select {
	case got := <-hits:
		t.Fatalf("watcher fired for untracked file %q", got)
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	w.stop()
}

func TestWatcher_CleanShutdownWithoutEvents(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger = zap.NewNop()

	dir := t.TempDir()
	path := filepath.Join(dir, "water.json")
	if err := os.WriteFile(path, []byte(moleculeJSON), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}

	w, err := newWatcher([]string{path}, 50*time.Millisecond, func(string) {})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.start(context.Background())
	w.stop()
}
