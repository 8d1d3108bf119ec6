package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watcher revalidates a fixed set of files when they change. It watches the
// files' parent directories, since editors often replace files instead of
// writing them in place.
type watcher struct {
	fsw      *fsnotify.Watcher
	tracked  map[string]bool
	debounce time.Duration
	onChange func(path string)
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func newWatcher(files []string, debounce time.Duration, onChange func(string)) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return &watcher{
		fsw:      fsw,
		tracked:  tracked,
		debounce: debounce,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// start launches the event loop; it returns immediately.
func (w *watcher) start(ctx context.Context) {
	go w.run(ctx)
}

// stop ends the event loop, waits for it to drain, and releases the
// underlying OS watches.
func (w *watcher) stop() {
	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

func (w *watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// Events settle in pending until no new write arrives for a full
	// debounce interval, batching rapid editor saves into one validation.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.tracked[abs] {
				continue
			}
			pending[abs] = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", zap.Error(err))

		case now := <-ticker.C:
			for path, at := range pending {
				if now.Sub(at) >= w.debounce {
					delete(pending, path)
					w.onChange(path)
				}
			}
		}
	}
}
