package playground

import (
	"context"
	"os"
	"sync"
	"time"
)

// watcher polls a single file's modification time and invokes a
// callback when it changes.
type watcher struct {
	path     string
	interval time.Duration

	mu       sync.Mutex
	onChange func()
	lastMod  time.Time
}

func newWatcher(path string, interval time.Duration) *watcher {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	w := &watcher{path: path, interval: interval}
	if info, err := os.Stat(path); err == nil {
		w.lastMod = info.ModTime()
	}
	return w
}

// OnChange sets the change callback.
func (w *watcher) OnChange(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Run polls until ctx is done.
func (w *watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *watcher) check() {
	info, err := os.Stat(w.path)
	if err != nil {
		// The file may be mid-replace by an editor; keep polling.
		return
	}

	w.mu.Lock()
	changed := info.ModTime().After(w.lastMod)
	if changed {
		w.lastMod = info.ModTime()
	}
	fn := w.onChange
	w.mu.Unlock()

	if changed && fn != nil {
		fn()
	}
}
