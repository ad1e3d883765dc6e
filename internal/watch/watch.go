// Package watch re-parses a cookies.txt jar whenever the HTTP client that
// owns it rewrites the file.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bk-rs/netscape-cookie/pkg/logger"
	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Config contains configuration for the jar watcher.
type Config struct {
	// Debounce is the quiet period after the last event before the jar is
	// re-parsed (default: 100ms).
	Debounce time.Duration
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{Debounce: 100 * time.Millisecond}
}

// Watcher delivers the parsed contents of one cookie jar file each time it
// changes on disk.
type Watcher struct {
	fs   afero.Fs
	path string
	cfg  Config
	log  logger.Logger
}

// New creates a watcher for path. Files are read through fs; change
// notifications come from the OS, so fs must be backed by the real
// filesystem.
func New(fs afero.Fs, path string, cfg Config, log logger.Logger) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig().Debounce
	}
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Watcher{fs: fs, path: filepath.Clean(path), cfg: cfg, log: log}
}

// Run parses the jar once, then again after every change, passing each
// successful parse to onChange. A jar that fails to parse is logged and
// skipped; the previous delivery stays current. Run blocks until ctx is
// done.
func (w *Watcher) Run(ctx context.Context, onChange func([]netscape.Cookie)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	// Clients replace the jar by rename, which drops a watch on the file
	// itself, so the parent directory is watched instead.
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.log.Info("watching cookie jar %s", w.path)

	w.reload(onChange)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopped watching %s", w.path)
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("jar event %s on %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(w.cfg.Debounce)
			} else {
				timer.Reset(w.cfg.Debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload(onChange)

		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.log.Error("file watcher error: %v", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) reload(onChange func([]netscape.Cookie)) {
	cookies, err := netscape.ParseFile(w.fs, w.path)
	if err != nil {
		w.log.Warning("cannot reload cookie jar %s: %v", w.path, err)
		return
	}
	w.log.Debug("reloaded %d cookies from %s", len(cookies), w.path)
	onChange(cookies)
}
