package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/dshills/slopcheck/internal/logger"
)

// debounceWindow suppresses the duplicate events editors emit for one save.
const debounceWindow = 500 * time.Millisecond

// Handler is invoked with the path of a changed document.
type Handler func(path string)

// Watcher re-runs a handler whenever a watched document changes.
type Watcher struct {
	fsw     *fsnotify.Watcher
	log     *logger.Logger
	handler Handler
	last    map[string]time.Time
}

// New creates a Watcher. The handler runs on the watch loop; it should be
// quick (one detection pass).
func New(log *logger.Logger, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{
		fsw:     fsw,
		log:     log.WithComponent("watch"),
		handler: handler,
		last:    make(map[string]time.Time),
	}, nil
}

// Add watches a file or directory. Directories are watched non-recursively.
// Watching a file registers its parent directory so editor rename-on-save
// still delivers events.
func (w *Watcher) Add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat watch path: %w", err)
	}
	target := path
	if !info.IsDir() {
		target = filepath.Dir(path)
	}
	if err := w.fsw.Add(target); err != nil {
		return fmt.Errorf("watching %s: %w", target, err)
	}
	w.log.Info("watching", zap.String("path", target))
	return nil
}

// Run processes events until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !Scannable(ev.Name) {
				continue
			}
			if w.debounced(ev.Name) {
				continue
			}
			w.log.Debug("change detected", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			w.handler(ev.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// debounced reports whether path fired within the debounce window and records
// the event time.
func (w *Watcher) debounced(path string) bool {
	now := time.Now()
	if t, ok := w.last[path]; ok && now.Sub(t) < debounceWindow {
		return true
	}
	w.last[path] = now
	return false
}

// Scannable reports whether a path is worth re-analyzing: not hidden, not a
// known non-text artifact.
func Scannable(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".pdf", ".zip", ".gz", ".tar",
		".exe", ".bin", ".so", ".dylib", ".o", ".a", ".ico", ".woff", ".woff2":
		return false
	}
	return true
}
