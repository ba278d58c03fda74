package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"romrun/pkg/logger"
)

// Change describes one observed filesystem event in a collection directory.
type Change struct {
	Path string
	Op   string // "create", "remove", "rename", "write"
}

// Watcher reports changes to a collection directory. Bursts of events for
// the same path (editors, partial downloads) are debounced.
type Watcher struct {
	dir      string
	onChange func(Change)
	debounce time.Duration
}

// NewWatcher creates a watcher for dir delivering debounced changes to
// onChange.
func NewWatcher(dir string, onChange func(Change)) *Watcher {
	return &Watcher{
		dir:      dir,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
	}
}

// Watch blocks delivering changes until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Verbosef("watching %s", w.dir)

	pending := make(map[string]Change)
	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if op := opName(ev.Op); op != "" {
				pending[ev.Name] = Change{Path: ev.Name, Op: op}
				flush = time.After(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watch error: %v", err)
		case <-flush:
			for _, c := range pending {
				if w.onChange != nil {
					w.onChange(c)
				}
			}
			pending = make(map[string]Change)
			flush = nil
		}
	}
}

func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	case op.Has(fsnotify.Write):
		return "write"
	default:
		return ""
	}
}
