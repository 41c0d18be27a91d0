// Package watch re-runs an import whenever a report file is written.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"workhours/internal/logging"
	"workhours/internal/observability/metrics"
)

const (
	// DefaultDelay is how long writes are collected before the handler runs.
	DefaultDelay = time.Second

	readAttempts = 20
	readBackoff  = 100 * time.Millisecond
)

// Handler receives the file contents after a write settles.
type Handler func(ctx context.Context, data []byte) error

// Options configures a Watcher
type Options struct {
	Delay   time.Duration
	Metrics *metrics.Metrics
}

// Watcher follows a single file.
type Watcher struct {
	path    string
	handler Handler
	delay   time.Duration
	metrics *metrics.Metrics
	fs      *fsnotify.Watcher
}

// New starts watching path. The directory is watched so editors that replace the file are followed.
func New(path string, handler Handler, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Watcher{
		path:    abs,
		handler: handler,
		delay:   delay,
		metrics: opts.Metrics,
		fs:      fs,
	}, nil
}

// Run dispatches settled writes to the handler until ctx is done.
// Handler failures are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logging.Debugf("watch: %s", event)
			if settle == nil {
				settle = time.After(w.delay)
			}

		case <-settle:
			settle = nil
			if err := w.fire(ctx); err != nil {
				logging.Warnf("re-import %s: %v", w.path, err)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logging.Warnf("watch %s: %v", w.path, err)
		}
	}
}

func (w *Watcher) fire(ctx context.Context) error {
	data, err := readSettled(ctx, w.path)
	if err != nil {
		return err
	}
	w.metrics.Reimported()
	return w.handler(ctx, data)
}

// readSettled reads path, retrying while it is empty because a writer truncated it.
func readSettled(ctx context.Context, path string) ([]byte, error) {
	for i := 0; i < readAttempts; i++ {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if len(b) > 0 {
			return b, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(readBackoff):
		}
	}
	return nil, fmt.Errorf("read %s: file stayed empty", path)
}
