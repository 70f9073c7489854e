// Package filewatch reports external changes to the open file.
//
// The parent directory is watched rather than the file itself so that
// editors and tools which save by renaming a temporary file over the
// original are still seen. Bursts of events are coalesced.
package filewatch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/iw2rmb/quill/internal/logging"
)

// ErrClosed is returned by Close on a watcher that is already closed.
var ErrClosed = errors.New("watcher is closed")

// DefaultDelay is the coalescing window used when none is given.
const DefaultDelay = 100 * time.Millisecond

// Event is one coalesced change of the watched file.
type Event struct {
	Path    string
	Removed bool
}

// ChangedMsg is delivered to a Bubble Tea program by Wait.
type ChangedMsg Event

type Watcher struct {
	fsw   *fsnotify.Watcher
	path  string
	delay time.Duration
	log   *zap.Logger

	events chan Event
	errs   chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Watch starts watching path. The logger is taken from ctx.
func Watch(ctx context.Context, path string, delay time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if delay <= 0 {
		delay = DefaultDelay
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		delay:   delay,
		log:     logging.L(ctx).With(zap.String("path", abs)),
		events:  make(chan Event, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Events delivers coalesced changes. It is closed by Close.
func (w *Watcher) Events() <-chan Event { return w.events }

// Errors delivers watcher errors. It is closed by Close.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	close(w.events)
	close(w.errs)
	return w.fsw.Close()
}

// Wait returns a command that blocks for the next change and reports it as a
// ChangedMsg. Once the watcher is closed the command yields nil.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-w.events
		if !ok {
			return nil
		}
		return ChangedMsg(ev)
	}
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending Event
	)
	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			pending = Event{Path: w.path, Removed: ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename)}
			if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write) {
				pending.Removed = false
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.log.Debug("file changed", zap.Bool("removed", pending.Removed))
			select {
			case w.events <- pending:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}
