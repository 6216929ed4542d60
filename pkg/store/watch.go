package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/storyjournal/pkg/logger"
)

// EventType describes the nature of a store change notification.
type EventType int

const (
	// EventKeyChanged indicates the value under Key was rewritten, possibly
	// by another process.
	EventKeyChanged EventType = iota

	// EventInvalidated signals a change that cannot be pinned to one key;
	// callers should reload everything they show.
	EventInvalidated
)

// Event is emitted by Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// ErrWatchUnsupported is returned for stores that live in memory.
var ErrWatchUnsupported = errors.New("store: backend does not support watching")

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel; events are dropped rather than block the watcher.
// The channel is closed once ctx is done or the watcher fails.
func Watch(ctx context.Context, kv KV) (<-chan Event, error) {
	switch s := kv.(type) {
	case *Diskv:
		return watchDir(ctx, s.basePath, func(path string) Event {
			key := s.keyForPath(path)
			if key == "" {
				return Event{Type: EventInvalidated}
			}
			return Event{Type: EventKeyChanged, Key: key}
		})
	case *SQLite:
		// Rows are not visible to the filesystem; any write to the database
		// or its WAL invalidates every key.
		return watchDir(ctx, filepath.Dir(s.path), func(string) Event {
			return Event{Type: EventInvalidated}
		})
	default:
		return nil, ErrWatchUnsupported
	}
}

func watchDir(ctx context.Context, dir string, classify func(path string) Event) (<-chan Event, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure watch dir: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				logger.Warn("store: watcher close", "error", err)
			}
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; it reloads on the next event anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("store: watcher error", "error", err)
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.Enqueue(classify(evt.Name), send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of writes (diskv truncates then writes)
// into one event per key.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Key] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

// flush sends while holding the lock so nothing is sent after Stop returns.
// send never blocks.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil

	if _, all := pending[EventInvalidated]; all {
		send(Event{Type: EventInvalidated})
		return
	}
	for key := range pending[EventKeyChanged] {
		send(Event{Type: EventKeyChanged, Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
