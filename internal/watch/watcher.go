// Package watch reports which puzzle inputs changed on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"aoc2024/internal/input"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is used when NewWatcher gets a non-positive debounce.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches an input directory and emits the day whose dayNN.txt file
// settled after a change.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	dir         string
	days        map[int]bool
	pending     map[int]time.Time
	debounceDur time.Duration
	events      chan int
	logger      *zap.Logger
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Emitted       int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
}

// NewWatcher creates a watcher for dir. Only the listed days are reported;
// an empty list reports every day.
func NewWatcher(dir string, debounce time.Duration, logger *zap.Logger, days ...int) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{
		watcher:     fw,
		dir:         dir,
		pending:     make(map[int]time.Time),
		debounceDur: debounce,
		events:      make(chan int, 8),
		logger:      logger,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	if len(days) > 0 {
		w.days = make(map[int]bool, len(days))
		for _, d := range days {
			w.days[d] = true
		}
	}
	return w, nil
}

// Events delivers settled day numbers. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan int {
	return w.events
}

// Start begins watching. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	// A failed Start leaves the watcher closed; Stop is then a no-op.
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		w.watcher.Close()
		return fmt.Errorf("failed to create input dir: %w", err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		w.watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.logger.Info("Watching inputs", zap.String("dir", w.dir), zap.Duration("debounce", w.debounceDur))

	w.running = true
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("Failed to close watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.events)

	tick := w.debounceDur / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case <-ticker.C:
			if !w.flush(ctx) {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	day, ok := input.DayFromFile(filepath.Base(event.Name))
	if !ok || (w.days != nil && !w.days[day]) {
		return
	}
	w.logger.Debug("Input changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.Events++
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name
	w.pending[day] = time.Now()
}

// flush emits days that have been quiet for the debounce window. It returns
// false when the watcher is shutting down.
func (w *Watcher) flush(ctx context.Context) bool {
	w.mu.Lock()
	now := time.Now()
	var settled []int
	for day, at := range w.pending {
		if now.Sub(at) >= w.debounceDur {
			settled = append(settled, day)
			delete(w.pending, day)
		}
	}
	w.mu.Unlock()

	for _, day := range settled {
		if _, err := os.Stat(filepath.Join(w.dir, input.FileName(day))); err != nil {
			continue
		}
		select {
		case w.events <- day:
			w.mu.Lock()
			w.stats.Emitted++
			w.mu.Unlock()
		case <-ctx.Done():
			return false
		case <-w.stopCh:
			return false
		}
	}
	return true
}

// GetStats returns the current watcher statistics.
func (w *Watcher) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching reports whether the event loop is running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}
