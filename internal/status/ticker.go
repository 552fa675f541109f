// Package status runs the cosmetic background sync indicator. The state
// flips between success and syncing on a fixed period and touches no
// entity data.
package status

import (
	"log/slog"
	"sync"
	"time"
)

// SyncState is the indicator value surfaced to clients.
type SyncState string

const (
	SyncSuccess SyncState = "success"
	SyncSyncing SyncState = "syncing"
)

// syncingWindow is how long each syncing blip lasts before flipping back.
const syncingWindow = 1200 * time.Millisecond

// Ticker flips the sync indicator on a fixed interval.
type Ticker struct {
	mu     sync.RWMutex
	state  SyncState
	logger *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// NewTicker creates a Ticker in the success state.
func NewTicker(logger *slog.Logger) *Ticker {
	return &Ticker{
		state:  SyncSuccess,
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// State returns the current indicator value.
func (t *Ticker) State() SyncState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Start begins flipping the indicator every interval. It returns
// immediately; call Stop to halt the background goroutine.
func (t *Ticker) Start(interval time.Duration) {
	go t.run(interval)
}

func (t *Ticker) run(interval time.Duration) {
	defer close(t.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.set(SyncSyncing)
			select {
			case <-t.stop:
				return
			case <-time.After(syncingWindow):
				t.set(SyncSuccess)
			}
		}
	}
}

func (t *Ticker) set(s SyncState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
	t.logger.Debug("sync status changed", "state", s)
}

// Stop halts the ticker and waits for the background goroutine to exit.
// Safe to call only once.
func (t *Ticker) Stop() {
	close(t.stop)
	<-t.done
}
