package status_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zentryhq/zentry/internal/status"
)

func TestTicker_StartsInSuccessState(t *testing.T) {
	tk := status.NewTicker(slog.Default())
	assert.Equal(t, status.SyncSuccess, tk.State())
}

func TestTicker_FlipsToSyncingOnTick(t *testing.T) {
	tk := status.NewTicker(slog.Default())
	tk.Start(20 * time.Millisecond)
	defer tk.Stop()

	deadline := time.After(2 * time.Second)
	for {
		if tk.State() == status.SyncSyncing {
			return
		}
		select {
		case <-deadline:
			t.Fatal("ticker never entered the syncing state")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestTicker_StopHaltsGoroutine(t *testing.T) {
	tk := status.NewTicker(slog.Default())
	tk.Start(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		tk.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
