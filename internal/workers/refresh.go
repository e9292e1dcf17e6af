package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
)

const defaultRefreshInterval = 30 * time.Second

// RefreshWorker periodically refetches the leave list so the terminal page
// picks up records created by other users.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRefreshWorker creates a RefreshWorker that calls refresher.Refresh every
// interval. A zero or negative interval defaults to 30 seconds. The worker is
// idle until Run is called.
func NewRefreshWorker(refresher Refresher, interval time.Duration, logger *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &RefreshWorker{refresher: refresher, interval: interval, logger: logger}
}

// Run implements Worker. It stops any previously running loop, then launches
// a goroutine that refreshes every interval. Refresh errors are logged and the
// loop keeps going.
func (r *RefreshWorker) Run(ctx context.Context) {
	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := r.refresher.Refresh(jobCtx); err != nil && jobCtx.Err() == nil {
					r.logger.Err(err).Str("func", "*RefreshWorker.Run").Msg("background refresh failed")
				}
			}
		}
	}()
}

// Stop implements Worker. It cancels the loop and blocks until the goroutine
// has exited. Safe to call when the worker is not running.
func (r *RefreshWorker) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}
