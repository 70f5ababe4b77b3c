// internal/app/system/workers/viewsweep.go
package workers

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper is implemented by viewsession.Manager.
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// ViewSweep is a background worker that evicts idle view sessions.
type ViewSweep struct {
	target   Sweeper
	log      *zap.Logger
	interval time.Duration
	idle     time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewViewSweep creates a sweep worker.
//
// Parameters:
//   - target: the view session manager
//   - logger: zap logger for logging
//   - interval: how often to sweep (e.g., 1 minute)
//   - idle: how long a view session may be unused before it is evicted (e.g., 30 minutes)
func NewViewSweep(target Sweeper, logger *zap.Logger, interval, idle time.Duration) *ViewSweep {
	return &ViewSweep{
		target:   target,
		log:      logger,
		interval: interval,
		idle:     idle,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *ViewSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("view session sweep started",
		zap.Duration("interval", w.interval),
		zap.Duration("idle", w.idle))
}

// Stop signals the worker to stop and waits for it to finish. It is safe to
// call more than once.
func (w *ViewSweep) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("view session sweep stopped")
	})
}

func (w *ViewSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *ViewSweep) sweep() {
	if n := w.target.Sweep(w.idle); n > 0 {
		w.log.Debug("evicted idle view sessions", zap.Int("count", n))
	}
}
