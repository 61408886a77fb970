// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/shelfsync/internal/logger"
)

// TickerWorker calls a task every interval on its own goroutine.
// The first call happens one interval after Start, not immediately.
type TickerWorker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewTickerWorker creates an idle TickerWorker. A non-positive interval is
// replaced with one minute.
func NewTickerWorker(name string, interval time.Duration, task func(ctx context.Context), log *logger.Logger) *TickerWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &TickerWorker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log,
	}
}

// Start implements [Worker]. It stops a previous run first, so calling it
// twice never leaves two tickers behind. The goroutine exits when ctx is
// cancelled or Stop is called.
func (w *TickerWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Debug().Str("worker", w.name).Dur("interval", w.interval).Msg("worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				w.logger.Debug().Str("worker", w.name).Msg("worker stopped")
				return
			case <-t.C:
				w.task(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the goroutine's context and blocks
// until the goroutine has exited, including a task call already running.
// It is a no-op when the worker is not running.
func (w *TickerWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Running reports whether the worker has been started and not stopped.
func (w *TickerWorker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}
