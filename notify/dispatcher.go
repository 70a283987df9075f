// Package notify runs operator notifications in the background so they
// never delay or fail the request that triggered them.
package notify

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context) error

type Dispatcher struct {
	logger  *zap.Logger
	timeout time.Duration

	wg       sync.WaitGroup
	sent     atomic.Int64
	failures atomic.Int64
}

func NewDispatcher(logger *zap.Logger, timeout time.Duration) *Dispatcher {
	return &Dispatcher{logger: logger, timeout: timeout}
}

// Go runs task on its own goroutine. The task context keeps the values of
// ctx but not its cancellation, so it outlives the HTTP request.
func (d *Dispatcher) Go(ctx context.Context, channel string, task Task) {
	d.wg.Add(1)
	taskCtx := context.WithoutCancel(ctx)

	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.failures.Add(1)
				d.logger.Error("notification panicked", zap.String("channel", channel), zap.Any("panic", r))
			}
		}()

		taskCtx, cancel := context.WithTimeout(taskCtx, d.timeout)
		defer cancel()

		if err := task(taskCtx); err != nil {
			d.failures.Add(1)
			d.logger.Warn("notification failed", zap.String("channel", channel), zap.Error(err))
			return
		}
		d.sent.Add(1)
	}()
}

// Wait blocks until every dispatched task has finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) Sent() int64 {
	return d.sent.Load()
}

func (d *Dispatcher) Failures() int64 {
	return d.failures.Load()
}
