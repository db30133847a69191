// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

// Package workers provides small background-goroutine helpers with a
// strict Start/Stop discipline: Stop blocks until the goroutine has
// exited, so no tick callback runs after Stop returns.
package workers

import (
	"context"
	"sync"
	"time"
)

// TickFunc is invoked once per ticker interval. Returning false ends the
// run from inside the tick itself: the goroutine exits before another
// tick can be delivered, with no Stop call needed. The context is
// cancelled when the run stops.
type TickFunc func(ctx context.Context) bool

// run is one started instance of the job. Each run owns its cancel and
// its own done channel, so stopping one run never touches another.
type run struct {
	cancel context.CancelFunc
	done   chan struct{}
}

type tickerJob struct {
	tick TickFunc

	mu  sync.Mutex
	cur *run
}

// TickerJob runs a callback on a fixed interval in a background
// goroutine. The job is idle until Start is called.
type TickerJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// NewTickerJob creates a TickerJob driving the given callback.
func NewTickerJob(tick TickFunc) TickerJob {
	return &tickerJob{tick: tick}
}

// Start stops any previously running instance, then launches a background
// goroutine that calls the tick callback every interval. If interval is
// zero or negative it defaults to one second. The goroutine exits when
// ctx is cancelled, Stop is called, or the callback returns false.
func (j *tickerJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}

	j.Stop()

	jobCtx, cancel := context.WithCancel(ctx)
	r := &run{cancel: cancel, done: make(chan struct{})}

	j.mu.Lock()
	j.cur = r
	j.mu.Unlock()

	go func() {
		defer close(r.done)
		defer cancel()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// a tick racing Stop is dropped, not delivered late
				if jobCtx.Err() != nil {
					return
				}
				if !j.tick(jobCtx) {
					return
				}
			}
		}
	}()
}

// Stop cancels the run it finds current and blocks until that run's
// goroutine has exited. The run is detached before joining, so a Stop
// racing a new Start joins only the run it captured and never a fresh
// one. Safe to call when the job is not running.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	r := j.cur
	j.cur = nil
	j.mu.Unlock()

	if r == nil {
		return
	}
	r.cancel()
	<-r.done
}
