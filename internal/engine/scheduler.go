package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-clockface/internal/config"
)

// Task is a scheduled repeating callback owned by whoever scheduled it.
type Task interface {
	// Stop cancels future invocations. It is idempotent and safe to call
	// from any goroutine.
	Stop()
}

// Scheduler invokes a callback periodically.
type Scheduler interface {
	ScheduleRepeating(interval time.Duration, fn func()) Task
}

// TickerScheduler drives repeating tasks from a time.Ticker.
// Every tick is handed to Dispatch, which lets a UI toolkit run the callback
// on its own goroutine. With a nil Dispatch the callback runs on the ticker
// goroutine.
type TickerScheduler struct {
	ctx      context.Context
	dispatch func(func())
}

// NewTickerScheduler creates a scheduler whose tasks also stop when ctx is done.
func NewTickerScheduler(ctx context.Context, dispatch func(func())) *TickerScheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &TickerScheduler{ctx: ctx, dispatch: dispatch}
}

// ScheduleRepeating starts a goroutine that fires fn every interval until the
// returned task is stopped or the scheduler context is cancelled.
func (s *TickerScheduler) ScheduleRepeating(interval time.Duration, fn func()) Task {
	t := &tickerTask{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go t.loop(s.ctx, interval, s.dispatch, fn)
	return t
}

type tickerTask struct {
	once    sync.Once
	stopped atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

func (t *tickerTask) loop(ctx context.Context, interval time.Duration, dispatch func(func()), fn func()) {
	defer close(t.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.stop:
			return
		case <-ticker.C:
			dispatch(func() {
				// A tick may already be queued on the UI goroutine when Stop is called.
				if t.stopped.Load() {
					return
				}
				fn()
			})
		}
	}
}

func (t *tickerTask) Stop() {
	t.once.Do(func() {
		t.stopped.Store(true)
		close(t.stop)
		slog.Debug(config.MsgTaskStopped, config.LogKeyComponent, config.CompScheduler)
	})
}

// Done is closed once the ticker goroutine has exited.
func (t *tickerTask) Done() <-chan struct{} {
	return t.done
}
