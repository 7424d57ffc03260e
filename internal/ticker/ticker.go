// Package ticker drives the current instant forward while a display is active.
package ticker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alechenninger/worldclock/internal/domain"
)

// Period is the refresh interval of the display.
const Period = time.Second

// Ticker calls back with the clock's current time once per period while active.
type Ticker struct {
	clock  domain.Clock
	period time.Duration

	mu     sync.Mutex
	active bool
}

func New(clock domain.Clock, period time.Duration) *Ticker {
	if period <= 0 {
		period = Period
	}
	return &Ticker{clock: clock, period: period}
}

// Activate delivers the current instant to onTick immediately and then once
// per period until release is called or ctx is done. onTick runs on a single
// goroutine and never concurrently with itself. release is safe to call more
// than once and returns only after the last onTick call has finished.
func (t *Ticker) Activate(ctx context.Context, onTick func(time.Time)) (release func(), err error) {
	t.mu.Lock()
	if t.active {
		t.mu.Unlock()
		return nil, domain.ErrTickerActive
	}
	t.active = true
	t.mu.Unlock()

	onTick(t.clock.Now())

	ctx, cancel := context.WithCancel(ctx)
	tk := t.clock.NewTicker(t.period)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer tk.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tk.Chan():
				// a tick racing with cancellation is dropped
				if ctx.Err() != nil {
					return
				}
				onTick(t.clock.Now())
			}
		}
	}()
	slog.Debug("ticker activated", "period", t.period)

	var once sync.Once
	release = func() {
		once.Do(func() {
			cancel()
			<-done
			t.mu.Lock()
			t.active = false
			t.mu.Unlock()
			slog.Debug("ticker released")
		})
	}
	return release, nil
}

// Active reports whether a recurring callback is currently registered.
func (t *Ticker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}
