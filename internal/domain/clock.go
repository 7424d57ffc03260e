package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock provides current time and tickers; useful for deterministic tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) clockwork.Ticker
}

// RealClock returns a Clock backed by the system clock.
func RealClock() Clock { return clockwork.NewRealClock() }
