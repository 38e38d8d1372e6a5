package core

import (
	"sync"
	"time"
)

// Loop is a cancellable fixed-rate tick source for frontends that drive
// their own select loop. One value arrives on C per frame.
type Loop struct {
	ticker *time.Ticker
	once   sync.Once
}

// StartLoop begins emitting ticks at the given ticks-per-second rate.
// The caller must Stop the loop during teardown; an unstopped loop is a
// leaked ticker.
func StartLoop(tps int) *Loop {
	if tps <= 0 {
		tps = 60
	}
	return &Loop{ticker: time.NewTicker(time.Second / time.Duration(tps))}
}

// C is the tick channel.
func (l *Loop) C() <-chan time.Time { return l.ticker.C }

// Stop cancels the loop. Safe to call more than once.
func (l *Loop) Stop() {
	l.once.Do(func() { l.ticker.Stop() })
}
