package simulation

import (
	"sync"
	"time"
)

// timeLayout matches the wall-clock suffix on activity messages.
const timeLayout = "2006-01-02 15:04:05.000000"

// Clock issues strictly increasing nanosecond timestamps for one item's
// ledger writes. The owning worker and its round sub-tasks share a single
// Clock, which upholds the per-(run, item) timestamp ordering invariant
// even when ticks land on the same wall-clock nanosecond.
type Clock struct {
	mu   sync.Mutex
	last int64
}

// NowNs returns the current timestamp, at least one nanosecond after the
// previous one issued by this Clock.
func (c *Clock) NowNs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	if now <= c.last {
		now = c.last + 1
	}
	c.last = now
	return now
}

// FormatNs renders a nanosecond timestamp the way activity messages
// display it.
func FormatNs(ns int64) string {
	return time.Unix(0, ns).Format(timeLayout)
}
