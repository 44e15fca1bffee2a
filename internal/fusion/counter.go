package fusion

import "sync/atomic"

// Counter is a monotonically increasing execution count. Increments are
// atomic so hooks may fire from several CPUs without holding a lock.
type Counter struct {
	n atomic.Uint64
}

// Inc adds one.
func (c *Counter) Inc() { c.n.Add(1) }

// Add adds d.
func (c *Counter) Add(d uint64) { c.n.Add(d) }

// Load returns the current count.
func (c *Counter) Load() uint64 { return c.n.Load() }
