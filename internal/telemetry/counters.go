package telemetry

import "sync/atomic"

// Counters are process-level cumulative totals (monotonic) shared by all invocations.
type Counters struct {
	admitted        atomic.Int64
	rejectedSwitch  atomic.Int64 // rejected, switching the hashed side would fit
	rejectedShrink  atomic.Int64 // rejected, nothing fits
	invalidRequests atomic.Int64
	faults          atomic.Int64
	computations    atomic.Int64
	computeNanos    atomic.Int64
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) Admitted()       { c.admitted.Add(1) }
func (c *Counters) InvalidRequest() { c.invalidRequests.Add(1) }
func (c *Counters) Fault()          { c.faults.Add(1) }

func (c *Counters) Rejected(alternativeFits bool) {
	if alternativeFits {
		c.rejectedSwitch.Add(1)
	} else {
		c.rejectedShrink.Add(1)
	}
}

func (c *Counters) Computed(nanos int64) {
	c.computations.Add(1)
	c.computeNanos.Add(nanos)
}

func (c *Counters) Snapshot() (admitted, rejectedSwitch, rejectedShrink, invalid, faults, computations, computeNanos int64) {
	return c.admitted.Load(), c.rejectedSwitch.Load(), c.rejectedShrink.Load(),
		c.invalidRequests.Load(), c.faults.Load(), c.computations.Load(), c.computeNanos.Load()
}
