package telemetry

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	admitted       uint64
	rejectedSwitch uint64
	rejectedShrink uint64
	invalid        uint64
	faults         uint64
	computations   uint64
	computeNanos   uint64
}

func sample(c *Counters) snapshot {
	admitted, rSwitch, rShrink, invalid, faults, computations, nanos := c.Snapshot()
	return snapshot{
		admitted:       uint64(max(admitted, 0)),
		rejectedSwitch: uint64(max(rSwitch, 0)),
		rejectedShrink: uint64(max(rShrink, 0)),
		invalid:        uint64(max(invalid, 0)),
		faults:         uint64(max(faults, 0)),
		computations:   uint64(max(computations, 0)),
		computeNanos:   uint64(max(nanos, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		admitted:       delta(prev.admitted, cur.admitted),
		rejectedSwitch: delta(prev.rejectedSwitch, cur.rejectedSwitch),
		rejectedShrink: delta(prev.rejectedShrink, cur.rejectedShrink),
		invalid:        delta(prev.invalid, cur.invalid),
		faults:         delta(prev.faults, cur.faults),
		computations:   delta(prev.computations, cur.computations),
		computeNanos:   delta(prev.computeNanos, cur.computeNanos),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
