package component

// ProximityTracker counts item volumes the character stands in and gates
// the per-frame item trace.
type ProximityTracker struct {
	OverlapCount        int
	ShouldTraceForItems bool
	// LastTracedItem is a lookup-only reference to the item whose prompt was
	// shown last frame. Zero means none.
	LastTracedItem uint64
}

var ProximityTrackerComponent = NewComponent[ProximityTracker]()
