package wfc

// Test bridge for white-box verification of the wave's internal counters.
// Compiled only for tests; keeps the production API narrow while letting
// the invariant tests read the K tensor and worklist state directly.

// SupportCount exposes the K counter of (cell, pat) in direction d.
func (w *Wave) SupportCount(cell, pat, d int) uint16 {
	return w.compat[(cell*w.size+pat)*w.directions+d]
}

// QueueLen exposes how many worklist entries are pending propagation.
func (w *Wave) QueueLen() int { return w.tail - w.head }

// BansTotal exposes how many bans have been recorded since construction.
func (w *Wave) BansTotal() int { return w.tail }

// NeighborAt exposes neighbour resolution for boundary-policy tests.
func (w *Wave) NeighborAt(cell, dx, dy int) (int, bool) {
	return w.neighbor(cell, dx, dy)
}

// SumWeights exposes the incremental entropy counters of a cell.
func (w *Wave) SumWeights(cell int) (sumW, sumWLogW float64) {
	return w.sumW[cell], w.sumWLogW[cell]
}

// FirstPattern exposes the lowest-index surviving pattern of a cell.
func (w *Wave) FirstPattern(cell int) int { return w.firstPattern(cell) }
