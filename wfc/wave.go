package wfc

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/collapse/pattern"
)

// banEntry is one pending elimination on the propagation worklist.
type banEntry struct {
	cell int32
	pat  int32
}

// Wave is the mutable superposition state over a W×H output grid. Every
// cell carries a packed bitset of still-possible patterns, the incremental
// entropy counters (Σw, Σw·ln w), and a uint16 support counter per
// (pattern, direction). All storage is allocated once in NewWave; Ban,
// Observe and Propagate never allocate.
//
// Counter contract: compat[(cell·T+j)·D+d] counts the patterns still
// possible in the cell at offset Offsets()[d] from cell that agree with j
// on their overlap. When any counter of a still-possible j reaches zero, j
// is banned.
type Wave struct {
	width, height int
	size          int // T, patterns per cell
	directions    int // D, non-zero offsets
	periodic      bool

	table  *pattern.Table
	oracle *pattern.Oracle

	words    int       // uint64 words per cell bitset
	possible []uint64  // cell*words .. packed possibility bitsets
	counts   []int     // per-cell |P|
	sumW     []float64 // per-cell Σ_{i∈P} w_i
	sumWLogW []float64 // per-cell Σ_{i∈P} w_i·ln w_i

	compat []uint16 // (cell*T+j)*D+d support counters

	queue      []banEntry // preallocated FIFO, capacity W·H·T
	head, tail int

	decided int // cells with exactly one remaining pattern
}

// NewWave allocates the full superposition: every cell starts with all T
// patterns possible, entropy counters seeded from the table's global sums,
// and every support counter at the oracle's full supporter count. The
// non-periodic boundary policy is "full K at init, skip out-of-bounds
// neighbours during propagation".
//
// Returns ErrDimension, ErrTableEmpty, ErrOracleNil or ErrTableMismatch.
//
// Complexity: O(W·H·T·D) time and memory.
func NewWave(t *pattern.Table, o *pattern.Oracle, width, height int, periodic bool) (*Wave, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrDimension
	}
	if t == nil || t.Len() == 0 {
		return nil, ErrTableEmpty
	}
	if o == nil {
		return nil, ErrOracleNil
	}
	if o.Len() != t.Len() {
		return nil, ErrTableMismatch
	}

	var (
		size  = t.Len()
		d     = o.Directions()
		cells = width * height
		words = (size + 63) / 64
	)
	w := &Wave{
		width:      width,
		height:     height,
		size:       size,
		directions: d,
		periodic:   periodic,
		table:      t,
		oracle:     o,
		words:      words,
		possible:   make([]uint64, cells*words),
		counts:     make([]int, cells),
		sumW:       make([]float64, cells),
		sumWLogW:   make([]float64, cells),
		compat:     make([]uint16, cells*size*d),
		queue:      make([]banEntry, cells*size),
	}

	// Full bitset per cell; the last word masks off the unused high bits.
	full := make([]uint64, words)
	for i := range full {
		full[i] = ^uint64(0)
	}
	if rem := size & 63; rem != 0 {
		full[words-1] = (1 << uint(rem)) - 1
	}

	var (
		c, j, dir int
		base      int
	)
	for c = 0; c < cells; c++ {
		copy(w.possible[c*words:(c+1)*words], full)
		w.counts[c] = size
		w.sumW[c] = t.SumWeights
		w.sumWLogW[c] = t.SumWeightLogWeights
	}
	for c = 0; c < cells; c++ {
		base = c * size * d
		for j = 0; j < size; j++ {
			for dir = 0; dir < d; dir++ {
				w.compat[base+j*d+dir] = o.SupporterCount(j, dir)
			}
		}
	}
	if size == 1 {
		// A single-pattern table is decided everywhere from the start.
		w.decided = cells
	}

	return w, nil
}

// Width returns the output grid width. Complexity: O(1).
func (w *Wave) Width() int { return w.width }

// Height returns the output grid height. Complexity: O(1).
func (w *Wave) Height() int { return w.height }

// Decided returns how many cells hold exactly one pattern. Complexity: O(1).
func (w *Wave) Decided() int { return w.decided }

// index maps (x,y) to a row-major cell index: y*Width + x.
// Complexity: O(1).
func (w *Wave) index(x, y int) int {
	return y*w.width + x
}

// Coordinate converts a row-major cell index back to (x,y).
// Complexity: O(1).
func (w *Wave) Coordinate(cell int) (x, y int) {
	return cell % w.width, cell / w.width
}

// Possible reports whether pattern pat remains in cell's possibility set.
// Complexity: O(1).
func (w *Wave) Possible(cell, pat int) bool {
	return w.possible[cell*w.words+pat>>6]&(1<<uint(pat&63)) != 0
}

// PatternCount returns |P(cell)|, the number of remaining patterns.
// Complexity: O(1).
func (w *Wave) PatternCount(cell int) int {
	return w.counts[cell]
}

// Entropy returns the Shannon entropy of cell: ln(Σw) − (Σw·ln w)/Σw.
// It is exactly 0 when a single pattern remains. Calling it on an empty
// cell is the caller's contract violation; the observer never does.
// Complexity: O(1).
func (w *Wave) Entropy(cell int) float64 {
	if w.counts[cell] == 1 {
		return 0
	}

	return math.Log(w.sumW[cell]) - w.sumWLogW[cell]/w.sumW[cell]
}

// Ban removes pattern pat from cell's possibility set, updates the entropy
// counters, clears the pattern's support counters, and appends the
// elimination to the propagation worklist. Banning an already-absent
// pattern is a no-op. Returns ErrContradiction when the set empties,
// ErrCellIndex / ErrPatternRange on bad arguments.
//
// Complexity: O(D) (counter clear), amortized O(1) queue append.
func (w *Wave) Ban(cell, pat int) error {
	if cell < 0 || cell >= w.width*w.height {
		return ErrCellIndex
	}
	if pat < 0 || pat >= w.size {
		return ErrPatternRange
	}
	word := cell*w.words + pat>>6
	mask := uint64(1) << uint(pat&63)
	if w.possible[word]&mask == 0 {
		return nil
	}
	w.possible[word] &^= mask
	w.counts[cell]--

	wt := float64(w.table.Weights[pat])
	w.sumW[cell] -= wt
	w.sumWLogW[cell] -= wt * w.table.LogWeights[pat]

	// Zero the support counters so late decrements from in-flight worklist
	// entries cannot re-trigger a ban of an already-banned pattern.
	base := (cell*w.size + pat) * w.directions
	for d := 0; d < w.directions; d++ {
		w.compat[base+d] = 0
	}

	w.queue[w.tail] = banEntry{cell: int32(cell), pat: int32(pat)}
	w.tail++

	switch w.counts[cell] {
	case 0:
		return ErrContradiction
	case 1:
		w.decided++
	}

	return nil
}

// neighbor resolves the cell at offset (dx,dy) from cell. Periodic waves
// wrap modulo (W,H); otherwise ok=false marks an out-of-bounds neighbour
// the propagator must skip.
// Complexity: O(1).
func (w *Wave) neighbor(cell, dx, dy int) (int, bool) {
	x, y := cell%w.width, cell/w.width
	x += dx
	y += dy
	if w.periodic {
		x = ((x % w.width) + w.width) % w.width
		y = ((y % w.height) + w.height) % w.height

		return w.index(x, y), true
	}
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return 0, false
	}

	return w.index(x, y), true
}

// firstPattern returns the lowest-index pattern still possible in cell,
// or -1 for an empty cell.
// Complexity: O(T/64).
func (w *Wave) firstPattern(cell int) int {
	base := cell * w.words

	var wd int
	for wd = 0; wd < w.words; wd++ {
		if w.possible[base+wd] != 0 {
			return wd<<6 + bits.TrailingZeros64(w.possible[base+wd])
		}
	}

	return -1
}
