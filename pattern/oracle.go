package pattern

// Oracle is the precomputed pairwise compatibility tensor. For pattern
// indices i, j and direction index d (one of the D = (2N−1)²−1 non-zero
// offsets), Supports(i, j, d) reports whether placing i at some cell and j
// at cell+Offsets()[d] agree on every pixel of their overlap. The tensor is
// a flat row-major bit buffer indexed (i·T+j)·D+d; it is immutable once
// built and safe for shared reads.
type Oracle struct {
	size       int      // T, number of patterns
	tile       int      // N, pattern side length
	offsets    [][2]int // the D non-zero offsets, fixed enumeration order
	opposite   []int    // opposite[d] is the index of −Offsets()[d]
	bits       []uint64 // packed compatibility tensor
	supporters []uint16 // supporters[j*D+d] = |{i : Supports(j, i, d)}|
}

// NewOracle precomputes the compatibility tensor for every ordered pattern
// pair of t at every non-zero offset, plus the per-(pattern, direction)
// supporter counts that seed a fresh wave's K counters.
//
// Complexity: O(T²·D·N²) time, O(T²·D) bits + O(T·D) counters of memory.
func NewOracle(t *Table) *Oracle {
	var (
		size = t.Len()
		n    = t.TileSize
	)
	o := &Oracle{
		size:    size,
		tile:    n,
		offsets: enumerateOffsets(n),
	}
	d := len(o.offsets)
	o.opposite = make([]int, d)
	o.bits = make([]uint64, (size*size*d+63)/64)
	o.supporters = make([]uint16, size*d)

	// Opposite lookup: offsets are enumerated symmetrically around (0,0),
	// so −offsets[k] is found by a direct scan once at construction.
	var k, m int
	for k = 0; k < d; k++ {
		for m = 0; m < d; m++ {
			if o.offsets[m][0] == -o.offsets[k][0] && o.offsets[m][1] == -o.offsets[k][1] {
				o.opposite[k] = m

				break
			}
		}
	}

	var (
		i, j int
		bit  int
	)
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			for k = 0; k < d; k++ {
				if overlaps(t.Patterns[i], t.Patterns[j], n, o.offsets[k][0], o.offsets[k][1]) {
					bit = (i*size+j)*d + k
					o.bits[bit>>6] |= 1 << uint(bit&63)
					o.supporters[i*d+k]++
				}
			}
		}
	}

	return o
}

// Len returns T, the number of patterns the oracle was built over.
// Complexity: O(1).
func (o *Oracle) Len() int { return o.size }

// Directions returns D, the number of non-zero offsets.
// Complexity: O(1).
func (o *Oracle) Directions() int { return len(o.offsets) }

// Offsets returns the fixed offset enumeration; index d of every
// Supports/SupporterCount call refers into this slice. Callers must not
// mutate it.
// Complexity: O(1).
func (o *Oracle) Offsets() [][2]int { return o.offsets }

// Opposite returns the direction index of the negated offset:
// Offsets()[Opposite(d)] == −Offsets()[d].
// Complexity: O(1).
func (o *Oracle) Opposite(d int) int { return o.opposite[d] }

// Supports reports whether pattern j may sit at offset Offsets()[d] from
// pattern i. This is the solver's innermost test; it compiles to two shifts
// and a mask.
// Complexity: O(1).
func (o *Oracle) Supports(i, j, d int) bool {
	bit := (i*o.size+j)*len(o.offsets) + d

	return o.bits[bit>>6]&(1<<uint(bit&63)) != 0
}

// SupporterCount returns |{i : Supports(j, i, d)}| — how many patterns may
// occupy the d-neighbor of a cell holding j. A fresh wave writes this value
// into every cell's K[j][d] counter.
// Complexity: O(1).
func (o *Oracle) SupporterCount(j, d int) uint16 {
	return o.supporters[j*len(o.offsets)+d]
}

// enumerateOffsets lists every (dx,dy) with |dx|,|dy| < n except (0,0), in
// row-major order from (−n+1,−n+1). The order is part of the oracle's
// contract: direction indices are stable across runs.
func enumerateOffsets(n int) [][2]int {
	out := make([][2]int, 0, (2*n-1)*(2*n-1)-1)

	var dx, dy int
	for dy = -n + 1; dy < n; dy++ {
		for dx = -n + 1; dx < n; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, [2]int{dx, dy})
		}
	}

	return out
}

// overlaps reports whether patterns a and b agree at
// offset (dx,dy) iff a[x+dx, y+dy] == b[x, y] for every (x,y) keeping both
// lookups inside the N×N tile.
func overlaps(a, b Pattern, n, dx, dy int) bool {
	var (
		xmin, xmax = 0, n
		ymin, ymax = 0, n
	)
	if dx > 0 {
		xmax = n - dx
	} else {
		xmin = -dx
	}
	if dy > 0 {
		ymax = n - dy
	} else {
		ymin = -dy
	}

	var x, y int
	for y = ymin; y < ymax; y++ {
		for x = xmin; x < xmax; x++ {
			if a[(y+dy)*n+(x+dx)] != b[y*n+x] {
				return false
			}
		}
	}

	return true
}
