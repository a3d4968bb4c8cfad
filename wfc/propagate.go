package wfc

import "math/bits"

// Propagate drains the elimination worklist to its arc-consistency
// fixpoint. For every popped (cell, pat) and every direction d, the
// neighbour at offset d lost one supporter for each of its patterns j that
// overlaps-agrees with pat; the matching counter K(neighbour)[j][opposite(d)]
// is decremented, and j is banned the moment its support reaches zero —
// which pushes further worklist entries.
//
// The worklist is FIFO; every ban strictly shrinks a finite bitset, so the
// fixpoint terminates in O(W·H·T·D) total work across an entire run.
// Running Propagate on an already-quiescent wave performs zero bans.
//
// Returns ErrContradiction as soon as any cell's possibility set empties;
// the remaining worklist is irrelevant then, as the run is terminal.
func (w *Wave) Propagate() error {
	var (
		offsets = w.oracle.Offsets()
		e       banEntry
		cell    int
		pat     int
		d, od   int
		nb      int
		ok      bool
		base    int
		word    uint64
		wd      int
		j       int
		idx     int
		err     error
	)
	for w.head < w.tail {
		e = w.queue[w.head]
		w.head++
		cell, pat = int(e.cell), int(e.pat)

		for d = 0; d < w.directions; d++ {
			nb, ok = w.neighbor(cell, offsets[d][0], offsets[d][1])
			if !ok {
				continue
			}
			od = w.oracle.Opposite(d)
			base = nb * w.words
			for wd = 0; wd < w.words; wd++ {
				word = w.possible[base+wd]
				for word != 0 {
					j = wd<<6 + bits.TrailingZeros64(word)
					word &= word - 1
					if !w.oracle.Supports(pat, j, d) {
						continue
					}
					idx = (nb*w.size+j)*w.directions + od
					w.compat[idx]--
					if w.compat[idx] == 0 {
						if err = w.Ban(nb, j); err != nil {
							return err
						}
					}
				}
			}
		}
	}

	return nil
}
