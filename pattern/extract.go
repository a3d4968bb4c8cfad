package pattern

import (
	"math"

	"github.com/katalvlaran/collapse/bitmap"
)

// Extract slides an N×N window over the exemplar and builds the weighted
// pattern table. When opts.PeriodicInput is true every (x,y) in
// [0,W)×[0,H) anchors a window (wrapping modulo the exemplar size);
// otherwise only windows fully inside the exemplar are taken. Each window
// contributes opts.Symmetry dihedral variants, and every variant occurrence
// adds one to its own pattern's weight. Pattern indices are assigned in
// first-appearance order, which makes extraction fully deterministic.
//
// Returns ErrNilImage, ErrTileSize, ErrSymmetry or ErrTooManyPatterns.
//
// Complexity: O(W·H·S·N²) time, O(T·N²) memory.
func Extract(img *bitmap.Palettized, opts ExtractOptions) (*Table, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	n := opts.TileSize
	if n < 1 || n > img.Width || n > img.Height {
		return nil, ErrTileSize
	}
	switch opts.Symmetry {
	case 1, 2, 4, 8:
	default:
		return nil, ErrSymmetry
	}

	// Anchor range: wrapping windows cover every pixel; clamped windows stop
	// N-1 short of the right/bottom edges.
	maxX, maxY := img.Width, img.Height
	if !opts.PeriodicInput {
		maxX = img.Width - n + 1
		maxY = img.Height - n + 1
	}

	t := &Table{TileSize: n}
	index := make(map[string]int)

	var (
		x, y     int
		v        int
		base     Pattern
		variants [8]Pattern
	)
	for y = 0; y < maxY; y++ {
		for x = 0; x < maxX; x++ {
			base = window(img, x, y, n)

			// Canonical D4 interleaving: reflect, then rotate the previous
			// rotation, then reflect it again, and so on.
			variants[0] = base
			variants[1] = reflect(variants[0], n)
			variants[2] = rotate(variants[0], n)
			variants[3] = reflect(variants[2], n)
			variants[4] = rotate(variants[2], n)
			variants[5] = reflect(variants[4], n)
			variants[6] = rotate(variants[4], n)
			variants[7] = reflect(variants[6], n)

			for v = 0; v < opts.Symmetry; v++ {
				if err := t.add(variants[v], index); err != nil {
					return nil, err
				}
			}
		}
	}

	t.finalize()

	return t, nil
}

// add registers one occurrence of p, creating a new pattern index on first
// sight. Fails with ErrTooManyPatterns past MaxPatterns.
func (t *Table) add(p Pattern, index map[string]int) error {
	key := string(p)
	if i, ok := index[key]; ok {
		t.Weights[i]++

		return nil
	}
	if len(t.Patterns) >= MaxPatterns {
		return ErrTooManyPatterns
	}
	index[key] = len(t.Patterns)
	t.Patterns = append(t.Patterns, p)
	t.Weights = append(t.Weights, 1)

	return nil
}

// finalize caches log-weights and the two global sums the wave seeds its
// per-cell entropy counters from.
func (t *Table) finalize() {
	t.LogWeights = make([]float64, len(t.Weights))

	var (
		i int
		w float64
	)
	for i = range t.Weights {
		w = float64(t.Weights[i])
		t.LogWeights[i] = math.Log(w)
		t.SumWeights += w
		t.SumWeightLogWeights += w * t.LogWeights[i]
	}
}

// window copies the N×N tile anchored at (x,y), wrapping modulo the
// exemplar size. Anchors produced by Extract guarantee in-bounds reads in
// the non-periodic case, so wrapping is then a no-op.
func window(img *bitmap.Palettized, x, y, n int) Pattern {
	p := make(Pattern, n*n)

	var dx, dy, sx, sy int
	for dy = 0; dy < n; dy++ {
		sy = (y + dy) % img.Height
		for dx = 0; dx < n; dx++ {
			sx = (x + dx) % img.Width
			p[dy*n+dx] = img.Pixels[sy*img.Width+sx]
		}
	}

	return p
}

// rotate returns p turned 90° counter-clockwise: out(x,y) = p(N-1-y, x).
func rotate(p Pattern, n int) Pattern {
	out := make(Pattern, n*n)

	var x, y int
	for y = 0; y < n; y++ {
		for x = 0; x < n; x++ {
			out[y*n+x] = p[x*n+(n-1-y)]
		}
	}

	return out
}

// reflect returns p mirrored horizontally: out(x,y) = p(N-1-x, y).
func reflect(p Pattern, n int) Pattern {
	out := make(Pattern, n*n)

	var x, y int
	for y = 0; y < n; y++ {
		for x = 0; x < n; x++ {
			out[y*n+x] = p[y*n+(n-1-x)]
		}
	}

	return out
}
