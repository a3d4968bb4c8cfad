package wfc_test

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collapse/bitmap"
	"github.com/katalvlaran/collapse/pattern"
	"github.com/katalvlaran/collapse/wfc"
)

// canvas builds a Palettized from raw index data.
func canvas(t testing.TB, w, h int, pixels []uint8) *bitmap.Palettized {
	t.Helper()
	pal := []color.NRGBA{
		{A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 255, A: 255},
		{G: 255, A: 255},
	}
	img, err := bitmap.New(w, h, pal)
	require.NoError(t, err)
	require.Len(t, pixels, w*h)
	copy(img.Pixels, pixels)

	return img
}

// checkerTable extracts the two-tile checkerboard model (N=2, equal weights).
func checkerTable(t testing.TB) (*pattern.Table, *pattern.Oracle) {
	t.Helper()
	table, err := pattern.Extract(canvas(t, 2, 2, []uint8{0, 1, 1, 0}), pattern.ExtractOptions{
		TileSize:      2,
		Symmetry:      1,
		PeriodicInput: true,
	})
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	return table, pattern.NewOracle(table)
}

// uniformTable extracts the single-pattern model of a solid exemplar.
func uniformTable(t testing.TB) (*pattern.Table, *pattern.Oracle) {
	t.Helper()
	table, err := pattern.Extract(canvas(t, 4, 4, make([]uint8, 16)), pattern.ExtractOptions{
		TileSize:      3,
		Symmetry:      1,
		PeriodicInput: true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	return table, pattern.NewOracle(table)
}

// solidTable hand-builds a table of k solid-color N=2 tiles with unit
// weights. Distinct solids never agree on any overlap, so the model admits
// exactly the k single-color outputs.
func solidTable(t testing.TB, k int) (*pattern.Table, *pattern.Oracle) {
	t.Helper()
	require.LessOrEqual(t, k, 4)

	table := &pattern.Table{TileSize: 2}
	for c := 0; c < k; c++ {
		v := uint8(c)
		table.Patterns = append(table.Patterns, pattern.Pattern{v, v, v, v})
		table.Weights = append(table.Weights, 1)
		table.LogWeights = append(table.LogWeights, 0) // ln 1
	}
	table.SumWeights = float64(k)
	table.SumWeightLogWeights = 0

	return table, pattern.NewOracle(table)
}

// knotTable extracts a structured multi-color model with full D4 symmetry.
func knotTable(t testing.TB) (*pattern.Table, *pattern.Oracle) {
	t.Helper()
	table, err := pattern.Extract(canvas(t, 6, 6, []uint8{
		0, 0, 1, 1, 0, 0,
		0, 2, 1, 1, 2, 0,
		1, 1, 3, 3, 1, 1,
		1, 1, 3, 3, 1, 1,
		0, 2, 1, 1, 2, 0,
		0, 0, 1, 1, 0, 0,
	}), pattern.ExtractOptions{
		TileSize:      3,
		Symmetry:      8,
		PeriodicInput: true,
	})
	require.NoError(t, err)

	return table, pattern.NewOracle(table)
}

// assertArcConsistent recounts every support counter of every possible
// pattern from the oracle and the neighbours' possibility sets.
func assertArcConsistent(t *testing.T, w *wfc.Wave, table *pattern.Table, o *pattern.Oracle) {
	t.Helper()
	var (
		cells = w.Width() * w.Height()
		size  = table.Len()
	)
	for c := 0; c < cells; c++ {
		for j := 0; j < size; j++ {
			if !w.Possible(c, j) {
				continue
			}
			for d, off := range o.Offsets() {
				nb, ok := w.NeighborAt(c, off[0], off[1])
				if !ok {
					continue
				}
				want := uint16(0)
				for i := 0; i < size; i++ {
					if w.Possible(nb, i) && o.Supports(j, i, d) {
						want++
					}
				}
				assert.Equal(t, want, w.SupportCount(c, j, d),
					"cell=%d pattern=%d offset=%v", c, j, off)
			}
		}
	}
}

// assertEntropyCounters recomputes the per-cell (Σw, Σw·ln w) pair.
func assertEntropyCounters(t *testing.T, w *wfc.Wave, table *pattern.Table) {
	t.Helper()
	cells := w.Width() * w.Height()
	for c := 0; c < cells; c++ {
		var wantW, wantWLogW float64
		for i := 0; i < table.Len(); i++ {
			if w.Possible(c, i) {
				wantW += float64(table.Weights[i])
				wantWLogW += float64(table.Weights[i]) * table.LogWeights[i]
			}
		}
		sumW, sumWLogW := w.SumWeights(c)
		assert.InDelta(t, wantW, sumW, 1e-9, "cell %d Σw", c)
		assert.InDelta(t, wantWLogW, sumWLogW, 1e-9, "cell %d Σw·ln w", c)
	}
}

// wfcTestRNG returns the deterministic RNG used by manual driver tests.
func wfcTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// totalEntropy sums every cell's entropy.
func totalEntropy(w *wfc.Wave) float64 {
	var sum float64
	for c := 0; c < w.Width()*w.Height(); c++ {
		sum += w.Entropy(c)
	}

	return sum
}
