// Package pattern defines the table/oracle types, tunable extraction
// options, and sentinel errors.
package pattern

import "errors"

// MaxPatterns bounds the number of distinct patterns a Table may hold.
// The wave stores per-pattern support counters as uint16, so every count
// stays well inside that range as long as T ≤ MaxPatterns.
const MaxPatterns = 4096

// Sentinel errors for table and oracle construction.
var (
	// ErrNilImage indicates a nil exemplar.
	ErrNilImage = errors.New("pattern: exemplar image is nil")

	// ErrTileSize indicates TileSize < 1 or larger than an exemplar side.
	ErrTileSize = errors.New("pattern: tile size must be ≥ 1 and fit the exemplar")

	// ErrSymmetry indicates a Symmetry value outside {1, 2, 4, 8}.
	ErrSymmetry = errors.New("pattern: symmetry must be 1, 2, 4 or 8")

	// ErrTooManyPatterns indicates the exemplar produced more than
	// MaxPatterns distinct tiles.
	ErrTooManyPatterns = errors.New("pattern: distinct pattern count exceeds limit")

	// ErrPatternIndex indicates a pattern index outside [0, Table.Len()).
	ErrPatternIndex = errors.New("pattern: pattern index out of range")
)

// Pattern is one N×N tile of palette indices, row-major: the pixel at
// (x,y) lives at index y*N+x.
type Pattern []uint8

// ExtractOptions contains tunable parameters for pattern extraction.
type ExtractOptions struct {
	// TileSize is the pattern side length N, typically 2 or 3.
	TileSize int

	// Symmetry selects how many dihedral variants each window contributes:
	// 1 identity only, 2 +horizontal reflection, 4 +90° rotations, 8 full D4.
	Symmetry int

	// PeriodicInput wraps the sliding window modulo the exemplar size, so
	// tiles crossing the right/bottom edge are sampled too.
	PeriodicInput bool
}

// DefaultExtractOptions returns the conventional overlapping-model setup:
// TileSize=3, identity symmetry only, periodic input.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		TileSize:      3,
		Symmetry:      1,
		PeriodicInput: true,
	}
}

// Table is the immutable, ordered collection of distinct patterns with
// their observed frequencies. Construct via Extract; fields are exported
// for read access only and must not be mutated once a wave exists.
type Table struct {
	// TileSize is the common side length N of every pattern.
	TileSize int

	// Patterns[i] is the tile behind pattern index i.
	Patterns []Pattern

	// Weights[i] ≥ 1 is the occurrence count of pattern i.
	Weights []int

	// LogWeights[i] caches ln(Weights[i]).
	LogWeights []float64

	// SumWeights is Σ Weights[i]; SumWeightLogWeights is Σ Weights[i]·ln Weights[i].
	// Both seed every freshly-built wave cell.
	SumWeights          float64
	SumWeightLogWeights float64
}

// Len returns the number of distinct patterns T.
// Complexity: O(1).
func (t *Table) Len() int { return len(t.Patterns) }

// Pixel returns the palette index at (x,y) of pattern i.
// Returns ErrPatternIndex when i is out of range; coordinates are the
// caller's contract (0 ≤ x,y < TileSize).
// Complexity: O(1).
func (t *Table) Pixel(i, x, y int) (uint8, error) {
	if i < 0 || i >= len(t.Patterns) {
		return 0, ErrPatternIndex
	}

	return t.Patterns[i][y*t.TileSize+x], nil
}

// TopLeft returns the palette index of pattern i's (0,0) pixel — the value
// a decided cell contributes to the output image.
// Returns ErrPatternIndex when i is out of range.
// Complexity: O(1).
func (t *Table) TopLeft(i int) (uint8, error) {
	if i < 0 || i >= len(t.Patterns) {
		return 0, ErrPatternIndex
	}

	return t.Patterns[i][0], nil
}
