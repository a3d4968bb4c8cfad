package wfc

import (
	"github.com/katalvlaran/collapse/pattern"
)

// Solve runs the full observe→propagate state machine over a fresh wave
// and returns the decided grid.
//
// Contracts:
//   - table and oracle must come from the same Extract/NewOracle pair.
//   - width, height ≥ 1.
//
// The loop checks opts.Ctx between observation steps (never inside a
// propagation fixpoint); a fired context surfaces as ErrCancelled, distinct
// from ErrContradiction. OnProgress, when set, runs after every completed
// step with (decided, total).
//
// Errors: ErrDimension, ErrTableEmpty, ErrOracleNil, ErrTableMismatch,
// ErrContradiction, ErrCancelled.
//
// Complexity: O(W·H·T·D) propagation work total plus O((W·H)²) scan work
// across all observations.
func Solve(table *pattern.Table, oracle *pattern.Oracle, width, height int, opts ...Option) (*Result, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	wave, err := NewWave(table, oracle, width, height, options.PeriodicOutput)
	if err != nil {
		return nil, err
	}

	var (
		rng   = rngFromSeed(options.Seed)
		total = width * height
		obs   Observation
	)
	for {
		if options.Ctx.Err() != nil {
			return nil, ErrCancelled
		}

		obs, err = wave.Observe(rng)
		if err != nil {
			return nil, err
		}
		if obs.Done {
			return wave.result(), nil
		}

		if err = wave.Propagate(); err != nil {
			return nil, err
		}
		if options.OnProgress != nil {
			options.OnProgress(wave.Decided(), total)
		}
	}
}

// result snapshots a fully-decided wave into a Result. Caller guarantees
// every cell holds exactly one pattern.
func (w *Wave) result() *Result {
	cells := make([]int, w.width*w.height)
	for c := range cells {
		cells[c] = w.firstPattern(c)
	}

	return &Result{
		Width:  w.width,
		Height: w.height,
		Cells:  cells,
	}
}

// Render maps every decided cell to its pattern's top-left palette index,
// producing the row-major pixel stream of the output image.
//
// Complexity: O(W·H).
func (r *Result) Render(table *pattern.Table) ([]uint8, error) {
	if table == nil || table.Len() == 0 {
		return nil, ErrTableEmpty
	}
	out := make([]uint8, len(r.Cells))

	var (
		v   uint8
		err error
	)
	for c, p := range r.Cells {
		if v, err = table.TopLeft(p); err != nil {
			return nil, err
		}
		out[c] = v
	}

	return out, nil
}
