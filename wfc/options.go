package wfc

import "context"

// Option configures Solve via functional arguments.
type Option func(*SolveOptions)

// SolveOptions holds parameters controlling one synthesis run.
type SolveOptions struct {
	// Seed drives the deterministic RNG. Seed 0 selects the fixed default
	// seed (see rng.go); callers wanting fresh output per run must supply
	// their own entropy.
	Seed int64

	// PeriodicOutput wraps neighbour lookup modulo (W,H), so the output is
	// synthesized on a torus.
	PeriodicOutput bool

	// Ctx allows cooperative cancellation, checked between observation
	// steps (never inside a propagation fixpoint).
	Ctx context.Context

	// OnProgress, when non-nil, is called after every completed
	// observe/propagate step with the number of decided cells and the
	// total cell count.
	OnProgress func(decided, total int)
}

// DefaultOptions returns a SolveOptions with sane defaults:
//   - Seed 0 (fixed default seed)
//   - non-periodic output
//   - context.Background()
//   - no progress reporting.
func DefaultOptions() SolveOptions {
	return SolveOptions{
		Seed:           0,
		PeriodicOutput: false,
		Ctx:            context.Background(),
		OnProgress:     nil,
	}
}

// WithSeed sets the RNG seed. Same seed, same inputs ⇒ identical output.
func WithSeed(seed int64) Option {
	return func(o *SolveOptions) {
		o.Seed = seed
	}
}

// WithPeriodicOutput toggles toroidal neighbour lookup.
func WithPeriodicOutput(periodic bool) Option {
	return func(o *SolveOptions) {
		o.PeriodicOutput = periodic
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SolveOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnProgress registers a progress callback; it must be cheap, as it
// runs once per observation step.
func WithOnProgress(fn func(decided, total int)) Option {
	return func(o *SolveOptions) {
		if fn != nil {
			o.OnProgress = fn
		}
	}
}
