// Package pattern builds the read-only inputs of the wave solver: the
// weighted table of N×N tiles sliced out of a palettized exemplar, and the
// pairwise overlap-compatibility oracle over those tiles.
//
// What
//
//   - Extract: slide an N×N window over the exemplar (wrapping when
//     PeriodicInput), optionally emit rotated/reflected variants per the
//     Symmetry setting, and count occurrences. Each distinct tile becomes a
//     Pattern with a stable index assigned in first-appearance order; every
//     variant occurrence adds exactly one to its own pattern's weight.
//   - Table: the immutable result — patterns, integer weights, precomputed
//     log-weights and the two global sums (Σw, Σw·ln w) the wave seeds its
//     entropy counters from.
//   - NewOracle: precompute, for every ordered pattern pair (i,j) and every
//     offset (dx,dy) with |dx|,|dy| < N and (dx,dy) ≠ (0,0), whether placing
//     i at a cell and j at cell+(dx,dy) agree on their overlap. Stored as a
//     flat row-major bit tensor indexed (i·T+j)·D+d, answering
//     Supports(i,j,d) with two shifts and a mask.
//
// Why
//
//	The solver performs millions of compatibility tests per run; a packed,
//	precomputed tensor keeps each test branch-free and cache-friendly, and
//	freezing the table before the wave exists makes the hot loop read-only
//	over shared data.
//
// Determinism
//
//	Window scan order and the canonical reflect/rotate variant interleaving
//	are fixed, so identical exemplars and options always produce identical
//	tables and oracles.
//
// Symmetry law
//
//	Supports(i,j,d) == Supports(j,i,opposite(d)) holds for every pair by the
//	overlap definition; Opposite(d) returns the index of offset (−dx,−dy).
//
// Errors
//
//   - ErrNilImage         if the exemplar is nil.
//   - ErrTileSize         if TileSize < 1 or exceeds the exemplar's sides.
//   - ErrSymmetry         if Symmetry is not one of 1, 2, 4, 8.
//   - ErrTooManyPatterns  if more than MaxPatterns distinct tiles appear.
//
// Complexity
//
//	Extract:   O(W·H·S·N²) time over the exemplar (S = symmetry count).
//	NewOracle: O(T²·D·N²) time, O(T²·D) bits of memory,
//	           with D = (2N−1)²−1 offsets.
package pattern
