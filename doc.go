// Package collapse is an in-memory toolkit for overlapping Wave Function
// Collapse texture synthesis — from bitmap palettization to the
// entropy-driven constraint solver.
//
// 🚀 What is collapse?
//
//	A deterministic, allocation-disciplined library that turns a small
//	exemplar bitmap into an arbitrarily large output whose every N×N tile
//	occurs somewhere in the exemplar:
//		• bitmap/  — BMP decoding/encoding and first-occurrence palettization
//		• pattern/ — N×N pattern extraction (D4 symmetry variants, weights)
//		             and the pairwise overlap-compatibility oracle
//		• wfc/     — the core: wave state, lowest-entropy observer,
//		             arc-consistency propagator, and the run-to-completion driver
//		• cmd/wfc/     — command-line shell
//		• cmd/wfcview/ — tiny viewer for generated bitmaps
//
// ✨ Why choose collapse?
//
//   - Reproducible – same seed, same inputs ⇒ byte-identical output
//   - Rock-solid guarantees – sentinel errors, no panics, no hidden state
//   - Hot-loop discipline – all wave memory allocated once at construction
//   - Extensible – functional options (WithSeed, WithContext, WithOnProgress…)
//
// Quick ASCII sketch of one solver step:
//
//	observe: pick the lowest-entropy cell, collapse it to one pattern
//	propagate: eliminate unsupported neighbours until quiescent
//	repeat until every cell is decided, or a cell runs empty
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/collapse
package collapse
