// Command wfc synthesizes a new texture from a BMP exemplar using the
// overlapping Wave Function Collapse solver.
//
// Usage:
//
//	wfc -in Knot.bmp -out out.bmp -n 3 -width 48 -height 48 -symmetry 8 -seed 7
//
// Exit codes:
//
//	0 success
//	1 I/O error (load/save)
//	2 contradiction — no solution was found for this seed
//	3 invalid configuration
package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/collapse/bitmap"
	"github.com/katalvlaran/collapse/pattern"
	"github.com/katalvlaran/collapse/wfc"
)

const (
	exitOK            = 0
	exitIO            = 1
	exitContradiction = 2
	exitConfig        = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("wfc", flag.ContinueOnError)
	var (
		inPath      = fs.String("in", "Knot.bmp", "exemplar BMP path")
		outPath     = fs.String("out", "out.bmp", "output BMP path")
		tileSize    = fs.Int("n", 3, "pattern side length N")
		outW        = fs.Int("width", 48, "output width in pixels")
		outH        = fs.Int("height", 48, "output height in pixels")
		symmetry    = fs.Int("symmetry", 8, "dihedral variants per window: 1, 2, 4 or 8")
		periodicIn  = fs.Bool("periodic-in", true, "wrap pattern extraction over the exemplar")
		periodicOut = fs.Bool("periodic-out", true, "synthesize the output on a torus")
		seed        = fs.Int64("seed", 0, "RNG seed; 0 draws one from the OS and logs it")
	)
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if *outW <= 0 || *outH <= 0 {
		log.Print("width and height must be positive")

		return exitConfig
	}

	runSeed := *seed
	if runSeed == 0 {
		runSeed = drawSeed()
		log.Printf("seed: %d", runSeed)
	}

	img, err := bitmap.Load(*inPath)
	if err != nil {
		log.Print(err)

		return exitIO
	}
	exemplar, err := bitmap.Palettize(img)
	if err != nil {
		log.Print(err)

		return exitConfig
	}

	table, err := pattern.Extract(exemplar, pattern.ExtractOptions{
		TileSize:      *tileSize,
		Symmetry:      *symmetry,
		PeriodicInput: *periodicIn,
	})
	if err != nil {
		log.Print(err)

		return exitConfig
	}
	log.Printf("exemplar %dx%d, %d colors, %d patterns",
		exemplar.Width, exemplar.Height, len(exemplar.Palette), table.Len())

	oracle := pattern.NewOracle(table)

	res, err := wfc.Solve(table, oracle, *outW, *outH,
		wfc.WithSeed(runSeed),
		wfc.WithPeriodicOutput(*periodicOut),
		wfc.WithOnProgress(progressLogger(*outW**outH)),
	)
	switch {
	case errors.Is(err, wfc.ErrContradiction):
		log.Print("no solution found: ", err)

		return exitContradiction
	case err != nil:
		log.Print(err)

		return exitConfig
	}

	pixels, err := res.Render(table)
	if err != nil {
		log.Print(err)

		return exitConfig
	}
	out, err := bitmap.New(*outW, *outH, exemplar.Palette)
	if err != nil {
		log.Print(err)

		return exitConfig
	}
	copy(out.Pixels, pixels)

	if err = bitmap.Save(*outPath, out); err != nil {
		log.Print(err)

		return exitIO
	}
	log.Printf("wrote %s (%dx%d)", *outPath, *outW, *outH)

	return exitOK
}

// progressLogger reports decided-cell progress at 10% steps.
func progressLogger(total int) func(decided, _ int) {
	next := total / 10
	if next == 0 {
		next = 1
	}
	step := next

	return func(decided, _ int) {
		if decided >= next {
			log.Printf("progress: %d/%d cells", decided, total)
			for next <= decided {
				next += step
			}
		}
	}
}

// drawSeed pulls a 32-bit seed from the OS entropy source, matching the
// configuration contract: absent seeds are random but logged.
func drawSeed() int64 {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		// Entropy failure leaves the deterministic default seed policy.
		fmt.Fprintln(os.Stderr, "wfc: entropy source unavailable, using default seed")

		return 0
	}
	s := int64(binary.LittleEndian.Uint32(b[:]))
	if s == 0 {
		s = 1
	}

	return s
}
