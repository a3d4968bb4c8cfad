// Command wfcview displays a BMP — typically the output of the wfc command —
// in a window, integer-scaled for inspection of small synthesized textures.
// The display is static; it never animates solver state.
//
// Usage:
//
//	wfcview -in out.bmp -scale 8
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/collapse/bitmap"
)

var (
	inPath = flag.String("in", "out.bmp", "BMP path to display")
	scale  = flag.Int("scale", 8, "integer upscale factor")
)

// viewer is a minimal ebiten.Game around one immutable texture.
type viewer struct {
	tex  *ebiten.Image
	w, h int
}

func (v *viewer) Update() error { return nil }

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.tex, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) { return v.w, v.h }

func main() {
	flag.Parse()
	if *scale < 1 {
		*scale = 1
	}

	img, err := bitmap.Load(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	bounds := img.Bounds()

	v := &viewer{
		tex: ebiten.NewImageFromImage(img),
		w:   bounds.Dx(),
		h:   bounds.Dy(),
	}
	ebiten.SetWindowSize(bounds.Dx()**scale, bounds.Dy()**scale)
	ebiten.SetWindowTitle(*inPath)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
