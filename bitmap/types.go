// Package bitmap defines the palettized image type and sentinel errors
// shared by the loader and writer.
package bitmap

import (
	"errors"
	"image/color"
)

// MaxPaletteSize bounds the number of distinct colors a Palettized may
// carry. Indices are stored as uint8, so 256 is a hard ceiling.
const MaxPaletteSize = 256

// Sentinel errors for bitmap operations.
var (
	// ErrEmptyImage indicates a source image with zero width or height.
	ErrEmptyImage = errors.New("bitmap: image must have positive width and height")

	// ErrPaletteOverflow indicates more than MaxPaletteSize distinct colors.
	ErrPaletteOverflow = errors.New("bitmap: too many distinct colors for palette")

	// ErrBounds indicates a pixel access outside the image rectangle.
	ErrBounds = errors.New("bitmap: pixel coordinates out of bounds")

	// ErrPaletteEmpty indicates a palette with no entries where one is required.
	ErrPaletteEmpty = errors.New("bitmap: palette must contain at least one color")
)

// Palettized is an image flattened to palette indices. Pixels is row-major:
// the index of pixel (x,y) lives at Pixels[y*Width+x]. Palette[i] is the
// color behind index i. The zero value is not usable; construct via
// Palettize or New.
type Palettized struct {
	Width, Height int
	Palette       []color.NRGBA
	Pixels        []uint8
}
