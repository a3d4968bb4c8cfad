package bitmap

import (
	"image"
	"image/color"
)

// Palettize flattens img into a Palettized, assigning palette indices in
// first-occurrence order while scanning rows top to bottom, pixels left to
// right. Returns ErrEmptyImage for a degenerate source and
// ErrPaletteOverflow when the image uses more than MaxPaletteSize colors.
//
// Complexity: O(W·H) time, O(W·H) memory.
func Palettize(img image.Image) (*Palettized, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	p := &Palettized{
		Width:   w,
		Height:  h,
		Palette: make([]color.NRGBA, 0, 16),
		Pixels:  make([]uint8, w*h),
	}
	// Index of each seen color; keys are premultiplied-free NRGBA values.
	seen := make(map[color.NRGBA]uint8, 16)

	var (
		x, y int
		c    color.NRGBA
		idx  uint8
		ok   bool
	)
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			c = color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if idx, ok = seen[c]; !ok {
				if len(p.Palette) >= MaxPaletteSize {
					return nil, ErrPaletteOverflow
				}
				idx = uint8(len(p.Palette))
				p.Palette = append(p.Palette, c)
				seen[c] = idx
			}
			p.Pixels[y*w+x] = idx
		}
	}

	return p, nil
}

// New allocates a blank Palettized of the given dimensions sharing palette.
// Every pixel starts at index 0. Returns ErrEmptyImage for non-positive
// dimensions and ErrPaletteEmpty for an empty palette.
//
// Complexity: O(W·H).
func New(w, h int, palette []color.NRGBA) (*Palettized, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}
	if len(palette) == 0 {
		return nil, ErrPaletteEmpty
	}
	pal := make([]color.NRGBA, len(palette))
	copy(pal, palette)

	return &Palettized{
		Width:   w,
		Height:  h,
		Palette: pal,
		Pixels:  make([]uint8, w*h),
	}, nil
}

// InBounds reports whether (x,y) lies within the image rectangle.
// Complexity: O(1).
func (p *Palettized) InBounds(x, y int) bool {
	return x >= 0 && x < p.Width && y >= 0 && y < p.Height
}

// At returns the palette index of pixel (x,y).
// Returns ErrBounds when (x,y) is outside the image.
// Complexity: O(1).
func (p *Palettized) At(x, y int) (uint8, error) {
	if !p.InBounds(x, y) {
		return 0, ErrBounds
	}

	return p.Pixels[y*p.Width+x], nil
}

// Set writes palette index v at pixel (x,y).
// Returns ErrBounds when (x,y) is outside the image and ErrPaletteEmpty-class
// misuse is left to the caller (v is not range-checked against Palette so
// that output canvases can be filled before their palette is trimmed).
// Complexity: O(1).
func (p *Palettized) Set(x, y int, v uint8) error {
	if !p.InBounds(x, y) {
		return ErrBounds
	}
	p.Pixels[y*p.Width+x] = v

	return nil
}

// Image materializes the Palettized as an *image.Paletted, ready for any
// standard encoder.
// Complexity: O(W·H).
func (p *Palettized) Image() *image.Paletted {
	pal := make(color.Palette, len(p.Palette))
	for i, c := range p.Palette {
		pal[i] = c
	}
	img := image.NewPaletted(image.Rect(0, 0, p.Width, p.Height), pal)
	copy(img.Pix, p.Pixels)

	return img
}
