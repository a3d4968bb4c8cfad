package bitmap

import (
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// Decode reads a BMP stream into an image.Image.
// Codec failures are returned wrapped.
func Decode(r io.Reader) (image.Image, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: decode: %w", err)
	}

	return img, nil
}

// Load opens path and decodes it as BMP.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bitmap: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes p to w as a BMP. The image is handed to the codec as an
// *image.Paletted, which it stores as an 8-bit indexed BMP with p's palette.
func Encode(w io.Writer, p *Palettized) error {
	if p == nil || p.Width <= 0 || p.Height <= 0 {
		return ErrEmptyImage
	}
	if err := bmp.Encode(w, p.Image()); err != nil {
		return fmt.Errorf("bitmap: encode: %w", err)
	}

	return nil
}

// Save creates path (truncating any existing file) and encodes p into it.
func Save(path string, p *Palettized) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bitmap: create %s: %w", path, err)
	}
	if err = Encode(f, p); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
