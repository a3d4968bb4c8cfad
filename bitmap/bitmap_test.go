package bitmap_test

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/collapse/bitmap"
)

// TestEncodeDecode_RoundTrip writes a small palettized image through the
// BMP codec and checks every pixel color survives.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	var (
		black = color.NRGBA{A: 255}
		white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		red   = color.NRGBA{R: 255, A: 255}
	)
	src, err := bitmap.New(3, 2, []color.NRGBA{black, white, red})
	require.NoError(t, err)
	copy(src.Pixels, []uint8{0, 1, 2, 2, 1, 0})

	var buf bytes.Buffer
	require.NoError(t, bitmap.Encode(&buf, src))

	img, err := bitmap.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	back, err := bitmap.Palettize(img)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := src.Palette[src.Pixels[y*3+x]]
			got := back.Palette[back.Pixels[y*3+x]]
			assert.Equal(t, want, got, "pixel (%d,%d)", x, y)
		}
	}
}

// TestEncode_Validation rejects a nil image.
func TestEncode_Validation(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, bitmap.Encode(&buf, nil), bitmap.ErrEmptyImage)
}

// TestSaveLoad_File round-trips through the filesystem.
func TestSaveLoad_File(t *testing.T) {
	p, err := bitmap.New(2, 2, []color.NRGBA{{A: 255}, {G: 200, A: 255}})
	require.NoError(t, err)
	require.NoError(t, p.Set(0, 1, 1))

	path := filepath.Join(t.TempDir(), "roundtrip.bmp")
	require.NoError(t, bitmap.Save(path, p))

	img, err := bitmap.Load(path)
	require.NoError(t, err)
	back, err := bitmap.Palettize(img)
	require.NoError(t, err)
	assert.Equal(t, p.Pixels[2], back.Pixels[2]) // first occurrence keeps index order here
}

// TestLoad_Missing surfaces the underlying I/O failure.
func TestLoad_Missing(t *testing.T) {
	_, err := bitmap.Load(filepath.Join(t.TempDir(), "absent.bmp"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
