// Package bitmap provides the image collaborators of the collapse module:
// BMP decoding/encoding and palettization of a decoded image into small
// integer color indices.
//
// What
//
//   - Decode / Load: read a BMP stream or file into an image.Image
//     (golang.org/x/image/bmp underneath).
//   - Palettize: flatten an image into a Palettized — a row-major slice of
//     palette indices plus the palette itself, with indices assigned in
//     first-occurrence scan order (left→right, top→bottom).
//   - New: allocate a blank Palettized sharing an existing palette, used as
//     the canvas for synthesized output.
//   - Encode / Save: write a Palettized back out as an 8-bit indexed BMP.
//
// Why
//
//	The solver core operates on palette indices, never on colors. Keeping
//	the pixel plumbing here leaves pattern extraction and the wave free of
//	any image-format concern.
//
// Determinism
//
//	Palette order depends only on pixel scan order, so the same exemplar
//	always yields the same palette and the same index stream.
//
// Errors
//
//   - ErrEmptyImage       if an image has zero width or height.
//   - ErrPaletteOverflow  if an image uses more than MaxPaletteSize colors.
//   - ErrBounds           if At/Set is addressed outside the image.
//   - I/O and codec failures are returned wrapped from the underlying
//     reader/writer or BMP codec.
//
// Complexity: Palettize is O(W·H) with an O(1) palette lookup per pixel;
// Encode is O(W·H).
package bitmap
