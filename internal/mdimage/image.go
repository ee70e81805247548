// Package mdimage defines the image-decode seam used by the console
// renderer's Kitty graphics emission, plus one concrete PNG/RGB
// implementation backed by disintegration/imaging. A PNG source is passed
// through verbatim; any other format imaging can decode is converted to
// RGB pixels; bytes that do not decode are swallowed (the image is
// skipped), never an error.
package mdimage

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// IsPNG reports whether data begins with the 8-byte PNG signature.
func IsPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngSignature)
}

// Image is a decoded raster ready for Kitty graphics transmission. Exactly
// one of PNG or Pixels is set: a PNG-sourced image is passed through
// verbatim (the terminal decodes it itself, keyed `f=100`) while any other
// decodable source falls back to raw 3-channel RGB pixel bytes (keyed
// `f=24`). Every decoded non-PNG source is flattened to RGB whatever its
// channel count; no source is rejected for its channel count.
type Image struct {
	Width  int
	Height int
	PNG    []byte // original file bytes, set only for a PNG source
	Pixels []byte // row-major RGB pixel bytes, no padding, set only for the fallback path
}

// Decoder maps raw file bytes to a decoded Image. Decode's second return
// reports success; a false return means "skip this image" rather than an
// error the caller must propagate, matching the error-handling design's
// "image-decode failures swallowed" rule.
type Decoder interface {
	Decode(data []byte, maxCols, cellPxWidth, cellPxHeight int) (*Image, bool)
}

// PNGDecoder is the one built-in Decoder: a PNG source is passed through
// untouched (Kitty's own PNG support handles scaling to the placeholder
// grid); any other source is decoded and downsampled to fit within maxCols
// terminal columns, preserving aspect ratio, then flattened to raw RGB.
type PNGDecoder struct{}

// Decode implements Decoder.
func (PNGDecoder) Decode(data []byte, maxCols, cellPxWidth, cellPxHeight int) (*Image, bool) {
	if IsPNG(data) {
		cfg, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, false
		}

		return &Image{Width: cfg.Width, Height: cfg.Height, PNG: data}, true
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false
	}

	maxPxWidth := maxCols * cellPxWidth
	if maxPxWidth > 0 && img.Bounds().Dx() > maxPxWidth {
		img = imaging.Resize(img, maxPxWidth, 0, imaging.Lanczos)
	}
	_ = cellPxHeight

	w, h, pix := toRGB(img)

	return &Image{Width: w, Height: h, Pixels: pix}, true
}

// toRGB flattens img to row-major 8-bit RGB, dropping any alpha channel —
// the 3-channel shape spec.md's image-decode interface requires of the
// non-PNG fallback.
func toRGB(img image.Image) (width, height int, pix []byte) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]byte, width*height*3)

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix[i] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(bl >> 8)
			i += 3
		}
	}

	return width, height, pix
}
