package mdimage_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdimage"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	return buf.Bytes()
}

func TestIsPNG(t *testing.T) {
	assert.True(t, mdimage.IsPNG(encodePNG(t, 2, 2)))
	assert.False(t, mdimage.IsPNG([]byte("not a png")))
}

func TestPNGDecoder_PassesThroughPNGSourceVerbatim(t *testing.T) {
	data := encodePNG(t, 4, 4)
	dec := mdimage.PNGDecoder{}

	img, ok := dec.Decode(data, 80, 10, 20)
	require.True(t, ok)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 4, img.Height)
	assert.Equal(t, data, img.PNG)
	assert.Nil(t, img.Pixels)
}

func TestPNGDecoder_FallsBackToRGBForNonPNGSource(t *testing.T) {
	data := encodeJPEG(t, 4, 4)
	dec := mdimage.PNGDecoder{}

	img, ok := dec.Decode(data, 80, 10, 20)
	require.True(t, ok)
	assert.Nil(t, img.PNG)
	assert.Len(t, img.Pixels, img.Width*img.Height*3)
}

func TestPNGDecoder_RGBFallbackDownsamplesToFitMaxCols(t *testing.T) {
	data := encodeJPEG(t, 200, 100)
	dec := mdimage.PNGDecoder{}

	img, ok := dec.Decode(data, 10, 10, 20)
	require.True(t, ok)
	assert.LessOrEqual(t, img.Width, 100)
	assert.Less(t, img.Width, 200)
}

func TestPNGDecoder_PNGSourceIsNotResized(t *testing.T) {
	data := encodePNG(t, 200, 100)
	dec := mdimage.PNGDecoder{}

	img, ok := dec.Decode(data, 10, 10, 20)
	require.True(t, ok)
	assert.Equal(t, 200, img.Width)
	assert.Equal(t, 100, img.Height)
}

func TestPNGDecoder_RejectsUndecodableGarbage(t *testing.T) {
	dec := mdimage.PNGDecoder{}
	_, ok := dec.Decode([]byte("garbage"), 80, 10, 20)
	assert.False(t, ok)
}
