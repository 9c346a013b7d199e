package pixmap

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromImageRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			src.SetNRGBA(x, y, color.NRGBA{
				R: uint8(10 * (x + 1)),
				G: uint8(20 * (y + 1)),
				B: uint8(x + y),
				A: 0xff,
			})
		}
	}
	p := FromImage(src)
	require.Equal(t, 3, p.Width)
	require.Equal(t, 2, p.Height)
	require.Equal(t, 3*2*Channels, p.Samples())
	assert.Equal(t, uint8(10), p.Pix[0])
	assert.Equal(t, uint8(20), p.Pix[1])
	assert.Equal(t, uint8(0), p.Pix[2])

	rebuilt := FromImage(p.Image())
	assert.Equal(t, p.Pix, rebuilt.Pix)
}

func TestLuma(t *testing.T) {
	p := New(1, 1)
	p.Pix[0], p.Pix[1], p.Pix[2] = 255, 255, 255
	assert.InDelta(t, 255, p.Luma(0)[0], 1e-3)

	// Clearing the low bit drops each channel to 254.
	assert.InDelta(t, 254, p.Luma(1)[0], 1e-3)
}

func TestGrayImageClips(t *testing.T) {
	img := GrayImage(2, 1, []float32{-7.2, 300.9})
	p := FromImage(img)
	assert.Equal(t, uint8(0), p.Pix[0])
	assert.Equal(t, uint8(255), p.Pix[3])
}

func TestGrayImageRounds(t *testing.T) {
	img := GrayImage(2, 1, []float32{99.4, 99.6})
	gray, ok := img.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, uint8(99), gray.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(100), gray.GrayAt(1, 0).Y)
}
