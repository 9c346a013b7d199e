package scan_test

import (
	"context"
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stego "github.com/yyyoichi/stegozero"
	"github.com/yyyoichi/stegozero/scan"
)

func naturalImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rd := rand.New(rand.NewSource(11))
	for y := range h {
		for x := range w {
			// Skewed values so LSB pairs are uneven, like photographic noise.
			v := uint8(rd.Intn(128))*2 + uint8(rd.Intn(10))/9
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v / 2, B: v / 3, A: 0xff})
		}
	}
	return img
}

func TestCleanCoverNotSuspicious(t *testing.T) {
	// A smooth gradient whose LSB plane decodes to an absurd length.
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := range 64 {
		for x := range 64 {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(40 + (x*3)%150),
				G: uint8(60 + (y*5)%120),
				B: uint8(50 + ((x+y)*2)%140),
				A: 0xff,
			})
		}
	}
	r := scan.Image(img)
	assert.Equal(t, 64*64*3, r.CapacityBits)
	assert.False(t, r.HeaderPlausible)
	assert.False(t, r.Suspicious)
}

func TestEmbeddedCoverIsSuspicious(t *testing.T) {
	s, err := stego.New()
	require.NoError(t, err)
	st, err := s.EmbedLSB(context.Background(), naturalImage(64, 64), []byte("meet at midnight"))
	require.NoError(t, err)

	r := scan.Image(st)
	assert.True(t, r.HeaderPlausible)
	assert.Equal(t, 16, r.HeaderLength)
	assert.True(t, r.Suspicious)
}

func TestScanDoesNotMutate(t *testing.T) {
	img := naturalImage(32, 32)
	before := make([]uint8, len(img.Pix))
	copy(before, img.Pix)

	scan.Image(img)
	assert.Equal(t, before, img.Pix)
}

func TestProbabilityIsFinite(t *testing.T) {
	for _, img := range []image.Image{
		naturalImage(16, 16),
		image.NewNRGBA(image.Rect(0, 0, 16, 16)), // all zero
	} {
		r := scan.Image(img)
		assert.False(t, math.IsNaN(r.EmbedProbability))
		assert.False(t, math.IsInf(r.EmbedProbability, 0))
		assert.GreaterOrEqual(t, r.EmbedProbability, 0.0)
		assert.LessOrEqual(t, r.EmbedProbability, 1.0)
	}
}

func TestTinyImageHasNoHeader(t *testing.T) {
	r := scan.Image(naturalImage(3, 3))
	assert.Equal(t, 27, r.CapacityBits)
	assert.False(t, r.HeaderPlausible)
	assert.False(t, r.Suspicious)
}
