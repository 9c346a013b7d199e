package stego

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/yyyoichi/stegozero/internal/dct"
	"github.com/yyyoichi/stegozero/internal/pixmap"
)

// Transform-domain design constants. Embed and extract must agree on every
// one of them; a mismatched quantization step is the dominant failure mode,
// which is why the step is a constant and not a per-call parameter.
const (
	dctBlockSize = 8
	// Mid-frequency coefficient at row 4, column 3: far enough from the DC
	// term to stay imperceptible, far enough from the highest frequencies to
	// survive pixel rounding.
	dctCoeffIndex = 4*dctBlockSize + 3
	dctQuantStep  = 16.0
	// JPEG-style centering before the forward transform.
	dctCenter = 128.0
)

// EmbedDCT hides payload in the parity of one quantized mid-frequency DCT
// coefficient per 8x8 luma block, traversing blocks row-major. The cover is
// converted to grayscale; partial blocks at the right and bottom edges carry
// no bits and pass through unchanged. Embedding is deterministic: the same
// cover and payload always produce byte-identical output.
func (s *Stego) EmbedDCT(ctx context.Context, src image.Image, payload []byte) (image.Image, error) {
	bits, err := s.encode(payload)
	if err != nil {
		return nil, err
	}
	p := pixmap.FromImage(src)
	blocksX, blocksY := p.Width/dctBlockSize, p.Height/dctBlockSize
	if err := checkCapacity(len(bits), blocksX*blocksY); err != nil {
		return nil, err
	}

	plane := p.Luma(0)
	d := dct.New(dctBlockSize)
	block := make([]float64, dctBlockSize*dctBlockSize)
	at := 0
	for by := 0; by < blocksY && at < len(bits); by++ {
		for bx := 0; bx < blocksX && at < len(bits); bx++ {
			loadBlock(plane, p.Width, bx, by, block)
			coef, inverse := d.Exec(block)
			coef[dctCoeffIndex] = quantizeToParity(coef[dctCoeffIndex], bits[at])
			at++
			inverse()
			storeBlock(plane, p.Width, bx, by, block)
		}
	}
	return pixmap.GrayImage(p.Width, p.Height, plane), nil
}

// ExtractDCT recovers a payload embedded by EmbedDCT, re-reading the same
// coefficient's parity in the same block order.
func (s *Stego) ExtractDCT(ctx context.Context, src image.Image) ([]byte, error) {
	p := pixmap.FromImage(src)
	plane := p.Luma(0)
	blocksX, blocksY := p.Width/dctBlockSize, p.Height/dctBlockSize
	d := dct.New(dctBlockSize)

	read := func(n int) ([]bool, error) {
		if capacity := blocksX * blocksY; n > capacity {
			return nil, fmt.Errorf("%w: want %d bits, cover holds %d", ErrTruncatedStream, n, capacity)
		}
		out := make([]bool, n)
		block := make([]float64, dctBlockSize*dctBlockSize)
		at := 0
		for by := 0; by < blocksY && at < n; by++ {
			for bx := 0; bx < blocksX && at < n; bx++ {
				loadBlock(plane, p.Width, bx, by, block)
				coef, _ := d.Exec(block)
				out[at] = coeffParity(coef[dctCoeffIndex])
				at++
			}
		}
		return out, nil
	}
	return s.recover(read)
}

// quantizeToParity snaps c onto the quantization grid so that the parity of
// its quantization index encodes bit, moving to the nearest index with the
// right parity.
func quantizeToParity(c float64, bit bool) float64 {
	q := math.Round(c / dctQuantStep)
	if (int64(q)&1 == 1) != bit {
		if c >= q*dctQuantStep {
			q++
		} else {
			q--
		}
	}
	return q * dctQuantStep
}

func coeffParity(c float64) bool {
	return int64(math.Round(c/dctQuantStep))&1 == 1
}

func loadBlock(plane []float32, width, bx, by int, block []float64) {
	for r := range dctBlockSize {
		row := (by*dctBlockSize + r) * width
		for c := range dctBlockSize {
			block[r*dctBlockSize+c] = float64(plane[row+bx*dctBlockSize+c]) - dctCenter
		}
	}
}

func storeBlock(plane []float32, width, bx, by int, block []float64) {
	for r := range dctBlockSize {
		row := (by*dctBlockSize + r) * width
		for c := range dctBlockSize {
			plane[row+bx*dctBlockSize+c] = float32(block[r*dctBlockSize+c] + dctCenter)
		}
	}
}
