// Package pixmap flattens an image into the row-major, channel-major RGB
// sample sequence the codecs walk, and rebuilds images from modified samples.
// Container parsing stays outside; this package only bridges image.Image and
// raw samples.
package pixmap

import (
	"image"
	"image/color"
)

// Channels is the number of samples per pixel. Covers are always treated as
// opaque RGB; alpha never carries payload bits.
const Channels = 3

// BT.601 luma weights, as in the OpenCV color conversion tables.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

type Pixmap struct {
	Width, Height int
	// Pix holds Width*Height*Channels samples: R, G, B per pixel in
	// row-major pixel order.
	Pix []uint8
}

// FromImage reads every pixel of src into a fresh sample buffer.
func FromImage(src image.Image) *Pixmap {
	bounds := src.Bounds()
	p := &Pixmap{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	p.Pix = make([]uint8, p.Width*p.Height*Channels)
	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, _ := src.At(x, y).RGBA()
			p.Pix[idx] = uint8(r32 >> 8)
			p.Pix[idx+1] = uint8(g32 >> 8)
			p.Pix[idx+2] = uint8(b32 >> 8)
			idx += Channels
		}
	}
	return p
}

// New returns an empty pixmap of the given size.
func New(width, height int) *Pixmap {
	return &Pixmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// Samples returns the number of usable channel samples.
func (p *Pixmap) Samples() int {
	return len(p.Pix)
}

// Image rebuilds an opaque image from the (possibly modified) samples.
func (p *Pixmap) Image() image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	idx := 0
	for y := range p.Height {
		for x := range p.Width {
			dst.SetNRGBA(x, y, color.NRGBA{
				R: p.Pix[idx],
				G: p.Pix[idx+1],
				B: p.Pix[idx+2],
				A: 0xff,
			})
			idx += Channels
		}
	}
	return dst
}

// Luma returns the BT.601 luma plane. Bits set in clear are zeroed in each
// sample first, so callers can score noise without seeing their own
// low-bit writes.
func (p *Pixmap) Luma(clear uint8) []float32 {
	keep := ^clear
	out := make([]float32, p.Width*p.Height)
	for i := range out {
		r := float32(p.Pix[i*Channels] & keep)
		g := float32(p.Pix[i*Channels+1] & keep)
		b := float32(p.Pix[i*Channels+2] & keep)
		out[i] = lumaR*r + lumaG*g + lumaB*b
	}
	return out
}

// GrayImage builds a grayscale image from a float plane, rounding and
// clipping each value into [0, 255].
func GrayImage(width, height int, plane []float32) image.Image {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			v := plane[y*width+x]
			dst.SetGray(x, y, color.Gray{Y: clip8(v)})
		}
	}
	return dst
}

func clip8(v float32) uint8 {
	v += 0.5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
