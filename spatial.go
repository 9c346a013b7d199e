package stego

import (
	"context"
	"image"

	"github.com/yyyoichi/stegozero/internal/lsb"
	"github.com/yyyoichi/stegozero/internal/pixmap"
)

// EmbedLSB hides payload in the low bits of src's RGB samples, walking the
// image row-major and channel-major. Samples beyond the framed payload stay
// untouched. The cover image is not modified; a fresh image is returned.
func (s *Stego) EmbedLSB(ctx context.Context, src image.Image, payload []byte) (image.Image, error) {
	bits, err := s.encode(payload)
	if err != nil {
		return nil, err
	}
	p := pixmap.FromImage(src)
	if err := checkCapacity(len(bits), lsb.Capacity(p.Samples(), s.depth)); err != nil {
		return nil, err
	}
	lsb.Embed(p.Pix, bits, s.depth)
	return p.Image(), nil
}

// ExtractLSB recovers a payload embedded by EmbedLSB. It reads the length
// field first and then only as many bits as that field declares.
func (s *Stego) ExtractLSB(ctx context.Context, src image.Image) ([]byte, error) {
	p := pixmap.FromImage(src)
	return s.recover(sampleReader(p.Pix, s.depth))
}

// EmbedAudio hides payload in the low bits of PCM samples, sequentially.
// The returned slice is freshly allocated; samples keep their native width
// and only their low bits change, so no clipping can occur.
func (s *Stego) EmbedAudio(ctx context.Context, samples []int, payload []byte) ([]int, error) {
	bits, err := s.encode(payload)
	if err != nil {
		return nil, err
	}
	if err := checkCapacity(len(bits), lsb.Capacity(len(samples), s.depth)); err != nil {
		return nil, err
	}
	out := make([]int, len(samples))
	copy(out, samples)
	lsb.Embed(out, bits, s.depth)
	return out, nil
}

// ExtractAudio recovers a payload embedded by EmbedAudio.
func (s *Stego) ExtractAudio(ctx context.Context, samples []int) ([]byte, error) {
	return s.recover(sampleReader(samples, s.depth))
}
