package stego

import (
	"context"
	"fmt"
	"image"

	"github.com/yyyoichi/stegozero/internal/adaptive"
	"github.com/yyyoichi/stegozero/internal/frame"
	"github.com/yyyoichi/stegozero/internal/pixmap"
)

// EmbedAdaptive hides payload in a key-derived pseudo-random order over the
// noisiest pixels of src, one low bit per selected channel sample. The key
// seeds both the position permutation and the channel choice; extraction
// must regenerate the identical sequence from the same key. The framing
// header is additionally whitened with a key-derived keystream so a
// sequential LSB scan does not see a literal length field.
//
// Extracting with a different key yields garbage, not a detected error.
// That is the designed threat model, not a defect: the codec never confirms
// whether a key is right.
func (s *Stego) EmbedAdaptive(ctx context.Context, src image.Image, payload []byte, key string) (image.Image, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	bits, err := s.encode(payload)
	if err != nil {
		return nil, err
	}
	p := pixmap.FromImage(src)
	seq := adaptive.New(p, key)
	if err := checkCapacity(len(bits), seq.Capacity()); err != nil {
		return nil, err
	}
	keystream := seq.Keystream(frame.HeaderBits)
	for i, bit := range bits {
		if i < frame.HeaderBits {
			bit = bit != keystream[i]
		}
		at := seq.Positions[i]
		if bit {
			p.Pix[at] |= 1
		} else {
			p.Pix[at] &^= 1
		}
	}
	return p.Image(), nil
}

// ExtractAdaptive recovers a payload embedded by EmbedAdaptive under the
// same key.
func (s *Stego) ExtractAdaptive(ctx context.Context, src image.Image, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	p := pixmap.FromImage(src)
	seq := adaptive.New(p, key)
	keystream := seq.Keystream(frame.HeaderBits)
	read := func(n int) ([]bool, error) {
		if capacity := seq.Capacity(); n > capacity {
			return nil, fmt.Errorf("%w: want %d bits, cover holds %d", ErrTruncatedStream, n, capacity)
		}
		out := make([]bool, n)
		for i := range out {
			out[i] = p.Pix[seq.Positions[i]]&1 == 1
			if i < frame.HeaderBits {
				out[i] = out[i] != keystream[i]
			}
		}
		return out, nil
	}
	return s.recover(read)
}
