// Package stego hides arbitrary payloads inside image, audio and text covers
// so they can later be recovered exactly, while the cover's perceptual
// content is minimally altered.
//
// Six embedding strategies are supported, selected by a closed Mode set:
// sequential pixel LSB, image-in-image LSB, keyed adaptive-channel LSB,
// DCT coefficient embedding, audio sample LSB and text whitespace encoding.
// Every strategy shares the same framing protocol (a 32-bit big-endian
// length field before the payload bits) and refuses to embed before writing
// anything when the payload does not fit.
//
// Covers are never mutated: each Embed call reads the cover and produces a
// freshly allocated output. Calls hold no shared state and may run
// concurrently.
package stego

import (
	"fmt"

	"github.com/yyyoichi/stegozero/internal/adaptive"
	"github.com/yyyoichi/stegozero/internal/frame"
	"github.com/yyyoichi/stegozero/internal/lsb"
	"github.com/yyyoichi/stegozero/internal/pixmap"
)

type Stego struct {
	depth int
	ecc   bool
}

// New initializes a codec with the given options. The zero configuration
// uses one low bit per sample and no error correction.
func New(opts ...Option) (*Stego, error) {
	s := &Stego{depth: 1}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Capacity reports how many payload bits cover can carry under mode,
// including the bits consumed by the framing header. Embedding fails with
// ErrInsufficientCapacity when the framed payload exceeds this value.
func (s *Stego) Capacity(cover Cover, mode Mode) (int, error) {
	switch mode {
	case ModeLSB, ModeImage:
		ic, ok := cover.(ImageCover)
		if !ok {
			return 0, fmt.Errorf("%w: %T for %s", ErrIncompatibleCover, cover, mode)
		}
		p := pixmap.FromImage(ic.Image)
		return lsb.Capacity(p.Samples(), s.depth), nil
	case ModeAdaptive:
		ic, ok := cover.(ImageCover)
		if !ok {
			return 0, fmt.Errorf("%w: %T for %s", ErrIncompatibleCover, cover, mode)
		}
		return adaptive.Capacity(pixmap.FromImage(ic.Image)), nil
	case ModeDCT:
		ic, ok := cover.(ImageCover)
		if !ok {
			return 0, fmt.Errorf("%w: %T for %s", ErrIncompatibleCover, cover, mode)
		}
		bounds := ic.Image.Bounds()
		return (bounds.Dx() / dctBlockSize) * (bounds.Dy() / dctBlockSize), nil
	case ModeAudio:
		ac, ok := cover.(AudioCover)
		if !ok {
			return 0, fmt.Errorf("%w: %T for %s", ErrIncompatibleCover, cover, mode)
		}
		return lsb.Capacity(len(ac.Samples), s.depth), nil
	case ModeText:
		tc, ok := cover.(TextCover)
		if !ok {
			return 0, fmt.Errorf("%w: %T for %s", ErrIncompatibleCover, cover, mode)
		}
		return len(spaceGaps(tc.Text)), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

// encode frames payload under the configured options.
func (s *Stego) encode(payload []byte) ([]bool, error) {
	bits, err := frame.Encode(payload, s.ecc)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes", ErrOversizedPayload, len(payload))
	}
	return bits, nil
}

// recover drives extraction over any bit source. read(n) returns the first n
// hidden bits of the walk, or an error when the cover holds fewer; it is
// called once for the header and once for the full frame, so extraction
// never visits bits beyond the declared length.
func (s *Stego) recover(read func(n int) ([]bool, error)) ([]byte, error) {
	head, err := read(frame.HeaderBits)
	if err != nil {
		return nil, err
	}
	n, err := frame.ParseHeader(head)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedStream, err)
	}
	all, err := read(frame.Bits(n, s.ecc))
	if err != nil {
		return nil, err
	}
	payload, err := frame.DecodeBody(all[frame.HeaderBits:], n, s.ecc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedStream, err)
	}
	return payload, nil
}

// checkCapacity guards every embed call before any output is produced.
func checkCapacity(need, capacity int) error {
	if need > capacity {
		return fmt.Errorf("%w: need %d bits, cover holds %d", ErrInsufficientCapacity, need, capacity)
	}
	return nil
}

// sampleReader adapts a sequential sample walk to recover's read contract.
func sampleReader[T lsb.Sample](samples []T, depth int) func(n int) ([]bool, error) {
	return func(n int) ([]bool, error) {
		if capacity := lsb.Capacity(len(samples), depth); n > capacity {
			return nil, fmt.Errorf("%w: want %d bits, cover holds %d", ErrTruncatedStream, n, capacity)
		}
		return lsb.Extract(samples, n, depth), nil
	}
}
