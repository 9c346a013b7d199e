package stego

import "fmt"

type Option func(*Stego) error

// WithLSBDepth sets how many low bits of each sample carry payload bits in
// the lsb and audio modes. Depth must be between 1 and 4; the default of 1
// is the least perceptible. Embedding and extraction must use the same depth.
func WithLSBDepth(depth int) Option {
	return func(s *Stego) error {
		if depth < 1 || depth > 4 {
			return fmt.Errorf("lsb depth %d out of range [1,4]", depth)
		}
		s.depth = depth
		return nil
	}
}

// WithECC protects the payload bits with a Golay code so a few flipped
// stego samples can be corrected on extraction. The framing header stays
// uncoded so extraction can size the coded region. Capacity checks account
// for the expansion. Embedding and extraction must agree on this option.
func WithECC() Option {
	return func(s *Stego) error {
		s.ecc = true
		return nil
	}
}
