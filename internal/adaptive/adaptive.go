// Package adaptive derives the keyed embedding sequence for the adaptive
// channel codec: which samples carry bits, in which order, and the keystream
// that whitens the framing header.
//
// The sequence is a pure function of the cover content and the key. Noise
// scores are computed on LSB-cleared samples, so embedding does not disturb
// the scores and extraction regenerates the identical sequence from the
// stego image.
package adaptive

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"

	"github.com/yyyoichi/stegozero/internal/pixmap"
)

const (
	// minNoise is the local noise score below which a pixel carries no bits;
	// pixels at or above midNoise carry two bits instead of one.
	minNoise = 12
	midNoise = 24
	// capacityRatio caps how many eligible positions may actually be
	// written, keeping embedding density low in busy regions.
	capacityRatio = 0.7
)

// Sequence is the deterministic walk for one cover and key.
type Sequence struct {
	// Positions holds sample indices into the pixmap's Pix slice, in the
	// order bits are written and read.
	Positions []int

	rng *rand.Rand
}

type candidate struct {
	pixel int
	bits  int
}

// Capacity returns how many bits a cover can carry in adaptive mode. The
// count depends only on the cover content, not on the key: the key decides
// order and channels, never how many positions exist.
func Capacity(p *pixmap.Pixmap) int {
	total := 0
	for _, c := range candidates(p) {
		total += c.bits
	}
	return int(capacityRatio * float64(total))
}

// candidates lists the noisy pixels eligible to carry bits, row-major.
func candidates(p *pixmap.Pixmap) []candidate {
	noise := noiseScores(p)
	pixels := make([]candidate, 0, len(noise))
	for i, n := range noise {
		if n < minNoise {
			continue
		}
		bits := 1
		if n >= midNoise {
			bits = 2
		}
		pixels = append(pixels, candidate{pixel: i, bits: bits})
	}
	return pixels
}

// New derives the embedding sequence for p under key. The same cover content
// and key always produce the same sequence; a different key produces an
// unrelated one.
func New(p *pixmap.Pixmap, key string) *Sequence {
	s := &Sequence{rng: keyedRand(key)}

	pixels := candidates(p)
	s.rng.Shuffle(len(pixels), func(i, j int) {
		pixels[i], pixels[j] = pixels[j], pixels[i]
	})

	s.Positions = make([]int, 0, len(pixels)*2)
	for _, c := range pixels {
		ch := s.pickChannel()
		s.Positions = append(s.Positions, c.pixel*pixmap.Channels+ch)
		if c.bits == 2 {
			second := s.pickChannel()
			if second == ch {
				second = (second + 1) % pixmap.Channels
			}
			s.Positions = append(s.Positions, c.pixel*pixmap.Channels+second)
		}
	}
	s.rng.Shuffle(len(s.Positions), func(i, j int) {
		s.Positions[i], s.Positions[j] = s.Positions[j], s.Positions[i]
	})
	return s
}

// Capacity returns how many bits the sequence may carry.
func (s *Sequence) Capacity() int {
	return int(capacityRatio * float64(len(s.Positions)))
}

// Keystream returns the next n keystream bits for header whitening. Embed
// and extract call this at the same point of the sequence derivation, so
// both sides see identical bits.
func (s *Sequence) Keystream(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = s.rng.Intn(2) == 1
	}
	return out
}

// pickChannel draws a channel with a fixed bias: blue most likely, then
// green, then red. Blue changes are the least perceptible.
func (s *Sequence) pickChannel() int {
	r := s.rng.Float64()
	switch {
	case r < 0.1:
		return 0
	case r < 0.4:
		return 1
	default:
		return 2
	}
}

func keyedRand(key string) *rand.Rand {
	sum := sha256.Sum256([]byte(key))
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	return rand.New(rand.NewSource(seed))
}

// noiseScores returns the mean absolute luma difference to the eight
// neighbours of each pixel, edge-replicated. The low bit of every sample is
// cleared first so the score survives embedding.
func noiseScores(p *pixmap.Pixmap) []float32 {
	w, h := p.Width, p.Height
	luma := p.Luma(1)
	clamp := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v >= max {
			return max - 1
		}
		return v
	}
	scores := make([]float32, w*h)
	for y := range h {
		for x := range w {
			center := luma[y*w+x]
			var sum float32
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n := luma[clamp(y+dy, h)*w+clamp(x+dx, w)]
					d := center - n
					if d < 0 {
						d = -d
					}
					sum += d
				}
			}
			scores[y*w+x] = sum / 8
		}
	}
	return scores
}
