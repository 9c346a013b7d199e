// Package lsb implements the sequential low-bit walk shared by the spatial
// image codec and the audio codec. Samples are visited in their natural
// order; each carries up to depth bits in its low-order bit positions,
// highest of the group first.
package lsb

// Sample covers the two sample widths in use: 8-bit pixel channels and
// native-width PCM samples.
type Sample interface {
	~uint8 | ~int
}

// Capacity returns how many bits fit into the given number of samples.
func Capacity(samples, depth int) int {
	return samples * depth
}

// Embed writes bits into the low depth bits of dst, in place. Samples beyond
// the bit sequence are left untouched, as are low bits of the final sample
// that the sequence does not reach. The caller checks capacity first.
func Embed[T Sample](dst []T, bits []bool, depth int) {
	i := 0
	for s := 0; i < len(bits); s++ {
		for b := depth - 1; b >= 0 && i < len(bits); b-- {
			mask := T(1) << uint(b)
			if bits[i] {
				dst[s] |= mask
			} else {
				dst[s] &^= mask
			}
			i++
		}
	}
}

// Extract reads the first n bits of the walk over src. The caller bounds n
// by the declared frame length, so stego noise beyond the payload is never
// visited.
func Extract[T Sample](src []T, n, depth int) []bool {
	out := make([]bool, n)
	i := 0
	for s := 0; i < n; s++ {
		for b := depth - 1; b >= 0 && i < n; b-- {
			out[i] = src[s]&(T(1)<<uint(b)) != 0
			i++
		}
	}
	return out
}
