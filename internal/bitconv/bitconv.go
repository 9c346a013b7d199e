// Package bitconv converts between byte slices and bit sequences.
// Bits are ordered MSB-first within each byte, the order shared by every
// codec and by the framing header.
package bitconv

// BytesToBools expands b into one bool per bit, MSB-first.
func BytesToBools(b []byte) []bool {
	bits := make([]bool, len(b)*8)
	for i, v := range b {
		for j := range 8 {
			bits[i*8+j] = v&(0x80>>uint(j)) != 0
		}
	}
	return bits
}

// BoolsToBytes packs bits MSB-first into bytes. A trailing partial byte is
// zero-padded on the right.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}
