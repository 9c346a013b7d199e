package lsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbedExtractDepth1(t *testing.T) {
	dst := []uint8{0xff, 0xff, 0x00, 0x00, 0xaa}
	bits := []bool{false, true, true, false}
	Embed(dst, bits, 1)

	assert.Equal(t, []uint8{0xfe, 0xff, 0x01, 0x00, 0xaa}, dst)
	assert.Equal(t, bits, Extract(dst, len(bits), 1))
}

func TestEmbedExtractDepth2(t *testing.T) {
	dst := []uint8{0b11111111, 0b00000000}
	// Two bits per sample, highest of the group first.
	bits := []bool{false, true, true, false}
	Embed(dst, bits, 2)

	assert.Equal(t, []uint8{0b11111101, 0b00000010}, dst)
	assert.Equal(t, bits, Extract(dst, len(bits), 2))
}

func TestPartialFinalSample(t *testing.T) {
	dst := []uint8{0b00000000}
	// One bit into a depth-2 sample: bit 1 is written, bit 0 is preserved.
	Embed(dst, []bool{true}, 2)
	assert.Equal(t, []uint8{0b00000010}, dst)
}

func TestNegativeAudioSamples(t *testing.T) {
	dst := []int{-32768, -1, 0, 32767}
	bits := []bool{true, false, true, false}
	Embed(dst, bits, 1)

	assert.Equal(t, []int{-32767, -2, 1, 32766}, dst)
	assert.Equal(t, bits, Extract(dst, len(bits), 1))
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 30000, Capacity(30000, 1))
	assert.Equal(t, 60000, Capacity(30000, 2))
}
