package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	test := []struct {
		name    string
		payload []byte
		ecc     bool
	}{
		{"empty", []byte{}, false},
		{"one_byte", []byte{0xa5}, false},
		{"text", []byte("attack at dawn"), false},
		{"binary", []byte{0x00, 0xff, 0x80, 0x01}, false},
		{"empty_ecc", []byte{}, true},
		{"text_ecc", []byte("attack at dawn"), true},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			bits, err := Encode(tt.payload, tt.ecc)
			require.NoError(t, err)
			assert.Len(t, bits, Bits(len(tt.payload), tt.ecc))

			n, err := ParseHeader(bits)
			require.NoError(t, err)
			assert.Equal(t, len(tt.payload), n)

			got, err := DecodeBody(bits[HeaderBits:], n, tt.ecc)
			require.NoError(t, err)
			assert.Equal(t, []byte(tt.payload), got)
		})
	}
}

func TestHeaderIsBigEndian(t *testing.T) {
	bits, err := Encode(make([]byte, 1), false)
	require.NoError(t, err)
	// Length 1: thirty-one zero bits then a one.
	for i := range HeaderBits - 1 {
		assert.False(t, bits[i], "bit %d", i)
	}
	assert.True(t, bits[HeaderBits-1])
}

func TestTruncated(t *testing.T) {
	_, err := ParseHeader(make([]bool, HeaderBits-1))
	assert.ErrorIs(t, err, ErrTruncated)

	bits, err := Encode([]byte("secret"), false)
	require.NoError(t, err)
	_, err = DecodeBody(bits[HeaderBits:len(bits)-1], 6, false)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestECCExpandsBody(t *testing.T) {
	assert.Greater(t, BodyBits(8, true), BodyBits(8, false))
	assert.Zero(t, BodyBits(0, true))
}

func TestECCCorrectsFlippedBits(t *testing.T) {
	payload := []byte("hold the line until dusk")
	bits, err := Encode(payload, true)
	require.NoError(t, err)

	// One flipped bit per distant codeword region.
	for _, at := range []int{HeaderBits + 3, HeaderBits + 40, HeaderBits + 99} {
		bits[at] = !bits[at]
	}
	got, err := DecodeBody(bits[HeaderBits:], len(payload), true)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
