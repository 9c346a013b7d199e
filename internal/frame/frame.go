// Package frame implements the payload framing shared by every codec:
// a 32-bit big-endian length field counting payload bytes, followed by the
// raw payload bits. The payload region may optionally be Golay-coded; the
// length field always stays plain so extraction can size the coded region
// before decoding it.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
	"github.com/yyyoichi/stegozero/internal/bitconv"
)

// HeaderBits is the fixed width of the length field.
const HeaderBits = 32

// MaxPayload is the largest payload byte count the length field can declare.
const MaxPayload = 1<<HeaderBits - 1

var (
	ErrOversized = errors.New("payload length exceeds 32-bit length field")
	ErrTruncated = errors.New("insufficient bits for declared length")
)

// Encode frames payload into a bit sequence: HeaderBits length bits followed
// by the payload bits, Golay-coded when ecc is set.
func Encode(payload []byte, ecc bool) ([]bool, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrOversized, len(payload))
	}
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(payload)))

	bits := make([]bool, 0, HeaderBits+BodyBits(len(payload), ecc))
	bits = append(bits, bitconv.BytesToBools(length[:])...)
	body := bitconv.BytesToBools(payload)
	if ecc {
		body = eccEncode(body)
	}
	return append(bits, body...), nil
}

// Bits returns the total framed size in bits for n payload bytes.
func Bits(n int, ecc bool) int {
	return HeaderBits + BodyBits(n, ecc)
}

// BodyBits returns the size in bits of the payload region for n payload bytes.
func BodyBits(n int, ecc bool) int {
	if ecc {
		return golay.EncodedBits(n * 8)
	}
	return n * 8
}

// ParseHeader reads the length field from the start of bits.
func ParseHeader(bits []bool) (int, error) {
	if len(bits) < HeaderBits {
		return 0, fmt.Errorf("%w: %d header bits", ErrTruncated, len(bits))
	}
	b := bitconv.BoolsToBytes(bits[:HeaderBits])
	return int(binary.BigEndian.Uint32(b)), nil
}

// DecodeBody recovers n payload bytes from the payload region that followed
// the length field. bits must hold at least BodyBits(n, ecc) bits.
func DecodeBody(bits []bool, n int, ecc bool) ([]byte, error) {
	need := BodyBits(n, ecc)
	if len(bits) < need {
		return nil, fmt.Errorf("%w: want %d payload bits, have %d", ErrTruncated, need, len(bits))
	}
	if !ecc {
		return bitconv.BoolsToBytes(bits[:need]), nil
	}
	return eccDecode(bits[:need], n), nil
}

func eccEncode(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, bit := range bits {
		w.WriteBool(bit)
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), w.Bits())

	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, enc.Bits())
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out
}

func eccDecode(bits []bool, n int) []byte {
	if n == 0 {
		return []byte{}
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, bit := range bits {
		w.WriteBool(bit)
	}
	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	r := bitstream.NewBitReader(decoded, 0, 0)
	r.SetBits(n * 8)
	out := make([]byte, n)
	for i := range out {
		out[i] = r.Read8R(8, i)
	}
	return out
}
