package stego

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"image"

	"github.com/yyyoichi/stegozero/internal/pixmap"
)

// nestedMagic marks the inner image header inside the framed payload:
// magic, width, height, channels and sample byte count, each uint32
// big-endian after the magic.
var nestedMagic = []byte("IMSG")

const nestedHeaderLen = 20

// EmbedImage hides an entire image inside cover using the sequential LSB
// walk. The secret image travels as its own header plus raw RGB samples, so
// extraction can rebuild it without the original dimensions.
func (s *Stego) EmbedImage(ctx context.Context, cover, secret image.Image) (image.Image, error) {
	p := pixmap.FromImage(secret)
	payload := make([]byte, 0, nestedHeaderLen+len(p.Pix))
	payload = append(payload, nestedMagic...)
	payload = binary.BigEndian.AppendUint32(payload, uint32(p.Width))
	payload = binary.BigEndian.AppendUint32(payload, uint32(p.Height))
	payload = binary.BigEndian.AppendUint32(payload, pixmap.Channels)
	payload = binary.BigEndian.AppendUint32(payload, uint32(len(p.Pix)))
	payload = append(payload, p.Pix...)
	return s.EmbedLSB(ctx, cover, payload)
}

// ExtractImage recovers an image embedded by EmbedImage. The declared inner
// dimensions must match the recovered sample count exactly.
func (s *Stego) ExtractImage(ctx context.Context, src image.Image) (image.Image, error) {
	payload, err := s.ExtractLSB(ctx, src)
	if err != nil {
		return nil, err
	}
	if len(payload) < nestedHeaderLen || !bytes.Equal(payload[:4], nestedMagic) {
		return nil, fmt.Errorf("%w: missing inner header", ErrMalformedNestedImage)
	}
	var (
		width    = binary.BigEndian.Uint32(payload[4:8])
		height   = binary.BigEndian.Uint32(payload[8:12])
		channels = binary.BigEndian.Uint32(payload[12:16])
		size     = binary.BigEndian.Uint32(payload[16:20])
	)
	if channels != pixmap.Channels {
		return nil, fmt.Errorf("%w: %d channels", ErrMalformedNestedImage, channels)
	}
	samples := payload[nestedHeaderLen:]
	if uint64(size) != uint64(len(samples)) ||
		uint64(width)*uint64(height)*pixmap.Channels != uint64(size) {
		return nil, fmt.Errorf("%w: %dx%d does not match %d samples",
			ErrMalformedNestedImage, width, height, len(samples))
	}
	p := pixmap.New(int(width), int(height))
	copy(p.Pix, samples)
	return p.Image(), nil
}
