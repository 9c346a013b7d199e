package stego

import (
	"fmt"
	"image"
)

// Mode selects one of the six embedding strategies. The set is closed:
// adding a strategy means adding a constant here and a method pair on Stego,
// not registering into a lookup table.
type Mode int

const (
	// ModeLSB hides bits in the low bits of RGB samples, sequentially.
	ModeLSB Mode = iota
	// ModeImage hides a whole image inside another via the LSB walk.
	ModeImage
	// ModeAdaptive hides bits in a key-derived pseudo-random sample order.
	ModeAdaptive
	// ModeDCT hides bits in mid-frequency DCT coefficients of 8x8 blocks.
	ModeDCT
	// ModeAudio hides bits in the low bits of PCM samples, sequentially.
	ModeAudio
	// ModeText hides bits in whitespace gaps between visible tokens.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeLSB:
		return "lsb"
	case ModeImage:
		return "image"
	case ModeAdaptive:
		return "adaptive"
	case ModeDCT:
		return "dct"
	case ModeAudio:
		return "audio"
	case ModeText:
		return "text"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a mode name to its Mode constant.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "lsb":
		return ModeLSB, nil
	case "image":
		return ModeImage, nil
	case "adaptive":
		return ModeAdaptive, nil
	case "dct":
		return ModeDCT, nil
	case "audio":
		return ModeAudio, nil
	case "text":
		return ModeText, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Cover is the tagged set of cover variants accepted by Capacity.
// Exactly three variants exist: ImageCover, AudioCover and TextCover.
type Cover interface {
	isCover()
}

// ImageCover wraps a decoded image for the lsb, image, adaptive and dct modes.
type ImageCover struct {
	Image image.Image
}

// AudioCover wraps decoded PCM samples for the audio mode. Samples keep the
// source file's native width; only their low bits are touched.
type AudioCover struct {
	Samples []int
}

// TextCover wraps a plain text document for the text mode.
type TextCover struct {
	Text []byte
}

func (ImageCover) isCover() {}
func (AudioCover) isCover() {}
func (TextCover) isCover()  {}
