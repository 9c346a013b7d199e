package stego

import "errors"

var (
	// ErrInsufficientCapacity is returned when a payload does not fit in the
	// cover under the chosen mode. The check runs before any output byte is
	// produced, so a failed embed never leaves a partial stego artifact.
	ErrInsufficientCapacity = errors.New("payload exceeds cover capacity")

	// ErrOversizedPayload is returned when a payload cannot be represented in
	// the 32-bit length field of the framing header.
	ErrOversizedPayload = errors.New("payload exceeds length field range")

	// ErrTruncatedStream is returned when extraction finds fewer bits than the
	// framing header declared. It signals a wrong mode, a wrong key, or a
	// cover that was altered after embedding.
	ErrTruncatedStream = errors.New("bitstream shorter than declared length")

	// ErrMalformedNestedImage is returned when the inner image header recovered
	// in image-in-image mode does not match the recovered sample count.
	ErrMalformedNestedImage = errors.New("nested image header inconsistent")

	// ErrIncompatibleCoverText is returned when extraction meets a whitespace
	// gap that is neither encoding variant, e.g. after an editor normalized
	// the stego text.
	ErrIncompatibleCoverText = errors.New("cover text contains an undecodable gap")

	// ErrMissingKey is returned when adaptive mode is invoked without a key.
	// There is no default key.
	ErrMissingKey = errors.New("adaptive mode requires a key")

	// ErrUnknownMode is returned for a mode outside the six supported variants.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrIncompatibleCover is returned when a cover variant does not match the
	// requested mode, e.g. an audio cover with an image mode.
	ErrIncompatibleCover = errors.New("cover type incompatible with mode")
)
