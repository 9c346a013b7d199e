package stego

import (
	"bytes"
	"context"
	"fmt"
)

// EmbedText hides payload in the whitespace gaps between visible tokens of a
// plain-text cover: a single space encodes 0, a double space encodes 1.
// Only gaps consisting purely of spaces are eligible; runs containing tabs,
// carriage returns or newlines are preserved byte-for-byte, as is every
// visible token. Gaps beyond the framed payload keep their original width.
func (s *Stego) EmbedText(ctx context.Context, cover, payload []byte) ([]byte, error) {
	bits, err := s.encode(payload)
	if err != nil {
		return nil, err
	}
	gaps := spaceGaps(cover)
	if err := checkCapacity(len(bits), len(gaps)); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	out.Grow(len(cover) + len(bits))
	prev := 0
	for i, bit := range bits {
		out.Write(cover[prev:gaps[i].start])
		if bit {
			out.WriteString("  ")
		} else {
			out.WriteByte(' ')
		}
		prev = gaps[i].end
	}
	out.Write(cover[prev:])
	return out.Bytes(), nil
}

// ExtractText recovers a payload embedded by EmbedText, re-tokenizing the
// stego text with the identical gap-eligibility rule. A spaces-only gap
// wider than two spaces inside the encoded region means the text was
// altered after embedding, e.g. by an editor that normalizes whitespace.
func (s *Stego) ExtractText(ctx context.Context, stegoText []byte) ([]byte, error) {
	gaps := spaceGaps(stegoText)
	read := func(n int) ([]bool, error) {
		if n > len(gaps) {
			return nil, fmt.Errorf("%w: want %d bits, cover has %d gaps", ErrTruncatedStream, n, len(gaps))
		}
		out := make([]bool, n)
		for i := range out {
			switch gaps[i].end - gaps[i].start {
			case 1:
				out[i] = false
			case 2:
				out[i] = true
			default:
				return nil, fmt.Errorf("%w: %d-space gap", ErrIncompatibleCoverText, gaps[i].end-gaps[i].start)
			}
		}
		return out, nil
	}
	return s.recover(read)
}

// gap is a half-open byte range [start, end) of a spaces-only whitespace run.
type gap struct {
	start, end int
}

// spaceGaps lists the whitespace runs of text that consist purely of spaces,
// in document order. A run touched by any other whitespace byte is
// ineligible, which keeps line layout visually unchanged.
func spaceGaps(text []byte) []gap {
	var gaps []gap
	i := 0
	for i < len(text) {
		if !isWhitespace(text[i]) {
			i++
			continue
		}
		j := i
		spacesOnly := true
		for j < len(text) && isWhitespace(text[j]) {
			if text[j] != ' ' {
				spacesOnly = false
			}
			j++
		}
		if spacesOnly {
			gaps = append(gaps, gap{start: i, end: j})
		}
		i = j
	}
	return gaps
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
