package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Stream is an encoded bit string, one '0' or '1' character per bit.
type Stream string

// Len returns the number of bits in this Stream.
func (s Stream) Len() int {
	return len(s)
}

// Validate checks that this Stream holds nothing but '0' and '1' characters.
func (s Stream) Validate() error {
	for index := 0; index < len(s); index++ {
		if ch := s[index]; ch != '0' && ch != '1' {
			return &DecodeError{Offset: index, Err: fmt.Errorf("%w %q", ErrInvalidBit, ch)}
		}
	}
	return nil
}

// Pack packs this Stream into bytes, first bit in the most significant bit
// of the first byte.  The last byte is padded with zero bits; the caller must
// keep Len() to undo the padding.
func (s Stream) Pack() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow((len(s) + 7) / 8)
	w := bitio.NewWriter(&buf)

	// Whole 64-bit words first, then the tail one bit at a time.
	index := 0
	for ; index+64 <= len(s); index += 64 {
		var word uint64
		for _, ch := range []byte(s[index : index+64]) {
			word = (word << 1) | uint64(ch-'0')
		}
		if err := w.WriteBits(word, 64); err != nil {
			return nil, err
		}
	}
	for ; index < len(s); index++ {
		if err := w.WriteBool(s[index] == '1'); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackStream is the inverse of Stream.Pack.  It reads numBits bits from
// data and ignores the rest.
func UnpackStream(data []byte, numBits int) (Stream, error) {
	if numBits < 0 || numBits > 8*len(data) {
		return "", fmt.Errorf("cannot unpack %d bits from %d bytes", numBits, len(data))
	}

	out := make([]byte, numBits)
	r := bitio.NewReader(bytes.NewReader(data))
	for index := range out {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		out[index] = '0'
		if bit {
			out[index] = '1'
		}
	}
	return Stream(out), nil
}
