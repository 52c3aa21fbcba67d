package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// maxBitsPerCode is the longest code that fits in Code.Bits.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("%q: %w: %d bits, max %d", str, ErrCodeTooLong, len(str), maxBitsPerCode)
	}
	var hc Code
	for index := 0; index < len(str); index++ {
		switch str[index] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("%q: %w %q at index %d", str, ErrInvalidBit, str[index], index)
		}
	}
	return hc, nil
}

// Append returns the Code formed by adding one more bit to the end of this
// Code.  The receiver is not modified.
func (hc Code) Append(bit uint) Code {
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// Bit returns the bit at the given index, counting from the first bit.
func (hc Code) Bit(index byte) uint {
	return uint(hc.Bits>>(hc.Size-1-index)) & 1
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Text())
}

// Text returns the bits of this Code as a string of '0' and '1' characters.
func (hc Code) Text() string {
	var sb strings.Builder
	hc.appendTo(&sb)
	return sb.String()
}

func (hc Code) appendTo(sb *strings.Builder) {
	sb.Grow(int(hc.Size))
	for index := byte(0); index < hc.Size; index++ {
		sb.WriteByte('0' + byte(hc.Bit(index)))
	}
}

var _ fmt.Stringer = Code{}
