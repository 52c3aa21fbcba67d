package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned when a code is requested for a
	// FrequencyTable with no symbols in it.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrNoMatchingCode is returned by Decode when the stream contains a
	// bit pattern which is not the prefix of any code.
	ErrNoMatchingCode = errors.New("no matching code")

	// ErrUnknownSymbol is returned by Encode when asked to encode a Symbol
	// that has no code.
	ErrUnknownSymbol = errors.New("symbol has no code")

	// ErrInvalidBit is returned when a Stream contains a character other
	// than '0' or '1'.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrCodeTooLong is returned when a tree is too deep for its codes to
	// fit in a Code.
	ErrCodeTooLong = errors.New("code too long")

	// ErrInvalidTable is returned when a FrequencyTable contains negative
	// symbols or zero counts, or cannot be parsed.
	ErrInvalidTable = errors.New("invalid frequency table")
)

// SymbolError reports a problem with one particular Symbol.
type SymbolError struct {
	Symbol Symbol
	Err    error
}

// Error fulfills the error interface.
func (err *SymbolError) Error() string {
	return fmt.Sprintf("symbol %s: %v", err.Symbol, err.Err)
}

// Unwrap returns the underlying error.
func (err *SymbolError) Unwrap() error {
	return err.Err
}

// DecodeError reports the position in a Stream where decoding failed.
type DecodeError struct {
	// Offset is the index of the first bit of the code being decoded.
	Offset int

	// Candidate holds the bits accumulated since Offset.
	Candidate string

	Err error
}

// Error fulfills the error interface.
func (err *DecodeError) Error() string {
	return fmt.Sprintf("decode failed at bit %d (candidate %q): %v", err.Offset, err.Candidate, err.Err)
}

// Unwrap returns the underlying error.
func (err *DecodeError) Unwrap() error {
	return err.Err
}

var (
	_ error = (*SymbolError)(nil)
	_ error = (*DecodeError)(nil)
)
