package huffman

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
//
// Text is usually symbolized one rune at a time, and binary data one byte at
// a time.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  It also marks the internal nodes of a Tree.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol may appear in a FrequencyTable.
func (sym Symbol) IsValid() bool {
	return sym >= 0
}

// String returns a quoted representation of this Symbol as a rune, or its
// decimal value if it is not a valid rune.
func (sym Symbol) String() string {
	if sym < 0 {
		return strconv.Itoa(int(sym))
	}
	if r := rune(sym); utf8.ValidRune(r) {
		return strconv.QuoteRune(r)
	}
	return strconv.Itoa(int(sym))
}

// SymbolsFromString splits text into one Symbol per rune.
//
// Invalid UTF-8 sequences are replaced by utf8.RuneError, so use
// SymbolsFromBytes when arbitrary binary data must survive a round trip.
func SymbolsFromString(text string) []Symbol {
	out := make([]Symbol, 0, len(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out
}

// SymbolsFromBytes splits data into one Symbol per byte.
func SymbolsFromBytes(data []byte) []Symbol {
	out := make([]Symbol, len(data))
	for index, b := range data {
		out[index] = Symbol(b)
	}
	return out
}

// StringFromSymbols is the inverse of SymbolsFromString.
func StringFromSymbols(symbols []Symbol) string {
	buf := make([]byte, 0, len(symbols))
	for _, sym := range symbols {
		buf = utf8.AppendRune(buf, rune(sym))
	}
	return string(buf)
}

// BytesFromSymbols is the inverse of SymbolsFromBytes.  It fails if any
// Symbol does not fit in a byte.
func BytesFromSymbols(symbols []Symbol) ([]byte, error) {
	out := make([]byte, len(symbols))
	for index, sym := range symbols {
		if sym < 0 || sym > math.MaxUint8 {
			return nil, &SymbolError{Symbol: sym, Err: ErrUnknownSymbol}
		}
		out[index] = byte(sym)
	}
	return out, nil
}
