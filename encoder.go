package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encoder encodes sequences of Symbols with the Huffman code of one
// FrequencyTable.
//
// The zero value is an Encoder for the empty alphabet, which can only encode
// the empty sequence.
type Encoder struct {
	table FrequencyTable
	codes *CodeTable
}

// Init initializes this Encoder from scratch.  The table lists the number of
// occurrences of each Symbol; Symbols that are absent cannot be encoded.
//
// An empty table is permitted.  Any previous state is discarded.
func (e *Encoder) Init(ft FrequencyTable) error {
	if len(ft) == 0 {
		*e = Encoder{}
		return nil
	}

	t, err := BuildTree(ft)
	if err != nil {
		return err
	}
	ct, err := NewCodeTable(t)
	if err != nil {
		return err
	}

	e.init(ft, ct)
	return nil
}

func (e *Encoder) init(ft FrequencyTable, ct *CodeTable) {
	assert.Assertf(ft.Len() == ct.Len(), "table has %d symbols but code has %d", ft.Len(), ct.Len())
	*e = Encoder{table: ft.Clone(), codes: ct}
}

// Encode concatenates the codes of the given symbols, in order.
//
// Encoding a Symbol that was absent from the table is a usage error; it is
// reported as a *SymbolError wrapping ErrUnknownSymbol.
func (e Encoder) Encode(symbols []Symbol) (Stream, error) {
	if len(symbols) == 0 {
		return "", nil
	}
	if e.codes == nil {
		return "", &SymbolError{Symbol: symbols[0], Err: ErrUnknownSymbol}
	}

	var sb strings.Builder
	sb.Grow(len(symbols) * int(e.codes.MinSize()))
	for index, sym := range symbols {
		hc, found := e.codes.Encode(sym)
		if !found {
			return "", fmt.Errorf("input index %d: %w", index, &SymbolError{Symbol: sym, Err: ErrUnknownSymbol})
		}
		hc.appendTo(&sb)
	}
	return Stream(sb.String()), nil
}

// Table returns a copy of the FrequencyTable this Encoder was built from.
func (e Encoder) Table() FrequencyTable {
	return e.table.Clone()
}

// CodeTable returns the code used by this Encoder, or nil for the empty
// alphabet.
func (e Encoder) CodeTable() *CodeTable {
	return e.codes
}

// MinSize is the bit length of the shortest code.
func (e Encoder) MinSize() byte {
	if e.codes == nil {
		return 0
	}
	return e.codes.MinSize()
}

// MaxSize is the bit length of the longest code.
func (e Encoder) MaxSize() byte {
	if e.codes == nil {
		return 0
	}
	return e.codes.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.MaxSize())
	for _, sym := range e.table.Symbols() {
		hc, _ := e.codes.Encode(sym)
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", sym, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
