package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// FrequencyTable maps each Symbol to its number of occurrences.  Symbols that
// do not occur are absent; a present Symbol always has a non-zero count.
//
// A FrequencyTable is sufficient to rebuild the exact Tree and CodeTable that
// were used to encode a Stream.
type FrequencyTable map[Symbol]uint64

// CountSymbols builds the FrequencyTable for the given input.  An empty input
// yields an empty table.
func CountSymbols(symbols []Symbol) FrequencyTable {
	ft := make(FrequencyTable)
	for _, sym := range symbols {
		ft[sym]++
	}
	return ft
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft)
}

// Total returns the sum of all counts, i.e. the length of the input that
// produced this table.  The sum saturates at math.MaxUint64.
func (ft FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft {
		total = saturatingAdd(total, count)
	}
	return total
}

// Symbols returns the symbols of this table in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ft))
	for sym := range ft {
		out = append(out, sym)
	}
	out.Sort()
	return out
}

// Validate checks that every key is a valid Symbol and every count is
// non-zero.
func (ft FrequencyTable) Validate() error {
	for _, sym := range ft.Symbols() {
		if !sym.IsValid() {
			return &SymbolError{Symbol: sym, Err: ErrInvalidTable}
		}
		if ft[sym] == 0 {
			return &SymbolError{Symbol: sym, Err: fmt.Errorf("%w: zero count", ErrInvalidTable)}
		}
	}
	return nil
}

// Clone returns an independent copy of this table.
func (ft FrequencyTable) Clone() FrequencyTable {
	out := make(FrequencyTable, len(ft))
	for sym, count := range ft {
		out[sym] = count
	}
	return out
}

// Equal returns true iff both tables hold the same counts.
func (ft FrequencyTable) Equal(other FrequencyTable) bool {
	if len(ft) != len(other) {
		return false
	}
	for sym, count := range ft {
		if otherCount, found := other[sym]; !found || otherCount != count {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, in ascending symbol order.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	for _, sym := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", sym, ft[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON encodes the table as a JSON object keyed by the decimal value
// of each Symbol.
func (ft FrequencyTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[Symbol]uint64(ft))
}

// UnmarshalJSON decodes a table produced by MarshalJSON.
func (ft *FrequencyTable) UnmarshalJSON(raw []byte) error {
	var m map[Symbol]uint64
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	tmp := FrequencyTable(m)
	if tmp == nil {
		tmp = make(FrequencyTable)
	}
	if err := tmp.Validate(); err != nil {
		return err
	}
	*ft = tmp
	return nil
}

var (
	_ json.Marshaler   = FrequencyTable(nil)
	_ json.Unmarshaler = (*FrequencyTable)(nil)
)

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
