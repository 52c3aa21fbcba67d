package huffman

import (
	"encoding"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the binary table encoding.  It is the protobuf wire
// format of:
//
//	message FrequencyTable { repeated Entry entries = 1; }
//	message Entry { uint32 symbol = 1; uint64 count = 2; }
const (
	fieldEntries     protowire.Number = 1
	fieldEntrySymbol protowire.Number = 1
	fieldEntryCount  protowire.Number = 2
)

// MarshalBinary encodes the table in protobuf wire format.  Entries are
// written in ascending symbol order, so equal tables always produce equal
// bytes.
func (ft FrequencyTable) MarshalBinary() ([]byte, error) {
	if err := ft.Validate(); err != nil {
		return nil, err
	}
	var out []byte
	var entry []byte
	for _, sym := range ft.Symbols() {
		entry = entry[:0]
		entry = protowire.AppendTag(entry, fieldEntrySymbol, protowire.VarintType)
		entry = protowire.AppendVarint(entry, uint64(sym))
		entry = protowire.AppendTag(entry, fieldEntryCount, protowire.VarintType)
		entry = protowire.AppendVarint(entry, ft[sym])

		out = protowire.AppendTag(out, fieldEntries, protowire.BytesType)
		out = protowire.AppendBytes(out, entry)
	}
	return out, nil
}

// UnmarshalBinary decodes a table produced by MarshalBinary.  Unknown fields
// are skipped.
func (ft *FrequencyTable) UnmarshalBinary(data []byte) error {
	tmp := make(FrequencyTable)
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidTable, protowire.ParseError(n))
		}
		data = data[n:]

		if num != fieldEntries || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("%w: %v", ErrInvalidTable, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		entry, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidTable, protowire.ParseError(n))
		}
		data = data[n:]

		sym, count, err := unmarshalEntry(entry)
		if err != nil {
			return err
		}
		if _, found := tmp[sym]; found {
			return &SymbolError{Symbol: sym, Err: fmt.Errorf("%w: duplicate symbol", ErrInvalidTable)}
		}
		tmp[sym] = count
	}
	if err := tmp.Validate(); err != nil {
		return err
	}
	*ft = tmp
	return nil
}

func unmarshalEntry(data []byte) (Symbol, uint64, error) {
	var symbol, count uint64
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return InvalidSymbol, 0, fmt.Errorf("%w: %v", ErrInvalidTable, protowire.ParseError(n))
		}
		data = data[n:]

		if typ != protowire.VarintType || (num != fieldEntrySymbol && num != fieldEntryCount) {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return InvalidSymbol, 0, fmt.Errorf("%w: %v", ErrInvalidTable, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		v, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return InvalidSymbol, 0, fmt.Errorf("%w: %v", ErrInvalidTable, protowire.ParseError(n))
		}
		data = data[n:]

		if num == fieldEntrySymbol {
			symbol = v
		} else {
			count = v
		}
	}
	if symbol > math.MaxInt32 {
		return InvalidSymbol, 0, fmt.Errorf("%w: symbol %d out of range", ErrInvalidTable, symbol)
	}
	return Symbol(symbol), count, nil
}

var (
	_ encoding.BinaryMarshaler   = FrequencyTable(nil)
	_ encoding.BinaryUnmarshaler = (*FrequencyTable)(nil)
)
