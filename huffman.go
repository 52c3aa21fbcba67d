package huffman

// Encode counts the symbols of the input, builds the corresponding Huffman
// code, and encodes the input with it.  The returned FrequencyTable is what
// Decode needs to recover the input.
//
// An empty input yields an empty Stream and an empty table.  An input made of
// one distinct symbol repeated k times yields k '0' bits.
func Encode(symbols []Symbol) (Stream, FrequencyTable, error) {
	ft := CountSymbols(symbols)
	if len(ft) == 0 {
		return "", ft, nil
	}

	var e Encoder
	if err := e.Init(ft); err != nil {
		return "", nil, err
	}
	s, err := e.Encode(symbols)
	if err != nil {
		return "", nil, err
	}
	return s, ft, nil
}

// Decode rebuilds the Huffman code of the given table and uses it to decode
// the Stream.  An empty Stream always decodes to an empty sequence.
func Decode(s Stream, ft FrequencyTable) ([]Symbol, error) {
	if len(s) == 0 {
		return []Symbol{}, nil
	}

	var d Decoder
	if err := d.Init(ft); err != nil {
		return nil, err
	}
	return d.Decode(s)
}

// EncodeString is Encode for text, one Symbol per rune.
func EncodeString(text string) (Stream, FrequencyTable, error) {
	return Encode(SymbolsFromString(text))
}

// DecodeString is the inverse of EncodeString.
func DecodeString(s Stream, ft FrequencyTable) (string, error) {
	symbols, err := Decode(s, ft)
	if err != nil {
		return "", err
	}
	return StringFromSymbols(symbols), nil
}

// EncodeBytes is Encode for binary data, one Symbol per byte.
func EncodeBytes(data []byte) (Stream, FrequencyTable, error) {
	return Encode(SymbolsFromBytes(data))
}

// DecodeBytes is the inverse of EncodeBytes.
func DecodeBytes(s Stream, ft FrequencyTable) ([]byte, error) {
	symbols, err := Decode(s, ft)
	if err != nil {
		return nil, err
	}
	return BytesFromSymbols(symbols)
}
