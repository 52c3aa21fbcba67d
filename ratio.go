package huffman

// BitsPerSymbol is the fixed width assumed for each unencoded Symbol when
// computing a compression ratio.
const BitsPerSymbol = 8

// CompressionRatio returns the percentage of bits saved by encoding original
// as s, against a baseline of BitsPerSymbol bits per symbol.
func CompressionRatio(original []Symbol, s Stream) float64 {
	return CompressionRatioBits(len(original)*BitsPerSymbol, s.Len())
}

// CompressionRatioBits returns (1 - encodedBits/originalBits) × 100.
//
// The result is negative when the encoding is larger than the original.  It
// is 0 when originalBits is 0.
func CompressionRatioBits(originalBits, encodedBits int) float64 {
	if originalBits == 0 {
		return 0
	}
	return (1 - float64(encodedBits)/float64(originalBits)) * 100
}
