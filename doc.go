// Package huffman implements classical Huffman prefix codes over an alphabet
// of Symbols.  A FrequencyTable is the only state needed to rebuild an
// identical code, so it is the only thing a caller has to keep between
// Encode and Decode.
//
// Encoded data is represented as a Stream, a string of '0' and '1'
// characters, which can be packed into bytes with Stream.Pack.
//
// Ties between nodes of equal frequency are broken deterministically: leaves
// are ordered by symbol value, internal nodes by creation order, and leaves
// always precede the internal nodes created after them.  Encoders and
// decoders built from equal tables therefore always agree.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
