package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// CodeTable is the bijection between Symbols and Codes derived from a Tree.
// The codes are prefix-free, except that a degenerate single-symbol table
// maps its only symbol to the one-bit code "0".
//
// A CodeTable is never modified after construction and is safe for
// concurrent use.
type CodeTable struct {
	codes   map[Symbol]Code
	symbols map[Code]Symbol
	minSize byte
	maxSize byte
}

// NewCodeTable walks the given tree from the root, appending a 0 bit for each
// left branch and a 1 bit for each right branch, and records the path to
// each leaf as that leaf's code.
func NewCodeTable(t *Tree) (*CodeTable, error) {
	ct := &CodeTable{
		codes:   make(map[Symbol]Code, t.NumLeaves()),
		symbols: make(map[Code]Symbol, t.NumLeaves()),
	}

	if t.IsDegenerate() {
		ct.add(t.Node(t.Root()).Symbol, MakeCode(1, 0))
		return ct, nil
	}

	// Each stack item owns its own copy of the path that led to it.

	type stackItem struct {
		index int32
		code  Code
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.Len())))
	stack = append(stack, stackItem{index: t.Root()})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.Node(top.index)
		if node.IsLeaf() {
			ct.add(node.Symbol, top.code)
			continue
		}

		if top.code.Size >= maxBitsPerCode {
			return nil, fmt.Errorf("%w: tree is deeper than %d bits", ErrCodeTooLong, maxBitsPerCode)
		}

		// Push right first so the left subtree is visited first.
		stack = append(stack, stackItem{node.Right, top.code.Append(1)})
		stack = append(stack, stackItem{node.Left, top.code.Append(0)})
	}

	assert.Assertf(len(ct.codes) == t.NumLeaves(), "%d codes for %d leaves", len(ct.codes), t.NumLeaves())
	return ct, nil
}

func (ct *CodeTable) add(sym Symbol, hc Code) {
	if len(ct.codes) == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.codes[sym] = hc
	ct.symbols[hc] = sym
}

// Encode returns the Code for the given Symbol.
func (ct *CodeTable) Encode(sym Symbol) (Code, bool) {
	hc, found := ct.codes[sym]
	return hc, found
}

// Decode returns the Symbol whose code is exactly hc.
func (ct *CodeTable) Decode(hc Code) (Symbol, bool) {
	sym, found := ct.symbols[hc]
	if !found {
		return InvalidSymbol, false
	}
	return sym, true
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return len(ct.codes)
}

// Symbols returns the coded symbols in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ct.codes))
	for sym := range ct.codes {
		out = append(out, sym)
	}
	out.Sort()
	return out
}

// Strings returns each symbol's code as a string of '0' and '1' characters.
// It is meant for display.
func (ct *CodeTable) Strings() map[Symbol]string {
	out := make(map[Symbol]string, len(ct.codes))
	for sym, hc := range ct.codes {
		out[sym] = hc.Text()
	}
	return out
}

// WeightedSize returns the number of bits needed to encode an input with the
// given frequencies.  Symbols without a code are ignored.
func (ct *CodeTable) WeightedSize(ft FrequencyTable) uint64 {
	var total uint64
	for sym, count := range ft {
		if hc, found := ct.codes[sym]; found {
			total = saturatingAdd(total, count*uint64(hc.Size))
		}
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer, in ascending symbol order.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, sym := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", sym, ct.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
