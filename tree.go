package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NoChild is the child index of a leaf Node.
const NoChild = int32(-1)

// Node is one node of a Tree.  A leaf carries a valid Symbol and has no
// children; an internal node carries InvalidSymbol and exactly two children,
// and its Freq is the sum of theirs.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   int32
	Right  int32
}

// IsLeaf returns true iff this Node has no children.
func (node Node) IsLeaf() bool {
	return node.Left == NoChild
}

// String returns a short description of this Node.
func (node Node) String() string {
	if node.IsLeaf() {
		return fmt.Sprintf("Leaf{%s, %d}", node.Symbol, node.Freq)
	}
	return fmt.Sprintf("Internal{%d, %d, %d}", node.Freq, node.Left, node.Right)
}

// Tree is a Huffman code tree.  Nodes live in a single slice and refer to
// their children by index, so every child has exactly one parent and no
// cycles are possible.
//
// The leaves occupy indices 0 through NumLeaves()-1 in ascending symbol
// order, and each internal node is stored after both of its children.
type Tree struct {
	nodes     []Node
	root      int32
	numLeaves int
}

// BuildTree builds the Huffman tree for the given table by repeatedly merging
// the two nodes of lowest frequency.  The first node popped becomes the left
// child.  Ties are broken by node index: leaves by symbol value, then
// internal nodes in order of creation.
//
// A table with exactly one symbol yields a tree whose root is that symbol's
// leaf.  An empty table fails with ErrEmptyAlphabet.
func BuildTree(ft FrequencyTable) (*Tree, error) {
	if len(ft) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if err := ft.Validate(); err != nil {
		return nil, err
	}

	symbols := ft.Symbols()
	numLeaves := len(symbols)

	nodes := make([]Node, 0, 2*numLeaves-1)
	h := nodeHeap{list: make([]indexAndFreq, 0, numLeaves)}
	for _, sym := range symbols {
		index := int32(len(nodes))
		freq := ft[sym]
		nodes = append(nodes, Node{Symbol: sym, Freq: freq, Left: NoChild, Right: NoChild})
		h.list = append(h.list, indexAndFreq{index, freq})
	}

	if numLeaves == 1 {
		return &Tree{nodes: nodes, root: 0, numLeaves: 1}, nil
	}

	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(indexAndFreq)
		b := heap.Pop(&h).(indexAndFreq)

		index := int32(len(nodes))
		freq := saturatingAdd(a.freq, b.freq)
		nodes = append(nodes, Node{Symbol: InvalidSymbol, Freq: freq, Left: a.index, Right: b.index})
		heap.Push(&h, indexAndFreq{index, freq})
	}
	root := heap.Pop(&h).(indexAndFreq)

	assert.Assertf(len(nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(nodes), numLeaves)
	assert.Assertf(int(root.index) == len(nodes)-1, "root %d is not the last node %d", root.index, len(nodes)-1)
	assert.Assertf(root.freq == ft.Total(), "root frequency %d != total %d", root.freq, ft.Total())

	return &Tree{nodes: nodes, root: root.index, numLeaves: numLeaves}, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int32 {
	return t.root
}

// Node returns the node at the given index.
func (t *Tree) Node(index int32) Node {
	return t.nodes[index]
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, which is also the number of
// distinct symbols.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Freq returns the frequency of the root node.
func (t *Tree) Freq() uint64 {
	return t.nodes[t.root].Freq
}

// IsDegenerate returns true iff the tree is a single leaf, in which case no
// path from the root can produce a code.
func (t *Tree) IsDegenerate() bool {
	return t.nodes[t.root].IsLeaf()
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.Len())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, node := range t.nodes {
		fmt.Fprintf(&buf, "\tNode(%d) = %s\n", index, node)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type indexAndFreq + type nodeHeap {{{

type indexAndFreq struct {
	index int32
	freq  uint64
}

type nodeHeap struct {
	list []indexAndFreq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.index < b.index
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(indexAndFreq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
