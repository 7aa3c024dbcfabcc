package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman tree.  A leaf holds a symbol and has no
// children; an internal node holds exactly two children and no symbol.  Each
// internal node owns its children exclusively.
type Node[S comparable] struct {
	freq   uint64
	symbol S
	left   *Node[S]
	right  *Node[S]
	leaf   bool
}

// NewLeaf constructs a leaf Node for symbol with the given frequency.
func NewLeaf[S comparable](symbol S, freq uint64) *Node[S] {
	return &Node[S]{freq: freq, symbol: symbol, leaf: true}
}

// NewInternal constructs an internal Node whose frequency is the sum of its
// children's frequencies.  Both children must be non-nil.
func NewInternal[S comparable](left, right *Node[S]) *Node[S] {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	return &Node[S]{
		freq:  saturatingAdd(left.freq, right.freq),
		left:  left,
		right: right,
	}
}

// Freq returns the frequency of this Node.  For an internal node, this is the
// sum of the frequencies of all leaves below it.
func (n *Node[S]) Freq() uint64 {
	return n.freq
}

// Symbol returns the symbol held by a leaf.  The second return value is false
// for internal nodes.
func (n *Node[S]) Symbol() (S, bool) {
	if !n.leaf {
		var zero S
		return zero, false
	}
	return n.symbol, true
}

// IsLeaf returns true iff this Node holds a symbol.
func (n *Node[S]) IsLeaf() bool {
	return n.leaf
}

// Left returns the child reached by a '0' bit, or nil for a leaf.
func (n *Node[S]) Left() *Node[S] {
	return n.left
}

// Right returns the child reached by a '1' bit, or nil for a leaf.
func (n *Node[S]) Right() *Node[S] {
	return n.right
}

// child returns the child selected by bit.
func (n *Node[S]) child(bit byte) *Node[S] {
	if bit == '0' {
		return n.left
	}
	return n.right
}

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// Node to the given writer.
func (n *Node[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.dumpTo(&buf, 0)
	return buf.WriteTo(w)
}

func (n *Node[S]) dumpTo(buf *bytes.Buffer, depth int) {
	indent := strings.Repeat("\t", depth)
	switch {
	case n == nil:
		fmt.Fprintf(buf, "%snil\n", indent)
	case n.leaf:
		fmt.Fprintf(buf, "%sLeaf(%v) freq=%d\n", indent, n.symbol, n.freq)
	default:
		fmt.Fprintf(buf, "%sInternal freq=%d\n", indent, n.freq)
		n.left.dumpTo(buf, depth+1)
		n.right.dumpTo(buf, depth+1)
	}
}
