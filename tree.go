package huffcode

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// BuildTree builds a Huffman tree from a FrequencyTable and returns its root.
//
// Ties between equal frequencies are broken by sequence number: leaves are
// numbered in the order their symbols were first seen, and each merged node
// is numbered after everything that existed before it.  The same table
// therefore always produces the same tree.
//
// A table with a single symbol produces a tree consisting of a single leaf.
// An empty table returns ErrEmptyInput.
//
func BuildTree[S comparable](ft FrequencyTable[S]) (*Node[S], error) {
	if ft.Len() == 0 {
		return nil, errors.WithStack(ErrEmptyInput)
	}

	// Step 1: build a minheap of leaves.

	items := make([]heapItem[S], 0, ft.Len())
	for _, symbol := range ft.order {
		seq := uint64(len(items))
		items = append(items, heapItem[S]{NewLeaf(symbol, ft.counts[symbol]), seq})
	}

	h := freqHeap[S]{items}
	h.Init()

	// Step 2: pop the two lowest-frequency nodes, join them under a new
	// internal node with the first one on the left, and push it back.

	nextSeq := uint64(len(items))
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem[S])
		b := heap.Pop(&h).(heapItem[S])
		heap.Push(&h, heapItem[S]{NewInternal(a.node, b.node), nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(heapItem[S]).node
	assert.Assertf(root.freq == ft.total, "root frequency %d != total %d", root.freq, ft.total)
	return root, nil
}

// BuildTreeFrom is a convenience function that counts the symbols in src and
// builds a tree from the result.
func BuildTreeFrom[S comparable](src []S) (*Node[S], error) {
	return BuildTree(CountFrequencies(src))
}

// type heapItem + type freqHeap {{{

type heapItem[S comparable] struct {
	node *Node[S]
	seq  uint64
}

type freqHeap[S comparable] struct {
	list []heapItem[S]
}

func (h *freqHeap[S]) Init() {
	heap.Init(h)
}

func (h *freqHeap[S]) Len() int {
	return len(h.list)
}

func (h *freqHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq < b.seq
}

func (h *freqHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(heapItem[S]))
}

func (h *freqHeap[S]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = heapItem[S]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap[rune])(nil)

// }}}
