package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder maps symbols to the Codes derived from a Huffman tree.
type Encoder[S comparable] struct {
	codes   map[S]Code
	minSize int
	maxSize int
}

// Init initializes this Encoder from the root of a Huffman tree.  Every leaf
// is assigned the path from the root to that leaf, with '0' for a left branch
// and '1' for a right branch.
//
// A tree consisting of a single leaf has no branches to walk, so its only
// symbol is assigned the 1-bit code "0".
//
func (e *Encoder[S]) Init(root *Node[S]) {
	assert.Assertf(root != nil, "root is nil")

	*e = Encoder[S]{codes: make(map[S]Code)}

	if root.leaf {
		e.assign(root.symbol, "0")
		return
	}

	// Walk the tree with an explicit stack.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed; leaves are assigned their code as
	// soon as their parent visits them.

	type stackItem struct {
		node *Node[S]
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint64(root.freq)+1)

	processChild := func(child *Node[S], code Code) {
		switch {
		case child == nil:
			assert.Assertf(false, "internal node at %s is missing a child", code)
		case child.leaf:
			e.assign(child.symbol, code)
		default:
			stack = append(stack, stackItem{node: child, code: code})
		}
	}

	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, top.code.Append(false))
		case 1:
			processChild(top.node.right, top.code.Append(true))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

func (e *Encoder[S]) assign(symbol S, hc Code) {
	_, dupe := e.codes[symbol]
	assert.Assertf(!dupe, "symbol %v appears in more than one leaf", symbol)

	size := hc.Len()
	if len(e.codes) == 0 {
		e.minSize, e.maxSize = size, size
	} else if e.minSize > size {
		e.minSize = size
	} else if e.maxSize < size {
		e.maxSize = size
	}
	e.codes[symbol] = hc
}

// EncodeSymbol returns the Code for a single symbol.  It returns
// ErrUnknownSymbol if the symbol has no leaf in the tree.
func (e Encoder[S]) EncodeSymbol(symbol S) (Code, error) {
	hc, found := e.codes[symbol]
	if !found {
		return "", errors.Wrapf(ErrUnknownSymbol, "symbol %v", symbol)
	}
	return hc, nil
}

// Encode concatenates the Codes of every symbol in src, in order.  If any
// symbol has no Code, no output is produced and the error wraps
// ErrUnknownSymbol.
func (e Encoder[S]) Encode(src []S) (string, error) {
	var sb strings.Builder
	for index, symbol := range src {
		hc, found := e.codes[symbol]
		if !found {
			return "", errors.Wrapf(ErrUnknownSymbol, "symbol %v at index %d", symbol, index)
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}

// EncodedLen returns the number of bits that encoding every occurrence in ft
// would produce, without producing them.
func (e Encoder[S]) EncodedLen(ft FrequencyTable[S]) (uint64, error) {
	var sum uint64
	for _, symbol := range ft.order {
		hc, found := e.codes[symbol]
		if !found {
			return 0, errors.Wrapf(ErrUnknownSymbol, "symbol %v", symbol)
		}
		sum = saturatingAdd(sum, uint64(hc.Len())*ft.counts[symbol])
	}
	return sum, nil
}

// Codes returns a copy of the symbol to Code mapping.
func (e Encoder[S]) Codes() map[S]Code {
	out := make(map[S]Code, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc
	}
	return out
}

// Len returns the number of symbols with a Code.
func (e Encoder[S]) Len() int {
	return len(e.codes)
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder[S]) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder[S]) MaxSize() int {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Codes are listed shortest first, then in bit
// order.
func (e Encoder[S]) Dump(w io.Writer) (int64, error) {
	sorted := make(byCode[S], 0, len(e.codes))
	for symbol, hc := range e.codes {
		sorted = append(sorted, symbolAndCode[S]{symbol, hc})
	}
	sorted.Sort()

	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, item := range sorted {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", item.symbol, item.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type symbolAndCode + type byCode {{{

type symbolAndCode[S comparable] struct {
	symbol S
	code   Code
}

type byCode[S comparable] []symbolAndCode[S]

func (list byCode[S]) Sort() {
	sort.Sort(list)
}

func (list byCode[S]) Len() int {
	return len(list)
}

func (list byCode[S]) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode[S]) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	return a < b
}

var _ sort.Interface = byCode[rune](nil)

// }}}
