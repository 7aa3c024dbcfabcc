package huffcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Decoder recovers symbols from an encoded stream by walking a Huffman tree.
type Decoder[S comparable] struct {
	root *Node[S]
}

// Init initializes this Decoder with the root of a Huffman tree.  The tree is
// not validated up front; a tree that does not match the stream is reported
// by Decode as ErrInvalidNavigation.
func (d *Decoder[S]) Init(root *Node[S]) error {
	if root == nil {
		return errors.Wrap(ErrInvalidNavigation, "root is nil")
	}
	*d = Decoder[S]{root: root}
	return nil
}

// Root returns the tree this Decoder was initialized with.
func (d Decoder[S]) Root() *Node[S] {
	return d.root
}

// Decode decodes a string of '0' and '1' characters into symbols.
//
// Starting from the root, each '0' moves to the left child and each '1' to the
// right child.  Reaching a leaf emits its symbol and returns to the root.  A
// tree whose root is a leaf decodes each '0' as that leaf's symbol.
//
// The stream must be a whole number of codes: if it ends partway through a
// code, or contains any other character, the error wraps ErrMalformedStream.
// If the stream tries to branch from a leaf, or into a missing child, the
// error wraps ErrInvalidNavigation.
//
func (d Decoder[S]) Decode(stream string) ([]S, error) {
	root := d.root
	if root == nil {
		return nil, errors.Wrap(ErrInvalidNavigation, "decoder has no tree")
	}

	var out []S

	if root.leaf {
		for offset := 0; offset < len(stream); offset++ {
			switch stream[offset] {
			case '0':
				out = append(out, root.symbol)
			case '1':
				return nil, errors.Wrapf(ErrInvalidNavigation, "bit '1' at offset %d descends past the root leaf", offset)
			default:
				return nil, errors.Wrapf(ErrMalformedStream, "invalid bit %q at offset %d", stream[offset], offset)
			}
		}
		return out, nil
	}

	node := root
	start := 0
	for offset := 0; offset < len(stream); offset++ {
		bit := stream[offset]
		if bit != '0' && bit != '1' {
			return nil, errors.Wrapf(ErrMalformedStream, "invalid bit %q at offset %d", bit, offset)
		}
		next := node.child(bit)
		if next == nil {
			return nil, errors.Wrapf(ErrInvalidNavigation, "code %s at offset %d leads to a missing child", Code(stream[start:offset+1]), start)
		}
		node = next
		if node.leaf {
			out = append(out, node.symbol)
			node = root
			start = offset + 1
		}
	}

	if node != root {
		return nil, errors.Wrapf(ErrMalformedStream, "stream ends inside code %s at offset %d", Code(stream[start:]), start)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.root == nil {
		buf.WriteString("\tnil\n")
	} else {
		fmt.Fprintf(&buf, "\tFreq() = %d\n", d.root.freq)
		d.root.dumpTo(&buf, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
