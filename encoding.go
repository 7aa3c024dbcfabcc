package huffcode

import (
	"github.com/pkg/errors"
)

// Encoding pairs a source sequence with its encoded stream and the Huffman
// tree that relates them.  It is created either from a source sequence by
// NewEncoding, or from an encoded stream and a tree by NewDecoding, and is
// immutable afterward.
type Encoding[S comparable] struct {
	source  []S
	encoded string
	root    *Node[S]
}

// NewEncoding counts the symbols in src, builds a Huffman tree from the
// counts, and encodes src with it.  An empty src returns ErrEmptyInput.
func NewEncoding[S comparable](src []S) (*Encoding[S], error) {
	root, err := BuildTreeFrom(src)
	if err != nil {
		return nil, err
	}

	var e Encoder[S]
	e.Init(root)
	encoded, err := e.Encode(src)
	if err != nil {
		return nil, err
	}

	source := make([]S, len(src))
	copy(source, src)
	return &Encoding[S]{source: source, encoded: encoded, root: root}, nil
}

// NewDecoding decodes an encoded stream using a tree produced elsewhere,
// typically by an earlier NewEncoding.
func NewDecoding[S comparable](encoded string, root *Node[S]) (*Encoding[S], error) {
	var d Decoder[S]
	if err := d.Init(root); err != nil {
		return nil, err
	}
	source, err := d.Decode(encoded)
	if err != nil {
		return nil, err
	}
	return &Encoding[S]{source: source, encoded: encoded, root: root}, nil
}

// Encoded returns the encoded stream as a string of '0' and '1' characters.
func (enc *Encoding[S]) Encoded() string {
	return enc.encoded
}

// Source returns a copy of the source sequence.
func (enc *Encoding[S]) Source() []S {
	out := make([]S, len(enc.source))
	copy(out, enc.source)
	return out
}

// Root returns the root of the Huffman tree.  Pass it to NewDecoding to
// decode Encoded() elsewhere.
func (enc *Encoding[S]) Root() *Node[S] {
	return enc.root
}

// Encoder returns an Encoder for this Encoding's tree.
func (enc *Encoding[S]) Encoder() Encoder[S] {
	var e Encoder[S]
	e.Init(enc.root)
	return e
}

// EncodeText is a convenience function that encodes the runes of text.
func EncodeText(text string) (*Encoding[rune], error) {
	return NewEncoding([]rune(text))
}

// DecodeText is a convenience function that decodes an encoded stream into
// text, using a tree built by EncodeText.
func DecodeText(encoded string, root *Node[rune]) (string, error) {
	enc, err := NewDecoding(encoded, root)
	if err != nil {
		return "", errors.WithMessage(err, "decode text")
	}
	return SourceText(enc), nil
}

// SourceText returns the source of a rune Encoding as a string.
func SourceText(enc *Encoding[rune]) string {
	return string(enc.source)
}
