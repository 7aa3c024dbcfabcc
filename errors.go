package huffcode

import (
	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when a tree is requested for an input with no
// symbols.
var ErrEmptyInput = errors.New("huffcode: no symbols to build a tree from")

// ErrUnknownSymbol is returned when the encoder is asked to encode a symbol
// that has no code.
var ErrUnknownSymbol = errors.New("huffcode: symbol has no code")

// ErrMalformedStream is returned when an encoded stream is not a whole
// sequence of codes, or contains characters other than '0' and '1'.
var ErrMalformedStream = errors.New("huffcode: malformed encoded stream")

// ErrInvalidNavigation is returned when the decoder is asked to descend past a
// leaf, or into a child that does not exist.
var ErrInvalidNavigation = errors.New("huffcode: invalid tree navigation")
