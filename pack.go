package huffcode

import (
	"bytes"
	"strings"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Pack packs an encoded stream of '0' and '1' characters into bytes, first
// bit in the most significant position.  The last byte is padded with zero
// bits; the caller must remember len(stream) to undo this with Unpack.
func Pack(stream string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(stream) + 7) / 8)

	w := bitio.NewWriter(&buf)
	for offset := 0; offset < len(stream); offset++ {
		var bit bool
		switch stream[offset] {
		case '0':
		case '1':
			bit = true
		default:
			return nil, errors.Wrapf(ErrMalformedStream, "invalid bit %q at offset %d", stream[offset], offset)
		}
		if err := w.WriteBool(bit); err != nil {
			return nil, errors.Wrap(err, "pack")
		}
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "pack")
	}
	return buf.Bytes(), nil
}

// Unpack is the inverse of Pack: it reads the first nbits bits of data and
// returns them as '0' and '1' characters.  If data holds fewer than nbits
// bits, the error wraps ErrMalformedStream.
func Unpack(data []byte, nbits int) (string, error) {
	if nbits < 0 || nbits > 8*len(data) {
		return "", errors.Wrapf(ErrMalformedStream, "%d bits requested from %d bytes", nbits, len(data))
	}

	var sb strings.Builder
	sb.Grow(nbits)

	r := bitio.NewReader(bytes.NewReader(data))
	for i := 0; i < nbits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", errors.Wrapf(err, "unpack bit %d", i)
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}
