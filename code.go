package huffcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Code represents a sequence of bits, written as '0' and '1' characters.  The
// first character is the first bit, i.e. the branch taken at the root.
type Code string

// ParseCode validates that s consists only of '0' and '1' characters.
func ParseCode(s string) (Code, error) {
	if i := strings.IndexFunc(s, isNotBit); i >= 0 {
		return "", errors.Wrapf(ErrMalformedStream, "invalid bit %q at offset %d", s[i], i)
	}
	return Code(s), nil
}

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Append returns this Code with one more bit on the end.
func (hc Code) Append(bit bool) Code {
	if bit {
		return hc + "1"
	}
	return hc + "0"
}

// IsPrefixOf returns true iff every bit of this Code matches the leading bits
// of other.  A Code is a prefix of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

func isNotBit(r rune) bool {
	return r != '0' && r != '1'
}
