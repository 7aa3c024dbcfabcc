package huffcode

import (
	mathbits "math/bits"
)

func log2uint64(x uint64) uint64 {
	if x == 0 {
		x = 1
	}
	return uint64(64 - mathbits.LeadingZeros64(x))
}

// saturatingAdd returns a + b, clamped to math.MaxUint64.
func saturatingAdd(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}
