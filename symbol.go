package huffcode

// FrequencyTable counts the occurrences of each distinct symbol in a
// sequence.  It also remembers the order in which symbols were first seen,
// which BuildTree uses to break ties between equal frequencies.
//
// The zero value is an empty table, ready to use.
//
type FrequencyTable[S comparable] struct {
	counts map[S]uint64
	order  []S
	total  uint64
}

// CountFrequencies builds a FrequencyTable from a sequence of symbols.
func CountFrequencies[S comparable](src []S) FrequencyTable[S] {
	var ft FrequencyTable[S]
	for _, symbol := range src {
		ft.Add(symbol, 1)
	}
	return ft
}

// Add records n more occurrences of symbol.  Adding 0 occurrences does
// nothing, so a symbol is never present with a count of zero.
func (ft *FrequencyTable[S]) Add(symbol S, n uint64) {
	if n == 0 {
		return
	}
	if ft.counts == nil {
		ft.counts = make(map[S]uint64)
	}
	count, found := ft.counts[symbol]
	if !found {
		ft.order = append(ft.order, symbol)
	}
	ft.counts[symbol] = saturatingAdd(count, n)
	ft.total = saturatingAdd(ft.total, n)
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable[S]) Len() int {
	return len(ft.order)
}

// Count returns the number of occurrences of symbol.
func (ft FrequencyTable[S]) Count(symbol S) uint64 {
	return ft.counts[symbol]
}

// Total returns the sum of all counts.
func (ft FrequencyTable[S]) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct symbols in the order they were first seen.
func (ft FrequencyTable[S]) Symbols() []S {
	out := make([]S, len(ft.order))
	copy(out, ft.order)
	return out
}
