// Package builder provides helper functions for configuring vertex ID schemes.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// This matches the IDs the Matrix Market loader produces.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// PaddedIDFn returns a fixed-width decimal ID ("v007") so that lexicographic
// vertex order equals numeric order, which keeps verbose colony output
// readable on graphs with up to 10^width vertices.
func PaddedIDFn(prefix string, width int) IDFn {
	return func(idx int) string {
		return fmt.Sprintf("%s%0*d", prefix, width, idx)
	}
}
