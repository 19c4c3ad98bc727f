package abc

import "fmt"

// Color identifies a color. Valid colors are 0, 1, 2, ... in palette order.
type Color int

// Uncolored marks a vertex that has not been assigned a color yet.
const Uncolored Color = -1

// Palette is an ordered supply of distinct colors, handed out by index.
// It is a pure function of the index bounded by an explicit capacity; no
// color list is materialized.
type Palette struct {
	capacity int
}

// NewPalette returns a palette holding capacity colors. A non-positive
// capacity yields an empty palette on which every ColorAt fails.
func NewPalette(capacity int) Palette {
	if capacity < 0 {
		capacity = 0
	}
	return Palette{capacity: capacity}
}

// Capacity reports how many colors the palette can hand out.
func (p Palette) Capacity() int { return p.capacity }

// ColorAt returns the index-th color. Repeated calls with the same index
// always return the same color.
//
// Errors:
//   - ErrPaletteOverflow if index is outside [0, Capacity()).
//
// Complexity: O(1).
func (p Palette) ColorAt(index int) (Color, error) {
	if index < 0 || index >= p.capacity {
		return Uncolored, fmt.Errorf("%w: color #%d requested, capacity %d", ErrPaletteOverflow, index, p.capacity)
	}
	return Color(index), nil
}
