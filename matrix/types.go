// SPDX-License-Identifier: MIT

package matrix

// Field is the value type declared in the Matrix Market banner.
type Field string

// Symmetry is the storage scheme declared in the Matrix Market banner.
type Symmetry string

const (
	FieldPattern Field = "pattern"
	FieldReal    Field = "real"
	FieldInteger Field = "integer"

	SymmetryGeneral   Symmetry = "general"
	SymmetrySymmetric Symmetry = "symmetric"
	SymmetrySkew      Symmetry = "skew-symmetric"
)

// Entry is one stored coordinate, 0-based. Pattern entries carry Value 1.
type Entry struct {
	Row, Col int
	Value    float64
}

// Sparse is a coordinate-format matrix exactly as stored in the file: for
// symmetric storage only one triangle is present and ToGraph mirrors it.
type Sparse struct {
	Rows, Cols int
	Field      Field
	Symmetry   Symmetry
	Entries    []Entry
}

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int {
	if s == nil {
		return 0
	}
	return len(s.Entries)
}

// IsSquare reports whether Rows == Cols.
func (s *Sparse) IsSquare() bool {
	return s != nil && s.Rows == s.Cols
}
