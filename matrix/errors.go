// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Parsers wrap these with the line
// number (fmt.Errorf("line %d: %w", n, ErrX)); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadHeader is returned when the first line is not a
	// "%%MatrixMarket matrix ..." banner or the size line is malformed.
	ErrBadHeader = errors.New("matrix: malformed Matrix Market header")

	// ErrUnsupportedFormat is returned for valid banners this package does not
	// load (array layout, complex field, hermitian symmetry).
	ErrUnsupportedFormat = errors.New("matrix: unsupported Matrix Market format")

	// ErrBadEntry is returned for an unparsable entry line or an entry count
	// that disagrees with the size line.
	ErrBadEntry = errors.New("matrix: malformed entry")

	// ErrOutOfRange indicates that an entry index is outside the declared shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Sparse receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value in a real entry.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
