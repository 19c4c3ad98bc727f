// SPDX-License-Identifier: MIT
// Package matrix — Matrix Market coordinate reader.
//
// Contract:
//   - Banner must be the first line; keywords are case-insensitive.
//   - Comment ('%') and blank lines are skipped anywhere after the banner.
//   - Exactly nnz entry lines must follow the size line.
//   - Indices are validated against the declared shape before storing.
//
// Complexity: O(nnz) time, O(nnz) space.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	bannerPrefix   = "%%MatrixMarket"
	objectMatrix   = "matrix"
	formatCoord    = "coordinate"
	formatArray    = "array"
	maxLineBytes   = 1 << 20
	commentLeading = '%'
)

// ReadMarket parses a Matrix Market coordinate stream.
//
// Errors:
//   - ErrBadHeader, ErrUnsupportedFormat for the banner and size line.
//   - ErrBadEntry, ErrOutOfRange, ErrNaNInf for entry lines (wrapped with the line number).
//   - I/O errors from r, wrapped.
func ReadMarket(r io.Reader) (*Sparse, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("ReadMarket: %w", err)
		}
		return nil, fmt.Errorf("ReadMarket: empty input: %w", ErrBadHeader)
	}
	lineNo++

	sp, err := parseBanner(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("ReadMarket: line %d: %w", lineNo, err)
	}

	nnz := -1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == commentLeading {
			continue
		}

		if nnz < 0 {
			if nnz, err = parseSize(line, sp); err != nil {
				return nil, fmt.Errorf("ReadMarket: line %d: %w", lineNo, err)
			}
			sp.Entries = make([]Entry, 0, nnz)
			continue
		}

		if len(sp.Entries) == nnz {
			return nil, fmt.Errorf("ReadMarket: line %d: more than %d entries: %w", lineNo, nnz, ErrBadEntry)
		}
		e, err := parseEntry(line, sp)
		if err != nil {
			return nil, fmt.Errorf("ReadMarket: line %d: %w", lineNo, err)
		}
		sp.Entries = append(sp.Entries, e)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadMarket: %w", err)
	}

	if nnz < 0 {
		return nil, fmt.Errorf("ReadMarket: missing size line: %w", ErrBadHeader)
	}
	if len(sp.Entries) != nnz {
		return nil, fmt.Errorf("ReadMarket: got %d entries, size line declares %d: %w", len(sp.Entries), nnz, ErrBadEntry)
	}

	return sp, nil
}

// LoadMarketFile opens path and parses it with ReadMarket.
func LoadMarketFile(path string) (*Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadMarketFile: %w", err)
	}
	defer f.Close()

	sp, err := ReadMarket(f)
	if err != nil {
		return nil, fmt.Errorf("LoadMarketFile(%s): %w", path, err)
	}
	return sp, nil
}

// parseBanner validates "%%MatrixMarket matrix coordinate <field> <symmetry>".
func parseBanner(line string) (*Sparse, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 || fields[0] != bannerPrefix {
		return nil, fmt.Errorf("banner %q: %w", line, ErrBadHeader)
	}
	object := strings.ToLower(fields[1])
	format := strings.ToLower(fields[2])
	field := Field(strings.ToLower(fields[3]))
	sym := Symmetry(strings.ToLower(fields[4]))

	if object != objectMatrix {
		return nil, fmt.Errorf("object %q: %w", object, ErrUnsupportedFormat)
	}
	switch format {
	case formatCoord:
	case formatArray:
		return nil, fmt.Errorf("dense %q layout: %w", format, ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrBadHeader)
	}
	switch field {
	case FieldPattern, FieldReal, FieldInteger:
	default:
		return nil, fmt.Errorf("field %q: %w", field, ErrUnsupportedFormat)
	}
	switch sym {
	case SymmetryGeneral, SymmetrySymmetric, SymmetrySkew:
	default:
		return nil, fmt.Errorf("symmetry %q: %w", sym, ErrUnsupportedFormat)
	}

	return &Sparse{Field: field, Symmetry: sym}, nil
}

// parseSize reads "rows cols nnz" into sp and returns nnz.
func parseSize(line string, sp *Sparse) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, fmt.Errorf("size line %q: want 3 integers: %w", line, ErrBadHeader)
	}
	var vals [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("size line %q: %w", line, ErrBadHeader)
		}
		vals[i] = v
	}
	sp.Rows, sp.Cols = vals[0], vals[1]
	return vals[2], nil
}

// parseEntry reads "i j [value]" (1-based) into a 0-based Entry.
func parseEntry(line string, sp *Sparse) (Entry, error) {
	fields := strings.Fields(line)
	want := 3
	if sp.Field == FieldPattern {
		want = 2
	}
	if len(fields) != want {
		return Entry{}, fmt.Errorf("entry %q: want %d fields: %w", line, want, ErrBadEntry)
	}

	i, errI := strconv.Atoi(fields[0])
	j, errJ := strconv.Atoi(fields[1])
	if errI != nil || errJ != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", line, ErrBadEntry)
	}
	if i < 1 || i > sp.Rows || j < 1 || j > sp.Cols {
		return Entry{}, fmt.Errorf("entry (%d,%d) outside %dx%d: %w", i, j, sp.Rows, sp.Cols, ErrOutOfRange)
	}

	e := Entry{Row: i - 1, Col: j - 1, Value: 1}
	switch sp.Field {
	case FieldInteger:
		v, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("entry %q: %w", line, ErrBadEntry)
		}
		e.Value = float64(v)
	case FieldReal:
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return Entry{}, fmt.Errorf("entry %q: %w", line, ErrBadEntry)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Entry{}, fmt.Errorf("entry %q: %w", line, ErrNaNInf)
		}
		e.Value = v
	}

	return e, nil
}
