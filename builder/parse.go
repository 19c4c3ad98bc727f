// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// parse.go — textual topology descriptors for command-line use.
//
// Grammar (case-insensitive name):
//
//	cycle:N | path:N | star:N | wheel:N | complete:N
//	bipartite:N1,N2 | grid:RxC | random:N,P
//
// Parse only checks the shape of the descriptor; value ranges are validated
// by the constructor itself when BuildGraph runs it.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns a descriptor such as "cycle:5" or "grid:3x4" into a Constructor.
//
// Errors:
//   - ErrUnknownTopology for an unknown name or malformed arguments.
func Parse(desc string) (Constructor, error) {
	name, args, ok := strings.Cut(strings.TrimSpace(desc), ":")
	if !ok {
		return nil, fmt.Errorf("Parse(%q): missing ':' separator: %w", desc, ErrUnknownTopology)
	}

	switch strings.ToLower(name) {
	case "cycle", "path", "star", "wheel", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): size: %v: %w", desc, err, ErrUnknownTopology)
		}
		return map[string]func(int) Constructor{
			"cycle":    Cycle,
			"path":     Path,
			"star":     Star,
			"wheel":    Wheel,
			"complete": Complete,
		}[strings.ToLower(name)](n), nil

	case "bipartite":
		n1, n2, err := parsePair(args, ",")
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): %v: %w", desc, err, ErrUnknownTopology)
		}
		return CompleteBipartite(n1, n2), nil

	case "grid":
		rows, cols, err := parsePair(strings.ToLower(args), "x")
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): %v: %w", desc, err, ErrUnknownTopology)
		}
		return Grid(rows, cols), nil

	case "random":
		ns, ps, ok := strings.Cut(args, ",")
		if !ok {
			return nil, fmt.Errorf("Parse(%q): want random:N,P: %w", desc, ErrUnknownTopology)
		}
		n, err := strconv.Atoi(ns)
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): size: %v: %w", desc, err, ErrUnknownTopology)
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return nil, fmt.Errorf("Parse(%q): probability: %v: %w", desc, err, ErrUnknownTopology)
		}
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("Parse(%q): unknown name %q: %w", desc, name, ErrUnknownTopology)
}

// parsePair splits "a<sep>b" into two integers.
func parsePair(s, sep string) (int, int, error) {
	as, bs, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("want two values separated by %q", sep)
	}
	a, err := strconv.Atoi(as)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(bs)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
