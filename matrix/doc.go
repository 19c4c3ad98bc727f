// Package matrix loads sparse matrices in the Matrix Market exchange format
// and exports them as undirected simple graphs.
//
// Only the coordinate layout is supported, with pattern, real or integer
// fields and general, symmetric or skew-symmetric storage:
//
//	%%MatrixMarket matrix coordinate pattern symmetric
//	% comment lines start with '%'
//	4 4 4
//	2 1
//	3 2
//	4 3
//	4 1
//
// Row and column indices in the file are 1-based; Sparse stores them 0-based.
// ToGraph maps row i to vertex ID strconv.Itoa(i), skips diagonal entries and
// entries whose magnitude does not exceed the edge threshold (default 0, so
// any explicit non-zero is an edge), and collapses mirrored duplicates.
//
// Typical use:
//
//	sp, err := matrix.LoadMarketFile("johnson8-2-4.mtx")
//	if err != nil {
//	    return err
//	}
//	g, err := sp.ToGraph()
package matrix
