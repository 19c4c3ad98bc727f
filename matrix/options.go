// SPDX-License-Identifier: MIT
// Package matrix: functional options for ToGraph.
//
// WithX constructors validate their arguments and panic on nonsensical values
// (programmer error); ToGraph itself never panics.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEdgeThreshold keeps every explicit non-zero entry as an edge.
const DefaultEdgeThreshold = 0.0

// Option customizes ToGraph.
type Option func(*options)

type options struct {
	edgeThreshold float64
}

// WithEdgeThreshold emits an edge only when |a[i,j]| > thr.
// Panics on NaN, Inf or negative thr.
func WithEdgeThreshold(thr float64) Option {
	if math.IsNaN(thr) || math.IsInf(thr, 0) || thr < 0 {
		panic(fmt.Sprintf("matrix: WithEdgeThreshold(%v): must be finite and ≥ 0", thr))
	}
	return func(o *options) { o.edgeThreshold = thr }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{edgeThreshold: DefaultEdgeThreshold}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
