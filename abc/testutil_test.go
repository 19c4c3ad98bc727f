// Package abc_test shares small fixtures across the colony tests.
package abc_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/beecolor/abc"
	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/core"
)

// seedDet is the fixed seed used wherever a test needs reproducibility.
const seedDet int64 = 42

// highThreshold keeps scouts out of bound-based tests.
const highThreshold = 1000

// mustBuild runs builder constructors with a fixed seed or fails the test.
func mustBuild(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seedDet)}, cons...)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	return g
}

// mustColor runs abc.Solve and checks that the result is a complete proper
// coloring whose reported counts agree with the map.
func mustColor(t testing.TB, g *core.Graph, opts ...abc.Option) abc.Result {
	t.Helper()
	res, err := abc.Solve(context.Background(), g, opts...)
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	if err = abc.Verify(g, res.Colors); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got := abc.ChromaticNumber(res.Colors); got != res.ChromaticNumber {
		t.Fatalf("ChromaticNumber = %d; map holds %d distinct colors", res.ChromaticNumber, got)
	}
	if res.ChromaticNumber > res.ColorsIntroduced {
		t.Fatalf("ChromaticNumber %d exceeds ColorsIntroduced %d", res.ChromaticNumber, res.ColorsIntroduced)
	}
	return res
}
