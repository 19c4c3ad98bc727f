package abc_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/beecolor/abc"
	"github.com/katalvlaran/beecolor/builder"
)

// ExampleSolve colors the complete graph K4, which always needs four colors.
func ExampleSolve() {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	res, err := abc.Solve(context.Background(), g,
		abc.WithEmployedBees(2),
		abc.WithOnlookerBees(28),
		abc.WithSeed(7),
	)
	if err != nil {
		fmt.Println("color:", err)
		return
	}
	fmt.Println("Chromatic Number:", res.ChromaticNumber)
	fmt.Println("proper:", abc.Verify(g, res.Colors) == nil)
	// Output:
	// Chromatic Number: 4
	// proper: true
}
