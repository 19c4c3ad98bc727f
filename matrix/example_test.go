package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/beecolor/matrix"
)

// ExampleReadMarket loads a triangle stored as a symmetric pattern matrix.
func ExampleReadMarket() {
	src := `%%MatrixMarket matrix coordinate pattern symmetric
3 3 3
2 1
3 1
3 2
`
	sp, err := matrix.ReadMarket(strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := sp.ToGraph()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Vertices(), g.EdgeCount())
	// Output: [0 1 2] 3
}
