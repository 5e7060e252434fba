package builder_test

import (
	"fmt"

	"github.com/katalvlaran/maxcut/builder"
)

// ExampleMaxCutExample builds the reference instance used by the CLI.
func ExampleMaxCutExample() {
	g, err := builder.BuildGraph(nil, nil, builder.MaxCutExample())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Print("(", e.From, ",", e.To, ") ")
	}
	fmt.Println()

	// Output:
	// [1 2 3 4 5]
	// (1,2) (1,3) (2,4) (3,4) (3,5) (4,5)
}
