// SPDX-License-Identifier: MIT
package qubo_test

import (
	"fmt"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/qubo"
)

// ExampleEncodeQUBO prints the Q matrix of the reference instance.
func ExampleEncodeQUBO() {
	g, _ := builder.BuildGraph(nil, nil, builder.MaxCutExample())
	q, _ := qubo.EncodeQUBO(g)
	m, vars, _ := q.Matrix()
	fmt.Println(vars)
	fmt.Print(m)

	// Output:
	// [1 2 3 4 5]
	// [-2, 2, 2, 0, 0]
	// [0, -2, 0, 2, 0]
	// [0, 0, -3, 2, 2]
	// [0, 0, 0, -3, 2]
	// [0, 0, 0, 0, -2]
}
