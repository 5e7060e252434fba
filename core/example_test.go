package core_test

import (
	"fmt"

	"github.com/katalvlaran/maxcut/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected, unweighted graph:
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices):
	_, _ = g.AddEdge("1", "2", 0)
	_, _ = g.AddEdge("2", "10", 0)
	_, _ = g.AddEdge("10", "1", 0)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge 2-1 exists?", g.HasEdge("2", "1"))
	fmt.Println("Total weight:", g.TotalWeight())

	// Output:
	// Vertices: [1 2 10]
	// Edge 2-1 exists? true
	// Total weight: 3
}
