package bfs_test

import (
	"fmt"

	"github.com/DomWilliams0/team-project-sub000/bfs"
	"github.com/DomWilliams0/team-project-sub000/core"
)

// ExampleHops counts steps around a snipped centre cell.
func ExampleHops() {
	g := core.NewGraph()
	_ = g.GenerateEmptyGraph(3, 3)
	g.SnipEdges(1, 2, 1, 2)

	tree, err := bfs.Hops(g, core.C(0, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	n, _ := tree.HopsTo(core.C(2, 1))
	fmt.Println("hops:", n)
	_, ok := tree.HopsTo(core.C(1, 1))
	fmt.Println("centre reached:", ok)
	// Output:
	// hops: 4
	// centre reached: false
}
