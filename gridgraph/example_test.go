package gridgraph_test

import (
	"fmt"

	"github.com/DomWilliams0/team-project-sub000/core"
	"github.com/DomWilliams0/team-project-sub000/gridgraph"
)

// ExampleSite places a building across a corridor and removes it again.
func ExampleSite() {
	g := core.NewGraph()
	_ = g.GenerateEmptyGraph(5, 1)
	site, _ := gridgraph.NewSite(g)

	fp, err := site.Place(2, 0, 1, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("placed", fp)
	fmt.Println("regions:", len(gridgraph.Components(g)))

	_, err = site.Place(2, 0, 1, 1)
	fmt.Println(err)

	_ = site.Remove(fp.ID)
	fmt.Println("regions:", len(gridgraph.Components(g)))
	// Output:
	// placed #1 1x1@(2,0)
	// regions: 3
	// gridgraph: footprint overlaps a placed footprint: #1 1x1@(2,0)
	// regions: 1
}

// ExampleFromCells builds a graph from a cell map and lists its land islands.
func ExampleFromCells() {
	cells := [][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
	}
	g, err := gridgraph.FromCells(cells, gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, comp := range gridgraph.Components(g) {
		if len(comp) > 1 {
			fmt.Println(comp)
		}
	}
	// Output:
	// [(0,0) (1,0) (1,1)]
	// [(3,0) (3,1)]
}
