package dijkstra_test

import (
	"fmt"

	"github.com/DomWilliams0/team-project-sub000/core"
	"github.com/DomWilliams0/team-project-sub000/dijkstra"
)

// ExampleDijkstra computes the distance field of a 3×3 lattice whose centre
// has been snipped out, so the far corner is reached around the rim.
func ExampleDijkstra() {
	g := core.NewGraph()
	if err := g.GenerateEmptyGraph(3, 3); err != nil {
		fmt.Println("error:", err)
		return
	}
	g.SnipEdges(1, 2, 1, 2)

	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(core.C(0, 0)),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("reached:", len(dist))
	fmt.Println("to (2,2):", dist[core.C(2, 2)])
	fmt.Println("to (1,2):", dist[core.C(1, 2)])
	fmt.Println("route:", dijkstra.PathTo(dist, prev, core.C(2, 0)))
	// Output:
	// reached: 8
	// to (2,2): 4
	// to (1,2): 3
	// route: [(0,0) (1,0) (2,0)]
}
