// File: types.go
// Role: Coordinate, Node and Graph declarations, options and sentinel errors.
//
// Errors:
//
//	ErrBadWeight      - negative, NaN or infinite edge weight.
//	ErrLoopNotAllowed - edge from a coordinate to itself.
//	ErrBadDimensions  - lattice generation with a non-positive side.
//	ErrEmptyGraph     - random sampling over a graph with no nodes.
//	ErrNoCandidate    - random sampling where every node is excluded.
package core

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadWeight indicates an edge weight that is negative, NaN or infinite.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates an edge from a coordinate to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadDimensions indicates a lattice width or height below one.
	ErrBadDimensions = errors.New("core: grid dimensions must be positive")

	// ErrEmptyGraph indicates a query that needs at least one node.
	ErrEmptyGraph = errors.New("core: graph has no nodes")

	// ErrNoCandidate indicates random sampling found no node outside the exclusion.
	ErrNoCandidate = errors.New("core: no node available to sample")
)

// Coordinate is an immutable 2D integer position.
// It is comparable and therefore usable as a map key.
type Coordinate struct {
	X int32
	Y int32
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int32) Coordinate { return Coordinate{X: x, Y: y} }

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Point converts c into a planar orb.Point.
func (c Coordinate) Point() orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}

	return c.X < o.X
}

// Node is a graph vertex identified by its Coordinate.
//
// Neighbours are kept in insertion order; weights are looked up by coordinate.
// Mutation goes through Graph so that edges stay symmetric.
type Node struct {
	position Coordinate

	order   []Coordinate           // neighbour insertion order
	weights map[Coordinate]float64 // neighbour → edge weight

	slot int // index into Graph.keys, maintained by Graph
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithRand sets the random source used by RandomNode and RandomNodeExcept.
func WithRand(r *rand.Rand) GraphOption {
	return func(g *Graph) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds a private random source, making sampling reproducible.
func WithSeed(seed int64) GraphOption {
	return func(g *Graph) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithDimensions records the nominal width and height of the graph.
// GenerateEmptyGraph overwrites them.
func WithDimensions(width, height int) GraphOption {
	return func(g *Graph) {
		g.width = width
		g.height = height
	}
}

// Graph owns every Node keyed by Coordinate.
//
// keys mirrors the node table as a slice so uniform sampling is O(1);
// Node.slot points back into it for O(1) removal.
type Graph struct {
	width  int
	height int

	nodes map[Coordinate]*Node
	keys  []Coordinate

	rng *rand.Rand
}

// NewGraph creates an empty Graph.
// Without WithRand or WithSeed the random source is seeded from the clock.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[Coordinate]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// Width returns the nominal graph width.
func (g *Graph) Width() int { return g.width }

// Height returns the nominal graph height.
func (g *Graph) Height() int { return g.height }
