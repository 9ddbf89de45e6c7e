// Package gridgraph defines connectivity, options, footprint types and
// sentinel errors for grid construction and building placement.
package gridgraph

import (
	"errors"
	"log"
	"math"

	"github.com/DomWilliams0/team-project-sub000/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrGraphNil indicates a Site bound to a nil graph.
	ErrGraphNil = errors.New("gridgraph: graph is nil")
	// ErrBadFootprint indicates a footprint with a non-positive side or outside the graph.
	ErrBadFootprint = errors.New("gridgraph: bad footprint")
	// ErrFootprintOverlap indicates a footprint covering an already covered cell.
	ErrFootprintOverlap = errors.New("gridgraph: footprint overlaps a placed footprint")
	// ErrFootprintNotFound indicates an unknown footprint id.
	ErrFootprintNotFound = errors.New("gridgraph: footprint not found")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int32{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int32{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// offsets returns the neighbour offsets of conn in clockwise order from north.
func (conn Connectivity) offsets() [][2]int32 {
	if conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// stepCost is 1 for orthogonal steps and √2 for diagonal ones.
func stepCost(d [2]int32) float64 {
	if d[0] != 0 && d[1] != 0 {
		return math.Sqrt2
	}

	return 1
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Graph options forwarded to core.NewGraph (for example core.WithSeed).
	Graph []core.GraphOption
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// SiteOption configures a Site.
type SiteOption func(*Site)

// WithLogger reports placements and removals to l.
func WithLogger(l *log.Logger) SiteOption {
	return func(s *Site) { s.logger = l }
}

// WithRelink makes Remove also rebuild lattice edges around freed cells per
// conn, orthogonal at weight 1 and Conn8 diagonals at √2, on top of the edges
// the footprint cut. Useful when edges were lost while the footprint stood.
func WithRelink(conn Connectivity) SiteOption {
	return func(s *Site) {
		s.relink = true
		s.conn = conn
	}
}

// WithPassable restricts WithRelink to cells for which fn reports true,
// so relinking next to water does not bridge it.
func WithPassable(fn func(c core.Coordinate) bool) SiteOption {
	return func(s *Site) {
		if fn != nil {
			s.passable = fn
		}
	}
}
