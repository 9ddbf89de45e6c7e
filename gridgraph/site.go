package gridgraph

import (
	"fmt"
	"log"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"

	"github.com/DomWilliams0/team-project-sub000/core"
)

// Footprint is a placed building: the half-open cell rectangle
// [X, X+W) × [Y, Y+H).
type Footprint struct {
	ID   int
	X, Y int32
	W, H int32
}

// Contains reports whether c is one of the covered cells.
func (f Footprint) Contains(c core.Coordinate) bool {
	return c.X >= f.X && c.X < f.X+f.W && c.Y >= f.Y && c.Y < f.Y+f.H
}

// Overlaps reports whether f and o share at least one cell.
func (f Footprint) Overlaps(o Footprint) bool {
	return f.X < o.X+o.W && o.X < f.X+f.W && f.Y < o.Y+o.H && o.Y < f.Y+f.H
}

// Bound returns the footprint's planar extent, corner to corner.
func (f Footprint) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(f.X), float64(f.Y)},
		Max: orb.Point{float64(f.X + f.W), float64(f.Y + f.H)},
	}
}

// Cells lists the covered coordinates row-major.
func (f Footprint) Cells() []core.Coordinate {
	out := make([]core.Coordinate, 0, int(f.W)*int(f.H))
	for y := f.Y; y < f.Y+f.H; y++ {
		for x := f.X; x < f.X+f.W; x++ {
			out = append(out, core.C(x, y))
		}
	}

	return out
}

func (f Footprint) String() string {
	return fmt.Sprintf("#%d %dx%d@(%d,%d)", f.ID, f.W, f.H, f.X, f.Y)
}

// severedEdge is an edge cut by a placement, kept with its weight.
type severedEdge struct {
	a, b core.Coordinate
	w    float64
}

// footprintEntry wraps a footprint for R-tree storage.
// severed holds the edges to give back when the footprint is lifted,
// including edges handed over by footprints lifted earlier.
type footprintEntry struct {
	fp      Footprint
	bbox    rtreego.Rect
	severed []severedEdge
}

// Bounds implements rtreego.Spatial.
func (e *footprintEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Site manages building footprints placed on a shared graph.
//
// Placement only removes edges and removal only adds them back; nodes are
// never created or deleted, so coordinates held by running searches stay
// valid throughout. Each footprint remembers the edges it cut, so lifting it
// restores the graph as it was, caller-set weights and missing walls included.
type Site struct {
	graph    *core.Graph
	tree     *rtreego.Rtree
	entries  map[int]*footprintEntry
	nextID   int
	relink   bool
	conn     Connectivity
	passable func(core.Coordinate) bool
	logger   *log.Logger
}

// NewSite binds an empty site to g.
// Returns ErrGraphNil if g is nil.
func NewSite(g *core.Graph, opts ...SiteOption) (*Site, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := &Site{
		graph:    g,
		tree:     rtreego.NewTree(2, 25, 50), // 2D, min 25, max 50 entries per node
		entries:  make(map[int]*footprintEntry),
		nextID:   1,
		conn:     Conn4,
		passable: func(core.Coordinate) bool { return true },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Place covers the w×h rectangle whose top-left cell is (x,y) and snips every
// edge of the covered nodes.
//
// Errors (site and graph unchanged):
//   - ErrBadFootprint if w or h < 1, or, when the graph has dimensions, if the
//     rectangle leaves [0,Width) × [0,Height).
//   - ErrFootprintOverlap if any cell is already covered.
func (s *Site) Place(x, y, w, h int32) (Footprint, error) {
	fp := Footprint{X: x, Y: y, W: w, H: h}
	if w < 1 || h < 1 {
		return Footprint{}, fmt.Errorf("%w: size %dx%d", ErrBadFootprint, w, h)
	}
	if gw, gh := s.graph.Width(), s.graph.Height(); gw > 0 && gh > 0 {
		if x < 0 || y < 0 || int(x)+int(w) > gw || int(y)+int(h) > gh {
			return Footprint{}, fmt.Errorf("%w: %dx%d@(%d,%d) outside %dx%d", ErrBadFootprint, w, h, x, y, gw, gh)
		}
	}
	if hits := s.search(fp); len(hits) > 0 {
		return Footprint{}, fmt.Errorf("%w: %v", ErrFootprintOverlap, hits[0])
	}

	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(x), float64(y)},
		[]float64{float64(w), float64(h)},
	)
	if err != nil {
		return Footprint{}, fmt.Errorf("%w: %v", ErrBadFootprint, err)
	}
	fp.ID = s.nextID
	s.nextID++
	e := &footprintEntry{fp: fp, bbox: bbox, severed: s.edgesOf(fp)}
	s.tree.Insert(e)
	s.entries[fp.ID] = e

	snipped := s.graph.SnipEdges(x, x+w, y, y+h)
	s.logf("gridgraph: placed %v, %d nodes snipped", fp, snipped)

	return fp, nil
}

// Remove lifts footprint id and gives back the edges its placement cut, at
// their original weights. An edge whose other end is still covered is handed
// to the covering footprint and comes back when that one is lifted. Edges
// that have been re-added in the meantime are left alone.
//
// With WithRelink the freed cells are then also joined to every passable,
// uncovered lattice neighbour they still lack an edge to.
//
// Returns ErrFootprintNotFound for an unknown id.
func (s *Site) Remove(id int) error {
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: #%d", ErrFootprintNotFound, id)
	}
	s.tree.Delete(e)
	delete(s.entries, id)

	restored := 0
	for _, se := range e.severed {
		if holder := s.holder(se); holder != nil {
			holder.severed = append(holder.severed, se)
			continue
		}
		if !s.graph.HasNode(se.a) || !s.graph.HasNode(se.b) || s.graph.HasEdge(se.a, se.b) {
			continue
		}
		if err := s.graph.AddEdge(se.a, se.b, se.w); err != nil {
			return err
		}
		restored++
	}
	if s.relink {
		n, err := s.relinkCells(e.fp)
		if err != nil {
			return err
		}
		restored += n
	}
	s.logf("gridgraph: removed %v, %d edges restored", e.fp, restored)

	return nil
}

// edgesOf lists every edge touching fp's cells, edges inside fp once.
func (s *Site) edgesOf(fp Footprint) []severedEdge {
	var out []severedEdge
	for _, c := range fp.Cells() {
		n, ok := s.graph.Node(c)
		if !ok {
			continue
		}
		for _, nb := range n.Neighbors() {
			if fp.Contains(nb) && nb.Less(c) {
				continue
			}
			w, _ := n.Weight(nb)
			out = append(out, severedEdge{a: c, b: nb, w: w})
		}
	}

	return out
}

// holder returns the entry of a footprint still covering an end of se.
func (s *Site) holder(se severedEdge) *footprintEntry {
	for _, c := range [2]core.Coordinate{se.a, se.b} {
		if fp, ok := s.At(c); ok {
			return s.entries[fp.ID]
		}
	}

	return nil
}

// relinkCells joins fp's cells to their lattice neighbours per the site's
// connectivity, skipping impassable, covered and missing cells.
func (s *Site) relinkCells(fp Footprint) (int, error) {
	added := 0
	for _, c := range fp.Cells() {
		if !s.graph.HasNode(c) || !s.passable(c) {
			continue
		}
		for _, d := range s.conn.offsets() {
			nc := core.C(c.X+d[0], c.Y+d[1])
			if !s.graph.HasNode(nc) || !s.passable(nc) || s.Covered(nc) {
				continue
			}
			if s.graph.HasEdge(c, nc) {
				continue
			}
			if err := s.graph.AddEdge(c, nc, stepCost(d)); err != nil {
				return added, err
			}
			added++
		}
	}

	return added, nil
}

// At returns the footprint covering c, if any.
func (s *Site) At(c core.Coordinate) (Footprint, bool) {
	hits := s.search(Footprint{X: c.X, Y: c.Y, W: 1, H: 1})
	if len(hits) == 0 {
		return Footprint{}, false
	}

	return hits[0], true
}

// Covered reports whether any footprint covers c.
func (s *Site) Covered(c core.Coordinate) bool {
	_, ok := s.At(c)

	return ok
}

// Footprint returns the footprint with the given id.
func (s *Site) Footprint(id int) (Footprint, bool) {
	e, ok := s.entries[id]
	if !ok {
		return Footprint{}, false
	}

	return e.fp, true
}

// Footprints lists every placed footprint in id order.
func (s *Site) Footprints() []Footprint {
	out := make([]Footprint, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.fp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Len returns the number of placed footprints.
func (s *Site) Len() int { return len(s.entries) }

// Graph returns the graph the site edits.
func (s *Site) Graph() *core.Graph { return s.graph }

// search returns placed footprints sharing a cell with q, in id order.
// The query rectangle is shrunk inside q's cells so that footprints merely
// touching q along an edge are not reported; hits are then checked exactly.
func (s *Site) search(q Footprint) []Footprint {
	const inset = 0.25
	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(q.X) + inset, float64(q.Y) + inset},
		[]float64{float64(q.W) - 2*inset, float64(q.H) - 2*inset},
	)
	if err != nil {
		return nil
	}

	var out []Footprint
	for _, item := range s.tree.SearchIntersect(bbox) {
		fp := item.(*footprintEntry).fp
		if fp.Overlaps(q) {
			out = append(out, fp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (s *Site) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
