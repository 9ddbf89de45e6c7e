package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/DomWilliams0/team-project-sub000/core"
	"github.com/DomWilliams0/team-project-sub000/frontier"
)

// Ticker runs one search over a shared graph, one expansion per tick.
//
// A Ticker is reusable: Reset re-initializes every transient field for a new
// (algorithm, start, end) triple. It never mutates the graph, and it reads a
// node's neighbours afresh on every expansion, so edges snipped or added
// between ticks are honored from the next expansion on.
type Ticker struct {
	graph *core.Graph
	opts  Options

	policy    Policy
	heuristic HeuristicFunc

	front    frontier.Frontier
	visited  map[core.Coordinate]struct{}
	cameFrom map[core.Coordinate]core.Coordinate
	path     []core.Coordinate
	delta    []core.Coordinate

	recent    core.Coordinate
	hasRecent bool

	start, end core.Coordinate
	state      State
	expansions int

	pauses PauseRegistry
}

// NewTicker binds an idle ticker to g.
// Returns ErrGraphNil if g is nil.
func NewTicker(g *core.Graph, opts ...Option) (*Ticker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Ticker{
		graph:    g,
		opts:     o,
		visited:  make(map[core.Coordinate]struct{}),
		cameFrom: make(map[core.Coordinate]core.Coordinate),
	}, nil
}

// Reset starts a new search from start to end with alg.
//
// Errors (state unchanged):
//   - ErrUnknownAlgorithm if alg is not one of the four algorithms.
//   - ErrInvalidEndpoint if start or end has no node in the graph.
//
// Pause flags survive a reset; they belong to the pausers, not the search.
func (t *Ticker) Reset(alg Algorithm, start, end core.Coordinate) error {
	p, err := PolicyFor(alg)
	if err != nil {
		return err
	}
	if !t.graph.HasNode(start) {
		return fmt.Errorf("%w: start %v", ErrInvalidEndpoint, start)
	}
	if !t.graph.HasNode(end) {
		return fmt.Errorf("%w: end %v", ErrInvalidEndpoint, end)
	}
	front, err := p.NewFrontier()
	if err != nil {
		return err
	}

	t.policy = p
	t.heuristic = p.Heuristic
	if alg == AStar && t.opts.Heuristic != nil {
		t.heuristic = t.opts.Heuristic
	}
	t.front = front
	t.visited = make(map[core.Coordinate]struct{})
	t.cameFrom = make(map[core.Coordinate]core.Coordinate)
	t.path = nil
	t.delta = nil
	t.recent, t.hasRecent = core.Coordinate{}, false
	t.start, t.end = start, end
	t.expansions = 0

	t.front.Add(start, t.heuristic(start, end))
	t.state = Running
	if t.front.IsEmpty() {
		t.finish(Failed)
	}
	t.logf("search: reset %v %v→%v", alg, start, end)

	return nil
}

// Tick performs one expansion unless the ticker is paused or terminal.
// Reports whether the search advanced.
func (t *Ticker) Tick() bool {
	if t.pauses.IsPaused() {
		return false
	}

	return t.advance()
}

// Step performs one expansion regardless of pause flags.
// It is the single-step override for manual stepping.
func (t *Ticker) Step() bool {
	return t.advance()
}

// advance is one state-machine transition.
func (t *Ticker) advance() bool {
	if t.state != Running {
		return false
	}
	t.delta = nil
	if t.front.IsEmpty() {
		t.finish(Failed)
		return true
	}

	node, err := t.front.Take()
	if err != nil {
		t.finish(Failed)
		return true
	}
	t.recent, t.hasRecent = node, true
	t.visited[node] = struct{}{}
	t.expansions++
	t.opts.OnExpand(node)

	t.path = t.reconstruct(node)
	if node == t.end {
		t.finish(Complete)
		return true
	}

	if t.policy.Weighted() {
		t.expandWeighted(node)
	} else {
		t.expandUnweighted(node)
	}

	// nothing left to take: fail now rather than on an extra tick
	if t.front.IsEmpty() {
		t.finish(Failed)
	}

	return true
}

// expandUnweighted inserts every unseen neighbour once; neighbours already
// waiting in the frontier keep their original predecessor.
func (t *Ticker) expandUnweighted(node core.Coordinate) {
	n, ok := t.graph.Node(node)
	if !ok {
		return
	}
	for _, nb := range n.Neighbors() {
		if t.IsVisited(nb) || t.front.Contains(nb) {
			continue
		}
		t.cameFrom[nb] = node
		t.enqueue(nb, 0)
	}
}

// expandWeighted relaxes every neighbour of node.
//
// Relaxation uses tentative <= current, so a tie re-parents the neighbour
// onto node even without improving it. Expanded neighbours are skipped:
// their cost is settled and re-parenting one could close a predecessor cycle.
func (t *Ticker) expandWeighted(node core.Coordinate) {
	n, ok := t.graph.Node(node)
	if !ok {
		return
	}
	chain := chainView{t}
	base := t.policy.CostSoFar(t.graph, chain, node)
	for _, nb := range n.Neighbors() {
		if t.IsVisited(nb) {
			continue
		}
		tentative := base + t.policy.EdgeCost(t.graph, node, nb)
		if tentative > t.policy.CostSoFar(t.graph, chain, nb) {
			continue
		}
		t.cameFrom[nb] = node
		priority := tentative + t.heuristic(nb, t.end)
		if t.front.Contains(nb) {
			t.front.Update(nb, priority)
			continue
		}
		t.enqueue(nb, priority)
	}
}

func (t *Ticker) enqueue(c core.Coordinate, priority float64) {
	t.front.Add(c, priority)
	t.delta = append(t.delta, c)
	t.opts.OnEnqueue(c, priority)
}

// reconstruct returns the predecessor chain start→c.
func (t *Ticker) reconstruct(c core.Coordinate) []core.Coordinate {
	rev := []core.Coordinate{c}
	for c != t.start && len(rev) <= len(t.cameFrom) {
		prev, ok := t.cameFrom[c]
		if !ok {
			break
		}
		rev = append(rev, prev)
		c = prev
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

func (t *Ticker) finish(s State) {
	t.state = s
	if s == Failed {
		t.path = nil
	}
	t.logf("search: %v %v→%v %v after %d expansions", t.policy.Algorithm, t.start, t.end, s, t.expansions)
	t.opts.OnFinish(s, t.Path())
}

func (t *Ticker) logf(format string, args ...interface{}) {
	if t.opts.Logger != nil {
		t.opts.Logger.Printf(format, args...)
	}
}

// Pause registers a hold by id.
func (t *Ticker) Pause(id PauserID) error { return t.pauses.Pause(id) }

// Resume lifts id's hold; other holders keep the ticker paused.
func (t *Ticker) Resume(id PauserID) error { return t.pauses.Resume(id) }

// IsPaused reports whether any pauser holds the ticker.
func (t *Ticker) IsPaused() bool { return t.pauses.IsPaused() }

// PausedBy reports whether id holds the ticker.
func (t *Ticker) PausedBy(id PauserID) bool { return t.pauses.PausedBy(id) }

// State returns the lifecycle stage.
func (t *Ticker) State() State { return t.state }

// PathComplete reports whether the search has terminated, successfully or not.
// A terminated search with an empty Path found no route.
func (t *Ticker) PathComplete() bool { return t.state.Terminal() }

// Path returns the current path as coordinates: start→goal once Complete,
// start→most recently expanded while Running, empty once Failed.
func (t *Ticker) Path() []core.Coordinate {
	out := make([]core.Coordinate, len(t.path))
	copy(out, t.path)

	return out
}

// Frontier returns the frontier's coordinates in take order.
func (t *Ticker) Frontier() []core.Coordinate {
	if t.front == nil {
		return nil
	}

	return t.front.Items()
}

// InFrontier reports whether c waits in the frontier.
func (t *Ticker) InFrontier(c core.Coordinate) bool {
	return t.front != nil && t.front.Contains(c)
}

// Visited returns the expanded coordinates sorted row-major.
func (t *Ticker) Visited() []core.Coordinate {
	out := make([]core.Coordinate, 0, len(t.visited))
	for c := range t.visited {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// IsVisited reports whether c has been expanded.
func (t *Ticker) IsVisited(c core.Coordinate) bool {
	_, ok := t.visited[c]

	return ok
}

// MostRecentlyExpanded returns the coordinate expanded by the latest tick.
func (t *Ticker) MostRecentlyExpanded() (core.Coordinate, bool) {
	return t.recent, t.hasRecent
}

// LastFrontierDelta returns the coordinates inserted by the latest tick.
func (t *Ticker) LastFrontierDelta() []core.Coordinate {
	out := make([]core.Coordinate, len(t.delta))
	copy(out, t.delta)

	return out
}

// CostSoFar returns g(c) under the active policy: 0 for the unweighted
// algorithms, the accumulated chain weight (or +Inf if unreached) for the
// weighted ones, and +Inf while Idle.
func (t *Ticker) CostSoFar(c core.Coordinate) float64 {
	if t.state == Idle {
		return math.Inf(1)
	}

	return t.policy.CostSoFar(t.graph, chainView{t}, c)
}

// Predecessor returns the recorded predecessor of c.
func (t *Ticker) Predecessor(c core.Coordinate) (core.Coordinate, bool) {
	p, ok := t.cameFrom[c]

	return p, ok
}

// Algorithm returns the algorithm of the current search.
func (t *Ticker) Algorithm() Algorithm { return t.policy.Algorithm }

// Start returns the current search's start coordinate.
func (t *Ticker) Start() core.Coordinate { return t.start }

// End returns the current search's goal coordinate.
func (t *Ticker) End() core.Coordinate { return t.end }

// Expansions returns the number of expansions since the last Reset.
func (t *Ticker) Expansions() int { return t.expansions }

// Graph returns the graph the ticker is bound to.
func (t *Ticker) Graph() *core.Graph { return t.graph }

// chainView exposes the ticker's predecessor map as a Chain.
type chainView struct{ t *Ticker }

func (v chainView) Start() core.Coordinate { return v.t.start }
func (v chainView) Links() int             { return len(v.t.cameFrom) }

func (v chainView) Predecessor(c core.Coordinate) (core.Coordinate, bool) {
	return v.t.Predecessor(c)
}
