// Package search defines the steppable search engine's types, options and
// sentinel errors.
package search

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/DomWilliams0/team-project-sub000/core"
)

// Sentinel errors for search setup and control.
var (
	// ErrGraphNil is returned when a ticker is bound to a nil graph.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrInvalidEndpoint is returned by Reset when start or end has no node.
	// The ticker's state is left unchanged.
	ErrInvalidEndpoint = errors.New("search: endpoint not in graph")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the closed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrUnknownPauser is returned for a PauserID outside the closed set.
	ErrUnknownPauser = errors.New("search: unknown pauser")

	// ErrBadInterval is returned for a non-positive driver tick interval.
	ErrBadInterval = errors.New("search: tick interval must be positive")
)

// Algorithm selects a search policy.
type Algorithm int

const (
	// DepthFirst expands the most recently discovered node first.
	DepthFirst Algorithm = iota
	// BreadthFirst expands nodes in order of hop count from the start.
	BreadthFirst
	// Dijkstra expands the node with the lowest accumulated edge weight.
	Dijkstra
	// AStar orders by accumulated weight plus the heuristic to the goal.
	AStar
)

var algorithmNames = [...]string{
	DepthFirst:   "depth-first",
	BreadthFirst: "breadth-first",
	Dijkstra:     "dijkstra",
	AStar:        "a*",
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a name (as produced by String, case-insensitive, with
// "dfs", "bfs" and "astar" accepted as aliases) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "depth-first", "dfs":
		return DepthFirst, nil
	case "breadth-first", "bfs":
		return BreadthFirst, nil
	case "dijkstra":
		return Dijkstra, nil
	case "a*", "astar":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// State is the ticker's lifecycle stage.
type State int

const (
	// Idle: no search configured yet.
	Idle State = iota
	// Running: frontier non-empty, goal not yet expanded.
	Running
	// Complete: goal expanded; Path holds start→goal.
	Complete
	// Failed: frontier exhausted without reaching the goal; Path is empty.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further ticks can change the search.
func (s State) Terminal() bool { return s == Complete || s == Failed }

// Option configures a Ticker via functional arguments.
type Option func(*Options)

// Options holds the ticker's hooks and overrides.
type Options struct {
	// Logger receives reset and terminal-state lines. Nil disables logging.
	Logger *log.Logger

	// OnExpand is called with each coordinate taken from the frontier.
	OnExpand func(c core.Coordinate)

	// OnEnqueue is called for each coordinate newly inserted into the frontier.
	OnEnqueue func(c core.Coordinate, priority float64)

	// OnFinish is called once when the search reaches Complete or Failed.
	OnFinish func(s State, path []core.Coordinate)

	// Heuristic, if set, replaces the A* policy's Euclidean heuristic.
	Heuristic HeuristicFunc
}

// DefaultOptions returns Options with no logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand:  func(core.Coordinate) {},
		OnEnqueue: func(core.Coordinate, float64) {},
		OnFinish:  func(State, []core.Coordinate) {},
	}
}

// WithLogger routes reset and completion messages to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(c core.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run on every frontier insertion.
func WithOnEnqueue(fn func(c core.Coordinate, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnFinish registers a callback run when the search terminates.
func WithOnFinish(fn func(s State, path []core.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// WithHeuristic overrides the A* heuristic. It has no effect on the other
// algorithms, whose heuristic is always zero.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *Options) { o.Heuristic = h }
}
