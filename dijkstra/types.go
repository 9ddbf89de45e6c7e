// Package dijkstra defines configuration options and sentinel errors
// for Dijkstra's shortest-path algorithm on a core.Graph.
package dijkstra

import (
	"errors"
	"math"

	"github.com/DomWilliams0/team-project-sub000/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source coordinate was provided.
	ErrEmptySource = errors.New("dijkstra: source not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source coordinate has no node.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting coordinate (must be set and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – cap on distances to explore. Default +Inf (no cap).
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
type Options struct {
	Source           core.Coordinate
	HasSource        bool
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting coordinate.
func Source(c core.Coordinate) Option {
	return func(o *Options) {
		o.Source = c
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Non-positive values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source, no path, no caps.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
