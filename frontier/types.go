package frontier

import (
	"errors"
	"fmt"

	"github.com/DomWilliams0/team-project-sub000/core"
)

// ErrFrontierEmpty is returned by Take or Peek on an empty frontier.
var ErrFrontierEmpty = errors.New("frontier: take from empty frontier")

// ErrUnknownKind is returned by New for an unsupported Kind.
var ErrUnknownKind = errors.New("frontier: unknown kind")

// Frontier is the open set of a search.
type Frontier interface {
	// Add inserts c. Stack and Queue ignore priority.
	Add(c core.Coordinate, priority float64)

	// Update re-keys c if it is present and the frontier is priority ordered.
	// Reports whether an entry changed.
	Update(c core.Coordinate, priority float64) bool

	// Take removes and returns the next coordinate under the ordering policy.
	Take() (core.Coordinate, error)

	// Peek returns what Take would return, without removing it.
	Peek() (core.Coordinate, error)

	Contains(c core.Coordinate) bool
	Len() int
	IsEmpty() bool
	Clear()

	// Items returns a snapshot in the order Take would produce.
	Items() []core.Coordinate
}

// Kind selects a Frontier implementation.
type Kind int

const (
	// LIFO backs the frontier with a Stack.
	LIFO Kind = iota
	// FIFO backs the frontier with a Queue.
	FIFO
	// Priority backs the frontier with a PriorityQueue using ByPriority.
	Priority
)

// String names the kind.
func (k Kind) String() string {
	switch k {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	case Priority:
		return "priority"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// New returns an empty frontier of the given kind.
func New(k Kind) (Frontier, error) {
	switch k {
	case LIFO:
		return NewStack(), nil
	case FIFO:
		return NewQueue(), nil
	case Priority:
		return NewPriorityQueue(nil), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
}

// counter tracks multiset membership for Stack and Queue.
type counter map[core.Coordinate]int

func (m counter) inc(c core.Coordinate) { m[c]++ }

func (m counter) dec(c core.Coordinate) {
	if m[c] <= 1 {
		delete(m, c)
		return
	}
	m[c]--
}
