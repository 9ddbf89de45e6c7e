package frontier

import (
	"container/list"

	"github.com/DomWilliams0/team-project-sub000/core"
)

// Queue is a FIFO frontier backed by container/list.
type Queue struct {
	l     *list.List
	count counter
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{l: list.New(), count: make(counter)}
}

// Add enqueues c at the back; priority is ignored.
func (q *Queue) Add(c core.Coordinate, _ float64) {
	q.l.PushBack(c)
	q.count.inc(c)
}

// Update is a no-op for a Queue.
func (q *Queue) Update(core.Coordinate, float64) bool { return false }

// Take dequeues the front coordinate.
func (q *Queue) Take() (core.Coordinate, error) {
	e := q.l.Front()
	if e == nil {
		return core.Coordinate{}, ErrFrontierEmpty
	}
	q.l.Remove(e)
	c := e.Value.(core.Coordinate)
	q.count.dec(c)

	return c, nil
}

// Peek returns the front coordinate.
func (q *Queue) Peek() (core.Coordinate, error) {
	e := q.l.Front()
	if e == nil {
		return core.Coordinate{}, ErrFrontierEmpty
	}

	return e.Value.(core.Coordinate), nil
}

func (q *Queue) Contains(c core.Coordinate) bool { return q.count[c] > 0 }
func (q *Queue) Len() int                        { return q.l.Len() }
func (q *Queue) IsEmpty() bool                   { return q.l.Len() == 0 }

// Clear drops every entry.
func (q *Queue) Clear() {
	q.l.Init()
	q.count = make(counter)
}

// Items returns the entries front first.
func (q *Queue) Items() []core.Coordinate {
	out := make([]core.Coordinate, 0, q.l.Len())
	for e := q.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(core.Coordinate))
	}

	return out
}
