package frontier

import (
	"container/heap"
	"sort"

	"github.com/DomWilliams0/team-project-sub000/core"
)

// Entry is a PriorityQueue element as seen by a LessFunc.
type Entry struct {
	Coord    core.Coordinate
	Priority float64
	// Seq is the insertion sequence number; re-keying keeps it.
	Seq uint64
}

// LessFunc reports whether a must be taken before b.
// It must be a strict weak ordering.
type LessFunc func(a, b Entry) bool

// ByPriority orders by ascending priority, ties by insertion sequence.
func ByPriority(a, b Entry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}

	return a.Seq < b.Seq
}

// PriorityQueue is a min-heap frontier holding at most one entry per coordinate.
type PriorityQueue struct {
	h     entryHeap
	index map[core.Coordinate]*heapItem
	seq   uint64
}

// NewPriorityQueue returns an empty queue ordered by less (ByPriority if nil).
func NewPriorityQueue(less LessFunc) *PriorityQueue {
	if less == nil {
		less = ByPriority
	}

	return &PriorityQueue{
		h:     entryHeap{less: less},
		index: make(map[core.Coordinate]*heapItem),
	}
}

// Add inserts c, or re-keys it if already present.
// Complexity: O(log n).
func (pq *PriorityQueue) Add(c core.Coordinate, priority float64) {
	if pq.Update(c, priority) {
		return
	}
	if _, ok := pq.index[c]; ok {
		return // present with the same priority
	}
	it := &heapItem{Entry: Entry{Coord: c, Priority: priority, Seq: pq.seq}}
	pq.seq++
	pq.index[c] = it
	heap.Push(&pq.h, it)
}

// Update re-keys c in place, keeping its insertion sequence.
// Complexity: O(log n).
func (pq *PriorityQueue) Update(c core.Coordinate, priority float64) bool {
	it, ok := pq.index[c]
	if !ok || it.Priority == priority {
		return false
	}
	it.Priority = priority
	heap.Fix(&pq.h, it.pos)

	return true
}

// Take removes the minimum entry.
// Complexity: O(log n).
func (pq *PriorityQueue) Take() (core.Coordinate, error) {
	if pq.h.Len() == 0 {
		return core.Coordinate{}, ErrFrontierEmpty
	}
	it := heap.Pop(&pq.h).(*heapItem)
	delete(pq.index, it.Coord)

	return it.Coord, nil
}

// Peek returns the minimum coordinate.
func (pq *PriorityQueue) Peek() (core.Coordinate, error) {
	if pq.h.Len() == 0 {
		return core.Coordinate{}, ErrFrontierEmpty
	}

	return pq.h.items[0].Coord, nil
}

// PriorityOf returns the stored priority of c.
func (pq *PriorityQueue) PriorityOf(c core.Coordinate) (float64, bool) {
	it, ok := pq.index[c]
	if !ok {
		return 0, false
	}

	return it.Priority, true
}

func (pq *PriorityQueue) Contains(c core.Coordinate) bool {
	_, ok := pq.index[c]
	return ok
}

func (pq *PriorityQueue) Len() int      { return pq.h.Len() }
func (pq *PriorityQueue) IsEmpty() bool { return pq.h.Len() == 0 }

// Clear drops every entry and restarts the insertion sequence.
func (pq *PriorityQueue) Clear() {
	pq.h.items = pq.h.items[:0]
	pq.index = make(map[core.Coordinate]*heapItem)
	pq.seq = 0
}

// Items returns the entries in take order.
func (pq *PriorityQueue) Items() []core.Coordinate {
	entries := make([]Entry, len(pq.h.items))
	for i, it := range pq.h.items {
		entries[i] = it.Entry
	}
	sort.Slice(entries, func(i, j int) bool { return pq.h.less(entries[i], entries[j]) })
	out := make([]core.Coordinate, len(entries))
	for i, e := range entries {
		out[i] = e.Coord
	}

	return out
}

// heapItem tracks its own heap slot so Update can call heap.Fix.
type heapItem struct {
	Entry
	pos int
}

// entryHeap implements heap.Interface over *heapItem.
type entryHeap struct {
	items []*heapItem
	less  LessFunc
}

func (h entryHeap) Len() int           { return len(h.items) }
func (h entryHeap) Less(i, j int) bool { return h.less(h.items[i].Entry, h.items[j].Entry) }

func (h entryHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].pos = i
	h.items[j].pos = j
}

func (h *entryHeap) Push(x interface{}) {
	it := x.(*heapItem)
	it.pos = len(h.items)
	h.items = append(h.items, it)
}

func (h *entryHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.pos = -1
	h.items = old[:n-1]

	return it
}
