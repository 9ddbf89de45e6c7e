// Package frontier provides the open set of a graph search: the coordinates
// discovered but not yet expanded, ordered by one of three policies.
//
// What
//
//   - Stack:         LIFO, most recently added first (depth-first search).
//   - Queue:         FIFO, least recently added first (breadth-first search).
//   - PriorityQueue: lowest priority first under a LessFunc; the default
//     comparator orders by priority and breaks ties by insertion sequence,
//     so equal-cost entries come out in the order they went in.
//
// Contract
//
//	After Add(c), Contains(c) is true until the Take that returns c.
//	Take and Peek on an empty frontier return ErrFrontierEmpty; callers are
//	expected to check IsEmpty first.
//	Stack and Queue are multisets: adding c twice yields two entries.
//	PriorityQueue keeps one entry per coordinate: Add on a present coordinate
//	re-keys it, exactly like Update.
//
// Complexity
//
//   - Stack, Queue:   O(1) Add/Take/Contains.
//   - PriorityQueue:  O(log n) Add/Take/Update, O(1) Contains/Peek.
//   - Items:          O(n) for Stack/Queue, O(n log n) for PriorityQueue.
package frontier
