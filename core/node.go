package core

// Position returns the coordinate identifying n.
func (n *Node) Position() Coordinate { return n.position }

// Neighbors returns the neighbouring coordinates in insertion order.
// The returned slice is a copy; the live table is re-read on every call.
// Complexity: O(deg).
func (n *Node) Neighbors() []Coordinate {
	out := make([]Coordinate, len(n.order))
	copy(out, n.order)

	return out
}

// Weight returns the weight of the edge to c and whether it exists.
// Complexity: O(1).
func (n *Node) Weight(c Coordinate) (float64, bool) {
	w, ok := n.weights[c]

	return w, ok
}

// HasNeighbor reports whether n has an edge to c.
func (n *Node) HasNeighbor(c Coordinate) bool {
	_, ok := n.weights[c]

	return ok
}

// Degree returns the number of neighbours.
func (n *Node) Degree() int { return len(n.order) }

// Equal reports whether both nodes share a position.
// Node identity is positional; distinct objects with equal coordinates are equal.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}

	return n.position == o.position
}

func newNode(c Coordinate) *Node {
	return &Node{
		position: c,
		weights:  make(map[Coordinate]float64, 4),
	}
}

// setNeighbor inserts or overwrites the edge to c.
// Overwriting keeps the original position in the iteration order.
func (n *Node) setNeighbor(c Coordinate, w float64) {
	if _, ok := n.weights[c]; !ok {
		n.order = append(n.order, c)
	}
	n.weights[c] = w
}

// removeNeighbor deletes the edge to c, preserving the order of the rest.
func (n *Node) removeNeighbor(c Coordinate) bool {
	if _, ok := n.weights[c]; !ok {
		return false
	}
	delete(n.weights, c)
	for i, o := range n.order {
		if o == c {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}

	return true
}

// clearNeighbors drops every edge of n and returns the former neighbours.
func (n *Node) clearNeighbors() []Coordinate {
	former := n.order
	n.order = nil
	n.weights = make(map[Coordinate]float64, 4)

	return former
}
