package frontier

import "github.com/DomWilliams0/team-project-sub000/core"

// Stack is a LIFO frontier.
type Stack struct {
	items []core.Coordinate
	count counter
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{count: make(counter)}
}

// Add pushes c on top; priority is ignored.
func (s *Stack) Add(c core.Coordinate, _ float64) {
	s.items = append(s.items, c)
	s.count.inc(c)
}

// Update is a no-op for a Stack.
func (s *Stack) Update(core.Coordinate, float64) bool { return false }

// Take pops the top coordinate.
func (s *Stack) Take() (core.Coordinate, error) {
	c, err := s.Peek()
	if err != nil {
		return c, err
	}
	s.items = s.items[:len(s.items)-1]
	s.count.dec(c)

	return c, nil
}

// Peek returns the top coordinate.
func (s *Stack) Peek() (core.Coordinate, error) {
	if len(s.items) == 0 {
		return core.Coordinate{}, ErrFrontierEmpty
	}

	return s.items[len(s.items)-1], nil
}

func (s *Stack) Contains(c core.Coordinate) bool { return s.count[c] > 0 }
func (s *Stack) Len() int                        { return len(s.items) }
func (s *Stack) IsEmpty() bool                   { return len(s.items) == 0 }

// Clear drops every entry.
func (s *Stack) Clear() {
	s.items = s.items[:0]
	s.count = make(counter)
}

// Items returns the entries top first.
func (s *Stack) Items() []core.Coordinate {
	out := make([]core.Coordinate, len(s.items))
	for i, c := range s.items {
		out[len(s.items)-1-i] = c
	}

	return out
}
