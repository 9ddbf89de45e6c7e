package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DomWilliams0/team-project-sub000/core"
	"github.com/DomWilliams0/team-project-sub000/frontier"
)

var (
	a = core.C(0, 0)
	b = core.C(1, 0)
	c = core.C(2, 0)
)

func drain(t *testing.T, f frontier.Frontier) []core.Coordinate {
	t.Helper()
	var out []core.Coordinate
	for !f.IsEmpty() {
		x, err := f.Take()
		require.NoError(t, err)
		out = append(out, x)
	}
	return out
}

func TestNew(t *testing.T) {
	for _, k := range []frontier.Kind{frontier.LIFO, frontier.FIFO, frontier.Priority} {
		f, err := frontier.New(k)
		require.NoError(t, err, k.String())
		assert.True(t, f.IsEmpty())
	}
	_, err := frontier.New(frontier.Kind(42))
	assert.ErrorIs(t, err, frontier.ErrUnknownKind)
	assert.Equal(t, "Kind(42)", frontier.Kind(42).String())
}

func TestEmptyTakeAndPeek(t *testing.T) {
	for _, f := range []frontier.Frontier{frontier.NewStack(), frontier.NewQueue(), frontier.NewPriorityQueue(nil)} {
		_, err := f.Take()
		assert.ErrorIs(t, err, frontier.ErrFrontierEmpty)
		_, err = f.Peek()
		assert.ErrorIs(t, err, frontier.ErrFrontierEmpty)
	}
}

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack()
	s.Add(a, 0)
	s.Add(b, 0)
	s.Add(c, 0)
	assert.Equal(t, []core.Coordinate{c, b, a}, s.Items())
	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, c, top)
	assert.False(t, s.Update(a, 5))
	assert.Equal(t, []core.Coordinate{c, b, a}, drain(t, s))
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue()
	q.Add(a, 9)
	q.Add(b, 1)
	q.Add(c, 5)
	assert.Equal(t, []core.Coordinate{a, b, c}, q.Items())
	assert.False(t, q.Update(c, 0))
	assert.Equal(t, []core.Coordinate{a, b, c}, drain(t, q))
}

func TestContains_Multiset(t *testing.T) {
	for _, f := range []frontier.Frontier{frontier.NewStack(), frontier.NewQueue()} {
		f.Add(a, 0)
		f.Add(a, 0)
		assert.Equal(t, 2, f.Len())
		_, _ = f.Take()
		assert.True(t, f.Contains(a), "second copy still present")
		_, _ = f.Take()
		assert.False(t, f.Contains(a))
	}
}

func TestContains_UntilTaken(t *testing.T) {
	for _, f := range []frontier.Frontier{frontier.NewStack(), frontier.NewQueue(), frontier.NewPriorityQueue(nil)} {
		f.Add(a, 2)
		f.Add(b, 1)
		assert.True(t, f.Contains(a))
		assert.True(t, f.Contains(b))
		assert.False(t, f.Contains(c))

		got, err := f.Take()
		require.NoError(t, err)
		assert.False(t, f.Contains(got))
		f.Clear()
		assert.True(t, f.IsEmpty())
		assert.False(t, f.Contains(a))
		assert.False(t, f.Contains(b))
	}
}

func TestPriorityQueue_StableTies(t *testing.T) {
	pq := frontier.NewPriorityQueue(nil)
	pq.Add(c, 1)
	pq.Add(a, 1)
	pq.Add(b, 0.5)
	pq.Add(core.C(9, 9), 1)
	assert.Equal(t, []core.Coordinate{b, c, a, core.C(9, 9)}, pq.Items())
	assert.Equal(t, []core.Coordinate{b, c, a, core.C(9, 9)}, drain(t, pq))
}

func TestPriorityQueue_Update(t *testing.T) {
	pq := frontier.NewPriorityQueue(nil)
	pq.Add(a, 3)
	pq.Add(b, 2)
	pq.Add(c, 1)

	assert.True(t, pq.Update(a, 0))
	assert.False(t, pq.Update(a, 0), "same priority is not a change")
	assert.False(t, pq.Update(core.C(5, 5), 0), "absent coordinate")
	p, ok := pq.PriorityOf(a)
	require.True(t, ok)
	assert.Equal(t, 0.0, p)

	// Add on a present coordinate re-keys instead of duplicating.
	pq.Add(c, 10)
	assert.Equal(t, 3, pq.Len())
	assert.Equal(t, []core.Coordinate{a, b, c}, drain(t, pq))
}

func TestPriorityQueue_UpdateKeepsSequence(t *testing.T) {
	pq := frontier.NewPriorityQueue(nil)
	pq.Add(a, 1)
	pq.Add(b, 5)
	pq.Update(b, 1) // ties with a, but a was inserted first
	assert.Equal(t, []core.Coordinate{a, b}, drain(t, pq))
}

func TestPriorityQueue_CustomLess(t *testing.T) {
	maxFirst := func(x, y frontier.Entry) bool {
		if x.Priority != y.Priority {
			return x.Priority > y.Priority
		}
		return x.Seq < y.Seq
	}
	pq := frontier.NewPriorityQueue(maxFirst)
	pq.Add(a, 1)
	pq.Add(b, 3)
	pq.Add(c, 2)
	assert.Equal(t, []core.Coordinate{b, c, a}, drain(t, pq))
}

func TestPriorityQueue_ClearResetsSequence(t *testing.T) {
	pq := frontier.NewPriorityQueue(nil)
	pq.Add(a, 1)
	pq.Clear()
	pq.Add(b, 1)
	pq.Add(a, 1)
	assert.Equal(t, []core.Coordinate{b, a}, drain(t, pq))
}
