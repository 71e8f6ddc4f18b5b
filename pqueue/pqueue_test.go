package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/pqueue"
)

// MinHeapSuite exercises MinHeap ordering and edge cases.
type MinHeapSuite struct {
	suite.Suite
	h *pqueue.MinHeap[string]
}

func (s *MinHeapSuite) SetupTest() {
	s.h = pqueue.New[string](8)
}

// drain pops every entry and returns the scores in extraction order.
func (s *MinHeapSuite) drain() []float64 {
	var out []float64
	for !s.h.IsEmpty() {
		e, ok := s.h.PopMin()
		require.True(s.T(), ok)
		out = append(out, e.Score)
	}
	return out
}

// TestExtractionOrder pushes 5,3,8,1,4 and expects 1,3,4,5,8.
func (s *MinHeapSuite) TestExtractionOrder() {
	for _, score := range []float64{5, 3, 8, 1, 4} {
		s.h.Push(score, "")
	}
	require.Equal(s.T(), 5, s.h.Len())
	require.Equal(s.T(), []float64{1, 3, 4, 5, 8}, s.drain())
}

// TestValuesTravelWithScores checks that values stay paired with scores.
func (s *MinHeapSuite) TestValuesTravelWithScores() {
	s.h.Push(2, "b")
	s.h.Push(1, "a")
	s.h.Push(3, "c")

	for _, want := range []string{"a", "b", "c"} {
		e, ok := s.h.PopMin()
		require.True(s.T(), ok)
		require.Equal(s.T(), want, e.Value)
	}
}

// TestEmpty verifies PopMin and Peek on an empty heap.
func (s *MinHeapSuite) TestEmpty() {
	require.True(s.T(), s.h.IsEmpty())
	_, ok := s.h.PopMin()
	require.False(s.T(), ok)
	_, ok = s.h.Peek()
	require.False(s.T(), ok)
}

// TestSingleEntry covers the one-element fast path.
func (s *MinHeapSuite) TestSingleEntry() {
	s.h.Push(7, "only")
	e, ok := s.h.PopMin()
	require.True(s.T(), ok)
	require.Equal(s.T(), pqueue.Entry[string]{Score: 7, Value: "only"}, e)
	require.True(s.T(), s.h.IsEmpty())
}

// TestPeek returns the minimum without removing it.
func (s *MinHeapSuite) TestPeek() {
	s.h.Push(4, "x")
	s.h.Push(2, "y")
	e, ok := s.h.Peek()
	require.True(s.T(), ok)
	require.Equal(s.T(), "y", e.Value)
	require.Equal(s.T(), 2, s.h.Len())
}

// TestDuplicatesAndTies keeps every duplicate entry.
func (s *MinHeapSuite) TestDuplicatesAndTies() {
	for _, score := range []float64{2, 1, 2, 1, 2} {
		s.h.Push(score, "dup")
	}
	require.Equal(s.T(), []float64{1, 1, 2, 2, 2}, s.drain())
}

// TestReset empties the heap and leaves it reusable.
func (s *MinHeapSuite) TestReset() {
	s.h.Push(1, "a")
	s.h.Push(2, "b")
	s.h.Reset()
	require.True(s.T(), s.h.IsEmpty())
	s.h.Push(9, "c")
	require.Equal(s.T(), []float64{9}, s.drain())
}

// TestInterleaved mixes pushes and pops against a sorted reference.
func (s *MinHeapSuite) TestInterleaved() {
	rnd := rand.New(rand.NewSource(7))
	var ref []float64
	for i := 0; i < 2000; i++ {
		if len(ref) > 0 && rnd.Intn(3) == 0 {
			sort.Float64s(ref)
			e, ok := s.h.PopMin()
			require.True(s.T(), ok)
			require.Equal(s.T(), ref[0], e.Score)
			ref = ref[1:]
			continue
		}
		v := float64(rnd.Intn(100))
		ref = append(ref, v)
		s.h.Push(v, "")
	}
	sort.Float64s(ref)
	if len(ref) == 0 {
		ref = nil
	}
	require.Equal(s.T(), ref, s.drain())
}

func TestMinHeapSuite(t *testing.T) {
	suite.Run(t, new(MinHeapSuite))
}

// TestZeroValue checks that a zero MinHeap is usable without New.
func TestZeroValue(t *testing.T) {
	var h pqueue.MinHeap[int]
	h.Push(3, 30)
	h.Push(1, 10)
	e, ok := h.PopMin()
	require.True(t, ok)
	require.Equal(t, 10, e.Value)
	require.Equal(t, 1, h.Len())
}

// TestNewNegativeCapacity clamps a negative capacity.
func TestNewNegativeCapacity(t *testing.T) {
	h := pqueue.New[int](-5)
	require.True(t, h.IsEmpty())
}
