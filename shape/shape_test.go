package shape_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relsat/shape"
)

func collect(it *shape.Iter) []int {
	var out []int
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

func sorted(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	sort.Ints(out)
	return out
}

func TestShapeViewEnumeratesCanonicalOrder(t *testing.T) {
	s := shape.New(2, 3, 4)
	view := s.View()
	require.Equal(t, s.Size(), view.Size())
	require.Equal(t, s.Rank(), view.Rank())

	positions := collect(view.Iter())
	require.Len(t, positions, s.Size())

	want := make([]int, 0, s.Size())
	for a := 0; a < 2; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 4; c++ {
				want = append(want, s.Position([]int{a, b, c}))
			}
		}
	}
	assert.Equal(t, want, positions)
}

func TestSimplifyPreservesPositionMultiset(t *testing.T) {
	s := shape.New(2, 3, 4)
	view := s.View()
	original := collect(view.Iter())

	simplified := view.Simplify()
	assert.LessOrEqual(t, simplified.Rank(), view.Rank())
	assert.Equal(t, view.Size(), simplified.Size())

	got := collect(simplified.Iter())
	assert.Equal(t, sorted(original), sorted(got))
}

func TestPermutePreservesPositionMultiset(t *testing.T) {
	s := shape.New(2, 3, 4)
	view := s.View()
	original := collect(view.Iter())

	// old axis i -> new axis map[i]: reverse the three axes.
	permuted := view.Permute([]int{2, 1, 0})
	assert.Equal(t, view.Size(), permuted.Size())

	got := collect(permuted.Iter())
	assert.Equal(t, sorted(original), sorted(got))
}

func TestPolymerBroadcastsDummyAxis(t *testing.T) {
	// a literal over a 1-axis predicate, polymer'd into a 2-axis clause
	// shape as a dummy (broadcast) second axis.
	small := shape.New(3)
	target := shape.New(3, 5)
	view := small.View().Polymer(target, []int{0})

	assert.Equal(t, target.Size(), view.Size())
	positions := collect(view.Iter())
	require.Len(t, positions, 15)

	// every block of 5 consecutive positions (one per value of the dummy
	// axis) must all map back to the same underlying small-shape position.
	seen := map[int]int{}
	for _, p := range positions {
		seen[p]++
	}
	assert.Len(t, seen, 3)
	for _, count := range seen {
		assert.Equal(t, 5, count)
	}
}

func TestPolymerIdentifiesAxes(t *testing.T) {
	// a 2-axis literal over a predicate whose two axes have been
	// identified (e.g. p(x,x)) maps both source axes onto one target axis.
	pair := shape.New(4, 4)
	target := shape.New(4)
	view := pair.View().Polymer(target, []int{0, 0})

	assert.Equal(t, 4, view.Size())
	positions := collect(view.Iter())
	assert.Equal(t, []int{0, 5, 10, 15}, positions)
}

func TestIterResetReplaysSamePositions(t *testing.T) {
	s := shape.New(2, 3)
	it := s.View().Iter()
	first := collect(it)
	it.Reset()
	second := collect(it)
	assert.Equal(t, first, second)
}

func TestScalarShapeIteratesSinglePosition(t *testing.T) {
	s := shape.New()
	assert.Equal(t, 1, s.Size())
	positions := collect(s.View().Iter())
	assert.Equal(t, []int{0}, positions)
}
