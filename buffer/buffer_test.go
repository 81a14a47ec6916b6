package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relsat/bitops"
	"github.com/katalvlaran/relsat/buffer"
)

// lcg is a tiny deterministic pseudorandom source, used instead of
// math/rand so these tests never depend on a seed.
type lcg struct{ state uint64 }

func (g *lcg) next() uint64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return g.state
}

func TestBuffer1SetThenGetRoundTrips(t *testing.T) {
	const n = 200
	b := buffer.NewBuffer1(n, 0)
	g := &lcg{state: 1}
	want := make([]uint32, n)
	for i := 0; i < n; i++ {
		v := uint32(g.next() % 2)
		want[i] = v
		b.Set(i, v)
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, want[i], b.Get(i), "pos %d", i)
	}
}

func TestBuffer1AppendPreservesPrefix(t *testing.T) {
	b := buffer.NewBuffer1(0, 0)
	g := &lcg{state: 2}
	var want []uint32
	for round := 0; round < 20; round++ {
		n := int(g.next()%7) + 1
		v := uint32(g.next() % 2)
		before := b.Len()
		b.Append(n, v)
		require.Equal(t, before+n, b.Len())
		for i := 0; i < n; i++ {
			want = append(want, v)
		}
		for i, w := range want {
			assert.Equal(t, w, b.Get(i), "round %d pos %d", round, i)
		}
	}
}

func TestBuffer1FillRangeMatchesPerCellSet(t *testing.T) {
	const n = 130
	g := &lcg{state: 3}
	for trial := 0; trial < 30; trial++ {
		start := int(g.next() % n)
		end := start + int(g.next()%uint64(n-start)+1)
		val := uint32(g.next() % 2)

		got := buffer.NewBuffer1(n, 0)
		for i := 0; i < n; i++ {
			got.Set(i, uint32(g.next()%2))
		}
		want := buffer.NewBuffer1(n, 0)
		for i := 0; i < n; i++ {
			want.Set(i, got.Get(i))
		}

		got.FillRange(start, end, val)
		for i := start; i < end; i++ {
			want.Set(i, val)
		}

		for i := 0; i < n; i++ {
			assert.Equal(t, want.Get(i), got.Get(i), "trial %d pos %d range [%d,%d)", trial, i, start, end)
		}
	}
}

func TestBuffer2SetThenGetRoundTrips(t *testing.T) {
	const n = 200
	b := buffer.NewBuffer2(n, 0)
	g := &lcg{state: 4}
	want := make([]uint32, n)
	for i := 0; i < n; i++ {
		v := uint32(g.next() % 4)
		want[i] = v
		b.Set(i, v)
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, want[i], b.Get(i), "pos %d", i)
	}
}

func TestBuffer2AppendPreservesPrefix(t *testing.T) {
	b := buffer.NewBuffer2(0, 0)
	g := &lcg{state: 5}
	var want []uint32
	for round := 0; round < 20; round++ {
		n := int(g.next()%7) + 1
		v := uint32(g.next() % 4)
		before := b.Len()
		b.Append(n, v)
		require.Equal(t, before+n, b.Len())
		for i := 0; i < n; i++ {
			want = append(want, v)
		}
		for i, w := range want {
			assert.Equal(t, w, b.Get(i), "round %d pos %d", round, i)
		}
	}
}

func TestBuffer2FillRangeMatchesPerCellSet(t *testing.T) {
	const n = 130
	g := &lcg{state: 6}
	for trial := 0; trial < 30; trial++ {
		start := int(g.next() % n)
		end := start + int(g.next()%uint64(n-start)+1)
		val := uint32(g.next() % 4)

		got := buffer.NewBuffer2(n, 0)
		for i := 0; i < n; i++ {
			got.Set(i, uint32(g.next()%4))
		}
		want := buffer.NewBuffer2(n, 0)
		for i := 0; i < n; i++ {
			want.Set(i, got.Get(i))
		}

		got.FillRange(start, end, val)
		for i := start; i < end; i++ {
			want.Set(i, val)
		}

		for i := 0; i < n; i++ {
			assert.Equal(t, want.Get(i), got.Get(i), "trial %d pos %d range [%d,%d)", trial, i, start, end)
		}
	}
}

// linearIter walks a fixed list of positions, satisfying
// buffer.PositionIterator.
type linearIter struct {
	positions []int
	i         int
}

func (it *linearIter) Next() (int, bool) {
	if it.i >= len(it.positions) {
		return 0, false
	}
	p := it.positions[it.i]
	it.i++
	return p, true
}

func identityPositions(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestBuffer2ApplyFoldsOtherBufferPositionwise(t *testing.T) {
	const n = 8
	self := buffer.NewBuffer2(n, uint32(bitops.EvalTrue))
	other := buffer.NewBuffer2(n, 0)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			other.Set(i, uint32(bitops.EvalFalse))
		} else {
			other.Set(i, uint32(bitops.EvalUnit))
		}
	}

	self.Apply(bitops.EvalAnd, other, &linearIter{positions: identityPositions(n)})

	for i := 0; i < n; i++ {
		want := bitops.EvalAnd.Of(bitops.EvalTrue, bitops.Bit2(other.Get(i)))
		assert.Equal(t, uint32(want), self.Get(i), "pos %d", i)
	}
}

func TestBuffer2ApplyPanicsOnShortIterator(t *testing.T) {
	self := buffer.NewBuffer2(4, 0)
	other := buffer.NewBuffer2(4, 0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an iterator producing too few positions")
		}
	}()
	self.Apply(bitops.EvalAnd, other, &linearIter{positions: []int{0, 1}})
}

func TestBuffer2ApplyPanicsOnLongIterator(t *testing.T) {
	self := buffer.NewBuffer2(2, 0)
	other := buffer.NewBuffer2(4, 0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an iterator producing too many positions")
		}
	}()
	self.Apply(bitops.EvalAnd, other, &linearIter{positions: []int{0, 1, 2}})
}
