package bitops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/relsat/bitops"
)

func allBit2() []bitops.Bit2 {
	return []bitops.Bit2{bitops.Bit2(0), bitops.Bit2(1), bitops.Bit2(2), bitops.Bit2(3)}
}

func idempotent(t *testing.T, op bitops.Op222) bool {
	t.Helper()
	for _, a := range allBit2() {
		if op.Of(a, a) != a {
			return false
		}
	}
	return true
}

func commutative(t *testing.T, op bitops.Op222) bool {
	t.Helper()
	for _, a := range allBit2() {
		for _, b := range allBit2() {
			if op.Of(a, b) != op.Of(b, a) {
				return false
			}
		}
	}
	return true
}

func associative(t *testing.T, op bitops.Op222) bool {
	t.Helper()
	for _, a := range allBit2() {
		for _, b := range allBit2() {
			for _, c := range allBit2() {
				if op.Of(op.Of(a, b), c) != op.Of(a, op.Of(b, c)) {
					return false
				}
			}
		}
	}
	return true
}

// distributive checks the law on the {FALSE,UNDEF,TRUE} sub-lattice only:
// MISSING is a sentinel that both BoolOr and BoolAnd treat as an identity,
// so no pair of operators can distribute once it is included.
func distributive(t *testing.T, outer, inner bitops.Op222) bool {
	t.Helper()
	proper := []bitops.Bit2{bitops.BoolFalse, bitops.BoolUndef, bitops.BoolTrue}
	for _, a := range proper {
		for _, b := range proper {
			for _, c := range proper {
				if outer.Of(a, inner.Of(b, c)) != inner.Of(outer.Of(a, b), outer.Of(a, c)) {
					return false
				}
			}
		}
	}
	return true
}

func TestBoolAndLaws(t *testing.T) {
	assert.True(t, idempotent(t, bitops.BoolAnd))
	assert.True(t, commutative(t, bitops.BoolAnd))
	assert.True(t, associative(t, bitops.BoolAnd))
}

func TestBoolOrLaws(t *testing.T) {
	assert.True(t, commutative(t, bitops.BoolOr))
	assert.True(t, associative(t, bitops.BoolOr))
	assert.True(t, distributive(t, bitops.BoolOr, bitops.BoolAnd))
}

// Restricting to the {FALSE,UNDEF,TRUE} sub-lattice (MISSING is a sentinel,
// not a lattice member) BoolOr is idempotent there too.
func TestBoolOrIdempotentOnProperValues(t *testing.T) {
	for _, a := range []bitops.Bit2{bitops.BoolFalse, bitops.BoolUndef, bitops.BoolTrue} {
		assert.Equal(t, a, bitops.BoolOr.Of(a, a))
	}
}

func TestEvalAndLaws(t *testing.T) {
	assert.True(t, idempotent(t, bitops.EvalAnd))
	assert.True(t, commutative(t, bitops.EvalAnd))
	assert.True(t, associative(t, bitops.EvalAnd))
}

// EvalAnd must order FALSE <= UNIT <= UNDEF <= TRUE, i.e. behave as min.
func TestEvalAndIsMin(t *testing.T) {
	order := []bitops.Bit2{bitops.EvalFalse, bitops.EvalUnit, bitops.EvalUndef, bitops.EvalTrue}
	for i, a := range order {
		for j, b := range order {
			want := a
			if j < i {
				want = b
			}
			assert.Equal(t, want, bitops.EvalAnd.Of(a, b), "EvalAnd(%d,%d)", i, j)
		}
	}
}

func TestFoldNegIsFoldPosOfNot(t *testing.T) {
	for _, e := range allBit2() {
		for _, b := range allBit2() {
			assert.Equal(t, bitops.FoldPos.Of(e, bitops.BoolNot.Of(b)), bitops.FoldNeg.Of(e, b))
		}
	}
}

func TestFoldPosCommutesInBooleanArgument(t *testing.T) {
	for _, e := range allBit2() {
		for _, b := range allBit2() {
			for _, c := range allBit2() {
				left := bitops.FoldPos.Of(bitops.FoldPos.Of(e, b), c)
				right := bitops.FoldPos.Of(bitops.FoldPos.Of(e, c), b)
				assert.Equal(t, left, right, "e=%d b=%d c=%d", e, b, c)
			}
		}
	}
}

func TestFoldForSelectsBySign(t *testing.T) {
	assert.Equal(t, bitops.FoldPos, bitops.FoldFor(true))
	assert.Equal(t, bitops.FoldNeg, bitops.FoldFor(false))
}
