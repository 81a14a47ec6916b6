package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relsat/engine"
)

// buildGroupTheory axiomatizes a group over a single sort: an
// equivalence relation equ, a totally-defined multiplication mul, a
// totally-defined inverse inv, and a totally-defined identity one,
// plus the group laws (associativity, left inverse, left identity).
// Grounded on the worked group-theory example's core axiom set (the
// redundant substitution/congruence clauses it also states are
// consequences of these and are omitted here).
func buildGroupTheory(t *testing.T, size int) (s *engine.Solver, one, inv, mul, equ engine.Pred) {
	t.Helper()
	s = engine.NewSolver()
	set, err := s.AddDomain("set", size)
	require.NoError(t, err)

	one, err = s.AddPredicate("one", set)
	require.NoError(t, err)
	inv, err = s.AddPredicate("inv", set, set)
	require.NoError(t, err)
	mul, err = s.AddPredicate("mul", set, set, set)
	require.NoError(t, err)
	equ, err = s.AddPredicate("equ", set, set)
	require.NoError(t, err)

	// equ is an equivalence relation.
	require.NoError(t, s.AddClause(lit(true, equ, 0, 0)))
	require.NoError(t, s.AddClause(lit(false, equ, 0, 1), lit(true, equ, 1, 0)))
	require.NoError(t, s.AddClause(lit(false, equ, 0, 1), lit(false, equ, 1, 2), lit(true, equ, 0, 2)))

	// mul is associative.
	require.NoError(t, s.AddClause(
		lit(false, mul, 0, 1, 3),
		lit(false, mul, 3, 2, 4),
		lit(false, mul, 1, 2, 5),
		lit(true, mul, 0, 5, 4),
	))

	// mul is a (single-valued, total) function.
	require.NoError(t, s.AddClause(lit(false, mul, 0, 1, 2), lit(false, mul, 0, 1, 3), lit(true, equ, 2, 3)))
	s.AddExists(mul)

	// inv is single-valued and total.
	require.NoError(t, s.AddClause(lit(false, inv, 0, 1), lit(false, inv, 0, 2), lit(true, equ, 1, 2)))
	s.AddExists(inv)

	// one is single-valued and total.
	require.NoError(t, s.AddClause(lit(false, one, 0), lit(false, one, 1), lit(true, equ, 0, 1)))
	s.AddExists(one)

	// left inverse: inv(x,y) & mul(y,x,z) -> one(z).
	require.NoError(t, s.AddClause(lit(false, inv, 0, 1), lit(false, mul, 1, 0, 2), lit(true, one, 2)))

	// left identity: one(x) -> mul(x,y,y).
	require.NoError(t, s.AddClause(lit(false, one, 0), lit(true, mul, 0, 1, 1)))

	return s, one, inv, mul, equ
}

// TestGroupTheoryTrivialGroupHasExactlyOneSolution covers the
// single-element domain scenario: the trivial group is forced entirely
// by propagation, with no decisions needed.
func TestGroupTheoryTrivialGroupHasExactlyOneSolution(t *testing.T) {
	s, _, _, _, _ := buildGroupTheory(t, 1)

	var found int
	s.SearchAll(func(*engine.Solver) { found++ })
	assert.Equal(t, 1, found)
}

// TestGroupTheoryTwoElementDomainWithFixedEqualityFindsSolutions covers
// the two-element domain scenario with equ pinned to literal equality
// (removing the quotient ambiguity over which labelling counts as a
// distinct model): the search must terminate and report at least one
// group table.
func TestGroupTheoryTwoElementDomainWithFixedEqualityFindsSolutions(t *testing.T) {
	s, _, _, _, equ := buildGroupTheory(t, 2)
	require.NoError(t, s.SetEquality(equ))

	var found int
	s.SearchAll(func(*engine.Solver) { found++ })
	assert.GreaterOrEqual(t, found, 1)
	assert.Equal(t, found, s.Solutions())
}
