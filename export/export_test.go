package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relsat/engine"
	"github.com/katalvlaran/relsat/export"
)

func TestEncodeTheoryListsDomainsAndPredicates(t *testing.T) {
	s := engine.NewSolver()
	set, err := s.AddDomain("set", 2)
	require.NoError(t, err)
	_, err = s.AddPredicate("p", set)
	require.NoError(t, err)

	out, err := export.EncodeTheory(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name":"set"`)
	assert.Contains(t, string(out), `"name":"p"`)
}

func TestEncodeSolutionListsOnlyTrueAtoms(t *testing.T) {
	s := engine.NewSolver()
	set, err := s.AddDomain("set", 2)
	require.NoError(t, err)
	p, err := s.AddPredicate("p", set)
	require.NoError(t, err)
	require.NoError(t, s.SetValue(true, p, []int{0}))
	require.NoError(t, s.SetValue(false, p, []int{1}))

	out, err := export.EncodeSolution(s, 1)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"ordinal":1`)
	assert.Contains(t, string(out), `"coords":[0]`)
	assert.NotContains(t, string(out), `"coords":[1]`)
}
