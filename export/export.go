package export

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/relsat/bitops"
	"github.com/katalvlaran/relsat/engine"
)

// TheorySnapshot is the JSON-serializable signature of a solver's
// registered domains and predicates, independent of any particular
// assignment.
type TheorySnapshot struct {
	Domains    []DomainInfo    `json:"domains"`
	Predicates []PredicateInfo `json:"predicates"`
}

// DomainInfo names one registered domain and its cardinality.
type DomainInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// PredicateInfo names one registered predicate and the domains its axes
// range over, in axis order.
type PredicateInfo struct {
	Name    string   `json:"name"`
	Domains []string `json:"domains"`
}

// AtomValue is one ground atom's current truth value.
type AtomValue struct {
	Predicate string `json:"predicate"`
	Coords    []int  `json:"coords"`
	Value     bool   `json:"value"`
}

// SolutionSnapshot is one recorded solution: its ordinal (1-based, in
// discovery order) and the full list of true ground atoms. Atoms not
// listed are FALSE or UNDEF: SearchAll records a solution once every
// clause and exists axiom is TRUE, which can leave atoms that no clause
// constrains UNDEF.
type SolutionSnapshot struct {
	Ordinal int         `json:"ordinal"`
	Atoms   []AtomValue `json:"atoms"`
}

func theorySnapshot(s *engine.Solver) TheorySnapshot {
	domains := s.Domains()
	domInfo := make([]DomainInfo, len(domains))
	for i, d := range domains {
		domInfo[i] = DomainInfo{Name: d.Name(), Size: d.Size()}
	}

	preds := s.Predicates()
	predInfo := make([]PredicateInfo, len(preds))
	for i, p := range preds {
		domNames := make([]string, p.Arity())
		for axis := range domNames {
			domNames[axis] = p.Dom(axis).Name()
		}
		predInfo[i] = PredicateInfo{Name: p.Name(), Domains: domNames}
	}

	return TheorySnapshot{Domains: domInfo, Predicates: predInfo}
}

// EncodeTheory renders s's registered domains and predicates as JSON.
func EncodeTheory(s *engine.Solver) ([]byte, error) {
	out, err := sonic.Marshal(theorySnapshot(s))
	if err != nil {
		return nil, fmt.Errorf("export: encode theory: %w", err)
	}
	return out, nil
}

// EncodeSolution renders the current assignment of every predicate in s
// as JSON, with the given 1-based ordinal recorded alongside it. Callers
// typically invoke this from a SearchAll callback, once per recorded
// solution.
func EncodeSolution(s *engine.Solver, ordinal int) ([]byte, error) {
	var atoms []AtomValue
	for _, p := range s.Predicates() {
		sh := p.Shape()
		coords := make([]int, sh.Rank())
		for pos := 0; pos < sh.Size(); pos++ {
			sh.Coordinates(pos, coords)
			if p.Value(coords) != bitops.BoolTrue {
				continue
			}
			c := make([]int, len(coords))
			copy(c, coords)
			atoms = append(atoms, AtomValue{Predicate: p.Name(), Coords: c, Value: true})
		}
	}

	out, err := sonic.Marshal(SolutionSnapshot{Ordinal: ordinal, Atoms: atoms})
	if err != nil {
		return nil, fmt.Errorf("export: encode solution %d: %w", ordinal, err)
	}
	return out, nil
}
