package engine

import (
	"fmt"

	"github.com/katalvlaran/relsat/bitops"
	"github.com/katalvlaran/relsat/buffer"
	"github.com/katalvlaran/relsat/shape"
)

// ReasonKind tags why a trail step happened.
type ReasonKind int

const (
	// ReasonInitial marks a value forced by SetValue/SetEquality before
	// any propagation ran.
	ReasonInitial ReasonKind = iota
	// ReasonDecision marks a branch point pushed by makeDecision.
	ReasonDecision
	// ReasonClause marks a unit propagation forced by a clause; Clause
	// holds the positions of the clause's other (already-assigned)
	// literals, the propagation's cause.
	ReasonClause
	// ReasonExists marks a value forced by an exists axiom's fiber
	// having exactly one undef and no true cell.
	ReasonExists
)

// Reason explains why a Step's position was assigned.
type Reason struct {
	Kind   ReasonKind
	Clause []int // populated only when Kind == ReasonClause
}

// Step is one entry in the trail: a position and why it was assigned.
type Step struct {
	Pos    int
	Reason Reason
}

// predicate is the internal record backing a Pred handle: its shape and
// the domains its axes range over, carved out of the shared assignment
// at construction time.
type predicate struct {
	name   string
	doms   []Dom
	shape  *shape.Shape
	offset int
}

// state is the single owner of the shared assignment buffer and the
// causal trail, mirroring original_source/src/solver1/solver.rs::State.
// Invariant T1: every trail position has assignment in {FALSE,TRUE};
// every other position is UNDEF. Invariant T2: levels is strictly
// increasing and every levels[i] indexes a Decision step.
type state struct {
	assignment *buffer.Buffer2
	trail      []Step
	levels     []int

	domains    []domain
	predicates []predicate
}

func newState() *state {
	return &state{assignment: buffer.NewBuffer2(0, uint32(bitops.BoolUndef))}
}

// createTable carves a new contiguous block of doms-volume UNDEF cells
// out of the assignment and returns its canonical shape and base offset,
// mirroring State::create_table.
func (s *state) createTable(doms []Dom) (sh *shape.Shape, offset int) {
	dims := make([]int, len(doms))
	for i, d := range doms {
		dims[i] = d.Size()
	}
	sh = shape.New(dims...)
	offset = s.assignment.Len()
	s.assignment.Append(sh.Size(), uint32(bitops.BoolUndef))
	return sh, offset
}

// assign writes sign's boolean value into pos and appends a trail step.
// A position that already holds the requested value is left as is, with
// no trail step, in either mode. strict selects Open-Question (ii) for a
// conflicting re-assignment: if true, it returns conflict=true, which the
// caller reports as a contradiction; if false, it is silently dropped
// (spec.md's literal wording).
func (s *state) assign(pos int, sign bool, reason Reason, strict bool) (conflict bool) {
	want := bitops.BoolFalse
	if sign {
		want = bitops.BoolTrue
	}
	cur := bitops.Bit2(s.assignment.Get(pos))
	if cur != bitops.BoolUndef {
		if cur == want {
			return false
		}
		if strict {
			return true
		}
		return false
	}
	s.assignment.Set(pos, uint32(want))
	s.trail = append(s.trail, Step{Pos: pos, Reason: reason})
	return false
}

// makeDecision finds the lowest-index UNDEF position, assigns it TRUE as
// a Decision, and pushes a new level. Returns false if no UNDEF position
// remains.
func (s *state) makeDecision() bool {
	for i := 0; i < s.assignment.Len(); i++ {
		if bitops.Bit2(s.assignment.Get(i)) == bitops.BoolUndef {
			s.levels = append(s.levels, len(s.trail))
			s.assignment.Set(i, uint32(bitops.BoolTrue))
			s.trail = append(s.trail, Step{Pos: i, Reason: Reason{Kind: ReasonDecision}})
			return true
		}
	}
	return false
}

// nextDecision chronologically backtracks: pops the top level, discards
// it if its decision is already FALSE (an exhausted branch), otherwise
// undoes every step above it, flips the decision to FALSE, and pushes
// the level back. Returns false once levels is empty.
func (s *state) nextDecision() bool {
	for len(s.levels) > 0 {
		level := s.levels[len(s.levels)-1]
		s.levels = s.levels[:len(s.levels)-1]

		val := bitops.Bit2(s.assignment.Get(s.trail[level].Pos))
		if val == bitops.BoolFalse {
			continue
		}
		if val != bitops.BoolTrue {
			panic(fmt.Sprintf("engine: decision at trail level %d is not TRUE/FALSE", level))
		}

		for i := len(s.trail) - 1; i > level; i-- {
			pos := s.trail[i].Pos
			if bitops.Bit2(s.assignment.Get(pos)) == bitops.BoolUndef {
				panic(fmt.Sprintf("engine: trail position %d already undef on backtrack", pos))
			}
			s.assignment.Set(pos, uint32(bitops.BoolUndef))
		}
		s.trail = s.trail[:level+1]
		s.assignment.Set(s.trail[level].Pos, uint32(bitops.BoolFalse))
		s.levels = append(s.levels, level)
		return true
	}
	return false
}
