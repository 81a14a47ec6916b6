package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/relsat/bitops"
	"github.com/katalvlaran/relsat/shape"
)

// LiteralSpec names one signed occurrence of a predicate inside a clause
// being built: Axes[i] is the clause variable the predicate's axis i is
// bound to.
type LiteralSpec struct {
	Sign bool
	Pred Pred
	Axes []int
}

// Solver is the single-threaded finite-model search engine: it owns the
// shared assignment state plus every registered clause and exists axiom,
// and runs the propagate/decide/backtrack loop described by SearchAll.
//
// Solver is not safe for concurrent use: per spec, the core is
// single-threaded and synchronous, so no internal locking is attempted.
type Solver struct {
	state   *state
	clauses []*clause
	exists  []*exists
	cfg     *solverConfig
	logger  zerolog.Logger

	solutions int
}

// NewSolver creates an empty solver, resolving opts into an immutable
// configuration.
func NewSolver(opts ...SolverOption) *Solver {
	cfg := newSolverConfig(opts...)
	return &Solver{state: newState(), cfg: cfg, logger: cfg.logger}
}

// AddDomain registers a new domain of the given size under name. name
// must be unique within the solver and size must be at least 1.
func (s *Solver) AddDomain(name string, size int) (Dom, error) {
	if size < 1 {
		return Dom{}, fmt.Errorf("AddDomain(%q): size must be >= 1: %w", name, ErrDomainMismatch)
	}
	for _, d := range s.state.domains {
		if d.name == name {
			return Dom{}, fmt.Errorf("AddDomain(%q): %w", name, ErrNameCollision)
		}
	}
	idx := len(s.state.domains)
	s.state.domains = append(s.state.domains, domain{name: name, size: size})
	return Dom{solver: s, idx: idx}, nil
}

// AddPredicate registers a new predicate named name over the given
// domains. name must be unique within the solver. This extends the
// shared assignment by the product of the domain sizes, all UNDEF.
func (s *Solver) AddPredicate(name string, doms ...Dom) (Pred, error) {
	for _, p := range s.state.predicates {
		if p.name == name {
			return Pred{}, fmt.Errorf("AddPredicate(%q): %w", name, ErrNameCollision)
		}
	}
	sh, offset := s.state.createTable(doms)
	idx := len(s.state.predicates)
	s.state.predicates = append(s.state.predicates, predicate{name: name, doms: append([]Dom(nil), doms...), shape: sh, offset: offset})
	return Pred{solver: s, idx: idx}, nil
}

// AddClause registers a new clause over the given signed literal specs.
// Clause variables are numbered by the axis indices used in specs; the
// domain of clause variable k is inferred from the first literal that
// uses axis k, and every later literal using axis k must agree.
func (s *Solver) AddClause(specs ...LiteralSpec) error {
	var doms []Dom
	var known []bool
	for _, spec := range specs {
		if len(spec.Axes) != spec.Pred.Arity() {
			return fmt.Errorf("AddClause: literal over %s: %w", spec.Pred, ErrArityMismatch)
		}
		for i, axis := range spec.Axes {
			if axis+1 > len(doms) {
				grown := make([]Dom, axis+1)
				copy(grown, doms)
				doms = grown
				grownKnown := make([]bool, axis+1)
				copy(grownKnown, known)
				known = grownKnown
			}
			d := spec.Pred.Dom(i)
			if !known[axis] {
				doms[axis] = d
				known[axis] = true
			} else if doms[axis].solver != d.solver || doms[axis].idx != d.idx {
				return fmt.Errorf("AddClause: variable x%d: %w", axis, ErrDomainMismatch)
			}
		}
	}

	dims := make([]int, len(doms))
	for i, d := range doms {
		dims[i] = d.Size()
	}
	clauseShape := shape.New(dims...)

	lits := make([]*literal, len(specs))
	for i, spec := range specs {
		lits[i] = newLiteral(spec.Sign, spec.Pred, spec.Axes, clauseShape)
	}

	s.clauses = append(s.clauses, newClause(doms, lits, clauseShape))
	return nil
}

// AddExists records the total-function axiom on pred: along pred's last
// axis, at least one cell must be TRUE for every fixed prefix.
func (s *Solver) AddExists(pred Pred) {
	s.exists = append(s.exists, newExists(pred))
}

// SetValue forces coords of pred to sign's boolean value. Fails with
// ErrAlreadyAssigned if the cell is not currently UNDEF — this check is
// unconditional, independent of WithStrictReassignment (which governs
// only re-assignment encountered during propagation, not this
// builder-facing call).
func (s *Solver) SetValue(sign bool, pred Pred, coords []int) error {
	pos := pred.position(coords)
	if bitops.Bit2(s.state.assignment.Get(pos)) != bitops.BoolUndef {
		return fmt.Errorf("SetValue(%s,%v): %w", pred, coords, ErrAlreadyAssigned)
	}
	val := bitops.BoolFalse
	if sign {
		val = bitops.BoolTrue
	}
	s.state.assignment.Set(pos, uint32(val))
	s.state.trail = append(s.state.trail, Step{Pos: pos, Reason: Reason{Kind: ReasonInitial}})
	return nil
}

// SetEquality forces pred's cells to (i == j) for a binary predicate
// over two domains of equal size, a convenience for axiomatizing an
// equivalence relation's reflexivity against the identity matrix.
func (s *Solver) SetEquality(pred Pred) error {
	if pred.Arity() != 2 || pred.Dom(0).Size() != pred.Dom(1).Size() {
		return fmt.Errorf("SetEquality(%s): %w", pred, ErrNotBinarySquare)
	}
	n := pred.Dom(0).Size()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := s.SetValue(i == j, pred, []int{i, j}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Solver) clausesStatus() bitops.Bit2 {
	res := bitops.EvalTrue
	for _, c := range s.clauses {
		res = bitops.EvalAnd.Of(res, c.status())
	}
	return res
}

func (s *Solver) existsStatus() bitops.Bit2 {
	res := bitops.EvalTrue
	for _, e := range s.exists {
		res = bitops.EvalAnd.Of(res, e.status(s.state))
	}
	return res
}

// Status returns the AND-fold of every clause's and every exists axiom's
// status.
func (s *Solver) Status() bitops.Bit2 {
	return bitops.EvalAnd.Of(s.clausesStatus(), s.existsStatus())
}

// EvaluateAll re-evaluates every clause's buffer against the current
// assignment, without propagating. Used before Dump so failure() sees a
// buffer consistent with the current state.
func (s *Solver) EvaluateAll() {
	for _, c := range s.clauses {
		c.evaluate(s.state)
	}
}

func (s *Solver) propagateClauses() bitops.Bit2 {
	result := bitops.EvalTrue
	for _, c := range s.clauses {
		c.evaluate(s.state)
		result = bitops.EvalAnd.Of(result, c.propagate(s.state, s.cfg.strictReassignment))
	}
	return result
}

func (s *Solver) propagateClausesToFixpoint() bitops.Bit2 {
	for {
		v := s.propagateClauses()
		if v == bitops.EvalUnit {
			continue
		}
		return v
	}
}

func (s *Solver) propagateExists() bitops.Bit2 {
	result := bitops.EvalTrue
	for _, e := range s.exists {
		result = bitops.EvalAnd.Of(result, e.propagate(s.state, s.cfg.strictReassignment))
	}
	return result
}

// round runs one full propagation-to-fixpoint, combining clauses and
// exists axioms per the configured Open-Question (i) scheduling.
func (s *Solver) round() bitops.Bit2 {
	if s.cfg.existsEveryRound {
		for {
			value := s.propagateClauses()
			if value != bitops.EvalFalse && len(s.exists) != 0 {
				value = bitops.EvalAnd.Of(value, s.propagateExists())
			}
			if value == bitops.EvalUnit {
				continue
			}
			return value
		}
	}
	for {
		cval := s.propagateClausesToFixpoint()
		if cval == bitops.EvalFalse || len(s.exists) == 0 {
			return cval
		}
		eval := s.propagateExists()
		combined := bitops.EvalAnd.Of(cval, eval)
		if eval == bitops.EvalUnit {
			continue
		}
		return combined
	}
}

// SearchAll runs propagation to fixpoint, decision, and chronological
// backtracking to completion, invoking onSolution once for every
// recorded solution (in the order found). If the solver was built with
// WithSolutionLimit(n), the search stops after n solutions even if more
// remain.
func (s *Solver) SearchAll(onSolution func(*Solver)) {
	for {
		value := s.round()

		switch value {
		case bitops.EvalFalse:
			s.logger.Debug().Msg("contradiction reached, backtracking")
			if !s.state.nextDecision() {
				return
			}
		case bitops.EvalTrue:
			s.solutions++
			s.logger.Debug().Int("ordinal", s.solutions).Msg("solution recorded")
			if onSolution != nil {
				onSolution(s)
			}
			if s.cfg.solutionLimit > 0 && s.solutions >= s.cfg.solutionLimit {
				return
			}
			if !s.state.nextDecision() {
				return
			}
		default:
			if !s.state.makeDecision() {
				panic("engine: status is undef but no undef position remains")
			}
			last := s.state.trail[len(s.state.trail)-1]
			s.logger.Debug().Int("pos", last.Pos).Msg("decision made")
		}
	}
}

// Solutions returns the number of solutions recorded so far.
func (s *Solver) Solutions() int {
	return s.solutions
}

// Domains returns every domain registered with this solver, in
// registration order.
func (s *Solver) Domains() []Dom {
	out := make([]Dom, len(s.state.domains))
	for i := range s.state.domains {
		out[i] = Dom{solver: s, idx: i}
	}
	return out
}

// Predicates returns every predicate registered with this solver, in
// registration order.
func (s *Solver) Predicates() []Pred {
	out := make([]Pred, len(s.state.predicates))
	for i := range s.state.predicates {
		out[i] = Pred{solver: s, idx: i}
	}
	return out
}

// lookupPred returns the predicate owning pos, or the zero Pred and false
// if pos falls in no predicate's block (which should not happen for any
// position that reached the trail).
func (s *Solver) lookupPred(pos int) (Pred, bool) {
	for i := range s.state.predicates {
		handle := Pred{solver: s, idx: i}
		if handle.contains(pos) {
			return handle, true
		}
	}
	return Pred{}, false
}

// formatVar renders the ground atom at pos as "<name>(<c0>,...,<ck>)", or
// "@<pos>" if pos falls outside every known predicate's block.
func (s *Solver) formatVar(pos int) string {
	pred, ok := s.lookupPred(pos)
	if !ok {
		return fmt.Sprintf("@%d", pos)
	}
	coords := pred.coordinates(pos)
	strs := make([]string, len(coords))
	for i, c := range coords {
		strs[i] = fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("%s(%s)", pred.rec().name, strings.Join(strs, ","))
}

// formatReason renders why a Step was assigned: "set" for an initial
// step, "decision", "exists", or "clause(<atoms>)" listing the clause's
// other ground atoms for a clause-propagated one.
func (s *Solver) formatReason(reason Reason) string {
	switch reason.Kind {
	case ReasonInitial:
		return "set"
	case ReasonDecision:
		return "decision"
	case ReasonExists:
		return "exists"
	case ReasonClause:
		parts := make([]string, len(reason.Clause))
		for i, pos := range reason.Clause {
			parts[i] = s.formatVar(pos)
		}
		return "clause(" + strings.Join(parts, ",") + ")"
	default:
		return "?"
	}
}

// FormatStep renders one trail entry as "<var> = <value>  [<reason>]".
func (s *Solver) FormatStep(step Step) string {
	val := bitops.Bit2(s.state.assignment.Get(step.Pos))
	return fmt.Sprintf("%s = %c  [%s]", s.formatVar(step.Pos), bitops.BoolGlyph[val.Idx()], s.formatReason(step.Reason))
}

// Dump writes a full diagnostic snapshot of the solver to w: every
// domain, every predicate's current table, the trail in order, every
// clause with its status (and ground failure if falsified), every
// exists axiom's status (and first failed fiber if falsified), and the
// solver's aggregate status. Callers wanting failure() to reflect the
// current assignment should call EvaluateAll first.
func (s *Solver) Dump(w io.Writer) {
	fmt.Fprintln(w, "domains:")
	for _, d := range s.state.domains {
		fmt.Fprintf(w, "  %s = %d\n", d.name, d.size)
	}

	fmt.Fprintln(w, "predicates:")
	for i, p := range s.state.predicates {
		handle := Pred{solver: s, idx: i}
		fmt.Fprintf(w, "  %s\n", handle)
		for pos := 0; pos < p.shape.Size(); pos++ {
			val := bitops.Bit2(s.state.assignment.Get(p.offset + pos))
			coords := make([]int, p.shape.Rank())
			p.shape.Coordinates(pos, coords)
			strs := make([]string, len(coords))
			for j, c := range coords {
				strs[j] = fmt.Sprintf("%d", c)
			}
			fmt.Fprintf(w, "    %s(%s) = %c\n", p.name, strings.Join(strs, ","), bitops.BoolGlyph[val.Idx()])
		}
	}

	fmt.Fprintln(w, "trail:")
	for _, step := range s.state.trail {
		fmt.Fprintf(w, "  %s\n", s.FormatStep(step))
	}

	fmt.Fprintln(w, "clauses:")
	for _, c := range s.clauses {
		fmt.Fprintf(w, "  %s\n", c)
		if c.status() == bitops.EvalFalse {
			fail := c.failure()
			parts := make([]string, len(fail))
			for i, pos := range fail {
				parts[i] = s.formatVar(pos)
			}
			fmt.Fprintf(w, "    failure: %s\n", strings.Join(parts, " "))
		}
	}

	fmt.Fprintln(w, "exists:")
	for _, e := range s.exists {
		fmt.Fprintf(w, "  exists %s: %s\n", e.pred, bitops.EvalGlyph[e.status(s.state).Idx()])
		if pos := e.failure(s.state); pos >= 0 {
			fmt.Fprintf(w, "    failure fiber at %s\n", s.formatVar(pos))
		}
	}

	fmt.Fprintf(w, "status: %s\n", bitops.EvalGlyph[s.Status().Idx()])
}
