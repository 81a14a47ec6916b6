// Package engine implements the finite-model search core: domains,
// predicates, literals, clauses, exists axioms, and the propagate/decide/
// backtrack driver that enumerates every satisfying assignment.
//
// What & Why:
//
//	A Solver owns a single State: a packed two-bit assignment buffer
//	(buffer.Buffer2) shared by every predicate, an ordered trail of
//	assignment steps each tagged with why it happened (initial value,
//	decision, unit propagation from a clause, or an exists axiom), and a
//	decision-level stack. Predicates carve out a contiguous, disjoint
//	block of that buffer at construction time; literals reference a
//	predicate through a precomputed shape.Iter so that clause evaluation
//	never walks nested index loops by hand. Clauses and exists axioms
//	fold the assignment into their own evaluation buffers using the
//	bitops fold tables, turning "is this clause a unit? a conflict?" into
//	a single lattice value instead of branching control flow.
//
//	SearchAll runs propagation to a fixpoint, then either records a
//	solution, backtracks on contradiction, or makes a new decision on the
//	lowest-index still-undetermined cell, repeating until the decision
//	stack is empty.
//
// Error handling:
//
//	Builder-facing calls (AddDomain, AddPredicate, AddClause, SetValue,
//	...) return wrapped sentinel errors from errors.go; internal
//	contract violations on the hot propagation path (out-of-range
//	position, a unit cell with more than one undef literal) panic,
//	since they can only indicate a bug in this package, never bad caller
//	input.
//
// Logging:
//
//	Decisions, backtracks, contradictions, and recorded solutions are
//	logged at Debug level via github.com/rs/zerolog (the global logger by
//	default, or an injected one via WithLogger), so a caller who never
//	configures logging sees nothing.
package engine
