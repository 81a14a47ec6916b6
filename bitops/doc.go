// Package bitops defines the two four-valued lattices the solver runs on
// and the packed operator tables (built and checked once at package init)
// that evaluate them.
//
// What & Why:
//
//	A Bit2 is a 2-bit tagged value. Two disjoint four-valued algebras share
//	the representation: a propositional algebra (FALSE/UNDEF/TRUE/MISSING)
//	for ground atoms, and an evaluation algebra (FALSE/UNIT/UNDEF/TRUE) for
//	partially-folded clauses. Op22 and Op222 pack a unary/binary truth
//	table into a single 32-bit word so that evaluating an operator at
//	runtime is one shift and one mask, never a branch.
//
// Complexity:
//
//	Op22.Of and Op222.Of run in O(1) time with no allocation.
package bitops
