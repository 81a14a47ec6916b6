// Package engine: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors returned by
// builder-facing calls. Callers MUST check them via errors.Is, never by
// string comparison. Contract violations on the hot propagation path
// (see doc.go) panic instead and are not listed here.

package engine

import "errors"

var (
	// ErrNameCollision is returned by AddDomain/AddPredicate when the
	// given name is already in use within the solver.
	ErrNameCollision = errors.New("engine: name already in use")

	// ErrArityMismatch is returned by AddClause when a literal's axis
	// list length does not equal its predicate's arity.
	ErrArityMismatch = errors.New("engine: literal arity does not match predicate")

	// ErrDomainMismatch is returned by AddClause when two literals
	// disagree on the domain bound to the same clause variable, and by
	// AddDomain when the requested size is below 1.
	ErrDomainMismatch = errors.New("engine: domain mismatch on shared clause variable")

	// ErrAlreadyAssigned is returned by SetValue when the target cell is
	// not UNDEF.
	ErrAlreadyAssigned = errors.New("engine: position already assigned")

	// ErrUnknownHandle identifies a Dom/Pred handle that was not issued
	// by this solver (e.g. one from a different Solver instance). The
	// builder methods do not check handle ownership, so none of them
	// returns it.
	ErrUnknownHandle = errors.New("engine: handle not recognized by this solver")

	// ErrNotBinarySquare is returned by SetEquality when the predicate is
	// not binary over two domains of equal size.
	ErrNotBinarySquare = errors.New("engine: set_equality requires a binary predicate over two domains of equal size")
)
