package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/relsat/bitops"
	"github.com/katalvlaran/relsat/shape"
)

// Pred is a handle to a predicate (relation variable) registered with a
// Solver.
type Pred struct {
	solver *Solver
	idx    int
}

// Arity returns the predicate's number of axes.
func (p Pred) Arity() int {
	return len(p.solver.state.predicates[p.idx].doms)
}

// Dom returns the domain of the given axis.
func (p Pred) Dom(axis int) Dom {
	return p.solver.state.predicates[p.idx].doms[axis]
}

func (p Pred) rec() *predicate {
	return &p.solver.state.predicates[p.idx]
}

// position returns the global assignment position for the given
// predicate-local coordinates.
func (p Pred) position(coords []int) int {
	rec := p.rec()
	return rec.offset + rec.shape.Position(coords)
}

// view returns the predicate's canonical view based at its global
// offset, the starting point for every literal that references it.
func (p Pred) view() *shape.View {
	rec := p.rec()
	return rec.shape.ViewAt(rec.offset)
}

// contains reports whether pos falls within this predicate's block.
func (p Pred) contains(pos int) bool {
	rec := p.rec()
	return pos >= rec.offset && pos < rec.offset+rec.shape.Size()
}

// coordinates decodes a global position known to lie within this
// predicate's block into local coordinates.
func (p Pred) coordinates(pos int) []int {
	rec := p.rec()
	out := make([]int, rec.shape.Rank())
	rec.shape.Coordinates(pos-rec.offset, out)
	return out
}

// Name returns the predicate's registered name.
func (p Pred) Name() string {
	return p.rec().name
}

// Value returns the current two-bit propositional value of the ground
// atom at coords (BoolFalse, BoolUndef, BoolTrue).
func (p Pred) Value(coords []int) bitops.Bit2 {
	return bitops.Bit2(p.solver.state.assignment.Get(p.position(coords)))
}

// Shape exposes the predicate's table shape, for callers (export,
// store) that need to enumerate every coordinate vector.
func (p Pred) Shape() *shape.Shape {
	return p.rec().shape
}

// String renders the predicate's signature, e.g. "mul(set,set,set)".
func (p Pred) String() string {
	rec := p.rec()
	names := make([]string, len(rec.doms))
	for i, d := range rec.doms {
		names[i] = d.Name()
	}
	return fmt.Sprintf("%s(%s)", rec.name, strings.Join(names, ","))
}
