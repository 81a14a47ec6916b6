package engine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/relsat/bitops"
	"github.com/katalvlaran/relsat/buffer"
	"github.com/katalvlaran/relsat/shape"
)

// literal is a signed, axis-mapped reference into a predicate's block of
// the shared assignment, used inside a single clause. Its position
// iterator is precomputed once at clause-construction time: view the
// predicate's shape, polymer it onto the clause's shape using axes
// (introducing dummy axes for clause variables the literal doesn't
// mention, and summing strides for axes the literal repeats), then
// simplify.
type literal struct {
	sign bool
	pred Pred
	axes []int
	view *shape.View
	iter *shape.Iter
}

func newLiteral(sign bool, pred Pred, axes []int, clauseShape *shape.Shape) *literal {
	if len(axes) != pred.Arity() {
		panic("engine: literal axis count does not match predicate arity")
	}
	view := pred.view().Polymer(clauseShape, axes).Simplify()
	return &literal{sign: sign, pred: pred, axes: axes, view: view, iter: view.Iter()}
}

// evaluate folds every assignment cell this literal's view touches into
// target, using FOLD_POS for a positive literal and FOLD_NEG for a
// negative one. The fold operator commutes in its boolean argument, so
// the order literals are folded into a clause's buffer does not matter,
// but each literal must be folded exactly once per clause evaluation.
func (l *literal) evaluate(st *state, target *buffer.Buffer2) {
	l.iter.Reset()
	target.Apply(bitops.FoldFor(l.sign), st.assignment, l.iter)
}

// position returns this literal's flat position in the global
// assignment for the given clause coordinate vector.
func (l *literal) position(coords []int) int {
	sub := make([]int, len(l.axes))
	for i, axis := range l.axes {
		sub[i] = coords[axis]
	}
	return l.pred.position(sub)
}

// String renders the literal as "<+|-><name>(x<i1>,...,x<ik>)".
func (l *literal) String() string {
	parts := make([]string, len(l.axes))
	for i, axis := range l.axes {
		parts[i] = fmt.Sprintf("x%d", axis)
	}
	sign := "-"
	if l.sign {
		sign = "+"
	}
	return fmt.Sprintf("%s%s(%s)", sign, l.pred.rec().name, strings.Join(parts, ","))
}
