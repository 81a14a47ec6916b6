package engine

import (
	"strings"

	"github.com/katalvlaran/relsat/bitops"
	"github.com/katalvlaran/relsat/buffer"
	"github.com/katalvlaran/relsat/shape"
)

// clause is a universally-quantified disjunction of signed literals over
// a shared set of clause-local variables, with its own evaluation
// buffer. Its domain vector is inferred at construction time: the first
// literal to mention a clause variable fixes that variable's domain;
// later literals disagreeing about it is an ErrDomainMismatch.
type clause struct {
	doms     []Dom
	literals []*literal
	shape    *shape.Shape
	buf      *buffer.Buffer2
}

func newClause(doms []Dom, literals []*literal, sh *shape.Shape) *clause {
	return &clause{doms: doms, literals: literals, shape: sh, buf: buffer.NewBuffer2(sh.Size(), uint32(bitops.EvalFalse))}
}

// evaluate resets the buffer to EVAL_FALSE and folds every literal in.
func (c *clause) evaluate(st *state) {
	c.buf.Fill(uint32(bitops.EvalFalse))
	for _, lit := range c.literals {
		lit.evaluate(st, c.buf)
	}
}

// status returns the AND-fold of every evaluation cell: TRUE iff no
// cell is below TRUE, FALSE iff any cell is FALSE, else UNIT if any cell
// is UNIT (and none are FALSE), else UNDEF.
func (c *clause) status() bitops.Bit2 {
	res := bitops.EvalTrue
	for i := 0; i < c.buf.Len(); i++ {
		res = bitops.EvalAnd.Of(res, bitops.Bit2(c.buf.Get(i)))
	}
	return res
}

// propagate scans the evaluation buffer linearly. For every UNIT cell it
// decodes the clause-coordinate vector, locates the single undef literal
// (panicking if more than one is undef), and asks state to assign that
// literal's position to its sign,
// with the clause's other (already-assigned) literal positions recorded
// as the propagation's reason. If an earlier assignment in the same pass
// has already decided that literal, the cell is skipped when some literal
// now holds and the scan stops with FALSE otherwise. Returns the AND-fold of every inspected
// cell as evaluated before this call's assignments, so UNIT means at
// least one unit was propagated; a conflicting assignment returns FALSE.
func (c *clause) propagate(st *state, strict bool) bitops.Bit2 {
	coords := make([]int, c.shape.Rank())
	result := bitops.EvalTrue
	for pos := 0; pos < c.buf.Len(); pos++ {
		val := bitops.Bit2(c.buf.Get(pos))
		result = bitops.EvalAnd.Of(result, val)
		if val == bitops.EvalFalse {
			break
		}
		if val != bitops.EvalUnit {
			continue
		}

		c.shape.Coordinates(pos, coords)
		var unitLit *literal
		unitPos := -1
		var reason []int
		holds := false
		for _, lit := range c.literals {
			bvar := lit.position(coords)
			bval := bitops.Bit2(st.assignment.Get(bvar))
			if bval == bitops.BoolUndef {
				if unitLit != nil {
					panic("engine: clause cell marked UNIT has more than one undef literal")
				}
				unitLit = lit
				unitPos = bvar
			} else {
				reason = append(reason, bvar)
				holds = holds || (bval == bitops.BoolTrue) == lit.sign
			}
		}
		if unitLit == nil {
			// An earlier assignment in this pass already decided the
			// cell's last undef literal.
			if holds {
				continue
			}
			result = bitops.EvalFalse
			break
		}
		conflict := st.assign(unitPos, unitLit.sign, Reason{Kind: ReasonClause, Clause: reason}, strict)
		if conflict {
			result = bitops.EvalFalse
			break
		}
	}
	return result
}

// failure returns the ground-atom positions of every literal in this
// clause's first falsified cell, or nil if the clause is not currently
// FALSE. Grounded on Clause::get_failure.
func (c *clause) failure() []int {
	coords := make([]int, c.shape.Rank())
	for pos := 0; pos < c.buf.Len(); pos++ {
		if bitops.Bit2(c.buf.Get(pos)) == bitops.EvalFalse {
			c.shape.Coordinates(pos, coords)
			out := make([]int, len(c.literals))
			for i, lit := range c.literals {
				out[i] = lit.position(coords)
			}
			return out
		}
	}
	return nil
}

// String renders the clause as its literals separated by spaces,
// followed by " = <status>".
func (c *clause) String() string {
	parts := make([]string, len(c.literals))
	for i, lit := range c.literals {
		parts[i] = lit.String()
	}
	return strings.Join(parts, " ") + " = " + bitops.EvalGlyph[c.status().Idx()]
}
