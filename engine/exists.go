package engine

import "github.com/katalvlaran/relsat/bitops"

// exists is the total-function axiom over a predicate's last-axis
// fibers: for every fixed prefix of coordinates, at least one cell along
// the last axis must be TRUE.
type exists struct {
	pred Pred
}

func newExists(pred Pred) *exists {
	return &exists{pred: pred}
}

func (e *exists) fiberBlock() (volume, block int) {
	sh := e.pred.rec().shape
	volume = sh.Size()
	if sh.Rank() == 0 {
		return volume, volume
	}
	block = sh.Dim(sh.Rank() - 1)
	return volume, block
}

// fiberStatus inspects one fiber of block consecutive assignment cells
// starting at pos and returns its status in the Eval lattice: TRUE if
// any cell is TRUE, FALSE if none is TRUE and none is undef, UNIT if
// exactly one cell is undef and none is TRUE, else UNDEF. Folding this
// into the same Eval lattice the clause buffer uses lets exists status
// compose with clause status via a single bitops.EvalAnd at the solver
// level, and gives Exists.propagate the same UNIT-consuming contract as
// Clause.propagate.
func fiberStatus(st *state, pos, block int) (status bitops.Bit2, undefPos int) {
	undefPos = -1
	undefCount := 0
	for i := pos; i < pos+block; i++ {
		switch bitops.Bit2(st.assignment.Get(i)) {
		case bitops.BoolTrue:
			return bitops.EvalTrue, -1
		case bitops.BoolUndef:
			undefCount++
			undefPos = i
		}
	}
	switch undefCount {
	case 0:
		return bitops.EvalFalse, -1
	case 1:
		return bitops.EvalUnit, undefPos
	default:
		return bitops.EvalUndef, -1
	}
}

// status is the AND-fold, across all fibers, of each fiber's status.
func (e *exists) status(st *state) bitops.Bit2 {
	volume, block := e.fiberBlock()
	start := e.pred.rec().offset
	result := bitops.EvalTrue
	for pos := start; pos < start+volume; pos += block {
		fiber, _ := fiberStatus(st, pos, block)
		result = bitops.EvalAnd.Of(result, fiber)
	}
	return result
}

// propagate walks every fiber; a fiber whose status is UNIT has its
// single undef position assigned TRUE with reason Exists. Returns the
// AND-fold across all fibers as inspected before each fiber's assignment,
// so UNIT means at least one fiber was propagated; a conflicting
// assignment returns FALSE.
func (e *exists) propagate(st *state, strict bool) bitops.Bit2 {
	volume, block := e.fiberBlock()
	start := e.pred.rec().offset
	result := bitops.EvalTrue
	for pos := start; pos < start+volume; pos += block {
		fiber, undefPos := fiberStatus(st, pos, block)
		result = bitops.EvalAnd.Of(result, fiber)
		if fiber == bitops.EvalFalse {
			break
		}
		if fiber == bitops.EvalUnit {
			conflict := st.assign(undefPos, true, Reason{Kind: ReasonExists}, strict)
			if conflict {
				result = bitops.EvalFalse
				break
			}
		}
	}
	return result
}

// failure returns the starting position, in the shared assignment, of the
// first fiber with no true cell, or -1 if every fiber currently has one.
func (e *exists) failure(st *state) int {
	volume, block := e.fiberBlock()
	start := e.pred.rec().offset
	for pos := start; pos < start+volume; pos += block {
		fiber, _ := fiberStatus(st, pos, block)
		if fiber == bitops.EvalFalse {
			return pos
		}
	}
	return -1
}
