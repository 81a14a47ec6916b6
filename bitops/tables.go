package bitops

// Propositional algebra: the truth value of a single ground atom.
const (
	BoolFalse   Bit2 = 0
	BoolUndef   Bit2 = 1
	BoolTrue    Bit2 = 2
	BoolMissing Bit2 = 3 // error/sentinel value, never a real assignment
)

// BoolGlyph renders the propositional cell glyphs from spec.md §6:
// '0','?','1','x' for FALSE/UNDEF/TRUE/MISSING.
var BoolGlyph = [4]rune{'0', '?', '1', 'x'}

// Evaluation algebra: the status of a partially-folded clause.
const (
	EvalFalse Bit2 = 0 // every literal falsified
	EvalUnit  Bit2 = 1 // exactly one still-undef literal, all others false
	EvalUndef Bit2 = 2 // two or more undefs, no true literal
	EvalTrue  Bit2 = 3 // at least one literal true
)

// EvalGlyph renders clause-status names: false/unit/undef/true.
var EvalGlyph = [4]string{"false", "unit", "undef", "true"}

// BoolNot negates a propositional value; UNDEF and MISSING are fixed points.
var BoolNot = newOp22([]caseOp22{
	{BoolFalse, BoolTrue},
	{BoolUndef, BoolUndef},
	{BoolTrue, BoolFalse},
	{BoolMissing, BoolMissing},
})

// BoolOr is the propositional OR: idempotent, commutative, associative,
// and distributes over BoolAnd on {FALSE,UNDEF,TRUE}. MISSING is the
// identity of both BoolOr and BoolAnd, so distributivity does not extend
// to it.
var BoolOr = newOp222([]caseOp222{
	{BoolFalse, BoolFalse, BoolFalse},
	{BoolFalse, BoolUndef, BoolUndef},
	{BoolFalse, BoolTrue, BoolTrue},
	{BoolFalse, BoolMissing, BoolFalse},
	{BoolUndef, BoolFalse, BoolUndef},
	{BoolUndef, BoolUndef, BoolUndef},
	{BoolUndef, BoolTrue, BoolTrue},
	{BoolUndef, BoolMissing, BoolUndef},
	{BoolTrue, BoolFalse, BoolTrue},
	{BoolTrue, BoolUndef, BoolTrue},
	{BoolTrue, BoolTrue, BoolTrue},
	{BoolTrue, BoolMissing, BoolTrue},
	{BoolMissing, BoolFalse, BoolFalse},
	{BoolMissing, BoolUndef, BoolUndef},
	{BoolMissing, BoolTrue, BoolTrue},
	{BoolMissing, BoolMissing, BoolMissing},
})

// BoolAnd is the propositional AND: idempotent, commutative, associative.
var BoolAnd = newOp222([]caseOp222{
	{BoolFalse, BoolFalse, BoolFalse},
	{BoolFalse, BoolUndef, BoolFalse},
	{BoolFalse, BoolTrue, BoolFalse},
	{BoolFalse, BoolMissing, BoolFalse},
	{BoolUndef, BoolFalse, BoolFalse},
	{BoolUndef, BoolUndef, BoolUndef},
	{BoolUndef, BoolTrue, BoolUndef},
	{BoolUndef, BoolMissing, BoolUndef},
	{BoolTrue, BoolFalse, BoolFalse},
	{BoolTrue, BoolUndef, BoolUndef},
	{BoolTrue, BoolTrue, BoolTrue},
	{BoolTrue, BoolMissing, BoolTrue},
	{BoolMissing, BoolFalse, BoolFalse},
	{BoolMissing, BoolUndef, BoolUndef},
	{BoolMissing, BoolTrue, BoolTrue},
	{BoolMissing, BoolMissing, BoolMissing},
})

// EvalAnd folds two partial clause statuses together: idempotent,
// commutative, associative, and orders FALSE <= UNIT <= UNDEF <= TRUE
// as a min operator would.
var EvalAnd = newOp222([]caseOp222{
	{EvalFalse, EvalFalse, EvalFalse},
	{EvalFalse, EvalUnit, EvalFalse},
	{EvalFalse, EvalUndef, EvalFalse},
	{EvalFalse, EvalTrue, EvalFalse},
	{EvalUnit, EvalFalse, EvalFalse},
	{EvalUnit, EvalUnit, EvalUnit},
	{EvalUnit, EvalUndef, EvalUnit},
	{EvalUnit, EvalTrue, EvalUnit},
	{EvalUndef, EvalFalse, EvalFalse},
	{EvalUndef, EvalUnit, EvalUnit},
	{EvalUndef, EvalUndef, EvalUndef},
	{EvalUndef, EvalTrue, EvalUndef},
	{EvalTrue, EvalFalse, EvalFalse},
	{EvalTrue, EvalUnit, EvalUnit},
	{EvalTrue, EvalUndef, EvalUndef},
	{EvalTrue, EvalTrue, EvalTrue},
})

// FoldPos absorbs one more positively-signed literal, whose underlying
// propositional value is b, into the running evaluation status e.
var FoldPos = newOp222([]caseOp222{
	{EvalFalse, BoolFalse, EvalFalse},
	{EvalFalse, BoolUndef, EvalUnit},
	{EvalFalse, BoolTrue, EvalTrue},
	{EvalFalse, BoolMissing, EvalFalse},
	{EvalUnit, BoolFalse, EvalUnit},
	{EvalUnit, BoolUndef, EvalUndef},
	{EvalUnit, BoolTrue, EvalTrue},
	{EvalUnit, BoolMissing, EvalUnit},
	{EvalUndef, BoolFalse, EvalUndef},
	{EvalUndef, BoolUndef, EvalUndef},
	{EvalUndef, BoolTrue, EvalTrue},
	{EvalUndef, BoolMissing, EvalUndef},
	{EvalTrue, BoolFalse, EvalTrue},
	{EvalTrue, BoolUndef, EvalTrue},
	{EvalTrue, BoolTrue, EvalTrue},
	{EvalTrue, BoolMissing, EvalTrue},
})

// FoldNeg absorbs one more negatively-signed literal. FoldNeg(e,b) ==
// FoldPos(e, BoolNot.Of(b)) holds by construction (asserted in tests).
var FoldNeg = newOp222([]caseOp222{
	{EvalFalse, BoolFalse, EvalTrue},
	{EvalFalse, BoolUndef, EvalUnit},
	{EvalFalse, BoolTrue, EvalFalse},
	{EvalFalse, BoolMissing, EvalFalse},
	{EvalUnit, BoolFalse, EvalTrue},
	{EvalUnit, BoolUndef, EvalUndef},
	{EvalUnit, BoolTrue, EvalUnit},
	{EvalUnit, BoolMissing, EvalUnit},
	{EvalUndef, BoolFalse, EvalTrue},
	{EvalUndef, BoolUndef, EvalUndef},
	{EvalUndef, BoolTrue, EvalUndef},
	{EvalUndef, BoolMissing, EvalUndef},
	{EvalTrue, BoolFalse, EvalTrue},
	{EvalTrue, BoolUndef, EvalTrue},
	{EvalTrue, BoolTrue, EvalTrue},
	{EvalTrue, BoolMissing, EvalTrue},
})

// FoldFor returns FoldPos or FoldNeg according to sign, so callers don't
// have to branch on sign at every fold call site.
func FoldFor(sign bool) Op222 {
	if sign {
		return FoldPos
	}
	return FoldNeg
}
