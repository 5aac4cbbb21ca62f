package mir

import "templar/internal/invariant"

// constantFolder evaluates arithmetic and boolean operators whose
// operands reduce to literals. Division and modulus by a literal zero
// are left unfolded so the error surfaces where the target language
// evaluates them.
type constantFolder struct {
	BaseTransformer
}

// FoldConstants returns a module with constant subexpressions
// evaluated. The input module is not modified.
func FoldConstants(m *Module) *Module {
	f := &constantFolder{}
	f.BaseTransformer.T = f
	return f.TransformModule(m)
}

func intLiteralValue(e Expr) (int64, bool) {
	lit, ok := e.(*IntLiteral)
	if !ok {
		return 0, false
	}
	return lit.Value, true
}

func boolLiteralValue(e Expr) (bool, bool) {
	lit, ok := e.(*BoolLiteral)
	if !ok {
		return false, false
	}
	return lit.Value, true
}

// floorDiv rounds toward negative infinity, matching the source
// language's '//'.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod yields a result with the sign of the divisor, so that
// a == floorDiv(a, b)*b + floorMod(a, b).
func floorMod(a, b int64) int64 {
	r := a % b
	if r != 0 && ((a < 0) != (b < 0)) {
		r += b
	}
	return r
}

func (f *constantFolder) TransformIntBinaryOpExpr(e *IntBinaryOpExpr) Expr {
	lhs := f.TransformExpr(e.Lhs)
	rhs := f.TransformExpr(e.Rhs)
	lhsValue, lhsOk := intLiteralValue(lhs)
	rhsValue, rhsOk := intLiteralValue(rhs)
	if !lhsOk || !rhsOk {
		return NewIntBinaryOpExpr(lhs, rhs, e.Op)
	}
	switch e.Op {
	case "+":
		return NewIntLiteral(lhsValue + rhsValue)
	case "-":
		return NewIntLiteral(lhsValue - rhsValue)
	case "*":
		return NewIntLiteral(lhsValue * rhsValue)
	case "//":
		if rhsValue == 0 {
			return NewIntBinaryOpExpr(lhs, rhs, e.Op)
		}
		return NewIntLiteral(floorDiv(lhsValue, rhsValue))
	case "%":
		if rhsValue == 0 {
			return NewIntBinaryOpExpr(lhs, rhs, e.Op)
		}
		return NewIntLiteral(floorMod(lhsValue, rhsValue))
	default:
		invariant.Violationf("invalid int binary op %q", e.Op)
		return nil
	}
}

func (f *constantFolder) TransformIntComparisonExpr(e *IntComparisonExpr) Expr {
	lhs := f.TransformExpr(e.Lhs)
	rhs := f.TransformExpr(e.Rhs)
	lhsValue, lhsOk := intLiteralValue(lhs)
	rhsValue, rhsOk := intLiteralValue(rhs)
	if !lhsOk || !rhsOk {
		return NewIntComparisonExpr(lhs, rhs, e.Op)
	}
	switch e.Op {
	case "<":
		return NewBoolLiteral(lhsValue < rhsValue)
	case ">":
		return NewBoolLiteral(lhsValue > rhsValue)
	case "<=":
		return NewBoolLiteral(lhsValue <= rhsValue)
	case ">=":
		return NewBoolLiteral(lhsValue >= rhsValue)
	default:
		invariant.Violationf("invalid int comparison op %q", e.Op)
		return nil
	}
}

func (f *constantFolder) TransformIntUnaryMinusExpr(e *IntUnaryMinusExpr) Expr {
	operand := f.TransformExpr(e.Expr)
	if value, ok := intLiteralValue(operand); ok {
		return NewIntLiteral(-value)
	}
	return NewIntUnaryMinusExpr(operand)
}

func (f *constantFolder) TransformNotExpr(e *NotExpr) Expr {
	operand := f.TransformExpr(e.Expr)
	if value, ok := boolLiteralValue(operand); ok {
		return NewBoolLiteral(!value)
	}
	return NewNotExpr(operand)
}

// A literal lhs decides a short-circuit operator outright. A literal
// rhs alone cannot: the lhs may be kept for its evaluation position.
func (f *constantFolder) TransformAndExpr(e *AndExpr) Expr {
	lhs := f.TransformExpr(e.Lhs)
	rhs := f.TransformExpr(e.Rhs)
	if value, ok := boolLiteralValue(lhs); ok {
		if !value {
			return NewBoolLiteral(false)
		}
		return rhs
	}
	return NewAndExpr(lhs, rhs)
}

func (f *constantFolder) TransformOrExpr(e *OrExpr) Expr {
	lhs := f.TransformExpr(e.Lhs)
	rhs := f.TransformExpr(e.Rhs)
	if value, ok := boolLiteralValue(lhs); ok {
		if value {
			return NewBoolLiteral(true)
		}
		return rhs
	}
	return NewOrExpr(lhs, rhs)
}
