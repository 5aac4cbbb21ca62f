package mir

import "templar/internal/invariant"

// ReturnTypeInfo describes how a statement sequence can finish.
// Type is nil when no branch ends in a return. AlwaysReturns is true
// when every path through the sequence returns or raises.
type ReturnTypeInfo struct {
	Type          ExprType
	AlwaysReturns bool
}

// ReturnType computes the ReturnTypeInfo of a statement sequence by
// inspecting its last statement. Earlier statements cannot end the
// sequence: the stage that builds these trees always places returns and
// raises last in their block, and this analysis relies on that.
func ReturnType(stmts []Stmt) ReturnTypeInfo {
	if len(stmts) == 0 {
		return ReturnTypeInfo{}
	}
	switch last := stmts[len(stmts)-1].(type) {
	case *ReturnStmt:
		return ReturnTypeInfo{Type: last.Expr.ExprType(), AlwaysReturns: true}
	case *RaiseStmt:
		return ReturnTypeInfo{AlwaysReturns: true}
	case *IfStmt:
		return mergeReturnTypes(ReturnType(last.IfStmts), ReturnType(last.ElseStmts))
	case *TryExcept:
		return mergeReturnTypes(ReturnType(last.TryBody), ReturnType(last.ExceptBody))
	default:
		return ReturnTypeInfo{}
	}
}

// mergeReturnTypes combines the outcomes of two alternative branches.
// Both branches returning values of different types means an upstream
// stage produced an inconsistent tree.
func mergeReturnTypes(a, b ReturnTypeInfo) ReturnTypeInfo {
	merged := ReturnTypeInfo{AlwaysReturns: a.AlwaysReturns && b.AlwaysReturns}
	switch {
	case a.Type != nil && b.Type != nil:
		invariant.Check(SameType(a.Type, b.Type),
			"branches return different types: %s and %s", a.Type, b.Type)
		merged.Type = a.Type
	case a.Type != nil:
		merged.Type = a.Type
	case b.Type != nil:
		merged.Type = b.Type
	}
	return merged
}
