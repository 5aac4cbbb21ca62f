package mir

import "templar/internal/invariant"

// Visitor has one method per node kind. Embed BaseVisitor to get
// child-recursing defaults and override only the kinds of interest.
type Visitor interface {
	VisitVarReference(e *VarReference)
	VisitMatchExpr(e *MatchExpr)
	VisitMatchCase(c *MatchCase)
	VisitBoolLiteral(e *BoolLiteral)
	VisitIntLiteral(e *IntLiteral)
	VisitAtomicTypeLiteral(e *AtomicTypeLiteral)
	VisitPointerTypeExpr(e *PointerTypeExpr)
	VisitReferenceTypeExpr(e *ReferenceTypeExpr)
	VisitRvalueReferenceTypeExpr(e *RvalueReferenceTypeExpr)
	VisitConstTypeExpr(e *ConstTypeExpr)
	VisitArrayTypeExpr(e *ArrayTypeExpr)
	VisitFunctionTypeExpr(e *FunctionTypeExpr)
	VisitTemplateInstantiationExpr(e *TemplateInstantiationExpr)
	VisitTemplateMemberAccessExpr(e *TemplateMemberAccessExpr)
	VisitListExpr(e *ListExpr)
	VisitSetExpr(e *SetExpr)
	VisitIntListSumExpr(e *IntListSumExpr)
	VisitIntSetSumExpr(e *IntSetSumExpr)
	VisitBoolListAllExpr(e *BoolListAllExpr)
	VisitBoolSetAllExpr(e *BoolSetAllExpr)
	VisitBoolListAnyExpr(e *BoolListAnyExpr)
	VisitBoolSetAnyExpr(e *BoolSetAnyExpr)
	VisitFunctionCall(e *FunctionCall)
	VisitEqualityComparison(e *EqualityComparison)
	VisitInExpr(e *InExpr)
	VisitAttributeAccessExpr(e *AttributeAccessExpr)
	VisitAndExpr(e *AndExpr)
	VisitOrExpr(e *OrExpr)
	VisitNotExpr(e *NotExpr)
	VisitIntComparisonExpr(e *IntComparisonExpr)
	VisitIntUnaryMinusExpr(e *IntUnaryMinusExpr)
	VisitIntBinaryOpExpr(e *IntBinaryOpExpr)
	VisitListConcatExpr(e *ListConcatExpr)
	VisitListComprehension(e *ListComprehension)
	VisitSetComprehension(e *SetComprehension)

	VisitPassStmt(s *PassStmt)
	VisitAssert(s *Assert)
	VisitAssignment(s *Assignment)
	VisitUnpackingAssignment(s *UnpackingAssignment)
	VisitReturnStmt(s *ReturnStmt)
	VisitIfStmt(s *IfStmt)
	VisitRaiseStmt(s *RaiseStmt)
	VisitTryExcept(s *TryExcept)

	VisitFunctionDefn(d *FunctionDefn)
}

// VisitExpr dispatches e to the visitor method for its concrete kind.
// Every expression kind has exactly one arm; an unknown kind is an
// internal-consistency violation.
func VisitExpr(v Visitor, e Expr) {
	switch e := e.(type) {
	case *VarReference:
		v.VisitVarReference(e)
	case *MatchExpr:
		v.VisitMatchExpr(e)
	case *BoolLiteral:
		v.VisitBoolLiteral(e)
	case *IntLiteral:
		v.VisitIntLiteral(e)
	case *AtomicTypeLiteral:
		v.VisitAtomicTypeLiteral(e)
	case *PointerTypeExpr:
		v.VisitPointerTypeExpr(e)
	case *ReferenceTypeExpr:
		v.VisitReferenceTypeExpr(e)
	case *RvalueReferenceTypeExpr:
		v.VisitRvalueReferenceTypeExpr(e)
	case *ConstTypeExpr:
		v.VisitConstTypeExpr(e)
	case *ArrayTypeExpr:
		v.VisitArrayTypeExpr(e)
	case *FunctionTypeExpr:
		v.VisitFunctionTypeExpr(e)
	case *TemplateInstantiationExpr:
		v.VisitTemplateInstantiationExpr(e)
	case *TemplateMemberAccessExpr:
		v.VisitTemplateMemberAccessExpr(e)
	case *ListExpr:
		v.VisitListExpr(e)
	case *SetExpr:
		v.VisitSetExpr(e)
	case *IntListSumExpr:
		v.VisitIntListSumExpr(e)
	case *IntSetSumExpr:
		v.VisitIntSetSumExpr(e)
	case *BoolListAllExpr:
		v.VisitBoolListAllExpr(e)
	case *BoolSetAllExpr:
		v.VisitBoolSetAllExpr(e)
	case *BoolListAnyExpr:
		v.VisitBoolListAnyExpr(e)
	case *BoolSetAnyExpr:
		v.VisitBoolSetAnyExpr(e)
	case *FunctionCall:
		v.VisitFunctionCall(e)
	case *EqualityComparison:
		v.VisitEqualityComparison(e)
	case *InExpr:
		v.VisitInExpr(e)
	case *AttributeAccessExpr:
		v.VisitAttributeAccessExpr(e)
	case *AndExpr:
		v.VisitAndExpr(e)
	case *OrExpr:
		v.VisitOrExpr(e)
	case *NotExpr:
		v.VisitNotExpr(e)
	case *IntComparisonExpr:
		v.VisitIntComparisonExpr(e)
	case *IntUnaryMinusExpr:
		v.VisitIntUnaryMinusExpr(e)
	case *IntBinaryOpExpr:
		v.VisitIntBinaryOpExpr(e)
	case *ListConcatExpr:
		v.VisitListConcatExpr(e)
	case *ListComprehension:
		v.VisitListComprehension(e)
	case *SetComprehension:
		v.VisitSetComprehension(e)
	default:
		invariant.Violationf("unexpected expression kind: %T", e)
	}
}

// VisitStmt dispatches s to the visitor method for its concrete kind.
func VisitStmt(v Visitor, s Stmt) {
	switch s := s.(type) {
	case *PassStmt:
		v.VisitPassStmt(s)
	case *Assert:
		v.VisitAssert(s)
	case *Assignment:
		v.VisitAssignment(s)
	case *UnpackingAssignment:
		v.VisitUnpackingAssignment(s)
	case *ReturnStmt:
		v.VisitReturnStmt(s)
	case *IfStmt:
		v.VisitIfStmt(s)
	case *RaiseStmt:
		v.VisitRaiseStmt(s)
	case *TryExcept:
		v.VisitTryExcept(s)
	default:
		invariant.Violationf("unexpected statement kind: %T", s)
	}
}

func VisitStmts(v Visitor, stmts []Stmt) {
	for _, s := range stmts {
		VisitStmt(v, s)
	}
}

func VisitModule(v Visitor, m *Module) {
	for _, d := range m.FunctionDefns {
		v.VisitFunctionDefn(d)
	}
	for _, a := range m.Assertions {
		v.VisitAssert(a)
	}
}

// BaseVisitor visits every child of composite nodes and does nothing at
// leaves. Children are dispatched through V so an embedding visitor's
// overrides intercept the whole traversal.
type BaseVisitor struct {
	V Visitor
}

func (b *BaseVisitor) VisitVarReference(e *VarReference)           {}
func (b *BaseVisitor) VisitBoolLiteral(e *BoolLiteral)             {}
func (b *BaseVisitor) VisitIntLiteral(e *IntLiteral)               {}
func (b *BaseVisitor) VisitAtomicTypeLiteral(e *AtomicTypeLiteral) {}

func (b *BaseVisitor) VisitMatchExpr(e *MatchExpr) {
	for _, matched := range e.MatchedExprs {
		VisitExpr(b.V, matched)
	}
	for _, matchCase := range e.MatchCases {
		b.V.VisitMatchCase(matchCase)
	}
}

func (b *BaseVisitor) VisitMatchCase(c *MatchCase) {
	for _, pattern := range c.TypePatterns {
		VisitExpr(b.V, pattern)
	}
	VisitExpr(b.V, c.Expr)
}

func (b *BaseVisitor) VisitPointerTypeExpr(e *PointerTypeExpr) {
	VisitExpr(b.V, e.TypeExpr)
}

func (b *BaseVisitor) VisitReferenceTypeExpr(e *ReferenceTypeExpr) {
	VisitExpr(b.V, e.TypeExpr)
}

func (b *BaseVisitor) VisitRvalueReferenceTypeExpr(e *RvalueReferenceTypeExpr) {
	VisitExpr(b.V, e.TypeExpr)
}

func (b *BaseVisitor) VisitConstTypeExpr(e *ConstTypeExpr) {
	VisitExpr(b.V, e.TypeExpr)
}

func (b *BaseVisitor) VisitArrayTypeExpr(e *ArrayTypeExpr) {
	VisitExpr(b.V, e.TypeExpr)
}

func (b *BaseVisitor) VisitFunctionTypeExpr(e *FunctionTypeExpr) {
	VisitExpr(b.V, e.ReturnTypeExpr)
	VisitExpr(b.V, e.ArgListExpr)
}

func (b *BaseVisitor) VisitTemplateInstantiationExpr(e *TemplateInstantiationExpr) {
	VisitExpr(b.V, e.ArgListExpr)
}

func (b *BaseVisitor) VisitTemplateMemberAccessExpr(e *TemplateMemberAccessExpr) {
	VisitExpr(b.V, e.ClassTypeExpr)
	VisitExpr(b.V, e.ArgListExpr)
}

func (b *BaseVisitor) VisitListExpr(e *ListExpr) {
	for _, elem := range e.ElemExprs {
		VisitExpr(b.V, elem)
	}
	if e.ListExtractionExpr != nil {
		b.V.VisitVarReference(e.ListExtractionExpr)
	}
}

func (b *BaseVisitor) VisitSetExpr(e *SetExpr) {
	for _, elem := range e.ElemExprs {
		VisitExpr(b.V, elem)
	}
}

func (b *BaseVisitor) VisitIntListSumExpr(e *IntListSumExpr) {
	VisitExpr(b.V, e.ListExpr)
}

func (b *BaseVisitor) VisitIntSetSumExpr(e *IntSetSumExpr) {
	VisitExpr(b.V, e.SetExpr)
}

func (b *BaseVisitor) VisitBoolListAllExpr(e *BoolListAllExpr) {
	VisitExpr(b.V, e.ListExpr)
}

func (b *BaseVisitor) VisitBoolSetAllExpr(e *BoolSetAllExpr) {
	VisitExpr(b.V, e.SetExpr)
}

func (b *BaseVisitor) VisitBoolListAnyExpr(e *BoolListAnyExpr) {
	VisitExpr(b.V, e.ListExpr)
}

func (b *BaseVisitor) VisitBoolSetAnyExpr(e *BoolSetAnyExpr) {
	VisitExpr(b.V, e.SetExpr)
}

func (b *BaseVisitor) VisitFunctionCall(e *FunctionCall) {
	VisitExpr(b.V, e.FunExpr)
	for _, arg := range e.Args {
		VisitExpr(b.V, arg)
	}
}

func (b *BaseVisitor) VisitEqualityComparison(e *EqualityComparison) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitInExpr(e *InExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitAttributeAccessExpr(e *AttributeAccessExpr) {
	VisitExpr(b.V, e.Expr)
}

func (b *BaseVisitor) VisitAndExpr(e *AndExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitOrExpr(e *OrExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitNotExpr(e *NotExpr) {
	VisitExpr(b.V, e.Expr)
}

func (b *BaseVisitor) VisitIntComparisonExpr(e *IntComparisonExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitIntUnaryMinusExpr(e *IntUnaryMinusExpr) {
	VisitExpr(b.V, e.Expr)
}

func (b *BaseVisitor) VisitIntBinaryOpExpr(e *IntBinaryOpExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitListConcatExpr(e *ListConcatExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitListComprehension(e *ListComprehension) {
	VisitExpr(b.V, e.ListExpr)
	b.V.VisitVarReference(e.LoopVar)
	VisitExpr(b.V, e.ResultElemExpr)
}

func (b *BaseVisitor) VisitSetComprehension(e *SetComprehension) {
	VisitExpr(b.V, e.SetExpr)
	b.V.VisitVarReference(e.LoopVar)
	VisitExpr(b.V, e.ResultElemExpr)
}

func (b *BaseVisitor) VisitPassStmt(s *PassStmt) {}

func (b *BaseVisitor) VisitAssert(s *Assert) {
	VisitExpr(b.V, s.Expr)
}

func (b *BaseVisitor) VisitAssignment(s *Assignment) {
	b.V.VisitVarReference(s.Lhs)
	VisitExpr(b.V, s.Rhs)
}

func (b *BaseVisitor) VisitUnpackingAssignment(s *UnpackingAssignment) {
	for _, lhs := range s.LhsList {
		b.V.VisitVarReference(lhs)
	}
	VisitExpr(b.V, s.Rhs)
}

func (b *BaseVisitor) VisitReturnStmt(s *ReturnStmt) {
	VisitExpr(b.V, s.Expr)
}

func (b *BaseVisitor) VisitIfStmt(s *IfStmt) {
	VisitExpr(b.V, s.CondExpr)
	VisitStmts(b.V, s.IfStmts)
	VisitStmts(b.V, s.ElseStmts)
}

func (b *BaseVisitor) VisitRaiseStmt(s *RaiseStmt) {
	VisitExpr(b.V, s.Expr)
}

func (b *BaseVisitor) VisitTryExcept(s *TryExcept) {
	VisitStmts(b.V, s.TryBody)
	VisitStmts(b.V, s.ExceptBody)
}

func (b *BaseVisitor) VisitFunctionDefn(d *FunctionDefn) {
	VisitStmts(b.V, d.Body)
}
