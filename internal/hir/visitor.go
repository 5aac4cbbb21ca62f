package hir

import "templar/internal/invariant"

// Visitor has one method per concrete node kind. Concrete visitors
// embed BaseVisitor, which supplies no-op leaves and child recursion,
// and override only the kinds they care about.
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
	VisitParameterPackExpansion(e *ParameterPackExpansion)
	VisitTemplateInstantiationExpr(e *TemplateInstantiationExpr)
	VisitTemplateMemberAccessExpr(e *TemplateMemberAccessExpr)
	VisitListExpr(e *ListExpr)
	VisitAddToSetExpr(e *AddToSetExpr)
	VisitSetToListExpr(e *SetToListExpr)
	VisitListToSetExpr(e *ListToSetExpr)
	VisitFunctionCall(e *FunctionCall)
	VisitEqualityComparison(e *EqualityComparison)
	VisitSetEqualityComparison(e *SetEqualityComparison)
	VisitIsInListExpr(e *IsInListExpr)
	VisitAttributeAccessExpr(e *AttributeAccessExpr)
	VisitNotExpr(e *NotExpr)
	VisitUnaryMinusExpr(e *UnaryMinusExpr)
	VisitIntListSumExpr(e *IntListSumExpr)
	VisitBoolListAllExpr(e *BoolListAllExpr)
	VisitBoolListAnyExpr(e *BoolListAnyExpr)
	VisitIntComparisonExpr(e *IntComparisonExpr)
	VisitIntBinaryOpExpr(e *IntBinaryOpExpr)
	VisitListConcatExpr(e *ListConcatExpr)
	VisitIsInstanceExpr(e *IsInstanceExpr)
	VisitSafeUncheckedCast(e *SafeUncheckedCast)
	VisitListComprehensionExpr(e *ListComprehensionExpr)

	VisitVarReferencePattern(p *VarReferencePattern)
	VisitAtomicTypeLiteralPattern(p *AtomicTypeLiteralPattern)
	VisitPointerTypePattern(p *PointerTypePattern)
	VisitReferenceTypePattern(p *ReferenceTypePattern)
	VisitRvalueReferenceTypePattern(p *RvalueReferenceTypePattern)
	VisitConstTypePattern(p *ConstTypePattern)
	VisitArrayTypePattern(p *ArrayTypePattern)
	VisitFunctionTypePattern(p *FunctionTypePattern)
	VisitTemplateInstantiationPattern(p *TemplateInstantiationPattern)
	VisitListPattern(p *ListPattern)

	VisitPassStmt(s *PassStmt)
	VisitAssert(s *Assert)
	VisitAssignment(s *Assignment)
	VisitCheckIfError(s *CheckIfError)
	VisitUnpackingAssignment(s *UnpackingAssignment)
	VisitReturnStmt(s *ReturnStmt)
	VisitIfStmt(s *IfStmt)

	VisitFunctionDefn(d *FunctionDefn)
	VisitCheckIfErrorDefn(d *CheckIfErrorDefn)
	VisitCustomTypeDefn(t *CustomType)
}

// VisitExpr routes an expression to its kind's visit method. An
// unmatched kind means the dispatcher and the node set have drifted
// apart, which is an internal bug.
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
	case *ParameterPackExpansion:
		v.VisitParameterPackExpansion(e)
	case *TemplateInstantiationExpr:
		v.VisitTemplateInstantiationExpr(e)
	case *TemplateMemberAccessExpr:
		v.VisitTemplateMemberAccessExpr(e)
	case *ListExpr:
		v.VisitListExpr(e)
	case *AddToSetExpr:
		v.VisitAddToSetExpr(e)
	case *SetToListExpr:
		v.VisitSetToListExpr(e)
	case *ListToSetExpr:
		v.VisitListToSetExpr(e)
	case *FunctionCall:
		v.VisitFunctionCall(e)
	case *EqualityComparison:
		v.VisitEqualityComparison(e)
	case *SetEqualityComparison:
		v.VisitSetEqualityComparison(e)
	case *IsInListExpr:
		v.VisitIsInListExpr(e)
	case *AttributeAccessExpr:
		v.VisitAttributeAccessExpr(e)
	case *NotExpr:
		v.VisitNotExpr(e)
	case *UnaryMinusExpr:
		v.VisitUnaryMinusExpr(e)
	case *IntListSumExpr:
		v.VisitIntListSumExpr(e)
	case *BoolListAllExpr:
		v.VisitBoolListAllExpr(e)
	case *BoolListAnyExpr:
		v.VisitBoolListAnyExpr(e)
	case *IntComparisonExpr:
		v.VisitIntComparisonExpr(e)
	case *IntBinaryOpExpr:
		v.VisitIntBinaryOpExpr(e)
	case *ListConcatExpr:
		v.VisitListConcatExpr(e)
	case *IsInstanceExpr:
		v.VisitIsInstanceExpr(e)
	case *SafeUncheckedCast:
		v.VisitSafeUncheckedCast(e)
	case *ListComprehensionExpr:
		v.VisitListComprehensionExpr(e)
	default:
		invariant.Violationf("unexpected expression: %T", e)
	}
}

// VisitPattern routes a pattern expression to its kind's visit method.
func VisitPattern(v Visitor, p PatternExpr) {
	switch p := p.(type) {
	case *VarReferencePattern:
		v.VisitVarReferencePattern(p)
	case *AtomicTypeLiteralPattern:
		v.VisitAtomicTypeLiteralPattern(p)
	case *PointerTypePattern:
		v.VisitPointerTypePattern(p)
	case *ReferenceTypePattern:
		v.VisitReferenceTypePattern(p)
	case *RvalueReferenceTypePattern:
		v.VisitRvalueReferenceTypePattern(p)
	case *ConstTypePattern:
		v.VisitConstTypePattern(p)
	case *ArrayTypePattern:
		v.VisitArrayTypePattern(p)
	case *FunctionTypePattern:
		v.VisitFunctionTypePattern(p)
	case *TemplateInstantiationPattern:
		v.VisitTemplateInstantiationPattern(p)
	case *ListPattern:
		v.VisitListPattern(p)
	default:
		invariant.Violationf("unexpected pattern expression: %T", p)
	}
}

// VisitStmt routes a statement to its kind's visit method.
func VisitStmt(v Visitor, s Stmt) {
	switch s := s.(type) {
	case *PassStmt:
		v.VisitPassStmt(s)
	case *Assert:
		v.VisitAssert(s)
	case *Assignment:
		v.VisitAssignment(s)
	case *CheckIfError:
		v.VisitCheckIfError(s)
	case *UnpackingAssignment:
		v.VisitUnpackingAssignment(s)
	case *ReturnStmt:
		v.VisitReturnStmt(s)
	case *IfStmt:
		v.VisitIfStmt(s)
	default:
		invariant.Violationf("unexpected statement: %T", s)
	}
}

func VisitStmts(v Visitor, stmts []Stmt) {
	for _, stmt := range stmts {
		VisitStmt(v, stmt)
	}
}

// VisitModule routes every top-level element of a module.
func VisitModule(v Visitor, m *Module) {
	for _, elem := range m.Body {
		switch elem := elem.(type) {
		case *FunctionDefn:
			v.VisitFunctionDefn(elem)
		case *Assignment:
			v.VisitAssignment(elem)
		case *Assert:
			v.VisitAssert(elem)
		case *CustomType:
			v.VisitCustomTypeDefn(elem)
		case *CheckIfErrorDefn:
			v.VisitCheckIfErrorDefn(elem)
		case *CheckIfError:
			v.VisitCheckIfError(elem)
		case *PassStmt:
			v.VisitPassStmt(elem)
		default:
			invariant.Violationf("unexpected toplevel element: %T", elem)
		}
	}
}

// BaseVisitor implements Visitor with no-op leaves and child recursion.
// V must point at the outer visitor so that recursion into children
// dispatches through its overrides.
type BaseVisitor struct {
	V Visitor
}

func (b *BaseVisitor) VisitVarReference(e *VarReference) {}

func (b *BaseVisitor) VisitMatchExpr(e *MatchExpr) {
	for _, matchedVar := range e.MatchedVars {
		VisitExpr(b.V, matchedVar)
	}
	for _, matchCase := range e.MatchCases {
		b.V.VisitMatchCase(matchCase)
	}
}

func (b *BaseVisitor) VisitMatchCase(c *MatchCase) {
	VisitExpr(b.V, c.Expr)
	for _, pattern := range c.TypePatterns {
		VisitPattern(b.V, pattern)
	}
}

func (b *BaseVisitor) VisitBoolLiteral(e *BoolLiteral)             {}
func (b *BaseVisitor) VisitIntLiteral(e *IntLiteral)               {}
func (b *BaseVisitor) VisitAtomicTypeLiteral(e *AtomicTypeLiteral) {}

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

func (b *BaseVisitor) VisitParameterPackExpansion(e *ParameterPackExpansion) {
	VisitExpr(b.V, e.Expr)
}

func (b *BaseVisitor) VisitTemplateInstantiationExpr(e *TemplateInstantiationExpr) {
	VisitExpr(b.V, e.ArgListExpr)
}

func (b *BaseVisitor) VisitTemplateMemberAccessExpr(e *TemplateMemberAccessExpr) {
	VisitExpr(b.V, e.ClassTypeExpr)
	VisitExpr(b.V, e.ArgListExpr)
}

func (b *BaseVisitor) VisitListExpr(e *ListExpr) {
	for _, elem := range e.Elems {
		VisitExpr(b.V, elem)
	}
}

func (b *BaseVisitor) VisitAddToSetExpr(e *AddToSetExpr) {
	VisitExpr(b.V, e.SetExpr)
	VisitExpr(b.V, e.ElemExpr)
}

func (b *BaseVisitor) VisitSetToListExpr(e *SetToListExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitListToSetExpr(e *ListToSetExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitFunctionCall(e *FunctionCall) {
	VisitExpr(b.V, e.Fun)
	for _, arg := range e.Args {
		VisitExpr(b.V, arg)
	}
}

func (b *BaseVisitor) VisitEqualityComparison(e *EqualityComparison) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitSetEqualityComparison(e *SetEqualityComparison) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitIsInListExpr(e *IsInListExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitAttributeAccessExpr(e *AttributeAccessExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitNotExpr(e *NotExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitUnaryMinusExpr(e *UnaryMinusExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitIntListSumExpr(e *IntListSumExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitBoolListAllExpr(e *BoolListAllExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitBoolListAnyExpr(e *BoolListAnyExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitIntComparisonExpr(e *IntComparisonExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitIntBinaryOpExpr(e *IntBinaryOpExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitListConcatExpr(e *ListConcatExpr) {
	VisitExpr(b.V, e.Lhs)
	VisitExpr(b.V, e.Rhs)
}

func (b *BaseVisitor) VisitIsInstanceExpr(e *IsInstanceExpr) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitSafeUncheckedCast(e *SafeUncheckedCast) {
	VisitExpr(b.V, e.Var)
}

func (b *BaseVisitor) VisitListComprehensionExpr(e *ListComprehensionExpr) {
	VisitExpr(b.V, e.ListVar)
	VisitExpr(b.V, e.LoopVar)
	VisitExpr(b.V, e.ResultElemExpr)
}

func (b *BaseVisitor) VisitVarReferencePattern(p *VarReferencePattern)           {}
func (b *BaseVisitor) VisitAtomicTypeLiteralPattern(p *AtomicTypeLiteralPattern) {}

func (b *BaseVisitor) VisitPointerTypePattern(p *PointerTypePattern) {
	VisitPattern(b.V, p.TypeExpr)
}

func (b *BaseVisitor) VisitReferenceTypePattern(p *ReferenceTypePattern) {
	VisitPattern(b.V, p.TypeExpr)
}

func (b *BaseVisitor) VisitRvalueReferenceTypePattern(p *RvalueReferenceTypePattern) {
	VisitPattern(b.V, p.TypeExpr)
}

func (b *BaseVisitor) VisitConstTypePattern(p *ConstTypePattern) {
	VisitPattern(b.V, p.TypeExpr)
}

func (b *BaseVisitor) VisitArrayTypePattern(p *ArrayTypePattern) {
	VisitPattern(b.V, p.TypeExpr)
}

func (b *BaseVisitor) VisitFunctionTypePattern(p *FunctionTypePattern) {
	VisitPattern(b.V, p.ReturnTypeExpr)
	VisitPattern(b.V, p.ArgListExpr)
}

func (b *BaseVisitor) VisitTemplateInstantiationPattern(p *TemplateInstantiationPattern) {
	for _, arg := range p.ArgExprs {
		VisitPattern(b.V, arg)
	}
	if p.ListExtractionArgExpr != nil {
		VisitPattern(b.V, p.ListExtractionArgExpr)
	}
}

func (b *BaseVisitor) VisitListPattern(p *ListPattern) {
	for _, elem := range p.Elems {
		VisitPattern(b.V, elem)
	}
	if p.ListExtractionExpr != nil {
		VisitExpr(b.V, p.ListExtractionExpr)
	}
}

func (b *BaseVisitor) VisitPassStmt(s *PassStmt) {}

func (b *BaseVisitor) VisitAssert(s *Assert) {
	VisitExpr(b.V, s.Var)
}

func (b *BaseVisitor) VisitAssignment(s *Assignment) {
	VisitExpr(b.V, s.Lhs)
	VisitExpr(b.V, s.Rhs)
	if s.Lhs2 != nil {
		VisitExpr(b.V, s.Lhs2)
	}
}

func (b *BaseVisitor) VisitCheckIfError(s *CheckIfError) {
	VisitExpr(b.V, s.Var)
}

func (b *BaseVisitor) VisitUnpackingAssignment(s *UnpackingAssignment) {
	for _, lhs := range s.LhsList {
		VisitExpr(b.V, lhs)
	}
	VisitExpr(b.V, s.Rhs)
}

func (b *BaseVisitor) VisitReturnStmt(s *ReturnStmt) {
	if s.Result != nil {
		VisitExpr(b.V, s.Result)
	}
	if s.Error != nil {
		VisitExpr(b.V, s.Error)
	}
}

func (b *BaseVisitor) VisitIfStmt(s *IfStmt) {
	VisitExpr(b.V, s.Cond)
	VisitStmts(b.V, s.IfStmts)
	VisitStmts(b.V, s.ElseStmts)
}

func (b *BaseVisitor) VisitFunctionDefn(d *FunctionDefn) {
	VisitStmts(b.V, d.Body)
}

func (b *BaseVisitor) VisitCheckIfErrorDefn(d *CheckIfErrorDefn) {}
func (b *BaseVisitor) VisitCustomTypeDefn(t *CustomType)         {}
