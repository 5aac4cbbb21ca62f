package mir

import "templar/internal/invariant"

// Transformer rewrites a tree bottom-up, producing a new tree. Embed
// BaseTransformer to get identity rebuilding and override only the
// kinds to change. Nodes are never mutated in place; untouched subtrees
// may be shared between input and output.
type Transformer interface {
	TransformExpr(e Expr) Expr
	TransformStmt(s Stmt) Stmt
	TransformStmts(stmts []Stmt) []Stmt

	TransformVarReference(e *VarReference) *VarReference
	TransformMatchExpr(e *MatchExpr) Expr
	TransformMatchCase(c *MatchCase) *MatchCase
	TransformBoolLiteral(e *BoolLiteral) Expr
	TransformIntLiteral(e *IntLiteral) Expr
	TransformAtomicTypeLiteral(e *AtomicTypeLiteral) Expr
	TransformPointerTypeExpr(e *PointerTypeExpr) Expr
	TransformReferenceTypeExpr(e *ReferenceTypeExpr) Expr
	TransformRvalueReferenceTypeExpr(e *RvalueReferenceTypeExpr) Expr
	TransformConstTypeExpr(e *ConstTypeExpr) Expr
	TransformArrayTypeExpr(e *ArrayTypeExpr) Expr
	TransformFunctionTypeExpr(e *FunctionTypeExpr) Expr
	TransformTemplateInstantiationExpr(e *TemplateInstantiationExpr) Expr
	TransformTemplateMemberAccessExpr(e *TemplateMemberAccessExpr) Expr
	TransformListExpr(e *ListExpr) Expr
	TransformSetExpr(e *SetExpr) Expr
	TransformIntListSumExpr(e *IntListSumExpr) Expr
	TransformIntSetSumExpr(e *IntSetSumExpr) Expr
	TransformBoolListAllExpr(e *BoolListAllExpr) Expr
	TransformBoolSetAllExpr(e *BoolSetAllExpr) Expr
	TransformBoolListAnyExpr(e *BoolListAnyExpr) Expr
	TransformBoolSetAnyExpr(e *BoolSetAnyExpr) Expr
	TransformFunctionCall(e *FunctionCall) Expr
	TransformEqualityComparison(e *EqualityComparison) Expr
	TransformInExpr(e *InExpr) Expr
	TransformAttributeAccessExpr(e *AttributeAccessExpr) Expr
	TransformAndExpr(e *AndExpr) Expr
	TransformOrExpr(e *OrExpr) Expr
	TransformNotExpr(e *NotExpr) Expr
	TransformIntComparisonExpr(e *IntComparisonExpr) Expr
	TransformIntUnaryMinusExpr(e *IntUnaryMinusExpr) Expr
	TransformIntBinaryOpExpr(e *IntBinaryOpExpr) Expr
	TransformListConcatExpr(e *ListConcatExpr) Expr
	TransformListComprehension(e *ListComprehension) Expr
	TransformSetComprehension(e *SetComprehension) Expr

	TransformPassStmt(s *PassStmt) Stmt
	TransformAssert(s *Assert) Stmt
	TransformAssignment(s *Assignment) Stmt
	TransformUnpackingAssignment(s *UnpackingAssignment) Stmt
	TransformReturnStmt(s *ReturnStmt) Stmt
	TransformIfStmt(s *IfStmt) Stmt
	TransformRaiseStmt(s *RaiseStmt) Stmt
	TransformTryExcept(s *TryExcept) Stmt

	TransformFunctionDefn(d *FunctionDefn) *FunctionDefn
	TransformModule(m *Module) *Module
}

// BaseTransformer rebuilds every node from its transformed children
// through the validating constructors, so a malformed rewrite fails at
// the node that produced it. Children are dispatched through T so an
// embedding transformer's overrides intercept the whole traversal.
type BaseTransformer struct {
	T Transformer
}

func (b *BaseTransformer) TransformExpr(e Expr) Expr {
	switch e := e.(type) {
	case *VarReference:
		return b.T.TransformVarReference(e)
	case *MatchExpr:
		return b.T.TransformMatchExpr(e)
	case *BoolLiteral:
		return b.T.TransformBoolLiteral(e)
	case *IntLiteral:
		return b.T.TransformIntLiteral(e)
	case *AtomicTypeLiteral:
		return b.T.TransformAtomicTypeLiteral(e)
	case *PointerTypeExpr:
		return b.T.TransformPointerTypeExpr(e)
	case *ReferenceTypeExpr:
		return b.T.TransformReferenceTypeExpr(e)
	case *RvalueReferenceTypeExpr:
		return b.T.TransformRvalueReferenceTypeExpr(e)
	case *ConstTypeExpr:
		return b.T.TransformConstTypeExpr(e)
	case *ArrayTypeExpr:
		return b.T.TransformArrayTypeExpr(e)
	case *FunctionTypeExpr:
		return b.T.TransformFunctionTypeExpr(e)
	case *TemplateInstantiationExpr:
		return b.T.TransformTemplateInstantiationExpr(e)
	case *TemplateMemberAccessExpr:
		return b.T.TransformTemplateMemberAccessExpr(e)
	case *ListExpr:
		return b.T.TransformListExpr(e)
	case *SetExpr:
		return b.T.TransformSetExpr(e)
	case *IntListSumExpr:
		return b.T.TransformIntListSumExpr(e)
	case *IntSetSumExpr:
		return b.T.TransformIntSetSumExpr(e)
	case *BoolListAllExpr:
		return b.T.TransformBoolListAllExpr(e)
	case *BoolSetAllExpr:
		return b.T.TransformBoolSetAllExpr(e)
	case *BoolListAnyExpr:
		return b.T.TransformBoolListAnyExpr(e)
	case *BoolSetAnyExpr:
		return b.T.TransformBoolSetAnyExpr(e)
	case *FunctionCall:
		return b.T.TransformFunctionCall(e)
	case *EqualityComparison:
		return b.T.TransformEqualityComparison(e)
	case *InExpr:
		return b.T.TransformInExpr(e)
	case *AttributeAccessExpr:
		return b.T.TransformAttributeAccessExpr(e)
	case *AndExpr:
		return b.T.TransformAndExpr(e)
	case *OrExpr:
		return b.T.TransformOrExpr(e)
	case *NotExpr:
		return b.T.TransformNotExpr(e)
	case *IntComparisonExpr:
		return b.T.TransformIntComparisonExpr(e)
	case *IntUnaryMinusExpr:
		return b.T.TransformIntUnaryMinusExpr(e)
	case *IntBinaryOpExpr:
		return b.T.TransformIntBinaryOpExpr(e)
	case *ListConcatExpr:
		return b.T.TransformListConcatExpr(e)
	case *ListComprehension:
		return b.T.TransformListComprehension(e)
	case *SetComprehension:
		return b.T.TransformSetComprehension(e)
	default:
		invariant.Violationf("unexpected expression kind: %T", e)
		return nil
	}
}

func (b *BaseTransformer) TransformStmt(s Stmt) Stmt {
	switch s := s.(type) {
	case *PassStmt:
		return b.T.TransformPassStmt(s)
	case *Assert:
		return b.T.TransformAssert(s)
	case *Assignment:
		return b.T.TransformAssignment(s)
	case *UnpackingAssignment:
		return b.T.TransformUnpackingAssignment(s)
	case *ReturnStmt:
		return b.T.TransformReturnStmt(s)
	case *IfStmt:
		return b.T.TransformIfStmt(s)
	case *RaiseStmt:
		return b.T.TransformRaiseStmt(s)
	case *TryExcept:
		return b.T.TransformTryExcept(s)
	default:
		invariant.Violationf("unexpected statement kind: %T", s)
		return nil
	}
}

func (b *BaseTransformer) TransformStmts(stmts []Stmt) []Stmt {
	result := make([]Stmt, len(stmts))
	for i, s := range stmts {
		result[i] = b.T.TransformStmt(s)
	}
	return result
}

func (b *BaseTransformer) transformExprs(exprs []Expr) []Expr {
	result := make([]Expr, len(exprs))
	for i, e := range exprs {
		result[i] = b.T.TransformExpr(e)
	}
	return result
}

func (b *BaseTransformer) TransformVarReference(e *VarReference) *VarReference {
	return e
}

func (b *BaseTransformer) TransformMatchExpr(e *MatchExpr) Expr {
	matchedExprs := b.transformExprs(e.MatchedExprs)
	matchCases := make([]*MatchCase, len(e.MatchCases))
	for i, matchCase := range e.MatchCases {
		matchCases[i] = b.T.TransformMatchCase(matchCase)
	}
	return NewMatchExpr(matchedExprs, matchCases)
}

// TransformMatchCase rewrites the case's result expression only; the
// patterns and bound-name sets stay as written, since rewriting an
// expression cannot change what a pattern binds.
func (b *BaseTransformer) TransformMatchCase(c *MatchCase) *MatchCase {
	return NewMatchCase(
		c.MatchedVarNames,
		c.MatchedVariadicVarNames,
		c.TypePatterns,
		b.T.TransformExpr(c.Expr),
		c.StartBranch,
		c.EndBranch,
	)
}

func (b *BaseTransformer) TransformBoolLiteral(e *BoolLiteral) Expr             { return e }
func (b *BaseTransformer) TransformIntLiteral(e *IntLiteral) Expr               { return e }
func (b *BaseTransformer) TransformAtomicTypeLiteral(e *AtomicTypeLiteral) Expr { return e }

func (b *BaseTransformer) TransformPointerTypeExpr(e *PointerTypeExpr) Expr {
	return NewPointerTypeExpr(b.T.TransformExpr(e.TypeExpr))
}

func (b *BaseTransformer) TransformReferenceTypeExpr(e *ReferenceTypeExpr) Expr {
	return NewReferenceTypeExpr(b.T.TransformExpr(e.TypeExpr))
}

func (b *BaseTransformer) TransformRvalueReferenceTypeExpr(e *RvalueReferenceTypeExpr) Expr {
	return NewRvalueReferenceTypeExpr(b.T.TransformExpr(e.TypeExpr))
}

func (b *BaseTransformer) TransformConstTypeExpr(e *ConstTypeExpr) Expr {
	return NewConstTypeExpr(b.T.TransformExpr(e.TypeExpr))
}

func (b *BaseTransformer) TransformArrayTypeExpr(e *ArrayTypeExpr) Expr {
	return NewArrayTypeExpr(b.T.TransformExpr(e.TypeExpr))
}

func (b *BaseTransformer) TransformFunctionTypeExpr(e *FunctionTypeExpr) Expr {
	return NewFunctionTypeExpr(b.T.TransformExpr(e.ReturnTypeExpr), b.T.TransformExpr(e.ArgListExpr))
}

func (b *BaseTransformer) TransformTemplateInstantiationExpr(e *TemplateInstantiationExpr) Expr {
	return NewTemplateInstantiationExpr(e.TemplateCppType, b.T.TransformExpr(e.ArgListExpr))
}

func (b *BaseTransformer) TransformTemplateMemberAccessExpr(e *TemplateMemberAccessExpr) Expr {
	return NewTemplateMemberAccessExpr(b.T.TransformExpr(e.ClassTypeExpr), e.MemberName, b.T.TransformExpr(e.ArgListExpr))
}

func (b *BaseTransformer) TransformListExpr(e *ListExpr) Expr {
	var listExtractionExpr *VarReference
	if e.ListExtractionExpr != nil {
		listExtractionExpr = b.T.TransformVarReference(e.ListExtractionExpr)
	}
	return NewListExpr(e.ElemType(), b.transformExprs(e.ElemExprs), listExtractionExpr)
}

func (b *BaseTransformer) TransformSetExpr(e *SetExpr) Expr {
	return NewSetExpr(e.ElemType(), b.transformExprs(e.ElemExprs))
}

func (b *BaseTransformer) TransformIntListSumExpr(e *IntListSumExpr) Expr {
	return NewIntListSumExpr(b.T.TransformExpr(e.ListExpr))
}

func (b *BaseTransformer) TransformIntSetSumExpr(e *IntSetSumExpr) Expr {
	return NewIntSetSumExpr(b.T.TransformExpr(e.SetExpr))
}

func (b *BaseTransformer) TransformBoolListAllExpr(e *BoolListAllExpr) Expr {
	return NewBoolListAllExpr(b.T.TransformExpr(e.ListExpr))
}

func (b *BaseTransformer) TransformBoolSetAllExpr(e *BoolSetAllExpr) Expr {
	return NewBoolSetAllExpr(b.T.TransformExpr(e.SetExpr))
}

func (b *BaseTransformer) TransformBoolListAnyExpr(e *BoolListAnyExpr) Expr {
	return NewBoolListAnyExpr(b.T.TransformExpr(e.ListExpr))
}

func (b *BaseTransformer) TransformBoolSetAnyExpr(e *BoolSetAnyExpr) Expr {
	return NewBoolSetAnyExpr(b.T.TransformExpr(e.SetExpr))
}

func (b *BaseTransformer) TransformFunctionCall(e *FunctionCall) Expr {
	return NewFunctionCall(b.T.TransformExpr(e.FunExpr), b.transformExprs(e.Args), e.MayThrow)
}

func (b *BaseTransformer) TransformEqualityComparison(e *EqualityComparison) Expr {
	return NewEqualityComparison(b.T.TransformExpr(e.Lhs), b.T.TransformExpr(e.Rhs))
}

func (b *BaseTransformer) TransformInExpr(e *InExpr) Expr {
	return NewInExpr(b.T.TransformExpr(e.Lhs), b.T.TransformExpr(e.Rhs))
}

func (b *BaseTransformer) TransformAttributeAccessExpr(e *AttributeAccessExpr) Expr {
	return NewAttributeAccessExpr(b.T.TransformExpr(e.Expr), e.AttributeName, e.ExprType())
}

func (b *BaseTransformer) TransformAndExpr(e *AndExpr) Expr {
	return NewAndExpr(b.T.TransformExpr(e.Lhs), b.T.TransformExpr(e.Rhs))
}

func (b *BaseTransformer) TransformOrExpr(e *OrExpr) Expr {
	return NewOrExpr(b.T.TransformExpr(e.Lhs), b.T.TransformExpr(e.Rhs))
}

func (b *BaseTransformer) TransformNotExpr(e *NotExpr) Expr {
	return NewNotExpr(b.T.TransformExpr(e.Expr))
}

func (b *BaseTransformer) TransformIntComparisonExpr(e *IntComparisonExpr) Expr {
	return NewIntComparisonExpr(b.T.TransformExpr(e.Lhs), b.T.TransformExpr(e.Rhs), e.Op)
}

func (b *BaseTransformer) TransformIntUnaryMinusExpr(e *IntUnaryMinusExpr) Expr {
	return NewIntUnaryMinusExpr(b.T.TransformExpr(e.Expr))
}

func (b *BaseTransformer) TransformIntBinaryOpExpr(e *IntBinaryOpExpr) Expr {
	return NewIntBinaryOpExpr(b.T.TransformExpr(e.Lhs), b.T.TransformExpr(e.Rhs), e.Op)
}

func (b *BaseTransformer) TransformListConcatExpr(e *ListConcatExpr) Expr {
	return NewListConcatExpr(b.T.TransformExpr(e.Lhs), b.T.TransformExpr(e.Rhs))
}

func (b *BaseTransformer) TransformListComprehension(e *ListComprehension) Expr {
	return NewListComprehension(
		b.T.TransformExpr(e.ListExpr),
		b.T.TransformVarReference(e.LoopVar),
		b.T.TransformExpr(e.ResultElemExpr),
		e.LoopBodyStartBranch,
		e.LoopExitBranch,
	)
}

func (b *BaseTransformer) TransformSetComprehension(e *SetComprehension) Expr {
	return NewSetComprehension(
		b.T.TransformExpr(e.SetExpr),
		b.T.TransformVarReference(e.LoopVar),
		b.T.TransformExpr(e.ResultElemExpr),
		e.LoopBodyStartBranch,
		e.LoopExitBranch,
	)
}

func (b *BaseTransformer) TransformPassStmt(s *PassStmt) Stmt {
	return NewPassStmt(s.Branch)
}

func (b *BaseTransformer) TransformAssert(s *Assert) Stmt {
	return NewAssert(b.T.TransformExpr(s.Expr), s.Message, s.Branch)
}

func (b *BaseTransformer) TransformAssignment(s *Assignment) Stmt {
	return NewAssignment(b.T.TransformVarReference(s.Lhs), b.T.TransformExpr(s.Rhs), s.Branch)
}

func (b *BaseTransformer) TransformUnpackingAssignment(s *UnpackingAssignment) Stmt {
	lhsList := make([]*VarReference, len(s.LhsList))
	for i, lhs := range s.LhsList {
		lhsList[i] = b.T.TransformVarReference(lhs)
	}
	return NewUnpackingAssignment(lhsList, b.T.TransformExpr(s.Rhs), s.ErrorMessage, s.Branch)
}

func (b *BaseTransformer) TransformReturnStmt(s *ReturnStmt) Stmt {
	return NewReturnStmt(b.T.TransformExpr(s.Expr), s.Branch)
}

func (b *BaseTransformer) TransformIfStmt(s *IfStmt) Stmt {
	return NewIfStmt(
		b.T.TransformExpr(s.CondExpr),
		b.T.TransformStmts(s.IfStmts),
		b.T.TransformStmts(s.ElseStmts),
	)
}

func (b *BaseTransformer) TransformRaiseStmt(s *RaiseStmt) Stmt {
	return NewRaiseStmt(b.T.TransformExpr(s.Expr), s.Branch)
}

func (b *BaseTransformer) TransformTryExcept(s *TryExcept) Stmt {
	return NewTryExcept(
		b.T.TransformStmts(s.TryBody),
		s.CaughtExceptionType,
		s.CaughtExceptionName,
		b.T.TransformStmts(s.ExceptBody),
		s.TryBranch,
		s.ExceptBranch,
	)
}

func (b *BaseTransformer) TransformFunctionDefn(d *FunctionDefn) *FunctionDefn {
	return NewFunctionDefn(d.Name, d.Args, b.T.TransformStmts(d.Body), d.ReturnType)
}

// TransformModule rewrites the module's functions and assertions;
// custom types and public names carry through unchanged.
func (b *BaseTransformer) TransformModule(m *Module) *Module {
	functionDefns := make([]*FunctionDefn, len(m.FunctionDefns))
	for i, d := range m.FunctionDefns {
		functionDefns[i] = b.T.TransformFunctionDefn(d)
	}
	assertions := make([]*Assert, len(m.Assertions))
	for i, a := range m.Assertions {
		assertions[i] = b.T.TransformStmt(a).(*Assert)
	}
	return NewModule(functionDefns, assertions, m.CustomTypes, m.PublicNames)
}
