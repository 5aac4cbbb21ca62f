package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// dispatchRecorder records which handler fired without recursing, so a
// single dispatch call must produce exactly one entry.
type dispatchRecorder struct {
	BaseVisitor
	got []string
}

func newDispatchRecorder() *dispatchRecorder {
	v := &dispatchRecorder{}
	v.BaseVisitor.V = v
	return v
}

func (v *dispatchRecorder) hit(kind string) { v.got = append(v.got, kind) }

func (v *dispatchRecorder) VisitVarReference(e *VarReference)           { v.hit("VarReference") }
func (v *dispatchRecorder) VisitMatchExpr(e *MatchExpr)                 { v.hit("MatchExpr") }
func (v *dispatchRecorder) VisitMatchCase(c *MatchCase)                 { v.hit("MatchCase") }
func (v *dispatchRecorder) VisitBoolLiteral(e *BoolLiteral)             { v.hit("BoolLiteral") }
func (v *dispatchRecorder) VisitIntLiteral(e *IntLiteral)               { v.hit("IntLiteral") }
func (v *dispatchRecorder) VisitAtomicTypeLiteral(e *AtomicTypeLiteral) { v.hit("AtomicTypeLiteral") }
func (v *dispatchRecorder) VisitPointerTypeExpr(e *PointerTypeExpr)     { v.hit("PointerTypeExpr") }
func (v *dispatchRecorder) VisitReferenceTypeExpr(e *ReferenceTypeExpr) { v.hit("ReferenceTypeExpr") }
func (v *dispatchRecorder) VisitRvalueReferenceTypeExpr(e *RvalueReferenceTypeExpr) {
	v.hit("RvalueReferenceTypeExpr")
}
func (v *dispatchRecorder) VisitConstTypeExpr(e *ConstTypeExpr)       { v.hit("ConstTypeExpr") }
func (v *dispatchRecorder) VisitArrayTypeExpr(e *ArrayTypeExpr)       { v.hit("ArrayTypeExpr") }
func (v *dispatchRecorder) VisitFunctionTypeExpr(e *FunctionTypeExpr) { v.hit("FunctionTypeExpr") }
func (v *dispatchRecorder) VisitTemplateInstantiationExpr(e *TemplateInstantiationExpr) {
	v.hit("TemplateInstantiationExpr")
}
func (v *dispatchRecorder) VisitTemplateMemberAccessExpr(e *TemplateMemberAccessExpr) {
	v.hit("TemplateMemberAccessExpr")
}
func (v *dispatchRecorder) VisitListExpr(e *ListExpr)             { v.hit("ListExpr") }
func (v *dispatchRecorder) VisitSetExpr(e *SetExpr)               { v.hit("SetExpr") }
func (v *dispatchRecorder) VisitIntListSumExpr(e *IntListSumExpr) { v.hit("IntListSumExpr") }
func (v *dispatchRecorder) VisitIntSetSumExpr(e *IntSetSumExpr)   { v.hit("IntSetSumExpr") }
func (v *dispatchRecorder) VisitBoolListAllExpr(e *BoolListAllExpr) {
	v.hit("BoolListAllExpr")
}
func (v *dispatchRecorder) VisitBoolSetAllExpr(e *BoolSetAllExpr) { v.hit("BoolSetAllExpr") }
func (v *dispatchRecorder) VisitBoolListAnyExpr(e *BoolListAnyExpr) {
	v.hit("BoolListAnyExpr")
}
func (v *dispatchRecorder) VisitBoolSetAnyExpr(e *BoolSetAnyExpr) { v.hit("BoolSetAnyExpr") }
func (v *dispatchRecorder) VisitFunctionCall(e *FunctionCall)     { v.hit("FunctionCall") }
func (v *dispatchRecorder) VisitEqualityComparison(e *EqualityComparison) {
	v.hit("EqualityComparison")
}
func (v *dispatchRecorder) VisitInExpr(e *InExpr) { v.hit("InExpr") }
func (v *dispatchRecorder) VisitAttributeAccessExpr(e *AttributeAccessExpr) {
	v.hit("AttributeAccessExpr")
}
func (v *dispatchRecorder) VisitAndExpr(e *AndExpr) { v.hit("AndExpr") }
func (v *dispatchRecorder) VisitOrExpr(e *OrExpr)   { v.hit("OrExpr") }
func (v *dispatchRecorder) VisitNotExpr(e *NotExpr) { v.hit("NotExpr") }
func (v *dispatchRecorder) VisitIntComparisonExpr(e *IntComparisonExpr) {
	v.hit("IntComparisonExpr")
}
func (v *dispatchRecorder) VisitIntUnaryMinusExpr(e *IntUnaryMinusExpr) {
	v.hit("IntUnaryMinusExpr")
}
func (v *dispatchRecorder) VisitIntBinaryOpExpr(e *IntBinaryOpExpr) { v.hit("IntBinaryOpExpr") }
func (v *dispatchRecorder) VisitListConcatExpr(e *ListConcatExpr)   { v.hit("ListConcatExpr") }
func (v *dispatchRecorder) VisitListComprehension(e *ListComprehension) {
	v.hit("ListComprehension")
}
func (v *dispatchRecorder) VisitSetComprehension(e *SetComprehension) {
	v.hit("SetComprehension")
}

func (v *dispatchRecorder) VisitPassStmt(s *PassStmt)     { v.hit("PassStmt") }
func (v *dispatchRecorder) VisitAssert(s *Assert)         { v.hit("Assert") }
func (v *dispatchRecorder) VisitAssignment(s *Assignment) { v.hit("Assignment") }
func (v *dispatchRecorder) VisitUnpackingAssignment(s *UnpackingAssignment) {
	v.hit("UnpackingAssignment")
}
func (v *dispatchRecorder) VisitReturnStmt(s *ReturnStmt)     { v.hit("ReturnStmt") }
func (v *dispatchRecorder) VisitIfStmt(s *IfStmt)             { v.hit("IfStmt") }
func (v *dispatchRecorder) VisitRaiseStmt(s *RaiseStmt)       { v.hit("RaiseStmt") }
func (v *dispatchRecorder) VisitTryExcept(s *TryExcept)       { v.hit("TryExcept") }
func (v *dispatchRecorder) VisitFunctionDefn(d *FunctionDefn) { v.hit("FunctionDefn") }

// TestVisitExprDispatchesEachKind feeds one node of every expression
// kind through the dispatcher and checks each lands in its own handler
// and nothing else fires.
func TestVisitExprDispatchesEachKind(t *testing.T) {
	intType := &IntType{}
	boolType := &BoolType{}
	typeType := &TypeType{}
	boolVar := NewVarReference(boolType, "b", false, false)
	xs := NewVarReference(NewListType(intType), "xs", false, false)
	bs := NewVarReference(NewListType(boolType), "bs", false, false)
	is := NewVarReference(NewSetType(intType), "is", false, false)
	fs := NewVarReference(NewSetType(boolType), "fs", false, false)
	typeList := NewVarReference(NewListType(typeType), "ts", false, false)
	f := globalFnVar("f", []ExprType{intType}, intType)

	matchCase := NewMatchCase(map[string]bool{"T": true}, nil, []Expr{typeVar("T")}, typeVar("T"), nil, nil)

	nodes := []struct {
		kind string
		expr Expr
	}{
		{"VarReference", intVar("x")},
		{"MatchExpr", NewMatchExpr([]Expr{typeVar("m")}, []*MatchCase{matchCase})},
		{"BoolLiteral", NewBoolLiteral(true)},
		{"IntLiteral", NewIntLiteral(1)},
		{"AtomicTypeLiteral", NewAtomicTypeLiteral("int")},
		{"PointerTypeExpr", NewPointerTypeExpr(typeVar("p"))},
		{"ReferenceTypeExpr", NewReferenceTypeExpr(typeVar("p"))},
		{"RvalueReferenceTypeExpr", NewRvalueReferenceTypeExpr(typeVar("p"))},
		{"ConstTypeExpr", NewConstTypeExpr(typeVar("p"))},
		{"ArrayTypeExpr", NewArrayTypeExpr(typeVar("p"))},
		{"FunctionTypeExpr", NewFunctionTypeExpr(typeVar("r"), typeList)},
		{"TemplateInstantiationExpr", NewTemplateInstantiationExpr("std::vector", typeList)},
		{"TemplateMemberAccessExpr", NewTemplateMemberAccessExpr(typeVar("c"), "member", typeList)},
		{"ListExpr", NewListExpr(typeType, []Expr{typeVar("e")}, nil)},
		{"SetExpr", NewSetExpr(intType, []Expr{NewIntLiteral(1)})},
		{"IntListSumExpr", NewIntListSumExpr(xs)},
		{"IntSetSumExpr", NewIntSetSumExpr(is)},
		{"BoolListAllExpr", NewBoolListAllExpr(bs)},
		{"BoolSetAllExpr", NewBoolSetAllExpr(fs)},
		{"BoolListAnyExpr", NewBoolListAnyExpr(bs)},
		{"BoolSetAnyExpr", NewBoolSetAnyExpr(fs)},
		{"FunctionCall", NewFunctionCall(f, []Expr{NewIntLiteral(1)}, false)},
		{"EqualityComparison", NewEqualityComparison(intVar("a"), intVar("b"))},
		{"InExpr", NewInExpr(intVar("n"), xs)},
		{"AttributeAccessExpr", NewAttributeAccessExpr(typeVar("c"), "attr", typeType)},
		{"AndExpr", NewAndExpr(boolVar, NewBoolLiteral(true))},
		{"OrExpr", NewOrExpr(boolVar, NewBoolLiteral(false))},
		{"NotExpr", NewNotExpr(boolVar)},
		{"IntComparisonExpr", NewIntComparisonExpr(intVar("a"), intVar("b"), "<")},
		{"IntUnaryMinusExpr", NewIntUnaryMinusExpr(intVar("n"))},
		{"IntBinaryOpExpr", NewIntBinaryOpExpr(intVar("a"), intVar("b"), "+")},
		{"ListConcatExpr", NewListConcatExpr(xs, xs)},
		{"ListComprehension", NewListComprehension(xs, intVar("i"),
			NewFunctionCall(f, []Expr{intVar("i")}, false), nil, nil)},
		{"SetComprehension", NewSetComprehension(is, intVar("j"),
			NewIntBinaryOpExpr(intVar("j"), NewIntLiteral(2), "*"), nil, nil)},
	}
	for _, node := range nodes {
		v := newDispatchRecorder()
		VisitExpr(v, node.expr)
		assert.Equal(t, []string{node.kind}, v.got, "dispatch of %s", node.kind)
	}
}

func TestVisitStmtDispatchesEachKind(t *testing.T) {
	boolVar := NewVarReference(&BoolType{}, "b", false, false)
	xs := NewVarReference(NewListType(&IntType{}), "xs", false, false)
	exc := exceptionType("LookupError")

	nodes := []struct {
		kind string
		stmt Stmt
	}{
		{"PassStmt", NewPassStmt(nil)},
		{"Assert", NewAssert(boolVar, "holds", nil)},
		{"Assignment", NewAssignment(intVar("x"), NewIntLiteral(1), nil)},
		{"UnpackingAssignment", NewUnpackingAssignment([]*VarReference{intVar("a")}, xs, "oops", nil)},
		{"ReturnStmt", NewReturnStmt(intVar("n"), nil)},
		{"IfStmt", NewIfStmt(boolVar, nil, nil)},
		{"RaiseStmt", NewRaiseStmt(NewVarReference(exc, "err", false, false), nil)},
		{"TryExcept", NewTryExcept(nil, exc, "e", nil, nil, nil)},
	}
	for _, node := range nodes {
		v := newDispatchRecorder()
		VisitStmt(v, node.stmt)
		assert.Equal(t, []string{node.kind}, v.got, "dispatch of %s", node.kind)
	}
}

func TestVisitExprRejectsUnknownKind(t *testing.T) {
	assert.Panics(t, func() { VisitExpr(newDispatchRecorder(), nil) },
		"unknown expression kinds are internal errors")
	assert.Panics(t, func() { VisitStmt(newDispatchRecorder(), nil) },
		"unknown statement kinds are internal errors")
}

func TestBaseVisitorRoutesMatchCases(t *testing.T) {
	matchCase := NewMatchCase(map[string]bool{"T": true}, nil, []Expr{typeVar("T")}, typeVar("T"), nil, nil)
	match := NewMatchExpr([]Expr{typeVar("x")}, []*MatchCase{matchCase})

	v := newDispatchRecorder()
	v.BaseVisitor.VisitMatchExpr(match)
	assert.Equal(t, []string{"VarReference", "MatchCase"}, v.got,
		"cases route through their own handler during traversal")
}

func TestVisitModuleDispatch(t *testing.T) {
	v := newDispatchRecorder()
	VisitModule(v, demoModule())
	assert.Equal(t, []string{"FunctionDefn", "Assert"}, v.got)
}
