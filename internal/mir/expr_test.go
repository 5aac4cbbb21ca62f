package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intVar(name string) *VarReference {
	return NewVarReference(&IntType{}, name, false, false)
}

func typeVar(name string) *VarReference {
	return NewVarReference(&TypeType{}, name, false, false)
}

func globalFnVar(name string, argTypes []ExprType, returns ExprType) *VarReference {
	return NewVarReference(&FunctionType{ArgTypes: argTypes, Returns: returns}, name, true, false)
}

func exceptionType(name string) *CustomType {
	return NewCustomType(name, nil, true, "boom")
}

func TestNewCustomTypeExceptionMessageRule(t *testing.T) {
	assert.NotPanics(t, func() { NewCustomType("Plain", nil, false, "") })
	assert.NotPanics(t, func() { NewCustomType("MyError", nil, true, "boom") })
	assert.Panics(t, func() { NewCustomType("Broken", nil, true, "") },
		"exception classes must carry a message")
	assert.Panics(t, func() { NewCustomType("Broken", nil, false, "boom") },
		"non-exception classes must not carry a message")
}

func TestSetTypeRejectsFunctionElement(t *testing.T) {
	fn := &FunctionType{ArgTypes: []ExprType{&IntType{}}, Returns: &IntType{}}
	assert.Panics(t, func() { NewSetType(fn) })
}

func TestFunctionCallDerivesReturnType(t *testing.T) {
	f := globalFnVar("f", []ExprType{&IntType{}}, &BoolType{})
	call := NewFunctionCall(f, []Expr{NewIntLiteral(1)}, false)
	assert.True(t, SameType(call.ExprType(), &BoolType{}))
	assert.Panics(t, func() { NewFunctionCall(f, nil, false) }, "arity must match")
}

func TestInExprAcceptsListsAndSets(t *testing.T) {
	xs := NewVarReference(NewListType(&IntType{}), "xs", false, false)
	s := NewVarReference(NewSetType(&IntType{}), "s", false, false)
	assert.NotPanics(t, func() { NewInExpr(intVar("n"), xs) })
	assert.NotPanics(t, func() { NewInExpr(intVar("n"), s) })
	assert.Panics(t, func() { NewInExpr(typeVar("x"), xs) },
		"lhs type must match the element type")
	assert.Panics(t, func() { NewInExpr(intVar("n"), intVar("m")) },
		"membership target must be a container")
}

func TestBoolOperatorsRequireBoolOperands(t *testing.T) {
	b := NewVarReference(&BoolType{}, "b", false, false)
	assert.NotPanics(t, func() { NewAndExpr(b, NewBoolLiteral(true)) })
	assert.Panics(t, func() { NewAndExpr(b, intVar("n")) })
	assert.Panics(t, func() { NewOrExpr(intVar("n"), b) })
	assert.Panics(t, func() { NewNotExpr(intVar("n")) })
}

func TestIntBinaryOpExprOps(t *testing.T) {
	a, b := intVar("a"), intVar("b")
	for _, op := range []string{"+", "-", "*", "//", "%"} {
		assert.NotPanics(t, func() { NewIntBinaryOpExpr(a, b, op) }, "op %s should be accepted", op)
	}
	assert.Panics(t, func() { NewIntBinaryOpExpr(a, b, "/") }, "plain division is not an op")
}

func TestSetComprehensionRequiresSetSource(t *testing.T) {
	xs := NewVarReference(NewListType(&IntType{}), "xs", false, false)
	s := NewVarReference(NewSetType(&IntType{}), "s", false, false)
	i := intVar("i")
	double := NewIntBinaryOpExpr(i, NewIntLiteral(2), "*")

	comprehension := NewSetComprehension(s, i, double, nil, nil)
	assert.True(t, SameType(comprehension.ExprType(), NewSetType(&IntType{})),
		"comprehension type derives from the result expr")
	assert.Panics(t, func() { NewSetComprehension(xs, i, double, nil, nil) },
		"a list is not a valid set comprehension source")
}

func TestListComprehensionDerivesType(t *testing.T) {
	xs := NewVarReference(NewListType(&IntType{}), "xs", false, false)
	i := intVar("i")
	isPositive := NewIntComparisonExpr(i, NewIntLiteral(0), ">")
	comprehension := NewListComprehension(xs, i, isPositive, nil, nil)
	assert.True(t, SameType(comprehension.ExprType(), NewListType(&BoolType{})))
}

func TestMatchCaseIsMainDefinition(t *testing.T) {
	bound := map[string]bool{"T": true}
	mainCase := NewMatchCase(bound, nil, []Expr{typeVar("T")}, typeVar("T"), nil, nil)
	assert.True(t, mainCase.IsMainDefinition())

	variadicCase := NewMatchCase(nil, map[string]bool{"Ts": true},
		[]Expr{NewVarReference(NewListType(&TypeType{}), "Ts", false, false)}, typeVar("x"), nil, nil)
	assert.True(t, variadicCase.IsMainDefinition(), "variadic names count as bound")

	literalCase := NewMatchCase(bound, nil, []Expr{NewAtomicTypeLiteral("int")}, typeVar("T"), nil, nil)
	assert.False(t, literalCase.IsMainDefinition())

	unboundCase := NewMatchCase(nil, nil, []Expr{typeVar("U")}, typeVar("x"), nil, nil)
	assert.False(t, unboundCase.IsMainDefinition())
}

func TestMatchExprInvariants(t *testing.T) {
	x := typeVar("x")
	bound := map[string]bool{"T": true}
	mainCase := NewMatchCase(bound, nil, []Expr{typeVar("T")}, typeVar("T"), nil, nil)

	assert.Panics(t, func() { NewMatchExpr(nil, []*MatchCase{mainCase}) })
	assert.Panics(t, func() { NewMatchExpr([]Expr{x}, nil) })
	assert.Panics(t, func() { NewMatchExpr([]Expr{x}, []*MatchCase{mainCase, mainCase}) },
		"at most one catch-all case")

	intCase := NewMatchCase(bound, nil, []Expr{NewAtomicTypeLiteral("int")}, NewIntLiteral(1), nil, nil)
	assert.Panics(t, func() { NewMatchExpr([]Expr{x}, []*MatchCase{mainCase, intCase}) },
		"case result types must agree")
}

func TestRaiseAndTryExceptRequireExceptionClasses(t *testing.T) {
	exc := exceptionType("MyError")
	excValue := NewVarReference(exc, "e", false, false)
	plain := NewCustomType("Plain", nil, false, "")

	assert.NotPanics(t, func() { NewRaiseStmt(excValue, nil) })
	assert.Panics(t, func() { NewRaiseStmt(intVar("n"), nil) })
	assert.Panics(t, func() { NewRaiseStmt(NewVarReference(plain, "p", false, false), nil) })

	assert.NotPanics(t, func() { NewTryExcept(nil, exc, "e", nil, nil, nil) })
	assert.Panics(t, func() { NewTryExcept(nil, plain, "p", nil, nil, nil) })
}

func TestAssignmentTypeRules(t *testing.T) {
	assert.NotPanics(t, func() { NewAssignment(intVar("x"), NewIntLiteral(1), nil) })
	assert.Panics(t, func() { NewAssignment(intVar("x"), NewBoolLiteral(true), nil) })

	xs := NewVarReference(NewListType(&IntType{}), "xs", false, false)
	assert.NotPanics(t, func() {
		NewUnpackingAssignment([]*VarReference{intVar("a")}, xs, "oops", nil)
	})
	assert.Panics(t, func() { NewUnpackingAssignment(nil, xs, "oops", nil) })
	assert.Panics(t, func() {
		NewUnpackingAssignment([]*VarReference{typeVar("t")}, xs, "oops", nil)
	})
}
