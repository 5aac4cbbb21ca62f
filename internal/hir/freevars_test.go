package hir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func freeVarNames(freeVars []*VarReference) []string {
	names := make([]string, len(freeVars))
	for i, v := range freeVars {
		names[i] = v.Name
	}
	return names
}

func TestFreeVariablesIgnoreGlobalsAndBindings(t *testing.T) {
	// y = f(z); w = g(y); return w
	// f is a top-level function, so only z and g are free.
	f := globalFnVar("f", []ExprType{&IntType{}}, &IntType{})
	g := NewVarReference(&FunctionType{ArgTypes: []ExprType{&IntType{}}, Returns: &IntType{}}, "g", false, false)
	y := intVar("y")
	w := intVar("w")

	stmts := []Stmt{
		NewAssignment(y, NewFunctionCall(f, []*VarReference{intVar("z")}), nil),
		NewAssignment(w, NewFunctionCall(g, []*VarReference{y}), nil),
		NewReturnStmt(w, nil),
	}
	assert.Equal(t, []string{"g", "z"}, freeVarNames(UniqueFreeVariablesInStmts(stmts)),
		"free vars should be deduplicated and sorted by name")
}

func TestFreeVariablesAssignmentBindsAfterRhs(t *testing.T) {
	// x = f(x): the rhs reference to x precedes the binding, so x is
	// free.
	f := globalFnVar("f", []ExprType{&IntType{}}, &IntType{})
	stmts := []Stmt{
		NewAssignment(intVar("x"), NewFunctionCall(f, []*VarReference{intVar("x")}), nil),
	}
	assert.Equal(t, []string{"x"}, freeVarNames(UniqueFreeVariablesInStmts(stmts)))
}

func TestFreeVariablesMatchCaseScoping(t *testing.T) {
	f := globalFnVar("f", []ExprType{&TypeType{}}, &TypeType{})
	x := typeVar("x")
	pattern := NewVarReferencePattern(&TypeType{}, "T", false, false)
	matchCase := NewMatchCase([]PatternExpr{pattern}, []string{"T"}, nil,
		NewFunctionCall(f, []*VarReference{typeVar("T")}))
	match := NewMatchExpr([]*VarReference{x}, []*MatchCase{matchCase})

	assert.Equal(t, []string{"x"}, freeVarNames(UniqueFreeVariablesInExpr(match)),
		"the case-bound name must not escape its case")
}

func TestFreeVariablesMatchCaseBindingDoesNotLeak(t *testing.T) {
	f := globalFnVar("f", []ExprType{&TypeType{}}, &TypeType{})
	x := typeVar("x")
	pattern := NewVarReferencePattern(&TypeType{}, "T", false, false)
	matchCase := NewMatchCase([]PatternExpr{pattern}, []string{"T"}, nil,
		NewFunctionCall(f, []*VarReference{typeVar("T")}))
	match := NewMatchExpr([]*VarReference{x}, []*MatchCase{matchCase})

	result := typeVar("r")
	stmts := []Stmt{
		NewAssignment(result, match, nil),
		NewAssignment(typeVar("s"), NewFunctionCall(f, []*VarReference{typeVar("T")}), nil),
	}
	assert.Equal(t, []string{"T", "x"}, freeVarNames(UniqueFreeVariablesInStmts(stmts)),
		"T is free again outside the match case")
}

func TestFreeVariablesUnboundPatternName(t *testing.T) {
	// A var pattern over a name the case does not bind refers to an
	// outer binding and is free.
	f := globalFnVar("f", []ExprType{&TypeType{}}, &TypeType{})
	x := typeVar("x")
	pattern := NewVarReferencePattern(&TypeType{}, "U", false, false)
	matchCase := NewMatchCase([]PatternExpr{pattern}, nil, nil,
		NewFunctionCall(f, []*VarReference{typeVar("y")}))
	match := NewMatchExpr([]*VarReference{x}, []*MatchCase{matchCase})

	assert.Equal(t, []string{"U", "x", "y"}, freeVarNames(UniqueFreeVariablesInExpr(match)))
}

func TestFreeVariablesComprehensionLoopVarScoped(t *testing.T) {
	f := globalFnVar("f", []ExprType{&IntType{}}, &IntType{})
	xs := NewVarReference(NewListType(&IntType{}), "xs", false, false)
	comprehension := NewListComprehensionExpr(xs, intVar("i"), NewFunctionCall(f, []*VarReference{intVar("i")}))

	assert.Equal(t, []string{"xs"}, freeVarNames(UniqueFreeVariablesInExpr(comprehension)),
		"the loop var is bound within the comprehension")
}

func TestFreeVariablesUnpackingAssignment(t *testing.T) {
	xs := NewVarReference(NewListType(&IntType{}), "xs", false, false)
	stmts := []Stmt{
		NewUnpackingAssignment([]*VarReference{intVar("a"), intVar("b")}, xs, "length mismatch"),
		NewReturnStmt(intVar("a"), nil),
	}
	assert.Equal(t, []string{"xs"}, freeVarNames(UniqueFreeVariablesInStmts(stmts)))
}
