package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReturnTypeOfReturn(t *testing.T) {
	info := ReturnType([]Stmt{NewReturnStmt(intVar("x"), nil)})
	assert.True(t, SameType(info.Type, &IntType{}))
	assert.True(t, info.AlwaysReturns)
}

func TestReturnTypeOfRaise(t *testing.T) {
	e := NewVarReference(exceptionType("MyError"), "e", false, false)
	info := ReturnType([]Stmt{NewRaiseStmt(e, nil)})
	assert.Nil(t, info.Type, "a raise yields no value")
	assert.True(t, info.AlwaysReturns)
}

func TestReturnTypeEmptyAndNonTerminating(t *testing.T) {
	assert.Equal(t, ReturnTypeInfo{}, ReturnType(nil))
	assert.Equal(t, ReturnTypeInfo{}, ReturnType([]Stmt{NewPassStmt(nil)}))
	assert.Equal(t, ReturnTypeInfo{},
		ReturnType([]Stmt{NewAssignment(intVar("x"), NewIntLiteral(1), nil)}))
}

func TestReturnTypeIfBothBranchesReturn(t *testing.T) {
	b := NewVarReference(&BoolType{}, "b", false, false)
	ifStmt := NewIfStmt(b,
		[]Stmt{NewReturnStmt(intVar("x"), nil)},
		[]Stmt{NewReturnStmt(intVar("y"), nil)})

	info := ReturnType([]Stmt{ifStmt})
	assert.True(t, SameType(info.Type, &IntType{}))
	assert.True(t, info.AlwaysReturns, "both arms terminate")
}

func TestReturnTypeIfOneBranchReturns(t *testing.T) {
	b := NewVarReference(&BoolType{}, "b", false, false)
	ifStmt := NewIfStmt(b,
		[]Stmt{NewReturnStmt(intVar("x"), nil)},
		nil)

	info := ReturnType([]Stmt{ifStmt})
	assert.True(t, SameType(info.Type, &IntType{}), "the known type survives the merge")
	assert.False(t, info.AlwaysReturns, "the fall-through arm does not terminate")
}

func TestReturnTypeMergesRaiseWithReturn(t *testing.T) {
	b := NewVarReference(&BoolType{}, "b", false, false)
	e := NewVarReference(exceptionType("MyError"), "e", false, false)
	ifStmt := NewIfStmt(b,
		[]Stmt{NewRaiseStmt(e, nil)},
		[]Stmt{NewReturnStmt(intVar("x"), nil)})

	info := ReturnType([]Stmt{ifStmt})
	assert.True(t, SameType(info.Type, &IntType{}))
	assert.True(t, info.AlwaysReturns, "raising counts as terminating")
}

func TestReturnTypeTryExcept(t *testing.T) {
	exc := exceptionType("MyError")
	tryExcept := NewTryExcept(
		[]Stmt{NewReturnStmt(intVar("x"), nil)},
		exc, "e",
		[]Stmt{NewReturnStmt(intVar("y"), nil)},
		nil, nil)

	info := ReturnType([]Stmt{tryExcept})
	assert.True(t, SameType(info.Type, &IntType{}))
	assert.True(t, info.AlwaysReturns)
}

func TestReturnTypeDivergentBranchesPanic(t *testing.T) {
	b := NewVarReference(&BoolType{}, "b", false, false)
	ifStmt := NewIfStmt(b,
		[]Stmt{NewReturnStmt(intVar("x"), nil)},
		[]Stmt{NewReturnStmt(NewVarReference(&BoolType{}, "c", false, false), nil)})

	assert.Panics(t, func() { ReturnType([]Stmt{ifStmt}) },
		"branches returning different types are malformed input")
}

func TestReturnTypeOnlyInspectsLastStatement(t *testing.T) {
	stmts := []Stmt{
		NewReturnStmt(intVar("x"), nil),
		NewAssignment(intVar("y"), NewIntLiteral(1), nil),
	}
	assert.Equal(t, ReturnTypeInfo{}, ReturnType(stmts),
		"earlier statements are trusted not to terminate the sequence")
}
