package hir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func incrementModule() *Module {
	intType := &IntType{}
	n := intVar("n")
	one := intVar("one")
	result := intVar("result")
	body := []Stmt{
		NewAssignment(one, NewIntLiteral(1), nil),
		NewAssignment(result, NewIntBinaryOpExpr(n, one, "+"), nil),
		NewReturnStmt(result, nil),
	}
	defn := NewFunctionDefn("increment", "Adds one to its argument.",
		[]FunctionArgDecl{{Type: intType, Name: "n"}}, body, intType)
	return NewModule([]ModuleElem{defn}, map[string]bool{"increment": true})
}

func TestModuleRendering(t *testing.T) {
	expected := "# Adds one to its argument.\n" +
		"def increment(n: int) -> int:\n" +
		"  one = 1\n" +
		"  result = n + one\n" +
		"  return result, None\n" +
		"\n"
	assert.Equal(t, expected, incrementModule().String())
}

func TestModuleRenderingIsDeterministic(t *testing.T) {
	m := incrementModule()
	assert.Equal(t, m.String(), m.String(), "repeated rendering must be byte-identical")
	assert.Equal(t, m.Render(true), m.Render(true))
}

func TestVerboseRenderingIncludesDetails(t *testing.T) {
	verbose := incrementModule().Render(true)
	assert.Contains(t, verbose, "is_global_function=false",
		"verbose mode should append var reference details")
	assert.NotContains(t, incrementModule().Render(false), "is_global_function")
}

func TestNewFunctionDefnRequiresBody(t *testing.T) {
	assert.Panics(t, func() {
		NewFunctionDefn("empty", "", nil, nil, &IntType{})
	}, "a function body cannot be empty")
}

func TestIfStmtRendering(t *testing.T) {
	cond := NewVarReference(&BoolType{}, "b", false, false)
	defn := NewFunctionDefn("choose", "", []FunctionArgDecl{{Type: &BoolType{}, Name: "b"}},
		[]Stmt{NewIfStmt(cond,
			[]Stmt{NewReturnStmt(intVar("x"), nil)},
			[]Stmt{NewReturnStmt(intVar("y"), nil)})},
		&IntType{})
	m := NewModule([]ModuleElem{defn}, nil)

	expected := "def choose(b: bool) -> int:\n" +
		"  if b:\n" +
		"    return x, None\n" +
		"  else:\n" +
		"    return y, None\n" +
		"\n"
	assert.Equal(t, expected, m.String())
}
