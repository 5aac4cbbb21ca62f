package mir

import "templar/internal/invariant"

type FunctionDefn struct {
	Name       string
	Args       []FunctionArgDecl
	Body       []Stmt
	ReturnType ExprType
}

func NewFunctionDefn(name string, args []FunctionArgDecl, body []Stmt, returnType ExprType) *FunctionDefn {
	invariant.Check(len(body) > 0, "function %s must have a non-empty body", name)
	return &FunctionDefn{Name: name, Args: args, Body: body, ReturnType: returnType}
}

// Module keeps its kinds of top-level elements in separate lists, unlike
// the earlier stage's single ordered body: by this point ordering
// between functions, assertions and type definitions no longer matters.
type Module struct {
	FunctionDefns []*FunctionDefn
	Assertions    []*Assert
	CustomTypes   []*CustomType
	PublicNames   map[string]bool
}

func NewModule(functionDefns []*FunctionDefn, assertions []*Assert, customTypes []*CustomType, publicNames map[string]bool) *Module {
	return &Module{
		FunctionDefns: functionDefns,
		Assertions:    assertions,
		CustomTypes:   customTypes,
		PublicNames:   publicNames,
	}
}
