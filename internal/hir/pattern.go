package hir

import (
	"fmt"
	"strings"

	"templar/internal/invariant"
)

// PatternExpr is the pattern counterpart of Expr, usable only inside
// match arms. Patterns share the ExprType system with expressions but
// the two hierarchies are never interchangeable.
type PatternExpr interface {
	ExprType() ExprType
	String() string
	fieldDetails() string
	patternNode()
}

type VarReferencePattern struct {
	Name                   string
	IsGlobalFunction       bool
	IsFunctionThatMayThrow bool
	typ                    ExprType
}

func NewVarReferencePattern(typ ExprType, name string, isGlobalFunction, isFunctionThatMayThrow bool) *VarReferencePattern {
	invariant.Check(name != "", "var reference pattern must be named")
	return &VarReferencePattern{
		Name:                   name,
		IsGlobalFunction:       isGlobalFunction,
		IsFunctionThatMayThrow: isFunctionThatMayThrow,
		typ:                    typ,
	}
}

func (p *VarReferencePattern) ExprType() ExprType { return p.typ }
func (p *VarReferencePattern) String() string     { return p.Name }
func (p *VarReferencePattern) fieldDetails() string {
	return fmt.Sprintf("is_global_function=%t, is_function_that_may_throw=%t",
		p.IsGlobalFunction, p.IsFunctionThatMayThrow)
}

type AtomicTypeLiteralPattern struct {
	CppType string
}

func NewAtomicTypeLiteralPattern(cppType string) *AtomicTypeLiteralPattern {
	return &AtomicTypeLiteralPattern{CppType: cppType}
}

func (p *AtomicTypeLiteralPattern) ExprType() ExprType   { return &TypeType{} }
func (p *AtomicTypeLiteralPattern) String() string       { return fmt.Sprintf("Type('%s')", p.CppType) }
func (p *AtomicTypeLiteralPattern) fieldDetails() string { return "" }

func checkTypePattern(p PatternExpr, what string) {
	invariant.Check(SameType(p.ExprType(), &TypeType{}), "%s pattern operand must be Type, got %s", what, p.ExprType())
}

type PointerTypePattern struct {
	TypeExpr PatternExpr
}

func NewPointerTypePattern(typeExpr PatternExpr) *PointerTypePattern {
	checkTypePattern(typeExpr, "pointer type")
	return &PointerTypePattern{TypeExpr: typeExpr}
}

func (p *PointerTypePattern) ExprType() ExprType   { return &TypeType{} }
func (p *PointerTypePattern) String() string       { return fmt.Sprintf("Type.pointer(%s)", p.TypeExpr) }
func (p *PointerTypePattern) fieldDetails() string { return p.TypeExpr.fieldDetails() }

type ReferenceTypePattern struct {
	TypeExpr PatternExpr
}

func NewReferenceTypePattern(typeExpr PatternExpr) *ReferenceTypePattern {
	checkTypePattern(typeExpr, "reference type")
	return &ReferenceTypePattern{TypeExpr: typeExpr}
}

func (p *ReferenceTypePattern) ExprType() ExprType   { return &TypeType{} }
func (p *ReferenceTypePattern) String() string       { return fmt.Sprintf("Type.reference(%s)", p.TypeExpr) }
func (p *ReferenceTypePattern) fieldDetails() string { return p.TypeExpr.fieldDetails() }

type RvalueReferenceTypePattern struct {
	TypeExpr PatternExpr
}

func NewRvalueReferenceTypePattern(typeExpr PatternExpr) *RvalueReferenceTypePattern {
	checkTypePattern(typeExpr, "rvalue reference type")
	return &RvalueReferenceTypePattern{TypeExpr: typeExpr}
}

func (p *RvalueReferenceTypePattern) ExprType() ExprType { return &TypeType{} }
func (p *RvalueReferenceTypePattern) String() string {
	return fmt.Sprintf("Type.rvalue_reference(%s)", p.TypeExpr)
}
func (p *RvalueReferenceTypePattern) fieldDetails() string { return p.TypeExpr.fieldDetails() }

type ConstTypePattern struct {
	TypeExpr PatternExpr
}

func NewConstTypePattern(typeExpr PatternExpr) *ConstTypePattern {
	checkTypePattern(typeExpr, "const type")
	return &ConstTypePattern{TypeExpr: typeExpr}
}

func (p *ConstTypePattern) ExprType() ExprType   { return &TypeType{} }
func (p *ConstTypePattern) String() string       { return fmt.Sprintf("Type.const(%s)", p.TypeExpr) }
func (p *ConstTypePattern) fieldDetails() string { return p.TypeExpr.fieldDetails() }

type ArrayTypePattern struct {
	TypeExpr PatternExpr
}

func NewArrayTypePattern(typeExpr PatternExpr) *ArrayTypePattern {
	checkTypePattern(typeExpr, "array type")
	return &ArrayTypePattern{TypeExpr: typeExpr}
}

func (p *ArrayTypePattern) ExprType() ExprType   { return &TypeType{} }
func (p *ArrayTypePattern) String() string       { return fmt.Sprintf("Type.array(%s)", p.TypeExpr) }
func (p *ArrayTypePattern) fieldDetails() string { return p.TypeExpr.fieldDetails() }

type FunctionTypePattern struct {
	ReturnTypeExpr PatternExpr
	ArgListExpr    PatternExpr
}

func NewFunctionTypePattern(returnTypeExpr, argListExpr PatternExpr) *FunctionTypePattern {
	checkTypePattern(returnTypeExpr, "function type return")
	invariant.Check(isTypeList(argListExpr.ExprType()),
		"function type pattern arg list must be List[Type], got %s", argListExpr.ExprType())
	return &FunctionTypePattern{ReturnTypeExpr: returnTypeExpr, ArgListExpr: argListExpr}
}

func (p *FunctionTypePattern) ExprType() ExprType { return &TypeType{} }
func (p *FunctionTypePattern) String() string {
	return fmt.Sprintf("Type.function(%s, %s)", p.ReturnTypeExpr, p.ArgListExpr)
}
func (p *FunctionTypePattern) fieldDetails() string {
	return fmt.Sprintf("return_type: %s; arg_type_list: %s",
		p.ReturnTypeExpr.fieldDetails(), p.ArgListExpr.fieldDetails())
}

// TemplateInstantiationPattern destructures a template instantiation;
// ListExtractionArgExpr, when set, captures a variadic tail of
// arguments as a List[Type].
type TemplateInstantiationPattern struct {
	TemplateCppType       string
	ArgExprs              []PatternExpr
	ListExtractionArgExpr *VarReferencePattern
}

func NewTemplateInstantiationPattern(templateCppType string, argExprs []PatternExpr, listExtractionArgExpr *VarReferencePattern) *TemplateInstantiationPattern {
	for _, arg := range argExprs {
		checkTypePattern(arg, "template instantiation arg")
	}
	if listExtractionArgExpr != nil {
		invariant.Check(isTypeList(listExtractionArgExpr.ExprType()),
			"template instantiation list extraction must be List[Type], got %s", listExtractionArgExpr.ExprType())
	}
	return &TemplateInstantiationPattern{
		TemplateCppType:       templateCppType,
		ArgExprs:              argExprs,
		ListExtractionArgExpr: listExtractionArgExpr,
	}
}

func (p *TemplateInstantiationPattern) ExprType() ExprType { return &TypeType{} }

func (p *TemplateInstantiationPattern) String() string {
	args := make([]string, len(p.ArgExprs))
	for i, arg := range p.ArgExprs {
		args[i] = arg.String()
	}
	extraction := ""
	if p.ListExtractionArgExpr != nil {
		extraction = ", *" + p.ListExtractionArgExpr.String()
	}
	return fmt.Sprintf("Type.template_instantiation('%s', [%s%s])", p.TemplateCppType, strings.Join(args, ", "), extraction)
}

func (p *TemplateInstantiationPattern) fieldDetails() string {
	parts := make([]string, 0, len(p.ArgExprs)+1)
	for _, arg := range p.ArgExprs {
		parts = append(parts, arg.fieldDetails())
	}
	if p.ListExtractionArgExpr != nil {
		parts = append(parts, p.ListExtractionArgExpr.fieldDetails())
	}
	return strings.Join(parts, "; ")
}

// ListPattern destructures a list; ListExtractionExpr, when set,
// captures the remaining elements.
type ListPattern struct {
	Elems              []PatternExpr
	ListExtractionExpr *VarReference
	typ                ExprType
}

func NewListPattern(elemType ExprType, elems []PatternExpr, listExtractionExpr *VarReference) *ListPattern {
	if listExtractionExpr != nil {
		invariant.Check(SameType(listExtractionExpr.ExprType(), NewListType(elemType)),
			"list pattern extraction must be List[%s], got %s", elemType, listExtractionExpr.ExprType())
	}
	return &ListPattern{
		Elems:              elems,
		ListExtractionExpr: listExtractionExpr,
		typ:                NewListType(elemType),
	}
}

func (p *ListPattern) ExprType() ExprType { return p.typ }
func (p *ListPattern) ElemType() ExprType { return p.typ.(*ListType).Elem }

func (p *ListPattern) String() string {
	elems := make([]string, len(p.Elems))
	for i, elem := range p.Elems {
		elems[i] = elem.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(elems, ", "))
}

func (p *ListPattern) fieldDetails() string {
	parts := make([]string, len(p.Elems))
	for i, elem := range p.Elems {
		parts[i] = elem.fieldDetails()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, "; "))
}

func (p *VarReferencePattern) patternNode()          {}
func (p *AtomicTypeLiteralPattern) patternNode()     {}
func (p *PointerTypePattern) patternNode()           {}
func (p *ReferenceTypePattern) patternNode()         {}
func (p *RvalueReferenceTypePattern) patternNode()   {}
func (p *ConstTypePattern) patternNode()             {}
func (p *ArrayTypePattern) patternNode()             {}
func (p *FunctionTypePattern) patternNode()          {}
func (p *TemplateInstantiationPattern) patternNode() {}
func (p *ListPattern) patternNode()                  {}
