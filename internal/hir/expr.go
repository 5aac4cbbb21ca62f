package hir

import (
	"fmt"
	"strings"

	"templar/internal/invariant"
)

// Expr is a typed expression node. Nodes are immutable once built:
// construction goes through the New* functions, which validate operand
// types and fix the node's type, so an ill-typed tree cannot be
// represented.
type Expr interface {
	ExprType() ExprType
	String() string
	fieldDetails() string
	exprNode()
}

type FunctionArgDecl struct {
	Type ExprType
	Name string
}

func (d FunctionArgDecl) String() string {
	return fmt.Sprintf("%s: %s", d.Name, d.Type)
}

// VarReference is a by-name reference to a function-scope binding. The
// flags distinguish references to top-level functions (which are never
// free variables) and to functions whose failure propagates.
type VarReference struct {
	Name                   string
	IsGlobalFunction       bool
	IsFunctionThatMayThrow bool
	typ                    ExprType
}

func NewVarReference(typ ExprType, name string, isGlobalFunction, isFunctionThatMayThrow bool) *VarReference {
	invariant.Check(name != "", "var reference must be named")
	return &VarReference{
		Name:                   name,
		IsGlobalFunction:       isGlobalFunction,
		IsFunctionThatMayThrow: isFunctionThatMayThrow,
		typ:                    typ,
	}
}

func (e *VarReference) ExprType() ExprType { return e.typ }
func (e *VarReference) String() string     { return e.Name }
func (e *VarReference) fieldDetails() string {
	return fmt.Sprintf("is_global_function=%t, is_function_that_may_throw=%t",
		e.IsGlobalFunction, e.IsFunctionThatMayThrow)
}

// MatchCase pairs one pattern per matched value with a result
// expression. MatchedVarNames and MatchedVariadicVarNames are the names
// the patterns bind, local to this case.
type MatchCase struct {
	TypePatterns            []PatternExpr
	MatchedVarNames         []string
	MatchedVariadicVarNames []string
	Expr                    *FunctionCall
}

func NewMatchCase(typePatterns []PatternExpr, matchedVarNames, matchedVariadicVarNames []string, expr *FunctionCall) *MatchCase {
	return &MatchCase{
		TypePatterns:            typePatterns,
		MatchedVarNames:         matchedVarNames,
		MatchedVariadicVarNames: matchedVariadicVarNames,
		Expr:                    expr,
	}
}

// IsMainDefinition reports whether this case is the catch-all: every
// pattern is a plain variable binding and the pattern names are exactly
// the matched and variadic names. The next stage detects its catch-all
// with a per-pattern shape check instead; the two definitions are
// deliberately kept stage-specific.
func (c *MatchCase) IsMainDefinition() bool {
	patternNames := make(map[string]bool, len(c.TypePatterns))
	for _, pattern := range c.TypePatterns {
		varPattern, ok := pattern.(*VarReferencePattern)
		if !ok {
			return false
		}
		patternNames[varPattern.Name] = true
	}
	boundNames := make(map[string]bool, len(c.MatchedVarNames)+len(c.MatchedVariadicVarNames))
	for _, name := range c.MatchedVarNames {
		boundNames[name] = true
	}
	for _, name := range c.MatchedVariadicVarNames {
		boundNames[name] = true
	}
	if len(patternNames) != len(boundNames) {
		return false
	}
	for name := range patternNames {
		if !boundNames[name] {
			return false
		}
	}
	return true
}

func (c *MatchCase) write(w *Writer) {
	names := make([]string, 0, len(c.MatchedVarNames)+len(c.MatchedVariadicVarNames))
	names = append(names, c.MatchedVarNames...)
	names = append(names, c.MatchedVariadicVarNames...)
	w.Writeln(fmt.Sprintf("lambda %s:", strings.Join(names, ", ")))
	w.Indented(func() {
		patterns := make([]string, len(c.TypePatterns))
		for i, pattern := range c.TypePatterns {
			patterns[i] = pattern.String()
		}
		w.Write(strings.Join(patterns, ", "))
		w.Writeln(":")
		w.Indented(func() {
			w.Write(c.Expr.String())
			w.Writeln(",")
		})
	})
}

type MatchExpr struct {
	MatchedVars []*VarReference
	MatchCases  []*MatchCase
	typ         ExprType
}

func NewMatchExpr(matchedVars []*VarReference, matchCases []*MatchCase) *MatchExpr {
	invariant.Check(len(matchedVars) > 0, "match expr must match at least one var")
	invariant.Check(len(matchCases) > 0, "match expr must have at least one case")
	resultType := matchCases[0].Expr.ExprType()
	mainDefinitions := 0
	for _, matchCase := range matchCases {
		invariant.Check(len(matchCase.TypePatterns) == len(matchedVars),
			"match case has %d patterns, expected %d", len(matchCase.TypePatterns), len(matchedVars))
		invariant.Check(SameType(matchCase.Expr.ExprType(), resultType),
			"match case type %s differs from %s", matchCase.Expr.ExprType(), resultType)
		if matchCase.IsMainDefinition() {
			mainDefinitions++
		}
	}
	invariant.Check(mainDefinitions <= 1, "match expr has %d main definitions", mainDefinitions)
	return &MatchExpr{MatchedVars: matchedVars, MatchCases: matchCases, typ: resultType}
}

func (e *MatchExpr) ExprType() ExprType { return e.typ }

func (e *MatchExpr) String() string {
	w := NewWriter()
	e.write(w)
	return w.String()
}

func (e *MatchExpr) write(w *Writer) {
	names := make([]string, len(e.MatchedVars))
	for i, v := range e.MatchedVars {
		names[i] = v.Name
	}
	w.Writeln(fmt.Sprintf("match(%s)({", strings.Join(names, ", ")))
	w.Indented(func() {
		for _, matchCase := range e.MatchCases {
			matchCase.write(w)
		}
	})
	w.Writeln("})")
}

func (e *MatchExpr) fieldDetails() string { return "" }

type BoolLiteral struct {
	Value bool
}

func NewBoolLiteral(value bool) *BoolLiteral {
	return &BoolLiteral{Value: value}
}

func (e *BoolLiteral) ExprType() ExprType   { return &BoolType{} }
func (e *BoolLiteral) String() string       { return fmt.Sprintf("%t", e.Value) }
func (e *BoolLiteral) fieldDetails() string { return "" }

type IntLiteral struct {
	Value int64
}

func NewIntLiteral(value int64) *IntLiteral {
	return &IntLiteral{Value: value}
}

func (e *IntLiteral) ExprType() ExprType   { return &IntType{} }
func (e *IntLiteral) String() string       { return fmt.Sprintf("%d", e.Value) }
func (e *IntLiteral) fieldDetails() string { return "" }

// AtomicTypeLiteral names a non-template target-language type, e.g.
// 'int' or 'std::nullptr_t'.
type AtomicTypeLiteral struct {
	CppType string
}

func NewAtomicTypeLiteral(cppType string) *AtomicTypeLiteral {
	return &AtomicTypeLiteral{CppType: cppType}
}

func (e *AtomicTypeLiteral) ExprType() ExprType   { return &TypeType{} }
func (e *AtomicTypeLiteral) String() string       { return fmt.Sprintf("Type('%s')", e.CppType) }
func (e *AtomicTypeLiteral) fieldDetails() string { return "" }

func checkTypeOperand(v *VarReference, what string) {
	invariant.Check(SameType(v.ExprType(), &TypeType{}), "%s operand must be Type, got %s", what, v.ExprType())
}

type PointerTypeExpr struct {
	TypeExpr *VarReference
}

func NewPointerTypeExpr(typeExpr *VarReference) *PointerTypeExpr {
	checkTypeOperand(typeExpr, "pointer type")
	return &PointerTypeExpr{TypeExpr: typeExpr}
}

func (e *PointerTypeExpr) ExprType() ExprType   { return &TypeType{} }
func (e *PointerTypeExpr) String() string       { return fmt.Sprintf("Type.pointer(%s)", e.TypeExpr) }
func (e *PointerTypeExpr) fieldDetails() string { return e.TypeExpr.fieldDetails() }

type ReferenceTypeExpr struct {
	TypeExpr *VarReference
}

func NewReferenceTypeExpr(typeExpr *VarReference) *ReferenceTypeExpr {
	checkTypeOperand(typeExpr, "reference type")
	return &ReferenceTypeExpr{TypeExpr: typeExpr}
}

func (e *ReferenceTypeExpr) ExprType() ExprType   { return &TypeType{} }
func (e *ReferenceTypeExpr) String() string       { return fmt.Sprintf("Type.reference(%s)", e.TypeExpr) }
func (e *ReferenceTypeExpr) fieldDetails() string { return e.TypeExpr.fieldDetails() }

type RvalueReferenceTypeExpr struct {
	TypeExpr *VarReference
}

func NewRvalueReferenceTypeExpr(typeExpr *VarReference) *RvalueReferenceTypeExpr {
	checkTypeOperand(typeExpr, "rvalue reference type")
	return &RvalueReferenceTypeExpr{TypeExpr: typeExpr}
}

func (e *RvalueReferenceTypeExpr) ExprType() ExprType { return &TypeType{} }
func (e *RvalueReferenceTypeExpr) String() string {
	return fmt.Sprintf("Type.rvalue_reference(%s)", e.TypeExpr)
}
func (e *RvalueReferenceTypeExpr) fieldDetails() string { return e.TypeExpr.fieldDetails() }

type ConstTypeExpr struct {
	TypeExpr *VarReference
}

func NewConstTypeExpr(typeExpr *VarReference) *ConstTypeExpr {
	checkTypeOperand(typeExpr, "const type")
	return &ConstTypeExpr{TypeExpr: typeExpr}
}

func (e *ConstTypeExpr) ExprType() ExprType   { return &TypeType{} }
func (e *ConstTypeExpr) String() string       { return fmt.Sprintf("Type.const(%s)", e.TypeExpr) }
func (e *ConstTypeExpr) fieldDetails() string { return e.TypeExpr.fieldDetails() }

type ArrayTypeExpr struct {
	TypeExpr *VarReference
}

func NewArrayTypeExpr(typeExpr *VarReference) *ArrayTypeExpr {
	checkTypeOperand(typeExpr, "array type")
	return &ArrayTypeExpr{TypeExpr: typeExpr}
}

func (e *ArrayTypeExpr) ExprType() ExprType   { return &TypeType{} }
func (e *ArrayTypeExpr) String() string       { return fmt.Sprintf("Type.array(%s)", e.TypeExpr) }
func (e *ArrayTypeExpr) fieldDetails() string { return e.TypeExpr.fieldDetails() }

type FunctionTypeExpr struct {
	ReturnTypeExpr *VarReference
	ArgListExpr    *VarReference
}

func NewFunctionTypeExpr(returnTypeExpr, argListExpr *VarReference) *FunctionTypeExpr {
	checkTypeOperand(returnTypeExpr, "function type return")
	invariant.Check(isTypeList(argListExpr.ExprType()),
		"function type arg list must be List[Type], got %s", argListExpr.ExprType())
	return &FunctionTypeExpr{ReturnTypeExpr: returnTypeExpr, ArgListExpr: argListExpr}
}

func (e *FunctionTypeExpr) ExprType() ExprType { return &TypeType{} }
func (e *FunctionTypeExpr) String() string {
	return fmt.Sprintf("Type.function(%s, %s)", e.ReturnTypeExpr, e.ArgListExpr)
}
func (e *FunctionTypeExpr) fieldDetails() string {
	return fmt.Sprintf("return_type: %s; arg_type_list: %s",
		e.ReturnTypeExpr.fieldDetails(), e.ArgListExpr.fieldDetails())
}

// ParameterPackExpansion expands a variadic pack in place; its type is
// the pack's element type.
type ParameterPackExpansion struct {
	Expr *VarReference
	typ  ExprType
}

func NewParameterPackExpansion(expr *VarReference) *ParameterPackExpansion {
	packType, ok := expr.ExprType().(*ParameterPackType)
	invariant.Check(ok, "pack expansion operand must be a parameter pack, got %s", expr.ExprType())
	return &ParameterPackExpansion{Expr: expr, typ: packType.Elem}
}

func (e *ParameterPackExpansion) ExprType() ExprType   { return e.typ }
func (e *ParameterPackExpansion) String() string       { return fmt.Sprintf("*(%s)", e.Expr) }
func (e *ParameterPackExpansion) fieldDetails() string { return e.Expr.fieldDetails() }

// TemplateInstantiationExpr applies a named template to a list of type
// arguments, e.g. ('std::vector', [Type('int')]) is 'std::vector<int>'.
type TemplateInstantiationExpr struct {
	TemplateCppType string
	ArgListExpr     *VarReference
}

func NewTemplateInstantiationExpr(templateCppType string, argListExpr *VarReference) *TemplateInstantiationExpr {
	invariant.Check(isTypeList(argListExpr.ExprType()),
		"template instantiation arg list must be List[Type], got %s", argListExpr.ExprType())
	return &TemplateInstantiationExpr{TemplateCppType: templateCppType, ArgListExpr: argListExpr}
}

func (e *TemplateInstantiationExpr) ExprType() ExprType { return &TypeType{} }
func (e *TemplateInstantiationExpr) String() string {
	return fmt.Sprintf("Type.template_instantiation('%s', %s)", e.TemplateCppType, e.ArgListExpr)
}
func (e *TemplateInstantiationExpr) fieldDetails() string { return e.ArgListExpr.fieldDetails() }

// TemplateMemberAccessExpr is a member template instantiation, e.g.
// (foo, 'bar', [Type('int')]) is 'foo::bar<int>'.
type TemplateMemberAccessExpr struct {
	ClassTypeExpr *VarReference
	MemberName    string
	ArgListExpr   *VarReference
}

func NewTemplateMemberAccessExpr(classTypeExpr *VarReference, memberName string, argListExpr *VarReference) *TemplateMemberAccessExpr {
	checkTypeOperand(classTypeExpr, "template member access class")
	invariant.Check(isTypeList(argListExpr.ExprType()),
		"template member access arg list must be List[Type], got %s", argListExpr.ExprType())
	return &TemplateMemberAccessExpr{ClassTypeExpr: classTypeExpr, MemberName: memberName, ArgListExpr: argListExpr}
}

func (e *TemplateMemberAccessExpr) ExprType() ExprType { return &TypeType{} }
func (e *TemplateMemberAccessExpr) String() string {
	return fmt.Sprintf("Type.template_member(%s, '%s', %s)", e.ClassTypeExpr, e.MemberName, e.ArgListExpr)
}
func (e *TemplateMemberAccessExpr) fieldDetails() string {
	return fmt.Sprintf("class_type: %s; arg_type_list: %s",
		e.ClassTypeExpr.fieldDetails(), e.ArgListExpr.fieldDetails())
}

type ListExpr struct {
	Elems []*VarReference
	typ   ExprType
}

func NewListExpr(elemType ExprType, elems []*VarReference) *ListExpr {
	return &ListExpr{Elems: elems, typ: NewListType(elemType)}
}

func (e *ListExpr) ExprType() ExprType { return e.typ }
func (e *ListExpr) ElemType() ExprType { return e.typ.(*ListType).Elem }
func (e *ListExpr) String() string {
	names := make([]string, len(e.Elems))
	for i, v := range e.Elems {
		names[i] = v.Name
	}
	return fmt.Sprintf("[%s]", strings.Join(names, ", "))
}
func (e *ListExpr) fieldDetails() string { return "" }

// AddToSetExpr yields the set plus one element. Sets are represented as
// lists with unique elements at this stage.
type AddToSetExpr struct {
	SetExpr  *VarReference
	ElemExpr *VarReference
	typ      ExprType
}

func NewAddToSetExpr(setExpr, elemExpr *VarReference) *AddToSetExpr {
	listType, ok := setExpr.ExprType().(*ListType)
	invariant.Check(ok, "add_to_set operand must be a list, got %s", setExpr.ExprType())
	invariant.Check(SameType(listType.Elem, elemExpr.ExprType()),
		"add_to_set element type %s does not match set element type %s", elemExpr.ExprType(), listType.Elem)
	return &AddToSetExpr{SetExpr: setExpr, ElemExpr: elemExpr, typ: NewListType(listType.Elem)}
}

func (e *AddToSetExpr) ExprType() ExprType { return e.typ }
func (e *AddToSetExpr) String() string {
	return fmt.Sprintf("add_to_set(%s, %s)", e.SetExpr, e.ElemExpr)
}
func (e *AddToSetExpr) fieldDetails() string {
	return fmt.Sprintf("set: %s; elem: %s", e.SetExpr.fieldDetails(), e.ElemExpr.fieldDetails())
}

type SetToListExpr struct {
	Var *VarReference
	typ ExprType
}

func NewSetToListExpr(v *VarReference) *SetToListExpr {
	listType, ok := v.ExprType().(*ListType)
	invariant.Check(ok, "set_to_list operand must be a list, got %s", v.ExprType())
	return &SetToListExpr{Var: v, typ: NewListType(listType.Elem)}
}

func (e *SetToListExpr) ExprType() ExprType   { return e.typ }
func (e *SetToListExpr) String() string       { return fmt.Sprintf("set_to_list(%s)", e.Var.Name) }
func (e *SetToListExpr) fieldDetails() string { return e.Var.fieldDetails() }

type ListToSetExpr struct {
	Var *VarReference
	typ ExprType
}

func NewListToSetExpr(v *VarReference) *ListToSetExpr {
	listType, ok := v.ExprType().(*ListType)
	invariant.Check(ok, "list_to_set operand must be a list, got %s", v.ExprType())
	return &ListToSetExpr{Var: v, typ: NewListType(listType.Elem)}
}

func (e *ListToSetExpr) ExprType() ExprType   { return e.typ }
func (e *ListToSetExpr) String() string       { return fmt.Sprintf("list_to_set(%s)", e.Var.Name) }
func (e *ListToSetExpr) fieldDetails() string { return e.Var.fieldDetails() }

type FunctionCall struct {
	Fun  *VarReference
	Args []*VarReference
	typ  ExprType
}

func NewFunctionCall(fun *VarReference, args []*VarReference) *FunctionCall {
	funType, ok := fun.ExprType().(*FunctionType)
	invariant.Check(ok, "call target must have a function type, got %s", fun.ExprType())
	invariant.Check(len(funType.ArgTypes) == len(args),
		"call to %s has %d args, expected %d", fun.Name, len(args), len(funType.ArgTypes))
	invariant.Check(len(args) > 0, "call to %s must have at least one arg", fun.Name)
	return &FunctionCall{Fun: fun, Args: args, typ: funType.Returns}
}

func (e *FunctionCall) ExprType() ExprType { return e.typ }
func (e *FunctionCall) String() string {
	names := make([]string, len(e.Args))
	for i, arg := range e.Args {
		names[i] = arg.Name
	}
	return fmt.Sprintf("%s(%s)", e.Fun.Name, strings.Join(names, ", "))
}
func (e *FunctionCall) fieldDetails() string {
	parts := []string{fmt.Sprintf("%s: %s", e.Fun.Name, e.Fun.fieldDetails())}
	for _, arg := range e.Args {
		parts = append(parts, fmt.Sprintf("%s: %s", arg.Name, arg.fieldDetails()))
	}
	return strings.Join(parts, "; ")
}

// EqualityComparison requires both operands to share a type; comparing
// functions is not allowed. An ErrorOrVoid lhs may be compared against
// a Type rhs, which is how a stored error value is tested against a
// concrete error type.
type EqualityComparison struct {
	Lhs *VarReference
	Rhs *VarReference
}

func NewEqualityComparison(lhs, rhs *VarReference) *EqualityComparison {
	_, lhsIsErrorOrVoid := lhs.ExprType().(*ErrorOrVoidType)
	_, rhsIsType := rhs.ExprType().(*TypeType)
	invariant.Check((lhsIsErrorOrVoid && rhsIsType) || SameType(lhs.ExprType(), rhs.ExprType()),
		"equality comparison between %s and %s", lhs.ExprType(), rhs.ExprType())
	_, lhsIsFunction := lhs.ExprType().(*FunctionType)
	invariant.Check(!lhsIsFunction, "cannot compare function-typed values")
	return &EqualityComparison{Lhs: lhs, Rhs: rhs}
}

func (e *EqualityComparison) ExprType() ExprType { return &BoolType{} }
func (e *EqualityComparison) String() string {
	return fmt.Sprintf("%s == %s", e.Lhs.Name, e.Rhs.Name)
}
func (e *EqualityComparison) fieldDetails() string {
	return fmt.Sprintf("(lhs: %s; rhs: %s)", e.Lhs.fieldDetails(), e.Rhs.fieldDetails())
}

type SetEqualityComparison struct {
	Lhs *VarReference
	Rhs *VarReference
}

func NewSetEqualityComparison(lhs, rhs *VarReference) *SetEqualityComparison {
	_, ok := lhs.ExprType().(*ListType)
	invariant.Check(ok, "set equality operand must be a list, got %s", lhs.ExprType())
	invariant.Check(SameType(lhs.ExprType(), rhs.ExprType()),
		"set equality between %s and %s", lhs.ExprType(), rhs.ExprType())
	return &SetEqualityComparison{Lhs: lhs, Rhs: rhs}
}

func (e *SetEqualityComparison) ExprType() ExprType { return &BoolType{} }
func (e *SetEqualityComparison) String() string {
	return fmt.Sprintf("set_equals(%s, %s)", e.Lhs.Name, e.Rhs.Name)
}
func (e *SetEqualityComparison) fieldDetails() string {
	return fmt.Sprintf("(lhs: %s; rhs: %s)", e.Lhs.fieldDetails(), e.Rhs.fieldDetails())
}

type IsInListExpr struct {
	Lhs *VarReference
	Rhs *VarReference
}

func NewIsInListExpr(lhs, rhs *VarReference) *IsInListExpr {
	listType, ok := rhs.ExprType().(*ListType)
	invariant.Check(ok, "membership test target must be a list, got %s", rhs.ExprType())
	invariant.Check(SameType(lhs.ExprType(), listType.Elem),
		"membership test type %s does not match list element type %s", lhs.ExprType(), listType.Elem)
	return &IsInListExpr{Lhs: lhs, Rhs: rhs}
}

func (e *IsInListExpr) ExprType() ExprType { return &BoolType{} }
func (e *IsInListExpr) String() string {
	return fmt.Sprintf("%s in %s", e.Lhs.Name, e.Rhs.Name)
}
func (e *IsInListExpr) fieldDetails() string {
	return fmt.Sprintf("(lhs: %s; rhs: %s)", e.Lhs.fieldDetails(), e.Rhs.fieldDetails())
}

// AttributeAccessExpr reads a named attribute off a Type or a custom
// type value; the attribute's type is declared by the caller.
type AttributeAccessExpr struct {
	Var           *VarReference
	AttributeName string
	typ           ExprType
}

func NewAttributeAccessExpr(v *VarReference, attributeName string, typ ExprType) *AttributeAccessExpr {
	switch v.ExprType().(type) {
	case *TypeType, *CustomType:
	default:
		invariant.Violationf("attribute access base must be Type or a custom type, got %s", v.ExprType())
	}
	return &AttributeAccessExpr{Var: v, AttributeName: attributeName, typ: typ}
}

func (e *AttributeAccessExpr) ExprType() ExprType   { return e.typ }
func (e *AttributeAccessExpr) String() string       { return fmt.Sprintf("%s.%s", e.Var.Name, e.AttributeName) }
func (e *AttributeAccessExpr) fieldDetails() string { return "" }

type NotExpr struct {
	Var *VarReference
}

func NewNotExpr(v *VarReference) *NotExpr {
	invariant.Check(SameType(v.ExprType(), &BoolType{}), "not operand must be bool, got %s", v.ExprType())
	return &NotExpr{Var: v}
}

func (e *NotExpr) ExprType() ExprType   { return &BoolType{} }
func (e *NotExpr) String() string       { return fmt.Sprintf("not %s", e.Var.Name) }
func (e *NotExpr) fieldDetails() string { return e.Var.fieldDetails() }

type UnaryMinusExpr struct {
	Var *VarReference
}

func NewUnaryMinusExpr(v *VarReference) *UnaryMinusExpr {
	invariant.Check(SameType(v.ExprType(), &IntType{}), "unary minus operand must be int, got %s", v.ExprType())
	return &UnaryMinusExpr{Var: v}
}

func (e *UnaryMinusExpr) ExprType() ExprType   { return &IntType{} }
func (e *UnaryMinusExpr) String() string       { return fmt.Sprintf("-%s", e.Var.Name) }
func (e *UnaryMinusExpr) fieldDetails() string { return e.Var.fieldDetails() }

func checkListOf(v *VarReference, elem ExprType, what string) {
	listType, ok := v.ExprType().(*ListType)
	invariant.Check(ok, "%s operand must be a list, got %s", what, v.ExprType())
	invariant.Check(SameType(listType.Elem, elem),
		"%s operand must be List[%s], got %s", what, elem, v.ExprType())
}

type IntListSumExpr struct {
	Var *VarReference
}

func NewIntListSumExpr(v *VarReference) *IntListSumExpr {
	checkListOf(v, &IntType{}, "sum")
	return &IntListSumExpr{Var: v}
}

func (e *IntListSumExpr) ExprType() ExprType   { return &IntType{} }
func (e *IntListSumExpr) String() string       { return fmt.Sprintf("sum(%s)", e.Var.Name) }
func (e *IntListSumExpr) fieldDetails() string { return e.Var.fieldDetails() }

type BoolListAllExpr struct {
	Var *VarReference
}

func NewBoolListAllExpr(v *VarReference) *BoolListAllExpr {
	checkListOf(v, &BoolType{}, "all")
	return &BoolListAllExpr{Var: v}
}

func (e *BoolListAllExpr) ExprType() ExprType   { return &BoolType{} }
func (e *BoolListAllExpr) String() string       { return fmt.Sprintf("all(%s)", e.Var.Name) }
func (e *BoolListAllExpr) fieldDetails() string { return e.Var.fieldDetails() }

type BoolListAnyExpr struct {
	Var *VarReference
}

func NewBoolListAnyExpr(v *VarReference) *BoolListAnyExpr {
	checkListOf(v, &BoolType{}, "any")
	return &BoolListAnyExpr{Var: v}
}

func (e *BoolListAnyExpr) ExprType() ExprType   { return &BoolType{} }
func (e *BoolListAnyExpr) String() string       { return fmt.Sprintf("any(%s)", e.Var.Name) }
func (e *BoolListAnyExpr) fieldDetails() string { return e.Var.fieldDetails() }

var intComparisonOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}

type IntComparisonExpr struct {
	Lhs *VarReference
	Rhs *VarReference
	Op  string
}

func NewIntComparisonExpr(lhs, rhs *VarReference, op string) *IntComparisonExpr {
	invariant.Check(SameType(lhs.ExprType(), &IntType{}), "comparison lhs must be int, got %s", lhs.ExprType())
	invariant.Check(SameType(rhs.ExprType(), &IntType{}), "comparison rhs must be int, got %s", rhs.ExprType())
	invariant.Check(intComparisonOps[op], "invalid int comparison op %q", op)
	return &IntComparisonExpr{Lhs: lhs, Rhs: rhs, Op: op}
}

func (e *IntComparisonExpr) ExprType() ExprType { return &BoolType{} }
func (e *IntComparisonExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.Lhs.Name, e.Op, e.Rhs.Name)
}
func (e *IntComparisonExpr) fieldDetails() string {
	return fmt.Sprintf("(lhs: %s; rhs: %s)", e.Lhs.fieldDetails(), e.Rhs.fieldDetails())
}

// The '//' op is floor division.
var intBinaryOps = map[string]bool{"+": true, "-": true, "*": true, "//": true, "%": true}

type IntBinaryOpExpr struct {
	Lhs *VarReference
	Rhs *VarReference
	Op  string
}

func NewIntBinaryOpExpr(lhs, rhs *VarReference, op string) *IntBinaryOpExpr {
	invariant.Check(SameType(lhs.ExprType(), &IntType{}), "binary op lhs must be int, got %s", lhs.ExprType())
	invariant.Check(SameType(rhs.ExprType(), &IntType{}), "binary op rhs must be int, got %s", rhs.ExprType())
	invariant.Check(intBinaryOps[op], "invalid int binary op %q", op)
	return &IntBinaryOpExpr{Lhs: lhs, Rhs: rhs, Op: op}
}

func (e *IntBinaryOpExpr) ExprType() ExprType { return &IntType{} }
func (e *IntBinaryOpExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.Lhs.Name, e.Op, e.Rhs.Name)
}
func (e *IntBinaryOpExpr) fieldDetails() string {
	return fmt.Sprintf("(lhs: %s; rhs: %s)", e.Lhs.fieldDetails(), e.Rhs.fieldDetails())
}

type ListConcatExpr struct {
	Lhs *VarReference
	Rhs *VarReference
	typ ExprType
}

func NewListConcatExpr(lhs, rhs *VarReference) *ListConcatExpr {
	_, ok := lhs.ExprType().(*ListType)
	invariant.Check(ok, "concat operand must be a list, got %s", lhs.ExprType())
	invariant.Check(SameType(lhs.ExprType(), rhs.ExprType()),
		"concat between %s and %s", lhs.ExprType(), rhs.ExprType())
	return &ListConcatExpr{Lhs: lhs, Rhs: rhs, typ: lhs.ExprType()}
}

func (e *ListConcatExpr) ExprType() ExprType { return e.typ }
func (e *ListConcatExpr) String() string {
	return fmt.Sprintf("%s + %s", e.Lhs.Name, e.Rhs.Name)
}
func (e *ListConcatExpr) fieldDetails() string {
	return fmt.Sprintf("(lhs: %s; rhs: %s)", e.Lhs.fieldDetails(), e.Rhs.fieldDetails())
}

type IsInstanceExpr struct {
	Var         *VarReference
	CheckedType *CustomType
}

func NewIsInstanceExpr(v *VarReference, checkedType *CustomType) *IsInstanceExpr {
	return &IsInstanceExpr{Var: v, CheckedType: checkedType}
}

func (e *IsInstanceExpr) ExprType() ExprType { return &BoolType{} }
func (e *IsInstanceExpr) String() string {
	return fmt.Sprintf("isinstance(%s, %s)", e.Var.Name, e.CheckedType)
}
func (e *IsInstanceExpr) fieldDetails() string { return "" }

// SafeUncheckedCast reinterprets an ErrorOrVoid value as a custom type
// without a runtime check. It is only built after an isinstance test
// has proven the cast safe.
type SafeUncheckedCast struct {
	Var *VarReference
	typ ExprType
}

func NewSafeUncheckedCast(v *VarReference, typ ExprType) *SafeUncheckedCast {
	_, sourceOK := v.ExprType().(*ErrorOrVoidType)
	invariant.Check(sourceOK, "unchecked cast source must be ErrorOrVoid, got %s", v.ExprType())
	_, targetOK := typ.(*CustomType)
	invariant.Check(targetOK, "unchecked cast target must be a custom type, got %s", typ)
	return &SafeUncheckedCast{Var: v, typ: typ}
}

func (e *SafeUncheckedCast) ExprType() ExprType   { return e.typ }
func (e *SafeUncheckedCast) String() string       { return fmt.Sprintf("%s  # type: %s", e.Var.Name, e.typ) }
func (e *SafeUncheckedCast) fieldDetails() string { return "" }

// ListComprehensionExpr maps a function call over a list. The loop var
// is bound only within the result expression.
type ListComprehensionExpr struct {
	ListVar        *VarReference
	LoopVar        *VarReference
	ResultElemExpr *FunctionCall
	typ            ExprType
}

func NewListComprehensionExpr(listVar, loopVar *VarReference, resultElemExpr *FunctionCall) *ListComprehensionExpr {
	listType, ok := listVar.ExprType().(*ListType)
	invariant.Check(ok, "comprehension source must be a list, got %s", listVar.ExprType())
	invariant.Check(SameType(listType.Elem, loopVar.ExprType()),
		"comprehension loop var type %s does not match list element type %s", loopVar.ExprType(), listType.Elem)
	return &ListComprehensionExpr{
		ListVar:        listVar,
		LoopVar:        loopVar,
		ResultElemExpr: resultElemExpr,
		typ:            NewListType(resultElemExpr.ExprType()),
	}
}

func (e *ListComprehensionExpr) ExprType() ExprType { return e.typ }
func (e *ListComprehensionExpr) String() string {
	return fmt.Sprintf("[%s for %s in %s]", e.ResultElemExpr, e.LoopVar.Name, e.ListVar.Name)
}
func (e *ListComprehensionExpr) fieldDetails() string { return "" }

func (e *VarReference) exprNode()              {}
func (e *MatchExpr) exprNode()                 {}
func (e *BoolLiteral) exprNode()               {}
func (e *IntLiteral) exprNode()                {}
func (e *AtomicTypeLiteral) exprNode()         {}
func (e *PointerTypeExpr) exprNode()           {}
func (e *ReferenceTypeExpr) exprNode()         {}
func (e *RvalueReferenceTypeExpr) exprNode()   {}
func (e *ConstTypeExpr) exprNode()             {}
func (e *ArrayTypeExpr) exprNode()             {}
func (e *FunctionTypeExpr) exprNode()          {}
func (e *ParameterPackExpansion) exprNode()    {}
func (e *TemplateInstantiationExpr) exprNode() {}
func (e *TemplateMemberAccessExpr) exprNode()  {}
func (e *ListExpr) exprNode()                  {}
func (e *AddToSetExpr) exprNode()              {}
func (e *SetToListExpr) exprNode()             {}
func (e *ListToSetExpr) exprNode()             {}
func (e *FunctionCall) exprNode()              {}
func (e *EqualityComparison) exprNode()        {}
func (e *SetEqualityComparison) exprNode()     {}
func (e *IsInListExpr) exprNode()              {}
func (e *AttributeAccessExpr) exprNode()       {}
func (e *NotExpr) exprNode()                   {}
func (e *UnaryMinusExpr) exprNode()            {}
func (e *IntListSumExpr) exprNode()            {}
func (e *BoolListAllExpr) exprNode()           {}
func (e *BoolListAnyExpr) exprNode()           {}
func (e *IntComparisonExpr) exprNode()         {}
func (e *IntBinaryOpExpr) exprNode()           {}
func (e *ListConcatExpr) exprNode()            {}
func (e *IsInstanceExpr) exprNode()            {}
func (e *SafeUncheckedCast) exprNode()         {}
func (e *ListComprehensionExpr) exprNode()     {}
