package mir

import (
	"fmt"
	"sort"
	"strings"

	"templar/internal/cover"
	"templar/internal/invariant"
)

// Expr is a typed expression node, immutable once built. The New*
// constructors validate operand types and fix the node's type.
type Expr interface {
	ExprType() ExprType
	String() string
	exprNode()
}

type FunctionArgDecl struct {
	Type ExprType
	Name string
}

// VarReference is a by-name reference to a binding. SourceModule is set
// for names imported from another module.
type VarReference struct {
	Name                   string
	IsGlobalFunction       bool
	IsFunctionThatMayThrow bool
	SourceModule           string
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

func NewImportedVarReference(typ ExprType, name string, isGlobalFunction, isFunctionThatMayThrow bool, sourceModule string) *VarReference {
	v := NewVarReference(typ, name, isGlobalFunction, isFunctionThatMayThrow)
	v.SourceModule = sourceModule
	return v
}

func (e *VarReference) ExprType() ExprType { return e.typ }
func (e *VarReference) String() string     { return e.Name }

// MatchCase pairs one pattern per matched expression with a result
// expression. Patterns at this stage are plain expressions; the names
// in MatchedVarNames and MatchedVariadicVarNames are bound locally to
// the case.
type MatchCase struct {
	MatchedVarNames         map[string]bool
	MatchedVariadicVarNames map[string]bool
	TypePatterns            []Expr
	Expr                    Expr
	StartBranch             *cover.Branch
	EndBranch               *cover.Branch
}

func NewMatchCase(matchedVarNames, matchedVariadicVarNames map[string]bool, typePatterns []Expr, expr Expr, startBranch, endBranch *cover.Branch) *MatchCase {
	return &MatchCase{
		MatchedVarNames:         matchedVarNames,
		MatchedVariadicVarNames: matchedVariadicVarNames,
		TypePatterns:            typePatterns,
		Expr:                    expr,
		StartBranch:             startBranch,
		EndBranch:               endBranch,
	}
}

// IsMainDefinition reports whether this case is the catch-all: every
// pattern is a plain var reference naming one of the case's bound
// names. The earlier stage detects its catch-all by set equality over
// the pattern names instead; the two definitions are deliberately kept
// stage-specific.
func (c *MatchCase) IsMainDefinition() bool {
	for _, pattern := range c.TypePatterns {
		varRef, ok := pattern.(*VarReference)
		if !ok {
			return false
		}
		if !c.MatchedVarNames[varRef.Name] && !c.MatchedVariadicVarNames[varRef.Name] {
			return false
		}
	}
	return true
}

func (c *MatchCase) boundNames() []string {
	names := make([]string, 0, len(c.MatchedVarNames)+len(c.MatchedVariadicVarNames))
	for name := range c.MatchedVarNames {
		names = append(names, name)
	}
	for name := range c.MatchedVariadicVarNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type MatchExpr struct {
	MatchedExprs []Expr
	MatchCases   []*MatchCase
	typ          ExprType
}

func NewMatchExpr(matchedExprs []Expr, matchCases []*MatchCase) *MatchExpr {
	invariant.Check(len(matchedExprs) > 0, "match expr must match at least one expr")
	invariant.Check(len(matchCases) > 0, "match expr must have at least one case")
	resultType := matchCases[0].Expr.ExprType()
	mainDefinitions := 0
	for _, matchCase := range matchCases {
		invariant.Check(len(matchCase.TypePatterns) == len(matchedExprs),
			"match case has %d patterns, expected %d", len(matchCase.TypePatterns), len(matchedExprs))
		invariant.Check(SameType(matchCase.Expr.ExprType(), resultType),
			"match case type %s differs from %s", matchCase.Expr.ExprType(), resultType)
		if matchCase.IsMainDefinition() {
			mainDefinitions++
		}
	}
	invariant.Check(mainDefinitions <= 1, "match expr has %d main definitions", mainDefinitions)
	return &MatchExpr{MatchedExprs: matchedExprs, MatchCases: matchCases, typ: resultType}
}

func (e *MatchExpr) ExprType() ExprType { return e.typ }

func (e *MatchExpr) String() string {
	matched := make([]string, len(e.MatchedExprs))
	for i, m := range e.MatchedExprs {
		matched[i] = m.String()
	}
	cases := make([]string, len(e.MatchCases))
	for i, c := range e.MatchCases {
		patterns := make([]string, len(c.TypePatterns))
		for j, p := range c.TypePatterns {
			patterns[j] = p.String()
		}
		cases[i] = fmt.Sprintf("lambda %s: {%s: %s}",
			strings.Join(c.boundNames(), ", "), strings.Join(patterns, ", "), c.Expr)
	}
	return fmt.Sprintf("match(%s)(%s)", strings.Join(matched, ", "), strings.Join(cases, ", "))
}

type BoolLiteral struct {
	Value bool
}

func NewBoolLiteral(value bool) *BoolLiteral {
	return &BoolLiteral{Value: value}
}

func (e *BoolLiteral) ExprType() ExprType { return &BoolType{} }
func (e *BoolLiteral) String() string     { return fmt.Sprintf("%t", e.Value) }

type IntLiteral struct {
	Value int64
}

func NewIntLiteral(value int64) *IntLiteral {
	return &IntLiteral{Value: value}
}

func (e *IntLiteral) ExprType() ExprType { return &IntType{} }
func (e *IntLiteral) String() string     { return fmt.Sprintf("%d", e.Value) }

// AtomicTypeLiteral names a non-template target-language type.
type AtomicTypeLiteral struct {
	CppType string
}

func NewAtomicTypeLiteral(cppType string) *AtomicTypeLiteral {
	return &AtomicTypeLiteral{CppType: cppType}
}

func (e *AtomicTypeLiteral) ExprType() ExprType { return &TypeType{} }
func (e *AtomicTypeLiteral) String() string     { return fmt.Sprintf("Type('%s')", e.CppType) }

func checkTypeOperand(e Expr, what string) {
	invariant.Check(SameType(e.ExprType(), &TypeType{}), "%s operand must be Type, got %s", what, e.ExprType())
}

type PointerTypeExpr struct {
	TypeExpr Expr
}

func NewPointerTypeExpr(typeExpr Expr) *PointerTypeExpr {
	checkTypeOperand(typeExpr, "pointer type")
	return &PointerTypeExpr{TypeExpr: typeExpr}
}

func (e *PointerTypeExpr) ExprType() ExprType { return &TypeType{} }
func (e *PointerTypeExpr) String() string     { return fmt.Sprintf("Type.pointer(%s)", e.TypeExpr) }

type ReferenceTypeExpr struct {
	TypeExpr Expr
}

func NewReferenceTypeExpr(typeExpr Expr) *ReferenceTypeExpr {
	checkTypeOperand(typeExpr, "reference type")
	return &ReferenceTypeExpr{TypeExpr: typeExpr}
}

func (e *ReferenceTypeExpr) ExprType() ExprType { return &TypeType{} }
func (e *ReferenceTypeExpr) String() string     { return fmt.Sprintf("Type.reference(%s)", e.TypeExpr) }

type RvalueReferenceTypeExpr struct {
	TypeExpr Expr
}

func NewRvalueReferenceTypeExpr(typeExpr Expr) *RvalueReferenceTypeExpr {
	checkTypeOperand(typeExpr, "rvalue reference type")
	return &RvalueReferenceTypeExpr{TypeExpr: typeExpr}
}

func (e *RvalueReferenceTypeExpr) ExprType() ExprType { return &TypeType{} }
func (e *RvalueReferenceTypeExpr) String() string {
	return fmt.Sprintf("Type.rvalue_reference(%s)", e.TypeExpr)
}

type ConstTypeExpr struct {
	TypeExpr Expr
}

func NewConstTypeExpr(typeExpr Expr) *ConstTypeExpr {
	checkTypeOperand(typeExpr, "const type")
	return &ConstTypeExpr{TypeExpr: typeExpr}
}

func (e *ConstTypeExpr) ExprType() ExprType { return &TypeType{} }
func (e *ConstTypeExpr) String() string     { return fmt.Sprintf("Type.const(%s)", e.TypeExpr) }

type ArrayTypeExpr struct {
	TypeExpr Expr
}

func NewArrayTypeExpr(typeExpr Expr) *ArrayTypeExpr {
	checkTypeOperand(typeExpr, "array type")
	return &ArrayTypeExpr{TypeExpr: typeExpr}
}

func (e *ArrayTypeExpr) ExprType() ExprType { return &TypeType{} }
func (e *ArrayTypeExpr) String() string     { return fmt.Sprintf("Type.array(%s)", e.TypeExpr) }

type FunctionTypeExpr struct {
	ReturnTypeExpr Expr
	ArgListExpr    Expr
}

func NewFunctionTypeExpr(returnTypeExpr, argListExpr Expr) *FunctionTypeExpr {
	checkTypeOperand(returnTypeExpr, "function type return")
	invariant.Check(isTypeList(argListExpr.ExprType()),
		"function type arg list must be List[Type], got %s", argListExpr.ExprType())
	return &FunctionTypeExpr{ReturnTypeExpr: returnTypeExpr, ArgListExpr: argListExpr}
}

func (e *FunctionTypeExpr) ExprType() ExprType { return &TypeType{} }
func (e *FunctionTypeExpr) String() string {
	return fmt.Sprintf("Type.function(%s, %s)", e.ReturnTypeExpr, e.ArgListExpr)
}

// TemplateInstantiationExpr applies a named template to a list of type
// arguments, e.g. ('std::vector', [Type('int')]) is 'std::vector<int>'.
type TemplateInstantiationExpr struct {
	TemplateCppType string
	ArgListExpr     Expr
}

func NewTemplateInstantiationExpr(templateCppType string, argListExpr Expr) *TemplateInstantiationExpr {
	invariant.Check(isTypeList(argListExpr.ExprType()),
		"template instantiation arg list must be List[Type], got %s", argListExpr.ExprType())
	return &TemplateInstantiationExpr{TemplateCppType: templateCppType, ArgListExpr: argListExpr}
}

func (e *TemplateInstantiationExpr) ExprType() ExprType { return &TypeType{} }
func (e *TemplateInstantiationExpr) String() string {
	return fmt.Sprintf("Type.template_instantiation('%s', %s)", e.TemplateCppType, e.ArgListExpr)
}

type TemplateMemberAccessExpr struct {
	ClassTypeExpr Expr
	MemberName    string
	ArgListExpr   Expr
}

func NewTemplateMemberAccessExpr(classTypeExpr Expr, memberName string, argListExpr Expr) *TemplateMemberAccessExpr {
	checkTypeOperand(classTypeExpr, "template member access class")
	invariant.Check(isTypeList(argListExpr.ExprType()),
		"template member access arg list must be List[Type], got %s", argListExpr.ExprType())
	return &TemplateMemberAccessExpr{ClassTypeExpr: classTypeExpr, MemberName: memberName, ArgListExpr: argListExpr}
}

func (e *TemplateMemberAccessExpr) ExprType() ExprType { return &TypeType{} }
func (e *TemplateMemberAccessExpr) String() string {
	return fmt.Sprintf("Type.template_member(%s, '%s', %s)", e.ClassTypeExpr, e.MemberName, e.ArgListExpr)
}

// ListExpr builds a list; ListExtractionExpr, when set, names the var
// the remaining elements are extracted into when the list is used as a
// pattern.
type ListExpr struct {
	ElemExprs          []Expr
	ListExtractionExpr *VarReference
	typ                ExprType
}

func NewListExpr(elemType ExprType, elemExprs []Expr, listExtractionExpr *VarReference) *ListExpr {
	return &ListExpr{ElemExprs: elemExprs, ListExtractionExpr: listExtractionExpr, typ: NewListType(elemType)}
}

func (e *ListExpr) ExprType() ExprType { return e.typ }
func (e *ListExpr) ElemType() ExprType { return e.typ.(*ListType).Elem }
func (e *ListExpr) String() string {
	elems := make([]string, len(e.ElemExprs))
	for i, elem := range e.ElemExprs {
		elems[i] = elem.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(elems, ", "))
}

type SetExpr struct {
	ElemExprs []Expr
	typ       ExprType
}

func NewSetExpr(elemType ExprType, elemExprs []Expr) *SetExpr {
	return &SetExpr{ElemExprs: elemExprs, typ: NewSetType(elemType)}
}

func (e *SetExpr) ExprType() ExprType { return e.typ }
func (e *SetExpr) ElemType() ExprType { return e.typ.(*SetType).Elem }
func (e *SetExpr) String() string {
	elems := make([]string, len(e.ElemExprs))
	for i, elem := range e.ElemExprs {
		elems[i] = elem.String()
	}
	return fmt.Sprintf("{%s}", strings.Join(elems, ", "))
}

func checkListOf(e Expr, elem ExprType, what string) {
	listType, ok := e.ExprType().(*ListType)
	invariant.Check(ok, "%s operand must be a list, got %s", what, e.ExprType())
	invariant.Check(SameType(listType.Elem, elem), "%s operand must be List[%s], got %s", what, elem, e.ExprType())
}

func checkSetOf(e Expr, elem ExprType, what string) {
	setType, ok := e.ExprType().(*SetType)
	invariant.Check(ok, "%s operand must be a set, got %s", what, e.ExprType())
	invariant.Check(SameType(setType.Elem, elem), "%s operand must be Set[%s], got %s", what, elem, e.ExprType())
}

type IntListSumExpr struct {
	ListExpr Expr
}

func NewIntListSumExpr(listExpr Expr) *IntListSumExpr {
	checkListOf(listExpr, &IntType{}, "sum")
	return &IntListSumExpr{ListExpr: listExpr}
}

func (e *IntListSumExpr) ExprType() ExprType { return &IntType{} }
func (e *IntListSumExpr) String() string     { return fmt.Sprintf("sum(%s)", e.ListExpr) }

type IntSetSumExpr struct {
	SetExpr Expr
}

func NewIntSetSumExpr(setExpr Expr) *IntSetSumExpr {
	checkSetOf(setExpr, &IntType{}, "sum")
	return &IntSetSumExpr{SetExpr: setExpr}
}

func (e *IntSetSumExpr) ExprType() ExprType { return &IntType{} }
func (e *IntSetSumExpr) String() string     { return fmt.Sprintf("sum(%s)", e.SetExpr) }

type BoolListAllExpr struct {
	ListExpr Expr
}

func NewBoolListAllExpr(listExpr Expr) *BoolListAllExpr {
	checkListOf(listExpr, &BoolType{}, "all")
	return &BoolListAllExpr{ListExpr: listExpr}
}

func (e *BoolListAllExpr) ExprType() ExprType { return &BoolType{} }
func (e *BoolListAllExpr) String() string     { return fmt.Sprintf("all(%s)", e.ListExpr) }

type BoolSetAllExpr struct {
	SetExpr Expr
}

func NewBoolSetAllExpr(setExpr Expr) *BoolSetAllExpr {
	checkSetOf(setExpr, &BoolType{}, "all")
	return &BoolSetAllExpr{SetExpr: setExpr}
}

func (e *BoolSetAllExpr) ExprType() ExprType { return &BoolType{} }
func (e *BoolSetAllExpr) String() string     { return fmt.Sprintf("all(%s)", e.SetExpr) }

type BoolListAnyExpr struct {
	ListExpr Expr
}

func NewBoolListAnyExpr(listExpr Expr) *BoolListAnyExpr {
	checkListOf(listExpr, &BoolType{}, "any")
	return &BoolListAnyExpr{ListExpr: listExpr}
}

func (e *BoolListAnyExpr) ExprType() ExprType { return &BoolType{} }
func (e *BoolListAnyExpr) String() string     { return fmt.Sprintf("any(%s)", e.ListExpr) }

type BoolSetAnyExpr struct {
	SetExpr Expr
}

func NewBoolSetAnyExpr(setExpr Expr) *BoolSetAnyExpr {
	checkSetOf(setExpr, &BoolType{}, "any")
	return &BoolSetAnyExpr{SetExpr: setExpr}
}

func (e *BoolSetAnyExpr) ExprType() ExprType { return &BoolType{} }
func (e *BoolSetAnyExpr) String() string     { return fmt.Sprintf("any(%s)", e.SetExpr) }

// FunctionCall applies a function-typed expression. MayThrow marks
// calls whose failure propagates to the caller.
type FunctionCall struct {
	FunExpr  Expr
	Args     []Expr
	MayThrow bool
	typ      ExprType
}

func NewFunctionCall(funExpr Expr, args []Expr, mayThrow bool) *FunctionCall {
	funType, ok := funExpr.ExprType().(*FunctionType)
	invariant.Check(ok, "call target must have a function type, got %s", funExpr.ExprType())
	invariant.Check(len(funType.ArgTypes) == len(args),
		"call has %d args, expected %d", len(args), len(funType.ArgTypes))
	return &FunctionCall{FunExpr: funExpr, Args: args, MayThrow: mayThrow, typ: funType.Returns}
}

func (e *FunctionCall) ExprType() ExprType { return e.typ }
func (e *FunctionCall) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.FunExpr, strings.Join(args, ", "))
}

// EqualityComparison requires both operands to share a type; comparing
// functions is not allowed.
type EqualityComparison struct {
	Lhs Expr
	Rhs Expr
}

func NewEqualityComparison(lhs, rhs Expr) *EqualityComparison {
	invariant.Check(SameType(lhs.ExprType(), rhs.ExprType()),
		"equality comparison between %s and %s", lhs.ExprType(), rhs.ExprType())
	_, lhsIsFunction := lhs.ExprType().(*FunctionType)
	invariant.Check(!lhsIsFunction, "cannot compare function-typed values")
	return &EqualityComparison{Lhs: lhs, Rhs: rhs}
}

func (e *EqualityComparison) ExprType() ExprType { return &BoolType{} }
func (e *EqualityComparison) String() string     { return fmt.Sprintf("%s == %s", e.Lhs, e.Rhs) }

// InExpr tests membership in a list or a set.
type InExpr struct {
	Lhs Expr
	Rhs Expr
}

func NewInExpr(lhs, rhs Expr) *InExpr {
	var elem ExprType
	switch rhsType := rhs.ExprType().(type) {
	case *ListType:
		elem = rhsType.Elem
	case *SetType:
		elem = rhsType.Elem
	default:
		invariant.Violationf("membership test target must be a list or set, got %s", rhs.ExprType())
	}
	invariant.Check(SameType(lhs.ExprType(), elem),
		"membership test type %s does not match element type %s", lhs.ExprType(), elem)
	_, lhsIsFunction := lhs.ExprType().(*FunctionType)
	invariant.Check(!lhsIsFunction, "cannot test membership of function-typed values")
	return &InExpr{Lhs: lhs, Rhs: rhs}
}

func (e *InExpr) ExprType() ExprType { return &BoolType{} }
func (e *InExpr) String() string     { return fmt.Sprintf("%s in %s", e.Lhs, e.Rhs) }

// AttributeAccessExpr reads a named attribute off a Type or a custom
// type value; the attribute's type is declared by the caller.
type AttributeAccessExpr struct {
	Expr          Expr
	AttributeName string
	typ           ExprType
}

func NewAttributeAccessExpr(expr Expr, attributeName string, typ ExprType) *AttributeAccessExpr {
	switch expr.ExprType().(type) {
	case *TypeType, *CustomType:
	default:
		invariant.Violationf("attribute access base must be Type or a custom type, got %s", expr.ExprType())
	}
	return &AttributeAccessExpr{Expr: expr, AttributeName: attributeName, typ: typ}
}

func (e *AttributeAccessExpr) ExprType() ExprType { return e.typ }
func (e *AttributeAccessExpr) String() string     { return fmt.Sprintf("%s.%s", e.Expr, e.AttributeName) }

func checkBoolOperand(e Expr, what string) {
	invariant.Check(SameType(e.ExprType(), &BoolType{}), "%s operand must be bool, got %s", what, e.ExprType())
}

func checkIntOperand(e Expr, what string) {
	invariant.Check(SameType(e.ExprType(), &IntType{}), "%s operand must be int, got %s", what, e.ExprType())
}

// AndExpr is short-circuit conjunction, a primitive node at this stage.
type AndExpr struct {
	Lhs Expr
	Rhs Expr
}

func NewAndExpr(lhs, rhs Expr) *AndExpr {
	checkBoolOperand(lhs, "and lhs")
	checkBoolOperand(rhs, "and rhs")
	return &AndExpr{Lhs: lhs, Rhs: rhs}
}

func (e *AndExpr) ExprType() ExprType { return &BoolType{} }
func (e *AndExpr) String() string     { return fmt.Sprintf("%s and %s", e.Lhs, e.Rhs) }

// OrExpr is short-circuit disjunction.
type OrExpr struct {
	Lhs Expr
	Rhs Expr
}

func NewOrExpr(lhs, rhs Expr) *OrExpr {
	checkBoolOperand(lhs, "or lhs")
	checkBoolOperand(rhs, "or rhs")
	return &OrExpr{Lhs: lhs, Rhs: rhs}
}

func (e *OrExpr) ExprType() ExprType { return &BoolType{} }
func (e *OrExpr) String() string     { return fmt.Sprintf("%s or %s", e.Lhs, e.Rhs) }

type NotExpr struct {
	Expr Expr
}

func NewNotExpr(expr Expr) *NotExpr {
	checkBoolOperand(expr, "not")
	return &NotExpr{Expr: expr}
}

func (e *NotExpr) ExprType() ExprType { return &BoolType{} }
func (e *NotExpr) String() string     { return fmt.Sprintf("not %s", e.Expr) }

var intComparisonOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}

type IntComparisonExpr struct {
	Lhs Expr
	Rhs Expr
	Op  string
}

func NewIntComparisonExpr(lhs, rhs Expr, op string) *IntComparisonExpr {
	checkIntOperand(lhs, "comparison lhs")
	checkIntOperand(rhs, "comparison rhs")
	invariant.Check(intComparisonOps[op], "invalid int comparison op %q", op)
	return &IntComparisonExpr{Lhs: lhs, Rhs: rhs, Op: op}
}

func (e *IntComparisonExpr) ExprType() ExprType { return &BoolType{} }
func (e *IntComparisonExpr) String() string     { return fmt.Sprintf("%s %s %s", e.Lhs, e.Op, e.Rhs) }

type IntUnaryMinusExpr struct {
	Expr Expr
}

func NewIntUnaryMinusExpr(expr Expr) *IntUnaryMinusExpr {
	checkIntOperand(expr, "unary minus")
	return &IntUnaryMinusExpr{Expr: expr}
}

func (e *IntUnaryMinusExpr) ExprType() ExprType { return &IntType{} }
func (e *IntUnaryMinusExpr) String() string     { return fmt.Sprintf("-%s", e.Expr) }

// The '//' op is floor division.
var intBinaryOps = map[string]bool{"+": true, "-": true, "*": true, "//": true, "%": true}

type IntBinaryOpExpr struct {
	Lhs Expr
	Rhs Expr
	Op  string
}

func NewIntBinaryOpExpr(lhs, rhs Expr, op string) *IntBinaryOpExpr {
	checkIntOperand(lhs, "binary op lhs")
	checkIntOperand(rhs, "binary op rhs")
	invariant.Check(intBinaryOps[op], "invalid int binary op %q", op)
	return &IntBinaryOpExpr{Lhs: lhs, Rhs: rhs, Op: op}
}

func (e *IntBinaryOpExpr) ExprType() ExprType { return &IntType{} }
func (e *IntBinaryOpExpr) String() string     { return fmt.Sprintf("%s %s %s", e.Lhs, e.Op, e.Rhs) }

type ListConcatExpr struct {
	Lhs Expr
	Rhs Expr
	typ ExprType
}

func NewListConcatExpr(lhs, rhs Expr) *ListConcatExpr {
	_, ok := lhs.ExprType().(*ListType)
	invariant.Check(ok, "concat operand must be a list, got %s", lhs.ExprType())
	invariant.Check(SameType(lhs.ExprType(), rhs.ExprType()),
		"concat between %s and %s", lhs.ExprType(), rhs.ExprType())
	return &ListConcatExpr{Lhs: lhs, Rhs: rhs, typ: lhs.ExprType()}
}

func (e *ListConcatExpr) ExprType() ExprType { return e.typ }
func (e *ListConcatExpr) String() string     { return fmt.Sprintf("%s + %s", e.Lhs, e.Rhs) }

// ListComprehension maps an expression over a list. The loop var is
// bound only within the result expression. The branches mark the loop
// body entry and exit in the original source, carried for coverage.
type ListComprehension struct {
	ListExpr            Expr
	LoopVar             *VarReference
	ResultElemExpr      Expr
	LoopBodyStartBranch *cover.Branch
	LoopExitBranch      *cover.Branch
	typ                 ExprType
}

func NewListComprehension(listExpr Expr, loopVar *VarReference, resultElemExpr Expr, loopBodyStartBranch, loopExitBranch *cover.Branch) *ListComprehension {
	listType, ok := listExpr.ExprType().(*ListType)
	invariant.Check(ok, "comprehension source must be a list, got %s", listExpr.ExprType())
	invariant.Check(SameType(listType.Elem, loopVar.ExprType()),
		"comprehension loop var type %s does not match list element type %s", loopVar.ExprType(), listType.Elem)
	return &ListComprehension{
		ListExpr:            listExpr,
		LoopVar:             loopVar,
		ResultElemExpr:      resultElemExpr,
		LoopBodyStartBranch: loopBodyStartBranch,
		LoopExitBranch:      loopExitBranch,
		typ:                 NewListType(resultElemExpr.ExprType()),
	}
}

func (e *ListComprehension) ExprType() ExprType { return e.typ }
func (e *ListComprehension) String() string {
	return fmt.Sprintf("[%s for %s in %s]", e.ResultElemExpr, e.LoopVar.Name, e.ListExpr)
}

type SetComprehension struct {
	SetExpr             Expr
	LoopVar             *VarReference
	ResultElemExpr      Expr
	LoopBodyStartBranch *cover.Branch
	LoopExitBranch      *cover.Branch
	typ                 ExprType
}

func NewSetComprehension(setExpr Expr, loopVar *VarReference, resultElemExpr Expr, loopBodyStartBranch, loopExitBranch *cover.Branch) *SetComprehension {
	setType, ok := setExpr.ExprType().(*SetType)
	invariant.Check(ok, "comprehension source must be a set, got %s", setExpr.ExprType())
	invariant.Check(SameType(setType.Elem, loopVar.ExprType()),
		"comprehension loop var type %s does not match set element type %s", loopVar.ExprType(), setType.Elem)
	return &SetComprehension{
		SetExpr:             setExpr,
		LoopVar:             loopVar,
		ResultElemExpr:      resultElemExpr,
		LoopBodyStartBranch: loopBodyStartBranch,
		LoopExitBranch:      loopExitBranch,
		typ:                 NewSetType(resultElemExpr.ExprType()),
	}
}

func (e *SetComprehension) ExprType() ExprType { return e.typ }
func (e *SetComprehension) String() string {
	return fmt.Sprintf("{%s for %s in %s}", e.ResultElemExpr, e.LoopVar.Name, e.SetExpr)
}

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
func (e *TemplateInstantiationExpr) exprNode() {}
func (e *TemplateMemberAccessExpr) exprNode()  {}
func (e *ListExpr) exprNode()                  {}
func (e *SetExpr) exprNode()                   {}
func (e *IntListSumExpr) exprNode()            {}
func (e *IntSetSumExpr) exprNode()             {}
func (e *BoolListAllExpr) exprNode()           {}
func (e *BoolSetAllExpr) exprNode()            {}
func (e *BoolListAnyExpr) exprNode()           {}
func (e *BoolSetAnyExpr) exprNode()            {}
func (e *FunctionCall) exprNode()              {}
func (e *EqualityComparison) exprNode()        {}
func (e *InExpr) exprNode()                    {}
func (e *AttributeAccessExpr) exprNode()       {}
func (e *AndExpr) exprNode()                   {}
func (e *OrExpr) exprNode()                    {}
func (e *NotExpr) exprNode()                   {}
func (e *IntComparisonExpr) exprNode()         {}
func (e *IntUnaryMinusExpr) exprNode()         {}
func (e *IntBinaryOpExpr) exprNode()           {}
func (e *ListConcatExpr) exprNode()            {}
func (e *ListComprehension) exprNode()         {}
func (e *SetComprehension) exprNode()          {}
