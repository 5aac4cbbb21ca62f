package hir

import (
	"fmt"
	"strings"

	"templar/internal/invariant"
)

// ExprType is the closed set of types an expression can have in this
// stage. Equality is structural, via SameType.
type ExprType interface {
	String() string
	exprType()
}

type BoolType struct{}

// BottomType has no values. It is the return type of functions that
// never return.
type BottomType struct{}

type IntType struct{}

// TypeType is the type of expressions that evaluate to a target-language
// type, e.g. a type literal or a template instantiation.
type TypeType struct{}

// ErrorOrVoidType is the type of the error side channel produced by
// fallible operations: either an error value or nothing.
type ErrorOrVoidType struct{}

type FunctionType struct {
	ArgTypes []ExprType
	Returns  ExprType
}

type ListType struct {
	Elem ExprType
}

// ParameterPackType is the type of a variadic group of values, all of
// the same element type.
type ParameterPackType struct {
	Elem ExprType
}

type CustomTypeArgDecl struct {
	Name string
	Type ExprType
}

// CustomType is a named record type with ordered, typed fields.
type CustomType struct {
	Name     string
	ArgTypes []CustomTypeArgDecl
}

func (t *BoolType) exprType()          {}
func (t *BottomType) exprType()        {}
func (t *IntType) exprType()           {}
func (t *TypeType) exprType()          {}
func (t *ErrorOrVoidType) exprType()   {}
func (t *FunctionType) exprType()      {}
func (t *ListType) exprType()          {}
func (t *ParameterPackType) exprType() {}
func (t *CustomType) exprType()        {}

// NewListType builds a list type. Functions are not first-class
// container elements, so a Function element type is rejected.
func NewListType(elem ExprType) *ListType {
	if _, ok := elem.(*FunctionType); ok {
		invariant.Violationf("list element type cannot be a function type")
	}
	return &ListType{Elem: elem}
}

// NewParameterPackType builds a parameter pack type. The element type
// is restricted to Bool, Int, Type and ErrorOrVoid: no nested packs,
// no functions, no Bottom.
func NewParameterPackType(elem ExprType) *ParameterPackType {
	switch elem.(type) {
	case *BoolType, *IntType, *TypeType, *ErrorOrVoidType:
		return &ParameterPackType{Elem: elem}
	default:
		invariant.Violationf("invalid parameter pack element type: %s", elem)
		return nil
	}
}

func (t *BoolType) String() string        { return "bool" }
func (t *BottomType) String() string      { return "Bottom" }
func (t *IntType) String() string         { return "int" }
func (t *TypeType) String() string        { return "Type" }
func (t *ErrorOrVoidType) String() string { return "ErrorOrVoid" }

func (t *FunctionType) String() string {
	args := make([]string, len(t.ArgTypes))
	for i, arg := range t.ArgTypes {
		args[i] = arg.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(args, ", "), t.Returns)
}

func (t *ListType) String() string {
	return fmt.Sprintf("List[%s]", t.Elem)
}

func (t *ParameterPackType) String() string {
	return fmt.Sprintf("Pack[%s]", t.Elem)
}

func (t *CustomType) String() string {
	return t.Name
}

func (d CustomTypeArgDecl) String() string {
	return fmt.Sprintf("%s: %s", d.Name, d.Type)
}

// SameType reports structural equality of two expression types.
func SameType(a, b ExprType) bool {
	switch a := a.(type) {
	case *BoolType:
		_, ok := b.(*BoolType)
		return ok
	case *BottomType:
		_, ok := b.(*BottomType)
		return ok
	case *IntType:
		_, ok := b.(*IntType)
		return ok
	case *TypeType:
		_, ok := b.(*TypeType)
		return ok
	case *ErrorOrVoidType:
		_, ok := b.(*ErrorOrVoidType)
		return ok
	case *FunctionType:
		bf, ok := b.(*FunctionType)
		if !ok || len(a.ArgTypes) != len(bf.ArgTypes) {
			return false
		}
		for i := range a.ArgTypes {
			if !SameType(a.ArgTypes[i], bf.ArgTypes[i]) {
				return false
			}
		}
		return SameType(a.Returns, bf.Returns)
	case *ListType:
		bl, ok := b.(*ListType)
		return ok && SameType(a.Elem, bl.Elem)
	case *ParameterPackType:
		bp, ok := b.(*ParameterPackType)
		return ok && SameType(a.Elem, bp.Elem)
	case *CustomType:
		bc, ok := b.(*CustomType)
		if !ok || a.Name != bc.Name || len(a.ArgTypes) != len(bc.ArgTypes) {
			return false
		}
		for i := range a.ArgTypes {
			if a.ArgTypes[i].Name != bc.ArgTypes[i].Name || !SameType(a.ArgTypes[i].Type, bc.ArgTypes[i].Type) {
				return false
			}
		}
		return true
	default:
		invariant.Violationf("unexpected expression type: %T", a)
		return false
	}
}

func isTypeList(t ExprType) bool {
	lt, ok := t.(*ListType)
	if !ok {
		return false
	}
	_, ok = lt.Elem.(*TypeType)
	return ok
}
