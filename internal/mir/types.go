package mir

import (
	"fmt"
	"strings"

	"templar/internal/invariant"
)

// ExprType is the closed set of types an expression can have in this
// stage. Compared to the earlier stage this one has real sets but no
// error-or-void side channel and no parameter packs.
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
// type.
type TypeType struct{}

type FunctionType struct {
	ArgTypes []ExprType
	Returns  ExprType
}

type ListType struct {
	Elem ExprType
}

type SetType struct {
	Elem ExprType
}

type CustomTypeArgDecl struct {
	Name string
	Type ExprType
}

// CustomType is a named record type. Exception classes additionally
// carry the message raised when they escape; the message is present
// exactly when IsExceptionClass is set.
type CustomType struct {
	Name             string
	ArgTypes         []CustomTypeArgDecl
	IsExceptionClass bool
	ExceptionMessage string
}

func (t *BoolType) exprType()     {}
func (t *BottomType) exprType()   {}
func (t *IntType) exprType()      {}
func (t *TypeType) exprType()     {}
func (t *FunctionType) exprType() {}
func (t *ListType) exprType()     {}
func (t *SetType) exprType()      {}
func (t *CustomType) exprType()   {}

// NewListType rejects Function element types: functions are not
// first-class container elements.
func NewListType(elem ExprType) *ListType {
	if _, ok := elem.(*FunctionType); ok {
		invariant.Violationf("list element type cannot be a function type")
	}
	return &ListType{Elem: elem}
}

// NewSetType rejects Function element types, like NewListType.
func NewSetType(elem ExprType) *SetType {
	if _, ok := elem.(*FunctionType); ok {
		invariant.Violationf("set element type cannot be a function type")
	}
	return &SetType{Elem: elem}
}

func NewCustomType(name string, argTypes []CustomTypeArgDecl, isExceptionClass bool, exceptionMessage string) *CustomType {
	invariant.Check((exceptionMessage != "") == isExceptionClass,
		"custom type %s: exception message must be present exactly for exception classes", name)
	return &CustomType{
		Name:             name,
		ArgTypes:         argTypes,
		IsExceptionClass: isExceptionClass,
		ExceptionMessage: exceptionMessage,
	}
}

func (t *BoolType) String() string   { return "bool" }
func (t *BottomType) String() string { return "Bottom" }
func (t *IntType) String() string    { return "int" }
func (t *TypeType) String() string   { return "Type" }

func (t *FunctionType) String() string {
	args := make([]string, len(t.ArgTypes))
	for i, arg := range t.ArgTypes {
		args[i] = arg.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(args, ", "), t.Returns)
}

func (t *ListType) String() string { return fmt.Sprintf("List[%s]", t.Elem) }
func (t *SetType) String() string  { return fmt.Sprintf("Set[%s]", t.Elem) }
func (t *CustomType) String() string {
	return t.Name
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
	case *SetType:
		bs, ok := b.(*SetType)
		return ok && SameType(a.Elem, bs.Elem)
	case *CustomType:
		bc, ok := b.(*CustomType)
		if !ok || a.Name != bc.Name || len(a.ArgTypes) != len(bc.ArgTypes) ||
			a.IsExceptionClass != bc.IsExceptionClass || a.ExceptionMessage != bc.ExceptionMessage {
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
