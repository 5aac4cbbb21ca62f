package hir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameTypeStructuralEquality(t *testing.T) {
	assert.True(t, SameType(&IntType{}, &IntType{}), "two int types should be equal")
	assert.False(t, SameType(&IntType{}, &BoolType{}), "int and bool should differ")

	assert.True(t, SameType(NewListType(&TypeType{}), NewListType(&TypeType{})),
		"list types with equal elements should be equal")
	assert.False(t, SameType(NewListType(&IntType{}), NewListType(&BoolType{})),
		"list types with different elements should differ")

	fn := &FunctionType{ArgTypes: []ExprType{&IntType{}}, Returns: &BoolType{}}
	same := &FunctionType{ArgTypes: []ExprType{&IntType{}}, Returns: &BoolType{}}
	different := &FunctionType{ArgTypes: []ExprType{&BoolType{}}, Returns: &BoolType{}}
	assert.True(t, SameType(fn, same), "structurally equal function types should be equal")
	assert.False(t, SameType(fn, different), "function types with different args should differ")
}

func TestSameTypeCustomTypes(t *testing.T) {
	a := &CustomType{Name: "Pair", ArgTypes: []CustomTypeArgDecl{{Name: "x", Type: &IntType{}}}}
	b := &CustomType{Name: "Pair", ArgTypes: []CustomTypeArgDecl{{Name: "x", Type: &IntType{}}}}
	c := &CustomType{Name: "Pair", ArgTypes: []CustomTypeArgDecl{{Name: "x", Type: &BoolType{}}}}
	assert.True(t, SameType(a, b), "custom types with equal fields should be equal")
	assert.False(t, SameType(a, c), "custom types with different field types should differ")
}

func TestNewListTypeRejectsFunctionElement(t *testing.T) {
	fn := &FunctionType{ArgTypes: []ExprType{&IntType{}}, Returns: &IntType{}}
	assert.Panics(t, func() { NewListType(fn) }, "function-typed list elements should be rejected")
}

func TestNewParameterPackTypeRestrictsElement(t *testing.T) {
	assert.NotPanics(t, func() { NewParameterPackType(&BoolType{}) })
	assert.NotPanics(t, func() { NewParameterPackType(&TypeType{}) })
	assert.Panics(t, func() { NewParameterPackType(NewListType(&IntType{})) },
		"list elements are not allowed in parameter packs")
}

func TestTypeStringRendering(t *testing.T) {
	assert.Equal(t, "List[Type]", NewListType(&TypeType{}).String())
	assert.Equal(t, "(int, bool) -> Type",
		(&FunctionType{ArgTypes: []ExprType{&IntType{}, &BoolType{}}, Returns: &TypeType{}}).String())
	assert.Equal(t, "ErrorOrVoid", (&ErrorOrVoidType{}).String())
}
