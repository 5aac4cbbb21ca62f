package hir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPatternExtractionTypeMustMatch(t *testing.T) {
	rest := NewVarReference(NewListType(&TypeType{}), "rest", false, false)
	assert.NotPanics(t, func() {
		NewListPattern(&TypeType{}, []PatternExpr{NewAtomicTypeLiteralPattern("int")}, rest)
	})
	assert.Panics(t, func() { NewListPattern(&IntType{}, nil, rest) },
		"extraction var must be a list of the pattern's element type")
	assert.Panics(t, func() { NewListPattern(&IntType{}, nil, intVar("rest")) },
		"extraction var must be list-typed")
}

func TestTemplateInstantiationPatternExtractionMustBeTypeList(t *testing.T) {
	good := NewVarReferencePattern(NewListType(&TypeType{}), "rest", false, false)
	assert.NotPanics(t, func() {
		NewTemplateInstantiationPattern("std::tuple", nil, good)
	})
	bad := NewVarReferencePattern(&TypeType{}, "rest", false, false)
	assert.Panics(t, func() {
		NewTemplateInstantiationPattern("std::tuple", nil, bad)
	}, "a variadic tail captures a List[Type]")
}
