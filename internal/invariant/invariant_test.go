package invariant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPassesWhenTrue(t *testing.T) {
	assert.NotPanics(t, func() { Check(true, "unused") })
}

func TestCheckPanicsWithError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*Error)
		assert.True(t, ok, "the panic value identifies an internal-consistency violation")
		assert.Contains(t, err.Error(), "expected int, got bool")
	}()
	Check(false, "expected %s, got %s", "int", "bool")
}

func TestViolationfAlwaysPanics(t *testing.T) {
	assert.Panics(t, func() { Violationf("unreachable") })
}
