package cover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchString(t *testing.T) {
	b := NewBranch("module.py", 12, 14)
	assert.Equal(t, "module.py:12->14", b.String())
}
