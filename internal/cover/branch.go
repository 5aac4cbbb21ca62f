package cover

import "fmt"

// Branch identifies a branch of the original source program, used to
// track which branches survive into the generated code. Compilation
// stages carry branches through unchanged and never inspect them.
type Branch struct {
	FileName   string
	SourceLine int
	DestLine   int
}

func NewBranch(fileName string, sourceLine int, destLine int) *Branch {
	return &Branch{
		FileName:   fileName,
		SourceLine: sourceLine,
		DestLine:   destLine,
	}
}

func (b *Branch) String() string {
	return fmt.Sprintf("%s:%d->%d", b.FileName, b.SourceLine, b.DestLine)
}
