package hir

import (
	"fmt"
	"strings"

	"templar/internal/invariant"
)

type FunctionDefn struct {
	Name        string
	Description string
	Args        []FunctionArgDecl
	Body        []Stmt
	ReturnType  ExprType
}

func NewFunctionDefn(name, description string, args []FunctionArgDecl, body []Stmt, returnType ExprType) *FunctionDefn {
	invariant.Check(len(body) > 0, "function %s must have a non-empty body", name)
	return &FunctionDefn{
		Name:        name,
		Description: description,
		Args:        args,
		Body:        body,
		ReturnType:  returnType,
	}
}

func (d *FunctionDefn) write(w *Writer, verbose bool) {
	if d.Description != "" {
		w.Write("# ")
		w.Writeln(d.Description)
	}
	args := make([]string, len(d.Args))
	for i, arg := range d.Args {
		args[i] = fmt.Sprintf("%s: %s", arg.Name, arg.Type)
	}
	w.Writeln(fmt.Sprintf("def %s(%s) -> %s:", d.Name, strings.Join(args, ", "), d.ReturnType))
	w.Indented(func() {
		for _, stmt := range d.Body {
			stmt.write(w, verbose)
		}
	})
	w.Writeln("")
}

type ErrorTypeAndMessage struct {
	Type    *CustomType
	Message string
}

// CheckIfErrorDefn declares the builtin error check over the module's
// error types.
type CheckIfErrorDefn struct {
	ErrorTypesAndMessages []ErrorTypeAndMessage
}

func NewCheckIfErrorDefn(errorTypesAndMessages []ErrorTypeAndMessage) *CheckIfErrorDefn {
	return &CheckIfErrorDefn{ErrorTypesAndMessages: errorTypesAndMessages}
}

func (d *CheckIfErrorDefn) write(w *Writer, verbose bool) {
	w.Writeln("def check_if_error(x):")
	w.Indented(func() {
		for _, entry := range d.ErrorTypesAndMessages {
			w.Writeln(fmt.Sprintf("if isinstance(x, %s):", entry.Type.Name))
			w.Indented(func() {
				w.Writeln("... # builtin")
			})
		}
		if len(d.ErrorTypesAndMessages) == 0 {
			w.Writeln("... # builtin")
		}
	})
	w.Writeln("")
}

func (t *CustomType) write(w *Writer, verbose bool) {
	w.Writeln(fmt.Sprintf("class %s:", t.Name))
	w.Indented(func() {
		args := make([]string, len(t.ArgTypes))
		for i, arg := range t.ArgTypes {
			args[i] = arg.String()
		}
		w.Writeln(fmt.Sprintf("def __init__(%s):", strings.Join(args, ", ")))
		w.Indented(func() {
			for _, arg := range t.ArgTypes {
				w.Writeln(fmt.Sprintf("self.%s = %s", arg.Name, arg.Name))
			}
		})
	})
}

// ModuleElem is anything that can appear at module scope: function
// definitions, custom type definitions, the error-check definition,
// plus assignment, assert, error-check and pass statements.
type ModuleElem interface {
	write(w *Writer, verbose bool)
}

// Module is the top-level container for one compilation unit: an
// ordered element sequence plus the set of publicly exported names.
// Modules are built once and never mutated; passes produce new ones.
type Module struct {
	Body        []ModuleElem
	PublicNames map[string]bool
}

func NewModule(body []ModuleElem, publicNames map[string]bool) *Module {
	return &Module{Body: body, PublicNames: publicNames}
}

func (m *Module) String() string {
	return m.Render(false)
}

// Render serializes the module. Verbose mode appends the bookkeeping
// flags of each var reference as trailing comments.
func (m *Module) Render(verbose bool) string {
	w := NewWriter()
	for _, elem := range m.Body {
		elem.write(w, verbose)
	}
	return w.String()
}
