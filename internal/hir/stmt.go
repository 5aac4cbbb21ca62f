package hir

import (
	"fmt"
	"strings"

	"templar/internal/invariant"
)

// Stmt is a statement node. Like expressions, statements are immutable
// and validated at construction.
type Stmt interface {
	write(w *Writer, verbose bool)
	stmtNode()
}

type PassStmt struct{}

func NewPassStmt() *PassStmt {
	return &PassStmt{}
}

func (s *PassStmt) write(w *Writer, verbose bool) {
	w.Writeln("pass")
}

type Assert struct {
	Var     *VarReference
	Message string
}

func NewAssert(v *VarReference, message string) *Assert {
	invariant.Check(SameType(v.ExprType(), &BoolType{}), "assert operand must be bool, got %s", v.ExprType())
	return &Assert{Var: v, Message: message}
}

func (s *Assert) write(w *Writer, verbose bool) {
	w.Write("assert ")
	w.Write(s.Var.Name)
	if verbose {
		w.Writeln(fmt.Sprintf("  # %s", s.Var.fieldDetails()))
	} else {
		w.Writeln("")
	}
}

// Assignment binds Rhs to Lhs. Lhs2, when present, receives the error
// side channel of a fallible Rhs: it must be ErrorOrVoid-typed and the
// Rhs must be a match, call or comprehension.
type Assignment struct {
	Lhs  *VarReference
	Lhs2 *VarReference
	Rhs  Expr
}

func NewAssignment(lhs *VarReference, rhs Expr, lhs2 *VarReference) *Assignment {
	invariant.Check(SameType(lhs.ExprType(), rhs.ExprType()),
		"assignment type mismatch: %s vs %s", lhs.ExprType(), rhs.ExprType())
	if lhs2 != nil {
		_, ok := lhs2.ExprType().(*ErrorOrVoidType)
		invariant.Check(ok, "second assignment target must be ErrorOrVoid, got %s", lhs2.ExprType())
		switch rhs.(type) {
		case *MatchExpr, *FunctionCall, *ListComprehensionExpr:
		default:
			invariant.Violationf("fallible assignment rhs must be a match, call or comprehension, got %T", rhs)
		}
	}
	return &Assignment{Lhs: lhs, Lhs2: lhs2, Rhs: rhs}
}

func (s *Assignment) write(w *Writer, verbose bool) {
	w.Write(s.Lhs.Name)
	if s.Lhs2 != nil {
		w.Write(", ")
		w.Write(s.Lhs2.Name)
	}
	w.Write(" = ")
	if matchExpr, ok := s.Rhs.(*MatchExpr); ok {
		matchExpr.write(w)
		return
	}
	w.Write(s.Rhs.String())
	if verbose {
		w.Writeln(fmt.Sprintf("  # lhs: %s; rhs: %s", s.Lhs.fieldDetails(), s.Rhs.fieldDetails()))
	} else {
		w.Writeln("")
	}
}

// CheckIfError aborts compilation of the current instantiation when the
// operand holds an error value rather than void.
type CheckIfError struct {
	Var *VarReference
}

func NewCheckIfError(v *VarReference) *CheckIfError {
	_, ok := v.ExprType().(*ErrorOrVoidType)
	invariant.Check(ok, "check_if_error operand must be ErrorOrVoid, got %s", v.ExprType())
	return &CheckIfError{Var: v}
}

func (s *CheckIfError) write(w *Writer, verbose bool) {
	w.Write("check_if_error(")
	w.Write(s.Var.String())
	if verbose {
		w.Write(")  # ")
		w.Writeln(s.Var.fieldDetails())
	} else {
		w.Writeln(")")
	}
}

type UnpackingAssignment struct {
	LhsList      []*VarReference
	Rhs          *VarReference
	ErrorMessage string
}

func NewUnpackingAssignment(lhsList []*VarReference, rhs *VarReference, errorMessage string) *UnpackingAssignment {
	listType, ok := rhs.ExprType().(*ListType)
	invariant.Check(ok, "unpacking source must be a list, got %s", rhs.ExprType())
	invariant.Check(len(lhsList) > 0, "unpacking assignment must have at least one target")
	for _, lhs := range lhsList {
		invariant.Check(SameType(lhs.ExprType(), listType.Elem),
			"unpacking target type %s does not match list element type %s", lhs.ExprType(), listType.Elem)
	}
	return &UnpackingAssignment{LhsList: lhsList, Rhs: rhs, ErrorMessage: errorMessage}
}

func (s *UnpackingAssignment) write(w *Writer, verbose bool) {
	names := make([]string, len(s.LhsList))
	for i, v := range s.LhsList {
		names[i] = v.Name
	}
	w.Write("[")
	w.Write(strings.Join(names, ", "))
	w.Write("] = ")
	w.Write(s.Rhs.Name)
	if verbose {
		details := make([]string, len(s.LhsList))
		for i, v := range s.LhsList {
			details[i] = v.fieldDetails()
		}
		w.Writeln(fmt.Sprintf("  # lhs: [%s]; rhs: %s", strings.Join(details, ", "), s.Rhs.fieldDetails()))
	} else {
		w.Writeln("")
	}
}

// ReturnStmt yields a result, an error, or both. At least one must be
// present.
type ReturnStmt struct {
	Result *VarReference
	Error  *VarReference
}

func NewReturnStmt(result, errVar *VarReference) *ReturnStmt {
	invariant.Check(result != nil || errVar != nil, "return must carry a result or an error")
	return &ReturnStmt{Result: result, Error: errVar}
}

func (s *ReturnStmt) write(w *Writer, verbose bool) {
	w.Write("return ")
	w.Write(varNameOrNone(s.Result))
	w.Write(", ")
	w.Write(varNameOrNone(s.Error))
	if verbose {
		resultDetails := ""
		if s.Result != nil {
			resultDetails = s.Result.fieldDetails()
		}
		errorDetails := ""
		if s.Error != nil {
			errorDetails = s.Error.fieldDetails()
		}
		w.Writeln(fmt.Sprintf("  # result: %s, error: %s", resultDetails, errorDetails))
	} else {
		w.Writeln("")
	}
}

func varNameOrNone(v *VarReference) string {
	if v == nil {
		return "None"
	}
	return v.Name
}

type IfStmt struct {
	Cond      *VarReference
	IfStmts   []Stmt
	ElseStmts []Stmt
}

func NewIfStmt(cond *VarReference, ifStmts, elseStmts []Stmt) *IfStmt {
	invariant.Check(SameType(cond.ExprType(), &BoolType{}), "if condition must be bool, got %s", cond.ExprType())
	return &IfStmt{Cond: cond, IfStmts: ifStmts, ElseStmts: elseStmts}
}

func (s *IfStmt) write(w *Writer, verbose bool) {
	w.Write(fmt.Sprintf("if %s:", s.Cond.Name))
	if verbose {
		w.Writeln(fmt.Sprintf("  # %s", s.Cond.fieldDetails()))
	} else {
		w.Writeln("")
	}
	w.Indented(func() {
		for _, stmt := range s.IfStmts {
			stmt.write(w, verbose)
		}
		if len(s.IfStmts) == 0 {
			w.Writeln("pass")
		}
	})
	if len(s.ElseStmts) > 0 {
		w.Writeln("else:")
		w.Indented(func() {
			for _, stmt := range s.ElseStmts {
				stmt.write(w, verbose)
			}
		})
	}
}

func (s *PassStmt) stmtNode()            {}
func (s *Assert) stmtNode()              {}
func (s *Assignment) stmtNode()          {}
func (s *CheckIfError) stmtNode()        {}
func (s *UnpackingAssignment) stmtNode() {}
func (s *ReturnStmt) stmtNode()          {}
func (s *IfStmt) stmtNode()              {}
