package mir

import (
	"templar/internal/cover"
	"templar/internal/invariant"
)

// Stmt is a statement node. Most statements carry the source branch
// they came from; the branches are opaque coverage bookkeeping and are
// never inspected here.
type Stmt interface {
	stmtNode()
}

type PassStmt struct {
	Branch *cover.Branch
}

func NewPassStmt(branch *cover.Branch) *PassStmt {
	return &PassStmt{Branch: branch}
}

type Assert struct {
	Expr    Expr
	Message string
	Branch  *cover.Branch
}

func NewAssert(expr Expr, message string, branch *cover.Branch) *Assert {
	checkBoolOperand(expr, "assert")
	return &Assert{Expr: expr, Message: message, Branch: branch}
}

type Assignment struct {
	Lhs    *VarReference
	Rhs    Expr
	Branch *cover.Branch
}

func NewAssignment(lhs *VarReference, rhs Expr, branch *cover.Branch) *Assignment {
	invariant.Check(SameType(lhs.ExprType(), rhs.ExprType()),
		"assignment of %s to a var of type %s", rhs.ExprType(), lhs.ExprType())
	return &Assignment{Lhs: lhs, Rhs: rhs, Branch: branch}
}

// UnpackingAssignment destructures a list into a fixed number of vars.
// ErrorMessage is reported when the list's length does not match at
// compile time downstream.
type UnpackingAssignment struct {
	LhsList      []*VarReference
	Rhs          Expr
	ErrorMessage string
	Branch       *cover.Branch
}

func NewUnpackingAssignment(lhsList []*VarReference, rhs Expr, errorMessage string, branch *cover.Branch) *UnpackingAssignment {
	listType, ok := rhs.ExprType().(*ListType)
	invariant.Check(ok, "unpacking assignment rhs must be a list, got %s", rhs.ExprType())
	invariant.Check(len(lhsList) > 0, "unpacking assignment must have at least one target")
	for _, lhs := range lhsList {
		invariant.Check(SameType(lhs.ExprType(), listType.Elem),
			"unpacking target %s has type %s, expected %s", lhs.Name, lhs.ExprType(), listType.Elem)
	}
	return &UnpackingAssignment{LhsList: lhsList, Rhs: rhs, ErrorMessage: errorMessage, Branch: branch}
}

type ReturnStmt struct {
	Expr   Expr
	Branch *cover.Branch
}

func NewReturnStmt(expr Expr, branch *cover.Branch) *ReturnStmt {
	return &ReturnStmt{Expr: expr, Branch: branch}
}

// IfStmt carries no branch of its own; its arms do, through their
// statements.
type IfStmt struct {
	CondExpr  Expr
	IfStmts   []Stmt
	ElseStmts []Stmt
}

func NewIfStmt(condExpr Expr, ifStmts, elseStmts []Stmt) *IfStmt {
	checkBoolOperand(condExpr, "if condition")
	return &IfStmt{CondExpr: condExpr, IfStmts: ifStmts, ElseStmts: elseStmts}
}

type RaiseStmt struct {
	Expr   Expr
	Branch *cover.Branch
}

func NewRaiseStmt(expr Expr, branch *cover.Branch) *RaiseStmt {
	customType, ok := expr.ExprType().(*CustomType)
	invariant.Check(ok && customType.IsExceptionClass,
		"raise operand must be an exception class instance, got %s", expr.ExprType())
	return &RaiseStmt{Expr: expr, Branch: branch}
}

// TryExcept catches exactly one exception type. The caught exception
// name is bound within the except body only.
type TryExcept struct {
	TryBody             []Stmt
	CaughtExceptionType ExprType
	CaughtExceptionName string
	ExceptBody          []Stmt
	TryBranch           *cover.Branch
	ExceptBranch        *cover.Branch
}

func NewTryExcept(tryBody []Stmt, caughtExceptionType ExprType, caughtExceptionName string, exceptBody []Stmt, tryBranch, exceptBranch *cover.Branch) *TryExcept {
	customType, ok := caughtExceptionType.(*CustomType)
	invariant.Check(ok && customType.IsExceptionClass,
		"caught exception type must be an exception class, got %s", caughtExceptionType)
	return &TryExcept{
		TryBody:             tryBody,
		CaughtExceptionType: caughtExceptionType,
		CaughtExceptionName: caughtExceptionName,
		ExceptBody:          exceptBody,
		TryBranch:           tryBranch,
		ExceptBranch:        exceptBranch,
	}
}

func (s *PassStmt) stmtNode()            {}
func (s *Assert) stmtNode()              {}
func (s *Assignment) stmtNode()          {}
func (s *UnpackingAssignment) stmtNode() {}
func (s *ReturnStmt) stmtNode()          {}
func (s *IfStmt) stmtNode()              {}
func (s *RaiseStmt) stmtNode()           {}
func (s *TryExcept) stmtNode()           {}
