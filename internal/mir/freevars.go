package mir

// freeVariablesVisitor collects var references not bound in the visited
// scope, keyed by name. Later references to the same name overwrite
// earlier ones; callers only depend on the name set and the types,
// which agree across occurrences.
type freeVariablesVisitor struct {
	BaseVisitor
	boundVarNames  map[string]bool
	freeVarsByName map[string]*VarReference
}

func newFreeVariablesVisitor() *freeVariablesVisitor {
	v := &freeVariablesVisitor{
		boundVarNames:  map[string]bool{},
		freeVarsByName: map[string]*VarReference{},
	}
	v.BaseVisitor.V = v
	return v
}

func (v *freeVariablesVisitor) VisitVarReference(e *VarReference) {
	if !e.IsGlobalFunction && !v.boundVarNames[e.Name] {
		v.freeVarsByName[e.Name] = e
	}
}

func (v *freeVariablesVisitor) VisitMatchExpr(e *MatchExpr) {
	for _, matched := range e.MatchedExprs {
		VisitExpr(v, matched)
	}
	for _, matchCase := range e.MatchCases {
		v.inScope(func() {
			for name := range matchCase.MatchedVarNames {
				v.boundVarNames[name] = true
			}
			for name := range matchCase.MatchedVariadicVarNames {
				v.boundVarNames[name] = true
			}
			v.VisitMatchCase(matchCase)
		})
	}
}

func (v *freeVariablesVisitor) VisitListComprehension(e *ListComprehension) {
	VisitExpr(v, e.ListExpr)
	v.inScope(func() {
		v.boundVarNames[e.LoopVar.Name] = true
		VisitExpr(v, e.ResultElemExpr)
	})
}

func (v *freeVariablesVisitor) VisitSetComprehension(e *SetComprehension) {
	VisitExpr(v, e.SetExpr)
	v.inScope(func() {
		v.boundVarNames[e.LoopVar.Name] = true
		VisitExpr(v, e.ResultElemExpr)
	})
}

func (v *freeVariablesVisitor) VisitAssignment(s *Assignment) {
	VisitExpr(v, s.Rhs)
	v.boundVarNames[s.Lhs.Name] = true
}

func (v *freeVariablesVisitor) VisitUnpackingAssignment(s *UnpackingAssignment) {
	VisitExpr(v, s.Rhs)
	for _, lhs := range s.LhsList {
		v.boundVarNames[lhs.Name] = true
	}
}

func (v *freeVariablesVisitor) VisitTryExcept(s *TryExcept) {
	VisitStmts(v, s.TryBody)
	v.inScope(func() {
		v.boundVarNames[s.CaughtExceptionName] = true
		VisitStmts(v, s.ExceptBody)
	})
}

// inScope runs body and then discards any bindings it added.
func (v *freeVariablesVisitor) inScope(body func()) {
	saved := make(map[string]bool, len(v.boundVarNames))
	for name := range v.boundVarNames {
		saved[name] = true
	}
	body()
	v.boundVarNames = saved
}

// FreeVariablesInStmts returns the free variables of a statement
// sequence, keyed by name.
func FreeVariablesInStmts(stmts []Stmt) map[string]*VarReference {
	v := newFreeVariablesVisitor()
	VisitStmts(v, stmts)
	return v.freeVarsByName
}

// FreeVariablesInExpr is FreeVariablesInStmts for a single expression.
func FreeVariablesInExpr(expr Expr) map[string]*VarReference {
	v := newFreeVariablesVisitor()
	VisitExpr(v, expr)
	return v.freeVarsByName
}
