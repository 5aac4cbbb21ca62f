package hir

import "sort"

// freeVariablesVisitor collects var references not bound within the
// visited scope. Assignment targets stay bound for the rest of the
// statement sequence; match-case and comprehension bindings are local
// to their construct, implemented by saving and restoring the
// bound-name set around the sub-traversal.
type freeVariablesVisitor struct {
	BaseVisitor
	localVarNames  map[string]bool
	freeVarsByName map[string]*VarReference
}

func newFreeVariablesVisitor() *freeVariablesVisitor {
	v := &freeVariablesVisitor{
		localVarNames:  map[string]bool{},
		freeVarsByName: map[string]*VarReference{},
	}
	v.BaseVisitor.V = v
	return v
}

func (v *freeVariablesVisitor) VisitVarReference(e *VarReference) {
	if !e.IsGlobalFunction && !v.localVarNames[e.Name] {
		v.freeVarsByName[e.Name] = e
	}
}

func (v *freeVariablesVisitor) VisitVarReferencePattern(p *VarReferencePattern) {
	if !p.IsGlobalFunction && !v.localVarNames[p.Name] {
		v.freeVarsByName[p.Name] = NewVarReference(p.ExprType(), p.Name, p.IsGlobalFunction, p.IsFunctionThatMayThrow)
	}
}

func (v *freeVariablesVisitor) VisitAssignment(s *Assignment) {
	VisitExpr(v, s.Rhs)
	v.localVarNames[s.Lhs.Name] = true
	if s.Lhs2 != nil {
		v.localVarNames[s.Lhs2.Name] = true
	}
}

func (v *freeVariablesVisitor) VisitUnpackingAssignment(s *UnpackingAssignment) {
	VisitExpr(v, s.Rhs)
	for _, lhs := range s.LhsList {
		v.localVarNames[lhs.Name] = true
	}
}

func (v *freeVariablesVisitor) VisitMatchExpr(e *MatchExpr) {
	for _, matchedVar := range e.MatchedVars {
		VisitExpr(v, matchedVar)
	}
	for _, matchCase := range e.MatchCases {
		v.inScope(func() {
			for _, name := range matchCase.MatchedVarNames {
				v.localVarNames[name] = true
			}
			for _, name := range matchCase.MatchedVariadicVarNames {
				v.localVarNames[name] = true
			}
			v.VisitMatchCase(matchCase)
		})
	}
}

func (v *freeVariablesVisitor) VisitListComprehensionExpr(e *ListComprehensionExpr) {
	VisitExpr(v, e.ListVar)
	v.inScope(func() {
		v.localVarNames[e.LoopVar.Name] = true
		VisitExpr(v, e.ResultElemExpr)
	})
}

// inScope runs body and then discards any bindings it added.
func (v *freeVariablesVisitor) inScope(body func()) {
	saved := make(map[string]bool, len(v.localVarNames))
	for name := range v.localVarNames {
		saved[name] = true
	}
	body()
	v.localVarNames = saved
}

func (v *freeVariablesVisitor) sortedFreeVars() []*VarReference {
	freeVars := make([]*VarReference, 0, len(v.freeVarsByName))
	for _, freeVar := range v.freeVarsByName {
		freeVars = append(freeVars, freeVar)
	}
	sort.Slice(freeVars, func(i, j int) bool {
		return freeVars[i].Name < freeVars[j].Name
	})
	return freeVars
}

// UniqueFreeVariablesInStmts returns the free variables of a statement
// sequence, deduplicated by name and sorted by name so downstream code
// generation is reproducible.
func UniqueFreeVariablesInStmts(stmts []Stmt) []*VarReference {
	v := newFreeVariablesVisitor()
	VisitStmts(v, stmts)
	return v.sortedFreeVars()
}

// UniqueFreeVariablesInExpr is UniqueFreeVariablesInStmts for a single
// expression.
func UniqueFreeVariablesInExpr(expr Expr) []*VarReference {
	v := newFreeVariablesVisitor()
	VisitExpr(v, expr)
	return v.sortedFreeVars()
}
