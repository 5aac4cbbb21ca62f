// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"templar/internal/cover"
	"templar/internal/hir"
	"templar/internal/mir"
	"templar/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "pipeline config file (yaml)")
	verbose := flag.Bool("verbose", false, "render stage-A output with bookkeeping details")
	flag.Parse()

	commonlog.Configure(1, nil)

	stageA := buildStageADemo()
	fmt.Println("stage-A module:")
	fmt.Print(stageA.Render(*verbose))

	stageB := buildStageBDemo()
	printStageBAnalyses(stageB)

	p := pipeline.New()
	if *configPath != "" {
		cfg, err := pipeline.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		if err := p.Configure(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
			os.Exit(1)
		}
	}
	folded := p.Run(stageB)

	fmt.Println("stage-B after passes:")
	for _, defn := range folded.FunctionDefns {
		fmt.Printf("  def %s, body of %d statements\n", defn.Name, len(defn.Body))
	}

	color.Green("Done")
}

// buildStageADemo assembles a small function by hand:
//
//	def increment(n: int) -> int:
//	    one = 1
//	    result = n + one
//	    return result
func buildStageADemo() *hir.Module {
	intType := &hir.IntType{}
	n := hir.NewVarReference(intType, "n", false, false)
	one := hir.NewVarReference(intType, "one", false, false)
	result := hir.NewVarReference(intType, "result", false, false)

	body := []hir.Stmt{
		hir.NewAssignment(one, hir.NewIntLiteral(1), nil),
		hir.NewAssignment(result, hir.NewIntBinaryOpExpr(n, one, "+"), nil),
		hir.NewReturnStmt(result, nil),
	}
	defn := hir.NewFunctionDefn("increment", "Adds one to its argument.",
		[]hir.FunctionArgDecl{{Type: intType, Name: "n"}}, body, intType)

	return hir.NewModule([]hir.ModuleElem{defn}, map[string]bool{"increment": true})
}

// buildStageBDemo assembles a function whose body exercises the
// constant folder and both return-type merge directions:
//
//	def clamp(n: int) -> int:
//	    if n < 0:
//	        return 2 + 3
//	    else:
//	        return n
func buildStageBDemo() *mir.Module {
	intType := &mir.IntType{}
	n := mir.NewVarReference(intType, "n", false, false)
	branch := cover.NewBranch("demo.py", 2, 3)

	cond := mir.NewIntComparisonExpr(n, mir.NewIntLiteral(0), "<")
	ifBody := []mir.Stmt{
		mir.NewReturnStmt(mir.NewIntBinaryOpExpr(mir.NewIntLiteral(2), mir.NewIntLiteral(3), "+"), branch),
	}
	elseBody := []mir.Stmt{
		mir.NewReturnStmt(n, branch),
	}
	body := []mir.Stmt{mir.NewIfStmt(cond, ifBody, elseBody)}
	defn := mir.NewFunctionDefn("clamp",
		[]mir.FunctionArgDecl{{Type: intType, Name: "n"}}, body, intType)

	return mir.NewModule([]*mir.FunctionDefn{defn}, nil, nil, map[string]bool{"clamp": true})
}

func printStageBAnalyses(m *mir.Module) {
	for _, defn := range m.FunctionDefns {
		freeVars := mir.FreeVariablesInStmts(defn.Body)
		names := make([]string, 0, len(freeVars))
		for name := range freeVars {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Printf("free variables of %s: %v\n", defn.Name, names)

		info := mir.ReturnType(defn.Body)
		fmt.Printf("return type of %s: %s (always returns: %t)\n", defn.Name, info.Type, info.AlwaysReturns)
	}
}
