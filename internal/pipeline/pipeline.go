// Package pipeline runs named transformation passes over a module in a
// configured order.
package pipeline

import (
	"fmt"

	"github.com/tliron/commonlog"

	"templar/internal/mir"
)

var log = commonlog.GetLogger("templar.pipeline")

// Pass is a single module-to-module transformation. Apply must not
// modify its input; it returns a new module (which may share untouched
// subtrees with the input).
type Pass interface {
	Name() string
	Description() string
	Apply(m *mir.Module) *mir.Module
}

// Pipeline holds the registered passes and the order to run them in.
type Pipeline struct {
	registry map[string]Pass
	order    []string
}

// New creates a pipeline with the default passes registered and
// scheduled.
func New() *Pipeline {
	p := &Pipeline{registry: map[string]Pass{}}
	p.Register(&ConstantFoldingPass{})
	p.order = []string{"constant-folding"}
	return p
}

// Register makes a pass available by name. Registering does not
// schedule it; use Configure or the default order for that.
func (p *Pipeline) Register(pass Pass) {
	p.registry[pass.Name()] = pass
}

// Configure replaces the run order with the config's pass list. Every
// named pass must be registered.
func (p *Pipeline) Configure(cfg *Config) error {
	for _, name := range cfg.Passes {
		if _, ok := p.registry[name]; !ok {
			return fmt.Errorf("unknown pass %q", name)
		}
	}
	p.order = cfg.Passes
	return nil
}

// Run applies the scheduled passes in order and returns the resulting
// module. The input module is not modified.
func (p *Pipeline) Run(m *mir.Module) *mir.Module {
	log.Infof("running %d passes", len(p.order))
	for _, name := range p.order {
		pass := p.registry[name]
		log.Infof("pass %s: %s", pass.Name(), pass.Description())
		m = pass.Apply(m)
	}
	return m
}

// ConstantFoldingPass evaluates constant subexpressions.
type ConstantFoldingPass struct{}

func (p *ConstantFoldingPass) Name() string { return "constant-folding" }

func (p *ConstantFoldingPass) Description() string {
	return "evaluates arithmetic and boolean operators over literal operands"
}

func (p *ConstantFoldingPass) Apply(m *mir.Module) *mir.Module {
	return mir.FoldConstants(m)
}
