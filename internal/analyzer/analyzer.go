package analyzer

import (
	"github.com/tliron/commonlog"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
	"github.com/babyhome/solidity-gas-optimizer/internal/rules"
)

// Analyzer runs a fixed set of rules over Solidity syntax trees. An Analyzer
// owns its Context and rule instances, so one Analyzer must not be used from
// several goroutines at once. Analyzing files in parallel takes one Analyzer
// per goroutine.
type Analyzer struct {
	ctx      *rules.Context
	rules    []rules.Rule
	dispatch ast.Visitors
	log      commonlog.Logger
}

type options struct {
	ruleNames []string
	log       commonlog.Logger
}

// Option configures an Analyzer.
type Option func(*options)

// WithRules selects rules by catalog name. "all" selects every rule; no
// names selects the default set.
func WithRules(names ...string) Option {
	return func(o *options) {
		o.ruleNames = append(o.ruleNames, names...)
	}
}

// WithLogger replaces the default "gasopt.analyzer" logger.
func WithLogger(log commonlog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New builds an Analyzer. It fails only on unknown rule names.
func New(opts ...Option) (*Analyzer, error) {
	o := options{log: commonlog.GetLogger("gasopt.analyzer")}
	for _, opt := range opts {
		opt(&o)
	}

	ctx := rules.NewContext()
	built, err := rules.New(ctx, o.ruleNames...)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		ctx:   ctx,
		rules: built,
		log:   o.log,
	}
	a.dispatch = a.buildDispatch()
	return a, nil
}

// RuleNames returns the names of the enabled rules in dispatch order.
func (a *Analyzer) RuleNames() []string {
	names := make([]string, len(a.rules))
	for i, r := range a.rules {
		names[i] = r.Name()
	}
	return names
}

// Analyze walks tree once and returns every issue found. All state from
// previous calls is discarded first, so repeated calls on the same tree
// return equal results. A nil tree yields an empty result.
func (a *Analyzer) Analyze(tree *ast.SourceUnit, filePath string) issue.AnalysisResult {
	a.ctx.Reset()
	if tree == nil {
		return issue.NewResult(filePath, nil)
	}

	collectContractName(tree, a.ctx)
	collectStateVariables(tree, a.ctx)
	collectInternalCalls(tree, a.ctx)
	a.log.Debugf("%s: contract %q, %d state variables", filePath, a.ctx.ContractName(), a.ctx.StateVariableCount())

	for _, r := range a.rules {
		if s, ok := r.(rules.Setuper); ok {
			s.Setup()
		}
	}

	ast.Visit(tree, a.dispatch)

	for _, r := range a.rules {
		if c, ok := r.(rules.Cleaner); ok {
			c.Cleanup()
		}
	}

	result := issue.NewResult(filePath, a.ctx.Issues())
	a.log.Debugf("%s: %d issues", filePath, result.Summary.TotalIssues)
	return result
}
