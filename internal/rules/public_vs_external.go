package rules

import (
	"fmt"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

const PublicVsExternalName = "public-vs-external"

// complexBodyStatements is the top-level statement count above which an
// unneeded public function is reported with high severity.
const complexBodyStatements = 10

// PublicVsExternal flags public functions that nothing in the file calls
// internally. Such functions can be external and read arguments straight
// from calldata.
type PublicVsExternal struct {
	ctx *Context
}

func NewPublicVsExternal(ctx *Context) *PublicVsExternal {
	return &PublicVsExternal{ctx: ctx}
}

func (r *PublicVsExternal) Name() string        { return PublicVsExternalName }
func (r *PublicVsExternal) Description() string { return describe(PublicVsExternalName) }

func (r *PublicVsExternal) Visitors() ast.Visitors {
	return ast.Visitors{
		ast.On(ast.FUNCTION_DEFINITION): r.checkFunction,
	}
}

func (r *PublicVsExternal) checkFunction(n ast.Node) {
	fn := n.(*ast.FunctionDefinition)
	if fn.Visibility != "public" || fn.IsConstructor || fn.IsFallback || fn.IsReceiveEther {
		return
	}
	name := fn.FunctionName()
	if name == "" || r.ctx.IsInternallyCalled(name) {
		return
	}

	severity := issue.Medium
	gasImpact := "~2100 gas per external call"
	switch {
	case fn.StateMutability == "view" || fn.StateMutability == "pure":
		severity = issue.Low
		gasImpact = "Minimal gas savings, but better practice"
	case fn.Body != nil && len(fn.Body.Statements) > complexBodyStatements:
		severity = issue.High
		gasImpact = "Significant savings for complex functions"
	}

	line, col := position(fn)
	r.ctx.AddIssue(issue.Issue{
		Type:       issue.PublicVsExternal,
		Severity:   severity,
		Line:       line,
		Column:     col,
		Message:    fmt.Sprintf("Function '%s' is declared as 'public' but never called internally", name),
		Suggestion: "Change visibility from 'public' to 'external' to save gas on function calls",
		GasImpact:  gasImpact,
	})
}
