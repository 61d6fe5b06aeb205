package rules

import (
	"fmt"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

const UncheckedMathName = "unchecked-math"

// UncheckedMath suggests unchecked blocks for counter arithmetic inside loops.
// It is off by default: it cannot prove the operation does not overflow.
type UncheckedMath struct {
	ctx *Context

	// updates holds the update expressions of enclosing for loops.
	updates map[ast.Expr]bool
	// unchecked counts enclosing unchecked blocks.
	unchecked int
}

func NewUncheckedMath(ctx *Context) *UncheckedMath {
	return &UncheckedMath{ctx: ctx, updates: map[ast.Expr]bool{}}
}

func (r *UncheckedMath) Name() string        { return UncheckedMathName }
func (r *UncheckedMath) Description() string { return describe(UncheckedMathName) }

func (r *UncheckedMath) Setup() {
	r.updates = map[ast.Expr]bool{}
	r.unchecked = 0
}

func (r *UncheckedMath) Visitors() ast.Visitors {
	return ast.Visitors{
		ast.On(ast.FOR_STATEMENT): func(n ast.Node) {
			if loop := n.(*ast.ForStatement).LoopExpression; loop != nil && loop.Expression != nil {
				r.updates[loop.Expression] = true
			}
		},
		ast.OnExit(ast.FOR_STATEMENT): func(n ast.Node) {
			if loop := n.(*ast.ForStatement).LoopExpression; loop != nil && loop.Expression != nil {
				delete(r.updates, loop.Expression)
			}
		},
		ast.On(ast.UNCHECKED_STATEMENT):     func(ast.Node) { r.unchecked++ },
		ast.OnExit(ast.UNCHECKED_STATEMENT): func(ast.Node) { r.unchecked-- },
		ast.On(ast.BINARY_OPERATION):        r.checkBinary,
		ast.On(ast.UNARY_OPERATION):         r.checkUnary,
	}
}

func (r *UncheckedMath) checkBinary(n ast.Node) {
	op := n.(*ast.BinaryOperation)
	if op.Operator != "+" && op.Operator != "-" {
		return
	}
	if !r.ctx.IsInLoop() || r.unchecked > 0 {
		return
	}
	left, ok := op.Left.(*ast.Identifier)
	if !ok {
		return
	}
	if lit, ok := op.Right.(*ast.NumberLiteral); !ok || lit.Number != "1" || lit.Subdenomination != "" {
		return
	}
	if op.Operator == "-" {
		r.report(op, left.Name, "--")
		return
	}
	r.report(op, left.Name, "++")
}

// checkUnary handles the "i++" and "i--" update of a for loop.
func (r *UncheckedMath) checkUnary(n ast.Node) {
	op := n.(*ast.UnaryOperation)
	if !r.updates[op] || r.unchecked > 0 {
		return
	}
	if op.Operator != "++" && op.Operator != "--" {
		return
	}
	id, ok := op.SubExpression.(*ast.Identifier)
	if !ok {
		return
	}
	r.report(op, id.Name, op.Operator)
}

func (r *UncheckedMath) report(n ast.Node, name, op string) {
	kind := "Increment"
	if op == "--" {
		kind = "Decrement"
	}
	line, col := position(n)
	r.ctx.AddIssue(issue.Issue{
		Type:       issue.UncheckedMath,
		Severity:   issue.Low,
		Line:       line,
		Column:     col,
		Message:    fmt.Sprintf("%s operation '%s%s' can use unchecked block", kind, name, op),
		Suggestion: fmt.Sprintf("Wrap in unchecked block: 'unchecked { %s%s; }'", name, op),
		GasImpact:  "~50 gas per operation",
	})
}
