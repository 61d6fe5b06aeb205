package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

const UseCustomErrorsName = "use-custom-errors"

// DuplicateErrorPattern tags the issue raised for a message string that is
// repeated across a contract.
const DuplicateErrorPattern = "duplicate-error-string"

const (
	longMessageRunes    = 32
	revertBaseGas       = 200
	revertGasPerChar    = 50
	duplicateSavingsGas = 2000
	duplicateThreshold  = 2 // more than this many uses is a duplicate
)

// errorUse is one require or revert carrying a string literal.
type errorUse struct {
	line, column int
}

// UseCustomErrors flags require(cond, "msg") and revert("msg") calls and
// proposes an equivalent custom error. Messages repeated more than twice in
// a contract get one extra issue.
type UseCustomErrors struct {
	ctx *Context

	messages []string // first-seen order
	uses     map[string][]errorUse

	fileErrors     map[string]int // file-level custom errors and their arity
	declaredErrors map[string]int
}

func NewUseCustomErrors(ctx *Context) *UseCustomErrors {
	r := &UseCustomErrors{ctx: ctx}
	r.Setup()
	return r
}

func (r *UseCustomErrors) Name() string        { return UseCustomErrorsName }
func (r *UseCustomErrors) Description() string { return describe(UseCustomErrorsName) }

func (r *UseCustomErrors) Setup() {
	r.messages = nil
	r.uses = map[string][]errorUse{}
	r.fileErrors = map[string]int{}
	r.declaredErrors = map[string]int{}
}

func (r *UseCustomErrors) Visitors() ast.Visitors {
	return ast.Visitors{
		ast.On(ast.SOURCE_UNIT):             r.enterSourceUnit,
		ast.On(ast.CONTRACT_DEFINITION):     r.enterContract,
		ast.OnExit(ast.CONTRACT_DEFINITION): func(ast.Node) { r.reportDuplicates() },
		ast.On(ast.FUNCTION_CALL):           r.checkCall,
	}
}

func (r *UseCustomErrors) enterSourceUnit(n ast.Node) {
	r.fileErrors = map[string]int{}
	for _, part := range n.(*ast.SourceUnit).Children {
		if def, ok := part.(*ast.CustomErrorDefinition); ok {
			r.fileErrors[def.Name.Value] = len(def.Parameters)
		}
	}
	r.declaredErrors = r.fileErrors
}

func (r *UseCustomErrors) enterContract(n ast.Node) {
	r.messages = nil
	r.uses = map[string][]errorUse{}

	r.declaredErrors = make(map[string]int, len(r.fileErrors))
	for name, arity := range r.fileErrors {
		r.declaredErrors[name] = arity
	}
	for _, part := range n.(*ast.ContractDefinition).SubNodes {
		if def, ok := part.(*ast.CustomErrorDefinition); ok {
			r.declaredErrors[def.Name.Value] = len(def.Parameters)
		}
	}
}

func (r *UseCustomErrors) checkCall(n ast.Node) {
	call := n.(*ast.FunctionCall)
	callee, ok := call.Expression.(*ast.Identifier)
	if !ok {
		return
	}

	switch {
	case callee.Name == "require" && len(call.Arguments) >= 2:
		if lit, ok := call.Arguments[1].(*ast.StringLiteral); ok {
			r.report(call, lit, call.Arguments[0])
		}
	case callee.Name == "revert" && len(call.Arguments) >= 1:
		if lit, ok := call.Arguments[0].(*ast.StringLiteral); ok {
			r.report(call, lit, nil)
		}
	}
}

// report flags one string revert. cond is nil for revert("...").
func (r *UseCustomErrors) report(call *ast.FunctionCall, lit *ast.StringLiteral, cond ast.Expr) {
	message := lit.Value
	litLine, litCol := position(lit)
	if _, seen := r.uses[message]; !seen {
		r.messages = append(r.messages, message)
	}
	r.uses[message] = append(r.uses[message], errorUse{line: litLine, column: litCol})

	length := utf8.RuneCountInString(message)
	severity := issue.Medium
	if length > longMessageRunes {
		severity = issue.High
	}

	line, col := position(call)
	r.ctx.AddIssue(issue.Issue{
		Type:       issue.UseCustomErrors,
		Severity:   severity,
		Line:       line,
		Column:     col,
		Message:    fmt.Sprintf("String revert message %q consumes unnecessary gas", truncateMessage(message)),
		Suggestion: r.suggestion(message, cond),
		GasImpact:  fmt.Sprintf("~%d gas per revert (%d character string)", revertBaseGas+revertGasPerChar*length, length),
	})
}

func (r *UseCustomErrors) suggestion(message string, cond ast.Expr) string {
	name := ErrorName(message)
	params := errorParams(message)

	decls := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for _, p := range params {
		decls = append(decls, p.decl)
		values = append(values, p.value)
	}
	args := strings.Join(values, ", ")

	var b strings.Builder
	if arity, ok := r.declaredErrors[name]; ok {
		b.WriteString("1. Reuse the custom error already declared for this contract:\n")
		fmt.Fprintf(&b, "   %s", name)
		switch {
		case arity == 0:
			args = ""
		case arity != len(params):
			args = "..."
		}
	} else {
		b.WriteString("1. Define custom error at contract level:\n")
		fmt.Fprintf(&b, "   error %s(%s); // selector %s", name, strings.Join(decls, ", "), ErrorSelector(errorSignature(name, params)))
	}

	if cond != nil {
		b.WriteString("\n\n2. Replace require statement:\n")
		fmt.Fprintf(&b, "   if (!(%s)) revert %s(%s);", cond.String(), name, args)
	} else {
		b.WriteString("\n\n2. Replace revert statement:\n")
		fmt.Fprintf(&b, "   revert %s(%s);", name, args)
	}
	return b.String()
}

func (r *UseCustomErrors) reportDuplicates() {
	for _, message := range r.messages {
		uses := r.uses[message]
		if len(uses) <= duplicateThreshold {
			continue
		}

		savings := len(uses) * duplicateSavingsGas
		first := uses[0]
		r.ctx.AddIssue(issue.Issue{
			Type:       issue.UseCustomErrors,
			Severity:   issue.High,
			Line:       first.line,
			Column:     first.column,
			Message:    fmt.Sprintf("String error %q is used %d times", truncateMessage(message), len(uses)),
			Suggestion: fmt.Sprintf("Define once as custom error: error %s(); to save %d gas", ErrorName(message), savings),
			GasImpact:  fmt.Sprintf("~%d gas total savings", savings),
			Pattern:    DuplicateErrorPattern,
		})
	}

	r.messages = nil
	r.uses = map[string][]errorUse{}
}
