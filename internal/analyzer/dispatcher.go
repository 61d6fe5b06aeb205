package analyzer

import (
	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/rules"
)

// hookCallbacks is the ordered list of callbacks registered for one hook.
type hookCallbacks []func(ast.Node)

// buildDispatch merges the visitors of every rule into one table. Callbacks
// for the same hook run in rule order. Scope bookkeeping for functions,
// modifiers, local variables and loops wraps the rule callbacks: entering
// a scope happens before the rules see the node and leaving it happens after.
func (a *Analyzer) buildDispatch() ast.Visitors {
	merged := map[ast.Hook]hookCallbacks{}
	for _, r := range a.rules {
		for hook, fn := range r.Visitors() {
			merged[hook] = append(merged[hook], fn)
		}
	}

	ctx := a.ctx
	before := map[ast.Hook]func(ast.Node){
		ast.On(ast.FUNCTION_DEFINITION): func(n ast.Node) {
			fn := n.(*ast.FunctionDefinition)
			ctx.EnterFunction(functionScopeName(fn), paramNames(fn.Parameters))
		},
		ast.On(ast.MODIFIER_DEFINITION): func(n ast.Node) {
			m := n.(*ast.ModifierDefinition)
			ctx.EnterFunction(m.Name.Value, paramNames(m.Parameters))
		},
		ast.On(ast.VARIABLE_DECLARATION): func(n ast.Node) {
			if v := n.(*ast.VariableDeclaration); !v.IsStateVar && v.Name != nil {
				ctx.DeclareLocal(v.Name.Value)
			}
		},
		ast.On(ast.FOR_STATEMENT):      func(n ast.Node) { ctx.PushLoop(rules.ForLoop, n) },
		ast.On(ast.WHILE_STATEMENT):    func(n ast.Node) { ctx.PushLoop(rules.WhileLoop, n) },
		ast.On(ast.DO_WHILE_STATEMENT): func(n ast.Node) { ctx.PushLoop(rules.DoWhileLoop, n) },
	}
	after := map[ast.Hook]func(ast.Node){
		ast.OnExit(ast.FUNCTION_DEFINITION): func(ast.Node) { ctx.ExitFunction() },
		ast.OnExit(ast.MODIFIER_DEFINITION): func(ast.Node) { ctx.ExitFunction() },
		ast.OnExit(ast.FOR_STATEMENT):       func(ast.Node) { ctx.PopLoop() },
		ast.OnExit(ast.WHILE_STATEMENT):     func(ast.Node) { ctx.PopLoop() },
		ast.OnExit(ast.DO_WHILE_STATEMENT):  func(ast.Node) { ctx.PopLoop() },
	}

	hooks := map[ast.Hook]bool{}
	for hook := range merged {
		hooks[hook] = true
	}
	for hook := range before {
		hooks[hook] = true
	}
	for hook := range after {
		hooks[hook] = true
	}

	dispatch := make(ast.Visitors, len(hooks))
	for hook := range hooks {
		dispatch[hook] = chain(before[hook], merged[hook], after[hook])
	}
	return dispatch
}

// chain runs pre, then each callback in order, then post. Nil pre and post
// are skipped.
func chain(pre func(ast.Node), callbacks hookCallbacks, post func(ast.Node)) func(ast.Node) {
	return func(n ast.Node) {
		if pre != nil {
			pre(n)
		}
		for _, fn := range callbacks {
			fn(n)
		}
		if post != nil {
			post(n)
		}
	}
}

// functionScopeName names the scope of a function. Constructors, fallback
// and receive functions have no name in the source.
func functionScopeName(fn *ast.FunctionDefinition) string {
	switch {
	case fn.IsConstructor:
		return "constructor"
	case fn.IsFallback:
		return "fallback"
	case fn.IsReceiveEther:
		return "receive"
	}
	return fn.FunctionName()
}

func paramNames(params []*ast.VariableDeclaration) []string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p != nil && p.Name != nil {
			names = append(names, p.Name.Value)
		}
	}
	return names
}
