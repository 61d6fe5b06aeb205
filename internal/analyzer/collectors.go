package analyzer

import (
	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
	"github.com/babyhome/solidity-gas-optimizer/internal/rules"
)

// collectContractName records the last contract-kind definition in the file.
// Interfaces, libraries and abstract contracts are ignored.
func collectContractName(tree ast.Node, ctx *rules.Context) {
	ast.Visit(tree, ast.Visitors{
		ast.On(ast.CONTRACT_DEFINITION): func(n ast.Node) {
			c := n.(*ast.ContractDefinition)
			if c.Kind == "contract" {
				ctx.SetContractName(c.Name.Value)
			}
		},
	})
}

// collectStateVariables fills the state variable table.
func collectStateVariables(tree ast.Node, ctx *rules.Context) {
	ast.Visit(tree, ast.Visitors{
		ast.On(ast.STATE_VARIABLE_DECLARATION): func(n ast.Node) {
			for _, v := range n.(*ast.StateVariableDeclaration).Variables {
				if v == nil || v.Name == nil || v.Name.Value == "" {
					continue
				}
				ctx.AddStateVariable(variableInfo(v))
			}
		},
	})
}

func variableInfo(v *ast.VariableDeclaration) rules.VariableInfo {
	info := rules.VariableInfo{
		Name:       v.Name.Value,
		Type:       typeLabel(v.TypeName),
		Visibility: v.Visibility,
	}
	if info.Visibility == "" {
		info.Visibility = "internal"
	}
	switch v.TypeName.(type) {
	case *ast.ArrayTypeName:
		info.IsArray = true
	case *ast.Mapping:
		info.IsMapping = true
	}
	return info
}

func typeLabel(t ast.TypeName) string {
	switch t := t.(type) {
	case nil:
		return "unknown"
	case *ast.ElementaryTypeName:
		return t.Name
	case *ast.UserDefinedTypeName:
		return t.NamePath
	case *ast.ArrayTypeName:
		return typeLabel(t.BaseTypeName) + "[]"
	case *ast.Mapping:
		return "mapping"
	default:
		return "complex"
	}
}

// collectInternalCalls records the names of functions the file itself calls,
// either bare as "f(...)" or through "this.f(...)".
func collectInternalCalls(tree ast.Node, ctx *rules.Context) {
	ast.Visit(tree, ast.Visitors{
		ast.On(ast.FUNCTION_CALL): func(n ast.Node) {
			switch callee := calleeOf(n.(*ast.FunctionCall).Expression).(type) {
			case *ast.Identifier:
				ctx.AddInternalCall(callee.Name)
			case *ast.MemberAccess:
				if base, ok := callee.Expression.(*ast.Identifier); ok && base.Name == "this" {
					ctx.AddInternalCall(callee.MemberName)
				}
			}
		},
	})
}

// calleeOf strips call options so "f{value: 1}(...)" resolves to f.
func calleeOf(e ast.Expr) ast.Expr {
	if opts, ok := e.(*ast.NameValueList); ok {
		return opts.Expression
	}
	return e
}
