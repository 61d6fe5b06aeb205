package ast

// Hook selects when a visitor callback fires: on entering a node of Type, or
// on leaving it when Exit is set.
type Hook struct {
	Type NodeType
	Exit bool
}

// On returns the enter hook for t.
func On(t NodeType) Hook { return Hook{Type: t} }

// OnExit returns the exit hook for t.
func OnExit(t NodeType) Hook { return Hook{Type: t, Exit: true} }

// Visitors maps hooks to callbacks.
type Visitors map[Hook]func(Node)

// Visit walks the tree depth-first. Enter callbacks run before a node's
// children, exit callbacks after them.
func Visit(root Node, visitors Visitors) {
	if root == nil || len(visitors) == 0 {
		return
	}
	visit(root, visitors)
}

func visit(node Node, visitors Visitors) {
	t := node.NodeType()
	if fn, ok := visitors[Hook{Type: t}]; ok {
		fn(node)
	}
	for _, child := range Children(node) {
		visit(child, visitors)
	}
	if fn, ok := visitors[Hook{Type: t, Exit: true}]; ok {
		fn(node)
	}
}

// Inspect traverses the tree in depth-first order. If f returns false the
// children of that node are skipped.
func Inspect(root Node, f func(Node) bool) {
	if root == nil {
		return
	}
	if !f(root) {
		return
	}
	for _, child := range Children(root) {
		Inspect(child, f)
	}
}

// Children returns the structural children of n in source order.
// Declared names (Ident) are not nodes and are never returned.
func Children(node Node) []Node {
	var out []Node
	add := func(n Node) {
		if n != nil {
			out = append(out, n)
		}
	}

	switch n := node.(type) {
	case *SourceUnit:
		for _, part := range n.Children {
			add(part)
		}

	case *ContractDefinition:
		for _, base := range n.BaseContracts {
			add(base)
		}
		for _, part := range n.SubNodes {
			add(part)
		}

	case *InheritanceSpecifier:
		if n.BaseName != nil {
			add(n.BaseName)
		}
		addExprs(&out, n.Arguments)

	case *UsingForDeclaration:
		add(n.TypeName)

	case *StateVariableDeclaration:
		for _, v := range n.Variables {
			if v != nil {
				add(v)
			}
		}
		add(n.InitialValue)

	case *VariableDeclaration:
		add(n.TypeName)
		if !n.IsStateVar {
			add(n.Expression)
		}

	case *FunctionDefinition:
		addVars(&out, n.Parameters)
		addVars(&out, n.ReturnParameters)
		for _, m := range n.Modifiers {
			add(m)
		}
		if n.Body != nil {
			add(n.Body)
		}

	case *ModifierDefinition:
		addVars(&out, n.Parameters)
		if n.Body != nil {
			add(n.Body)
		}

	case *ModifierInvocation:
		addExprs(&out, n.Arguments)

	case *EventDefinition:
		addVars(&out, n.Parameters)

	case *CustomErrorDefinition:
		addVars(&out, n.Parameters)

	case *StructDefinition:
		addVars(&out, n.Members)

	case *EnumDefinition:
		for _, m := range n.Members {
			add(m)
		}

	case *ArrayTypeName:
		add(n.BaseTypeName)
		add(n.Length)

	case *Mapping:
		add(n.KeyType)
		add(n.ValueType)

	case *FunctionTypeName:
		addVars(&out, n.Parameters)
		addVars(&out, n.ReturnParameters)

	case *Block:
		for _, s := range n.Statements {
			add(s)
		}

	case *UncheckedStatement:
		if n.Block != nil {
			add(n.Block)
		}

	case *ExpressionStatement:
		add(n.Expression)

	case *VariableDeclarationStatement:
		addVars(&out, n.Variables)
		add(n.InitialValue)

	case *IfStatement:
		add(n.Condition)
		add(n.TrueBody)
		add(n.FalseBody)

	case *ForStatement:
		add(n.InitExpression)
		add(n.ConditionExpression)
		if n.LoopExpression != nil {
			add(n.LoopExpression)
		}
		add(n.Body)

	case *WhileStatement:
		add(n.Condition)
		add(n.Body)

	case *DoWhileStatement:
		add(n.Body)
		add(n.Condition)

	case *ReturnStatement:
		add(n.Expression)

	case *EmitStatement:
		if n.EventCall != nil {
			add(n.EventCall)
		}

	case *RevertStatement:
		if n.RevertCall != nil {
			add(n.RevertCall)
		}

	case *TryStatement:
		add(n.Expression)
		addVars(&out, n.ReturnParameters)
		if n.Body != nil {
			add(n.Body)
		}
		for _, c := range n.CatchClauses {
			add(c)
		}

	case *CatchClause:
		addVars(&out, n.Parameters)
		if n.Body != nil {
			add(n.Body)
		}

	case *MemberAccess:
		add(n.Expression)

	case *IndexAccess:
		add(n.Base)
		add(n.Index)

	case *IndexRangeAccess:
		add(n.Base)
		add(n.IndexStart)
		add(n.IndexEnd)

	case *FunctionCall:
		add(n.Expression)
		addExprs(&out, n.Arguments)

	case *NameValueList:
		add(n.Expression)
		addExprs(&out, n.Values)

	case *BinaryOperation:
		add(n.Left)
		add(n.Right)

	case *UnaryOperation:
		add(n.SubExpression)

	case *Conditional:
		add(n.Condition)
		add(n.TrueExpression)
		add(n.FalseExpression)

	case *NewExpression:
		add(n.TypeName)

	case *TupleExpression:
		addExprs(&out, n.Components)
	}

	return out
}

func addVars(out *[]Node, vars []*VariableDeclaration) {
	for _, v := range vars {
		if v != nil {
			*out = append(*out, v)
		}
	}
}

func addExprs(out *[]Node, exprs []Expr) {
	for _, e := range exprs {
		if e != nil {
			*out = append(*out, e)
		}
	}
}
