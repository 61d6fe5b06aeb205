package ast

import (
	"fmt"
	"strings"
)

func (s *SourceUnit) String() string {
	var b strings.Builder
	for i, part := range s.Children {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(part.String())
	}
	return b.String()
}

func (p *PragmaDirective) String() string {
	return fmt.Sprintf("pragma %s %s;", p.Name, p.Value)
}

func (i *ImportDirective) String() string {
	return fmt.Sprintf("import %q;", i.Path)
}

func (c *ContractDefinition) String() string {
	var b strings.Builder

	if c.Kind == "abstract" {
		b.WriteString("abstract contract ")
	} else {
		b.WriteString(c.Kind + " ")
	}
	b.WriteString(c.Name.Value)

	if len(c.BaseContracts) > 0 {
		b.WriteString(" is ")
		for i, base := range c.BaseContracts {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(base.String())
		}
	}

	b.WriteString(" {\n")
	for _, part := range c.SubNodes {
		b.WriteString("  " + strings.ReplaceAll(part.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (i *InheritanceSpecifier) String() string {
	name := ""
	if i.BaseName != nil {
		name = i.BaseName.NamePath
	}
	if len(i.Arguments) == 0 {
		return name
	}
	return name + "(" + joinExprs(i.Arguments) + ")"
}

func (u *UsingForDeclaration) String() string {
	target := "*"
	if u.TypeName != nil {
		target = u.TypeName.String()
	}
	return fmt.Sprintf("using %s for %s;", u.LibraryName, target)
}

func (s *StateVariableDeclaration) String() string {
	var b strings.Builder
	for _, v := range s.Variables {
		b.WriteString(v.String())
	}
	if s.InitialValue != nil {
		b.WriteString(" = ")
		b.WriteString(s.InitialValue.String())
	}
	b.WriteString(";")
	return b.String()
}

func (v *VariableDeclaration) String() string {
	parts := []string{}
	if v.TypeName != nil {
		parts = append(parts, v.TypeName.String())
	}
	if v.IsIndexed {
		parts = append(parts, "indexed")
	}
	if v.Visibility != "" {
		parts = append(parts, v.Visibility)
	}
	if v.IsDeclaredConst {
		parts = append(parts, "constant")
	}
	if v.IsImmutable {
		parts = append(parts, "immutable")
	}
	if v.StorageLocation != "" {
		parts = append(parts, v.StorageLocation)
	}
	if v.Name != nil {
		parts = append(parts, v.Name.Value)
	}
	return strings.Join(parts, " ")
}

func (f *FunctionDefinition) String() string {
	var b strings.Builder

	switch {
	case f.IsConstructor:
		b.WriteString("constructor")
	case f.IsFallback:
		b.WriteString("fallback")
	case f.IsReceiveEther:
		b.WriteString("receive")
	default:
		b.WriteString("function " + f.FunctionName())
	}

	b.WriteString("(" + joinVars(f.Parameters) + ")")
	if f.Visibility != "" && f.Visibility != "default" {
		b.WriteString(" " + f.Visibility)
	}
	if f.StateMutability != "" {
		b.WriteString(" " + f.StateMutability)
	}
	if f.IsVirtual {
		b.WriteString(" virtual")
	}
	for _, m := range f.Modifiers {
		b.WriteString(" " + m.String())
	}
	if len(f.ReturnParameters) > 0 {
		b.WriteString(" returns (" + joinVars(f.ReturnParameters) + ")")
	}

	if f.Body == nil {
		b.WriteString(";")
	} else {
		b.WriteString(" " + f.Body.String())
	}
	return b.String()
}

func (m *ModifierDefinition) String() string {
	var b strings.Builder
	b.WriteString("modifier " + m.Name.Value)
	if len(m.Parameters) > 0 {
		b.WriteString("(" + joinVars(m.Parameters) + ")")
	}
	if m.Body != nil {
		b.WriteString(" " + m.Body.String())
	} else {
		b.WriteString(";")
	}
	return b.String()
}

func (m *ModifierInvocation) String() string {
	if m.Arguments == nil {
		return m.Name
	}
	return m.Name + "(" + joinExprs(m.Arguments) + ")"
}

func (e *EventDefinition) String() string {
	s := fmt.Sprintf("event %s(%s)", e.Name.Value, joinVars(e.Parameters))
	if e.IsAnonymous {
		s += " anonymous"
	}
	return s + ";"
}

func (e *CustomErrorDefinition) String() string {
	return fmt.Sprintf("error %s(%s);", e.Name.Value, joinVars(e.Parameters))
}

func (s *StructDefinition) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("struct %s {", s.Name.Value))
	for _, m := range s.Members {
		b.WriteString(" " + m.String() + ";")
	}
	b.WriteString(" }")
	return b.String()
}

func (e *EnumDefinition) String() string {
	names := make([]string, 0, len(e.Members))
	for _, m := range e.Members {
		names = append(names, m.Name)
	}
	return fmt.Sprintf("enum %s { %s }", e.Name.Value, strings.Join(names, ", "))
}

func (e *EnumValue) String() string { return e.Name }

func (b *BadContractPart) String() string {
	return fmt.Sprintf("BadContractPart: %s", b.Bad.Message)
}

// Type names

func (e *ElementaryTypeName) String() string {
	if e.StateMutability != "" {
		return e.Name + " " + e.StateMutability
	}
	return e.Name
}

func (u *UserDefinedTypeName) String() string { return u.NamePath }

func (a *ArrayTypeName) String() string {
	base := ""
	if a.BaseTypeName != nil {
		base = a.BaseTypeName.String()
	}
	if a.Length == nil {
		return base + "[]"
	}
	return base + "[" + a.Length.String() + "]"
}

func (m *Mapping) String() string {
	return fmt.Sprintf("mapping(%s => %s)", m.KeyType, m.ValueType)
}

func (f *FunctionTypeName) String() string {
	s := "function (" + joinVars(f.Parameters) + ")"
	if f.Visibility != "" {
		s += " " + f.Visibility
	}
	if f.StateMutability != "" {
		s += " " + f.StateMutability
	}
	if len(f.ReturnParameters) > 0 {
		s += " returns (" + joinVars(f.ReturnParameters) + ")"
	}
	return s
}

// Statements

func (b *Block) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (u *UncheckedStatement) String() string {
	return "unchecked " + u.Block.String()
}

func (e *ExpressionStatement) String() string {
	return e.Expression.String() + ";"
}

func (v *VariableDeclarationStatement) String() string {
	var lhs string
	if len(v.Variables) == 1 && v.Variables[0] != nil {
		lhs = v.Variables[0].String()
	} else {
		lhs = "(" + joinVars(v.Variables) + ")"
	}
	if v.InitialValue == nil {
		return lhs + ";"
	}
	return lhs + " = " + v.InitialValue.String() + ";"
}

func (i *IfStatement) String() string {
	s := fmt.Sprintf("if (%s) %s", i.Condition, i.TrueBody)
	if i.FalseBody != nil {
		s += " else " + i.FalseBody.String()
	}
	return s
}

func (f *ForStatement) String() string {
	init := ";"
	if f.InitExpression != nil {
		init = f.InitExpression.String()
	}
	cond := ""
	if f.ConditionExpression != nil {
		cond = " " + f.ConditionExpression.String()
	}
	post := ""
	if f.LoopExpression != nil {
		post = " " + f.LoopExpression.Expression.String()
	}
	return fmt.Sprintf("for (%s%s;%s) %s", init, cond, post, f.Body)
}

func (w *WhileStatement) String() string {
	return fmt.Sprintf("while (%s) %s", w.Condition, w.Body)
}

func (d *DoWhileStatement) String() string {
	return fmt.Sprintf("do %s while (%s);", d.Body, d.Condition)
}

func (r *ReturnStatement) String() string {
	if r.Expression == nil {
		return "return;"
	}
	return "return " + r.Expression.String() + ";"
}

func (e *EmitStatement) String() string {
	return "emit " + e.EventCall.String() + ";"
}

func (r *RevertStatement) String() string {
	return "revert " + r.RevertCall.String() + ";"
}

func (*BreakStatement) String() string    { return "break;" }
func (*ContinueStatement) String() string { return "continue;" }

func (a *InlineAssemblyStatement) String() string {
	return "assembly " + a.Body
}

func (t *TryStatement) String() string {
	var b strings.Builder
	b.WriteString("try " + t.Expression.String())
	if len(t.ReturnParameters) > 0 {
		b.WriteString(" returns (" + joinVars(t.ReturnParameters) + ")")
	}
	b.WriteString(" " + t.Body.String())
	for _, c := range t.CatchClauses {
		b.WriteString(" " + c.String())
	}
	return b.String()
}

func (c *CatchClause) String() string {
	s := "catch"
	if c.Kind != "" {
		s += " " + c.Kind
	}
	if c.Parameters != nil {
		s += "(" + joinVars(c.Parameters) + ")"
	}
	return s + " " + c.Body.String()
}

func (b *BadStatement) String() string {
	return fmt.Sprintf("BadStatement: %s", b.Bad.Message)
}

// Expressions

func (i *Identifier) String() string { return i.Name }

func (m *MemberAccess) String() string {
	return m.Expression.String() + "." + m.MemberName
}

func (i *IndexAccess) String() string {
	if i.Index == nil {
		return i.Base.String() + "[]"
	}
	return i.Base.String() + "[" + i.Index.String() + "]"
}

func (i *IndexRangeAccess) String() string {
	start, end := "", ""
	if i.IndexStart != nil {
		start = i.IndexStart.String()
	}
	if i.IndexEnd != nil {
		end = i.IndexEnd.String()
	}
	return i.Base.String() + "[" + start + ":" + end + "]"
}

func (f *FunctionCall) String() string {
	if len(f.Names) > 0 {
		fields := make([]string, len(f.Names))
		for i, name := range f.Names {
			fields[i] = name + ": " + f.Arguments[i].String()
		}
		return f.Expression.String() + "({" + strings.Join(fields, ", ") + "})"
	}
	return f.Expression.String() + "(" + joinExprs(f.Arguments) + ")"
}

func (n *NameValueList) String() string {
	fields := make([]string, len(n.Names))
	for i, name := range n.Names {
		fields[i] = name + ": " + n.Values[i].String()
	}
	return n.Expression.String() + "{" + strings.Join(fields, ", ") + "}"
}

func (b *BinaryOperation) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Operator, b.Right)
}

func (u *UnaryOperation) String() string {
	if !u.IsPrefix {
		return u.SubExpression.String() + u.Operator
	}
	if u.Operator == "delete" {
		return "delete " + u.SubExpression.String()
	}
	return u.Operator + u.SubExpression.String()
}

func (c *Conditional) String() string {
	return fmt.Sprintf("%s ? %s : %s", c.Condition, c.TrueExpression, c.FalseExpression)
}

func (n *NewExpression) String() string {
	return "new " + n.TypeName.String()
}

func (t *TupleExpression) String() string {
	parts := make([]string, len(t.Components))
	for i, c := range t.Components {
		if c != nil {
			parts[i] = c.String()
		}
	}
	if t.IsArray {
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (n *NumberLiteral) String() string {
	if n.Subdenomination != "" {
		return n.Number + " " + n.Subdenomination
	}
	return n.Number
}

func (s *StringLiteral) String() string { return fmt.Sprintf("%q", s.Value) }

func (h *HexLiteral) String() string { return fmt.Sprintf("hex%q", h.Value) }

func (b *BooleanLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (b *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", b.Bad.Message)
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		if e != nil {
			parts[i] = e.String()
		}
	}
	return strings.Join(parts, ", ")
}

func joinVars(vars []*VariableDeclaration) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		if v != nil {
			parts[i] = v.String()
		}
	}
	return strings.Join(parts, ", ")
}
