package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (s *SourceUnit) NodePos() Position    { return s.Pos }
func (s *SourceUnit) NodeEndPos() Position { return s.EndPos }
func (*SourceUnit) NodeType() NodeType     { return SOURCE_UNIT }

func (p *PragmaDirective) NodePos() Position    { return p.Pos }
func (p *PragmaDirective) NodeEndPos() Position { return p.EndPos }
func (*PragmaDirective) NodeType() NodeType     { return PRAGMA_DIRECTIVE }

func (i *ImportDirective) NodePos() Position    { return i.Pos }
func (i *ImportDirective) NodeEndPos() Position { return i.EndPos }
func (*ImportDirective) NodeType() NodeType     { return IMPORT_DIRECTIVE }

func (c *ContractDefinition) NodePos() Position    { return c.Pos }
func (c *ContractDefinition) NodeEndPos() Position { return c.EndPos }
func (*ContractDefinition) NodeType() NodeType     { return CONTRACT_DEFINITION }

func (i *InheritanceSpecifier) NodePos() Position    { return i.Pos }
func (i *InheritanceSpecifier) NodeEndPos() Position { return i.EndPos }
func (*InheritanceSpecifier) NodeType() NodeType     { return INHERITANCE_SPECIFIER }

func (u *UsingForDeclaration) NodePos() Position    { return u.Pos }
func (u *UsingForDeclaration) NodeEndPos() Position { return u.EndPos }
func (*UsingForDeclaration) NodeType() NodeType     { return USING_FOR_DECLARATION }

func (s *StateVariableDeclaration) NodePos() Position    { return s.Pos }
func (s *StateVariableDeclaration) NodeEndPos() Position { return s.EndPos }
func (*StateVariableDeclaration) NodeType() NodeType     { return STATE_VARIABLE_DECLARATION }

func (v *VariableDeclaration) NodePos() Position    { return v.Pos }
func (v *VariableDeclaration) NodeEndPos() Position { return v.EndPos }
func (*VariableDeclaration) NodeType() NodeType     { return VARIABLE_DECLARATION }

func (f *FunctionDefinition) NodePos() Position    { return f.Pos }
func (f *FunctionDefinition) NodeEndPos() Position { return f.EndPos }
func (*FunctionDefinition) NodeType() NodeType     { return FUNCTION_DEFINITION }

func (m *ModifierDefinition) NodePos() Position    { return m.Pos }
func (m *ModifierDefinition) NodeEndPos() Position { return m.EndPos }
func (*ModifierDefinition) NodeType() NodeType     { return MODIFIER_DEFINITION }

func (m *ModifierInvocation) NodePos() Position    { return m.Pos }
func (m *ModifierInvocation) NodeEndPos() Position { return m.EndPos }
func (*ModifierInvocation) NodeType() NodeType     { return MODIFIER_INVOCATION }

func (e *EventDefinition) NodePos() Position    { return e.Pos }
func (e *EventDefinition) NodeEndPos() Position { return e.EndPos }
func (*EventDefinition) NodeType() NodeType     { return EVENT_DEFINITION }

func (e *CustomErrorDefinition) NodePos() Position    { return e.Pos }
func (e *CustomErrorDefinition) NodeEndPos() Position { return e.EndPos }
func (*CustomErrorDefinition) NodeType() NodeType     { return CUSTOM_ERROR_DEFINITION }

func (s *StructDefinition) NodePos() Position    { return s.Pos }
func (s *StructDefinition) NodeEndPos() Position { return s.EndPos }
func (*StructDefinition) NodeType() NodeType     { return STRUCT_DEFINITION }

func (e *EnumDefinition) NodePos() Position    { return e.Pos }
func (e *EnumDefinition) NodeEndPos() Position { return e.EndPos }
func (*EnumDefinition) NodeType() NodeType     { return ENUM_DEFINITION }

func (e *EnumValue) NodePos() Position    { return e.Pos }
func (e *EnumValue) NodeEndPos() Position { return e.EndPos }
func (*EnumValue) NodeType() NodeType     { return ENUM_VALUE }

func (b *BadContractPart) NodePos() Position    { return b.Bad.Pos }
func (b *BadContractPart) NodeEndPos() Position { return b.Bad.EndPos }
func (*BadContractPart) NodeType() NodeType     { return BAD_CONTRACT_PART }

func (e *ElementaryTypeName) NodePos() Position    { return e.Pos }
func (e *ElementaryTypeName) NodeEndPos() Position { return e.EndPos }
func (*ElementaryTypeName) NodeType() NodeType     { return ELEMENTARY_TYPE_NAME }

func (u *UserDefinedTypeName) NodePos() Position    { return u.Pos }
func (u *UserDefinedTypeName) NodeEndPos() Position { return u.EndPos }
func (*UserDefinedTypeName) NodeType() NodeType     { return USER_DEFINED_TYPE_NAME }

func (a *ArrayTypeName) NodePos() Position    { return a.Pos }
func (a *ArrayTypeName) NodeEndPos() Position { return a.EndPos }
func (*ArrayTypeName) NodeType() NodeType     { return ARRAY_TYPE_NAME }

func (m *Mapping) NodePos() Position    { return m.Pos }
func (m *Mapping) NodeEndPos() Position { return m.EndPos }
func (*Mapping) NodeType() NodeType     { return MAPPING }

func (f *FunctionTypeName) NodePos() Position    { return f.Pos }
func (f *FunctionTypeName) NodeEndPos() Position { return f.EndPos }
func (*FunctionTypeName) NodeType() NodeType     { return FUNCTION_TYPE_NAME }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (u *UncheckedStatement) NodePos() Position    { return u.Pos }
func (u *UncheckedStatement) NodeEndPos() Position { return u.EndPos }
func (*UncheckedStatement) NodeType() NodeType     { return UNCHECKED_STATEMENT }

func (e *ExpressionStatement) NodePos() Position    { return e.Pos }
func (e *ExpressionStatement) NodeEndPos() Position { return e.EndPos }
func (*ExpressionStatement) NodeType() NodeType     { return EXPRESSION_STATEMENT }

func (v *VariableDeclarationStatement) NodePos() Position    { return v.Pos }
func (v *VariableDeclarationStatement) NodeEndPos() Position { return v.EndPos }
func (*VariableDeclarationStatement) NodeType() NodeType     { return VARIABLE_DECLARATION_STATEMENT }

func (i *IfStatement) NodePos() Position    { return i.Pos }
func (i *IfStatement) NodeEndPos() Position { return i.EndPos }
func (*IfStatement) NodeType() NodeType     { return IF_STATEMENT }

func (f *ForStatement) NodePos() Position    { return f.Pos }
func (f *ForStatement) NodeEndPos() Position { return f.EndPos }
func (*ForStatement) NodeType() NodeType     { return FOR_STATEMENT }

func (w *WhileStatement) NodePos() Position    { return w.Pos }
func (w *WhileStatement) NodeEndPos() Position { return w.EndPos }
func (*WhileStatement) NodeType() NodeType     { return WHILE_STATEMENT }

func (d *DoWhileStatement) NodePos() Position    { return d.Pos }
func (d *DoWhileStatement) NodeEndPos() Position { return d.EndPos }
func (*DoWhileStatement) NodeType() NodeType     { return DO_WHILE_STATEMENT }

func (r *ReturnStatement) NodePos() Position    { return r.Pos }
func (r *ReturnStatement) NodeEndPos() Position { return r.EndPos }
func (*ReturnStatement) NodeType() NodeType     { return RETURN_STATEMENT }

func (e *EmitStatement) NodePos() Position    { return e.Pos }
func (e *EmitStatement) NodeEndPos() Position { return e.EndPos }
func (*EmitStatement) NodeType() NodeType     { return EMIT_STATEMENT }

func (r *RevertStatement) NodePos() Position    { return r.Pos }
func (r *RevertStatement) NodeEndPos() Position { return r.EndPos }
func (*RevertStatement) NodeType() NodeType     { return REVERT_STATEMENT }

func (b *BreakStatement) NodePos() Position    { return b.Pos }
func (b *BreakStatement) NodeEndPos() Position { return b.EndPos }
func (*BreakStatement) NodeType() NodeType     { return BREAK_STATEMENT }

func (c *ContinueStatement) NodePos() Position    { return c.Pos }
func (c *ContinueStatement) NodeEndPos() Position { return c.EndPos }
func (*ContinueStatement) NodeType() NodeType     { return CONTINUE_STATEMENT }

func (a *InlineAssemblyStatement) NodePos() Position    { return a.Pos }
func (a *InlineAssemblyStatement) NodeEndPos() Position { return a.EndPos }
func (*InlineAssemblyStatement) NodeType() NodeType     { return INLINE_ASSEMBLY_STATEMENT }

func (t *TryStatement) NodePos() Position    { return t.Pos }
func (t *TryStatement) NodeEndPos() Position { return t.EndPos }
func (*TryStatement) NodeType() NodeType     { return TRY_STATEMENT }

func (c *CatchClause) NodePos() Position    { return c.Pos }
func (c *CatchClause) NodeEndPos() Position { return c.EndPos }
func (*CatchClause) NodeType() NodeType     { return CATCH_CLAUSE }

func (b *BadStatement) NodePos() Position    { return b.Bad.Pos }
func (b *BadStatement) NodeEndPos() Position { return b.Bad.EndPos }
func (*BadStatement) NodeType() NodeType     { return BAD_STATEMENT }

func (i *Identifier) NodePos() Position    { return i.Pos }
func (i *Identifier) NodeEndPos() Position { return i.EndPos }
func (*Identifier) NodeType() NodeType     { return IDENTIFIER }

func (m *MemberAccess) NodePos() Position    { return m.Pos }
func (m *MemberAccess) NodeEndPos() Position { return m.EndPos }
func (*MemberAccess) NodeType() NodeType     { return MEMBER_ACCESS }

func (i *IndexAccess) NodePos() Position    { return i.Pos }
func (i *IndexAccess) NodeEndPos() Position { return i.EndPos }
func (*IndexAccess) NodeType() NodeType     { return INDEX_ACCESS }

func (i *IndexRangeAccess) NodePos() Position    { return i.Pos }
func (i *IndexRangeAccess) NodeEndPos() Position { return i.EndPos }
func (*IndexRangeAccess) NodeType() NodeType     { return INDEX_RANGE_ACCESS }

func (f *FunctionCall) NodePos() Position    { return f.Pos }
func (f *FunctionCall) NodeEndPos() Position { return f.EndPos }
func (*FunctionCall) NodeType() NodeType     { return FUNCTION_CALL }

func (n *NameValueList) NodePos() Position    { return n.Pos }
func (n *NameValueList) NodeEndPos() Position { return n.EndPos }
func (*NameValueList) NodeType() NodeType     { return NAME_VALUE_LIST }

func (b *BinaryOperation) NodePos() Position    { return b.Pos }
func (b *BinaryOperation) NodeEndPos() Position { return b.EndPos }
func (*BinaryOperation) NodeType() NodeType     { return BINARY_OPERATION }

func (u *UnaryOperation) NodePos() Position    { return u.Pos }
func (u *UnaryOperation) NodeEndPos() Position { return u.EndPos }
func (*UnaryOperation) NodeType() NodeType     { return UNARY_OPERATION }

func (c *Conditional) NodePos() Position    { return c.Pos }
func (c *Conditional) NodeEndPos() Position { return c.EndPos }
func (*Conditional) NodeType() NodeType     { return CONDITIONAL }

func (n *NewExpression) NodePos() Position    { return n.Pos }
func (n *NewExpression) NodeEndPos() Position { return n.EndPos }
func (*NewExpression) NodeType() NodeType     { return NEW_EXPRESSION }

func (t *TupleExpression) NodePos() Position    { return t.Pos }
func (t *TupleExpression) NodeEndPos() Position { return t.EndPos }
func (*TupleExpression) NodeType() NodeType     { return TUPLE_EXPRESSION }

func (n *NumberLiteral) NodePos() Position    { return n.Pos }
func (n *NumberLiteral) NodeEndPos() Position { return n.EndPos }
func (*NumberLiteral) NodeType() NodeType     { return NUMBER_LITERAL }

func (s *StringLiteral) NodePos() Position    { return s.Pos }
func (s *StringLiteral) NodeEndPos() Position { return s.EndPos }
func (*StringLiteral) NodeType() NodeType     { return STRING_LITERAL }

func (h *HexLiteral) NodePos() Position    { return h.Pos }
func (h *HexLiteral) NodeEndPos() Position { return h.EndPos }
func (*HexLiteral) NodeType() NodeType     { return HEX_LITERAL }

func (b *BooleanLiteral) NodePos() Position    { return b.Pos }
func (b *BooleanLiteral) NodeEndPos() Position { return b.EndPos }
func (*BooleanLiteral) NodeType() NodeType     { return BOOLEAN_LITERAL }

func (b *BadExpr) NodePos() Position    { return b.Bad.Pos }
func (b *BadExpr) NodeEndPos() Position { return b.Bad.EndPos }
func (*BadExpr) NodeType() NodeType     { return BAD_EXPR }
