package ast

type Statement interface {
	Node
	isStatement()
}

// Block
// Example: "{ total += amount; emit Deposit(msg.sender, amount); }"
type Block struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}

// UncheckedStatement
// Example: "unchecked { ++i; }"
type UncheckedStatement struct {
	Pos    Position
	EndPos Position
	Block  *Block
}

type ExpressionStatement struct {
	Pos        Position
	EndPos     Position
	Expression Expr
}

// VariableDeclarationStatement declares one local or destructures a tuple.
// Variables holds nil entries for skipped tuple components.
// Example: "uint256 len = items.length;" or "(, uint256 b) = pair();"
type VariableDeclarationStatement struct {
	Pos          Position
	EndPos       Position
	Variables    []*VariableDeclaration
	InitialValue Expr
}

type IfStatement struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	TrueBody  Statement
	FalseBody Statement
}

// ForStatement
// Example: "for (uint256 i = 0; i < items.length; i++) { ... }"
type ForStatement struct {
	Pos                 Position
	EndPos              Position
	InitExpression      Statement
	ConditionExpression Expr
	LoopExpression      *ExpressionStatement
	Body                Statement
}

type WhileStatement struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Body      Statement
}

type DoWhileStatement struct {
	Pos       Position
	EndPos    Position
	Condition Expr
	Body      Statement
}

type ReturnStatement struct {
	Pos        Position
	EndPos     Position
	Expression Expr
}

// EmitStatement
// Example: "emit Transfer(from, to, value);"
type EmitStatement struct {
	Pos       Position
	EndPos    Position
	EventCall *FunctionCall
}

// RevertStatement is the custom error form only. "revert("msg")" parses as a
// plain call to the identifier revert.
// Example: "revert Unauthorized(msg.sender);"
type RevertStatement struct {
	Pos        Position
	EndPos     Position
	RevertCall *FunctionCall
}

type BreakStatement struct {
	Pos    Position
	EndPos Position
}

type ContinueStatement struct {
	Pos    Position
	EndPos Position
}

// InlineAssemblyStatement keeps the raw Yul body text.
type InlineAssemblyStatement struct {
	Pos    Position
	EndPos Position
	Body   string
}

// TryStatement
// Example: "try oracle.latest() returns (uint256 p) { price = p; } catch { price = 0; }"
type TryStatement struct {
	Pos              Position
	EndPos           Position
	Expression       Expr
	ReturnParameters []*VariableDeclaration
	Body             *Block
	CatchClauses     []*CatchClause
}

type CatchClause struct {
	Pos        Position
	EndPos     Position
	Kind       string // "Error", "Panic" or ""
	Parameters []*VariableDeclaration
	Body       *Block
}

// BadStatement represents parse errors in statements
type BadStatement struct {
	Bad BadNode
}

func (*Block) isStatement()                        {}
func (*UncheckedStatement) isStatement()           {}
func (*ExpressionStatement) isStatement()          {}
func (*VariableDeclarationStatement) isStatement() {}
func (*IfStatement) isStatement()                  {}
func (*ForStatement) isStatement()                 {}
func (*WhileStatement) isStatement()               {}
func (*DoWhileStatement) isStatement()             {}
func (*ReturnStatement) isStatement()              {}
func (*EmitStatement) isStatement()                {}
func (*RevertStatement) isStatement()              {}
func (*BreakStatement) isStatement()               {}
func (*ContinueStatement) isStatement()            {}
func (*InlineAssemblyStatement) isStatement()      {}
func (*TryStatement) isStatement()                 {}
func (*BadStatement) isStatement()                 {}
