package ast

type Expr interface {
	Node
	isExpr()
}

// TypeName is any type reference. Elementary and user-defined type names can
// also appear in expression position, as in "uint256(x)" or "IERC20(token)".
type TypeName interface {
	Node
	isTypeName()
}

// ElementaryTypeName
// Example: "uint256", "address payable", "bytes32"
type ElementaryTypeName struct {
	Pos             Position
	EndPos          Position
	Name            string
	StateMutability string // "payable" for address payable
}

// UserDefinedTypeName
// Example: "IERC20", "Pool.Position"
type UserDefinedTypeName struct {
	Pos      Position
	EndPos   Position
	NamePath string
}

// ArrayTypeName
// Example: "uint256[]", "address[4]"
type ArrayTypeName struct {
	Pos          Position
	EndPos       Position
	BaseTypeName TypeName
	Length       Expr // nil for dynamic arrays
}

// Mapping
// Example: "mapping(address => uint256)"
type Mapping struct {
	Pos       Position
	EndPos    Position
	KeyType   TypeName
	ValueType TypeName
}

// FunctionTypeName
// Example: "function (uint256) external returns (bool)"
type FunctionTypeName struct {
	Pos              Position
	EndPos           Position
	Parameters       []*VariableDeclaration
	ReturnParameters []*VariableDeclaration
	Visibility       string
	StateMutability  string
}

// Identifier is a name used in expression position.
// Example: "balance", "msg", "this"
type Identifier struct {
	Pos    Position
	EndPos Position
	Name   string
}

// MemberAccess
// Example: "items.length", "msg.sender"
type MemberAccess struct {
	Pos        Position
	EndPos     Position
	Expression Expr
	MemberName string
}

// IndexAccess
// Example: "balances[msg.sender]"
type IndexAccess struct {
	Pos    Position
	EndPos Position
	Base   Expr
	Index  Expr // nil for "T[]" used as a type expression
}

// IndexRangeAccess
// Example: "data[4:]"
type IndexRangeAccess struct {
	Pos        Position
	EndPos     Position
	Base       Expr
	IndexStart Expr
	IndexEnd   Expr
}

// FunctionCall covers calls, type conversions and struct construction.
// Names is set for named-argument calls like "f({to: a, amount: b})".
type FunctionCall struct {
	Pos        Position
	EndPos     Position
	Expression Expr
	Arguments  []Expr
	Names      []string
}

// NameValueList carries call options.
// Example: "{value: msg.value, gas: 5000}" in "target.call{value: msg.value}(data)"
type NameValueList struct {
	Pos        Position
	EndPos     Position
	Expression Expr
	Names      []string
	Values     []Expr
}

// BinaryOperation includes assignments, whose Operator is "=", "+=" and so on.
type BinaryOperation struct {
	Pos      Position
	EndPos   Position
	Operator string
	Left     Expr
	Right    Expr
}

// UnaryOperation
// Example: "!paused", "++i", "i--", "delete balances[a]"
type UnaryOperation struct {
	Pos           Position
	EndPos        Position
	Operator      string
	SubExpression Expr
	IsPrefix      bool
}

// Conditional
// Example: "a > b ? a : b"
type Conditional struct {
	Pos             Position
	EndPos          Position
	Condition       Expr
	TrueExpression  Expr
	FalseExpression Expr
}

// NewExpression
// Example: "new uint256[](n)" is a FunctionCall whose callee is "new uint256[]"
type NewExpression struct {
	Pos      Position
	EndPos   Position
	TypeName TypeName
}

// TupleExpression covers "(a, b)", "(, b)" and inline arrays "[1, 2, 3]".
// Components holds nil for omitted entries.
type TupleExpression struct {
	Pos        Position
	EndPos     Position
	Components []Expr
	IsArray    bool
}

// NumberLiteral
// Example: "1e18", "0xff", "30 days"
type NumberLiteral struct {
	Pos             Position
	EndPos          Position
	Number          string
	Subdenomination string
}

// StringLiteral holds the unquoted value. Adjacent literals are concatenated.
type StringLiteral struct {
	Pos       Position
	EndPos    Position
	Value     string
	IsUnicode bool
}

// HexLiteral
// Example: hex"deadbeef"
type HexLiteral struct {
	Pos    Position
	EndPos Position
	Value  string
}

type BooleanLiteral struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// BadExpr represents parse errors in expressions
type BadExpr struct {
	Bad BadNode
}

func (*ElementaryTypeName) isTypeName()  {}
func (*UserDefinedTypeName) isTypeName() {}
func (*ArrayTypeName) isTypeName()       {}
func (*Mapping) isTypeName()             {}
func (*FunctionTypeName) isTypeName()    {}

func (*ElementaryTypeName) isExpr()  {}
func (*UserDefinedTypeName) isExpr() {}
func (*Identifier) isExpr()          {}
func (*MemberAccess) isExpr()        {}
func (*IndexAccess) isExpr()         {}
func (*IndexRangeAccess) isExpr()    {}
func (*FunctionCall) isExpr()        {}
func (*NameValueList) isExpr()       {}
func (*BinaryOperation) isExpr()     {}
func (*UnaryOperation) isExpr()      {}
func (*Conditional) isExpr()         {}
func (*NewExpression) isExpr()       {}
func (*TupleExpression) isExpr()     {}
func (*NumberLiteral) isExpr()       {}
func (*StringLiteral) isExpr()       {}
func (*HexLiteral) isExpr()          {}
func (*BooleanLiteral) isExpr()      {}
func (*BadExpr) isExpr()             {}
