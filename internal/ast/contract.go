package ast

// SourceUnit is the root of a parsed Solidity file.
// Example: "pragma solidity ^0.8.0; contract Vault { ... }"
type SourceUnit struct {
	Pos      Position
	EndPos   Position
	Children []SourceUnitPart
	Comments []*Comment // every comment in the file, in source order
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int // 1-based, 0 when unknown
	Column   int // 1-based, 0 when unknown
}

// Ident is a declared name. It is not an expression and walkers never visit it.
// Example: the "Vault" in "contract Vault {}"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// BadNode contains error information for failed parsing
type BadNode struct {
	Pos     Position
	EndPos  Position
	Message string
}

// Comment is a line or block comment. Doc reports "///" and "/**" forms.
// Example: "// gasopt-disable-next-line public-vs-external"
type Comment struct {
	Pos    Position
	EndPos Position
	Text   string
	Doc    bool
	Block  bool
}

// PragmaDirective
// Example: "pragma solidity ^0.8.20;"
type PragmaDirective struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  string
}

// ImportDirective keeps only the imported path.
// Example: `import {IERC20} from "./IERC20.sol";`
type ImportDirective struct {
	Pos    Position
	EndPos Position
	Path   string
}

// ContractDefinition covers contracts, abstract contracts, interfaces and libraries.
// Kind is one of "contract", "abstract", "interface", "library".
type ContractDefinition struct {
	Pos           Position
	EndPos        Position
	Name          Ident
	Kind          string
	BaseContracts []*InheritanceSpecifier
	SubNodes      []ContractPart
}

// InheritanceSpecifier
// Example: "Ownable(msg.sender)" in "contract Vault is Ownable(msg.sender)"
type InheritanceSpecifier struct {
	Pos       Position
	EndPos    Position
	BaseName  *UserDefinedTypeName
	Arguments []Expr
}

// UsingForDeclaration
// Example: "using SafeERC20 for IERC20;"
type UsingForDeclaration struct {
	Pos         Position
	EndPos      Position
	LibraryName string
	TypeName    TypeName // nil for "*"
}

// StateVariableDeclaration wraps exactly one contract-level variable.
// Example: "uint256 public totalSupply = 1e18;"
type StateVariableDeclaration struct {
	Pos          Position
	EndPos       Position
	Variables    []*VariableDeclaration
	InitialValue Expr
}

// VariableDeclaration is used for state variables, parameters, struct members
// and local declarations. Name is nil for unnamed parameters.
type VariableDeclaration struct {
	Pos             Position
	EndPos          Position
	Name            *Ident
	TypeName        TypeName
	StorageLocation string // "memory", "storage", "calldata" or ""
	Visibility      string // state variables only; "" when omitted
	IsStateVar      bool
	IsDeclaredConst bool
	IsImmutable     bool
	IsIndexed       bool
	Expression      Expr // state variable initializer
}

// FunctionDefinition covers named functions, constructors, fallback and receive.
// Visibility is "default" when omitted, matching Solidity's implicit rules.
type FunctionDefinition struct {
	Pos              Position
	EndPos           Position
	Name             *Ident // nil for constructor, fallback and receive
	Parameters       []*VariableDeclaration
	ReturnParameters []*VariableDeclaration
	Modifiers        []*ModifierInvocation
	Body             *Block // nil for declarations without implementation
	Visibility       string
	StateMutability  string // "pure", "view", "payable" or ""
	IsConstructor    bool
	IsFallback       bool
	IsReceiveEther   bool
	IsVirtual        bool
	Override         []string
}

// FunctionName returns the declared name, or "" for unnamed special functions.
func (f *FunctionDefinition) FunctionName() string {
	if f.Name == nil {
		return ""
	}
	return f.Name.Value
}

// ModifierDefinition
// Example: "modifier onlyOwner() { require(msg.sender == owner); _; }"
type ModifierDefinition struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Parameters []*VariableDeclaration
	Body       *Block
	IsVirtual  bool
	Override   []string
}

// ModifierInvocation
// Example: "onlyRole(ADMIN)" in a function header
type ModifierInvocation struct {
	Pos       Position
	EndPos    Position
	Name      string
	Arguments []Expr
}

// EventDefinition
// Example: "event Transfer(address indexed from, address indexed to, uint256 value);"
type EventDefinition struct {
	Pos         Position
	EndPos      Position
	Name        Ident
	Parameters  []*VariableDeclaration
	IsAnonymous bool
}

// CustomErrorDefinition
// Example: "error InsufficientBalance(uint256 required, uint256 available);"
type CustomErrorDefinition struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Parameters []*VariableDeclaration
}

// StructDefinition
// Example: "struct Position { uint128 size; uint64 openedAt; }"
type StructDefinition struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Members []*VariableDeclaration
}

// EnumDefinition
// Example: "enum Status { Active, Paused }"
type EnumDefinition struct {
	Pos     Position
	EndPos  Position
	Name    Ident
	Members []*EnumValue
}

type EnumValue struct {
	Pos    Position
	EndPos Position
	Name   string
}

// BadContractPart represents parse errors in contract-level items
type BadContractPart struct {
	Bad BadNode
}

// SourceUnitPart is anything allowed at file level.
type SourceUnitPart interface {
	Node
	isSourceUnitPart()
}

// ContractPart is anything allowed inside a contract body.
type ContractPart interface {
	Node
	isContractPart()
}

func (*PragmaDirective) isSourceUnitPart()          {}
func (*ImportDirective) isSourceUnitPart()          {}
func (*ContractDefinition) isSourceUnitPart()       {}
func (*UsingForDeclaration) isSourceUnitPart()      {}
func (*StateVariableDeclaration) isSourceUnitPart() {}
func (*FunctionDefinition) isSourceUnitPart()       {}
func (*EventDefinition) isSourceUnitPart()          {}
func (*CustomErrorDefinition) isSourceUnitPart()    {}
func (*StructDefinition) isSourceUnitPart()         {}
func (*EnumDefinition) isSourceUnitPart()           {}
func (*BadContractPart) isSourceUnitPart()          {}

func (*UsingForDeclaration) isContractPart()      {}
func (*StateVariableDeclaration) isContractPart() {}
func (*FunctionDefinition) isContractPart()       {}
func (*ModifierDefinition) isContractPart()       {}
func (*EventDefinition) isContractPart()          {}
func (*CustomErrorDefinition) isContractPart()    {}
func (*StructDefinition) isContractPart()         {}
func (*EnumDefinition) isContractPart()           {}
func (*BadContractPart) isContractPart()          {}