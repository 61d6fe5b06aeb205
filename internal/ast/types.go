package ast

// NodeType tags every node in a Solidity syntax tree. Visitors are keyed by it.
type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota
	BAD_EXPR
	BAD_STATEMENT
	BAD_CONTRACT_PART

	// Source unit level
	SOURCE_UNIT
	PRAGMA_DIRECTIVE
	IMPORT_DIRECTIVE
	CONTRACT_DEFINITION
	INHERITANCE_SPECIFIER
	USING_FOR_DECLARATION

	// Declarations
	STATE_VARIABLE_DECLARATION
	VARIABLE_DECLARATION
	FUNCTION_DEFINITION
	MODIFIER_DEFINITION
	MODIFIER_INVOCATION
	EVENT_DEFINITION
	CUSTOM_ERROR_DEFINITION
	STRUCT_DEFINITION
	ENUM_DEFINITION
	ENUM_VALUE

	// Type names
	ELEMENTARY_TYPE_NAME
	USER_DEFINED_TYPE_NAME
	ARRAY_TYPE_NAME
	MAPPING
	FUNCTION_TYPE_NAME

	// Statements
	BLOCK
	UNCHECKED_STATEMENT
	EXPRESSION_STATEMENT
	VARIABLE_DECLARATION_STATEMENT
	IF_STATEMENT
	FOR_STATEMENT
	WHILE_STATEMENT
	DO_WHILE_STATEMENT
	RETURN_STATEMENT
	EMIT_STATEMENT
	REVERT_STATEMENT
	BREAK_STATEMENT
	CONTINUE_STATEMENT
	INLINE_ASSEMBLY_STATEMENT
	TRY_STATEMENT
	CATCH_CLAUSE

	// Expressions
	IDENTIFIER
	MEMBER_ACCESS
	INDEX_ACCESS
	INDEX_RANGE_ACCESS
	FUNCTION_CALL
	NAME_VALUE_LIST
	BINARY_OPERATION
	UNARY_OPERATION
	CONDITIONAL
	NEW_EXPRESSION
	TUPLE_EXPRESSION
	NUMBER_LITERAL
	STRING_LITERAL
	HEX_LITERAL
	BOOLEAN_LITERAL
)

var nodeTypeNames = [...]string{
	ILLEGAL:                        "Illegal",
	BAD_EXPR:                       "BadExpr",
	BAD_STATEMENT:                  "BadStatement",
	BAD_CONTRACT_PART:              "BadContractPart",
	SOURCE_UNIT:                    "SourceUnit",
	PRAGMA_DIRECTIVE:               "PragmaDirective",
	IMPORT_DIRECTIVE:               "ImportDirective",
	CONTRACT_DEFINITION:            "ContractDefinition",
	INHERITANCE_SPECIFIER:          "InheritanceSpecifier",
	USING_FOR_DECLARATION:          "UsingForDeclaration",
	STATE_VARIABLE_DECLARATION:     "StateVariableDeclaration",
	VARIABLE_DECLARATION:           "VariableDeclaration",
	FUNCTION_DEFINITION:            "FunctionDefinition",
	MODIFIER_DEFINITION:            "ModifierDefinition",
	MODIFIER_INVOCATION:            "ModifierInvocation",
	EVENT_DEFINITION:               "EventDefinition",
	CUSTOM_ERROR_DEFINITION:        "CustomErrorDefinition",
	STRUCT_DEFINITION:              "StructDefinition",
	ENUM_DEFINITION:                "EnumDefinition",
	ENUM_VALUE:                     "EnumValue",
	ELEMENTARY_TYPE_NAME:           "ElementaryTypeName",
	USER_DEFINED_TYPE_NAME:         "UserDefinedTypeName",
	ARRAY_TYPE_NAME:                "ArrayTypeName",
	MAPPING:                        "Mapping",
	FUNCTION_TYPE_NAME:             "FunctionTypeName",
	BLOCK:                          "Block",
	UNCHECKED_STATEMENT:            "UncheckedStatement",
	EXPRESSION_STATEMENT:           "ExpressionStatement",
	VARIABLE_DECLARATION_STATEMENT: "VariableDeclarationStatement",
	IF_STATEMENT:                   "IfStatement",
	FOR_STATEMENT:                  "ForStatement",
	WHILE_STATEMENT:                "WhileStatement",
	DO_WHILE_STATEMENT:             "DoWhileStatement",
	RETURN_STATEMENT:               "ReturnStatement",
	EMIT_STATEMENT:                 "EmitStatement",
	REVERT_STATEMENT:               "RevertStatement",
	BREAK_STATEMENT:                "BreakStatement",
	CONTINUE_STATEMENT:             "ContinueStatement",
	INLINE_ASSEMBLY_STATEMENT:      "InlineAssemblyStatement",
	TRY_STATEMENT:                  "TryStatement",
	CATCH_CLAUSE:                   "CatchClause",
	IDENTIFIER:                     "Identifier",
	MEMBER_ACCESS:                  "MemberAccess",
	INDEX_ACCESS:                   "IndexAccess",
	INDEX_RANGE_ACCESS:             "IndexRangeAccess",
	FUNCTION_CALL:                  "FunctionCall",
	NAME_VALUE_LIST:                "NameValueList",
	BINARY_OPERATION:               "BinaryOperation",
	UNARY_OPERATION:                "UnaryOperation",
	CONDITIONAL:                    "Conditional",
	NEW_EXPRESSION:                 "NewExpression",
	TUPLE_EXPRESSION:               "TupleExpression",
	NUMBER_LITERAL:                 "NumberLiteral",
	STRING_LITERAL:                 "StringLiteral",
	HEX_LITERAL:                    "HexLiteral",
	BOOLEAN_LITERAL:                "BooleanLiteral",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) && nodeTypeNames[t] != "" {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}
