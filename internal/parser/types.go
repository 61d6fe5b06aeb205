package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	ELEMENTARY_TYPE
	NUMBER
	HEX_NUMBER
	STRING
	HEX_STRING
	UNICODE_STRING

	// Keywords
	PRAGMA
	IMPORT
	CONTRACT
	INTERFACE
	LIBRARY
	ABSTRACT
	IS
	USING
	STRUCT
	ENUM
	EVENT
	MODIFIER
	FUNCTION
	CONSTRUCTOR
	RETURNS
	RETURN
	IF
	ELSE
	FOR
	WHILE
	DO
	BREAK
	CONTINUE
	EMIT
	NEW
	DELETE
	TRY
	CATCH
	ASSEMBLY
	UNCHECKED
	MAPPING
	TRUE
	FALSE
	PUBLIC
	PRIVATE
	INTERNAL
	EXTERNAL
	PURE
	VIEW
	PAYABLE
	CONSTANT
	IMMUTABLE
	VIRTUAL
	OVERRIDE
	INDEXED
	ANONYMOUS
	MEMORY
	STORAGE
	CALLDATA

	// Operators
	PLUS
	INCREMENT
	MINUS
	DECREMENT
	STAR
	STAR_STAR
	SLASH
	PERCENT
	BANG
	BANG_EQUAL
	TILDE
	EQUAL
	EQUAL_EQUAL
	ARROW
	LESS
	LESS_EQUAL
	SHIFT_LEFT
	GREATER
	GREATER_EQUAL
	SHIFT_RIGHT
	AND
	AMPERSAND
	OR
	PIPE
	CARET
	QUESTION

	// Assignment operators
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	PERCENT_EQUAL
	AMPERSAND_EQUAL
	PIPE_EQUAL
	CARET_EQUAL
	SHIFT_LEFT_EQUAL
	SHIFT_RIGHT_EQUAL

	// Separators
	COMMA
	DOT
	SEMICOLON
	COLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET

	// Comments
	COMMENT
	DOC_COMMENT
	BLOCK_COMMENT
)

var tokenTypeNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	IDENTIFIER: "IDENTIFIER", ELEMENTARY_TYPE: "ELEMENTARY_TYPE", NUMBER: "NUMBER", HEX_NUMBER: "HEX_NUMBER",
	STRING: "STRING", HEX_STRING: "HEX_STRING", UNICODE_STRING: "UNICODE_STRING",
	COMMENT: "COMMENT", DOC_COMMENT: "DOC_COMMENT", BLOCK_COMMENT: "BLOCK_COMMENT",
}

func init() {
	for text, tt := range KEYWORDS {
		tokenTypeNames[tt] = text
	}
	for text, tt := range operatorNames {
		tokenTypeNames[tt] = text
	}
}

var operatorNames = map[string]TokenType{
	"+": PLUS, "++": INCREMENT, "-": MINUS, "--": DECREMENT, "*": STAR, "**": STAR_STAR,
	"/": SLASH, "%": PERCENT, "!": BANG, "!=": BANG_EQUAL, "~": TILDE, "=": EQUAL,
	"==": EQUAL_EQUAL, "=>": ARROW, "<": LESS, "<=": LESS_EQUAL, "<<": SHIFT_LEFT,
	">": GREATER, ">=": GREATER_EQUAL, ">>": SHIFT_RIGHT, "&&": AND, "&": AMPERSAND,
	"||": OR, "|": PIPE, "^": CARET, "?": QUESTION,
	"+=": PLUS_EQUAL, "-=": MINUS_EQUAL, "*=": STAR_EQUAL, "/=": SLASH_EQUAL, "%=": PERCENT_EQUAL,
	"&=": AMPERSAND_EQUAL, "|=": PIPE_EQUAL, "^=": CARET_EQUAL, "<<=": SHIFT_LEFT_EQUAL, ">>=": SHIFT_RIGHT_EQUAL,
	",": COMMA, ".": DOT, ";": SEMICOLON, ":": COLON,
	"(": LEFT_PAREN, ")": RIGHT_PAREN, "{": LEFT_BRACE, "}": RIGHT_BRACE, "[": LEFT_BRACKET, "]": RIGHT_BRACKET,
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "TokenType(?)"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
