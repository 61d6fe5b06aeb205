package parser

import (
	"strconv"
	"strings"
)

var KEYWORDS = map[string]TokenType{
	"pragma":      PRAGMA,
	"import":      IMPORT,
	"contract":    CONTRACT,
	"interface":   INTERFACE,
	"library":     LIBRARY,
	"abstract":    ABSTRACT,
	"is":          IS,
	"using":       USING,
	"struct":      STRUCT,
	"enum":        ENUM,
	"event":       EVENT,
	"modifier":    MODIFIER,
	"function":    FUNCTION,
	"constructor": CONSTRUCTOR,
	"returns":     RETURNS,
	"return":      RETURN,
	"if":          IF,
	"else":        ELSE,
	"for":         FOR,
	"while":       WHILE,
	"do":          DO,
	"break":       BREAK,
	"continue":    CONTINUE,
	"emit":        EMIT,
	"new":         NEW,
	"delete":      DELETE,
	"try":         TRY,
	"catch":       CATCH,
	"assembly":    ASSEMBLY,
	"unchecked":   UNCHECKED,
	"mapping":     MAPPING,
	"true":        TRUE,
	"false":       FALSE,
	"public":      PUBLIC,
	"private":     PRIVATE,
	"internal":    INTERNAL,
	"external":    EXTERNAL,
	"pure":        PURE,
	"view":        VIEW,
	"payable":     PAYABLE,
	"constant":    CONSTANT,
	"immutable":   IMMUTABLE,
	"virtual":     VIRTUAL,
	"override":    OVERRIDE,
	"indexed":     INDEXED,
	"anonymous":   ANONYMOUS,
	"memory":      MEMORY,
	"storage":     STORAGE,
	"calldata":    CALLDATA,
}

// Contextual keywords stay identifiers; the parser matches them by lexeme.
const (
	kwError    = "error"
	kwRevert   = "revert"
	kwFallback = "fallback"
	kwReceive  = "receive"
	kwType     = "type"
	kwFrom     = "from"
	kwGlobal   = "global"
)

var subdenominations = map[string]bool{
	"wei": true, "gwei": true, "szabo": true, "finney": true, "ether": true,
	"seconds": true, "minutes": true, "hours": true, "days": true, "weeks": true, "years": true,
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	if IsElementaryType(text) {
		return ELEMENTARY_TYPE
	}
	return IDENTIFIER
}

// IsElementaryType reports whether name is a built-in Solidity value type.
func IsElementaryType(name string) bool {
	switch name {
	case "address", "bool", "string", "bytes", "byte", "int", "uint", "fixed", "ufixed":
		return true
	}

	if rest, ok := strings.CutPrefix(name, "uint"); ok {
		return validIntWidth(rest)
	}
	if rest, ok := strings.CutPrefix(name, "int"); ok {
		return validIntWidth(rest)
	}
	if rest, ok := strings.CutPrefix(name, "bytes"); ok {
		n, err := strconv.Atoi(rest)
		return err == nil && n >= 1 && n <= 32 && strconv.Itoa(n) == rest
	}
	if rest, ok := strings.CutPrefix(name, "ufixed"); ok {
		return validFixed(rest)
	}
	if rest, ok := strings.CutPrefix(name, "fixed"); ok {
		return validFixed(rest)
	}
	return false
}

func validIntWidth(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 8 && n <= 256 && n%8 == 0 && strconv.Itoa(n) == s
}

func validFixed(s string) bool {
	m, n, ok := strings.Cut(s, "x")
	if !ok || !validIntWidth(m) {
		return false
	}
	d, err := strconv.Atoi(n)
	return err == nil && d <= 80
}
