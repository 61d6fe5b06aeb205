package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "pragma contract function returns mapping emit unchecked revert error customIdent"
	expected := []TokenType{
		PRAGMA, CONTRACT, FUNCTION, RETURNS, MAPPING, EMIT, UNCHECKED,
		IDENTIFIER, IDENTIFIER, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestElementaryTypes(t *testing.T) {
	input := "uint256 uint8 int128 bytes32 bytes address bool string uint7 bytes33"
	expected := []TokenType{
		ELEMENTARY_TYPE, ELEMENTARY_TYPE, ELEMENTARY_TYPE, ELEMENTARY_TYPE,
		ELEMENTARY_TYPE, ELEMENTARY_TYPE, ELEMENTARY_TYPE, ELEMENTARY_TYPE,
		IDENTIFIER, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d (%s): expected %s, got %s", i, tokens[i].Lexeme, exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 1_000 1e18 2.5 .5 0xff 0xFF_FF"
	expected := []TokenType{NUMBER, NUMBER, NUMBER, NUMBER, NUMBER, HEX_NUMBER, HEX_NUMBER}
	expectedLexemes := []string{"42", "1_000", "1e18", "2.5", ".5", "0xff", "0xFF_FF"}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme %q, got %q", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" 'world' "a\"b" hex"dead" unicode"hi"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []struct {
		typ    TokenType
		lexeme string
	}{
		{STRING, "hello"},
		{STRING, "world"},
		{STRING, `a"b`},
		{HEX_STRING, "dead"},
		{UNICODE_STRING, "hi"},
	}

	for i, exp := range expected {
		if tokens[i].Type != exp.typ || tokens[i].Lexeme != exp.lexeme {
			t.Errorf("token %d: expected %s %q, got %s %q", i, exp.typ, exp.lexeme, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestStringLength(t *testing.T) {
	scanner := NewScanner(`x = "abc";`)
	tokens := scanner.ScanTokens()

	if tokens[2].Type != STRING {
		t.Fatalf("expected STRING, got %s", tokens[2].Type)
	}
	if tokens[2].Length != 5 {
		t.Errorf("expected quoted length 5, got %d", tokens[2].Length)
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `(){}[],.;:+-*/%! != == = < <= > >= ? ~`
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, LEFT_BRACKET, RIGHT_BRACKET,
		COMMA, DOT, SEMICOLON, COLON, PLUS, MINUS, STAR, SLASH, PERCENT, BANG,
		BANG_EQUAL, EQUAL_EQUAL, EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL,
		QUESTION, TILDE,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestCompoundOperators(t *testing.T) {
	input := "&& || ++ -- ** => << >> <<= >>= += -= *= /= %= ^= |= &="
	expected := []TokenType{
		AND, OR, INCREMENT, DECREMENT, STAR_STAR, ARROW, SHIFT_LEFT, SHIFT_RIGHT,
		SHIFT_LEFT_EQUAL, SHIFT_RIGHT_EQUAL, PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL,
		SLASH_EQUAL, PERCENT_EQUAL, CARET_EQUAL, PIPE_EQUAL, AMPERSAND_EQUAL,
	}
	expectedLexemes := []string{
		"&&", "||", "++", "--", "**", "=>", "<<", ">>", "<<=", ">>=",
		"+=", "-=", "*=", "/=", "%=", "^=", "|=", "&=",
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if i >= len(tokens) {
			t.Fatalf("missing token at index %d", i)
		}
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected type %s, got %s", i, exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("token %d: expected lexeme %q, got %q", i, expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestComments(t *testing.T) {
	input := "// plain\n/// natspec\n/* block */\n/** doc */"
	expected := []TokenType{COMMENT, DOC_COMMENT, BLOCK_COMMENT, DOC_COMMENT}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
	if tokens[0].Lexeme != "// plain" {
		t.Errorf("expected comment lexeme %q, got %q", "// plain", tokens[0].Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	input := `"abc`
	scanner := NewScanner(input)
	_ = scanner.ScanTokens()

	if len(scanner.errors) == 0 {
		t.Fatal("expected an unterminated string error, got none")
	}

	asserError(t, scanner.errors[0], "Unterminated string.", 1, 1, 0)
}

func TestUnterminatedBlockComment(t *testing.T) {
	input := `/* unterminated block
comment over multiple lines`
	scanner := NewScanner(input)
	_ = scanner.ScanTokens()

	if len(scanner.errors) == 0 {
		t.Fatal("expected unterminated block comment error, got none")
	}

	asserError(t, scanner.errors[0], "Unterminated block comment.", 1, 1, 0)
}

func TestInvalidHex(t *testing.T) {
	input := `0xZZ`
	scanner := NewScanner(input)
	_ = scanner.ScanTokens()

	if len(scanner.errors) == 0 {
		t.Fatal("expected an invalid hex literal error, got none")
	}

	asserError(t, scanner.errors[0], "Invalid hex literal: expected hex digit after 0x", 1, 1, 0)
}

func asserError(t *testing.T, got ScanError, wantMessage string, wantLine, wantCol, wantOffset int) {
	if got.Message != wantMessage {
		t.Errorf("expected message '%s', got %q", wantMessage, got.Message)
	}
	if got.Position.Line != wantLine || got.Position.Column != wantCol || got.Position.Offset != wantOffset {
		t.Errorf("unexpected position: got line %d, column %d, offset %d",
			got.Position.Line, got.Position.Column, got.Position.Offset)
	}
}

func TestTokenPositions(t *testing.T) {
	input := "contract Vault {\n  uint256 x;\n}"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []struct {
		typ    TokenType
		lexeme string
		line   int
		column int
	}{
		{CONTRACT, "contract", 1, 1},
		{IDENTIFIER, "Vault", 1, 10},
		{LEFT_BRACE, "{", 1, 16},
		{ELEMENTARY_TYPE, "uint256", 2, 3},
		{IDENTIFIER, "x", 2, 11},
		{SEMICOLON, ";", 2, 12},
		{RIGHT_BRACE, "}", 3, 1},
	}

	for i, exp := range expected {
		if i >= len(tokens) {
			t.Fatalf("missing token at index %d", i)
		}
		tok := tokens[i]
		if tok.Type != exp.typ {
			t.Errorf("token %d: expected type %s, got %s", i, exp.typ, tok.Type)
		}
		if tok.Lexeme != exp.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp.lexeme, tok.Lexeme)
		}
		if tok.Position.Line != exp.line {
			t.Errorf("token %d: expected line %d, got %d", i, exp.line, tok.Position.Line)
		}
		if tok.Position.Column != exp.column {
			t.Errorf("token %d: expected column %d, got %d", i, exp.column, tok.Position.Column)
		}
	}

	// Check that offsets strictly increase
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Position.Offset <= tokens[i-1].Position.Offset {
			t.Errorf("token %d: expected offset to increase, got %d after %d",
				i, tokens[i].Position.Offset, tokens[i-1].Position.Offset)
		}
	}
}

func TestPositionAfterMultilineBlockComment(t *testing.T) {
	input := "/* a\nb */ x"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != BLOCK_COMMENT {
		t.Fatalf("expected first token to be BLOCK_COMMENT, got %s", tokens[0].Type)
	}
	if tokens[1].Position.Line != 2 || tokens[1].Position.Column != 6 {
		t.Errorf("expected x at 2:6, got %d:%d", tokens[1].Position.Line, tokens[1].Position.Column)
	}
}

func TestKeywordIdentifierBoundary(t *testing.T) {
	input := "publicToken public123 functionality $owner _value"
	expectedLexemes := []string{
		"publicToken", "public123", "functionality", "$owner", "_value",
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	for i, lexeme := range expectedLexemes {
		if i >= len(tokens) {
			t.Fatalf("missing token at index %d", i)
		}
		if tokens[i].Type != IDENTIFIER {
			t.Errorf("token %d: expected type IDENTIFIER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, lexeme, tokens[i].Lexeme)
		}
	}
}
