package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string // unquoted value for string tokens
	Position Position
	Length   int // bytes of source covered
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // optional: how many characters it covers
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

// Errors returns the scan errors collected so far.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case '[':
		s.addToken(LEFT_BRACKET)
	case ']':
		s.addToken(RIGHT_BRACKET)
	case ',':
		s.addToken(COMMA)
	case ';':
		s.addToken(SEMICOLON)
	case ':':
		s.addToken(COLON)
	case '?':
		s.addToken(QUESTION)
	case '~':
		s.addToken(TILDE)
	case '.':
		if isDigit(s.peek()) {
			s.scanNumber()
		} else {
			s.addToken(DOT)
		}

	// Operators with potential multi-character variants
	case '-':
		s.scanMinusOperator()
	case '+':
		s.scanPlusOperator()
	case '*':
		s.scanStarOperator()
	case '%':
		s.scanWithEqual(PERCENT, PERCENT_EQUAL)
	case '^':
		s.scanWithEqual(CARET, CARET_EQUAL)
	case '!':
		s.scanWithEqual(BANG, BANG_EQUAL)
	case '=':
		s.scanEqualOperator()
	case '&':
		s.scanAmpersandOperator()
	case '|':
		s.scanPipeOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()
	case '/':
		s.scanSlashOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t', '\n':

	// String literals
	case '"', '\'':
		s.scanString(c, STRING)

	default:
		s.scanDefault(c)
	}
}

// Operator scanning methods for better organization

func (s *Scanner) scanWithEqual(plain, withEqual TokenType) {
	if s.matchNext('=') {
		s.addToken(withEqual)
	} else {
		s.addToken(plain)
	}
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('-') {
		s.addToken(DECREMENT)
	} else if s.matchNext('=') {
		s.addToken(MINUS_EQUAL)
	} else {
		s.addToken(MINUS)
	}
}

func (s *Scanner) scanPlusOperator() {
	if s.matchNext('+') {
		s.addToken(INCREMENT)
	} else if s.matchNext('=') {
		s.addToken(PLUS_EQUAL)
	} else {
		s.addToken(PLUS)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('*') {
		s.addToken(STAR_STAR)
	} else if s.matchNext('=') {
		s.addToken(STAR_EQUAL)
	} else {
		s.addToken(STAR)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(EQUAL_EQUAL)
	} else if s.matchNext('>') {
		s.addToken(ARROW)
	} else {
		s.addToken(EQUAL)
	}
}

func (s *Scanner) scanAmpersandOperator() {
	if s.matchNext('&') {
		s.addToken(AND)
	} else if s.matchNext('=') {
		s.addToken(AMPERSAND_EQUAL)
	} else {
		s.addToken(AMPERSAND)
	}
}

func (s *Scanner) scanPipeOperator() {
	if s.matchNext('|') {
		s.addToken(OR)
	} else if s.matchNext('=') {
		s.addToken(PIPE_EQUAL)
	} else {
		s.addToken(PIPE)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('<') {
		s.scanWithEqual(SHIFT_LEFT, SHIFT_LEFT_EQUAL)
	} else if s.matchNext('=') {
		s.addToken(LESS_EQUAL)
	} else {
		s.addToken(LESS)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('>') {
		s.scanWithEqual(SHIFT_RIGHT, SHIFT_RIGHT_EQUAL)
	} else if s.matchNext('=') {
		s.addToken(GREATER_EQUAL)
	} else {
		s.addToken(GREATER)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('=') {
		s.addToken(SLASH_EQUAL)
	} else if s.matchNext('/') {
		s.scanSingleLineComment()
	} else if s.matchNext('*') {
		s.scanBlockComment()
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("Unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenWithLexeme(tokenType, s.source[s.start:s.current])
}

func (s *Scanner) addTokenWithLexeme(tokenType TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
		Length: s.current - s.start,
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_' || c == '$'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]

	// hex"..." and unicode"..." prefixes
	if q := s.peek(); q == '"' || q == '\'' {
		switch text {
		case "hex":
			s.advance()
			s.scanString(q, HEX_STRING)
			return
		case "unicode":
			s.advance()
			s.scanString(q, UNICODE_STRING)
			return
		}
	}

	s.addToken(lookupIdentifier(text))
}

func (s *Scanner) scanNumber() {
	if s.source[s.start] == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.advance()
		if !isHexDigit(s.peek()) {
			s.reportError("Invalid hex literal: expected hex digit after 0x")
			return
		}
		for isHexDigit(s.peek()) || s.peek() == '_' {
			s.advance()
		}
		s.addToken(HEX_NUMBER)
		return
	}

	s.scanDigits()
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		s.scanDigits()
	}
	if (s.peek() == 'e' || s.peek() == 'E') && (isDigit(s.peekNext()) || s.peekNext() == '-') {
		s.advance()
		s.matchNext('-')
		s.scanDigits()
	}
	s.addToken(NUMBER)
}

func (s *Scanner) scanDigits() {
	for isDigit(s.peek()) || s.peek() == '_' {
		s.advance()
	}
}

func (s *Scanner) scanString(quote byte, tokenType TokenType) {
	var value strings.Builder
	for s.peek() != quote && !s.isAtEnd() {
		c := s.advance()
		if c == '\n' {
			s.reportError("Unterminated string.")
			return
		}
		if c == '\\' && !s.isAtEnd() {
			value.WriteString(s.scanEscape())
			continue
		}
		value.WriteByte(c)
	}
	if s.isAtEnd() {
		s.reportError("Unterminated string.")
		return
	}
	s.advance()
	s.addTokenWithLexeme(tokenType, value.String())
}

func (s *Scanner) scanEscape() string {
	c := s.advance()
	switch c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '\\', '"', '\'':
		return string(c)
	case '\n':
		return ""
	case 'x':
		if isHexDigit(s.peek()) && isHexDigit(s.peekNext()) {
			hex := string([]byte{s.advance(), s.advance()})
			b, _ := strconv.ParseUint(hex, 16, 8)
			return string([]byte{byte(b)})
		}
	case 'u':
		if s.current+4 <= len(s.source) {
			hex := s.source[s.current : s.current+4]
			if r, err := strconv.ParseUint(hex, 16, 32); err == nil {
				for range 4 {
					s.advance()
				}
				return string(rune(r))
			}
		}
	}
	return "\\" + string(c)
}

func (s *Scanner) scanSingleLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
	commentText := s.source[s.start:s.current]
	tokenType := COMMENT
	if strings.HasPrefix(commentText, "///") {
		tokenType = DOC_COMMENT
	}
	s.addToken(tokenType)
}

func (s *Scanner) scanBlockComment() {
	unterminated := true
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			unterminated = false
			break
		}
		s.advance()
	}

	if unterminated {
		s.reportError("Unterminated block comment.")
		return
	}

	commentText := s.source[s.start:s.current]
	tokenType := BLOCK_COMMENT
	if strings.HasPrefix(commentText, "/**") && commentText != "/**/" {
		tokenType = DOC_COMMENT
	}
	s.addToken(tokenType)
}
