package parser

import (
	"fmt"
	"strings"

	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
)

type Parser struct {
	filename string
	tokens   []Token
	comments []*ast.Comment
	current  int
	errors   []ParseError
}

type ParseError struct {
	Message  string
	Position Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// NewParser builds a parser over tokens. Comment tokens are set aside so the
// grammar never sees them; they are attached to the resulting SourceUnit.
func NewParser(filename string, tokens []Token) *Parser {
	p := &Parser{filename: filename}
	for _, tok := range tokens {
		switch tok.Type {
		case COMMENT, DOC_COMMENT, BLOCK_COMMENT:
			p.comments = append(p.comments, &ast.Comment{
				Pos:    p.makePos(tok),
				EndPos: p.makeEndPos(tok),
				Text:   tok.Lexeme,
				Doc:    tok.Type == DOC_COMMENT,
				Block:  strings.HasPrefix(tok.Lexeme, "/*"),
			})
		default:
			p.tokens = append(p.tokens, tok)
		}
	}
	if len(p.tokens) == 0 || p.tokens[len(p.tokens)-1].Type != EOF {
		p.tokens = append(p.tokens, Token{Type: EOF})
	}
	return p
}

// Errors returns the parse errors collected so far.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) checkLexeme(tt TokenType, lexeme string) bool {
	return p.check(tt) && p.peek().Lexeme == lexeme
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// consume returns the expected token or records an error. On error the
// offending token is left in place for the caller's recovery.
func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return Token{Type: ILLEGAL, Position: p.peek().Position}
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

// peekAt looks n tokens ahead of the current one.
func (p *Parser) peekAt(n int) Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

func (p *Parser) previous() Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) errorAtCurrent(message string) {
	tok := p.peek()
	if tok.Type == EOF {
		message += " (found end of file)"
	} else {
		message += fmt.Sprintf(" (found '%s')", tok.Lexeme)
	}
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: tok.Position,
	})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + tok.Length,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + tok.Length,
	}
}

// prevEnd is the end position of the last consumed token.
func (p *Parser) prevEnd() ast.Position {
	return p.makeEndPos(p.previous())
}

// synchronize skips to the end of the current statement or declaration,
// stepping over balanced braces. A closing brace of the enclosing block is
// left for the caller.
func (p *Parser) synchronize() {
	depth := 0
	for !p.isAtEnd() {
		switch p.peek().Type {
		case LEFT_BRACE:
			depth++
		case RIGHT_BRACE:
			if depth == 0 {
				return
			}
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		case SEMICOLON:
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// skipBalanced consumes from an opening brace to its matching close and
// returns the raw text joined by spaces.
func (p *Parser) skipBalanced(open, close TokenType) string {
	var parts []string
	depth := 0
	for !p.isAtEnd() {
		tok := p.advance()
		parts = append(parts, tok.Lexeme)
		switch tok.Type {
		case open:
			depth++
		case close:
			depth--
		}
		if depth <= 0 {
			break
		}
	}
	return strings.Join(parts, " ")
}

// Helper functions to reduce repetitive AST node creation

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{Value: "error"}, false
	}
	return p.makeIdent(tok), true
}

// parseIdentifierPath parses a dotted path like "Pool.Position".
func (p *Parser) parseIdentifierPath() (string, Token, bool) {
	first := p.consume(IDENTIFIER, "expected identifier")
	if first.Type == ILLEGAL {
		return "", first, false
	}
	path := first.Lexeme
	last := first
	for p.check(DOT) && p.peekAt(1).Type == IDENTIFIER {
		p.advance()
		last = p.advance()
		path += "." + last.Lexeme
	}
	return path, last, true
}

// joinTokens rebuilds source text for a token range, keeping a space only
// where the source had whitespace.
func joinTokens(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			prev := tokens[i-1]
			if prev.Position.Offset+prev.Length < tok.Position.Offset {
				b.WriteString(" ")
			}
		}
		if tok.Type == STRING {
			b.WriteString(fmt.Sprintf("%q", tok.Lexeme))
		} else {
			b.WriteString(tok.Lexeme)
		}
	}
	return b.String()
}
