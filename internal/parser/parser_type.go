package parser

import (
	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
)

// parseTypeName parses a type reference including array suffixes. It returns
// nil without consuming anything when no type starts at the current token.
func (p *Parser) parseTypeName() ast.TypeName {
	start := p.peek()

	var base ast.TypeName
	switch {
	case p.check(ELEMENTARY_TYPE):
		base = p.parseElementaryTypeName()
	case p.check(MAPPING):
		base = p.parseMapping()
	case p.check(FUNCTION):
		base = p.parseFunctionTypeName()
	case p.check(IDENTIFIER):
		path, last, _ := p.parseIdentifierPath()
		base = &ast.UserDefinedTypeName{
			Pos:      p.makePos(start),
			EndPos:   p.makeEndPos(last),
			NamePath: path,
		}
	default:
		return nil
	}

	return p.parseArraySuffixes(start, base)
}

func (p *Parser) parseElementaryTypeName() *ast.ElementaryTypeName {
	tok := p.advance()
	elem := &ast.ElementaryTypeName{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Name:   tok.Lexeme,
	}
	if tok.Lexeme == "address" && p.match(PAYABLE) {
		elem.StateMutability = "payable"
		elem.EndPos = p.prevEnd()
	}
	return elem
}

func (p *Parser) parseArraySuffixes(start Token, base ast.TypeName) ast.TypeName {
	for p.check(LEFT_BRACKET) {
		p.advance()
		var length ast.Expr
		if !p.check(RIGHT_BRACKET) {
			length = p.parseExpr()
		}
		p.consume(RIGHT_BRACKET, "expected ']' in array type")
		base = &ast.ArrayTypeName{
			Pos:          p.makePos(start),
			EndPos:       p.prevEnd(),
			BaseTypeName: base,
			Length:       length,
		}
	}
	return base
}

func (p *Parser) parseMapping() *ast.Mapping {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'mapping'")

	m := &ast.Mapping{Pos: p.makePos(start)}
	m.KeyType = p.parseTypeName()
	if m.KeyType == nil {
		p.errorAtCurrent("expected mapping key type")
	}
	p.match(IDENTIFIER) // optional key name
	p.consume(ARROW, "expected '=>' in mapping")
	m.ValueType = p.parseTypeName()
	if m.ValueType == nil {
		p.errorAtCurrent("expected mapping value type")
	}
	p.match(IDENTIFIER) // optional value name
	p.consume(RIGHT_PAREN, "expected ')' after mapping")
	m.EndPos = p.prevEnd()
	return m
}

func (p *Parser) parseFunctionTypeName() *ast.FunctionTypeName {
	start := p.advance()
	fn := &ast.FunctionTypeName{Pos: p.makePos(start)}
	fn.Parameters = p.parseParameterList()

	for {
		switch {
		case p.match(PUBLIC, PRIVATE, INTERNAL, EXTERNAL):
			fn.Visibility = p.previous().Lexeme
			continue
		case p.match(PURE, VIEW, PAYABLE):
			fn.StateMutability = p.previous().Lexeme
			continue
		}
		break
	}
	if p.match(RETURNS) {
		fn.ReturnParameters = p.parseParameterList()
	}
	fn.EndPos = p.prevEnd()
	return fn
}

// parseParameterList parses "(T a, T b)" for functions, events, errors and
// return lists. Names and data locations are optional.
func (p *Parser) parseParameterList() []*ast.VariableDeclaration {
	if p.consume(LEFT_PAREN, "expected '(' before parameter list").Type == ILLEGAL {
		return nil
	}

	var params []*ast.VariableDeclaration
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		param := p.parseParameter()
		if param == nil {
			break
		}
		params = append(params, param)
		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameter list")
	return params
}

func (p *Parser) parseParameter() *ast.VariableDeclaration {
	start := p.peek()
	typeName := p.parseTypeName()
	if typeName == nil {
		p.errorAtCurrent("expected parameter type")
		return nil
	}

	param := &ast.VariableDeclaration{Pos: p.makePos(start), TypeName: typeName}
	for {
		switch {
		case p.match(MEMORY, STORAGE, CALLDATA):
			param.StorageLocation = p.previous().Lexeme
			continue
		case p.match(INDEXED):
			param.IsIndexed = true
			continue
		}
		break
	}
	if p.check(IDENTIFIER) {
		name := p.makeIdent(p.advance())
		param.Name = &name
	}
	param.EndPos = p.prevEnd()
	return param
}

// parseOverride parses "override" or "override(A, B)" and returns the listed bases.
func (p *Parser) parseOverride() []string {
	p.advance()
	bases := []string{}
	if !p.match(LEFT_PAREN) {
		return bases
	}
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		path, _, ok := p.parseIdentifierPath()
		if !ok {
			break
		}
		bases = append(bases, path)
		if !p.match(COMMA) {
			break
		}
	}
	p.consume(RIGHT_PAREN, "expected ')' after override list")
	return bases
}
