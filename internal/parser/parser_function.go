package parser

import "github.com/babyhome/solidity-gas-optimizer/internal/ast"

// parseFunction handles "function", "constructor", "fallback" and "receive".
func (p *Parser) parseFunction() *ast.FunctionDefinition {
	startToken := p.advance()

	fn := &ast.FunctionDefinition{
		Pos:        p.makePos(startToken),
		Visibility: "default",
	}

	switch {
	case startToken.Type == CONSTRUCTOR:
		fn.IsConstructor = true
	case startToken.Lexeme == kwFallback:
		fn.IsFallback = true
	case startToken.Lexeme == kwReceive:
		fn.IsReceiveEther = true
	case p.check(IDENTIFIER):
		name := p.makeIdent(p.advance())
		switch name.Value {
		case kwFallback:
			fn.IsFallback = true
		case kwReceive:
			fn.IsReceiveEther = true
		default:
			fn.Name = &name
		}
	default:
		p.errorAtCurrent("expected function name")
	}

	// Parse parameters
	fn.Parameters = p.parseParameterList()

	// Parse attributes in any order
	p.parseFunctionAttributes(fn)

	// Parse optional return list
	if p.match(RETURNS) {
		fn.ReturnParameters = p.parseParameterList()
	}

	// Declarations without a body end in ';'
	if p.match(SEMICOLON) {
		fn.EndPos = p.prevEnd()
		return fn
	}

	if !p.check(LEFT_BRACE) {
		p.errorAtCurrent("expected '{' or ';' after function header")
		p.synchronize()
		fn.EndPos = p.prevEnd()
		return fn
	}

	fn.Body = p.parseBlock()
	fn.EndPos = fn.Body.EndPos
	return fn
}

func (p *Parser) parseFunctionAttributes(fn *ast.FunctionDefinition) {
	for {
		switch {
		case p.match(PUBLIC, PRIVATE, INTERNAL, EXTERNAL):
			fn.Visibility = p.previous().Lexeme
		case p.match(PURE, VIEW, PAYABLE):
			fn.StateMutability = p.previous().Lexeme
		case p.match(CONSTANT):
			// pre-0.5 spelling of view
			fn.StateMutability = "view"
		case p.match(VIRTUAL):
			fn.IsVirtual = true
		case p.check(OVERRIDE):
			fn.Override = p.parseOverride()
		case p.check(IDENTIFIER):
			fn.Modifiers = append(fn.Modifiers, p.parseModifierInvocation())
		default:
			return
		}
	}
}

func (p *Parser) parseModifierInvocation() *ast.ModifierInvocation {
	start := p.peek()
	path, _, _ := p.parseIdentifierPath()

	inv := &ast.ModifierInvocation{
		Pos:  p.makePos(start),
		Name: path,
	}
	if p.match(LEFT_PAREN) {
		inv.Arguments = p.parseExprList(RIGHT_PAREN)
		p.consume(RIGHT_PAREN, "expected ')' after modifier arguments")
	}
	inv.EndPos = p.prevEnd()
	return inv
}

func (p *Parser) parseModifier() *ast.ModifierDefinition {
	startToken := p.advance()
	name, _ := p.consumeIdent("expected modifier name")

	mod := &ast.ModifierDefinition{
		Pos:  p.makePos(startToken),
		Name: name,
	}

	if p.check(LEFT_PAREN) {
		mod.Parameters = p.parseParameterList()
	}

	for {
		if p.match(VIRTUAL) {
			mod.IsVirtual = true
		} else if p.check(OVERRIDE) {
			mod.Override = p.parseOverride()
		} else {
			break
		}
	}

	if p.match(SEMICOLON) {
		mod.EndPos = p.prevEnd()
		return mod
	}

	if !p.check(LEFT_BRACE) {
		p.errorAtCurrent("expected '{' after modifier header")
		p.synchronize()
		mod.EndPos = p.prevEnd()
		return mod
	}

	mod.Body = p.parseBlock()
	mod.EndPos = mod.Body.EndPos
	return mod
}
