package parser

import (
	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
)

// Binding power of each infix operator; higher binds tighter.
var binaryPrecedence = map[TokenType]int{
	EQUAL: 1, PLUS_EQUAL: 1, MINUS_EQUAL: 1, STAR_EQUAL: 1, SLASH_EQUAL: 1, PERCENT_EQUAL: 1,
	AMPERSAND_EQUAL: 1, PIPE_EQUAL: 1, CARET_EQUAL: 1, SHIFT_LEFT_EQUAL: 1, SHIFT_RIGHT_EQUAL: 1,
	QUESTION: 2,
	OR: 3,
	AND: 4,
	EQUAL_EQUAL: 5, BANG_EQUAL: 5,
	LESS: 6, LESS_EQUAL: 6, GREATER: 6, GREATER_EQUAL: 6,
	PIPE: 7,
	CARET: 8,
	AMPERSAND: 9,
	SHIFT_LEFT: 10, SHIFT_RIGHT: 10,
	PLUS: 11, MINUS: 11,
	STAR: 12, SLASH: 12, PERCENT: 12,
	STAR_STAR: 13,
}

func rightAssociative(prec int) bool {
	return prec == 1 || prec == 2 || prec == 13
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parsePrattExpr(1)
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			break
		}
		p.advance()

		if tok.Type == QUESTION {
			trueExpr := p.parsePrattExpr(1)
			p.consume(COLON, "expected ':' in conditional expression")
			falseExpr := p.parsePrattExpr(prec)
			expr = &ast.Conditional{
				Pos:             expr.NodePos(),
				EndPos:          falseExpr.NodeEndPos(),
				Condition:       expr,
				TrueExpression:  trueExpr,
				FalseExpression: falseExpr,
			}
			continue
		}

		next := prec + 1
		if rightAssociative(prec) {
			next = prec
		}
		right := p.parsePrattExpr(next)

		expr = &ast.BinaryOperation{
			Pos:      expr.NodePos(),
			EndPos:   right.NodeEndPos(),
			Operator: tok.Lexeme,
			Left:     expr,
			Right:    right,
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(BANG, MINUS, TILDE, INCREMENT, DECREMENT, DELETE) {
		op := p.previous()
		value := p.parsePrefixExpr()
		return &ast.UnaryOperation{
			Pos:           p.makePos(op),
			EndPos:        value.NodeEndPos(),
			Operator:      op.Lexeme,
			SubExpression: value,
			IsPrefix:      true,
		}
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		switch {
		case p.check(DOT):
			p.advance()
			member := p.peek()
			if member.Lexeme == "" || !isAlpha(member.Lexeme[0]) {
				p.errorAtCurrent("expected member name after '.'")
				return expr
			}
			p.advance()
			expr = &ast.MemberAccess{
				Pos:        expr.NodePos(),
				EndPos:     p.makeEndPos(member),
				Expression: expr,
				MemberName: member.Lexeme,
			}

		case p.check(LEFT_BRACKET):
			expr = p.parseIndexSuffix(expr)

		case p.check(LEFT_PAREN):
			p.advance()
			args, names := p.parseCallArguments()
			end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
			endPos := p.prevEnd()
			if end.Type == ILLEGAL {
				endPos = expr.NodeEndPos()
			}
			expr = &ast.FunctionCall{
				Pos:        expr.NodePos(),
				EndPos:     endPos,
				Expression: expr,
				Arguments:  args,
				Names:      names,
			}

		case p.check(LEFT_BRACE) && p.peekAt(1).Type == IDENTIFIER && p.peekAt(2).Type == COLON:
			p.advance()
			names, values := p.parseNamedValues()
			p.consume(RIGHT_BRACE, "expected '}' after call options")
			expr = &ast.NameValueList{
				Pos:        expr.NodePos(),
				EndPos:     p.prevEnd(),
				Expression: expr,
				Names:      names,
				Values:     values,
			}

		case p.check(INCREMENT), p.check(DECREMENT):
			op := p.advance()
			expr = &ast.UnaryOperation{
				Pos:           expr.NodePos(),
				EndPos:        p.makeEndPos(op),
				Operator:      op.Lexeme,
				SubExpression: expr,
			}

		default:
			return expr
		}
	}
}

// parseIndexSuffix handles "a[i]", "a[]" and the slice forms "a[s:e]".
func (p *Parser) parseIndexSuffix(base ast.Expr) ast.Expr {
	p.advance()

	var start ast.Expr
	if !p.check(RIGHT_BRACKET) && !p.check(COLON) {
		start = p.parseExpr()
	}

	if p.match(COLON) {
		var end ast.Expr
		if !p.check(RIGHT_BRACKET) {
			end = p.parseExpr()
		}
		p.consume(RIGHT_BRACKET, "expected ']' after slice")
		return &ast.IndexRangeAccess{
			Pos:        base.NodePos(),
			EndPos:     p.prevEnd(),
			Base:       base,
			IndexStart: start,
			IndexEnd:   end,
		}
	}

	p.consume(RIGHT_BRACKET, "expected ']' after index")
	return &ast.IndexAccess{
		Pos:    base.NodePos(),
		EndPos: p.prevEnd(),
		Base:   base,
		Index:  start,
	}
}

// parseCallArguments parses positional arguments, or "{name: value, ...}"
// for named-argument calls. The closing ')' is left for the caller.
func (p *Parser) parseCallArguments() ([]ast.Expr, []string) {
	if p.check(LEFT_BRACE) && p.peekAt(1).Type == IDENTIFIER && p.peekAt(2).Type == COLON {
		p.advance()
		names, values := p.parseNamedValues()
		p.consume(RIGHT_BRACE, "expected '}' after named arguments")
		return values, names
	}
	return p.parseExprList(RIGHT_PAREN), nil
}

func (p *Parser) parseNamedValues() ([]string, []ast.Expr) {
	var names []string
	var values []ast.Expr
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		name := p.consume(IDENTIFIER, "expected argument name")
		if name.Type == ILLEGAL {
			break
		}
		p.consume(COLON, "expected ':' after argument name")
		names = append(names, name.Lexeme)
		values = append(values, p.parseExpr())
		if !p.match(COMMA) {
			break
		}
	}
	return names, values
}

// parseExprList parses comma separated expressions up to, not including, close.
func (p *Parser) parseExprList(close TokenType) []ast.Expr {
	var exprs []ast.Expr
	for !p.check(close) && !p.isAtEnd() {
		exprs = append(exprs, p.parseExpr())
		if !p.match(COMMA) {
			break
		}
	}
	return exprs
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	if p.match(NUMBER, HEX_NUMBER) {
		tok := p.previous()
		lit := &ast.NumberLiteral{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Number: tok.Lexeme,
		}
		if p.check(IDENTIFIER) && subdenominations[p.peek().Lexeme] {
			lit.Subdenomination = p.advance().Lexeme
			lit.EndPos = p.prevEnd()
		}
		return lit
	}

	if p.match(STRING, UNICODE_STRING) {
		tok := p.previous()
		value := tok.Lexeme
		for p.check(STRING) || p.check(UNICODE_STRING) {
			value += p.advance().Lexeme
		}
		return &ast.StringLiteral{
			Pos:       p.makePos(tok),
			EndPos:    p.prevEnd(),
			Value:     value,
			IsUnicode: tok.Type == UNICODE_STRING,
		}
	}

	if p.match(HEX_STRING) {
		tok := p.previous()
		value := tok.Lexeme
		for p.check(HEX_STRING) {
			value += p.advance().Lexeme
		}
		return &ast.HexLiteral{
			Pos:    p.makePos(tok),
			EndPos: p.prevEnd(),
			Value:  value,
		}
	}

	if p.match(TRUE, FALSE) {
		tok := p.previous()
		return &ast.BooleanLiteral{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Type == TRUE,
		}
	}

	if p.match(IDENTIFIER, PAYABLE) {
		tok := p.previous()
		return &ast.Identifier{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}
	}

	if p.check(ELEMENTARY_TYPE) {
		return p.parseElementaryTypeName()
	}

	if p.check(NEW) {
		start := p.advance()
		typeName := p.parseTypeName()
		if typeName == nil {
			p.errorAtCurrent("expected type after 'new'")
			return p.badExpr(start, "invalid new expression")
		}
		return &ast.NewExpression{
			Pos:      p.makePos(start),
			EndPos:   typeName.NodeEndPos(),
			TypeName: typeName,
		}
	}

	if p.check(LEFT_PAREN) || p.check(LEFT_BRACKET) {
		return p.parseTuple()
	}

	tok := p.peek()
	p.errorAtCurrent("expected expression")
	switch tok.Type {
	case SEMICOLON, RIGHT_PAREN, RIGHT_BRACE, RIGHT_BRACKET, COMMA, EOF:
		// leave delimiters for the enclosing construct
	default:
		p.advance()
	}
	return p.badExpr(tok, "expected expression")
}

// parseTuple handles parenthesized expressions, tuples with gaps and inline
// arrays. "(x)" is a one-component tuple.
func (p *Parser) parseTuple() ast.Expr {
	open := p.advance()
	isArray := open.Type == LEFT_BRACKET
	close := RIGHT_PAREN
	if isArray {
		close = RIGHT_BRACKET
	}

	tuple := &ast.TupleExpression{Pos: p.makePos(open), IsArray: isArray}
	for !p.check(close) && !p.isAtEnd() {
		if p.check(COMMA) {
			p.advance()
			tuple.Components = append(tuple.Components, nil)
			if p.check(close) {
				tuple.Components = append(tuple.Components, nil)
			}
			continue
		}
		tuple.Components = append(tuple.Components, p.parseExpr())
		if !p.match(COMMA) {
			break
		}
		if p.check(close) {
			tuple.Components = append(tuple.Components, nil)
		}
	}
	p.consume(close, "expected closing bracket")
	tuple.EndPos = p.prevEnd()
	return tuple
}

func (p *Parser) badExpr(start Token, message string) *ast.BadExpr {
	return &ast.BadExpr{Bad: ast.BadNode{
		Pos:     p.makePos(start),
		EndPos:  p.prevEnd(),
		Message: message,
	}}
}
