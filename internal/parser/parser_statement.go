package parser

import (
	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
)

func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(LEFT_BRACE, "expected '{' to start block")
	block := &ast.Block{Pos: p.makePos(start)}

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		before := p.current
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.current == before {
			p.errorAtCurrent("unexpected token in block")
			p.advance()
		}
	}

	p.consume(RIGHT_BRACE, "expected '}' to close block")
	block.EndPos = p.prevEnd()
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.peek().Type {
	case LEFT_BRACE:
		return p.parseBlock()
	case IF:
		return p.parseIf()
	case FOR:
		return p.parseFor()
	case WHILE:
		return p.parseWhile()
	case DO:
		return p.parseDoWhile()
	case RETURN:
		return p.parseReturn()
	case EMIT:
		return p.parseEmit()
	case BREAK:
		tok := p.advance()
		p.consume(SEMICOLON, "expected ';' after 'break'")
		return &ast.BreakStatement{Pos: p.makePos(tok), EndPos: p.prevEnd()}
	case CONTINUE:
		tok := p.advance()
		p.consume(SEMICOLON, "expected ';' after 'continue'")
		return &ast.ContinueStatement{Pos: p.makePos(tok), EndPos: p.prevEnd()}
	case UNCHECKED:
		tok := p.advance()
		block := p.parseBlock()
		return &ast.UncheckedStatement{Pos: p.makePos(tok), EndPos: block.EndPos, Block: block}
	case ASSEMBLY:
		return p.parseAssembly()
	case TRY:
		return p.parseTry()
	}

	if p.checkLexeme(IDENTIFIER, kwRevert) && p.peekAt(1).Type == IDENTIFIER {
		return p.parseRevert()
	}

	if decl := p.tryVariableDeclaration(); decl != nil {
		return decl
	}

	return p.parseExpressionStatement()
}

// parseSimpleStatement is the init clause of a for loop: a declaration or an
// expression, each terminated by ';'.
func (p *Parser) parseSimpleStatement() ast.Statement {
	if decl := p.tryVariableDeclaration(); decl != nil {
		return decl
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.peek()
	expr := p.parseExpr()
	if _, bad := expr.(*ast.BadExpr); bad {
		p.synchronize()
		return &ast.BadStatement{Bad: ast.BadNode{
			Pos:     p.makePos(start),
			EndPos:  p.prevEnd(),
			Message: "invalid statement",
		}}
	}

	if p.consume(SEMICOLON, "expected ';' after expression").Type == ILLEGAL {
		p.synchronize()
	}
	return &ast.ExpressionStatement{
		Pos:        expr.NodePos(),
		EndPos:     p.prevEnd(),
		Expression: expr,
	}
}

// tryVariableDeclaration parses a local declaration when one starts at the
// current token. Otherwise it rewinds and returns nil.
func (p *Parser) tryVariableDeclaration() *ast.VariableDeclarationStatement {
	saved, savedErrors := p.current, len(p.errors)
	rewind := func() *ast.VariableDeclarationStatement {
		p.current = saved
		p.errors = p.errors[:savedErrors]
		return nil
	}

	start := p.peek()
	var vars []*ast.VariableDeclaration

	if p.check(LEFT_PAREN) {
		p.advance()
		typed := 0
		for !p.check(RIGHT_PAREN) {
			if p.check(COMMA) {
				p.advance()
				vars = append(vars, nil)
				continue
			}
			decl := p.parseLocalDeclaration()
			if decl == nil {
				return rewind()
			}
			vars = append(vars, decl)
			typed++
			if !p.match(COMMA) {
				break
			}
			if p.check(RIGHT_PAREN) {
				vars = append(vars, nil)
			}
		}
		if typed == 0 || !p.match(RIGHT_PAREN) || !p.check(EQUAL) {
			return rewind()
		}
	} else {
		decl := p.parseLocalDeclaration()
		if decl == nil {
			return rewind()
		}
		vars = append(vars, decl)
	}

	stmt := &ast.VariableDeclarationStatement{
		Pos:       p.makePos(start),
		Variables: vars,
	}
	if p.match(EQUAL) {
		stmt.InitialValue = p.parseExpr()
	}
	if p.consume(SEMICOLON, "expected ';' after variable declaration").Type == ILLEGAL {
		p.synchronize()
	}
	stmt.EndPos = p.prevEnd()
	return stmt
}

// parseLocalDeclaration parses "T [location] name" and returns nil when the
// tokens do not form one. Callers rewind on nil.
func (p *Parser) parseLocalDeclaration() *ast.VariableDeclaration {
	start := p.peek()
	typeName := p.parseTypeName()
	if typeName == nil {
		return nil
	}

	decl := &ast.VariableDeclaration{Pos: p.makePos(start), TypeName: typeName}
	if p.match(MEMORY, STORAGE, CALLDATA) {
		decl.StorageLocation = p.previous().Lexeme
	}
	if !p.check(IDENTIFIER) {
		return nil
	}
	name := p.makeIdent(p.advance())
	decl.Name = &name
	decl.EndPos = p.prevEnd()
	return decl
}

func (p *Parser) parseIf() ast.Statement {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after if condition")

	stmt := &ast.IfStatement{
		Pos:       p.makePos(start),
		Condition: cond,
		TrueBody:  p.parseStatement(),
	}
	if p.match(ELSE) {
		stmt.FalseBody = p.parseStatement()
	}
	stmt.EndPos = p.prevEnd()
	return stmt
}

func (p *Parser) parseFor() ast.Statement {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'for'")

	stmt := &ast.ForStatement{Pos: p.makePos(start)}

	if !p.match(SEMICOLON) {
		stmt.InitExpression = p.parseSimpleStatement()
	}

	if !p.check(SEMICOLON) {
		stmt.ConditionExpression = p.parseExpr()
	}
	p.consume(SEMICOLON, "expected ';' after loop condition")

	if !p.check(RIGHT_PAREN) {
		loopExpr := p.parseExpr()
		stmt.LoopExpression = &ast.ExpressionStatement{
			Pos:        loopExpr.NodePos(),
			EndPos:     loopExpr.NodeEndPos(),
			Expression: loopExpr,
		}
	}
	p.consume(RIGHT_PAREN, "expected ')' after for clauses")

	stmt.Body = p.parseStatement()
	stmt.EndPos = p.prevEnd()
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.advance()
	p.consume(LEFT_PAREN, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after while condition")

	body := p.parseStatement()
	return &ast.WhileStatement{
		Pos:       p.makePos(start),
		EndPos:    p.prevEnd(),
		Condition: cond,
		Body:      body,
	}
}

func (p *Parser) parseDoWhile() ast.Statement {
	start := p.advance()
	body := p.parseStatement()
	p.consume(WHILE, "expected 'while' after do body")
	p.consume(LEFT_PAREN, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after while condition")
	p.consume(SEMICOLON, "expected ';' after do-while")

	return &ast.DoWhileStatement{
		Pos:       p.makePos(start),
		EndPos:    p.prevEnd(),
		Condition: cond,
		Body:      body,
	}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.advance()
	stmt := &ast.ReturnStatement{Pos: p.makePos(start)}
	if !p.check(SEMICOLON) {
		stmt.Expression = p.parseExpr()
	}
	p.consume(SEMICOLON, "expected ';' after return")
	stmt.EndPos = p.prevEnd()
	return stmt
}

func (p *Parser) parseEmit() ast.Statement {
	start := p.advance()
	expr := p.parseExpr()
	call, ok := expr.(*ast.FunctionCall)
	if !ok {
		p.errorAtCurrent("expected event call after 'emit'")
		p.synchronize()
		return &ast.BadStatement{Bad: ast.BadNode{
			Pos:     p.makePos(start),
			EndPos:  p.prevEnd(),
			Message: "invalid emit statement",
		}}
	}
	p.consume(SEMICOLON, "expected ';' after emit")
	return &ast.EmitStatement{
		Pos:       p.makePos(start),
		EndPos:    p.prevEnd(),
		EventCall: call,
	}
}

func (p *Parser) parseRevert() ast.Statement {
	start := p.advance()
	expr := p.parseExpr()
	call, ok := expr.(*ast.FunctionCall)
	if !ok {
		p.errorAtCurrent("expected error call after 'revert'")
		p.synchronize()
		return &ast.BadStatement{Bad: ast.BadNode{
			Pos:     p.makePos(start),
			EndPos:  p.prevEnd(),
			Message: "invalid revert statement",
		}}
	}
	p.consume(SEMICOLON, "expected ';' after revert")
	return &ast.RevertStatement{
		Pos:        p.makePos(start),
		EndPos:     p.prevEnd(),
		RevertCall: call,
	}
}

func (p *Parser) parseAssembly() ast.Statement {
	start := p.advance()
	p.match(STRING) // dialect, "evmasm"
	if p.check(LEFT_PAREN) {
		p.skipBalanced(LEFT_PAREN, RIGHT_PAREN)
	}
	if !p.check(LEFT_BRACE) {
		p.errorAtCurrent("expected '{' after 'assembly'")
		return &ast.BadStatement{Bad: ast.BadNode{
			Pos:     p.makePos(start),
			EndPos:  p.prevEnd(),
			Message: "invalid assembly block",
		}}
	}
	body := p.skipBalanced(LEFT_BRACE, RIGHT_BRACE)
	return &ast.InlineAssemblyStatement{
		Pos:    p.makePos(start),
		EndPos: p.prevEnd(),
		Body:   body,
	}
}

func (p *Parser) parseTry() ast.Statement {
	start := p.advance()
	stmt := &ast.TryStatement{
		Pos:        p.makePos(start),
		Expression: p.parseExpr(),
	}
	if p.match(RETURNS) {
		stmt.ReturnParameters = p.parseParameterList()
	}
	stmt.Body = p.parseBlock()

	for p.check(CATCH) {
		catchTok := p.advance()
		clause := &ast.CatchClause{Pos: p.makePos(catchTok)}
		if p.check(IDENTIFIER) {
			clause.Kind = p.advance().Lexeme
		}
		if p.check(LEFT_PAREN) {
			clause.Parameters = p.parseParameterList()
		}
		clause.Body = p.parseBlock()
		clause.EndPos = clause.Body.EndPos
		stmt.CatchClauses = append(stmt.CatchClauses, clause)
	}
	if len(stmt.CatchClauses) == 0 {
		p.errorAtCurrent("expected 'catch' after try block")
	}

	stmt.EndPos = p.prevEnd()
	return stmt
}
