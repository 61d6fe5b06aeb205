package parser

import (
	"github.com/babyhome/solidity-gas-optimizer/internal/ast"
)

// ParseSourceUnit parses the whole token stream. Unrecognized regions are kept
// as BadContractPart nodes so later passes can still walk the tree.
func (p *Parser) ParseSourceUnit() *ast.SourceUnit {
	unit := &ast.SourceUnit{
		Pos:      p.makePos(p.peek()),
		Comments: p.comments,
	}

	for !p.isAtEnd() {
		before := p.current
		if part := p.parseSourceUnitPart(); part != nil {
			unit.Children = append(unit.Children, part)
		}
		if p.current == before {
			// stray closing brace or similar; step over it
			p.errorAtCurrent("unexpected token at file level")
			p.advance()
		}
	}

	unit.EndPos = p.makeEndPos(p.peek())
	return unit
}

func (p *Parser) parseSourceUnitPart() ast.SourceUnitPart {
	switch {
	case p.check(PRAGMA):
		return p.parsePragma()
	case p.check(IMPORT):
		return p.parseImport()
	case p.check(CONTRACT), p.check(INTERFACE), p.check(LIBRARY), p.check(ABSTRACT):
		return p.parseContract()
	case p.checkLexeme(IDENTIFIER, kwType) && p.peekAt(1).Type == IDENTIFIER:
		p.skipUserValueType()
		return nil
	}

	part := p.parseContractPart()
	if part == nil {
		return nil
	}
	if sup, ok := part.(ast.SourceUnitPart); ok {
		return sup
	}
	return &ast.BadContractPart{Bad: ast.BadNode{
		Pos:     part.NodePos(),
		EndPos:  part.NodeEndPos(),
		Message: "declaration not allowed at file level",
	}}
}

func (p *Parser) parsePragma() *ast.PragmaDirective {
	start := p.advance()
	name := p.advance()

	var valueTokens []Token
	for !p.check(SEMICOLON) && !p.isAtEnd() {
		valueTokens = append(valueTokens, p.advance())
	}
	p.consume(SEMICOLON, "expected ';' after pragma")

	return &ast.PragmaDirective{
		Pos:    p.makePos(start),
		EndPos: p.prevEnd(),
		Name:   name.Lexeme,
		Value:  joinTokens(valueTokens),
	}
}

func (p *Parser) parseImport() *ast.ImportDirective {
	start := p.advance()
	path := ""
	for !p.check(SEMICOLON) && !p.isAtEnd() {
		tok := p.advance()
		if tok.Type == STRING && path == "" {
			path = tok.Lexeme
		}
	}
	p.consume(SEMICOLON, "expected ';' after import")

	return &ast.ImportDirective{
		Pos:    p.makePos(start),
		EndPos: p.prevEnd(),
		Path:   path,
	}
}

// skipUserValueType steps over "type Price is uint128;", which no analysis uses.
func (p *Parser) skipUserValueType() {
	for !p.check(SEMICOLON) && !p.isAtEnd() {
		p.advance()
	}
	p.match(SEMICOLON)
}

func (p *Parser) parseContract() *ast.ContractDefinition {
	start := p.peek()
	kind := "contract"
	if p.match(ABSTRACT) {
		kind = "abstract"
	}
	switch kindTok := p.advance(); kindTok.Type {
	case INTERFACE:
		kind = "interface"
	case LIBRARY:
		kind = "library"
	case CONTRACT:
	default:
		p.errorAtCurrent("expected 'contract' after 'abstract'")
	}

	name, _ := p.consumeIdent("expected contract name")

	contract := &ast.ContractDefinition{
		Pos:  p.makePos(start),
		Name: name,
		Kind: kind,
	}

	if p.match(IS) {
		for {
			spec := p.parseInheritanceSpecifier()
			if spec == nil {
				break
			}
			contract.BaseContracts = append(contract.BaseContracts, spec)
			if !p.match(COMMA) {
				break
			}
		}
	}

	if p.consume(LEFT_BRACE, "expected '{' to start contract body").Type == ILLEGAL {
		p.synchronize()
		contract.EndPos = p.prevEnd()
		return contract
	}

	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		before := p.current
		if part := p.parseContractPart(); part != nil {
			contract.SubNodes = append(contract.SubNodes, part)
		}
		if p.current == before {
			p.errorAtCurrent("unexpected token in contract body")
			p.advance()
		}
	}

	p.consume(RIGHT_BRACE, "expected '}' to close contract body")
	contract.EndPos = p.prevEnd()
	return contract
}

func (p *Parser) parseInheritanceSpecifier() *ast.InheritanceSpecifier {
	start := p.peek()
	path, last, ok := p.parseIdentifierPath()
	if !ok {
		return nil
	}

	spec := &ast.InheritanceSpecifier{
		Pos: p.makePos(start),
		BaseName: &ast.UserDefinedTypeName{
			Pos:      p.makePos(start),
			EndPos:   p.makeEndPos(last),
			NamePath: path,
		},
	}
	if p.match(LEFT_PAREN) {
		spec.Arguments = p.parseExprList(RIGHT_PAREN)
		p.consume(RIGHT_PAREN, "expected ')' after base constructor arguments")
	}
	spec.EndPos = p.prevEnd()
	return spec
}

// parseContractPart parses one member of a contract body. It returns nil when
// the member is skipped entirely.
func (p *Parser) parseContractPart() ast.ContractPart {
	switch {
	case p.check(FUNCTION):
		return p.parseFunction()
	case p.check(CONSTRUCTOR):
		return p.parseFunction()
	case (p.checkLexeme(IDENTIFIER, kwFallback) || p.checkLexeme(IDENTIFIER, kwReceive)) &&
		p.peekAt(1).Type == LEFT_PAREN:
		return p.parseFunction()
	case p.check(MODIFIER):
		return p.parseModifier()
	case p.check(EVENT):
		return p.parseEvent()
	case p.check(STRUCT):
		return p.parseStruct()
	case p.check(ENUM):
		return p.parseEnum()
	case p.check(USING):
		return p.parseUsingFor()
	case p.checkLexeme(IDENTIFIER, kwError) && p.peekAt(1).Type == IDENTIFIER && p.peekAt(2).Type == LEFT_PAREN:
		return p.parseCustomError()
	case p.checkLexeme(IDENTIFIER, kwType) && p.peekAt(1).Type == IDENTIFIER && p.peekAt(2).Type == IS:
		p.skipUserValueType()
		return nil
	}

	return p.parseStateVariable()
}

func (p *Parser) parseStateVariable() ast.ContractPart {
	start := p.peek()
	typeName := p.parseTypeName()
	if typeName == nil {
		return p.badContractPart(start, "expected declaration")
	}

	decl := &ast.VariableDeclaration{
		Pos:        p.makePos(start),
		TypeName:   typeName,
		IsStateVar: true,
	}

attributes:
	for {
		switch {
		case p.match(PUBLIC, PRIVATE, INTERNAL, EXTERNAL):
			decl.Visibility = p.previous().Lexeme
		case p.match(CONSTANT):
			decl.IsDeclaredConst = true
		case p.match(IMMUTABLE):
			decl.IsImmutable = true
		case p.check(OVERRIDE):
			p.parseOverride()
		case p.checkLexeme(IDENTIFIER, "transient") && p.peekAt(1).Type == IDENTIFIER:
			p.advance()
		default:
			break attributes
		}
	}

	name, ok := p.consumeIdent("expected state variable name")
	if !ok {
		return p.badContractPart(start, "invalid state variable declaration")
	}
	decl.Name = &name

	if p.match(EQUAL) {
		decl.Expression = p.parseExpr()
	}
	if p.consume(SEMICOLON, "expected ';' after state variable").Type == ILLEGAL {
		p.synchronize()
	}
	decl.EndPos = p.prevEnd()

	return &ast.StateVariableDeclaration{
		Pos:          decl.Pos,
		EndPos:       decl.EndPos,
		Variables:    []*ast.VariableDeclaration{decl},
		InitialValue: decl.Expression,
	}
}

func (p *Parser) badContractPart(start Token, message string) *ast.BadContractPart {
	p.synchronize()
	return &ast.BadContractPart{Bad: ast.BadNode{
		Pos:     p.makePos(start),
		EndPos:  p.prevEnd(),
		Message: message,
	}}
}

func (p *Parser) parseEvent() *ast.EventDefinition {
	start := p.advance()
	name, _ := p.consumeIdent("expected event name")

	event := &ast.EventDefinition{
		Pos:        p.makePos(start),
		Name:       name,
		Parameters: p.parseParameterList(),
	}
	event.IsAnonymous = p.match(ANONYMOUS)
	p.consume(SEMICOLON, "expected ';' after event")
	event.EndPos = p.prevEnd()
	return event
}

func (p *Parser) parseCustomError() *ast.CustomErrorDefinition {
	start := p.advance()
	name, _ := p.consumeIdent("expected error name")

	def := &ast.CustomErrorDefinition{
		Pos:        p.makePos(start),
		Name:       name,
		Parameters: p.parseParameterList(),
	}
	p.consume(SEMICOLON, "expected ';' after error")
	def.EndPos = p.prevEnd()
	return def
}

func (p *Parser) parseStruct() *ast.StructDefinition {
	start := p.advance()
	name, _ := p.consumeIdent("expected struct name")

	def := &ast.StructDefinition{Pos: p.makePos(start), Name: name}
	p.consume(LEFT_BRACE, "expected '{' after struct name")
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		memberStart := p.peek()
		typeName := p.parseTypeName()
		if typeName == nil {
			p.synchronize()
			continue
		}
		member := &ast.VariableDeclaration{Pos: p.makePos(memberStart), TypeName: typeName}
		if field, ok := p.consumeIdent("expected struct member name"); ok {
			member.Name = &field
		}
		p.consume(SEMICOLON, "expected ';' after struct member")
		member.EndPos = p.prevEnd()
		def.Members = append(def.Members, member)
	}
	p.consume(RIGHT_BRACE, "expected '}' after struct members")
	def.EndPos = p.prevEnd()
	return def
}

func (p *Parser) parseEnum() *ast.EnumDefinition {
	start := p.advance()
	name, _ := p.consumeIdent("expected enum name")

	def := &ast.EnumDefinition{Pos: p.makePos(start), Name: name}
	p.consume(LEFT_BRACE, "expected '{' after enum name")
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		tok := p.consume(IDENTIFIER, "expected enum member")
		if tok.Type == ILLEGAL {
			break
		}
		def.Members = append(def.Members, &ast.EnumValue{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		})
		if !p.match(COMMA) {
			break
		}
	}
	p.consume(RIGHT_BRACE, "expected '}' after enum members")
	def.EndPos = p.prevEnd()
	return def
}

func (p *Parser) parseUsingFor() *ast.UsingForDeclaration {
	start := p.advance()
	decl := &ast.UsingForDeclaration{Pos: p.makePos(start)}

	if p.check(LEFT_BRACE) {
		// using {add, sub} for Fixed;
		decl.LibraryName = p.skipBalanced(LEFT_BRACE, RIGHT_BRACE)
	} else if path, _, ok := p.parseIdentifierPath(); ok {
		decl.LibraryName = path
	}

	p.consume(FOR, "expected 'for' in using directive")
	if !p.match(STAR) {
		decl.TypeName = p.parseTypeName()
	}
	p.matchLexeme(IDENTIFIER, kwGlobal)
	p.consume(SEMICOLON, "expected ';' after using directive")
	decl.EndPos = p.prevEnd()
	return decl
}

func (p *Parser) matchLexeme(tt TokenType, lexeme string) bool {
	if p.checkLexeme(tt, lexeme) {
		p.advance()
		return true
	}
	return false
}
