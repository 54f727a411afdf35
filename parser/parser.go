// Package parser implements the Pratt-style expression parser and the
// statement parser built on top of it. Both emit directly into a shared
// diag.Sink (§7: the lexer never reports to the parser; both emit into the
// same sink) and into an in-order ast.VariableEvent stream that the scope
// analyzer consumes without re-walking the tree (§9).
package parser

import (
	"github.com/example/jslint/ast"
	"github.com/example/jslint/diag"
	"github.com/example/jslint/lexer"
	"github.com/example/jslint/source"
	"github.com/example/jslint/token"
)

type Parser struct {
	l         *lexer.Lexer
	arena     *ast.Arena
	sink      *diag.Sink
	curToken  token.Token
	peekToken token.Token
	noIn      bool // suppress 'in' as a binary operator, for for-in disambiguation
	events    []ast.VariableEvent

	// prevConsumedEnd records the byte offset just past the last token
	// parseArguments consumed (its closing `)`), so callers that
	// wrap a call or `new` expression can close their span without another
	// "previous token" field on every call site.
	prevConsumedEnd int
}

// New creates a Parser over source text, allocating a fresh ast.Arena and
// routing diagnostics into sink. Each call to ParseProgram is meant to be
// paired with a fresh Parser (and therefore a fresh Arena) — see
// document.Document.Lint, which does exactly that on every call (§5 I6).
func New(src string, sink *diag.Sink) *Parser {
	p := &Parser{
		l:     lexer.New(src, sink),
		arena: ast.NewArena(),
		sink:  sink,
	}
	p.nextToken()
	p.nextToken()
	return p
}

// ParseProgram parses the whole token stream and returns the resulting
// Program along with the variable-event stream emitted along the way.
func (p *Parser) ParseProgram() (*ast.Program, []ast.VariableEvent) {
	begin := p.curToken.Begin
	program := p.arena.NewProgram()
	p.enterScope(ast.ScopeFunction) // the module/global scope hosts var and function declarations
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	p.exitScope()
	end := p.curToken.End
	program.Range = source.Range{Begin: begin, End: end}
	return program, p.events
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextTokenWithRegex(p.curToken.Type)
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expect consumes t if present; otherwise it reports E107 and leaves the
// cursor in place so the caller's own recovery (usually "keep parsing the
// rest of the program") has a consistent token to look at.
func (p *Parser) expect(t token.TokenType) bool {
	if p.curTokenIs(t) {
		p.nextToken()
		return true
	}
	p.report(diag.E107, source.Range{Begin: p.curToken.Begin, End: p.curToken.End}, "unexpected token")
	return false
}

func (p *Parser) report(code diag.Code, where source.Range, message string) {
	p.sink.Add(code, where, message)
}

func (p *Parser) emit(kind ast.VariableEventKind, id ast.Identifier) {
	p.events = append(p.events, ast.VariableEvent{Kind: kind, Identifier: id})
}

// enterScope/exitScope bracket a lexical region in the event stream so the
// scope analyzer can rebuild the scope stack without re-walking the AST.
func (p *Parser) enterScope(kind ast.ScopeKind) {
	p.events = append(p.events, ast.VariableEvent{Kind: ast.EventEnterScope, ScopeKind: kind})
}

func (p *Parser) exitScope() {
	p.events = append(p.events, ast.VariableEvent{Kind: ast.EventExitScope})
}

// consumeSemicolon implements the ambient slice of ASI this implementation
// needs: a semicolon is consumed if present; otherwise the statement ends
// at a '}', EOF, or a line terminator before the next token (the common,
// non-controversial ASI cases), and parsing continues.
func (p *Parser) consumeSemicolon() {
	if p.curTokenIs(token.Semicolon) {
		p.nextToken()
		return
	}
	if p.curTokenIs(token.RightBrace) || p.curTokenIs(token.EOF) || p.curToken.NewlineBefore {
		return
	}
	p.report(diag.E107, source.Range{Begin: p.curToken.Begin, End: p.curToken.End}, "expected semicolon")
}

func (p *Parser) identFromToken(tok token.Token) ast.Identifier {
	return ast.Identifier{Range: source.Range{Begin: tok.Begin, End: tok.End}, Name: tok.Literal}
}

// ---------- Statements ----------

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.Var, token.Let, token.Const:
		return p.parseVariableDeclaration()
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Function:
		return p.parseFunctionDeclaration(ast.Normal)
	case token.Class:
		return p.parseClassDeclaration()
	case token.Debugger:
		return p.parseDebuggerStatement()
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.Import:
		return p.parseImportDeclaration()
	case token.Export:
		return p.parseExportDeclaration()
	case token.Async:
		if p.peekTokenIs(token.Function) {
			p.nextToken()
			return p.parseFunctionDeclaration(ast.AsyncAttr)
		}
		return p.parseExpressionOrLabeledStatement()
	default:
		return p.parseExpressionOrLabeledStatement()
	}
}

func (p *Parser) parseExpressionOrLabeledStatement() ast.Statement {
	if p.curTokenIs(token.Identifier) && p.peekTokenIs(token.Colon) {
		return p.parseLabeledStatement()
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseLabeledStatement() *ast.LabeledStatement {
	begin := p.curToken.Begin
	label := p.identFromToken(p.curToken)
	p.nextToken() // identifier
	p.nextToken() // colon
	body := p.parseStatement()
	end := body.Span().End
	stmt := p.arena.NewLabeledStatement()
	stmt.Range = source.Range{Begin: begin, End: end}
	stmt.Label = label
	stmt.Body = body
	return stmt
}

func (p *Parser) declarationKeywordKind(tt token.TokenType) ast.VariableDeclarationKind {
	switch tt {
	case token.Let:
		return ast.KindLet
	case token.Const:
		return ast.KindConst
	default:
		return ast.KindVar
	}
}

func (p *Parser) eventKindForDeclaration(kind ast.VariableDeclarationKind) ast.VariableEventKind {
	switch kind {
	case ast.KindLet:
		return ast.EventDeclarationLet
	case ast.KindConst:
		return ast.EventDeclarationConst
	case ast.KindFunction:
		return ast.EventDeclarationFunction
	case ast.KindClass:
		return ast.EventDeclarationClass
	case ast.KindParameter:
		return ast.EventDeclarationParameter
	case ast.KindImport:
		return ast.EventDeclarationImport
	default:
		return ast.EventDeclarationVar
	}
}

func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	begin := p.curToken.Begin
	kind := p.declarationKeywordKind(p.curToken.Type)
	p.nextToken() // consume var/let/const

	decl := p.arena.NewVariableDeclaration()
	decl.Kind = kind
	for {
		d := p.parseVariableDeclarator(kind)
		decl.Declarators = append(decl.Declarators, d)
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	end := p.curToken.Begin
	p.consumeSemicolon()
	decl.Range = source.Range{Begin: begin, End: end}
	return decl
}

func (p *Parser) parseVariableDeclarator(kind ast.VariableDeclarationKind) *ast.VariableDeclarator {
	begin := p.curToken.Begin
	d := p.arena.NewVariableDeclarator()
	d.Name = p.parseBindingTarget(kind)
	if p.curTokenIs(token.Assign) {
		p.nextToken()
		d.Init = p.parseAssignmentExpression()
	}
	d.Range = source.Range{Begin: begin, End: p.prevEnd()}
	return d
}

// prevEnd is a small helper for retroactively closing a span after a
// sub-parse. curToken/peekToken don't carry a "previous token" field (the
// lexer is one token ahead), so it returns the Begin of the current, not
// yet consumed token; the span therefore also covers any whitespace or
// comments between the last consumed token and that one.
func (p *Parser) prevEnd() int {
	return p.curToken.Begin
}

// parseBindingTarget parses an identifier or a destructuring pattern
// (reusing the Array/Object expression grammar, per §4.4's assignment
// target rule) and emits the appropriate declaration event for every
// identifier it binds.
func (p *Parser) parseBindingTarget(kind ast.VariableDeclarationKind) ast.Expression {
	switch p.curToken.Type {
	case token.LeftBrace:
		return p.parseObjectBindingTarget(kind)
	case token.LeftBracket:
		return p.parseArrayBindingTarget(kind)
	default:
		tok := p.curToken
		id := p.identFromToken(tok)
		p.nextToken()
		v := p.arena.NewVariable()
		v.Range = id.Range
		v.Identifier = id
		p.emit(p.eventKindForDeclaration(kind), id)
		return v
	}
}

func (p *Parser) parseObjectBindingTarget(kind ast.VariableDeclarationKind) ast.Expression {
	begin := p.curToken.Begin
	p.nextToken() // consume {
	obj := p.arena.NewObject()
	for !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.Spread) {
			spreadBegin := p.curToken.Begin
			p.nextToken()
			target := p.parseBindingTarget(kind)
			spread := p.arena.NewSpread()
			spread.Range = source.Range{Begin: spreadBegin, End: target.Span().End}
			spread.Child = target
			obj.Entries = append(obj.Entries, ast.ObjectEntry{Value: spread})
		} else {
			computed := p.curTokenIs(token.LeftBracket)
			var key ast.Expression
			if computed {
				p.nextToken()
				key = p.parseAssignmentExpression()
				p.expect(token.RightBracket)
			} else {
				key = p.parsePropertyKeyLiteral()
			}
			var value ast.Expression
			if p.curTokenIs(token.Colon) {
				p.nextToken()
				value = p.parseBindingElement(kind)
			} else {
				// shorthand: duplicates the identifier as property and value
				if v, ok := key.(*ast.Literal); ok {
					id := ast.Identifier{Range: v.Range, Name: v.Raw}
					varNode := p.arena.NewVariable()
					varNode.Range = id.Range
					varNode.Identifier = id
					p.emit(p.eventKindForDeclaration(kind), id)
					value = varNode
					if p.curTokenIs(token.Assign) {
						assignBegin := varNode.Range.Begin
						p.nextToken()
						def := p.parseAssignmentExpression()
						a := p.arena.NewAssignment()
						a.Range = source.Range{Begin: assignBegin, End: def.Span().End}
						a.Left = varNode
						a.Right = def
						value = a
					}
				}
			}
			obj.Entries = append(obj.Entries, ast.ObjectEntry{Property: key, Value: value})
		}
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	end := p.curToken.End
	p.expect(token.RightBrace)
	obj.Range = source.Range{Begin: begin, End: end}
	return obj
}

func (p *Parser) parseArrayBindingTarget(kind ast.VariableDeclarationKind) ast.Expression {
	begin := p.curToken.Begin
	p.nextToken() // consume [
	arr := p.arena.NewArray()
	for !p.curTokenIs(token.RightBracket) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.Comma) {
			arr.Elements = append(arr.Elements, nil)
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.Spread) {
			spreadBegin := p.curToken.Begin
			p.nextToken()
			target := p.parseBindingTarget(kind)
			spread := p.arena.NewSpread()
			spread.Range = source.Range{Begin: spreadBegin, End: target.Span().End}
			spread.Child = target
			arr.Elements = append(arr.Elements, spread)
			break
		}
		arr.Elements = append(arr.Elements, p.parseBindingElement(kind))
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	end := p.curToken.End
	p.expect(token.RightBracket)
	arr.Range = source.Range{Begin: begin, End: end}
	return arr
}

func (p *Parser) parseBindingElement(kind ast.VariableDeclarationKind) ast.Expression {
	target := p.parseBindingTarget(kind)
	if p.curTokenIs(token.Assign) {
		begin := target.Span().Begin
		p.nextToken()
		def := p.parseAssignmentExpression()
		a := p.arena.NewAssignment()
		a.Range = source.Range{Begin: begin, End: def.Span().End}
		a.Left = target
		a.Right = def
		return a
	}
	return target
}

// parsePropertyKeyLiteral parses a property name (identifier, string, or
// number) as a Literal spanning the key, matching the object-literal
// grammar's treatment of property keys (§4.4).
func (p *Parser) parsePropertyKeyLiteral() ast.Expression {
	tok := p.curToken
	lit := p.arena.NewLiteral()
	lit.Range = source.Range{Begin: tok.Begin, End: tok.End}
	lit.Raw = tok.Literal
	switch tok.Type {
	case token.Number:
		lit.Kind = ast.NumberLiteral
	case token.String:
		lit.Kind = ast.StringLiteral
	default:
		lit.Kind = ast.StringLiteral
	}
	p.nextToken()
	return lit
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	begin := p.curToken.Begin
	p.nextToken() // consume {
	block := p.arena.NewBlockStatement()
	p.enterScope(ast.ScopeBlock)
	for !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.exitScope()
	end := p.curToken.End
	p.expect(token.RightBrace)
	block.Range = source.Range{Begin: begin, End: end}
	return block
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	begin := p.curToken.Begin
	p.nextToken() // consume return
	stmt := p.arena.NewReturnStatement()
	if !p.curTokenIs(token.Semicolon) && !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) && !p.curToken.NewlineBefore {
		stmt.Value = p.parseExpression()
	}
	end := p.curToken.Begin
	p.consumeSemicolon()
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	begin := p.curToken.Begin
	p.nextToken() // consume if
	stmt := p.arena.NewIfStatement()
	p.expect(token.LeftParen)
	stmt.Test = p.parseExpression()
	p.expect(token.RightParen)
	stmt.Consequent = p.parseStatement()

	if p.curTokenIs(token.Else) {
		p.nextToken()
		stmt.Alternate = p.parseStatement()
	}
	end := stmt.Consequent.Span().End
	if stmt.Alternate != nil {
		end = stmt.Alternate.Span().End
	}
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	begin := p.curToken.Begin
	p.nextToken() // consume while
	stmt := p.arena.NewWhileStatement()
	p.expect(token.LeftParen)
	stmt.Test = p.parseExpression()
	p.expect(token.RightParen)
	stmt.Body = p.parseStatement()
	stmt.Range = source.Range{Begin: begin, End: stmt.Body.Span().End}
	return stmt
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	begin := p.curToken.Begin
	p.nextToken() // consume do
	stmt := p.arena.NewDoWhileStatement()
	stmt.Body = p.parseStatement()
	p.expect(token.While)
	p.expect(token.LeftParen)
	stmt.Test = p.parseExpression()
	end := p.curToken.End
	p.expect(token.RightParen)
	p.consumeSemicolon()
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseForStatement() ast.Statement {
	begin := p.curToken.Begin
	p.nextToken() // consume for
	if p.curTokenIs(token.Await) {
		p.nextToken()
	}
	p.expect(token.LeftParen)

	if p.curTokenIs(token.Var) || p.curTokenIs(token.Let) || p.curTokenIs(token.Const) {
		kind := p.declarationKeywordKind(p.curToken.Type)
		p.nextToken()
		// A declared loop variable gets its own block scope wrapping the
		// whole construct, so it doesn't leak into the enclosing block (§4.6).
		p.enterScope(ast.ScopeBlock)
		target := p.parseBindingTarget(kind)
		if p.curTokenIs(token.In) || p.curTokenIs(token.Of) {
			isOf := p.curTokenIs(token.Of)
			p.nextToken()
			right := p.parseExpression()
			p.expect(token.RightParen)
			body := p.parseStatement()
			p.exitScope()
			decl := p.arena.NewVariableDeclaration()
			decl.Kind = kind
			decl.Range = target.Span()
			dtor := p.arena.NewVariableDeclarator()
			dtor.Name = target
			dtor.Range = target.Span()
			decl.Declarators = []*ast.VariableDeclarator{dtor}
			if isOf {
				s := p.arena.NewForOfStatement()
				s.Left, s.Right, s.Body = decl, right, body
				s.Range = source.Range{Begin: begin, End: body.Span().End}
				return s
			}
			s := p.arena.NewForInStatement()
			s.Left, s.Right, s.Body = decl, right, body
			s.Range = source.Range{Begin: begin, End: body.Span().End}
			return s
		}
		// regular for (decl; test; update)
		decl := p.arena.NewVariableDeclaration()
		decl.Kind = kind
		dtor := p.arena.NewVariableDeclarator()
		dtor.Name = target
		dtor.Range = target.Span()
		if p.curTokenIs(token.Assign) {
			p.nextToken()
			dtor.Init = p.parseAssignmentExpression()
		}
		decl.Declarators = []*ast.VariableDeclarator{dtor}
		for p.curTokenIs(token.Comma) {
			p.nextToken()
			decl.Declarators = append(decl.Declarators, p.parseVariableDeclarator(kind))
		}
		decl.Range = source.Range{Begin: begin, End: p.curToken.Begin}
		p.expect(token.Semicolon)
		stmt := p.parseForRemainder(begin, decl)
		p.exitScope()
		return stmt
	}

	if p.curTokenIs(token.Semicolon) {
		p.nextToken()
		return p.parseForRemainder(begin, nil)
	}

	p.noIn = true
	expr := p.parseExpression()
	p.noIn = false

	if p.curTokenIs(token.In) || p.curTokenIs(token.Of) {
		isOf := p.curTokenIs(token.Of)
		p.nextToken()
		right := p.parseExpression()
		p.expect(token.RightParen)
		body := p.parseStatement()
		if isOf {
			s := p.arena.NewForOfStatement()
			s.Left, s.Right, s.Body = expr, right, body
			s.Range = source.Range{Begin: begin, End: body.Span().End}
			return s
		}
		s := p.arena.NewForInStatement()
		s.Left, s.Right, s.Body = expr, right, body
		s.Range = source.Range{Begin: begin, End: body.Span().End}
		return s
	}
	p.expect(token.Semicolon)
	return p.parseForRemainder(begin, expr)
}

// parseForRemainder parses `test ; update ) body` for a classic
// three-clause for loop, given the already-parsed init clause. init may
// be nil (bare `for (;;)`), a *ast.VariableDeclaration, or an Expression —
// all three satisfy ast.Node, which is all ForStatement.Init requires.
func (p *Parser) parseForRemainder(begin int, init ast.Node) *ast.ForStatement {
	stmt := p.arena.NewForStatement()
	stmt.Init = init
	if !p.curTokenIs(token.Semicolon) {
		stmt.Test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if !p.curTokenIs(token.RightParen) {
		stmt.Update = p.parseExpression()
	}
	p.expect(token.RightParen)
	stmt.Body = p.parseStatement()
	stmt.Range = source.Range{Begin: begin, End: stmt.Body.Span().End}
	return stmt
}

func (p *Parser) parseBreakStatement() *ast.BreakStatement {
	begin := p.curToken.Begin
	end := p.curToken.End
	p.nextToken() // consume break
	stmt := p.arena.NewBreakStatement()
	if p.curTokenIs(token.Identifier) && !p.curToken.NewlineBefore {
		id := p.identFromToken(p.curToken)
		stmt.Label = &id
		end = p.curToken.End
		p.nextToken()
	}
	p.consumeSemicolon()
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseContinueStatement() *ast.ContinueStatement {
	begin := p.curToken.Begin
	end := p.curToken.End
	p.nextToken() // consume continue
	stmt := p.arena.NewContinueStatement()
	if p.curTokenIs(token.Identifier) && !p.curToken.NewlineBefore {
		id := p.identFromToken(p.curToken)
		stmt.Label = &id
		end = p.curToken.End
		p.nextToken()
	}
	p.consumeSemicolon()
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	begin := p.curToken.Begin
	p.nextToken() // consume switch
	stmt := p.arena.NewSwitchStatement()
	p.expect(token.LeftParen)
	stmt.Discriminant = p.parseExpression()
	p.expect(token.RightParen)
	p.expect(token.LeftBrace)
	for !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) {
		caseBegin := p.curToken.Begin
		c := p.arena.NewSwitchCase()
		if p.curTokenIs(token.Case) {
			p.nextToken()
			c.Test = p.parseExpression()
		} else {
			p.expect(token.Default)
		}
		p.expect(token.Colon)
		for !p.curTokenIs(token.Case) && !p.curTokenIs(token.Default) && !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) {
			s := p.parseStatement()
			if s != nil {
				c.Body = append(c.Body, s)
			}
		}
		c.Range = source.Range{Begin: caseBegin, End: p.curToken.Begin}
		stmt.Cases = append(stmt.Cases, c)
	}
	end := p.curToken.End
	p.expect(token.RightBrace)
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseThrowStatement() *ast.ThrowStatement {
	begin := p.curToken.Begin
	p.nextToken() // consume throw
	stmt := p.arena.NewThrowStatement()
	stmt.Argument = p.parseExpression()
	end := p.curToken.Begin
	p.consumeSemicolon()
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseTryStatement() *ast.TryStatement {
	begin := p.curToken.Begin
	p.nextToken() // consume try
	stmt := p.arena.NewTryStatement()
	stmt.Block = p.parseBlockStatement()
	end := stmt.Block.Range.End

	if p.curTokenIs(token.Catch) {
		catchBegin := p.curToken.Begin
		p.nextToken()
		handler := p.arena.NewCatchClause()
		// The catch binding and the handler body share one block scope,
		// matching how a function's parameters and body share a function
		// scope (§4.6).
		p.enterScope(ast.ScopeBlock)
		if p.curTokenIs(token.LeftParen) {
			p.nextToken()
			handler.Param = p.parseBindingTarget(ast.KindParameter)
			p.expect(token.RightParen)
		}
		handler.Body = p.parseBlockStatement()
		p.exitScope()
		handler.Range = source.Range{Begin: catchBegin, End: handler.Body.Range.End}
		stmt.Handler = handler
		end = handler.Range.End
	}
	if p.curTokenIs(token.Finally) {
		p.nextToken()
		stmt.Finalizer = p.parseBlockStatement()
		end = stmt.Finalizer.Range.End
	}
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseFunctionParams() []ast.Expression {
	p.expect(token.LeftParen)
	var params []ast.Expression
	for !p.curTokenIs(token.RightParen) && !p.curTokenIs(token.EOF) {
		params = append(params, p.parseBindingElement(ast.KindParameter))
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	p.expect(token.RightParen)
	return params
}

func (p *Parser) parseFunctionDeclaration(attrs ast.FunctionAttributes) *ast.FunctionDeclaration {
	begin := p.curToken.Begin
	p.nextToken() // consume function
	generator := false
	if p.curTokenIs(token.Asterisk) {
		generator = true
		p.nextToken()
	}
	decl := p.arena.NewFunctionDeclaration()
	decl.Attributes = attrs
	decl.Generator = generator
	if p.curTokenIs(token.Identifier) {
		id := p.identFromToken(p.curToken)
		decl.Name = &id
		p.emit(ast.EventDeclarationFunction, id)
		p.nextToken()
	}
	p.enterScope(ast.ScopeFunction)
	decl.Params = p.parseFunctionParams()
	decl.Body = p.parseBlockStatement()
	p.exitScope()
	decl.Range = source.Range{Begin: begin, End: decl.Body.Range.End}
	return decl
}

func (p *Parser) parseClassDeclaration() *ast.ClassDeclaration {
	begin := p.curToken.Begin
	p.nextToken() // consume class
	decl := p.arena.NewClassDeclaration()
	if p.curTokenIs(token.Identifier) {
		id := p.identFromToken(p.curToken)
		decl.Name = &id
		p.emit(ast.EventDeclarationClass, id)
		p.nextToken()
	}
	if p.curTokenIs(token.Extends) {
		p.nextToken()
		decl.SuperClass = p.parseLeftHandSideExpression()
	}
	decl.Body = p.parseClassBody()
	decl.Range = source.Range{Begin: begin, End: decl.Body.Range.End}
	return decl
}

func (p *Parser) parseClassBody() *ast.ClassBody {
	begin := p.curToken.Begin
	p.expect(token.LeftBrace)
	body := p.arena.NewClassBody()
	for !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.Semicolon) {
			p.nextToken()
			continue
		}
		body.Members = append(body.Members, p.parseMethodDefinition())
	}
	end := p.curToken.End
	p.expect(token.RightBrace)
	body.Range = source.Range{Begin: begin, End: end}
	return body
}

func (p *Parser) parseMethodDefinition() *ast.MethodDefinition {
	begin := p.curToken.Begin
	m := p.arena.NewMethodDefinition()
	m.Kind = "method"
	if p.curTokenIs(token.Identifier) && p.curToken.Literal == "static" && !p.peekTokenIs(token.LeftParen) && !p.peekTokenIs(token.Assign) {
		m.Static = true
		p.nextToken()
	}
	attrs := ast.Normal
	if p.curTokenIs(token.Async) {
		attrs = ast.AsyncAttr
		p.nextToken()
	}
	generator := false
	if p.curTokenIs(token.Asterisk) {
		generator = true
		p.nextToken()
	}
	if (p.curTokenIs(token.Identifier) && (p.curToken.Literal == "get" || p.curToken.Literal == "set")) &&
		!p.peekTokenIs(token.LeftParen) {
		if p.curToken.Literal == "get" {
			m.Kind = "get"
		} else {
			m.Kind = "set"
		}
		p.nextToken()
	}
	if p.curTokenIs(token.LeftBracket) {
		m.Computed = true
		p.nextToken()
		m.Key = p.parseAssignmentExpression()
		p.expect(token.RightBracket)
	} else {
		m.Key = p.parsePropertyKeyLiteral()
		if lit, ok := m.Key.(*ast.Literal); ok && lit.Raw == "constructor" {
			m.Kind = "constructor"
		}
	}
	fn := p.arena.NewFunction()
	fn.Attributes = attrs
	fn.Generator = generator
	p.enterScope(ast.ScopeFunction)
	fn.Params = p.parseFunctionParams()
	block := p.parseBlockStatement()
	p.exitScope()
	fn.Body = block.Statements
	fn.Range = source.Range{Begin: begin, End: block.Range.End}
	m.Value = fn
	m.Range = source.Range{Begin: begin, End: block.Range.End}
	return m
}

func (p *Parser) parseDebuggerStatement() *ast.DebuggerStatement {
	begin := p.curToken.Begin
	end := p.curToken.End
	p.nextToken()
	p.consumeSemicolon()
	stmt := p.arena.NewDebuggerStatement()
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseEmptyStatement() *ast.EmptyStatement {
	begin := p.curToken.Begin
	end := p.curToken.End
	p.nextToken()
	stmt := p.arena.NewEmptyStatement()
	stmt.Range = source.Range{Begin: begin, End: end}
	return stmt
}

func (p *Parser) parseImportDeclaration() *ast.ImportDeclaration {
	begin := p.curToken.Begin
	p.nextToken() // consume import
	decl := p.arena.NewImportDeclaration()

	if p.curTokenIs(token.String) {
		decl.ModulePath = p.curToken.Literal
		end := p.curToken.End
		p.nextToken()
		p.consumeSemicolon()
		decl.Range = source.Range{Begin: begin, End: end}
		return decl
	}

	if p.curTokenIs(token.Identifier) {
		id := p.identFromToken(p.curToken)
		decl.Specifiers = append(decl.Specifiers, ast.ImportSpecifier{Local: id})
		p.emit(ast.EventDeclarationImport, id)
		p.nextToken()
		if p.curTokenIs(token.Comma) {
			p.nextToken()
		}
	}
	if p.curTokenIs(token.Asterisk) {
		p.nextToken()
		p.expect(token.As)
		id := p.identFromToken(p.curToken)
		decl.Specifiers = append(decl.Specifiers, ast.ImportSpecifier{Local: id})
		p.emit(ast.EventDeclarationImport, id)
		p.nextToken()
	} else if p.curTokenIs(token.LeftBrace) {
		p.nextToken()
		for !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) {
			local := p.curToken
			p.nextToken() // imported name
			if p.curTokenIs(token.As) {
				p.nextToken()
				local = p.curToken
				p.nextToken()
			}
			id := p.identFromToken(local)
			decl.Specifiers = append(decl.Specifiers, ast.ImportSpecifier{Local: id})
			p.emit(ast.EventDeclarationImport, id)
			if !p.curTokenIs(token.Comma) {
				break
			}
			p.nextToken()
		}
		p.expect(token.RightBrace)
	}
	if p.curTokenIs(token.From) {
		p.nextToken()
		if p.curTokenIs(token.String) {
			decl.ModulePath = p.curToken.Literal
			p.nextToken()
		}
	}
	end := p.curToken.Begin
	p.consumeSemicolon()
	decl.Range = source.Range{Begin: begin, End: end}
	return decl
}

func (p *Parser) parseExportDeclaration() *ast.ExportDeclaration {
	begin := p.curToken.Begin
	p.nextToken() // consume export
	decl := p.arena.NewExportDeclaration()
	if p.curTokenIs(token.Default) {
		p.nextToken()
	}
	switch p.curToken.Type {
	case token.Function:
		decl.Decl = p.parseFunctionDeclaration(ast.Normal)
	case token.Class:
		decl.Decl = p.parseClassDeclaration()
	case token.Var, token.Let, token.Const:
		decl.Decl = p.parseVariableDeclaration()
	default:
		if !p.curTokenIs(token.Semicolon) && !p.curTokenIs(token.EOF) {
			expr := p.parseExpression()
			stmt := p.arena.NewExpressionStatement()
			stmt.Expr = expr
			stmt.Range = expr.Span()
			decl.Decl = stmt
		}
		p.consumeSemicolon()
	}
	end := begin
	if decl.Decl != nil {
		end = decl.Decl.Span().End
	}
	decl.Range = source.Range{Begin: begin, End: end}
	return decl
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	begin := p.curToken.Begin
	expr := p.parseExpression()
	end := p.curToken.Begin
	p.consumeSemicolon()
	stmt := p.arena.NewExpressionStatement()
	stmt.Expr = expr
	stmt.Range = source.Range{Begin: begin, End: end}
	if stmt.Range.End < expr.Span().End {
		stmt.Range.End = expr.Span().End
	}
	return stmt
}
