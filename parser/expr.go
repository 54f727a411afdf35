package parser

import (
	"github.com/example/jslint/ast"
	"github.com/example/jslint/diag"
	"github.com/example/jslint/source"
	"github.com/example/jslint/token"
)

// parseExpression parses a full expression, including the comma operator,
// which flattens into a BinaryOperator node exactly like every other
// same-precedence run (§4.4's "comma flattening" generalizes: every binary
// operator flattens at its own precedence level, not only +/-/,).
func (p *Parser) parseExpression() ast.Expression {
	left := p.parseAssignmentExpression()
	if !p.curTokenIs(token.Comma) {
		return left
	}
	begin := left.Span().Begin
	children := []ast.Expression{left}
	for p.curTokenIs(token.Comma) {
		op := p.curToken
		p.nextToken()
		children = append(children, p.parseAssignmentOperand(op))
	}
	node := p.arena.NewBinaryOperator()
	node.Children = children
	node.Range = source.Range{Begin: begin, End: children[len(children)-1].Span().End}
	return node
}

// parseAssignmentOperand parses one assignment-level operand after a
// binary operator, synthesizing a zero-length Invalid node at the position
// the operand was expected and reporting E001 at the operator's own span
// if the next token cannot start an expression at all (§4.4, §8: `2+` ->
// one E001 at the `+` token's span).
func (p *Parser) parseAssignmentOperand(op token.Token) ast.Expression {
	if !canStartExpression(p.curToken.Type) {
		p.report(diag.E001, source.Range{Begin: op.Begin, End: op.End}, "expected expression, found "+p.curToken.Literal)
		inv := p.arena.NewInvalid()
		inv.Range = source.Range{Begin: op.End, End: op.End}
		return inv
	}
	return p.parseAssignmentExpression()
}

func (p *Parser) parseAssignmentExpression() ast.Expression {
	left := p.tryParseArrowFunction()
	if left != nil {
		return left
	}
	left = p.parseConditionalExpression()

	if isAssign, isPlain := assignmentOperator(p.curToken.Type); isAssign {
		op := p.curToken
		p.nextToken()
		if !canStartExpression(p.curToken.Type) {
			p.report(diag.E001, source.Range{Begin: op.Begin, End: op.End}, "expected expression after assignment operator")
			inv := p.arena.NewInvalid()
			inv.Range = source.Range{Begin: op.End, End: op.End}
			right := ast.Expression(inv)
			return p.makeAssignment(left, right, op, isPlain)
		}
		right := p.parseAssignmentExpression()
		return p.makeAssignment(left, right, op, isPlain)
	}
	return left
}

func (p *Parser) makeAssignment(left, right ast.Expression, op token.Token, isPlain bool) ast.Expression {
	left = p.validateAssignmentTarget(left)
	begin := left.Span().Begin
	end := right.Span().End
	if isPlain {
		node := p.arena.NewAssignment()
		node.Left, node.Right = left, right
		node.Range = source.Range{Begin: begin, End: end}
		p.emitAssignmentEvent(left)
		return node
	}
	node := p.arena.NewUpdatingAssignment()
	node.Operator = op.Literal
	node.Left, node.Right = left, right
	node.Range = source.Range{Begin: begin, End: end}
	p.emitAssignmentEvent(left)
	return node
}

// emitAssignmentEvent records a write to a plain variable target so the
// scope analyzer can, in the future, distinguish declaration-site writes
// from ordinary uses; destructuring targets recurse to cover every bound
// name.
func (p *Parser) emitAssignmentEvent(target ast.Expression) {
	switch t := target.(type) {
	case *ast.Variable:
		p.emit(ast.EventAssignment, t.Identifier)
	case *ast.Array:
		for _, el := range t.Elements {
			if el != nil {
				p.emitAssignmentEvent(el)
			}
		}
	case *ast.Object:
		for _, entry := range t.Entries {
			p.emitAssignmentEvent(entry.Value)
		}
	case *ast.Spread:
		p.emitAssignmentEvent(t.Child)
	case *ast.Assignment:
		p.emitAssignmentEvent(t.Left)
	}
}

// validateAssignmentTarget reports E003 when left is structurally
// incapable of being assigned to (a call, a literal, etc.) — per §8's
// `f()=x` -> E003 case — and returns left unchanged either way; this
// implementation does not rewrite the tree on failure, it only reports.
func (p *Parser) validateAssignmentTarget(left ast.Expression) ast.Expression {
	if !isValidAssignmentTarget(left) {
		p.report(diag.E003, left.Span(), "invalid assignment target")
	}
	return left
}

func isValidAssignmentTarget(e ast.Expression) bool {
	switch t := e.(type) {
	case *ast.Variable, *ast.Dot, *ast.Index:
		return true
	case *ast.Array:
		for _, el := range t.Elements {
			if el != nil && !isValidAssignmentTarget(el) {
				return false
			}
		}
		return true
	case *ast.Object:
		for _, entry := range t.Entries {
			if entry.Value != nil && !isValidAssignmentTarget(entry.Value) {
				return false
			}
		}
		return true
	case *ast.Assignment:
		return isValidAssignmentTarget(t.Left)
	case *ast.Spread:
		return isValidAssignmentTarget(t.Child)
	default:
		return false
	}
}

func (p *Parser) parseConditionalExpression() ast.Expression {
	test := p.parseBinaryChain(precNullishCoalesce)
	if !p.curTokenIs(token.QuestionMark) {
		return test
	}
	p.nextToken()
	consequent := p.parseAssignmentExpression()
	p.expect(token.Colon)
	alternate := p.parseAssignmentExpression()
	node := p.arena.NewConditional()
	node.Test, node.Consequent, node.Alternate = test, consequent, alternate
	node.Range = source.Range{Begin: test.Span().Begin, End: alternate.Span().End}
	return node
}

// parseBinaryChain implements precedence climbing with same-level
// flattening: a run of operators that all share one precedence collapses
// into a single n-ary BinaryOperator node rather than a chain of binary
// ones, matching the `2 & & & 2` boundary case (a single
// binary(literal, ?, ?, literal) node) as well as ordinary a+b+c (§4.4,
// §8). minPrec is the lowest precedence level this call is willing to
// consume.
func (p *Parser) parseBinaryChain(minPrec int) ast.Expression {
	left := p.parseUnaryExpression()
	for {
		prec, ok := binaryPrecedence(p.curToken.Type, p.noIn)
		if !ok || prec < minPrec {
			return left
		}
		children := []ast.Expression{left}
		for {
			prec2, ok2 := binaryPrecedence(p.curToken.Type, p.noIn)
			if !ok2 || prec2 != prec {
				break
			}
			op := p.curToken
			p.nextToken()
			children = append(children, p.parseBinaryOperand(prec, op))
		}
		node := p.arena.NewBinaryOperator()
		node.Children = children
		node.Range = source.Range{Begin: children[0].Span().Begin, End: children[len(children)-1].Span().End}
		left = node
	}
}

// parseBinaryOperand parses the operand that follows one infix operator
// inside a flattened run. It recurses into the next-higher precedence
// level so that e.g. `a + b * c` still groups `b * c` as one child of the
// `+` run, and synthesizes a zero-length Invalid with an E001 reported at
// op's own span when the operand is entirely missing (`2+`, or each
// missing slot in `2 & & & 2`).
func (p *Parser) parseBinaryOperand(prec int, op token.Token) ast.Expression {
	if !canStartExpression(p.curToken.Type) {
		p.report(diag.E001, source.Range{Begin: op.Begin, End: op.End}, "expected expression, found "+p.curToken.Literal)
		inv := p.arena.NewInvalid()
		inv.Range = source.Range{Begin: op.End, End: op.End}
		return inv
	}
	return p.parseBinaryChain(prec + 1)
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	switch p.curToken.Type {
	case token.Not, token.BitwiseNot, token.Plus, token.Minus, token.Typeof, token.Void, token.Delete:
		op := p.curToken
		p.nextToken()
		child := p.parseUnaryOperandOrInvalid(op)
		node := p.arena.NewUnaryOperator()
		node.Operator = op.Literal
		node.Child = child
		node.Range = source.Range{Begin: op.Begin, End: child.Span().End}
		return node
	case token.Increment, token.Decrement:
		op := p.curToken
		p.nextToken()
		child := p.parseUnaryOperandOrInvalid(op)
		node := p.arena.NewRwUnaryPrefix()
		node.Operator = op.Literal
		node.Child = child
		node.Range = source.Range{Begin: op.Begin, End: child.Span().End}
		return node
	case token.Await:
		op := p.curToken
		p.nextToken()
		child := p.parseUnaryOperandOrInvalid(op)
		node := p.arena.NewAwait()
		node.Child = child
		node.Range = source.Range{Begin: op.Begin, End: child.Span().End}
		return node
	default:
		return p.parsePostfixExpression()
	}
}

func (p *Parser) parseUnaryOperandOrInvalid(op token.Token) ast.Expression {
	if !canStartExpression(p.curToken.Type) {
		p.report(diag.E001, source.Range{Begin: op.Begin, End: op.End}, "expected expression, found "+p.curToken.Literal)
		inv := p.arena.NewInvalid()
		inv.Range = source.Range{Begin: op.End, End: op.End}
		return inv
	}
	return p.parseUnaryExpression()
}

func (p *Parser) parsePostfixExpression() ast.Expression {
	expr := p.parseLeftHandSideExpression()
	if (p.curTokenIs(token.Increment) || p.curTokenIs(token.Decrement)) && !p.curToken.NewlineBefore {
		op := p.curToken
		end := op.End
		p.nextToken()
		node := p.arena.NewRwUnarySuffix()
		node.Operator = op.Literal
		node.Child = expr
		node.Range = source.Range{Begin: expr.Span().Begin, End: end}
		return node
	}
	return expr
}

// parseLeftHandSideExpression parses a primary expression followed by any
// number of member accesses, index accesses, and call expressions.
func (p *Parser) parseLeftHandSideExpression() ast.Expression {
	var expr ast.Expression
	if p.curTokenIs(token.New) {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimaryExpression()
	}
	return p.parseCallTail(expr)
}

func (p *Parser) parseNewExpression() ast.Expression {
	begin := p.curToken.Begin
	p.nextToken() // consume new
	var callee ast.Expression
	if p.curTokenIs(token.New) {
		callee = p.parseNewExpression()
	} else {
		callee = p.parsePrimaryExpression()
		callee = p.parseMemberTail(callee)
	}
	node := p.arena.NewNew()
	node.Callee = callee
	if p.curTokenIs(token.LeftParen) {
		node.HasArguments = true
		node.Arguments = p.parseArguments()
	}
	end := p.curToken.Begin
	if len(node.Arguments) > 0 || node.HasArguments {
		end = p.prevConsumedEnd
	} else {
		end = callee.Span().End
	}
	node.Range = source.Range{Begin: begin, End: end}
	return node
}

// parseMemberTail parses dot/index member accesses but stops before a
// call, used while parsing a `new` callee (call parens belong to `new`
// itself, not the callee chain).
func (p *Parser) parseMemberTail(expr ast.Expression) ast.Expression {
	for {
		switch p.curToken.Type {
		case token.Dot:
			p.nextToken()
			prop := p.identFromToken(p.curToken)
			end := p.curToken.End
			p.nextToken()
			node := p.arena.NewDot()
			node.Object = expr
			node.Property = prop
			node.Range = source.Range{Begin: expr.Span().Begin, End: end}
			expr = node
		case token.LeftBracket:
			p.nextToken()
			idx := p.parseExpression()
			end := p.curToken.End
			p.expect(token.RightBracket)
			node := p.arena.NewIndex()
			node.Object = expr
			node.Index = idx
			node.Range = source.Range{Begin: expr.Span().Begin, End: end}
			expr = node
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallTail(expr ast.Expression) ast.Expression {
	for {
		switch p.curToken.Type {
		case token.Dot:
			p.nextToken()
			prop := p.identFromToken(p.curToken)
			end := p.curToken.End
			p.nextToken()
			node := p.arena.NewDot()
			node.Object = expr
			node.Property = prop
			node.Range = source.Range{Begin: expr.Span().Begin, End: end}
			expr = node
		case token.LeftBracket:
			p.nextToken()
			idx := p.parseExpression()
			end := p.curToken.End
			p.expect(token.RightBracket)
			node := p.arena.NewIndex()
			node.Object = expr
			node.Index = idx
			node.Range = source.Range{Begin: expr.Span().Begin, End: end}
			expr = node
		case token.LeftParen:
			args := p.parseArguments()
			end := p.prevConsumedEnd
			node := p.arena.NewCall()
			node.Callee = expr
			node.Arguments = args
			node.Range = source.Range{Begin: expr.Span().Begin, End: end}
			expr = node
		case token.NoSubstitutionTemplate, token.TemplateHead:
			// tagged template: treat the tag as a call over the template's pieces
			tmpl := p.parseTemplateLiteral()
			node := p.arena.NewCall()
			node.Callee = expr
			node.Arguments = []ast.Expression{tmpl}
			node.Range = source.Range{Begin: expr.Span().Begin, End: tmpl.Span().End}
			expr = node
		default:
			return expr
		}
	}
}

func (p *Parser) parseArguments() []ast.Expression {
	p.expect(token.LeftParen)
	var args []ast.Expression
	for !p.curTokenIs(token.RightParen) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.Spread) {
			begin := p.curToken.Begin
			p.nextToken()
			child := p.parseAssignmentExpression()
			s := p.arena.NewSpread()
			s.Child = child
			s.Range = source.Range{Begin: begin, End: child.Span().End}
			args = append(args, s)
		} else {
			args = append(args, p.parseAssignmentExpression())
		}
		if !p.curTokenIs(token.Comma) {
			break
		}
		p.nextToken()
	}
	p.prevConsumedEnd = p.curToken.End
	p.expect(token.RightParen)
	return args
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	switch p.curToken.Type {
	case token.Number:
		return p.parseLiteralToken(ast.NumberLiteral)
	case token.String:
		return p.parseLiteralToken(ast.StringLiteral)
	case token.RegExp:
		return p.parseLiteralToken(ast.RegExpLiteral)
	case token.True, token.False:
		return p.parseLiteralToken(ast.BooleanLiteral)
	case token.Null:
		return p.parseLiteralToken(ast.NullLiteral)
	case token.Undefined:
		return p.parseLiteralToken(ast.UndefinedLiteral)
	case token.Identifier:
		tok := p.curToken
		id := p.identFromToken(tok)
		p.nextToken()
		p.emit(ast.EventUse, id)
		v := p.arena.NewVariable()
		v.Identifier = id
		v.Range = id.Range
		return v
	case token.Async:
		if p.peekTokenIs(token.Function) {
			p.nextToken()
			return p.parseFunctionExpression(ast.AsyncAttr)
		}
		tok := p.curToken
		id := p.identFromToken(tok)
		p.nextToken()
		p.emit(ast.EventUse, id)
		v := p.arena.NewVariable()
		v.Identifier = id
		v.Range = id.Range
		return v
	case token.This:
		begin := p.curToken.Begin
		end := p.curToken.End
		p.nextToken()
		v := p.arena.NewVariable()
		v.Identifier = ast.Identifier{Range: source.Range{Begin: begin, End: end}, Name: "this"}
		v.Range = v.Identifier.Range
		return v
	case token.Super:
		begin, end := p.curToken.Begin, p.curToken.End
		p.nextToken()
		s := p.arena.NewSuper()
		s.Range = source.Range{Begin: begin, End: end}
		return s
	case token.Import:
		begin, end := p.curToken.Begin, p.curToken.End
		p.nextToken()
		im := p.arena.NewImport()
		im.Range = source.Range{Begin: begin, End: end}
		return im
	case token.LeftParen:
		return p.parseParenthesizedExpression()
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.Function:
		return p.parseFunctionExpression(ast.Normal)
	case token.Class:
		return p.parseClassExpression()
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.parseTemplateLiteral()
	default:
		// A token that can only be a binary operator (e.g. `^2`) has no
		// left operand yet, but is otherwise a valid operator: report E001
		// at the operator's own span, synthesize a zero-length Invalid at
		// its Begin as the missing left operand, and leave curToken
		// unconsumed so the enclosing parseBinaryChain sees the operator
		// and folds the following operand into one BinaryOperator node
		// (§4.4, §8: `^2` -> one E001 at [0,1), shape `binary(?, literal)`).
		if _, ok := binaryPrecedence(p.curToken.Type, p.noIn); ok {
			op := p.curToken
			p.report(diag.E001, source.Range{Begin: op.Begin, End: op.End}, "expected expression, found "+op.Literal)
			inv := p.arena.NewInvalid()
			inv.Range = source.Range{Begin: op.Begin, End: op.Begin}
			return inv
		}
		where := source.Range{Begin: p.curToken.Begin, End: p.curToken.Begin}
		p.report(diag.E001, where, "expected expression, found "+p.curToken.Literal)
		inv := p.arena.NewInvalid()
		inv.Range = where
		// Don't consume an unexpected closing delimiter or EOF; otherwise
		// advance past the bad token so recovery makes progress.
		if !p.curTokenIs(token.RightParen) && !p.curTokenIs(token.RightBracket) &&
			!p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) &&
			!p.curTokenIs(token.Semicolon) && !p.curTokenIs(token.Comma) {
			p.nextToken()
		}
		return inv
	}
}

func (p *Parser) parseLiteralToken(kind ast.LiteralKind) ast.Expression {
	tok := p.curToken
	p.nextToken()
	lit := p.arena.NewLiteral()
	lit.Kind = kind
	lit.Raw = tok.Literal
	lit.Range = source.Range{Begin: tok.Begin, End: tok.End}
	return lit
}

// parseParenthesizedExpression handles `(expr)`, an empty `()` used only
// as an arrow-parameter list (reported E108 here since a bare `()` is not
// a valid expression on its own), and unmatched-paren recovery (§8: `2 *
// (3 + (4` -> two E002s, innermost unmatched paren reported first).
func (p *Parser) parseParenthesizedExpression() ast.Expression {
	begin := p.curToken.Begin
	p.nextToken() // consume (
	if p.curTokenIs(token.RightParen) {
		end := p.curToken.End
		p.report(diag.E108, source.Range{Begin: begin, End: end}, "empty parenthesized expression")
		p.nextToken()
		inv := p.arena.NewInvalid()
		inv.Range = source.Range{Begin: begin, End: end}
		return inv
	}
	inner := p.parseExpression()
	if !p.curTokenIs(token.RightParen) {
		// Innermost-first: report this unmatched '(' before returning control
		// to any enclosing parseParenthesizedExpression call, which will then
		// notice its own RightParen is also missing and report in turn.
		p.report(diag.E002, source.Range{Begin: begin, End: begin + 1}, "unmatched '('")
		return inner
	}
	p.nextToken() // consume )
	return inner
}

func (p *Parser) parseArrayLiteral() ast.Expression {
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
			child := p.parseAssignmentExpression()
			s := p.arena.NewSpread()
			s.Child = child
			s.Range = source.Range{Begin: spreadBegin, End: child.Span().End}
			arr.Elements = append(arr.Elements, s)
		} else {
			arr.Elements = append(arr.Elements, p.parseAssignmentExpression())
		}
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

func (p *Parser) parseObjectLiteral() ast.Expression {
	begin := p.curToken.Begin
	p.nextToken() // consume {
	obj := p.arena.NewObject()
	for !p.curTokenIs(token.RightBrace) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.Spread) {
			spreadBegin := p.curToken.Begin
			p.nextToken()
			child := p.parseAssignmentExpression()
			s := p.arena.NewSpread()
			s.Child = child
			s.Range = source.Range{Begin: spreadBegin, End: child.Span().End}
			obj.Entries = append(obj.Entries, ast.ObjectEntry{Value: s})
		} else {
			obj.Entries = append(obj.Entries, p.parseObjectEntry())
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

func (p *Parser) parseObjectEntry() ast.ObjectEntry {
	// method shorthand: key(params) { body }
	if (p.curTokenIs(token.Identifier) || p.curTokenIs(token.String) || p.curTokenIs(token.Number)) &&
		p.peekTokenIs(token.LeftParen) {
		key := p.parsePropertyKeyLiteral()
		begin := key.Span().Begin
		fn := p.arena.NewFunction()
		p.enterScope(ast.ScopeFunction)
		fn.Params = p.parseFunctionParams()
		block := p.parseBlockStatement()
		p.exitScope()
		fn.Body = block.Statements
		fn.Range = source.Range{Begin: begin, End: block.Range.End}
		return ast.ObjectEntry{Property: key, Value: fn}
	}

	computed := p.curTokenIs(token.LeftBracket)
	var key ast.Expression
	if computed {
		p.nextToken()
		key = p.parseAssignmentExpression()
		p.expect(token.RightBracket)
	} else {
		key = p.parsePropertyKeyLiteral()
	}

	if p.curTokenIs(token.Colon) {
		p.nextToken()
		value := p.parseAssignmentExpression()
		return ast.ObjectEntry{Property: key, Value: value}
	}

	// shorthand {x} or shorthand-with-default {x = y} (a pattern-position form)
	if lit, ok := key.(*ast.Literal); ok {
		id := ast.Identifier{Range: lit.Range, Name: lit.Raw}
		p.emit(ast.EventUse, id)
		v := p.arena.NewVariable()
		v.Identifier = id
		v.Range = id.Range
		var value ast.Expression = v
		if p.curTokenIs(token.Assign) {
			begin := v.Range.Begin
			p.nextToken()
			def := p.parseAssignmentExpression()
			a := p.arena.NewAssignment()
			a.Left, a.Right = v, def
			a.Range = source.Range{Begin: begin, End: def.Span().End}
			value = a
		}
		return ast.ObjectEntry{Property: key, Value: value}
	}
	return ast.ObjectEntry{Property: key, Value: key}
}

func (p *Parser) parseFunctionExpression(attrs ast.FunctionAttributes) ast.Expression {
	begin := p.curToken.Begin
	p.nextToken() // consume function
	generator := false
	if p.curTokenIs(token.Asterisk) {
		generator = true
		p.nextToken()
	}
	if p.curTokenIs(token.Identifier) {
		id := p.identFromToken(p.curToken)
		p.nextToken()
		p.enterScope(ast.ScopeFunction)
		params := p.parseFunctionParams()
		block := p.parseBlockStatement()
		p.exitScope()
		node := p.arena.NewNamedFunction()
		node.Identifier = id
		node.Attributes = attrs
		node.Generator = generator
		node.Params = params
		node.Body = block.Statements
		node.Range = source.Range{Begin: begin, End: block.Range.End}
		return node
	}
	p.enterScope(ast.ScopeFunction)
	params := p.parseFunctionParams()
	block := p.parseBlockStatement()
	p.exitScope()
	node := p.arena.NewFunction()
	node.Attributes = attrs
	node.Generator = generator
	node.Params = params
	node.Body = block.Statements
	node.Range = source.Range{Begin: begin, End: block.Range.End}
	return node
}

func (p *Parser) parseClassExpression() ast.Expression {
	decl := p.parseClassDeclarationAsExpression()
	return decl
}

// parseClassDeclarationAsExpression parses a class expression, which
// shares its grammar with ast.ClassDeclaration; class expressions outside
// statement position are rare enough in linted code that reusing the
// statement's own Arena-backed node (rather than adding a new expression
// variant) is enough; Summarize renders it as "class".
func (p *Parser) parseClassDeclarationAsExpression() ast.Expression {
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

func (p *Parser) parseTemplateLiteral() ast.Expression {
	begin := p.curToken.Begin
	if p.curTokenIs(token.NoSubstitutionTemplate) {
		tok := p.curToken
		p.nextToken()
		lit := p.arena.NewLiteral()
		lit.Kind = ast.StringLiteral
		lit.Raw = tok.Literal
		lit.Range = source.Range{Begin: tok.Begin, End: tok.End}
		return lit
	}
	tmpl := p.arena.NewTemplate()
	p.nextToken() // consume TemplateHead
	for {
		expr := p.parseExpression()
		tmpl.Children = append(tmpl.Children, expr)
		if p.curTokenIs(token.TemplateTail) {
			end := p.curToken.End
			p.nextToken()
			tmpl.Range = source.Range{Begin: begin, End: end}
			return tmpl
		}
		if !p.curTokenIs(token.TemplateMiddle) {
			// recovery: stop at whatever token follows, closing the span here
			tmpl.Range = source.Range{Begin: begin, End: p.curToken.Begin}
			return tmpl
		}
		p.nextToken() // consume TemplateMiddle
	}
}

// tryParseArrowFunction attempts to recognize `ident => ...` or `(params)
// => ...`, optionally prefixed by `async`, by speculatively scanning ahead
// from a saved lexer/parser position; it returns nil (having rewound
// nothing, since it only peeks rather than mutating state on failure
// paths it can detect cheaply) when the input is not an arrow function so
// the caller falls through to ordinary conditional-expression parsing.
func (p *Parser) tryParseArrowFunction() ast.Expression {
	attrs := ast.Normal
	if p.curTokenIs(token.Async) && !p.peekToken.NewlineBefore &&
		(p.peekTokenIs(token.Identifier) || p.peekTokenIs(token.LeftParen)) {
		attrs = ast.AsyncAttr
	}

	if p.curTokenIs(token.Identifier) && p.peekTokenIs(token.Arrow) {
		begin := p.curToken.Begin
		id := p.identFromToken(p.curToken)
		p.nextToken() // identifier
		p.nextToken() // =>
		v := p.arena.NewVariable()
		v.Identifier = id
		v.Range = id.Range
		p.enterScope(ast.ScopeFunction)
		p.emit(ast.EventDeclarationParameter, id)
		return p.finishArrowFunction(begin, attrs, []ast.Expression{v})
	}

	if attrs == ast.AsyncAttr && p.curTokenIs(token.Async) {
		// async ident =>
		if p.peekTokenIs(token.Identifier) {
			afterIdent := p.l.Clone().NextTokenWithRegex(p.peekToken.Type)
			if afterIdent.Type == token.Arrow {
				begin := p.curToken.Begin
				p.nextToken() // async
				idTok := p.curToken
				p.nextToken() // identifier
				p.nextToken() // =>
				id := p.identFromToken(idTok)
				v := p.arena.NewVariable()
				v.Identifier = id
				v.Range = id.Range
				p.enterScope(ast.ScopeFunction)
				p.emit(ast.EventDeclarationParameter, id)
				return p.finishArrowFunction(begin, attrs, []ast.Expression{v})
			}
			return nil
		}
		if p.peekTokenIs(token.LeftParen) {
			afterParen := p.l.Clone().NextTokenWithRegex(p.peekToken.Type)
			if p.canStartParenArrowFrom(p.peekToken, afterParen) {
				begin := p.curToken.Begin
				p.nextToken() // async
				p.enterScope(ast.ScopeFunction)
				params := p.parseFunctionParams()
				p.expect(token.Arrow)
				return p.finishArrowFunction(begin, attrs, params)
			}
		}
		return nil
	}

	if p.curTokenIs(token.LeftParen) && p.canStartParenArrowFrom(p.curToken, p.peekToken) {
		begin := p.curToken.Begin
		p.enterScope(ast.ScopeFunction)
		params := p.parseFunctionParams()
		p.expect(token.Arrow)
		return p.finishArrowFunction(begin, attrs, params)
	}
	return nil
}

// finishArrowFunction parses the arrow's body and closes the ScopeFunction
// opened by tryParseArrowFunction around the params — the two always pair
// since finishArrowFunction is only ever reached via one of those paths.
func (p *Parser) finishArrowFunction(begin int, attrs ast.FunctionAttributes, params []ast.Expression) ast.Expression {
	if p.curTokenIs(token.LeftBrace) {
		block := p.parseBlockStatement()
		p.exitScope()
		node := p.arena.NewArrowFunctionWithStatements()
		node.Attributes = attrs
		node.Params = params
		node.Body = block.Statements
		node.Range = source.Range{Begin: begin, End: block.Range.End}
		return node
	}
	body := p.parseAssignmentExpression()
	p.exitScope()
	node := p.arena.NewArrowFunctionWithExpression()
	node.Attributes = attrs
	node.Params = params
	node.Body = body
	node.Range = source.Range{Begin: begin, End: body.Span().End}
	return node
}

// canStartParenArrowFrom performs bounded lookahead over a balanced
// parenthesized group, starting at openParen, to check for a following
// '=>' without running the full parameter parser. This keeps plain
// parenthesized expressions like `(1 + 2)` from being misparsed as
// zero-parameter arrow functions' parameter lists. openParenNext is
// whichever token is already known to follow openParen (p.peekToken when
// openParen is p.curToken); the lexer is cloned so the main parser's
// position is left untouched regardless of the result.
func (p *Parser) canStartParenArrowFrom(openParen, openParenNext token.Token) bool {
	clone := p.l.Clone()
	depth := 0
	cur, next := openParen, openParenNext
	for {
		if cur.Type == token.LeftParen {
			depth++
		} else if cur.Type == token.RightParen {
			depth--
			if depth == 0 {
				return next.Type == token.Arrow
			}
		} else if cur.Type == token.EOF {
			return false
		}
		cur = next
		next = clone.NextTokenWithRegex(cur.Type)
	}
}
