package parser

import (
	"strconv"

	"github.com/quartzjs/quartz/ast"
	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

// parseExpression dispatches on the precedence level to the handler that
// owns it. Handlers obtain their operands by recursing into the
// next-tighter level, so the call depth mirrors the precedence table.
func (p *parser) parseExpression(level int) (ast.Expr, *Error) {
	switch level {
	case token.PrecedenceAssign:
		return p.parseAssignment()
	case token.PrecedenceUnary:
		return p.parsePrefix()
	case token.PrecedencePostfix:
		return p.parsePostfix()
	case token.PrecedenceCallNew, token.PrecedenceMember:
		return p.parseCallChain()
	case token.PrecedenceAtom:
		return p.parseAtom()
	default:
		return p.parseBinaryTier(level)
	}
}

// binaryOperatorKind maps the current token to its binary-operator kind:
// the identifiers `in` and `instanceof` become their operator kinds here,
// everything else passes through.
func (p *parser) binaryOperatorKind() token.Kind {
	if p.done() {
		return token.Undetermined
	}
	tok := p.current()
	if tok.Kind == token.Identifier {
		switch tok.Text {
		case "in":
			return token.In
		case "instanceof":
			return token.InstanceOf
		}
	}
	return tok.Kind
}

// parseBinaryTier is the generic handler for the comma tier and the binary
// tiers 3-13: collect operands at level+1 separated by this tier's
// operators, then fold according to the tier's associativity. A run with
// no operators returns the single operand unwrapped.
func (p *parser) parseBinaryTier(level int) (ast.Expr, *Error) {
	tier := token.Tiers[level]
	first, err := p.parseExpression(level + 1)
	if err != nil {
		return nil, err
	}
	operands := []ast.Expr{first}
	var ops []token.Kind
	for {
		kind := p.binaryOperatorKind()
		if !tier.Contains(kind) {
			break
		}
		p.cursor++
		operand, err := p.parseExpression(level + 1)
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
		ops = append(ops, kind)
	}
	if len(ops) == 0 {
		return first, nil
	}
	if tier.RightAssoc {
		return foldRight(operands, ops), nil
	}
	return foldLeft(operands, ops), nil
}

func foldLeft(operands []ast.Expr, ops []token.Kind) ast.Expr {
	result := operands[0]
	for i, op := range ops {
		node := &ast.BinaryExpression{Op: op, Left: result, Right: operands[i+1]}
		ast.SetExprParent(node.Left, node)
		ast.SetExprParent(node.Right, node)
		result = node
	}
	return result
}

func foldRight(operands []ast.Expr, ops []token.Kind) ast.Expr {
	result := operands[len(operands)-1]
	for i := len(ops) - 1; i >= 0; i-- {
		node := &ast.BinaryExpression{Op: ops[i], Left: operands[i], Right: result}
		ast.SetExprParent(node.Left, node)
		ast.SetExprParent(node.Right, node)
		result = node
	}
	return result
}

// parsePrefix handles level 14: prefix updates, the punctuation unary
// operators and the keyword-like `typeof`, `void` and `delete`. Anything
// else falls through to the postfix level without consuming a token.
func (p *parser) parsePrefix() (ast.Expr, *Error) {
	if p.done() {
		return nil, unexpectedEOF(p.lastLoc())
	}
	tok := p.current()
	switch tok.Kind {
	case token.Increment, token.Decrement:
		p.cursor++
		operand, err := p.parseExpression(token.PrecedenceUnary)
		if err != nil {
			return nil, err
		}
		target, ok := p.toSimpleTarget(operand)
		if !ok {
			return nil, invalidUpdateOperand(tok.Loc, true)
		}
		node := &ast.UpdateExpression{
			OpLoc:     tok.Loc,
			Decrement: tok.Kind == token.Decrement,
			Prefix:    true,
			Operand:   target,
		}
		ast.SetPatternParent(target, node)
		return node, nil
	case token.Not:
		return p.parseUnary(tok.Loc, ast.UnaryNot)
	case token.BitwiseNot:
		return p.parseUnary(tok.Loc, ast.UnaryBitwiseNot)
	case token.Plus:
		return p.parseUnary(tok.Loc, ast.UnaryPositive)
	case token.Minus:
		return p.parseUnary(tok.Loc, ast.UnaryNegate)
	case token.Identifier:
		switch tok.Text {
		case "typeof":
			return p.parseUnary(tok.Loc, ast.UnaryTypeOf)
		case "void":
			return p.parseUnary(tok.Loc, ast.UnaryVoid)
		case "delete":
			return p.parseUnary(tok.Loc, ast.UnaryDelete)
		}
	}
	return p.parseExpression(token.PrecedencePostfix)
}

func (p *parser) parseUnary(opLoc source.Location, op ast.UnaryOp) (ast.Expr, *Error) {
	p.cursor++
	operand, err := p.parseExpression(token.PrecedenceUnary)
	if err != nil {
		return nil, err
	}
	node := &ast.UnaryExpression{OpLoc: opLoc, Op: op, Operand: operand}
	ast.SetExprParent(operand, node)
	return node, nil
}

// parsePostfix handles level 15: a tighter expression optionally followed
// by `++`/`--`, whose operand must reduce to a variable or member target.
func (p *parser) parsePostfix() (ast.Expr, *Error) {
	operand, err := p.parseExpression(token.PrecedenceCallNew)
	if err != nil {
		return nil, err
	}
	kind := p.peekKind()
	if kind != token.Increment && kind != token.Decrement {
		return operand, nil
	}
	tok := p.current()
	target, ok := p.toSimpleTarget(operand)
	if !ok {
		return nil, invalidUpdateOperand(tok.Loc, false)
	}
	p.cursor++
	node := &ast.UpdateExpression{
		OpLoc:     tok.Loc,
		Decrement: kind == token.Decrement,
		Prefix:    false,
		Operand:   target,
	}
	ast.SetPatternParent(target, node)
	return node, nil
}

// toSimpleTarget narrows an already-parsed expression to the variable or
// member-lookup target shape.
func (p *parser) toSimpleTarget(e ast.Expr) (ast.SimpleTarget, bool) {
	switch n := e.(type) {
	case *ast.Identifier:
		return &ast.IdentifierTarget{Start: n.Start, Name: n.Name}, true
	case *ast.MemberExpression:
		target := &ast.MemberTarget{Expr: n}
		ast.SetExprParent(n, target)
		return target, true
	}
	return nil, false
}

// parseCallChain handles levels 16 and 17: a run of leading `new`
// keywords, one atom, then any mix of member accesses, computed accesses,
// optional chaining and argument lists. Each argument list consumes one
// pending `new`; the ones still pending afterwards become zero-argument
// `new` calls, innermost first.
func (p *parser) parseCallChain() (ast.Expr, *Error) {
	var news []source.Location
	for p.isKeyword("new") {
		news = append(news, p.current().Loc)
		p.cursor++
	}

	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

chain:
	for {
		switch p.peekKind() {
		case token.Period:
			p.cursor++
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			tok := p.current()
			if tok.Kind != token.Identifier {
				return nil, unexpectedToken(tok.Loc, tok, "property name")
			}
			p.cursor++
			expr = p.makeMember(expr, &ast.StringLiteral{Start: tok.Loc, Value: tok.Text}, false, false)
		case token.QuestionDot:
			p.cursor++
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			tok := p.current()
			switch tok.Kind {
			case token.Identifier:
				p.cursor++
				expr = p.makeMember(expr, &ast.StringLiteral{Start: tok.Loc, Value: tok.Text}, false, true)
			case token.LeftBracket:
				expr, err = p.parseComputedMember(expr, true)
				if err != nil {
					return nil, err
				}
			case token.LeftParenthesis:
				expr, err = p.finishCall(expr, &news, true)
				if err != nil {
					return nil, err
				}
			default:
				return nil, unexpectedToken(tok.Loc, tok, "property name, [ or (")
			}
		case token.LeftBracket:
			expr, err = p.parseComputedMember(expr, false)
			if err != nil {
				return nil, err
			}
		case token.LeftParenthesis:
			expr, err = p.finishCall(expr, &news, false)
			if err != nil {
				return nil, err
			}
		default:
			break chain
		}
	}

	for i := len(news) - 1; i >= 0; i-- {
		call := &ast.CallExpression{NewLoc: news[i], Callee: expr, New: true}
		ast.SetExprParent(expr, call)
		expr = call
	}
	return expr, nil
}

func (p *parser) makeMember(object ast.Expr, property ast.Expr, computed, optional bool) *ast.MemberExpression {
	member := &ast.MemberExpression{
		Object:   object,
		Property: property,
		Computed: computed,
		Optional: optional,
	}
	ast.SetExprParent(object, member)
	ast.SetExprParent(property, member)
	return member
}

// parseComputedMember parses `[expr]` with the cursor on the opening
// bracket. The close bracket is required at the opener's partner index.
func (p *parser) parseComputedMember(object ast.Expr, optional bool) (*ast.MemberExpression, *Error) {
	open := p.current()
	p.cursor++
	property, err := p.parseExpression(token.PrecedenceComma)
	if err != nil {
		return nil, err
	}
	if p.done() {
		return nil, unexpectedEOF(p.lastLoc())
	}
	if p.cursor != open.Partner {
		tok := p.current()
		return nil, unexpectedToken(tok.Loc, tok, "]")
	}
	p.cursor++
	return p.makeMember(object, property, true, optional), nil
}

func (p *parser) finishCall(callee ast.Expr, news *[]source.Location, optional bool) (ast.Expr, *Error) {
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	call := &ast.CallExpression{Callee: callee, Arguments: args, Optional: optional}
	if n := len(*news); n > 0 {
		call.New = true
		call.NewLoc = (*news)[n-1]
		*news = (*news)[:n-1]
	}
	ast.SetExprParent(callee, call)
	for _, arg := range args {
		ast.SetExprParent(arg, call)
	}
	return call, nil
}

func (p *parser) parseArguments() ([]ast.Expr, *Error) {
	p.cursor++ // the opening parenthesis
	var args []ast.Expr
	for {
		if p.done() {
			return nil, unexpectedEOF(p.lastLoc())
		}
		if p.peekKind() == token.RightParenthesis {
			p.cursor++
			return args, nil
		}
		arg, err := p.parseExpression(token.PrecedenceAssign)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch p.peekKind() {
		case token.Comma:
			p.cursor++
		case token.RightParenthesis:
		default:
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			tok := p.current()
			return nil, unexpectedToken(tok.Loc, tok, ", or )")
		}
	}
}

// parseAtom handles level 18: parenthesized expressions, array and object
// literals, variable references and value literals.
func (p *parser) parseAtom() (ast.Expr, *Error) {
	if p.done() {
		return nil, unexpectedEOF(p.lastLoc())
	}
	tok := p.current()
	switch tok.Kind {
	case token.LeftParenthesis:
		p.cursor++
		inner, err := p.parseExpression(token.PrecedenceComma)
		if err != nil {
			return nil, err
		}
		if p.done() {
			return nil, unexpectedEOF(p.lastLoc())
		}
		if p.cursor != tok.Partner {
			cur := p.current()
			return nil, unexpectedToken(cur.Loc, cur, ")")
		}
		p.cursor++
		return inner, nil
	case token.LeftBracket:
		return p.parseArrayLiteral()
	case token.LeftBrace:
		return p.parseObjectLiteral()
	case token.Identifier:
		p.cursor++
		return &ast.Identifier{Start: tok.Loc, Name: tok.Text}, nil
	case token.String:
		p.cursor++
		return &ast.StringLiteral{Start: tok.Loc, Value: tok.Text}, nil
	case token.Number:
		p.cursor++
		return &ast.NumberLiteral{Start: tok.Loc, Value: tok.Number}, nil
	case token.BigInt:
		p.cursor++
		return &ast.BigIntLiteral{Start: tok.Loc, Value: tok.Big}, nil
	}
	return nil, expectedExpression(tok.Loc, tok)
}

func (p *parser) parseArrayLiteral() (ast.Expr, *Error) {
	node := &ast.ArrayLiteral{LeftBracket: p.current().Loc}
	p.cursor++
	for {
		if p.done() {
			return nil, unexpectedEOF(p.lastLoc())
		}
		switch p.peekKind() {
		case token.RightBracket:
			p.cursor++
			return node, nil
		case token.Comma:
			// An elision: a slot with no value.
			p.cursor++
			node.Elements = append(node.Elements, ast.ArrayElement{})
			continue
		}

		element := ast.ArrayElement{}
		if p.peekKind() == token.Ellipsis {
			element.Spread = true
			p.cursor++
		}
		value, err := p.parseExpression(token.PrecedenceAssign)
		if err != nil {
			return nil, err
		}
		element.Value = value
		node.Elements = append(node.Elements, element)
		ast.SetExprParent(value, node)

		switch p.peekKind() {
		case token.Comma:
			p.cursor++
		case token.RightBracket:
		default:
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			tok := p.current()
			return nil, unexpectedToken(tok.Loc, tok, ", or ]")
		}
	}
}

func (p *parser) parseObjectLiteral() (ast.Expr, *Error) {
	node := &ast.ObjectLiteral{LeftBrace: p.current().Loc}
	p.cursor++
	for {
		if p.done() {
			return nil, unexpectedEOF(p.lastLoc())
		}
		if p.peekKind() == token.RightBrace {
			p.cursor++
			return node, nil
		}

		keyTok := p.current()
		var key string
		switch keyTok.Kind {
		case token.Identifier, token.String:
			key = keyTok.Text
		case token.Number:
			key = strconv.FormatFloat(keyTok.Number, 'g', -1, 64)
		default:
			return nil, unexpectedToken(keyTok.Loc, keyTok, "property name")
		}
		p.cursor++

		prop := ast.ObjectProperty{KeyLoc: keyTok.Loc, Key: key}
		switch {
		case p.peekKind() == token.Colon:
			p.cursor++
			value, err := p.parseExpression(token.PrecedenceAssign)
			if err != nil {
				return nil, err
			}
			prop.Value = value
		case keyTok.Kind == token.Identifier &&
			(p.peekKind() == token.Comma || p.peekKind() == token.RightBrace):
			prop.Shorthand = true
			prop.Value = &ast.Identifier{Start: keyTok.Loc, Name: key}
		default:
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			tok := p.current()
			return nil, unexpectedToken(tok.Loc, tok, ":")
		}
		node.Properties = append(node.Properties, prop)
		ast.SetExprParent(prop.Value, node)

		switch p.peekKind() {
		case token.Comma:
			p.cursor++
		case token.RightBrace:
		default:
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			tok := p.current()
			return nil, unexpectedToken(tok.Loc, tok, ", or }")
		}
	}
}

// parseAssignment handles level 2. It speculatively parses one tighter
// level; if an assignment operator follows, the parsed expression is
// reinterpreted as a target. Array and object literals are re-derived with
// a dedicated destructuring parse, because literal and destructuring
// syntax overlap on the surface but diverge in required shape. If the
// speculative parse itself fails, a destructuring parse is retried from
// the saved cursor, accepted only when an assignment operator follows.
func (p *parser) parseAssignment() (ast.Expr, *Error) {
	start := p.mark()
	left, exprErr := p.parseExpression(token.PrecedenceAssign + 1)
	var target ast.Pattern
	if exprErr != nil {
		p.restore(start)
		pat, patErr := p.parsePattern()
		if patErr != nil || p.done() || !p.current().Kind.IsAssign() {
			// Destructuring-only syntax not followed by an assignment
			// operator is not a valid expression; surface the original
			// failure.
			return nil, exprErr
		}
		target = pat
	} else {
		if p.done() || !p.current().Kind.IsAssign() {
			return left, nil
		}
		var err *Error
		target, err = p.reinterpretAsTarget(left, start)
		if err != nil {
			return nil, err
		}
	}

	opTok := p.current()
	p.cursor++
	right, err := p.parseExpression(token.PrecedenceAssign)
	if err != nil {
		return nil, err
	}

	if opTok.Kind == token.Assign {
		node := &ast.Assignment{Target: target, Right: right}
		ast.SetPatternParent(target, node)
		ast.SetExprParent(right, node)
		return node, nil
	}

	simple, ok := target.(ast.SimpleTarget)
	if !ok {
		return nil, invalidDestructuringOperator(opTok.Loc, opTok.Kind)
	}
	node := &ast.UpdateAssignment{Op: opTok.Kind, Target: simple, Right: right}
	ast.SetPatternParent(simple, node)
	ast.SetExprParent(right, node)
	return node, nil
}

// reinterpretAsTarget converts an already-parsed expression into an
// assignment target. Bare variables and member lookups convert directly;
// array and object literals are re-parsed from the saved cursor position
// as destructuring patterns.
func (p *parser) reinterpretAsTarget(left ast.Expr, start int) (ast.Pattern, *Error) {
	switch left.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		target, _ := p.toSimpleTarget(left)
		return target, nil
	case *ast.ArrayLiteral, *ast.ObjectLiteral:
		end := p.mark()
		p.restore(start)
		target, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if p.cursor != end {
			// The pattern read a different span than the literal; that is
			// a dispatch bug, not user input.
			panic("parser: destructuring re-parse diverged from literal parse")
		}
		return target, nil
	}
	return nil, invalidAssignmentTarget(left.Loc())
}
