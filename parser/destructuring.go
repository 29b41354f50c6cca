package parser

import (
	"github.com/quartzjs/quartz/ast"
	"github.com/quartzjs/quartz/token"
)

// parsePattern parses one assignment target: a plain variable, a member
// lookup, or an array/object destructuring form. This is the dedicated
// destructuring grammar; it shares surface syntax with literals but not
// shape, which is why assignment resolution re-parses instead of
// converting nodes.
func (p *parser) parsePattern() (ast.Pattern, *Error) {
	if p.done() {
		return nil, unexpectedEOF(p.lastLoc())
	}
	tok := p.current()
	switch tok.Kind {
	case token.Identifier:
		return p.parseSimpleTargetChain()
	case token.LeftBracket:
		return p.parseArrayPattern()
	case token.LeftBrace:
		return p.parseObjectPattern()
	}
	return nil, unexpectedToken(tok.Loc, tok, "assignment target")
}

// parseSimpleTargetChain parses a variable optionally followed by member
// accesses (`a`, `a.b`, `a[k].c`). Calls and optional chaining are not
// valid in target position, so the chain here is narrower than the
// level-16 expression chain.
func (p *parser) parseSimpleTargetChain() (ast.Pattern, *Error) {
	tok := p.current()
	p.cursor++
	var expr ast.Expr = &ast.Identifier{Start: tok.Loc, Name: tok.Text}

	for {
		switch p.peekKind() {
		case token.Period:
			p.cursor++
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			prop := p.current()
			if prop.Kind != token.Identifier {
				return nil, unexpectedToken(prop.Loc, prop, "property name")
			}
			p.cursor++
			expr = p.makeMember(expr, &ast.StringLiteral{Start: prop.Loc, Value: prop.Text}, false, false)
		case token.LeftBracket:
			member, err := p.parseComputedMember(expr, false)
			if err != nil {
				return nil, err
			}
			expr = member
		default:
			target, _ := p.toSimpleTarget(expr)
			return target, nil
		}
	}
}

func (p *parser) parseArrayPattern() (ast.Pattern, *Error) {
	node := &ast.ArrayPattern{LeftBracket: p.current().Loc}
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
			// A skipped slot.
			p.cursor++
			node.Elements = append(node.Elements, nil)
			continue
		case token.Ellipsis:
			p.cursor++
			rest, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			node.Rest = rest
			ast.SetPatternParent(rest, node)
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			if p.peekKind() != token.RightBracket {
				return nil, restElementNotLast(p.loc())
			}
			p.cursor++
			return node, nil
		}

		element, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		node.Elements = append(node.Elements, element)
		ast.SetPatternParent(element, node)

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

func (p *parser) parseObjectPattern() (ast.Pattern, *Error) {
	node := &ast.ObjectPattern{
		LeftBrace:  p.current().Loc,
		Properties: map[string]*ast.ObjectPatternEntry{},
	}
	p.cursor++
	for {
		if p.done() {
			return nil, unexpectedEOF(p.lastLoc())
		}
		switch p.peekKind() {
		case token.RightBrace:
			p.cursor++
			return node, nil
		case token.Ellipsis:
			p.cursor++
			rest, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			node.Rest = rest
			ast.SetPatternParent(rest, node)
			if p.done() {
				return nil, unexpectedEOF(p.lastLoc())
			}
			if p.peekKind() != token.RightBrace {
				return nil, restElementNotLast(p.loc())
			}
			p.cursor++
			return node, nil
		}

		keyTok := p.current()
		if keyTok.Kind != token.Identifier && keyTok.Kind != token.String {
			return nil, unexpectedToken(keyTok.Loc, keyTok, "property name")
		}
		p.cursor++

		var target ast.Pattern
		if p.peekKind() == token.Colon {
			p.cursor++
			var err *Error
			target, err = p.parsePattern()
			if err != nil {
				return nil, err
			}
		} else {
			// Shorthand: the key itself is the bound variable.
			if keyTok.Kind != token.Identifier {
				if p.done() {
					return nil, unexpectedEOF(p.lastLoc())
				}
				tok := p.current()
				return nil, unexpectedToken(tok.Loc, tok, ":")
			}
			target = &ast.IdentifierTarget{Start: keyTok.Loc, Name: keyTok.Text}
		}

		entry := &ast.ObjectPatternEntry{KeyLoc: keyTok.Loc, Target: target}
		if p.peekKind() == token.Assign {
			p.cursor++
			def, err := p.parseExpression(token.PrecedenceAssign)
			if err != nil {
				return nil, err
			}
			entry.Default = def
			ast.SetExprParent(def, node)
		}
		node.Properties[keyTok.Text] = entry
		ast.SetPatternParent(target, node)

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
