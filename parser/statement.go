package parser

import (
	"github.com/quartzjs/quartz/ast"
	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

// reservedWords are the statement keywords of the full grammar that this
// front end does not implement yet. Meeting one in statement position is a
// definite parse error rather than a misparse as an expression.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"do": true, "else": true, "export": true, "extends": true,
	"finally": true, "for": true, "function": true, "if": true,
	"import": true, "return": true, "static": true, "super": true,
	"switch": true, "throw": true, "try": true, "var": true,
	"while": true, "with": true, "yield": true,
}

func (p *parser) parseProgram() (*ast.Program, *Error) {
	start := source.Location{Line: 1, Column: 1}
	if len(p.tokens) > 0 {
		start = p.tokens[0].Loc
		start.Line, start.Column, start.Index = 1, 1, 0
	}
	program := &ast.Program{Start: start}
	body, err := p.parseStatements(program)
	if err != nil {
		return nil, err
	}
	program.Body = body
	if !p.done() {
		tok := p.current()
		return nil, unexpectedToken(tok.Loc, tok, "")
	}
	return program, nil
}

// parseStatements parses a statement sequence until end of input or an
// unconsumed close brace. Semicolons between statements are skipped;
// statement termination is checked after each one.
func (p *parser) parseStatements(parent ast.StmtParent) ([]ast.Stmt, *Error) {
	var body []ast.Stmt
	for {
		for p.peekKind() == token.Semicolon {
			p.cursor++
		}
		if p.done() || p.peekKind() == token.RightBrace {
			return body, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		ast.SetStmtParent(stmt, parent)
		if err := p.checkTermination(); err != nil {
			return nil, err
		}
	}
}

// checkTermination implements automatic semicolon insertion: a statement
// terminates validly at end of input, before `;` or `}`, or when its last
// token had a newline after it.
func (p *parser) checkTermination() *Error {
	if p.done() {
		return nil
	}
	switch p.peekKind() {
	case token.Semicolon, token.RightBrace:
		return nil
	}
	if p.cursor > 0 && p.tokens[p.cursor-1].NewlineAfter {
		return nil
	}
	tok := p.current()
	return unexpectedToken(tok.Loc, tok, ";")
}

func (p *parser) parseStatement() (ast.Stmt, *Error) {
	tok := p.current()
	switch {
	case tok.Kind == token.LeftBrace:
		return p.parseBlock()
	case tok.Kind == token.Identifier && tok.Text == "let" && p.startsPattern(p.cursor+1):
		return p.parseLet()
	case tok.Kind == token.Identifier && reservedWords[tok.Text]:
		return nil, syntaxError(tok.Loc, "%q statements are not supported yet", tok.Text)
	}
	expr, err := p.parseExpression(token.PrecedenceComma)
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStatement{Expression: expr}
	ast.SetExprParent(expr, stmt)
	return stmt, nil
}

// startsPattern reports whether the token at index can begin a binding
// target. It decides whether `let` is a keyword or just a variable name.
func (p *parser) startsPattern(index int) bool {
	if index >= len(p.tokens) {
		return false
	}
	switch p.tokens[index].Kind {
	case token.Identifier, token.LeftBrace, token.LeftBracket:
		return true
	}
	return false
}

func (p *parser) parseBlock() (ast.Stmt, *Error) {
	open := p.current()
	block := &ast.BlockStatement{LeftBrace: open.Loc}
	p.cursor++
	body, err := p.parseStatements(block)
	if err != nil {
		return nil, err
	}
	block.Body = body
	if err := p.expect(token.RightBrace); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *parser) parseLet() (ast.Stmt, *Error) {
	letTok := p.current()
	p.cursor++
	target, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if p.done() {
		return nil, unexpectedEOF(p.lastLoc())
	}
	if tok := p.current(); tok.Kind != token.Assign {
		return nil, unexpectedToken(tok.Loc, tok, "=")
	}
	p.cursor++
	init, err := p.parseExpression(token.PrecedenceAssign)
	if err != nil {
		return nil, err
	}
	stmt := &ast.LetStatement{Let: letTok.Loc, Target: target, Init: init}
	ast.SetPatternParent(target, stmt)
	ast.SetExprParent(init, stmt)
	return stmt, nil
}
