// Package parser turns the token sequence produced by the scanner into an
// abstract syntax tree. Expressions are parsed by precedence climbing over
// the 19-level table in the token package; statements use ad-hoc lookahead.
// The token cursor is a plain index, which makes the speculative
// assignment-target parse a cheap save/restore.
package parser

import (
	"github.com/quartzjs/quartz/ast"
	"github.com/quartzjs/quartz/parser/scanner"
	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

type parser struct {
	tokens []token.Token
	cursor int
}

// Parse consumes a token sequence and produces the program tree or the
// first parse error. Bracket partner indices inside the tokens are assumed
// consistent; only the tokenizer can produce them.
func Parse(tokens []token.Token) (*ast.Program, *Error) {
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

// ParseSource tokenizes and parses buf in one step. Failures of either
// stage come back as a *SyntaxError.
func ParseSource(buf *source.Buffer) (*ast.Program, error) {
	tokens, lexErr := scanner.Tokenize(buf)
	if lexErr != nil {
		return nil, &SyntaxError{Loc: lexErr.Loc, Message: lexErr.Message, cause: lexErr}
	}
	program, parseErr := Parse(tokens)
	if parseErr != nil {
		return nil, &SyntaxError{Loc: parseErr.Loc, Message: parseErr.Message, cause: parseErr}
	}
	return program, nil
}

// ParseString parses program text that is already in memory.
func ParseString(text string, origin source.Origin) (*ast.Program, error) {
	return ParseSource(source.FromString(text, origin))
}

// ParseFile loads path and parses it. The error is a *source.LoadError for
// I/O failures and a *SyntaxError for everything else.
func ParseFile(path string) (*ast.Program, error) {
	buf, err := source.FromFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSource(buf)
}

func (p *parser) done() bool {
	return p.cursor >= len(p.tokens)
}

func (p *parser) current() token.Token {
	return p.tokens[p.cursor]
}

// peekKind returns the kind under the cursor, or Undetermined at the end
// of input.
func (p *parser) peekKind() token.Kind {
	if p.done() {
		return token.Undetermined
	}
	return p.tokens[p.cursor].Kind
}

// loc is the position of the offending token for diagnostics: the current
// token, or the last one once input is exhausted.
func (p *parser) loc() source.Location {
	if !p.done() {
		return p.tokens[p.cursor].Loc
	}
	return p.lastLoc()
}

func (p *parser) lastLoc() source.Location {
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1].Loc
	}
	return source.Location{Line: 1, Column: 1}
}

// mark and restore implement cursor-only speculation: nothing else is
// mutated during a speculative parse, so rollback is one assignment.
func (p *parser) mark() int {
	return p.cursor
}

func (p *parser) restore(mark int) {
	p.cursor = mark
}

// expect consumes one token of the given kind or fails.
func (p *parser) expect(kind token.Kind) *Error {
	if p.done() {
		return unexpectedEOF(p.lastLoc())
	}
	if tok := p.current(); tok.Kind != kind {
		return unexpectedToken(tok.Loc, tok, kind.String())
	}
	p.cursor++
	return nil
}

// isKeyword reports whether the current token is the given bare word. The
// tokenizer has no keyword list, so every keyword arrives as an identifier.
func (p *parser) isKeyword(word string) bool {
	return !p.done() && p.current().Kind == token.Identifier && p.current().Text == word
}
