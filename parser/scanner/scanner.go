// Package scanner turns a source buffer into the flat token sequence the
// parser consumes. Lexing is a single eager left-to-right pass; the first
// lexical error aborts the run with a located diagnostic.
package scanner

import (
	"fmt"

	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

type pendingBracket struct {
	kind       token.Kind
	tokenIndex int
	loc        source.Location
}

// Scanner holds the lexing state for one buffer.
type Scanner struct {
	buf       *source.Buffer
	idx       int
	line      int
	lineStart int

	tokens   []token.Token
	brackets []pendingBracket
}

// Tokenize lexes the whole buffer. It returns either the complete token
// sequence or the first lexical error; there is no recovery and no partial
// output on failure.
func Tokenize(buf *source.Buffer) ([]token.Token, *Error) {
	s := &Scanner{buf: buf, line: 1}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.tokens, nil
}

func (s *Scanner) run() *Error {
	for !s.eof() {
		before := s.idx
		if err := s.step(); err != nil {
			return err
		}
		if s.idx == before {
			// A non-advancing iteration is a hole in the dispatch logic,
			// not bad input.
			panic(fmt.Sprintf("scanner: no progress at %s", s.loc()))
		}
	}
	if len(s.brackets) > 0 {
		outer := s.brackets[0]
		return unclosedBracket(outer.loc, outer.kind)
	}
	return nil
}

// step consumes exactly one token unit: a token, a newline, whitespace or
// a comment. First match wins.
func (s *Scanner) step() *Error {
	c := s.at(s.idx)
	switch {
	case c == '"' || c == '\'' || c == '`':
		return s.scanString(c)
	case isDecimalDigit(c) || (c == '.' && isDecimalDigit(s.peek(1))):
		return s.scanNumber()
	case isLineTerminator(c):
		s.consumeNewline()
		s.markNewline()
		return nil
	case isWhitespace(c):
		s.idx++
		return nil
	case c == '/' && s.peek(1) == '/':
		s.skipLineComment()
		return nil
	case c == '/' && s.peek(1) == '*':
		return s.skipBlockComment()
	case c == '(' || c == '{' || c == '[':
		s.openBracket(c)
		return nil
	case c == ')' || c == '}' || c == ']':
		return s.closeBracket(c)
	case isIdentifierStart(c):
		s.scanIdentifier()
		return nil
	default:
		return s.scanOperator(c)
	}
}

// loc builds the location of the current read position. Columns are
// 1-based and computed against the start of the current line.
func (s *Scanner) loc() source.Location {
	return source.Location{
		Buffer: s.buf,
		Line:   s.line,
		Column: s.idx - s.lineStart + 1,
		Index:  s.idx,
	}
}

func (s *Scanner) eof() bool {
	return s.idx >= s.buf.Len()
}

func (s *Scanner) at(i int) rune {
	return s.buf.At(i)
}

// peek returns the rune at offset characters past the cursor, or -1 past
// the end of the buffer.
func (s *Scanner) peek(offset int) rune {
	i := s.idx + offset
	if i >= s.buf.Len() {
		return -1
	}
	return s.at(i)
}

// consumeNewline advances past one line terminator, treating \r\n as a
// single line break, and updates the line bookkeeping.
func (s *Scanner) consumeNewline() {
	if s.at(s.idx) == '\r' && s.peek(1) == '\n' {
		s.idx++
	}
	s.idx++
	s.line++
	s.lineStart = s.idx
}

// markNewline retroactively flags the previous token; automatic semicolon
// insertion keys off this.
func (s *Scanner) markNewline() {
	if len(s.tokens) > 0 {
		s.tokens[len(s.tokens)-1].NewlineAfter = true
	}
}

func (s *Scanner) emit(tok token.Token) {
	s.tokens = append(s.tokens, tok)
}

func (s *Scanner) openBracket(c rune) {
	var kind token.Kind
	switch c {
	case '(':
		kind = token.LeftParenthesis
	case '{':
		kind = token.LeftBrace
	default:
		kind = token.LeftBracket
	}
	loc := s.loc()
	s.brackets = append(s.brackets, pendingBracket{
		kind:       kind,
		tokenIndex: len(s.tokens),
		loc:        loc,
	})
	s.idx++
	s.emit(token.Token{Loc: loc, Kind: kind, Partner: token.NoPartner})
}

func (s *Scanner) closeBracket(c rune) *Error {
	var kind token.Kind
	switch c {
	case ')':
		kind = token.RightParenthesis
	case '}':
		kind = token.RightBrace
	default:
		kind = token.RightBracket
	}
	loc := s.loc()
	if len(s.brackets) == 0 {
		return mismatchedBracket(loc, kind)
	}
	open := s.brackets[len(s.brackets)-1]
	if open.kind.Closer() != kind {
		return mismatchedBracket(loc, kind)
	}
	s.brackets = s.brackets[:len(s.brackets)-1]

	// Back-patch the partner index; each open token receives it exactly once.
	s.tokens[open.tokenIndex].Partner = len(s.tokens)
	s.idx++
	s.emit(token.Token{Loc: loc, Kind: kind, Partner: open.tokenIndex})
	return nil
}

func (s *Scanner) scanOperator(c rune) *Error {
	loc := s.loc()
	for _, op := range token.Operators {
		if s.hasPrefix(op.Text) {
			s.idx += len(op.Text)
			s.emit(token.Token{Loc: loc, Kind: op.Kind, Partner: token.NoPartner})
			return nil
		}
	}
	return illegalCharacter(loc, c)
}

// hasPrefix reports whether the ASCII operator text starts at the cursor.
func (s *Scanner) hasPrefix(text string) bool {
	if s.idx+len(text) > s.buf.Len() {
		return false
	}
	for i := 0; i < len(text); i++ {
		if s.at(s.idx+i) != rune(text[i]) {
			return false
		}
	}
	return true
}

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

func isWhitespace(chr rune) bool {
	switch chr {
	case ' ', '\t', '\v', '\f', '\u00a0', '\ufeff':
		return true
	}
	return chr > 0x7f && isSpaceSeparator(chr)
}

func isSpaceSeparator(chr rune) bool {
	switch chr {
	case '\u1680', '\u2000', '\u2001', '\u2002', '\u2003', '\u2004', '\u2005',
		'\u2006', '\u2007', '\u2008', '\u2009', '\u200a', '\u202f', '\u205f', '\u3000':
		return true
	}
	return false
}
