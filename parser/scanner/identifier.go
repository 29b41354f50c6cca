package scanner

import (
	"strings"

	"github.com/nukilabs/unicodeid"
	"github.com/quartzjs/quartz/token"
)

// Lookup tables for ASCII identifier characters. Non-ASCII runes branch to
// the Unicode tables.
var asciiStart, asciiContinue [128]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

func isIdentifierStart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < 128 {
		return asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr)
}

func isIdentifierPart(chr rune) bool {
	if chr < 0 {
		return false
	}
	if chr < 128 {
		return asciiContinue[chr]
	}
	return unicodeid.IsIDContinueUnicode(chr)
}

// scanIdentifier consumes an identifier-start character and every
// identifier-continue character after it. The tokenizer has no keyword
// list; `let`, `new`, `typeof` and friends come out as plain identifiers
// and the parser decides what they mean.
func (s *Scanner) scanIdentifier() {
	start := s.loc()
	var name strings.Builder
	name.WriteRune(s.at(s.idx))
	s.idx++
	for !s.eof() && isIdentifierPart(s.at(s.idx)) {
		name.WriteRune(s.at(s.idx))
		s.idx++
	}
	s.emit(token.Token{Loc: start, Kind: token.Identifier, Text: name.String(), Partner: token.NoPartner})
}
