package scanner

import (
	"strings"

	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

// scanString lexes a string literal delimited by quote. Only the backtick
// form tolerates raw newlines inside the literal; the other two treat an
// embedded line terminator as an error. Escape handling decodes the
// single-letter control escapes, elides an escaped line terminator (line
// continuation) and takes any other escaped character literally. `\u` and
// `\x` sequences are deliberately not decoded; their lead character falls
// through to the literal rule.
func (s *Scanner) scanString(quote rune) *Error {
	start := s.loc()
	s.idx++

	var value strings.Builder
	for {
		if s.eof() {
			return unclosedString(start)
		}
		c := s.at(s.idx)
		switch {
		case c == quote:
			s.idx++
			s.emit(token.Token{Loc: start, Kind: token.String, Text: value.String(), Partner: token.NoPartner})
			return nil
		case c == '\\':
			if err := s.scanEscape(&value, start); err != nil {
				return err
			}
		case isLineTerminator(c):
			if quote != '`' {
				return newlineInString(s.loc())
			}
			value.WriteRune('\n')
			s.consumeNewline()
		default:
			value.WriteRune(c)
			s.idx++
		}
	}
}

func (s *Scanner) scanEscape(value *strings.Builder, start source.Location) *Error {
	s.idx++ // the backslash
	if s.eof() {
		return unclosedString(start)
	}
	c := s.at(s.idx)
	if isLineTerminator(c) {
		// Line continuation: the break is elided from the value.
		s.consumeNewline()
		return nil
	}
	switch c {
	case 'n':
		value.WriteByte('\n')
	case 'r':
		value.WriteByte('\r')
	case 't':
		value.WriteByte('\t')
	case 'b':
		value.WriteByte('\b')
	case 'f':
		value.WriteByte('\f')
	case 'v':
		value.WriteByte('\v')
	default:
		value.WriteRune(c)
	}
	s.idx++
	return nil
}
