package scanner

// skipLineComment consumes `//` and everything up to, but not including,
// the next line terminator. The terminator itself is left for the main
// loop so it still marks the preceding token for semicolon insertion.
func (s *Scanner) skipLineComment() {
	s.idx += 2
	for !s.eof() && !isLineTerminator(s.at(s.idx)) {
		s.idx++
	}
}

// skipBlockComment consumes `/*` through the matching `*/`, keeping the
// line bookkeeping accurate across embedded newlines. A comment spanning a
// line break counts as a line break for semicolon insertion.
func (s *Scanner) skipBlockComment() *Error {
	start := s.loc()
	s.idx += 2
	sawNewline := false
	for !s.eof() {
		c := s.at(s.idx)
		switch {
		case c == '*' && s.peek(1) == '/':
			s.idx += 2
			if sawNewline {
				s.markNewline()
			}
			return nil
		case isLineTerminator(c):
			s.consumeNewline()
			sawNewline = true
		default:
			s.idx++
		}
	}
	return unclosedComment(start)
}
