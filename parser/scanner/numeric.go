package scanner

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

// scanNumber lexes one numeric literal: decimal (optionally fractional),
// hex/octal/binary behind a `0x`/`0o`/`00`/`0b` prefix, legacy implicit
// octal (`017`), and the BigInt forms with a trailing `n`. Underscore
// separators are accepted between digits of the base and dropped.
func (s *Scanner) scanNumber() *Error {
	start := s.loc()
	base := 10
	implicitOctal := false
	sawDot := false
	var digits strings.Builder

	switch c := s.at(s.idx); {
	case c == '.':
		sawDot = true
		digits.WriteByte('.')
		s.idx++
	case c == '0':
		s.idx++
		switch next := s.peek(0); {
		case next == 'x' || next == 'X':
			base = 16
			s.idx++
			if err := s.requireBaseDigits(start, base); err != nil {
				return err
			}
		case next == 'o' || next == 'O' || next == '0':
			base = 8
			s.idx++
			if err := s.requireBaseDigits(start, base); err != nil {
				return err
			}
		case next == 'b' || next == 'B':
			base = 2
			s.idx++
			if err := s.requireBaseDigits(start, base); err != nil {
				return err
			}
		case next == 'n':
			s.idx++
			return s.emitBigInt(start, "0", 10)
		case next >= '1' && next <= '9':
			// Legacy implicit octal; the leading zero contributes nothing.
			base = 8
			implicitOctal = true
		default:
			digits.WriteByte('0')
		}
	default:
		digits.WriteRune(c)
		s.idx++
	}

run:
	for !s.eof() {
		c := s.at(s.idx)
		switch {
		case c == '_':
			last := lastByte(&digits)
			if !isBaseDigitByte(last, base) || !isBaseDigit(s.peek(1), base) {
				return misplacedUnderscore(s.loc())
			}
			s.idx++
		case c == '.':
			if base != 10 || sawDot {
				// A second point, or a point outside decimal, ends the run;
				// `10.10.10` lexes as `10.10` then `.10`.
				break run
			}
			sawDot = true
			digits.WriteByte('.')
			s.idx++
		case c == 'n':
			if sawDot {
				return invalidBigInt(s.loc(), "decimal point in BigInt")
			}
			if implicitOctal {
				return invalidBigInt(s.loc(), "implicit octal BigInt")
			}
			s.idx++
			return s.emitBigInt(start, digits.String(), base)
		case isBaseDigit(c, base):
			digits.WriteRune(c)
			s.idx++
		case isIdentifierStart(c):
			return identifierAfterNumber(s.loc())
		default:
			break run
		}
	}

	return s.emitNumber(start, digits.String(), base)
}

// requireBaseDigits checks that at least one digit of the base follows a
// just-consumed prefix; it consumes nothing itself.
func (s *Scanner) requireBaseDigits(start source.Location, base int) *Error {
	if s.eof() {
		return missingDigits(start, base)
	}
	c := s.at(s.idx)
	if c == '_' {
		return misplacedUnderscore(s.loc())
	}
	if !isBaseDigit(c, base) {
		return missingDigits(start, base)
	}
	return nil
}

func (s *Scanner) emitNumber(start source.Location, digits string, base int) *Error {
	var value float64
	if base == 10 {
		// ParseFloat accepts the trailing-dot form and saturates overflow
		// to +Inf, which is exactly the conversion contract here.
		value, _ = strconv.ParseFloat(digits, 64)
	} else {
		if digits == "" {
			digits = "0"
		}
		i, ok := new(big.Int).SetString(digits, base)
		if !ok {
			panic("scanner: digit run contains non-digits: " + digits)
		}
		value, _ = new(big.Float).SetInt(i).Float64()
	}
	s.emit(token.Token{Loc: start, Kind: token.Number, Number: value, Partner: token.NoPartner})
	return nil
}

// emitBigInt finishes a literal whose trailing `n` has been consumed.
func (s *Scanner) emitBigInt(start source.Location, digits string, base int) *Error {
	if !s.eof() && isIdentifierStart(s.at(s.idx)) {
		return invalidBigInt(s.loc(), "identifier directly after BigInt")
	}
	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return invalidBigInt(start, "malformed digits")
	}
	s.emit(token.Token{Loc: start, Kind: token.BigInt, Big: i, Partner: token.NoPartner})
	return nil
}

func lastByte(b *strings.Builder) byte {
	str := b.String()
	if len(str) == 0 {
		return 0
	}
	return str[len(str)-1]
}

func isDecimalDigit(chr rune) bool {
	return '0' <= chr && chr <= '9'
}

func isBaseDigit(chr rune, base int) bool {
	return digitValue(chr) < base
}

func isBaseDigitByte(b byte, base int) bool {
	return digitValue(rune(b)) < base
}

func digitValue(chr rune) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16 // larger than any legal digit value
}
