package scanner

import (
	"fmt"

	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

// ErrorKind is the closed set of lexical failure modes.
type ErrorKind int

const (
	UnclosedString ErrorKind = iota
	NewlineInString
	IdentifierAfterNumber
	MissingDigits
	IllegalCharacter
	MismatchedBracket
	UnclosedBracket
	InvalidBigInt
	UnclosedComment
	MisplacedUnderscore
)

// Error is a lexical diagnostic. The first one encountered aborts the
// whole tokenize run.
type Error struct {
	Loc     source.Location
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func unclosedString(loc source.Location) *Error {
	return &Error{Loc: loc, Kind: UnclosedString, Message: "unterminated string literal"}
}

func newlineInString(loc source.Location) *Error {
	return &Error{Loc: loc, Kind: NewlineInString, Message: "newline in string literal"}
}

func identifierAfterNumber(loc source.Location) *Error {
	return &Error{Loc: loc, Kind: IdentifierAfterNumber, Message: "identifier directly after number"}
}

func missingDigits(loc source.Location, base int) *Error {
	return &Error{Loc: loc, Kind: MissingDigits, Message: fmt.Sprintf("missing digits after base-%d prefix", base)}
}

func illegalCharacter(loc source.Location, chr rune) *Error {
	return &Error{Loc: loc, Kind: IllegalCharacter, Message: fmt.Sprintf("illegal character %q", chr)}
}

func mismatchedBracket(loc source.Location, found token.Kind) *Error {
	return &Error{Loc: loc, Kind: MismatchedBracket, Message: fmt.Sprintf("mismatched bracket %q", found.String())}
}

func unclosedBracket(loc source.Location, open token.Kind) *Error {
	return &Error{Loc: loc, Kind: UnclosedBracket, Message: fmt.Sprintf("unclosed bracket %q", open.String())}
}

func invalidBigInt(loc source.Location, reason string) *Error {
	return &Error{Loc: loc, Kind: InvalidBigInt, Message: "invalid BigInt literal: " + reason}
}

func unclosedComment(loc source.Location) *Error {
	return &Error{Loc: loc, Kind: UnclosedComment, Message: "unterminated block comment"}
}

func misplacedUnderscore(loc source.Location) *Error {
	return &Error{Loc: loc, Kind: MisplacedUnderscore, Message: "underscore must separate digits in a numeric literal"}
}
