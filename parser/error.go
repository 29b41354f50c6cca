package parser

import (
	"fmt"

	"github.com/quartzjs/quartz/source"
	"github.com/quartzjs/quartz/token"
)

// ErrorKind is the closed set of parse failure modes.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEOF
	ExpectedExpression
	InvalidUpdateOperand
	InvalidAssignmentTarget
	InvalidDestructuringOperator
	RestElementNotLast
	SyntaxGeneric
)

// Error is a parse diagnostic. Like the tokenizer, the parser is
// fail-fast: the first error aborts the run and no partial tree is
// returned.
type Error struct {
	Loc     source.Location
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func unexpectedToken(loc source.Location, found token.Token, expected string) *Error {
	msg := fmt.Sprintf("unexpected token %s", found)
	if expected != "" {
		msg = fmt.Sprintf("unexpected token %s, expected %s", found, expected)
	}
	return &Error{Loc: loc, Kind: UnexpectedToken, Message: msg}
}

func unexpectedEOF(loc source.Location) *Error {
	return &Error{Loc: loc, Kind: UnexpectedEOF, Message: "unexpected end of input"}
}

func expectedExpression(loc source.Location, found token.Token) *Error {
	return &Error{Loc: loc, Kind: ExpectedExpression, Message: fmt.Sprintf("expected expression, found %s", found)}
}

func invalidUpdateOperand(loc source.Location, prefix bool) *Error {
	side := "postfix"
	if prefix {
		side = "prefix"
	}
	return &Error{Loc: loc, Kind: InvalidUpdateOperand, Message: fmt.Sprintf("invalid operand for %s update expression", side)}
}

func invalidAssignmentTarget(loc source.Location) *Error {
	return &Error{Loc: loc, Kind: InvalidAssignmentTarget, Message: "invalid assignment left-hand side"}
}

func invalidDestructuringOperator(loc source.Location, op token.Kind) *Error {
	return &Error{Loc: loc, Kind: InvalidDestructuringOperator, Message: fmt.Sprintf("cannot use %s with a destructuring target", op)}
}

func restElementNotLast(loc source.Location) *Error {
	return &Error{Loc: loc, Kind: RestElementNotLast, Message: "rest element must be the last element"}
}

func syntaxError(loc source.Location, format string, args ...any) *Error {
	return &Error{Loc: loc, Kind: SyntaxGeneric, Message: fmt.Sprintf(format, args...)}
}

// SyntaxError is the fused boundary error for callers that run
// tokenize-then-parse as a single step: both lexical and parse failures
// surface through it with one rendering.
type SyntaxError struct {
	Loc     source.Location
	Message string
	cause   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: Syntax Error: %s", e.Loc, e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.cause }

// Diagnostic renders the user-facing form: the source origin with line and
// column, then the message. Lexical and parse errors display identically.
func (e *SyntaxError) Diagnostic() string {
	return e.Loc.String() + "\n" + "Syntax Error: " + e.Message
}
