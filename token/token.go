// Package token defines the lexical vocabulary shared by the tokenizer and
// the parser: token kinds, the token value itself, the textual operator
// table and the precedence tiers.
package token

import (
	"math/big"
	"strconv"

	"github.com/quartzjs/quartz/source"
)

// Kind is the set of lexical token kinds.
type Kind int

const (
	Undetermined Kind = iota

	Identifier
	String
	Number
	BigInt

	Semicolon    // ;
	Comma        // ,
	Period       // .
	QuestionMark // ?
	QuestionDot  // ?.
	Colon        // :
	Ellipsis     // ...
	Arrow        // =>

	LeftParenthesis  // (
	RightParenthesis // )
	LeftBrace        // {
	RightBrace       // }
	LeftBracket      // [
	RightBracket     // ]

	Assign // =

	AddAssign                // +=
	SubtractAssign           // -=
	MultiplyAssign           // *=
	ExponentAssign           // **=
	QuotientAssign           // /=
	RemainderAssign          // %=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=
	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	LogicalAndAssign         // &&=
	LogicalOrAssign          // ||=
	CoalesceAssign           // ??=

	Increment  // ++
	Decrement  // --
	Not        // !
	BitwiseNot // ~

	Plus  // +
	Minus // -

	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	Equal          // ==
	NotEqual       // !=
	StrictEqual    // ===
	StrictNotEqual // !==

	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=

	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	And         // &
	Or          // |
	ExclusiveOr // ^

	LogicalAnd // &&
	LogicalOr  // ||
	Coalesce   // ??

	// In and InstanceOf are never produced by the tokenizer (which has no
	// keyword list); the parser rewrites the corresponding identifiers into
	// these kinds when it finds them in binary-operator position.
	In         // in
	InstanceOf // instanceof
)

var kind2string = [...]string{
	Undetermined:             "Undetermined",
	Identifier:               "Identifier",
	String:                   "String",
	Number:                   "Number",
	BigInt:                   "BigInt",
	Semicolon:                ";",
	Comma:                    ",",
	Period:                   ".",
	QuestionMark:             "?",
	QuestionDot:              "?.",
	Colon:                    ":",
	Ellipsis:                 "...",
	Arrow:                    "=>",
	LeftParenthesis:          "(",
	RightParenthesis:         ")",
	LeftBrace:                "{",
	RightBrace:               "}",
	LeftBracket:              "[",
	RightBracket:             "]",
	Assign:                   "=",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	Increment:                "++",
	Decrement:                "--",
	Not:                      "!",
	BitwiseNot:               "~",
	Plus:                     "+",
	Minus:                    "-",
	Multiply:                 "*",
	Exponent:                 "**",
	Slash:                    "/",
	Remainder:                "%",
	Equal:                    "==",
	NotEqual:                 "!=",
	StrictEqual:              "===",
	StrictNotEqual:           "!==",
	Less:                     "<",
	Greater:                  ">",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	In:                       "in",
	InstanceOf:               "instanceof",
}

// String returns the display form of the kind: the operator text for
// punctuation and operators, a name otherwise.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kind2string) {
		return kind2string[k]
	}
	return "token(" + strconv.Itoa(int(k)) + ")"
}

// IsAssign reports whether k is `=` or any compound update-assignment.
func (k Kind) IsAssign() bool {
	return k >= Assign && k <= CoalesceAssign
}

// IsCompoundAssign reports whether k is an update-assignment (`+=` through `??=`).
func (k Kind) IsCompoundAssign() bool {
	return k > Assign && k <= CoalesceAssign
}

// IsOpenBracket reports whether k opens a bracket pair.
func (k Kind) IsOpenBracket() bool {
	return k == LeftParenthesis || k == LeftBrace || k == LeftBracket
}

// IsCloseBracket reports whether k closes a bracket pair.
func (k Kind) IsCloseBracket() bool {
	return k == RightParenthesis || k == RightBrace || k == RightBracket
}

// Closer returns the closing kind matching an open-bracket kind.
func (k Kind) Closer() Kind {
	switch k {
	case LeftParenthesis:
		return RightParenthesis
	case LeftBrace:
		return RightBrace
	case LeftBracket:
		return RightBracket
	}
	return Undetermined
}

// NoPartner marks a bracket token whose partner has not been matched yet.
const NoPartner = -1

// Token is one lexical unit. Payload fields are populated according to
// Kind: Text for identifiers and decoded string literals, Number for
// numeric literals, Big for BigInt literals, Partner for brackets (the
// token index of the matching bracket in the same sequence).
type Token struct {
	Loc  source.Location
	Kind Kind

	Text    string
	Number  float64
	Big     *big.Int
	Partner int

	// NewlineAfter is set retroactively when a line terminator is consumed
	// directly after this token; it drives automatic semicolon insertion.
	NewlineAfter bool
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case Identifier:
		return t.Text
	case String:
		return strconv.Quote(t.Text)
	case Number:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case BigInt:
		return t.Big.String() + "n"
	}
	return t.Kind.String()
}
