package token

// Operator is one entry of the textual operator table.
type Operator struct {
	Text string
	Kind Kind
}

// Operators is the match table the tokenizer scans top to bottom, taking
// the first entry whose text is a prefix of the remaining input. Entries
// are ordered longest first so that `>>>=` wins over `>>=`, `>>` and `>`.
// Brackets are not listed; they are handled by the bracket-matching stack.
var Operators = []Operator{
	{">>>=", UnsignedShiftRightAssign},

	{"...", Ellipsis},
	{"===", StrictEqual},
	{"!==", StrictNotEqual},
	{"**=", ExponentAssign},
	{"<<=", ShiftLeftAssign},
	{">>=", ShiftRightAssign},
	{">>>", UnsignedShiftRight},
	{"&&=", LogicalAndAssign},
	{"||=", LogicalOrAssign},
	{"??=", CoalesceAssign},

	{"=>", Arrow},
	{"==", Equal},
	{"!=", NotEqual},
	{"<=", LessOrEqual},
	{">=", GreaterOrEqual},
	{"+=", AddAssign},
	{"-=", SubtractAssign},
	{"*=", MultiplyAssign},
	{"/=", QuotientAssign},
	{"%=", RemainderAssign},
	{"&=", AndAssign},
	{"|=", OrAssign},
	{"^=", ExclusiveOrAssign},
	{"**", Exponent},
	{"<<", ShiftLeft},
	{">>", ShiftRight},
	{"&&", LogicalAnd},
	{"||", LogicalOr},
	{"??", Coalesce},
	{"++", Increment},
	{"--", Decrement},
	{"?.", QuestionDot},

	{";", Semicolon},
	{",", Comma},
	{".", Period},
	{"?", QuestionMark},
	{":", Colon},
	{"=", Assign},
	{"+", Plus},
	{"-", Minus},
	{"*", Multiply},
	{"/", Slash},
	{"%", Remainder},
	{"<", Less},
	{">", Greater},
	{"&", And},
	{"|", Or},
	{"^", ExclusiveOr},
	{"!", Not},
	{"~", BitwiseNot},
}
