package token

// Precedence levels, 1 loosest to 18 tightest. Levels without a named
// constant here are structural (postfix, unary, member/call/new, atoms)
// and are owned directly by the parser's handlers.
const (
	PrecedenceComma          = 1
	PrecedenceAssign         = 2
	PrecedenceLogicalOr      = 3
	PrecedenceLogicalAnd     = 4
	PrecedenceBitwiseOr      = 5
	PrecedenceBitwiseXor     = 6
	PrecedenceBitwiseAnd     = 7
	PrecedenceEquality       = 8
	PrecedenceRelational     = 9
	PrecedenceShift          = 10
	PrecedenceAdditive       = 11
	PrecedenceMultiplicative = 12
	PrecedenceExponentiation = 13
	PrecedenceUnary          = 14
	PrecedencePostfix        = 15
	PrecedenceCallNew        = 16
	PrecedenceMember         = 17
	PrecedenceAtom           = 18
)

// Tier describes one binary-operator precedence level: which operator
// kinds belong to it and how a run of them associates.
type Tier struct {
	Operators  []Kind
	RightAssoc bool
}

// Tiers is the full precedence table, indexed by level. Only the comma
// tier (1) and the binary tiers (3-13) have members; every other level is
// handled structurally by the parser. This is pure data with no behavior.
var Tiers = [PrecedenceAtom + 1]Tier{
	PrecedenceComma:          {Operators: []Kind{Comma}},
	PrecedenceLogicalOr:      {Operators: []Kind{LogicalOr, Coalesce}},
	PrecedenceLogicalAnd:     {Operators: []Kind{LogicalAnd}},
	PrecedenceBitwiseOr:      {Operators: []Kind{Or}},
	PrecedenceBitwiseXor:     {Operators: []Kind{ExclusiveOr}},
	PrecedenceBitwiseAnd:     {Operators: []Kind{And}},
	PrecedenceEquality:       {Operators: []Kind{Equal, NotEqual, StrictEqual, StrictNotEqual}},
	PrecedenceRelational:     {Operators: []Kind{Less, Greater, LessOrEqual, GreaterOrEqual, In, InstanceOf}},
	PrecedenceShift:          {Operators: []Kind{ShiftLeft, ShiftRight, UnsignedShiftRight}},
	PrecedenceAdditive:       {Operators: []Kind{Plus, Minus}},
	PrecedenceMultiplicative: {Operators: []Kind{Multiply, Slash, Remainder}},
	PrecedenceExponentiation: {Operators: []Kind{Exponent}, RightAssoc: true},
}

// Contains reports whether kind is a member of the tier.
func (t Tier) Contains(kind Kind) bool {
	for _, k := range t.Operators {
		if k == kind {
			return true
		}
	}
	return false
}
