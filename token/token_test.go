package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quartzjs/quartz/token"
)

func TestOperatorsOrderedLongestFirst(t *testing.T) {
	// First match wins in the tokenizer, so no operator may be preceded by
	// one of its own prefixes.
	for i, outer := range token.Operators {
		for _, inner := range token.Operators[:i] {
			require.False(t, strings.HasPrefix(outer.Text, inner.Text),
				"%q is shadowed by %q", outer.Text, inner.Text)
		}
	}
}

func TestOperatorsRoundTrip(t *testing.T) {
	for _, op := range token.Operators {
		require.Equal(t, op.Text, op.Kind.String())
	}
}

func TestAssignPredicates(t *testing.T) {
	require.True(t, token.Assign.IsAssign())
	require.False(t, token.Assign.IsCompoundAssign())
	require.True(t, token.AddAssign.IsCompoundAssign())
	require.True(t, token.CoalesceAssign.IsCompoundAssign())
	require.False(t, token.Equal.IsAssign())
	require.False(t, token.Arrow.IsAssign())
}

func TestBracketKinds(t *testing.T) {
	pairs := map[token.Kind]token.Kind{
		token.LeftParenthesis: token.RightParenthesis,
		token.LeftBrace:       token.RightBrace,
		token.LeftBracket:     token.RightBracket,
	}
	for open, closer := range pairs {
		require.True(t, open.IsOpenBracket())
		require.True(t, closer.IsCloseBracket())
		require.Equal(t, closer, open.Closer())
	}
	require.Equal(t, token.Undetermined, token.Comma.Closer())
}

func TestTiers(t *testing.T) {
	// Only the comma tier and the binary tiers carry operators; the levels
	// with dedicated parse handlers stay empty.
	for level, tier := range token.Tiers {
		switch {
		case level == token.PrecedenceComma || level >= 3 && level <= token.PrecedenceExponentiation:
			require.NotEmpty(t, tier.Operators, "tier %d", level)
		default:
			require.Empty(t, tier.Operators, "tier %d", level)
		}
	}

	// Exponentiation is the only right-associative binary tier.
	for level, tier := range token.Tiers {
		require.Equal(t, level == token.PrecedenceExponentiation, tier.RightAssoc, "tier %d", level)
	}

	require.True(t, token.Tiers[token.PrecedenceComma].Contains(token.Comma))
	require.False(t, token.Tiers[token.PrecedenceComma].Contains(token.Plus))

	// No operator appears in two tiers.
	seen := map[token.Kind]int{}
	for level, tier := range token.Tiers {
		for _, kind := range tier.Operators {
			if prev, dup := seen[kind]; dup {
				t.Fatalf("operator %s in tiers %d and %d", kind, prev, level)
			}
			seen[kind] = level
		}
	}
}
