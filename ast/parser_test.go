package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, pattern string) *Tree {
	t.Helper()
	tree, err := Parse(pattern)
	require.NoError(t, err)
	return tree
}

func TestParseLiteral(t *testing.T) {
	tree := mustParse(t, "a")
	require.Equal(t, "a", tree.String())
	require.NoError(t, Validate(tree))
}

func TestParseConcatLeftAssociative(t *testing.T) {
	tree := mustParse(t, "abc")
	require.Equal(t, "Concat(Concat(a,b),c)", tree.String())
}

func TestParseAlternLeftAssociative(t *testing.T) {
	tree := mustParse(t, "a|b|c")
	require.Equal(t, "Altern(Altern(a,b),c)", tree.String())
}

func TestParsePrecedence(t *testing.T) {
	tree := mustParse(t, "a|bc")
	require.Equal(t, "Altern(a,Concat(b,c))", tree.String())
}

func TestParseStarBindsTighterThanConcat(t *testing.T) {
	tree := mustParse(t, "ab*")
	require.Equal(t, "Concat(a,Star(b))", tree.String())
}

func TestParsePlus(t *testing.T) {
	tree := mustParse(t, "a+")
	require.Equal(t, "Plus(a)", tree.String())
}

func TestParseGrouping(t *testing.T) {
	tree := mustParse(t, "(a|b)c")
	require.Equal(t, "Concat(Altern(a,b),c)", tree.String())
}

func TestParseGroupedPlus(t *testing.T) {
	tree := mustParse(t, "S(a|g|r)+on")
	require.NoError(t, Validate(tree))
}

func TestParseNestedGroups(t *testing.T) {
	tree := mustParse(t, "((a))")
	require.Equal(t, "a", tree.String())
}

func TestParseNoProtectionSurvives(t *testing.T) {
	for _, p := range []string{"a", "ab", "a|b", "a*", "a+", "(a|b)+c", "a(b|c)*d"} {
		tree := mustParse(t, p)
		require.False(t, tree.hasProtection(), "pattern %q", p)
		require.NoError(t, Validate(tree))
	}
}

func TestParseEmptyPattern(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrEmptyPattern)
}

func TestParseMismatchedParen(t *testing.T) {
	for _, p := range []string{"a(b", "a)b", "(a", ")"} {
		_, err := Parse(p)
		require.ErrorIs(t, err, ErrMismatchedParen, "pattern %q", p)
	}
}

func TestParseDanglingPostfix(t *testing.T) {
	for _, p := range []string{"*", "+", "(|a)*"} {
		_, err := Parse(p)
		require.Error(t, err)
	}
	_, err := Parse("*a")
	require.ErrorIs(t, err, ErrDanglingPostfix)
}

func TestParseDanglingAltern(t *testing.T) {
	for _, p := range []string{"|a", "a|", "|"} {
		_, err := Parse(p)
		require.ErrorIs(t, err, ErrDanglingAltern, "pattern %q", p)
	}
}

func TestParseErrorUnwraps(t *testing.T) {
	_, err := Parse("a(b")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "a(b", pe.Pattern)
}

func TestStripProtectionIdempotent(t *testing.T) {
	tree := mustParse(t, "(a|b)+c")
	once := stripProtection(tree)
	twice := stripProtection(once)
	require.Equal(t, once.String(), twice.String())
}

func TestParseWhitespaceAndDigitsAreLiterals(t *testing.T) {
	tree := mustParse(t, "a 1")
	require.Equal(t, "Concat(Concat(a, ),1)", tree.String())
}
