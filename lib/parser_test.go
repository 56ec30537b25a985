package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireParseError(t *testing.T, err error, kind parseErrorKind) ParseError {
	var parseErr ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, kind, parseErr.Kind)
	return parseErr
}

func TestParseSimpleSum(t *testing.T) {
	expr, err := parseTokens([]token{numTok(2), opTok('+'), numTok(2)})
	require.NoError(t, err)
	require.Equal(t, int64(4), Evaluate(expr))
}

func TestParsePrecedence(t *testing.T) {
	// 2+2*2 multiplies before adding.
	expr, err := parseTokens([]token{numTok(2), opTok('+'), numTok(2), opTok('*'), numTok(2)})
	require.NoError(t, err)
	require.Equal(t, int64(6), Evaluate(expr))
}

func TestParseParens(t *testing.T) {
	// (2+4)*3
	expr, err := parseTokens([]token{
		opTok('('), numTok(2), opTok('+'), numTok(4), opTok(')'),
		opTok('*'), numTok(3),
	})
	require.NoError(t, err)
	require.Equal(t, int64(18), Evaluate(expr))
}

func TestParseLeftAssociative(t *testing.T) {
	// 1-2-3 folds left: (1-2)-3.
	expr, err := parseTokens([]token{
		numTok(1), opTok('-'), numTok(2), opTok('-'), numTok(3),
	})
	require.NoError(t, err)

	action, ok := expr.(Action)
	require.True(t, ok)
	require.Equal(t, OperatorSubtraction, action.Op)
	require.Equal(t, Const{Value: 3}, action.Right)

	inner, ok := action.Left.(Action)
	require.True(t, ok)
	require.Equal(t, OperatorSubtraction, inner.Op)
	require.Equal(t, Const{Value: 1}, inner.Left)
	require.Equal(t, Const{Value: 2}, inner.Right)

	require.Equal(t, int64(-4), Evaluate(expr))
}

func TestParseRelationBindsLoosest(t *testing.T) {
	// 1+2=3 compares the sum, not 2 alone.
	expr, err := parseTokens([]token{
		numTok(1), opTok('+'), numTok(2), opTok('='), numTok(3),
	})
	require.NoError(t, err)

	action, ok := expr.(Action)
	require.True(t, ok)
	require.Equal(t, OperatorEqualityComparison, action.Op)
	require.Equal(t, int64(1), Evaluate(expr))
}

func TestParseEmpty(t *testing.T) {
	_, err := parseTokens([]token{})
	requireParseError(t, err, ParseErrorUnexpectedEnd)
}

func TestParseMissingOperand(t *testing.T) {
	_, err := parseTokens([]token{numTok(1), opTok('+')})
	requireParseError(t, err, ParseErrorUnexpectedEnd)
}

func TestParseUnexpectedToken(t *testing.T) {
	// 2**3 leaves the second asterisk where a primary was required.
	_, err := parseTokens([]token{numTok(2), opTok('*'), opTok('*'), numTok(3)})
	parseErr := requireParseError(t, err, ParseErrorUnexpectedToken)
	require.True(t, parseErr.HasToken)
	require.Equal(t, opTok('*'), parseErr.Token)
}

func TestParseUnmatchedParenthesis(t *testing.T) {
	// (2+4(*3 finishes the inner relation right before the stray paren,
	// which then sits where the closing paren had to be.
	_, err := parseTokens([]token{
		opTok('('), numTok(2), opTok('+'), numTok(4), opTok('('),
		opTok('*'), numTok(3),
	})
	parseErr := requireParseError(t, err, ParseErrorUnmatchedParenthesis)
	require.True(t, parseErr.HasToken)
	require.Equal(t, opTok('('), parseErr.Token)
}

func TestParseUnclosedParenthesisAtEnd(t *testing.T) {
	_, err := parseTokens([]token{opTok('('), numTok(1), opTok('+'), numTok(2)})
	parseErr := requireParseError(t, err, ParseErrorUnmatchedParenthesis)
	require.False(t, parseErr.HasToken)
}

func TestParseTrailingNumber(t *testing.T) {
	// 2+4 4*3 parses 2+4 as a complete relation, leaving the rest.
	_, err := parseTokens([]token{
		numTok(2), opTok('+'), numTok(4), numTok(4), opTok('*'), numTok(3),
	})
	parseErr := requireParseError(t, err, ParseErrorTrailingTokens)
	require.True(t, parseErr.HasToken)
	require.Equal(t, numTok(4), parseErr.Token)
}

func TestParseDoesNotMutateTokens(t *testing.T) {
	tokens := []token{numTok(2), opTok('+'), numTok(2)}

	first, err := parseTokens(tokens)
	require.NoError(t, err)
	second, err := parseTokens(tokens)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, []token{numTok(2), opTok('+'), numTok(2)}, tokens)
	require.Equal(t, Evaluate(first), Evaluate(second))
}
