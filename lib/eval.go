package lib

import (
	"fmt"
	"strings"
)

// Parse tokenizes one line and parses it into an expression tree. The
// error is either a TokenizationError or a ParseError.
func Parse(line string) (Expression, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, err
	}
	return parseTokens(stripWhitespace(tokens))
}

// The grammar never consumes whitespace tokens, so they get filtered
// out here, once, between the lexer and the parser.
func stripWhitespace(tokens []token) []token {
	filtered := []token{}
	for _, tok := range tokens {
		if tok.tokType != tokenTypeWhitespace {
			filtered = append(filtered, tok)
		}
	}
	return filtered
}

// EvalLine parses and evaluates one line.
func EvalLine(line string) (int64, error) {
	expr, err := Parse(line)
	if err != nil {
		return 0, err
	}
	return Evaluate(expr), nil
}

// EvalLines evaluates every line of input independently, one result per
// line in input order. A trailing newline does not count as an extra
// line. The first malformed line aborts the whole batch.
func EvalLines(input string) ([]int64, error) {
	lines := strings.Split(input, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	results := make([]int64, 0, len(lines))
	for i, line := range lines {
		result, err := EvalLine(strings.TrimSuffix(line, "\r"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		results = append(results, result)
	}
	return results, nil
}
