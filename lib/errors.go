package lib

import "fmt"

// TokenizationError means a character matched none of the
// digit/whitespace/symbol classes (or broke the leading-zero rule).
type TokenizationError struct {
	Position int
}

func (e TokenizationError) Error() string {
	return fmt.Sprintf("Cannot tokenize character at index %d", e.Position)
}

type parseErrorKind int

const (
	ParseErrorUnexpectedEnd parseErrorKind = iota
	ParseErrorUnexpectedToken
	ParseErrorUnmatchedParenthesis
	ParseErrorTrailingTokens
)

// ParseError is a grammar violation. Token is the offending token when
// HasToken is set; UnexpectedEnd never has one.
type ParseError struct {
	Kind     parseErrorKind
	Token    token
	HasToken bool
}

func (e ParseError) Error() string {
	switch e.Kind {
	case ParseErrorUnexpectedEnd:
		return "Expecting a token but got end of input"
	case ParseErrorUnexpectedToken:
		return fmt.Sprintf("Unexpected token <%s>", tokenString(e.Token))
	case ParseErrorUnmatchedParenthesis:
		if e.HasToken {
			return fmt.Sprintf("Expecting ')' but got <%s>", tokenString(e.Token))
		}
		return "Expecting ')' but got end of input"
	case ParseErrorTrailingTokens:
		return fmt.Sprintf("Trailing input after expression, starting at <%s>", tokenString(e.Token))
	}
	return "Invalid expression"
}
