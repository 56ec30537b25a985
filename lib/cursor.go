package lib

// tokenReader is what the parser consumes: an idempotent peek at the
// current token plus a single forward step.
type tokenReader interface {
	read() (tok token, ok bool)
	advance()
}

// tokenCursor is a forward-only position over an immutable token slice.
// The position never decreases.
type tokenCursor struct {
	tokens []token
	pos    int
}

func newTokenCursor(tokens []token) *tokenCursor {
	return &tokenCursor{tokens: tokens, pos: 0}
}

func (tc *tokenCursor) read() (token, bool) {
	if tc.pos >= len(tc.tokens) {
		return token{}, false
	}
	return tc.tokens[tc.pos], true
}

// advance never fails; moving past the end just makes read keep
// reporting no token.
func (tc *tokenCursor) advance() {
	tc.pos++
}
