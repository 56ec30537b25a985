package lib

import "unicode"

// tokenize converts one line of input into tokens. It scans left to
// right with a pending number accumulator: digits extend it, anything
// else flushes it first. Whitespace is kept as its own token, one per
// character, so downstream stages decide what to do with it.
func tokenize(input string) ([]token, error) {
	tokens := []token{}
	acc := int64(0)
	accActive := false

	flush := func() {
		if accActive {
			tokens = append(tokens, token{tokType: tokenTypeNumber, value: acc})
			acc = 0
			accActive = false
		}
	}

	for i, ch := range []rune(input) {
		switch {
		case unicode.IsSpace(ch):
			flush()
			tokens = append(tokens, token{tokType: tokenTypeWhitespace, ws: ch})
		case isDigit(ch):
			// A digit extending an accumulator that still holds 0 means
			// a leading-zero literal like "0001". Those are malformed;
			// "0" on its own stays fine.
			if accActive && acc == 0 {
				return nil, TokenizationError{Position: i}
			}
			acc = acc*10 + int64(ch-'0')
			accActive = true
		default:
			sym, ok := parseSymbol(ch)
			if !ok {
				return nil, TokenizationError{Position: i}
			}
			flush()
			tokens = append(tokens, token{tokType: tokenTypeOperator, sym: sym})
		}
	}

	flush()
	return tokens, nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
