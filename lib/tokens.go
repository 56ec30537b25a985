package lib

import "strconv"

// symbol is the closed set of non-alphanumeric characters the lexer
// recognizes. Parentheses are symbols but not operators.
type symbol int

const (
	symbolPlus symbol = iota
	symbolMinus
	symbolAsterisk
	symbolLess
	symbolGreater
	symbolEqual
	symbolLParen
	symbolRParen
)

func parseSymbol(ch rune) (symbol, bool) {
	switch ch {
	case '+':
		return symbolPlus, true
	case '-':
		return symbolMinus, true
	case '*':
		return symbolAsterisk, true
	case '<':
		return symbolLess, true
	case '>':
		return symbolGreater, true
	case '=':
		return symbolEqual, true
	case '(':
		return symbolLParen, true
	case ')':
		return symbolRParen, true
	}
	return 0, false
}

func (s symbol) String() string {
	switch s {
	case symbolPlus:
		return "+"
	case symbolMinus:
		return "-"
	case symbolAsterisk:
		return "*"
	case symbolLess:
		return "<"
	case symbolGreater:
		return ">"
	case symbolEqual:
		return "="
	case symbolLParen:
		return "("
	case symbolRParen:
		return ")"
	}
	return "?"
}

type tokenType int

const (
	tokenTypeOperator tokenType = iota
	tokenTypeNumber
	tokenTypeWhitespace
)

// token is a plain value: sym is meaningful for operator tokens, value
// for number tokens and ws for whitespace tokens.
type token struct {
	tokType tokenType
	sym     symbol
	value   int64
	ws      rune
}

func tokenString(tok token) string {
	switch tok.tokType {
	case tokenTypeNumber:
		return strconv.FormatInt(tok.value, 10)
	case tokenTypeWhitespace:
		return strconv.Quote(string(tok.ws))
	case tokenTypeOperator:
		return tok.sym.String()
	}
	return "?"
}
