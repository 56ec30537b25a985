package lib

type parser struct {
	reader tokenReader
}

// parseTokens parses a whitespace-free token sequence as one relation
// and requires the whole sequence to be consumed by it.
func parseTokens(tokens []token) (Expression, error) {
	p := parser{reader: newTokenCursor(tokens)}

	expr, err := p.scanRelation()
	if err != nil {
		return nil, err
	}

	if tok, ok := p.reader.read(); ok {
		return nil, ParseError{Kind: ParseErrorTrailingTokens, Token: tok, HasToken: true}
	}
	return expr, nil
}

// Grammar, low to high precedence:
//
//	relation := term ((< | > | =) term)*
//	term     := factor ((+ | -) factor)*
//	factor   := primary (* primary)*
//	primary  := Number | '(' relation ')'
//
// Repeated operators at one level fold left.

func (p *parser) scanRelation() (Expression, error) {
	return p.scanLeftFold(p.scanTerm, symbolLess, symbolGreater, symbolEqual)
}

func (p *parser) scanTerm() (Expression, error) {
	return p.scanLeftFold(p.scanFactor, symbolPlus, symbolMinus)
}

func (p *parser) scanFactor() (Expression, error) {
	return p.scanLeftFold(p.scanPrimary, symbolAsterisk)
}

func (p *parser) scanLeftFold(next func() (Expression, error), symbols ...symbol) (Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.checkOperator(symbols...)
		if !ok {
			break
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = Action{Left: expr, Right: right, Op: op}
	}

	return expr, nil
}

// checkOperator consumes the current token when it is an operator token
// for one of the given symbols, otherwise it leaves the cursor alone.
func (p *parser) checkOperator(symbols ...symbol) (operatorType, bool) {
	tok, ok := p.reader.read()
	if !ok || tok.tokType != tokenTypeOperator {
		return 0, false
	}
	for _, sym := range symbols {
		if tok.sym == sym {
			op, ok := operatorFromSymbol(sym)
			if !ok {
				// Only operator symbols ever get passed in here.
				panic("symbol has no operator")
			}
			p.reader.advance()
			return op, true
		}
	}
	return 0, false
}

func (p *parser) scanPrimary() (Expression, error) {
	tok, ok := p.reader.read()
	if !ok {
		return nil, ParseError{Kind: ParseErrorUnexpectedEnd}
	}

	if tok.tokType == tokenTypeNumber {
		p.reader.advance()
		return Const{Value: tok.value}, nil
	}

	if tok.tokType == tokenTypeOperator && tok.sym == symbolLParen {
		p.reader.advance()
		expr, err := p.scanRelation()
		if err != nil {
			return nil, err
		}

		closing, ok := p.reader.read()
		if !ok {
			return nil, ParseError{Kind: ParseErrorUnmatchedParenthesis}
		}
		if closing.tokType != tokenTypeOperator || closing.sym != symbolRParen {
			return nil, ParseError{Kind: ParseErrorUnmatchedParenthesis, Token: closing, HasToken: true}
		}
		p.reader.advance()
		return expr, nil
	}

	return nil, ParseError{Kind: ParseErrorUnexpectedToken, Token: tok, HasToken: true}
}
