package parser

import "MiniCheck/internal/lexer"

// Parser is a recursive descent acceptor over a token slice. The cursor only
// moves forward and curToken is nil once the slice is exhausted.
type Parser struct {
	tokens   []lexer.Token
	pos      int
	curToken *lexer.Token
}

func NewParser(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.sync()
	return p
}

// Parse accepts tokens as a complete program or returns the first
// *ParseError.
func Parse(tokens []lexer.Token) error {
	return NewParser(tokens).Parse()
}

func (p *Parser) Parse() error {
	if err := p.program(); err != nil {
		return err
	}
	if p.curToken != nil {
		return newParseError(ErrExtraInput, "end of input", p.curToken)
	}
	return nil
}

func (p *Parser) sync() {
	if p.pos < len(p.tokens) {
		p.curToken = &p.tokens[p.pos]
	} else {
		p.curToken = nil
	}
}

func (p *Parser) advance() {
	p.pos++
	p.sync()
}

func (p *Parser) curTokenIs(kind lexer.Kind, text string) bool {
	return p.curToken != nil && p.curToken.Is(kind, text)
}

// eat consumes the current token if it has the expected kind and, when text
// is given, the expected text.
func (p *Parser) eat(kind lexer.Kind, text string) error {
	if !p.curTokenIs(kind, text) {
		return newParseError(ErrUnexpectedToken, expectation(kind, text), p.curToken)
	}
	p.advance()
	return nil
}

// atBlockEnd is true at end of input or on a closing keyword.
func (p *Parser) atBlockEnd() bool {
	if p.curToken == nil {
		return true
	}
	if p.curToken.Kind != lexer.Identifier {
		return false
	}
	switch p.curToken.Text {
	case lexer.KwEndProgram, lexer.KwEndIf, lexer.KwEndLoop:
		return true
	}
	return false
}
