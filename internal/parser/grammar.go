package parser

import "MiniCheck/internal/lexer"

const factorExpectation = "number, identifier, or parenthesized expression"

// program ::= "program" statements "end_program"
func (p *Parser) program() error {
	if err := p.eat(lexer.Identifier, lexer.KwProgram); err != nil {
		return err
	}
	if err := p.statements(); err != nil {
		return err
	}
	return p.eat(lexer.Identifier, lexer.KwEndProgram)
}

// statements ::= { statement }
func (p *Parser) statements() error {
	for !p.atBlockEnd() {
		if err := p.statement(); err != nil {
			return err
		}
	}
	return nil
}

// statement ::= condition | loop | assignment ";"
func (p *Parser) statement() error {
	switch {
	case p.curTokenIs(lexer.Identifier, lexer.KwIf):
		return p.condition()
	case p.curTokenIs(lexer.Identifier, lexer.KwLoop):
		return p.loop()
	}

	if err := p.assignment(); err != nil {
		return err
	}
	return p.eat(lexer.Semicolon, "")
}

// assignment ::= ID "=" expression
func (p *Parser) assignment() error {
	if err := p.eat(lexer.Identifier, ""); err != nil {
		return err
	}
	if err := p.eat(lexer.Assign, ""); err != nil {
		return err
	}
	return p.expression()
}

// condition ::= "if" "(" logic_expression ")" statements "end_if"
func (p *Parser) condition() error {
	if err := p.eat(lexer.Identifier, lexer.KwIf); err != nil {
		return err
	}
	if err := p.eat(lexer.LParen, ""); err != nil {
		return err
	}
	if err := p.logicExpression(); err != nil {
		return err
	}
	if err := p.eat(lexer.RParen, ""); err != nil {
		return err
	}
	if err := p.statements(); err != nil {
		return err
	}
	return p.eat(lexer.Identifier, lexer.KwEndIf)
}

// loop ::= "loop" "(" ID "=" expression ":" expression ")" statements "end_loop"
func (p *Parser) loop() error {
	if err := p.eat(lexer.Identifier, lexer.KwLoop); err != nil {
		return err
	}
	if err := p.eat(lexer.LParen, ""); err != nil {
		return err
	}
	if err := p.eat(lexer.Identifier, ""); err != nil {
		return err
	}
	if err := p.eat(lexer.Assign, ""); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.eat(lexer.Colon, ""); err != nil {
		return err
	}
	if err := p.expression(); err != nil {
		return err
	}
	if err := p.eat(lexer.RParen, ""); err != nil {
		return err
	}
	if err := p.statements(); err != nil {
		return err
	}
	return p.eat(lexer.Identifier, lexer.KwEndLoop)
}

// logic_expression ::= ID LogicOp ID
func (p *Parser) logicExpression() error {
	if err := p.eat(lexer.Identifier, ""); err != nil {
		return err
	}
	if err := p.eat(lexer.LogicOp, ""); err != nil {
		return err
	}
	return p.eat(lexer.Identifier, "")
}

// expression ::= term { ("+"|"-") term }
func (p *Parser) expression() error {
	if err := p.term(); err != nil {
		return err
	}
	for p.curTokenIs(lexer.ArithOp, "+") || p.curTokenIs(lexer.ArithOp, "-") {
		if err := p.eat(lexer.ArithOp, ""); err != nil {
			return err
		}
		if err := p.term(); err != nil {
			return err
		}
	}
	return nil
}

// term ::= factor { ("*"|"/"|"%") factor }
func (p *Parser) term() error {
	if err := p.factor(); err != nil {
		return err
	}
	for p.curTokenIs(lexer.ArithOp, "*") || p.curTokenIs(lexer.ArithOp, "/") || p.curTokenIs(lexer.ArithOp, "%") {
		if err := p.eat(lexer.ArithOp, ""); err != nil {
			return err
		}
		if err := p.factor(); err != nil {
			return err
		}
	}
	return nil
}

// factor ::= Number | ID | "(" expression ")"
func (p *Parser) factor() error {
	switch {
	case p.curTokenIs(lexer.Number, ""):
		return p.eat(lexer.Number, "")
	case p.curTokenIs(lexer.Identifier, ""):
		return p.eat(lexer.Identifier, "")
	case p.curTokenIs(lexer.LParen, ""):
		if err := p.eat(lexer.LParen, ""); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
		return p.eat(lexer.RParen, "")
	}
	return newParseError(ErrUnexpectedToken, factorExpectation, p.curToken)
}
