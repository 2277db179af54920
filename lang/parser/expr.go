package parser

import "github.com/amirsalarsafaei/c-minus-compiler/lang/token"

// parseExpression implements the grammar's distinguished `expression`
// nonterminal: when it starts with an identifier, an assignment is
// possible, so the address is pushed and resolved immediately and the
// continuation decides between array indexing, assignment, a call, or
// falling through to ordinary arithmetic/relational continuation. Any
// other leading token falls straight through to simple-expr, where
// assignment is never syntactically possible.
func (p *Parser) parseExpression() {
	p.enter("expression")
	defer p.leave()

	if p.tok != token.IDENT {
		p.parseSimpleExpr()
		return
	}

	p.leaf(p.lit)
	p.action("push_address")
	p.advance()
	p.action("check_array")
	p.action("check_var")
	p.action("check_function")
	p.parseAssignOrContinuation()
}

func (p *Parser) parseAssignOrContinuation() {
	hasIndex := false
	if p.tok == token.LBRACK {
		p.advance()
		p.parseExpression()
		p.expect(token.RBRACK)
		p.action("array_index")
		hasIndex = true
	}

	if p.tok == token.EQ {
		p.advance()
		p.parseExpression()
		p.action("assign")
		return
	}

	if !hasIndex && p.tok == token.LPAREN {
		p.parseCallTail()
	}
	p.parseExprContinuation()
}

func (p *Parser) parseCallTail() {
	p.action("start_function_call")
	p.expect(token.LPAREN)
	p.parseArgs()
	p.expect(token.RPAREN)
	p.action("end_function_call")
}

func (p *Parser) parseArgs() {
	if p.tok == token.RPAREN {
		return
	}
	p.parseExpression()
	p.action("add_arg")
	for p.tok == token.COMMA {
		p.advance()
		p.parseExpression()
		p.action("add_arg")
	}
}

// parseExprContinuation applies term-rest, additive-rest and relop-rest on
// top of an already-pushed first operand (the identifier parseExpression
// just resolved).
func (p *Parser) parseExprContinuation() {
	p.parseTermRest()
	p.parseAdditiveRest()
	p.parseRelopRest()
}

func (p *Parser) parseSimpleExpr() {
	p.parseAdditiveExpr()
	p.parseRelopRest()
}

func (p *Parser) parseAdditiveExpr() {
	p.parseTerm()
	p.parseAdditiveRest()
}

func (p *Parser) parseAdditiveRest() {
	for p.tok == token.PLUS || p.tok == token.MINUS {
		opTok, opLit, opLine := p.tok, p.lit, p.ln
		p.advance()
		p.actionAt("arith_op", opTok, opLit, opLine)
		p.parseTerm()
		p.action("arith")
	}
}

func (p *Parser) parseTerm() {
	p.parseFactor()
	p.parseTermRest()
}

func (p *Parser) parseTermRest() {
	for p.tok == token.STAR {
		p.advance()
		p.parseFactor()
		p.action("mult")
	}
}

func (p *Parser) parseRelopRest() {
	if p.tok == token.LT || p.tok == token.EQEQ {
		opTok, opLit, opLine := p.tok, p.lit, p.ln
		p.advance()
		p.actionAt("comparison_op", opTok, opLit, opLine)
		p.parseAdditiveExpr()
		p.action("comparison")
	}
}

func (p *Parser) parseFactor() {
	p.enter("factor")
	defer p.leave()

	switch p.tok {
	case token.NUM:
		p.leaf(p.lit)
		p.action("push_const")
		p.advance()

	case token.LPAREN:
		p.advance()
		p.parseExpression()
		p.expect(token.RPAREN)

	case token.MINUS:
		p.advance()
		p.parseFactor()
		p.action("negate")

	case token.IDENT:
		p.leaf(p.lit)
		p.action("push_address")
		p.advance()
		p.action("check_array")
		p.action("check_var")
		p.action("check_function")

		switch p.tok {
		case token.LBRACK:
			p.advance()
			p.parseExpression()
			p.expect(token.RBRACK)
			p.action("array_index")
		case token.LPAREN:
			p.parseCallTail()
		}

	default:
		p.errorf("illegal %#v", p.tok)
		p.advance()
	}
}
