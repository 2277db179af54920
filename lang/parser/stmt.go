package parser

import "github.com/amirsalarsafaei/c-minus-compiler/lang/token"

func (p *Parser) parseStmt() {
	switch p.tok {
	case token.SEMI:
		p.enter("expr-stmt")
		p.advance()
		p.leave()
	case token.LBRACE:
		p.parseBlock()
	case token.IF:
		p.parseSelectionStmt()
	case token.FOR:
		p.parseIterationStmt()
	case token.RETURN:
		p.parseReturnStmt()
	case token.BREAK:
		p.parseBreakStmt()
	default:
		p.parseExprStmt()
	}
}

func (p *Parser) parseExprStmt() {
	p.enter("expr-stmt")
	defer p.leave()

	p.parseExpression()
	p.action("pop_stack")
	p.expect(token.SEMI)
}

func (p *Parser) parseSelectionStmt() {
	p.enter("selection-stmt")
	defer p.leave()

	p.expect(token.IF)
	p.expect(token.LPAREN)
	p.parseExpression()
	p.expect(token.RPAREN)
	p.action("save_if")

	p.parseStmt()

	if p.tok == token.ELSE {
		p.action("if_else_jpf")
		p.advance()
		p.parseStmt()
		p.action("else_jp")
	} else {
		p.action("if_jpf")
	}
	p.action("end_if")
}

func (p *Parser) parseIterationStmt() {
	p.enter("iteration-stmt")
	defer p.leave()

	p.expect(token.FOR)
	p.expect(token.LPAREN)

	p.parseExpression()
	p.action("pop_stack")
	p.expect(token.SEMI)
	p.action("start_for")

	p.parseExpression()
	p.action("save_for")
	p.expect(token.SEMI)

	p.action("start_iterator_expression_mode")
	p.parseExpression()
	p.action("pop_stack")
	p.action("end_iterator_expression_mode")
	p.expect(token.RPAREN)

	p.parseStmt()
	p.action("end_for")
}

func (p *Parser) parseReturnStmt() {
	p.enter("return-stmt")
	defer p.leave()

	p.expect(token.RETURN)
	if p.tok == token.SEMI {
		p.action("check_return_void")
		p.advance()
	} else {
		p.action("check_return_non_void")
		p.parseExpression()
		p.action("set_return_value")
		p.expect(token.SEMI)
	}
	p.action("jp_ra")
}

func (p *Parser) parseBreakStmt() {
	p.enter("break-stmt")
	defer p.leave()

	p.expect(token.BREAK)
	p.expect(token.SEMI)
	p.action("break_loop")
}
