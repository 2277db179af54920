package parser

import "github.com/amirsalarsafaei/c-minus-compiler/lang/token"

// parseTypeSpec consumes "int" or "void" and fires declaration_type.
func (p *Parser) parseTypeSpec() {
	p.enter("type-spec")
	defer p.leave()

	if p.tok != token.INT && p.tok != token.VOID {
		p.errorf("illegal %#v", p.tok)
	}
	p.leaf(p.tok.String())
	p.action("declaration_type")
	p.advance()
}

// parseDecl parses one top-level declaration: a global variable, a global
// array, or a function definition.
func (p *Parser) parseDecl() {
	p.enter("decl")
	defer p.leave()

	p.action("start_declaration")
	p.parseTypeSpec()

	p.leaf(p.lit)
	p.action("declaration_id")
	p.expect(token.IDENT)

	switch p.tok {
	case token.LBRACK:
		p.parseArrayTail()
		p.action("end_var_declaration")

	case token.LPAREN:
		p.action("declare_function")
		p.action("start_function_declaration")
		p.action("start_scope")
		p.advance()
		p.parseParams()
		p.expect(token.RPAREN)
		p.parseFnBody()
		p.action("end_function_declaration")
		p.action("end_scope")

	default:
		p.action("check_declaration_var")
		p.action("declare_var")
		p.expect(token.SEMI)
		p.action("end_var_declaration")
	}
}

// parseArrayTail parses "[" NUM "]" ";" once the base type and identifier
// have already been consumed. declare_var runs first so the base cell is
// allocated and zero-initialized through the same path as a scalar, then
// declare_array retags that cell's address as the array's constant base.
// Does not fire end_var_declaration: callers (parseDecl and
// parseLocalVarDecl) share this helper but commit at different points in
// their own grammar productions.
func (p *Parser) parseArrayTail() {
	p.action("check_declaration_var")
	p.action("declare_var")
	p.action("declare_array")
	p.expect(token.LBRACK)
	lit, line := p.expect(token.NUM)
	p.leaf(lit)
	p.actionAt("declare_array_length", token.NUM, lit, line)
	p.expect(token.RBRACK)
	p.expect(token.SEMI)
}

// parseParams parses the function parameter list: "void" for no parameters,
// or a comma-separated list of params.
func (p *Parser) parseParams() {
	p.enter("params")
	defer p.leave()

	if p.tok == token.VOID {
		p.leaf("void")
		p.advance()
		return
	}

	p.parseParam()
	for p.tok == token.COMMA {
		p.advance()
		p.parseParam()
	}
}

func (p *Parser) parseParam() {
	p.enter("param")
	defer p.leave()

	p.parseTypeSpec()
	p.leaf(p.lit)
	p.action("param_id")
	p.expect(token.IDENT)

	if p.tok == token.LBRACK {
		p.advance()
		p.expect(token.RBRACK)
		p.action("param_is_array")
	}
	p.action("end_param")
}

func (p *Parser) parseFnBody() {
	p.enter("fn-body")
	defer p.leave()

	p.expect(token.LBRACE)
	for p.tok != token.RBRACE && p.tok != token.EOF {
		p.parseBlockItem()
	}
	p.expect(token.RBRACE)
}

// parseBlock parses a nested `{ ... }` block, bracketed by its own scope.
func (p *Parser) parseBlock() {
	p.enter("block")
	defer p.leave()

	p.action("start_scope")
	p.expect(token.LBRACE)
	for p.tok != token.RBRACE && p.tok != token.EOF {
		p.parseBlockItem()
	}
	p.expect(token.RBRACE)
	p.action("end_scope")
}

func (p *Parser) parseBlockItem() {
	if p.tok == token.INT || p.tok == token.VOID {
		p.parseLocalVarDecl()
		return
	}
	if isStmtStart(p.tok) {
		p.parseStmt()
		return
	}
	p.errorf("illegal %#v", p.tok)
	p.advance()
}

func (p *Parser) parseLocalVarDecl() {
	p.enter("local-var-decl")
	defer p.leave()

	p.action("start_declaration")
	p.parseTypeSpec()

	p.leaf(p.lit)
	p.action("declaration_id")
	p.expect(token.IDENT)

	if p.tok == token.LBRACK {
		p.parseArrayTail()
	} else {
		p.action("check_declaration_var")
		p.action("declare_var")
		p.expect(token.SEMI)
	}
	p.action("end_var_declaration")
}

func isStmtStart(tok token.Token) bool {
	switch tok {
	case token.SEMI, token.LBRACE, token.IF, token.FOR, token.RETURN, token.BREAK,
		token.IDENT, token.NUM, token.LPAREN, token.MINUS:
		return true
	default:
		return false
	}
}
