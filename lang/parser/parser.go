package parser

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/amirsalarsafaei/c-minus-compiler/lang/codegen"
	"github.com/amirsalarsafaei/c-minus-compiler/lang/scanner"
	"github.com/amirsalarsafaei/c-minus-compiler/lang/token"
)

// SyntaxError is a single non-fatal diagnostic raised while parsing,
// attributed to a source line, matching the collect-and-continue error
// model the rest of the pipeline uses.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e SyntaxError) String() string { return fmt.Sprintf("#%d : syntax error, %s", e.Line, e.Msg) }

// Parser walks a token stream, drives a codegen.Generator through its
// semantic actions, and builds a minimal parse tree alongside.
type Parser struct {
	gen *codegen.Generator

	toks []scanner.TokenAndValue
	pos  int

	tok token.Token
	lit string
	ln  int

	errs []SyntaxError
	tree *TreeNode
}

// New returns a parser ready to walk toks against gen. toks must end with an
// EOF token, as returned by scanner.ScanSource/ScanFile.
func New(toks []scanner.TokenAndValue, gen *codegen.Generator) *Parser {
	p := &Parser{gen: gen, toks: toks, tree: &TreeNode{Label: "program"}}
	p.fill()
	return p
}

func (p *Parser) fill() {
	tv := p.toks[p.pos]
	p.tok, p.lit, p.ln = tv.Token, tv.Lit, tv.Pos.Line()
}

// advance consumes the current token and loads the next one. It never
// advances past the trailing EOF token.
func (p *Parser) advance() {
	if p.tok == token.EOF {
		return
	}
	p.pos++
	p.fill()
}

// action calls the generator with the current token's category, literal
// and line.
func (p *Parser) action(name string) bool {
	return p.gen.Action(name, codegen.Token{Category: p.tok.Category(), Lexeme: p.lit, Line: p.ln})
}

// actionAt calls the generator with an explicit (category, lexeme, line)
// triple, used when the action must reference a token already consumed
// (e.g. the operator captured by arith_op/comparison_op).
func (p *Parser) actionAt(name string, tok token.Token, lit string, line int) bool {
	return p.gen.Action(name, codegen.Token{Category: tok.Category(), Lexeme: lit, Line: line})
}

// expect consumes the current token if it matches want, reporting a
// mismatch syntax error and forcibly consuming one token otherwise
// (panic-mode recovery: always make progress rather than loop forever).
// It returns the consumed token's literal and line.
func (p *Parser) expect(want token.Token) (lit string, line int) {
	if p.tok != want {
		p.errorf("missing %#v", want)
		lit, line = p.lit, p.ln
		p.advance()
		return lit, line
	}
	lit, line = p.lit, p.ln
	p.advance()
	return lit, line
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errs = append(p.errs, SyntaxError{Line: p.ln, Msg: fmt.Sprintf(format, args...)})
}

// enter pushes a new parse-tree node labeled label as a child of the
// current node, and descends into it.
func (p *Parser) enter(label string) {
	child := &TreeNode{Label: label}
	p.tree.Children = append(p.tree.Children, child)
	child.parent = p.tree
	p.tree = child
}

// leaf appends a terminal node (no children) under the current node.
func (p *Parser) leaf(label string) {
	p.tree.Children = append(p.tree.Children, &TreeNode{Label: label})
}

// leave returns to the parent of the current parse-tree node.
func (p *Parser) leave() {
	if p.tree.parent != nil {
		p.tree = p.tree.parent
	}
}

// Errors returns the syntax errors collected while parsing, sorted by line.
func (p *Parser) Errors() []SyntaxError {
	out := make([]SyntaxError, len(p.errs))
	copy(out, p.errs)
	slices.SortStableFunc(out, func(a, b SyntaxError) int { return a.Line - b.Line })
	return out
}

// RenderErrors formats the collected syntax errors one per line, or the
// no-syntax-error message if there are none, matching the semantic error
// stream's own convention.
func (p *Parser) RenderErrors() string {
	errs := p.Errors()
	if len(errs) == 0 {
		return "There is no syntax error."
	}
	var sb strings.Builder
	for _, e := range errs {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Tree returns the root of the parse tree built while parsing.
func (p *Parser) Tree() *TreeNode { return p.tree }

// Parse walks the full program grammar, driving the generator and
// recording the parse tree. Call Errors/RenderErrors and Tree afterwards to
// retrieve diagnostics and the tree.
func (p *Parser) Parse() {
	p.action("start_program")
	for p.tok != token.EOF {
		if p.tok != token.INT && p.tok != token.VOID {
			p.errorf("illegal %#v", p.tok)
			p.advance()
			continue
		}
		p.parseDecl()
	}
	p.action("end_program")
}
