// Package driver wires the scanner, parser and code generator into a
// single-pass pipeline and renders the output streams: tokens, lexical
// errors, syntax errors, symbol table, parse tree, program (or "not
// generated"), and semantic errors.
package driver

import (
	"fmt"
	"strings"

	"github.com/amirsalarsafaei/c-minus-compiler/lang/codegen"
	"github.com/amirsalarsafaei/c-minus-compiler/lang/parser"
	"github.com/amirsalarsafaei/c-minus-compiler/lang/scanner"
)

// Result holds the rendered contents of every output stream, ready to be
// written to files or any other sink.
type Result struct {
	Tokens         string
	LexicalErrors  string
	SyntaxErrors   string
	SymbolTable    string
	ParseTree      string
	Output         string
	SemanticErrors string
}

// Compile runs the full scanner -> parser -> codegen pipeline over src
// (named filename for error attribution) and renders every output stream.
// It never fails outright: lexical, syntax and semantic errors are all
// collected and reported in their respective streams.
func Compile(filename string, src []byte) Result {
	toks, lexErrs := scanner.ScanSource(filename, src)

	gen := codegen.NewGenerator()
	p := parser.New(toks, gen)
	p.Parse()

	var res Result
	res.Tokens = renderTokens(toks)
	res.LexicalErrors = renderLexicalErrors(lexErrs)
	res.SyntaxErrors = p.RenderErrors()
	res.SymbolTable = scanner.BuildLexemeTable(toks).Render()
	res.ParseTree = p.Tree().Render()
	res.SemanticErrors = gen.ErrorsText()

	if !gen.MainDeclared() {
		res.Output = "The code has not been generated."
	} else {
		res.Output = gen.ProgramText()
	}
	return res
}

func renderTokens(toks []scanner.TokenAndValue) string {
	var sb strings.Builder
	for _, tv := range toks {
		if tv.Token.Category() == "END_OF_FILE" {
			continue
		}
		fmt.Fprintf(&sb, "%d\t(%s, %s)\n", tv.Pos.Line(), tv.Token.Category(), tv.Lit)
	}
	return sb.String()
}

func renderLexicalErrors(el scanner.ErrorList) string {
	if len(el) == 0 {
		return "There is no lexical error.\n"
	}
	var sb strings.Builder
	for _, e := range el {
		fmt.Fprintf(&sb, "#%d : Lexical Error! %s.\n", e.Pos.Line, e.Msg)
	}
	return sb.String()
}
