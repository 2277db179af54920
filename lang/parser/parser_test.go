package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amirsalarsafaei/c-minus-compiler/lang/codegen"
	"github.com/amirsalarsafaei/c-minus-compiler/lang/parser"
	"github.com/amirsalarsafaei/c-minus-compiler/lang/scanner"
)

func parse(t *testing.T, src string) *parser.Parser {
	t.Helper()
	toks, errs := scanner.ScanSource("t.c", []byte(src))
	require.Empty(t, errs)
	p := parser.New(toks, codegen.NewGenerator())
	p.Parse()
	return p
}

func TestParseMinimalProgramHasNoSyntaxErrors(t *testing.T) {
	p := parse(t, `
void main(void) {
	output(1);
}
`)
	require.Equal(t, "There is no syntax error.", p.RenderErrors())
	require.Contains(t, p.Tree().Render(), "program")
}

func TestParseMissingSemicolonIsSyntaxError(t *testing.T) {
	p := parse(t, `
void main(void) {
	output(1)
}
`)
	errs := p.Errors()
	require.NotEmpty(t, errs)
}

func TestParseArrayDeclarationAndIndex(t *testing.T) {
	p := parse(t, `
int a[10];
void main(void) {
	a[0] = 1;
}
`)
	require.Equal(t, "There is no syntax error.", p.RenderErrors())
}

func TestParseNestedBlocksAndFunctionCall(t *testing.T) {
	p := parse(t, `
int add(int a, int b) {
	return a + b;
}
void main(void) {
	int x;
	x = add(1, 2);
	if (x < 10) {
		output(x);
	} else {
		output(0);
	}
}
`)
	require.Equal(t, "There is no syntax error.", p.RenderErrors())
}

func TestParseForLoopGrammar(t *testing.T) {
	p := parse(t, `
void main(void) {
	int i;
	for (i = 0; i < 10; i = i + 1)
		output(i);
}
`)
	require.Equal(t, "There is no syntax error.", p.RenderErrors())
}

func TestParseIllegalTopLevelTokenRecovers(t *testing.T) {
	p := parse(t, `
;
void main(void) {
}
`)
	require.NotEmpty(t, p.Errors())
}
