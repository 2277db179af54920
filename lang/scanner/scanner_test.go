package scanner_test

import (
	"testing"

	"github.com/amirsalarsafaei/c-minus-compiler/lang/scanner"
	"github.com/amirsalarsafaei/c-minus-compiler/lang/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []scanner.TokenAndValue {
	t.Helper()
	toks, el := scanner.ScanSource("test.cm", []byte(src))
	require.Empty(t, el)
	return toks
}

func TestScanKeywordsAndSymbols(t *testing.T) {
	toks := scanAll(t, "int x; if (x == 1) { return x; } else { break; }")
	var kinds []token.Token
	for _, tv := range toks {
		kinds = append(kinds, tv.Token)
	}
	require.Equal(t, []token.Token{
		token.INT, token.IDENT, token.SEMI,
		token.IF, token.LPAREN, token.IDENT, token.EQEQ, token.NUM, token.RPAREN,
		token.LBRACE, token.RETURN, token.IDENT, token.SEMI, token.RBRACE,
		token.ELSE, token.LBRACE, token.BREAK, token.SEMI, token.RBRACE,
		token.EOF,
	}, kinds)
}

func TestScanComment(t *testing.T) {
	toks := scanAll(t, "int /* skip\nthis */ x;")
	require.Equal(t, token.INT, toks[0].Token)
	require.Equal(t, token.IDENT, toks[1].Token)
	require.Equal(t, "x", toks[1].Lit)
	require.Equal(t, 2, toks[1].Pos.Line())
}

func TestScanUnclosedComment(t *testing.T) {
	_, el := scanner.ScanSource("test.cm", []byte("int x; /* never closed"))
	require.Len(t, el, 1)
	require.Contains(t, el[0].Msg, "unclosed comment")
}

func TestScanUnmatchedComment(t *testing.T) {
	_, el := scanner.ScanSource("test.cm", []byte("int x; */"))
	require.Len(t, el, 1)
	require.Contains(t, el[0].Msg, "unmatched comment")
}

func TestScanInvalidNumber(t *testing.T) {
	_, el := scanner.ScanSource("test.cm", []byte("int x = 12ab;"))
	require.Len(t, el, 1)
	require.Contains(t, el[0].Msg, "invalid number")
}

func TestScanInvalidInput(t *testing.T) {
	_, el := scanner.ScanSource("test.cm", []byte("int x = 1 @ 2;"))
	require.Len(t, el, 1)
	require.Contains(t, el[0].Msg, "invalid input")
}

func TestScanLineNumbers(t *testing.T) {
	toks := scanAll(t, "int x;\nint y;\n")
	require.Equal(t, 1, toks[0].Pos.Line())
	// IDENT y is the 5th token: int(1) x(2) ;(3) int(4) y(5)
	require.Equal(t, 2, toks[4].Pos.Line())
}
