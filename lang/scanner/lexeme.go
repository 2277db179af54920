package scanner

import (
	"strconv"
	"strings"

	"github.com/amirsalarsafaei/c-minus-compiler/lang/token"
)

// keywordOrder is the order the language's reserved words are
// pre-registered in the lexeme table, before any source is read.
var keywordOrder = []string{"if", "else", "void", "int", "for", "break", "return"}

// LexemeTable is the numbered, append-ordered table of distinct lexemes
// backing symbol_table.txt: keywords pre-registered, followed by every
// distinct identifier in order of first appearance.
type LexemeTable struct {
	entries []string
	seen    map[string]bool
}

// NewLexemeTable returns a table pre-populated with the language's
// keywords.
func NewLexemeTable() *LexemeTable {
	t := &LexemeTable{seen: make(map[string]bool, 16)}
	for _, kw := range keywordOrder {
		t.add(kw)
	}
	return t
}

func (t *LexemeTable) add(lex string) {
	if t.seen[lex] {
		return
	}
	t.seen[lex] = true
	t.entries = append(t.entries, lex)
}

// BuildLexemeTable derives the lexeme table from a fully scanned token
// stream.
func BuildLexemeTable(toks []TokenAndValue) *LexemeTable {
	t := NewLexemeTable()
	for _, tv := range toks {
		if tv.Token == token.IDENT {
			t.add(tv.Lit)
		}
	}
	return t
}

// Render formats the table as a 1-based numbered list, one lexeme per
// line.
func (t *LexemeTable) Render() string {
	var sb strings.Builder
	for i, e := range t.entries {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(e)
		sb.WriteByte('\n')
	}
	return sb.String()
}
