package codegen

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// SemanticError is a single non-fatal diagnostic raised while generating
// code, attributed to a source line.
type SemanticError struct {
	Line int
	Msg  string
}

func (e SemanticError) String() string {
	return fmt.Sprintf("#%d : Semantic Error! %s.", e.Line, e.Msg)
}

type errorCollector struct {
	errs []SemanticError
}

func (c *errorCollector) add(line int, msg string) {
	c.errs = append(c.errs, SemanticError{Line: line, Msg: msg})
}

func (c *errorCollector) hasErrors() bool { return len(c.errs) > 0 }

// sorted returns the collected errors ordered by line number. Ties keep
// their original relative order.
func (c *errorCollector) sorted() []SemanticError {
	out := make([]SemanticError, len(c.errs))
	copy(out, c.errs)
	slices.SortStableFunc(out, func(a, b SemanticError) int { return a.Line - b.Line })
	return out
}

// Render formats the collected errors one per line, or the
// "semantically correct" message if there are none.
func (c *errorCollector) Render() string {
	if !c.hasErrors() {
		return "The input program is semantically correct"
	}
	var sb strings.Builder
	for _, e := range c.sorted() {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Error message builders, one per diagnostic kind.

func errScoping(lexeme string) string {
	return fmt.Sprintf("'%s' is not defined", lexeme)
}

func errVoidType(lexeme string) string {
	return fmt.Sprintf("Illegal type of void for '%s'", lexeme)
}

func errFunctionParamNumber(lexeme string) string {
	return fmt.Sprintf("Mismatch in numbers of arguments of '%s'", lexeme)
}

func errBreak() string {
	return "No 'for' found for 'break'"
}

func errTypeMismatch(got, expected SymbolType) string {
	return fmt.Sprintf("Type mismatch in operands, Got %s instead of %s", got.TypeName(), expected.TypeName())
}

func errFunctionParamTypeMismatch(argNum int, lexeme string, expected, got SymbolType) string {
	return fmt.Sprintf("Mismatch in type of argument %d of '%s'. Expected '%s' but got '%s' instead",
		argNum, lexeme, expected.TypeName(), got.TypeName())
}
