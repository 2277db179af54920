package codegen_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amirsalarsafaei/c-minus-compiler/lang/codegen"
)

// TestCallSequenceSavesAndRestoresLiveLocalsByValue drives a real,
// error-free call to a user-defined, non-output function while a local of
// the caller is still live (on the value stack as the pending assignment
// target, and in the caller's scope), for:
//
//	int add(int a, int b) { return a + b; }
//	void main(void) { int x; x = add(1, 2); }
//
// and checks that the emitted caller-save/restore instructions read and
// write the variable's *value* (an IMMEDIATE operand, rendered as a bare
// address) rather than its address as a numeral (a CONST operand, rendered
// "#N").
func TestCallSequenceSavesAndRestoresLiveLocalsByValue(t *testing.T) {
	g := codegen.NewGenerator()
	g.Action("start_program", tok("", "", 0))

	// int add(int a, int b) { return a + b; }
	g.Action("start_declaration", tok("KEYWORD", "int", 1))
	g.Action("declaration_type", tok("KEYWORD", "int", 1))
	g.Action("declaration_id", tok("ID", "add", 1))
	g.Action("declare_function", tok("SYMBOL", "(", 1))
	g.Action("start_function_declaration", tok("SYMBOL", "(", 1))
	g.Action("start_scope", tok("SYMBOL", "(", 1))
	g.Action("param_id", tok("ID", "a", 1))
	g.Action("end_param", tok("SYMBOL", ",", 1))
	g.Action("param_id", tok("ID", "b", 1))
	g.Action("end_param", tok("SYMBOL", ")", 1))
	g.Action("push_address", tok("ID", "a", 1))
	g.Action("push_address", tok("ID", "b", 1))
	g.Action("arith_op", tok("SYMBOL", "+", 1))
	g.Action("arith", tok("SYMBOL", ";", 1))
	g.Action("set_return_value", tok("SYMBOL", ";", 1))
	g.Action("jp_ra", tok("SYMBOL", ";", 1))
	g.Action("end_function_declaration", tok("SYMBOL", "}", 1))
	g.Action("end_scope", tok("SYMBOL", "}", 1))

	// void main(void) { int x; x = add(1, 2); }
	declareVoidMain(g)
	g.Action("start_declaration", tok("KEYWORD", "int", 2))
	g.Action("declaration_type", tok("KEYWORD", "int", 2))
	g.Action("declaration_id", tok("ID", "x", 2))
	g.Action("declare_var", tok("SYMBOL", ";", 2))
	g.Action("end_var_declaration", tok("SYMBOL", ";", 2))

	entries := g.SymbolTableEntries()
	xAddr := entries[len(entries)-1].Address.Text

	g.Action("push_address", tok("ID", "x", 3))
	g.Action("push_address", tok("ID", "add", 3))
	g.Action("start_function_call", tok("SYMBOL", "(", 3))
	g.Action("push_const", tok("NUM", "1", 3))
	g.Action("add_arg", tok("SYMBOL", ",", 3))
	g.Action("push_const", tok("NUM", "2", 3))
	g.Action("add_arg", tok("SYMBOL", ")", 3))
	g.Action("end_function_call", tok("SYMBOL", ")", 3))
	g.Action("assign", tok("SYMBOL", ";", 3))
	g.Action("pop_stack", tok("SYMBOL", ";", 3))

	g.Action("end_function_declaration", tok("SYMBOL", "}", 3))
	g.Action("end_scope", tok("SYMBOL", "}", 3))
	g.Action("end_program", tok("", "", 0))

	require.False(t, g.HasErrors(), "unexpected semantic errors: %v", g.Errors())

	out := g.ProgramText()
	require.NotEmpty(t, out)

	saveLine := fmt.Sprintf("ASSIGN, %s, @0, )", xAddr)
	restoreLine := fmt.Sprintf("ASSIGN, @0, %s, )", xAddr)

	require.Contains(t, out, saveLine,
		"caller-save must write the live local's current value (an IMMEDIATE operand) onto the runtime stack")
	require.Contains(t, out, restoreLine,
		"caller-restore must write the popped value back into the live local's own cell (an IMMEDIATE operand)")

	// x is live both as a scope symbol and as the pending assignment target
	// on the value stack, so it is saved/restored once for each.
	require.GreaterOrEqual(t, strings.Count(out, saveLine), 2)
	require.GreaterOrEqual(t, strings.Count(out, restoreLine), 2)

	// The regression this guards against: save/restore re-tagging the
	// operand as CONST, which would render "#<addr>" (the literal number
	// addr) instead of "<addr>" (the cell's current value).
	require.NotContains(t, out, "#"+xAddr)
}

// TestCallParamTypeMismatchReportsFirstOnly drives
//
//	int f(int a, int b) { return a; }
//	void main(void) { int x[2]; f(x, x); }
//
// where both actual arguments mismatch their declared parameter type, and
// checks that exactly one error is reported — the first mismatched
// argument ends the check for that call.
func TestCallParamTypeMismatchReportsFirstOnly(t *testing.T) {
	g := codegen.NewGenerator()
	g.Action("start_program", tok("", "", 0))

	// int f(int a, int b) { return a; }
	g.Action("start_declaration", tok("KEYWORD", "int", 1))
	g.Action("declaration_type", tok("KEYWORD", "int", 1))
	g.Action("declaration_id", tok("ID", "f", 1))
	g.Action("declare_function", tok("SYMBOL", "(", 1))
	g.Action("start_function_declaration", tok("SYMBOL", "(", 1))
	g.Action("start_scope", tok("SYMBOL", "(", 1))
	g.Action("param_id", tok("ID", "a", 1))
	g.Action("end_param", tok("SYMBOL", ",", 1))
	g.Action("param_id", tok("ID", "b", 1))
	g.Action("end_param", tok("SYMBOL", ")", 1))
	g.Action("push_address", tok("ID", "a", 1))
	g.Action("set_return_value", tok("SYMBOL", ";", 1))
	g.Action("jp_ra", tok("SYMBOL", ";", 1))
	g.Action("end_function_declaration", tok("SYMBOL", "}", 1))
	g.Action("end_scope", tok("SYMBOL", "}", 1))

	// void main(void) { int x[2]; f(x, x); }
	declareVoidMain(g)
	g.Action("start_declaration", tok("KEYWORD", "int", 2))
	g.Action("declaration_type", tok("KEYWORD", "int", 2))
	g.Action("declaration_id", tok("ID", "x", 2))
	g.Action("declare_var", tok("SYMBOL", "[", 2))
	g.Action("declare_array", tok("SYMBOL", "[", 2))
	g.Action("declare_array_length", tok("NUM", "2", 2))
	g.Action("end_var_declaration", tok("SYMBOL", ";", 2))

	g.Action("push_address", tok("ID", "f", 3))
	g.Action("start_function_call", tok("SYMBOL", "(", 3))
	g.Action("push_address", tok("ID", "x", 3))
	g.Action("add_arg", tok("SYMBOL", ",", 3))
	g.Action("push_address", tok("ID", "x", 3))
	g.Action("add_arg", tok("SYMBOL", ")", 3))
	g.Action("end_function_call", tok("SYMBOL", ")", 3))
	g.Action("pop_stack", tok("SYMBOL", ";", 3))

	g.Action("end_function_declaration", tok("SYMBOL", "}", 3))
	g.Action("end_scope", tok("SYMBOL", "}", 3))
	g.Action("end_program", tok("", "", 0))

	require.True(t, g.HasErrors())
	errs := g.Errors()
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Msg, "Mismatch in type of argument 1 of 'f'")
	require.Contains(t, errs[0].Msg, "Expected 'int' but got 'array' instead")
}
