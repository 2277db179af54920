package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tk(category, lexeme string, line int) Token {
	return Token{Category: category, Lexeme: lexeme, Line: line}
}

// TestValueAndTypeStacksStayParallel runs a representative action sequence
// touching every stack-shape operation (push_address, push_const,
// array_index, assign, arith, negate, comparison, pop_stack) and checks
// that the value and type stacks have the same length after every single
// action — they are pushed and popped strictly in tandem.
func TestValueAndTypeStacksStayParallel(t *testing.T) {
	g := NewGenerator()

	steps := []struct {
		name string
		tok  Token
	}{
		{"start_program", tk("", "", 0)},
		{"start_declaration", tk("KEYWORD", "void", 1)},
		{"declaration_type", tk("KEYWORD", "void", 1)},
		{"declaration_id", tk("ID", "main", 1)},
		{"declare_function", tk("SYMBOL", "(", 1)},
		{"start_function_declaration", tk("SYMBOL", "(", 1)},
		{"start_scope", tk("SYMBOL", "(", 1)},

		// int a;
		{"start_declaration", tk("KEYWORD", "int", 2)},
		{"declaration_type", tk("KEYWORD", "int", 2)},
		{"declaration_id", tk("ID", "a", 2)},
		{"declare_var", tk("SYMBOL", ";", 2)},
		{"end_var_declaration", tk("SYMBOL", ";", 2)},

		// int b[2];
		{"start_declaration", tk("KEYWORD", "int", 3)},
		{"declaration_type", tk("KEYWORD", "int", 3)},
		{"declaration_id", tk("ID", "b", 3)},
		{"declare_var", tk("SYMBOL", "[", 3)},
		{"declare_array", tk("SYMBOL", "[", 3)},
		{"declare_array_length", tk("NUM", "2", 3)},
		{"end_var_declaration", tk("SYMBOL", ";", 3)},

		// a = 2;
		{"push_address", tk("ID", "a", 4)},
		{"push_const", tk("NUM", "2", 4)},
		{"assign", tk("SYMBOL", ";", 4)},
		{"pop_stack", tk("SYMBOL", ";", 4)},

		// b[1] = a + 3;
		{"push_address", tk("ID", "b", 5)},
		{"push_const", tk("NUM", "1", 5)},
		{"array_index", tk("SYMBOL", "]", 5)},
		{"push_address", tk("ID", "a", 5)},
		{"arith_op", tk("SYMBOL", "+", 5)},
		{"push_const", tk("NUM", "3", 5)},
		{"arith", tk("SYMBOL", ";", 5)},
		{"assign", tk("SYMBOL", ";", 5)},
		{"pop_stack", tk("SYMBOL", ";", 5)},

		// a < -a;
		{"push_address", tk("ID", "a", 6)},
		{"comparison_op", tk("SYMBOL", "<", 6)},
		{"push_address", tk("ID", "a", 6)},
		{"negate", tk("SYMBOL", ";", 6)},
		{"comparison", tk("SYMBOL", ";", 6)},
		{"pop_stack", tk("SYMBOL", ";", 6)},

		// b + a; (type mismatch: arith pushes an unknown dummy instead)
		{"push_address", tk("ID", "b", 7)},
		{"arith_op", tk("SYMBOL", "+", 7)},
		{"push_address", tk("ID", "a", 7)},
		{"arith", tk("SYMBOL", ";", 7)},
		{"pop_stack", tk("SYMBOL", ";", 7)},

		{"end_function_declaration", tk("SYMBOL", "}", 8)},
		{"end_scope", tk("SYMBOL", "}", 8)},
		{"end_program", tk("", "", 0)},
	}

	for _, st := range steps {
		g.Action(st.name, st.tok)
		require.Equal(t, len(g.valueStack), len(g.typeStack),
			"value and type stacks diverged after %s", st.name)
	}
	require.Empty(t, g.valueStack, "statement-level expressions must leave nothing behind")
}
