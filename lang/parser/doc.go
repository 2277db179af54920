// Package parser implements a hand-written recursive-descent parser for
// C-minus. It walks the grammar below and, as each production is
// recognized, drives the code generator by calling
// codegen.Generator.Action with the named action and the current token —
// there is no intermediate AST, the single forward pass over the token
// stream is the whole front-end.
//
// The grammar, with action call sites marked #name:
//
//	program        := #start_program decl-list EOF #end_program
//	decl-list      := decl decl-list | ε
//	decl           := #start_declaration type-spec ID #declaration_id decl-tail
//	type-spec      := ( "int" | "void" ) #declaration_type
//	decl-tail      := ";" #declare_var #end_var_declaration
//	               | #declare_var #declare_array "[" NUM #declare_array_length "]" ";" #end_var_declaration
//	               | "(" #declare_function #start_function_declaration #start_scope
//	                 params ")" fn-body #end_function_declaration #end_scope
//	params         := "void" | param ( "," param )*
//	param          := type-spec ID #param_id ( "[" "]" #param_is_array )? #end_param
//	fn-body        := "{" block-item* "}"
//	block          := #start_scope "{" block-item* "}" #end_scope
//	block-item     := local-var-decl | stmt
//	local-var-decl := #start_declaration type-spec ID #declaration_id
//	                  ( ";" #declare_var
//	                  | #declare_var #declare_array "[" NUM #declare_array_length "]" ";"
//	                  ) #end_var_declaration
//	stmt           := expr-stmt | block | selection-stmt | iteration-stmt
//	               | return-stmt | break-stmt
//	expr-stmt      := ";" | expression #pop_stack ";"
//	selection-stmt := "if" "(" expression ")" #save_if stmt
//	                  ( "else" #if_else_jpf stmt #else_jp | #if_jpf ) #end_if
//	iteration-stmt := "for" "(" expression #pop_stack ";" #start_for expression
//	                  #save_for ";" #start_iterator_expression_mode
//	                  expression #pop_stack #end_iterator_expression_mode ")"
//	                  stmt #end_for
//	return-stmt    := "return" ( ";" | expression #set_return_value ";" ) #jp_ra
//	break-stmt     := "break" ";" #break_loop
//	expression     := ID #push_address assign-or-continuation | simple-expr
//	assign-or-continuation :=
//	                  ( "[" expression "]" #array_index )?
//	                  ( "=" expression #assign
//	                  | call-tail? expr-continuation )
//	call-tail      := #start_function_call "(" args ")" #end_function_call
//	args           := ε | expression #add_arg ( "," expression #add_arg )*
//	expr-continuation := term-rest additive-rest relop-rest
//	simple-expr    := additive-expr relop-rest
//	additive-expr  := term additive-rest
//	additive-rest  := ( ("+"|"-") #arith_op term #arith )*
//	term           := factor term-rest
//	term-rest      := ( "*" factor #mult )*
//	relop-rest     := ( ("<"|"==") #comparison_op additive-expr #comparison )?
//	factor         := NUM #push_const | "(" expression ")" | "-" factor #negate
//	               | ID #push_address ( "[" expression "]" #array_index
//	                                  | call-tail )?
//
// The grammar is LL(1); the recursive-descent walk fires actions at exactly
// the points a table-driven predictive parser would encounter the #name
// stack symbols, in the same order.
package parser
