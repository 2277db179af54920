package codegen

import (
	"strconv"

	"github.com/dolthub/swiss"
)

// Token is the (token_type, lexeme, line) triple the parser hands to
// Action. Category mirrors the scanner's coarse token categories
// ("KEYWORD", "ID", "NUM", "SYMBOL", "END_OF_FILE"); the actions themselves
// read only Lexeme and Line (declaration_type, comparison_op and arith_op
// branch on Lexeme).
type Token struct {
	Category string
	Lexeme   string
	Line     int
}

// Generator is the stack-based semantic-action engine: one instance holds
// all state for a single source file's code generation.
type Generator struct {
	Program *Program
	Symtab  *SymbolTable

	temp *tempAllocator
	errs errorCollector

	valueStack []Address
	typeStack  []SymbolType

	arithOpStack []string // "+" / "-", pushed by arith_op, popped by arith
	lastOperator string    // "<" / "==", set by comparison_op, read by comparison

	scope int

	declStack []*pendingDecl
	funcStack []*FuncDecl
	loopStack []*LoopDetails
	ifStack   []*IfDetails
	callStack []*FunctionCallDetails

	funcMap *swiss.Map[string, *FuncDecl]

	lastVariable      string
	lastVariableEntry *Entry // resolved entry for lastVariable, nil if undefined

	iteratorMode   bool // currently capturing a for-loop's step expression
	iteratorReplay bool // currently replaying a captured step expression
	replayLine     int  // line attribution while iteratorReplay is set
}

// pendingDecl accumulates a declaration's fields between start_declaration
// and the action that commits it (end_var_declaration or
// start_function_declaration).
type pendingDecl struct {
	dataType DataType
	lexeme   string
	symType  SymbolType
	address  Address
	size     int
	isParam  bool
	isArray  bool
}

// NewGenerator returns a code generator with an empty program buffer and
// symbol table. The two reserved instructions and the "output" builtin (at
// scope 0) are added by the start_program action.
func NewGenerator() *Generator {
	return &Generator{
		Program: NewProgram(),
		Symtab:  NewSymbolTable(),
		temp:    newTempAllocator(),
		funcMap: swiss.NewMap[string, *FuncDecl](8),
	}
}

func (g *Generator) declareOutputBuiltin() {
	// The builtin's parameter never gets a memory cell: a call to output
	// short-circuits into a PRINT of the actual argument, so no assign into
	// a parameter address is ever emitted.
	arg := &ArgDecl{ArgType: SymVariable, Address: unknownAddress}
	fd := &FuncDecl{
		Name:     "output",
		DataType: DataVoid,
		PBIdx:    -1, // never called through the normal call sequence
		Scope:    0,
		Args:     []*ArgDecl{arg},
	}
	g.funcMap.Put("output", fd)
	g.Symtab.Append(&Entry{
		Scope:    0,
		Lexeme:   "output",
		SymType:  SymFunction,
		DataType: DataVoid,
		Func:     fd,
	})
}

// pushStack pushes addr/typ onto the parallel value and type stacks.
func (g *Generator) pushStack(addr Address, typ SymbolType) {
	g.valueStack = append(g.valueStack, addr)
	g.typeStack = append(g.typeStack, typ)
}

// popStack pops and returns the top of the parallel value and type stacks.
func (g *Generator) popStack() (Address, SymbolType) {
	n := len(g.valueStack)
	addr, typ := g.valueStack[n-1], g.typeStack[n-1]
	g.valueStack = g.valueStack[:n-1]
	g.typeStack = g.typeStack[:n-1]
	return addr, typ
}

func (g *Generator) peekStack() (Address, SymbolType) {
	n := len(g.valueStack)
	return g.valueStack[n-1], g.typeStack[n-1]
}

// line returns the line number to attribute an error raised for tok to.
func (g *Generator) line(tok Token) int {
	if g.iteratorReplay {
		return g.replayLine
	}
	return tok.Line
}

func (g *Generator) curFunc() *FuncDecl {
	if len(g.funcStack) == 0 {
		return nil
	}
	return g.funcStack[len(g.funcStack)-1]
}

// save emits the caller-save sequence for the memory cell at addr: push
// its value onto the explicit runtime stack.
func (g *Generator) save(addr Address) {
	g.Program.Append(Code{Op: ASSIGN, A: immediateAddr(addr.Text), B: indirectAddr("0")})
	g.Program.Append(Code{Op: ADD, A: immediateAddr("0"), B: constAddr("4"), C: immediateAddr("0")})
}

// restore emits the matching caller-restore sequence for addr.
func (g *Generator) restore(addr Address) {
	g.Program.Append(Code{Op: SUB, A: immediateAddr("0"), B: constAddr("4"), C: immediateAddr("0")})
	g.Program.Append(Code{Op: ASSIGN, A: indirectAddr("0"), B: immediateAddr(addr.Text)})
}

// isConst reports whether addr should be skipped by the save/restore
// convention (constants never need to survive a call: they are not stored
// anywhere to begin with).
func isConst(addr Address) bool { return addr.Kind == CONST }

func idxAddr(idx int) Address { return constAddr(strconv.Itoa(idx)) }

// HasErrors reports whether any semantic error was raised during
// generation.
func (g *Generator) HasErrors() bool { return g.errs.hasErrors() }

// Errors returns the collected semantic errors, sorted by line.
func (g *Generator) Errors() []SemanticError { return g.errs.sorted() }

// ErrorsText renders the semantic-errors stream: one line per error sorted
// by line number, or the "semantically correct" message if there were
// none.
func (g *Generator) ErrorsText() string { return g.errs.Render() }

// ProgramText renders the program stream: the serialized instruction
// buffer if generation succeeded, or the has-not-been-generated message
// otherwise.
func (g *Generator) ProgramText() string {
	if g.errs.hasErrors() {
		return "The code has not been generated."
	}
	return g.Program.Serialize()
}

// MainDeclared reports whether a "main" function was declared. Without one
// the startup jump at index 1 is left unpatched, so the driver uses this to
// report the program as not generated instead of emitting a broken jump.
func (g *Generator) MainDeclared() bool {
	_, ok := g.funcMap.Get("main")
	return ok
}

// SymbolTableEntries exposes the live (non-popped) symbol table entries
// for diagnostic dumps.
func (g *Generator) SymbolTableEntries() []*Entry { return g.Symtab.Entries() }
