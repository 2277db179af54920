package codegen

import (
	"github.com/dolthub/swiss"
)

// SymbolType is the kind of thing a symbol-table entry denotes.
type SymbolType int

const (
	SymUnknown SymbolType = iota
	SymVariable
	SymArray
	SymFunction
)

// TypeName renders the symbol type the way it appears in error messages.
func (t SymbolType) TypeName() string {
	switch t {
	case SymVariable:
		return "int"
	case SymArray:
		return "array"
	case SymFunction:
		return "function"
	default:
		return "unknown"
	}
}

// DataType is the declared value type of a symbol.
type DataType int

const (
	DataUnknown DataType = iota
	DataInt
	DataVoid
)

// Entry is a single symbol-table declaration.
type Entry struct {
	Scope      int
	Lexeme     string
	SymType    SymbolType
	DataType   DataType
	Size       int
	IsParam    bool
	Address    Address
	Func       *FuncDecl // non-nil when SymType == SymFunction
}

// SymbolTable is the stack-ordered, scope-tagged list of declarations. It
// deliberately resolves a lexeme to its most recently appended entry
// regardless of the entry's scope: shadowing works because inner
// declarations are appended later, and by the time an outer declaration
// could matter again its scope has already been popped.
type SymbolTable struct {
	entries []*Entry
	lastIdx *swiss.Map[string, int] // lexeme -> most recent append index; may go stale after PopLastScope
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{lastIdx: swiss.NewMap[string, int](64)}
}

// Append adds e to the table and returns its index.
func (t *SymbolTable) Append(e *Entry) int {
	idx := len(t.entries)
	t.entries = append(t.entries, e)
	t.lastIdx.Put(e.Lexeme, idx)
	return idx
}

// GetLastByLexeme returns the most recently appended entry with lexeme lex,
// searching across all scopes.
func (t *SymbolTable) GetLastByLexeme(lex string) (*Entry, bool) {
	if idx, ok := t.lastIdx.Get(lex); ok && idx < len(t.entries) && t.entries[idx].Lexeme == lex {
		return t.entries[idx], true
	}
	// The cached index was invalidated by a PopLastScope since it was
	// written; fall back to a linear scan, which is always authoritative.
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Lexeme == lex {
			return t.entries[i], true
		}
	}
	return nil, false
}

// GetScopeSymbols returns every entry whose scope is >= scope, in append
// order.
func (t *SymbolTable) GetScopeSymbols(scope int) []*Entry {
	var out []*Entry
	for _, e := range t.entries {
		if e.Scope >= scope {
			out = append(out, e)
		}
	}
	return out
}

// PopLastScope discards every trailing entry whose scope equals scope.
func (t *SymbolTable) PopLastScope(scope int) {
	for len(t.entries) > 0 && t.entries[len(t.entries)-1].Scope == scope {
		t.entries = t.entries[:len(t.entries)-1]
	}
}

// Len returns the number of live entries.
func (t *SymbolTable) Len() int { return len(t.entries) }

// Entries returns the live entries in append order. Callers must not
// mutate the returned slice.
func (t *SymbolTable) Entries() []*Entry { return t.entries }
