// Package codegen implements the single-pass semantic-action engine that
// turns a parsed C-minus program into three-address code for a
// register-less virtual machine.
package codegen

// AddressKind tags how an Address's Text should be interpreted.
type AddressKind int

const (
	UNKNOWN AddressKind = iota
	CONST
	IMMEDIATE
	INDIRECT
)

// Address is a compiler-time operand: either a numeric constant, a direct
// memory address, a pointer-in-memory, or an undetermined placeholder
// (used for forward jumps before they are backpatched, and for the
// recovery value pushed after an undefined-identifier error).
type Address struct {
	Text string
	Kind AddressKind
}

var unknownAddress = Address{Kind: UNKNOWN}

func constAddr(text string) Address    { return Address{Text: text, Kind: CONST} }
func immediateAddr(text string) Address { return Address{Text: text, Kind: IMMEDIATE} }
func indirectAddr(text string) Address { return Address{Text: text, Kind: INDIRECT} }

// NonJump renders a as a regular operand.
func (a Address) NonJump() string {
	switch a.Kind {
	case CONST:
		return "#" + a.Text
	case INDIRECT:
		return "@" + a.Text
	case IMMEDIATE:
		return a.Text
	default:
		return ""
	}
}

// Jump renders a as a jump target operand.
func (a Address) Jump() string {
	switch a.Kind {
	case CONST:
		return a.Text
	case IMMEDIATE:
		return "@" + a.Text
	default:
		return ""
	}
}
