package codegen

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a three-address instruction opcode.
type Op string

const (
	ADD    Op = "ADD"
	SUB    Op = "SUB"
	MULT   Op = "MULT"
	ASSIGN Op = "ASSIGN"
	JP     Op = "JP"
	JPF    Op = "JPF"
	EQ     Op = "EQ"
	LT     Op = "LT"
	PRINT  Op = "PRINT"
)

// Code is a single three-address instruction. Unused operand slots are left
// at their zero value, which renders as the empty string.
type Code struct {
	Op      Op
	A, B, C Address
}

// jumpSlot reports which operand slot (0-based among A,B,C), if any, is a
// jump target for op, and must be rendered with Address.Jump instead of
// Address.NonJump.
func jumpSlot(op Op) int {
	switch op {
	case JP:
		return 0
	case JPF:
		return 1
	default:
		return -1
	}
}

func (c Code) String() string {
	js := jumpSlot(c.Op)
	render := func(slot int, a Address) string {
		if slot == js {
			return a.Jump()
		}
		return a.NonJump()
	}
	return fmt.Sprintf("(%s, %s, %s, %s)", c.Op, render(0, c.A), render(1, c.B), render(2, c.C))
}

// Program is the append-only, index-addressed buffer of emitted
// instructions. Backpatching is the only way a previously appended slot is
// ever mutated.
type Program struct {
	code []Code
}

// NewProgram returns an empty program buffer. The two reserved
// instructions (stack pointer init, startup jump to main) are emitted by
// the start_program action, not at construction, since they are a
// consequence of generation beginning rather than of the Program value
// existing.
func NewProgram() *Program {
	return &Program{}
}

// Append adds code to the end of the buffer and returns its index.
func (p *Program) Append(c Code) int {
	p.code = append(p.code, c)
	return len(p.code) - 1
}

// Len returns the number of instructions in the buffer, i.e. the index the
// next Append call would return.
func (p *Program) Len() int { return len(p.code) }

// At returns the instruction at idx.
func (p *Program) At(idx int) Code { return p.code[idx] }

// PatchA, PatchB and PatchC rewrite a single operand slot of a previously
// emitted instruction, leaving the other slots untouched. This is the only
// supported mutation of an already-appended instruction.
func (p *Program) PatchA(idx int, addr Address) { p.code[idx].A = addr }
func (p *Program) PatchB(idx int, addr Address) { p.code[idx].B = addr }
func (p *Program) PatchC(idx int, addr Address) { p.code[idx].C = addr }

// Serialize renders the program one instruction per line as
// "<index>\t<code>\n".
func (p *Program) Serialize() string {
	var sb strings.Builder
	for i, c := range p.code {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\t')
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
