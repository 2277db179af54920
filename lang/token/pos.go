package token

// Pos is a 1-based source line number. Diagnostics are only ever
// attributed to a line, never a column, so no column is encoded.
type Pos uint32

// MakePos creates a Pos value encoding the given line.
func MakePos(line int) Pos { return Pos(line) }

// Line returns the 1-based line number encoded in p.
func (p Pos) Line() int { return int(p) }

// Unknown returns true if the line is unknown (zero).
func (p Pos) Unknown() bool { return p == 0 }
