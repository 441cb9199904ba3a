// Package source holds the position payload: a second tag type for the
// tagged tree. Only the read/erase half of the contract is available for it;
// producing position tags is not supported.
package source

import "fmt"

// Position is a point in a source file. Line and Column are 1-based; zero
// means unknown.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	file := p.File
	if file == "" {
		file = "<unknown>"
	}
	if !p.IsKnown() {
		return file
	}
	if p.Column == 0 {
		return fmt.Sprintf("%s:%d", file, p.Line)
	}
	return fmt.Sprintf("%s:%d:%d", file, p.Line, p.Column)
}

// IsKnown reports whether the position points at a line.
func (p Position) IsKnown() bool {
	return p.Line > 0
}
