// Package diag implements the compiler's fatal/warning diagnostic
// format (spec §6.3): "[DRYFT ERROR] <file>:<line>, word <index>: <message>".
package diag

import (
	"fmt"

	"github.com/dryftlang/dryft/internal/token"
)

// Error is a fatal compile diagnostic, carrying the position of the
// token that began the offending construct (spec §7: "the reported
// position is where the offending token began, not where scanning
// currently is").
type Error struct {
	Pos  token.Position
	Mess string
}

func At(pos token.Position, format string, args ...interface{}) Error {
	return Error{Pos: pos, Mess: fmt.Sprintf(format, args...)}
}

func (e Error) Error() string {
	return fmt.Sprintf("[DRYFT ERROR] %v:%v, word %v: %v", e.Pos.File, e.Pos.Line, e.Pos.Index, e.Mess)
}

// Warning is a non-fatal diagnostic with the same shape as Error.
type Warning struct {
	Pos  token.Position
	Mess string
}

func WarnAt(pos token.Position, format string, args ...interface{}) Warning {
	return Warning{Pos: pos, Mess: fmt.Sprintf(format, args...)}
}

func (w Warning) String() string {
	return fmt.Sprintf("[DRYFT WARNING] %v:%v, word %v: %v", w.Pos.File, w.Pos.Line, w.Pos.Index, w.Mess)
}
