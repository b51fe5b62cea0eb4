// Package backend declares the capability set a code-producing backend
// must implement (spec §6.2). The compiler core depends only on this
// interface; internal/backend/c99 and internal/backend/nasm64 are its
// two concrete collaborators.
package backend

// Backend emits opaque target-language fragments for every primitive
// operation and structural construct the compiler core recognises. The
// core performs no bit-level encoding of its own: it composes these
// fragments and concatenates them (spec §6.2).
type Backend interface {
	// Complete wraps the compiled root body in the target's preamble,
	// which implements a push/pop operand stack and the builtins
	// referenced below.
	Complete(compiled string) string

	// CreateFunction defines a named, nullary target routine from body.
	CreateFunction(name, body string) string
	// LinkinFunction declares an externally supplied routine and
	// produces a trampoline reachable under name.
	LinkinFunction(name string) string
	// UserFunction calls a previously defined routine.
	UserFunction(name string) string

	PushInteger(text string) string
	PushString(text string) string

	Add() string
	Sub() string
	Mul() string
	Div() string
	Mod() string

	Copy() string
	Drop() string
	Swap() string

	Equal() string
	NotEqual() string
	Greater() string
	GreaterOrEqual() string
	Less() string
	LessOrEqual() string

	Not() string
	And() string
	Or() string

	// CreateThenCondition emits a guarded block reading the top of the
	// operand stack (spec §4.6). inElect distinguishes a bare `then`
	// from one nested directly in an `elect`; only the latter records
	// in last_condition that its guard was taken, and it additionally
	// gates on no earlier arm having set that flag.
	CreateThenCondition(body string, inElect bool) string
	// CreateElectBlock linearises a sequence of guarded then arms with
	// fall-through semantics.
	CreateElectBlock(body string) string
	// CreateLoopBlock wraps body as an unconditional loop, broken by a
	// nested Break.
	CreateLoopBlock(body string) string
	Break() string
	Return() string

	CreateVariable(name string) string
	ReadVariable(name string) string
	WriteVariable(name string) string

	// FileExtension names the conventional suffix for this backend's
	// emitted target-language files, e.g. ".c" or ".asm".
	FileExtension() string
}
