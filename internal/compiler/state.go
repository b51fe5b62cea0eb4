// Package compiler implements the single-pass front-end: a
// block-structured recursive-descent compiler driver fused with a type
// checker, dispatching on the definition-stack context and token text
// (spec §4.3).
package compiler

import (
	"strings"

	"github.com/dryftlang/dryft/internal/types"
)

// Kind tags the open block kinds a definition stack entry may hold
// (spec §3 "Definition-kind").
type Kind int

const (
	KindNone Kind = iota
	KindFunction
	KindAction
	KindLinkin
	KindThen
	KindElect
	KindInclude
	KindLoop
	KindVariable
	KindModule
	// KindStruct is a recognised, non-functional opener (spec §9 open
	// question: "module and struct...leave them as recognised openers
	// with empty effect").
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "fun"
	case KindAction:
		return "act"
	case KindLinkin:
		return "linkin"
	case KindThen:
		return "then"
	case KindElect:
		return "elect"
	case KindInclude:
		return "include"
	case KindLoop:
		return "loop"
	case KindVariable:
		return "var"
	case KindModule:
		return "module"
	case KindStruct:
		return "struct"
	default:
		return "none"
	}
}

// closerKind maps a generic or kind-specific closing token to the Kind
// it must match (spec §4.3 rule 5). Returns KindNone, false for a token
// that isn't a closer at all.
func closerKind(tok string) (Kind, bool) {
	switch tok {
	case ":fun":
		return KindFunction, true
	case ":act":
		return KindAction, true
	case ":then":
		return KindThen, true
	case ":elect", ":when":
		return KindElect, true
	case ":loop", ":cycle":
		return KindLoop, true
	case ":module":
		return KindModule, true
	case ";", "end":
		return KindNone, true // generic: matches whatever is innermost
	}
	return KindNone, false
}

// typeFrame is a single frame of the compile-time operand-stack model
// (spec §3 "type_stack"/"void_stack"): types holds what the block has
// produced so far, void what it has had to demand from its caller
// because the frame underflowed.
type typeFrame struct {
	types []types.Value
	void  []types.Value
}

func (f *typeFrame) push(v types.Value) { f.types = append(f.types, v) }

// pop drains the frame from the top; on underflow it records the
// demand into void and returns the Fake wildcard, modelling signature
// inference for user methods from their bodies (spec §4.5).
func (f *typeFrame) pop() types.Value {
	if n := len(f.types); n > 0 {
		v := f.types[n-1]
		f.types = f.types[:n-1]
		return v
	}
	f.void = append(f.void, types.Fake)
	return types.Fake
}

// expect pops the top type for the caller to check against want,
// recording want itself as the void demand on underflow (so later calls
// see the exact type this position needed, not a wildcard).
func (f *typeFrame) expect(want types.Value) (got types.Value, underflowed bool) {
	if n := len(f.types); n > 0 {
		v := f.types[n-1]
		f.types = f.types[:n-1]
		return v, false
	}
	f.void = append(f.void, want)
	return want, true
}

// block is a single open definition: one record owning everything the
// redesign note (spec §9) asks for -- kind, metadata, and the optional
// body/scope/type resources this particular kind grows. A nil field
// means this kind does not grow that resource (spec §3 invariants 2,3,5);
// lookups walk outward past nil fields to the nearest enclosing owner.
type block struct {
	kind Kind
	meta []string

	body  *strings.Builder           // non-nil iff this kind grows body_stack
	scope map[string]types.Value     // non-nil iff this kind grows var_scopes
	typ   *typeFrame                 // non-nil iff this kind grows its own type_stack frame
}

func growsBody(k Kind) bool {
	switch k {
	case KindFunction, KindAction, KindThen, KindElect, KindLoop, KindModule, KindStruct:
		return true
	}
	return false
}

func growsVarScope(k Kind) bool {
	switch k {
	case KindFunction, KindAction, KindThen, KindLoop:
		return true
	}
	return false
}

func growsTypeFrame(k Kind) bool {
	switch k {
	case KindFunction, KindAction:
		return true
	}
	return false
}

func newBlock(k Kind) *block {
	b := &block{kind: k}
	if growsBody(k) {
		b.body = &strings.Builder{}
	}
	if growsVarScope(k) {
		b.scope = make(map[string]types.Value)
	}
	if growsTypeFrame(k) {
		b.typ = &typeFrame{}
	}
	return b
}
