package compiler

import (
	"strings"

	"github.com/dryftlang/dryft/internal/diag"
	"github.com/dryftlang/dryft/internal/token"
	"github.com/dryftlang/dryft/internal/types"
)

// body returns the target-text buffer that currently receives emitted
// fragments: the nearest enclosing block that owns one, or the root
// buffer (spec §3 "body_stack[0]").
func (c *Compiler) body() *strings.Builder {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if c.blocks[i].body != nil {
			return c.blocks[i].body
		}
	}
	return &c.root
}

// emit appends a backend-produced fragment to the current body buffer.
func (c *Compiler) emit(frag string) { c.body().WriteString(frag) }

// typeFrame returns the nearest enclosing function/action's type frame.
// Control-flow blocks (then/elect/loop) share the enclosing frame so
// that a branch may consume values the caller pushed (spec §3 invariant
// 5).
func (c *Compiler) typeFrame() *typeFrame {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if c.blocks[i].typ != nil {
			return c.blocks[i].typ
		}
	}
	return c.moduleFrame
}

func (c *Compiler) pushType(v types.Value) {
	if c.typesEnabled {
		c.typeFrame().push(v)
	}
}

// expectTypes pops len(want) types off the current frame, checking each
// against the wanted type in stack order (last listed is checked
// against the topmost value), and fails with "Type mismatch" on the
// first disagreement (spec §4.5, §8 scenario 3-6 format).
func (c *Compiler) expectTypes(pos token.Position, want ...types.Value) error {
	if !c.typesEnabled {
		return nil
	}
	f := c.typeFrame()
	for i := len(want) - 1; i >= 0; i-- {
		got, _ := f.expect(want[i])
		if !types.Accepts(want[i], got) {
			return diag.At(pos, "Type mismatch : Expected %v, found %v", want[i], got)
		}
	}
	return nil
}

// closeSignature extracts a Signature from a function/action's frame at
// block-close time: whatever remains on the frame is Produces, and
// whatever was demanded via underflow is Consumes (spec §4.3 rule 5).
// The void frame records demands topmost-first, so Consumes reverses it
// to put the deepest input first, the order applySignature expects.
func closeSignature(f *typeFrame) Signature {
	consumes := make(types.Seq, len(f.void))
	for i, v := range f.void {
		consumes[len(f.void)-1-i] = v
	}
	return Signature{
		Consumes: consumes,
		Produces: append(types.Seq{}, f.types...),
	}
}

// applySignature models a call to a previously defined method: its
// Consumes types are expected off the caller's current frame (in
// declared order, so the first-declared input is deepest on the
// stack), then its Produces types are pushed as results.
func (c *Compiler) applySignature(pos token.Position, sig Signature) error {
	if !c.typesEnabled {
		return nil
	}
	if err := c.expectTypes(pos, sig.Consumes...); err != nil {
		return err
	}
	for _, v := range sig.Produces {
		c.pushType(v)
	}
	return nil
}
