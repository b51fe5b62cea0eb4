package compiler

import (
	"github.com/dryftlang/dryft/internal/diag"
	"github.com/dryftlang/dryft/internal/token"
)

// closeBlock implements spec §4.3 rule 5: pop the innermost definition,
// verifying it matches want unless want is KindNone (the generic `;`/
// `end` closers, which match whatever is innermost).
func (c *Compiler) closeBlock(pos token.Position, tokText string, want Kind) error {
	if len(c.blocks) == 0 {
		return diag.At(pos, "misplaced block ending %q: no open block", tokText)
	}
	b := c.blocks[len(c.blocks)-1]
	if want != KindNone && b.kind != want {
		return diag.At(pos, "misplaced block ending %q: innermost block is %v", tokText, b.kind)
	}
	c.blocks = c.blocks[:len(c.blocks)-1]

	switch b.kind {
	case KindFunction, KindAction:
		return c.closeMethod(pos, b)
	case KindThen:
		return c.closeThen(pos, b)
	case KindElect:
		return c.closeElect(b)
	case KindLoop:
		return c.closeLoop(b)
	case KindModule, KindStruct:
		// body discarded; reserved for future namespacing (spec §4.3
		// rule 5 "Module", §9 open question on `struct`).
		return nil
	default:
		return diag.At(pos, "misplaced block ending %q: nothing to close", tokText)
	}
}

func (c *Compiler) closeMethod(pos token.Position, b *block) error {
	if len(b.meta) == 0 {
		return diag.At(pos, "definition closed before it was named")
	}
	name := b.meta[0]
	if b.kind == KindFunction && name == "main" {
		return diag.At(pos, "main may not be used as a function name")
	}

	sig := closeSignature(b.typ)
	def := &Definition{Name: name, Body: b.body.String(), Sig: sig}

	if b.kind == KindFunction {
		c.functions[name] = def
	} else {
		c.actions[name] = def
	}

	c.emit(c.backend.CreateFunction(name, def.Body))
	return nil
}

func (c *Compiler) closeThen(pos token.Position, b *block) error {
	inElect := c.innermost() == KindElect
	c.emit(c.backend.CreateThenCondition(b.body.String(), inElect))
	return nil
}

func (c *Compiler) closeElect(b *block) error {
	c.emit(c.backend.CreateElectBlock(b.body.String()))
	return nil
}

func (c *Compiler) closeLoop(b *block) error {
	c.emit(c.backend.CreateLoopBlock(b.body.String()))
	return nil
}
