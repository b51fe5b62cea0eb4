package compiler

import (
	"github.com/dryftlang/dryft/internal/diag"
	"github.com/dryftlang/dryft/internal/token"
	"github.com/dryftlang/dryft/internal/types"
)

var openers = map[string]Kind{
	"fun": KindFunction, "fun:": KindFunction,
	"act": KindAction, "act:": KindAction,
	"then": KindThen, "then:": KindThen,
	"elect": KindElect, "elect:": KindElect, "when": KindElect, "when:": KindElect,
	"loop": KindLoop, "loop:": KindLoop, "cycle": KindLoop, "cycle:": KindLoop,
	"module": KindModule,
	"struct": KindStruct,
	"var":    KindVariable,
	"linkin": KindLinkin,
	"include": KindInclude, "include:": KindInclude,
}

func (c *Compiler) innermost() Kind {
	if len(c.blocks) == 0 {
		return KindNone
	}
	return c.blocks[len(c.blocks)-1].kind
}

// dispatch applies spec §4.3's priority-ordered rules to a single
// token: the first matching arm fires.
func (c *Compiler) dispatch(tok token.Token) error {
	// rule 1: linkin metadata collection.
	if c.innermost() == KindLinkin {
		b := c.blocks[len(c.blocks)-1]
		b.meta = append(b.meta, tok.Text)
		if len(b.meta) == 2 {
			return c.closeLinkin(tok.Pos, b)
		}
		return nil
	}

	// rule 2: include filename.
	if c.innermost() == KindInclude {
		c.blocks = c.blocks[:len(c.blocks)-1]
		return c.doInclude(tok)
	}

	// rule 3: variable declaration.
	if c.innermost() == KindVariable {
		c.blocks = c.blocks[:len(c.blocks)-1]
		return c.declareVariable(tok)
	}

	// rule 4: keyword openers.
	if kind, ok := openers[tok.Text]; ok {
		c.blocks = append(c.blocks, newBlock(kind))
		return nil
	}

	// rule 5: keyword closers.
	if want, ok := closerKind(tok.Text); ok {
		return c.closeBlock(tok.Pos, tok.Text, want)
	}

	// rule 6: naming a just-opened function/action.
	if k := c.innermost(); k == KindFunction || k == KindAction {
		b := c.blocks[len(c.blocks)-1]
		if len(b.meta) == 0 {
			if k == KindFunction && tok.Text == "main" {
				return diag.At(tok.Pos, "main may not be used as a function name")
			}
			if c.symbolTaken(tok.Text) {
				return diag.At(tok.Pos, "duplicate symbol %q", tok.Text)
			}
			b.meta = append(b.meta, tok.Text)
			// register a provisional definition so a recursive
			// self-call resolves during body compilation (rule 7);
			// closeMethod overwrites this with the real body and
			// inferred signature. A self-call seen before the
			// signature is known gets no type effect -- the
			// alternative (deferring inference through recursion)
			// is out of scope for a single-pass front end.
			placeholder := &Definition{Name: tok.Text}
			if k == KindFunction {
				c.functions[tok.Text] = placeholder
			} else {
				c.actions[tok.Text] = placeholder
			}
			return nil
		}
	}

	// rule 7: reference to a defined function or action.
	if def, isFn, isAct := c.lookupSymbol(tok.Text); isFn || isAct {
		if isAct && c.insidePureFunction() {
			return diag.At(tok.Pos, "action %q invoked inside a function", tok.Text)
		}
		if err := c.applySignature(tok.Pos, def.Sig); err != nil {
			return err
		}
		c.emit(c.backend.UserFunction(tok.Text))
		return nil
	}

	// rule 8: variable read.
	if name, ok := tok.ReadVar(); ok {
		v, found := c.lookupVar(name)
		if !found {
			return diag.At(tok.Pos, "read of undefined variable %q", name)
		}
		c.pushType(v)
		c.emit(c.backend.ReadVariable(name))
		return nil
	}

	// rule 9: variable write.
	if name, ok := tok.WriteVar(); ok {
		v, found := c.lookupVar(name)
		if !found {
			return diag.At(tok.Pos, "write of undefined variable %q", name)
		}
		if err := c.expectTypes(tok.Pos, v); err != nil {
			return err
		}
		c.emit(c.backend.WriteVariable(name))
		return nil
	}

	// rule 10: integer literal.
	if tok.IsNumber() {
		c.pushType(types.Number)
		c.emit(c.backend.PushInteger(tok.Text))
		return nil
	}

	// rule 10.5: boolean literal (spec §8 scenario 6 exercises `true` as
	// a Binary-producing literal; there is no dedicated backend
	// capability for it, so it lowers through PushInteger the same way
	// the generated runtime already represents Binary as 0/1).
	if tok.Text == "true" || tok.Text == "false" {
		c.pushType(types.Binary)
		text := "0"
		if tok.Text == "true" {
			text = "1"
		}
		c.emit(c.backend.PushInteger(text))
		return nil
	}

	// rule 11: builtins.
	if isPolymorphic(tok.Text) {
		return c.dispatchPolymorphic(tok)
	}
	if b, ok := builtins[tok.Text]; ok {
		if err := c.expectTypes(tok.Pos, b.Consumes...); err != nil {
			return err
		}
		for _, v := range b.Produces {
			c.pushType(v)
		}
		c.emit(b.Emit(c.backend))
		return nil
	}

	// rule 12: unknown token.
	return diag.At(tok.Pos, "Unknown token %q", tok.Text)
}

func (c *Compiler) dispatchPolymorphic(tok token.Token) error {
	switch tok.Text {
	case wordCopy, wordCopy2:
		v := c.typeFrame().pop()
		c.pushType(v)
		c.pushType(v)
		c.emit(c.backend.Copy())
	case wordDrop, wordDrop2:
		c.typeFrame().pop()
		c.emit(c.backend.Drop())
	case wordSwap:
		a := c.typeFrame().pop()
		b := c.typeFrame().pop()
		c.pushType(a)
		c.pushType(b)
		c.emit(c.backend.Swap())
	case wordBreak:
		if !c.withinLoop() {
			return diag.At(tok.Pos, "break outside of loop")
		}
		c.emit(c.backend.Break())
	case wordRet:
		c.emit(c.backend.Return())
	}
	return nil
}

// insidePureFunction reports whether the nearest enclosing
// function/action block is a Function, disallowing action invocation
// transitively (spec §4.3 rule 7, §4.4: "a function is pure by
// contract...an action is impure").
func (c *Compiler) insidePureFunction() bool {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		switch c.blocks[i].kind {
		case KindFunction:
			return true
		case KindAction:
			return false
		}
	}
	return false
}

func (c *Compiler) withinLoop() bool {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		switch c.blocks[i].kind {
		case KindLoop:
			return true
		case KindFunction, KindAction:
			return false
		}
	}
	return false
}

func (c *Compiler) closeLinkin(pos token.Position, b *block) error {
	c.blocks = c.blocks[:len(c.blocks)-1]
	class, name := b.meta[0], b.meta[1]
	if c.symbolTaken(name) {
		return diag.At(pos, "duplicate symbol %q", name)
	}
	def := &Definition{Name: name, Linkin: true}
	switch class {
	case "fun":
		c.functions[name] = def
	case "act":
		c.actions[name] = def
	default:
		return diag.At(pos, "linkin class must be fun or act, found %q", class)
	}
	c.emit(c.backend.LinkinFunction(name))
	return nil
}

func (c *Compiler) doInclude(tok token.Token) error {
	if c.files == nil {
		return diag.At(tok.Pos, "include %q: no filesystem configured", tok.Text)
	}
	path := tok.Text + ".dry"
	f, err := c.files.Open(path)
	if err != nil {
		return diag.At(tok.Pos, "include %q: %v", path, err)
	}
	c.reader.Include(path, f)
	return nil
}

func (c *Compiler) declareVariable(tok token.Token) error {
	if c.symbolTaken(tok.Text) {
		return diag.At(tok.Pos, "duplicate symbol %q", tok.Text)
	}
	v := c.typeFrame().pop()
	c.innermostScope()[tok.Text] = v
	c.emit(c.backend.CreateVariable(tok.Text))
	return nil
}
