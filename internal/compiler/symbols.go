package compiler

import "github.com/dryftlang/dryft/internal/types"

// Signature is a user method's inferred caller-visible stack effect: the
// types it consumes from the caller (the void frame recorded while
// compiling its body) and the types it leaves behind (spec §4.3 rule 5:
// "the caller-visible stack effect of the method is the final type
// frame...with the void frame as consumed types").
type Signature struct {
	Consumes types.Seq
	Produces types.Seq
}

// Definition is a compiled function or action: its target-language body
// text (already emitted by the backend) and its inferred signature.
// Linkin marks a definition registered by `linkin` rather than a body.
type Definition struct {
	Name   string
	Body   string
	Sig    Signature
	Linkin bool
}

// Functions returns the compiled function table, keyed by name. Valid
// after Run/Compile returns successfully.
func (c *Compiler) Functions() map[string]*Definition { return c.functions }

// Actions returns the compiled action table, keyed by name. Valid
// after Run/Compile returns successfully.
func (c *Compiler) Actions() map[string]*Definition { return c.actions }

func (c *Compiler) lookupSymbol(name string) (*Definition, bool, bool) {
	if d, ok := c.functions[name]; ok {
		return d, true, false
	}
	if d, ok := c.actions[name]; ok {
		return d, false, true
	}
	return nil, false, false
}

// symbolTaken reports whether name is already visible as a function,
// action, or variable in any enclosing scope (spec §4.4: "Redefinition
// of any visible symbol...is rejected at the point of declaration").
func (c *Compiler) symbolTaken(name string) bool {
	if _, ok := c.functions[name]; ok {
		return true
	}
	if _, ok := c.actions[name]; ok {
		return true
	}
	_, ok := c.lookupVar(name)
	return ok
}

// lookupVar walks the variable scope chain from innermost to outermost
// (spec §4.4).
func (c *Compiler) lookupVar(name string) (types.Value, bool) {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if sc := c.blocks[i].scope; sc != nil {
			if v, ok := sc[name]; ok {
				return v, true
			}
		}
	}
	if v, ok := c.moduleScope[name]; ok {
		return v, true
	}
	return 0, false
}

// innermostScope returns the nearest block's scope map, or the module
// scope if no open block grows one.
func (c *Compiler) innermostScope() map[string]types.Value {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if c.blocks[i].scope != nil {
			return c.blocks[i].scope
		}
	}
	return c.moduleScope
}
