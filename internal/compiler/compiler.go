package compiler

import (
	"io"
	"io/fs"
	"strings"

	"github.com/dryftlang/dryft/internal/backend"
	"github.com/dryftlang/dryft/internal/diag"
	"github.com/dryftlang/dryft/internal/lexer"
	"github.com/dryftlang/dryft/internal/source"
	"github.com/dryftlang/dryft/internal/token"
	"github.com/dryftlang/dryft/internal/types"
)

// Options configures a Compiler.
type Options struct {
	// Backend is the target-language emitter; required.
	Backend backend.Backend

	// Files resolves `include` directives (spec §4.3 rule 2: stems get
	// ".dry" appended). Required only if the source uses `include`.
	Files fs.FS

	// NoTypes disables the static type checker (spec §4.5: "When the
	// feature is disabled...type operations degrade to no-ops
	// returning a wildcard"). Surfaced at the CLI as -no-types.
	NoTypes bool

	// Trace, if set, is called once per dispatched token (spec's CLI
	// -trace flag; mirrors the teacher's WithLogf(log.Leveledf("TRACE"))).
	Trace func(mess string, args ...interface{})
}

// Compiler is the single mutable aggregate carried through the pass
// (spec §3 "Compile state").
type Compiler struct {
	backend backend.Backend
	files   fs.FS

	typesEnabled bool

	blocks []*block

	root        strings.Builder
	moduleScope map[string]types.Value
	moduleFrame *typeFrame

	functions map[string]*Definition
	actions   map[string]*Definition

	reader *source.Reader
	lex    *lexer.Lexer
	trace  func(mess string, args ...interface{})
}

// New creates a Compiler configured by opts; Run supplies the source
// text and the name it is reported under.
func New(opts Options) *Compiler {
	return &Compiler{
		backend:      opts.Backend,
		files:        opts.Files,
		typesEnabled: !opts.NoTypes,
		moduleScope:  make(map[string]types.Value),
		moduleFrame:  &typeFrame{},
		functions:    make(map[string]*Definition),
		actions:      make(map[string]*Definition),
		trace:        opts.Trace,
	}
}

// Compile runs the full single-pass front end over src (named rootName
// for diagnostics) and returns the backend-wrapped program. It is a
// convenience wrapper around New and (*Compiler).Run for callers that
// don't need the compiled symbol table afterward.
func Compile(rootName string, src io.Reader, opts Options) (string, error) {
	c := New(opts)
	return c.Run(rootName, src)
}

// Run executes the compile pass, leaving the compiled function/action
// table available afterward via Functions and Actions (spec §9's
// symbol-dump facility).
func (c *Compiler) Run(rootName string, src io.Reader) (string, error) {
	c.reader = source.NewReader(rootName, src)
	c.lex = lexer.New(c.reader, rootName)

	for {
		item, err := c.lex.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if item.String != nil {
			if c.trace != nil {
				c.trace("%v string %q", item.String.Pos, item.String.Text)
			}
			c.pushType(types.Text)
			c.emit(c.backend.PushString(item.String.Text))
			continue
		}
		if c.trace != nil {
			c.trace("%v token %q", item.Token.Pos, item.Token.Text)
		}
		if err := c.dispatch(*item.Token); err != nil {
			return "", err
		}
	}

	if len(c.blocks) > 0 {
		return "", diag.At(token.Position{File: rootName}, "unterminated %v block", c.blocks[len(c.blocks)-1].kind)
	}

	return c.backend.Complete(c.root.String()), nil
}
