package compiler

import (
	"github.com/dryftlang/dryft/internal/backend"
	"github.com/dryftlang/dryft/internal/types"
)

// builtin describes a fixed-arity primitive's stack effect and its
// backend operation (spec §4.3 rule 11). Fake stands in for "any type"
// in Consumes.
type builtin struct {
	Consumes types.Seq
	Produces types.Seq
	Emit     func(backend.Backend) string
}

var builtins = map[string]builtin{
	"+":   {types.Seq{types.Number, types.Number}, types.Seq{types.Number}, backend.Backend.Add},
	"-":   {types.Seq{types.Number, types.Number}, types.Seq{types.Number}, backend.Backend.Sub},
	"*":   {types.Seq{types.Number, types.Number}, types.Seq{types.Number}, backend.Backend.Mul},
	"/":   {types.Seq{types.Number, types.Number}, types.Seq{types.Number}, backend.Backend.Div},
	"mod": {types.Seq{types.Number, types.Number}, types.Seq{types.Number}, backend.Backend.Mod},

	"=?":        {types.Seq{types.Fake, types.Fake}, types.Seq{types.Binary}, backend.Backend.Equal},
	"equals?":   {types.Seq{types.Fake, types.Fake}, types.Seq{types.Binary}, backend.Backend.Equal},
	"nequals?":  {types.Seq{types.Fake, types.Fake}, types.Seq{types.Binary}, backend.Backend.NotEqual},
	"not":       {types.Seq{types.Binary}, types.Seq{types.Binary}, backend.Backend.Not},
	"either?":   {types.Seq{types.Binary, types.Binary}, types.Seq{types.Binary}, backend.Backend.Or},
	"both?":     {types.Seq{types.Binary, types.Binary}, types.Seq{types.Binary}, backend.Backend.And},
	">?":        {types.Seq{types.Number, types.Number}, types.Seq{types.Binary}, backend.Backend.Greater},
	"greater?":  {types.Seq{types.Number, types.Number}, types.Seq{types.Binary}, backend.Backend.Greater},
	">=?":       {types.Seq{types.Number, types.Number}, types.Seq{types.Binary}, backend.Backend.GreaterOrEqual},
	"<?":        {types.Seq{types.Number, types.Number}, types.Seq{types.Binary}, backend.Backend.Less},
	"=<?":       {types.Seq{types.Number, types.Number}, types.Seq{types.Binary}, backend.Backend.LessOrEqual},
}

// polymorphic word kinds handled outside the fixed builtins table,
// since their output type depends on the operand type actually popped.
const (
	wordCopy  = "^"
	wordCopy2 = "copy"
	wordDrop  = "v"
	wordDrop2 = "drop"
	wordSwap  = "swap"
	wordBreak = "break"
	wordRet   = "return"
)

func isPolymorphic(tok string) bool {
	switch tok {
	case wordCopy, wordCopy2, wordDrop, wordDrop2, wordSwap, wordBreak, wordRet:
		return true
	}
	return false
}
