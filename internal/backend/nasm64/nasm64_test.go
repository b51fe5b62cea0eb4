package nasm64_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dryftlang/dryft/internal/backend/nasm64"
)

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".asm", nasm64.New().FileExtension())
}

func TestCreateFunctionLabel(t *testing.T) {
	b := nasm64.New()
	got := b.CreateFunction("sum3", b.Add()+b.Add())
	assert.Equal(t, "fun_sum3:\n\tcall builtin_add\n\tcall builtin_add\n\tret\n\n", got)
}

func TestLinkinFunctionTrampoline(t *testing.T) {
	got := nasm64.New().LinkinFunction("puts_line")
	assert.Contains(t, got, "extern puts_line")
	assert.Contains(t, got, "fun_puts_line:")
	assert.Contains(t, got, "call puts_line")
}

func TestUserFunctionCall(t *testing.T) {
	assert.Equal(t, "\tcall fun_inc\n", nasm64.New().UserFunction("inc"))
}

func TestPushIntegerMacro(t *testing.T) {
	assert.Equal(t, "\tmpush 1\n", nasm64.New().PushInteger("1"))
}

func TestPushStringLabelizesNonAlnum(t *testing.T) {
	got := nasm64.New().PushString("hello world!")
	assert.Equal(t, "\tmpush str_hello_world_\n", got)
}

func TestCompleteIncludesPreamble(t *testing.T) {
	b := nasm64.New()
	out := b.Complete(b.CreateFunction("inc", b.PushInteger("1")+b.Add()))
	assert.True(t, strings.HasPrefix(out, "; generated by dryftc"))
	assert.Contains(t, out, "builtin_add:")
	assert.Contains(t, out, "fun_inc:")
}

func TestLoopBreak(t *testing.T) {
	b := nasm64.New()
	loop := b.CreateLoopBlock(b.Break())
	assert.Contains(t, loop, ".loop")
	assert.Contains(t, loop, ".break")
	assert.Contains(t, loop, "jmp .break")
}

func TestVariableFragments(t *testing.T) {
	b := nasm64.New()
	assert.Contains(t, b.CreateVariable("x"), "[var_x], rax")
	assert.Contains(t, b.ReadVariable("x"), "[var_x]")
	assert.Contains(t, b.WriteVariable("x"), "[var_x], rax")
}
