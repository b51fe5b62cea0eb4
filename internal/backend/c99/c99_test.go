package c99_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dryftlang/dryft/internal/backend/c99"
)

func TestFileExtension(t *testing.T) {
	assert.Equal(t, ".c", c99.New().FileExtension())
}

func TestCreateFunctionWrapsBody(t *testing.T) {
	b := c99.New()
	got := b.CreateFunction("sum3", b.Add()+b.Add())
	assert.Equal(t, "void fun_sum3() { add(); add(); }\n", got)
}

func TestCompleteIncludesPreamble(t *testing.T) {
	b := c99.New()
	out := b.Complete(b.CreateFunction("inc", b.PushInteger("1")+b.Add()))
	assert.True(t, strings.HasPrefix(out, "/* generated by dryftc"))
	assert.Contains(t, out, "static dryft_int *dryft_stack")
	assert.Contains(t, out, "void fun_inc() { dryft_push(1); add(); }\n")
}

func TestLinkinFunction(t *testing.T) {
	got := c99.New().LinkinFunction("puts_line")
	assert.Contains(t, got, "extern void puts_line(void);")
	assert.Contains(t, got, "void fun_puts_line() { puts_line(); }")
}

func TestThenConditionVariants(t *testing.T) {
	b := c99.New()
	bare := b.CreateThenCondition(b.PushInteger("1"), false)
	assert.Equal(t, "if (dryft_pop()) { dryft_push(1); } ", bare)

	inElect := b.CreateThenCondition(b.PushInteger("1"), true)
	assert.Contains(t, inElect, "last_condition")
	assert.Contains(t, inElect, "!last_condition")
}

func TestVariableFragments(t *testing.T) {
	b := c99.New()
	assert.Equal(t, "dryft_int var_x = dryft_pop(); ", b.CreateVariable("x"))
	assert.Equal(t, "dryft_push(var_x); ", b.ReadVariable("x"))
	assert.Equal(t, "var_x = dryft_pop(); ", b.WriteVariable("x"))
}

func TestPushString(t *testing.T) {
	b := c99.New()
	assert.Equal(t, `dryft_push_string(" # fake comment # "); `, b.PushString(" # fake comment # "))
}
