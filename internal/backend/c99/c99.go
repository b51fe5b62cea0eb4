// Package c99 implements the backend.Backend that emits a freestanding
// C99 translation unit, prepended with a fixed runtime preamble
// implementing the operand stack and builtin primitives (spec §1, §6.2).
package c99

import (
	"fmt"
	"strconv"
)

// Backend emits dryft programs as C99 source, one function per
// user-defined function/action, calling into the runtime preamble below.
type Backend struct{}

func New() *Backend { return &Backend{} }

func (Backend) FileExtension() string { return ".c" }

func (Backend) Complete(compiled string) string {
	return preamble + compiled
}

func (Backend) CreateFunction(name, body string) string {
	return fmt.Sprintf("void fun_%s() { %s}\n", name, body)
}

func (Backend) LinkinFunction(name string) string {
	return fmt.Sprintf("extern void %s(void);\nvoid fun_%s() { %s(); }\n", name, name, name)
}

func (Backend) UserFunction(name string) string {
	return fmt.Sprintf("fun_%s(); ", name)
}

func (Backend) PushInteger(text string) string {
	return fmt.Sprintf("dryft_push(%s); ", text)
}

func (Backend) PushString(text string) string {
	return fmt.Sprintf("dryft_push_string(%s); ", strconv.Quote(text))
}

func (Backend) Add() string { return "add(); " }
func (Backend) Sub() string { return "sub(); " }
func (Backend) Mul() string { return "mul(); " }
func (Backend) Div() string { return "divi(); " }
func (Backend) Mod() string { return "modi(); " }

func (Backend) Copy() string { return "dupi(); " }
func (Backend) Drop() string { return "dropi(); " }
func (Backend) Swap() string { return "swapi(); " }

func (Backend) Equal() string          { return "eqi(); " }
func (Backend) NotEqual() string       { return "neqi(); " }
func (Backend) Greater() string        { return "gti(); " }
func (Backend) GreaterOrEqual() string { return "gtei(); " }
func (Backend) Less() string           { return "lti(); " }
func (Backend) LessOrEqual() string    { return "ltei(); " }

func (Backend) Not() string { return "noti(); " }
func (Backend) And() string { return "andi(); " }
func (Backend) Or() string  { return "ori(); " }

func (Backend) CreateThenCondition(body string, inElect bool) string {
	if inElect {
		return fmt.Sprintf("if (!last_condition && dryft_pop()) { last_condition = 1; %s} ", body)
	}
	return fmt.Sprintf("if (dryft_pop()) { %s} ", body)
}

func (Backend) CreateElectBlock(body string) string {
	return fmt.Sprintf("{ int last_condition = 0; %s} ", body)
}

func (Backend) CreateLoopBlock(body string) string {
	return fmt.Sprintf("for (;;) { %s} ", body)
}

func (Backend) Break() string  { return "break; " }
func (Backend) Return() string { return "return; " }

func (Backend) CreateVariable(name string) string {
	return fmt.Sprintf("dryft_int var_%s = dryft_pop(); ", name)
}

func (Backend) ReadVariable(name string) string {
	return fmt.Sprintf("dryft_push(var_%s); ", name)
}

func (Backend) WriteVariable(name string) string {
	return fmt.Sprintf("var_%s = dryft_pop(); ", name)
}

// preamble is the fixed runtime prepended to every compiled C99 program:
// a growable operand stack and the builtin primitives the generated code
// calls by name.
const preamble = `/* generated by dryftc -- do not edit */
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef intptr_t dryft_int;

static dryft_int *dryft_stack = NULL;
static size_t dryft_stack_len = 0;
static size_t dryft_stack_cap = 0;

static void dryft_push(dryft_int v) {
	if (dryft_stack_len == dryft_stack_cap) {
		dryft_stack_cap = dryft_stack_cap ? dryft_stack_cap * 2 : 64;
		dryft_stack = realloc(dryft_stack, dryft_stack_cap * sizeof(dryft_int));
	}
	dryft_stack[dryft_stack_len++] = v;
}

static dryft_int dryft_pop(void) {
	return dryft_stack[--dryft_stack_len];
}

static void dryft_push_string(const char *s) {
	dryft_push((dryft_int)(intptr_t)s);
}

static void add(void)  { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a + b); }
static void sub(void)  { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a - b); }
static void mul(void)  { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a * b); }
static void divi(void) { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a / b); }
static void modi(void) { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a % b); }

static void dupi(void)  { dryft_int a = dryft_pop(); dryft_push(a); dryft_push(a); }
static void dropi(void) { dryft_pop(); }
static void swapi(void) { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(b); dryft_push(a); }

static void eqi(void)  { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a == b); }
static void neqi(void) { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a != b); }
static void gti(void)  { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a > b); }
static void gtei(void) { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a >= b); }
static void lti(void)  { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a < b); }
static void ltei(void) { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a <= b); }

static void noti(void) { dryft_push(!dryft_pop()); }
static void andi(void) { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a && b); }
static void ori(void)  { dryft_int b = dryft_pop(), a = dryft_pop(); dryft_push(a || b); }

`
