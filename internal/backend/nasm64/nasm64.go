// Package nasm64 implements the backend.Backend that emits 64-bit
// assembly in a NASM-like dialect (spec §1, §6.2), grounded on the
// original implementation's naming scheme: fun_<name> labels, a
// builtin_<op> runtime, and extern trampolines for linked-in words.
package nasm64

import "fmt"

type Backend struct{}

func New() *Backend { return &Backend{} }

func (Backend) FileExtension() string { return ".asm" }

func (Backend) Complete(compiled string) string {
	return preamble + compiled
}

func (Backend) CreateFunction(name, body string) string {
	return fmt.Sprintf("fun_%s:\n%s\tret\n\n", name, body)
}

func (Backend) LinkinFunction(name string) string {
	return fmt.Sprintf("\nextern %s\nfun_%s:\n\tcall %s\n\tret\n\n", name, name, name)
}

func (Backend) UserFunction(name string) string {
	return fmt.Sprintf("\tcall fun_%s\n", name)
}

func (Backend) PushInteger(text string) string {
	return fmt.Sprintf("\tmpush %s\n", text)
}

func (Backend) PushString(text string) string {
	return fmt.Sprintf("\tmpush str_%s\n", labelize(text))
}

func (Backend) Add() string { return "\tcall builtin_add\n" }
func (Backend) Sub() string { return "\tcall builtin_sub\n" }
func (Backend) Mul() string { return "\tcall builtin_mul\n" }
func (Backend) Div() string { return "\tcall builtin_div\n" }
func (Backend) Mod() string { return "\tcall builtin_mod\n" }

func (Backend) Copy() string { return "\tcall data_copy\n" }
func (Backend) Drop() string { return "\tcall dryft_pop\n" }
func (Backend) Swap() string { return "\tcall data_swap\n" }

func (Backend) Equal() string          { return "\tcall builtin_simple_equality\n" }
func (Backend) NotEqual() string       { return "\tcall builtin_simple_non_equality\n" }
func (Backend) Greater() string        { return "\tcall builtin_num_greater\n" }
func (Backend) GreaterOrEqual() string { return "\tcall builtin_num_greater_or_equal\n" }
func (Backend) Less() string           { return "\tcall builtin_num_less_than\n" }
func (Backend) LessOrEqual() string    { return "\tcall builtin_num_less_than_or_equal\n" }

func (Backend) Not() string { return "\tcall builtin_logical_not\n" }
func (Backend) And() string { return "\tcall builtin_logical_and\n" }
func (Backend) Or() string  { return "\tcall builtin_logical_or\n" }

func (Backend) CreateThenCondition(body string, inElect bool) string {
	if inElect {
		return fmt.Sprintf("\tcmp byte [last_condition], 0\n\tjne .skip%%+\n\tcall dryft_pop\n\tcmp rax, 0\n\tje .skip%%+\n\tmov byte [last_condition], 1\n%s.skip%%+:\n", body)
	}
	return fmt.Sprintf("\tcall dryft_pop\n\tcmp rax, 0\n\tje .skip%%+\n%s.skip%%+:\n", body)
}

func (Backend) CreateElectBlock(body string) string {
	return fmt.Sprintf("\tmov byte [last_condition], 0\n%s", body)
}

func (Backend) CreateLoopBlock(body string) string {
	return fmt.Sprintf(".loop%%+:\n%s\tjmp .loop%%-\n.break%%+:\n", body)
}

func (Backend) Break() string  { return "\tjmp .break%-\n" }
func (Backend) Return() string { return "\tret\n" }

func (Backend) CreateVariable(name string) string {
	return fmt.Sprintf("\tcall dryft_pop\n\tmov [var_%s], rax\n", name)
}

func (Backend) ReadVariable(name string) string {
	return fmt.Sprintf("\tmov rax, [var_%s]\n\tcall dryft_push\n", name)
}

func (Backend) WriteVariable(name string) string {
	return fmt.Sprintf("\tcall dryft_pop\n\tmov [var_%s], rax\n", name)
}

func labelize(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			out[i] = c
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

// preamble is the fixed NASM64 runtime: a fixed-size operand stack of
// 65536 quadwords in the BSS segment, push/pop, data_copy, data_swap and
// the arithmetic builtin_add/sub/mul/div/mod routines. The comparison
// and logical builtin_* routines called by Equal through Or are not
// defined here.
const preamble = `; generated by dryftc -- do not edit
BITS 64
section .bss
dryft_stack: resq 65536
dryft_sp: resq 1
last_condition: resb 1

section .text
global _start

%macro mpush 1
	mov rax, %1
	call dryft_push
%endmacro

dryft_push:
	mov rbx, [dryft_sp]
	mov [dryft_stack + rbx*8], rax
	inc rbx
	mov [dryft_sp], rbx
	ret

dryft_pop:
	mov rbx, [dryft_sp]
	dec rbx
	mov rax, [dryft_stack + rbx*8]
	mov [dryft_sp], rbx
	ret

data_copy:
	call dryft_pop
	call dryft_push
	call dryft_push
	ret

data_swap:
	call dryft_pop
	mov rcx, rax
	call dryft_pop
	mov rbx, rax
	mov rax, rcx
	call dryft_push
	mov rax, rbx
	call dryft_push
	ret

builtin_add:
	call dryft_pop
	mov rbx, rax
	call dryft_pop
	add rax, rbx
	call dryft_push
	ret

builtin_sub:
	call dryft_pop
	mov rbx, rax
	call dryft_pop
	sub rax, rbx
	call dryft_push
	ret

builtin_mul:
	call dryft_pop
	mov rbx, rax
	call dryft_pop
	imul rax, rbx
	call dryft_push
	ret

builtin_div:
	call dryft_pop
	mov rbx, rax
	call dryft_pop
	cqo
	idiv rbx
	call dryft_push
	ret

builtin_mod:
	call dryft_pop
	mov rbx, rax
	call dryft_pop
	cqo
	idiv rbx
	mov rax, rdx
	call dryft_push
	ret

`
