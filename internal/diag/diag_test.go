package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dryftlang/dryft/internal/diag"
	"github.com/dryftlang/dryft/internal/token"
)

func TestErrorFormat(t *testing.T) {
	err := diag.At(token.Position{File: "prog.dry", Line: 4, Index: 6}, "Type mismatch : Expected %v, found %v", "Number", "Text")
	assert.Equal(t, `[DRYFT ERROR] prog.dry:4, word 6: Type mismatch : Expected Number, found Text`, err.Error())
}

func TestWarningFormat(t *testing.T) {
	w := diag.WarnAt(token.Position{File: "prog.dry", Line: 1, Index: 1}, "unused variable %q", "x")
	assert.Equal(t, `[DRYFT WARNING] prog.dry:1, word 1: unused variable "x"`, w.String())
}
