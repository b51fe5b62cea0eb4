package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dryftlang/dryft/internal/token"
)

func TestIsNumber(t *testing.T) {
	for _, tc := range []struct {
		text string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"-7", true},
		{"-0", true},
		{"", false},
		{"-", false},
		{"12a", false},
		{"a12", false},
		{"$x", false},
	} {
		tok := token.Token{Text: tc.text}
		assert.Equal(t, tc.want, tok.IsNumber(), "IsNumber(%q)", tc.text)
	}
}

func TestReadVar(t *testing.T) {
	for _, tc := range []struct {
		text     string
		wantName string
		wantOk   bool
	}{
		{"$x", "x", true},
		{"$count", "count", true},
		{"$", "", false},
		{"x", "", false},
		{"x!", "", false},
	} {
		name, ok := token.Token{Text: tc.text}.ReadVar()
		assert.Equal(t, tc.wantOk, ok, "ReadVar(%q) ok", tc.text)
		assert.Equal(t, tc.wantName, name, "ReadVar(%q) name", tc.text)
	}
}

func TestWriteVar(t *testing.T) {
	for _, tc := range []struct {
		text     string
		wantName string
		wantOk   bool
	}{
		{"x!", "x", true},
		{"count!", "count", true},
		{"!", "", false},
		{"x", "", false},
		{"$x", "", false},
	} {
		name, ok := token.Token{Text: tc.text}.WriteVar()
		assert.Equal(t, tc.wantOk, ok, "WriteVar(%q) ok", tc.text)
		assert.Equal(t, tc.wantName, name, "WriteVar(%q) name", tc.text)
	}
}

func TestPositionString(t *testing.T) {
	pos := token.Position{File: "prog.dry", Line: 3, Index: 2}
	assert.Equal(t, "prog.dry:3", pos.String())
}
