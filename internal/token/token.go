// Package token defines the lexical atoms produced by internal/lexer.
package token

import (
	"fmt"
	"regexp"
	"strings"
)

// Position names where a token began: the file it was read from, the
// 1-based line within that file, and the 1-based index of the token
// within its line.
type Position struct {
	File  string
	Line  int
	Index int
}

func (p Position) String() string { return fmt.Sprintf("%v:%v", p.File, p.Line) }

// Token is a lexical atom: its text plus the position where it began.
// Position is frozen at the moment the token started accumulating, not
// where the scanner currently sits -- see internal/lexer.
type Token struct {
	Text string
	Pos  Position
}

func (t Token) String() string { return t.Text }

var numberPattern = regexp.MustCompile(`^-?\d+$`)

// IsNumber reports whether the token text is an integer literal.
func (t Token) IsNumber() bool { return numberPattern.MatchString(t.Text) }

// ReadVar reports whether the token is a variable-read form ($name),
// returning the variable name.
func (t Token) ReadVar() (name string, ok bool) {
	if strings.HasPrefix(t.Text, "$") && len(t.Text) > 1 {
		return t.Text[1:], true
	}
	return "", false
}

// WriteVar reports whether the token is a variable-write form (name!),
// returning the variable name.
func (t Token) WriteVar() (name string, ok bool) {
	if strings.HasSuffix(t.Text, "!") && len(t.Text) > 1 {
		return t.Text[:len(t.Text)-1], true
	}
	return "", false
}
