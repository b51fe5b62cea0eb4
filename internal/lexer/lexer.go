// Package lexer implements the dryft tokenizer: a small state machine
// over a source.Reader with modes {Normal, Comment, String} (spec §4.2).
package lexer

import (
	"io"
	"strings"
	"unicode"

	"github.com/dryftlang/dryft/internal/source"
	"github.com/dryftlang/dryft/internal/token"
)

type mode int

const (
	modeNormal mode = iota
	modeComment
	modeString
)

// StringLiteral is yielded in place of a Token whenever a `"…"` literal
// closes; it carries no dispatch identity of its own (spec §4.2: "closes
// the literal and immediately emits... without participating in the
// stack-structured token dispatch").
type StringLiteral struct {
	Text string
	Pos  token.Position
}

// Lexer pulls tokens and string literals off a source.Reader, tracking
// (file, line, token-index-in-line) for diagnostics.
type Lexer struct {
	in *source.Reader

	mode mode
	word strings.Builder
	str  strings.Builder

	tokenIndex int

	// tokenFile/tokenLine freeze the diagnostic position of the token
	// currently accumulating, snapshotted when the word starts (spec
	// §4.2: "when a word first begins...snapshot (token_file,
	// token_line) to freeze the diagnostic location").
	tokenFile string
	tokenLine int
}

// New returns a Lexer reading from in, rooted at the given file name.
func New(in *source.Reader, rootFile string) *Lexer {
	return &Lexer{in: in, tokenFile: rootFile, tokenLine: 1}
}

// Item is either a *token.Token or a *StringLiteral, returned from Next.
type Item struct {
	Token  *token.Token
	String *StringLiteral
}

// Next returns the next lexical item, or io.EOF once the stream and any
// pending final word are exhausted.
func (l *Lexer) Next() (Item, error) {
	for {
		r, _, err := l.in.ReadRune()
		if err == io.EOF {
			return l.flushFinal()
		}
		if err != nil {
			return Item{}, err
		}

		switch l.mode {
		case modeComment:
			if r == '#' {
				l.mode = modeNormal
			} else if r == '\n' {
				l.tokenIndex = 0
			}
			continue

		case modeString:
			if r == '"' {
				l.mode = modeNormal
				lit := l.str.String()
				l.str.Reset()
				return Item{String: &StringLiteral{Text: lit, Pos: token.Position{File: l.tokenFile, Line: l.tokenLine, Index: l.tokenIndex}}}, nil
			}
			l.str.WriteRune(r)
			continue

		default: // modeNormal
			if r == '\n' {
				if l.word.Len() > 0 {
					it := l.flushWord()
					l.tokenIndex = 0
					return it, nil
				}
				l.tokenIndex = 0
				continue
			}
			if r == ' ' || r == '\t' {
				if l.word.Len() > 0 {
					return l.flushWord(), nil
				}
				continue
			}
			if r == '#' {
				if l.word.Len() > 0 {
					it := l.flushWord()
					l.mode = modeComment
					return it, nil
				}
				l.mode = modeComment
				continue
			}
			if r == '"' {
				if l.word.Len() > 0 {
					it := l.flushWord()
					l.mode = modeString
					l.snapshotPos()
					return it, nil
				}
				l.mode = modeString
				l.str.Reset()
				l.snapshotPos()
				continue
			}
			if l.word.Len() == 0 {
				l.snapshotPos()
			}
			l.word.WriteRune(r)
		}
	}
}

// snapshotPos freezes the diagnostic position of whatever token or
// string literal is starting to accumulate, reading the current line
// from the underlying source.Reader's innermost frame rather than
// keeping an independent count -- an include splice changes which
// frame (and thus which line counter) is current (spec §4.2).
func (l *Lexer) snapshotPos() {
	loc := l.in.Location()
	l.tokenFile, l.tokenLine = loc.Name, loc.Line
}

func (l *Lexer) flushWord() Item {
	l.tokenIndex++
	text := l.word.String()
	l.word.Reset()
	return Item{Token: &token.Token{Text: text, Pos: token.Position{File: l.tokenFile, Line: l.tokenLine, Index: l.tokenIndex}}}
}

func (l *Lexer) flushFinal() (Item, error) {
	if l.word.Len() > 0 {
		return l.flushWord(), nil
	}
	return Item{}, io.EOF
}

// IsControlOrSpace reports whether r is a Unicode control or white-space
// rune; exported for callers that want to pre-scan without constructing
// a Lexer. Next does not use it: a word ends only at a space, tab,
// newline, `#` or `"`.
func IsControlOrSpace(r rune) bool {
	return unicode.IsControl(r) || unicode.IsSpace(r)
}
