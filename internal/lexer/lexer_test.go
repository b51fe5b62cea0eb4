package lexer_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dryftlang/dryft/internal/lexer"
	"github.com/dryftlang/dryft/internal/source"
)

func items(t *testing.T, src string) []lexer.Item {
	t.Helper()
	r := source.NewReader("test.dry", strings.NewReader(src))
	l := lexer.New(r, "test.dry")
	var out []lexer.Item
	for {
		it, err := l.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, it)
	}
}

func words(t *testing.T, src string) []string {
	t.Helper()
	var out []string
	for _, it := range items(t, src) {
		switch {
		case it.Token != nil:
			out = append(out, it.Token.Text)
		case it.String != nil:
			out = append(out, `"`+it.String.Text+`"`)
		}
	}
	return out
}

func TestSplitsOnWhitespace(t *testing.T) {
	assert.Equal(t, []string{"fun:", "inc", "1", "+", ":fun"}, words(t, "fun: inc 1 + :fun"))
}

func TestSplitsOnNewlineAndTab(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, words(t, "a\nb\tc"))
}

func TestCommentIsSkipped(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, words(t, "a # this is a comment # b"))
}

func TestCommentHashInsideIsOpaque(t *testing.T) {
	// a single unmatched # opens a comment that runs to EOF or the next #;
	assert.Equal(t, []string{"a", "b"}, words(t, "a #one# #two# b"))
}

func TestStringLiteral(t *testing.T) {
	assert.Equal(t, []string{`"hello world"`}, words(t, `"hello world"`))
}

func TestStringOpaqueToCommentsAndKeywords(t *testing.T) {
	assert.Equal(t, []string{`" # fake comment # "`}, words(t, `" # fake comment # "`))
}

func TestStringAdjacentToWords(t *testing.T) {
	assert.Equal(t, []string{"a", `"b"`, "c"}, words(t, `a"b"c`))
}

func TestFinalWordFlushedAtEOF(t *testing.T) {
	assert.Equal(t, []string{"abc"}, words(t, "abc"))
}

func TestTokenPositionsTrackLine(t *testing.T) {
	its := items(t, "a\nb")
	require.Len(t, its, 2)
	assert.Equal(t, 1, its[0].Token.Pos.Line)
	assert.Equal(t, 2, its[1].Token.Pos.Line)
}

func TestTokenPositionsTrackLinePerIncludeFrame(t *testing.T) {
	r := source.NewReader("root.dry", strings.NewReader("aaa\nbbb\n"))
	r.Include("inc.dry", strings.NewReader("x\ny\n"))
	l := lexer.New(r, "root.dry")

	var its []lexer.Item
	for {
		it, err := l.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		its = append(its, it)
	}
	require.Len(t, its, 4)

	assert.Equal(t, "inc.dry", its[0].Token.Pos.File)
	assert.Equal(t, 1, its[0].Token.Pos.Line)
	assert.Equal(t, "inc.dry", its[1].Token.Pos.File)
	assert.Equal(t, 2, its[1].Token.Pos.Line)

	// once the included frame is exhausted the root frame resumes at its
	// own line count, unaffected by however many lines the include added.
	assert.Equal(t, "root.dry", its[2].Token.Pos.File)
	assert.Equal(t, 1, its[2].Token.Pos.Line)
	assert.Equal(t, "root.dry", its[3].Token.Pos.File)
	assert.Equal(t, 2, its[3].Token.Pos.Line)
}
