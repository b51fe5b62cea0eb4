package source_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dryftlang/dryft/internal/source"
)

func readAll(t *testing.T, r *source.Reader) string {
	t.Helper()
	var out strings.Builder
	for {
		r2, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		out.WriteRune(r2)
	}
	return out.String()
}

func TestReaderPlain(t *testing.T) {
	r := source.NewReader("root.dry", strings.NewReader("abc"))
	assert.Equal(t, "abc", readAll(t, r))
	assert.Equal(t, 0, r.Depth())
}

func TestReaderIncludeSplicesAtPosition(t *testing.T) {
	r := source.NewReader("root.dry", strings.NewReader("ab"))

	r2, _, err := r.ReadRune()
	require.NoError(t, err)
	assert.Equal(t, 'a', r2)

	r.Include("inc.dry", strings.NewReader("XY"))
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "inc.dry", r.Location().Name)

	assert.Equal(t, "XYb", readAll(t, r))
	assert.Equal(t, 0, r.Depth())
	assert.Equal(t, "root.dry", r.Location().Name)
}

func TestReaderNestedIncludes(t *testing.T) {
	r := source.NewReader("root.dry", strings.NewReader("a"))
	r.Include("mid.dry", strings.NewReader("b"))
	r.Include("inner.dry", strings.NewReader("c"))

	assert.Equal(t, "cba", readAll(t, r))
}

func TestReaderTracksLine(t *testing.T) {
	r := source.NewReader("root.dry", strings.NewReader("a\nb\nc"))
	for i := 0; i < 3; i++ {
		_, _, err := r.ReadRune()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, r.Location().Line, "should have crossed one newline")
}

type closeTrackingReader struct {
	io.Reader
	closed *bool
}

func (c closeTrackingReader) Close() error {
	*c.closed = true
	return nil
}

func TestReaderClosesIncludedCloser(t *testing.T) {
	closed := false
	r := source.NewReader("root.dry", strings.NewReader(""))
	r.Include("inc.dry", closeTrackingReader{strings.NewReader("x"), &closed})

	readAll(t, r)
	assert.True(t, closed, "included io.Closer should be closed once exhausted")
}
