package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dryftlang/dryft/internal/types"
)

func TestAccepts(t *testing.T) {
	for _, tc := range []struct {
		want, v types.Value
		accepts bool
	}{
		{types.Number, types.Number, true},
		{types.Number, types.Text, false},
		{types.Fake, types.Text, true},
		{types.Text, types.Fake, true},
		{types.Fake, types.Fake, true},
		{types.Binary, types.Number, false},
	} {
		assert.Equal(t, tc.accepts, types.Accepts(tc.want, tc.v), "Accepts(%v, %v)", tc.want, tc.v)
	}
}

func TestSeqEqual(t *testing.T) {
	a := types.Seq{types.Number, types.Text}
	b := types.Seq{types.Number, types.Text}
	c := types.Seq{types.Number, types.Binary}
	d := types.Seq{types.Number, types.Fake}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Equal(d), "Fake should match anything positionally")
	assert.False(t, a.Equal(types.Seq{types.Number}))
}

func TestSeqString(t *testing.T) {
	assert.Equal(t, "[]", types.Seq{}.String())
	assert.Equal(t, "[Number]", types.Seq{types.Number}.String())
	assert.Equal(t, "[Number, Text]", types.Seq{types.Number, types.Text}.String())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "Number", types.Number.String())
	assert.Equal(t, "Text", types.Text.String())
	assert.Equal(t, "Binary", types.Binary.String())
	assert.Equal(t, "Fake", types.Fake.String())
}
