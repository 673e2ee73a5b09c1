package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	s := Summarize(twoScopeCorpus())
	text, err := RenderMarkdown(s)
	require.NoError(t, err)

	assert.Contains(t, text, "**2** setup records")
	assert.Contains(t, text, "**2** distinct component files")
	assert.Contains(t, text, "jane: 1 setups")
	assert.Contains(t, text, "nema17.stl: used 3 times")
	assert.Contains(t, text, "laser.stl: used 1 times")
}
