package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Plain(t *testing.T) {
	out, err := Render("# Release\n\n- write **notes**\n- tag", 60, StylePlain)
	require.NoError(t, err)

	assert.Contains(t, out, "Release")
	assert.Contains(t, out, "notes")
	assert.False(t, strings.Contains(out, "\x1b["), "plain style has no escape codes")
}

func TestRender_Empty(t *testing.T) {
	out, err := Render("   \n", 60, StylePlain)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRender_CachesRenderers(t *testing.T) {
	_, err := Render("a", 40, StylePlain)
	require.NoError(t, err)

	first, ok := rendererCache.Load(cacheKey{width: 40, style: StylePlain})
	require.True(t, ok)

	_, err = Render("b", 40, StylePlain)
	require.NoError(t, err)
	second, _ := rendererCache.Load(cacheKey{width: 40, style: StylePlain})
	assert.Same(t, first, second)
}

func TestRender_Dark(t *testing.T) {
	out, err := Render("# Title\n\nbody text", 40, StyleDark)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}
