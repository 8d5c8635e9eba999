package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBannerCentersEachLine(t *testing.T) {
	art := []string{
		"████████",
		"██",
	}
	var buf bytes.Buffer
	RenderBanner(&buf, art, 80, PlainTheme)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat(" ", 36)+"████████", lines[0])
	assert.Equal(t, strings.Repeat(" ", 39)+"██", lines[1])
}

func TestRenderBannerAppliesTheme(t *testing.T) {
	var buf bytes.Buffer
	RenderBanner(&buf, []string{"██"}, 4, DefaultTheme)

	assert.Equal(t, " "+ColorCyan+"██"+ColorReset+"\n", buf.String())
}

func TestRenderBannerNarrowTerminal(t *testing.T) {
	var buf bytes.Buffer
	RenderBanner(&buf, []string{"████████"}, 3, PlainTheme)

	// Padding clamps to zero instead of going negative.
	assert.Equal(t, "████████\n", buf.String())
}

func TestRenderBannerPreservesOrder(t *testing.T) {
	art := []string{"a", "b", "c"}
	var buf bytes.Buffer
	RenderBanner(&buf, art, 0, PlainTheme)

	assert.Equal(t, "a\nb\nc\n", buf.String())
}
