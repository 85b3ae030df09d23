package code

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const link = "https://relatoriopendv0.vercel.app"

func TestQR(t *testing.T) {
	out := QR(link)
	require.NotEmpty(t, out)
	assert.Equal(t, out, QR(link), "deterministic")
	assert.Equal(t, QR(link), QR("  "+link+"\n"))
	assert.True(t, strings.ContainsAny(out, "▀▄█"))
}

func TestRenderQR(t *testing.T) {
	one, err := RenderQR([]string{link})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(one), link)

	two, err := RenderQR([]string{link, "", "https://example.com"})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(two), "https://example.com")
	assert.Greater(t, lipgloss.Width(two), lipgloss.Width(one))
}

func TestRenderQRNoLinks(t *testing.T) {
	_, err := RenderQR(nil)
	assert.ErrorIs(t, err, ErrNoLinks)
	_, err = RenderQR([]string{" "})
	assert.ErrorIs(t, err, ErrNoLinks)
}
