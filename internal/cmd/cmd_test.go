package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/maaslalani/pitchdeck/internal/deck"
	"github.com/maaslalani/pitchdeck/internal/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := New()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	out, err := run(t, "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Apresentação criada com sucesso!")
	assert.Contains(t, out, "📁 Arquivo: "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestBuildDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = run(t)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, pitch.DefaultOutput))
}

func TestBuildFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`title: Short deck
palette:
  accent: "#FF0000"
slides:
  - kind: closing
    title: Obrigado!
`), 0o600))

	f, err := load(file)
	require.NoError(t, err)
	assert.Equal(t, "Short deck", f.Title)
	assert.Equal(t, pitch.Author, f.Author)
	assert.Len(t, f.Slides, 1)
	assert.Equal(t, deck.RGB(255, 0, 0), f.Palette[deck.RoleAccent])
	assert.Equal(t, pitch.Palette()[deck.RoleSurface], f.Palette[deck.RoleSurface])

	_, err = run(t, "-f", file, "-o", filepath.Join(dir, "short.pptx"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "short.pptx"))
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "-f", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "could not read file")
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("slides:\n  - kind: hologram\n"), 0o600))
	_, err = run(t, "-f", bad)
	assert.ErrorIs(t, err, deck.ErrUnknownKind)

	_, err = run(t, "-o", filepath.Join(dir, "missing", "deck.pptx"))
	assert.ErrorContains(t, err, "could not save")

	_, err = run(t, "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")

	_, err = run(t, "extra")
	assert.Error(t, err)
}

func TestSpec(t *testing.T) {
	out, err := run(t, "spec")
	require.NoError(t, err)

	f, err := deck.Decode(bytes.NewBufferString(out))
	require.NoError(t, err)
	assert.Equal(t, pitch.Title, f.Title)
	assert.Equal(t, pitch.Slides(), f.Slides)
}

func TestRender(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "png")
	out, err := run(t, "render", "-d", dir, "--width", "160")
	require.NoError(t, err)
	assert.Contains(t, out, "11 slides rendered")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 11)
}

func TestPreviewNeedsTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	_, err := run(t, "preview")
	assert.ErrorIs(t, err, ErrNotTerminal)
}
