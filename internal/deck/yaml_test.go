package deck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	in := &File{
		Title:   "Deck",
		Author:  "Team",
		Palette: Palette{RoleAccent: RGB(0, 212, 255)},
		Slides:  sampleSpecs(),
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in))
	assert.Contains(t, buf.String(), "- kind: cover\n")

	out, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecode(t *testing.T) {
	src := `
title: Example
palette:
  background: "#000000"
slides:
  - kind: cover
    title: Hello
    metrics:
      - value: "1"
        label: one
  - kind: two-column
    header:
      title: Context
    left:
      heading: Left
      items: [a, b]
      tone:
        fill: danger-surface
        line: danger
    right:
      heading: Right
`
	f, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Example", f.Title)
	assert.Equal(t, RGB(0, 0, 0), f.Palette[RoleBackground])
	require.Len(t, f.Slides, 2)
	assert.Equal(t, Cover{Title: "Hello", Metrics: []Metric{{"1", "one"}}}, f.Slides[0])

	two, ok := f.Slides[1].(TwoColumn)
	require.True(t, ok)
	assert.Equal(t, ToneDanger, two.Left.Tone)
	assert.Equal(t, []string{"a", "b"}, two.Left.Items)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		desc string
		src  string
		err  error
	}{
		{"unknown kind", "slides:\n  - kind: carousel\n", ErrUnknownKind},
		{"missing kind", "slides:\n  - title: x\n", ErrUnknownKind},
		{"bad color", "palette:\n  accent: blue\nslides: []\n", ErrInvalidColor},
	}
	for _, tt := range tests {
		_, err := Decode(strings.NewReader(tt.src))
		assert.ErrorIs(t, err, tt.err, tt.desc)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slides:\n  - kind: closing\n    title: Bye\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []SlideSpec{Closing{Title: "Bye"}}, f.Slides)

	_, err = LoadFile(dir)
	assert.EqualError(t, err, "can not read directory")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "could not read file: ")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
