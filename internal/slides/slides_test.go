package slides

import (
	"testing"

	"github.com/maaslalani/pitchdeck/internal/deck"
	"github.com/maaslalani/pitchdeck/internal/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDeck(t *testing.T) {
	d, err := deck.Build(pitch.Slides(), pitch.Palette())
	require.NoError(t, err)

	pages := FromDeck(d)
	require.Len(t, pages, 11)

	assert.Equal(t, "📍 Sistema de Georreferenciamento de Imagens para Saneamento", pages[0].Title)
	assert.Contains(t, pages[0].Content, "# 📍 Sistema de Georreferenciamento de Imagens para Saneamento\n")
	assert.Contains(t, pages[0].Content, "- **80%** · REDUÇÃO DE TEMPO · EM RELATÓRIOS")

	assert.Equal(t, "Contexto Operacional no Saneamento", pages[1].Title)
	assert.Equal(t, "Obrigado!", pages[10].Title)

	for i, p := range pages {
		if i == 9 {
			assert.Equal(t, []string{"https://relatoriopendv0.vercel.app"}, p.Links)
			assert.Contains(t, p.Content, "](https://relatoriopendv0.vercel.app)")
			continue
		}
		assert.Empty(t, p.Links, "slide %d", i+1)
	}
}

func TestFromDeckNil(t *testing.T) {
	assert.Nil(t, FromDeck(nil))
}

func TestFromSlide(t *testing.T) {
	white := deck.RGB(255, 255, 255)
	s := deck.Slide{Elements: []deck.Element{
		deck.Shape{Name: "Header", Frame: deck.Box(0, 0, 16, 1.5)},
		deck.TextBox{Name: "Title", Paragraphs: []deck.Paragraph{
			{Text: "Flow", Font: deck.Font{Size: 40, Bold: true, Color: white}},
			{Text: "from field to report", Font: deck.Font{Size: 20, Color: white}},
		}},
		deck.TextBox{Name: "Heading", Paragraphs: []deck.Paragraph{
			{Text: "Steps", Font: deck.Font{Size: 28, Bold: true}},
		}},
		deck.TextBox{Name: "Note", Paragraphs: []deck.Paragraph{
			{Text: "first\n\nsecond", Font: deck.Font{Size: 16, Bold: true}},
		}},
		deck.Group{Name: "Step 1", Elements: []deck.Element{
			deck.Shape{Name: "Step 1 marker"},
			deck.TextBox{Name: "Step 1 number", Paragraphs: []deck.Paragraph{{Text: "1"}}},
			deck.TextBox{Name: "Step 1 title", Paragraphs: []deck.Paragraph{{Text: "Capture"}}},
		}},
		deck.Group{Name: "Empty"},
	}}

	page := fromSlide(s)
	assert.Equal(t, "Flow", page.Title)
	assert.Equal(t, "# Flow\n\nfrom field to report\n\n## Steps\n\n**first**\n\n**second**\n\n- **1** · Capture\n", page.Content)
	assert.Equal(t, s.Text(), page.Text())
	assert.Equal(t, "Flow\nfrom field to report\nSteps\nfirst\n\nsecond\n1\nCapture", page.Text())
}

func TestFromSlideEscapesMarkdown(t *testing.T) {
	d, err := deck.Build([]deck.SlideSpec{
		deck.Closing{Title: "Roadmap 2025 - 2026", Subtitle: "C# - Go"},
		deck.TwoColumn{
			Header: deck.Header{Title: "Notes"},
			Left:   deck.Column{Heading: "Left", Items: []string{"*bold* [x] snake_case", "- dash", "3. third"}},
			Right:  deck.Column{Heading: "Right"},
		},
	}, pitch.Palette())
	require.NoError(t, err)
	pages := FromDeck(d)
	require.Len(t, pages, 2)

	closing := pages[0]
	assert.Equal(t, "Roadmap 2025 - 2026", closing.Title)
	assert.Contains(t, closing.Text(), "Roadmap 2025 - 2026")
	assert.Contains(t, closing.Text(), "C# - Go")
	assert.Contains(t, closing.Content, "# Roadmap 2025 - 2026\n")
	assert.Contains(t, closing.Content, `C\# - Go`)

	notes := pages[1]
	assert.Contains(t, notes.Text(), "*bold* [x] snake_case")
	assert.Contains(t, notes.Content, `\*bold\* \[x\] snake\_case`)
	assert.Contains(t, notes.Content, `\- dash`)
	assert.Contains(t, notes.Content, `3\. third`)
}

func TestEscape(t *testing.T) {
	for in, want := range map[string]string{
		"plain":     "plain",
		"a * b":     `a \* b`,
		"# head":    `\# head`,
		"+ item":    `\+ item`,
		"10. ten":   `10\. ten`,
		"1.5 ratio": "1.5 ratio",
		`back\`:     `back\\`,
	} {
		assert.Equal(t, want, escape(in), in)
	}
}
