package navigation

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/maaslalani/pitchdeck/internal/slides"
	"github.com/stretchr/testify/assert"
)

type mockModel struct {
	slides []slides.Slide
	page   int
}

func (m *mockModel) CurrentPage() int {
	return m.page
}

func (m *mockModel) SetPage(page int) tea.Cmd {
	m.page = page
	return nil
}

func (m *mockModel) Pages() []slides.Slide {
	return m.slides
}

func TestSearch(t *testing.T) {
	data := []slides.Slide{
		{Content: "# Sistema de Georreferenciamento"},
		{Content: "Contexto Operacional"},
		{Content: "Benefícios e ROI"},
		{Content: "Tecnologia"},
		{Content: "ABRANGÊNCIA"},
		{Content: "abrangência geográfica"},
		{Content: "ROI em 12 meses"},
	}

	// query -> expected page
	queries := []struct {
		desc     string
		query    string
		expected int
	}{
		{"basic 'Contexto'", "Contexto", 1},
		{"basic 'abr'", "abr", 5},
		{"basic 'abr' next occurrence", "abr", 5},
		{"'abr' ignore case", "abr/i", 4},
		{"'abr' ignore case", "abr/i", 5},
		{"'abr' ignore case", "abr/i", 4},
		{"next occurrence 1/2", "ROI", 6},
		{"next occurrence 2/2", "ROI", 2},
		{"regex", "a.r", 5},
		{"regex next occurrence", "a.r", 5},
		{"regex ignore case", "a.r/i", 4},
		{"regex ignore case next occurrence", "a.r/i", 5},
	}

	m := &mockModel{slides: data}
	s := &Search{}
	for _, q := range queries {
		s.SetQuery(q.query)
		s.Execute(m)
		assert.Equal(t, q.expected, m.CurrentPage(), q.desc)
	}
}

func TestSearchNoMatch(t *testing.T) {
	m := &mockModel{slides: []slides.Slide{{Content: "a"}, {Content: "b"}}, page: 1}
	s := NewSearch()
	s.Begin()
	assert.True(t, s.Active)

	s.SetQuery("zzz")
	s.Execute(m)
	assert.Equal(t, 1, m.CurrentPage())
	assert.False(t, s.Active)

	s.SetQuery("[")
	s.Execute(m)
	assert.Equal(t, 1, m.CurrentPage(), "invalid pattern")

	s.SetQuery("")
	s.Execute(m)
	assert.Equal(t, 1, m.CurrentPage())
}
