package navigation

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/maaslalani/pitchdeck/internal/slides"
	"github.com/maaslalani/pitchdeck/styles"
)

// Model is the part of the presentation a search needs to move around.
type Model interface {
	CurrentPage() int
	SetPage(page int) tea.Cmd
	Pages() []slides.Slide
}

// Search represents the current search
type Search struct {
	// Active - Show search bar instead of author and page number
	Active bool
	// SearchTextInput - The search bar
	SearchTextInput textinput.Model
}

// NewSearch returns an inactive search with a styled input.
func NewSearch() Search {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/"
	ti.PromptStyle = styles.Search
	ti.TextStyle = styles.Search
	return Search{SearchTextInput: ti}
}

// Query returns the text of the search bar.
func (s *Search) Query() string {
	return s.SearchTextInput.Value()
}

// SetQuery sets the text of the search bar.
func (s *Search) SetQuery(query string) {
	s.SearchTextInput.SetValue(query)
}

// Begin activates the search bar with an empty query.
func (s *Search) Begin() {
	s.Active = true
	s.SetQuery("")
}

// Done deactivates the search bar.
func (s *Search) Done() {
	s.Active = false
}

// Execute moves m to the next page after the current one whose content
// matches the query, wrapping around to the first page. A trailing /i makes
// the match case-insensitive.
func (s *Search) Execute(m Model) {
	defer s.Done()
	expr := s.Query()
	if expr == "" {
		return
	}
	if strings.HasSuffix(expr, "/i") {
		expr = "(?i)" + strings.TrimSuffix(expr, "/i")
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return
	}

	pages := m.Pages()
	check := func(i int) bool {
		if !pattern.MatchString(pages[i].Content) {
			return false
		}
		m.SetPage(i)
		return true
	}
	for i := m.CurrentPage() + 1; i < len(pages); i++ {
		if check(i) {
			return
		}
	}
	for i := 0; i < m.CurrentPage(); i++ {
		if check(i) {
			return
		}
	}
}
