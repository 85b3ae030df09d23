package model

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/maaslalani/pitchdeck/internal/code"
	"github.com/maaslalani/pitchdeck/internal/deck"
	"github.com/maaslalani/pitchdeck/internal/navigation"
	"github.com/maaslalani/pitchdeck/internal/slides"
	"github.com/maaslalani/pitchdeck/styles"
)

var tabSpaces = strings.Repeat(" ", 4)

// DefaultPaging is the pagination format of the status bar.
const DefaultPaging = "Slide %d / %d"

// Model represents the model of this presentation, which contains all the
// state related to the current slides.
type Model struct {
	Slides   []slides.Slide
	Page     int
	Author   string
	Date     string
	Theme    glamour.TermRendererOption
	Paging   string
	viewport viewport.Model
	buffer   string
	// VirtualText is used for additional information that is not part of the
	// original slides, it will be displayed on a slide and reset on page change
	VirtualText string
	Search      navigation.Search
	// clip writes to the system clipboard.
	clip func(string) error
}

// New returns a preview of d.
func New(d *deck.Deck, author, date string, theme glamour.TermRendererOption) Model {
	if theme == nil {
		theme = styles.SelectTheme("")
	}
	return Model{
		Slides:   slides.FromDeck(d),
		Author:   author,
		Date:     date,
		Theme:    theme,
		Paging:   DefaultPaging,
		viewport: viewport.New(0, 0),
		Search:   navigation.NewSearch(),
		clip:     clipboard.WriteAll,
	}
}

// WithSize returns a copy of m laid out for a width x height terminal.
func (m Model) WithSize(width, height int) Model {
	m.viewport.Width = width
	m.viewport.Height = height
	return m
}

type autoRenderLinksMsg struct{}

// Init shows the links of the first slide.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return autoRenderLinksMsg{} }
}

// Update updates the presentation model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		m.VirtualText = ""
		return m, ClearScreen

	case autoRenderLinksMsg:
		m.AutoRenderLinks()
		return m, nil

	case tea.KeyMsg:
		keyPress := msg.String()

		if m.Search.Active {
			switch msg.Type {
			case tea.KeyEnter:
				// execute current buffer
				if m.Search.Query() != "" {
					m.Search.Execute(&m)
				} else {
					m.Search.Done()
				}
				// cancel search
				return m, nil
			case tea.KeyCtrlC, tea.KeyEscape:
				// quit command mode
				m.Search.SetQuery("")
				m.Search.Done()
				return m, nil
			}

			var cmd tea.Cmd
			m.Search.SearchTextInput, cmd = m.Search.SearchTextInput.Update(msg)
			return m, cmd
		}

		switch keyPress {
		case "/":
			// Begin search
			m.Search.Begin()
			m.Search.SearchTextInput.Focus()
			return m, nil
		case "ctrl+n":
			// Go to next occurrence
			m.Search.Execute(&m)
			return m, nil
		case "ctrl+x":
			m.VirtualText = ""
			return m, ClearScreen
		case "y":
			if len(m.Slides) == 0 {
				return m, nil
			}
			if err := m.clip(m.Slides[m.Page].Text()); err != nil {
				m.VirtualText = "\n" + styles.Banner.Render("could not copy: "+err.Error())
				return m, nil
			}
			m.VirtualText = "\n" + styles.Banner.Render("copied to clipboard")
			return m, nil
		case "ctrl+c", "q":
			return m, tea.Quit
		default:
			newState := navigation.Navigate(navigation.State{
				Buffer:      m.buffer,
				Page:        m.Page,
				TotalSlides: len(m.Slides),
			}, keyPress)
			m.buffer = newState.Buffer
			return m, m.SetPage(newState.Page)
		}
	}
	return m, nil
}

// AutoRenderLinks shows a QR code for every link on the current slide.
func (m *Model) AutoRenderLinks() {
	m.VirtualText = ""
	if len(m.Slides) == 0 {
		return
	}
	qr, err := code.RenderQR(m.Slides[m.Page].Links)
	if err != nil {
		return
	}
	m.VirtualText = "\n" + qr
}

// GetSlide renders the markdown of the current slide.
func (m Model) GetSlide() string {
	if len(m.Slides) == 0 {
		return styles.Slide.Render("No slides.")
	}
	r, err := glamour.NewTermRenderer(m.Theme, glamour.WithWordWrap(m.viewport.Width))
	if err != nil {
		return styles.Slide.Render(fmt.Sprintf("Error: Could not render markdown! (%v)", err))
	}
	slide, err := r.Render(m.Slides[m.Page].Content)
	if err != nil {
		slide = fmt.Sprintf("Error: Could not render markdown! (%v)", err)
	}
	slide = strings.ReplaceAll(slide, "\t", tabSpaces)
	slide += m.VirtualText
	return styles.Slide.Render(slide)
}

// GetStatusLine renders the search bar or the author and date, with the
// paging on the right.
func (m Model) GetStatusLine() string {
	var left string
	if m.Search.Active {
		// render search bar
		left = m.Search.SearchTextInput.View()
	} else {
		// render author and date
		left = styles.Author.Render(m.Author) + styles.Date.Render(m.Date)
	}

	right := styles.Page.Render(m.paging())
	return styles.Status.Render(styles.JoinHorizontal(left, right, m.viewport.Width))
}

// View renders the current slide in the presentation and the status bar which
// contains the author, date, and pagination information.
func (m Model) View() string {
	return styles.JoinVertical(
		m.GetSlide(),
		m.GetStatusLine(),
		m.viewport.Height,
	)
}

func (m *Model) paging() string {
	switch strings.Count(m.Paging, "%d") {
	case 2:
		return fmt.Sprintf(m.Paging, m.Page+1, len(m.Slides))
	case 1:
		return fmt.Sprintf(m.Paging, m.Page+1)
	default:
		return m.Paging
	}
}

// CurrentPage returns the current page the presentation is on.
func (m *Model) CurrentPage() int {
	return m.Page
}

// ClearScreen clears the terminal and then renders the links of the new page.
var ClearScreen = tea.Sequence(tea.ClearScreen, func() tea.Msg {
	return autoRenderLinksMsg{}
})

// SetPage sets which page the presentation should render.
func (m *Model) SetPage(page int) tea.Cmd {
	if m.Page == page {
		return nil
	}

	m.VirtualText = ""
	m.Page = page

	return ClearScreen
}

// Pages returns all the slides in the presentation.
func (m *Model) Pages() []slides.Slide {
	return m.Slides
}
