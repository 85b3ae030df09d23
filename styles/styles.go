package styles

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	accent = lipgloss.Color("#00D4FF")
	muted  = lipgloss.Color("#B8C5D6")
	navy   = lipgloss.Color("#1E3C72")
)

var (
	// Author is the style for the author text in the bottom-left corner of the
	// presentation.
	Author = lipgloss.NewStyle().Foreground(accent).Bold(true).Align(lipgloss.Left).MarginLeft(2)
	// Date is the style for the date text in the bottom-left corner of the
	// presentation.
	Date = lipgloss.NewStyle().Foreground(muted).Faint(true).Align(lipgloss.Left).Margin(0, 1)
	// Page is the style for the pagination progress information text in the
	// bottom-right corner of the presentation.
	Page = lipgloss.NewStyle().Foreground(accent).Align(lipgloss.Right).MarginRight(3)
	// Slide is the style for the slide.
	Slide = lipgloss.NewStyle().Padding(1)
	// Status is the style for the status bar at the bottom of the
	// presentation.
	Status = lipgloss.NewStyle().Padding(1)
	// Search is the style for the search input at the bottom-left corner of
	// the screen when searching is active.
	Search = lipgloss.NewStyle().Foreground(accent)
	// Link is the style for URLs printed under their QR code.
	Link = lipgloss.NewStyle().Foreground(accent).Underline(true)
	// Banner is the style for one-line notices such as "copied".
	Banner = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(navy).Padding(0, 1)
)

//go:embed theme.json
var DefaultTheme []byte

// JoinHorizontal joins two strings horizontally and fills the space in-between.
func JoinHorizontal(left, right string, width int) string {
	length := lipgloss.Width(left + right)
	if width < length {
		return left + " " + right
	}
	padding := strings.Repeat(" ", width-length)
	return left + padding + right
}

// JoinVertical joins two strings vertically and fills the space in-between.
func JoinVertical(top, bottom string, height int) string {
	h := lipgloss.Height(top) + lipgloss.Height(bottom)
	if height < h {
		return top + "\n" + bottom
	}
	fill := strings.Repeat("\n", height-h)
	return top + fill + bottom
}

// SelectTheme picks a glamour style config based on the theme provided in
// the flags: a standard style name, "auto", or a path to a JSON style.
func SelectTheme(theme string) glamour.TermRendererOption {
	switch theme {
	case "ascii", "light", "dark", "notty", "dracula", "pink", "tokyo-night":
		return glamour.WithStandardStyle(theme)
	case "auto":
		return glamour.WithAutoStyle()
	case "", "default":
		return glamour.WithStylesFromJSONBytes(DefaultTheme)
	default:
		b, err := os.ReadFile(theme)
		if err != nil {
			return glamour.WithStylesFromJSONBytes(DefaultTheme)
		}
		return glamour.WithStylesFromJSONBytes(b)
	}
}
