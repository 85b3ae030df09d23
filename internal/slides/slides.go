// Package slides turns a rendered deck into markdown pages for the terminal
// preview.
package slides

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maaslalani/pitchdeck/internal/deck"
)

// titleBox is the name layouts give to the slide title.
const titleBox = "Title"

// headingSize is the smallest font size rendered as a markdown heading.
const headingSize = 24

// Slide is one page of the preview.
type Slide struct {
	Title string
	// Content is the markdown body, title included.
	Content string
	// Links are the hyperlink targets on the slide, in document order.
	Links []string
	text  string
}

// FromDeck converts every slide of d into a page.
func FromDeck(d *deck.Deck) []Slide {
	if d == nil {
		return nil
	}
	pages := make([]Slide, len(d.Slides))
	for i, s := range d.Slides {
		pages[i] = fromSlide(s)
	}
	return pages
}

func fromSlide(s deck.Slide) Slide {
	var (
		page   = Slide{text: s.Text()}
		blocks []string
	)
	for _, e := range s.Elements {
		switch e := e.(type) {
		case deck.TextBox:
			if e.Name == titleBox && page.Title == "" {
				var rest []deck.Paragraph
				page.Title, rest = title(e.Paragraphs)
				blocks = append(blocks, "# "+escape(page.Title))
				e.Paragraphs = rest
			}
			blocks = append(blocks, paragraphs(e)...)
			if e.Link != "" {
				page.Links = append(page.Links, e.Link)
			}
		case deck.Group:
			line, links := groupLine(e)
			if line != "" {
				blocks = append(blocks, line)
			}
			page.Links = append(page.Links, links...)
		}
	}
	page.Content = strings.Join(blocks, "\n\n") + "\n"
	return page
}

// title joins the leading paragraphs set in the first paragraph's font. A
// cover title carries one paragraph per line.
func title(ps []deck.Paragraph) (string, []deck.Paragraph) {
	if len(ps) == 0 {
		return "", nil
	}
	parts := []string{oneLine(ps[0].Text)}
	i := 1
	for ; i < len(ps) && ps[i].Font == ps[0].Font; i++ {
		parts = append(parts, oneLine(ps[i].Text))
	}
	return strings.Join(parts, " "), ps[i:]
}

// paragraphs renders the text of t as markdown blocks. Large text becomes a
// heading and bold text is emphasized.
func paragraphs(t deck.TextBox) []string {
	var blocks []string
	for _, p := range t.Paragraphs {
		for _, line := range p.Lines() {
			line = escape(strings.TrimSpace(line))
			if line == "" {
				continue
			}
			switch {
			case p.Font.Size >= headingSize:
				line = "## " + line
			case p.Font.Bold:
				line = "**" + line + "**"
			}
			if t.Link != "" {
				line = fmt.Sprintf("[%s](%s)", strings.TrimPrefix(line, "## "), t.Link)
			}
			blocks = append(blocks, line)
		}
	}
	return blocks
}

// groupLine renders a composite card as one list item: its first line in
// bold, the rest separated by dots.
func groupLine(g deck.Group) (string, []string) {
	var (
		parts []string
		links []string
	)
	for _, t := range g.TextBoxes() {
		for _, p := range t.Paragraphs {
			for _, line := range p.Lines() {
				if line = strings.TrimSpace(line); line != "" {
					parts = append(parts, escape(line))
				}
			}
		}
		if t.Link != "" {
			links = append(links, t.Link)
			if n := len(parts); n > 0 {
				parts[n-1] = fmt.Sprintf("[%s](%s)", parts[n-1], t.Link)
			}
		}
	}
	if len(parts) == 0 {
		return "", links
	}
	parts[0] = "**" + parts[0] + "**"
	return "- " + strings.Join(parts, " · "), links
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Text returns the text of the slide as written, one text box per line.
func (s Slide) Text() string {
	return s.text
}

var (
	markdownEscaper = strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"_", `\_`,
		"`", "\\`",
		"[", `\[`,
		"]", `\]`,
		"<", `\<`,
		">", `\>`,
		"#", `\#`,
		"|", `\|`,
		"~", `\~`,
	)
	// listMarker matches text that would otherwise start a list item.
	listMarker = regexp.MustCompile(`^([-+]|\d+\.) `)
)

// escape makes s render literally in markdown.
func escape(s string) string {
	s = markdownEscaper.Replace(s)
	if m := listMarker.FindStringSubmatch(s); m != nil {
		marker := m[1]
		if marker == "-" || marker == "+" {
			return `\` + s
		}
		return strings.Replace(s, ".", `\.`, 1)
	}
	return s
}
