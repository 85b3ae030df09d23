package deck

import "strings"

// Element is anything drawn on a slide: a Shape, a TextBox or a Group.
type Element interface {
	// Bounds returns the frame occupied by the element.
	Bounds() Rect
	// Label returns the element name used in errors and in the output
	// document.
	Label() string
}

// Geometry is the preset outline of a Shape.
type Geometry string

const (
	GeometryRect    Geometry = "rect"
	GeometryEllipse Geometry = "ellipse"
)

// Stroke is a solid outline.
type Stroke struct {
	Color Color
	Width EMU
}

// Shape is a filled preset geometry.
type Shape struct {
	Name     string
	Geometry Geometry
	Frame    Rect
	Fill     Color
	Line     *Stroke
}

func (s Shape) Bounds() Rect  { return s.Frame }
func (s Shape) Label() string { return s.Name }

// Align is the horizontal alignment of the paragraphs in a TextBox.
type Align string

const (
	AlignLeft   Align = "l"
	AlignCenter Align = "ctr"
)

// Font describes how a run of text is drawn. Size is in points.
type Font struct {
	Size  float64
	Bold  bool
	Color Color
}

// Paragraph is one paragraph of plain text. Newlines in Text are line breaks
// inside the paragraph.
type Paragraph struct {
	Text string
	Font Font
}

// Lines splits the paragraph text on line breaks.
func (p Paragraph) Lines() []string {
	return strings.Split(p.Text, "\n")
}

// TextBox is a word-wrapped frame of paragraphs without fill or outline.
type TextBox struct {
	Name       string
	Frame      Rect
	Paragraphs []Paragraph
	Align      Align
	// Link, when set, is an external URL attached to the text.
	Link string
}

func (t TextBox) Bounds() Rect  { return t.Frame }
func (t TextBox) Label() string { return t.Name }

// Text returns the text of all paragraphs separated by newlines.
func (t TextBox) Text() string {
	parts := make([]string, len(t.Paragraphs))
	for i, p := range t.Paragraphs {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

// Group is a composite element such as a metric card.
type Group struct {
	Name     string
	Elements []Element
}

// Bounds returns the union of the children frames.
func (g Group) Bounds() Rect {
	var r Rect
	for _, e := range g.Elements {
		r = r.Union(e.Bounds())
	}
	return r
}

func (g Group) Label() string { return g.Name }

// TextBoxes returns every text box of the group in document order.
func (g Group) TextBoxes() []TextBox {
	return collectText(g.Elements)
}

func collectText(elements []Element) []TextBox {
	var boxes []TextBox
	for _, e := range elements {
		switch e := e.(type) {
		case TextBox:
			boxes = append(boxes, e)
		case Group:
			boxes = append(boxes, collectText(e.Elements)...)
		}
	}
	return boxes
}
