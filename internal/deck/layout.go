package deck

import (
	"fmt"
	"math"
	"strings"
)

// painter accumulates the elements of one slide. The first palette error is
// kept and reported by Build.
type painter struct {
	pal      Palette
	elements []Element
	err      error
}

func (p *painter) color(role Role) Color {
	c, err := p.pal.Lookup(role)
	if err != nil && p.err == nil {
		p.err = err
	}
	return c
}

func (p *painter) add(e ...Element) {
	p.elements = append(p.elements, e...)
}

// fill is a solid shape without outline.
func (p *painter) fill(name string, frame Rect, role Role) Shape {
	return Shape{
		Name:     name,
		Geometry: GeometryRect,
		Frame:    frame,
		Fill:     p.color(role),
	}
}

// box is an outlined shape. A zero width drops the outline.
func (p *painter) box(name string, frame Rect, tone Tone, width float64) Shape {
	tone = tone.orDefault()
	s := p.fill(name, frame, tone.Fill)
	if width > 0 {
		s.Line = &Stroke{Color: p.color(tone.Line), Width: Pt(width)}
	}
	return s
}

func (p *painter) circle(name string, frame Rect, role Role) Shape {
	s := p.fill(name, frame, role)
	s.Geometry = GeometryEllipse
	return s
}

func (p *painter) text(name, text string, frame Rect, size float64, bold bool, role Role) TextBox {
	return TextBox{
		Name:  name,
		Frame: frame,
		Align: AlignLeft,
		Paragraphs: []Paragraph{{
			Text: text,
			Font: Font{Size: size, Bold: bold, Color: p.color(role)},
		}},
	}
}

func (p *painter) centered(name, text string, frame Rect, size float64, bold bool, role Role) TextBox {
	t := p.text(name, text, frame, size, bold, role)
	t.Align = AlignCenter
	return t
}

// header draws the title band used by every layout except Cover and Closing.
func (p *painter) header(h Header) {
	band := p.box("Header", Box(0, 0, 16, 1.5), ToneDefault, 4)
	title := p.text("Title", h.Title, Box(0.5, 0.3, 15, 1), 40, true, RoleAccent)
	if h.Subtitle != "" {
		title.Paragraphs = append(title.Paragraphs, Paragraph{
			Text: h.Subtitle,
			Font: Font{Size: 20, Color: p.color(RoleMuted)},
		})
	}
	p.add(band, title)
}

// metricCard is a 4 x 2 in card with a large figure over a caption.
func (p *painter) metricCard(i int, m Metric, x, y float64) Group {
	name := fmt.Sprintf("Metric %d", i+1)
	return Group{Name: name, Elements: []Element{
		p.box(name+" box", Box(x, y, 4, 2), ToneDefault, 2),
		p.centered(name+" value", m.Value, Box(x, y+0.3, 4, 1), 60, true, RoleAccent),
		p.centered(name+" label", m.Label, Box(x, y+1.2, 4, 0.7), 16, false, RoleMuted),
	}}
}

// cardStyle places the parts of a feature card relative to its origin.
type cardStyle struct {
	W, H      float64
	Inset     float64
	IconX     float64
	IconSize  float64
	TitleY    float64
	TitleH    float64
	TitleSize float64
	TitleRole Role
	BodyY     float64
	BodyH     float64
	BodySize  float64
}

var (
	plainCard = cardStyle{
		W: 4.8, H: 2,
		TitleY: 0.2, TitleH: 0.6, TitleSize: 22, TitleRole: RoleAccent,
		BodyY: 0.9, BodyH: 1, BodySize: 16,
	}
	iconCard = cardStyle{
		W: 4.8, H: 2, Inset: 0.2, IconX: 2, IconSize: 36,
		TitleY: 0.7, TitleH: 0.4, TitleSize: 18, TitleRole: RoleAccent,
		BodyY: 1.2, BodyH: 0.7, BodySize: 14,
	}
	heroCard = cardStyle{
		W: 4.8, H: 2, Inset: 0.2, IconX: 2, IconSize: 48,
		TitleY: 0.8, TitleH: 0.4, TitleSize: 22, TitleRole: RoleText,
		BodyY: 1.3, BodyH: 0.6, BodySize: 16,
	}
	closingCard = cardStyle{
		W: 4, H: 2, Inset: 0.2, IconX: 1.5, IconSize: 48,
		TitleY: 0.8, TitleH: 0.4, TitleSize: 20, TitleRole: RoleAccent,
		BodyY: 1.3, BodyH: 0.6, BodySize: 16,
	}
)

func (p *painter) featureCard(name string, f Feature, x, y float64, st cardStyle) Group {
	g := Group{Name: name}
	g.Elements = append(g.Elements, p.box(name+" box", Box(x, y, st.W, st.H), ToneDefault, 2))
	if f.Icon != "" && st.IconSize > 0 {
		g.Elements = append(g.Elements,
			p.centered(name+" icon", f.Icon, Box(x+st.IconX, y+0.1, 1, 0.5), st.IconSize, false, RoleText))
	}
	inner := st.W - 2*st.Inset
	g.Elements = append(g.Elements,
		p.text(name+" title", f.Title, Box(x+st.Inset, y+st.TitleY, inner, st.TitleH), st.TitleSize, true, st.TitleRole))
	if f.Body != "" {
		g.Elements = append(g.Elements,
			p.text(name+" body", f.Body, Box(x+st.Inset, y+st.BodyY, inner, st.BodyH), st.BodySize, false, RoleMuted))
	}
	return g
}

// boxedRow is a single line of text inside a 0.7 in outlined strip.
func (p *painter) boxedRow(name, text string, x, y, w, size float64) Group {
	return Group{Name: name, Elements: []Element{
		p.box(name+" box", Box(x, y, w, 0.7), ToneDefault, 2),
		p.text(name+" text", text, Box(x+0.2, y+0.15, w-0.4, 0.5), size, false, RoleText),
	}}
}

// stepStyle places the parts of a step row.
type stepStyle struct {
	Top, Pitch  float64
	Marker      float64
	MarkerSize  float64
	MarkerDY    float64
	BoxW, BoxH  float64
	BoxDY       float64
	TitleDY     float64
	TitleH      float64
	BodyDY      float64
	BodyH       float64
	BodySize    float64
	ContentSpan float64
}

var (
	wideSteps = stepStyle{
		Top: 2, Pitch: 1.2, Marker: 0.6, MarkerSize: 24,
		BoxW: 13.5, BoxH: 0.8, BoxDY: -0.1,
		TitleDY: -0.05, TitleH: 0.3, BodyDY: 0.28, BodyH: 0.5, BodySize: 14,
		ContentSpan: 13,
	}
	narrowSteps = stepStyle{
		Top: 2.2, Pitch: 1.3, Marker: 0.7, MarkerSize: 20, MarkerDY: 0.05,
		BoxW: 6, BoxH: 1,
		TitleDY: 0.1, TitleH: 0.4, BodyDY: 0.5, BodyH: 0.4, BodySize: 15,
		ContentSpan: 5.5,
	}
)

func (p *painter) step(i int, s Step, st stepStyle) Group {
	name := fmt.Sprintf("Step %d", i+1)
	y := st.Top + float64(i)*st.Pitch
	g := Group{Name: name, Elements: []Element{
		p.circle(name+" marker", Box(0.8, y, st.Marker, st.Marker), RoleAccent),
		p.centered(name+" number", s.Marker, Box(0.8, y+st.MarkerDY, st.Marker, st.Marker-st.MarkerDY*2), st.MarkerSize, true, RoleBackground),
		p.box(name+" box", Box(2, y+st.BoxDY, st.BoxW, st.BoxH), ToneDefault, 2),
		p.text(name+" title", s.Title, Box(2.2, y+st.TitleDY, st.ContentSpan, st.TitleH), 20, true, RoleAccent),
	}}
	if s.Body != "" {
		g.Elements = append(g.Elements,
			p.text(name+" body", s.Body, Box(2.2, y+st.BodyDY, st.ContentSpan, st.BodyH), st.BodySize, false, RoleMuted))
	}
	return g
}

// panelStyle sets the fonts of the stacked parts of a panel.
type panelStyle struct {
	Line        float64
	Align       Align
	HeadingSize float64
	HeadingRole Role
	ValueSize   float64
	ValueRole   Role
	BodySize    float64
	BodyRole    Role
	ItemSize    float64
	ItemRole    Role
}

var (
	asidePanel = panelStyle{
		Line: 2, Align: AlignLeft,
		HeadingSize: 22, HeadingRole: RoleAccent,
		ValueSize: 48, ValueRole: RoleAccent,
		BodySize: 16, BodyRole: RoleMuted,
		ItemSize: 16, ItemRole: RoleText,
	}
	cardPanel = panelStyle{
		Line: 2, Align: AlignLeft,
		HeadingSize: 18, HeadingRole: RoleAccent,
		ValueSize: 48, ValueRole: RoleAccent,
		BodySize: 14, BodyRole: RoleMuted,
		ItemSize: 14, ItemRole: RoleText,
	}
	figurePanel = panelStyle{
		Line: 4, Align: AlignCenter,
		HeadingSize: 28, HeadingRole: RoleText,
		ValueSize: 72, ValueRole: RoleSuccess,
		BodySize: 14, BodyRole: RoleSuccessText,
		ItemSize: 16, ItemRole: RoleSuccessText,
	}
	highlightPanel = panelStyle{
		Line: 4, Align: AlignCenter,
		HeadingSize: 36, HeadingRole: RoleText,
		ValueSize: 72, ValueRole: RoleSuccess,
		BodySize: 20, BodyRole: RoleSuccessText,
		ItemSize: 20, ItemRole: RoleSuccessText,
	}
)

// textHeight estimates the height in inches of a text block at size points.
func textHeight(text string, size float64) float64 {
	lines := float64(strings.Count(text, "\n") + 1)
	return math.Round((lines*size*1.2/72+0.1)*100) / 100
}

// panel stacks heading, value, body and items top-down inside an outlined
// frame.
func (p *painter) panel(name string, pn Panel, x, y, w, h float64, st panelStyle) Group {
	g := Group{Name: name}
	g.Elements = append(g.Elements, p.box(name+" box", Box(x, y, w, h), pn.Tone, st.Line))

	cx, cw, cy := x+0.2, w-0.4, y+0.15
	place := func(part, text string, size float64, bold bool, role Role) {
		if text == "" {
			return
		}
		th := textHeight(text, size)
		t := p.text(name+" "+part, text, Box(cx, cy, cw, th), size, bold, role)
		t.Align = st.Align
		g.Elements = append(g.Elements, t)
		cy += th + 0.05
	}
	place("heading", pn.Heading, st.HeadingSize, true, st.HeadingRole)
	place("value", pn.Value, st.ValueSize, true, st.ValueRole)
	place("body", pn.Body, st.BodySize, false, st.BodyRole)
	place("items", strings.Join(pn.Items, "\n"), st.ItemSize, false, st.ItemRole)
	return g
}
