package deck

import (
	"fmt"
	"strings"
)

func (s Cover) render(p *painter) {
	p.add(p.fill("Header", Box(0, 0, 16, 2), RoleSurface))

	lines := strings.Split(s.Title, "\n")
	title := p.text("Title", "", Box(0.5, 0.3, 12, 0.8*float64(len(lines))), 48, true, RoleText)
	title.Paragraphs = title.Paragraphs[:0]
	for _, l := range lines {
		title.Paragraphs = append(title.Paragraphs, Paragraph{
			Text: l,
			Font: Font{Size: 48, Bold: true, Color: p.color(RoleText)},
		})
	}
	p.add(title)

	if s.Badge != "" {
		p.add(
			p.fill("Badge", Box(12.5, 0.2, 3, 0.8), RoleAccent),
			p.centered("Badge text", s.Badge, Box(12.5, 0.25, 3, 0.7), 14, true, RoleBackground),
		)
	}
	if s.Subtitle != "" {
		p.add(p.text("Subtitle", s.Subtitle, Box(0.5, 2.3, 15, 1), 22, false, RoleMuted))
	}
	for i, m := range s.Metrics {
		p.add(p.metricCard(i, m, 1+float64(i)*5, 4.5))
	}
}

func (s TwoColumn) render(p *painter) {
	p.header(s.Header)
	for i, c := range []Column{s.Left, s.Right} {
		x := 0.5 + float64(i)*8
		name := fmt.Sprintf("Column %d", i+1)
		g := Group{Name: name, Elements: []Element{
			p.box(name+" box", Box(x, 2, 7, 5.5), c.Tone, 3),
			p.text(name+" heading", c.Heading, Box(x+0.2, 2.2, 6.5, 0.6), 28, true, RoleText),
		}}
		if len(c.Items) > 0 {
			g.Elements = append(g.Elements,
				p.text(name+" items", strings.Join(c.Items, "\n\n"), Box(x+0.2, 3, 6.5, 4), 16, false, RoleText))
		}
		p.add(g)
	}
}

func (s FeatureGrid) render(p *painter) {
	p.header(s.Header)

	top := 2.0
	if s.Banner != nil {
		p.add(Group{Name: "Banner", Elements: []Element{
			p.box("Banner box", Box(0.5, 2, 15, 1.2), ToneDefault, 4),
			p.text("Banner title", s.Banner.Title, Box(0.7, 2.1, 14.5, 0.4), 24, true, RoleAccent),
			p.text("Banner body", s.Banner.Body, Box(0.7, 2.6, 14.5, 0.6), 18, false, RoleMuted),
		}})
		top = 4
	}

	cols := s.Columns
	if cols <= 0 {
		cols = 3
	}
	st := plainCard
	for _, f := range s.Features {
		if f.Icon != "" {
			st = iconCard
			break
		}
	}
	if s.Hero {
		st = heroCard
	}
	pitch := 15.6 / float64(cols)
	st.W = pitch - 0.4
	for i, f := range s.Features {
		x := 0.5 + float64(i%cols)*pitch
		y := top + float64(i/cols)*2.5
		p.add(p.featureCard(fmt.Sprintf("Feature %d", i+1), f, x, y, st))
	}

	if s.Highlights == nil {
		return
	}
	rows := (len(s.Features) + cols - 1) / cols
	y := top + float64(rows)*2.5
	if rows == 0 {
		y = top
	}
	p.add(p.text("Highlights", s.Highlights.Heading, Box(0.5, y, 15, 0.5), 26, true, RoleAccent))
	y += 0.7
	for i, pair := range s.Highlights.Pairs {
		p.add(
			p.boxedRow(fmt.Sprintf("Highlight %d left", i+1), pair.Left, 0.5, y, 7.2, 18),
			p.boxedRow(fmt.Sprintf("Highlight %d right", i+1), pair.Right, 8.3, y, 7.2, 18),
		)
		y += 0.9
	}
}

func (s StepList) render(p *painter) {
	p.header(s.Header)
	st := wideSteps
	if s.Aside != nil {
		st = narrowSteps
	}
	for i, step := range s.Steps {
		p.add(p.step(i, step, st))
	}
	if s.Aside != nil {
		h := s.Aside.Height
		if h <= 0 {
			h = 5.5
		}
		p.add(p.panel("Aside", *s.Aside, 8.5, 2.2, 7, h, asidePanel))
	}
}

func (s MetricRow) render(p *painter) {
	p.header(s.Header)
	for i, m := range s.Metrics {
		p.add(p.metricCard(i, m, 1+float64(i)*5, 2.5))
	}
	if s.Highlight != nil {
		pn := *s.Highlight
		if pn.Tone == (Tone{}) {
			pn.Tone = ToneSuccess
		}
		h := pn.Height
		if h <= 0 {
			h = 2
		}
		p.add(p.panel("Highlight", pn, 1.5, 5, 13, h, highlightPanel))
	}
	if s.CallToAction != "" {
		p.add(p.centered("Call to action", s.CallToAction, Box(0.5, 7.45, 15, 0.5), 28, true, RoleAccent))
	}
	if s.Link != nil {
		text := s.Link.Text
		if text == "" {
			text = s.Link.URL
		}
		label := p.centered("Link text", text, Box(4.5, 8.05, 7, 0.5), 24, true, RoleAccent)
		label.Link = s.Link.URL
		p.add(Group{Name: "Link", Elements: []Element{
			p.box("Link box", Box(4.5, 8, 7, 0.6), ToneDefault, 3),
			label,
		}})
	}
}

func (s BulletPanels) render(p *painter) {
	p.header(s.Header)

	size := s.ItemSize
	if size <= 0 {
		size = 16
	}
	p.add(p.text("List heading", s.ListHeading, Box(0.5, 2, 7, 0.5), 24, true, RoleAccent))
	for i, item := range s.Items {
		p.add(p.boxedRow(fmt.Sprintf("Item %d", i+1), item, 0.5, 2.7+float64(i)*0.9, 7, size))
	}

	y := 2.0
	if s.AsideHeading != "" {
		p.add(p.text("Aside heading", s.AsideHeading, Box(8.5, 2, 7, 0.5), 24, true, RoleAccent))
		y = 2.7
	}
	for i, pn := range s.Panels {
		h := pn.Height
		if h <= 0 {
			h = 1.3
		}
		st := cardPanel
		if pn.Tone == ToneSuccess {
			st = figurePanel
		}
		p.add(p.panel(fmt.Sprintf("Panel %d", i+1), pn, 8.5, y, 7, h, st))
		y += h + 0.2
	}
}

func (s Closing) render(p *painter) {
	p.add(p.centered("Title", s.Title, Box(0.5, 2.5, 15, 1), 72, true, RoleText))
	if s.Subtitle != "" {
		p.add(p.centered("Subtitle", s.Subtitle, Box(0.5, 3.8, 15, 1), 26, false, RoleMuted))
	}
	start := (16 - float64(len(s.Cards))*4.5 + 0.5) / 2
	for i, c := range s.Cards {
		p.add(p.featureCard(fmt.Sprintf("Card %d", i+1), c, start+float64(i)*4.5, 5.5, closingCard))
	}
}
