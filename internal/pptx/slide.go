package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/maaslalani/pitchdeck/internal/deck"
)

const lang = "pt-BR"

// slideWriter encodes one slide as PresentationML. Shape ids are unique per
// slide; id 1 is the shape tree itself.
type slideWriter struct {
	buf    bytes.Buffer
	nextID int
	links  []string
}

func newSlideWriter() *slideWriter {
	return &slideWriter{nextID: 2}
}

// encodeSlide returns the slide part and the hyperlink targets it references,
// in relationship order starting at rId2.
func encodeSlide(s deck.Slide) ([]byte, []string) {
	w := newSlideWriter()
	w.raw(xml.Header)
	w.raw(`<p:sld ` + namespaces + `><p:cSld><p:bg><p:bgPr>`)
	w.solidFill(s.Background)
	w.raw(`<a:effectLst/></p:bgPr></p:bg><p:spTree>`)
	w.raw(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	w.raw(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	for _, e := range s.Elements {
		w.element(e)
	}
	w.raw(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return w.buf.Bytes(), w.links
}

func (w *slideWriter) raw(s string) {
	w.buf.WriteString(s)
}

func (w *slideWriter) printf(format string, args ...interface{}) {
	fmt.Fprintf(&w.buf, format, args...)
}

func (w *slideWriter) escaped(s string) {
	_ = xml.EscapeText(&w.buf, []byte(s))
}

func (w *slideWriter) id() int {
	id := w.nextID
	w.nextID++
	return id
}

func (w *slideWriter) element(e deck.Element) {
	switch e := e.(type) {
	case deck.Shape:
		w.shape(e)
	case deck.TextBox:
		w.textBox(e)
	case deck.Group:
		w.group(e)
	}
}

func (w *slideWriter) nvPr(tag string, name string, props string) {
	w.printf(`<p:%s><p:cNvPr id="%d" name="`, tag, w.id())
	w.escaped(name)
	w.printf(`"/>%s<p:nvPr/></p:%s>`, props, tag)
}

func (w *slideWriter) xfrm(r deck.Rect) {
	w.printf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, r.X, r.Y, r.W, r.H)
}

func (w *slideWriter) solidFill(c deck.Color) {
	w.printf(`<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, c.Hex())
}

func (w *slideWriter) shape(s deck.Shape) {
	w.raw(`<p:sp>`)
	w.nvPr("nvSpPr", s.Name, `<p:cNvSpPr/>`)
	w.raw(`<p:spPr>`)
	w.xfrm(s.Frame)
	w.printf(`<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, s.Geometry)
	w.solidFill(s.Fill)
	if s.Line != nil {
		w.printf(`<a:ln w="%d">`, s.Line.Width)
		w.solidFill(s.Line.Color)
		w.raw(`</a:ln>`)
	} else {
		w.raw(`<a:ln><a:noFill/></a:ln>`)
	}
	w.raw(`</p:spPr></p:sp>`)
}

func (w *slideWriter) textBox(t deck.TextBox) {
	link := ""
	if t.Link != "" {
		w.links = append(w.links, t.Link)
		link = fmt.Sprintf(`<a:hlinkClick r:id="rId%d"/>`, len(w.links)+1)
	}

	w.raw(`<p:sp>`)
	w.nvPr("nvSpPr", t.Name, `<p:cNvSpPr txBox="1"/>`)
	w.raw(`<p:spPr>`)
	w.xfrm(t.Frame)
	w.raw(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
	w.raw(`<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:noAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range t.Paragraphs {
		w.raw(`<a:p>`)
		if t.Align != "" && t.Align != deck.AlignLeft {
			w.printf(`<a:pPr algn="%s"/>`, t.Align)
		}
		for i, line := range p.Lines() {
			if i > 0 {
				w.raw(`<a:br>`)
				w.runProps("a:rPr", p.Font, "")
				w.raw(`</a:br>`)
			}
			if line == "" {
				continue
			}
			w.raw(`<a:r>`)
			w.runProps("a:rPr", p.Font, link)
			w.raw(`<a:t>`)
			w.escaped(line)
			w.raw(`</a:t></a:r>`)
		}
		w.runProps("a:endParaRPr", p.Font, "")
		w.raw(`</a:p>`)
	}
	w.raw(`</p:txBody></p:sp>`)
}

// runProps writes character properties; sz is in hundredths of a point.
func (w *slideWriter) runProps(tag string, f deck.Font, link string) {
	w.printf(`<%s lang="%s" sz="%d"`, tag, lang, int(math.Round(f.Size*100)))
	if f.Bold {
		w.raw(` b="1"`)
	}
	w.raw(` dirty="0">`)
	w.solidFill(f.Color)
	w.raw(link)
	w.printf(`</%s>`, tag)
}

func (w *slideWriter) group(g deck.Group) {
	r := g.Bounds()
	w.raw(`<p:grpSp>`)
	w.nvPr("nvGrpSpPr", g.Name, `<p:cNvGrpSpPr/>`)
	w.printf(`<p:grpSpPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/><a:chOff x="%d" y="%d"/><a:chExt cx="%d" cy="%d"/></a:xfrm></p:grpSpPr>`,
		r.X, r.Y, r.W, r.H, r.X, r.Y, r.W, r.H)
	for _, e := range g.Elements {
		w.element(e)
	}
	w.raw(`</p:grpSp>`)
}
