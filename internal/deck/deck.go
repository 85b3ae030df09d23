// Package deck turns literal slide specifications into a rendered deck: an
// ordered list of slides made of shapes, text boxes and groups positioned in
// EMU. Rendering is a pure function of the specs and the palette.
package deck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGeometry is returned when an element has no area or falls outside
	// the slide.
	ErrGeometry = errors.New("invalid geometry")
	// ErrNilSpec is returned when a spec sequence contains a nil entry.
	ErrNilSpec = errors.New("nil slide spec")
)

// Deck is the in-memory result of Build, prior to persistence.
type Deck struct {
	Width  EMU
	Height EMU
	Slides []Slide
}

// Slide is one rendered slide.
type Slide struct {
	Kind       Kind
	Background Color
	Elements   []Element
}

// TextBoxes returns every text box on the slide, groups included, in document
// order.
func (s Slide) TextBoxes() []TextBox {
	return collectText(s.Elements)
}

// Groups returns the top-level groups of the slide.
func (s Slide) Groups() []Group {
	var groups []Group
	for _, e := range s.Elements {
		if g, ok := e.(Group); ok {
			groups = append(groups, g)
		}
	}
	return groups
}

// Text returns the text of the slide, one text box per line.
func (s Slide) Text() string {
	var b strings.Builder
	for i, t := range s.TextBoxes() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(t.Text())
	}
	return b.String()
}

// Build renders specs in order against the palette. An empty sequence yields
// an empty deck.
func Build(specs []SlideSpec, pal Palette) (*Deck, error) {
	d := &Deck{
		Width:  SlideWidth,
		Height: SlideHeight,
		Slides: make([]Slide, 0, len(specs)),
	}
	for i, spec := range specs {
		if spec == nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, ErrNilSpec)
		}
		s, err := renderSlide(spec, pal, d.Width, d.Height)
		if err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i+1, spec.Kind(), err)
		}
		d.Slides = append(d.Slides, s)
	}
	return d, nil
}

func renderSlide(spec SlideSpec, pal Palette, w, h EMU) (Slide, error) {
	p := &painter{pal: pal}
	bg := p.color(RoleBackground)
	spec.render(p)
	if p.err != nil {
		return Slide{}, p.err
	}
	if err := checkGeometry(p.elements, w, h); err != nil {
		return Slide{}, err
	}
	return Slide{Kind: spec.Kind(), Background: bg, Elements: p.elements}, nil
}

func checkGeometry(elements []Element, w, h EMU) error {
	for _, e := range elements {
		if g, ok := e.(Group); ok {
			if len(g.Elements) == 0 {
				return fmt.Errorf("%w: empty group %q", ErrGeometry, g.Name)
			}
			if err := checkGeometry(g.Elements, w, h); err != nil {
				return err
			}
			continue
		}
		if r := e.Bounds(); !r.Within(w, h) {
			return fmt.Errorf("%w: %q at %+v", ErrGeometry, e.Label(), r)
		}
	}
	return nil
}
