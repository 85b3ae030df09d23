// Package raster paints rendered slides into images, for previews and
// thumbnails. It approximates the presentation: preset shapes, solid fills,
// outlines and word-wrapped text in the Go fonts.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/maaslalani/pitchdeck/internal/deck"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultWidth is the image width used when none is given.
const DefaultWidth = 1600

// ErrSlideRange is returned for a slide index outside the deck.
var ErrSlideRange = errors.New("slide index out of range")

// Text box insets, matching the presentation defaults.
var (
	insetX = deck.Inches(0.1)
	insetY = deck.Inches(0.05)
)

type faceKey struct {
	bold bool
	size float64
}

// Renderer paints slides. A Renderer caches font faces and is not safe for
// concurrent use.
type Renderer struct {
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

// New parses the embedded fonts.
func New() (*Renderer, error) {
	regular, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := freetype.ParseFont(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// canvas paints one slide at a fixed scale.
type canvas struct {
	r     *Renderer
	img   *image.RGBA
	scale float64
}

// Render paints slide index of d into an image width pixels wide. The height
// follows the slide aspect ratio.
func (r *Renderer) Render(d *deck.Deck, index int, width int) (image.Image, error) {
	if index < 0 || index >= len(d.Slides) {
		return nil, fmt.Errorf("%w: %d of %d", ErrSlideRange, index+1, len(d.Slides))
	}
	if width <= 0 {
		width = DefaultWidth
	}
	scale := float64(width) / float64(d.Width)
	height := int(math.Round(float64(d.Height) * scale))

	c := &canvas{
		r:     r,
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		scale: scale,
	}
	s := d.Slides[index]
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(rgba(s.Background)), image.Point{}, draw.Src)
	for _, e := range s.Elements {
		if err := c.element(e); err != nil {
			return nil, fmt.Errorf("slide %d: %w", index+1, err)
		}
	}
	return c.img, nil
}

// WritePNGs renders every slide of d into dir as slide-01.png, slide-02.png
// and so on, returning the written paths.
func (r *Renderer) WritePNGs(dir string, d *deck.Deck, width int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(d.Slides))
	for i := range d.Slides {
		img, err := r.Render(d, i, width)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, fmt.Sprintf("slide-%02d.png", i+1))
		if err := writePNG(path, img); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rgba(c deck.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c *canvas) px(e deck.EMU) int {
	return int(math.Round(float64(e) * c.scale))
}

func (c *canvas) rect(r deck.Rect) image.Rectangle {
	return image.Rect(c.px(r.X), c.px(r.Y), c.px(r.Right()), c.px(r.Bottom()))
}

func (c *canvas) element(e deck.Element) error {
	switch e := e.(type) {
	case deck.Shape:
		c.shape(e)
	case deck.TextBox:
		return c.textBox(e)
	case deck.Group:
		for _, child := range e.Elements {
			if err := c.element(child); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *canvas) shape(s deck.Shape) {
	r := c.rect(s.Frame)
	switch s.Geometry {
	case deck.GeometryEllipse:
		c.ellipse(r, rgba(s.Fill))
	default:
		draw.Draw(c.img, r, image.NewUniform(rgba(s.Fill)), image.Point{}, draw.Src)
		if s.Line != nil {
			c.outline(r, rgba(s.Line.Color), max(1, c.px(s.Line.Width)))
		}
	}
}

// outline strokes r with a band of w pixels centered on its edges.
func (c *canvas) outline(r image.Rectangle, col color.RGBA, w int) {
	src := image.NewUniform(col)
	half := w / 2
	outer := image.Rect(r.Min.X-half, r.Min.Y-half, r.Max.X+w-half, r.Max.Y+w-half)
	bands := []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, outer.Min.Y+w),
		image.Rect(outer.Min.X, outer.Max.Y-w, outer.Max.X, outer.Max.Y),
		image.Rect(outer.Min.X, outer.Min.Y, outer.Min.X+w, outer.Max.Y),
		image.Rect(outer.Max.X-w, outer.Min.Y, outer.Max.X, outer.Max.Y),
	}
	for _, b := range bands {
		draw.Draw(c.img, b.Intersect(c.img.Bounds()), src, image.Point{}, draw.Src)
	}
}

func (c *canvas) ellipse(r image.Rectangle, col color.RGBA) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	r = r.Intersect(c.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

func (r *Renderer) font(bold bool) *truetype.Font {
	if bold {
		return r.bold
	}
	return r.regular
}

func (r *Renderer) face(bold bool, size float64) font.Face {
	k := faceKey{bold: bold, size: size}
	if f, ok := r.faces[k]; ok {
		return f
	}
	f := truetype.NewFace(r.font(bold), &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone})
	r.faces[k] = f
	return f
}

func (c *canvas) textBox(t deck.TextBox) error {
	frame := c.rect(t.Frame)
	left := frame.Min.X + c.px(insetX)
	maxWidth := frame.Dx() - 2*c.px(insetX)
	y := float64(frame.Min.Y + c.px(insetY))

	for _, p := range t.Paragraphs {
		size := p.Font.Size * deck.EMUPerPoint * c.scale
		if size < 1 {
			continue
		}
		f := c.r.font(p.Font.Bold)
		face := c.r.face(p.Font.Bold, size)

		ctx := freetype.NewContext()
		ctx.SetDPI(72)
		ctx.SetFont(f)
		ctx.SetFontSize(size)
		ctx.SetHinting(font.HintingNone)
		ctx.SetClip(c.img.Bounds())
		ctx.SetDst(c.img)
		ctx.SetSrc(image.NewUniform(rgba(p.Font.Color)))

		lineHeight := size * 1.2
		for _, line := range p.Lines() {
			for _, l := range wrap(face, supported(f, line), maxWidth) {
				y += lineHeight
				x := left
				if t.Align == deck.AlignCenter {
					x += (maxWidth - font.MeasureString(face, l).Ceil()) / 2
				}
				pt := freetype.Pt(x, int(math.Round(y-lineHeight*0.2)))
				if _, err := ctx.DrawString(l, pt); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// supported drops the runes the font has no glyph for, such as emoji, and
// the spacing left behind by them.
func supported(f *truetype.Font, s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || f.Index(r) != 0 {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// wrap breaks s into lines no wider than width pixels. A single word wider
// than width is kept on its own line.
func wrap(face font.Face, s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if font.MeasureString(face, candidate).Ceil() > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
