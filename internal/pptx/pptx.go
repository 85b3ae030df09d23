// Package pptx persists a rendered deck as a PresentationML (.pptx) package.
//
// The package is minimal: one slide master, one blank layout and one theme,
// plus a slide part per slide. Output is deterministic for a given deck and
// Meta.
package pptx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/maaslalani/pitchdeck/internal/deck"
)

// ErrNoDeck is returned when Write is called without a deck.
var ErrNoDeck = errors.New("no deck to write")

// zipEpoch is the timestamp of every zip entry. It is the earliest time the
// zip format can represent.
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

// Meta is written to the document properties.
type Meta struct {
	Title  string
	Author string
	// Created is omitted from the output when zero.
	Created time.Time
}

type part struct {
	name string
	data []byte
}

// Write encodes d as a .pptx package to w.
func Write(w io.Writer, d *deck.Deck, meta Meta) error {
	if d == nil {
		return ErrNoDeck
	}
	parts, err := packageParts(d, meta)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return fmt.Errorf("could not add %s: %w", p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			return fmt.Errorf("could not write %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

// Save writes d to path. The file is written next to path first and renamed
// into place, so a failed run leaves no partial output.
func Save(path string, d *deck.Deck, meta Meta) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pitchdeck-*.pptx")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, d, meta); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func packageParts(d *deck.Deck, meta Meta) ([]part, error) {
	data := packageData{
		Title:  meta.Title,
		Author: meta.Author,
		Width:  int64(d.Width),
		Height: int64(d.Height),
		Slides: make([]slideRef, len(d.Slides)),
	}
	if !meta.Created.IsZero() {
		data.Created = meta.Created.UTC().Format(time.RFC3339)
	}

	// Presentation relationships: rId1-rId5 are the fixed parts below,
	// slides follow.
	presRels := []relationship{
		{ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml"},
		{ID: "rId2", Type: relPresProps, Target: "presProps.xml"},
		{ID: "rId3", Type: relViewProps, Target: "viewProps.xml"},
		{ID: "rId4", Type: relTheme, Target: "theme/theme1.xml"},
		{ID: "rId5", Type: relTableStyles, Target: "tableStyles.xml"},
	}
	for i := range d.Slides {
		ref := slideRef{Num: i + 1, ID: 256 + i, RelID: fmt.Sprintf("rId%d", 6+i)}
		data.Slides[i] = ref
		presRels = append(presRels, relationship{
			ID:     ref.RelID,
			Type:   relSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", ref.Num),
		})
	}

	b := &partBuilder{}
	b.template("[Content_Types].xml", contentTypesTmpl, data)
	b.template("_rels/.rels", relsTmpl, []relationship{
		{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
		{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
		{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
	})
	b.template("docProps/core.xml", coreTmpl, data)
	b.template("docProps/app.xml", appTmpl, data)
	b.template("ppt/presentation.xml", presentationTmpl, data)
	b.template("ppt/_rels/presentation.xml.rels", relsTmpl, presRels)
	b.static("ppt/presProps.xml", presProps)
	b.static("ppt/viewProps.xml", viewProps)
	b.static("ppt/tableStyles.xml", tableStyles)
	b.static("ppt/theme/theme1.xml", theme)
	b.static("ppt/slideMasters/slideMaster1.xml", slideMaster)
	b.template("ppt/slideMasters/_rels/slideMaster1.xml.rels", relsTmpl, []relationship{
		{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
	})
	b.static("ppt/slideLayouts/slideLayout1.xml", slideLayout)
	b.template("ppt/slideLayouts/_rels/slideLayout1.xml.rels", relsTmpl, []relationship{
		{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
	})

	for i, s := range d.Slides {
		xmlBytes, links := encodeSlide(s)
		rels := []relationship{
			{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		}
		for j, link := range links {
			rels = append(rels, relationship{
				ID:       fmt.Sprintf("rId%d", j+2),
				Type:     relHyperlink,
				Target:   link,
				External: true,
			})
		}
		b.bytes(fmt.Sprintf("ppt/slides/slide%d.xml", i+1), xmlBytes)
		b.template(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), relsTmpl, rels)
	}
	return b.parts, b.err
}

// partBuilder collects package parts and keeps the first rendering error.
type partBuilder struct {
	parts []part
	err   error
}

func (b *partBuilder) bytes(name string, data []byte) {
	b.parts = append(b.parts, part{name: name, data: data})
}

func (b *partBuilder) static(name, data string) {
	b.bytes(name, []byte(data))
}

func (b *partBuilder) template(name string, t *template.Template, v interface{}) {
	if b.err != nil {
		return
	}
	data, err := render(t, v)
	if err != nil {
		b.err = fmt.Errorf("could not render %s: %w", name, err)
		return
	}
	b.bytes(name, data)
}
