package deck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// ErrUnknownKind is returned when a deck file names a layout that does not
// exist.
var ErrUnknownKind = errors.New("unknown slide kind")

// File is the YAML form of a deck: metadata, palette overrides and the
// ordered slide specs.
type File struct {
	Title   string
	Author  string
	Palette Palette
	Slides  []SlideSpec
}

type fileYAML struct {
	Title   string        `yaml:"title,omitempty"`
	Author  string        `yaml:"author,omitempty"`
	Palette Palette       `yaml:"palette,omitempty"`
	Slides  []specWrapper `yaml:"slides"`
}

// specWrapper carries a SlideSpec through YAML with its kind as a
// discriminator field.
type specWrapper struct {
	Spec SlideSpec
}

func (w *specWrapper) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var probe struct {
		Kind Kind `yaml:"kind"`
	}
	if err := unmarshal(&probe); err != nil {
		return err
	}

	var err error
	switch probe.Kind {
	case KindCover:
		var s Cover
		err = unmarshal(&s)
		w.Spec = s
	case KindTwoColumn:
		var s TwoColumn
		err = unmarshal(&s)
		w.Spec = s
	case KindFeatureGrid:
		var s FeatureGrid
		err = unmarshal(&s)
		w.Spec = s
	case KindStepList:
		var s StepList
		err = unmarshal(&s)
		w.Spec = s
	case KindMetricRow:
		var s MetricRow
		err = unmarshal(&s)
		w.Spec = s
	case KindBulletPanels:
		var s BulletPanels
		err = unmarshal(&s)
		w.Spec = s
	case KindClosing:
		var s Closing
		err = unmarshal(&s)
		w.Spec = s
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, probe.Kind)
	}
	return err
}

func (w specWrapper) MarshalYAML() (interface{}, error) {
	if w.Spec == nil {
		return nil, ErrNilSpec
	}
	b, err := yaml.Marshal(w.Spec)
	if err != nil {
		return nil, err
	}
	var fields yaml.MapSlice
	if err := yaml.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	return append(yaml.MapSlice{{Key: "kind", Value: string(w.Spec.Kind())}}, fields...), nil
}

// Decode reads a deck file from r.
func Decode(r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw fileYAML
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not parse deck file: %w", err)
	}
	f := &File{
		Title:   raw.Title,
		Author:  raw.Author,
		Palette: raw.Palette,
		Slides:  make([]SlideSpec, len(raw.Slides)),
	}
	for i, w := range raw.Slides {
		f.Slides[i] = w.Spec
	}
	return f, nil
}

// Encode writes f to w as YAML.
func Encode(w io.Writer, f *File) error {
	raw := fileYAML{
		Title:   f.Title,
		Author:  f.Author,
		Palette: f.Palette,
		Slides:  make([]specWrapper, len(f.Slides)),
	}
	for i, s := range f.Slides {
		raw.Slides[i] = specWrapper{Spec: s}
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(b))
	return err
}

// LoadFile reads the deck file at path.
func LoadFile(path string) (*File, error) {
	s, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}
	if s.IsDir() {
		return nil, errors.New("can not read directory")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
