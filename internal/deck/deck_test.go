package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() Palette {
	return Palette{
		RoleBackground:     RGB(10, 14, 39),
		RoleSurface:        RGB(30, 60, 114),
		RoleAccent:         RGB(0, 212, 255),
		RoleText:           RGB(255, 255, 255),
		RoleMuted:          RGB(184, 197, 214),
		RoleSuccess:        RGB(16, 185, 129),
		RoleSuccessSurface: RGB(6, 95, 70),
		RoleSuccessText:    RGB(209, 250, 229),
		RoleDanger:         RGB(239, 68, 68),
		RoleDangerSurface:  RGB(127, 29, 29),
		RoleGrowth:         RGB(34, 197, 94),
		RoleGrowthSurface:  RGB(20, 83, 45),
	}
}

func sampleSpecs() []SlideSpec {
	return []SlideSpec{
		Cover{
			Title:    "First line\nSecond line",
			Badge:    "BADGE",
			Subtitle: "Subtitle",
			Metrics:  []Metric{{"1", "one"}, {"2", "two"}, {"3", "three"}},
		},
		TwoColumn{
			Header: Header{Title: "Context"},
			Left:   Column{Heading: "Problems", Items: []string{"a", "b"}, Tone: ToneDanger},
			Right:  Column{Heading: "Solutions", Items: []string{"c"}, Tone: ToneGrowth},
		},
		FeatureGrid{
			Header:   Header{Title: "Grid", Subtitle: "Sub"},
			Banner:   &Banner{Title: "Banner", Body: "Body"},
			Features: []Feature{{Title: "A"}, {Title: "B"}, {Title: "C", Body: "c"}},
		},
		FeatureGrid{
			Header:     Header{Title: "Hero"},
			Hero:       true,
			Features:   []Feature{{Icon: "*", Title: "A", Body: "a"}},
			Highlights: &Highlights{Heading: "Why", Pairs: []Pair{{"l", "r"}}},
		},
		StepList{
			Header: Header{Title: "Flow"},
			Steps:  []Step{{"1", "One", "first"}, {"2", "Two", ""}},
		},
		StepList{
			Header: Header{Title: "Roadmap"},
			Steps:  []Step{{"Q1", "One", "first"}},
			Aside:  &Panel{Heading: "Vision", Body: "body", Items: []string{"x", "y"}},
		},
		MetricRow{
			Header:       Header{Title: "Metrics"},
			Metrics:      []Metric{{"0", "zero"}},
			Highlight:    &Panel{Heading: "Highlight", Body: "line"},
			CallToAction: "Try it",
			Link:         &Link{Text: "example.com", URL: "https://example.com"},
		},
		BulletPanels{
			Header:       Header{Title: "Benefits"},
			ListHeading:  "List",
			Items:        []string{"one", "two"},
			AsideHeading: "Aside",
			Panels: []Panel{
				{Heading: "ROI", Value: "R$ 0", Items: []string{"free"}, Tone: ToneSuccess, Height: 3},
				{Heading: "Compare", Body: "cheaper"},
			},
		},
		Closing{
			Title:    "Thanks",
			Subtitle: "bye",
			Cards:    []Feature{{Icon: "@", Title: "Contact", Body: "mail"}},
		},
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	specs := sampleSpecs()
	d, err := Build(specs, testPalette())
	require.NoError(t, err)
	require.Len(t, d.Slides, len(specs))
	for i, s := range d.Slides {
		assert.Equal(t, specs[i].Kind(), s.Kind, "slide %d", i+1)
		assert.Equal(t, RGB(10, 14, 39), s.Background)
	}
	assert.Equal(t, SlideWidth, d.Width)
	assert.Equal(t, SlideHeight, d.Height)
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(sampleSpecs(), testPalette())
	require.NoError(t, err)
	b, err := Build(sampleSpecs(), testPalette())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildEmpty(t *testing.T) {
	d, err := Build(nil, testPalette())
	require.NoError(t, err)
	assert.Empty(t, d.Slides)
}

func TestBuildCoverAndMetricRow(t *testing.T) {
	d, err := Build([]SlideSpec{
		Cover{Title: "Obrigado!"},
		MetricRow{
			Header:  Header{Title: "Numbers"},
			Metrics: []Metric{{"R$ 0", "INVESTIMENTO"}, {"∞", "ROI"}, {"100%", "ATITUDE"}},
		},
	}, testPalette())
	require.NoError(t, err)
	require.Len(t, d.Slides, 2)

	cover := d.Slides[0].TextBoxes()
	require.Len(t, cover, 1)
	assert.Equal(t, "Obrigado!", cover[0].Text())

	cards := d.Slides[1].Groups()
	require.Len(t, cards, 3)
	for i := 1; i < len(cards); i++ {
		assert.Greater(t, cards[i].Bounds().X, cards[i-1].Bounds().Right())
		assert.Equal(t, cards[0].Bounds().Y, cards[i].Bounds().Y)
	}
	assert.Equal(t, "∞", cards[1].TextBoxes()[0].Text())
}

func TestBuildUnknownRole(t *testing.T) {
	pal := testPalette()
	delete(pal, RoleDanger)

	_, err := Build([]SlideSpec{
		Cover{Title: "ok"},
		TwoColumn{Left: Column{Tone: ToneDanger}},
	}, pal)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.Contains(t, err.Error(), "slide 2 (two-column)")
}

func TestBuildGeometry(t *testing.T) {
	metrics := make([]Metric, 4)
	_, err := Build([]SlideSpec{Cover{Title: "x", Metrics: metrics}}, testPalette())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGeometry)
	assert.Contains(t, err.Error(), "Metric 4")
}

func TestBuildNilSpec(t *testing.T) {
	_, err := Build([]SlideSpec{nil}, testPalette())
	assert.ErrorIs(t, err, ErrNilSpec)
}

func TestSlideText(t *testing.T) {
	d, err := Build([]SlideSpec{
		StepList{Header: Header{Title: "Flow"}, Steps: []Step{{"1", "One", "first"}}},
	}, testPalette())
	require.NoError(t, err)
	assert.Equal(t, "Flow\n1\nOne\nfirst", d.Slides[0].Text())
}

func TestHeaderSubtitle(t *testing.T) {
	d, err := Build([]SlideSpec{
		FeatureGrid{Header: Header{Title: "T", Subtitle: "S"}},
	}, testPalette())
	require.NoError(t, err)
	title := d.Slides[0].TextBoxes()[0]
	require.Len(t, title.Paragraphs, 2)
	assert.Equal(t, 40.0, title.Paragraphs[0].Font.Size)
	assert.True(t, title.Paragraphs[0].Font.Bold)
	assert.Equal(t, RGB(184, 197, 214), title.Paragraphs[1].Font.Color)
}

func TestMetricRowLink(t *testing.T) {
	d, err := Build([]SlideSpec{
		MetricRow{Link: &Link{URL: "https://example.com"}},
	}, testPalette())
	require.NoError(t, err)
	boxes := d.Slides[0].TextBoxes()
	last := boxes[len(boxes)-1]
	assert.Equal(t, "https://example.com", last.Link)
	assert.Equal(t, "https://example.com", last.Text())
}

func TestFeatureCardIcon(t *testing.T) {
	cards := []Feature{
		{Icon: "🚀", Title: "Velocidade"},
		{Icon: "💎", Title: "Qualidade"},
		{Icon: "🌍", Title: "Acessibilidade"},
	}
	d, err := Build([]SlideSpec{
		FeatureGrid{Header: Header{Title: "Icons"}, Features: cards},
		FeatureGrid{Header: Header{Title: "Hero"}, Features: cards, Hero: true},
		Closing{Title: "Obrigado!", Cards: cards},
	}, testPalette())
	require.NoError(t, err)

	iconX := func(s Slide, name string) EMU {
		t.Helper()
		for _, tb := range s.TextBoxes() {
			if tb.Name == name {
				return tb.Frame.X
			}
		}
		t.Fatalf("no text box %q", name)
		return 0
	}
	assert.Equal(t, Inches(0.5+2), iconX(d.Slides[0], "Feature 1 icon"))
	assert.Equal(t, Inches(0.5+5.2+2), iconX(d.Slides[0], "Feature 2 icon"))
	assert.Equal(t, Inches(0.5+2), iconX(d.Slides[1], "Feature 1 icon"))
	assert.Equal(t, Inches(1.5+1.5), iconX(d.Slides[2], "Card 1 icon"))
}
