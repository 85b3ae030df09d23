package deck

// Kind identifies the layout template of a SlideSpec.
type Kind string

const (
	KindCover        Kind = "cover"
	KindTwoColumn    Kind = "two-column"
	KindFeatureGrid  Kind = "feature-grid"
	KindStepList     Kind = "step-list"
	KindMetricRow    Kind = "metric-row"
	KindBulletPanels Kind = "bullet-panels"
	KindClosing      Kind = "closing"
)

// SlideSpec is the literal description of one slide. The concrete types in
// this package are the only implementations.
type SlideSpec interface {
	Kind() Kind
	render(p *painter)
}

// Header is the title band shared by most layouts.
type Header struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
}

// Metric is a large figure with a caption.
type Metric struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Feature is a card with an optional icon.
type Feature struct {
	Icon  string `yaml:"icon,omitempty"`
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
}

// Column is one side of a TwoColumn slide.
type Column struct {
	Heading string   `yaml:"heading"`
	Items   []string `yaml:"items"`
	Tone    Tone     `yaml:"tone,omitempty"`
}

// Banner is a full-width box above a feature grid.
type Banner struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body,omitempty"`
}

// Pair is a row of two boxed items.
type Pair struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Highlights is a headed list of paired items below a feature grid.
type Highlights struct {
	Heading string `yaml:"heading"`
	Pairs   []Pair `yaml:"pairs"`
}

// Step is one numbered entry of a StepList.
type Step struct {
	Marker string `yaml:"marker"`
	Title  string `yaml:"title"`
	Body   string `yaml:"body,omitempty"`
}

// Panel is an outlined box holding a heading, an optional large value, a body
// and a list of items. Height is in inches; zero picks a layout default.
type Panel struct {
	Heading string   `yaml:"heading"`
	Value   string   `yaml:"value,omitempty"`
	Body    string   `yaml:"body,omitempty"`
	Items   []string `yaml:"items,omitempty"`
	Tone    Tone     `yaml:"tone,omitempty"`
	Height  float64  `yaml:"height,omitempty"`
}

// Link is a boxed URL.
type Link struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

// Cover is the opening slide: a title band, an optional badge, a subtitle and
// a row of metric cards.
type Cover struct {
	Title    string   `yaml:"title"`
	Badge    string   `yaml:"badge,omitempty"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Metrics  []Metric `yaml:"metrics,omitempty"`
}

func (Cover) Kind() Kind { return KindCover }

// TwoColumn contrasts two outlined columns of items.
type TwoColumn struct {
	Header Header `yaml:"header"`
	Left   Column `yaml:"left"`
	Right  Column `yaml:"right"`
}

func (TwoColumn) Kind() Kind { return KindTwoColumn }

// FeatureGrid lays feature cards out in rows. Hero cards use larger icons and
// headings.
type FeatureGrid struct {
	Header     Header      `yaml:"header"`
	Banner     *Banner     `yaml:"banner,omitempty"`
	Columns    int         `yaml:"columns,omitempty"`
	Hero       bool        `yaml:"hero,omitempty"`
	Features   []Feature   `yaml:"features"`
	Highlights *Highlights `yaml:"highlights,omitempty"`
}

func (FeatureGrid) Kind() Kind { return KindFeatureGrid }

// StepList is a vertical sequence of numbered steps, optionally next to an
// aside panel.
type StepList struct {
	Header Header `yaml:"header"`
	Steps  []Step `yaml:"steps"`
	Aside  *Panel `yaml:"aside,omitempty"`
}

func (StepList) Kind() Kind { return KindStepList }

// MetricRow is a row of metric cards followed by an optional highlight panel
// and call to action.
type MetricRow struct {
	Header       Header   `yaml:"header"`
	Metrics      []Metric `yaml:"metrics"`
	Highlight    *Panel   `yaml:"highlight,omitempty"`
	CallToAction string   `yaml:"call_to_action,omitempty"`
	Link         *Link    `yaml:"link,omitempty"`
}

func (MetricRow) Kind() Kind { return KindMetricRow }

// BulletPanels is a boxed list of items on the left and a stack of panels on
// the right. ItemSize is the item font size in points.
type BulletPanels struct {
	Header       Header   `yaml:"header"`
	ListHeading  string   `yaml:"list_heading"`
	Items        []string `yaml:"items"`
	ItemSize     float64  `yaml:"item_size,omitempty"`
	AsideHeading string   `yaml:"aside_heading,omitempty"`
	Panels       []Panel  `yaml:"panels"`
}

func (BulletPanels) Kind() Kind { return KindBulletPanels }

// Closing is the final slide: a large title and a row of cards.
type Closing struct {
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle,omitempty"`
	Cards    []Feature `yaml:"cards,omitempty"`
}

func (Closing) Kind() Kind { return KindClosing }
