// Package chart builds renderer-agnostic chart specifications in the
// Chart.js configuration shape and turns them into rendering-service URLs.
package chart

// Kind enumerates the supported chart types.
type Kind string

const (
	KindLine    Kind = "line"
	KindBar     Kind = "bar"
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Point is one (x, y) sample in a scatter series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is one rendered dataset inside a Spec. Data holds scalars for
// line/bar/pie and Points for scatter; BackgroundColor is a single color for
// line/bar/scatter and a per-slice color list for pie.
type Series struct {
	Label           string  `json:"label,omitempty"`
	Data            any     `json:"data"`
	BackgroundColor any     `json:"backgroundColor,omitempty"`
	BorderColor     string  `json:"borderColor,omitempty"`
	BorderWidth     int     `json:"borderWidth,omitempty"`
	Fill            *bool   `json:"fill,omitempty"`
	LineTension     float64 `json:"lineTension,omitempty"`
}

// SpecData groups labels and series the way the rendering service expects.
type SpecData struct {
	Labels   []string `json:"labels,omitempty"`
	Datasets []Series `json:"datasets"`
}

type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type Legend struct {
	Display  bool   `json:"display"`
	Position string `json:"position,omitempty"`
}

type Ticks struct {
	BeginAtZero bool `json:"beginAtZero"`
}

type Axis struct {
	Type     string `json:"type,omitempty"`
	Position string `json:"position,omitempty"`
	Ticks    *Ticks `json:"ticks,omitempty"`
}

type Scales struct {
	XAxes []Axis `json:"xAxes,omitempty"`
	YAxes []Axis `json:"yAxes,omitempty"`
}

type Options struct {
	Title  *Title  `json:"title,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
	Scales *Scales `json:"scales,omitempty"`
}

// Spec is a complete chart configuration. It carries everything the
// rendering service needs and nothing about how to transport it.
type Spec struct {
	Type    Kind     `json:"type"`
	Data    SpecData `json:"data"`
	Options Options  `json:"options"`
}

// TitleText returns the chart title, or "" when none was set.
func (s Spec) TitleText() string {
	if s.Options.Title == nil {
		return ""
	}
	return s.Options.Title.Text
}
