package chart

// Default styling applied when callers do not pick colors themselves.
const (
	defaultLineColor    = "rgb(75, 192, 192)"
	defaultBarFill      = "rgba(54, 162, 235, 0.5)"
	defaultBarOutline   = "rgb(54, 162, 235)"
	defaultLineTension  = 0.4
	defaultScatterColor = "rgb(75, 192, 192)"
)

// defaultPalette colors pie slices when the caller supplies none. Slices
// beyond the palette length cycle back to the start (index mod length).
var defaultPalette = []string{
	"rgb(255, 99, 132)",
	"rgb(54, 162, 235)",
	"rgb(255, 205, 86)",
	"rgb(75, 192, 192)",
	"rgb(153, 102, 255)",
}

// SeriesInput is one caller-supplied series of scalar values.
type SeriesInput struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Color string    `json:"color,omitempty"`
}

// PointSeriesInput is one caller-supplied series of (x, y) pairs.
type PointSeriesInput struct {
	Label string  `json:"label"`
	Data  []Point `json:"data"`
	Color string  `json:"color,omitempty"`
}

// LineParams feeds BuildLine.
type LineParams struct {
	Title    string        `json:"title"`
	Labels   []string      `json:"labels"`
	Datasets []SeriesInput `json:"datasets"`
}

// BarParams feeds BuildBar.
type BarParams struct {
	Title    string        `json:"title"`
	Labels   []string      `json:"labels"`
	Datasets []SeriesInput `json:"datasets"`
}

// PieParams feeds BuildPie.
type PieParams struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
	Colors []string  `json:"colors,omitempty"`
}

// ScatterParams feeds BuildScatter.
type ScatterParams struct {
	Title    string             `json:"title"`
	Datasets []PointSeriesInput `json:"datasets"`
}

// The builders below are pure: they never touch I/O and never mutate their
// inputs. They also do not validate that series lengths match the label
// count; a mismatch produces a spec the rendering service draws with
// misaligned axes rather than an error.

// BuildLine builds a line chart spec. Each series keeps its own color, with a
// fixed teal fallback and a fixed smoothing factor; the y axis starts at zero
// and the legend sits on top.
func BuildLine(p LineParams) Spec {
	series := make([]Series, 0, len(p.Datasets))
	for _, d := range p.Datasets {
		color := d.Color
		if color == "" {
			color = defaultLineColor
		}
		fill := false
		series = append(series, Series{
			Label:       d.Label,
			Data:        d.Data,
			BorderColor: color,
			Fill:        &fill,
			LineTension: defaultLineTension,
		})
	}
	return Spec{
		Type: KindLine,
		Data: SpecData{Labels: p.Labels, Datasets: series},
		Options: Options{
			Title:  &Title{Display: true, Text: p.Title},
			Legend: &Legend{Display: true, Position: "top"},
			Scales: &Scales{YAxes: []Axis{{Ticks: &Ticks{BeginAtZero: true}}}},
		},
	}
}

// BuildBar builds a bar chart spec with a fixed blue fill and outline when no
// color is supplied; the y axis starts at zero.
func BuildBar(p BarParams) Spec {
	series := make([]Series, 0, len(p.Datasets))
	for _, d := range p.Datasets {
		fillColor := defaultBarFill
		outline := defaultBarOutline
		if d.Color != "" {
			fillColor = d.Color
			outline = d.Color
		}
		series = append(series, Series{
			Label:           d.Label,
			Data:            d.Data,
			BackgroundColor: fillColor,
			BorderColor:     outline,
			BorderWidth:     1,
		})
	}
	return Spec{
		Type: KindBar,
		Data: SpecData{Labels: p.Labels, Datasets: series},
		Options: Options{
			Title:  &Title{Display: true, Text: p.Title},
			Scales: &Scales{YAxes: []Axis{{Ticks: &Ticks{BeginAtZero: true}}}},
		},
	}
}

// BuildPie builds a pie chart spec from a single series of scalar values.
// Caller colors win when provided; either source cycles to cover every slice.
// The legend sits to the right.
func BuildPie(p PieParams) Spec {
	palette := p.Colors
	if len(palette) == 0 {
		palette = defaultPalette
	}
	colors := make([]string, len(p.Data))
	for i := range p.Data {
		colors[i] = palette[i%len(palette)]
	}
	return Spec{
		Type: KindPie,
		Data: SpecData{
			Labels:   p.Labels,
			Datasets: []Series{{Data: p.Data, BackgroundColor: colors}},
		},
		Options: Options{
			Title:  &Title{Display: true, Text: p.Title},
			Legend: &Legend{Display: true, Position: "right"},
		},
	}
}

// BuildScatter builds a scatter plot spec where each series carries (x, y)
// pairs. The x axis is forced to a linear scale; the y axis is left alone.
func BuildScatter(p ScatterParams) Spec {
	series := make([]Series, 0, len(p.Datasets))
	for _, d := range p.Datasets {
		color := d.Color
		if color == "" {
			color = defaultScatterColor
		}
		series = append(series, Series{
			Label:           d.Label,
			Data:            d.Data,
			BackgroundColor: color,
		})
	}
	return Spec{
		Type: KindScatter,
		Data: SpecData{Datasets: series},
		Options: Options{
			Title:  &Title{Display: true, Text: p.Title},
			Scales: &Scales{XAxes: []Axis{{Type: "linear", Position: "bottom"}}},
		},
	}
}
