package chart

import (
	"reflect"
	"testing"
)

func TestBuildLine_PreservesSeries(t *testing.T) {
	p := LineParams{
		Title:  "Revenue",
		Labels: []string{"Q1", "Q2"},
		Datasets: []SeriesInput{
			{Label: "2024", Data: []float64{10, 20}},
			{Label: "2025", Data: []float64{15, 25}, Color: "red"},
		},
	}
	spec := BuildLine(p)

	if spec.Type != KindLine {
		t.Fatalf("type = %s", spec.Type)
	}
	if len(spec.Data.Datasets) != 2 {
		t.Fatalf("series count = %d", len(spec.Data.Datasets))
	}
	if !reflect.DeepEqual(spec.Data.Datasets[0].Data, []float64{10, 20}) {
		t.Fatalf("series 0 values changed: %v", spec.Data.Datasets[0].Data)
	}
	if spec.Data.Datasets[0].BorderColor != defaultLineColor {
		t.Fatalf("default color not applied: %q", spec.Data.Datasets[0].BorderColor)
	}
	if spec.Data.Datasets[1].BorderColor != "red" {
		t.Fatalf("caller color overridden: %q", spec.Data.Datasets[1].BorderColor)
	}
	if spec.Options.Scales.YAxes[0].Ticks == nil || !spec.Options.Scales.YAxes[0].Ticks.BeginAtZero {
		t.Fatal("y axis must begin at zero")
	}
	if spec.Options.Legend == nil || spec.Options.Legend.Position != "top" {
		t.Fatal("legend must sit on top")
	}
}

func TestBuildLine_DoesNotMutateInput(t *testing.T) {
	values := []float64{1, 2, 3}
	p := LineParams{Title: "t", Labels: []string{"a", "b", "c"}, Datasets: []SeriesInput{{Label: "s", Data: values}}}
	_ = BuildLine(p)
	if !reflect.DeepEqual(values, []float64{1, 2, 3}) {
		t.Fatalf("input mutated: %v", values)
	}
}

func TestBuildBar_Defaults(t *testing.T) {
	spec := BuildBar(BarParams{
		Title:    "Sales",
		Labels:   []string{"a"},
		Datasets: []SeriesInput{{Label: "s", Data: []float64{5}}},
	})

	if spec.Type != KindBar {
		t.Fatalf("type = %s", spec.Type)
	}
	s := spec.Data.Datasets[0]
	if s.BackgroundColor != defaultBarFill || s.BorderColor != defaultBarOutline {
		t.Fatalf("bar styling = %v / %v", s.BackgroundColor, s.BorderColor)
	}
	if !spec.Options.Scales.YAxes[0].Ticks.BeginAtZero {
		t.Fatal("y axis must begin at zero")
	}
}

func TestBuildPie_PaletteCyclesOverSlices(t *testing.T) {
	data := make([]float64, 7)
	spec := BuildPie(PieParams{Title: "Share", Labels: make([]string, 7), Data: data})

	colors, ok := spec.Data.Datasets[0].BackgroundColor.([]string)
	if !ok {
		t.Fatalf("colors = %T", spec.Data.Datasets[0].BackgroundColor)
	}
	if len(colors) != 7 {
		t.Fatalf("color count = %d", len(colors))
	}
	if colors[5] != defaultPalette[0] || colors[6] != defaultPalette[1] {
		t.Fatalf("palette did not cycle: %v", colors)
	}
	if spec.Options.Legend.Position != "right" {
		t.Fatalf("legend position = %q", spec.Options.Legend.Position)
	}
}

func TestBuildPie_CallerColorsWin(t *testing.T) {
	spec := BuildPie(PieParams{
		Title:  "Share",
		Labels: []string{"a", "b", "c"},
		Data:   []float64{1, 2, 3},
		Colors: []string{"red", "blue"},
	})
	colors := spec.Data.Datasets[0].BackgroundColor.([]string)
	if !reflect.DeepEqual(colors, []string{"red", "blue", "red"}) {
		t.Fatalf("colors = %v", colors)
	}
}

func TestBuildScatter_LinearXAxis(t *testing.T) {
	points := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	spec := BuildScatter(ScatterParams{
		Title:    "Correlation",
		Datasets: []PointSeriesInput{{Label: "s", Data: points}},
	})

	if spec.Type != KindScatter {
		t.Fatalf("type = %s", spec.Type)
	}
	if !reflect.DeepEqual(spec.Data.Datasets[0].Data, points) {
		t.Fatalf("points changed: %v", spec.Data.Datasets[0].Data)
	}
	x := spec.Options.Scales.XAxes[0]
	if x.Type != "linear" || x.Position != "bottom" {
		t.Fatalf("x axis = %+v", x)
	}
	if spec.Options.Scales.YAxes != nil {
		t.Fatal("scatter must not override the y axis")
	}
	if len(spec.Data.Labels) != 0 {
		t.Fatalf("scatter carries no labels, got %v", spec.Data.Labels)
	}
}
