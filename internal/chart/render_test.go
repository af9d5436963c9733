package chart

import (
	"net/url"
	"strings"
	"testing"
)

func TestRenderURL_Deterministic(t *testing.T) {
	spec := BuildLine(LineParams{
		Title:    "Trend",
		Labels:   []string{"a", "b"},
		Datasets: []SeriesInput{{Label: "s", Data: []float64{1, 2}}},
	})
	first := RenderURL(spec)
	second := RenderURL(spec)
	if first != second {
		t.Fatalf("urls differ:\n%s\n%s", first, second)
	}
}

func TestRenderURL_Shape(t *testing.T) {
	spec := BuildPie(PieParams{Title: "Share", Labels: []string{"a"}, Data: []float64{1}})
	raw := RenderURL(spec)

	if !strings.HasPrefix(raw, renderBaseURL+"?") {
		t.Fatalf("base url missing: %s", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	q := u.Query()
	if q.Get("w") != "500" || q.Get("h") != "300" {
		t.Fatalf("dimensions = %s x %s", q.Get("w"), q.Get("h"))
	}
	cfg := q.Get("c")
	if !strings.Contains(cfg, `"type":"pie"`) {
		t.Fatalf("config missing type: %s", cfg)
	}
	if !strings.Contains(cfg, `"text":"Share"`) {
		t.Fatalf("config missing title: %s", cfg)
	}
}

func TestRenderURL_NoHTMLEscaping(t *testing.T) {
	spec := BuildLine(LineParams{
		Title:    "a < b",
		Labels:   []string{"x"},
		Datasets: []SeriesInput{{Label: "s", Data: []float64{1}}},
	})
	raw := RenderURL(spec)
	u, _ := url.Parse(raw)
	cfg := u.Query().Get("c")
	if strings.Contains(cfg, `<`) {
		t.Fatalf("config was html-escaped: %s", raw)
	}
	if !strings.Contains(cfg, `"a < b"`) {
		t.Fatalf("title lost its literal <: %s", raw)
	}
}
