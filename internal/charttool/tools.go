package charttool

import (
	"context"
	"encoding/json"

	"datachat/internal/chart"
	"datachat/internal/util/jsonutil"
)

// RegisterChartTools installs the four chart builders into a registry.
func RegisterChartTools(r *Registry) {
	if r == nil {
		return
	}
	r.Register(&lineChartTool{})
	r.Register(&barChartTool{})
	r.Register(&pieChartTool{})
	r.Register(&scatterPlotTool{})
}

// --------------------- create_line_chart ---------------------

type lineChartTool struct{}

func (t *lineChartTool) Spec() ToolSpec {
	return ToolSpec{
		Name:        "create_line_chart",
		Description: "Create a line chart from one or more labeled numeric series.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Chart title."},
				"labels": {"type": "array", "items": {"type": "string"}, "description": "X-axis labels, one per data point."},
				"datasets": {
					"type": "array",
					"description": "Series to plot; each data array should match the label count.",
					"items": {
						"type": "object",
						"properties": {
							"label": {"type": "string", "description": "Series name shown in the legend."},
							"data": {"type": "array", "items": {"type": "number"}},
							"color": {"type": "string", "description": "Optional CSS color for the series line."}
						},
						"required": ["label", "data"]
					}
				}
			},
			"required": ["title", "labels", "datasets"]
		}`),
	}
}

func (t *lineChartTool) Call(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var p chart.LineParams
	if err := json.Unmarshal(input, &p); err != nil {
		return nil, err
	}
	return jsonutil.MarshalNoEscape(chart.BuildLine(p))
}

// --------------------- create_bar_chart ---------------------

type barChartTool struct{}

func (t *barChartTool) Spec() ToolSpec {
	return ToolSpec{
		Name:        "create_bar_chart",
		Description: "Create a bar chart from one or more labeled numeric series.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Chart title."},
				"labels": {"type": "array", "items": {"type": "string"}, "description": "Category labels, one per bar group."},
				"datasets": {
					"type": "array",
					"description": "Series to plot; each data array should match the label count.",
					"items": {
						"type": "object",
						"properties": {
							"label": {"type": "string", "description": "Series name."},
							"data": {"type": "array", "items": {"type": "number"}},
							"color": {"type": "string", "description": "Optional CSS fill color for the bars."}
						},
						"required": ["label", "data"]
					}
				}
			},
			"required": ["title", "labels", "datasets"]
		}`),
	}
}

func (t *barChartTool) Call(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var p chart.BarParams
	if err := json.Unmarshal(input, &p); err != nil {
		return nil, err
	}
	return jsonutil.MarshalNoEscape(chart.BuildBar(p))
}

// --------------------- create_pie_chart ---------------------

type pieChartTool struct{}

func (t *pieChartTool) Spec() ToolSpec {
	return ToolSpec{
		Name:        "create_pie_chart",
		Description: "Create a pie chart from a single series of values, one slice per label.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Chart title."},
				"labels": {"type": "array", "items": {"type": "string"}, "description": "Slice labels."},
				"data": {"type": "array", "items": {"type": "number"}, "description": "Slice values, one per label."},
				"colors": {"type": "array", "items": {"type": "string"}, "description": "Optional CSS colors, cycled over the slices."}
			},
			"required": ["title", "labels", "data"]
		}`),
	}
}

func (t *pieChartTool) Call(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var p chart.PieParams
	if err := json.Unmarshal(input, &p); err != nil {
		return nil, err
	}
	return jsonutil.MarshalNoEscape(chart.BuildPie(p))
}

// --------------------- create_scatter_plot ---------------------

type scatterPlotTool struct{}

func (t *scatterPlotTool) Spec() ToolSpec {
	return ToolSpec{
		Name:        "create_scatter_plot",
		Description: "Create a scatter plot from one or more series of (x, y) points.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Chart title."},
				"datasets": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"label": {"type": "string", "description": "Series name."},
							"data": {
								"type": "array",
								"items": {
									"type": "object",
									"properties": {
										"x": {"type": "number"},
										"y": {"type": "number"}
									},
									"required": ["x", "y"]
								}
							},
							"color": {"type": "string", "description": "Optional CSS color for the points."}
						},
						"required": ["label", "data"]
					}
				}
			},
			"required": ["title", "datasets"]
		}`),
	}
}

func (t *scatterPlotTool) Call(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var p chart.ScatterParams
	if err := json.Unmarshal(input, &p); err != nil {
		return nil, err
	}
	return jsonutil.MarshalNoEscape(chart.BuildScatter(p))
}
