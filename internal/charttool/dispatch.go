package charttool

import (
	"context"
	"encoding/json"
	"fmt"

	"datachat/internal/chart"
	"datachat/internal/util/jsonutil"
)

// FunctionCall is the external representation of a model tool call: a
// function name plus its decoded arguments.
type FunctionCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// RenderPayload is what the chat surface displays for a chart request: img
// markup pointing at the rendering URL, and a short caption.
type RenderPayload struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// Dispatcher routes chart function calls to the registered builders and
// wraps the resulting spec into a display payload.
type Dispatcher struct {
	reg *Registry
}

// NewDispatcher creates a dispatcher over the four chart tools.
func NewDispatcher() *Dispatcher {
	reg := NewRegistry()
	RegisterChartTools(reg)
	return &Dispatcher{reg: reg}
}

// Specs exposes the registered tool specs, for declaring the tools to a
// function-calling runtime.
func (d *Dispatcher) Specs() []ToolSpec {
	return d.reg.Specs()
}

// Dispatch resolves call.Name against the tool table, builds the chart spec,
// and returns a payload embedding the render URL. An unrecognized name is a
// soft failure: the payload says so, nothing is raised. Callers are expected
// to only pass names from Specs, so that branch is a defensive default.
func (d *Dispatcher) Dispatch(ctx context.Context, call FunctionCall) RenderPayload {
	tool, ok := d.reg.Lookup(call.Name)
	if !ok {
		return RenderPayload{Text: fmt.Sprintf("Unknown function: %s", call.Name)}
	}

	args, err := jsonutil.MarshalNoEscape(call.Arguments)
	if err != nil {
		return RenderPayload{Text: fmt.Sprintf("Could not encode arguments for %s: %v", call.Name, err)}
	}
	out, err := tool.Call(ctx, args)
	if err != nil {
		return RenderPayload{Text: fmt.Sprintf("Could not build chart for %s: %v", call.Name, err)}
	}

	var spec chart.Spec
	if err := json.Unmarshal(out, &spec); err != nil {
		return RenderPayload{Text: fmt.Sprintf("Could not decode chart spec for %s: %v", call.Name, err)}
	}

	title := spec.TitleText()
	renderURL := chart.RenderURL(spec)
	return RenderPayload{
		HTML: fmt.Sprintf(`<img src=%q alt=%q style="max-width: 100%%;">`, renderURL, title),
		Text: "Here's your " + title,
	}
}
