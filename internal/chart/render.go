package chart

import (
	"net/url"
	"strconv"

	"datachat/internal/util/jsonutil"
)

// The rendering service is an external QuickChart-compatible endpoint that
// takes the whole chart configuration as a query parameter. This package only
// constructs the URL; it never fetches it.
const (
	renderBaseURL = "https://quickchart.io/chart"
	renderWidth   = 500
	renderHeight  = 300
)

// RenderURL serializes spec into a rendering-service URL. Serialization is
// deterministic: the same spec always yields the same URL.
func RenderURL(spec Spec) string {
	cfg, err := jsonutil.MarshalNoEscape(spec)
	if err != nil {
		// Spec only contains marshalable types; this cannot happen for
		// specs produced by the builders.
		return renderBaseURL
	}
	q := url.Values{}
	q.Set("c", string(cfg))
	q.Set("w", strconv.Itoa(renderWidth))
	q.Set("h", strconv.Itoa(renderHeight))
	return renderBaseURL + "?" + q.Encode()
}
