package promptctx

import (
	"strings"

	"datachat/internal/dataset"
	"datachat/internal/util/jsonutil"
)

const (
	contextIntro   = "You have been provided with the following dataset:"
	contextClosing = "You can analyze this data, identify trends, compute statistics, and answer questions about it."
)

// ComposePrompt merges a base instruction with the formatted dataset context
// into a single system instruction. Tabular datasets go through
// FormatForContext; structured ones are embedded as an indented JSON literal.
// Callers may rely on the boilerplate wording staying stable across releases.
func ComposePrompt(ds dataset.Dataset, basePrompt string, maxRows int) string {
	var contextBlock string
	if ds.Table != nil {
		contextBlock = FormatForContext(ds, maxRows)
	} else {
		b, err := jsonutil.MarshalNoEscapeIndent(ds.Structured, "", "  ")
		if err != nil {
			contextBlock = noData
		} else {
			contextBlock = string(b)
		}
	}

	var buf strings.Builder
	buf.WriteString(basePrompt)
	buf.WriteString("\n\n")
	buf.WriteString(contextIntro)
	buf.WriteString("\n\n")
	buf.WriteString(contextBlock)
	buf.WriteString("\n\n")
	buf.WriteString(contextClosing)
	return buf.String()
}
