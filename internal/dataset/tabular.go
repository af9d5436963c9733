package dataset

import "strings"

// ParseDelimited parses delimiter-separated text into a Table. The first
// non-blank line is the header; each header and field is trimmed and stripped
// of one optional pair of surrounding double quotes. Data lines whose field
// count differs from the header count are silently dropped rather than
// rejected; this is a deliberate lenient policy, not a strict CSV grammar
// (delimiters inside quoted fields are not handled). An empty delimiter
// defaults to ",".
func ParseDelimited(text, delimiter string) Table {
	if delimiter == "" {
		delimiter = ","
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Table{}
	}

	lines := strings.Split(text, "\n")
	headers := splitFields(lines[0], delimiter)

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitFields(line, delimiter)
		if len(fields) != len(headers) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = fields[i]
		}
		rows = append(rows, row)
	}
	return Table{Columns: headers, Rows: rows}
}

func splitFields(line, delimiter string) []string {
	parts := strings.Split(strings.TrimRight(line, "\r"), delimiter)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = unquote(strings.TrimSpace(p))
	}
	return out
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
