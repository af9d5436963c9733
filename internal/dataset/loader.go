package dataset

import (
	"context"
	"fmt"

	"datachat/internal/fetch"
)

// Format identifies how a remote payload should be parsed.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// UnsupportedFormatError reports a format outside {csv, json}.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("dataset: unsupported format %q", e.Format)
}

// Loader fetches remote text and routes it to the matching parser. Fetch and
// parse errors propagate to the caller unchanged.
type Loader struct {
	Fetcher fetch.Fetcher
}

// Load retrieves url and parses it according to format. An empty format
// defaults to csv.
func (l *Loader) Load(ctx context.Context, url string, format Format) (Dataset, error) {
	if l == nil || l.Fetcher == nil {
		return Dataset{}, fmt.Errorf("dataset: loader has no fetcher")
	}
	if format == "" {
		format = FormatCSV
	}
	text, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return Dataset{}, err
	}
	switch format {
	case FormatCSV:
		t := ParseDelimited(text, ",")
		return Dataset{Table: &t}, nil
	case FormatJSON:
		v, err := ParseStructured(text)
		if err != nil {
			return Dataset{}, err
		}
		return Dataset{Structured: v}, nil
	default:
		return Dataset{}, &UnsupportedFormatError{Format: string(format)}
	}
}
