package dataset

import "encoding/json"

// ParseError reports malformed JSON input.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "dataset: parse json: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseStructured decodes a JSON document and returns the decoded value
// unchanged (object, array, or scalar).
func ParseStructured(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, &ParseError{Err: err}
	}
	return v, nil
}
