package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseStructured_Object(t *testing.T) {
	v, err := ParseStructured(`{"data":[1,2,3]}`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("value = %T", v)
	}
	want := []any{float64(1), float64(2), float64(3)}
	if !reflect.DeepEqual(obj["data"], want) {
		t.Fatalf("data = %v", obj["data"])
	}
}

func TestParseStructured_Scalar(t *testing.T) {
	v, err := ParseStructured(`42`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if v != float64(42) {
		t.Fatalf("value = %v", v)
	}
}

func TestParseStructured_Malformed(t *testing.T) {
	_, err := ParseStructured(`{bad`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Unwrap() == nil {
		t.Fatal("expected wrapped syntax error")
	}
}
