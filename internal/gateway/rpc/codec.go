package rpc

import "encoding/json"

// jsonCodec lets Connect handlers speak plain JSON structs. The service
// ships no protoc-generated types, so the default protobuf codecs are
// replaced with encoding/json for the "json" content subtype.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
