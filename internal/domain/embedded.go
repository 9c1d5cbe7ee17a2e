package domain

import (
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var jsonNull = []byte("null")

// EmbeddedJSON keeps a field that the backend sends either as a JSON-encoded
// string ("[1,2,3]") or inline. It is decoded on demand with Decode.
type EmbeddedJSON []byte

func (e *EmbeddedJSON) UnmarshalJSON(data []byte) error {
	*e = append((*e)[:0], data...)
	return nil
}

func (e EmbeddedJSON) MarshalJSON() ([]byte, error) {
	if len(e) == 0 {
		return jsonNull, nil
	}
	return e, nil
}

// IsEmpty reports whether the field was absent, null or an empty string.
func (e EmbeddedJSON) IsEmpty() bool {
	raw := bytes.TrimSpace(e)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return true
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return strings.TrimSpace(s) == ""
		}
	}
	return false
}

// Decode unwraps the string encoding when present and unmarshals into v.
// An empty field leaves v untouched and returns nil.
func (e EmbeddedJSON) Decode(v any) error {
	if e.IsEmpty() {
		return nil
	}

	raw := bytes.TrimSpace(e)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(strings.TrimSpace(s))
	}

	return json.Unmarshal(raw, v)
}

// EncodeEmbedded produces the string-encoded form used by the backend.
func EncodeEmbedded(v any) (EmbeddedJSON, error) {
	inner, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	outer, err := json.Marshal(string(inner))
	if err != nil {
		return nil, err
	}
	return EmbeddedJSON(outer), nil
}
