package docedit

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeDocumentJSON decodes a JSON document into the map[string]any / []any /
// scalar shape the engine traverses. Numbers are preserved as json.Number so
// integer-valued cells survive a grid round-trip without float drift.
func DecodeDocumentJSON(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
	}
	// reject trailing garbage after the first value
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: "trailing data after document"})
	}
	return v, nil
}

// EncodeDocumentJSON renders a document with stable two-space indentation.
func EncodeDocumentJSON(doc any) ([]byte, error) {
	return gojson.MarshalIndent(doc, "", "  ")
}

// DecodeDocumentYAML decodes a YAML document and normalizes it to the same
// JSON-like shape DecodeDocumentJSON produces.
func DecodeDocumentYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
	}
	return normalizeYAMLValue(v), nil
}

// ParseSchemaJSON decodes a schema document from JSON.
func ParseSchemaJSON(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := gojson.Unmarshal(data, s); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
	}
	return s, nil
}

// ParseSchemaYAML decodes a schema document from YAML.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Message: err.Error(), Cause: err})
	}
	return s, nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-string keys are
// rendered with fmt.Sprint rather than dropped; editor documents address
// every entry by a string key.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAMLValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalizeYAMLValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeYAMLValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAMLValue(t[i])
		}
		return arr
	default:
		return v
	}
}
