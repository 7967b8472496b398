package docedit

import (
	"encoding/json"
)

// Kind classifies a document value. Documents are plain JSON-like trees
// (map[string]any, []any, scalars); Kind gives traversal code a closed set to
// switch over so shape mismatches are decided in one place.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// KindOf classifies v. Unrecognized Go values (structs, channels, ...) are
// reported as KindNull so traversal treats them as absent rather than
// panicking; documents are expected to contain decoder output only.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindNull
	}
}

// Clone deep-copies a document value. Scalars are returned as-is (immutable);
// objects and arrays are rebuilt recursively.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Clone(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Clone(t[i])
		}
		return out
	default:
		return v
	}
}
