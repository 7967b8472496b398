package grid

import (
	docedit "github.com/structedit/docedit"
)

// MaxDepth bounds schema recursion during flattening. Deeper structure is
// emitted as a terminal leaf instead of more columns, which keeps column
// counts bounded on deep or self-similar schemas.
const MaxDepth = 5

// Column describes one flattened leaf field of an array item schema. Path is
// relative to a single item ("" when the item schema itself is a primitive).
type Column struct {
	Path   string
	Schema *docedit.Schema
	Depth  int
}

// Title returns the column header: the schema title when declared, otherwise
// the path.
func (c Column) Title() string {
	if c.Schema != nil && c.Schema.Title != "" {
		return c.Schema.Title
	}
	return c.Path
}

// Columns flattens item (an array's item schema) into columns using MaxDepth.
func Columns(item *docedit.Schema) ([]Column, error) {
	return ColumnsMaxDepth(item, MaxDepth)
}

// ColumnsMaxDepth flattens item with an explicit depth bound. The output
// order is the schema's declared field order, depth-first, so the same schema
// always yields the same column layout. It fails with ErrUnsupportedSchema
// when item is nil, when an array schema lacks its item schema, or when the
// flattening yields no columns.
func ColumnsMaxDepth(item *docedit.Schema, maxDepth int) ([]Column, error) {
	if item == nil {
		return nil, docedit.ErrUnsupportedSchema
	}
	if item.Type == docedit.TypeArray && item.Items == nil {
		return nil, docedit.ErrUnsupportedSchema
	}
	var out []Column
	flatten(item, "", 0, maxDepth, &out)
	if len(out) == 0 {
		return nil, docedit.ErrUnsupportedSchema
	}
	return out, nil
}

func flatten(s *docedit.Schema, prefix string, depth, maxDepth int, out *[]Column) {
	if depth >= maxDepth {
		// depth bound reached: whatever remains becomes one terminal leaf
		*out = append(*out, Column{Path: prefix, Schema: s, Depth: depth})
		return
	}
	switch s.Type {
	case docedit.TypeObject:
		for _, f := range s.Fields {
			if f.Schema == nil {
				continue
			}
			flatten(f.Schema, joinPath(prefix, f.Name), depth+1, maxDepth, out)
		}
	case docedit.TypeArray:
		// nested arrays are display-only terminals, not further columns
		*out = append(*out, Column{Path: prefix, Schema: s, Depth: depth})
	default:
		*out = append(*out, Column{Path: prefix, Schema: s, Depth: depth})
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
