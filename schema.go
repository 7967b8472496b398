package docedit

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Type names a schema node's kind. Primitive types use JSON Schema spelling.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeNull    Type = "null"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
)

// Primitive reports whether t is neither object nor array.
func (t Type) Primitive() bool { return t != TypeObject && t != TypeArray }

// Field pairs a declared field name with its schema. Objects keep fields as
// an ordered slice, not a map: declaration order drives column layout and
// must survive (de)serialization.
type Field struct {
	Name   string
	Schema *Schema
}

// Schema describes one node of a recursive document shape. Immutable once
// loaded; the engine never mutates a Schema after construction.
//
// Invariants: Fields is populated only when Type is object; Items only when
// Type is array. Validate reports violations as Issues.
type Schema struct {
	Type        Type
	Name        string // model name for object schemas, "" elsewhere
	Title       string
	Description string
	Required    bool
	Default     any
	Fields      []Field // object only, declaration order
	Items       *Schema // array only
	MinItems    *int
	MaxItems    *int
	Constraints map[string]any // opaque, round-tripped
	UIConfig    map[string]any // opaque, round-tripped
}

// Field returns the schema declared under name.
func (s *Schema) Field(name string) (*Schema, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Schema, true
		}
	}
	return nil, false
}

// FieldNames returns the declared field names in order.
func (s *Schema) FieldNames() []string {
	if len(s.Fields) == 0 {
		return nil
	}
	out := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f.Name
	}
	return out
}

// Validate checks the structural invariants recursively and returns Issues
// keyed by dotted paths from the root.
func (s *Schema) Validate() error {
	iss := s.validateAt("")
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (s *Schema) validateAt(path string) Issues {
	var iss Issues
	at := path
	if at == "" {
		at = "."
	}
	if s.Type != TypeObject && len(s.Fields) > 0 {
		iss = AppendIssues(iss, Issue{Path: at, Code: CodeUnsupportedSchema, Message: "fields declared on non-object schema"})
	}
	if s.Type != TypeArray && s.Items != nil {
		iss = AppendIssues(iss, Issue{Path: at, Code: CodeUnsupportedSchema, Message: "items declared on non-array schema"})
	}
	if s.Type == TypeArray && s.Items == nil {
		iss = AppendIssues(iss, Issue{Path: at, Code: CodeUnsupportedSchema, Message: "array schema without item schema"})
	}
	for _, f := range s.Fields {
		child := f.Name
		if path != "" {
			child = path + "." + f.Name
		}
		if f.Schema == nil {
			iss = AppendIssues(iss, Issue{Path: child, Code: CodeUnsupportedSchema, Message: "field without schema"})
			continue
		}
		iss = append(iss, f.Schema.validateAt(child)...)
	}
	if s.Items != nil {
		item := "[]"
		if path != "" {
			item = path + "[]"
		}
		iss = append(iss, s.Items.validateAt(item)...)
	}
	return iss
}

// ---- JSON codec (ordered fields) ----

type schemaWire struct {
	Type        Type              `json:"type"`
	Name        string            `json:"name,omitempty"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	Required    bool              `json:"required,omitempty"`
	Default     any               `json:"default,omitempty"`
	Fields      gojson.RawMessage `json:"fields,omitempty"`
	Items       *Schema           `json:"items,omitempty"`
	MinItems    *int              `json:"min_items,omitempty"`
	MaxItems    *int              `json:"max_items,omitempty"`
	Constraints map[string]any    `json:"constraints,omitempty"`
	UIConfig    map[string]any    `json:"ui_config,omitempty"`
}

// UnmarshalJSON decodes a schema, re-reading "fields" token-by-token so the
// wire object's key order becomes the Fields slice order. A plain struct tag
// decode would lose it behind a Go map.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var w schemaWire
	if err := gojson.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = Schema{
		Type:        w.Type,
		Name:        w.Name,
		Title:       w.Title,
		Description: w.Description,
		Required:    w.Required,
		Default:     w.Default,
		Items:       w.Items,
		MinItems:    w.MinItems,
		MaxItems:    w.MaxItems,
		Constraints: w.Constraints,
		UIConfig:    w.UIConfig,
	}
	if len(w.Fields) == 0 || bytes.Equal(bytes.TrimSpace(w.Fields), []byte("null")) {
		return nil
	}
	fields, err := decodeOrderedFields(w.Fields)
	if err != nil {
		return err
	}
	s.Fields = fields
	return nil
}

func decodeOrderedFields(raw []byte) ([]Field, error) {
	dec := gojson.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(gojson.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("docedit: schema fields must be an object, got %v", tok)
	}
	var out []Field
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("docedit: schema field name must be a string, got %v", kt)
		}
		fs := &Schema{}
		if err := dec.Decode(fs); err != nil {
			return nil, err
		}
		out = append(out, Field{Name: name, Schema: fs})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return out, nil
}

// MarshalJSON is the ordered inverse of UnmarshalJSON.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	first := true
	put := func(key string, v any) error {
		if !first {
			b.WriteByte(',')
		}
		first = false
		kb, err := gojson.Marshal(key)
		if err != nil {
			return err
		}
		vb, err := gojson.Marshal(v)
		if err != nil {
			return err
		}
		b.Write(kb)
		b.WriteByte(':')
		b.Write(vb)
		return nil
	}
	if err := put("type", s.Type); err != nil {
		return nil, err
	}
	if s.Name != "" {
		if err := put("name", s.Name); err != nil {
			return nil, err
		}
	}
	if s.Title != "" {
		if err := put("title", s.Title); err != nil {
			return nil, err
		}
	}
	if s.Description != "" {
		if err := put("description", s.Description); err != nil {
			return nil, err
		}
	}
	if s.Required {
		if err := put("required", true); err != nil {
			return nil, err
		}
	}
	if s.Default != nil {
		if err := put("default", s.Default); err != nil {
			return nil, err
		}
	}
	if len(s.Fields) > 0 {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(`"fields":{`)
		for i, f := range s.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			nb, err := gojson.Marshal(f.Name)
			if err != nil {
				return nil, err
			}
			fb, err := gojson.Marshal(f.Schema)
			if err != nil {
				return nil, err
			}
			b.Write(nb)
			b.WriteByte(':')
			b.Write(fb)
		}
		b.WriteByte('}')
	}
	if s.Items != nil {
		if err := put("items", s.Items); err != nil {
			return nil, err
		}
	}
	if s.MinItems != nil {
		if err := put("min_items", *s.MinItems); err != nil {
			return nil, err
		}
	}
	if s.MaxItems != nil {
		if err := put("max_items", *s.MaxItems); err != nil {
			return nil, err
		}
	}
	if len(s.Constraints) > 0 {
		if err := put("constraints", s.Constraints); err != nil {
			return nil, err
		}
	}
	if len(s.UIConfig) > 0 {
		if err := put("ui_config", s.UIConfig); err != nil {
			return nil, err
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// ---- YAML codec (ordered fields) ----

// UnmarshalYAML walks the mapping node directly; yaml.Node preserves the
// source order of "fields" entries.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("docedit: schema must be a mapping, got yaml kind %d", node.Kind)
	}
	*s = Schema{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		switch key {
		case "type":
			s.Type = Type(val.Value)
		case "name":
			s.Name = val.Value
		case "title":
			s.Title = val.Value
		case "description":
			s.Description = val.Value
		case "required":
			if err := val.Decode(&s.Required); err != nil {
				return err
			}
		case "default":
			var d any
			if err := val.Decode(&d); err != nil {
				return err
			}
			s.Default = normalizeYAMLValue(d)
		case "fields":
			if val.Kind != yaml.MappingNode {
				return fmt.Errorf("docedit: schema fields must be a mapping")
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				fs := &Schema{}
				if err := val.Content[j+1].Decode(fs); err != nil {
					return err
				}
				s.Fields = append(s.Fields, Field{Name: val.Content[j].Value, Schema: fs})
			}
		case "items":
			is := &Schema{}
			if err := val.Decode(is); err != nil {
				return err
			}
			s.Items = is
		case "min_items":
			var n int
			if err := val.Decode(&n); err != nil {
				return err
			}
			s.MinItems = &n
		case "max_items":
			var n int
			if err := val.Decode(&n); err != nil {
				return err
			}
			s.MaxItems = &n
		case "constraints":
			var m map[string]any
			if err := val.Decode(&m); err != nil {
				return err
			}
			s.Constraints = yamlAnyToStringMap(m)
		case "ui_config":
			var m map[string]any
			if err := val.Decode(&m); err != nil {
				return err
			}
			s.UIConfig = yamlAnyToStringMap(m)
		}
	}
	return nil
}
