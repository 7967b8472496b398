package docedit

import (
	"time"
)

// Entry is the single outstanding clipboard value. Data is deep-cloned on
// copy and again on paste, so neither the source document nor a paste target
// ever aliases clipboard state.
type Entry struct {
	SourcePath Path
	Data       any
	Schema     *Schema // schema of the copied location
	SchemaName string
	SchemaKind Type // primitive type tag, object, or array
	CopiedAt   time.Time
}

// Clipboard is a session-scoped single slot: each Copy replaces the previous
// entry wholesale. It is owned by whoever owns the editor session; it is not
// process-global, so multiple editor instances stay independent.
type Clipboard struct {
	entry *Entry
	now   func() time.Time
}

// NewClipboard returns an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{now: time.Now}
}

// Copy replaces the slot with a clone of value taken at path under schema.
func (c *Clipboard) Copy(path Path, value any, schema *Schema) {
	kind := TypeNull
	name := ""
	if schema != nil {
		kind = schema.Type
		name = schema.Name
	}
	c.entry = &Entry{
		SourcePath: append(Path(nil), path...),
		Data:       Clone(value),
		Schema:     schema,
		SchemaName: name,
		SchemaKind: kind,
		CopiedAt:   c.now(),
	}
}

// Entry returns the outstanding entry, or nil when the slot is empty.
func (c *Clipboard) Entry() *Entry { return c.entry }

// Clear empties the slot.
func (c *Clipboard) Clear() { c.entry = nil }

// Paste returns a deep copy of the held value. The second result is false
// when the slot is empty.
func (c *Clipboard) Paste() (any, bool) {
	if c.entry == nil {
		return nil, false
	}
	return Clone(c.entry.Data), true
}

// CanPaste reports whether the held entry is structurally compatible with
// target:
//   - primitives require the exact same type tag (no numeric/string coercion)
//   - objects match when the source and target field name sets overlap in at
//     least one name, so a subset of shared fields can move between
//     differently shaped objects
//   - an array target accepts whatever its item schema accepts
func (c *Clipboard) CanPaste(target *Schema) bool {
	return canPaste(c.entry, target)
}

// CanPasteToArray reports whether the entry could be appended to target as a
// new element ("paste as new row"), as opposed to pasting into a cell of
// array type.
func (c *Clipboard) CanPasteToArray(target *Schema) bool {
	if c.entry == nil || target == nil || target.Type != TypeArray {
		return false
	}
	return canPaste(c.entry, target.Items)
}

func canPaste(e *Entry, target *Schema) bool {
	if e == nil || target == nil {
		return false
	}
	switch target.Type {
	case TypeObject:
		if e.SchemaKind != TypeObject || e.Schema == nil {
			return false
		}
		for _, f := range e.Schema.Fields {
			if _, ok := target.Field(f.Name); ok {
				return true
			}
		}
		return false
	case TypeArray:
		return canPaste(e, target.Items)
	default:
		return e.SchemaKind == target.Type
	}
}
