package docedit

import (
	"strconv"
	"strings"
)

// Segment is one hop of a Path: either an object key or an array index.
// Only the bracket form denotes an index; a bare numeric key ("items.2")
// addresses the object key "2", never array position 2.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Path addresses a value inside a nested document, root-first.
type Path []Segment

// Key returns a key segment.
func Key(name string) Segment { return Segment{Key: name} }

// Index returns an index segment.
func Index(i int) Segment { return Segment{Index: i, IsIndex: true} }

// ParsePath parses dotted/bracketed path text such as "users[0].address.city".
// It fails with a *PathError (wrapping ErrInvalidPath) on empty key segments,
// unterminated brackets, or non-numeric bracket contents.
func ParsePath(text string) (Path, error) {
	if text == "" {
		return nil, &PathError{Text: text, Pos: 0, Reason: "empty path"}
	}
	var p Path
	i := 0
	n := len(text)
	// expectKey is true at the start and immediately after a '.'.
	expectKey := true
	for i < n {
		switch c := text[i]; {
		case c == '[':
			if expectKey && len(p) > 0 {
				// "a.[0]" has an empty key before the bracket
				return nil, &PathError{Text: text, Pos: i, Reason: "empty key segment"}
			}
			j := i + 1
			for j < n && text[j] != ']' {
				j++
			}
			if j >= n {
				return nil, &PathError{Text: text, Pos: i, Reason: "unterminated bracket"}
			}
			idx, err := parseIndex(text[i+1 : j])
			if err != nil {
				return nil, &PathError{Text: text, Pos: i + 1, Reason: "bracket contents must be a non-negative integer"}
			}
			p = append(p, Index(idx))
			i = j + 1
			expectKey = false
			// after ']' only '.', another '[', or end of text may follow
			if i < n && text[i] != '.' && text[i] != '[' {
				return nil, &PathError{Text: text, Pos: i, Reason: "expected '.' or '[' after index"}
			}
			if i < n && text[i] == '.' {
				i++
				expectKey = true
				if i == n {
					return nil, &PathError{Text: text, Pos: i, Reason: "empty key segment"}
				}
			}
		case c == '.':
			return nil, &PathError{Text: text, Pos: i, Reason: "empty key segment"}
		default:
			j := i
			for j < n && text[j] != '.' && text[j] != '[' {
				j++
			}
			p = append(p, Key(text[i:j]))
			i = j
			expectKey = false
			if i < n && text[i] == '.' {
				i++
				expectKey = true
				if i == n {
					return nil, &PathError{Text: text, Pos: i, Reason: "empty key segment"}
				}
			}
		}
	}
	return p, nil
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// MustParsePath is ParsePath for trusted literals; it panics on error.
func MustParsePath(text string) Path {
	p, err := ParsePath(text)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the path back to text; the round-trip inverse of ParsePath.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if seg.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Key)
	}
	return b.String()
}

// Get traverses doc container-by-container. The second result is false when
// any hop is missing, addresses a container of the wrong kind, or is out of
// range; a well-formed path never produces an error against data that merely
// lacks the branch.
func Get(doc any, p Path) (any, bool) {
	cur := doc
	for _, seg := range p {
		if seg.IsIndex {
			arr, ok := cur.([]any)
			if !ok || seg.Index < 0 || seg.Index >= len(arr) {
				return nil, false
			}
			cur = arr[seg.Index]
			continue
		}
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[seg.Key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set returns a new document holding value at p. Containers along the path
// are copied (copy-on-write); untouched branches are shared with doc, so
// existing holders of doc never observe the edit. Missing or null hops are
// created as an object or array depending on the next segment's kind. A hop
// that exists with the wrong kind makes Set a no-op for that branch: the
// document is returned unchanged rather than an error, so schema/document
// drift cannot crash an editing session.
func Set(doc any, p Path, value any) any {
	if len(p) == 0 {
		return value
	}
	seg := p[0]
	if seg.IsIndex {
		var arr []any
		switch t := doc.(type) {
		case nil:
			arr = nil
		case []any:
			arr = t
		default:
			return doc
		}
		out := make([]any, len(arr))
		copy(out, arr)
		for len(out) <= seg.Index {
			out = append(out, nil)
		}
		out[seg.Index] = Set(out[seg.Index], p[1:], value)
		return out
	}
	var obj map[string]any
	switch t := doc.(type) {
	case nil:
		obj = nil
	case map[string]any:
		obj = t
	default:
		return doc
	}
	out := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		out[k] = v
	}
	out[seg.Key] = Set(obj[seg.Key], p[1:], value)
	return out
}
