package docedit

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidPath       = "invalid_path"
	CodeUnsupportedSchema = "unsupported_schema"
	CodeInvalidType       = "invalid_type"
	CodeRequired          = "required"
	CodeTooFewItems       = "too_few_items"
	CodeTooManyItems      = "too_many_items"
	CodeParseError        = "parse_error"
	// Validation results attached from outside (the core stores them verbatim).
	CodeExternal = "external"
)

// Issue represents a single validation entry keyed by a document path.
type Issue struct {
	Path    string // Dotted/bracketed path (for example: users[2].name).
	Code    string // One of the codes listed above, or a collaborator-defined code.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// At returns the first issue recorded for exactly the given path.
func (iss Issues) At(path string) (Issue, bool) {
	for _, it := range iss {
		if it.Path == path {
			return it, true
		}
	}
	return Issue{}, false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrInvalidPath marks path-text parse failures. Use errors.Is to detect it;
// the concrete error is a *PathError carrying position detail.
var ErrInvalidPath = errors.New("docedit: invalid path")

// ErrUnsupportedSchema marks schemas the grid cannot project (array schema
// without an item schema, or a flattening that yields no columns).
var ErrUnsupportedSchema = errors.New("docedit: unsupported schema")

// PathError reports where and why path text failed to parse.
type PathError struct {
	Text   string
	Pos    int
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("docedit: invalid path %q at %d: %s", e.Text, e.Pos, e.Reason)
}

func (e *PathError) Unwrap() error { return ErrInvalidPath }
