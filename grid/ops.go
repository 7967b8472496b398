package grid

import (
	"sort"

	docedit "github.com/structedit/docedit"
)

// Row-level ordering operations work on the item sequence, never on flat
// rows. Every function returns a fresh slice and leaves its input untouched;
// callers re-project with ToRows, which renumbers RowIndexKey from position.

// Move relocates the item at from so it ends up at index to in the result:
// remove at from, then insert at to in the shortened sequence (removal
// already shifted everything after from left by one, so this lands the item
// at exactly to). Out-of-range positions and from == to are no-ops.
func Move(items []any, from, to int) []any {
	out := append([]any(nil), items...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]any{item}, out[to:]...)...)
	return out
}

// Insert places a clone of item at position at, clamped to [0, len]. The
// insertion is refused (ok=false, input returned unchanged) once it would
// exceed maxItems; maxItems <= 0 means unbounded.
func Insert(items []any, at int, item any, maxItems int) ([]any, bool) {
	if maxItems > 0 && len(items)+1 > maxItems {
		return append([]any(nil), items...), false
	}
	if at < 0 {
		at = 0
	}
	if at > len(items) {
		at = len(items)
	}
	out := make([]any, 0, len(items)+1)
	out = append(out, items[:at]...)
	out = append(out, docedit.Clone(item))
	out = append(out, items[at:]...)
	return out, true
}

// Duplicate inserts a deep copy of each selected item immediately after its
// original. Indices are processed in ascending order with the insertion
// offset accumulated, so later duplicates land after earlier insertions.
// Duplication stops once another copy would exceed maxItems; maxItems <= 0
// means unbounded. Out-of-range and repeated indices are skipped.
func Duplicate(items []any, indices []int, maxItems int) []any {
	out := append([]any(nil), items...)
	sorted := uniqueSorted(indices, len(items))
	offset := 0
	for _, idx := range sorted {
		if maxItems > 0 && len(out)+1 > maxItems {
			break
		}
		at := idx + offset
		copyItem := docedit.Clone(out[at])
		out = append(out[:at+1], append([]any{copyItem}, out[at+1:]...)...)
		offset++
	}
	return out
}

// Delete removes the selected items without dropping the sequence below
// minItems. When the selection is larger than the allowance, only the lowest
// allowed indices are deleted; the rest survive. This is a bounded partial
// operation, not a failure.
func Delete(items []any, indices []int, minItems int) []any {
	sorted := uniqueSorted(indices, len(items))
	allowed := len(items)
	if minItems > 0 {
		allowed = len(items) - minItems
	}
	if allowed < 0 {
		allowed = 0
	}
	if len(sorted) > allowed {
		sorted = sorted[:allowed]
	}
	drop := make(map[int]struct{}, len(sorted))
	for _, idx := range sorted {
		drop[idx] = struct{}{}
	}
	out := make([]any, 0, len(items)-len(drop))
	for i, item := range items {
		if _, gone := drop[i]; gone {
			continue
		}
		out = append(out, item)
	}
	return out
}

func uniqueSorted(indices []int, n int) []int {
	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
