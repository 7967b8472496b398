package grid

import (
	docedit "github.com/structedit/docedit"
)

// RowIndexKey is the synthetic row key carrying the item's position in the
// owning array at render time. It is derived on every projection and never
// written back to the document.
const RowIndexKey = "__rowIndex"

// Row is one array item's leaf values keyed by column path. A missing key is
// an empty cell (the item lacks that branch); an explicit nil is a null
// value. The distinction matters on the way back: only present keys are
// written.
type Row map[string]any

// ToRows projects items onto flat rows, one per item, in order. Values are
// read relative to each item via path traversal; branches the item lacks
// simply stay absent from the row.
func ToRows(items []any, cols []Column) ([]Row, error) {
	paths, err := compileColumns(cols)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(items))
	for i, item := range items {
		row := make(Row, len(cols)+1)
		for c, col := range cols {
			if v, ok := docedit.Get(item, paths[c]); ok {
				row[col.Path] = v
			}
		}
		row[RowIndexKey] = i
		rows[i] = row
	}
	return rows, nil
}

// FromRows rebuilds one item per row from scratch, writing every cell the row
// actually carries. Cells absent from a row are not written at all, so a
// rebuilt item contains exactly the table-visible data.
//
// Rebuilding from scratch loses leaves the flattening pruned (depth-bounded
// subtrees, array-typed columns' internals). Use ApplyCell for single-cell
// edits: it patches the original item and preserves everything the table
// cannot show.
func FromRows(rows []Row, cols []Column) ([]any, error) {
	paths, err := compileColumns(cols)
	if err != nil {
		return nil, err
	}
	items := make([]any, len(rows))
	for i, row := range rows {
		var item any = map[string]any{}
		for c, col := range cols {
			v, ok := row[col.Path]
			if !ok {
				continue
			}
			item = docedit.Set(item, paths[c], v)
		}
		items[i] = item
	}
	return items, nil
}

// ApplyCell writes one edited cell into item at the column's relative path
// and returns the patched item. The original item is not mutated; branches
// outside the path are shared.
func ApplyCell(item any, col Column, value any) (any, error) {
	p, err := compilePath(col.Path)
	if err != nil {
		return item, err
	}
	return docedit.Set(item, p, value), nil
}

// compilePath parses a column path; "" addresses the item itself.
func compilePath(text string) (docedit.Path, error) {
	if text == "" {
		return nil, nil
	}
	return docedit.ParsePath(text)
}

func compileColumns(cols []Column) ([]docedit.Path, error) {
	paths := make([]docedit.Path, len(cols))
	for i, col := range cols {
		p, err := compilePath(col.Path)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}
	return paths, nil
}
