package grid_test

import (
	"encoding/json"
	"reflect"
	"testing"

	docedit "github.com/structedit/docedit"
	"github.com/structedit/docedit/grid"
)

func mustColumns(t *testing.T, item *docedit.Schema) []grid.Column {
	t.Helper()
	cols, err := grid.Columns(item)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	return cols
}

func TestToRows_ProjectsLeaves(t *testing.T) {
	cols := mustColumns(t, userItemSchema())
	items := []any{
		map[string]any{
			"name":    "ada",
			"address": map[string]any{"city": "london", "zip": "n1"},
			"tags":    []any{"x"},
		},
		map[string]any{"name": "grace"}, // sparse item: city/zip/tags absent
	}
	rows, err := grid.ToRows(items, cols)
	if err != nil {
		t.Fatalf("ToRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("row count = %d", len(rows))
	}
	if rows[0]["name"] != "ada" || rows[0]["address.city"] != "london" {
		t.Errorf("row 0 wrong: %#v", rows[0])
	}
	if !reflect.DeepEqual(rows[0]["tags"], []any{"x"}) {
		t.Errorf("array column should hold the array value: %#v", rows[0]["tags"])
	}
	if rows[0][grid.RowIndexKey] != 0 || rows[1][grid.RowIndexKey] != 1 {
		t.Errorf("row indices wrong: %v %v", rows[0][grid.RowIndexKey], rows[1][grid.RowIndexKey])
	}
	// absent branches stay absent, not nil
	if _, present := rows[1]["address.city"]; present {
		t.Errorf("missing leaf must not appear in the row: %#v", rows[1])
	}
}

func TestRows_RoundTrip(t *testing.T) {
	cols := mustColumns(t, userItemSchema())
	items := []any{
		map[string]any{
			"name":    "ada",
			"address": map[string]any{"city": "london", "zip": "n1"},
			"tags":    []any{"a", "b"},
		},
		map[string]any{
			"name":    "grace",
			"address": map[string]any{"city": "ny", "zip": "10001"},
			"tags":    []any{},
		},
	}
	rows, err := grid.ToRows(items, cols)
	if err != nil {
		t.Fatalf("ToRows: %v", err)
	}
	back, err := grid.FromRows(rows, cols)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if !reflect.DeepEqual(back, items) {
		t.Fatalf("round trip diverged:\n got %#v\nwant %#v", back, items)
	}
}

func TestRows_RoundTripPrimitiveItems(t *testing.T) {
	cols := mustColumns(t, stringSchema())
	items := []any{"a", "b"}
	rows, err := grid.ToRows(items, cols)
	if err != nil {
		t.Fatalf("ToRows: %v", err)
	}
	back, err := grid.FromRows(rows, cols)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if !reflect.DeepEqual(back, items) {
		t.Fatalf("primitive round trip diverged: %#v", back)
	}
}

func TestRows_NumbersSurviveRoundTrip(t *testing.T) {
	item := &docedit.Schema{
		Type:   docedit.TypeObject,
		Fields: []docedit.Field{{Name: "n", Schema: &docedit.Schema{Type: docedit.TypeInteger}}},
	}
	cols := mustColumns(t, item)
	items := []any{map[string]any{"n": json.Number("12345678901234567890")}}
	rows, err := grid.ToRows(items, cols)
	if err != nil {
		t.Fatalf("ToRows: %v", err)
	}
	back, err := grid.FromRows(rows, cols)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if !reflect.DeepEqual(back, items) {
		t.Fatalf("number drifted: %#v", back)
	}
}

func TestFromRows_NullVersusAbsent(t *testing.T) {
	cols := mustColumns(t, userItemSchema())
	rows := []grid.Row{
		{"name": nil},            // explicit null is written
		{"address.city": "oslo"}, // name absent: not written at all
	}
	items, err := grid.FromRows(rows, cols)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	first := items[0].(map[string]any)
	if v, present := first["name"]; !present || v != nil {
		t.Fatalf("explicit null lost: %#v", first)
	}
	second := items[1].(map[string]any)
	if _, present := second["name"]; present {
		t.Fatalf("absent cell must not materialize: %#v", second)
	}
	if city, _ := docedit.Get(items[1], docedit.MustParsePath("address.city")); city != "oslo" {
		t.Fatalf("nested cell not rebuilt: %#v", second)
	}
}

// Per-cell edits patch the original item, so data the table cannot show
// (pruned subtrees, array internals) survives the edit.
func TestApplyCell_PreservesUnshownData(t *testing.T) {
	cols := mustColumns(t, userItemSchema())
	item := map[string]any{
		"name":    "ada",
		"address": map[string]any{"city": "london", "zip": "n1"},
		"tags":    []any{map[string]any{"deep": "kept"}},
		"extra":   "schema drift, still kept",
	}
	var nameCol grid.Column
	for _, c := range cols {
		if c.Path == "name" {
			nameCol = c
		}
	}
	got, err := grid.ApplyCell(item, nameCol, "grace")
	if err != nil {
		t.Fatalf("ApplyCell: %v", err)
	}
	m := got.(map[string]any)
	if m["name"] != "grace" {
		t.Fatalf("cell not applied: %#v", m)
	}
	if !reflect.DeepEqual(m["tags"], item["tags"]) || m["extra"] != "schema drift, still kept" {
		t.Fatalf("unshown data lost: %#v", m)
	}
	if item["name"] != "ada" {
		t.Fatalf("ApplyCell mutated its input")
	}
}
