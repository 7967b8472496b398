package grid_test

import (
	"reflect"
	"testing"

	"github.com/structedit/docedit/grid"
)

func letters() []any { return []any{"A", "B", "C", "D"} }

func TestMove(t *testing.T) {
	cases := []struct {
		from, to int
		want     []any
	}{
		{0, 2, []any{"B", "C", "A", "D"}},
		{3, 0, []any{"D", "A", "B", "C"}},
		{1, 1, []any{"A", "B", "C", "D"}},  // no-op
		{-1, 2, []any{"A", "B", "C", "D"}}, // out of range
		{0, 9, []any{"A", "B", "C", "D"}},  // out of range
	}
	for _, tc := range cases {
		got := grid.Move(letters(), tc.from, tc.to)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Move(%d, %d) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	in := letters()
	_ = grid.Move(in, 0, 3)
	if !reflect.DeepEqual(in, letters()) {
		t.Fatalf("Move mutated its input: %v", in)
	}
}

func TestInsert(t *testing.T) {
	got, ok := grid.Insert(letters(), 2, "X", 0)
	if !ok || !reflect.DeepEqual(got, []any{"A", "B", "X", "C", "D"}) {
		t.Fatalf("Insert = %v ok=%v", got, ok)
	}
	// clamped positions
	got, _ = grid.Insert(letters(), -5, "X", 0)
	if got[0] != "X" {
		t.Errorf("negative position should clamp to front: %v", got)
	}
	got, _ = grid.Insert(letters(), 99, "X", 0)
	if got[len(got)-1] != "X" {
		t.Errorf("oversized position should clamp to back: %v", got)
	}
	// cap refusal
	got, ok = grid.Insert(letters(), 0, "X", 4)
	if ok || len(got) != 4 {
		t.Errorf("insert past max should refuse: %v ok=%v", got, ok)
	}
}

func TestInsert_ClonesItem(t *testing.T) {
	item := map[string]any{"k": "v"}
	got, _ := grid.Insert([]any{}, 0, item, 0)
	item["k"] = "mutated"
	if got[0].(map[string]any)["k"] != "v" {
		t.Fatalf("Insert aliased the inserted item")
	}
}

func TestDuplicate(t *testing.T) {
	got := grid.Duplicate([]any{"A", "B", "C"}, []int{0, 2}, 0)
	want := []any{"A", "A", "B", "C", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Duplicate = %v, want %v", got, want)
	}
	// unsorted and duplicate selections behave like the sorted unique set
	got = grid.Duplicate([]any{"A", "B", "C"}, []int{2, 0, 2}, 0)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Duplicate unsorted = %v, want %v", got, want)
	}
}

func TestDuplicate_StopsAtMax(t *testing.T) {
	got := grid.Duplicate([]any{"A", "B", "C"}, []int{0, 1, 2}, 4)
	// only the first duplicate fits under the cap
	want := []any{"A", "A", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Duplicate capped = %v, want %v", got, want)
	}
}

func TestDuplicate_DeepCopies(t *testing.T) {
	item := map[string]any{"k": "v"}
	got := grid.Duplicate([]any{item}, []int{0}, 0)
	got[1].(map[string]any)["k"] = "mutated"
	if item["k"] != "v" {
		t.Fatalf("Duplicate aliased the original item")
	}
}

func TestDelete(t *testing.T) {
	got := grid.Delete(letters(), []int{1, 3}, 0)
	if !reflect.DeepEqual(got, []any{"A", "C"}) {
		t.Fatalf("Delete = %v", got)
	}
}

func TestDelete_BoundedByMinItems(t *testing.T) {
	// deleting both of two items with min_items=2 deletes nothing
	got := grid.Delete([]any{"A", "B"}, []int{0, 1}, 2)
	if !reflect.DeepEqual(got, []any{"A", "B"}) {
		t.Fatalf("Delete below min should be refused entirely: %v", got)
	}
	// partial deletion: three selected, only one allowed, lowest index goes
	got = grid.Delete([]any{"A", "B", "C"}, []int{0, 1, 2}, 2)
	if !reflect.DeepEqual(got, []any{"B", "C"}) {
		t.Fatalf("Delete should drop only the allowed prefix: %v", got)
	}
}

func TestDelete_IgnoresOutOfRange(t *testing.T) {
	got := grid.Delete(letters(), []int{-1, 99, 2}, 0)
	if !reflect.DeepEqual(got, []any{"A", "B", "D"}) {
		t.Fatalf("Delete = %v", got)
	}
}
