package docedit_test

import (
	"testing"

	docedit "github.com/structedit/docedit"
)

func objSchema(names ...string) *docedit.Schema {
	s := &docedit.Schema{Type: docedit.TypeObject, Name: "Obj"}
	for _, n := range names {
		s.Fields = append(s.Fields, docedit.Field{Name: n, Schema: &docedit.Schema{Type: docedit.TypeString}})
	}
	return s
}

func TestClipboard_EmptySlot(t *testing.T) {
	c := docedit.NewClipboard()
	if c.CanPaste(&docedit.Schema{Type: docedit.TypeString}) {
		t.Fatalf("empty clipboard must not be pastable")
	}
	if _, ok := c.Paste(); ok {
		t.Fatalf("empty clipboard must not paste")
	}
	if c.Entry() != nil {
		t.Fatalf("empty clipboard should have nil entry")
	}
}

func TestClipboard_PrimitiveExactMatch(t *testing.T) {
	c := docedit.NewClipboard()
	c.Copy(docedit.MustParsePath("age"), 42, &docedit.Schema{Type: docedit.TypeInteger})

	if !c.CanPaste(&docedit.Schema{Type: docedit.TypeInteger}) {
		t.Errorf("integer -> integer should paste")
	}
	if c.CanPaste(&docedit.Schema{Type: docedit.TypeNumber}) {
		t.Errorf("integer -> number must not coerce")
	}
	if c.CanPaste(&docedit.Schema{Type: docedit.TypeString}) {
		t.Errorf("integer -> string must not coerce")
	}
}

func TestClipboard_ObjectFieldOverlap(t *testing.T) {
	c := docedit.NewClipboard()
	c.Copy(nil, map[string]any{"name": "x", "shared": "y"}, objSchema("name", "shared"))

	if !c.CanPaste(objSchema("shared", "other")) {
		t.Errorf("overlapping field sets should paste")
	}
	if c.CanPaste(objSchema("a", "b")) {
		t.Errorf("disjoint field sets must not paste")
	}
	// object entry never pastes onto a primitive slot
	if c.CanPaste(&docedit.Schema{Type: docedit.TypeObject}) {
		t.Errorf("empty target field set has no overlap")
	}
}

func TestClipboard_ArrayTargetDelegatesToItems(t *testing.T) {
	c := docedit.NewClipboard()
	c.Copy(nil, "hello", &docedit.Schema{Type: docedit.TypeString})

	arr := &docedit.Schema{Type: docedit.TypeArray, Items: &docedit.Schema{Type: docedit.TypeString}}
	if !c.CanPaste(arr) {
		t.Errorf("string entry should paste onto array-of-string slot")
	}
	if !c.CanPasteToArray(arr) {
		t.Errorf("string entry should paste as a new row of array-of-string")
	}
	if c.CanPasteToArray(&docedit.Schema{Type: docedit.TypeString}) {
		t.Errorf("CanPasteToArray requires an array target")
	}

	nested := &docedit.Schema{Type: docedit.TypeArray, Items: arr}
	if !c.CanPaste(nested) {
		t.Errorf("array delegation should recurse through nested item schemas")
	}
}

func TestClipboard_SingleSlotReplacedWholesale(t *testing.T) {
	c := docedit.NewClipboard()
	c.Copy(nil, "first", &docedit.Schema{Type: docedit.TypeString})
	c.Copy(nil, 7, &docedit.Schema{Type: docedit.TypeInteger, Name: "Count"})

	e := c.Entry()
	if e == nil || e.SchemaKind != docedit.TypeInteger || e.SchemaName != "Count" {
		t.Fatalf("second copy should replace the slot: %#v", e)
	}
	c.Clear()
	if c.Entry() != nil {
		t.Fatalf("Clear should empty the slot")
	}
}

func TestClipboard_PasteIsACopy(t *testing.T) {
	src := map[string]any{"name": "x"}
	c := docedit.NewClipboard()
	c.Copy(nil, src, objSchema("name"))

	// mutating the source after copy must not change the entry
	src["name"] = "changed"
	v, ok := c.Paste()
	if !ok {
		t.Fatalf("paste failed")
	}
	if v.(map[string]any)["name"] != "x" {
		t.Fatalf("clipboard aliased the source document")
	}

	// mutating the pasted value must not change the slot
	v.(map[string]any)["name"] = "again"
	v2, _ := c.Paste()
	if v2.(map[string]any)["name"] != "x" {
		t.Fatalf("paste handed out shared state")
	}
}

func TestClipboard_SessionScoped(t *testing.T) {
	a := docedit.NewClipboard()
	b := docedit.NewClipboard()
	a.Copy(nil, "x", &docedit.Schema{Type: docedit.TypeString})
	if b.Entry() != nil {
		t.Fatalf("clipboards must be independent per session")
	}
}
