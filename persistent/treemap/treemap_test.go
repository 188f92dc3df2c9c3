package treemap_test

import (
	"testing"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/persistent/treemap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMapSetGetDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	defer teardown()
	//
	m := treemap.New[string, int](ordered.Natural[string]())
	if !m.IsEmpty() {
		t.Error("expected new map to be empty, isn't")
	}
	m = m.Set("one", 1).Set("two", 2).Set("three", 3)
	if m.Size() != 3 {
		t.Errorf("expected size 3, is %d", m.Size())
	}
	if v, ok := m.Get("two"); !ok || v != 2 {
		t.Errorf("expected to get two→2, got (%d, %v)", v, ok)
	}
	if _, ok := m.Get("four"); ok {
		t.Error("expected four to be absent, isn't")
	}
	m = m.Delete("two")
	if m.ContainsKey("two") || m.Size() != 2 {
		t.Error("expected two to be gone after deletion, isn't")
	}
}

func TestMapReplacesValueForEqualKey(t *testing.T) {
	m := treemap.New[string, int](ordered.Natural[string]())
	m = m.Set("answer", 41).Set("answer", 42)
	if m.Size() != 1 {
		t.Errorf("expected size to stay 1 after replacement, is %d", m.Size())
	}
	if v, _ := m.Get("answer"); v != 42 {
		t.Errorf("expected replaced value 42, is %d", v)
	}
}

func TestMapIsPersistent(t *testing.T) {
	m := treemap.New[int, string](ordered.Natural[int]())
	m = m.Set(1, "a").Set(2, "b")
	derived := m.Set(3, "c").Delete(1)
	if m.Size() != 2 || !m.ContainsKey(1) {
		t.Error("expected original map to be unaffected by derivations, isn't")
	}
	if derived.Size() != 2 || derived.ContainsKey(1) || !derived.ContainsKey(3) {
		t.Error("expected derived map to reflect its own history, doesn't")
	}
}

func TestMapKeyOrderedIteration(t *testing.T) {
	m := treemap.New[int, string](ordered.Natural[int]())
	m = m.Set(3, "c").Set(1, "a").Set(2, "b")
	keys := m.Keys()
	values := m.Values()
	for i, want := range []int{1, 2, 3} {
		if keys[i] != want {
			t.Fatalf("expected keys in order [1 2 3], got %v", keys)
		}
	}
	for i, want := range []string{"a", "b", "c"} {
		if values[i] != want {
			t.Fatalf("expected values in key order [a b c], got %v", values)
		}
	}
	it := m.Iterator()
	first, ok := it.Next()
	if !ok || first.Left != 1 || first.Right != "a" {
		t.Errorf("expected first entry 1→a, got %v", first)
	}
}

func TestMapMinMax(t *testing.T) {
	m := treemap.New[int, string](ordered.Natural[int]())
	if m.Min().IsJust() {
		t.Error("expected empty map to have no minimum, has")
	}
	m = m.Set(2, "b").Set(9, "z").Set(4, "d")
	min, _ := m.Min().Value()
	max, _ := m.Max().Value()
	if min.Left != 2 || max.Left != 9 {
		t.Errorf("expected min/max keys 2/9, got %d/%d", min.Left, max.Left)
	}
}

func TestMapString(t *testing.T) {
	m := treemap.New[int, string](ordered.Natural[int]())
	m = m.Set(2, "b").Set(1, "a")
	if m.String() != "{1→a, 2→b}" {
		t.Errorf("expected map to print as {1→a, 2→b}, is %s", m)
	}
}
