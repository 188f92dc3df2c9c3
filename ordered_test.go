package ordered_test

import (
	"testing"

	"github.com/npillmayer/ordered"
)

func TestNaturalOrdering(t *testing.T) {
	cmp := ordered.Natural[int]()
	if cmp(1, 2) >= 0 || cmp(2, 1) <= 0 || cmp(3, 3) != 0 {
		t.Error("expected natural ordering to follow <, doesn't")
	}
	scmp := ordered.Natural[string]()
	if scmp("apple", "banana") >= 0 {
		t.Error("expected apple to sort before banana, doesn't")
	}
}

func TestReverseOrdering(t *testing.T) {
	cmp := ordered.Reverse(ordered.Natural[int]())
	if cmp(1, 2) <= 0 || cmp(2, 1) >= 0 || cmp(3, 3) != 0 {
		t.Error("expected reversed ordering to invert <, doesn't")
	}
}

func TestByProjection(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	byAge := ordered.By(func(p person) int { return p.age }, ordered.Natural[int]())
	if byAge(person{"ada", 36}, person{"bob", 24}) <= 0 {
		t.Error("expected ordering by age to ignore names, doesn't")
	}
}

func TestPair(t *testing.T) {
	p := ordered.P("key", 42)
	k, v := p.Decompose()
	if k != "key" || v != 42 {
		t.Errorf("expected pair to decompose into its components, got (%v, %v)", k, v)
	}
	if p.Left != "key" || p.Right != 42 {
		t.Error("expected pair fields to be accessible, aren't")
	}
}
