package rbtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// validate checks the red-black invariants for every node reachable from
// tree's root: no red node has a red child, both children agree on the
// black-height, the cached black-height and size match recomputation, and
// in-order traversal is strictly increasing under the tree's comparator.
func validate[T any](t *testing.T, tree Tree[T]) {
	t.Helper()
	countBlackHeight(t, tree.root)
	values := tree.Values()
	for i := 1; i < len(values); i++ {
		if tree.cmp(values[i-1], values[i]) >= 0 {
			t.Fatalf("iteration not strictly increasing at %v, %v", values[i-1], values[i])
		}
	}
	if len(values) != tree.Size() {
		t.Fatalf("expected size %d to match element count %d", tree.Size(), len(values))
	}
}

// countBlackHeight recounts the black nodes from n down to and including
// the empty leaf, n itself counted by its color. For a node this equals the
// count through either child, which is exactly what blackHeight caches.
func countBlackHeight[T any](t *testing.T, n *node[T]) int {
	t.Helper()
	if n == nil {
		return 1 // the empty leaf is black
	}
	lh := countBlackHeight(t, n.left)
	rh := countBlackHeight(t, n.right)
	if lh != rh {
		t.Fatalf("black-height mismatch below %v: left %d, right %d", nodeLabel(n), lh, rh)
	}
	if n.blackHeight != lh {
		t.Fatalf("cached black-height of %v is %d, counted %d", nodeLabel(n), n.blackHeight, lh)
	}
	if n.isRed() && (n.left.isRed() || n.right.isRed()) {
		t.Fatalf("red node %v has a red child", nodeLabel(n))
	}
	if n.size != n.left.len()+n.right.len()+1 {
		t.Fatalf("size of %v is %d, children sum to %d", nodeLabel(n), n.size, n.left.len()+n.right.len()+1)
	}
	h := lh
	if n.color == Black {
		h++
	}
	return h
}

func depth[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	ld, rd := depth(n.left), depth(n.right)
	if ld > rd {
		return ld + 1
	}
	return rd + 1
}

func TestInvariantsRandomizedInserts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(42))
	tree := New(ordered.Natural[int]())
	for i := 0; i < 500; i++ {
		tree = tree.Insert(rng.Intn(300))
		validate(t, tree)
	}
}

func TestInvariantsRandomizedDeletes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(7))
	tree := New(ordered.Natural[int]())
	for i := 0; i < 300; i++ {
		tree = tree.Insert(rng.Intn(200))
	}
	for i := 0; i < 400; i++ {
		tree = tree.Delete(rng.Intn(200))
		validate(t, tree)
	}
}

func TestInvariantsSequentialAdversarial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	defer teardown()
	//
	tree := New(ordered.Natural[int]())
	for i := 0; i < 256; i++ { // strictly increasing inserts
		tree = tree.Insert(i)
	}
	validate(t, tree)
	if d := depth(tree.root); d > 2*9 { // ≤ 2·log2(n+1)
		t.Errorf("expected depth of 256-element tree to stay below 18, is %d", d)
	}
	for i := 255; i >= 0; i-- { // strictly decreasing deletes
		tree = tree.Delete(i)
		validate(t, tree)
	}
	if !tree.IsEmpty() {
		t.Error("expected tree to be empty after deleting all elements")
	}
}

func TestInvariantsDeleteMinScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.rbtree")
	defer teardown()
	//
	tree := New(ordered.Natural[int]())
	for i := 1; i <= 100; i++ {
		tree = tree.Insert(i)
	}
	for !tree.IsEmpty() {
		min, ok := tree.Min().Value()
		if !ok {
			t.Fatal("expected non-empty tree to have a minimum")
		}
		tree = tree.Delete(min)
		validate(t, tree)
	}
}
