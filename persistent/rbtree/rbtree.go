package rbtree

import (
	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/maybe"
)

// Tree is a persistent ordered search tree. Trees are values: every
// modifying operation returns a new tree and leaves its receiver unchanged,
// with both trees sharing the untouched parts of their structure.
//
// A tree is permanently tied to the Ordering it was created with; the
// comparator is the sole ordering authority. Whole-tree operations (Union,
// Intersection, Difference) assume both operands use logically equivalent
// orderings — this is taken on faith and not validated.
type Tree[T any] struct {
	root *node[T]
	cmp  ordered.Ordering[T]
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp ordered.Ordering[T]) Tree[T] {
	assertThat(cmp != nil, "comparator is nil")
	return Tree[T]{cmp: cmp}
}

// Of creates a tree ordered by cmp, containing the given values.
func Of[T any](cmp ordered.Ordering[T], values ...T) Tree[T] {
	tree := New(cmp)
	for _, value := range values {
		tree = tree.Insert(value)
	}
	return tree
}

// --- API -------------------------------------------------------------------

// Insert returns a tree which additionally contains value. If the tree
// already holds a comparator-equal element, the new value replaces it, at
// the same position and without rebalancing.
func (t Tree[T]) Insert(value T) Tree[T] {
	t.checkUsable()
	root := insert(t.root, value, t.cmp).paint(Black)
	tracer().Debugf("insert %v: new root = %v", value, root)
	return Tree[T]{root: root, cmp: t.cmp}
}

// Delete returns a tree without value. Deleting an absent value returns the
// receiver unchanged (same root reference).
func (t Tree[T]) Delete(value T) Tree[T] {
	t.checkUsable()
	root, _ := remove(t.root, value, t.cmp)
	if root == t.root {
		return t // value not present, nothing to reallocate
	}
	tracer().Debugf("delete %v: new root = %v", value, root)
	return Tree[T]{root: root.paint(Black), cmp: t.cmp}
}

// Find locates a comparator-equal element, if present. The element returned
// may differ from the argument, even though the comparator considers both
// equal.
func (t Tree[T]) Find(value T) (T, bool) {
	t.checkUsable()
	if n := lookup(t.root, value, t.cmp); n != nil {
		return n.value, true
	}
	var none T
	return none, false
}

// Contains checks if the tree holds an element comparator-equal to value.
func (t Tree[T]) Contains(value T) bool {
	t.checkUsable()
	return lookup(t.root, value, t.cmp) != nil
}

// Min returns the least element of the tree, or Nothing for an empty tree.
func (t Tree[T]) Min() maybe.Maybe[T] {
	if t.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(minimum(t.root))
}

// Max returns the greatest element of the tree, or Nothing for an empty tree.
func (t Tree[T]) Max() maybe.Maybe[T] {
	if t.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(maximum(t.root))
}

// Union returns a tree containing the comparator-distinct union of the
// elements of t and o. Where both trees hold comparator-equal elements, the
// element instance of o is retained.
func (t Tree[T]) Union(o Tree[T]) Tree[T] {
	t.checkUsable()
	return Tree[T]{root: union(t.root, o.root, t.cmp), cmp: t.cmp}
}

// Intersection returns a tree containing the elements present in both t
// and o.
func (t Tree[T]) Intersection(o Tree[T]) Tree[T] {
	t.checkUsable()
	return Tree[T]{root: intersection(t.root, o.root, t.cmp), cmp: t.cmp}
}

// Difference returns a tree containing the elements of t absent from o.
func (t Tree[T]) Difference(o Tree[T]) Tree[T] {
	t.checkUsable()
	return Tree[T]{root: difference(t.root, o.root, t.cmp), cmp: t.cmp}
}

// Size returns the number of elements in the tree.
func (t Tree[T]) Size() int {
	return t.root.len()
}

// IsEmpty checks if the tree holds no elements.
func (t Tree[T]) IsEmpty() bool {
	return t.root.isEmpty()
}

// Color returns the color of the tree's root node. An empty tree is black
// by definition.
func (t Tree[T]) Color() Color {
	return t.root.col()
}

// Left returns the left subtree. It panics on an empty tree — navigating
// into an empty tree is a programmer error, not a data condition.
func (t Tree[T]) Left() Tree[T] {
	assertThat(t.root != nil, "structural navigation (left) on empty tree")
	return Tree[T]{root: t.root.left, cmp: t.cmp}
}

// Right returns the right subtree. It panics on an empty tree.
func (t Tree[T]) Right() Tree[T] {
	assertThat(t.root != nil, "structural navigation (right) on empty tree")
	return Tree[T]{root: t.root.right, cmp: t.cmp}
}

// Value returns the element held at the tree's root node. It panics on an
// empty tree.
func (t Tree[T]) Value() T {
	assertThat(t.root != nil, "no value present in empty tree")
	return t.root.value
}

// Comparator returns the Ordering the tree was created with.
func (t Tree[T]) Comparator() ordered.Ordering[T] {
	return t.cmp
}

// String returns a Lisp-like representation of the tree, e.g.
// "(B:2 R:1 R:3)".
func (t Tree[T]) String() string {
	return t.root.String()
}

func (t Tree[T]) checkUsable() {
	assertThat(t.cmp != nil, "tree has no comparator (use New)")
}
