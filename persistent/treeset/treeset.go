/*
Package treeset provides a persistent ordered set, backed by the red-black
tree of package rbtree.

Sets are values: Add and Remove return new incarnations of the set and
leave the receiver unchanged, sharing structure with it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treeset

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/maybe"
	"github.com/npillmayer/ordered/persistent/rbtree"
)

// Set is a persistent ordered set of elements, ordered by the comparator
// it was created with.
type Set[T any] struct {
	tree rbtree.Tree[T]
}

// New creates an empty set ordered by cmp.
func New[T any](cmp ordered.Ordering[T]) Set[T] {
	return Set[T]{tree: rbtree.New(cmp)}
}

// Of creates a set ordered by cmp, containing the given values.
func Of[T any](cmp ordered.Ordering[T], values ...T) Set[T] {
	return Set[T]{tree: rbtree.Of(cmp, values...)}
}

// Add returns a set which additionally contains value. A comparator-equal
// element already present is replaced by value.
func (s Set[T]) Add(value T) Set[T] {
	return Set[T]{tree: s.tree.Insert(value)}
}

// Remove returns a set without value. Removing an absent value returns the
// receiver unchanged.
func (s Set[T]) Remove(value T) Set[T] {
	return Set[T]{tree: s.tree.Delete(value)}
}

// Contains checks if the set holds an element comparator-equal to value.
func (s Set[T]) Contains(value T) bool {
	return s.tree.Contains(value)
}

// Min returns the least element, or Nothing for an empty set.
func (s Set[T]) Min() maybe.Maybe[T] {
	return s.tree.Min()
}

// Max returns the greatest element, or Nothing for an empty set.
func (s Set[T]) Max() maybe.Maybe[T] {
	return s.tree.Max()
}

// Union returns the set of elements contained in s or in other (or both).
func (s Set[T]) Union(other Set[T]) Set[T] {
	return Set[T]{tree: s.tree.Union(other.tree)}
}

// Intersection returns the set of elements contained in both s and other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	return Set[T]{tree: s.tree.Intersection(other.tree)}
}

// Difference returns the set of elements of s not contained in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	return Set[T]{tree: s.tree.Difference(other.tree)}
}

// Size returns the number of elements in the set.
func (s Set[T]) Size() int {
	return s.tree.Size()
}

// IsEmpty checks if the set holds no elements.
func (s Set[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Iterator returns an iterator over the set's elements in comparator order.
func (s Set[T]) Iterator() *rbtree.Iterator[T] {
	return s.tree.Iterator()
}

// Values returns the set's elements in comparator order.
func (s Set[T]) Values() []T {
	return s.tree.Values()
}

func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.tree.Each(func(v T) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	})
	sb.WriteByte('}')
	return sb.String()
}
