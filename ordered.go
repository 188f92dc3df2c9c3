/*
Package ordered provides the ordering machinery shared by the persistent
ordered collections of this module: a comparator type, constructors for
common orders, and a small product type used for map entries.

The comparator is the sole ordering authority for every collection in this
module. There is no implicit natural ordering; a collection is created with
an Ordering and keeps it for its whole life. Collections derived from one
another share the same Ordering instance. Combining two collections whose
orderings are not logically equivalent yields unspecified results.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordered

import "golang.org/x/exp/constraints"

// Ordering is a total order on T. It returns a negative number if a sorts
// before b, a positive number if a sorts after b, and 0 if both are equal
// under the order.
type Ordering[T any] func(a, b T) int

// Natural returns the ordering induced by `<` for ordered base types.
//
// Use it like this:
//
//     tree := rbtree.New(ordered.Natural[int]())
//
func Natural[T constraints.Ordered]() Ordering[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return +1
		}
		return 0
	}
}

// Reverse inverts an ordering.
func Reverse[T any](ord Ordering[T]) Ordering[T] {
	return func(a, b T) int {
		return ord(b, a)
	}
}

// By lifts an ordering on a projection of T to an ordering on T.
// A typical use is ordering structs by one of their fields.
func By[T, U any](project func(T) U, ord Ordering[U]) Ordering[T] {
	return func(a, b T) int {
		return ord(project(a), project(b))
	}
}

// --- Pair ------------------------------------------------------------------

// Pair is an ad-hoc product type. The treemap package stores its entries as
// pairs ⟨key, value⟩, ordered by the Left component only.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair from two values.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose splits a pair into its components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}
