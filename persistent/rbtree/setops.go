package rbtree

import "github.com/npillmayer/ordered"

/*
Whole-tree algorithms. join, split and merge carry unchecked structural
preconditions (relative ordering of their operands); they stay unexported
and are combined into the exported set algebra, which runs in
O(m·log(n/m+1)) by dividing on tree shape instead of inserting elements one
by one.
*/

// join combines two trees and a bridging value into one balanced tree.
// Precondition: every element of t1 < value < every element of t2.
// Runs in O(|height difference| + log(min size)).
func join[T any](t1 *node[T], value T, t2 *node[T], cmp ordered.Ordering[T]) *node[T] {
	if t1 == nil {
		return insert(t2, value, cmp).paint(Black)
	}
	if t2 == nil {
		return insert(t1, value, cmp).paint(Black)
	}
	switch h1, h2 := t1.blackHeight, t2.blackHeight; {
	case h1 < h2:
		return joinLT(t1, value, t2, h1).paint(Black)
	case h1 > h2:
		return joinGT(t1, value, t2, h2).paint(Black)
	default:
		return makeNode(Black, h1+1, t1, value, t2)
	}
}

// joinLT descends the left spine of the taller tree t2 until the remaining
// subtree's black-height matches h1, attaches t1 and value as a new red
// node there, and rebalances on the way back up.
func joinLT[T any](t1 *node[T], value T, t2 *node[T], h1 int) *node[T] {
	if t2.blackHeight == h1 {
		return makeNode(Red, h1+1, t1, value, t2)
	}
	n := joinLT(t1, value, t2.left, h1)
	return balanceLeft(t2.color, t2.blackHeight, n, t2.value, t2.right)
}

func joinGT[T any](t1 *node[T], value T, t2 *node[T], h2 int) *node[T] {
	if t1.blackHeight == h2 {
		return makeNode(Red, h2+1, t1, value, t2)
	}
	n := joinGT(t1.right, value, t2, h2)
	return balanceRight(t1.color, t1.blackHeight, t1.left, t1.value, n)
}

// split partitions a tree into elements strictly less than and strictly
// greater than value; an element equal to value is discarded. O(log n).
func split[T any](n *node[T], value T, cmp ordered.Ordering[T]) (*node[T], *node[T]) {
	if n == nil {
		return nil, nil
	}
	comparison := cmp(value, n.value)
	switch {
	case comparison < 0:
		less, greater := split(n.left, value, cmp)
		return less, join(greater, n.value, n.right.paint(Black), cmp)
	case comparison > 0:
		less, greater := split(n.right, value, cmp)
		return join(n.left.paint(Black), n.value, less, cmp), greater
	}
	return n.left.paint(Black), n.right.paint(Black)
}

// merge fuses two trees without a bridging value.
// Precondition: every element of t1 < every element of t2.
// O(log(max size)).
func merge[T any](t1, t2 *node[T]) *node[T] {
	if t1 == nil {
		return t2
	}
	if t2 == nil {
		return t1
	}
	switch h1, h2 := t1.blackHeight, t2.blackHeight; {
	case h1 < h2:
		return mergeLT(t1, t2, h1).paint(Black)
	case h1 > h2:
		return mergeGT(t1, t2, h2).paint(Black)
	default:
		return mergeEQ(t1, t2).paint(Black)
	}
}

// mergeEQ splices two trees of equal black-height, bridging them with the
// minimum of t2. The case analysis on n1's children keeps the no-red-red
// invariant intact after the splice.
func mergeEQ[T any](n1, n2 *node[T]) *node[T] {
	t2, deficit, m := removeMin(n2)
	if deficit {
		// A red-rooted remainder regains the lost black level by
		// repainting; its cached height is unaffected, so the
		// comparison below sees the restored tree.
		t2, _ = blackify(t2)
	}
	h2 := t2.height()
	switch {
	case n1.blackHeight == h2:
		return makeNode(Red, n1.blackHeight+1, n1, m, t2)
	case n1.left.isRed():
		newRight := makeNode(Black, n1.blackHeight, n1.right, m, t2)
		return makeNode(Red, n1.blackHeight+1, n1.left.paint(Black), n1.value, newRight)
	case n1.right.isRed():
		rl, rx, rr := n1.right.left, n1.right.value, n1.right.right
		newLeft := makeNode(Red, n1.blackHeight, n1.left, n1.value, rl)
		newRight := makeNode(Red, n1.blackHeight, rr, m, t2)
		return makeNode(Black, n1.blackHeight, newLeft, rx, newRight)
	default:
		return makeNode(Black, n1.blackHeight, n1.paint(Red), m, t2)
	}
}

func mergeGT[T any](n1, n2 *node[T], h2 int) *node[T] {
	if n1.blackHeight == h2 {
		return mergeEQ(n1, n2)
	}
	n := mergeGT(n1.right, n2, h2)
	return balanceRight(n1.color, n1.blackHeight, n1.left, n1.value, n)
}

func mergeLT[T any](n1, n2 *node[T], h1 int) *node[T] {
	if n2.blackHeight == h1 {
		return mergeEQ(n1, n2)
	}
	n := mergeLT(n1, n2.left, h1)
	return balanceLeft(n2.color, n2.blackHeight, n, n2.value, n2.right)
}

// --- Set algebra -----------------------------------------------------------

// union divides a at b's root and recombines with join; b's root value is
// always the pivot, so for comparator-equal elements b's instance wins.
func union[T any](a, b *node[T], cmp ordered.Ordering[T]) *node[T] {
	if b == nil {
		return a
	}
	if a == nil {
		return b.paint(Black)
	}
	less, greater := split(a, b.value, cmp)
	return join(union(less, b.left, cmp), b.value, union(greater, b.right, cmp), cmp)
}

// intersection keeps b's pivot only if a contains it.
func intersection[T any](a, b *node[T], cmp ordered.Ordering[T]) *node[T] {
	if a == nil || b == nil {
		return nil
	}
	less, greater := split(a, b.value, cmp)
	li := intersection(less, b.left, cmp)
	gi := intersection(greater, b.right, cmp)
	if lookup(a, b.value, cmp) != nil {
		return join(li, b.value, gi, cmp)
	}
	return merge(li, gi)
}

// difference drops b's pivot and keeps only a's halves.
func difference[T any](a, b *node[T], cmp ordered.Ordering[T]) *node[T] {
	if a == nil || b == nil {
		return a
	}
	less, greater := split(a, b.value, cmp)
	return merge(difference(less, b.left, cmp), difference(greater, b.right, cmp))
}
