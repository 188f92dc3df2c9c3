package rbtree

import "github.com/npillmayer/ordered"

/*
Comparator-driven point operations on the node level. All of them are
recursive descents which rebuild only the path from the root to the point
of change; a recursive call returning the child reference it was given is
the signal for the caller to return its own node unchanged, maximizing
structural sharing.
*/

// insert descends to the insertion point and rebalances the changed path on
// the way back up. The result may have a red root; the API entry point
// repaints it black.
func insert[T any](n *node[T], value T, cmp ordered.Ordering[T]) *node[T] {
	if n == nil {
		return makeNode(Red, 1, nil, value, nil)
	}
	comparison := cmp(value, n.value)
	switch {
	case comparison < 0:
		l := insert(n.left, value, cmp)
		if l == n.left {
			return n
		}
		return balanceLeft(n.color, n.blackHeight, l, n.value, n.right)
	case comparison > 0:
		r := insert(n.right, value, cmp)
		if r == n.right {
			return n
		}
		return balanceRight(n.color, n.blackHeight, n.left, n.value, r)
	}
	// Comparator-equal need not mean identical: swap in the new value.
	// The shape is unchanged, so no rebalancing is required.
	return makeNode(n.color, n.blackHeight, n.left, value, n.right)
}

// remove deletes value from the subtree, additionally reporting whether the
// result is one black level short. An absent value returns n unchanged.
func remove[T any](n *node[T], value T, cmp ordered.Ordering[T]) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	comparison := cmp(value, n.value)
	switch {
	case comparison < 0:
		l, deficit := remove(n.left, value, cmp)
		if l == n.left {
			return n, false
		}
		if deficit {
			return unbalancedRight(n.color, n.blackHeight-1, l, n.value, n.right)
		}
		return makeNode(n.color, n.blackHeight, l, n.value, n.right), false
	case comparison > 0:
		r, deficit := remove(n.right, value, cmp)
		if r == n.right {
			return n, false
		}
		if deficit {
			return unbalancedLeft(n.color, n.blackHeight-1, n.left, n.value, r)
		}
		return makeNode(n.color, n.blackHeight, n.left, n.value, r), false
	}
	// found the node to delete
	if n.right == nil {
		if n.color == Black {
			return blackify(n.left)
		}
		return n.left, false
	}
	// replace with the minimum of the right subtree
	r, deficit, m := removeMin(n.right)
	if deficit {
		return unbalancedLeft(n.color, n.blackHeight-1, n.left, m, r)
	}
	return makeNode(n.color, n.blackHeight, n.left, m, r), false
}

// blackify demotes a red node to black; a tree already black (or empty)
// signals a deficit instead.
func blackify[T any](n *node[T]) (*node[T], bool) {
	if n.isRed() {
		return n.paint(Black), false
	}
	return n, true
}

// removeMin deletes the leftmost element, returning the remainder, a
// deficit flag, and the removed element.
func removeMin[T any](n *node[T]) (*node[T], bool, T) {
	switch {
	case n.color == Black && n.left == nil && n.right == nil:
		return nil, true, n.value
	case n.color == Black && n.left == nil && n.right.isRed():
		return n.right.paint(Black), false, n.value
	case n.color == Red && n.left == nil:
		return n.right, false, n.value
	}
	assertThat(n.left != nil, "internal inconsistency: black node with empty left and black right child")
	l, deficit, m := removeMin(n.left)
	if deficit {
		rebalanced, stillShort := unbalancedRight(n.color, n.blackHeight-1, l, n.value, n.right)
		return rebalanced, stillShort, m
	}
	return makeNode(n.color, n.blackHeight, l, n.value, n.right), false, m
}

// lookup returns the node holding a comparator-equal element, or nil.
func lookup[T any](n *node[T], value T, cmp ordered.Ordering[T]) *node[T] {
	for n != nil {
		comparison := cmp(value, n.value)
		if comparison == 0 {
			return n
		}
		if comparison < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}
