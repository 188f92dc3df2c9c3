package rbtree

/*
Local O(1) rebalancing rewrites. balanceLeft/balanceRight repair a freshly
introduced red-red violation below a black node during insertion (and during
join/merge, which reuse them on the way back up). unbalancedLeft/
unbalancedRight absorb a black-height deficit reported by a deletion in one
child, inspecting the sibling's shape.

All four functions take the constituents of the node being rebuilt rather
than the node itself: the caller is about to reallocate that node anyway,
and one of its children has typically changed already.
*/

// balanceLeft rebuilds a node whose left child just changed. If the node is
// black and the new left child is red with a red child of its own, the
// three nodes involved are rewritten into one red parent with two black
// children, incrementing the black-height. Red nodes are never locally
// rebalanced: a red node reached during insertion has black children.
func balanceLeft[T any](color Color, blackHeight int, left *node[T], value T, right *node[T]) *node[T] {
	if color == Black && left.isRed() {
		if left.left.isRed() {
			ll := left.left
			newLeft := makeNode(Black, blackHeight, ll.left, ll.value, ll.right)
			newRight := makeNode(Black, blackHeight, left.right, value, right)
			return makeNode(Red, blackHeight+1, newLeft, left.value, newRight)
		}
		if left.right.isRed() {
			lr := left.right
			newLeft := makeNode(Black, blackHeight, left.left, left.value, lr.left)
			newRight := makeNode(Black, blackHeight, lr.right, value, right)
			return makeNode(Red, blackHeight+1, newLeft, lr.value, newRight)
		}
	}
	return makeNode(color, blackHeight, left, value, right)
}

// balanceRight is the mirror image of balanceLeft, for a changed right child.
func balanceRight[T any](color Color, blackHeight int, left *node[T], value T, right *node[T]) *node[T] {
	if color == Black && right.isRed() {
		if right.right.isRed() {
			rr := right.right
			newLeft := makeNode(Black, blackHeight, left, value, right.left)
			newRight := makeNode(Black, blackHeight, rr.left, rr.value, rr.right)
			return makeNode(Red, blackHeight+1, newLeft, right.value, newRight)
		}
		if right.left.isRed() {
			rl := right.left
			newLeft := makeNode(Black, blackHeight, left, value, rl.left)
			newRight := makeNode(Black, blackHeight, rl.right, right.value, right.right)
			return makeNode(Red, blackHeight+1, newLeft, rl.value, newRight)
		}
	}
	return makeNode(color, blackHeight, left, value, right)
}

// unbalancedLeft rebuilds a node whose left child is one black level short.
// blackHeight is the already-decremented black-height of the node under
// construction. The returned flag reports whether the deficit propagates
// further up.
//
// Only two sibling shapes can legally occur here; any other shape signals a
// corrupted construction history and faults.
func unbalancedLeft[T any](color Color, blackHeight int, left *node[T], value T, right *node[T]) (*node[T], bool) {
	if left != nil {
		if left.color == Black {
			return balanceLeft(Black, blackHeight, left.paint(Red), value, right), color == Black
		}
		if color == Black && left.right != nil && left.right.color == Black {
			lr := left.right
			newRight := balanceLeft(Black, blackHeight, lr.paint(Red), value, right)
			return makeNode(Black, left.blackHeight, left.left, left.value, newRight), false
		}
	}
	assertThat(false, "internal inconsistency: unbalancedLeft(%v, %d, %v, %v, %v)", color, blackHeight, left, value, right)
	return nil, false
}

// unbalancedRight is the mirror image of unbalancedLeft, for a deficient
// right child.
func unbalancedRight[T any](color Color, blackHeight int, left *node[T], value T, right *node[T]) (*node[T], bool) {
	if right != nil {
		if right.color == Black {
			return balanceRight(Black, blackHeight, left, value, right.paint(Red)), color == Black
		}
		if color == Black && right.left != nil && right.left.color == Black {
			rl := right.left
			newLeft := balanceRight(Black, blackHeight, left, value, rl.paint(Red))
			return makeNode(Black, right.blackHeight, newLeft, right.value, right.right), false
		}
	}
	assertThat(false, "internal inconsistency: unbalancedRight(%v, %d, %v, %v, %v)", color, blackHeight, left, value, right)
	return nil, false
}
