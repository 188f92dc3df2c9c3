package rbtree

// Color of a tree node. Empty trees are black by definition.
type Color int8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// node is a value-bearing tree cell. The empty tree variant is represented
// by a nil *node; all structural helpers below are total on nil receivers,
// so the recursive algorithms can enumerate both variants without guards.
//
// Nodes are created once and never mutated afterwards. A node may be shared
// by every tree derived through an operation that chose not to reallocate
// it; its lifetime extends to the longest-lived referencing tree.
type node[T any] struct {
	color       Color
	blackHeight int // number of black nodes on any path down to an empty leaf
	left        *node[T]
	value       T
	right       *node[T]
	size        int
}

// makeNode is the only node constructor. The subtree size is recomputed
// here, never adjusted in place.
func makeNode[T any](color Color, blackHeight int, left *node[T], value T, right *node[T]) *node[T] {
	return &node[T]{
		color:       color,
		blackHeight: blackHeight,
		left:        left,
		value:       value,
		right:       right,
		size:        left.len() + right.len() + 1,
	}
}

func (n *node[T]) isEmpty() bool {
	return n == nil
}

func (n *node[T]) len() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[T]) col() Color {
	if n == nil {
		return Black
	}
	return n.color
}

func (n *node[T]) isRed() bool {
	return n != nil && n.color == Red
}

// height is the cached black-height, 0 for the empty tree.
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return n.blackHeight
}

// paint returns a node recolored to c, or n itself if the color already
// matches (or n is empty).
func (n *node[T]) paint(c Color) *node[T] {
	if n == nil || n.color == c {
		return n
	}
	return makeNode(c, n.blackHeight, n.left, n.value, n.right)
}

func (n *node[T]) isLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func minimum[T any](n *node[T]) T {
	assertThat(n != nil, "minimum of empty tree")
	for n.left != nil {
		n = n.left
	}
	return n.value
}

func maximum[T any](n *node[T]) T {
	assertThat(n != nil, "maximum of empty tree")
	for n.right != nil {
		n = n.right
	}
	return n.value
}
