package rbtree

import (
	"fmt"
	"strings"
)

// String produces a Lisp-like dump of the subtree, e.g. "(B:2 R:1 R:3)".
// Used by the tracer and by test logs.
func (n *node[T]) String() string {
	if n == nil {
		return "()"
	}
	if n.isLeaf() {
		return "(" + nodeLabel(n) + ")"
	}
	var sb strings.Builder
	lispString(&sb, n)
	return sb.String()
}

func nodeLabel[T any](n *node[T]) string {
	return fmt.Sprintf("%v:%v", n.color, n.value)
}

func lispString[T any](sb *strings.Builder, n *node[T]) {
	if n.isLeaf() {
		sb.WriteString(nodeLabel(n))
		return
	}
	sb.WriteByte('(')
	sb.WriteString(nodeLabel(n))
	if n.left != nil {
		sb.WriteByte(' ')
		lispString(sb, n.left)
	}
	if n.right != nil {
		sb.WriteByte(' ')
		lispString(sb, n.right)
	}
	sb.WriteByte(')')
}
