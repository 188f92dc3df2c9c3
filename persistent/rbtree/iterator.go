package rbtree

// Iterator walks a tree in comparator order. It is lazy, forward-only and
// finite. Because the underlying tree never mutates, iterating needs no
// synchronization; restart a traversal by requesting a fresh Iterator from
// the same tree.
type Iterator[T any] struct {
	stack []*node[T] // pending left spine, top = next element
}

// Iterator returns an in-order iterator over the tree's elements.
func (t Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{}
	it.pushLeftSpine(t.root)
	return it
}

// Next returns the next element in comparator order, with ok=false once the
// traversal is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(n.right)
	return n.value, true
}

func (it *Iterator[T]) pushLeftSpine(n *node[T]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Values returns all elements of the tree in comparator order.
func (t Tree[T]) Values() []T {
	values := make([]T, 0, t.Size())
	for it := t.Iterator(); ; {
		v, ok := it.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	return values
}

// Each calls visit for every element in comparator order.
func (t Tree[T]) Each(visit func(T)) {
	for it := t.Iterator(); ; {
		v, ok := it.Next()
		if !ok {
			return
		}
		visit(v)
	}
}
