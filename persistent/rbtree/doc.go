/*
Package rbtree implements a persistent (immutable) red-black tree. It is the
balanced search tree backing the ordered collection types of this module
(see packages treeset and treemap).

Insertion follows Chris Okasaki, “Red-Black Trees in a Functional Setting”,
Journal of Functional Programming 9(4), 1999; deletion follows Stefan Kahrs,
“Red-black trees with types”, Journal of Functional Programming 11(4), 2001,
propagating a black-height deficit upwards. Beyond the point operations the
tree supports whole-tree set algebra — union, intersection and difference —
as divide-and-conquer algorithms over the tree shape (join/split/merge)
rather than as repeated single-element insertions.

Trees are values with copy-on-write behaviour: an operation reallocates only
the nodes on the path from the root to the point of change and shares every
other subtree with the pre-operation tree. Existing nodes are never mutated,
which makes any number of concurrent readers safe without synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.rbtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		panic(msg)
	}
}
