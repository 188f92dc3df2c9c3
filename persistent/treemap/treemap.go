/*
Package treemap provides a persistent ordered key→value map, backed by the
red-black tree of package rbtree.

Entries are stored as ordered.Pair values ⟨key, value⟩, with the key
comparator lifted to pairs; only the key participates in ordering. Maps are
values: Set and Delete return new incarnations of the map and leave the
receiver unchanged, sharing structure with it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treemap

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/maybe"
	"github.com/npillmayer/ordered/persistent/rbtree"
)

// Map is a persistent ordered map from K to V, ordered by the key
// comparator it was created with.
type Map[K, V any] struct {
	tree rbtree.Tree[ordered.Pair[K, V]]
}

// New creates an empty map with keys ordered by cmp.
func New[K, V any](cmp ordered.Ordering[K]) Map[K, V] {
	return Map[K, V]{tree: rbtree.New(byKey[K, V](cmp))}
}

// byKey lifts a key ordering to an ordering on entries.
func byKey[K, V any](cmp ordered.Ordering[K]) ordered.Ordering[ordered.Pair[K, V]] {
	return func(a, b ordered.Pair[K, V]) int {
		return cmp(a.Left, b.Left)
	}
}

// probe builds a key-only entry for lookups and deletion; the value
// component never takes part in ordering.
func probe[K, V any](key K) ordered.Pair[K, V] {
	return ordered.Pair[K, V]{Left: key}
}

// Set returns a map which additionally associates key with value. An
// entry with a comparator-equal key is replaced in place.
func (m Map[K, V]) Set(key K, value V) Map[K, V] {
	return Map[K, V]{tree: m.tree.Insert(ordered.P(key, value))}
}

// Delete returns a map without an entry for key. Deleting an absent key
// returns the receiver unchanged.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	return Map[K, V]{tree: m.tree.Delete(probe[K, V](key))}
}

// Get returns the value associated with key, with ok=false if there is no
// entry for key.
func (m Map[K, V]) Get(key K) (V, bool) {
	if entry, ok := m.tree.Find(probe[K, V](key)); ok {
		return entry.Right, true
	}
	var none V
	return none, false
}

// ContainsKey checks if the map holds an entry for key.
func (m Map[K, V]) ContainsKey(key K) bool {
	return m.tree.Contains(probe[K, V](key))
}

// Min returns the entry with the least key, or Nothing for an empty map.
func (m Map[K, V]) Min() maybe.Maybe[ordered.Pair[K, V]] {
	return m.tree.Min()
}

// Max returns the entry with the greatest key, or Nothing for an empty map.
func (m Map[K, V]) Max() maybe.Maybe[ordered.Pair[K, V]] {
	return m.tree.Max()
}

// Size returns the number of entries in the map.
func (m Map[K, V]) Size() int {
	return m.tree.Size()
}

// IsEmpty checks if the map holds no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Iterator returns an iterator over the map's entries in key order.
func (m Map[K, V]) Iterator() *rbtree.Iterator[ordered.Pair[K, V]] {
	return m.tree.Iterator()
}

// Keys returns the map's keys in key order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.Size())
	m.tree.Each(func(entry ordered.Pair[K, V]) {
		keys = append(keys, entry.Left)
	})
	return keys
}

// Values returns the map's values in key order.
func (m Map[K, V]) Values() []V {
	values := make([]V, 0, m.Size())
	m.tree.Each(func(entry ordered.Pair[K, V]) {
		values = append(values, entry.Right)
	})
	return values
}

func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	m.tree.Each(func(entry ordered.Pair[K, V]) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v→%v", entry.Left, entry.Right)
	})
	sb.WriteByte('}')
	return sb.String()
}
