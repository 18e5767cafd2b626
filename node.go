package figcon

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Node is a mutable view over one mapping in a configuration document.
// It is not a copy: mutations through a Node are mutations of the entry it
// was obtained from, and remain visible through the owning Store.
//
// A Node's validity is tied to the entry that produced it. Removing that
// entry, or overwriting it with a leaf value, detaches the Node from the
// document; writes through a detached Node are lost on Save.
type Node struct {
	backing *orderedmap.OrderedMap
}

// newNode wraps an existing mapping as a Node.
func newNode(m *orderedmap.OrderedMap) *Node {
	return &Node{backing: m}
}

// Get returns the value stored under key. The second return is false when
// the key is absent; absence is a normal outcome, not an error.
func (n *Node) Get(key string) (any, bool) {
	return n.backing.Get(key)
}

// Set inserts or overwrites the entry for key. Overwriting a subtree with a
// leaf value is permitted and destroys the subtree.
func (n *Node) Set(key string, value any) {
	n.backing.Set(key, value)
}

// SetString sets key to a string value.
func (n *Node) SetString(key, value string) {
	n.backing.Set(key, value)
}

// Has reports whether the mapping currently contains key, regardless of
// whether the entry is a leaf or a subtree.
func (n *Node) Has(key string) bool {
	_, ok := n.backing.Get(key)
	return ok
}

// Remove deletes the entry for key and returns the removed value. Removing
// an absent key is a no-op returning (nil, false). Removing a subtree drops
// everything nested beneath it.
func (n *Node) Remove(key string) (any, bool) {
	val, ok := n.backing.Get(key)
	if !ok {
		return nil, false
	}
	n.backing.Delete(key)
	return val, true
}

// Child returns a Node view over the mapping stored under key. The second
// return is false when the key is absent or holds a non-mapping value; this
// is the safe accessor, which never mutates the document.
func (n *Node) Child(key string) (*Node, bool) {
	val, ok := n.backing.Get(key)
	if !ok {
		return nil, false
	}
	m := n.mappingAt(key, val)
	if m == nil {
		return nil, false
	}
	return newNode(m), true
}

// EnsureChild returns a Node view over the mapping stored under key,
// inserting an empty mapping first if the key is absent. If the key exists
// but holds a non-mapping value the entry is left untouched and an error
// wrapping ErrNotMapping is returned; treat that as caller misuse, not a
// condition to retry.
func (n *Node) EnsureChild(key string) (*Node, error) {
	val, ok := n.backing.Get(key)
	if !ok {
		m := orderedmap.New()
		n.backing.Set(key, m)
		return newNode(m), nil
	}
	m := n.mappingAt(key, val)
	if m == nil {
		return nil, fmt.Errorf("child %q: %w", key, ErrNotMapping)
	}
	return newNode(m), nil
}

// Keys returns the mapping's keys in document order.
func (n *Node) Keys() []string {
	return n.backing.Keys()
}

// Len returns the number of entries in the mapping.
func (n *Node) Len() int {
	return len(n.backing.Keys())
}

// mappingAt converts the value stored under key to a *orderedmap.OrderedMap,
// or returns nil if it is not a mapping. encoding/json decodes nested
// objects as value-typed OrderedMaps; those are re-stored as pointers so the
// returned view aliases the parent's entry instead of a copy.
func (n *Node) mappingAt(key string, val any) *orderedmap.OrderedMap {
	switch m := val.(type) {
	case *orderedmap.OrderedMap:
		return m
	case orderedmap.OrderedMap:
		ptr := &m
		n.backing.Set(key, ptr)
		return ptr
	default:
		return nil
	}
}
