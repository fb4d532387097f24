package model

import (
	"fmt"
	"strings"
)

// Field is a single key/value cell from a tabular row.
type Field struct {
	Key   string
	Value string
}

// Row is one tabular row, in header-column order. Order matters: it
// determines the order of metadata statements end to end.
type Row []Field

// node is the typed intermediate tree a flat row parses into. A node is
// either a leaf holding a raw string value or a branch holding ordered
// children.
type node struct {
	leaf     bool
	value    string
	children []child
}

// child pairs a key segment with its subtree, preserving insertion order.
type child struct {
	key  string
	node *node
}

func newBranch() *node { return &node{} }

func newLeaf(value string) *node { return &node{leaf: true, value: value} }

// lookup returns the child node for key, or nil.
func (n *node) lookup(key string) *node {
	for _, c := range n.children {
		if c.key == key {
			return c.node
		}
	}
	return nil
}

func (n *node) add(key string, cn *node) {
	n.children = append(n.children, child{key: key, node: cn})
}

// unflatten expands dot-separated keys into a nested tree. Supports
// arbitrary nesting depth; the order keys appear in the row is kept.
//
// Returns an error wrapping ErrValidation for keys with empty segments
// (e.g. ".title" or "dc..title"), for keys that descend into an earlier
// plain value, and for duplicate keys.
func unflatten(row Row) (*node, error) {
	root := newBranch()
	for _, f := range row {
		segments := strings.Split(f.Key, ".")
		for _, s := range segments {
			if s == "" {
				return nil, fmt.Errorf("%w: key %q has an empty segment", ErrValidation, f.Key)
			}
		}

		cur := root
		for _, s := range segments[:len(segments)-1] {
			next := cur.lookup(s)
			if next == nil {
				next = newBranch()
				cur.add(s, next)
			} else if next.leaf {
				return nil, fmt.Errorf("%w: key %q descends into the plain value at %q", ErrValidation, f.Key, s)
			}
			cur = next
		}

		last := segments[len(segments)-1]
		if cur.lookup(last) != nil {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrValidation, f.Key)
		}
		cur.add(last, newLeaf(f.Value))
	}
	return root, nil
}
