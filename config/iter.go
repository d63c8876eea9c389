package config

import (
	"iter"

	"github.com/0xalexb/jsonconfig/config/keypath"
)

// Keys yields the full dotted path of every leaf value, depth first, in
// document order. It is the default way to iterate a node.
func (n *Node) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		n.walk(func(path keypath.Path, _ any) bool {
			return yield(path.String())
		})
	}
}

// Values yields the leaf values in the same order as Keys.
func (n *Node) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		n.walk(func(_ keypath.Path, value any) bool {
			return yield(value)
		})
	}
}

// Items yields (dotted path, value) pairs in the same order as Keys.
func (n *Node) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		n.walk(func(path keypath.Path, value any) bool {
			return yield(path.String(), value)
		})
	}
}

func (n *Node) walk(yield func(keypath.Path, any) bool) bool {
	for _, key := range n.keys {
		value := n.entries[key]

		if child, ok := value.(*Node); ok {
			if !child.walk(yield) {
				return false
			}

			continue
		}

		if !yield(n.path.Join(key), value) {
			return false
		}
	}

	return true
}
