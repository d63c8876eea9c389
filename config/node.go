package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/jsonconfig/config/keypath"
)

// Node is one level of the configuration tree. Entries map keys to scalar
// values or child nodes and keep the order in which keys were first inserted.
//
// A node is not safe for concurrent mutation. Concurrent readers are fine once
// no more Update, Add or merge calls happen.
type Node struct {
	path     keypath.Path
	keys     []string
	entries  map[string]any
	access   Access
	required fieldSet
	optional fieldSet
	logger   *slog.Logger
}

// NewNode builds a node from source. Every nested mapping becomes a child node
// whose path is the parent path plus its key.
func NewNode(source Mapping, opts ...Option) *Node {
	s := newSettings(opts)

	return build(source, s.path, s.access, s.required, s.optional, s.logger)
}

func build(
	source Mapping,
	path keypath.Path,
	access Access,
	required, optional []keypath.Path,
	logger *slog.Logger,
) *Node {
	node := &Node{
		path:     path,
		entries:  make(map[string]any, len(source)),
		access:   access,
		required: splitFields(required),
		optional: splitFields(optional),
		logger:   logger,
	}

	for _, field := range source {
		node.set(field.Key, node.wrap(field.Key, field.Value))
	}

	return node
}

// Path returns the location of the node from the root.
func (n *Node) Path() keypath.Path {
	return n.path.Clone()
}

// Access returns the access mode of the node.
func (n *Node) Access() Access {
	return n.access
}

// Len returns the number of direct entries.
func (n *Node) Len() int {
	return len(n.keys)
}

// RequiredFields returns the required paths relative to this node, dotted.
func (n *Node) RequiredFields() []string {
	return n.required.dotted()
}

// OptionalFields returns the optional paths relative to this node, dotted.
func (n *Node) OptionalFields() []string {
	return n.optional.dotted()
}

// Get returns the value at the dotted path: a scalar or a *Node.
// A missing field yields (nil, nil) when the access rules allow it.
func (n *Node) Get(path string) (any, error) {
	return n.GetPath(keypath.Normalize(path))
}

// GetPath is Get for an explicit segment list.
func (n *Node) GetPath(path keypath.Path) (any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	key, rest := path.Head()

	value, ok := n.entries[key]
	if !ok {
		return n.missing(key)
	}

	if len(rest) == 0 {
		return value, nil
	}

	child, ok := value.(*Node)
	if !ok {
		return nil, notFoundError(n.path.Join(path...))
	}

	return child.GetPath(rest)
}

// missing resolves a lookup of a key that is not present in this node.
// Required beats optional when a key is listed in both.
func (n *Node) missing(key string) (any, error) {
	switch {
	case n.required.has(key):
		return nil, notFoundError(n.path.Join(key))
	case n.optional.has(key):
		return nil, nil
	case !n.access.Strict():
		return nil, nil
	default:
		return nil, notFoundError(n.path.Join(key))
	}
}

// Contains reports whether Get succeeds for path with a non-nil value.
func (n *Node) Contains(path string) bool {
	return n.ContainsPath(keypath.Normalize(path))
}

// ContainsPath is Contains for an explicit segment list.
func (n *Node) ContainsPath(path keypath.Path) bool {
	value, err := n.GetPath(path)

	return err == nil && value != nil
}

// Update replaces the value at path. Mappings are wrapped into child nodes.
// With upsert, missing intermediate nodes and the final key are created;
// without it, a missing intermediate is ErrNotFound and a missing final key is
// ErrUpsertDisabled.
func (n *Node) Update(path string, value any, upsert bool) error {
	return n.UpdatePath(keypath.Normalize(path), value, upsert)
}

// UpdatePath is Update for an explicit segment list.
func (n *Node) UpdatePath(path keypath.Path, value any, upsert bool) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	key, rest := path.Head()
	existing, exists := n.entries[key]

	if len(rest) == 0 {
		if !exists && !upsert {
			return fmt.Errorf("%w: cannot add key %q", ErrUpsertDisabled, n.path.Join(key).String())
		}

		n.set(key, n.wrap(key, value))

		return nil
	}

	if !exists {
		if !upsert {
			return notFoundError(n.path.Join(key))
		}

		existing = n.child(key, nil)
		n.set(key, existing)
	}

	child, ok := existing.(*Node)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotNode, n.path.Join(key).String())
	}

	return child.UpdatePath(rest, value, upsert)
}

// Add sets the value at path, creating intermediate nodes as needed. It always
// writes; with overwrite=false a warning is logged on every call that shadows
// an existing value.
func (n *Node) Add(path string, value any, overwrite bool) error {
	return n.AddPath(keypath.Normalize(path), value, overwrite)
}

// AddPath is Add for an explicit segment list.
func (n *Node) AddPath(path keypath.Path, value any, overwrite bool) error {
	if !overwrite && n.exists(path) {
		n.logger.Warn("overwriting existing config field",
			slog.String("path", n.path.Join(path...).String()),
		)
	}

	return n.UpdatePath(path, value, true)
}

// exists reports whether a value is stored at path, ignoring access rules.
func (n *Node) exists(path keypath.Path) bool {
	current := n

	for i, key := range path {
		value, ok := current.entries[key]
		if !ok {
			return false
		}

		if i == len(path)-1 {
			return true
		}

		current, ok = value.(*Node)
		if !ok {
			return false
		}
	}

	return false
}

func (n *Node) set(key string, value any) {
	if _, ok := n.entries[key]; !ok {
		n.keys = append(n.keys, key)
	}

	n.entries[key] = value
}

// child builds a node for key, handing it the inherited access mode and the
// required/optional paths forwarded to key.
func (n *Node) child(key string, source Mapping) *Node {
	return build(source, n.path.Join(key), n.access, n.required.forKey(key), n.optional.forKey(key), n.logger)
}

// wrap turns mapping values into child nodes. Nodes from elsewhere are copied so
// that their path matches their new position. Nil nodes are stored as nil.
func (n *Node) wrap(key string, value any) any {
	switch typed := value.(type) {
	case *Node:
		if typed == nil {
			return nil
		}

		return n.child(key, typed.ToDict())
	case *Config:
		if typed == nil || typed.Node == nil {
			return nil
		}

		return n.child(key, typed.ToDict())
	}

	if mapping, ok := asMapping(value); ok {
		return n.child(key, mapping)
	}

	return value
}

// Config is the root of a configuration tree.
type Config struct {
	*Node
}

// New builds a root configuration from source.
func New(source Mapping, opts ...Option) *Config {
	return &Config{Node: NewNode(source, opts...)}
}
