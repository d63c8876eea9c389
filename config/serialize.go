package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ToDict materializes the node and its descendants into a Mapping. It is the
// inverse of construction.
func (n *Node) ToDict() Mapping {
	mapping := make(Mapping, 0, len(n.keys))

	for _, key := range n.keys {
		value := n.entries[key]
		if child, ok := value.(*Node); ok {
			value = child.ToDict()
		}

		mapping = append(mapping, Field{Key: key, Value: value})
	}

	return mapping
}

// ToMap is ToDict with unordered Go maps.
func (n *Node) ToMap() map[string]any {
	return n.ToDict().ToMap()
}

// ToJSON encodes the node as compact JSON, keeping key order.
func (n *Node) ToJSON() (string, error) {
	data, err := json.Marshal(n.ToDict())
	if err != nil {
		return "", fmt.Errorf("encoding config %q: %w", n.path.String(), err)
	}

	return string(data), nil
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return n.ToDict().MarshalJSON()
}

// String returns a debug representation with path, entries and access settings.
func (n *Node) String() string {
	var buf strings.Builder

	buf.WriteString("Node(path=[")
	buf.WriteString(strings.Join(n.path, ", "))
	buf.WriteString("], entries={")

	for i, key := range n.keys {
		if i > 0 {
			buf.WriteString(", ")
		}

		fmt.Fprintf(&buf, "%s: %s", key, formatValue(n.entries[key]))
	}

	fmt.Fprintf(&buf, "}, strict_access=%t, required_fields=[%s], optional_fields=[%s])",
		n.access.Strict(),
		strings.Join(n.required.dotted(), ", "),
		strings.Join(n.optional.dotted(), ", "),
	)

	return buf.String()
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", typed)
	case *Node:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}
