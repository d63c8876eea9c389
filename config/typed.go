package config

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Value returns the value at path asserted to T. A nil value from an optional
// or lenient lookup yields the zero T without error.
func Value[T any](node *Node, path string) (T, error) {
	var zero T

	value, err := node.Get(path)
	if err != nil {
		return zero, err
	}

	if value == nil {
		return zero, nil
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, node.path.Join(path).String(), value, zero)
	}

	return typed, nil
}

// Decode binds the node into target. Struct fields are matched by their yaml
// tag, falling back to the json tag.
func (n *Node) Decode(target any) error {
	data, err := json.Marshal(n.ToDict())
	if err != nil {
		return fmt.Errorf("encoding config %q: %w", n.path.String(), err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding config %q: %w", n.path.String(), err)
	}

	return nil
}
