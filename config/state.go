package config

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/0xalexb/jsonconfig/config/keypath"
)

// State is the complete internal state of a node, used to persist or transfer
// a tree and to rebuild it without running construction again.
type State struct {
	Path           keypath.Path   `msgpack:"path"`
	Entries        []StateEntry   `msgpack:"entries"`
	Access         Access         `msgpack:"access"`
	RequiredFields []keypath.Path `msgpack:"required_fields"`
	OptionalFields []keypath.Path `msgpack:"optional_fields"`
}

// StateEntry is one entry of a State. Exactly one of Value and Node is meaningful.
type StateEntry struct {
	Key   string `msgpack:"key"`
	Value any    `msgpack:"value"`
	Node  *State `msgpack:"node,omitempty"`
}

type valueKind uint8

const (
	kindScalar valueKind = iota
	kindSequence
	kindMapping
)

// wireValue is the MessagePack form of an entry value. Sequences and
// mappings are spelled out so that mappings nested in sequences keep their
// type and key order.
type wireValue struct {
	Kind   valueKind   `msgpack:"kind"`
	Scalar any         `msgpack:"scalar"`
	Items  []wireValue `msgpack:"items"`
	Fields []wireField `msgpack:"fields"`
}

type wireField struct {
	Key   string    `msgpack:"key"`
	Value wireValue `msgpack:"value"`
}

type wireEntry struct {
	Key   string    `msgpack:"key"`
	Value wireValue `msgpack:"value"`
	Node  *State    `msgpack:"node,omitempty"`
}

func toWire(value any) wireValue {
	if mapping, ok := asMapping(value); ok {
		fields := make([]wireField, len(mapping))
		for i, field := range mapping {
			fields[i] = wireField{Key: field.Key, Value: toWire(field.Value)}
		}

		return wireValue{Kind: kindMapping, Fields: fields}
	}

	if items, ok := value.([]any); ok {
		wire := make([]wireValue, len(items))
		for i, item := range items {
			wire[i] = toWire(item)
		}

		return wireValue{Kind: kindSequence, Items: wire}
	}

	return wireValue{Kind: kindScalar, Scalar: value}
}

func fromWire(wire wireValue) any {
	switch wire.Kind {
	case kindMapping:
		mapping := make(Mapping, len(wire.Fields))
		for i, field := range wire.Fields {
			mapping[i] = Field{Key: field.Key, Value: fromWire(field.Value)}
		}

		return mapping
	case kindSequence:
		items := make([]any, len(wire.Items))
		for i, item := range wire.Items {
			items[i] = fromWire(item)
		}

		return items
	default:
		return wire.Scalar
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (e StateEntry) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(wireEntry{Key: e.Key, Value: toWire(e.Value), Node: e.Node})
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (e *StateEntry) DecodeMsgpack(dec *msgpack.Decoder) error {
	var wire wireEntry

	err := dec.Decode(&wire)
	if err != nil {
		return err
	}

	*e = StateEntry{Key: wire.Key, Value: fromWire(wire.Value), Node: wire.Node}

	return nil
}

// State captures the node and its descendants.
func (n *Node) State() State {
	state := State{
		Path:           n.path.Clone(),
		Entries:        make([]StateEntry, 0, len(n.keys)),
		Access:         n.access,
		RequiredFields: clonePaths(n.required.all),
		OptionalFields: clonePaths(n.optional.all),
	}

	for _, key := range n.keys {
		entry := StateEntry{Key: key}

		if child, ok := n.entries[key].(*Node); ok {
			childState := child.State()
			entry.Node = &childState
		} else {
			entry.Value = n.entries[key]
		}

		state.Entries = append(state.Entries, entry)
	}

	return state
}

// FromState rebuilds a node from a captured State. Only WithLogger is honored
// among the options; everything else comes from the state.
func FromState(state State, opts ...Option) *Node {
	return restore(state, newSettings(opts).logger)
}

func restore(state State, logger *slog.Logger) *Node {
	node := &Node{
		path:     state.Path.Clone(),
		entries:  make(map[string]any, len(state.Entries)),
		access:   state.Access,
		required: splitFields(state.RequiredFields),
		optional: splitFields(state.OptionalFields),
		logger:   logger,
	}

	for _, entry := range state.Entries {
		if entry.Node != nil {
			node.set(entry.Key, restore(*entry.Node, logger))

			continue
		}

		node.set(entry.Key, entry.Value)
	}

	return node
}

// MarshalBinary encodes the node state with MessagePack.
func (n *Node) MarshalBinary() ([]byte, error) {
	data, err := msgpack.Marshal(n.State())
	if err != nil {
		return nil, fmt.Errorf("encoding node state: %w", err)
	}

	return data, nil
}

// UnmarshalBinary replaces the node with the state encoded by MarshalBinary.
// Integers decode as int64 and floats as float64.
func (n *Node) UnmarshalBinary(data []byte) error {
	decoder := msgpack.NewDecoder(bytes.NewReader(data))
	decoder.UseLooseInterfaceDecoding(true)

	var state State

	err := decoder.Decode(&state)
	if err != nil {
		return fmt.Errorf("decoding node state: %w", err)
	}

	logger := n.logger
	if logger == nil {
		logger = slog.Default()
	}

	*n = *restore(state, logger)

	return nil
}

func clonePaths(paths []keypath.Path) []keypath.Path {
	cloned := make([]keypath.Path, len(paths))
	for i, path := range paths {
		cloned[i] = path.Clone()
	}

	return cloned
}
