package config

import (
	"errors"
	"fmt"

	"github.com/0xalexb/jsonconfig/config/keypath"
)

// ErrNotFound is returned when a key is absent and the access rules of the node
// where the miss occurred do not allow an empty result.
var ErrNotFound = errors.New("no value exists for key")

// ErrUpsertDisabled is returned by Update when the target key does not exist and upsert is off.
var ErrUpsertDisabled = errors.New("upsert disabled")

// ErrNotNode is returned when a path descends through a scalar value during an update.
var ErrNotNode = errors.New("value is not a config node")

// ErrEmptyPath is returned when an operation receives a path without segments.
var ErrEmptyPath = errors.New("path must not be empty")

// ErrTypeMismatch is returned when a value does not have the requested type.
var ErrTypeMismatch = errors.New("type mismatch")

func notFoundError(path keypath.Path) error {
	return fmt.Errorf("%w %q", ErrNotFound, path.String())
}
