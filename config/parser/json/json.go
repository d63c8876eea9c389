// Package json provides a JSON document parser for the config package that
// keeps the key order of every object.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/jsonconfig/config"
	"github.com/0xalexb/jsonconfig/config/keypath"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNotObject is returned when the document (or the selected section) is not a JSON object.
var ErrNotObject = errors.New("document is not a JSON object")

// ErrPathNotFound is returned when the specified path is not found in the document.
var ErrPathNotFound = errors.New("path not found")

// ErrTrailingData is returned when data follows the top-level value.
var ErrTrailingData = errors.New("trailing data after document")

// Parser implements config.Parser for JSON data. Integers decode as int64,
// every other number as float64.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into an ordered mapping. The path parameter selects a
// sub-object with dotted segments; an empty path returns the whole document.
func (p *Parser) Parse(data []byte, path string) (config.Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	doc, err := decodeValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	if path != "" {
		doc, err = navigate(doc, path)
		if err != nil {
			return nil, err
		}
	}

	mapping, ok := doc.(config.Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, doc)
	}

	return mapping, nil
}

func navigate(doc any, path string) (any, error) {
	current := doc

	for _, key := range keypath.Split(path) {
		mapping, ok := current.(config.Mapping)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		current, ok = mapping.Get(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	return current, nil
}

func decodeValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch typed := token.(type) {
	case json.Delim:
		switch typed {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", typed)
		}
	case json.Number:
		return convertNumber(typed)
	default:
		return typed, nil
	}
}

func decodeObject(decoder *json.Decoder) (config.Mapping, error) {
	mapping := config.Mapping{}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", token)
		}

		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}

		mapping = setField(mapping, key, value)
	}

	_, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	return mapping, nil
}

// setField keeps the first position of a duplicated key and its last value,
// as encoding/json does for maps.
func setField(mapping config.Mapping, key string, value any) config.Mapping {
	for i := range mapping {
		if mapping[i].Key == key {
			mapping[i].Value = value

			return mapping
		}
	}

	return append(mapping, config.Field{Key: key, Value: value})
}

func decodeArray(decoder *json.Decoder) ([]any, error) {
	values := []any{}

	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	_, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	return values, nil
}

func convertNumber(number json.Number) (any, error) {
	integer, err := number.Int64()
	if err == nil {
		return integer, nil
	}

	float, err := number.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", number.String(), err)
	}

	return float, nil
}
