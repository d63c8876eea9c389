// Package schema validates raw configuration documents against a JSON
// Schema before they are turned into a config tree.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/0xalexb/jsonconfig/config"
)

// ErrInvalid is returned when a document does not satisfy the schema.
var ErrInvalid = errors.New("document does not match schema")

const resourceURL = "schema.json"

// Validator checks documents against a compiled JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile compiles a JSON Schema document.
func Compile(data []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()

	err := compiler.AddResource(resourceURL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// CompileFile reads and compiles the JSON Schema stored at path.
func CompileFile(path string) (*Validator, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading schema %q: %w", path, err)
	}

	return Compile(data)
}

// Validate checks doc against the schema. The returned error wraps
// ErrInvalid and carries the validator's own description of every failure.
func (v *Validator) Validate(doc config.Mapping) error {
	instance, err := toInstance(doc)
	if err != nil {
		return err
	}

	err = v.schema.Validate(instance)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// toInstance converts doc into the generic form the schema library expects.
func toInstance(doc config.Mapping) (any, error) {
	if doc == nil {
		doc = config.Mapping{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var instance any

	err = decoder.Decode(&instance)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	return instance, nil
}
