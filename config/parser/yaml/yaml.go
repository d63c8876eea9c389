package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/jsonconfig/config"
	"github.com/0xalexb/jsonconfig/config/keypath"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotMapping is returned when the document (or the selected section) is not a mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// Parser implements config.Parser for YAML data. JSON documents are valid YAML
// and are accepted as well, as long as they do not indent with tabs.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into an ordered mapping. The path parameter selects a
// sub-document with dotted segments; an empty path decodes the whole document.
func (p *Parser) Parse(data []byte, path string) (config.Mapping, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var doc any

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}
	} else {
		err := p.readPath(data, path, &doc)
		if err != nil {
			return nil, err
		}
	}

	mapping, ok := doc.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}

	return toMapping(mapping), nil
}

func (p *Parser) readPath(data []byte, path string, target *any) error {
	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if isKeyNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, yaml.UseOrderedMap())
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a dotted path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api.permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	return "$." + strings.Join(keypath.Split(path), ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}

func toMapping(slice yaml.MapSlice) config.Mapping {
	mapping := make(config.Mapping, 0, len(slice))
	for _, item := range slice {
		mapping = append(mapping, config.Field{Key: fmt.Sprint(item.Key), Value: normalize(item.Value)})
	}

	return mapping
}

// normalize converts decoded values to the scalar set used by config:
// int64 for integers that fit, float64 for floats, and Mappings for maps.
func normalize(value any) any {
	switch typed := value.(type) {
	case yaml.MapSlice:
		return toMapping(typed)
	case []any:
		normalized := make([]any, len(typed))
		for i, item := range typed {
			normalized[i] = normalize(item)
		}

		return normalized
	case int:
		return int64(typed)
	case int8:
		return int64(typed)
	case int16:
		return int64(typed)
	case int32:
		return int64(typed)
	case uint:
		return normalizeUnsigned(uint64(typed))
	case uint8:
		return int64(typed)
	case uint16:
		return int64(typed)
	case uint32:
		return int64(typed)
	case uint64:
		return normalizeUnsigned(typed)
	case float32:
		return float64(typed)
	default:
		return value
	}
}

func normalizeUnsigned(value uint64) any {
	if value > 1<<63-1 {
		return value
	}

	return int64(value)
}
