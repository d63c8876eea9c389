// Package yaml provides a YAML document parser for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered map decoding so the
// resulting config.Mapping keeps the key order of the document. Integers are
// decoded as int64 (uint64 only when they overflow int64) and floats as float64.
//
// Usage:
//
//	parser := yaml.NewParser()
//	doc, err := parser.Parse(data, "api.permissions")
//	cfg := config.New(doc)
//
// Path Conversion:
//   - Empty path "" -> decode entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api.permissions" -> "$.api.permissions"
package yaml
