// Package config implements a hierarchical configuration object model.
//
// A document (an ordered Mapping, usually produced by one of the parsers under
// config/parser) is turned into a tree of Nodes. Every nested mapping becomes a
// child Node that knows its path from the root. Values are addressed with dotted
// paths or explicit segment lists:
//
//	cfg := config.New(doc)
//	port, err := cfg.Get("server.port")
//	same, err := cfg.GetPath(keypath.Path{"server", "port"})
//
// # Missing fields
//
// Lookups are strict by default and fail with ErrNotFound, which carries the
// dotted path from the root. WithStrictAccess(false) makes missing fields
// resolve to nil instead. WithRequiredFields and WithOptionalFields override the
// mode per path; a key listed in both is required.
//
// # Mutation
//
// Update replaces a value and, with upsert, creates missing keys and
// intermediate nodes. Add always writes but warns when asked not to overwrite.
// MergeWithEnvVariables upserts PREFIX_<PATH> environment variables, where a
// doubled underscore escapes a literal underscore in a key name.
//
// # Serialization
//
// ToDict and ToJSON turn the tree back into a document. State and
// MarshalBinary capture the full node state, including access settings.
//
// # Typed access
//
// Value asserts a single value to a Go type. Decode and Provider bind a section
// into a struct, applying Defaulter and Validator hooks.
package config
