// Package keypath converts the external spellings of a configuration path into
// a canonical sequence of segments.
//
// Two spellings are supported:
//   - dotted strings: "server.tls.cert" -> ["server", "tls", "cert"]
//   - environment variable names: "SERVER_TLS__MODE" -> ["server", "tls_mode"]
//
// Dotted strings are split on every "." without filtering empty segments, so a
// malformed path such as "a..b" surfaces downstream as a missing key rather than
// as a normalization error.
//
// Environment variable names are lower-cased. A single underscore separates
// segments and a doubled underscore stands for one literal underscore inside a
// segment. Longer runs are consumed in pairs from the left; an odd underscore left
// over at the end of a run separates segments:
//
//	"A___B"  -> ["a_", "b"]
//	"A____B" -> ["a__b"]
package keypath
