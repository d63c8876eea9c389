package keypath

import "strings"

const envDelimiter = '_'

// ParseEnvName converts an environment variable name (prefix already removed)
// into a path. See the package documentation for the escaping grammar.
func ParseEnvName(name string) Path {
	name = strings.ToLower(name)

	var (
		path    Path
		segment strings.Builder
	)

	flush := func() {
		if segment.Len() > 0 {
			path = append(path, segment.String())
			segment.Reset()
		}
	}

	for i := 0; i < len(name); {
		if name[i] != envDelimiter {
			segment.WriteByte(name[i])
			i++

			continue
		}

		run := 0
		for i < len(name) && name[i] == envDelimiter {
			run++
			i++
		}

		segment.WriteString(strings.Repeat("_", run/2))

		if run%2 == 1 {
			flush()
		}
	}

	flush()

	return path
}

// EnvName is the inverse of ParseEnvName: it upper-cases the segments, escapes
// literal underscores by doubling them, and joins segments with one underscore.
func EnvName(path Path) string {
	escaped := make([]string, len(path))
	for i, segment := range path {
		escaped[i] = strings.ReplaceAll(strings.ToUpper(segment), "_", "__")
	}

	return strings.Join(escaped, "_")
}
