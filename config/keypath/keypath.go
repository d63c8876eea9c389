package keypath

import "strings"

// Separator delimits segments in a dotted path.
const Separator = "."

// Path is an ordered sequence of path segments locating a value from some node.
type Path []string

// Like is the set of path spellings accepted by Normalize.
type Like interface {
	string | []string | Path
}

// Normalize converts a dotted string or an explicit segment list into a Path.
// Strings are split on every separator; segment lists pass through unchanged.
func Normalize[P Like](path P) Path {
	switch value := any(path).(type) {
	case string:
		return Split(value)
	case []string:
		return Path(value)
	case Path:
		return value
	}

	return nil
}

// Split splits a dotted path. Empty segments are kept.
func Split(path string) Path {
	return strings.Split(path, Separator)
}

// String returns the dotted spelling of the path.
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Join returns a new path with the segments appended. The receiver is never modified.
func (p Path) Join(segments ...string) Path {
	joined := make(Path, 0, len(p)+len(segments))
	joined = append(joined, p...)

	return append(joined, segments...)
}

// Head returns the first segment and the remaining path.
func (p Path) Head() (string, Path) {
	if len(p) == 0 {
		return "", nil
	}

	return p[0], p[1:]
}

// Clone returns a copy of the path that does not share storage with p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}

	return append(Path{}, p...)
}
