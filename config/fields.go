package config

import (
	"slices"

	"github.com/0xalexb/jsonconfig/config/keypath"
)

// fieldSet is a list of required or optional paths relative to one node, split
// once into keys that apply to the node itself and paths forwarded to children.
type fieldSet struct {
	all     []keypath.Path
	local   []string
	forward map[string][]keypath.Path
}

func splitFields(paths []keypath.Path) fieldSet {
	set := fieldSet{forward: make(map[string][]keypath.Path)}

	for _, path := range paths {
		if len(path) == 0 {
			continue
		}

		set.all = append(set.all, path.Clone())

		head, rest := path.Head()
		if len(rest) == 0 {
			if !slices.Contains(set.local, head) {
				set.local = append(set.local, head)
			}

			continue
		}

		set.forward[head] = append(set.forward[head], rest.Clone())
	}

	return set
}

func (f fieldSet) has(key string) bool {
	return slices.Contains(f.local, key)
}

func (f fieldSet) forKey(key string) []keypath.Path {
	return f.forward[key]
}

func (f fieldSet) dotted() []string {
	dotted := make([]string, len(f.all))
	for i, path := range f.all {
		dotted[i] = path.String()
	}

	return dotted
}
