package jsonconfig

// rules keeps one rule per field path in registration order.
// Registering a path again replaces its rule in place.
type rules[T any] struct {
	paths  []string
	byPath map[string]T
}

func (r *rules[T]) set(path string, rule T) {
	if r.byPath == nil {
		r.byPath = make(map[string]T)
	}

	if _, ok := r.byPath[path]; !ok {
		r.paths = append(r.paths, path)
	}

	r.byPath[path] = rule
}

func (r *rules[T]) each(apply func(path string, rule T) error) error {
	for _, path := range r.paths {
		err := apply(path, r.byPath[path])
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *rules[T]) len() int {
	return len(r.paths)
}
