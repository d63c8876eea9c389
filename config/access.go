package config

// Access controls what a node returns for a missing field.
type Access int8

const (
	// AccessDefault inherits the default behavior, which is strict.
	AccessDefault Access = iota
	// AccessStrict fails with ErrNotFound on a missing field.
	AccessStrict
	// AccessLenient returns nil for a missing field.
	AccessLenient
)

// AccessFor maps a strict flag to an Access value.
func AccessFor(strict bool) Access {
	if strict {
		return AccessStrict
	}

	return AccessLenient
}

// Strict reports whether missing fields are errors.
func (a Access) Strict() bool {
	return a != AccessLenient
}

func (a Access) String() string {
	switch a {
	case AccessStrict:
		return "strict"
	case AccessLenient:
		return "lenient"
	default:
		return "default"
	}
}
