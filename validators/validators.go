package validators

import (
	"fmt"
	"reflect"
	"slices"
)

// Func validates a field value. ok reports whether the value is valid;
// message is an optional explanation used when ok is false.
type Func func(value any) (ok bool, message string)

// Predicate adapts a plain boolean check to Func.
func Predicate(check func(value any) bool) Func {
	return func(value any) (bool, string) {
		return check(value), ""
	}
}

// All combines validators; the first failure wins.
func All(validators ...Func) Func {
	return func(value any) (bool, string) {
		for _, validate := range validators {
			ok, message := validate(value)
			if !ok {
				return false, message
			}
		}

		return true, ""
	}
}

// IsValidChoice accepts values equal to one of options.
func IsValidChoice(options ...any) Func {
	return func(value any) (bool, string) {
		if slices.ContainsFunc(options, func(option any) bool { return equal(option, value) }) {
			return true, ""
		}

		return false, fmt.Sprintf("must be one of %v", options)
	}
}

// equal compares two values, treating integer kinds of equal value as equal.
// Values that cannot be compared at run time are never equal.
func equal(left, right any) bool {
	leftInt, leftIsInt := asInt64(left)
	rightInt, rightIsInt := asInt64(right)

	if leftIsInt && rightIsInt {
		return leftInt == rightInt
	}

	if left == nil || right == nil {
		return left == nil && right == nil
	}

	if !reflect.ValueOf(left).Comparable() || !reflect.ValueOf(right).Comparable() {
		return false
	}

	return left == right
}

func asInt64(value any) (int64, bool) {
	switch typed := value.(type) {
	case int:
		return int64(typed), true
	case int8:
		return int64(typed), true
	case int16:
		return int64(typed), true
	case int32:
		return int64(typed), true
	case int64:
		return typed, true
	case uint8:
		return int64(typed), true
	case uint16:
		return int64(typed), true
	case uint32:
		return int64(typed), true
	default:
		return 0, false
	}
}
