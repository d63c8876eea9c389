package validators

import (
	"strconv"
	"strings"
)

const timedeltaFields = 5

// IsTimedelta accepts strings of five colon separated integers in the form
// "WW:DD:HH:MM:SS" (weeks, days, hours, minutes, seconds).
func IsTimedelta(value any) (bool, string) {
	text, ok := value.(string)
	if !ok {
		return false, "must be a string"
	}

	parts := strings.Split(text, ":")
	if len(parts) != timedeltaFields {
		return false, "must have the form WW:DD:HH:MM:SS"
	}

	for _, part := range parts {
		_, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return false, "all timedelta fields must be integers"
		}
	}

	return true, ""
}
