package validators

import (
	"net/netip"
	"net/url"
	"strconv"
	"strings"
)

const (
	maxPort             = 65535
	firstUnreservedPort = 1024
)

// IsURL accepts absolute URLs with a scheme and a host.
func IsURL(value any) (bool, string) {
	text, ok := value.(string)
	if !ok {
		return false, "must be a string"
	}

	parsed, err := url.Parse(text)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false, "must be an absolute URL"
	}

	return true, ""
}

// IsIPAddress accepts IPv4 and IPv6 addresses in their standard notation.
func IsIPAddress(value any) (bool, string) {
	text, ok := value.(string)
	if !ok {
		return false, "must be a string"
	}

	_, err := netip.ParseAddr(text)
	if err != nil {
		return false, "must be an IP address"
	}

	return true, ""
}

// IsIPv4Address accepts IPv4 addresses in the classic inet_aton forms:
// a.b.c.d, a.b.c (c is 16 bits), a.b (b is 24 bits), and a (32 bits).
// All parts are decimal.
func IsIPv4Address(value any) (bool, string) {
	text, ok := value.(string)
	if !ok {
		return false, "must be a string"
	}

	const message = "must be an IPv4 address"

	parts := strings.Split(text, ".")
	if len(parts) > 4 {
		return false, message
	}

	for i, part := range parts {
		number, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return false, message
		}

		bits := 8
		if i == len(parts)-1 {
			bits = 8 * (5 - len(parts))
		}

		if number >= 1<<bits {
			return false, message
		}
	}

	return true, ""
}

// IsPort accepts integer port numbers in the range 1..65535.
func IsPort(value any) (bool, string) {
	port, ok := asInt64(value)
	if !ok {
		return false, "must be an integer"
	}

	if port < 1 || port > maxPort {
		return false, "must be between 1 and 65535"
	}

	return true, ""
}

// IsUnreservedPort accepts integer port numbers in the range 1024..65535.
func IsUnreservedPort(value any) (bool, string) {
	port, ok := asInt64(value)
	if !ok {
		return false, "must be an integer"
	}

	if port < firstUnreservedPort || port > maxPort {
		return false, "must be between 1024 and 65535"
	}

	return true, ""
}
