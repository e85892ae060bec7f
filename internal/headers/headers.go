package headers

import (
	"strings"
)

const separator = ": "

// Headers maps field names to values. Names are kept exactly as received.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// ParseLine splits a header line on every ": " and keeps the first two
// pieces, so "X: a: b" yields value "a". ok is false when the separator
// is missing, in which case the whole line is the key and value is "".
func ParseLine(line string) (key, value string, ok bool) {
	parts := strings.Split(line, separator)
	if len(parts) < 2 {
		return parts[0], "", false
	}
	return parts[0], parts[1], true
}

// Parse records one header line. A later line with the same name
// replaces the earlier value.
func (h Headers) Parse(line string) bool {
	key, value, ok := ParseLine(line)
	h.Set(key, value)
	return ok
}

func (h Headers) Set(key, value string) {
	h[key] = value
}

func (h Headers) Get(key string) (value string, ok bool) {
	value, ok = h[key]
	return value, ok
}
