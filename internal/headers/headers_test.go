package headers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadersParse(t *testing.T) {
	// Test: Valid single header
	headers := NewHeaders()
	ok := headers.Parse("Host: localhost:8081")
	require.True(t, ok)
	assert.Equal(t, "localhost:8081", headers["Host"])

	// Test: Names keep their case
	headers = NewHeaders()
	headers.Parse("content-type: text/plain")
	_, found := headers.Get("Content-Type")
	assert.False(t, found)
	v, found := headers.Get("content-type")
	assert.True(t, found)
	assert.Equal(t, "text/plain", v)

	// Test: Valid 3 headers
	headers = NewHeaders()
	for _, line := range []string{"Host: example.com", "User-Agent: test-agent/1.0", "Accept: */*"} {
		require.True(t, headers.Parse(line))
	}
	assert.Len(t, headers, 3)
	assert.Equal(t, "example.com", headers["Host"])
	assert.Equal(t, "test-agent/1.0", headers["User-Agent"])
	assert.Equal(t, "*/*", headers["Accept"])

	// Test: Duplicate names, last one wins
	headers = NewHeaders()
	headers.Parse("Set-Person: lane-loves-go")
	headers.Parse("Set-Person: prime-loves-zig")
	headers.Parse("Set-Person: tj-loves-ocaml")
	assert.Len(t, headers, 1)
	assert.Equal(t, "tj-loves-ocaml", headers["Set-Person"])

	// Test: No separator records the empty sentinel
	headers = NewHeaders()
	ok = headers.Parse("Host localhost:8081")
	assert.False(t, ok)
	v, found = headers.Get("Host localhost:8081")
	assert.True(t, found)
	assert.Equal(t, "", v)

	// Test: Colon without a space is not a separator
	headers = NewHeaders()
	ok = headers.Parse("Host:localhost")
	assert.False(t, ok)
	assert.Equal(t, "", headers["Host:localhost"])

	// Test: Empty value is still a present value
	headers = NewHeaders()
	ok = headers.Parse("X-Empty: ")
	assert.True(t, ok)
	assert.Equal(t, "", headers["X-Empty"])
}

func TestParseLine(t *testing.T) {
	cases := []struct {
		line, key, value string
		ok               bool
	}{
		{"Host: x", "Host", "x", true},
		{"Referer: http://example.com/a", "Referer", "http://example.com/a", true},
		{"X-Nested: a: b", "X-Nested", "a", true},
		{"X-Url: http://h: 8080: tail", "X-Url", "http://h", true},
		{"X-Trailing: a: ", "X-Trailing", "a", true},
		{" Host : x ", " Host ", "x ", true},
		{"NoSeparator", "NoSeparator", "", false},
	}
	for _, c := range cases {
		key, value, ok := ParseLine(c.line)
		assert.Equal(t, c.key, key, c.line)
		assert.Equal(t, c.value, value, c.line)
		assert.Equal(t, c.ok, ok, c.line)
	}
}
