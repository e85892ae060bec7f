package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhdewitt/http-echo/internal/request"
)

func TestWriteEchoEmptyBody(t *testing.T) {
	req, err := request.Parse([]byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteEcho(NewWriter(&buf), req))

	want := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/json\r\n" +
		"Hiii: header_value\r\n" +
		"\r\n" +
		`{"method":"GET","uri":"/","headers":{"Host":"x"},"body":""}`
	assert.Equal(t, want, buf.String())
}

func TestWriteEchoBodies(t *testing.T) {
	cases := []struct {
		name string
		data string
		body string
	}{
		{
			name: "json object",
			data: "POST /api HTTP/1.1\r\nContent-Type: application/json\r\n\r\n{\"a\":[1,{\"b\":\"<c>\"}]}",
			body: `{"a":[1,{"b":"<c>"}]}`,
		},
		{
			name: "raw multi-line",
			data: "POST /raw HTTP/1.1\r\nContent-Type: text/plain\r\n\r\nx\r\ny",
			body: `"x\r\ny"`,
		},
		{
			name: "raw looks like json",
			data: "POST /raw HTTP/1.1\r\n\r\n{\"a\":1}",
			body: `"{\"a\":1}"`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req, err := request.Parse([]byte(c.data))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, WriteEcho(NewWriter(&buf), req))

			_, payload, ok := strings.Cut(buf.String(), "\r\n\r\n")
			require.True(t, ok)

			var got map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(payload), &got))
			assert.JSONEq(t, c.body, string(got["body"]))
		})
	}
}

func TestWriteEchoNestedSeparator(t *testing.T) {
	req, err := request.Parse([]byte("GET / HTTP/1.1\r\nX-Nested: a: b\r\n\r\n"))
	require.NoError(t, err)

	out, err := EncodeBody(req)
	require.NoError(t, err)
	assert.Equal(t, `{"method":"GET","uri":"/","headers":{"X-Nested":"a"},"body":""}`, string(out))
}

func TestEncodeBodyNoEscape(t *testing.T) {
	req, err := request.Parse([]byte("GET /a?b=1&c=<d> HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	out, err := EncodeBody(req)
	require.NoError(t, err)
	assert.Equal(t, `{"method":"GET","uri":"/a?b=1&c=<d>","headers":{},"body":""}`, string(out))
}

func TestWriterOrdering(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.Error(t, w.WriteHeaders(EchoHeaders()))
	_, err := w.WriteBody([]byte("x"))
	require.Error(t, err)

	require.Error(t, w.WriteStatusLine(StatusCode(418)))
	assert.Empty(t, buf.String())

	require.NoError(t, w.WriteStatusLine(StatusOK))
	require.Error(t, w.WriteStatusLine(StatusOK))
	require.NoError(t, w.WriteHeaders([]Field{{Name: "x-custom-name", Value: "v"}}))
	_, err = w.WriteBody([]byte("x"))
	require.NoError(t, err)
	_, err = w.WriteBody([]byte("y"))
	require.Error(t, err)

	assert.Equal(t, "HTTP/1.1 200 OK\r\nX-Custom-Name: v\r\n\r\nx", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteEchoWriteError(t *testing.T) {
	req, err := request.Parse([]byte("GET / HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	err = WriteEcho(NewWriter(failingWriter{}), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
