package request

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nhdewitt/http-echo/internal/headers"
)

const (
	crlf              = "\r\n"
	DefaultBufferSize = 64 * 1024

	contentTypeJSON = "application/json"
)

var (
	// ErrIncompleteRequest means the header section never ended with an
	// empty line. No response is produced for such a request.
	ErrIncompleteRequest = errors.New("request: header section not terminated")
	// ErrMalformedJSONBody means an application/json body did not decode.
	ErrMalformedJSONBody = errors.New("request: malformed json body")
)

// Request is one parsed request as echoed back to the client.
type Request struct {
	Method  string          `json:"method"`
	URI     string          `json:"uri"`
	Headers headers.Headers `json:"headers"`
	Body    Body            `json:"body"`
}

// RequestFromReader waits for the first chunk of data from reader and
// parses it. Data arriving in later reads is never looked at.
func RequestFromReader(reader io.Reader, bufferSize int) (*Request, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	buf := make([]byte, bufferSize)

	for {
		n, err := reader.Read(buf)
		if n > 0 {
			return Parse(buf[:n])
		}
		if err != nil {
			return nil, err
		}
	}
}

// Parse builds a Request from the raw bytes of one request.
func Parse(data []byte) (*Request, error) {
	lines := strings.Split(string(data), crlf)

	method, uri := requestLineFromString(lines[0])
	r := Request{
		Method:  method,
		URI:     uri,
		Headers: headers.NewHeaders(),
	}

	end := headerSectionEnd(lines)
	if end == -1 {
		return nil, ErrIncompleteRequest
	}
	for _, line := range lines[1:end] {
		r.Headers.Parse(line)
	}

	raw := strings.Join(lines[end+1:], crlf)
	if ct, _ := r.Headers.Get("Content-Type"); ct == contentTypeJSON {
		body, err := decodeJSONBody(raw)
		if err != nil {
			return nil, fmt.Errorf("error parsing body: %w", err)
		}
		r.Body = body
	} else {
		r.Body = RawBody(raw)
	}

	return &r, nil
}

// headerSectionEnd returns the index of the first empty line after the
// request line, or -1.
func headerSectionEnd(lines []string) int {
	for i := 1; i < len(lines); i++ {
		if lines[i] == "" {
			return i
		}
	}
	return -1
}

// requestLineFromString splits on single spaces. Anything after the
// target, including the protocol version, is dropped.
func requestLineFromString(s string) (method, target string) {
	parts := strings.Split(s, " ")
	method = parts[0]
	if len(parts) > 1 {
		target = parts[1]
	}
	return method, target
}
