package response

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nhdewitt/http-echo/internal/request"
)

const (
	markerHeader      = "hiii"
	markerHeaderValue = "header_value"
)

// EchoHeaders are the fixed headers of every echo response, in wire order.
func EchoHeaders() []Field {
	return []Field{
		{Name: "content-type", Value: "application/json"},
		{Name: markerHeader, Value: markerHeaderValue},
	}
}

// EncodeBody serializes req without HTML escaping and without a
// trailing newline.
func EncodeBody(req *request.Request) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req); err != nil {
		return nil, fmt.Errorf("error encoding request: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteEcho writes the 200 response carrying req as its JSON body.
// Nothing is written if req cannot be encoded.
func WriteEcho(w *Writer, req *request.Request) error {
	body, err := EncodeBody(req)
	if err != nil {
		return err
	}

	if err := w.WriteStatusLine(StatusOK); err != nil {
		return err
	}
	if err := w.WriteHeaders(EchoHeaders()); err != nil {
		return err
	}
	n, err := w.WriteBody(body)
	if err != nil {
		return fmt.Errorf("error writing body: %w", err)
	}
	if n != len(body) {
		return fmt.Errorf("short body write: %d of %d bytes", n, len(body))
	}

	return nil
}
