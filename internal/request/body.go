package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type BodyKind int

const (
	BodyRaw BodyKind = iota
	BodyJSON
)

func (k BodyKind) String() string {
	switch k {
	case BodyRaw:
		return "raw"
	case BodyJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Body is either the raw body text or, for application/json requests,
// the decoded JSON value. The zero Body is an empty raw body.
type Body struct {
	kind  BodyKind
	raw   string
	value any
}

func RawBody(s string) Body {
	return Body{kind: BodyRaw, raw: s}
}

func JSONBody(v any) Body {
	return Body{kind: BodyJSON, value: v}
}

func (b Body) Kind() BodyKind {
	return b.kind
}

// Raw returns the body text. It is "" for JSON bodies.
func (b Body) Raw() string {
	return b.raw
}

// Value returns the decoded JSON value. It is nil for raw bodies.
func (b Body) Value() any {
	return b.value
}

func (b Body) MarshalJSON() ([]byte, error) {
	switch b.kind {
	case BodyJSON:
		return marshalNoEscape(b.value)
	case BodyRaw:
		return marshalNoEscape(b.raw)
	default:
		return nil, fmt.Errorf("unknown body kind: %d", b.kind)
	}
}

// decodeJSONBody decodes exactly one JSON value from s. Numbers are kept
// as json.Number so they are written back with their original digits.
func decodeJSONBody(s string) (Body, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Body{}, fmt.Errorf("%w: %v", ErrMalformedJSONBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Body{}, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformedJSONBody)
	}

	return JSONBody(v), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
