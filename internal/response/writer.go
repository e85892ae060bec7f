package response

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
)

// Field is one response header line. Names are title-cased on write.
type Field struct {
	Name  string
	Value string
}

type Writer struct {
	writer io.Writer
	state  writerState
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return fmt.Errorf("writer state out-of-order")
	}

	line, ok := statusLines[statusCode]
	if !ok {
		return fmt.Errorf("unsupported status code: %d", statusCode)
	}
	if _, err := io.WriteString(w.writer, line); err != nil {
		return fmt.Errorf("error writing status line: %w", err)
	}

	w.state = StateWritingHeaders
	return nil
}

// WriteHeaders writes fields in the given order followed by the blank line.
func (w *Writer) WriteHeaders(fields []Field) error {
	if w.state != StateWritingHeaders {
		return fmt.Errorf("writer state out-of-order")
	}

	caser := cases.Title(language.English)
	for _, f := range fields {
		line := caser.String(f.Name) + ": " + f.Value
		if _, err := io.WriteString(w.writer, line+"\r\n"); err != nil {
			return fmt.Errorf("error writing headers: %w", err)
		}
	}
	if _, err := io.WriteString(w.writer, "\r\n"); err != nil {
		return fmt.Errorf("error writing headers: %w", err)
	}

	w.state = StateWritingBody
	return nil
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, fmt.Errorf("writer state out-of-order")
	}

	w.state = StateDone
	return w.writer.Write(p)
}
