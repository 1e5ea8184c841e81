package export

import (
	"bufio"
	"io"
	"strings"
)

// TableWriter streams records as CSV rows in the dialect of Python's csv.writer:
// fields are quoted only when they contain a comma, a quote, CR or LF, embedded
// line breaks are kept byte for byte, and every row ends in CRLF.
type TableWriter struct {
	w     *bufio.Writer
	count int
}

// NewTableWriter creates a writer and emits the header row.
func NewTableWriter(w io.Writer, header []string) (*TableWriter, error) {
	tw := &TableWriter{w: bufio.NewWriter(w)}
	if err := tw.writeRecord(header); err != nil {
		return nil, err
	}
	return tw, nil
}

// Write encodes a single record as a CSV row.
func (w *TableWriter) Write(record []string) error {
	if err := w.writeRecord(record); err != nil {
		return err
	}
	w.count++
	return nil
}

// Flush writes buffered rows to the underlying writer.
func (w *TableWriter) Flush() error {
	return w.w.Flush()
}

// Count returns data rows written so far, excluding the header.
func (w *TableWriter) Count() int {
	return w.count
}

func (w *TableWriter) writeRecord(record []string) error {
	// A lone empty field is written as "" so the row is not read back as blank.
	if len(record) == 1 && record[0] == "" {
		_, err := w.w.WriteString("\"\"\r\n")
		return err
	}

	for i, field := range record {
		if i > 0 {
			if err := w.w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := w.writeField(field); err != nil {
			return err
		}
	}
	_, err := w.w.WriteString("\r\n")
	return err
}

func (w *TableWriter) writeField(field string) error {
	if !strings.ContainsAny(field, ",\"\r\n") {
		_, err := w.w.WriteString(field)
		return err
	}

	if err := w.w.WriteByte('"'); err != nil {
		return err
	}
	if _, err := w.w.WriteString(strings.ReplaceAll(field, `"`, `""`)); err != nil {
		return err
	}
	return w.w.WriteByte('"')
}
