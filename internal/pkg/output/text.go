package output

import (
	"fmt"
	"io"
)

// TextWriter выводит Result одной человекочитаемой строкой.
type TextWriter struct{}

// NewTextWriter создаёт новый TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write пишет Message, а если его нет - "command: status".
// Для ошибки добавляется строка с кодом.
func (t *TextWriter) Write(w io.Writer, result *Result) error {
	if result == nil {
		return nil
	}

	if result.Message != "" {
		if _, err := fmt.Fprintln(w, result.Message); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "%s: %s\n", result.Command, result.Status); err != nil {
		return err
	}

	if result.Error != nil {
		if _, err := fmt.Fprintf(w, "Error [%s]: %s\n", result.Error.Code, result.Error.Message); err != nil {
			return err
		}
	}
	return nil
}
