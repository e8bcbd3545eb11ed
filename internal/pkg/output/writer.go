package output

import "io"

// Writer форматирует Result и пишет его в w.
type Writer interface {
	Write(w io.Writer, result *Result) error
}
