package app

import "fmt"

// WriteError описывает неудачную запись пресета: куда писали и что помешало.
type WriteError struct {
	Path  string
	Cause error
}

// Error возвращает путь и причину.
func (e *WriteError) Error() string {
	return fmt.Sprintf("запись %s: %v", e.Path, e.Cause)
}

// Unwrap позволяет использовать errors.Is и errors.As.
func (e *WriteError) Unwrap() error {
	return e.Cause
}
