// Package output форматирует результат запуска для stdout: текстом или JSON.
package output

import (
	"time"

	"github.com/Kargones/nx-preset/internal/constants"
	"github.com/Kargones/nx-preset/internal/pkg/apperrors"
)

// StatusSuccess и StatusError - возможные значения поля Status в Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result - структурированный результат запуска.
type Result struct {
	Status  string `json:"status"`
	Command string `json:"command"`

	// Message - строка для человека; TextWriter выводит только её.
	Message string `json:"message,omitempty"`

	// Data - данные операции, для generate это PresetData.
	Data any `json:"data,omitempty"`

	Error    *ErrorInfo `json:"error,omitempty"`
	Metadata *Metadata  `json:"metadata,omitempty"`
}

// ErrorInfo содержит код и описание ошибки.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Metadata содержит метаданные выполнения.
type Metadata struct {
	DurationMs int64  `json:"duration_ms"`
	TraceID    string `json:"trace_id,omitempty"`
	APIVersion string `json:"api_version"`
}

// NewMetadata заполняет Metadata длительностью с момента start.
func NewMetadata(start time.Time, traceID string) *Metadata {
	return &Metadata{
		DurationMs: time.Since(start).Milliseconds(),
		TraceID:    traceID,
		APIVersion: constants.APIVersion,
	}
}

// ErrorResult строит Result для ошибки. Код берётся из AppError в цепочке,
// для прочих ошибок остаётся пустым.
func ErrorResult(command string, err error, meta *Metadata) *Result {
	return &Result{
		Status:   StatusError,
		Command:  command,
		Error:    &ErrorInfo{Code: apperrors.CodeOf(err), Message: err.Error()},
		Metadata: meta,
	}
}
