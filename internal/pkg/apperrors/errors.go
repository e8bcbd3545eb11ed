// Package apperrors предоставляет структурированные ошибки приложения.
// Назван apperrors чтобы не конфликтовать со стандартной библиотекой.
package apperrors

import (
	"errors"
	"fmt"
)

// Коды ошибок в иерархическом формате: CATEGORY.SPECIFIC_ERROR.
const (
	// Category: CONFIG - ошибки загрузки и проверки конфигурации.
	ErrConfigLoad     = "CONFIG.LOAD_FAILED"
	ErrConfigValidate = "CONFIG.VALIDATION_FAILED"

	// Category: USAGE - неверный вызов из командной строки.
	ErrUsage = "USAGE.MISSING_ARGUMENT"

	// Category: RESOURCE - встроенные ресурсы (миниатюра).
	ErrResourceLoad = "RESOURCE.LOAD_FAILED"

	// Category: SETTINGS - файл пользовательских настроек.
	ErrSettingsInvalid = "SETTINGS.INVALID"

	// Category: PRESET - запись готового документа.
	ErrPresetWrite = "PRESET.WRITE_FAILED"

	// Category: OUTPUT - ошибки форматирования вывода.
	ErrOutputFormat = "OUTPUT.FORMAT_FAILED"
)

// AppError представляет структурированную ошибку приложения.
// Реализует error interface и поддерживает wrapping через Unwrap().
//
// Пример использования:
//
//	return apperrors.NewAppError(apperrors.ErrResourceLoad,
//	    "не удалось прочитать миниатюру",
//	    err)
type AppError struct {
	// Code - машиночитаемый код ошибки в формате CATEGORY.SPECIFIC.
	Code string `json:"code"`

	// Message - человекочитаемое описание ошибки.
	Message string `json:"message"`

	// Cause - wrapped оригинальная ошибка.
	// Не сериализуется в JSON.
	Cause error `json:"-"`
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap возвращает wrapped ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError создаёт новый AppError с заданным кодом, сообщением и причиной.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf возвращает код первого AppError в цепочке err.
// Пустая строка если AppError в цепочке нет.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
