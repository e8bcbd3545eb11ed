package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"ErrConfigLoad", ErrConfigLoad, "CONFIG.LOAD_FAILED"},
		{"ErrConfigValidate", ErrConfigValidate, "CONFIG.VALIDATION_FAILED"},
		{"ErrUsage", ErrUsage, "USAGE.MISSING_ARGUMENT"},
		{"ErrResourceLoad", ErrResourceLoad, "RESOURCE.LOAD_FAILED"},
		{"ErrSettingsInvalid", ErrSettingsInvalid, "SETTINGS.INVALID"},
		{"ErrPresetWrite", ErrPresetWrite, "PRESET.WRITE_FAILED"},
		{"ErrOutputFormat", ErrOutputFormat, "OUTPUT.FORMAT_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant)
		})
	}
}

func TestAppError_Error_WithCause(t *testing.T) {
	cause := errors.New("no such file")
	appErr := &AppError{
		Code:    ErrResourceLoad,
		Message: "не удалось прочитать миниатюру",
		Cause:   cause,
	}

	expected := "RESOURCE.LOAD_FAILED: не удалось прочитать миниатюру (no such file)"
	assert.Equal(t, expected, appErr.Error())
}

func TestAppError_Error_WithoutCause(t *testing.T) {
	appErr := &AppError{
		Code:    ErrUsage,
		Message: "не указан адрес сервера",
	}

	assert.Equal(t, "USAGE.MISSING_ARGUMENT: не указан адрес сервера", appErr.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	appErr := NewAppError(ErrPresetWrite, "не удалось записать пресет", cause)

	assert.Equal(t, cause, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, cause))
}

func TestAppError_Unwrap_NilCause(t *testing.T) {
	appErr := NewAppError(ErrUsage, "не указан адрес сервера", nil)
	assert.Nil(t, appErr.Unwrap())
}

func TestAppError_ImplementsError(_ *testing.T) {
	var _ error = (*AppError)(nil)
}

func TestNewAppError(t *testing.T) {
	cause := errors.New("bad yaml")
	appErr := NewAppError(ErrSettingsInvalid, "файл настроек невалиден", cause)

	require.NotNil(t, appErr)
	assert.Equal(t, ErrSettingsInvalid, appErr.Code)
	assert.Equal(t, "файл настроек невалиден", appErr.Message)
	assert.Equal(t, cause, appErr.Cause)
}

func TestCodeOf(t *testing.T) {
	appErr := NewAppError(ErrPresetWrite, "не удалось записать пресет", nil)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("plain"), ""},
		{"app error", appErr, ErrPresetWrite},
		{"wrapped app error", fmt.Errorf("generate: %w", appErr), ErrPresetWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestAppError_JSON_Serialization(t *testing.T) {
	appErr := NewAppError(ErrConfigLoad, "не удалось загрузить конфигурацию", errors.New("secret path"))

	data, err := json.Marshal(appErr)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, ErrConfigLoad, parsed["code"])
	assert.Equal(t, "не удалось загрузить конфигурацию", parsed["message"])

	_, hasCause := parsed["cause"]
	assert.False(t, hasCause, "Cause не должен сериализоваться в JSON")
}
