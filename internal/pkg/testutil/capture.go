// Package testutil содержит общие утилиты для тестирования.
package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout выполняет fn и возвращает всё, что было записано в os.Stdout.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stdout, fn)
}

// CaptureStderr выполняет fn и возвращает всё, что было записано в os.Stderr.
// Логгер должен создаваться внутри fn: NewLogger запоминает os.Stderr при создании.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return capture(t, &os.Stderr, fn)
}

func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err, "не удалось создать pipe")

	saved := *target
	*target = w
	defer func() { *target = saved }()

	// Читаем параллельно, иначе большой вывод заблокирует запись в pipe.
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r) //nolint:errcheck // pipe закрывается ниже
		done <- buf.Bytes()
	}()

	fn()

	require.NoError(t, w.Close(), "не удалось закрыть pipe")
	return string(<-done)
}
