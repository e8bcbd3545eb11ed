// Package logging предоставляет интерфейс и реализации для структурированного логирования.
package logging

// Logger определяет интерфейс для структурированного логирования.
//
//	logger.Info("Пресет записан", "server", server, "path", path)
//
// Logger пишет только в stderr или файл, никогда в stdout.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With возвращает новый Logger с добавленными атрибутами.
	//
	//	logger.With("trace_id", traceID).Info("Генерация началась")
	With(args ...any) Logger
}
