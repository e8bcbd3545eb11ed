package di

import (
	"context"

	"github.com/Kargones/nx-preset/internal/app"
	"github.com/Kargones/nx-preset/internal/config"
	"github.com/Kargones/nx-preset/internal/pkg/logging"
	"github.com/Kargones/nx-preset/internal/pkg/metrics"
	"github.com/Kargones/nx-preset/internal/pkg/output"
)

// App содержит инициализированные зависимости одного запуска.
// Создаётся через Wire DI в InitializeApp().
//
// При добавлении новых зависимостей:
// 1. Добавить поле в App struct
// 2. Создать провайдер в providers.go
// 3. Добавить провайдер в ProviderSet в wire.go
// 4. Перегенерировать wire_gen.go: go generate ./internal/di/...
type App struct {
	// Config передаётся извне через InitializeApp().
	Config *config.Config

	// Logger создаётся через ProvideLogger на основе Config.Logging.
	Logger logging.Logger

	// OutputWriter форматирует результат для stdout (NXP_OUTPUT_FORMAT).
	OutputWriter output.Writer

	// TraceID коррелирует логи, метрики и span-ы одного запуска.
	TraceID string

	// MetricsCollector - NopCollector, если метрики выключены.
	MetricsCollector metrics.Collector

	// TracerShutdown отправляет буферизированные span-ы.
	// Если трейсинг выключен - nop function.
	TracerShutdown func(context.Context) error

	// Generator собирает и записывает пресеты.
	Generator *app.Generator
}
