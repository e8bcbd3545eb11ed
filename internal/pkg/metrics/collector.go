// Package metrics собирает метрики генерации пресетов и отправляет их
// в Prometheus Pushgateway. CLI живёт секунды, поэтому модель push, а не scrape.
//
// NewCollector выбирает реализацию по конфигурации: при выключенных
// метриках возвращается NopCollector.
package metrics

import (
	"context"
	"time"
)

// Collector определяет интерфейс для сбора метрик.
type Collector interface {
	// RecordCommandStart отмечает начало операции.
	RecordCommandStart(command, server string)

	// RecordCommandEnd записывает длительность и исход операции.
	RecordCommandEnd(command, server string, duration time.Duration, success bool)

	// RecordPresetWritten записывает размер записанного документа в байтах.
	RecordPresetWritten(server string, size int)

	// Push отправляет метрики в Pushgateway.
	// Всегда возвращает nil: ошибки логируются внутри, метрики не ломают генерацию.
	Push(ctx context.Context) error
}
