package metrics

import (
	"github.com/Kargones/nx-preset/internal/pkg/logging"
)

// NewCollector создаёт Collector на основе конфигурации.
func NewCollector(config Config, logger logging.Logger) (Collector, error) {
	if !config.Enabled {
		return NewNopCollector(), nil
	}
	return NewPrometheusCollector(config, logger)
}
