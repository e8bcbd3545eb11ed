package di

import (
	"context"
	"log/slog"

	"github.com/Kargones/nx-preset/internal/app"
	"github.com/Kargones/nx-preset/internal/config"
	"github.com/Kargones/nx-preset/internal/constants"
	"github.com/Kargones/nx-preset/internal/pkg/logging"
	"github.com/Kargones/nx-preset/internal/pkg/metrics"
	"github.com/Kargones/nx-preset/internal/pkg/output"
	"github.com/Kargones/nx-preset/internal/pkg/tracing"
	"github.com/Kargones/nx-preset/internal/preset"
)

// ProvideLogger создаёт Logger на основе Config.Logging.
// Пустые поля и nil Config дают значения logging.DefaultConfig().
func ProvideLogger(cfg *config.Config) logging.Logger {
	logCfg := logging.DefaultConfig()
	if cfg == nil {
		return logging.NewLogger(logCfg)
	}

	lc := cfg.Logging
	if lc.Level != "" {
		logCfg.Level = lc.Level
	}
	if lc.Format != "" {
		logCfg.Format = lc.Format
	}
	if lc.Output != "" {
		logCfg.Output = lc.Output
	}
	if lc.FilePath != "" {
		logCfg.FilePath = lc.FilePath
	}
	// Размер, число и возраст архивов 0 для lumberjack не имеют смысла.
	if lc.MaxSize > 0 {
		logCfg.MaxSize = lc.MaxSize
	}
	if lc.MaxBackups > 0 {
		logCfg.MaxBackups = lc.MaxBackups
	}
	if lc.MaxAge > 0 {
		logCfg.MaxAge = lc.MaxAge
	}
	logCfg.Compress = lc.Compress

	return logging.NewLogger(logCfg)
}

// ProvideOutputWriter создаёт Writer по Config.OutputFormat: "json" или text.
func ProvideOutputWriter(cfg *config.Config) output.Writer {
	if cfg == nil {
		return output.NewWriter(output.FormatText)
	}
	return output.NewWriter(cfg.OutputFormat)
}

// ProvideTraceID генерирует 32-символьный hex trace_id.
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideMetricsCollector создаёт Collector на основе Config.Metrics.
// При выключенных метриках и при ошибке создания возвращается NopCollector.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil {
		return metrics.NewNopCollector()
	}

	metricsCfg := metrics.Config{
		Enabled:        cfg.Metrics.Enabled,
		PushgatewayURL: cfg.Metrics.PushgatewayURL,
		JobName:        cfg.Metrics.JobName,
		Timeout:        cfg.Metrics.Timeout,
		InstanceLabel:  cfg.Metrics.InstanceLabel,
	}

	collector, err := metrics.NewCollector(metricsCfg, logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider инициализирует OTel TracerProvider и возвращает его shutdown.
// При выключенном трейсинге и при ошибке создания возвращается nop shutdown.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) func(context.Context) error {
	if cfg == nil {
		return tracing.NewNopTracerProvider()
	}

	tracingCfg := tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Endpoint:     cfg.Tracing.Endpoint,
		ServiceName:  cfg.Tracing.ServiceName,
		Version:      constants.Version,
		Environment:  cfg.Tracing.Environment,
		Insecure:     cfg.Tracing.Insecure,
		Timeout:      cfg.Tracing.Timeout,
		SamplingRate: cfg.Tracing.SamplingRate,
	}

	shutdown, err := tracing.NewTracerProvider(tracingCfg, logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return tracing.NewNopTracerProvider()
	}
	return shutdown
}

// ProvideBuilder создаёт Builder с миниатюрой constants.ThumbnailResource.
func ProvideBuilder() *preset.Builder {
	return preset.NewBuilder(constants.ThumbnailResource)
}

// ProvideGenerator связывает Builder, Logger и Collector в Generator.
func ProvideGenerator(builder *preset.Builder, logger logging.Logger, collector metrics.Collector) *app.Generator {
	return app.NewGenerator(builder, logger, collector)
}
