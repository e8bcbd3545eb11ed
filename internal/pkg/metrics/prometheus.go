package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Kargones/nx-preset/internal/pkg/logging"
	"github.com/Kargones/nx-preset/internal/pkg/urlutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "nxpreset"

// PrometheusCollector реализует Collector с Prometheus метриками.
//
// Метрики:
//   - nxpreset_command_duration_seconds (histogram: command, server, status)
//   - nxpreset_command_total (counter: command, status)
//   - nxpreset_document_bytes (histogram: server)
type PrometheusCollector struct {
	config   Config
	logger   logging.Logger
	registry *prometheus.Registry
	instance string

	commandDuration *prometheus.HistogramVec
	commandTotal    *prometheus.CounterVec
	documentBytes   *prometheus.HistogramVec
}

// NewPrometheusCollector создаёт PrometheusCollector с собственным registry.
func NewPrometheusCollector(config Config, logger logging.Logger) (*PrometheusCollector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	instance := config.InstanceLabel
	if instance == "" {
		hostname, err := os.Hostname()
		if err != nil {
			logger.Warn("не удалось получить hostname для instance label, используется 'unknown'",
				"error", err.Error())
			hostname = "unknown"
		}
		instance = hostname
	}

	commandDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of preset generation in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"command", "server", "status"},
	)
	commandTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_total",
			Help:      "Total number of preset generations by status",
		},
		[]string{"command", "status"},
	)
	documentBytes := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_bytes",
			Help:      "Size of written preset documents in bytes",
			Buckets:   prometheus.ExponentialBuckets(512, 2, 10),
		},
		[]string{"server"},
	)

	registry := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{commandDuration, commandTotal, documentBytes} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("ошибка регистрации метрики: %w", err)
		}
	}

	return &PrometheusCollector{
		config:          config,
		logger:          logger,
		registry:        registry,
		instance:        instance,
		commandDuration: commandDuration,
		commandTotal:    commandTotal,
		documentBytes:   documentBytes,
	}, nil
}

// RecordCommandStart только логирует: метрики пишутся при завершении.
func (c *PrometheusCollector) RecordCommandStart(command, server string) {
	c.logger.Debug("metrics: command started", "command", command, "server", server)
}

// RecordCommandEnd обновляет histogram длительности и счётчик исходов.
func (c *PrometheusCollector) RecordCommandEnd(command, server string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	command = sanitizeLabel(command)
	server = sanitizeLabel(server)

	c.commandDuration.WithLabelValues(command, server, status).Observe(duration.Seconds())
	c.commandTotal.WithLabelValues(command, status).Inc()

	c.logger.Debug("metrics: command ended",
		"command", command,
		"server", server,
		"duration_ms", duration.Milliseconds(),
		"success", success,
	)
}

// RecordPresetWritten записывает размер документа.
func (c *PrometheusCollector) RecordPresetWritten(server string, size int) {
	c.documentBytes.WithLabelValues(sanitizeLabel(server)).Observe(float64(size))
}

// Push отправляет метрики в Pushgateway. Ошибки только логируются.
func (c *PrometheusCollector) Push(ctx context.Context) error {
	select {
	case <-ctx.Done():
		c.logger.Debug("metrics push отменён")
		return nil
	default:
	}

	pusher := push.New(c.config.PushgatewayURL, c.config.JobName).
		Gatherer(c.registry).
		Grouping("instance", c.instance)

	pushCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	if err := pusher.PushContext(pushCtx); err != nil {
		c.logger.Error("ошибка отправки метрик в Pushgateway",
			"error", err.Error(),
			"url", urlutil.MaskURL(c.config.PushgatewayURL),
			"job", c.config.JobName,
		)
		return nil
	}

	c.logger.Info("метрики отправлены в Pushgateway",
		"url", urlutil.MaskURL(c.config.PushgatewayURL),
		"job", c.config.JobName,
		"instance", c.instance,
	)
	return nil
}

// Registry возвращает внутренний registry. Используется в тестах.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// maxLabelLength ограничивает длину label: адрес сервера приходит от пользователя.
const maxLabelLength = 128

// sanitizeLabel заменяет управляющие символы и обрезает значение по рунам.
func sanitizeLabel(value string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '_'
		}
		return r
	}, value)

	runes := []rune(clean)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength])
	}
	return clean
}
