package config

import "time"

// MetricsConfig содержит настройки Prometheus метрик.
type MetricsConfig struct {
	// Enabled - включены ли метрики (по умолчанию false).
	Enabled bool `yaml:"enabled" env:"NXP_METRICS_ENABLED" env-default:"false"`

	// PushgatewayURL - URL Prometheus Pushgateway, например "http://pushgateway:9091".
	PushgatewayURL string `yaml:"pushgatewayUrl" env:"NXP_METRICS_PUSHGATEWAY_URL"`

	// JobName - имя job для группировки метрик.
	JobName string `yaml:"jobName" env:"NXP_METRICS_JOB_NAME" env-default:"nx-preset"`

	// Timeout - таймаут HTTP запросов к Pushgateway.
	Timeout time.Duration `yaml:"timeout" env:"NXP_METRICS_TIMEOUT" env-default:"10s"`

	// InstanceLabel - переопределение instance label. Пусто - hostname.
	InstanceLabel string `yaml:"instanceLabel" env:"NXP_METRICS_INSTANCE"`
}
