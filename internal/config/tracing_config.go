package config

import "time"

// TracingConfig содержит настройки OpenTelemetry трейсинга.
type TracingConfig struct {
	// Enabled включает отправку трейсов в OTLP бэкенд.
	Enabled bool `yaml:"enabled" env:"NXP_TRACING_ENABLED" env-default:"false"`

	// Endpoint - URL OTLP HTTP endpoint (например, http://jaeger:4318).
	Endpoint string `yaml:"endpoint" env:"NXP_TRACING_ENDPOINT"`

	// ServiceName - имя сервиса для resource attributes.
	ServiceName string `yaml:"serviceName" env:"NXP_TRACING_SERVICE_NAME" env-default:"nx-preset"`

	// Environment - окружение (production, staging, development).
	Environment string `yaml:"environment" env:"NXP_TRACING_ENVIRONMENT" env-default:"production"`

	// Insecure - HTTP вместо HTTPS для OTLP endpoint.
	Insecure bool `yaml:"insecure" env:"NXP_TRACING_INSECURE" env-default:"false"`

	// Timeout - таймаут экспорта трейсов.
	Timeout time.Duration `yaml:"timeout" env:"NXP_TRACING_TIMEOUT" env-default:"5s"`

	// SamplingRate - доля сэмплируемых трейсов (0.0 - ни один, 1.0 - все).
	SamplingRate float64 `yaml:"samplingRate" env:"NXP_TRACING_SAMPLING_RATE" env-default:"1.0"`
}
