package metrics

import (
	"net/url"
	"time"

	"github.com/Kargones/nx-preset/internal/constants"
)

// Config содержит настройки отправки метрик.
type Config struct {
	Enabled        bool
	PushgatewayURL string
	JobName        string
	Timeout        time.Duration
	// InstanceLabel переопределяет instance label; пусто - hostname.
	InstanceLabel string
}

// Validate проверяет конфигурацию. Выключенные метрики всегда валидны.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.PushgatewayURL == "" {
		return ErrPushgatewayURLRequired
	}
	u, err := url.Parse(c.PushgatewayURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrPushgatewayURLInvalid
	}
	if c.JobName == "" {
		return ErrJobNameRequired
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// DefaultConfig возвращает конфигурацию по умолчанию (метрики выключены).
func DefaultConfig() Config {
	return Config{
		JobName: constants.AppName,
		Timeout: 10 * time.Second,
	}
}
