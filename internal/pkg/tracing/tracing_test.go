package tracing

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/Kargones/nx-preset/internal/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestGenerateTraceID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := GenerateTraceID()
		require.Len(t, id, 32)
		_, err := hex.DecodeString(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "trace ID должен быть уникальным")
		seen[id] = true
	}
}

func TestFallbackTraceID(t *testing.T) {
	a, b := fallbackTraceID(), fallbackTraceID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestTraceIDContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))
	//nolint:staticcheck // проверка nil context
	assert.Empty(t, TraceIDFromContext(nil))
}

func TestContextWithOTelTraceID(t *testing.T) {
	id := GenerateTraceID()
	ctx := ContextWithOTelTraceID(context.Background(), id)

	sc := trace.SpanContextFromContext(ctx)
	assert.True(t, sc.IsRemote())
	assert.Equal(t, id, sc.TraceID().String())

	// Невалидный ID не меняет context
	plain := context.Background()
	assert.Equal(t, plain, ContextWithOTelTraceID(plain, "zz"))
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Enabled:      true,
		Endpoint:     "http://jaeger:4318",
		ServiceName:  "nx-preset",
		Timeout:      time.Second,
		SamplingRate: 0.5,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid", func(*Config) {}, nil},
		{"disabled ignores fields", func(c *Config) { *c = Config{} }, nil},
		{"no endpoint", func(c *Config) { c.Endpoint = "" }, ErrTracingEndpointRequired},
		{"endpoint without host", func(c *Config) { c.Endpoint = "jaeger" }, ErrTracingEndpointInvalidFormat},
		{"no service", func(c *Config) { c.ServiceName = "" }, ErrTracingServiceNameRequired},
		{"no timeout", func(c *Config) { c.Timeout = 0 }, ErrTracingTimeoutInvalid},
		{"rate above one", func(c *Config) { c.SamplingRate = 1.5 }, ErrTracingSamplingRateInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	shutdown, err := NewTracerProvider(DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProvider_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	_, err := NewTracerProvider(cfg, logging.NewNopLogger())
	assert.ErrorIs(t, err, ErrTracingEndpointRequired)
}

func TestTracer_NoopWithoutProvider(t *testing.T) {
	_, span := Tracer().Start(context.Background(), "test")
	defer span.End()
	assert.NotNil(t, span)
}
