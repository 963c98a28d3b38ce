package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup(t *testing.T) {
	ctx := context.Background()
	tel, err := Setup(ctx, "otodom-cli-test", Config{
		Otlp: OtlpConfig{
			Traces:  OtlpConnConfig{HttpEndpoint: "http://127.0.0.1:4318/v1/traces"},
			Metrics: OtlpConnConfig{HttpEndpoint: "http://127.0.0.1:4318/v1/metrics"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider)
	require.NotNil(t, tel.MeterProvider)
	require.Equal(t, tel.TracerProvider, otel.GetTracerProvider())

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	// nothing listens on the endpoint, only the teardown path is exercised
	_ = tel.Shutdown(ctx)
}

func TestSetupSkipsUnconfiguredSignals(t *testing.T) {
	tel, err := Setup(context.Background(), "otodom-cli-test", Config{
		Otlp: OtlpConfig{
			Traces: OtlpConnConfig{HttpEndpoint: "http://127.0.0.1:4318/v1/traces"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, tel.TracerProvider)
	require.Nil(t, tel.MeterProvider)

	tel, err = Setup(context.Background(), "otodom-cli-test", Config{})
	require.NoError(t, err)
	require.Equal(t, Telemetry{}, tel)
}

func TestMetricInterval(t *testing.T) {
	require.Equal(t, 5*time.Second, Config{}.metricInterval())
	require.Equal(t, 30*time.Second, Config{MetricIntervalSeconds: 30}.metricInterval())
}

func TestShutdownEmpty(t *testing.T) {
	require.NoError(t, Telemetry{}.Shutdown(context.Background()))
}
