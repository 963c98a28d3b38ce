package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader sdkmetric.Reader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestMetricsAPI(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	recorder := &Recorder{}

	api, err := NewMetricsAPI(provider.Meter("test"), recorder)
	require.NoError(t, err)

	api.ReportBroken("walker.walk", "boom")
	api.ReportBroken("walker.walk", "boom")
	api.ReportWarning("extractor.phone-numbers", "listing is gone")
	api.ReportDebug("fetch", "https://www.otodom.pl")
	api.ReportCount("walker.pages", 4)

	require.Len(t, recorder.Reports(""), 5)

	metrics := collect(t, reader)
	reports, ok := metrics["otodom.reports"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	total := int64(0)
	for _, point := range reports.DataPoints {
		total += point.Value
	}
	require.Equal(t, int64(3), total)
	require.Len(t, reports.DataPoints, 2)

	counts, ok := metrics["otodom.counts"].Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, counts.DataPoints, 1)
	require.Equal(t, uint64(1), counts.DataPoints[0].Count)
	require.Equal(t, int64(4), counts.DataPoints[0].Sum)
}
