package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsAPI forwards every report to an inner API and records broken,
// warning and count reports as otel metrics. Debug reports are only
// forwarded.
type MetricsAPI struct {
	inner   API
	reports metric.Int64Counter
	counts  metric.Int64Histogram
}

func NewMetricsAPI(meter metric.Meter, inner API) (MetricsAPI, error) {
	reports, err := meter.Int64Counter(
		"otodom.reports",
		metric.WithDescription("Broken and warning reports by component."),
	)
	if err != nil {
		return MetricsAPI{}, err
	}
	counts, err := meter.Int64Histogram(
		"otodom.counts",
		metric.WithDescription("Values reported with ReportCount, ex. result pages per walk."),
	)
	if err != nil {
		return MetricsAPI{}, err
	}
	return MetricsAPI{inner: inner, reports: reports, counts: counts}, nil
}

func (m MetricsAPI) record(kind, id string) {
	m.reports.Add(
		context.Background(),
		1,
		metric.WithAttributes(attribute.String("kind", kind), attribute.String("id", id)),
	)
}

func (m MetricsAPI) ReportBroken(id string, params ...any) {
	m.record(KindBroken, id)
	m.inner.ReportBroken(id, params...)
}

func (m MetricsAPI) ReportWarning(id string, params ...any) {
	m.record(KindWarning, id)
	m.inner.ReportWarning(id, params...)
}

func (m MetricsAPI) ReportDebug(msg string, params ...any) {
	m.inner.ReportDebug(msg, params...)
}

func (m MetricsAPI) ReportCount(id string, count int64) {
	m.counts.Record(context.Background(), count, metric.WithAttributes(attribute.String("id", id)))
	m.inner.ReportCount(id, count)
}
