package restyutil

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Output receives a formatted dump of every finished exchange.
type Output interface {
	Write(name string, contents string)
}

type exchangeKeyType int

var exchangeKey exchangeKeyType

type instrumenter struct {
	tracer  trace.Tracer
	output  Output
	counter atomic.Uint64
}

// InstrumentClient opens a span around every request the client makes and
// dumps finished exchanges to output. A nil tracer uses otel's global
// provider, a nil output disables dumps.
func InstrumentClient(client *resty.Client, tracer trace.Tracer, output Output) {
	if tracer == nil {
		tracer = otel.Tracer("otodom-scraper/lib/restyutil")
	}
	i := &instrumenter{tracer: tracer, output: output}
	client.OnBeforeRequest(i.before)
	client.OnAfterResponse(i.after)
	client.OnError(i.failed)
}

func (i *instrumenter) before(_ *resty.Client, req *resty.Request) error {
	ctx, _ := i.tracer.Start(
		req.Context(),
		fmt.Sprintf("http %s", req.Method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(req.Method),
			semconv.URLFull(req.URL),
		),
	)
	req.SetContext(context.WithValue(ctx, exchangeKey, i.counter.Add(1)))
	return nil
}

func (i *instrumenter) after(_ *resty.Client, res *resty.Response) error {
	ctx := res.Request.Context()
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(semconv.HTTPResponseStatusCode(res.StatusCode()))
	if res.IsError() {
		span.SetStatus(codes.Error, res.Status())
	}

	id, ok := ctx.Value(exchangeKey).(uint64)
	if i.output != nil && ok {
		i.output.Write(dumpName(id, res.Request.Method, res.Request.URL), formatExchange(res))
	}
	return nil
}

func (i *instrumenter) failed(req *resty.Request, err error) {
	span := trace.SpanFromContext(req.Context())
	defer span.End()

	span.RecordError(err)
	span.SetStatus(codes.Error, "request failed")
}
