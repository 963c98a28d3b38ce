package telemetry

import "context"

type requestIdKeyType int

var requestIdKey requestIdKeyType

func withRequestId(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, requestIdKey, id)
}

// requestId returns the id InstrumentResty assigned to a request, 0 when
// the request was not instrumented.
func requestId(ctx context.Context) uint64 {
	id, _ := ctx.Value(requestIdKey).(uint64)
	return id
}
