package telemetry

import (
	"net/http"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

const (
	report_resty_request  = "resty.request"
	report_resty_response = "resty.response"
	report_resty_error    = "resty.error"
)

// InstrumentResty reports every request the client makes. Error statuses
// other than 404 are reported as warnings. Transport failures are only
// traced here, the caller receiving the error reports it.
func InstrumentResty(client *resty.Client, tel API) {
	var counter atomic.Uint64

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		id := counter.Add(1)
		req.SetContext(withRequestId(req.Context(), id))
		tel.ReportDebug(report_resty_request, id, req.Method, req.URL)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		id := requestId(res.Request.Context())
		tel.ReportDebug(report_resty_response, id, res.Status(), res.Time().String())
		if res.IsError() && res.StatusCode() != http.StatusNotFound {
			tel.ReportWarning(report_resty_response, res.Request.Method, res.Request.URL, res.Status())
		}
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		tel.ReportDebug(report_resty_error, requestId(req.Context()), req.Method, req.URL, err)
	})
}
