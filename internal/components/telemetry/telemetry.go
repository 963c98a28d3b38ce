package telemetry

import (
	"fmt"
)

// API is what scraper components report through. Tests swap it for a
// Recorder to assert on what was reported.
type API interface {
	// ReportBroken reports a component that failed and needs attention.
	//
	// The id names the component and method, not the failing detail, ex.
	// a failed result page fetch in Walker.Walk reports "walker.walk" and
	// passes the wrapped error as a param. Ids are lowercase, dashes
	// separate words of a method name (ex. "extractor.phone-numbers").
	ReportBroken(id string, params ...any)

	// ReportWarning reports something unexpected that did not stop the
	// component, ex. a search otodom rejected. Ids follow ReportBroken.
	ReportWarning(id string, params ...any)

	// ReportDebug reports progress only useful while debugging.
	ReportDebug(msg string, params ...any)

	// ReportCount reports a value observed at a point in time, ex. the
	// number of result pages a walk visited. Counts are not summed.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id and message with a namespace, so reports of
// different packages can share one sink.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scope(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scope(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scope(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scope(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scope(id), count)
}
