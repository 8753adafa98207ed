package handler

import (
	"net/http"
	"sync"
	"sync/atomic"
)

// Range outcomes as counted in Metrics.ResponsesTotal.
const (
	OutcomeFull          = "full"
	OutcomePartial       = "partial"
	OutcomeUnsatisfiable = "unsatisfiable"
)

// Metrics provides numbers about the usage of the handler. Since these may
// be accessed from multiple goroutines, it is necessary to read and modify them
// atomically using the functions exposed in the sync/atomic package, such as
// atomic.LoadUint64. In addition the maps must not be modified to prevent data
// races.
type Metrics struct {
	// RequestsTotal counts the number of incoming requests per method
	RequestsTotal map[string]*uint64
	// ErrorsTotal counts the number of returned errors by their code
	ErrorsTotal *ErrorsTotalMap
	// BytesServed counts the number of body bytes written to clients
	BytesServed *uint64
	// ResponsesTotal counts the successfully produced responses per range
	// outcome, i.e. OutcomeFull, OutcomePartial or OutcomeUnsatisfiable.
	ResponsesTotal map[string]*uint64
}

// incRequestsTotal increases the counter for this request method atomically by
// one. The method must be one of GET, HEAD, POST, PUT, PATCH, DELETE, OPTIONS.
func (m Metrics) incRequestsTotal(method string) {
	if ptr, ok := m.RequestsTotal[method]; ok {
		atomic.AddUint64(ptr, 1)
	}
}

// incErrorsTotal increases the counter for this error atomically by one.
func (m Metrics) incErrorsTotal(err Error) {
	ptr := m.ErrorsTotal.retrievePointerFor(err)
	atomic.AddUint64(ptr, 1)
}

// incBytesServed increases the number of served bytes atomically by the
// specified number.
func (m Metrics) incBytesServed(delta uint64) {
	atomic.AddUint64(m.BytesServed, delta)
}

// incResponsesTotal classifies the response by its status code and increases
// the corresponding outcome counter atomically by one.
func (m Metrics) incResponsesTotal(statusCode int) {
	outcome := OutcomeFull
	switch statusCode {
	case http.StatusPartialContent:
		outcome = OutcomePartial
	case http.StatusRequestedRangeNotSatisfiable:
		outcome = OutcomeUnsatisfiable
	}

	atomic.AddUint64(m.ResponsesTotal[outcome], 1)
}

func newMetrics() Metrics {
	return Metrics{
		RequestsTotal: map[string]*uint64{
			"GET":     new(uint64),
			"HEAD":    new(uint64),
			"POST":    new(uint64),
			"PUT":     new(uint64),
			"PATCH":   new(uint64),
			"DELETE":  new(uint64),
			"OPTIONS": new(uint64),
		},
		ErrorsTotal: newErrorsTotalMap(),
		BytesServed: new(uint64),
		ResponsesTotal: map[string]*uint64{
			OutcomeFull:          new(uint64),
			OutcomePartial:       new(uint64),
			OutcomeUnsatisfiable: new(uint64),
		},
	}
}

// ErrorsTotalMap stores the counter for the different http errors.
type ErrorsTotalMap struct {
	lock    sync.RWMutex
	counter map[ErrorsTotalMapEntry]*uint64
}

type ErrorsTotalMapEntry struct {
	ErrorCode  string
	StatusCode int
}

func newErrorsTotalMap() *ErrorsTotalMap {
	m := make(map[ErrorsTotalMapEntry]*uint64, 20)
	return &ErrorsTotalMap{
		counter: m,
	}
}

// retrievePointerFor returns (after creating it if necessary) the pointer to
// the counter for the error.
func (e *ErrorsTotalMap) retrievePointerFor(err Error) *uint64 {
	serr := ErrorsTotalMapEntry{
		ErrorCode:  err.ErrorCode,
		StatusCode: err.HTTPResponse.StatusCode,
	}

	e.lock.RLock()
	ptr, ok := e.counter[serr]
	e.lock.RUnlock()
	if ok {
		return ptr
	}

	// For pointer creation, a write-lock is required
	e.lock.Lock()
	// We ensure that the ptr wasn't created in the meantime
	if ptr, ok = e.counter[serr]; !ok {
		ptr = new(uint64)
		e.counter[serr] = ptr
	}
	e.lock.Unlock()
	return ptr
}

// Load retrieves the map of the counter pointers atomically
func (e *ErrorsTotalMap) Load() map[ErrorsTotalMapEntry]*uint64 {
	m := make(map[ErrorsTotalMapEntry]*uint64, len(e.counter))
	e.lock.RLock()
	for err, ptr := range e.counter {
		m[err] = ptr
	}
	e.lock.RUnlock()

	return m
}
