package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/daya-2619/fitnesstracking/internal/telemetry/metrics"
)

// PanicRecovery answers a panicking handler with a 500 instead of dropping the
// connection. The log entry carries the route and the request id set by
// LogRequest, so the sentry hook groups reports per route.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// net/http aborts the response quietly on this one
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				log.WithFields(log.Fields{
					"route":      routeName(r),
					"method":     r.Method,
					"request_id": w.Header().Get(RequestIDHeader),
				}).Errorf("panic serving %s: %v\n%s", r.URL.Path, rec, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "error, request failed unexpectedly", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
