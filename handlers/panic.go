package handlers

import (
	"net/http"
	"runtime/debug"

	"github.com/kscout/credential-intake-api/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// PanicHandler runs another http.Handler and recovers from any panics which occur
// Prevents server from crashing and recovers from panic.
// Also prints stack trace for panic.
type PanicHandler struct {
	BaseHandler

	// Handler to run
	Handler http.Handler

	// Router is used to label metrics by route, may be nil
	Router *mux.Router
}

// ServeHTTP implements http.Handler
func (h PanicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Track if a response was already started so a panic never causes a second one
	respStarted := false
	w = metrics.MetricsResponseWriter{
		ResponseWriter: w,
		OnWriteHeader: func(code int) {
			respStarted = true
		},
		OnWrite: func() {
			respStarted = true
		},
	}

	defer func() {
		if recovery := recover(); recovery != nil {
			// Metrics
			h.Metrics.APIHandlerPanicsTotal.With(prometheus.Labels{
				"path":   routeLabel(h.Router, r),
				"method": r.Method,
			}).Inc()

			// Handle panic
			h.Logger.Error(string(debug.Stack()))
			h.Logger.Errorf("panicked while handling request: %#v", recovery)

			if respStarted {
				return
			}

			h.RespondJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "internal server error",
			})
		}
	}()

	h.Handler.ServeHTTP(w, r)
}
