package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registration results used as the result label of CredentialsTotal
const (
	// ResultStored indicates a credential was inserted
	ResultStored = "stored"

	// ResultInvalid indicates a request failed validation
	ResultInvalid = "invalid"

	// ResultUnavailable indicates the datastore was not ready
	ResultUnavailable = "unavailable"

	// ResultError indicates the datastore rejected the insert
	ResultError = "error"
)

// Metrics holds all the available internal metrics
type Metrics struct {
	// APIResponseDurationsMilliseconds is the number of milliseconds it takes to
	// complete API responses.
	//
	// Labels: path (request path), method (request HTTP method),
	// status_code (response HTTP status code)
	APIResponseDurationsMilliseconds *prometheus.HistogramVec

	// APIHandlerPanicsTotal is the number of times HTTP request handlers have paniced.
	//
	// Labels: path(request path), method( request HTTP method)
	APIHandlerPanicsTotal *prometheus.CounterVec

	// CredentialsTotal is the number of registration requests by outcome.
	//
	// Labels: result (one of the Result constants)
	CredentialsTotal *prometheus.CounterVec

	// DatastoreState is the current datastore connection state, as the numeric
	// value of store.State
	DatastoreState prometheus.Gauge
}

// NewMetrics creates a Metrics struct with all the Prometheus metrics recorders
// initialized and registered with reg
func NewMetrics(reg prometheus.Registerer) Metrics {
	metrics := Metrics{
		APIResponseDurationsMilliseconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "credential_intake_api",
			Subsystem: "api",
			Name:      "response_durations_milliseconds",
			Help:      "Time, in milliseconds, it took to respond to API requests",
		}, []string{"path", "method", "status_code"}),
		APIHandlerPanicsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "credential_intake_api",
			Subsystem: "api",
			Name:      "handler_panics_total",
			Help:      "Total number of HTTP handlers which have panicked while processing a request",
		}, []string{"path", "method"}),
		CredentialsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "credential_intake_api",
			Subsystem: "registration",
			Name:      "credentials_total",
			Help:      "Total number of registration requests by result",
		}, []string{"result"}),
		DatastoreState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "credential_intake_api",
			Subsystem: "datastore",
			Name:      "connection_state",
			Help:      "Datastore connection state: 0 uninitialized, 1 connecting, 2 ready, 3 failed",
		}),
	}

	reg.MustRegister(metrics.APIResponseDurationsMilliseconds)
	reg.MustRegister(metrics.APIHandlerPanicsTotal)
	reg.MustRegister(metrics.CredentialsTotal)
	reg.MustRegister(metrics.DatastoreState)

	return metrics
}

// StartTimer starts a Timer. Calling .Finish() on the returned timer will
// record the time elapsed in milliseconds.
func (m Metrics) StartTimer() Timer {
	return Timer{
		startTime: time.Now(),
	}
}
