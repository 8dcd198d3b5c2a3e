package handlers

import (
	"net/http"

	"github.com/kscout/credential-intake-api/validation"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the API's http.Handler. Requests pass through
// CORSHandler, PanicHandler, MetricsHandler and ReqLoggerHandler before
// reaching the route handler. Metrics are exported from gatherer.
func NewRouter(baseHandler BaseHandler, gatherer prometheus.Gatherer) http.Handler {
	router := mux.NewRouter()

	router.Handle("/", StaticHandler{
		baseHandler.GetChild("static"),
	}).Methods("GET", "HEAD")

	credentialValidator := validation.NewCredentialValidator()
	baseHandler.Logger.Debugf("registration requests checked by %s: %s",
		credentialValidator.Name(), credentialValidator.Summary())

	router.Handle("/Project", RegisterHandler{
		BaseHandler: baseHandler.GetChild("register"),
		Validator:   credentialValidator,
	}).Methods("POST")

	router.Handle("/Project", PreFlightOptionsHandler{
		baseHandler.GetChild("preflight"),
	}).Methods("OPTIONS")

	router.Handle("/health", HealthHandler{
		baseHandler.GetChild("health"),
	}).Methods("GET")

	router.Handle("/metrics", promhttp.HandlerFor(gatherer,
		promhttp.HandlerOpts{})).Methods("GET")

	router.NotFoundHandler = NotFoundHandler{baseHandler}
	router.MethodNotAllowedHandler = MethodNotAllowedHandler{baseHandler}

	return CORSHandler{
		BaseHandler: baseHandler,
		Handler: PanicHandler{
			BaseHandler: baseHandler,
			Router:      router,
			Handler: MetricsHandler{
				BaseHandler: baseHandler,
				Router:      router,
				Handler: ReqLoggerHandler{
					BaseHandler: baseHandler,
					Handler:     router,
				},
			},
		},
	}
}
