package handlers

import (
	"net/http"
)

// PreFlightOptionsHandler responds to OPTIONS requests. The CORS headers
// themselves are set by CORSHandler.
type PreFlightOptionsHandler struct {
	BaseHandler
}

// ServeHTTP implements http.Handler
func (h PreFlightOptionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
