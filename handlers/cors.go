package handlers

import (
	"net/http"
)

// CORSHandler enables cross origin resource sharing (CORS) for any origin.
// Headers are set before Handler runs so every response carries them.
type CORSHandler struct {
	BaseHandler

	// Handler to enabled CORS for
	Handler http.Handler
}

// ServeHTTP runs CorsHandler.Handler with CORS enabled
func (h CORSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "X-Requested-With")

	h.Handler.ServeHTTP(w, r)
}
