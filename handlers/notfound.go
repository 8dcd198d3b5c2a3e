package handlers

import (
	"net/http"
)

// NotFoundHandler responds to requests which match no route
type NotFoundHandler struct {
	BaseHandler
}

// ServeHTTP implements http.Handler
func (h NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.RespondError(w, NotFoundError())
}

// MethodNotAllowedHandler responds to requests which match a route's path but
// not its methods
type MethodNotAllowedHandler struct {
	BaseHandler
}

// ServeHTTP implements http.Handler
func (h MethodNotAllowedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.RespondError(w, MethodNotAllowedError(r.Method))
}
