package handlers

import (
	"net/http"

	"github.com/kscout/credential-intake-api/store"
)

// HealthHandler reports if the server is running and if the datastore is usable
type HealthHandler struct {
	BaseHandler
}

// ServeHTTP implements http.Handler
func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state := h.Store.State()

	status := http.StatusOK
	if state != store.StateReady {
		status = http.StatusServiceUnavailable
	}

	h.RespondJSON(w, status, map[string]interface{}{
		"ok":        state == store.StateReady,
		"datastore": state.String(),
	})
}
