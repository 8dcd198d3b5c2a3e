package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kscout/credential-intake-api/config"
	"github.com/kscout/credential-intake-api/metrics"
	"github.com/kscout/credential-intake-api/store"

	"github.com/Noah-Huppert/golog"
)

// BaseHandler provides helper methods and commonly used variables for API endpoints to base
// their http.Handlers off
type BaseHandler struct {
	// Ctx is the application context
	Ctx context.Context

	// Logger logs information
	Logger golog.Logger

	// Cfg is the application configuration
	Cfg *config.Config

	// Store provides the datastore connection
	Store *store.Manager

	// Metrics holds internal metrics
	Metrics metrics.Metrics
}

// GetChild makes a child instance of the base handler with a prefix
func (h BaseHandler) GetChild(prefix string) BaseHandler {
	h.Logger = h.Logger.GetChild(prefix)

	return h
}

// RespondJSON sends an object as a JSON encoded response
func (h BaseHandler) RespondJSON(w http.ResponseWriter, status int, resp interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	if err := encoder.Encode(resp); err != nil {
		panic(fmt.Errorf("failed to encode response as JSON: %s", err.Error()))
	}
}

// RespondError sends an APIError as a JSON encoded response with the error's status
func (h BaseHandler) RespondError(w http.ResponseWriter, apiErr APIError) {
	h.RespondJSON(w, apiErr.Status, apiErr)
}
