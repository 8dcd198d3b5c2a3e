package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// UnmatchedRouteLabel is the metrics path label for requests which match no route
const UnmatchedRouteLabel = "unmatched"

// routeLabel returns the path template of the route r matches, so metric label
// values are limited to the registered routes.
func routeLabel(router *mux.Router, r *http.Request) string {
	if router == nil {
		return UnmatchedRouteLabel
	}

	var match mux.RouteMatch
	if !router.Match(r, &match) || match.Route == nil {
		return UnmatchedRouteLabel
	}

	tpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return UnmatchedRouteLabel
	}

	return tpl
}
