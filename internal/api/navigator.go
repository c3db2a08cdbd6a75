package api

import (
	"github.com/rs/zerolog"

	"github.com/billed/expense-api/internal/core/ports"
)

// routeNavigator is the server-side Navigator: the actual page change happens
// in the client from the redirect route the API returns, so navigation here
// is recorded in the log stream.
type routeNavigator struct {
	log zerolog.Logger
}

// NewNavigator returns the ports.Navigator used by the submission pipeline.
func NewNavigator(log zerolog.Logger) ports.Navigator {
	return routeNavigator{log: log}
}

func (n routeNavigator) Navigate(routeKey string) {
	n.log.Info().Str("route", routeKey).Msg("navigation triggered")
}
