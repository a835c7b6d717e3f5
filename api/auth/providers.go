package auth

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// Providers lists the available external authentication providers.
//
// GET /api/v1/auth/providers
type Providers struct{}

// Method implements api.Endpoint.
func (Providers) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (Providers) Path() string { return "auth/providers" }

// AccessControl implements api.Endpoint.
func (Providers) AccessControl() scope.Level { return scope.Unauthenticated }

// DecodeModel implements api.ModelEndpoint.
func (Providers) DecodeModel(data json.RawMessage) ([]AuthProvider, error) {
	return api.DecodeEnveloped[[]AuthProvider](data)
}

// AuthProvider describes one external authentication provider.
type AuthProvider struct {
	Slug        string `json:"slug"`
	ClientID    string `json:"clientId"`
	URL         string `json:"url"`
	RedirectURL string `json:"redirectUrl"`
}
