// Package locales contains the endpoint under /api/v1/locales and the
// shared locale model.
package locales

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// Code is a standardized locale code, like "en_US".
type Code string

// Locale is one of the locales known to the server.
type Locale struct {
	// Code uniquely identifies the locale.
	Code Code `json:"code"`
	// Language is the display string for the language name.
	Language string `json:"language"`
	// Region is the display string for the region where it is spoken.
	Region string `json:"region"`
}

// Locales lists every locale known to the server.
//
// GET /api/v1/locales
type Locales struct{}

// Method implements api.Endpoint.
func (Locales) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (Locales) Path() string { return "locales" }

// AccessControl implements api.Endpoint.
func (Locales) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint.
func (Locales) DecodeModel(data json.RawMessage) ([]Locale, error) {
	return api.DecodeEnveloped[[]Locale](data)
}
