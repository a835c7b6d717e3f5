package projects

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// Projects lists all projects the current user has any form of access to.
//
// GET /api/v1/projects
type Projects struct{}

// Method implements api.Endpoint.
func (Projects) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (Projects) Path() string { return "projects" }

// AccessControl implements api.Endpoint.
func (Projects) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint.
func (Projects) DecodeModel(data json.RawMessage) ([]Project, error) {
	return api.DecodeEnveloped[[]Project](data)
}
