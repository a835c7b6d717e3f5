package projects

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// ShowProject gets a single project by id.
//
// GET /api/v1/projects/{projectId}
type ShowProject struct {
	// ID is the unique id of the project to fetch.
	ID api.ProjectID
}

// Method implements api.Endpoint.
func (ShowProject) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (e ShowProject) Path() string { return "projects/" + string(e.ID) }

// AccessControl implements api.Endpoint.
func (ShowProject) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint.
func (ShowProject) DecodeModel(data json.RawMessage) (Project, error) {
	return api.DecodeEnveloped[Project](data)
}
