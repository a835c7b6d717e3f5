package terms

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// Terms lists a project's terms.
//
// GET /api/v1/projects/{projectId}/terms
type Terms struct {
	// Project is the unique id of the project to list terms for.
	Project api.ProjectID
}

// Method implements api.Endpoint.
func (Terms) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (e Terms) Path() string { return "projects/" + string(e.Project) + "/terms" }

// AccessControl implements api.Endpoint.
func (Terms) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint.
func (Terms) DecodeModel(data json.RawMessage) ([]Term, error) {
	return api.DecodeEnveloped[[]Term](data)
}
