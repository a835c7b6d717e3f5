package projects

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// DeleteProject deletes a project.
//
// DELETE /api/v1/projects/{projectId}
type DeleteProject struct {
	// ID is the unique id of the project to delete.
	ID api.ProjectID
}

// Method implements api.Endpoint.
func (DeleteProject) Method() string { return http.MethodDelete }

// Path implements api.Endpoint.
func (e DeleteProject) Path() string { return "projects/" + string(e.ID) }

// AccessControl implements api.Endpoint.
func (DeleteProject) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint. The endpoint returns no payload.
func (DeleteProject) DecodeModel(data json.RawMessage) (struct{}, error) {
	return api.DecodeBare[struct{}](data)
}
