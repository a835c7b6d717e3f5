package projects

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// EditProject updates a project's name and description.
//
// PATCH /api/v1/projects/{projectId}
type EditProject struct {
	// ID is the unique id of the project to update. Not part of the body.
	ID api.ProjectID `json:"-"`
	// Name is the new display name.
	Name string `json:"name"`
	// Description is the new description.
	Description string `json:"description"`
}

// NewEditProject creates an edit project request.
func NewEditProject(id api.ProjectID, name, description string) EditProject {
	return EditProject{ID: id, Name: name, Description: description}
}

// Method implements api.Endpoint.
func (EditProject) Method() string { return http.MethodPatch }

// Path implements api.Endpoint.
func (e EditProject) Path() string { return "projects/" + string(e.ID) }

// AccessControl implements api.Endpoint.
func (EditProject) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e EditProject) RequestBody() (string, []byte, error) {
	return api.JSONBody(e)
}

// DecodeModel implements api.ModelEndpoint.
func (EditProject) DecodeModel(data json.RawMessage) (Project, error) {
	return api.DecodeEnveloped[Project](data)
}
