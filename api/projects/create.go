package projects

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// CreateProject creates a new project and assigns the requesting user as its
// admin.
//
// POST /api/v1/projects
type CreateProject struct {
	// Name is the display name of the project.
	Name string `json:"name"`
	// Description says what the project is about.
	Description string `json:"description"`
}

// NewCreateProject creates a project creation request.
func NewCreateProject(name, description string) CreateProject {
	return CreateProject{Name: name, Description: description}
}

// Method implements api.Endpoint.
func (CreateProject) Method() string { return http.MethodPost }

// Path implements api.Endpoint.
func (CreateProject) Path() string { return "projects" }

// AccessControl implements api.Endpoint.
func (CreateProject) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e CreateProject) RequestBody() (string, []byte, error) {
	return api.JSONBody(e)
}

// DecodeModel implements api.ModelEndpoint.
func (CreateProject) DecodeModel(data json.RawMessage) (Project, error) {
	return api.DecodeEnveloped[Project](data)
}
