package terms

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// CreateTerm adds a new term to a project.
//
// POST /api/v1/projects/{projectId}/terms
type CreateTerm struct {
	// Value is the string that should become a term.
	Value string
	// Project is the project the term is created in.
	Project api.ProjectID
}

// NewCreateTerm creates a term creation request.
func NewCreateTerm(value string, project api.ProjectID) CreateTerm {
	return CreateTerm{Value: value, Project: project}
}

// Method implements api.Endpoint.
func (CreateTerm) Method() string { return http.MethodPost }

// Path implements api.Endpoint.
func (e CreateTerm) Path() string { return "projects/" + string(e.Project) + "/terms" }

// AccessControl implements api.Endpoint.
func (CreateTerm) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e CreateTerm) RequestBody() (string, []byte, error) {
	return api.JSONBody(struct {
		Value string `json:"value"`
	}{e.Value})
}

// DecodeModel implements api.ModelEndpoint.
func (CreateTerm) DecodeModel(data json.RawMessage) (Term, error) {
	return api.DecodeEnveloped[Term](data)
}
