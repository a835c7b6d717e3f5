package terms

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// DeleteTerm removes a term from a project.
//
// DELETE /api/v1/projects/{projectId}/terms/{termId}
type DeleteTerm struct {
	// Project is the unique id of the project the term belongs to.
	Project api.ProjectID
	// Term is the unique id of the term to delete.
	Term api.TermID
}

// NewDeleteTerm creates a delete term request.
func NewDeleteTerm(project api.ProjectID, term api.TermID) DeleteTerm {
	return DeleteTerm{Project: project, Term: term}
}

// Method implements api.Endpoint.
func (DeleteTerm) Method() string { return http.MethodDelete }

// Path implements api.Endpoint.
func (e DeleteTerm) Path() string {
	return "projects/" + string(e.Project) + "/terms/" + string(e.Term)
}

// AccessControl implements api.Endpoint.
func (DeleteTerm) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint. The endpoint returns no payload.
func (DeleteTerm) DecodeModel(data json.RawMessage) (struct{}, error) {
	return api.DecodeBare[struct{}](data)
}
