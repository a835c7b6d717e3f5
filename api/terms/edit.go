package terms

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// EditTerm updates a project's term.
//
// PATCH /api/v1/projects/{projectId}/terms/{termId}
type EditTerm struct {
	// Project is the unique id of the project the term belongs to.
	Project api.ProjectID `json:"-"`
	// Term is the unique id of the term to update.
	Term api.TermID `json:"-"`
	// Value is the new term string.
	Value string `json:"value"`
}

// NewEditTerm creates an edit term request.
func NewEditTerm(project api.ProjectID, term api.TermID, value string) EditTerm {
	return EditTerm{Project: project, Term: term, Value: value}
}

// Method implements api.Endpoint.
func (EditTerm) Method() string { return http.MethodPatch }

// Path implements api.Endpoint.
func (e EditTerm) Path() string {
	return "projects/" + string(e.Project) + "/terms/" + string(e.Term)
}

// AccessControl implements api.Endpoint.
func (EditTerm) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e EditTerm) RequestBody() (string, []byte, error) {
	return api.JSONBody(e)
}

// DecodeModel implements api.ModelEndpoint.
func (EditTerm) DecodeModel(data json.RawMessage) (Term, error) {
	return api.DecodeEnveloped[Term](data)
}
