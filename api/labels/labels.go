// Package labels contains the endpoints under
// /api/v1/projects/{projectId}/labels.
package labels

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// LabelID uniquely identifies a label within a project.
type LabelID string

// Label is a tag that can be attached to terms and translations.
type Label struct {
	// ID is the unique id of the label.
	ID LabelID `json:"id"`
	// Value is the label display name.
	Value string `json:"value"`
	// Color is the label color, usually in hex form like "#D81159".
	Color string `json:"color"`
}

// Labels lists a project's labels.
//
// GET /api/v1/projects/{projectId}/labels
type Labels struct {
	// Project is the unique id of the queried project.
	Project api.ProjectID
}

// Method implements api.Endpoint.
func (Labels) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (e Labels) Path() string { return "projects/" + string(e.Project) + "/labels" }

// AccessControl implements api.Endpoint.
func (Labels) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint.
func (Labels) DecodeModel(data json.RawMessage) ([]Label, error) {
	return api.DecodeEnveloped[[]Label](data)
}

// CreateLabel adds a label to a project.
//
// POST /api/v1/projects/{projectId}/labels
type CreateLabel struct {
	// Project is the project the label is created in. Not part of the body.
	Project api.ProjectID `json:"-"`
	// Value is the label display name.
	Value string `json:"value"`
	// Color is the label color.
	Color string `json:"color"`
}

// NewCreateLabel creates a label creation request.
func NewCreateLabel(project api.ProjectID, value, color string) CreateLabel {
	return CreateLabel{Project: project, Value: value, Color: color}
}

// Method implements api.Endpoint.
func (CreateLabel) Method() string { return http.MethodPost }

// Path implements api.Endpoint.
func (e CreateLabel) Path() string { return "projects/" + string(e.Project) + "/labels" }

// AccessControl implements api.Endpoint.
func (CreateLabel) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e CreateLabel) RequestBody() (string, []byte, error) {
	return api.JSONBody(e)
}

// DecodeModel implements api.ModelEndpoint.
func (CreateLabel) DecodeModel(data json.RawMessage) (Label, error) {
	return api.DecodeEnveloped[Label](data)
}

// EditLabel updates a label's value and color.
//
// PATCH /api/v1/projects/{projectId}/labels/{labelId}
type EditLabel struct {
	// Project is the unique id of the project the label belongs to.
	Project api.ProjectID `json:"-"`
	// Label is the unique id of the label to update.
	Label LabelID `json:"-"`
	// Value is the new label display name.
	Value string `json:"value"`
	// Color is the new label color.
	Color string `json:"color"`
}

// NewEditLabel creates an edit label request.
func NewEditLabel(project api.ProjectID, label LabelID, value, color string) EditLabel {
	return EditLabel{Project: project, Label: label, Value: value, Color: color}
}

// Method implements api.Endpoint.
func (EditLabel) Method() string { return http.MethodPatch }

// Path implements api.Endpoint.
func (e EditLabel) Path() string {
	return "projects/" + string(e.Project) + "/labels/" + string(e.Label)
}

// AccessControl implements api.Endpoint.
func (EditLabel) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e EditLabel) RequestBody() (string, []byte, error) {
	return api.JSONBody(e)
}

// DecodeModel implements api.ModelEndpoint.
func (EditLabel) DecodeModel(data json.RawMessage) (Label, error) {
	return api.DecodeEnveloped[Label](data)
}

// DeleteLabel removes a label from a project.
//
// DELETE /api/v1/projects/{projectId}/labels/{labelId}
type DeleteLabel struct {
	// Project is the unique id of the project the label belongs to.
	Project api.ProjectID
	// Label is the unique id of the label to delete.
	Label LabelID
}

// Method implements api.Endpoint.
func (DeleteLabel) Method() string { return http.MethodDelete }

// Path implements api.Endpoint.
func (e DeleteLabel) Path() string {
	return "projects/" + string(e.Project) + "/labels/" + string(e.Label)
}

// AccessControl implements api.Endpoint.
func (DeleteLabel) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint. The endpoint returns no payload.
func (DeleteLabel) DecodeModel(data json.RawMessage) (struct{}, error) {
	return api.DecodeBare[struct{}](data)
}
