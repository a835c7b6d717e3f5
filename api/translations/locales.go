package translations

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/api/locales"
	"github.com/kbukum/traduora/scope"
)

// ProjectLocales lists the locales added to a project.
//
// GET /api/v1/projects/{projectId}/translations
type ProjectLocales struct {
	// Project is the unique id of the queried project.
	Project api.ProjectID
}

// Method implements api.Endpoint.
func (ProjectLocales) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (e ProjectLocales) Path() string {
	return "projects/" + string(e.Project) + "/translations"
}

// AccessControl implements api.Endpoint.
func (ProjectLocales) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint.
func (ProjectLocales) DecodeModel(data json.RawMessage) ([]ProjectLocale, error) {
	return api.DecodeEnveloped[[]ProjectLocale](data)
}

// CreateLocale adds a locale to a project.
//
// POST /api/v1/projects/{projectId}/translations
type CreateLocale struct {
	// Project is the project the locale is added to. Not part of the body.
	Project api.ProjectID `json:"-"`
	// Code is the code of the locale to add.
	Code locales.Code `json:"code"`
}

// NewCreateLocale creates a locale creation request.
func NewCreateLocale(project api.ProjectID, code locales.Code) CreateLocale {
	return CreateLocale{Project: project, Code: code}
}

// Method implements api.Endpoint.
func (CreateLocale) Method() string { return http.MethodPost }

// Path implements api.Endpoint.
func (e CreateLocale) Path() string {
	return "projects/" + string(e.Project) + "/translations"
}

// AccessControl implements api.Endpoint.
func (CreateLocale) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e CreateLocale) RequestBody() (string, []byte, error) {
	return api.JSONBody(e)
}

// DecodeModel implements api.ModelEndpoint.
func (CreateLocale) DecodeModel(data json.RawMessage) (ProjectLocale, error) {
	return api.DecodeEnveloped[ProjectLocale](data)
}

// DeleteLocale removes a locale, and all translations into it, from a
// project.
//
// DELETE /api/v1/projects/{projectId}/translations/{localeCode}
type DeleteLocale struct {
	// Project is the unique id of the project the locale belongs to.
	Project api.ProjectID
	// Locale is the locale to remove.
	Locale locales.Code
}

// NewDeleteLocale creates a delete locale request.
func NewDeleteLocale(project api.ProjectID, locale locales.Code) DeleteLocale {
	return DeleteLocale{Project: project, Locale: locale}
}

// Method implements api.Endpoint.
func (DeleteLocale) Method() string { return http.MethodDelete }

// Path implements api.Endpoint.
func (e DeleteLocale) Path() string {
	return "projects/" + string(e.Project) + "/translations/" + string(e.Locale)
}

// AccessControl implements api.Endpoint.
func (DeleteLocale) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint. The endpoint returns no payload.
func (DeleteLocale) DecodeModel(data json.RawMessage) (struct{}, error) {
	return api.DecodeBare[struct{}](data)
}
