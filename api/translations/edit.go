package translations

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/api/locales"
	"github.com/kbukum/traduora/scope"
)

// EditTranslation sets the translation of a term for one locale.
//
// PATCH /api/v1/projects/{projectId}/translations/{localeCode}
type EditTranslation struct {
	// Project is the unique id of the project the term belongs to.
	Project api.ProjectID `json:"-"`
	// Locale is the locale the translation belongs to.
	Locale locales.Code `json:"-"`
	// Term is the unique id of the term to translate.
	Term api.TermID `json:"termId"`
	// Value is the new translation string.
	Value string `json:"value"`
}

// NewEditTranslation creates an edit translation request.
func NewEditTranslation(project api.ProjectID, locale locales.Code, term api.TermID, value string) EditTranslation {
	return EditTranslation{Project: project, Locale: locale, Term: term, Value: value}
}

// Method implements api.Endpoint.
func (EditTranslation) Method() string { return http.MethodPatch }

// Path implements api.Endpoint.
func (e EditTranslation) Path() string {
	return "projects/" + string(e.Project) + "/translations/" + string(e.Locale)
}

// AccessControl implements api.Endpoint.
func (EditTranslation) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e EditTranslation) RequestBody() (string, []byte, error) {
	return api.JSONBody(e)
}

// DecodeModel implements api.ModelEndpoint.
func (EditTranslation) DecodeModel(data json.RawMessage) (Translation, error) {
	return api.DecodeEnveloped[Translation](data)
}
