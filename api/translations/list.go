package translations

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/api/locales"
	"github.com/kbukum/traduora/scope"
)

// Translations lists a project's translations for one locale.
//
// GET /api/v1/projects/{projectId}/translations/{localeCode}
type Translations struct {
	// Project is the unique id of the queried project.
	Project api.ProjectID
	// Locale is the locale to list translations for.
	Locale locales.Code
}

// NewTranslations creates a translations listing request.
func NewTranslations(project api.ProjectID, locale locales.Code) Translations {
	return Translations{Project: project, Locale: locale}
}

// Method implements api.Endpoint.
func (Translations) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (e Translations) Path() string {
	return "projects/" + string(e.Project) + "/translations/" + string(e.Locale)
}

// AccessControl implements api.Endpoint.
func (Translations) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint.
func (Translations) DecodeModel(data json.RawMessage) ([]Translation, error) {
	return api.DecodeEnveloped[[]Translation](data)
}
