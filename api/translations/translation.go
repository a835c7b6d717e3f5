// Package translations contains the endpoints under
// /api/v1/projects/{projectId}/translations: listing and editing
// translations and managing a project's locales.
package translations

import (
	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/api/locales"
)

// Translation is the translation of a term into one locale.
type Translation struct {
	// TermID is the unique id of the translated term.
	TermID api.TermID `json:"termId"`
	// Value is the translation string.
	Value string `json:"value"`
	// Labels lists the labels the translation is tagged with.
	Labels []string `json:"labels"`
	// Date holds creation and modification times.
	Date api.AccessDates `json:"date"`
}

// ProjectLocaleID uniquely identifies a locale added to a project.
type ProjectLocaleID string

// ProjectLocale is a locale that was added to a project.
type ProjectLocale struct {
	// ID is the unique id of the project locale.
	ID ProjectLocaleID `json:"id"`
	// Locale is the underlying locale.
	Locale locales.Locale `json:"locale"`
	// Date holds creation and modification times.
	Date api.AccessDates `json:"date"`
}
