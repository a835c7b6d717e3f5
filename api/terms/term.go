// Package terms contains the endpoints under
// /api/v1/projects/{projectId}/terms.
package terms

import "github.com/kbukum/traduora/api"

// Term is a translatable string within a project.
type Term struct {
	// ID is the unique id of the term.
	ID api.TermID `json:"id"`
	// Value is the term string.
	Value string `json:"value"`
	// Labels lists the labels the term is tagged with.
	Labels []string `json:"labels"`
	// Date holds creation and modification times.
	Date api.AccessDates `json:"date"`
}
