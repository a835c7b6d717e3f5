// Package projects contains the endpoints under /api/v1/projects.
package projects

import "github.com/kbukum/traduora/api"

// Project is a traduora project. Each project owns a collection of terms and
// their translations into the project's locales.
type Project struct {
	// ID is the unique id of the project.
	ID api.ProjectID `json:"id"`
	// Name is the display name of the project.
	Name string `json:"name"`
	// Description says what the project is about.
	Description string `json:"description"`
	// LocalesCount is the number of locales configured for the project.
	LocalesCount uint64 `json:"localesCount"`
	// TermsCount is the number of terms the project owns.
	TermsCount uint64 `json:"termsCount"`
	// Role is the role of the querying user within the project.
	Role api.Role `json:"role"`
	// Date holds creation and modification times.
	Date api.AccessDates `json:"date"`
}
