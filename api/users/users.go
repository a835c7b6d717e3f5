// Package users contains the endpoints under /api/v1/users/me.
package users

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// UserInfo is the profile of the logged-in user.
type UserInfo struct {
	// ID is the unique id of the user.
	ID api.UserID `json:"id"`
	// Name is the display name of the user.
	Name string `json:"name"`
	// Email is the login email address of the user.
	Email string `json:"email"`
	// NumProjectsCreated is the number of projects the user created.
	NumProjectsCreated uint64 `json:"numProjectsCreated"`
}

// Me fetches the profile of the logged-in user.
//
// GET /api/v1/users/me
type Me struct{}

// Method implements api.Endpoint.
func (Me) Method() string { return http.MethodGet }

// Path implements api.Endpoint.
func (Me) Path() string { return "users/me" }

// AccessControl implements api.Endpoint.
func (Me) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint.
func (Me) DecodeModel(data json.RawMessage) (UserInfo, error) {
	return api.DecodeEnveloped[UserInfo](data)
}

// EditMe updates the logged-in user's name and email. Unset fields are left
// unchanged.
//
// PATCH /api/v1/users/me
type EditMe struct {
	// Name is the new display name, if any.
	Name *string `json:"name,omitempty"`
	// Email is the new email address, if any.
	Email *string `json:"email,omitempty"`
}

// NewEditName creates a request that only changes the display name.
func NewEditName(name string) EditMe {
	return EditMe{Name: &name}
}

// NewEditEmail creates a request that only changes the email address.
func NewEditEmail(email string) EditMe {
	return EditMe{Email: &email}
}

// Method implements api.Endpoint.
func (EditMe) Method() string { return http.MethodPatch }

// Path implements api.Endpoint.
func (EditMe) Path() string { return "users/me" }

// AccessControl implements api.Endpoint.
func (EditMe) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (e EditMe) RequestBody() (string, []byte, error) {
	return api.JSONBody(e)
}

// DecodeModel implements api.ModelEndpoint.
func (EditMe) DecodeModel(data json.RawMessage) (UserInfo, error) {
	return api.DecodeEnveloped[UserInfo](data)
}

// DeleteMe deletes the logged-in user's account.
//
// DELETE /api/v1/users/me
type DeleteMe struct{}

// Method implements api.Endpoint.
func (DeleteMe) Method() string { return http.MethodDelete }

// Path implements api.Endpoint.
func (DeleteMe) Path() string { return "users/me" }

// AccessControl implements api.Endpoint.
func (DeleteMe) AccessControl() scope.Level { return scope.Authenticated }

// DecodeModel implements api.ModelEndpoint. The endpoint returns no payload.
func (DeleteMe) DecodeModel(data json.RawMessage) (struct{}, error) {
	return api.DecodeBare[struct{}](data)
}
