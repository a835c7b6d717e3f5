package auth

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// ChangePassword changes the password of the logged-in user using the
// current password.
//
// POST /api/v1/auth/change-password
type ChangePassword struct {
	// OldPassword is the current password of the user.
	OldPassword string `json:"oldPassword"`
	// NewPassword is the new password for the user.
	NewPassword string `json:"newPassword"`
}

// NewChangePassword creates a change-password request.
func NewChangePassword(oldPassword, newPassword string) ChangePassword {
	return ChangePassword{OldPassword: oldPassword, NewPassword: newPassword}
}

// Method implements api.Endpoint.
func (ChangePassword) Method() string { return http.MethodPost }

// Path implements api.Endpoint.
func (ChangePassword) Path() string { return "auth/change-password" }

// AccessControl implements api.Endpoint.
func (ChangePassword) AccessControl() scope.Level { return scope.Authenticated }

// RequestBody implements api.BodyProvider.
func (c ChangePassword) RequestBody() (string, []byte, error) {
	return api.JSONBody(c)
}

// Sensitive implements api.Sensitive.
func (ChangePassword) Sensitive() bool { return true }

// DecodeModel implements api.ModelEndpoint. The endpoint returns no payload.
func (ChangePassword) DecodeModel(data json.RawMessage) (struct{}, error) {
	return api.DecodeBare[struct{}](data)
}
