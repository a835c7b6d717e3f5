package auth

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// Signup creates a new user account.
//
// POST /api/v1/auth/signup
type Signup struct {
	// Name is the display name for the user to create.
	Name string `json:"name"`
	// Email is the login email address.
	Email string `json:"email"`
	// Password is the login password.
	Password string `json:"password"`
}

// NewSignup creates a signup request.
func NewSignup(name, email, password string) Signup {
	return Signup{Name: name, Email: email, Password: password}
}

// Method implements api.Endpoint.
func (Signup) Method() string { return http.MethodPost }

// Path implements api.Endpoint.
func (Signup) Path() string { return "auth/signup" }

// AccessControl implements api.Endpoint.
func (Signup) AccessControl() scope.Level { return scope.Unauthenticated }

// RequestBody implements api.BodyProvider.
func (s Signup) RequestBody() (string, []byte, error) {
	return api.JSONBody(s)
}

// Sensitive implements api.Sensitive.
func (Signup) Sensitive() bool { return true }

// DecodeModel implements api.ModelEndpoint.
func (Signup) DecodeModel(data json.RawMessage) (NewUser, error) {
	return api.DecodeEnveloped[NewUser](data)
}

// NewUser is the default model of the signup endpoint.
type NewUser struct {
	// ID is the unique id of the created user.
	ID api.UserID `json:"id"`
	// Name is the display name of the created user.
	Name string `json:"name"`
	// Email is the login email address of the created user.
	Email string `json:"email"`
	// AccessToken authorizes the new user without a separate token exchange.
	AccessToken api.AccessToken `json:"accessToken"`
}
