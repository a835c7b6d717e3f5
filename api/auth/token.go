package auth

import (
	"encoding/json"
	"net/http"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/scope"
)

// Token requests an authentication token for an existing user or project
// client.
//
// POST /api/v1/auth/token
type Token struct {
	grantType    string
	username     string
	password     string
	clientID     string
	clientSecret string
}

// PasswordToken creates a token request for a normal user, using the same
// login data that is typed into the browser.
func PasswordToken(mail, password string) Token {
	return Token{grantType: "password", username: mail, password: password}
}

// ClientCredentialsToken creates a token request for a project client. See
// the "API Keys" tab within a project.
func ClientCredentialsToken(clientID, clientSecret string) Token {
	return Token{grantType: "client_credentials", clientID: clientID, clientSecret: clientSecret}
}

// Method implements api.Endpoint.
func (Token) Method() string { return http.MethodPost }

// Path implements api.Endpoint.
func (Token) Path() string { return "auth/token" }

// AccessControl implements api.Endpoint.
func (Token) AccessControl() scope.Level { return scope.Unauthenticated }

// RequestBody implements api.BodyProvider.
func (t Token) RequestBody() (string, []byte, error) {
	switch t.grantType {
	case "client_credentials":
		return api.JSONBody(struct {
			GrantType    string `json:"grant_type"`
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		}{t.grantType, t.clientID, t.clientSecret})
	default:
		return api.JSONBody(struct {
			GrantType string `json:"grant_type"`
			Username  string `json:"username"`
			Password  string `json:"password"`
		}{t.grantType, t.username, t.password})
	}
}

// Sensitive implements api.Sensitive. Token requests carry credentials and
// must not be logged.
func (Token) Sensitive() bool { return true }

// DecodeModel implements api.ModelEndpoint. The server returns the token
// response bare, without the usual data envelope.
func (Token) DecodeModel(data json.RawMessage) (AccessTokenResponse, error) {
	return api.DecodeBare[AccessTokenResponse](data)
}

// AccessTokenResponse is the default model of the token endpoint.
type AccessTokenResponse struct {
	// AccessToken authorizes the client; sent in the Authorization header.
	AccessToken api.AccessToken `json:"access_token"`
	// ExpiresIn is the token lifetime, e.g. "86400s".
	ExpiresIn string `json:"expires_in"`
	// TokenType is the kind of token issued, usually "bearer".
	TokenType string `json:"token_type"`
}
