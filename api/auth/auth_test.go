package auth

import (
	"encoding/json"
	"testing"

	"github.com/kbukum/traduora/scope"
)

func TestPasswordToken_RequestBody(t *testing.T) {
	contentType, body, err := PasswordToken("user@mail.example", "letmeinpls").RequestBody()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("unexpected content type: %q", contentType)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	want := map[string]string{
		"grant_type": "password",
		"username":   "user@mail.example",
		"password":   "letmeinpls",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("body[%q] = %q, want %q", k, got[k], v)
		}
	}
	if _, ok := got["client_id"]; ok {
		t.Error("password grant must not carry client credentials")
	}
}

func TestClientCredentialsToken_RequestBody(t *testing.T) {
	_, body, err := ClientCredentialsToken("client-1", "s3cret").RequestBody()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if got["grant_type"] != "client_credentials" || got["client_id"] != "client-1" || got["client_secret"] != "s3cret" {
		t.Errorf("unexpected body: %s", body)
	}
	if _, ok := got["username"]; ok {
		t.Error("client credentials grant must not carry a username")
	}
}

func TestToken_Descriptor(t *testing.T) {
	tok := PasswordToken("u", "p")
	if tok.Method() != "POST" || tok.Path() != "auth/token" {
		t.Errorf("unexpected descriptor: %s %s", tok.Method(), tok.Path())
	}
	if tok.AccessControl() != scope.Unauthenticated {
		t.Error("token endpoint must be callable without authentication")
	}
	if !tok.Sensitive() {
		t.Error("token requests carry credentials and must be sensitive")
	}
}

func TestToken_DecodeBare(t *testing.T) {
	// The token endpoint answers without the data envelope.
	got, err := Token{}.DecodeModel(json.RawMessage(`{
		"access_token": "abc",
		"expires_in": "86400s",
		"token_type": "bearer"
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AccessToken != "abc" || got.ExpiresIn != "86400s" || got.TokenType != "bearer" {
		t.Errorf("unexpected response: %+v", got)
	}
}

func TestSignup(t *testing.T) {
	s := NewSignup("Jamie", "jamie@mail.example", "pw")
	if s.Method() != "POST" || s.Path() != "auth/signup" {
		t.Errorf("unexpected descriptor: %s %s", s.Method(), s.Path())
	}
	if s.AccessControl() != scope.Unauthenticated {
		t.Error("signup must be callable without authentication")
	}
	if !s.Sensitive() {
		t.Error("signup carries a password and must be sensitive")
	}

	got, err := s.DecodeModel(json.RawMessage(`{"data": {
		"id": "u1",
		"name": "Jamie",
		"email": "jamie@mail.example",
		"accessToken": "fresh"
	}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" || got.AccessToken != "fresh" {
		t.Errorf("unexpected model: %+v", got)
	}
}

func TestChangePassword(t *testing.T) {
	c := NewChangePassword("old", "new")
	if c.Path() != "auth/change-password" || c.AccessControl() != scope.Authenticated {
		t.Errorf("unexpected descriptor: %+v", c)
	}
	_, body, err := c.RequestBody()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if got["oldPassword"] != "old" || got["newPassword"] != "new" {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestProviders_Decode(t *testing.T) {
	got, err := Providers{}.DecodeModel(json.RawMessage(`{"data": [
		{"slug": "google", "clientId": "cid", "url": "https://accounts.example", "redirectUrl": "https://app.example/cb"}
	]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "google" || got[0].ClientID != "cid" {
		t.Errorf("unexpected providers: %+v", got)
	}
}
