package scope

import (
	"errors"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// Level identifies a permission level. A client holding a higher level may
// call every endpoint that requires a lower one.
type Level int

const (
	// Unauthenticated is the level of a client without a credential. Only a
	// small subset of endpoints (signup, token exchange, provider listing)
	// accept it.
	Unauthenticated Level = iota
	// Authenticated is the level of a client holding an access token.
	Authenticated
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Satisfies reports whether a client at level l may call an endpoint that
// requires the given level. The check is one-directional: authenticated
// satisfies unauthenticated, never the reverse.
func (l Level) Satisfies(required Level) bool {
	return l >= required
}

// ErrHeaderValue is returned when a credential cannot be encoded as an
// Authorization header value.
var ErrHeaderValue = errors.New("scope: token contains characters not allowed in a header value")

// Scope determines the permissions of a client. Which endpoints a client may
// call depends on its scope.
type Scope interface {
	// Level reports the permission level this scope grants.
	Level() Level
	// SetHeader contributes authorization information to an outgoing request.
	// Depending on the scope this is either no header at all or the
	// Authorization header.
	SetHeader(h http.Header) error
}

// Anonymous is the scope of a client without a credential.
type Anonymous struct{}

// Level implements Scope.
func (Anonymous) Level() Level { return Unauthenticated }

// SetHeader implements Scope. It is a no-op for anonymous clients.
func (Anonymous) SetHeader(http.Header) error { return nil }

// Token is a credential-bearing scope holding an opaque bearer token.
// It is immutable after construction.
type Token struct {
	token string
}

// NewToken creates an authenticated scope from a raw bearer token string.
func NewToken(token string) Token {
	return Token{token: token}
}

// Level implements Scope.
func (Token) Level() Level { return Authenticated }

// SetHeader implements Scope. It sets the Authorization header, failing with
// ErrHeaderValue if the token string is not a legal header value.
func (t Token) SetHeader(h http.Header) error {
	value := "Bearer " + t.token
	if !httpguts.ValidHeaderFieldValue(value) {
		return ErrHeaderValue
	}
	h.Set("Authorization", value)
	return nil
}

// Downgrade converts the authenticated scope into an anonymous one. The
// conversion exists so that a more capable client can satisfy an endpoint
// with a weaker requirement; there is no conversion in the other direction.
func (Token) Downgrade() Anonymous { return Anonymous{} }
