package api

import (
	"encoding/json"

	"github.com/kbukum/traduora/scope"
)

// Endpoint provides the information needed to dispatch a single REST API
// operation: HTTP method, path relative to the API root, and the permission
// level the client must hold. Endpoint values are purely descriptive; they
// perform no I/O themselves.
type Endpoint interface {
	// Method is the HTTP method to use for the endpoint.
	Method() string
	// Path is the endpoint path relative to the API root, with any
	// identifiers already interpolated.
	Path() string
	// AccessControl is the minimum permission level required to call the
	// endpoint.
	AccessControl() scope.Level
}

// ModelEndpoint is an endpoint with a declared default model. DecodeModel is
// the endpoint's mapping function from parsed response JSON to the model;
// most endpoints delegate to DecodeEnveloped, the access token endpoint to
// DecodeBare.
type ModelEndpoint[M any] interface {
	Endpoint
	// DecodeModel maps the response JSON to the endpoint's default model.
	DecodeModel(data json.RawMessage) (M, error)
}

// BodyProvider is implemented by endpoints that send a request body.
// RequestBody returns the content type together with the serialized bytes.
type BodyProvider interface {
	RequestBody() (contentType string, body []byte, err error)
}

// Sensitive is implemented by endpoints whose requests carry secrets and must
// be excluded from verbose logging.
type Sensitive interface {
	Sensitive() bool
}

// JSONBody serializes v as a JSON request body.
func JSONBody(v any) (string, []byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	return "application/json", data, nil
}
