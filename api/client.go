package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/kbukum/traduora/scope"
)

// Request describes a single outbound HTTP exchange, fully built by the
// query layer. Transport implementations send it as-is.
type Request struct {
	// Method is the HTTP method.
	Method string
	// URL is the absolute request URL, already joined with the API root.
	URL *url.URL
	// Header holds request headers. The transport adds authorization on top.
	Header http.Header
	// Body is the serialized request body, nil when the endpoint has none.
	Body []byte
	// Sensitive marks requests whose contents must not appear in verbose
	// logging (login, signup, password changes).
	Sensitive bool
}

// Response is the raw result of one HTTP exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// RestClient is the part of the transport boundary shared by the blocking
// and context-aware clients.
type RestClient interface {
	// RestEndpoint resolves an endpoint path against the client's API root.
	RestEndpoint(endpoint string) (*url.URL, error)
	// AccessLevel reports the permission level the client holds.
	AccessLevel() scope.Level
}

// Client is a transport that performs exactly one blocking HTTP exchange per
// call. Implementations return their own error type for transport failures
// (DNS, connection refused, TLS); the query layer wraps it.
type Client interface {
	RestClient
	// Do sends the request and returns the raw response.
	Do(req *Request) (*Response, error)
}

// ContextClient is a transport with the same contract as Client, but the
// exchange honors context cancellation and deadlines. The query layer applies
// the context only to the exchange itself; decoding never blocks.
type ContextClient interface {
	RestClient
	// DoContext sends the request and returns the raw response.
	DoContext(ctx context.Context, req *Request) (*Response, error)
}
