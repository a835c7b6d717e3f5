package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/kbukum/traduora/scope"
)

// Query dispatches the endpoint against the client and decodes the response
// into the endpoint's default model.
func Query[M any](c Client, ep ModelEndpoint[M]) (M, error) {
	return dispatch(c, ep, ep.DecodeModel)
}

// QueryContext is Query with a context applied to the HTTP exchange. The
// context governs only the exchange; request building and decoding run to
// completion without blocking.
func QueryContext[M any](ctx context.Context, c ContextClient, ep ModelEndpoint[M]) (M, error) {
	return dispatchContext(ctx, c, ep, ep.DecodeModel)
}

// QueryCustom dispatches the endpoint and decodes the response into a
// caller-chosen type, unwrapping the conventional {"data": ...} envelope the
// same way the default path does. Useful to decode a subset of fields or a
// response whose shape is not modeled yet.
func QueryCustom[T any](c Client, ep Endpoint) (T, error) {
	return dispatch(c, ep, DecodeEnveloped[T])
}

// QueryCustomContext is QueryCustom with a context applied to the HTTP
// exchange.
func QueryCustomContext[T any](ctx context.Context, c ContextClient, ep Endpoint) (T, error) {
	return dispatchContext(ctx, c, ep, DecodeEnveloped[T])
}

func dispatch[T any](c Client, ep Endpoint, mapper func(json.RawMessage) (T, error)) (T, error) {
	var zero T
	req, err := prepare(c, ep)
	if err != nil {
		return zero, err
	}
	resp, err := c.Do(req)
	if err != nil {
		return zero, wrapTransportError(err)
	}
	return ProcessResponse(resp, mapper)
}

func dispatchContext[T any](ctx context.Context, c ContextClient, ep Endpoint, mapper func(json.RawMessage) (T, error)) (T, error) {
	var zero T
	req, err := prepare(c, ep)
	if err != nil {
		return zero, err
	}
	resp, err := c.DoContext(ctx, req)
	if err != nil {
		return zero, wrapTransportError(err)
	}
	return ProcessResponse(resp, mapper)
}

// prepare asserts the client's permission level and builds the request from
// the endpoint description. It performs no I/O.
func prepare(c RestClient, ep Endpoint) (*Request, error) {
	if !c.AccessLevel().Satisfies(ep.AccessControl()) {
		return nil, NewScopeError(ep.AccessControl(), c.AccessLevel())
	}

	u, err := c.RestEndpoint(ep.Path())
	if err != nil {
		return nil, NewURLParseError(err)
	}

	req := &Request{
		Method: ep.Method(),
		URL:    u,
		Header: make(http.Header),
	}

	if bp, ok := ep.(BodyProvider); ok {
		contentType, body, err := bp.RequestBody()
		if err != nil {
			return nil, NewBodyError(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", contentType)
			req.Body = body
		}
	}

	if s, ok := ep.(Sensitive); ok && s.Sensitive() {
		req.Sensitive = true
	}

	return req, nil
}

func wrapTransportError(err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, scope.ErrHeaderValue) {
		return NewAuthError(err)
	}
	return NewClientError(err)
}

// ProcessResponse turns a raw response into a typed value or a classified
// error. The success/failure branch depends only on the HTTP status class,
// never on the payload shape. An empty body is treated as JSON null.
func ProcessResponse[T any](resp *Response, mapper func(json.RawMessage) (T, error)) (T, error) {
	var zero T

	body := resp.Body
	if len(body) == 0 {
		body = []byte("null")
	}

	var parsed json.RawMessage
	parseErr := json.Unmarshal(body, &parsed)

	if resp.IsSuccess() {
		if parseErr != nil {
			return zero, NewJSONError(parseErr)
		}
		v, err := mapper(parsed)
		if err != nil {
			return zero, NewDataTypeError(typeName[T](), err)
		}
		return v, nil
	}

	if parseErr != nil {
		return zero, NewServiceError(resp.StatusCode, resp.Body)
	}
	return zero, classifyServerError(resp.StatusCode, parsed)
}

// DecodeEnveloped parses a model wrapped in the conventional {"data": ...}
// object. Most endpoints return their answer in this form; a notable
// exception is the access token endpoint.
func DecodeEnveloped[M any](data json.RawMessage) (M, error) {
	var zero M
	var envelope struct {
		Data *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return zero, err
	}
	if envelope.Data == nil {
		return zero, fmt.Errorf("missing %q field in response envelope", "data")
	}
	return DecodeBare[M](*envelope.Data)
}

// DecodeBare parses a model directly from the response JSON, without
// unwrapping an envelope.
func DecodeBare[M any](data json.RawMessage) (M, error) {
	var m M
	err := json.Unmarshal(data, &m)
	return m, err
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
