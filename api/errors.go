package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kbukum/traduora/scope"
)

// ErrorCode classifies API errors.
type ErrorCode int

const (
	// ErrCodeScope indicates the client's permission level does not satisfy
	// the endpoint's requirement. The check runs before any network I/O.
	ErrCodeScope ErrorCode = iota
	// ErrCodeURLParse indicates the endpoint path could not be joined with
	// the API root.
	ErrCodeURLParse
	// ErrCodeAuth indicates the credential could not be encoded as a header
	// value.
	ErrCodeAuth
	// ErrCodeBody indicates the request body failed to serialize.
	ErrCodeBody
	// ErrCodeClient indicates a transport-level failure (DNS, connection
	// refused, TLS, I/O).
	ErrCodeClient
	// ErrCodeJSON indicates the response body of a successful status was not
	// valid JSON.
	ErrCodeJSON
	// ErrCodeDataType indicates the response JSON parsed but did not match
	// the requested model's shape.
	ErrCodeDataType
	// ErrCodeServerMessage indicates the server reported an error with a
	// string message under "message" or "error".
	ErrCodeServerMessage
	// ErrCodeServerObject indicates the server reported an error whose
	// "message" or "error" value is not a string.
	ErrCodeServerObject
	// ErrCodeServerUnrecognized indicates the server returned JSON with
	// neither a "message" nor an "error" key.
	ErrCodeServerUnrecognized
	// ErrCodeService indicates a non-success status whose body is not JSON
	// at all (plaintext or binary error pages).
	ErrCodeService
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeScope:
		return "scope"
	case ErrCodeURLParse:
		return "url_parse"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeBody:
		return "body"
	case ErrCodeClient:
		return "client"
	case ErrCodeJSON:
		return "json"
	case ErrCodeDataType:
		return "data_type"
	case ErrCodeServerMessage:
		return "server_message"
	case ErrCodeServerObject:
		return "server_object"
	case ErrCodeServerUnrecognized:
		return "server_unrecognized"
	case ErrCodeService:
		return "service"
	default:
		return "unknown"
	}
}

// Error is a classified API error. Exactly one failure cause applies per
// occurrence; Code selects which of the auxiliary fields are populated.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message is the server-reported message (ErrCodeServerMessage) or a
	// description of the failure.
	Message string
	// StatusCode is the HTTP status for server-reported failures.
	StatusCode int
	// Body is the raw response body (ErrCodeService).
	Body []byte
	// Object is the offending JSON value (ErrCodeServerObject,
	// ErrCodeServerUnrecognized).
	Object json.RawMessage
	// TypeName names the decode target (ErrCodeDataType).
	TypeName string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeServerMessage:
		return fmt.Sprintf("api: server error: %s", e.Message)
	case ErrCodeServerObject, ErrCodeServerUnrecognized:
		return fmt.Sprintf("api: server error: %s", e.Object)
	case ErrCodeService:
		return fmt.Sprintf("api: server error (HTTP %d)", e.StatusCode)
	case ErrCodeDataType:
		return fmt.Sprintf("api: could not parse %s from JSON: %v", e.TypeName, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("api: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewScopeError creates an error for a failed permission-level assertion.
func NewScopeError(required, held scope.Level) *Error {
	return &Error{
		Code:    ErrCodeScope,
		Message: fmt.Sprintf("endpoint requires %s access but client is %s", required, held),
	}
}

// NewURLParseError creates an error for a failed path join.
func NewURLParseError(err error) *Error {
	return &Error{Code: ErrCodeURLParse, Message: errMessage(err), Err: err}
}

// NewAuthError creates an error for a credential that cannot be applied to a
// request.
func NewAuthError(err error) *Error {
	return &Error{Code: ErrCodeAuth, Message: errMessage(err), Err: err}
}

// NewBodyError creates an error for a request body that failed to serialize.
func NewBodyError(err error) *Error {
	return &Error{Code: ErrCodeBody, Message: errMessage(err), Err: err}
}

// NewClientError wraps a transport-level failure.
func NewClientError(err error) *Error {
	return &Error{Code: ErrCodeClient, Message: errMessage(err), Err: err}
}

// NewJSONError creates an error for a success response whose body is not
// valid JSON.
func NewJSONError(err error) *Error {
	return &Error{Code: ErrCodeJSON, Message: errMessage(err), Err: err}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// NewDataTypeError creates an error for JSON that did not match the target
// type's shape.
func NewDataTypeError(typeName string, err error) *Error {
	return &Error{Code: ErrCodeDataType, TypeName: typeName, Err: err}
}

// NewServiceError creates an error for a non-success status whose body could
// not be interpreted as JSON. It carries the status and raw bytes.
func NewServiceError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeService,
		StatusCode: statusCode,
		Body:       append([]byte(nil), body...),
	}
}

// classifyServerError maps the parsed body of a non-success response to an
// error variant. The body is known to be valid JSON. An error message is
// looked up under "message" first, then the legacy "error" key.
func classifyServerError(statusCode int, body []byte) *Error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		// Valid JSON but not an object.
		return unrecognizedError(statusCode, body)
	}

	value, ok := obj["message"]
	if !ok {
		value, ok = obj["error"]
	}
	if !ok {
		return unrecognizedError(statusCode, body)
	}

	if len(value) > 0 && value[0] == '"' {
		var msg string
		if err := json.Unmarshal(value, &msg); err == nil {
			return &Error{Code: ErrCodeServerMessage, StatusCode: statusCode, Message: msg}
		}
	}
	return &Error{
		Code:       ErrCodeServerObject,
		StatusCode: statusCode,
		Object:     append(json.RawMessage(nil), value...),
	}
}

func unrecognizedError(statusCode int, body []byte) *Error {
	return &Error{
		Code:       ErrCodeServerUnrecognized,
		StatusCode: statusCode,
		Object:     append(json.RawMessage(nil), body...),
	}
}

// IsScope checks if an error is a permission-level error.
func IsScope(err error) bool { return hasCode(err, ErrCodeScope) }

// IsURLParse checks if an error is a URL join error.
func IsURLParse(err error) bool { return hasCode(err, ErrCodeURLParse) }

// IsAuth checks if an error is a credential encoding error.
func IsAuth(err error) bool { return hasCode(err, ErrCodeAuth) }

// IsBody checks if an error is a body serialization error.
func IsBody(err error) bool { return hasCode(err, ErrCodeBody) }

// IsClient checks if an error is a transport error.
func IsClient(err error) bool { return hasCode(err, ErrCodeClient) }

// IsJSON checks if an error is a JSON parse error.
func IsJSON(err error) bool { return hasCode(err, ErrCodeJSON) }

// IsDataType checks if an error is a type mapping error.
func IsDataType(err error) bool { return hasCode(err, ErrCodeDataType) }

// IsServerReported checks if an error was reported by the server, in any of
// its classified shapes.
func IsServerReported(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case ErrCodeServerMessage, ErrCodeServerObject, ErrCodeServerUnrecognized, ErrCodeService:
		return true
	}
	return false
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
