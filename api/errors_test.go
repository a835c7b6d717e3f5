package api

import (
	"encoding/json"
	"testing"
)

func TestClassifyServerError_MessageString(t *testing.T) {
	err := classifyServerError(400, []byte(`{"message": "error contents"}`))
	if err.Code != ErrCodeServerMessage {
		t.Fatalf("unexpected code: %v", err.Code)
	}
	if err.Message != "error contents" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestClassifyServerError_LegacyErrorKey(t *testing.T) {
	err := classifyServerError(400, []byte(`{"error": "error contents"}`))
	if err.Code != ErrCodeServerMessage {
		t.Fatalf("unexpected code: %v", err.Code)
	}
	if err.Message != "error contents" {
		t.Errorf("unexpected message: %q", err.Message)
	}
}

func TestClassifyServerError_MessagePrecedence(t *testing.T) {
	err := classifyServerError(400, []byte(`{"message": "m1", "error": "m2"}`))
	if err.Message != "m1" {
		t.Errorf("message key should win over error key, got %q", err.Message)
	}
}

func TestClassifyServerError_MessageObject(t *testing.T) {
	err := classifyServerError(400, []byte(`{"message": {"blah": "foo"}}`))
	if err.Code != ErrCodeServerObject {
		t.Fatalf("unexpected code: %v", err.Code)
	}
	var obj map[string]string
	if jsonErr := json.Unmarshal(err.Object, &obj); jsonErr != nil {
		t.Fatalf("object is not valid JSON: %v", jsonErr)
	}
	if obj["blah"] != "foo" {
		t.Errorf("unexpected object: %s", err.Object)
	}
}

func TestClassifyServerError_MessageNull(t *testing.T) {
	// A null message is not a string and must classify as an object error.
	err := classifyServerError(400, []byte(`{"message": null}`))
	if err.Code != ErrCodeServerObject {
		t.Fatalf("unexpected code: %v", err.Code)
	}
}

func TestClassifyServerError_Unrecognized(t *testing.T) {
	err := classifyServerError(400, []byte(`{"some_weird_key": "an even weirder value"}`))
	if err.Code != ErrCodeServerUnrecognized {
		t.Fatalf("unexpected code: %v", err.Code)
	}
	var obj map[string]string
	if jsonErr := json.Unmarshal(err.Object, &obj); jsonErr != nil {
		t.Fatalf("object is not valid JSON: %v", jsonErr)
	}
	if obj["some_weird_key"] != "an even weirder value" {
		t.Errorf("unrecognized error should carry the full object, got %s", err.Object)
	}
}

func TestClassifyServerError_NonObjectJSON(t *testing.T) {
	err := classifyServerError(500, []byte(`["a", "b"]`))
	if err.Code != ErrCodeServerUnrecognized {
		t.Fatalf("unexpected code: %v", err.Code)
	}
}

func TestNewServiceError_CopiesBody(t *testing.T) {
	body := []byte("gateway timeout")
	err := NewServiceError(504, body)
	body[0] = 'X'
	if string(err.Body) != "gateway timeout" {
		t.Errorf("service error must own its body copy, got %q", err.Body)
	}
	if err.StatusCode != 504 {
		t.Errorf("unexpected status: %d", err.StatusCode)
	}
}

func TestConstructors_NilCause(t *testing.T) {
	// Exported constructors must tolerate a nil cause instead of panicking.
	for _, err := range []*Error{
		NewURLParseError(nil),
		NewAuthError(nil),
		NewBodyError(nil),
		NewClientError(nil),
		NewJSONError(nil),
	} {
		if err == nil {
			t.Fatal("constructor returned nil")
		}
		if msg := err.Error(); msg == "" {
			t.Errorf("%v error must still format", err.Code)
		}
		if err.Unwrap() != nil {
			t.Errorf("%v error must unwrap to nil", err.Code)
		}
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsServerReported(NewServiceError(502, nil)) {
		t.Error("service errors are server-reported")
	}
	if !IsServerReported(classifyServerError(400, []byte(`{"message":"m"}`))) {
		t.Error("message errors are server-reported")
	}
	if IsServerReported(NewJSONError(json.Unmarshal([]byte("{"), &struct{}{}))) {
		t.Error("JSON errors are local, not server-reported")
	}
	if !IsDataType(NewDataTypeError("api.widget", nil)) {
		t.Error("expected IsDataType to match")
	}
	if IsDataType(NewBodyError(nil)) {
		t.Error("IsDataType must not match body errors")
	}
}
