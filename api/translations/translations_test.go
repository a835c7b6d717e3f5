package translations

import (
	"encoding/json"
	"testing"
)

func TestTranslations_Decode(t *testing.T) {
	ep := NewTranslations("p1", "de_DE")
	if ep.Method() != "GET" || ep.Path() != "projects/p1/translations/de_DE" {
		t.Errorf("unexpected descriptor: %s %s", ep.Method(), ep.Path())
	}
	got, err := ep.DecodeModel(json.RawMessage(`{"data": [
		{"termId": "t1", "value": "Menü", "labels": []}
	]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].TermID != "t1" || got[0].Value != "Menü" {
		t.Errorf("unexpected translations: %+v", got)
	}
}

func TestEditTranslation_Body(t *testing.T) {
	ep := NewEditTranslation("p1", "de_DE", "t1", "Menü")
	if ep.Method() != "PATCH" || ep.Path() != "projects/p1/translations/de_DE" {
		t.Errorf("unexpected descriptor: %s %s", ep.Method(), ep.Path())
	}
	_, body, err := ep.RequestBody()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if got["termId"] != "t1" || got["value"] != "Menü" {
		t.Errorf("unexpected body: %s", body)
	}
	if len(got) != 2 {
		t.Errorf("project and locale belong in the path, not the body, got %s", body)
	}
}

func TestProjectLocales_Decode(t *testing.T) {
	ep := ProjectLocales{Project: "p1"}
	if ep.Path() != "projects/p1/translations" {
		t.Errorf("unexpected path: %s", ep.Path())
	}
	got, err := ep.DecodeModel(json.RawMessage(`{"data": [
		{"id": "pl1", "locale": {"code": "de_DE", "language": "German", "region": "Germany"}}
	]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "pl1" || got[0].Locale.Code != "de_DE" {
		t.Errorf("unexpected locales: %+v", got)
	}
}

func TestCreateLocale_Body(t *testing.T) {
	ep := NewCreateLocale("p1", "de_DE")
	if ep.Method() != "POST" || ep.Path() != "projects/p1/translations" {
		t.Errorf("unexpected descriptor: %s %s", ep.Method(), ep.Path())
	}
	_, body, err := ep.RequestBody()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if len(got) != 1 || got["code"] != "de_DE" {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestDeleteLocale_Descriptor(t *testing.T) {
	ep := NewDeleteLocale("p1", "de_DE")
	if ep.Method() != "DELETE" || ep.Path() != "projects/p1/translations/de_DE" {
		t.Errorf("unexpected descriptor: %s %s", ep.Method(), ep.Path())
	}
	if _, err := ep.DecodeModel(json.RawMessage("null")); err != nil {
		t.Errorf("empty payload must decode: %v", err)
	}
}
