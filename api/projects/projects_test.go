package projects

import (
	"encoding/json"
	"testing"

	"github.com/kbukum/traduora/api"
)

const projectFixture = `{"data": {
	"id": "p1",
	"name": "Docs",
	"description": "Documentation strings",
	"localesCount": 3,
	"termsCount": 120,
	"role": "admin",
	"date": {"created": "2023-04-01T10:00:00.000Z", "modified": "2023-04-02T11:30:00.000Z"}
}}`

func TestShowProject_Decode(t *testing.T) {
	ep := ShowProject{ID: "p1"}
	if ep.Path() != "projects/p1" || ep.Method() != "GET" {
		t.Errorf("unexpected descriptor: %s %s", ep.Method(), ep.Path())
	}
	got, err := ep.DecodeModel(json.RawMessage(projectFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "p1" || got.Name != "Docs" || got.Role != api.RoleAdmin {
		t.Errorf("unexpected project: %+v", got)
	}
	if got.LocalesCount != 3 || got.TermsCount != 120 {
		t.Errorf("unexpected counts: %+v", got)
	}
	if got.Date.Created.IsZero() || got.Date.Modified.IsZero() {
		t.Errorf("dates did not parse: %+v", got.Date)
	}
}

func TestProjects_Decode(t *testing.T) {
	got, err := Projects{}.DecodeModel(json.RawMessage(`{"data": [
		{"id": "p1", "name": "Docs"},
		{"id": "p2", "name": "App"}
	]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].ID != "p2" {
		t.Errorf("unexpected projects: %+v", got)
	}
}

func TestCreateProject_RequestBody(t *testing.T) {
	_, body, err := NewCreateProject("Docs", "Documentation strings").RequestBody()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if got["name"] != "Docs" || got["description"] != "Documentation strings" {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestEditProject_BodyExcludesID(t *testing.T) {
	ep := NewEditProject("p1", "Docs", "desc")
	if ep.Path() != "projects/p1" || ep.Method() != "PATCH" {
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
	if _, ok := got["ID"]; ok {
		t.Error("project id belongs in the path, not the body")
	}
	if got["name"] != "Docs" {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestDeleteProject_Descriptor(t *testing.T) {
	ep := DeleteProject{ID: "p1"}
	if ep.Method() != "DELETE" || ep.Path() != "projects/p1" {
		t.Errorf("unexpected descriptor: %s %s", ep.Method(), ep.Path())
	}
	if _, err := ep.DecodeModel(json.RawMessage("null")); err != nil {
		t.Errorf("empty payload must decode: %v", err)
	}
}
