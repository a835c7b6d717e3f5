package api

import "time"

// AccessToken is an opaque bearer token issued by the server. The client
// never inspects its contents.
type AccessToken string

// UserID uniquely identifies a user.
type UserID string

// ProjectID uniquely identifies a project.
type ProjectID string

// TermID uniquely identifies a term within a project.
type TermID string

// AccessDates reports when an object was created and last changed. Several
// endpoints return it alongside their main payload.
type AccessDates struct {
	// Created is the time the object was created.
	Created time.Time `json:"created"`
	// Modified is the time the object was last changed.
	Modified time.Time `json:"modified"`
}

// Role is a user's project-specific role. The creator of a project becomes
// its admin; other members get the role chosen when they were invited.
type Role string

const (
	// RoleAdmin grants access to everything in a project.
	RoleAdmin Role = "admin"
	// RoleEditor grants read and write access, but not configuration changes
	// such as inviting users.
	RoleEditor Role = "editor"
	// RoleViewer grants read-only access.
	RoleViewer Role = "viewer"
)
