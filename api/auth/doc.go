// Package auth contains the endpoints under /api/v1/auth: token exchange,
// signup, provider listing, and password changes.
package auth
