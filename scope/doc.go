// Package scope models client permission levels.
//
// A Scope value represents what a client is allowed to do. Two scopes exist:
// Anonymous (no credential) and Token (bearer token). Every endpoint declares
// the minimum Level it requires; the query layer asserts the client's level
// against it before any network I/O.
//
// Levels could in principle be separate client types so that an
// under-privileged call fails to compile, but Go's generics cannot encode
// the "higher scope stands in for lower" conversion as a compile-time
// constraint. The check is performed at dispatch time instead. It always
// runs before the request is built, so misuse fails fast rather than with a
// 401 from the server.
package scope
