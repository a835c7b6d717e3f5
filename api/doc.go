// Package api contains the generic request-dispatch and typed-response
// machinery shared by all traduora endpoints.
//
// Every remote operation is described by a value implementing Endpoint
// (method, path, optional body, required permission level). The query front
// door turns a descriptor plus a client into one HTTP exchange and a decoded
// result:
//
//	projects, err := api.Query(client, projects.Projects{})
//
// Query decodes into the endpoint's declared default model. QueryCustom
// decodes into any caller-chosen type using the same {"data": ...} envelope
// convention:
//
//	type idOnly struct {
//	    ID string `json:"id"`
//	}
//	info, err := api.QueryCustom[idOnly](client, users.Me{})
//
// Both exist in a blocking form and a context-aware form (QueryContext,
// QueryCustomContext) with identical semantics; the context applies only to
// the HTTP exchange.
//
// All failures surface as *Error with a code from the closed ErrorCode set.
// The package performs no retries, applies no timeouts, and logs nothing;
// those concerns belong to the transport and the surrounding application.
package api
