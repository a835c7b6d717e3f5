// Package traduora is a typed client for the traduora translation-management
// REST API.
//
// A client is built from a Config and optionally authenticated at
// construction by exchanging login credentials for an access token:
//
//	login := traduora.PasswordLogin("user@mail.example", "letmeinpls")
//	client, err := traduora.New(traduora.Config{
//	    Host:  "app.traduora.example",
//	    Login: &login,
//	})
//
// Endpoints are plain descriptor values dispatched through the generic query
// front door in the api package:
//
//	all, err := api.Query(client, projects.Projects{})
//	term, err := api.Query(client, terms.NewCreateTerm("menu.title", projectID))
//
// The client performs exactly one HTTP exchange per query; retries, caching,
// and rate limiting are the caller's responsibility.
package traduora
