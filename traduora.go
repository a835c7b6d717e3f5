package traduora

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/kbukum/traduora/api"
	"github.com/kbukum/traduora/api/auth"
	"github.com/kbukum/traduora/scope"
)

// Login is a token request used to authenticate a client at construction.
// The shorter name improves readability when building a client.
type Login = auth.Token

// PasswordLogin creates a Login for a normal user account.
func PasswordLogin(mail, password string) Login {
	return auth.PasswordToken(mail, password)
}

// ClientCredentialsLogin creates a Login for a project client.
func ClientCredentialsLogin(clientID, clientSecret string) Login {
	return auth.ClientCredentialsToken(clientID, clientSecret)
}

// Traduora is a client for a single traduora instance and user. Separate
// users should use separate instances.
//
// All fields are immutable after construction, so a single client may be
// shared freely across goroutines.
type Traduora struct {
	httpClient *http.Client
	restURL    *url.URL
	scope      scope.Scope
	logger     zerolog.Logger
}

// New creates a traduora client. If the config carries a Login, it is
// exchanged for an access token before New returns; if it carries a raw
// Token, that token is used directly; otherwise the client is anonymous and
// can only call endpoints that accept unauthenticated access.
func New(cfg Config) (*Traduora, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scheme := "https"
	if cfg.Insecure {
		scheme = "http"
	}
	restURL, err := url.Parse(fmt.Sprintf("%s://%s/api/v1/", scheme, cfg.Host))
	if err != nil {
		return nil, fmt.Errorf("traduora: parse base url: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	t := &Traduora{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		restURL: restURL,
		scope:   scope.Anonymous{},
		logger:  logger,
	}

	switch {
	case cfg.Token != "":
		t.scope = scope.NewToken(cfg.Token)
	case cfg.Login != nil:
		token, err := api.Query(t, *cfg.Login)
		if err != nil {
			return nil, fmt.Errorf("traduora: token exchange: %w", err)
		}
		t.scope = scope.NewToken(string(token.AccessToken))
	}

	return t, nil
}

// RestEndpoint implements api.RestClient. It joins an endpoint path to the
// client's API root.
func (t *Traduora) RestEndpoint(endpoint string) (*url.URL, error) {
	return t.restURL.Parse(endpoint)
}

// AccessLevel implements api.RestClient.
func (t *Traduora) AccessLevel() scope.Level {
	return t.scope.Level()
}

// Do implements api.Client.
func (t *Traduora) Do(req *api.Request) (*api.Response, error) {
	return t.do(context.Background(), req)
}

// DoContext implements api.ContextClient.
func (t *Traduora) DoContext(ctx context.Context, req *api.Request) (*api.Response, error) {
	return t.do(ctx, req)
}

// do performs exactly one HTTP exchange. Requests marked sensitive are
// excluded from debug logging.
func (t *Traduora) do(ctx context.Context, req *api.Request) (*api.Response, error) {
	if !req.Sensitive {
		t.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("rest api call")
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if err := t.scope.SetHeader(httpReq.Header); err != nil {
		return nil, err
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &api.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
