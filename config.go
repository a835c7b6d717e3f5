package traduora

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/kbukum/traduora/api/auth"
)

const defaultTimeout = 30 * time.Second

// Config configures the traduora client.
type Config struct {
	// Host is the server host, e.g. "app.traduora.example". Required.
	Host string `validate:"required"`

	// Insecure switches the client to plain HTTP. Meant for local
	// development instances.
	Insecure bool

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration

	// TLS configures certificate handling. Nil uses system defaults.
	TLS *TLSConfig

	// Login is a token request exchanged for an access token during New.
	// Mutually exclusive with Token.
	Login *auth.Token

	// Token is a raw, pre-obtained access token. Mutually exclusive with
	// Login.
	Token string

	// Logger receives debug logging for dispatched calls. Nil disables
	// logging.
	Logger *zerolog.Logger
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("traduora: invalid config: %w", err)
	}
	if c.Login != nil && c.Token != "" {
		return fmt.Errorf("traduora: Login and Token are mutually exclusive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
