package traduora

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig holds certificate settings for the connection to the server.
type TLSConfig struct {
	// SkipVerify disables server certificate verification. Meant for
	// self-signed development instances.
	SkipVerify bool

	// CAFile is the path to a CA certificate file for verifying the server.
	CAFile string

	// CertFile is the path to a client TLS certificate file (for mTLS).
	CertFile string

	// KeyFile is the path to the client TLS key file (for mTLS).
	KeyFile string

	// ServerName overrides the server name used for certificate
	// verification.
	ServerName string

	// MinVersion is the minimum TLS version. Defaults to TLS 1.2.
	MinVersion uint16
}

// Build creates a *tls.Config from the configuration. Returns nil if no
// setting is configured.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if c == nil || !c.hasSettings() {
		return nil, nil
	}

	minVersion := c.MinVersion
	if minVersion == 0 {
		minVersion = tls.VersionTLS12
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.SkipVerify,
		ServerName:         c.ServerName,
		MinVersion:         minVersion,
	}

	if c.CAFile != "" {
		ca, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("traduora: read CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(ca) {
			return nil, fmt.Errorf("traduora: parse CA certificate")
		}
		cfg.RootCAs = pool
	}

	if c.CertFile != "" && c.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("traduora: load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}

// Validate checks that the TLS configuration is consistent.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if (c.CertFile != "") != (c.KeyFile != "") {
		return fmt.Errorf("traduora: both CertFile and KeyFile must be provided together")
	}
	return nil
}

func (c *TLSConfig) hasSettings() bool {
	return c.SkipVerify || c.CAFile != "" || c.CertFile != "" || c.ServerName != "" ||
		c.MinVersion != 0
}
