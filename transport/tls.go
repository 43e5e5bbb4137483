package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/pulseprotocolorg-cyber/pulse-go/config"
	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
)

// ServerTLSConfig builds a server-side tls.Config from configuration.
// Returns nil when TLS is disabled.
func ServerTLSConfig(cfg config.TLSConfig) (*tls.Config, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, errors.WrapTransport(err, "transport", "ServerTLSConfig", "load certificate")
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	if cfg.CAFile != "" {
		pool, err := loadCertPool(cfg.CAFile)
		if err != nil {
			return nil, err
		}
		tlsConfig.ClientCAs = pool
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return tlsConfig, nil
}

// ClientTLSConfig builds a client-side tls.Config from configuration.
// Returns nil when TLS is disabled. The system CA bundle is trusted
// first; CAFile adds an extra trusted CA on top.
func ClientTLSConfig(cfg config.TLSConfig) (*tls.Config, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	rootCAs, err := x509.SystemCertPool()
	if err != nil {
		rootCAs = x509.NewCertPool()
	}
	if cfg.CAFile != "" {
		caPEM, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, errors.WrapTransport(err, "transport", "ClientTLSConfig",
				fmt.Sprintf("read CA file %s", cfg.CAFile))
		}
		if !rootCAs.AppendCertsFromPEM(caPEM) {
			return nil, errors.WrapTransport(
				fmt.Errorf("no certificates parsed from %s", cfg.CAFile),
				"transport", "ClientTLSConfig", "parse CA certificate")
		}
	}
	tlsConfig.RootCAs = rootCAs

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, errors.WrapTransport(err, "transport", "ClientTLSConfig", "load client certificate")
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if cfg.InsecureSkipVerify {
		tlsConfig.InsecureSkipVerify = true
	}

	return tlsConfig, nil
}

func loadCertPool(caFile string) (*x509.CertPool, error) {
	caPEM, err := os.ReadFile(caFile)
	if err != nil {
		return nil, errors.WrapTransport(err, "transport", "loadCertPool",
			fmt.Sprintf("read CA file %s", caFile))
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caPEM) {
		return nil, errors.WrapTransport(
			fmt.Errorf("no certificates parsed from %s", caFile),
			"transport", "loadCertPool", "parse CA certificate")
	}
	return pool, nil
}
