package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
)

// EnvPrefix is the prefix of every environment override, e.g.
// PULSE_AGENT_ID.
const EnvPrefix = "PULSE"

// Config is the complete application configuration for a protocol
// agent: identity, signing, HTTP server and client, and the optional
// NATS transport.
type Config struct {
	Agent    AgentConfig    `json:"agent"`
	Security SecurityConfig `json:"security"`
	Server   ServerConfig   `json:"server,omitempty"`
	Client   ClientConfig   `json:"client,omitempty"`
	NATS     NATSConfig     `json:"nats,omitempty"`
}

// AgentConfig identifies this agent on the wire.
type AgentConfig struct {
	// ID becomes the envelope sender of outgoing messages.
	ID string `json:"id"`
	// DefaultFormat is the wire format used when a caller does not
	// pick one: "json", "binary", or "compact".
	DefaultFormat string `json:"default_format,omitempty"`
}

// SecurityConfig holds signing and replay settings.
type SecurityConfig struct {
	// SigningKey is the shared HMAC secret. Empty disables signing.
	SigningKey string `json:"signing_key,omitempty"`
	// RequireSignatures makes the server reject unsigned or
	// unverifiable messages.
	RequireSignatures bool `json:"require_signatures,omitempty"`
	// ReplayProtection enables the timestamp window and nonce
	// deduplication on ingress.
	ReplayProtection bool          `json:"replay_protection,omitempty"`
	MaxMessageAge    time.Duration `json:"max_message_age,omitempty"`
	NonceTTL         time.Duration `json:"nonce_ttl,omitempty"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `json:"host,omitempty"`
	Port            int           `json:"port,omitempty"`
	ReadTimeout     time.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    time.Duration `json:"write_timeout,omitempty"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout,omitempty"`
	TLS             TLSConfig     `json:"tls,omitempty"`
}

// ClientConfig holds the HTTP client settings.
type ClientConfig struct {
	ServerURL  string        `json:"server_url,omitempty"`
	Timeout    time.Duration `json:"timeout,omitempty"`
	MaxRetries int           `json:"max_retries,omitempty"`
	RetryDelay time.Duration `json:"retry_delay,omitempty"`
	TLS        TLSConfig     `json:"tls,omitempty"`
}

// TLSConfig points at certificate material on disk.
type TLSConfig struct {
	Enabled  bool   `json:"enabled"`
	CertFile string `json:"cert_file,omitempty"`
	KeyFile  string `json:"key_file,omitempty"`
	CAFile   string `json:"ca_file,omitempty"`
	// InsecureSkipVerify disables server certificate verification on
	// the client side. Test environments only.
	InsecureSkipVerify bool `json:"insecure_skip_verify,omitempty"`
}

// NATSConfig defines the optional NATS transport connection.
type NATSConfig struct {
	URLs          []string      `json:"urls,omitempty"`
	MaxReconnects int           `json:"max_reconnects,omitempty"`
	ReconnectWait time.Duration `json:"reconnect_wait,omitempty"`
	Username      string        `json:"username,omitempty"`
	Password      string        `json:"password,omitempty"`
	Token         string        `json:"token,omitempty"`
}

// Default returns the configuration used when no file is given: a
// local development agent with signing and replay protection off.
func Default() *Config {
	return &Config{
		Agent: AgentConfig{
			ID:            "default-agent",
			DefaultFormat: "json",
		},
		Security: SecurityConfig{
			MaxMessageAge: 5 * time.Minute,
			NonceTTL:      10 * time.Minute,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Client: ClientConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RetryDelay: 100 * time.Millisecond,
		},
	}
}

// Load reads a JSON config file, fills unset fields from Default,
// applies PULSE_* environment overrides, and validates. An empty path
// yields the defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapValidation(err, "config", "Load", "config file read")
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapValidation(err, "config", "Load", "config file parse")
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides layers PULSE_* environment variables over the
// loaded configuration. Environment wins over file.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv(EnvPrefix + "_AGENT_ID"); val != "" {
		cfg.Agent.ID = val
	}
	if val := os.Getenv(EnvPrefix + "_AGENT_FORMAT"); val != "" {
		cfg.Agent.DefaultFormat = val
	}
	if val := os.Getenv(EnvPrefix + "_SIGNING_KEY"); val != "" {
		cfg.Security.SigningKey = val
	}
	if val := os.Getenv(EnvPrefix + "_SERVER_HOST"); val != "" {
		cfg.Server.Host = val
	}
	if val := os.Getenv(EnvPrefix + "_SERVER_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = port
		}
	}
	if val := os.Getenv(EnvPrefix + "_CLIENT_URL"); val != "" {
		cfg.Client.ServerURL = val
	}
	if val := os.Getenv(EnvPrefix + "_NATS_URLS"); val != "" {
		cfg.NATS.URLs = strings.Split(val, ",")
	}
	if val := os.Getenv(EnvPrefix + "_NATS_USERNAME"); val != "" {
		cfg.NATS.Username = val
	}
	if val := os.Getenv(EnvPrefix + "_NATS_PASSWORD"); val != "" {
		cfg.NATS.Password = val
	}
	if val := os.Getenv(EnvPrefix + "_NATS_TOKEN"); val != "" {
		cfg.NATS.Token = val
	}
}

// Validate checks cross-field consistency before the config is used.
func (c *Config) Validate() error {
	if c.Agent.ID == "" {
		return errors.WrapValidation(
			fmt.Errorf("agent.id is required: %w", errors.ErrMissingConfig),
			"config", "Validate", "agent identity check")
	}

	switch c.Agent.DefaultFormat {
	case "", "json", "binary", "compact":
	default:
		return errors.WrapValidation(
			fmt.Errorf("agent.default_format %q, want json, binary, or compact: %w",
				c.Agent.DefaultFormat, errors.ErrInvalidConfig),
			"config", "Validate", "format check")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.WrapValidation(
			fmt.Errorf("server.port %d out of range: %w", c.Server.Port, errors.ErrInvalidConfig),
			"config", "Validate", "server port check")
	}

	if c.Security.RequireSignatures && c.Security.SigningKey == "" {
		return errors.WrapValidation(
			fmt.Errorf("security.require_signatures needs security.signing_key: %w", errors.ErrMissingConfig),
			"config", "Validate", "signing key check")
	}

	if c.Security.ReplayProtection && c.Security.NonceTTL > 0 &&
		c.Security.NonceTTL < c.Security.MaxMessageAge {
		return errors.WrapValidation(
			fmt.Errorf("security.nonce_ttl %s shorter than max_message_age %s, evicted nonces could be replayed: %w",
				c.Security.NonceTTL, c.Security.MaxMessageAge, errors.ErrInvalidConfig),
			"config", "Validate", "replay window check")
	}

	for _, tls := range []struct {
		name string
		cfg  TLSConfig
	}{
		{"server.tls", c.Server.TLS},
		{"client.tls", c.Client.TLS},
	} {
		if tls.cfg.Enabled && tls.name == "server.tls" && (tls.cfg.CertFile == "" || tls.cfg.KeyFile == "") {
			return errors.WrapValidation(
				fmt.Errorf("%s requires cert_file and key_file: %w", tls.name, errors.ErrMissingConfig),
				"config", "Validate", "tls check")
		}
	}

	return nil
}

// Address returns the server listen address, host:port.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
