package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/pulseprotocolorg-cyber/pulse-go/codec"
	"github.com/pulseprotocolorg-cyber/pulse-go/config"
	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
	"github.com/pulseprotocolorg-cyber/pulse-go/metric"
	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/retry"
	"github.com/pulseprotocolorg-cyber/pulse-go/security"
)

// Client sends protocol messages to a server over HTTP with bounded
// retry. Transport failures and 5xx responses retry with exponential
// backoff; 4xx responses, signing failures, and decode failures are
// permanent and fail immediately.
type Client struct {
	serverURL  string
	format     codec.Format
	codec      *codec.Codec
	httpClient *http.Client
	retryCfg   retry.Config
	logger     *slog.Logger
	metrics    *metric.Registry

	sec *security.Manager

	stats clientStats
}

type clientStats struct {
	requestsSent  atomic.Int64
	successes     atomic.Int64
	failures      atomic.Int64
	retries       atomic.Int64
	bytesSent     atomic.Int64
	bytesReceived atomic.Int64
}

// ClientStats is a point-in-time snapshot of client traffic counters.
type ClientStats struct {
	RequestsSent  int64
	Successes     int64
	Failures      int64
	Retries       int64
	BytesSent     int64
	BytesReceived int64
}

// ClientOption configures optional client collaborators.
type ClientOption func(*Client)

// WithClientLogger replaces the default slog logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithClientMetrics attaches a metrics registry.
func WithClientMetrics(registry *metric.Registry) ClientOption {
	return func(c *Client) { c.metrics = registry }
}

// WithFormat overrides the wire format from the config.
func WithFormat(format codec.Format) ClientOption {
	return func(c *Client) { c.format = format }
}

// NewClient builds a client from configuration. A signing key in the
// config makes the client sign every outgoing message.
func NewClient(cfg *config.Config, opts ...ClientOption) (*Client, error) {
	if cfg.Client.ServerURL == "" {
		return nil, errors.WrapValidation(
			fmt.Errorf("client.server_url is required: %w", errors.ErrMissingConfig),
			"transport", "NewClient", "config check")
	}

	tlsConfig, err := ClientTLSConfig(cfg.Client.TLS)
	if err != nil {
		return nil, err
	}
	httpTransport := http.DefaultTransport.(*http.Transport).Clone()
	if tlsConfig != nil {
		httpTransport.TLSClientConfig = tlsConfig
	}

	format := codec.Format(cfg.Agent.DefaultFormat)
	if format == codec.FormatAuto {
		format = codec.FormatJSON
	}

	c := &Client{
		serverURL: cfg.Client.ServerURL,
		format:    format,
		codec:     codec.New(),
		httpClient: &http.Client{
			Timeout:   cfg.Client.Timeout,
			Transport: httpTransport,
		},
		retryCfg: retry.Config{
			MaxAttempts:  cfg.Client.MaxRetries,
			InitialDelay: cfg.Client.RetryDelay,
			AddJitter:    true,
		},
		logger: slog.Default().With("component", "transport.client"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if cfg.Security.SigningKey != "" {
		c.sec = security.NewManager(cfg.Security.SigningKey)
	}

	return c, nil
}

// Send signs (when configured), encodes, and posts the message,
// returning the decoded response. Retries transient failures per the
// configured policy; the context bounds the whole exchange including
// backoff waits.
func (c *Client) Send(ctx context.Context, msg *message.Message) (*message.Message, error) {
	if c.sec != nil {
		if _, err := c.sec.Sign(msg); err != nil {
			return nil, retry.NonRetryable(err)
		}
		if c.metrics != nil {
			c.metrics.Metrics.SignaturesCreated.Inc()
		}
	}

	data, err := c.codec.Encode(msg, c.format)
	if err != nil {
		c.stats.failures.Add(1)
		if c.metrics != nil {
			c.metrics.Metrics.CodecErrors.WithLabelValues("encode", string(c.format)).Inc()
		}
		return nil, err
	}
	if c.metrics != nil {
		c.metrics.Metrics.EncodesTotal.WithLabelValues(string(c.format)).Inc()
	}

	attempt := 0
	response, err := retry.DoWithResult(ctx, c.retryCfg, func() (*message.Message, error) {
		attempt++
		if attempt > 1 {
			c.stats.retries.Add(1)
			if c.metrics != nil {
				c.metrics.Metrics.ClientRetries.Inc()
			}
		}
		return c.post(ctx, data)
	})

	if err != nil {
		c.stats.failures.Add(1)
		if c.metrics != nil {
			c.metrics.Metrics.ClientRequests.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	c.stats.successes.Add(1)
	if c.metrics != nil {
		c.metrics.Metrics.ClientRequests.WithLabelValues("ok").Inc()
	}
	return response, nil
}

// post performs one HTTP exchange. Errors are wrapped so the retry
// layer can distinguish permanent failures from transient ones.
func (c *Client) post(ctx context.Context, data []byte) (*message.Message, error) {
	c.stats.requestsSent.Add(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.serverURL+MessagePath, bytes.NewReader(data))
	if err != nil {
		return nil, retry.NonRetryable(
			errors.WrapTransport(err, "transport", "Client.post", "request build"))
	}
	req.Header.Set(FormatHeader, string(c.format))
	req.Header.Set("Content-Type", contentTypeFor(c.format))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapTransport(err, "transport", "Client.post", "http request")
	}
	defer resp.Body.Close()

	c.stats.bytesSent.Add(int64(len(data)))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapTransport(err, "transport", "Client.post", "response read")
	}
	c.stats.bytesReceived.Add(int64(len(body)))

	switch {
	case resp.StatusCode >= 500:
		// Server-side trouble may clear up; retriable.
		return nil, errors.WrapTransport(
			fmt.Errorf("status %d: %w", resp.StatusCode, errors.ErrServerUnavailable),
			"transport", "Client.post", "server response")
	case resp.StatusCode >= 400:
		// The request itself was rejected; retrying the same bytes
		// cannot succeed.
		return nil, retry.NonRetryable(errors.WrapTransport(
			fmt.Errorf("status %d, body %q: %w", resp.StatusCode, truncate(body, 200), errors.ErrRequestRejected),
			"transport", "Client.post", "server response"))
	}

	responseFormat := codec.Format(resp.Header.Get(FormatHeader))
	response, err := c.codec.Decode(body, responseFormat)
	if err != nil {
		if c.metrics != nil {
			c.metrics.Metrics.CodecErrors.WithLabelValues("decode", string(effectiveFormat(responseFormat, body))).Inc()
		}
		return nil, retry.NonRetryable(err)
	}
	return response, nil
}

// Stats returns a snapshot of the client's traffic counters.
func (c *Client) Stats() ClientStats {
	return ClientStats{
		RequestsSent:  c.stats.requestsSent.Load(),
		Successes:     c.stats.successes.Load(),
		Failures:      c.stats.failures.Load(),
		Retries:       c.stats.retries.Load(),
		BytesSent:     c.stats.bytesSent.Load(),
		BytesReceived: c.stats.bytesReceived.Load(),
	}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
