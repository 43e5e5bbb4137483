package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pulseprotocolorg-cyber/pulse-go/codec"
	"github.com/pulseprotocolorg-cyber/pulse-go/config"
	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
	"github.com/pulseprotocolorg-cyber/pulse-go/metric"
	"github.com/pulseprotocolorg-cyber/pulse-go/security"
)

// FormatHeader is the content-type hint carried on the wire so the
// receiver need not rely on first-byte auto-detection.
const FormatHeader = "X-Pulse-Format"

// HTTP routes.
const (
	MessagePath = "/pulse/v1/message"
	HealthPath  = "/pulse/v1/health"
	MetricsPath = "/metrics"
)

// maxBodyBytes caps inbound request bodies.
const maxBodyBytes = 4 << 20

// Handler processes one inbound message and returns the response
// message, or an error mapped to an ERROR response for the caller.
type Handler func(ctx context.Context, msg *message.Message) (*message.Message, error)

// Server receives protocol messages over HTTP. Handlers are keyed by
// action concept; an inbound message dispatches to the handler
// registered for its action. Depending on configuration the server
// verifies signatures and applies replay protection before dispatch.
type Server struct {
	cfg     *config.Config
	codec   *codec.Codec
	logger  *slog.Logger
	metrics *metric.Registry

	sec    *security.Manager
	nonces *security.MemoryNonceStore

	mu       sync.RWMutex
	handlers map[string]Handler

	httpServer *http.Server
	startTime  time.Time

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// ServerOption configures optional server collaborators.
type ServerOption func(*Server)

// WithServerLogger replaces the default slog logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// WithServerMetrics attaches a metrics registry; without one the
// server runs unmetered and /metrics is not served.
func WithServerMetrics(registry *metric.Registry) ServerOption {
	return func(s *Server) { s.metrics = registry }
}

// NewServer builds a server from configuration. A signing key in the
// config enables signature verification; replay protection spins up an
// in-memory nonce store sized by the configured TTL.
func NewServer(cfg *config.Config, opts ...ServerOption) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		codec:    codec.New(),
		logger:   slog.Default().With("component", "transport.server"),
		handlers: make(map[string]Handler),
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.Security.SigningKey != "" {
		s.sec = security.NewManager(cfg.Security.SigningKey)
	}
	if cfg.Security.ReplayProtection {
		s.nonces = security.NewMemoryNonceStore(cfg.Security.NonceTTL, time.Minute)
	}

	return s, nil
}

// Handle registers a handler for an action concept, replacing any
// existing registration. The action "*" registers a catch-all that
// receives any message without a more specific handler.
func (s *Server) Handle(action string, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[action] = handler
}

// handlerFor returns the handler registered for the action, falling
// back to the "*" catch-all when present.
func (s *Server) handlerFor(action string) (Handler, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if handler, ok := s.handlers[action]; ok {
		return handler, true
	}
	handler, ok := s.handlers["*"]
	return handler, ok
}

// Mux returns the server's routing table. Exposed for tests and for
// embedding the endpoints into an existing HTTP server.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+MessagePath, s.handleMessage)
	mux.HandleFunc("GET "+HealthPath, s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET "+MetricsPath, s.metrics.Handler())
	}
	return mux
}

// Start begins serving and blocks until the listener fails or Shutdown
// is called. TLS is used when configured.
func (s *Server) Start() error {
	tlsConfig, err := ServerTLSConfig(s.cfg.Server.TLS)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	s.httpServer = &http.Server{
		Addr:         s.cfg.Server.Address(),
		Handler:      s.Mux(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		TLSConfig:    tlsConfig,
	}

	s.logger.Info("server starting",
		"addr", s.cfg.Server.Address(),
		"tls", tlsConfig != nil,
		"signatures", s.sec != nil,
		"replay_protection", s.nonces != nil)

	if tlsConfig != nil {
		err = s.httpServer.ListenAndServeTLS("", "")
	} else {
		err = s.httpServer.ListenAndServe()
	}
	if err == http.ErrServerClosed {
		return nil
	}
	return errors.WrapTransport(err, "transport", "Server.Start", "listener")
}

// Shutdown drains in-flight requests within the configured timeout and
// releases the nonce store.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.nonces != nil {
		defer s.nonces.Close()
	}
	if s.httpServer == nil {
		return nil
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	s.logger.Info("server shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.WrapTransport(err, "transport", "Server.Shutdown", "graceful shutdown")
	}
	return nil
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.requestCount.Add(1)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, http.StatusBadRequest, "", "body read failed", err)
		return
	}

	format := codec.Format(r.Header.Get(FormatHeader))
	msg, err := s.codec.Decode(body, format)
	if err != nil {
		if s.metrics != nil {
			s.metrics.Metrics.CodecErrors.WithLabelValues("decode", string(effectiveFormat(format, body))).Inc()
		}
		s.fail(w, http.StatusBadRequest, "", "decode failed", err)
		return
	}
	if s.metrics != nil {
		s.metrics.Metrics.DecodesTotal.WithLabelValues(string(effectiveFormat(format, body))).Inc()
	}

	if err := message.Validate(msg, false); err != nil {
		if s.metrics != nil {
			s.metrics.Metrics.ValidationFailures.Inc()
		}
		s.fail(w, http.StatusBadRequest, msg.Content.Action, "validation failed", err)
		return
	}

	if s.sec != nil && s.cfg.Security.RequireSignatures {
		ok, err := s.sec.Verify(msg)
		if err != nil || !ok {
			if s.metrics != nil {
				s.metrics.Metrics.SignatureFailures.Inc()
			}
			s.fail(w, http.StatusUnauthorized, msg.Content.Action, "signature verification failed", err)
			return
		}
	}

	if s.nonces != nil {
		result := security.CheckReplay(msg, security.ReplayConfig{
			MaxAge: s.cfg.Security.MaxMessageAge,
			Nonces: s.nonces,
		})
		if !result.IsValid {
			if s.metrics != nil {
				s.metrics.Metrics.ReplayRejections.WithLabelValues(replayRejectionLabel(result)).Inc()
			}
			s.fail(w, http.StatusConflict, msg.Content.Action, "replay check failed",
				replayError(result))
			return
		}
	}

	handler, ok := s.handlerFor(msg.Content.Action)
	if !ok {
		s.fail(w, http.StatusNotFound, msg.Content.Action, "no handler for action", nil)
		return
	}

	response, err := handler(r.Context(), msg)
	if err != nil {
		s.logger.Error("handler failed", "action", msg.Content.Action, "error", err)
		response = s.errorResponse(msg, err)
	}

	responseFormat := effectiveFormat(format, body)
	data, err := s.codec.Encode(response, responseFormat)
	if err != nil {
		if s.metrics != nil {
			s.metrics.Metrics.CodecErrors.WithLabelValues("encode", string(responseFormat)).Inc()
		}
		s.fail(w, http.StatusInternalServerError, msg.Content.Action, "response encode failed", err)
		return
	}
	if s.metrics != nil {
		s.metrics.Metrics.EncodesTotal.WithLabelValues(string(responseFormat)).Inc()
		s.metrics.Metrics.ServerRequests.WithLabelValues(msg.Content.Action, "ok").Inc()
		s.metrics.Metrics.RequestDuration.WithLabelValues(msg.Content.Action).
			Observe(time.Since(start).Seconds())
	}

	w.Header().Set(FormatHeader, string(responseFormat))
	w.Header().Set("Content-Type", contentTypeFor(responseFormat))
	w.WriteHeader(http.StatusOK)
	w.Write(data)

	s.logger.Debug("request handled",
		"action", msg.Content.Action,
		"sender", msg.Envelope.Sender,
		"duration", time.Since(start))
}

// errorResponse converts a handler failure into an ERROR message so
// the caller gets a protocol-level reply rather than a bare HTTP 500.
func (s *Server) errorResponse(request *message.Message, handlerErr error) *message.Message {
	response, err := message.New("META.STATUS.ERROR",
		message.WithType(message.TypeError),
		message.WithSender(s.cfg.Agent.ID),
		message.WithReceiver(request.Envelope.Sender),
		message.WithParameters(map[string]any{
			"request_id": request.Envelope.MessageID,
			"error":      handlerErr.Error(),
		}))
	if err != nil {
		// META.STATUS.ERROR is a built-in concept; construction only
		// fails if the vocabulary was stripped.
		panic("transport: cannot build error response: " + err.Error())
	}
	return response
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	uptime := time.Duration(0)
	if !s.startTime.IsZero() {
		uptime = time.Since(s.startTime)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":         "ok",
		"agent":          s.cfg.Agent.ID,
		"uptime_seconds": uptime.Seconds(),
		"requests":       s.requestCount.Load(),
		"errors":         s.errorCount.Load(),
	})
}

func (s *Server) fail(w http.ResponseWriter, status int, action, reason string, err error) {
	s.errorCount.Add(1)
	if s.metrics != nil && action != "" {
		s.metrics.Metrics.ServerRequests.WithLabelValues(action, "error").Inc()
	}
	s.logger.Warn("request rejected", "status", status, "reason", reason, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": reason})
}

// replayError converts a failed replay result into a classified error
// for logging; duplicate nonces carry the sentinel so log consumers
// can match on it.
func replayError(result security.ReplayResult) error {
	if replayRejectionLabel(result) == "duplicate_nonce" {
		return errors.WrapSecurity(
			fmt.Errorf("%s: %w", result.Reason, errors.ErrDuplicateNonce),
			"transport", "Server.handleMessage", "replay check")
	}
	return fmt.Errorf("%s", result.Reason)
}

// replayRejectionLabel collapses a replay result into a low-cardinality
// metric label; the full reason stays in logs.
func replayRejectionLabel(result security.ReplayResult) string {
	switch {
	case !result.TimestampValid:
		return "timestamp"
	case result.Reason == "missing nonce":
		return "missing_nonce"
	default:
		return "duplicate_nonce"
	}
}

// effectiveFormat resolves FormatAuto to the detected format so the
// response mirrors the request's encoding.
func effectiveFormat(requested codec.Format, body []byte) codec.Format {
	if requested != codec.FormatAuto {
		return requested
	}
	return codec.DetectFormat(body)
}

func contentTypeFor(format codec.Format) string {
	if format == codec.FormatJSON {
		return "application/json"
	}
	return "application/octet-stream"
}
