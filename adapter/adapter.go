package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/retry"
	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/timestamp"
)

// Translator converts between protocol messages and one external
// service's native API. Implementations own their service-specific
// configuration (endpoints, credentials, timeouts).
type Translator interface {
	// ToNative converts a protocol message into the service's native
	// request shape.
	ToNative(msg *message.Message) (any, error)
	// CallAPI executes the native request and returns the raw native
	// response.
	CallAPI(ctx context.Context, nativeRequest any) (any, error)
	// FromNative converts a native response back into a protocol
	// message. The bridge stamps the response envelope afterwards.
	FromNative(nativeResponse any) (*message.Message, error)
}

// Connector is implemented by translators that hold persistent
// connections (websockets, connection pools). Translators without it
// are treated as connectionless.
type Connector interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// ActionLister optionally declares which action concepts a translator
// handles. An empty list, or not implementing the interface, accepts
// every action.
type ActionLister interface {
	SupportedActions() []string
}

// errorConcepts maps HTTP-style status codes to protocol error
// concepts.
var errorConcepts = map[int]string{
	400: "META.ERROR.VALIDATION",
	401: "META.ERROR.AUTH",
	403: "META.ERROR.AUTH",
	404: "META.ERROR.NOT_FOUND",
	408: "META.ERROR.TIMEOUT",
	429: "META.ERROR.RATE_LIMIT",
	500: "META.ERROR.INTERNAL",
	502: "META.ERROR.INTERNAL",
	503: "META.ERROR.UNAVAILABLE",
	504: "META.ERROR.TIMEOUT",
}

// MapErrorCode maps an HTTP status code to a protocol error concept.
// Unmapped codes yield META.ERROR.UNKNOWN.
func MapErrorCode(statusCode int) string {
	if concept, ok := errorConcepts[statusCode]; ok {
		return concept
	}
	return "META.ERROR.UNKNOWN"
}

// Bridge runs the translation pipeline for one external service:
// protocol message in, native request out, native response back,
// protocol message returned. Counters and connection state live here
// so translators stay stateless where they can.
type Bridge struct {
	name       string
	translator Translator
	retryCfg   retry.Config
	logger     *slog.Logger

	connected   atomic.Bool
	requests    atomic.Int64
	errs        atomic.Int64
	lastRequest atomic.Value // string
}

// Option configures optional bridge collaborators.
type Option func(*Bridge)

// WithRetry bounds retries around the translator's API call. Without
// it the call runs exactly once.
func WithRetry(cfg retry.Config) Option {
	return func(b *Bridge) { b.retryCfg = cfg }
}

// WithLogger replaces the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) { b.logger = logger }
}

// New builds a bridge around a translator. The name identifies the
// target service and becomes part of the adapter's sender ID.
func New(name string, translator Translator, opts ...Option) *Bridge {
	b := &Bridge{
		name:       name,
		translator: translator,
		retryCfg:   retry.Config{MaxAttempts: 1},
		logger:     slog.Default().With("component", "adapter."+name),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the adapter's service name.
func (b *Bridge) Name() string { return b.name }

// SenderID is the envelope sender stamped on responses this bridge
// produces.
func (b *Bridge) SenderID() string { return "adapter:" + b.name }

// Send routes one message through the translation pipeline and returns
// the service's reply as a protocol RESPONSE addressed back to the
// original sender. Translation failures are permanent; API call
// failures retry per the configured policy unless wrapped NonRetryable
// by the translator.
func (b *Bridge) Send(ctx context.Context, msg *message.Message) (*message.Message, error) {
	b.requests.Add(1)
	b.lastRequest.Store(timestamp.Now())

	if !b.Supports(msg.Content.Action) {
		b.errs.Add(1)
		return nil, errors.WrapValidation(
			fmt.Errorf("action %s not handled by adapter %s", msg.Content.Action, b.name),
			"adapter", "Bridge.Send", "action check")
	}

	nativeRequest, err := b.translator.ToNative(msg)
	if err != nil {
		b.errs.Add(1)
		return nil, errors.WrapEncoding(err, "adapter", "Bridge.Send", "native translation")
	}

	nativeResponse, err := retry.DoWithResult(ctx, b.retryCfg, func() (any, error) {
		return b.translator.CallAPI(ctx, nativeRequest)
	})
	if err != nil {
		b.errs.Add(1)
		b.logger.Error("api call failed", "action", msg.Content.Action, "error", err)
		return nil, errors.WrapTransport(err, "adapter", "Bridge.Send", "api call")
	}

	response, err := b.translator.FromNative(nativeResponse)
	if err != nil {
		b.errs.Add(1)
		return nil, errors.WrapDecoding(err, "adapter", "Bridge.Send", "response translation")
	}

	receiver := msg.Envelope.Sender
	response.Type = message.TypeResponse
	response.Envelope.Sender = b.SenderID()
	response.Envelope.Receiver = &receiver
	return response, nil
}

// Connect establishes the translator's persistent connection when it
// holds one; connectionless translators just flip the state.
func (b *Bridge) Connect(ctx context.Context) error {
	if connector, ok := b.translator.(Connector); ok {
		if err := connector.Connect(ctx); err != nil {
			return errors.WrapTransport(
				fmt.Errorf("adapter %s: %w: %w", b.name, errors.ErrNoConnection, err),
				"adapter", "Bridge.Connect", "service connect")
		}
	}
	b.connected.Store(true)
	return nil
}

// Disconnect releases the translator's connection.
func (b *Bridge) Disconnect(ctx context.Context) error {
	b.connected.Store(false)
	if connector, ok := b.translator.(Connector); ok {
		if err := connector.Disconnect(ctx); err != nil {
			return errors.WrapTransport(err, "adapter", "Bridge.Disconnect", "service disconnect")
		}
	}
	return nil
}

// Connected reports whether Connect has been called without a
// subsequent Disconnect.
func (b *Bridge) Connected() bool { return b.connected.Load() }

// Supports reports whether the translator handles the action. A
// translator that declares no actions accepts all of them.
func (b *Bridge) Supports(action string) bool {
	lister, ok := b.translator.(ActionLister)
	if !ok {
		return true
	}
	actions := lister.SupportedActions()
	if len(actions) == 0 {
		return true
	}
	return slices.Contains(actions, action)
}

// Health is a point-in-time snapshot of the bridge's traffic and
// connection state.
type Health struct {
	Adapter     string  `json:"adapter"`
	Connected   bool    `json:"connected"`
	Requests    int64   `json:"requests"`
	Errors      int64   `json:"errors"`
	LastRequest string  `json:"last_request,omitempty"`
	ErrorRate   float64 `json:"error_rate"`
}

// Health reports the bridge's current state.
func (b *Bridge) Health() Health {
	requests := b.requests.Load()
	errorCount := b.errs.Load()
	health := Health{
		Adapter:   b.name,
		Connected: b.connected.Load(),
		Requests:  requests,
		Errors:    errorCount,
	}
	if last, ok := b.lastRequest.Load().(string); ok {
		health.LastRequest = last
	}
	if requests > 0 {
		health.ErrorRate = float64(errorCount) / float64(requests)
	}
	return health
}

// ErrorResponse builds a standardized ERROR message for a failed
// adapter operation. The error concept usually comes from
// MapErrorCode; concepts outside the built-in vocabulary (AUTH,
// UNKNOWN) are permitted here, so construction skips validation.
func (b *Bridge) ErrorResponse(errorConcept, description string, original *message.Message) (*message.Message, error) {
	parameters := map[string]any{
		"error":   description,
		"adapter": b.name,
	}
	opts := []message.Option{
		message.WithType(message.TypeError),
		message.WithSender(b.SenderID()),
		message.WithParameters(parameters),
		message.WithoutValidation(),
	}
	if original != nil {
		opts = append(opts, message.WithReceiver(original.Envelope.Sender))
		parameters["in_reply_to"] = original.Envelope.MessageID
	}
	return message.New(errorConcept, opts...)
}
