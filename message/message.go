package message

import (
	"github.com/google/uuid"

	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/timestamp"
)

// Version is the protocol version written into every new envelope.
// Decoders reject anything else.
const Version = "1.0"

// DefaultSender is used when a message is created without an explicit
// sender identity.
const DefaultSender = "default-agent"

// Envelope carries the routing and identity metadata of a message.
// Receiver and Signature are pointers so that the unset state
// serializes as an explicit null, matching the wire format.
//
// Timestamp stays a string on the struct. Codecs must round-trip it
// byte-for-byte, and re-deriving it from a parsed time.Time would lose
// the original rendering; parse on demand with pkg/timestamp instead.
type Envelope struct {
	Version   string  `json:"version" msgpack:"version"`
	Timestamp string  `json:"timestamp" msgpack:"timestamp"`
	Sender    string  `json:"sender" msgpack:"sender"`
	Receiver  *string `json:"receiver" msgpack:"receiver"`
	MessageID string  `json:"message_id" msgpack:"message_id"`
	Nonce     string  `json:"nonce" msgpack:"nonce"`
	Signature *string `json:"signature" msgpack:"signature"`
}

// Content is the semantic payload: an action concept, an optional
// object concept the action applies to, and free-form parameters.
type Content struct {
	// Action is a vocabulary concept identifier, e.g. "ACT.QUERY.DATA".
	// Never empty on a valid message.
	Action string `json:"action" msgpack:"action"`
	// Object is the optional target concept, e.g. "ENT.DATA.TEXT".
	// Nil when the action has no target.
	Object *string `json:"object" msgpack:"object"`
	// Parameters holds action-specific arguments. Always non-nil on a
	// constructed message so it serializes as {} rather than null.
	Parameters map[string]any `json:"parameters" msgpack:"parameters"`
}

// Message is a complete protocol message: envelope metadata, a type
// discriminant, and semantic content.
//
// Messages may be mutated freely before transmission. Once signed, any
// mutation other than setting the signature desynchronizes the
// signature from the content; verification then fails. That is the
// tamper-evidence mechanism, not an error at mutation time.
type Message struct {
	Envelope Envelope `json:"envelope" msgpack:"envelope"`
	Type     Type     `json:"type" msgpack:"type"`
	Content  Content  `json:"content" msgpack:"content"`
}

type options struct {
	target         *string
	parameters     map[string]any
	sender         string
	receiver       *string
	msgType        Type
	skipValidation bool
}

// Option is a functional option for configuring message construction.
type Option func(*options)

// WithTarget sets the object concept the action applies to.
func WithTarget(concept string) Option {
	return func(o *options) {
		o.target = &concept
	}
}

// WithParameters sets the action parameters.
func WithParameters(params map[string]any) Option {
	return func(o *options) {
		o.parameters = params
	}
}

// WithSender sets the sender agent identity.
func WithSender(sender string) Option {
	return func(o *options) {
		o.sender = sender
	}
}

// WithReceiver sets the intended receiver agent identity.
func WithReceiver(receiver string) Option {
	return func(o *options) {
		o.receiver = &receiver
	}
}

// WithType sets the message type instead of the default TypeRequest.
func WithType(t Type) Option {
	return func(o *options) {
		o.msgType = t
	}
}

// WithoutValidation skips validation during construction. Useful for
// building deliberately malformed messages in tests, or when the
// action concept is registered later.
func WithoutValidation() Option {
	return func(o *options) {
		o.skipValidation = true
	}
}

// New creates a message with a fresh envelope: new message ID and
// nonce, current timestamp, no signature. The message defaults to
// TypeRequest from DefaultSender; options override.
//
// Unless WithoutValidation is given, the message is validated before
// being returned, so a typo in the action concept fails here rather
// than at the receiver.
//
// Example:
//
//	msg, err := message.New("ACT.QUERY.DATA",
//	    message.WithTarget("ENT.DATA.TEXT"),
//	    message.WithParameters(map[string]any{"query": "status"}),
//	    message.WithSender("analytics-agent"))
func New(action string, opts ...Option) (*Message, error) {
	o := options{
		sender:  DefaultSender,
		msgType: TypeRequest,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parameters == nil {
		o.parameters = make(map[string]any)
	}

	msg := &Message{
		Envelope: Envelope{
			Version:   Version,
			Timestamp: timestamp.Now(),
			Sender:    o.sender,
			Receiver:  o.receiver,
			MessageID: uuid.New().String(),
			Nonce:     uuid.New().String(),
		},
		Type: o.msgType,
		Content: Content{
			Action:     action,
			Object:     o.target,
			Parameters: o.parameters,
		},
	}

	if !o.skipValidation {
		if err := Validate(msg, false); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

// Target returns the object concept and whether one is set.
func (m *Message) Target() (string, bool) {
	if m.Content.Object == nil {
		return "", false
	}
	return *m.Content.Object, true
}

// SetSignature stores a computed signature on the envelope. An empty
// string clears it.
func (m *Message) SetSignature(sig string) {
	if sig == "" {
		m.Envelope.Signature = nil
		return
	}
	m.Envelope.Signature = &sig
}

// Signature returns the stored signature and whether one is present.
func (m *Message) Signature() (string, bool) {
	if m.Envelope.Signature == nil {
		return "", false
	}
	return *m.Envelope.Signature, true
}

// Validate checks the message with freshness checking disabled. See
// the package-level Validate for the staged checks.
func (m *Message) Validate() error {
	return Validate(m, false)
}
