// Package message defines the protocol's message model.
//
// A Message combines an Envelope (routing and identity metadata), a
// Type discriminant, and Content (a vocabulary action, an optional
// object concept, and free-form parameters):
//
//	msg, err := message.New("ACT.QUERY.DATA",
//	    message.WithTarget("ENT.DATA.TEXT"),
//	    message.WithParameters(map[string]any{"query": "recent logs"}),
//	    message.WithSender("analytics-agent"))
//
// New stamps a fresh envelope: protocol version, UTC timestamp, random
// message ID and nonce, no signature. Validation runs during
// construction unless WithoutValidation is given; Validate can also be
// called directly on received messages, optionally with timestamp
// freshness checking.
//
// The codec and security packages operate on this model; this package
// has no serialization logic of its own beyond the struct tags the
// codecs rely on.
package message
