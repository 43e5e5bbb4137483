// Package pulse is the Go implementation of the PULSE semantic message
// protocol: messages whose actions and targets are concepts drawn from
// a shared hierarchical vocabulary, so that agents agree on meaning,
// not just on syntax.
//
// # Message Model
//
// A message has three parts:
//
//   - Envelope: protocol version, timestamp, sender, optional receiver,
//     message ID, nonce, and optional signature
//   - Type: REQUEST, RESPONSE, ERROR, or STATUS
//   - Content: an action concept, an optional target concept, and free
//     parameters
//
// Messages are built with the message package and validated against
// the vocabulary:
//
//	msg, err := message.New("ACT.QUERY.DATA",
//		message.WithTarget("ENT.DATA.TEXT"),
//		message.WithParameters(map[string]any{"query": "hello"}))
//
// # Wire Formats
//
// The codec package serializes messages in three formats behind one
// facade: human-readable JSON, MessagePack binary, and a 30-byte
// compact form that replaces vocabulary concepts with table indices.
// Decoding auto-detects the format from the first byte when the caller
// does not name one.
//
// # Security
//
// The security package signs messages with HMAC-SHA256 over a
// canonical serialization, and checks replays with a timestamp window
// plus a nonce store. Verification never mutates the message.
//
// # Transport
//
// The transport package carries messages over HTTP (request/response
// with retry) and NATS (publish/subscribe on per-type subjects), with
// TLS on both.
//
// # Layout
//
//   - message: envelope, content, types, validation
//   - vocabulary: the concept registry
//   - codec: JSON, binary, and compact serialization
//   - security: signing, verification, replay protection, key storage
//   - transport: HTTP server/client, NATS pub/sub, TLS config
//   - config: JSON file + environment configuration
//   - metric: Prometheus instrumentation
//   - errors: classified error wrapping
//   - cmd/pulse: the command-line tool
package pulse
