// Package transport moves protocol messages between agents over HTTP
// and NATS.
//
// Server dispatches inbound messages to handlers keyed by action
// concept, optionally verifying signatures and applying replay
// protection on ingress, and serves health and Prometheus metrics
// endpoints. Client posts messages with bounded exponential-backoff
// retry, treating 4xx responses and decode failures as permanent.
// Both carry the wire format as an X-Pulse-Format header so receivers
// need not rely on first-byte auto-detection.
//
// Publisher and Subscriber map messages onto NATS subjects of the form
// pulse.<TYPE>.<action>, letting consumers use NATS wildcards over
// message types and action categories.
package transport
