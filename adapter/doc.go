// Package adapter bridges protocol messages to external service APIs.
//
// A Translator implements the three conversion points for one service:
// ToNative (protocol message to native request), CallAPI (execute the
// native call), and FromNative (native response back to a protocol
// message). A Bridge wraps a Translator and runs the full pipeline,
// stamping response envelopes, tracking traffic counters, and mapping
// service failures onto the protocol's error concepts:
//
//	bridge := adapter.New("weather", &weatherTranslator{client: api})
//	response, err := bridge.Send(ctx, msg)
//
// Translators holding persistent connections additionally implement
// Connector; translators handling only some actions implement
// ActionLister. Both are optional.
package adapter
