// Package codec serializes messages across three wire formats behind
// one facade:
//
//   - json: full-fidelity human-readable text, every field verbatim.
//   - binary: full-fidelity MessagePack, a few times smaller.
//   - compact: fixed 30-byte header plus optional msgpack parameter
//     tail, an order of magnitude smaller than JSON. Action and target
//     compress to vocabulary indices; sender, message ID, and nonce
//     compress to hashes and decode as deterministic hex placeholders.
//
// Usage:
//
//	c := codec.New()
//	data, err := c.Encode(msg, codec.FormatCompact)
//	back, err := c.Decode(data, codec.FormatAuto)
//
// Auto-detection reads the first byte ('{'/'[' JSON, 0x50 compact,
// otherwise binary) and is a heuristic; transports pass the format
// explicitly via their content-type hint.
//
// All codecs are stateless and safe for concurrent use. The compact
// format freezes a sorted snapshot of the vocabulary on first use, so
// vocabulary extensions must be registered before any compact
// encoding, identically on both ends of the wire.
package codec
