// Package errors provides standardized error handling patterns for the PULSE
// protocol stack.
//
// # Overview
//
// The package implements a five-kind error taxonomy shaped by how PULSE
// failures must be handled: Encoding (could not serialize a valid message),
// Decoding (malformed input), Security (signature absent or mismatched),
// Validation (message violates protocol rules), and Transport (network
// failure).
//
// The taxonomy drives retry policy: only Transport errors are retriable.
// A decode failure means the bytes are bad and will stay bad; a signature
// failure means the message must be rejected; retrying either would only
// mask the problem.
//
// # Quick Start
//
// Return standard error variables for known conditions:
//
//	if data[0] != compactMagic {
//	    return errors.ErrBadMagic
//	}
//
// Wrap errors with component context:
//
//	if err := msgpack.Unmarshal(tail, &params); err != nil {
//	    return errors.WrapDecoding(err, "CompactCodec", "Decode", "parameter tail")
//	}
//
// Make retry decisions from the kind, never from message text:
//
//	if err := client.Send(ctx, msg); err != nil {
//	    if errors.IsRetriable(err) {
//	        // transport failure: retry with backoff
//	    } else {
//	        // permanent: reject and surface
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// The Wrap family applies this pattern while preserving the kind through
// the chain, supporting errors.Is(), errors.As(), and standard unwrapping.
//
// Replay-protection outcomes are deliberately NOT errors: replay checking
// is a policy decision the caller may want to log or audit, so it is
// reported as a structured result (see the security package).
package errors
