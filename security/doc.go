// Package security provides message integrity and replay defense,
// independent of any transport.
//
// Manager signs and verifies messages with HMAC-SHA256 over a
// deterministic canonical form (see CanonicalBytes). Signing stores a
// hex signature on the envelope; verification recomputes the canonical
// form and compares in constant time, so any post-signing mutation of
// the message fails verification.
//
//	sec := security.NewManager(sharedKey)
//	sig, err := sec.Sign(msg)
//	ok, err := sec.Verify(msg)
//
// CheckReplay guards against message replay with a timestamp freshness
// window plus optional nonce deduplication through a NonceStore.
// Replay rejection is reported as a ReplayResult value rather than an
// error, because a replayed message is an expected adversarial input,
// not a fault in the caller's program.
//
// KeyManager is a small per-agent key registry for multi-party setups.
package security
