package security

import (
	"fmt"
	"time"

	"github.com/pulseprotocolorg-cyber/pulse-go/message"
	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/timestamp"
)

// Replay protection defaults: a message may be at most 5 minutes old,
// and at most 1 minute ahead of local time to absorb clock skew.
const (
	DefaultMaxAge     = 5 * time.Minute
	DefaultFutureSkew = time.Minute
)

// ReplayConfig parameterizes CheckReplay. The zero value gets the
// defaults; a nil Nonces store disables the nonce-uniqueness stage and
// leaves only the timestamp window check.
type ReplayConfig struct {
	MaxAge     time.Duration
	FutureSkew time.Duration
	Nonces     NonceStore
}

// ReplayResult reports the outcome of a replay check. A failed check
// is an expected protocol outcome, not an error: the caller decides
// whether to drop, log, or alert.
type ReplayResult struct {
	// IsValid is the overall verdict.
	IsValid bool
	// TimestampValid reports whether the timestamp fell inside the
	// accepted window.
	TimestampValid bool
	// NonceChecked reports whether a nonce store was consulted;
	// NonceUnique is meaningful only when it was.
	NonceChecked bool
	NonceUnique  bool
	// AgeSeconds is the message age at check time, negative for
	// future-dated messages. Zero when the timestamp did not parse.
	AgeSeconds float64
	// Reason describes the failure, empty when valid.
	Reason string
}

// CheckReplay examines a message for replay indicators: first the
// timestamp freshness window, then nonce uniqueness when a store is
// configured. The nonce is recorded in the store as a side effect of a
// passing check, so checking the same message twice fails the second
// time.
func CheckReplay(m *message.Message, cfg ReplayConfig) ReplayResult {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	if cfg.FutureSkew <= 0 {
		cfg.FutureSkew = DefaultFutureSkew
	}

	result := ReplayResult{IsValid: true, TimestampValid: true}

	ts := m.Envelope.Timestamp
	if ts == "" {
		result.IsValid = false
		result.TimestampValid = false
		result.Reason = "missing timestamp"
		return result
	}

	age, err := timestamp.Age(ts)
	if err != nil {
		result.IsValid = false
		result.TimestampValid = false
		result.Reason = fmt.Sprintf("invalid timestamp format: %v", err)
		return result
	}
	result.AgeSeconds = age.Seconds()

	if age > cfg.MaxAge {
		result.IsValid = false
		result.TimestampValid = false
		result.Reason = fmt.Sprintf("message too old (%.1fs > %.0fs)",
			age.Seconds(), cfg.MaxAge.Seconds())
		return result
	}
	if age < -cfg.FutureSkew {
		result.IsValid = false
		result.TimestampValid = false
		result.Reason = fmt.Sprintf("message from future (%.1fs)", age.Seconds())
		return result
	}

	if cfg.Nonces != nil {
		result.NonceChecked = true
		nonce := m.Envelope.Nonce
		if nonce == "" {
			result.IsValid = false
			result.NonceUnique = false
			result.Reason = "missing nonce"
			return result
		}
		if !cfg.Nonces.CheckAndSet(nonce) {
			result.IsValid = false
			result.NonceUnique = false
			result.Reason = "duplicate nonce detected"
			return result
		}
		result.NonceUnique = true
	}

	return result
}
