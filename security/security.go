package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
)

// Manager signs and verifies messages with HMAC-SHA256 over the
// canonical form. Both parties must hold the same secret key; the
// protocol carries no key exchange.
//
// A Manager is safe for concurrent use; the key is fixed at
// construction.
type Manager struct {
	key []byte
}

// NewManager creates a Manager with the given shared secret. An empty
// secret gets a fresh random key, useful for single-process setups and
// tests; distributed parties must share an explicit key.
func NewManager(secretKey string) *Manager {
	if secretKey == "" {
		secretKey = GenerateKey()
	}
	return &Manager{key: []byte(secretKey)}
}

// GenerateKey returns a new random signing key: 32 bytes from
// crypto/rand, URL-safe base64 without padding.
func GenerateKey() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; a broken
		// entropy source is not something to limp past.
		panic("security: crypto/rand unavailable: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

// Sign computes the hex HMAC-SHA256 signature of the message's
// canonical form, stores it on the envelope, and returns it. Signing
// is deterministic: the same message and key always produce the same
// signature.
//
// Any later mutation of the message (other than replacing the
// signature) makes the stored signature stale; Verify then fails.
func (s *Manager) Sign(m *message.Message) (string, error) {
	sig, err := s.compute(m)
	if err != nil {
		return "", err
	}
	m.SetSignature(sig)
	return sig, nil
}

// Verify checks the signature stored on the message's envelope against
// the message's current canonical form. A message with no stored
// signature verifies false, not as an error. The comparison is
// constant-time.
func (s *Manager) Verify(m *message.Message) (bool, error) {
	if m == nil {
		return false, errors.WrapSecurity(errors.ErrInvalidMessage, "security", "Verify", "nil message check")
	}
	stored, ok := m.Signature()
	if !ok {
		return false, nil
	}
	return s.VerifySignature(m, stored)
}

// VerifySignature checks an explicit signature against the message's
// current canonical form, ignoring any signature stored on the
// envelope. Used when the signature travels out of band.
func (s *Manager) VerifySignature(m *message.Message, expected string) (bool, error) {
	if expected == "" {
		return false, nil
	}
	computed, err := s.compute(m)
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(computed), []byte(expected)), nil
}

func (s *Manager) compute(m *message.Message) (string, error) {
	canonical, err := CanonicalBytes(m)
	if err != nil {
		return "", err
	}
	mac := hmac.New(sha256.New, s.key)
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
