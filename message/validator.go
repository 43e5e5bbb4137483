package message

import (
	"fmt"
	"strings"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/timestamp"
	"github.com/pulseprotocolorg-cyber/pulse-go/vocabulary"
)

// Freshness limits used when validation includes the timestamp check.
// A message older than MaxMessageAge, or timestamped further than
// MaxClockSkew into the future, is rejected.
const (
	MaxMessageAge = 300 // seconds
	MaxClockSkew  = 60  // seconds
)

// Validate checks a message in three stages: envelope metadata, content
// semantics, and the type discriminant. With checkFreshness set, the
// envelope timestamp must additionally fall inside the
// MaxMessageAge/MaxClockSkew window.
//
// Content validation checks action and object against the vocabulary
// and suggests near matches when a concept is unknown, so a typo like
// "ACT.QUERY.DAT" fails with "did you mean" candidates.
func Validate(m *Message, checkFreshness bool) error {
	if m == nil {
		return errors.WrapValidation(errors.ErrInvalidMessage, "message", "Validate", "nil message check")
	}
	if err := ValidateEnvelope(&m.Envelope); err != nil {
		return err
	}
	if err := ValidateContent(&m.Content); err != nil {
		return err
	}
	if !m.Type.IsValid() {
		return errors.WrapValidation(
			fmt.Errorf("invalid message type %q, must be one of %v: %w", m.Type, Types(), errors.ErrInvalidMessage),
			"message", "Validate", "type check")
	}
	if checkFreshness {
		if err := ValidateFreshness(m.Envelope.Timestamp, MaxMessageAge, MaxClockSkew); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEnvelope checks that all required envelope fields are present
// and that the version and timestamp are well formed.
func ValidateEnvelope(e *Envelope) error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"version", e.Version},
		{"timestamp", e.Timestamp},
		{"sender", e.Sender},
		{"message_id", e.MessageID},
		{"nonce", e.Nonce},
	} {
		if field.value == "" {
			return errors.WrapValidation(
				fmt.Errorf("missing required envelope field %q: %w", field.name, errors.ErrInvalidMessage),
				"message", "ValidateEnvelope", "required field check")
		}
	}

	if e.Version != Version {
		return errors.WrapValidation(
			fmt.Errorf("version %q: %w", e.Version, errors.ErrUnsupportedVersion),
			"message", "ValidateEnvelope", "version check")
	}

	if _, err := timestamp.Parse(e.Timestamp); err != nil {
		return errors.WrapValidation(
			fmt.Errorf("invalid timestamp format %q: %w", e.Timestamp, err),
			"message", "ValidateEnvelope", "timestamp check")
	}
	return nil
}

// ValidateContent checks the action and optional object against the
// vocabulary. Parameters are free-form and not inspected.
func ValidateContent(c *Content) error {
	if c.Action == "" {
		return errors.WrapValidation(
			fmt.Errorf("action cannot be empty: %w", errors.ErrInvalidMessage),
			"message", "ValidateContent", "action check")
	}
	if !vocabulary.Contains(c.Action) {
		return errors.WrapValidation(
			conceptError("action", c.Action),
			"message", "ValidateContent", "action vocabulary check")
	}

	if c.Object != nil {
		if *c.Object == "" {
			return errors.WrapValidation(
				fmt.Errorf("object cannot be empty string: %w", errors.ErrInvalidMessage),
				"message", "ValidateContent", "object check")
		}
		if !vocabulary.Contains(*c.Object) {
			return errors.WrapValidation(
				conceptError("object", *c.Object),
				"message", "ValidateContent", "object vocabulary check")
		}
	}
	return nil
}

// conceptError builds the unknown-concept error, attaching up to three
// suggestions found by searching the unknown identifier's last segment.
func conceptError(field, concept string) error {
	segments := strings.Split(concept, ".")
	suggestions := vocabulary.Search(segments[len(segments)-1])
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	if len(suggestions) > 0 {
		return fmt.Errorf("invalid %s concept %q, did you mean one of %v: %w",
			field, concept, suggestions, errors.ErrUnknownConcept)
	}
	return fmt.Errorf("invalid %s concept %q: %w", field, concept, errors.ErrUnknownConcept)
}

// ValidateFreshness checks that a timestamp is neither older than
// maxAgeSeconds nor further than skewSeconds into the future.
func ValidateFreshness(ts string, maxAgeSeconds, skewSeconds int) error {
	age, err := timestamp.Age(ts)
	if err != nil {
		return errors.WrapValidation(
			fmt.Errorf("invalid timestamp format %q: %w", ts, err),
			"message", "ValidateFreshness", "timestamp parse")
	}

	ageSecs := age.Seconds()
	if ageSecs > float64(maxAgeSeconds) {
		return errors.WrapValidation(
			fmt.Errorf("message too old: %.0f seconds (max allowed: %d): %w",
				ageSecs, maxAgeSeconds, errors.ErrInvalidMessage),
			"message", "ValidateFreshness", "age check")
	}
	if ageSecs < -float64(skewSeconds) {
		return errors.WrapValidation(
			fmt.Errorf("message timestamp in future: %.0f seconds ahead (max allowed: %d): %w",
				-ageSecs, skewSeconds, errors.ErrInvalidMessage),
			"message", "ValidateFreshness", "clock skew check")
	}
	return nil
}
