package security

import (
	"encoding/json"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
)

// CanonicalBytes produces the deterministic byte string a signature is
// computed over. The signature field itself is never part of the
// canonical form, so signing and verifying need no mutation of the
// message.
//
// The form is compact JSON of {content, envelope, type} with keys
// sorted alphabetically at every nesting level (json.Marshal sorts map
// keys), so two messages with the same field values canonicalize to
// identical bytes regardless of how they were built. The canonical
// form is never transmitted; it exists only as HMAC input.
func CanonicalBytes(m *message.Message) ([]byte, error) {
	if m == nil {
		return nil, errors.WrapSecurity(errors.ErrInvalidMessage, "security", "CanonicalBytes", "nil message check")
	}

	canonical := map[string]any{
		"envelope": map[string]any{
			"version":    m.Envelope.Version,
			"timestamp":  m.Envelope.Timestamp,
			"sender":     m.Envelope.Sender,
			"receiver":   m.Envelope.Receiver,
			"message_id": m.Envelope.MessageID,
			"nonce":      m.Envelope.Nonce,
		},
		"type": m.Type,
		"content": map[string]any{
			"action":     m.Content.Action,
			"object":     m.Content.Object,
			"parameters": m.Content.Parameters,
		},
	}

	data, err := json.Marshal(canonical)
	if err != nil {
		return nil, errors.WrapSecurity(err, "security", "CanonicalBytes", "canonical serialization")
	}
	return data, nil
}
