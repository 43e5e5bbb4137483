package security

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseprotocolorg-cyber/pulse-go/message"
)

func newTestMessage(t *testing.T) *message.Message {
	t.Helper()
	msg, err := message.New("ACT.QUERY.DATA",
		message.WithTarget("ENT.DATA.TEXT"),
		message.WithParameters(map[string]any{"query": "recent logs"}),
		message.WithSender("test-agent"))
	require.NoError(t, err)
	return msg
}

func TestSignStoresSignature(t *testing.T) {
	sec := NewManager("test-key")
	msg := newTestMessage(t)

	sig, err := sec.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, 64, "hex SHA-256 digest")
	_, err = hex.DecodeString(sig)
	assert.NoError(t, err)

	stored, ok := msg.Signature()
	require.True(t, ok)
	assert.Equal(t, sig, stored)
}

func TestSignDeterministic(t *testing.T) {
	sec := NewManager("test-key")
	msg := newTestMessage(t)

	first, err := sec.Sign(msg)
	require.NoError(t, err)
	second, err := sec.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVerifyRoundTrip(t *testing.T) {
	sec := NewManager("test-key")
	msg := newTestMessage(t)

	_, err := sec.Sign(msg)
	require.NoError(t, err)

	ok, err := sec.Verify(msg)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyDetectsTampering(t *testing.T) {
	sec := NewManager("test-key")

	mutations := []struct {
		name   string
		mutate func(*message.Message)
	}{
		{"parameter change", func(m *message.Message) { m.Content.Parameters["query"] = "tampered" }},
		{"action change", func(m *message.Message) { m.Content.Action = "ACT.DELETE.DATA" }},
		{"sender change", func(m *message.Message) { m.Envelope.Sender = "impostor" }},
		{"type change", func(m *message.Message) { m.Type = message.TypeResponse }},
		{"nonce change", func(m *message.Message) { m.Envelope.Nonce = "replayed-nonce" }},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			msg := newTestMessage(t)
			_, err := sec.Sign(msg)
			require.NoError(t, err)

			tt.mutate(msg)

			ok, err := sec.Verify(msg)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestVerifyKeyIsolation(t *testing.T) {
	alice := NewManager("alice-key")
	bob := NewManager("bob-key")

	msg := newTestMessage(t)
	_, err := alice.Sign(msg)
	require.NoError(t, err)

	ok, err := bob.Verify(msg)
	require.NoError(t, err)
	assert.False(t, ok, "signature from a different key must not verify")

	ok, err = alice.Verify(msg)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyUnsignedMessage(t *testing.T) {
	sec := NewManager("test-key")
	msg := newTestMessage(t)

	ok, err := sec.Verify(msg)
	require.NoError(t, err)
	assert.False(t, ok, "unsigned message verifies false, not error")
}

func TestVerifySignatureOutOfBand(t *testing.T) {
	sec := NewManager("test-key")
	msg := newTestMessage(t)

	sig, err := sec.Sign(msg)
	require.NoError(t, err)
	msg.SetSignature("")

	ok, err := sec.VerifySignature(msg, sig)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sec.VerifySignature(msg, "not-the-signature")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = sec.VerifySignature(msg, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyNilMessage(t *testing.T) {
	sec := NewManager("test-key")
	_, err := sec.Verify(nil)
	assert.Error(t, err)
}

func TestGenerateKey(t *testing.T) {
	key := GenerateKey()
	decoded, err := base64.RawURLEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)

	assert.NotEqual(t, key, GenerateKey())
}

func TestNewManagerEmptyKeyGenerates(t *testing.T) {
	first := NewManager("")
	second := NewManager("")
	msg := newTestMessage(t)

	_, err := first.Sign(msg)
	require.NoError(t, err)

	ok, err := second.Verify(msg)
	require.NoError(t, err)
	assert.False(t, ok, "auto-generated keys differ between managers")
}
