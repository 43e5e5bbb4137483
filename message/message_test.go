package message

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/timestamp"
)

func TestNewDefaults(t *testing.T) {
	msg, err := New("ACT.QUERY.DATA")
	require.NoError(t, err)

	assert.Equal(t, Version, msg.Envelope.Version)
	assert.Equal(t, DefaultSender, msg.Envelope.Sender)
	assert.Nil(t, msg.Envelope.Receiver)
	assert.Nil(t, msg.Envelope.Signature)
	assert.Equal(t, TypeRequest, msg.Type)
	assert.Equal(t, "ACT.QUERY.DATA", msg.Content.Action)
	assert.Nil(t, msg.Content.Object)
	require.NotNil(t, msg.Content.Parameters)
	assert.Empty(t, msg.Content.Parameters)

	// Fresh identity on every message.
	_, err = uuid.Parse(msg.Envelope.MessageID)
	assert.NoError(t, err)
	_, err = uuid.Parse(msg.Envelope.Nonce)
	assert.NoError(t, err)

	// Timestamp parses and is current.
	age, err := timestamp.Age(msg.Envelope.Timestamp)
	require.NoError(t, err)
	assert.Less(t, age.Seconds(), 5.0)
}

func TestNewUniqueIdentity(t *testing.T) {
	first, err := New("ACT.QUERY.DATA")
	require.NoError(t, err)
	second, err := New("ACT.QUERY.DATA")
	require.NoError(t, err)

	assert.NotEqual(t, first.Envelope.MessageID, second.Envelope.MessageID)
	assert.NotEqual(t, first.Envelope.Nonce, second.Envelope.Nonce)
}

func TestNewWithOptions(t *testing.T) {
	msg, err := New("ACT.ANALYZE.SENTIMENT",
		WithTarget("ENT.DATA.TEXT"),
		WithParameters(map[string]any{"text": "great product"}),
		WithSender("sentiment-agent"),
		WithReceiver("reporting-agent"),
		WithType(TypeRequest))
	require.NoError(t, err)

	target, ok := msg.Target()
	require.True(t, ok)
	assert.Equal(t, "ENT.DATA.TEXT", target)
	assert.Equal(t, "sentiment-agent", msg.Envelope.Sender)
	require.NotNil(t, msg.Envelope.Receiver)
	assert.Equal(t, "reporting-agent", *msg.Envelope.Receiver)
	assert.Equal(t, "great product", msg.Content.Parameters["text"])
}

func TestNewRejectsUnknownAction(t *testing.T) {
	_, err := New("ACT.NO.SUCH.CONCEPT")
	require.Error(t, err)

	// Skipping validation lets the malformed message through.
	msg, err := New("ACT.NO.SUCH.CONCEPT", WithoutValidation())
	require.NoError(t, err)
	assert.Equal(t, "ACT.NO.SUCH.CONCEPT", msg.Content.Action)
}

func TestSignatureAccessors(t *testing.T) {
	msg, err := New("ACT.QUERY.DATA")
	require.NoError(t, err)

	_, ok := msg.Signature()
	assert.False(t, ok)

	msg.SetSignature("abc123")
	sig, ok := msg.Signature()
	require.True(t, ok)
	assert.Equal(t, "abc123", sig)

	msg.SetSignature("")
	_, ok = msg.Signature()
	assert.False(t, ok)
	assert.Nil(t, msg.Envelope.Signature)
}

func TestTypeIsValid(t *testing.T) {
	for _, mt := range Types() {
		assert.True(t, mt.IsValid(), mt)
	}
	assert.False(t, Type("COMMAND").IsValid())
	assert.False(t, Type("").IsValid())
	assert.False(t, Type("request").IsValid(), "types are case-sensitive")
}

func TestJSONShape(t *testing.T) {
	msg, err := New("ACT.QUERY.DATA", WithSender("wire-agent"))
	require.NoError(t, err)

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "envelope")
	assert.Contains(t, raw, "type")
	assert.Contains(t, raw, "content")

	// Unset receiver and signature serialize as explicit nulls, and
	// empty parameters as {}.
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["envelope"], &envelope))
	assert.Equal(t, "null", string(envelope["receiver"]))
	assert.Equal(t, "null", string(envelope["signature"]))

	var content map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["content"], &content))
	assert.Equal(t, "null", string(content["object"]))
	assert.Equal(t, "{}", string(content["parameters"]))
}
