package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
)

func facadeMessage(t *testing.T) *message.Message {
	t.Helper()
	msg, err := message.New("ACT.QUERY.DATA",
		message.WithTarget("ENT.DATA.TEXT"),
		message.WithParameters(map[string]any{"query": "recent logs", "limit": 10}),
		message.WithSender("analytics-agent"),
		message.WithReceiver("storage-agent"))
	require.NoError(t, err)
	msg.SetSignature("00ff00ff")
	return msg
}

func TestJSONRoundTripFullFidelity(t *testing.T) {
	msg := facadeMessage(t)

	for _, c := range []*JSONCodec{NewJSONCodec(), {Indent: 0}} {
		data, err := c.Encode(msg)
		require.NoError(t, err)

		decoded, err := c.Decode(data)
		require.NoError(t, err)

		assert.Equal(t, msg.Envelope, decoded.Envelope)
		assert.Equal(t, msg.Type, decoded.Type)
		assert.Equal(t, msg.Content.Action, decoded.Content.Action)
		assert.Equal(t, msg.Content.Object, decoded.Content.Object)
		assert.Equal(t, "recent logs", decoded.Content.Parameters["query"])
	}
}

func TestJSONIndentation(t *testing.T) {
	msg := facadeMessage(t)

	indented, err := NewJSONCodec().Encode(msg)
	require.NoError(t, err)
	compact, err := (&JSONCodec{}).Encode(msg)
	require.NoError(t, err)

	assert.Contains(t, string(indented), "\n")
	assert.NotContains(t, string(compact), "\n")
	assert.Less(t, len(compact), len(indented))
}

func TestJSONDecodeInvalid(t *testing.T) {
	_, err := NewJSONCodec().Decode([]byte("{not json"))
	require.Error(t, err)
	assert.True(t, errors.IsDecoding(err))
}

func TestJSONDecodeSkipsValidation(t *testing.T) {
	// Out-of-vocabulary action still decodes; validation is a separate,
	// explicit step.
	raw := []byte(`{"envelope":{"version":"1.0","timestamp":"2026-08-29T10:00:00Z",
		"sender":"x","receiver":null,"message_id":"m1","nonce":"n1","signature":null},
		"type":"REQUEST","content":{"action":"NOT.A.CONCEPT","object":null,"parameters":{}}}`)
	decoded, err := NewJSONCodec().Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "NOT.A.CONCEPT", decoded.Content.Action)
	assert.Error(t, decoded.Validate())
}

func TestBinaryRoundTripFullFidelity(t *testing.T) {
	msg := facadeMessage(t)
	c := NewBinaryCodec()

	data, err := c.Encode(msg)
	require.NoError(t, err)

	decoded, err := c.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, msg.Envelope, decoded.Envelope)
	assert.Equal(t, msg.Type, decoded.Type)
	assert.Equal(t, msg.Content.Action, decoded.Content.Action)
	assert.Equal(t, msg.Content.Object, decoded.Content.Object)
	assert.Equal(t, "recent logs", decoded.Content.Parameters["query"])
}

func TestBinaryDecodeInvalid(t *testing.T) {
	_, err := NewBinaryCodec().Decode([]byte{0xC1, 0x00, 0x01})
	require.Error(t, err)
	assert.True(t, errors.IsDecoding(err))
}

func TestSizeOrdering(t *testing.T) {
	msg := facadeMessage(t)
	c := New()

	jsonData, err := c.Encode(msg, FormatJSON)
	require.NoError(t, err)
	binaryData, err := c.Encode(msg, FormatBinary)
	require.NoError(t, err)
	compactData, err := c.Encode(msg, FormatCompact)
	require.NoError(t, err)

	assert.Less(t, len(binaryData), len(jsonData))
	assert.Less(t, len(compactData), len(binaryData))
}

func TestFacadeUnknownFormat(t *testing.T) {
	c := New()
	msg := facadeMessage(t)

	_, err := c.Encode(msg, Format("yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownFormat)
	assert.True(t, errors.IsEncoding(err))

	_, err = c.Decode([]byte("{}"), Format("yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownFormat)
	assert.True(t, errors.IsDecoding(err))
}

func TestFacadeAutoDetect(t *testing.T) {
	c := New()
	msg := facadeMessage(t)

	for _, format := range Formats() {
		data, err := c.Encode(msg, format)
		require.NoError(t, err)

		decoded, err := c.Decode(data, FormatAuto)
		require.NoError(t, err, format)
		assert.Equal(t, msg.Content.Action, decoded.Content.Action, format)
		assert.Equal(t, msg.Type, decoded.Type, format)
	}
}

func TestFacadeAutoDetectEmptyInput(t *testing.T) {
	_, err := New().Decode(nil, FormatAuto)
	require.Error(t, err)
	assert.True(t, errors.IsDecoding(err))
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat([]byte(`{"a":1}`)))
	assert.Equal(t, FormatJSON, DetectFormat([]byte(`[1,2]`)))
	assert.Equal(t, FormatCompact, DetectFormat([]byte{Magic, 0x10}))
	assert.Equal(t, FormatBinary, DetectFormat([]byte{0x83, 0xA7}))
	assert.Equal(t, FormatBinary, DetectFormat(nil))
}

func TestSizeComparison(t *testing.T) {
	c := New()
	report, err := c.SizeComparison(facadeMessage(t))
	require.NoError(t, err)

	assert.Greater(t, report.JSON, report.Binary)
	assert.Greater(t, report.Binary, report.Compact)

	assert.Equal(t, 1.0, report.JSONReduction)
	assert.Greater(t, report.BinaryReduction, 1.0)
	assert.Greater(t, report.CompactReduction, report.BinaryReduction)

	assert.Greater(t, report.BinarySavingsPercent, 0.0)
	assert.Greater(t, report.CompactSavingsPercent, report.BinarySavingsPercent)
	assert.LessOrEqual(t, report.CompactSavingsPercent, 100.0)
}

func benchMessage(b *testing.B) *message.Message {
	b.Helper()
	msg, err := message.New("ACT.QUERY.DATA",
		message.WithTarget("ENT.DATA.TEXT"),
		message.WithParameters(map[string]any{"query": "recent logs"}))
	if err != nil {
		b.Fatal(err)
	}
	return msg
}

func BenchmarkEncode(b *testing.B) {
	c := New()
	msg := benchMessage(b)
	for _, format := range Formats() {
		b.Run(string(format), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := c.Encode(msg, format); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	c := New()
	msg := benchMessage(b)
	for _, format := range Formats() {
		data, err := c.Encode(msg, format)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(string(format), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := c.Decode(data, format); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
