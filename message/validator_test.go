package message

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/timestamp"
)

func validMessage(t *testing.T) *Message {
	t.Helper()
	msg, err := New("ACT.QUERY.DATA", WithTarget("ENT.DATA.TEXT"))
	require.NoError(t, err)
	return msg
}

func TestValidateAcceptsValidMessage(t *testing.T) {
	msg := validMessage(t)
	assert.NoError(t, Validate(msg, false))
	assert.NoError(t, Validate(msg, true))
	assert.NoError(t, msg.Validate())
}

func TestValidateNilMessage(t *testing.T) {
	err := Validate(nil, false)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestValidateEnvelopeMissingFields(t *testing.T) {
	fields := []struct {
		name  string
		strip func(*Envelope)
	}{
		{"version", func(e *Envelope) { e.Version = "" }},
		{"timestamp", func(e *Envelope) { e.Timestamp = "" }},
		{"sender", func(e *Envelope) { e.Sender = "" }},
		{"message_id", func(e *Envelope) { e.MessageID = "" }},
		{"nonce", func(e *Envelope) { e.Nonce = "" }},
	}
	for _, tt := range fields {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage(t)
			tt.strip(&msg.Envelope)
			err := Validate(msg, false)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestValidateEnvelopeVersion(t *testing.T) {
	msg := validMessage(t)
	msg.Envelope.Version = "2.0"
	err := Validate(msg, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnsupportedVersion)
}

func TestValidateEnvelopeBadTimestamp(t *testing.T) {
	msg := validMessage(t)
	msg.Envelope.Timestamp = "yesterday at noon"
	err := Validate(msg, false)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestValidateContentUnknownAction(t *testing.T) {
	msg := validMessage(t)
	msg.Content.Action = "ACT.QUERY.DAT"
	err := Validate(msg, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownConcept)
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "ACT.QUERY.DATA")
}

func TestValidateContentEmptyAction(t *testing.T) {
	msg := validMessage(t)
	msg.Content.Action = ""
	err := Validate(msg, false)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestValidateContentUnknownObject(t *testing.T) {
	msg := validMessage(t)
	unknown := "ENT.DATA.TEX"
	msg.Content.Object = &unknown
	err := Validate(msg, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownConcept)
	assert.Contains(t, err.Error(), "object")
}

func TestValidateContentEmptyObject(t *testing.T) {
	msg := validMessage(t)
	empty := ""
	msg.Content.Object = &empty
	err := Validate(msg, false)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestValidateContentNilObjectOK(t *testing.T) {
	msg := validMessage(t)
	msg.Content.Object = nil
	assert.NoError(t, Validate(msg, false))
}

func TestValidateInvalidType(t *testing.T) {
	msg := validMessage(t)
	msg.Type = "COMMAND"
	err := Validate(msg, false)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestValidateFreshness(t *testing.T) {
	tests := []struct {
		name    string
		offset  time.Duration
		wantErr string
	}{
		{"fresh", -10 * time.Second, ""},
		{"boundary old", -290 * time.Second, ""},
		{"too old", -400 * time.Second, "too old"},
		{"small future skew", 30 * time.Second, ""},
		{"too far in future", 120 * time.Second, "in future"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := timestamp.Format(time.Now().UTC().Add(tt.offset))
			err := ValidateFreshness(ts, MaxMessageAge, MaxClockSkew)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsValidation(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateFreshnessOnlyWhenRequested(t *testing.T) {
	msg := validMessage(t)
	msg.Envelope.Timestamp = timestamp.Format(time.Now().UTC().Add(-time.Hour))

	assert.NoError(t, Validate(msg, false))

	err := Validate(msg, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("max allowed: %d", MaxMessageAge))
}
