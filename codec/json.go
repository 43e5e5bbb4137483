package codec

import (
	"encoding/json"
	"strings"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
)

// JSONCodec is the full-fidelity text codec. Every envelope field
// round-trips byte-for-byte as its original string value, which makes
// this the only format safe for re-verifying signatures after a hop.
type JSONCodec struct {
	// Indent is the number of spaces per nesting level. Zero produces
	// compact single-line output for wire transmission.
	Indent int
}

// NewJSONCodec returns a codec producing human-readable output with
// two-space indentation. Set Indent to 0 for compact wire output.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: 2}
}

// Encode serializes the message as UTF-8 JSON.
func (c *JSONCodec) Encode(m *message.Message) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.Indent > 0 {
		data, err = json.MarshalIndent(m, "", strings.Repeat(" ", c.Indent))
	} else {
		data, err = json.Marshal(m)
	}
	if err != nil {
		return nil, errors.WrapEncoding(err, "codec", "JSONCodec.Encode", "json serialization")
	}
	return data, nil
}

// Decode parses JSON back into a Message. No validation runs, so a
// well-formed document with out-of-vocabulary content still decodes;
// callers wanting semantic checks run message.Validate afterwards.
func (c *JSONCodec) Decode(data []byte) (*message.Message, error) {
	var m message.Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapDecoding(err, "codec", "JSONCodec.Decode", "json parsing")
	}
	return &m, nil
}
