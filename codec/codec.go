package codec

import (
	"fmt"
	"math"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
)

// Format names a wire format. These identifiers double as the
// content-type hints transports attach to messages.
type Format string

const (
	FormatJSON    Format = "json"
	FormatBinary  Format = "binary"
	FormatCompact Format = "compact"
	// FormatAuto asks Decode to detect the format from the payload's
	// first byte.
	FormatAuto Format = ""
)

// Formats returns the concrete wire formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatBinary, FormatCompact}
}

// Codec is the unified facade over the three wire formats. All
// operations are stateless and safe for concurrent use; the only
// shared state is the read-only vocabulary index the compact format
// builds once per process.
type Codec struct {
	json    *JSONCodec
	binary  *BinaryCodec
	compact *CompactCodec
}

// New returns a facade with default settings (indented JSON output).
func New() *Codec {
	return &Codec{
		json:    NewJSONCodec(),
		binary:  NewBinaryCodec(),
		compact: NewCompactCodec(),
	}
}

// Encode serializes the message in the named format.
func (c *Codec) Encode(m *message.Message, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return c.json.Encode(m)
	case FormatBinary:
		return c.binary.Encode(m)
	case FormatCompact:
		return c.compact.Encode(m)
	default:
		return nil, errors.WrapEncoding(
			fmt.Errorf("format %q, supported: %v: %w", format, Formats(), errors.ErrUnknownFormat),
			"codec", "Encode", "format dispatch")
	}
}

// Decode deserializes data in the named format, or detects the format
// from the first byte when FormatAuto is given. Detection is a
// heuristic: a binary payload whose first byte collides with a text
// delimiter or the compact magic byte is misrouted, so callers needing
// certainty pass the format explicitly (transports carry it as a
// header).
func (c *Codec) Decode(data []byte, format Format) (*message.Message, error) {
	if format == FormatAuto {
		if len(data) == 0 {
			return nil, errors.WrapDecoding(
				fmt.Errorf("empty input: %w", errors.ErrTruncatedInput),
				"codec", "Decode", "format detection")
		}
		format = DetectFormat(data)
	}

	switch format {
	case FormatJSON:
		return c.json.Decode(data)
	case FormatBinary:
		return c.binary.Decode(data)
	case FormatCompact:
		return c.compact.Decode(data)
	default:
		return nil, errors.WrapDecoding(
			fmt.Errorf("format %q, supported: %v: %w", format, Formats(), errors.ErrUnknownFormat),
			"codec", "Decode", "format dispatch")
	}
}

// DetectFormat guesses the wire format from the payload's first byte:
// a text delimiter means JSON, the compact magic byte means compact,
// anything else is treated as MessagePack. Empty input detects as
// binary and fails there.
func DetectFormat(data []byte) Format {
	if len(data) == 0 {
		return FormatBinary
	}
	switch data[0] {
	case '{', '[':
		return FormatJSON
	case Magic:
		return FormatCompact
	default:
		return FormatBinary
	}
}

// SizeComparison reports how large one message encodes in each format.
// Reductions are ratios versus compact (un-indented) JSON; savings are
// percentages. Purely informational, no side effects.
type SizeComparison struct {
	JSON    int `json:"json"`
	Binary  int `json:"binary"`
	Compact int `json:"compact"`

	JSONReduction    float64 `json:"json_reduction"`
	BinaryReduction  float64 `json:"binary_reduction"`
	CompactReduction float64 `json:"compact_reduction"`

	BinarySavingsPercent  float64 `json:"binary_savings_percent"`
	CompactSavingsPercent float64 `json:"compact_savings_percent"`
}

// SizeComparison encodes the message in all three formats and reports
// comparative sizes.
func (c *Codec) SizeComparison(m *message.Message) (SizeComparison, error) {
	compactJSON := &JSONCodec{}
	jsonData, err := compactJSON.Encode(m)
	if err != nil {
		return SizeComparison{}, err
	}
	binaryData, err := c.binary.Encode(m)
	if err != nil {
		return SizeComparison{}, err
	}
	compactData, err := c.compact.Encode(m)
	if err != nil {
		return SizeComparison{}, err
	}

	jsonSize := float64(len(jsonData))
	return SizeComparison{
		JSON:    len(jsonData),
		Binary:  len(binaryData),
		Compact: len(compactData),

		JSONReduction:    1.0,
		BinaryReduction:  round2(jsonSize / float64(len(binaryData))),
		CompactReduction: round2(jsonSize / float64(len(compactData))),

		BinarySavingsPercent:  round1((1 - float64(len(binaryData))/jsonSize) * 100),
		CompactSavingsPercent: round1((1 - float64(len(compactData))/jsonSize) * 100),
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }
