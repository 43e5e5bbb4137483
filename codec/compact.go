package codec

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
	"github.com/pulseprotocolorg-cyber/pulse-go/pkg/timestamp"
)

// Compact wire contract. Independent implementations must agree on
// every constant here byte-for-byte to interoperate.
const (
	// Magic is the first byte of every compact message ('P').
	Magic byte = 0x50
	// headerSize is the fixed header length; the msgpack parameter
	// tail follows at this offset, omitted entirely when parameters
	// are empty.
	headerSize = 30
	// compactVersion occupies the high nibble of byte 1; it tracks the
	// protocol version "1.0".
	compactVersion = 1
	// indexNone is the action/target sentinel: unknown concept on
	// action, absent on target.
	indexNone uint16 = 0xFFFF
)

// UnknownConcept is the placeholder identifier synthesized when a
// compact message carries an index the local vocabulary cannot
// resolve. Decoding stays non-fatal; the placeholder fails vocabulary
// validation downstream if the caller runs it.
const UnknownConcept = "UNKNOWN.CONCEPT"

// Fixed header layout, big-endian:
//
//	offset  bytes  field
//	0       1      magic
//	1       1      version (high nibble) | type (low nibble)
//	2       8      timestamp, microseconds since Unix epoch
//	10      8      message_id hash, first 8 bytes of FNV-1a 128
//	18      4      sender hash, FNV-1a 32
//	22      2      action index into the sorted vocabulary
//	24      2      target index, 0xFFFF = absent
//	26      4      nonce hash, FNV-1a 32

// CompactCodec is the minimum-size codec. Action and target compress
// to 16-bit vocabulary indices; sender, message ID, and nonce compress
// to fixed-width hashes. The hash step is deliberately lossy: decoding
// synthesizes deterministic hex placeholders instead of the original
// strings. Everything else (action, object, parameters, timestamp to
// microsecond precision, type, version) round-trips exactly.
type CompactCodec struct{}

// NewCompactCodec returns the compact codec. The vocabulary index is
// built lazily on first use and frozen for the process lifetime.
func NewCompactCodec() *CompactCodec {
	return &CompactCodec{}
}

// Encode serializes the message into the fixed 30-byte header plus an
// optional msgpack parameter tail. A message with empty parameters
// encodes to exactly 30 bytes.
func (c *CompactCodec) Encode(m *message.Message) ([]byte, error) {
	idx, err := vocabularyIndex()
	if err != nil {
		return nil, err
	}

	if m.Envelope.Version != message.Version {
		return nil, errors.WrapEncoding(
			fmt.Errorf("version %q: %w", m.Envelope.Version, errors.ErrUnsupportedVersion),
			"codec", "CompactCodec.Encode", "version check")
	}

	typeNibble, ok := typeToNibble(m.Type)
	if !ok {
		return nil, errors.WrapEncoding(
			fmt.Errorf("type %q does not fit the type nibble: %w", m.Type, errors.ErrInvalidMessage),
			"codec", "CompactCodec.Encode", "type check")
	}

	ts, err := timestamp.Parse(m.Envelope.Timestamp)
	if err != nil {
		return nil, errors.WrapEncoding(
			fmt.Errorf("timestamp %q: %w", m.Envelope.Timestamp, err),
			"codec", "CompactCodec.Encode", "timestamp parse")
	}

	actionIndex := indexNone
	if i, ok := idx.indexOf(m.Content.Action); ok {
		actionIndex = i
	}
	targetIndex := indexNone
	if target, ok := m.Target(); ok {
		if i, ok := idx.indexOf(target); ok {
			targetIndex = i
		}
	}

	buf := make([]byte, headerSize)
	buf[0] = Magic
	buf[1] = compactVersion<<4 | typeNibble
	binary.BigEndian.PutUint64(buf[2:10], uint64(timestamp.ToUnixMicro(ts)))
	binary.BigEndian.PutUint64(buf[10:18], hash64(m.Envelope.MessageID))
	binary.BigEndian.PutUint32(buf[18:22], hash32(m.Envelope.Sender))
	binary.BigEndian.PutUint16(buf[22:24], actionIndex)
	binary.BigEndian.PutUint16(buf[24:26], targetIndex)
	binary.BigEndian.PutUint32(buf[26:30], hash32(m.Envelope.Nonce))

	if len(m.Content.Parameters) > 0 {
		tail, err := msgpack.Marshal(m.Content.Parameters)
		if err != nil {
			return nil, errors.WrapEncoding(err, "codec", "CompactCodec.Encode", "parameter serialization")
		}
		buf = append(buf, tail...)
	}
	return buf, nil
}

// Decode reconstructs a Message from compact bytes. Sender, message
// ID, and nonce come back as hex renderings of their hashes, the same
// placeholder for the same original every time. An action or target
// index the local vocabulary cannot resolve decodes to the
// UnknownConcept placeholder rather than failing.
func (c *CompactCodec) Decode(data []byte) (*message.Message, error) {
	idx, err := vocabularyIndex()
	if err != nil {
		return nil, errors.WrapDecoding(errors.ErrIndexUnavailable,
			"codec", "CompactCodec.Decode", "index construction")
	}

	if len(data) < headerSize {
		return nil, errors.WrapDecoding(
			fmt.Errorf("%d bytes, need %d: %w", len(data), headerSize, errors.ErrTruncatedInput),
			"codec", "CompactCodec.Decode", "header read")
	}
	if data[0] != Magic {
		return nil, errors.WrapDecoding(
			fmt.Errorf("first byte 0x%02x, want 0x%02x: %w", data[0], Magic, errors.ErrBadMagic),
			"codec", "CompactCodec.Decode", "magic check")
	}

	if version := data[1] >> 4; version != compactVersion {
		return nil, errors.WrapDecoding(
			fmt.Errorf("compact version %d: %w", version, errors.ErrUnsupportedVersion),
			"codec", "CompactCodec.Decode", "version check")
	}
	msgType, ok := nibbleToType(data[1] & 0x0F)
	if !ok {
		return nil, errors.WrapDecoding(
			fmt.Errorf("type nibble %d: %w", data[1]&0x0F, errors.ErrInvalidMessage),
			"codec", "CompactCodec.Decode", "type check")
	}

	micros := binary.BigEndian.Uint64(data[2:10])
	idHash := binary.BigEndian.Uint64(data[10:18])
	senderHash := binary.BigEndian.Uint32(data[18:22])
	actionIndex := binary.BigEndian.Uint16(data[22:24])
	targetIndex := binary.BigEndian.Uint16(data[24:26])
	nonceHash := binary.BigEndian.Uint32(data[26:30])

	action := UnknownConcept
	if id, ok := idx.idAt(actionIndex); ok {
		action = id
	}
	var object *string
	if targetIndex != indexNone {
		target := UnknownConcept
		if id, ok := idx.idAt(targetIndex); ok {
			target = id
		}
		object = &target
	}

	params := make(map[string]any)
	if len(data) > headerSize {
		if err := msgpack.Unmarshal(data[headerSize:], &params); err != nil {
			return nil, errors.WrapDecoding(err, "codec", "CompactCodec.Decode", "parameter parsing")
		}
	}

	return &message.Message{
		Envelope: message.Envelope{
			Version:   message.Version,
			Timestamp: timestamp.Format(timestamp.FromUnixMicro(int64(micros))),
			Sender:    fmt.Sprintf("%08x", senderHash),
			MessageID: fmt.Sprintf("%016x", idHash),
			Nonce:     fmt.Sprintf("%08x", nonceHash),
		},
		Type: msgType,
		Content: message.Content{
			Action:     action,
			Object:     object,
			Parameters: params,
		},
	}, nil
}

func typeToNibble(t message.Type) (byte, bool) {
	for i, mt := range message.Types() {
		if mt == t {
			return byte(i), true
		}
	}
	return 0, false
}

func nibbleToType(n byte) (message.Type, bool) {
	types := message.Types()
	if int(n) >= len(types) {
		return "", false
	}
	return types[n], true
}

// hash32 is FNV-1a over the UTF-8 bytes of s: offset basis 0x811C9DC5,
// prime 0x01000193, XOR then multiply per byte.
func hash32(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// hash64 takes the first 8 bytes of the 128-bit FNV-1a digest.
func hash64(s string) uint64 {
	h := fnv.New128a()
	h.Write([]byte(s))
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}
