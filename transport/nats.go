package transport

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/pulseprotocolorg-cyber/pulse-go/codec"
	"github.com/pulseprotocolorg-cyber/pulse-go/config"
	"github.com/pulseprotocolorg-cyber/pulse-go/errors"
	"github.com/pulseprotocolorg-cyber/pulse-go/message"
	"github.com/pulseprotocolorg-cyber/pulse-go/metric"
)

// natsFormatHeader carries the wire format on NATS messages, the
// pub/sub counterpart of the HTTP FormatHeader.
const natsFormatHeader = "Pulse-Format"

// subjectPrefix roots every protocol subject.
const subjectPrefix = "pulse"

// SubjectFor maps a message to its NATS subject:
// pulse.<TYPE>.<action>, e.g. pulse.REQUEST.ACT.QUERY.DATA. The action
// concept's dots become subject tokens, so subscribers can use NATS
// wildcards: "pulse.REQUEST.>" for all requests,
// "pulse.*.ACT.QUERY.>" for queries of any type.
func SubjectFor(m *message.Message) string {
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, m.Type, m.Content.Action)
}

// SubjectForType returns the wildcard subject covering every action of
// one message type.
func SubjectForType(t message.Type) string {
	return fmt.Sprintf("%s.%s.>", subjectPrefix, t)
}

// ConnectNATS establishes a NATS connection from configuration. When a
// metrics registry is given, connection state feeds the NATS gauges.
func ConnectNATS(cfg config.NATSConfig, metrics *metric.Registry) (*nats.Conn, error) {
	if len(cfg.URLs) == 0 {
		return nil, errors.WrapValidation(
			fmt.Errorf("nats.urls is required: %w", errors.ErrMissingConfig),
			"transport", "ConnectNATS", "config check")
	}

	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
	}
	switch {
	case cfg.Token != "":
		opts = append(opts, nats.Token(cfg.Token))
	case cfg.Username != "":
		opts = append(opts, nats.UserInfo(cfg.Username, cfg.Password))
	}
	if metrics != nil {
		opts = append(opts,
			nats.ConnectHandler(func(*nats.Conn) {
				metrics.Metrics.NATSConnected.Set(1)
			}),
			nats.DisconnectErrHandler(func(_ *nats.Conn, _ error) {
				metrics.Metrics.NATSConnected.Set(0)
			}),
			nats.ReconnectHandler(func(*nats.Conn) {
				metrics.Metrics.NATSConnected.Set(1)
				metrics.Metrics.NATSReconnects.Inc()
			}),
		)
	}

	conn, err := nats.Connect(cfg.URLs[0], opts...)
	if err != nil {
		return nil, errors.WrapTransport(err, "transport", "ConnectNATS", "connection")
	}
	if metrics != nil {
		metrics.Metrics.NATSConnected.Set(1)
	}
	return conn, nil
}

// Publisher sends protocol messages over NATS subjects derived from
// type and action.
type Publisher struct {
	conn   *nats.Conn
	codec  *codec.Codec
	format codec.Format
	logger *slog.Logger
}

// NewPublisher wraps a NATS connection. The format names the encoding
// of outgoing messages and travels in the message header.
func NewPublisher(conn *nats.Conn, format codec.Format) *Publisher {
	if format == codec.FormatAuto {
		format = codec.FormatBinary
	}
	return &Publisher{
		conn:   conn,
		codec:  codec.New(),
		format: format,
		logger: slog.Default().With("component", "transport.publisher"),
	}
}

// Publish encodes the message and publishes it to its derived subject.
func (p *Publisher) Publish(m *message.Message) error {
	data, err := p.codec.Encode(m, p.format)
	if err != nil {
		return err
	}

	subject := SubjectFor(m)
	msg := &nats.Msg{
		Subject: subject,
		Header:  nats.Header{natsFormatHeader: []string{string(p.format)}},
		Data:    data,
	}
	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.WrapTransport(err, "transport", "Publisher.Publish", "nats publish")
	}

	p.logger.Debug("message published", "subject", subject, "bytes", len(data))
	return nil
}

// Subscriber receives protocol messages from NATS subjects.
type Subscriber struct {
	conn   *nats.Conn
	codec  *codec.Codec
	logger *slog.Logger
}

// NewSubscriber wraps a NATS connection for receiving.
func NewSubscriber(conn *nats.Conn) *Subscriber {
	return &Subscriber{
		conn:   conn,
		codec:  codec.New(),
		logger: slog.Default().With("component", "transport.subscriber"),
	}
}

// Subscribe delivers decoded messages on the subject to the handler.
// The wire format comes from the message header, falling back to
// auto-detection; messages that fail to decode are logged and dropped
// rather than stopping the subscription.
func (s *Subscriber) Subscribe(subject string, handler func(*message.Message)) (*nats.Subscription, error) {
	sub, err := s.conn.Subscribe(subject, func(natsMsg *nats.Msg) {
		format := codec.FormatAuto
		if hint := natsMsg.Header.Get(natsFormatHeader); hint != "" {
			format = codec.Format(hint)
		}

		m, err := s.codec.Decode(natsMsg.Data, format)
		if err != nil {
			s.logger.Warn("dropping undecodable message",
				"subject", natsMsg.Subject, "error", err)
			return
		}
		handler(m)
	})
	if err != nil {
		return nil, errors.WrapTransport(err, "transport", "Subscriber.Subscribe", "nats subscribe")
	}
	return sub, nil
}
