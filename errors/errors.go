// Package errors provides standardized error handling patterns for the PULSE
// protocol stack. It defines a closed error taxonomy (encoding, decoding,
// security, validation, transport), standard error variables, and helper
// functions for consistent error wrapping and classification.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies protocol errors for handling purposes. The taxonomy is
// closed: every error produced by this module belongs to exactly one kind,
// and retry decisions are made from the kind, never from message text.
type Kind int

const (
	// KindEncoding marks failures to serialize a valid in-memory message.
	// Treated as a programmer or data error. Not retriable.
	KindEncoding Kind = iota
	// KindDecoding marks malformed, truncated, or wrong-magic input.
	// The message must be rejected outright. Not retriable.
	KindDecoding
	// KindSecurity marks authentication failures: absent or mismatched
	// signatures. Must be surfaced to the caller, never silently ignored.
	// Not retriable.
	KindSecurity
	// KindValidation marks messages that decode but violate protocol
	// rules: unknown vocabulary concepts, bad envelope fields. Not retriable.
	KindValidation
	// KindTransport marks network-level failures: connection errors,
	// timeouts, unavailable peers. Retriable with backoff.
	KindTransport
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindEncoding:
		return "encoding"
	case KindDecoding:
		return "decoding"
	case KindSecurity:
		return "security"
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Codec errors
	ErrUnknownFormat    = errors.New("unknown wire format")
	ErrTruncatedInput   = errors.New("input shorter than fixed header")
	ErrBadMagic         = errors.New("magic byte mismatch")
	ErrIndexUnavailable = errors.New("vocabulary index unavailable")

	// Security errors
	ErrSignatureMissing  = errors.New("signature missing")
	ErrSignatureMismatch = errors.New("signature mismatch")
	ErrDuplicateNonce    = errors.New("duplicate nonce")

	// Validation errors
	ErrInvalidMessage     = errors.New("invalid message")
	ErrUnknownConcept     = errors.New("concept not in vocabulary")
	ErrUnsupportedVersion = errors.New("unsupported protocol version")

	// Transport errors
	ErrNoConnection      = errors.New("no connection available")
	ErrConnectionTimeout = errors.New("connection timeout")
	ErrServerUnavailable = errors.New("server unavailable")
	ErrRequestRejected   = errors.New("request rejected by peer")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ProtocolError wraps an error with its kind and originating context.
type ProtocolError struct {
	Kind      Kind
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (pe *ProtocolError) Error() string {
	if pe.Message != "" {
		return pe.Message
	}
	return pe.Err.Error()
}

// Unwrap returns the underlying error
func (pe *ProtocolError) Unwrap() error {
	return pe.Err
}

// KindOf returns the kind of an error. Errors that were not produced
// through this package are classified by their sentinel identity,
// defaulting to KindTransport so unknown failures remain retriable.
func KindOf(err error) Kind {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		return pe.Kind
	}

	switch {
	case errors.Is(err, ErrUnknownFormat),
		errors.Is(err, ErrIndexUnavailable):
		return KindEncoding
	case errors.Is(err, ErrTruncatedInput),
		errors.Is(err, ErrBadMagic):
		return KindDecoding
	case errors.Is(err, ErrSignatureMissing),
		errors.Is(err, ErrSignatureMismatch),
		errors.Is(err, ErrDuplicateNonce):
		return KindSecurity
	case errors.Is(err, ErrInvalidMessage),
		errors.Is(err, ErrUnknownConcept),
		errors.Is(err, ErrUnsupportedVersion),
		errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrMissingConfig):
		return KindValidation
	}
	return KindTransport
}

// IsEncoding reports whether err is an encoding error.
func IsEncoding(err error) bool {
	return err != nil && KindOf(err) == KindEncoding
}

// IsDecoding reports whether err is a decoding error.
func IsDecoding(err error) bool {
	return err != nil && KindOf(err) == KindDecoding
}

// IsSecurity reports whether err is an authentication failure.
func IsSecurity(err error) bool {
	return err != nil && KindOf(err) == KindSecurity
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return err != nil && KindOf(err) == KindValidation
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	return err != nil && KindOf(err) == KindTransport
}

// IsRetriable reports whether the operation that produced err may be
// retried. Only transport failures are retriable; codec, security, and
// validation failures are permanent by design.
func IsRetriable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return KindOf(err) == KindTransport
}

// newClassified creates a new classified error.
// Internal helper - use the Wrap* family instead.
func newClassified(kind Kind, err error, component, operation, message string) *ProtocolError {
	return &ProtocolError{
		Kind:      kind,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapEncoding wraps an error as an encoding failure with context.
func WrapEncoding(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(KindEncoding, wrappedErr, component, method, wrappedErr.Error())
}

// WrapDecoding wraps an error as a decoding failure with context.
func WrapDecoding(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(KindDecoding, wrappedErr, component, method, wrappedErr.Error())
}

// WrapSecurity wraps an error as an authentication failure with context.
func WrapSecurity(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(KindSecurity, wrappedErr, component, method, wrappedErr.Error())
}

// WrapValidation wraps an error as a validation failure with context.
func WrapValidation(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(KindValidation, wrappedErr, component, method, wrappedErr.Error())
}

// WrapTransport wraps an error as a transport failure with context.
func WrapTransport(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(KindTransport, wrappedErr, component, method, wrappedErr.Error())
}
