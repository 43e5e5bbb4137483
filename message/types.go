package message

// Type is the message type discriminant. It tells the receiver how to
// interpret the content: a request for action, a response to a prior
// request, an error report, or a status notification.
type Type string

// Message types.
const (
	TypeRequest  Type = "REQUEST"
	TypeResponse Type = "RESPONSE"
	TypeError    Type = "ERROR"
	TypeStatus   Type = "STATUS"
)

// IsValid reports whether t is one of the defined message types.
func (t Type) IsValid() bool {
	switch t {
	case TypeRequest, TypeResponse, TypeError, TypeStatus:
		return true
	}
	return false
}

// String returns the wire representation of the type.
func (t Type) String() string {
	return string(t)
}

// Types returns all defined message types in wire order. The compact
// codec derives its type nibble from an entry's position in this slice.
func Types() []Type {
	return []Type{TypeRequest, TypeResponse, TypeError, TypeStatus}
}
