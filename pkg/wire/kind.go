package wire

// MessageKind identifies a request by its message name.
type MessageKind uint8

const (
	// KindUnknown is any message name outside the contract.
	KindUnknown MessageKind = iota

	// KindDescribe lists attributes and actions.
	KindDescribe

	// KindRead fetches an attribute value.
	KindRead

	// KindWrite replaces an attribute value.
	KindWrite

	// KindRun invokes an action.
	KindRun
)

// Message names on the wire.
const (
	MessageDescribe = "describe"
	MessageRead     = "read"
	MessageWrite    = "write"
	MessageRun      = "run"
)

// ParseMessageKind maps a message name to its kind.
// Unrecognized names map to KindUnknown.
func ParseMessageKind(name string) MessageKind {
	switch name {
	case MessageDescribe:
		return KindDescribe
	case MessageRead:
		return KindRead
	case MessageWrite:
		return KindWrite
	case MessageRun:
		return KindRun
	default:
		return KindUnknown
	}
}

// String returns the message name.
func (k MessageKind) String() string {
	switch k {
	case KindDescribe:
		return MessageDescribe
	case KindRead:
		return MessageRead
	case KindWrite:
		return MessageWrite
	case KindRun:
		return MessageRun
	default:
		return "unknown"
	}
}

// IsValid returns true if the kind is part of the contract.
func (k MessageKind) IsValid() bool {
	return k >= KindDescribe && k <= KindRun
}
