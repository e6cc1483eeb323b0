package wire

import (
	"errors"
	"fmt"
)

// Contract errors.
var (
	// ErrUnknownMessage indicates a message name outside the contract.
	ErrUnknownMessage = errors.New("unknown message")

	// ErrMissingField indicates a request without a field its message
	// requires.
	ErrMissingField = errors.New("missing required field")
)

// Field names a request or response member in the contract.
type Field string

// Request and response fields.
const (
	FieldData    Field = "data"
	FieldDevice  Field = "device"
	FieldFailure Field = "failure"
	FieldValue   Field = "value"
)

// MessageContract lists the fields one message kind uses.
type MessageContract struct {
	Kind MessageKind

	// Request holds the fields a request must carry. The path is not
	// one of them: an absent path is the empty path, which the host
	// resolves like any other.
	Request []Field

	// Response holds the fields a successful response may carry.
	Response []Field
}

// contract is the protocol shared by host and node. It is immutable.
var contract = map[MessageKind]MessageContract{
	KindDescribe: {
		Kind:     KindDescribe,
		Response: []Field{FieldDevice},
	},
	KindRead: {
		Kind:     KindRead,
		Response: []Field{FieldValue, FieldFailure},
	},
	KindWrite: {
		Kind:     KindWrite,
		Request:  []Field{FieldData},
		Response: []Field{FieldValue, FieldFailure},
	},
	KindRun: {
		Kind:     KindRun,
		Request:  []Field{FieldData},
		Response: []Field{FieldValue, FieldFailure},
	},
}

// Contract returns the contract of kind.
func Contract(kind MessageKind) (MessageContract, bool) {
	c, ok := contract[kind]
	return c, ok
}

// Validate checks req against the contract.
// It returns ErrUnknownMessage or ErrMissingField, wrapped with details.
func Validate(req *Request) error {
	c, ok := contract[req.Kind()]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMessage, req.Message)
	}

	for _, f := range c.Request {
		if !hasField(req, f) {
			return fmt.Errorf("%w: %s requires %s", ErrMissingField, c.Kind, f)
		}
	}
	return nil
}

func hasField(req *Request, f Field) bool {
	switch f {
	case FieldData:
		return req.Data != nil
	default:
		return false
	}
}
