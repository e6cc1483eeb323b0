package wire

// Failure messages sent for unknown paths and permission violations.
const (
	FailureAttributeNotFound    = "attribute not found"
	FailureAttributeNotReadable = "attribute is not readable"
	FailureAttributeNotWritable = "attribute is not writable"
	FailureActionNotFound       = "action not found"
)

// Request is sent by the node to the host.
//
// CBOR encoding:
//
//	{
//	  1: messageId,    // uint32
//	  2: message,      // "describe" | "read" | "write" | "run"
//	  3: path,         // read, write, run
//	  4: data          // write, run: {1: value}
//	}
type Request struct {
	MessageID uint32 `cbor:"1,keyasint"`
	Message   string `cbor:"2,keyasint"`
	Path      string `cbor:"3,keyasint,omitempty"`
	Data      *Data  `cbor:"4,keyasint,omitempty"`
}

// Kind returns the parsed message kind.
func (r *Request) Kind() MessageKind {
	return ParseMessageKind(r.Message)
}

// Data carries an encoded value container.
type Data struct {
	Value []byte `cbor:"1,keyasint"`
}

// Response is sent by the host for each request, in request order.
//
// CBOR encoding:
//
//	{
//	  1: messageId,    // uint32: matches request
//	  2: message,      // echoes the request's message name
//	  3: error,        // system error text when the request failed
//	  4: device,       // describe
//	  5: failure,      // read, write, run: not found / not permitted
//	  6: value         // read, write, run: encoded value and timestamps
//	}
type Response struct {
	MessageID uint32             `cbor:"1,keyasint"`
	Message   string             `cbor:"2,keyasint"`
	Error     string             `cbor:"3,keyasint,omitempty"`
	Device    *DeviceDescription `cbor:"4,keyasint,omitempty"`
	Failure   *Failure           `cbor:"5,keyasint,omitempty"`
	Value     *Value             `cbor:"6,keyasint,omitempty"`
}

// IsSuccess returns true if the response carries neither an error nor a
// failure.
func (r *Response) IsSuccess() bool {
	return r.Error == "" && r.Failure == nil
}

// DeviceDescription answers a describe request.
type DeviceDescription struct {
	Name       string          `cbor:"1,keyasint"`
	Attributes []AttributeInfo `cbor:"2,keyasint"`
	Actions    []ActionInfo    `cbor:"3,keyasint"`
}

// AttributeInfo describes one attribute.
type AttributeInfo struct {
	Path   string   `cbor:"1,keyasint"`
	Flags  []string `cbor:"2,keyasint"`
	Schema string   `cbor:"3,keyasint"`
}

// ActionInfo describes one action.
type ActionInfo struct {
	Path         string `cbor:"1,keyasint"`
	InputSchema  string `cbor:"2,keyasint"`
	OutputSchema string `cbor:"3,keyasint"`
}

// Failure is a structured, recoverable error.
// Attribute is set for permission violations only.
type Failure struct {
	Message   string `cbor:"1,keyasint"`
	Attribute string `cbor:"2,keyasint,omitempty"`
}

// Value carries an encoded value container and its timestamps, in
// milliseconds since the Unix epoch. Read and write set Time; run sets
// Start and End.
type Value struct {
	Bytes []byte `cbor:"1,keyasint"`
	Time  int64  `cbor:"2,keyasint,omitempty"`
	Start int64  `cbor:"3,keyasint,omitempty"`
	End   int64  `cbor:"4,keyasint,omitempty"`
}
