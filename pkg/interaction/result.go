package interaction

import (
	"fmt"
	"time"

	"github.com/hamba/avro/v2"

	"github.com/mdcs-protocol/mdcs-go/pkg/codec"
	"github.com/mdcs-protocol/mdcs-go/pkg/wire"
)

// Result is a decoded value response.
type Result struct {
	// Schema is the schema embedded in the value container.
	Schema avro.Schema

	// Value is the decoded value.
	Value any

	// Raw is the value container as received.
	Raw []byte

	// Time is set for read and write, Start and End for run.
	Time  time.Time
	Start time.Time
	End   time.Time
}

// Duration returns how long an action ran.
func (r *Result) Duration() time.Duration {
	if r.Start.IsZero() || r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

func decodeResult(resp *wire.Response) (*Result, error) {
	if resp.Value == nil {
		return nil, fmt.Errorf("%w: %s without value", ErrUnexpectedReply, resp.Message)
	}

	schema, value, err := codec.DecodeContainer(resp.Value.Bytes)
	if err != nil {
		return nil, err
	}

	return &Result{
		Schema: schema,
		Value:  value,
		Raw:    resp.Value.Bytes,
		Time:   fromMillis(resp.Value.Time),
		Start:  fromMillis(resp.Value.Start),
		End:    fromMillis(resp.Value.End),
	}, nil
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// FailureError is a structured failure reported by the host.
type FailureError struct {
	Message   string
	Attribute string
}

func (e *FailureError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Attribute)
	}
	return e.Message
}

// RemoteError is an error raised on the host while handling a request.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "host error: " + e.Message
}
