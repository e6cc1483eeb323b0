package interaction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hamba/avro/v2"

	"github.com/mdcs-protocol/mdcs-go/pkg/codec"
	"github.com/mdcs-protocol/mdcs-go/pkg/transport"
	"github.com/mdcs-protocol/mdcs-go/pkg/wire"
)

// Client errors.
var (
	ErrRequestTimeout  = errors.New("request timed out")
	ErrClientClosed    = errors.New("client is closed")
	ErrUnexpectedReply = errors.New("unexpected reply")
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Client issues requests to a host over one connection.
type Client struct {
	// mu serializes exchanges; the protocol has no pipelining.
	mu sync.Mutex

	conn    transport.ResponseConn
	timeout time.Duration
	closed  bool

	nextMsgID atomic.Uint32
}

// NewClient creates a new interaction client.
func NewClient(conn transport.ResponseConn) *Client {
	return &Client{
		conn:    conn,
		timeout: DefaultTimeout,
	}
}

// SetTimeout sets the request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = timeout
}

// Close closes the client and its connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Client) closeLocked() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

// Describe fetches the device description.
func (c *Client) Describe(ctx context.Context) (*wire.DeviceDescription, error) {
	resp, err := c.roundTrip(ctx, &wire.Request{Message: wire.MessageDescribe})
	if err != nil {
		return nil, err
	}
	if resp.Device == nil {
		return nil, fmt.Errorf("%w: describe without device", ErrUnexpectedReply)
	}
	return resp.Device, nil
}

// Read reads the attribute at path.
func (c *Client) Read(ctx context.Context, path string) (*Result, error) {
	resp, err := c.roundTrip(ctx, &wire.Request{
		Message: wire.MessageRead,
		Path:    path,
	})
	if err != nil {
		return nil, err
	}
	return decodeResult(resp)
}

// Write encodes value with schema and writes it to the attribute at
// path. The result holds the value as echoed by the host.
func (c *Client) Write(ctx context.Context, path string, schema avro.Schema, value any) (*Result, error) {
	data, err := codec.Encode(schema, value)
	if err != nil {
		return nil, err
	}
	return c.WriteRaw(ctx, path, data)
}

// WriteRaw writes an already encoded value container.
func (c *Client) WriteRaw(ctx context.Context, path string, data []byte) (*Result, error) {
	resp, err := c.roundTrip(ctx, &wire.Request{
		Message: wire.MessageWrite,
		Path:    path,
		Data:    &wire.Data{Value: data},
	})
	if err != nil {
		return nil, err
	}
	return decodeResult(resp)
}

// Run encodes input with schema and runs the action at path.
func (c *Client) Run(ctx context.Context, path string, schema avro.Schema, input any) (*Result, error) {
	data, err := codec.Encode(schema, input)
	if err != nil {
		return nil, err
	}

	resp, err := c.roundTrip(ctx, &wire.Request{
		Message: wire.MessageRun,
		Path:    path,
		Data:    &wire.Data{Value: data},
	})
	if err != nil {
		return nil, err
	}
	return decodeResult(resp)
}

// roundTrip sends req with a fresh message ID and waits for its response.
func (c *Client) roundTrip(ctx context.Context, req *wire.Request) (*wire.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}
	req.MessageID = c.nextMsgID.Add(1)

	type result struct {
		resp *wire.Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		if err := c.conn.WriteRequest(req); err != nil {
			done <- result{err: err}
			return
		}
		resp, err := c.conn.ReadResponse()
		done <- result{resp: resp, err: err}
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		if r.resp.MessageID != req.MessageID || r.resp.Message != req.Message {
			_ = c.closeLocked()
			return nil, fmt.Errorf("%w: got %s #%d, want %s #%d", ErrUnexpectedReply,
				r.resp.Message, r.resp.MessageID, req.Message, req.MessageID)
		}
		if r.resp.Error != "" {
			return nil, &RemoteError{Message: r.resp.Error}
		}
		if r.resp.Failure != nil {
			return nil, &FailureError{Message: r.resp.Failure.Message, Attribute: r.resp.Failure.Attribute}
		}
		return r.resp, nil
	case <-ctx.Done():
		_ = c.closeLocked()
		return nil, ctx.Err()
	case <-timer.C:
		_ = c.closeLocked()
		return nil, ErrRequestTimeout
	}
}
