package transport

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mdcs-protocol/mdcs-go/pkg/log"
	"github.com/mdcs-protocol/mdcs-go/pkg/wire"
)

// ConnConfig configures a Conn.
type ConnConfig struct {
	// MaxMessageSize is the maximum frame payload (default 8 MiB).
	MaxMessageSize uint32

	// ProtocolLogger receives one transport event per frame (optional).
	ProtocolLogger log.Logger

	// DialTimeout bounds Dial when the context has no deadline
	// (default 10s).
	DialTimeout time.Duration
}

func (c *ConnConfig) applyDefaults() {
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = DefaultMaxMessageSize
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = 10 * time.Second
	}
}

// Conn exchanges envelopes over one stream, one frame per envelope.
type Conn struct {
	rwc    io.ReadWriteCloser
	framer *Framer
	id     string

	closeOnce sync.Once
	closeErr  error
}

// NewConn wraps rwc. A fresh UUID identifies the connection in protocol
// logs.
func NewConn(rwc io.ReadWriteCloser, config ConnConfig) *Conn {
	config.applyDefaults()

	c := &Conn{
		rwc:    rwc,
		framer: NewFramerWithMaxSize(rwc, config.MaxMessageSize),
		id:     uuid.NewString(),
	}
	if config.ProtocolLogger != nil {
		c.framer.SetLogger(config.ProtocolLogger, c.id)
	}
	return c
}

// ID returns the connection ID used in protocol logs.
func (c *Conn) ID() string {
	return c.id
}

// RemoteAddr returns the peer address, or "" when the stream is not a
// network connection.
func (c *Conn) RemoteAddr() string {
	if nc, ok := c.rwc.(net.Conn); ok && nc.RemoteAddr() != nil {
		return nc.RemoteAddr().String()
	}
	return ""
}

// ReadFrame returns the next raw frame.
func (c *Conn) ReadFrame() ([]byte, error) {
	return c.framer.ReadFrame()
}

// WriteFrame writes one raw frame.
func (c *Conn) WriteFrame(data []byte) error {
	return c.framer.WriteFrame(data)
}

// ReadRequest reads and decodes the next request.
// The frame is returned alongside so callers can log undecodable input.
func (c *Conn) ReadRequest() (*wire.Request, []byte, error) {
	data, err := c.framer.ReadFrame()
	if err != nil {
		return nil, nil, err
	}
	req, err := wire.DecodeRequest(data)
	if err != nil {
		return nil, data, err
	}
	return req, data, nil
}

// WriteResponse encodes and writes a response.
func (c *Conn) WriteResponse(resp *wire.Response) error {
	data, err := wire.EncodeResponse(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return c.framer.WriteFrame(data)
}

// WriteRequest validates, encodes and writes a request.
func (c *Conn) WriteRequest(req *wire.Request) error {
	data, err := wire.EncodeRequest(req)
	if err != nil {
		return err
	}
	return c.framer.WriteFrame(data)
}

// ReadResponse reads and decodes the next response.
func (c *Conn) ReadResponse() (*wire.Response, error) {
	data, err := c.framer.ReadFrame()
	if err != nil {
		return nil, err
	}
	return wire.DecodeResponse(data)
}

// Close closes the underlying stream. Later calls return the first
// result.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.rwc.Close()
	})
	return c.closeErr
}
