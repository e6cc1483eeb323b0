package transport

import "github.com/mdcs-protocol/mdcs-go/pkg/wire"

// FrameReadWriter provides length-prefixed frame I/O.
// Implemented by Framer and Conn.
type FrameReadWriter interface {
	ReadFrame() ([]byte, error)
	WriteFrame(data []byte) error
}

// RequestConn is the host side of a connection.
// Implemented by Conn.
type RequestConn interface {
	ReadRequest() (*wire.Request, []byte, error)
	WriteResponse(resp *wire.Response) error
	RemoteAddr() string
	ID() string
	Close() error
}

// ResponseConn is the node side of a connection.
// Implemented by Conn.
type ResponseConn interface {
	WriteRequest(req *wire.Request) error
	ReadResponse() (*wire.Response, error)
	Close() error
}

var (
	_ FrameReadWriter = (*Framer)(nil)
	_ FrameReadWriter = (*Conn)(nil)
	_ RequestConn     = (*Conn)(nil)
	_ ResponseConn    = (*Conn)(nil)
)
