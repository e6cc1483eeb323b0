package transport

import (
	"context"
	"fmt"
	"net"
)

// Listener accepts host connections on the node side.
type Listener struct {
	ln     net.Listener
	config ConnConfig
}

// Listen opens a TCP listener on address (e.g. "127.0.0.1:0").
func Listen(address string, config ConnConfig) (*Listener, error) {
	config.applyDefaults()

	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}
	return &Listener{ln: ln, config: config}, nil
}

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Port returns the bound TCP port.
func (l *Listener) Port() int {
	if tcp, ok := l.ln.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Accept waits for the next connection. Cancelling ctx closes the
// listener.
func (l *Listener) Accept(ctx context.Context) (*Conn, error) {
	stop := context.AfterFunc(ctx, func() { _ = l.ln.Close() })
	defer stop()

	nc, err := l.ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return NewConn(nc, l.config), nil
}

// Close stops listening.
func (l *Listener) Close() error {
	return l.ln.Close()
}
