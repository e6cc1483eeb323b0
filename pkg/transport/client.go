package transport

import (
	"context"
	"fmt"
	"net"
)

// Dial opens a TCP connection to address.
// config.DialTimeout applies when ctx has no deadline.
func Dial(ctx context.Context, address string, config ConnConfig) (*Conn, error) {
	config.applyDefaults()

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.DialTimeout)
		defer cancel()
	}

	dialer := &net.Dialer{}
	nc, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", address, err)
	}

	return NewConn(nc, config), nil
}
