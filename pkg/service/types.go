package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/mdcs-protocol/mdcs-go/pkg/connection"
	"github.com/mdcs-protocol/mdcs-go/pkg/discovery"
	"github.com/mdcs-protocol/mdcs-go/pkg/log"
	"github.com/mdcs-protocol/mdcs-go/pkg/wire"
)

// Service errors.
var (
	// ErrUnknownMessage is returned for a request whose message kind is
	// not part of the protocol. It is the wire package sentinel.
	ErrUnknownMessage = wire.ErrUnknownMessage

	// ErrInvalidRequest is returned when a request lacks a field its
	// message kind requires.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRequestFailed wraps codec and callback failures while handling
	// a request.
	ErrRequestFailed = errors.New("request failed")

	ErrNoNodeAddress  = errors.New("no node address configured")
	ErrAlreadyRunning = errors.New("host service already running")
)

// Defaults.
const (
	DefaultNodeHost     = "127.0.0.1"
	DefaultDialAttempts = 1
	DefaultRequestBurst = 1
)

// HostConfig configures a HostService.
type HostConfig struct {
	// NodeHost is the node's host name or IP.
	NodeHost string

	// NodePort is the node's plugin port. Zero means unknown; the node
	// is then located via mDNS when Discovery is set.
	NodePort int

	// Discovery enables browsing for _mdcs-node._tcp when NodePort is 0.
	Discovery bool

	// Browser overrides the mDNS browser (tests).
	Browser discovery.Browser

	// BrowseTimeout bounds the mDNS browse.
	BrowseTimeout time.Duration

	// DialAttempts is the number of connection attempts. Attempts after
	// the first wait according to Backoff.
	DialAttempts int

	// Backoff shapes the delay between dial attempts.
	Backoff connection.BackoffConfig

	// DialTimeout bounds each dial attempt.
	DialTimeout time.Duration

	// MaxMessageSize is the largest accepted frame payload.
	MaxMessageSize uint32

	// MaxRequestRate limits handled requests per second. Zero disables
	// the limiter.
	MaxRequestRate float64

	// RequestBurst is the limiter's burst size.
	RequestBurst int

	// Logger receives operational debug output (optional).
	Logger *slog.Logger

	// ProtocolLogger receives protocol events (optional).
	ProtocolLogger log.Logger

	// Clock stamps values; nil uses time.Now.
	Clock func() time.Time
}

// DefaultHostConfig returns the default host configuration.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		NodeHost:      DefaultNodeHost,
		BrowseTimeout: discovery.BrowseTimeout,
		DialAttempts:  DefaultDialAttempts,
		Backoff: connection.BackoffConfig{
			Initial:    connection.InitialBackoff,
			Max:        connection.MaxBackoff,
			Multiplier: connection.BackoffMultiplier,
			Jitter:     connection.JitterFactor,
		},
		DialTimeout:  10 * time.Second,
		RequestBurst: DefaultRequestBurst,
	}
}
