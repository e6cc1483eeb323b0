package discovery

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypeNode is the service type advertised by nodes.
	ServiceTypeNode = "_mdcs-node._tcp"

	// Domain is the mDNS domain.
	Domain = "local."

	// ProtocolVersion is the version announced in the ver TXT key.
	ProtocolVersion = "1"
)

// TXT record keys.
const (
	TXTKeyName    = "name"
	TXTKeyVersion = "ver"
)

// Timing constants.
const (
	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 10 * time.Second
)

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63
)

// Errors.
var (
	ErrNotFound            = errors.New("node not found")
	ErrInvalidTXTRecord    = errors.New("invalid TXT record")
	ErrMissingRequired     = errors.New("missing required TXT field")
	ErrInvalidInstanceName = errors.New("invalid instance name")
	ErrInvalidPort         = errors.New("invalid port")
)

// NodeInfo describes the node service being advertised.
type NodeInfo struct {
	// Name is the node name, used as instance name and name TXT value.
	Name string

	// Port is the TCP port of the plugin listener.
	Port uint16

	// Version overrides ProtocolVersion when set.
	Version string
}

// NodeService is a node found by browsing.
type NodeService struct {
	InstanceName string
	Host         string
	Port         uint16
	Addresses    []string

	Name    string
	Version string
}

// Address returns a dialable host:port for the node. The first resolved
// address wins; the mDNS host name is used when none was resolved.
func (s *NodeService) Address() string {
	host := s.Host
	if len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	return net.JoinHostPort(host, strconv.Itoa(int(s.Port)))
}

// Advertiser publishes the node service.
type Advertiser interface {
	// Advertise starts advertising, replacing any previous registration.
	Advertise(ctx context.Context, info *NodeInfo) error

	// Stop withdraws the advertisement.
	Stop()
}

// Browser finds node services.
type Browser interface {
	// BrowseNodes streams nodes until ctx is done. Addresses seen on
	// several interfaces are merged into one entry.
	BrowseNodes(ctx context.Context) (<-chan *NodeService, error)

	// FindNode returns the first node found, or ErrNotFound when the
	// browse timeout expires.
	FindNode(ctx context.Context) (*NodeService, error)

	// Stop stops all active browsing operations.
	Stop()
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface restricts advertising to one network interface.
	// Empty means all interfaces.
	Interface string

	// TTL is the record time-to-live. Zero uses the library default.
	TTL time.Duration
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// BrowseTimeout bounds FindNode.
	// Default: 10 seconds.
	BrowseTimeout time.Duration

	// Interface restricts browsing to one network interface.
	Interface string
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		BrowseTimeout: BrowseTimeout,
	}
}
