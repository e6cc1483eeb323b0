package connection

// State is the host's view of its link to the node.
type State uint8

const (
	// StateDisconnected indicates no connection and no attempt running.
	StateDisconnected State = iota

	// StateDiscovering indicates an mDNS browse for the node.
	StateDiscovering

	// StateConnecting indicates a dial is in progress.
	StateConnecting

	// StateConnected indicates requests are being served.
	StateConnected

	// StateClosed indicates the host loop has ended.
	StateClosed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateDiscovering:
		return "DISCOVERING"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}
