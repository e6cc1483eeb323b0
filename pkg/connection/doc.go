// Package connection provides dial retry and connection state for the
// host's outbound link to the node.
//
// The host makes a bounded number of dial attempts. Between attempts it
// waits an exponentially growing delay with jitter:
//
//	delay = base + random(0, base * 0.25)
//	base  = 500ms, 1s, 2s, 4s ... capped at 30s
//
// Once connected, a lost connection ends the host loop; there is no
// automatic reconnection.
package connection
