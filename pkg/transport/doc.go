// Package transport moves request and response envelopes over a byte
// stream.
//
// # Framing
//
// Every envelope occupies one frame:
//
//	┌──────────────────┬────────────────────────┐
//	│ length (4 bytes) │ CBOR envelope (length) │
//	│ big-endian       │                        │
//	└──────────────────┴────────────────────────┘
//
// Empty frames and frames above the configured maximum are rejected. A
// stream that ends inside a frame yields ErrFrameTruncated; a stream that
// ends between frames yields io.EOF.
//
// # Connections
//
// Conn pairs a Framer with the wire codec. The host uses ReadRequest and
// WriteResponse, the node uses WriteRequest and ReadResponse. Dial opens
// the host's outbound connection; Listen accepts connections on the node.
package transport
