// Package wire defines the CBOR envelopes exchanged between the host and
// the node.
//
// Each frame carries one envelope. Envelopes are CBOR maps with integer
// keys; attribute values and action inputs/outputs inside them are opaque
// byte strings produced by the codec package.
//
// # Message Kinds
//
// Four kinds exist, selected by the message name in the request:
//   - describe: list the device's attributes and actions
//   - read: fetch one attribute value
//   - write: replace one attribute value
//   - run: invoke one action
//
// Any other name is a protocol violation. The contract is fixed at build
// time (see Contract) and is never negotiated.
//
// # Structured Failures
//
// Unknown paths and permission violations are answered with a Failure
// instead of a Value. They are ordinary responses; the connection
// continues.
package wire
