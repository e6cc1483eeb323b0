// Package model implements the MDCS device data model.
//
// # Device Model
//
// A Device is a named bag of attributes and actions, each addressed by a
// path string. Attributes and actions share one flat namespace per device:
//
//	Device (host-lab-01)
//	├── memory.total      attribute  READ
//	├── memory.available  attribute  READ
//	├── counter           attribute  READ WRITE
//	└── ping              action
//
// # Attributes
//
// An Attribute carries an Avro schema and permission Flags. Two
// implementations exist:
//   - StoredAttribute: holds its value in place
//   - DelegatedAttribute: forwards every read and write to callbacks
//
// Permissions are checked by the protocol responder, not by attributes.
// Attributes never validate values against their schema; the value codec
// does that when values cross the wire.
//
// # Actions
//
// An Action has an input and an output schema and runs a handler with the
// decoded input. DelegatedAction forwards to an ActionFunc.
//
// # Lifecycle
//
// Attributes and actions are registered before the device is served.
// Registration is safe for concurrent use; serving reads the maps under
// a read lock.
package model
