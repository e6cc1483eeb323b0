package model

import (
	"context"
	"errors"

	"github.com/hamba/avro/v2"
)

// Attribute errors.
var (
	// ErrNotImplemented is returned by delegated members without a callback.
	ErrNotImplemented = errors.New("operation not implemented")
)

// Attribute is a schema-described value endpoint of a device.
//
// Read and Write do not check Flags; the caller enforces permissions.
type Attribute interface {
	// Path is the attribute's unique address within its device.
	Path() string

	// Schema describes the attribute's value. It never changes.
	Schema() avro.Schema

	// Flags returns the permitted operations.
	Flags() Flags

	// Readable reports whether FlagRead is set.
	Readable() bool

	// Writable reports whether FlagWrite is set.
	Writable() bool

	// Read returns the current value.
	Read(ctx context.Context) (any, error)

	// Write replaces the current value.
	Write(ctx context.Context, value any) error
}

// attributeBase holds the fields shared by both attribute kinds.
type attributeBase struct {
	path   string
	schema avro.Schema
	flags  Flags
}

func (a *attributeBase) Path() string        { return a.path }
func (a *attributeBase) Schema() avro.Schema { return a.schema }
func (a *attributeBase) Flags() Flags        { return a.flags }
func (a *attributeBase) Readable() bool      { return a.flags.CanRead() }
func (a *attributeBase) Writable() bool      { return a.flags.CanWrite() }

// StoredAttribute keeps its value in place.
//
// It has no internal locking: the host loop serves one request at a time
// and is the only reader and writer.
type StoredAttribute struct {
	attributeBase
	value any
}

var _ Attribute = (*StoredAttribute)(nil)

// NewStoredAttribute creates an attribute holding initial.
func NewStoredAttribute(path string, schema avro.Schema, flags Flags, initial any) *StoredAttribute {
	return &StoredAttribute{
		attributeBase: attributeBase{path: path, schema: schema, flags: flags},
		value:         initial,
	}
}

// Read returns the held value.
func (a *StoredAttribute) Read(_ context.Context) (any, error) {
	return a.value, nil
}

// Write replaces the held value.
func (a *StoredAttribute) Write(_ context.Context, value any) error {
	a.value = value
	return nil
}

// ReadFunc supplies a delegated attribute's current value.
type ReadFunc func(ctx context.Context) (any, error)

// WriteFunc receives a value written to a delegated attribute.
type WriteFunc func(ctx context.Context, value any) error

// DelegatedAttribute forwards reads and writes to callbacks.
// It holds no value of its own.
type DelegatedAttribute struct {
	attributeBase
	read  ReadFunc
	write WriteFunc
}

var _ Attribute = (*DelegatedAttribute)(nil)

// NewDelegatedAttribute creates an attribute backed by read and write.
// Either callback may be nil, in which case the operation returns
// ErrNotImplemented.
func NewDelegatedAttribute(path string, schema avro.Schema, flags Flags, read ReadFunc, write WriteFunc) *DelegatedAttribute {
	return &DelegatedAttribute{
		attributeBase: attributeBase{path: path, schema: schema, flags: flags},
		read:          read,
		write:         write,
	}
}

// Read calls the read callback.
func (a *DelegatedAttribute) Read(ctx context.Context) (any, error) {
	if a.read == nil {
		return nil, ErrNotImplemented
	}
	return a.read(ctx)
}

// Write calls the write callback.
func (a *DelegatedAttribute) Write(ctx context.Context, value any) error {
	if a.write == nil {
		return ErrNotImplemented
	}
	return a.write(ctx, value)
}
