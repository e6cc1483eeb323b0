package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/hamba/avro/v2/ocf"
)

// Codec errors.
var (
	// ErrEncoding is matched by every EncodingError.
	ErrEncoding = errors.New("value encoding failed")

	// ErrDecoding is matched by every DecodingError.
	ErrDecoding = errors.New("value decoding failed")

	// ErrNoValue indicates a well-formed container without any value.
	ErrNoValue = errors.New("container holds no values")

	// ErrNilSchema indicates Encode was called without a schema.
	ErrNilSchema = errors.New("schema is nil")

	// ErrSchemaMismatch indicates a container written with a schema other
	// than the one the caller expects.
	ErrSchemaMismatch = errors.New("container schema does not match")
)

// EncodingError reports a value that does not conform to its schema.
type EncodingError struct {
	// Schema is the canonical text of the target schema.
	Schema string

	// Err is the underlying cause.
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%v: %v (schema %s)", ErrEncoding, e.Err, e.Schema)
}

// Unwrap returns both ErrEncoding and the underlying cause.
func (e *EncodingError) Unwrap() []error {
	return []error{ErrEncoding, e.Err}
}

// DecodingError reports truncated, malformed or empty containers.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDecoding, e.Err)
}

// Unwrap returns both ErrDecoding and the underlying cause.
func (e *DecodingError) Unwrap() []error {
	return []error{ErrDecoding, e.Err}
}

// Encode writes value into a new object container using schema.
// The returned bytes embed the schema text followed by exactly one value.
func Encode(schema avro.Schema, value any) ([]byte, error) {
	if schema == nil {
		return nil, &EncodingError{Err: ErrNilSchema}
	}

	var buf bytes.Buffer
	enc, err := ocf.NewEncoder(schema.String(), &buf)
	if err != nil {
		return nil, &EncodingError{Schema: schema.String(), Err: err}
	}

	if err := enc.Encode(value); err != nil {
		return nil, &EncodingError{Schema: schema.String(), Err: err}
	}

	// Close flushes the pending block.
	if err := enc.Close(); err != nil {
		return nil, &EncodingError{Schema: schema.String(), Err: err}
	}

	return buf.Bytes(), nil
}

// Decode reads the first value of an object container.
// The embedded schema must have the same canonical form as schema;
// a nil schema accepts any container. Values after the first are ignored.
func Decode(schema avro.Schema, data []byte) (any, error) {
	embedded, value, err := DecodeContainer(data)
	if err != nil {
		return nil, err
	}
	if schema != nil && embedded.Fingerprint() != schema.Fingerprint() {
		return nil, &DecodingError{Err: fmt.Errorf("%w: got %s, want %s",
			ErrSchemaMismatch, embedded.String(), schema.String())}
	}
	return value, nil
}

// DecodeContainer reads the first value of an object container and
// returns it together with the embedded writer schema.
func DecodeContainer(data []byte) (avro.Schema, any, error) {
	dec, err := ocf.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, nil, &DecodingError{Err: err}
	}

	if !dec.HasNext() {
		if err := dec.Error(); err != nil {
			return nil, nil, &DecodingError{Err: err}
		}
		return nil, nil, &DecodingError{Err: ErrNoValue}
	}

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, nil, &DecodingError{Err: err}
	}

	embedded, err := ParseSchema(string(dec.Metadata()["avro.schema"]))
	if err != nil {
		return nil, nil, &DecodingError{Err: err}
	}

	return embedded, value, nil
}
