package codec

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

// ParseSchema parses an Avro schema from its JSON text.
// Each call uses a private name cache so that named types declared by one
// attribute never leak into the schema of another.
func ParseSchema(text string) (avro.Schema, error) {
	schema, err := avro.ParseWithCache(text, "", &avro.SchemaCache{})
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return schema, nil
}

// MustParseSchema is like ParseSchema but panics on error.
// Intended for schemas compiled into the binary.
func MustParseSchema(text string) avro.Schema {
	schema, err := ParseSchema(text)
	if err != nil {
		panic(err)
	}
	return schema
}

// SchemaText returns the canonical JSON text of a schema.
func SchemaText(schema avro.Schema) string {
	if schema == nil {
		return ""
	}
	return schema.String()
}
