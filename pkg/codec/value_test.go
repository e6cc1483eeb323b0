package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		value  any
	}{
		{name: "int", schema: `"int"`, value: 1},
		{name: "long", schema: `"long"`, value: int64(17179869184)},
		{name: "string", schema: `"string"`, value: "pong"},
		{name: "boolean", schema: `"boolean"`, value: true},
		{name: "double", schema: `"double"`, value: 21.5},
		{name: "bytes", schema: `"bytes"`, value: []byte{0x00, 0xFF}},
		{name: "null", schema: `"null"`, value: nil},
		{
			name:   "array",
			schema: `{"type":"array","items":"string"}`,
			value:  []any{"a", "b"},
		},
		{
			name:   "record",
			schema: `{"type":"record","name":"Reading","fields":[{"name":"watts","type":"long"},{"name":"phase","type":"string"}]}`,
			value:  map[string]any{"watts": int64(230), "phase": "L1"},
		},
		{
			name:   "enum",
			schema: `{"type":"enum","name":"Mode","symbols":["OFF","ON"]}`,
			value:  "ON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := MustParseSchema(tt.schema)

			data, err := Encode(schema, tt.value)
			require.NoError(t, err)
			assert.Equal(t, []byte("Obj\x01"), data[:4], "container magic")

			got, err := Decode(schema, data)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestDecodeContainerReturnsEmbeddedSchema(t *testing.T) {
	schema := MustParseSchema(`"long"`)
	data, err := Encode(schema, int64(42))
	require.NoError(t, err)

	embedded, value, err := DecodeContainer(data)
	require.NoError(t, err)
	assert.Equal(t, SchemaText(schema), SchemaText(embedded))
	assert.Equal(t, int64(42), value)
}

func TestDecodeRejectsForeignSchema(t *testing.T) {
	data, err := Encode(MustParseSchema(`"string"`), "hello")
	require.NoError(t, err)

	_, err = Decode(MustParseSchema(`"int"`), data)
	assert.ErrorIs(t, err, ErrDecoding)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	var decErr *DecodingError
	assert.ErrorAs(t, err, &decErr)

	// Without an expected schema the embedded one is used.
	got, err := Decode(nil, data)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestDecodeMatchesCanonicalForm(t *testing.T) {
	writer := MustParseSchema(`{"type":"record","name":"Point","doc":"2D","fields":[{"name":"x","type":"long"}]}`)
	reader := MustParseSchema(`{"type":"record","name":"Point","fields":[{"name":"x","type":{"type":"long"}}]}`)

	data, err := Encode(writer, map[string]any{"x": int64(3)})
	require.NoError(t, err)

	got, err := Decode(reader, data)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": int64(3)}, got)
}

func TestEncodeNonConformingValue(t *testing.T) {
	schema := MustParseSchema(`"int"`)

	_, err := Encode(schema, "not a number")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEncoding))

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, `"int"`, encErr.Schema)
}

func TestEncodeNilSchema(t *testing.T) {
	_, err := Encode(nil, 1)
	assert.ErrorIs(t, err, ErrEncoding)
	assert.ErrorIs(t, err, ErrNilSchema)
}

func TestDecodeInvalidContainers(t *testing.T) {
	schema := MustParseSchema(`"int"`)
	valid, err := Encode(schema, 7)
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "garbage", data: []byte("definitely not a container")},
		{name: "magic only", data: []byte("Obj\x01")},
		{name: "truncated", data: valid[:len(valid)-20]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(schema, tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecoding)

			var decErr *DecodingError
			assert.True(t, errors.As(err, &decErr))
		})
	}
}

func TestEncodeIsRepeatable(t *testing.T) {
	schema := MustParseSchema(`"int"`)

	first, err := Encode(schema, 1)
	require.NoError(t, err)
	second, err := Encode(schema, 1)
	require.NoError(t, err)

	// Sync markers differ between containers; the values must not.
	a, err := Decode(schema, first)
	require.NoError(t, err)
	b, err := Decode(schema, second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseSchemaInvalid(t *testing.T) {
	_, err := ParseSchema(`{"type":"nope"}`)
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseSchema(`{`) })
}

func TestSchemaTextNil(t *testing.T) {
	assert.Equal(t, "", SchemaText(nil))
}
