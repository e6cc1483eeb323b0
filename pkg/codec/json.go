package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/hamba/avro/v2"
)

// ErrJSONMismatch indicates a JSON value whose shape does not fit the schema.
var ErrJSONMismatch = errors.New("json value does not match schema")

// FromJSON converts JSON text into a Go value shaped for schema, ready to
// be passed to Encode. Numbers are narrowed to the Go type the Avro
// primitive expects (int, int64, float32, float64).
func FromJSON(schema avro.Schema, data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return coerce(schema, raw)
}

func coerce(schema avro.Schema, v any) (any, error) {
	switch schema.Type() {
	case avro.Null:
		if v != nil {
			return nil, mismatch(schema, v)
		}
		return nil, nil

	case avro.Boolean:
		b, ok := v.(bool)
		if !ok {
			return nil, mismatch(schema, v)
		}
		return b, nil

	case avro.Int:
		n, err := toInt64(schema, v)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d overflows int", ErrJSONMismatch, n)
		}
		return int(n), nil

	case avro.Long:
		return toInt64(schema, v)

	case avro.Float:
		f, err := toFloat64(schema, v)
		if err != nil {
			return nil, err
		}
		return float32(f), nil

	case avro.Double:
		return toFloat64(schema, v)

	case avro.String:
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(schema, v)
		}
		return s, nil

	case avro.Bytes:
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(schema, v)
		}
		return []byte(s), nil

	case avro.Enum:
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(schema, v)
		}
		if !slices.Contains(schema.(*avro.EnumSchema).Symbols(), s) {
			return nil, fmt.Errorf("%w: unknown enum symbol %q", ErrJSONMismatch, s)
		}
		return s, nil

	case avro.Fixed:
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(schema, v)
		}
		size := schema.(*avro.FixedSchema).Size()
		if len(s) != size {
			return nil, fmt.Errorf("%w: fixed needs %d bytes, got %d", ErrJSONMismatch, size, len(s))
		}
		arr := reflect.New(reflect.ArrayOf(size, reflect.TypeOf(byte(0)))).Elem()
		reflect.Copy(arr, reflect.ValueOf([]byte(s)))
		return arr.Interface(), nil

	case avro.Array:
		items, ok := v.([]any)
		if !ok {
			return nil, mismatch(schema, v)
		}
		itemSchema := schema.(*avro.ArraySchema).Items()
		out := make([]any, 0, len(items))
		for i, item := range items {
			c, err := coerce(itemSchema, item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, c)
		}
		return out, nil

	case avro.Map:
		entries, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch(schema, v)
		}
		valueSchema := schema.(*avro.MapSchema).Values()
		out := make(map[string]any, len(entries))
		for k, item := range entries {
			c, err := coerce(valueSchema, item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = c
		}
		return out, nil

	case avro.Record, avro.Error:
		fields, ok := v.(map[string]any)
		if !ok {
			return nil, mismatch(schema, v)
		}
		out := make(map[string]any, len(fields))
		for _, f := range schema.(*avro.RecordSchema).Fields() {
			item, present := fields[f.Name()]
			if !present {
				if f.HasDefault() {
					out[f.Name()] = f.Default()
					continue
				}
				item = nil
			}
			c, err := coerce(f.Type(), item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name(), err)
			}
			out[f.Name()] = c
		}
		return out, nil

	case avro.Union:
		union := schema.(*avro.UnionSchema)
		if v == nil && union.Nullable() {
			return nil, nil
		}
		for _, branch := range union.Types() {
			if branch.Type() == avro.Null {
				continue
			}
			if c, err := coerce(branch, v); err == nil {
				return c, nil
			}
		}
		return nil, mismatch(schema, v)

	case avro.Ref:
		return coerce(schema.(*avro.RefSchema).Schema(), v)

	default:
		return nil, fmt.Errorf("%w: unsupported schema type %s", ErrJSONMismatch, schema.Type())
	}
}

func toInt64(schema avro.Schema, v any) (int64, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, mismatch(schema, v)
	}
	n, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrJSONMismatch, err)
	}
	return n, nil
}

func toFloat64(schema avro.Schema, v any) (float64, error) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, mismatch(schema, v)
	}
	f, err := num.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrJSONMismatch, err)
	}
	return f, nil
}

func mismatch(schema avro.Schema, v any) error {
	return fmt.Errorf("%w: %s cannot hold %T", ErrJSONMismatch, schema.Type(), v)
}
