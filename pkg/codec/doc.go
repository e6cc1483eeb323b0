// Package codec encodes single attribute and action values for the wire.
//
// Every value crossing the wire travels in its own Avro object container:
//
//	┌────────────────────────────────────────────┐
//	│ magic "Obj\x01"                            │
//	├────────────────────────────────────────────┤
//	│ metadata: avro.schema (JSON), avro.codec   │
//	├────────────────────────────────────────────┤
//	│ sync marker (16 bytes)                     │
//	├────────────────────────────────────────────┤
//	│ one data block holding exactly one value   │
//	└────────────────────────────────────────────┘
//
// The container embeds the writer schema, so a value can be decoded without
// any external context. The schema passed to Decode is informational; the
// embedded schema is authoritative.
//
// # Go Value Mapping
//
// Values handed to Encode and returned by Decode use the generic Avro
// mapping:
//
//	null     nil
//	boolean  bool
//	int      int
//	long     int64
//	float    float32
//	double   float64
//	bytes    []byte
//	string   string
//	enum     string
//	array    []any
//	map      map[string]any
//	record   map[string]any
package codec
