package codec

import "time"

// Timestamp returns the current time as milliseconds since the Unix epoch
// (Avro timestamp-millis).
func Timestamp() int64 {
	return TimestampAt(time.Now())
}

// TimestampAt converts t to milliseconds since the Unix epoch.
func TimestampAt(t time.Time) int64 {
	return t.UnixMilli()
}
