package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// recorder records events for testing.
type recorder struct {
	events []Event
}

func (r *recorder) Log(event Event) {
	r.events = append(r.events, event)
}

func sampleEvents(base time.Time) []Event {
	success := OutcomeSuccess
	failure := OutcomeFailure
	elapsed := 3 * time.Millisecond

	return []Event{
		{
			Timestamp:    base,
			ConnectionID: "conn-1",
			Direction:    DirectionIn,
			Layer:        LayerTransport,
			Category:     CategoryMessage,
			Frame:        &FrameEvent{Size: 20, Data: []byte{1, 2, 3}},
		},
		{
			Timestamp:    base.Add(time.Millisecond),
			ConnectionID: "conn-1",
			Direction:    DirectionIn,
			Layer:        LayerWire,
			Category:     CategoryMessage,
			Message:      &MessageEvent{Type: MessageTypeRequest, MessageID: 1, Message: "read", Path: "counter"},
		},
		{
			Timestamp:    base.Add(2 * time.Millisecond),
			ConnectionID: "conn-1",
			Direction:    DirectionOut,
			Layer:        LayerWire,
			Category:     CategoryMessage,
			DeviceName:   "host-lab",
			Message: &MessageEvent{
				Type: MessageTypeResponse, MessageID: 1, Message: "read", Path: "counter",
				Outcome: &success, ValueSize: 64, ProcessingTime: &elapsed,
			},
		},
		{
			Timestamp:    base.Add(3 * time.Millisecond),
			ConnectionID: "conn-2",
			Direction:    DirectionOut,
			Layer:        LayerWire,
			Category:     CategoryMessage,
			Message: &MessageEvent{
				Type: MessageTypeResponse, MessageID: 2, Message: "write", Path: "memory.total",
				Outcome: &failure, Detail: "attribute is not writable",
			},
		},
		{
			Timestamp:    base.Add(4 * time.Millisecond),
			ConnectionID: "conn-2",
			Layer:        LayerService,
			Category:     CategoryState,
			StateChange:  &StateChangeEvent{Entity: StateEntityConnection, OldState: "connected", NewState: "closed", Reason: "EOF"},
		},
		{
			Timestamp:    base.Add(5 * time.Millisecond),
			ConnectionID: "conn-2",
			Layer:        LayerService,
			Category:     CategoryError,
			Error:        &ErrorEventData{Layer: LayerWire, Message: "unknown message", Fatal: true},
		},
	}
}

func TestEventEncodeDecode(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)

	for _, event := range sampleEvents(base) {
		data, err := EncodeEvent(event)
		if err != nil {
			t.Fatalf("EncodeEvent failed: %v", err)
		}
		got, err := DecodeEvent(data)
		if err != nil {
			t.Fatalf("DecodeEvent failed: %v", err)
		}

		if !got.Timestamp.Equal(event.Timestamp) {
			t.Errorf("timestamp: got %v, want %v", got.Timestamp, event.Timestamp)
		}
		if got.Category != event.Category || got.Layer != event.Layer || got.Direction != event.Direction {
			t.Errorf("header mismatch: got %+v", got)
		}
		if (got.Message == nil) != (event.Message == nil) {
			t.Fatalf("message presence mismatch")
		}
		if got.Message != nil {
			if got.Message.Path != event.Message.Path || got.Message.Message != event.Message.Message {
				t.Errorf("message: got %+v, want %+v", got.Message, event.Message)
			}
			if (got.Message.Outcome == nil) != (event.Message.Outcome == nil) {
				t.Errorf("outcome presence mismatch")
			}
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{DirectionOut.String(), "OUT"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerService.String(), "SERVICE"},
		{CategoryState.String(), "STATE"},
		{Category(1).String(), "UNKNOWN"},
		{RoleNode.String(), "NODE"},
		{MessageTypeResponse.String(), "RESPONSE"},
		{OutcomeError.String(), "ERROR"},
		{StateEntityDiscovery.String(), "DISCOVERY"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestNoopLogger(t *testing.T) {
	var logger NoopLogger
	for _, e := range sampleEvents(time.Now()) {
		logger.Log(e)
	}

	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Error("OrNoop(nil) should return NoopLogger")
	}
	r := &recorder{}
	if OrNoop(r) != Logger(r) {
		t.Error("OrNoop should keep a non-nil logger")
	}
}

func TestMultiLogger(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	multi := NewMultiLogger(a, nil, b)

	multi.Log(Event{ConnectionID: "x"})
	multi.Log(Event{ConnectionID: "y"})

	for i, r := range []*recorder{a, b} {
		if len(r.events) != 2 {
			t.Fatalf("logger %d got %d events, want 2", i, len(r.events))
		}
		if r.events[1].ConnectionID != "y" {
			t.Errorf("logger %d: order not preserved", i)
		}
	}
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.mlog")
	base := time.Now()

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	events := sampleEvents(base)
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Closed loggers ignore events and tolerate a second Close.
	logger.Log(events[0])
	if err := logger.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if logger.Dropped() != 0 {
		t.Errorf("dropped = %d", logger.Dropped())
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	count := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}
	if count != len(events) {
		t.Errorf("read %d events, want %d", count, len(events))
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.mlog")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(Event{Timestamp: time.Now(), ConnectionID: "c"})
		logger.Close()
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	n := 0
	for {
		if _, err := r.Next(); err != nil {
			break
		}
		n++
	}
	if n != 2 {
		t.Errorf("got %d events, want 2", n)
	}
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.mlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				logger.Log(Event{Timestamp: time.Now(), Frame: &FrameEvent{Size: j}})
			}
		}()
	}
	wg.Wait()
	logger.Close()

	r, _ := NewReader(path)
	defer r.Close()
	n := 0
	for {
		if _, err := r.Next(); err != nil {
			break
		}
		n++
	}
	if n != 80 {
		t.Errorf("got %d events, want 80", n)
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.mlog")
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range sampleEvents(base) {
		logger.Log(e)
	}
	logger.Close()

	wire := LayerWire
	out := DirectionOut
	start := base.Add(time.Millisecond)
	end := base.Add(3 * time.Millisecond)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 6},
		{"connection", Filter{ConnectionID: "conn-2"}, 3},
		{"wire layer", Filter{Layer: &wire}, 3},
		{"outgoing wire", Filter{Layer: &wire, Direction: &out}, 2},
		{"message name", Filter{Message: "write"}, 1},
		{"path", Filter{Path: "counter"}, 2},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer r.Close()

			n := 0
			for {
				_, err := r.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("Next failed: %v", err)
				}
				n++
			}
			if n != tt.want {
				t.Errorf("got %d events, want %d", n, tt.want)
			}
		})
	}
}

func TestReaderTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.mlog")
	data, err := EncodeEvent(Event{Timestamp: time.Now(), ConnectionID: "conn-1"})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if err := os.WriteFile(path, data[:len(data)-3], 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	if _, err := r.Next(); err == nil || err == io.EOF {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.mlog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	events := sampleEvents(time.Now())
	adapter.Log(events[2])

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	want := map[string]any{
		"msg":       "protocol",
		"conn_id":   "conn-1",
		"direction": "OUT",
		"layer":     "WIRE",
		"msg_type":  "RESPONSE",
		"message":   "read",
		"path":      "counter",
		"outcome":   "SUCCESS",
		"device":    "host-lab",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
}

func TestSlogAdapterEventKinds(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	events := sampleEvents(time.Now())
	adapter.Log(events[0])
	adapter.Log(events[4])
	adapter.Log(events[5])

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	keys := []string{"frame_size", "new_state", "fatal"}
	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if _, ok := entry[keys[i]]; !ok {
			t.Errorf("line %d: missing %q", i, keys[i])
		}
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(Event{ConnectionID: "quiet"})

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
