package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mdcs-protocol/mdcs-go/pkg/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn", "json")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record passed warn level: %s", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected JSON record, got: %s", out)
	}
}

func TestNewLoggerErrors(t *testing.T) {
	if _, err := NewLogger(io.Discard, "loud", "text"); err == nil {
		t.Error("expected error for invalid level")
	}
	if _, err := NewLogger(io.Discard, "info", "xml"); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestNewProtocolLoggerNone(t *testing.T) {
	p, err := NewProtocolLogger("", nil, false)
	if err != nil {
		t.Fatalf("NewProtocolLogger failed: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil logger")
	}
	if p.Sink() != nil {
		t.Error("expected nil sink")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close on nil failed: %v", err)
	}
}

func TestNewProtocolLoggerFileAndTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.mlog")
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", "text")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	p, err := NewProtocolLogger(path, logger, true)
	if err != nil {
		t.Fatalf("NewProtocolLogger failed: %v", err)
	}

	p.Sink().Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: "conn-1",
		Layer:        log.LayerWire,
		Category:     log.CategoryMessage,
		Message:      &log.MessageEvent{Type: log.MessageTypeRequest, MessageID: 1, Message: "describe"},
	})
	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if !strings.Contains(buf.String(), "conn-1") {
		t.Errorf("expected trace output, got: %s", buf.String())
	}

	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()
	event, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if event.Message == nil || event.Message.Message != "describe" {
		t.Errorf("unexpected event: %+v", event)
	}
}
